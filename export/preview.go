package export

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"

	"curved/curve"
)

// ChannelColor returns the display color for a channel.
func ChannelColor(ch curve.ChannelID) colorful.Color {
	switch ch {
	case curve.Red:
		return colorful.Color{R: 0.90, G: 0.25, B: 0.25}
	case curve.Green:
		return colorful.Color{R: 0.25, G: 0.80, B: 0.30}
	case curve.Blue:
		return colorful.Color{R: 0.30, G: 0.45, B: 0.95}
	default:
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
}

const previewMargin = 12.0

// RenderPreview draws the channel curves into a raster image: a light
// grid, every channel's Bézier path in its display color, and the
// active channel on top with a heavier stroke.
func RenderPreview(set curve.Set, active curve.ChannelID, width, height int, dark bool) (image.Image, error) {
	if width < 2*previewMargin || height < 2*previewMargin {
		return nil, fmt.Errorf("render preview: %dx%d too small", width, height)
	}

	dc := gg.NewContext(width, height)
	if dark {
		dc.SetRGB(0.10, 0.10, 0.11)
	} else {
		dc.SetRGB(0.98, 0.98, 0.97)
	}
	dc.Clear()

	toPixel := func(p curve.Point) (float64, float64) {
		w := float64(width) - 2*previewMargin
		h := float64(height) - 2*previewMargin
		return previewMargin + p.X*w, previewMargin + (1-p.Y)*h
	}

	if dark {
		dc.SetRGB(0.28, 0.28, 0.30)
	} else {
		dc.SetRGB(0.82, 0.82, 0.82)
	}
	dc.SetLineWidth(0.5)
	for i := 1; i < 10; i++ {
		r := float64(i) / 10
		x0, y0 := toPixel(curve.Point{X: r, Y: 0})
		x1, y1 := toPixel(curve.Point{X: r, Y: 1})
		dc.DrawLine(x0, y0, x1, y1)
		x0, y0 = toPixel(curve.Point{X: 0, Y: r})
		x1, y1 = toPixel(curve.Point{X: 1, Y: r})
		dc.DrawLine(x0, y0, x1, y1)
	}
	dc.Stroke()

	drawChannel := func(ch curve.ChannelID, lineWidth float64) {
		nodes := set[ch]
		if len(nodes) < 2 {
			return
		}
		c := ChannelColor(ch)
		dc.SetRGB(c.R, c.G, c.B)
		dc.SetLineWidth(lineWidth)
		x, y := toPixel(nodes[0].Main)
		dc.MoveTo(x, y)
		for i := 0; i < len(nodes)-1; i++ {
			x1, y1 := toPixel(nodes[i].Out)
			x2, y2 := toPixel(nodes[i+1].In)
			x3, y3 := toPixel(nodes[i+1].Main)
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
		dc.Stroke()
	}

	for _, ch := range curve.Channels() {
		if ch != active {
			drawChannel(ch, 1.2)
		}
	}
	drawChannel(active, 2.5)

	return dc.Image(), nil
}

// SavePreviewPNG renders the preview and writes it to a PNG file.
func SavePreviewPNG(filename string, set curve.Set, active curve.ChannelID, width, height int, dark bool) error {
	img, err := RenderPreview(set, active, width, height, dark)
	if err != nil {
		return err
	}
	return SavePNG(filename, img)
}
