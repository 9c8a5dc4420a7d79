package export

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"curved/curve"
)

// Sampler yields a channel's tone response at x in [0,1]. Both the live
// editor and a bare channel set (via bezier.SetSampler) satisfy it.
type Sampler interface {
	Sample(ch curve.ChannelID, x float64) float64
}

// CombinedRGB1D builds a width x 1 lookup strip sampling all three
// channels at once. bitDepth selects 8 (NRGBA) or 16 (NRGBA64) bits per
// channel.
func CombinedRGB1D(s Sampler, width, bitDepth int) (image.Image, error) {
	if width < 1 {
		return nil, fmt.Errorf("combined rgb lut: width %d < 1", width)
	}
	if bitDepth != 8 && bitDepth != 16 {
		return nil, fmt.Errorf("combined rgb lut: unsupported bit depth %d", bitDepth)
	}

	switch bitDepth {
	case 16:
		img := image.NewNRGBA64(image.Rect(0, 0, width, 1))
		for i := 0; i < width; i++ {
			r, g, b := sampleRGB(s, lutPos(i, width))
			img.SetNRGBA64(i, 0, color.NRGBA64{
				R: uint16(math.Round(r * 65535)),
				G: uint16(math.Round(g * 65535)),
				B: uint16(math.Round(b * 65535)),
				A: 65535,
			})
		}
		return img, nil
	default:
		img := image.NewNRGBA(image.Rect(0, 0, width, 1))
		for i := 0; i < width; i++ {
			r, g, b := sampleRGB(s, lutPos(i, width))
			img.SetNRGBA(i, 0, color.NRGBA{R: toByte(r), G: toByte(g), B: toByte(b), A: 255})
		}
		return img, nil
	}
}

// SingleChannel1D builds a width x 1 grayscale strip of one channel's
// response.
func SingleChannel1D(s Sampler, ch curve.ChannelID, width int) (*image.Gray, error) {
	if width < 1 {
		return nil, fmt.Errorf("single channel lut: width %d < 1", width)
	}
	img := image.NewGray(image.Rect(0, 0, width, 1))
	for i := 0; i < width; i++ {
		img.SetGray(i, 0, color.Gray{Y: toByte(clampUnit(s.Sample(ch, lutPos(i, width))))})
	}
	return img, nil
}

// HALD3D builds a HALD-style cube image of size*size x size pixels: the
// blue axis selects the row, green and red index within it.
func HALD3D(s Sampler, size int) (*image.NRGBA, error) {
	if size < 2 {
		return nil, fmt.Errorf("hald lut: size %d < 2", size)
	}
	img := image.NewNRGBA(image.Rect(0, 0, size*size, size))
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				or := clampUnit(s.Sample(curve.Red, lutPos(r, size)))
				og := clampUnit(s.Sample(curve.Green, lutPos(g, size)))
				ob := clampUnit(s.Sample(curve.Blue, lutPos(b, size)))
				img.SetNRGBA(r+g*size, b, color.NRGBA{R: toByte(or), G: toByte(og), B: toByte(ob), A: 255})
			}
		}
	}
	return img, nil
}

// WriteCube writes a 3-D LUT in the text .cube format understood by
// most grading tools. Red varies fastest, per the format convention.
func WriteCube(w io.Writer, s Sampler, size int, title string) error {
	if size < 2 {
		return fmt.Errorf("cube lut: size %d < 2", size)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "TITLE %q\n", title)
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", size)
	fmt.Fprintln(bw, "DOMAIN_MIN 0.0 0.0 0.0")
	fmt.Fprintln(bw, "DOMAIN_MAX 1.0 1.0 1.0")
	for b := 0; b < size; b++ {
		for g := 0; g < size; g++ {
			for r := 0; r < size; r++ {
				or := clampUnit(s.Sample(curve.Red, lutPos(r, size)))
				og := clampUnit(s.Sample(curve.Green, lutPos(g, size)))
				ob := clampUnit(s.Sample(curve.Blue, lutPos(b, size)))
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n", or, og, ob)
			}
		}
	}
	return bw.Flush()
}

// SaveCube writes a .cube file to disk.
func SaveCube(filename string, s Sampler, size int, title string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCube(f, s, size, title)
}

// SavePNG encodes an image to a PNG file.
func SavePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func sampleRGB(s Sampler, x float64) (r, g, b float64) {
	return clampUnit(s.Sample(curve.Red, x)),
		clampUnit(s.Sample(curve.Green, x)),
		clampUnit(s.Sample(curve.Blue, x))
}

// lutPos maps a texel index to its sample position in [0,1].
func lutPos(i, n int) float64 {
	if n == 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
