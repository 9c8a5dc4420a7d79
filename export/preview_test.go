package export

import (
	"testing"

	"curved/curve"
)

func TestRenderPreviewBounds(t *testing.T) {
	img, err := RenderPreview(curve.DefaultSet(), curve.Red, 320, 240, false)
	if err != nil {
		t.Fatalf("RenderPreview: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("bounds = %v, want 320x240", b)
	}
	if _, err := RenderPreview(curve.DefaultSet(), curve.Red, 320, 240, true); err != nil {
		t.Errorf("dark RenderPreview: %v", err)
	}
}

func TestRenderPreviewRejectsTinyImage(t *testing.T) {
	if _, err := RenderPreview(curve.DefaultSet(), curve.Red, 10, 10, false); err == nil {
		t.Error("tiny preview accepted")
	}
}

func TestChannelColorsDistinct(t *testing.T) {
	seen := map[[3]float64]curve.ChannelID{}
	for _, ch := range curve.Channels() {
		c := ChannelColor(ch)
		key := [3]float64{c.R, c.G, c.B}
		if prev, dup := seen[key]; dup {
			t.Errorf("channels %v and %v share a display color", prev, ch)
		}
		seen[key] = ch
	}
}
