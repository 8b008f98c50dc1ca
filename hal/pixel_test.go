package hal

import (
	"image/color"
	"testing"
)

func TestRGB565RoundTripExtremes(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := unpackRGB565(packRGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("packRGB565(%d,%d,%d) round trip = (%d,%d,%d)", c.r, c.g, c.b, r, g, b)
		}
	}
}

func TestFillRectClipsToBuffer(t *testing.T) {
	fb := newHostFramebuffer(8, 8)
	fb.fillRect(-4, -4, 100, 100, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	for i, b := range fb.buf {
		if b != 0xFF {
			t.Fatalf("buf[%d]=%#x, want 0xFF", i, b)
		}
	}

	fb2 := newHostFramebuffer(8, 8)
	fb2.fillRect(9, 9, 4, 4, color.RGBA{R: 255, A: 255})
	for i, b := range fb2.buf {
		if b != 0 {
			t.Fatalf("out-of-bounds fill wrote buf[%d]=%#x", i, b)
		}
	}
}
