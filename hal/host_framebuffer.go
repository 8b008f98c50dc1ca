package hal

import "image/color"

// hostFramebuffer is an RGB565 pixel buffer the window host blits each frame.
type hostFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) setPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	pixel := packRGB565(c.R, c.G, c.B)
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) fillRect(x, y, w, h int, c color.RGBA) {
	x0 := clampInt(x, 0, f.width)
	y0 := clampInt(y, 0, f.height)
	x1 := clampInt(x+w, 0, f.width)
	y1 := clampInt(y+h, 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pixel := packRGB565(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	copy(dst, f.buf)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
