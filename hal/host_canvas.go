package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// HostCanvas implements Canvas over an RGB565 framebuffer with tinyfont
// glyph rendering. The window and headless runners share it.
type HostCanvas struct {
	fb      *hostFramebuffer
	keys    []KeyEvent
	wheel   float64
	closing bool
}

// NewCanvas returns a canvas with a width x height pixel surface.
func NewCanvas(width, height int) *HostCanvas {
	return &HostCanvas{fb: newHostFramebuffer(width, height)}
}

func (c *HostCanvas) Viewport() (w, h int) {
	return c.fb.width, c.fb.height
}

func (c *HostCanvas) MeasureText(f Font, s string) (w, h int) {
	if s == "" {
		return 0, f.Height
	}
	_, outboxWidth := tinyfont.LineWidth(f.Face, s)
	return int(outboxWidth), f.Height
}

func (c *HostCanvas) DrawRect(x, y, w, h int, col color.RGBA) {
	c.fb.fillRect(x, y, w, h, col)
}

func (c *HostCanvas) DrawText(x, y int, s string, col color.RGBA, f Font) {
	if s == "" {
		return
	}
	tinyfont.WriteLine(pixelSurface{fb: c.fb}, f.Face, int16(x), int16(y+f.Offset), s, col)
}

func (c *HostCanvas) PollKey() KeyEvent {
	if c.closing {
		return KeyEvent{Code: KeyClosing}
	}
	if len(c.keys) == 0 {
		return KeyEvent{Code: KeyNone}
	}
	ev := c.keys[0]
	c.keys = c.keys[1:]
	return ev
}

func (c *HostCanvas) WheelDelta() int {
	steps := int(c.wheel)
	c.wheel -= float64(steps)
	return steps
}

// Flush is a no-op on the host: the window runner blits the framebuffer
// every frame.
func (c *HostCanvas) Flush() error { return nil }

func (c *HostCanvas) push(ev KeyEvent) {
	if len(c.keys) >= 64 {
		return
	}
	c.keys = append(c.keys, ev)
}

func (c *HostCanvas) addWheel(d float64) {
	c.wheel += d
}

func (c *HostCanvas) setClosing() {
	c.closing = true
}

// pixelSurface adapts the framebuffer to the Displayer surface tinyfont
// draws onto.
type pixelSurface struct {
	fb *hostFramebuffer
}

var _ drivers.Displayer = pixelSurface{}

func (d pixelSurface) Size() (x, y int16) {
	return int16(d.fb.width), int16(d.fb.height)
}

func (d pixelSurface) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixel(int(x), int(y), c)
}

func (d pixelSurface) Display() error { return nil }
