package hal

import (
	"errors"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/freesans"
)

var ErrNotImplemented = errors.New("not implemented")

// Font couples a tinyfont face with its line metrics. Glyph data carries no
// usable line height, so Height and the baseline Offset are fixed per face.
type Font struct {
	Face   tinyfont.Fonter
	Height int
	Offset int
}

// FontSans is the default proportional transcript font.
func FontSans() Font {
	return Font{Face: &freesans.Regular9pt7b, Height: 18, Offset: 13}
}

// FontMono is the fixed-width alternative.
func FontMono() Font {
	return Font{Face: &freemono.Regular9pt7b, Height: 18, Offset: 13}
}

// FontByName resolves a config font name, defaulting to the sans face.
func FontByName(name string) Font {
	if name == "mono" {
		return FontMono()
	}
	return FontSans()
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	// KeyNone means no key event was pending this tick.
	KeyNone KeyCode = iota
	// KeyClosing means the host window is shutting down.
	KeyClosing
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEscape
)

// ModMask holds the modifier state captured with a key event.
type ModMask uint8

const (
	ModCtrl ModMask = 1 << iota
	ModShift
	ModAlt
)

// KeyEvent is one raw keyboard event.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mod  ModMask
}

// Canvas is the only contact point between the console and the host surface.
type Canvas interface {
	// Viewport reports the drawable size in pixels.
	Viewport() (w, h int)
	// MeasureText reports the advance width and line height of s in f.
	MeasureText(f Font, s string) (w, h int)
	DrawRect(x, y, w, h int, c color.RGBA)
	// DrawText draws s with its line box anchored at x, y (top left).
	DrawText(x, y int, s string, c color.RGBA, f Font)
	// PollKey returns one pending key event, KeyNone if the queue is empty,
	// or KeyClosing once the host is going away.
	PollKey() KeyEvent
	// WheelDelta drains the accumulated scroll wheel steps since the last
	// call. Positive steps scroll toward older lines.
	WheelDelta() int
	// Flush presents everything drawn this tick.
	Flush() error
}

// Clipboard bridges the system clipboard. Both calls are synchronous and
// block until the underlying OS utility finishes.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(string) error
}
