package console

import "image/color"

// Palette is the flat color scheme for transcript rendering.
type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Prompt     color.RGBA
	Input      color.RGBA
	Error      color.RGBA
	Nil        color.RGBA
	Literal    color.RGBA
	String     color.RGBA
	Handle     color.RGBA
	Scrollbar  color.RGBA
	Thumb      color.RGBA
	Cursor     color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF},
		Text:       color.RGBA{R: 0xDC, G: 0xDC, B: 0xDC, A: 0xFF},
		Prompt:     color.RGBA{R: 0x50, G: 0xFA, B: 0x78, A: 0xFF},
		Input:      color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
		Error:      color.RGBA{R: 0xFF, G: 0x5F, B: 0x5F, A: 0xFF},
		Nil:        color.RGBA{R: 0x96, G: 0x96, B: 0xA0, A: 0xFF},
		Literal:    color.RGBA{R: 0x6E, G: 0xC8, B: 0xFF, A: 0xFF},
		String:     color.RGBA{R: 0xF0, G: 0xC8, B: 0x78, A: 0xFF},
		Handle:     color.RGBA{R: 0xC8, G: 0x8C, B: 0xFF, A: 0xFF},
		Scrollbar:  color.RGBA{R: 0x28, G: 0x28, B: 0x30, A: 0xFF},
		Thumb:      color.RGBA{R: 0x6E, G: 0x6E, B: 0x82, A: 0xFF},
		Cursor:     color.RGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF},
	}
}
