package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollInput converts ebiten's per-frame key state into queued KeyEvents and
// accumulates the scroll wheel. Called once per Update by the window runner.
func (c *HostCanvas) pollInput() {
	mod := ModMask(0)
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mod |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mod |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mod |= ModAlt
	}

	if mod&ModCtrl != 0 {
		// Chord letters arrive as key presses, not input chars.
		emitCtrl := func(key ebiten.Key, r rune) {
			if inpututil.IsKeyJustPressed(key) {
				c.push(KeyEvent{Code: KeyRune, Rune: r, Mod: mod})
			}
		}
		emitCtrl(ebiten.KeyU, 'u')
		emitCtrl(ebiten.KeyL, 'l')
		emitCtrl(ebiten.KeyQ, 'q')
		emitCtrl(ebiten.KeyC, 'c')
		emitCtrl(ebiten.KeyV, 'v')
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r < 0x20 {
				continue
			}
			c.push(KeyEvent{Code: KeyRune, Rune: r, Mod: mod})
		}
	}

	emit := func(key ebiten.Key, code KeyCode) {
		if inpututil.IsKeyJustPressed(key) {
			c.push(KeyEvent{Code: code, Mod: mod})
		}
	}
	emit(ebiten.KeyEnter, KeyEnter)
	emit(ebiten.KeyBackspace, KeyBackspace)
	emit(ebiten.KeyDelete, KeyDelete)
	emit(ebiten.KeyTab, KeyTab)
	emit(ebiten.KeyArrowUp, KeyUp)
	emit(ebiten.KeyArrowDown, KeyDown)
	emit(ebiten.KeyArrowLeft, KeyLeft)
	emit(ebiten.KeyArrowRight, KeyRight)
	emit(ebiten.KeyHome, KeyHome)
	emit(ebiten.KeyEnd, KeyEnd)
	emit(ebiten.KeyPageUp, KeyPageUp)
	emit(ebiten.KeyPageDown, KeyPageDown)
	emit(ebiten.KeyEscape, KeyEscape)

	_, wy := ebiten.Wheel()
	if wy != 0 {
		c.addWheel(wy)
	}
}
