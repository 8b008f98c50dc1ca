package console

import "flint/hal"

// handleKey maps one key event onto editor, history, scroll, or session
// actions. Edits snap the view back to the bottom; pure navigation does not.
func (s *Session) handleKey(ev hal.KeyEvent) {
	if ev.Code == hal.KeyRune && ev.Mod&hal.ModCtrl != 0 {
		s.handleCtrl(ev.Rune)
		return
	}

	switch ev.Code {
	case hal.KeyRune:
		if ev.Rune >= ' ' {
			s.ed.InsertRune(ev.Rune)
			s.onEdit()
		}

	case hal.KeyEnter:
		s.submit()

	case hal.KeyBackspace:
		if s.ed.Backspace() {
			s.onEdit()
		}

	case hal.KeyDelete:
		if s.ed.DeleteForward() {
			s.onEdit()
		}

	case hal.KeyTab:
		s.completeAtCursor()

	case hal.KeyLeft:
		if ev.Mod&hal.ModCtrl != 0 {
			s.ed.WordLeft()
		} else {
			s.ed.MoveCursor(s.ed.Cursor() - 1)
		}
		s.redrawPrompt()

	case hal.KeyRight:
		if ev.Mod&hal.ModCtrl != 0 {
			s.ed.WordRight()
		} else {
			s.ed.MoveCursor(s.ed.Cursor() + 1)
		}
		s.redrawPrompt()

	case hal.KeyHome:
		s.ed.Home()
		s.redrawPrompt()

	case hal.KeyEnd:
		s.ed.End()
		s.redrawPrompt()

	case hal.KeyUp:
		if s.ed.HistoryUp() {
			s.onEdit()
		}

	case hal.KeyDown:
		if s.ed.HistoryDown() {
			s.onEdit()
		}

	case hal.KeyPageUp:
		s.scroll.Off += maxInt(1, s.scroll.Page)

	case hal.KeyPageDown:
		s.scroll.Off -= maxInt(1, s.scroll.Page)

	case hal.KeyEscape:
		s.ed.ClearLine()
		s.onEdit()
	}
}

func (s *Session) handleCtrl(r rune) {
	switch r {
	case 'u':
		s.ed.ClearLine()
		s.onEdit()
	case 'l':
		s.cmdClear("")
		s.onEdit()
	case 'q':
		s.closing = true
	case 'c':
		if input := s.ed.Input(); input != "" {
			if err := s.clip.WriteText(input); err != nil {
				s.log.WithError(err).Warn("clipboard write failed")
			}
		}
	case 'v':
		if err := s.cmdPaste(""); err != nil {
			s.log.WithError(err).Warn("clipboard read failed")
		} else {
			s.onEdit()
		}
	}
}

// onEdit re-renders the prompt line and snaps the viewport to the bottom.
func (s *Session) onEdit() {
	s.redrawPrompt()
	s.scroll.Off = 0
}

// completeAtCursor runs tab completion. A unique or exact match rewrites
// the input in place; an ambiguous one freezes the current prompt line,
// lists the candidates, and redraws the same input below them.
func (s *Session) completeAtCursor() {
	c := Complete(s.ed.Input(), s.ed.Cursor(), s.host.Globals())
	switch {
	case c.Replaced:
		s.ed.SetWithCursor(c.Text, c.Cursor)
		s.onEdit()
	case len(c.Candidates) > 0:
		s.finalizePromptLine()
		for _, cand := range c.Candidates {
			s.print(cand, s.pal.Text)
		}
		s.onEdit()
	}
}
