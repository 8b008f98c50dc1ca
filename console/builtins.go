package console

import "fmt"

func (s *Session) initBuiltins() error {
	s.reg = newRegistry()
	cmds := []command{
		{Name: "clear", Desc: "Reset the transcript; input and history survive.", Run: (*Session).cmdClear},
		{Name: "exit", Desc: "Close the console.", Run: (*Session).cmdExit},
		{Name: "help", Desc: "List available commands.", Run: (*Session).cmdHelp},
		{Name: "copy", Desc: "Copy the transcript to the clipboard.", Run: (*Session).cmdCopy},
		{Name: "paste", Desc: "Insert clipboard text at the caret.", Run: (*Session).cmdPaste},
		{Name: "", Desc: "Repeat the last submitted input.", Run: (*Session).cmdRepeat},
	}
	for _, cmd := range cmds {
		if err := s.reg.register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// cmdClear also discards a pending multi-line continuation: there is no
// other way to abandon one.
func (s *Session) cmdClear(string) error {
	s.buf.Clear()
	s.prepend = ""
	s.scroll.Off = 0
	return nil
}

func (s *Session) cmdExit(string) error {
	s.closing = true
	return nil
}

func (s *Session) cmdHelp(string) error {
	for _, name := range s.reg.names() {
		cmd, _ := s.reg.resolve(name)
		s.print(fmt.Sprintf("%s%-8s %s", s.cmdPrefix, name, cmd.Desc), s.pal.Text)
	}
	if cmd, ok := s.reg.resolve(""); ok {
		s.print(fmt.Sprintf("%-9s %s", s.cmdPrefix, cmd.Desc), s.pal.Text)
	}
	return nil
}

func (s *Session) cmdCopy(string) error {
	if err := s.clip.WriteText(s.buf.Text()); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	return nil
}

func (s *Session) cmdPaste(string) error {
	text, err := s.clip.ReadText()
	if err != nil {
		return fmt.Errorf("clipboard read: %w", err)
	}
	s.ed.InsertString(sanitizePaste(text))
	return nil
}

func (s *Session) cmdRepeat(string) error {
	if s.lastInput == "" {
		return nil
	}
	s.dispatch(s.lastInput)
	return nil
}
