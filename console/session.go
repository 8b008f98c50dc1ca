package console

import (
	"image/color"
	"strings"

	"github.com/sirupsen/logrus"

	"flint/hal"
	"flint/script"
)

// Options configures a session. Zero fields fall back to defaults.
type Options struct {
	Font          hal.Font
	Palette       Palette
	Prompt        string
	ContPrompt    string
	CmdPrefix     string
	MaxLines      int
	MaxDepth      int
	InlineMembers int
	WheelLines    int
	Banner        string
	Log           *logrus.Entry
}

// Session is the console: it owns the transcript, the line editor, the
// evaluation state machine, and the per-frame render pass. It is
// single-threaded; the host calls Tick once per frame and nothing else
// touches it concurrently.
type Session struct {
	canvas hal.Canvas
	clip   hal.Clipboard
	host   script.Host
	log    *logrus.Entry

	font hal.Font
	pal  Palette
	form Formatter

	prompt     string
	contPrompt string
	cmdPrefix  string
	wheelLines int

	buf     *LogicalBuffer
	wrapped *Wrapped
	scroll  ScrollState
	ed      Editor
	reg     *registry

	prepend   string
	lastInput string

	tick    int
	closing bool
}

// NewSession wires a console over canvas, clip, and host and draws the
// initial prompt.
func NewSession(canvas hal.Canvas, clip hal.Clipboard, host script.Host, opts Options) (*Session, error) {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.ContPrompt == "" {
		opts.ContPrompt = ".. "
	}
	if opts.CmdPrefix == "" {
		opts.CmdPrefix = "!"
	}
	if opts.MaxLines < 1 {
		opts.MaxLines = 200
	}
	if opts.MaxDepth < 1 {
		opts.MaxDepth = 3
	}
	if opts.InlineMembers < 1 {
		opts.InlineMembers = 5
	}
	if opts.WheelLines < 1 {
		opts.WheelLines = 3
	}
	if opts.Log == nil {
		opts.Log = logrus.NewEntry(logrus.StandardLogger())
	}

	s := &Session{
		canvas:     canvas,
		clip:       clip,
		host:       host,
		log:        opts.Log,
		font:       opts.Font,
		pal:        opts.Palette,
		form:       Formatter{MaxDepth: opts.MaxDepth, Inline: opts.InlineMembers, Pal: opts.Palette},
		prompt:     opts.Prompt,
		contPrompt: opts.ContPrompt,
		cmdPrefix:  opts.CmdPrefix,
		wheelLines: opts.WheelLines,
		buf:        NewLogicalBuffer(opts.MaxLines),
		ed:         NewEditor(),
	}
	if err := s.initBuiltins(); err != nil {
		return nil, err
	}
	if opts.Banner != "" {
		s.print(opts.Banner, s.pal.Text)
	}
	s.redrawPrompt()
	return s, nil
}

// Print routes host-side output (the script's print function) into the
// transcript.
func (s *Session) Print(text string) {
	s.print(text, s.pal.Text)
}

// Closing reports whether the session has been asked to shut down.
func (s *Session) Closing() bool { return s.closing }

// Tick advances the session one frame: drain input, scroll, re-wrap if the
// transcript or viewport changed, render, flush. It returns false once the
// session wants to close.
func (s *Session) Tick() (bool, error) {
	s.tick++

	for {
		ev := s.canvas.PollKey()
		if ev.Code == hal.KeyNone {
			break
		}
		if ev.Code == hal.KeyClosing {
			s.closing = true
			break
		}
		s.handleKey(ev)
	}

	if d := s.canvas.WheelDelta(); d != 0 {
		s.scroll.Off += d * s.wheelLines
	}

	s.render()
	if err := s.canvas.Flush(); err != nil {
		return false, err
	}
	return !s.closing, nil
}

func (s *Session) promptString() string {
	if s.prepend != "" {
		return s.contPrompt
	}
	return s.prompt
}

// redrawPrompt rebuilds the live prompt line from the editor state: prompt,
// text before the caret, the caret marker, text after.
func (s *Session) redrawPrompt() {
	s.buf.TruncateToLastNewline()
	s.buf.PushLine(s.promptString(), s.font, s.pal.Prompt, s.pal.Background)
	before, after := s.ed.SplitAtCursor()
	if before != "" {
		s.buf.PushLine(before, s.font, s.pal.Input, s.pal.Background)
	}
	s.buf.PushCursor()
	if after != "" {
		s.buf.PushLine(after, s.font, s.pal.Input, s.pal.Background)
	}
}

// finalizePromptLine freezes the live prompt line into the transcript, caret
// marker dropped.
func (s *Session) finalizePromptLine() {
	s.buf.TruncateToLastNewline()
	s.buf.PushLine(s.promptString(), s.font, s.pal.Prompt, s.pal.Background)
	if input := s.ed.Input(); input != "" {
		s.buf.PushLine(input, s.font, s.pal.Input, s.pal.Background)
	}
	s.buf.Newline()
}

// print appends one completed transcript line in c. Empty text becomes a
// blank line.
func (s *Session) print(text string, c color.RGBA) {
	if text != "" {
		s.buf.PushLine(text, s.font, c, s.pal.Background)
	}
	s.buf.Newline()
}

// printChunks appends one formatted value as a completed line, colors
// preserved per chunk.
func (s *Session) printChunks(chunks []Chunk) {
	for _, c := range chunks {
		s.buf.PushLine(c.Text, s.font, c.Color, s.pal.Background)
	}
	s.buf.Newline()
}

func (s *Session) printError(err error) {
	s.log.WithError(err).Debug("console error")
	s.print(err.Error(), s.pal.Error)
}

// render reflows the transcript if stale and paints the visible window plus
// caret and scrollbar.
func (s *Session) render() {
	vw, vh := s.canvas.Viewport()
	wrapW := vw - 10
	if wrapW < 1 {
		wrapW = 1
	}
	if s.wrapped == nil || s.wrapped.Width != wrapW || s.wrapped.Gen != s.buf.Gen() {
		s.wrapped = Wrap(s.buf, wrapW, s.font, s.canvas.MeasureText)
	}
	view := s.scroll.Layout(s.wrapped.Heights, vh)

	s.canvas.DrawRect(0, 0, vw, vh, s.pal.Background)

	line := 0
	x, y := 2, 0
	for _, sg := range s.wrapped.Segs {
		visible := line >= view.First && line < view.First+view.Count
		switch sg.Kind {
		case SegText:
			if visible {
				s.canvas.DrawText(x, y, sg.Text, sg.FG, sg.Font)
			}
			x += sg.W
		case SegCursor:
			if visible && s.cursorOn() {
				s.canvas.DrawRect(x, y, 2, s.wrapped.Heights[line], s.pal.Cursor)
			}
		case SegNewline, SegBreak:
			if visible {
				y += s.wrapped.Heights[line]
			}
			line++
			x = 2
		}
	}

	if view.ThumbH < view.TrackH {
		s.canvas.DrawRect(vw-6, 0, 4, vh, s.pal.Scrollbar)
		s.canvas.DrawRect(vw-6, view.ThumbY, 4, view.ThumbH, s.pal.Thumb)
	}
}

func (s *Session) cursorOn() bool {
	return (s.tick/30)%2 == 0
}

// sanitizePaste flattens clipboard text to a single input line.
func sanitizePaste(text string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(text)
}
