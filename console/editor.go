package console

// Editor owns the raw input line, the caret, and submit history. It knows
// nothing about rendering; the session re-renders the prompt line after
// every mutation.
//
// hist[0] is a sentinel slot holding the live edit saved when history
// navigation begins; entries follow most recent first. hindex 0 means the
// live edit is displayed.
type Editor struct {
	input  []rune
	cursor int
	hist   []string
	hindex int
}

func NewEditor() Editor {
	return Editor{hist: []string{""}}
}

func (e *Editor) Input() string { return string(e.input) }
func (e *Editor) Cursor() int   { return e.cursor }

// Set replaces the input and puts the caret at the end.
func (e *Editor) Set(s string) {
	e.input = []rune(s)
	e.cursor = len(e.input)
}

// SetWithCursor replaces the input and places the caret, clamped.
func (e *Editor) SetWithCursor(s string, cursor int) {
	e.input = []rune(s)
	e.cursor = clamp(cursor, 0, len(e.input))
}

func (e *Editor) InsertRune(r rune) {
	e.input = append(e.input, 0)
	copy(e.input[e.cursor+1:], e.input[e.cursor:])
	e.input[e.cursor] = r
	e.cursor++
}

func (e *Editor) InsertString(s string) {
	for _, r := range s {
		e.InsertRune(r)
	}
}

func (e *Editor) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	e.input = append(e.input[:e.cursor], e.input[e.cursor+1:]...)
	return true
}

func (e *Editor) DeleteForward() bool {
	if e.cursor >= len(e.input) {
		return false
	}
	e.input = append(e.input[:e.cursor], e.input[e.cursor+1:]...)
	return true
}

// MoveCursor places the caret at pos. An out-of-range request is a no-op,
// not a clamp.
func (e *Editor) MoveCursor(pos int) bool {
	if pos < 0 || pos > len(e.input) {
		return false
	}
	e.cursor = pos
	return true
}

func (e *Editor) Home() { e.cursor = 0 }
func (e *Editor) End()  { e.cursor = len(e.input) }

func (e *Editor) ClearLine() {
	e.input = e.input[:0]
	e.cursor = 0
}

// SplitAtCursor returns the text before and after the caret.
func (e *Editor) SplitAtCursor() (string, string) {
	return string(e.input[:e.cursor]), string(e.input[e.cursor:])
}

// WordLeft jumps over a run of separators and then the word before it.
func (e *Editor) WordLeft() {
	i := e.cursor
	for i > 0 && !isWordRune(e.input[i-1]) {
		i--
	}
	for i > 0 && isWordRune(e.input[i-1]) {
		i--
	}
	e.cursor = i
}

// WordRight jumps over a run of separators and then the word after it.
func (e *Editor) WordRight() {
	i := e.cursor
	for i < len(e.input) && !isWordRune(e.input[i]) {
		i++
	}
	for i < len(e.input) && isWordRune(e.input[i]) {
		i++
	}
	e.cursor = i
}

// HistoryAdd records a submitted input as the newest entry and drops back
// to the live edit.
func (e *Editor) HistoryAdd(s string) {
	e.hist = append(e.hist, "")
	copy(e.hist[2:], e.hist[1:])
	e.hist[1] = s
	e.hist[0] = ""
	e.hindex = 0
}

// HistoryUp steps toward older entries, saving the live edit into the
// sentinel slot on the first step. Past the oldest entry it is a no-op.
func (e *Editor) HistoryUp() bool {
	if e.hindex+1 >= len(e.hist) {
		return false
	}
	if e.hindex == 0 {
		e.hist[0] = string(e.input)
	}
	e.hindex++
	e.Set(e.hist[e.hindex])
	return true
}

// HistoryDown steps toward newer entries; moving past the newest restores
// the saved live edit. At the live edit it is a no-op.
func (e *Editor) HistoryDown() bool {
	if e.hindex == 0 {
		return false
	}
	e.hindex--
	e.Set(e.hist[e.hindex])
	return true
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_' || r == '$':
		return true
	}
	return false
}
