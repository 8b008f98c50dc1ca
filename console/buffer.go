package console

import (
	"image/color"
	"strings"

	"flint/hal"
)

// LogicalBuffer is the append-only transcript model before wrapping. The
// trailing segments past the last newline form the live prompt line, which
// is rebuilt atomically; everything before it is settled history.
type LogicalBuffer struct {
	segs  []Segment
	lines int
	max   int
	gen   uint64
}

// NewLogicalBuffer returns a buffer capped at max completed lines.
func NewLogicalBuffer(max int) *LogicalBuffer {
	if max < 1 {
		max = 1
	}
	return &LogicalBuffer{max: max}
}

// PushLine appends text as one or more runs, inserting a hard newline
// between physical lines. Pushing empty text is a broken internal contract.
func (b *LogicalBuffer) PushLine(text string, f hal.Font, fg, bg color.RGBA) {
	if text == "" {
		panic("console: push of empty transcript text")
	}
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			b.Newline()
		}
		if part == "" {
			continue
		}
		b.segs = append(b.segs, Segment{Kind: SegText, Text: part, Font: f, FG: fg, BG: bg})
	}
	b.gen++
}

// PushCursor appends the caret marker to the current line.
func (b *LogicalBuffer) PushCursor() {
	b.segs = append(b.segs, Segment{Kind: SegCursor})
	b.gen++
}

// Newline completes the current line. When the buffer is full the oldest
// logical line is evicted first, in one FIFO step.
func (b *LogicalBuffer) Newline() {
	if b.lines+1 > b.max {
		b.evictOldest()
	}
	b.segs = append(b.segs, Segment{Kind: SegNewline})
	b.lines++
	b.gen++
}

func (b *LogicalBuffer) evictOldest() {
	for i, sg := range b.segs {
		if sg.Kind == SegNewline {
			b.segs = append(b.segs[:0], b.segs[i+1:]...)
			b.lines--
			return
		}
	}
	// No completed line to evict; drop the dangling content.
	b.segs = b.segs[:0]
}

// TruncateToLastNewline removes the trailing segments back to, but not
// including, the most recent newline. The session uses it to replace the
// live prompt line instead of duplicating it.
func (b *LogicalBuffer) TruncateToLastNewline() {
	for i := len(b.segs) - 1; i >= 0; i-- {
		if b.segs[i].Kind == SegNewline {
			b.segs = b.segs[:i+1]
			b.gen++
			return
		}
	}
	b.segs = b.segs[:0]
	b.gen++
}

// Clear drops the whole transcript.
func (b *LogicalBuffer) Clear() {
	b.segs = b.segs[:0]
	b.lines = 0
	b.gen++
}

// Text flattens the settled transcript (everything up to the last newline)
// into plain text.
func (b *LogicalBuffer) Text() string {
	var sb strings.Builder
	var pending strings.Builder
	for _, sg := range b.segs {
		switch sg.Kind {
		case SegText:
			pending.WriteString(sg.Text)
		case SegNewline:
			sb.WriteString(pending.String())
			sb.WriteByte('\n')
			pending.Reset()
		}
	}
	return sb.String()
}

// Segments exposes the raw sequence for the layout engine. Callers must not
// mutate it.
func (b *LogicalBuffer) Segments() []Segment { return b.segs }

// Lines is the number of completed logical lines.
func (b *LogicalBuffer) Lines() int { return b.lines }

// Gen increments on every mutation; cached wraps compare against it.
func (b *LogicalBuffer) Gen() uint64 { return b.gen }
