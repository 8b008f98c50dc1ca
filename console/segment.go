// Package console implements the interactive script console: transcript
// buffers, pixel word-wrap, scrollback, line editing, evaluation with
// statement continuation, and completion. It draws through the hal.Canvas
// capability and evaluates through the script.Host capability.
package console

import (
	"image/color"

	"flint/hal"
)

// SegmentKind tags the segment variant.
type SegmentKind uint8

const (
	SegText SegmentKind = iota
	// SegNewline is a hard line break recorded in the transcript.
	SegNewline
	// SegBreak is a soft break the layout engine inserts when a run
	// overflows the viewport. It never appears in a LogicalBuffer.
	SegBreak
	// SegCursor marks the caret position inside the prompt line.
	SegCursor
)

// Segment is the primitive unit of both buffers. W and H stay zero until
// the layout engine measures the segment against a concrete viewport.
type Segment struct {
	Kind SegmentKind
	Text string
	Font hal.Font
	FG   color.RGBA
	BG   color.RGBA
	W    int
	H    int
}
