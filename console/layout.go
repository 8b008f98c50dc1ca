package console

import "flint/hal"

// Measurer reports the advance width and line height of s in f. The canvas
// provides it; tests substitute a fixed-metric fake.
type Measurer func(f hal.Font, s string) (w, h int)

// Wrapped is the transcript re-flowed to one viewport width. It is a
// disposable projection: any buffer mutation or width change discards it.
type Wrapped struct {
	Segs    []Segment
	Heights []int
	Width   int
	Gen     uint64
}

// Lines is the number of visual lines.
func (w *Wrapped) Lines() int { return len(w.Heights) }

// Wrap projects buf onto width pixels. Runs that overflow the remaining
// space are split: a fast estimate drops roughly the overflowing character
// count, then the split point moves one rune at a time until the prefix
// measures within bounds (proportional fonts make the estimate inexact in
// either direction). The fitted prefix is emitted, a soft break resets the
// line, and the remainder of the run continues on the next visual line.
func Wrap(buf *LogicalBuffer, width int, def hal.Font, measure Measurer) *Wrapped {
	w := &Wrapped{Width: width, Gen: buf.Gen()}
	x := 0
	lineH := 0

	endLine := func() {
		if lineH == 0 {
			_, lineH = measure(def, "")
		}
		w.Heights = append(w.Heights, lineH)
		lineH = 0
		x = 0
	}

	for _, sg := range buf.Segments() {
		switch sg.Kind {
		case SegNewline:
			w.Segs = append(w.Segs, sg)
			endLine()

		case SegCursor:
			w.Segs = append(w.Segs, sg)

		case SegText:
			text := sg.Text
			for text != "" {
				tw, th := measure(sg.Font, text)
				if x+tw <= width {
					out := sg
					out.Text, out.W, out.H = text, tw, th
					w.Segs = append(w.Segs, out)
					if th > lineH {
						lineH = th
					}
					x += tw
					break
				}

				runes := []rune(text)
				cw, _ := measure(sg.Font, "0")
				if cw < 1 {
					cw = 1
				}
				// The estimate can land anywhere when glyphs are much
				// wider or narrower than the reference glyph; keep it in
				// [1, len-1] and refine against real measurements.
				n := len(runes) - (x+tw-width)/cw
				if n > len(runes)-1 {
					n = len(runes) - 1
				}
				if n < 1 {
					n = 1
				}
				pw, _ := measure(sg.Font, string(runes[:n]))
				for n > 1 && x+pw > width {
					n--
					pw, _ = measure(sg.Font, string(runes[:n]))
				}
				for x+pw <= width && n < len(runes)-1 {
					nw, _ := measure(sg.Font, string(runes[:n+1]))
					if x+nw > width {
						break
					}
					n++
					pw = nw
				}
				if x+pw > width {
					if x > 0 {
						// Nothing fits after the current position; wrap
						// and retry from the left margin.
						w.Segs = append(w.Segs, Segment{Kind: SegBreak})
						endLine()
						continue
					}
					// A single glyph wider than the viewport still has
					// to go somewhere.
					n = 1
					pw, _ = measure(sg.Font, string(runes[:1]))
				}

				out := sg
				out.Text, out.W, out.H = string(runes[:n]), pw, th
				w.Segs = append(w.Segs, out)
				if th > lineH {
					lineH = th
				}
				x += pw
				text = string(runes[n:])
				if text == "" {
					// The forced glyph exhausted the run; the line stays
					// open for whatever follows.
					break
				}
				w.Segs = append(w.Segs, Segment{Kind: SegBreak})
				endLine()
			}
		}
	}

	// The trailing prompt line is a visual line even when empty.
	endLine()
	return w
}
