package console

import (
	"image/color"
	"testing"

	"flint/hal"
)

var (
	testFont = hal.Font{Height: 18, Offset: 13}
	testFG   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	testBG   = color.RGBA{A: 0xFF}
)

func pushN(b *LogicalBuffer, n int) {
	for i := 0; i < n; i++ {
		b.PushLine("line", testFont, testFG, testBG)
		b.Newline()
	}
}

func TestBuffer_EvictsOldestAtCap(t *testing.T) {
	b := NewLogicalBuffer(3)
	b.PushLine("first", testFont, testFG, testBG)
	b.Newline()
	pushN(b, 3)

	if b.Lines() != 3 {
		t.Fatalf("lines=%d, want 3", b.Lines())
	}
	if got := b.Text(); got != "line\nline\nline\n" {
		t.Fatalf("text=%q, first line not evicted", got)
	}
}

func TestBuffer_CapHoldsUnderRepeatedPush(t *testing.T) {
	b := NewLogicalBuffer(5)
	pushN(b, 50)
	if b.Lines() != 5 {
		t.Fatalf("lines=%d, want 5", b.Lines())
	}
}

func TestBuffer_PushLineSplitsOnNewline(t *testing.T) {
	b := NewLogicalBuffer(10)
	b.PushLine("a\nb", testFont, testFG, testBG)
	if b.Lines() != 1 {
		t.Fatalf("lines=%d, want 1 (only the embedded newline completed)", b.Lines())
	}
	b.Newline()
	if got := b.Text(); got != "a\nb\n" {
		t.Fatalf("text=%q, want %q", got, "a\nb\n")
	}
}

func TestBuffer_PushEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("push of empty text did not panic")
		}
	}()
	NewLogicalBuffer(10).PushLine("", testFont, testFG, testBG)
}

func TestBuffer_TruncateToLastNewline(t *testing.T) {
	b := NewLogicalBuffer(10)
	b.PushLine("settled", testFont, testFG, testBG)
	b.Newline()
	b.PushLine("prompt", testFont, testFG, testBG)
	b.PushCursor()

	b.TruncateToLastNewline()
	segs := b.Segments()
	if len(segs) != 2 {
		t.Fatalf("segments=%d, want 2 (text + newline)", len(segs))
	}
	if segs[len(segs)-1].Kind != SegNewline {
		t.Fatalf("last segment kind=%v, want newline", segs[len(segs)-1].Kind)
	}
}

func TestBuffer_TruncateWithoutNewlineDropsAll(t *testing.T) {
	b := NewLogicalBuffer(10)
	b.PushLine("dangling", testFont, testFG, testBG)
	b.TruncateToLastNewline()
	if len(b.Segments()) != 0 {
		t.Fatalf("segments=%d, want 0", len(b.Segments()))
	}
}

func TestBuffer_TextExcludesPromptLine(t *testing.T) {
	b := NewLogicalBuffer(10)
	b.PushLine("done", testFont, testFG, testBG)
	b.Newline()
	b.PushLine("> live", testFont, testFG, testBG)
	if got := b.Text(); got != "done\n" {
		t.Fatalf("text=%q, want %q", got, "done\n")
	}
}

func TestBuffer_ClearResetsEverything(t *testing.T) {
	b := NewLogicalBuffer(10)
	pushN(b, 4)
	gen := b.Gen()
	b.Clear()
	if b.Lines() != 0 || len(b.Segments()) != 0 {
		t.Fatalf("lines=%d segs=%d after clear", b.Lines(), len(b.Segments()))
	}
	if b.Gen() == gen {
		t.Fatalf("gen did not advance on clear")
	}
}
