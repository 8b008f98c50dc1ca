package console

import "testing"

func TestEditor_InsertAtCursor(t *testing.T) {
	e := NewEditor()
	e.Set("held")
	e.MoveCursor(2)
	e.InsertRune('l')
	if got := e.Input(); got != "helld" {
		t.Fatalf("input=%q, want %q", got, "helld")
	}
	if e.Cursor() != 3 {
		t.Fatalf("cursor=%d, want 3", e.Cursor())
	}
}

func TestEditor_BackspaceDeleteAtEdges(t *testing.T) {
	e := NewEditor()
	e.Set("ab")
	e.MoveCursor(0)
	if e.Backspace() {
		t.Fatalf("backspace at start should be a no-op")
	}
	e.End()
	if e.DeleteForward() {
		t.Fatalf("delete at end should be a no-op")
	}
	if e.Input() != "ab" {
		t.Fatalf("input=%q, edge ops must not mutate", e.Input())
	}
}

func TestEditor_MoveCursorOutOfRangeIsNoOp(t *testing.T) {
	e := NewEditor()
	e.Set("abc")
	if e.MoveCursor(4) || e.MoveCursor(-1) {
		t.Fatalf("out-of-range move reported success")
	}
	if e.Cursor() != 3 {
		t.Fatalf("cursor=%d, want unchanged 3", e.Cursor())
	}
}

func TestEditor_WordMotion(t *testing.T) {
	e := NewEditor()
	e.Set("foo.bar  baz$1")
	e.End()
	e.WordLeft()
	if e.Cursor() != 9 {
		t.Fatalf("word-left cursor=%d, want 9 (start of baz$1)", e.Cursor())
	}
	e.WordLeft()
	if e.Cursor() != 4 {
		t.Fatalf("word-left cursor=%d, want 4 (start of bar)", e.Cursor())
	}
	e.Home()
	e.WordRight()
	if e.Cursor() != 3 {
		t.Fatalf("word-right cursor=%d, want 3 (end of foo)", e.Cursor())
	}
	e.WordRight()
	if e.Cursor() != 7 {
		t.Fatalf("word-right cursor=%d, want 7 (end of bar)", e.Cursor())
	}
}

func TestEditor_SplitAtCursor(t *testing.T) {
	e := NewEditor()
	e.Set("abcd")
	e.MoveCursor(1)
	before, after := e.SplitAtCursor()
	if before != "a" || after != "bcd" {
		t.Fatalf("split=%q|%q, want a|bcd", before, after)
	}
}

func TestEditor_HistoryWalk(t *testing.T) {
	e := NewEditor()
	for _, s := range []string{"a", "b", "c"} {
		e.Set(s)
		e.HistoryAdd(s)
		e.Set("")
	}
	e.Set("draft")

	steps := []struct {
		up   bool
		want string
	}{
		{up: true, want: "c"},
		{up: true, want: "b"},
		{up: true, want: "a"},
		{up: true, want: "a"}, // past the oldest: no-op
		{up: false, want: "b"},
		{up: false, want: "c"},
		{up: false, want: "draft"}, // back to the live edit
	}
	for i, st := range steps {
		if st.up {
			e.HistoryUp()
		} else {
			e.HistoryDown()
		}
		if got := e.Input(); got != st.want {
			t.Fatalf("step %d: input=%q, want %q", i, got, st.want)
		}
	}
	if e.HistoryDown() {
		t.Fatalf("history-down at live edit should be a no-op")
	}
}

func TestEditor_HistoryAddResetsWalk(t *testing.T) {
	e := NewEditor()
	e.Set("old")
	e.HistoryAdd("old")
	e.Set("")
	e.HistoryUp()
	e.HistoryAdd("new")
	e.Set("")
	e.HistoryUp()
	if got := e.Input(); got != "new" {
		t.Fatalf("input=%q, want newest entry %q", got, "new")
	}
}
