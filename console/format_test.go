package console

import (
	"testing"

	"flint/script"
)

func testFormatter() Formatter {
	return Formatter{MaxDepth: 3, Inline: 5, Pal: DefaultPalette()}
}

func TestFormat_Scalars(t *testing.T) {
	f := testFormatter()
	tcs := []struct {
		name string
		v    script.Value
		want string
	}{
		{name: "nil", v: script.Nil(), want: "null"},
		{name: "true", v: script.Bool(true), want: "true"},
		{name: "int", v: script.Number(42), want: "42"},
		{name: "float", v: script.Number(1.5), want: "1.5"},
		{name: "string", v: script.String("hi"), want: `"hi"`},
		{name: "callable", v: script.Callable("function"), want: "<function>"},
	}
	for _, tc := range tcs {
		if got := ChunksText(f.Value(tc.v)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFormat_StringEscapes(t *testing.T) {
	f := testFormatter()
	got := ChunksText(f.Value(script.String("he said \"hi\"\nback\\slash")))
	want := `"he said \"hi\"\nback\\slash"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormat_Array(t *testing.T) {
	f := testFormatter()
	v := script.Array(script.Number(1), script.Number(2), script.Number(3))
	if got := ChunksText(f.Value(v)); got != "[1, 2, 3]" {
		t.Fatalf("got %q, want %q", got, "[1, 2, 3]")
	}
}

func TestFormat_InlineMap(t *testing.T) {
	f := testFormatter()
	v := script.Map(
		script.Pair{Key: "a", Val: script.Number(1)},
		script.Pair{Key: "b", Val: script.String("x")},
	)
	if got := ChunksText(f.Value(v)); got != `{a=1, b="x"}` {
		t.Fatalf("got %q, want %q", got, `{a=1, b="x"}`)
	}
}

func TestFormat_MultilineMap(t *testing.T) {
	f := testFormatter()
	f.Inline = 2
	v := script.Map(
		script.Pair{Key: "a", Val: script.Number(1)},
		script.Pair{Key: "b", Val: script.Number(2)},
		script.Pair{Key: "c", Val: script.Number(3)},
	)
	want := "{\n  a=1,\n  b=2,\n  c=3\n}"
	if got := ChunksText(f.Value(v)); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormat_DepthElision(t *testing.T) {
	f := testFormatter()
	v := script.Array(script.Array(script.Array(script.Array(script.Number(1)))))
	if got := ChunksText(f.Value(v)); got != "[[[…]]]" {
		t.Fatalf("got %q, want %q", got, "[[[…]]]")
	}
}

func TestFormat_ValuesWrapsSeveral(t *testing.T) {
	f := testFormatter()
	chunks := f.Values([]script.Value{script.Number(1), script.Number(2)})
	if got := ChunksText(chunks); got != "[1, 2]" {
		t.Fatalf("got %q, want %q", got, "[1, 2]")
	}
	if f.Values(nil) != nil {
		t.Fatalf("no values should format to nothing")
	}
}

func TestFormat_ErrorColorKinds(t *testing.T) {
	f := testFormatter()
	chunks := f.Value(script.String("s"))
	if len(chunks) != 1 || chunks[0].Color != f.Pal.String {
		t.Fatalf("string chunk color mismatch")
	}
	chunks = f.Value(script.Nil())
	if chunks[0].Color != f.Pal.Nil {
		t.Fatalf("nil chunk color mismatch")
	}
}
