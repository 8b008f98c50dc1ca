package console

import (
	"image/color"
	"strconv"
	"strings"

	"flint/script"
)

// elision replaces composites nested past MaxDepth. The formatter has no
// cycle detection: a self-referential value truncates here instead of
// recursing forever.
const elision = "…"

// Chunk is a colored piece of formatted output.
type Chunk struct {
	Text  string
	Color color.RGBA
}

// Formatter renders script values into colored text. Depth and indent are
// threaded through every call explicitly, so a formatter value is reusable
// and reentrant.
type Formatter struct {
	MaxDepth int
	Inline   int // map member count rendered on one line
	Pal      Palette
}

// Values renders an invoke result: nothing for zero values, the value
// itself for one, and an array-like listing for several.
func (f Formatter) Values(vals []script.Value) []Chunk {
	switch len(vals) {
	case 0:
		return nil
	case 1:
		return f.Value(vals[0])
	default:
		return f.Value(script.Array(vals...))
	}
}

// Value renders a single value.
func (f Formatter) Value(v script.Value) []Chunk {
	var out []Chunk
	f.value(&out, v, 0, 0)
	return out
}

func (f Formatter) value(out *[]Chunk, v script.Value, depth, indent int) {
	switch v.Kind() {
	case script.KindNil:
		f.add(out, "null", f.Pal.Nil)

	case script.KindBool:
		f.add(out, strconv.FormatBool(v.AsBool()), f.Pal.Literal)

	case script.KindNumber:
		f.add(out, strconv.FormatFloat(v.Num(), 'g', -1, 64), f.Pal.Literal)

	case script.KindString:
		f.add(out, quote(v.Str()), f.Pal.String)

	case script.KindCallable:
		f.add(out, "<"+v.Tag()+">", f.Pal.Handle)

	case script.KindArray:
		if depth >= f.MaxDepth {
			f.add(out, elision, f.Pal.Text)
			return
		}
		f.add(out, "[", f.Pal.Text)
		for i, el := range v.Elems() {
			if i > 0 {
				f.add(out, ", ", f.Pal.Text)
			}
			f.value(out, el, depth+1, indent)
		}
		f.add(out, "]", f.Pal.Text)

	case script.KindMap:
		if depth >= f.MaxDepth {
			f.add(out, elision, f.Pal.Text)
			return
		}
		pairs := v.Pairs()
		if len(pairs) <= f.Inline {
			f.add(out, "{", f.Pal.Text)
			for i, p := range pairs {
				if i > 0 {
					f.add(out, ", ", f.Pal.Text)
				}
				f.add(out, p.Key+"=", f.Pal.Text)
				f.value(out, p.Val, depth+1, indent)
			}
			f.add(out, "}", f.Pal.Text)
			return
		}
		pad := strings.Repeat("  ", indent+1)
		f.add(out, "{\n", f.Pal.Text)
		for i, p := range pairs {
			f.add(out, pad+p.Key+"=", f.Pal.Text)
			f.value(out, p.Val, depth+1, indent+1)
			if i < len(pairs)-1 {
				f.add(out, ",", f.Pal.Text)
			}
			f.add(out, "\n", f.Pal.Text)
		}
		f.add(out, strings.Repeat("  ", indent)+"}", f.Pal.Text)
	}
}

func (f Formatter) add(out *[]Chunk, text string, c color.RGBA) {
	*out = append(*out, Chunk{Text: text, Color: c})
}

// quote renders s double-quoted with backslash, quote, and newline escapes.
func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// ChunksText joins chunk text, mostly for tests and clipboard use.
func ChunksText(chunks []Chunk) string {
	var sb strings.Builder
	for _, c := range chunks {
		sb.WriteString(c.Text)
	}
	return sb.String()
}
