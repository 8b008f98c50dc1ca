package console

import (
	"sort"
	"strings"

	"flint/script"
)

// Completion is the result of a completion request. Either Replaced is set
// with the new input/caret, or Candidates lists the ambiguous matches, or
// neither (nothing to complete).
type Completion struct {
	Replaced   bool
	Text       string
	Cursor     int
	Candidates []string
}

// Complete matches the text before the caret against globals. A trailing
// `ident '.' prefix` pattern resolves ident to a nested namespace first; a
// member that is not table-like aborts silently. Otherwise a trailing bare
// prefix matches the globals themselves.
//
// An exact case-insensitive key match wins; failing that a unique prefix
// match wins; two or more matches are listed sorted and the input is left
// alone.
func Complete(input string, cursor int, globals script.Table) Completion {
	runes := []rune(input)
	cursor = clamp(cursor, 0, len(runes))

	p0 := cursor
	for p0 > 0 && isWordRune(runes[p0-1]) {
		p0--
	}
	prefix := string(runes[p0:cursor])

	table := globals
	dotted := false
	if p0 > 0 && runes[p0-1] == '.' {
		i0 := p0 - 1
		for i0 > 0 && isWordRune(runes[i0-1]) {
			i0--
		}
		if left := string(runes[i0 : p0-1]); left != "" {
			child, ok := globals.Child(left)
			if !ok {
				return Completion{}
			}
			table = child
			dotted = true
		}
	}
	if prefix == "" && !dotted {
		return Completion{}
	}

	lower := strings.ToLower(prefix)
	var matches []string
	exact := ""
	for _, k := range table.Keys() {
		kl := strings.ToLower(k)
		if !strings.HasPrefix(kl, lower) {
			continue
		}
		matches = append(matches, k)
		if exact == "" && kl == lower {
			exact = k
		}
	}
	if len(matches) == 0 {
		return Completion{}
	}

	resolution := exact
	if resolution == "" && len(matches) == 1 {
		resolution = matches[0]
	}
	if resolution == "" {
		sort.Slice(matches, func(i, j int) bool {
			return strings.ToLower(matches[i]) < strings.ToLower(matches[j])
		})
		return Completion{Candidates: matches}
	}

	res := []rune(resolution)
	out := make([]rune, 0, len(runes)-(cursor-p0)+len(res))
	out = append(out, runes[:p0]...)
	out = append(out, res...)
	out = append(out, runes[cursor:]...)
	return Completion{
		Replaced: true,
		Text:     string(out),
		Cursor:   p0 + len(res),
	}
}
