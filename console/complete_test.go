package console

import (
	"reflect"
	"testing"

	"flint/script"
)

// fakeTable is an ordered in-memory namespace.
type fakeTable struct {
	keys     []string
	children map[string]*fakeTable
}

func (t *fakeTable) Keys() []string { return t.keys }

func (t *fakeTable) Child(name string) (script.Table, bool) {
	c, ok := t.children[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func testGlobals() *fakeTable {
	return &fakeTable{
		keys: []string{"print", "parse", "Math", "value", "foo", "foobar"},
		children: map[string]*fakeTable{
			"Math": {keys: []string{"abs", "atan", "floor"}},
		},
	}
}

func TestComplete_UniqueMatchReplaces(t *testing.T) {
	c := Complete("va", 2, testGlobals())
	if !c.Replaced {
		t.Fatalf("unique prefix did not replace")
	}
	if c.Text != "value" || c.Cursor != 5 {
		t.Fatalf("text=%q cursor=%d, want value 5", c.Text, c.Cursor)
	}
}

func TestComplete_MidLineKeepsSuffix(t *testing.T) {
	// Caret after "va" with trailing text; only the word is replaced.
	c := Complete("va + 1", 2, testGlobals())
	if !c.Replaced || c.Text != "value + 1" || c.Cursor != 5 {
		t.Fatalf("got %+v, want value spliced before suffix", c)
	}
}

func TestComplete_AmbiguousListsSorted(t *testing.T) {
	c := Complete("p", 1, testGlobals())
	if c.Replaced {
		t.Fatalf("ambiguous prefix must not rewrite the input")
	}
	if want := []string{"parse", "print"}; !reflect.DeepEqual(c.Candidates, want) {
		t.Fatalf("candidates=%v, want %v", c.Candidates, want)
	}
}

func TestComplete_SharedPrefixAmbiguous(t *testing.T) {
	c := Complete("fo", 2, testGlobals())
	if c.Replaced {
		t.Fatalf("shared prefix must not auto-resolve")
	}
	if want := []string{"foo", "foobar"}; !reflect.DeepEqual(c.Candidates, want) {
		t.Fatalf("candidates=%v, want %v", c.Candidates, want)
	}
}

func TestComplete_ExactMatchBeatsLonger(t *testing.T) {
	c := Complete("foo", 3, testGlobals())
	if !c.Replaced || c.Text != "foo" {
		t.Fatalf("got %+v, want exact match foo despite foobar", c)
	}
}

func TestComplete_CaseInsensitiveKeepsCanonical(t *testing.T) {
	c := Complete("ma", 2, testGlobals())
	if !c.Replaced || c.Text != "Math" {
		t.Fatalf("text=%q, want canonical Math", c.Text)
	}
}

func TestComplete_DottedMember(t *testing.T) {
	c := Complete("Math.fl", 7, testGlobals())
	if !c.Replaced || c.Text != "Math.floor" || c.Cursor != 10 {
		t.Fatalf("got %+v, want Math.floor", c)
	}
}

func TestComplete_DottedEmptyPrefixListsAll(t *testing.T) {
	c := Complete("Math.", 5, testGlobals())
	if c.Replaced {
		t.Fatalf("empty member prefix with several members must not replace")
	}
	if want := []string{"abs", "atan", "floor"}; !reflect.DeepEqual(c.Candidates, want) {
		t.Fatalf("candidates=%v, want %v", c.Candidates, want)
	}
}

func TestComplete_NonCompositeAbortsSilently(t *testing.T) {
	c := Complete("value.fl", 8, testGlobals())
	if c.Replaced || c.Candidates != nil {
		t.Fatalf("got %+v, want silent no-op", c)
	}
}

func TestComplete_BareEmptyPrefixNoOp(t *testing.T) {
	c := Complete("", 0, testGlobals())
	if c.Replaced || c.Candidates != nil {
		t.Fatalf("got %+v, want no-op on empty input", c)
	}
}

func TestComplete_NoMatch(t *testing.T) {
	c := Complete("zzz", 3, testGlobals())
	if c.Replaced || c.Candidates != nil {
		t.Fatalf("got %+v, want no-op", c)
	}
}
