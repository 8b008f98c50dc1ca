// Package script defines the host scripting capability the console consumes:
// a compile/invoke surface, a namespace view for completion, and a closed
// value variant the formatter renders.
package script

import "strconv"

// Kind tags the closed value variant.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	// KindCallable covers functions and opaque host handles; only a type
	// tag survives conversion.
	KindCallable
	KindArray
	KindMap
)

// Pair is one map member. Order is the namespace iteration order.
type Pair struct {
	Key string
	Val Value
}

// Value is a converted script value. It is a snapshot: mutating the host
// value afterwards does not change it.
type Value struct {
	kind  Kind
	b     bool
	num   float64
	str   string
	elems []Value
	pairs []Pair
}

func Nil() Value              { return Value{kind: KindNil} }
func Bool(b bool) Value       { return Value{kind: KindBool, b: b} }
func Number(f float64) Value  { return Value{kind: KindNumber, num: f} }
func String(s string) Value   { return Value{kind: KindString, str: s} }
func Callable(tag string) Value { return Value{kind: KindCallable, str: tag} }

func Array(elems ...Value) Value {
	return Value{kind: KindArray, elems: elems}
}

func Map(pairs ...Pair) Value {
	return Value{kind: KindMap, pairs: pairs}
}

// FromPairs classifies pairs: keys forming exactly the dense integer range
// 1..N become an array (ordered by index); any other key, or a gap, keeps
// the value a map.
func FromPairs(pairs []Pair) Value {
	if len(pairs) == 0 {
		return Map()
	}
	elems := make([]Value, len(pairs))
	seen := make([]bool, len(pairs))
	for _, p := range pairs {
		n, err := strconv.Atoi(p.Key)
		if err != nil || n < 1 || n > len(pairs) || seen[n-1] {
			return Map(pairs...)
		}
		seen[n-1] = true
		elems[n-1] = p.Val
	}
	return Array(elems...)
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) AsBool() bool   { return v.b }
func (v Value) Num() float64   { return v.num }
func (v Value) Str() string    { return v.str }
func (v Value) Tag() string    { return v.str }
func (v Value) Elems() []Value { return v.elems }
func (v Value) Pairs() []Pair  { return v.pairs }
