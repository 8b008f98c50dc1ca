package script

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"
)

const sourceName = "console"

// Nested composites deeper than this convert to an opaque tag. The
// formatter truncates earlier anyway; the cap only keeps conversion of
// self-referential host values from recursing forever.
const maxConvertDepth = 8

// Composites with more members than this convert to an opaque tag instead
// of being walked element by element. Conversion runs on the UI tick, so a
// `new Array(1e9)` must not stall it.
const maxConvertElems = 512

// Engine is the goja-backed Host.
type Engine struct {
	vm    *goja.Runtime
	last  goja.Value
	after func()
	print func(string)
}

// NewEngine returns a fresh runtime with the console-side `print` binding
// installed.
func NewEngine() *Engine {
	e := &Engine{vm: goja.New()}
	e.vm.Set("print", func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, a := range call.Arguments {
			parts = append(parts, a.String())
		}
		if e.print != nil {
			e.print(strings.Join(parts, " "))
		}
		return goja.Undefined()
	})
	return e
}

// SetPrinter routes script print() output, usually into the transcript.
func (e *Engine) SetPrinter(fn func(string)) { e.print = fn }

// SetAfterEval installs the post-evaluation hook.
func (e *Engine) SetAfterEval(fn func()) { e.after = fn }

func (e *Engine) CompileExpression(src string) (Program, error) {
	// The newline protects a trailing line comment from eating the paren.
	p, err := goja.Compile(sourceName, "("+src+"\n)", false)
	if err != nil {
		return nil, compileError(err)
	}
	return p, nil
}

func (e *Engine) CompileStatements(src string) (Program, error) {
	p, err := goja.Compile(sourceName, src, false)
	if err != nil {
		return nil, compileError(err)
	}
	return p, nil
}

func (e *Engine) Invoke(p Program) ([]Value, error) {
	prog, ok := p.(*goja.Program)
	if !ok {
		return nil, &RuntimeError{Msg: fmt.Sprintf("foreign program %T", p)}
	}
	v, err := e.vm.RunProgram(prog)
	if err != nil {
		if ex, ok := err.(*goja.Exception); ok {
			return nil, &RuntimeError{Msg: ex.Value().String()}
		}
		return nil, &RuntimeError{Msg: err.Error()}
	}
	if v == nil || goja.IsUndefined(v) {
		// Value-less run: the previous result stays bound.
		return nil, nil
	}
	e.last = v
	return []Value{e.convert(v, 0)}, nil
}

func (e *Engine) BindLast(name string) {
	if e.last == nil {
		e.vm.Set(name, goja.Undefined())
		return
	}
	e.vm.Set(name, e.last)
}

func (e *Engine) Globals() Table {
	return objectTable{obj: e.vm.GlobalObject()}
}

func (e *Engine) AfterEval() {
	if e.after != nil {
		e.after()
	}
}

func (e *Engine) convert(v goja.Value, depth int) Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return Nil()
	}
	if _, ok := goja.AssertFunction(v); ok {
		return Callable("function")
	}
	if obj, ok := v.(*goja.Object); ok {
		if depth >= maxConvertDepth {
			return Callable(obj.ClassName())
		}
		switch obj.ClassName() {
		case "Array":
			n := int(obj.Get("length").ToInteger())
			if n < 0 || n > maxConvertElems {
				return Callable(fmt.Sprintf("Array(%d)", n))
			}
			elems := make([]Value, 0, n)
			for i := 0; i < n; i++ {
				elems = append(elems, e.convert(obj.Get(strconv.Itoa(i)), depth+1))
			}
			return Array(elems...)
		case "Object":
			keys := obj.Keys()
			if len(keys) > maxConvertElems {
				return Callable(fmt.Sprintf("Object(%d keys)", len(keys)))
			}
			pairs := make([]Pair, 0, len(keys))
			for _, k := range keys {
				pairs = append(pairs, Pair{Key: k, Val: e.convert(obj.Get(k), depth+1)})
			}
			return FromPairs(pairs)
		default:
			// Date, RegExp, Error, host handles: keep the class tag.
			return Callable(obj.ClassName())
		}
	}

	switch ev := v.Export().(type) {
	case bool:
		return Bool(ev)
	case string:
		return String(ev)
	case int64:
		return Number(float64(ev))
	case float64:
		return Number(ev)
	default:
		return Callable(fmt.Sprintf("%T", ev))
	}
}

type objectTable struct {
	obj *goja.Object
}

func (t objectTable) Keys() []string { return t.obj.Keys() }

func (t objectTable) Child(name string) (Table, bool) {
	v := t.obj.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, false
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	return objectTable{obj: obj}, true
}

// goja reports parse failures as "SyntaxError: <file>: Line L:C <message>".
// Strip the known prefix by pattern; an unrecognized shape passes through
// unmodified.
var (
	diagPrefix = regexp.MustCompile(`^(?:SyntaxError: )?(?:\S+: )?Line \d+:\d+ `)
	diagSuffix = regexp.MustCompile(` \(and \d+ more errors?\)$`)
)

func compileError(err error) error {
	msg := err.Error()
	incomplete := strings.Contains(msg, "Unexpected end of input")
	if loc := diagPrefix.FindString(msg); loc != "" {
		msg = msg[len(loc):]
	}
	msg = diagSuffix.ReplaceAllString(msg, "")
	return &CompileError{Msg: msg, incomplete: incomplete}
}
