package script

// Program is an opaque handle to compiled source, only meaningful to the
// Host that produced it.
type Program interface{}

// Host is the scripting runtime capability. The console never touches the
// runtime directly; everything goes through this surface.
type Host interface {
	// CompileExpression compiles src as an implicit-return expression.
	CompileExpression(src string) (Program, error)
	// CompileStatements compiles src as a bare statement sequence.
	CompileStatements(src string) (Program, error)
	// Invoke executes a compiled program and returns the produced values
	// (possibly none). Execution failures come back as *RuntimeError.
	Invoke(Program) ([]Value, error)
	// BindLast exposes the first value of the most recent value-producing
	// Invoke under name, so later evaluations can reference it.
	BindLast(name string)
	// Globals is the namespace completion matches against.
	Globals() Table
	// AfterEval fires the host's post-evaluation hook. Fire and forget.
	AfterEval()
}

// Table is a read-only view of a namespace for completion.
type Table interface {
	Keys() []string
	// Child resolves name to a nested table, or reports false when the
	// member is absent or not table-like.
	Child(name string) (Table, bool)
}
