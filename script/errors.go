package script

import "errors"

// CompileError means the source parsed neither as an expression nor as a
// statement sequence. It is user-visible and non-fatal.
type CompileError struct {
	Msg        string
	incomplete bool
}

func (e *CompileError) Error() string { return e.Msg }

// Incomplete reports whether the failure means "more input expected". The
// evaluator uses it to enter continuation instead of reporting an error.
func (e *CompileError) Incomplete() bool { return e.incomplete }

// RuntimeError means successfully compiled code raised during execution.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return e.Msg }

// IsIncomplete reports whether err is a compile failure of the
// incomplete-input class.
func IsIncomplete(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce) && ce.Incomplete()
}
