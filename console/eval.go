package console

import (
	"fmt"
	"strings"

	"flint/script"
)

// lastBinding is the name later evaluations can use to reach the most
// recent result.
const lastBinding = "_"

// UnknownCommandError reports a command-prefixed name with no built-in
// behind it. User-visible and recoverable.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// submit consumes the current input line: echo it into the transcript,
// record history, dispatch, and start a fresh prompt line.
func (s *Session) submit() {
	input := s.ed.Input()
	s.finalizePromptLine()
	if strings.TrimSpace(input) != "" {
		s.ed.HistoryAdd(input)
	}
	s.ed.Set("")
	s.scroll.Off = 0
	s.dispatch(input)
	s.redrawPrompt()
}

func (s *Session) dispatch(input string) {
	trimmed := strings.TrimSpace(input)
	repeat := trimmed == s.cmdPrefix
	if trimmed != "" && !repeat {
		s.lastInput = input
	}

	if strings.HasPrefix(trimmed, s.cmdPrefix) {
		s.runCommand(strings.TrimSpace(trimmed[len(s.cmdPrefix):]))
		return
	}
	if trimmed == "" && s.prepend == "" {
		return
	}
	s.evaluate(input)
}

// runCommand resolves rest as `name [arg]`. Built-ins never reach the
// compiler.
func (s *Session) runCommand(rest string) {
	name, arg := rest, ""
	if i := strings.IndexByte(rest, ' '); i >= 0 {
		name, arg = rest[:i], strings.TrimSpace(rest[i+1:])
	}
	cmd, ok := s.reg.resolve(name)
	if !ok {
		s.printError(&UnknownCommandError{Name: name})
		return
	}
	if err := cmd.Run(s, arg); err != nil {
		s.printError(err)
	}
}

// evaluate runs input through the two-state machine: join a pending
// continuation, compile as expression then as statements, and either enter
// continuation, report, or execute.
func (s *Session) evaluate(input string) {
	code := input
	if s.prepend != "" {
		code = s.prepend + "\n" + input
	}

	prog, errExpr := s.host.CompileExpression(code)
	if errExpr != nil {
		var errStmt error
		prog, errStmt = s.host.CompileStatements(code)
		if errStmt != nil {
			if script.IsIncomplete(errStmt) || script.IsIncomplete(errExpr) {
				// More input expected: hold the source and switch to the
				// continuation prompt. Nothing is reported.
				s.prepend = code
				return
			}
			s.prepend = ""
			s.printError(errStmt)
			return
		}
	}
	s.prepend = ""

	vals, err := s.host.Invoke(prog)
	if err != nil {
		s.printError(err)
		return
	}
	s.host.BindLast(lastBinding)
	if chunks := s.form.Values(vals); len(chunks) > 0 {
		s.printChunks(chunks)
	}
	s.host.AfterEval()
}
