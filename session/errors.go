package session

import (
	"errors"
	"fmt"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/desugar"
	"github.com/co-dan/plzoo/parser"
)

// TypingError reports a declaration conflict (the only typing rule an
// untyped calculus has: names are unique).
type TypingError struct {
	S   ast.Span
	Msg string
}

func (e *TypingError) Error() string {
	return fmt.Sprintf("Typing error at line %d, column %d: %s", e.S.Line, e.S.Col, e.Msg)
}

// Halt is the distinguished terminal outcome of #quit. It travels as
// an error so the termination point stays explicit and testable;
// only main turns it into a process exit.
type Halt struct {
	Code int
}

func (h Halt) Error() string { return fmt.Sprintf("quit (exit %d)", h.Code) }

// Recoverable reports whether err is one of the language error kinds
// the interactive loop prints and survives: syntax errors, typing
// errors and unbound names. Halt and I/O failures are not recoverable.
func Recoverable(err error) bool {
	var (
		se *parser.SyntaxError
		te *TypingError
		ue *desugar.UnboundError
	)
	return errors.As(err, &se) || errors.As(err, &te) || errors.As(err, &ue)
}
