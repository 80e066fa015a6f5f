// Package desugar resolves surface binder names and free identifiers
// into the engine's de Bruijn indexed representation.
package desugar

import (
	"fmt"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/engine"
)

// UnboundError is raised when an identifier resolves to neither a
// binder nor a declared name.
type UnboundError struct {
	S    ast.Span
	Name string
}

func (e *UnboundError) Error() string {
	return fmt.Sprintf("Unbound name %q at line %d, column %d", e.Name, e.S.Line, e.S.Col)
}

// Term converts a surface term into its indexed form. names is the
// session context's name list, most recently declared first; binders
// extend the front of the search space as the walk descends.
func Term(names []string, t ast.Term) (engine.Term, error) {
	return resolve(names, t)
}

func resolve(names []string, t ast.Term) (engine.Term, error) {
	switch t := t.(type) {
	case *ast.Ident:
		for i, n := range names {
			if n == t.Name {
				return engine.Var(i), nil
			}
		}
		return nil, &UnboundError{S: t.S, Name: t.Name}

	case *ast.Lambda:
		inner := make([]string, 0, len(names)+1)
		inner = append(inner, t.Param)
		inner = append(inner, names...)
		body, err := resolve(inner, t.Body)
		if err != nil {
			return nil, err
		}
		return engine.Abs{Hint: t.Param, Body: body}, nil

	case *ast.App:
		fn, err := resolve(names, t.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := resolve(names, t.Arg)
		if err != nil {
			return nil, err
		}
		return engine.App{Fn: fn, Arg: arg}, nil
	}
	return nil, fmt.Errorf("desugar: unexpected term %T", t)
}
