package session

import (
	"context"
	"fmt"
	"io"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/desugar"
	"github.com/co-dan/plzoo/engine"
)

// HelpText is the full documentation surface of the toplevel.
const HelpText = `Toplevel directives:
<expr> ;               evaluate an expression
x := <expr> ;          define x as an abbreviation
#constant x ... y ;    declare constants
#context ;             print the current context
#eager ;               evaluate arguments eagerly
#lazy ;                evaluate arguments lazily (default)
#deep ;                reduce inside abstractions
#shallow ;             do not reduce inside abstractions (default)
#help ;                print this help
#quit ;                exit`

// Executor is the directive state machine. It owns the session's
// evaluation mode (the only mutable state that spans directives) and
// the writers confirmation output goes to.
type Executor struct {
	Mode *engine.Mode

	Out io.Writer // directive output, only written when interactive
	Err io.Writer // load tracing

	// Verbosity >= 2 traces every directive executed by LoadFile.
	Verbosity int
}

// NewExecutor returns an executor with the default mode: lazy and
// shallow.
func NewExecutor(out, errw io.Writer) *Executor {
	return &Executor{Mode: &engine.Mode{}, Out: out, Err: errw}
}

// Execute applies one directive to env and returns the next context.
// It never mutates env. On error the returned context is still valid:
// a partially applied #constant batch keeps the declarations that
// succeeded before the collision (left-fold-with-early-abort, no
// rollback), every other failure leaves the context unchanged.
// Confirmation output is printed only when interactive.
func (x *Executor) Execute(ctx context.Context, interactive bool, env Context, d ast.Directive) (Context, error) {
	switch d := d.(type) {
	case *ast.Expr:
		term, err := desugar.Term(env.Names(), d.Term)
		if err != nil {
			return env, err
		}
		norm, err := engine.Normalize(ctx, env, *x.Mode, term)
		if err != nil {
			return env, err
		}
		if interactive {
			fmt.Fprintln(x.Out, engine.Print(norm, env.Names()))
		}
		return env, nil

	case *ast.Define:
		term, err := desugar.Term(env.Names(), d.Term)
		if err != nil {
			return env, err
		}
		next, err := env.AddDefinition(d.Name, term, d.S)
		if err != nil {
			return env, err
		}
		if interactive {
			fmt.Fprintf(x.Out, "%s is defined.\n", d.Name)
		}
		return next, nil

	case *ast.Constants:
		for _, name := range d.Names {
			next, err := env.AddConstant(name, d.S)
			if err != nil {
				return env, err
			}
			env = next
			if interactive {
				fmt.Fprintf(x.Out, "%s is a constant.\n", name)
			}
		}
		return env, nil

	case *ast.SetEager:
		x.Mode.Eager = d.Eager
		if interactive {
			if d.Eager {
				fmt.Fprintln(x.Out, "I will evaluate eagerly.")
			} else {
				fmt.Fprintln(x.Out, "I will evaluate lazily.")
			}
		}
		return env, nil

	case *ast.SetDeep:
		x.Mode.Deep = d.Deep
		if interactive {
			if d.Deep {
				fmt.Fprintln(x.Out, "I will evaluate deeply.")
			} else {
				fmt.Fprintln(x.Out, "I will evaluate shallowly.")
			}
		}
		return env, nil

	case *ast.ShowContext:
		if interactive {
			for _, rd := range env.Render() {
				if rd.Value == "" {
					fmt.Fprintf(x.Out, "%s is a constant.\n", rd.Name)
				} else {
					fmt.Fprintf(x.Out, "%s := %s\n", rd.Name, rd.Value)
				}
			}
		}
		return env, nil

	case *ast.Help:
		if interactive {
			fmt.Fprintln(x.Out, HelpText)
		}
		return env, nil

	case *ast.Quit:
		return env, Halt{Code: 0}
	}

	sp, _ := ast.SpanOf(d)
	return env, fmt.Errorf("session: cannot execute %s directive at line %d, column %d",
		d.NodeKind(), sp.Line, sp.Col)
}
