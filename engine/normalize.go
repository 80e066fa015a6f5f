package engine

import "context"

// Mode selects how Normalize watches evaluation: eager or lazy argument
// evaluation, and whether reduction proceeds under binders.
type Mode struct {
	Eager bool
	Deep  bool
}

// Defs resolves free variables to definition bodies. Unfold takes an
// index counted from the head of the session context and returns the
// body of that declaration shifted into the context's own index space,
// or false when the declaration is an uninterpreted constant.
type Defs interface {
	Unfold(i int) (Term, bool)
}

// interruptStride is how many rewriting steps pass between cancellation
// checks; normalization of a divergent term must stay interruptible.
const interruptStride = 256

// Normalize rewrites t to its normal form (weak head normal form when
// mode.Deep is false), unfolding definitions through defs. It is pure
// up to ctx: the only error it returns is ctx.Err() when cancelled
// mid-reduction.
func Normalize(ctx context.Context, defs Defs, mode Mode, t Term) (Term, error) {
	n := &normalizer{ctx: ctx, defs: defs, mode: mode}
	return n.norm(t, mode.Deep, 0)
}

type normalizer struct {
	ctx   context.Context
	defs  Defs
	mode  Mode
	steps int
}

func (n *normalizer) tick() error {
	n.steps++
	if n.steps%interruptStride == 0 {
		select {
		case <-n.ctx.Done():
			return n.ctx.Err()
		default:
		}
	}
	return nil
}

// norm reduces t under depth enclosing binders. The head-reduction
// sequence runs as a loop rather than recursion so a divergent term
// spins in constant stack space until the context cancels it.
func (n *normalizer) norm(t Term, deep bool, depth int) (Term, error) {
	for {
		if err := n.tick(); err != nil {
			return nil, err
		}

		switch u := t.(type) {
		case Var:
			if int(u) < depth {
				// bound by an enclosing binder, irreducible
				return u, nil
			}
			body, ok := n.defs.Unfold(int(u) - depth)
			if !ok {
				return u, nil
			}
			t = Shift(depth, body)

		case Abs:
			if !deep {
				return u, nil
			}
			body, err := n.norm(u.Body, true, depth+1)
			if err != nil {
				return nil, err
			}
			return Abs{Hint: u.Hint, Body: body}, nil

		case App:
			fn, err := n.norm(u.Fn, false, depth)
			if err != nil {
				return nil, err
			}
			arg := u.Arg
			if n.mode.Eager {
				arg, err = n.norm(arg, deep, depth)
				if err != nil {
					return nil, err
				}
			}
			if abs, ok := fn.(Abs); ok {
				t = substTop(arg, abs.Body)
				continue
			}
			// stuck application: the head is a constant or bound variable
			if deep {
				fn, err = n.norm(fn, true, depth)
				if err != nil {
					return nil, err
				}
				if !n.mode.Eager {
					arg, err = n.norm(arg, true, depth)
					if err != nil {
						return nil, err
					}
				}
			}
			return App{Fn: fn, Arg: arg}, nil

		default:
			return t, nil
		}
	}
}
