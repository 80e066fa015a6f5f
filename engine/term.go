// Package engine implements the term-rewriting core: de Bruijn indexed
// lambda terms and normalization under a selectable evaluation mode.
package engine

// Term is a lambda term with binders resolved to de Bruijn indices.
type Term interface {
	termNode()
}

// Var is an index into the binding environment: 0 is the innermost
// binder, indices past the bound prefix refer into the session context
// (most recently declared name at the lowest index).
type Var int

func (Var) termNode() {}

// Abs is an abstraction. Hint remembers the surface binder name so the
// printer can restore it.
type Abs struct {
	Hint string
	Body Term
}

func (Abs) termNode() {}

// App is an application.
type App struct {
	Fn  Term
	Arg Term
}

func (App) termNode() {}

// Shift adds d to every variable in t that points past the innermost
// binders (the usual de Bruijn shift).
func Shift(d int, t Term) Term {
	return shiftAbove(d, 0, t)
}

func shiftAbove(d, cutoff int, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) >= cutoff {
			return Var(int(t) + d)
		}
		return t
	case Abs:
		return Abs{Hint: t.Hint, Body: shiftAbove(d, cutoff+1, t.Body)}
	case App:
		return App{Fn: shiftAbove(d, cutoff, t.Fn), Arg: shiftAbove(d, cutoff, t.Arg)}
	}
	return t
}

// subst replaces variable j with s in t.
func subst(j int, s Term, t Term) Term {
	switch t := t.(type) {
	case Var:
		if int(t) == j {
			return s
		}
		return t
	case Abs:
		return Abs{Hint: t.Hint, Body: subst(j+1, Shift(1, s), t.Body)}
	case App:
		return App{Fn: subst(j, s, t.Fn), Arg: subst(j, s, t.Arg)}
	}
	return t
}

// substTop performs the beta-reduction substitution: the body of an
// abstraction receives the argument for variable 0 and every remaining
// free variable shifts down by one.
func substTop(arg, body Term) Term {
	return Shift(-1, subst(0, Shift(1, arg), body))
}
