package ast

import (
	"fmt"
	"strings"
)

// Directive is one parsed unit of toplevel input: an expression to
// evaluate or a #-command, terminated by ';'.
type Directive interface {
	Node
	directiveNode()
	String() string
	GetSpan() Span
}

// Expr evaluates a term and prints its normal form.
type Expr struct {
	S    Span
	Term Term
}

func (e *Expr) NodeKind() string { return "Expr" }
func (e *Expr) directiveNode()   {}
func (e *Expr) GetSpan() Span    { return e.S }
func (e *Expr) String() string   { return fmt.Sprintf("Expr(%s)", e.Term.String()) }

// Define binds a name to a term: x := e ;
type Define struct {
	S    Span
	Name string
	Term Term
}

func (d *Define) NodeKind() string { return "Define" }
func (d *Define) directiveNode()   {}
func (d *Define) GetSpan() Span    { return d.S }
func (d *Define) String() string {
	return fmt.Sprintf("Define(%s := %s)", d.Name, d.Term.String())
}

// Constants declares uninterpreted atoms: #constant x y ... ;
type Constants struct {
	S     Span
	Names []string
}

func (c *Constants) NodeKind() string { return "Constants" }
func (c *Constants) directiveNode()   {}
func (c *Constants) GetSpan() Span    { return c.S }
func (c *Constants) String() string {
	return fmt.Sprintf("Constants(%s)", strings.Join(c.Names, " "))
}

// SetEager selects eager (true) or lazy (false) argument evaluation.
type SetEager struct {
	S     Span
	Eager bool
}

func (s *SetEager) NodeKind() string { return "SetEager" }
func (s *SetEager) directiveNode()   {}
func (s *SetEager) GetSpan() Span    { return s.S }
func (s *SetEager) String() string   { return fmt.Sprintf("SetEager(%v)", s.Eager) }

// SetDeep selects whether reduction proceeds under binders.
type SetDeep struct {
	S    Span
	Deep bool
}

func (s *SetDeep) NodeKind() string { return "SetDeep" }
func (s *SetDeep) directiveNode()   {}
func (s *SetDeep) GetSpan() Span    { return s.S }
func (s *SetDeep) String() string   { return fmt.Sprintf("SetDeep(%v)", s.Deep) }

// ShowContext prints every declaration, oldest first.
type ShowContext struct {
	S Span
}

func (s *ShowContext) NodeKind() string { return "ShowContext" }
func (s *ShowContext) directiveNode()   {}
func (s *ShowContext) GetSpan() Span    { return s.S }
func (s *ShowContext) String() string   { return "ShowContext" }

type Help struct {
	S Span
}

func (h *Help) NodeKind() string { return "Help" }
func (h *Help) directiveNode()   {}
func (h *Help) GetSpan() Span    { return h.S }
func (h *Help) String() string   { return "Help" }

type Quit struct {
	S Span
}

func (q *Quit) NodeKind() string { return "Quit" }
func (q *Quit) directiveNode()   {}
func (q *Quit) GetSpan() Span    { return q.S }
func (q *Quit) String() string   { return "Quit" }
