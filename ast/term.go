package ast

import "fmt"

// Term is a surface-syntax lambda term, before binder names are
// resolved into indices.
type Term interface {
	Node
	termNode()
	String() string
	GetSpan() Span
}

type Ident struct {
	S    Span
	Name string
}

func (i *Ident) NodeKind() string { return "Ident" }
func (i *Ident) termNode()        {}
func (i *Ident) GetSpan() Span    { return i.S }
func (i *Ident) String() string   { return fmt.Sprintf("Ident(%s)", i.Name) }

type Lambda struct {
	S     Span
	Param string
	Body  Term
}

func (l *Lambda) NodeKind() string { return "Lambda" }
func (l *Lambda) termNode()        {}
func (l *Lambda) GetSpan() Span    { return l.S }
func (l *Lambda) String() string {
	return fmt.Sprintf("Lambda(%s, %s)", l.Param, l.Body.String())
}

type App struct {
	S   Span
	Fn  Term
	Arg Term
}

func (a *App) NodeKind() string { return "App" }
func (a *App) termNode()        {}
func (a *App) GetSpan() Span    { return a.S }
func (a *App) String() string {
	return fmt.Sprintf("App(%s, %s)", a.Fn.String(), a.Arg.String())
}
