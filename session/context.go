// Package session holds the directive state machine: the growing
// environment of constants and definitions, the evaluation-mode
// controller, and the executor that drives the rewriting engine.
package session

import (
	"fmt"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/engine"
)

// Declaration is either a Constant (an uninterpreted atom) or a
// Definition (bound to an elaborated term).
type Declaration interface {
	declNode()
}

type Constant struct{}

func (Constant) declNode() {}

type Definition struct {
	Body engine.Term
}

func (Definition) declNode() {}

type binding struct {
	name string
	decl Declaration
}

// Context is the session environment: an ordered, name-unique registry
// of declarations, most recently declared first. Index positions are
// the index space the engine uses for free variables. Every add
// returns a new context value; a Context is never mutated in place.
type Context struct {
	bindings []binding
}

// NewContext returns the empty context.
func NewContext() Context { return Context{} }

func (c Context) Len() int { return len(c.bindings) }

func (c Context) Contains(name string) bool {
	for _, b := range c.bindings {
		if b.name == name {
			return true
		}
	}
	return false
}

// Names returns the declared names, most recent first, aligned with
// the engine's index space.
func (c Context) Names() []string {
	names := make([]string, len(c.bindings))
	for i, b := range c.bindings {
		names[i] = b.name
	}
	return names
}

// add prepends a binding so it becomes index 0, shifting all previous
// indices up by one.
func (c Context) add(name string, decl Declaration, at ast.Span) (Context, error) {
	if c.Contains(name) {
		return c, &TypingError{S: at, Msg: fmt.Sprintf("name %s already exists", name)}
	}
	bs := make([]binding, 0, len(c.bindings)+1)
	bs = append(bs, binding{name: name, decl: decl})
	bs = append(bs, c.bindings...)
	return Context{bindings: bs}, nil
}

// AddConstant declares name as an uninterpreted atom. It fails with a
// TypingError when the name already occurs in the context.
func (c Context) AddConstant(name string, at ast.Span) (Context, error) {
	return c.add(name, Constant{}, at)
}

// AddDefinition binds name to body, which must already be resolved
// against this context. It fails with a TypingError when the name
// already occurs in the context.
func (c Context) AddDefinition(name string, body engine.Term, at ast.Span) (Context, error) {
	return c.add(name, Definition{Body: body}, at)
}

// Unfold implements engine.Defs: the body of the definition at index
// i, shifted by i+1 so its free variables point at the entries that
// were already declared when it was defined. Constants yield false.
func (c Context) Unfold(i int) (engine.Term, bool) {
	def, ok := c.bindings[i].decl.(Definition)
	if !ok {
		return nil, false
	}
	return engine.Shift(i+1, def.Body), true
}

// RenderedDecl is one line of a #context listing. Value is empty for
// constants.
type RenderedDecl struct {
	Name  string
	Value string
}

// Render enumerates the declarations from the oldest to the newest,
// each definition printed against the names that were visible when it
// was made.
func (c Context) Render() []RenderedDecl {
	out := make([]RenderedDecl, 0, len(c.bindings))
	for i := len(c.bindings) - 1; i >= 0; i-- {
		b := c.bindings[i]
		rd := RenderedDecl{Name: b.name}
		if def, ok := b.decl.(Definition); ok {
			rd.Value = engine.Print(def.Body, c.Names()[i+1:])
		}
		out = append(out, rd)
	}
	return out
}
