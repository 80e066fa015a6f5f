package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintVariableNames(t *testing.T) {
	// names are newest first: index 0 = b, index 1 = a
	assert.Equal(t, "b", Print(Var(0), []string{"b", "a"}))
	assert.Equal(t, "a", Print(Var(1), []string{"b", "a"}))
}

func TestPrintAbstraction(t *testing.T) {
	id := Abs{Hint: "x", Body: Var(0)}
	assert.Equal(t, "^ x . x", Print(id, nil))
}

func TestPrintCollapsesBinders(t *testing.T) {
	k := Abs{Hint: "x", Body: Abs{Hint: "y", Body: Var(1)}}
	assert.Equal(t, "^ x y . x", Print(k, nil))
}

func TestPrintApplication(t *testing.T) {
	// f a b prints without parentheses, f (a b) keeps them
	names := []string{"b", "a", "f"}
	left := App{Fn: App{Fn: Var(2), Arg: Var(1)}, Arg: Var(0)}
	assert.Equal(t, "f a b", Print(left, names))

	right := App{Fn: Var(2), Arg: App{Fn: Var(1), Arg: Var(0)}}
	assert.Equal(t, "f (a b)", Print(right, names))
}

func TestPrintLambdaArgumentParenthesized(t *testing.T) {
	names := []string{"f"}
	term := App{Fn: Var(0), Arg: Abs{Hint: "x", Body: Var(0)}}
	assert.Equal(t, "f (^ x . x)", Print(term, names))
}

func TestPrintFreshensCapturedHint(t *testing.T) {
	// ^x . x x0 where x0 is the context name "x": the binder must not
	// shadow it in print
	term := Abs{Hint: "x", Body: App{Fn: Var(0), Arg: Var(1)}}
	assert.Equal(t, "^ x' . x' x", Print(term, []string{"x"}))
}

func TestPrintOutOfRangeIndexIsVisible(t *testing.T) {
	assert.Equal(t, "?", Print(Var(7), []string{"a"}))
}
