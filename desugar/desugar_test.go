package desugar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/engine"
	"github.com/co-dan/plzoo/lexer"
	"github.com/co-dan/plzoo/parser"
)

func surface(t *testing.T, src string) ast.Term {
	t.Helper()
	dirs, err := parser.New(lexer.New(src + ";")).ParseProgram()
	require.NoError(t, err)
	e, ok := dirs[0].(*ast.Expr)
	require.True(t, ok)
	return e.Term
}

func TestResolveBoundVariable(t *testing.T) {
	got, err := Term(nil, surface(t, `^x . x`))
	require.NoError(t, err)
	assert.Equal(t, engine.Abs{Hint: "x", Body: engine.Var(0)}, got)
}

func TestResolveFreeName(t *testing.T) {
	got, err := Term([]string{"b", "a"}, surface(t, `a`))
	require.NoError(t, err)
	assert.Equal(t, engine.Var(1), got)
}

func TestBinderShadowsContext(t *testing.T) {
	got, err := Term([]string{"x"}, surface(t, `^x . x`))
	require.NoError(t, err)
	assert.Equal(t, engine.Abs{Hint: "x", Body: engine.Var(0)}, got)
}

func TestNestedBindersIndexOutward(t *testing.T) {
	got, err := Term([]string{"c"}, surface(t, `^x y . x y c`))
	require.NoError(t, err)
	want := engine.Abs{Hint: "x", Body: engine.Abs{Hint: "y", Body: engine.App{
		Fn:  engine.App{Fn: engine.Var(1), Arg: engine.Var(0)},
		Arg: engine.Var(2),
	}}}
	assert.Equal(t, want, got)
}

func TestUnboundName(t *testing.T) {
	_, err := Term([]string{"a"}, surface(t, `^x . y`))
	require.Error(t, err)
	ue, ok := err.(*UnboundError)
	require.True(t, ok)
	assert.Equal(t, "y", ue.Name)
	assert.Contains(t, ue.Error(), `Unbound name "y"`)
}
