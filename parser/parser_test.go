package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/lexer"
)

func parse(t *testing.T, src string) []ast.Directive {
	t.Helper()
	dirs, err := New(lexer.New(src)).ParseProgram()
	require.NoError(t, err)
	return dirs
}

func parseErr(t *testing.T, src string) *SyntaxError {
	t.Helper()
	_, err := New(lexer.New(src)).ParseProgram()
	require.Error(t, err)
	se, ok := err.(*SyntaxError)
	require.True(t, ok, "want *SyntaxError, got %T: %v", err, err)
	return se
}

func TestParseDirectiveForms(t *testing.T) {
	dirs := parse(t, `
		#constant a b;
		id := ^x . x;
		id a;
		#eager; #lazy; #deep; #shallow;
		#context; #help; #quit;
	`)
	require.Len(t, dirs, 10)

	c, ok := dirs[0].(*ast.Constants)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, c.Names)

	d, ok := dirs[1].(*ast.Define)
	require.True(t, ok)
	assert.Equal(t, "id", d.Name)

	_, ok = dirs[2].(*ast.Expr)
	assert.True(t, ok)

	assert.True(t, dirs[3].(*ast.SetEager).Eager)
	assert.False(t, dirs[4].(*ast.SetEager).Eager)
	assert.True(t, dirs[5].(*ast.SetDeep).Deep)
	assert.False(t, dirs[6].(*ast.SetDeep).Deep)

	assert.IsType(t, &ast.ShowContext{}, dirs[7])
	assert.IsType(t, &ast.Help{}, dirs[8])
	assert.IsType(t, &ast.Quit{}, dirs[9])
}

func TestMultiBinderSugar(t *testing.T) {
	dirs := parse(t, `^x y z . x;`)
	e := dirs[0].(*ast.Expr)
	outer, ok := e.Term.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Param)
	mid := outer.Body.(*ast.Lambda)
	assert.Equal(t, "y", mid.Param)
	inner := mid.Body.(*ast.Lambda)
	assert.Equal(t, "z", inner.Param)
	assert.IsType(t, &ast.Ident{}, inner.Body)
}

func TestApplicationLeftAssociative(t *testing.T) {
	dirs := parse(t, `f a b;`)
	e := dirs[0].(*ast.Expr)
	// (f a) b
	outer, ok := e.Term.(*ast.App)
	require.True(t, ok)
	assert.Equal(t, "b", outer.Arg.(*ast.Ident).Name)
	inner := outer.Fn.(*ast.App)
	assert.Equal(t, "f", inner.Fn.(*ast.Ident).Name)
	assert.Equal(t, "a", inner.Arg.(*ast.Ident).Name)
}

func TestLambdaBodyExtendsRight(t *testing.T) {
	dirs := parse(t, `^x . x x;`)
	lam := dirs[0].(*ast.Expr).Term.(*ast.Lambda)
	assert.IsType(t, &ast.App{}, lam.Body)
}

func TestParenthesizedTerm(t *testing.T) {
	dirs := parse(t, `(^x . x) y;`)
	app := dirs[0].(*ast.Expr).Term.(*ast.App)
	assert.IsType(t, &ast.Lambda{}, app.Fn)
	assert.Equal(t, "y", app.Arg.(*ast.Ident).Name)
}

func TestMissingSemicolon(t *testing.T) {
	se := parseErr(t, `x`)
	assert.Contains(t, se.Msg, "';'")
}

func TestMissingBinder(t *testing.T) {
	se := parseErr(t, `^ . x;`)
	assert.Contains(t, se.Msg, "binder")
}

func TestEmptyConstants(t *testing.T) {
	se := parseErr(t, `#constant;`)
	assert.Contains(t, se.Msg, "#constant")
}

func TestUnknownDirectiveIsSyntaxError(t *testing.T) {
	se := parseErr(t, `#frobnicate;`)
	assert.Contains(t, se.Msg, "#frobnicate")
}

func TestErrorCarriesSpan(t *testing.T) {
	se := parseErr(t, "x;\n(y;")
	assert.Equal(t, 2, se.S.Line)
	assert.Contains(t, se.Error(), "line 2")
}

func TestParseDirectiveSingle(t *testing.T) {
	p := New(lexer.New(`#eager; x;`))
	d, err := p.ParseDirective()
	require.NoError(t, err)
	assert.IsType(t, &ast.SetEager{}, d)
	d, err = p.ParseDirective()
	require.NoError(t, err)
	assert.IsType(t, &ast.Expr{}, d)
}
