package parser

import (
	"fmt"

	"github.com/co-dan/plzoo/ast"
	"github.com/co-dan/plzoo/lexer"
)

// SyntaxError is raised for malformed input or an unrecognized token.
type SyntaxError struct {
	S   ast.Span
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error at line %d, column %d: %s", e.S.Line, e.S.Col, e.Msg)
}

type Parser struct {
	lx   *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

func New(lx *lexer.Lexer) *Parser {
	p := &Parser{lx: lx}
	p.cur = lx.NextToken()
	p.peek = lx.NextToken()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lx.NextToken()
}

func sp(tok lexer.Token) ast.Span { return ast.Span{Line: tok.Line, Col: tok.Col} }

func (p *Parser) errAt(tok lexer.Token, msg string) error {
	if tok.Type == lexer.ILLEGAL {
		msg = tok.Lexeme
	}
	return &SyntaxError{S: sp(tok), Msg: msg}
}

// ParseProgram parses directives until EOF. Every directive is
// terminated by ';'.
func (p *Parser) ParseProgram() ([]ast.Directive, error) {
	dirs := []ast.Directive{}
	for p.cur.Type != lexer.EOF {
		d, err := p.parseDirective()
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// ParseDirective parses exactly one ';'-terminated directive.
func (p *Parser) ParseDirective() (ast.Directive, error) {
	return p.parseDirective()
}

func (p *Parser) parseDirective() (ast.Directive, error) {
	tok := p.cur

	switch tok.Type {
	case lexer.CONSTANT:
		p.next()
		names := []string{}
		for p.cur.Type == lexer.IDENT {
			names = append(names, p.cur.Lexeme)
			p.next()
		}
		if len(names) == 0 {
			return nil, p.errAt(p.cur, "expected at least one name after #constant")
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.Constants{S: sp(tok), Names: names}, nil

	case lexer.EAGER, lexer.LAZY:
		p.next()
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.SetEager{S: sp(tok), Eager: tok.Type == lexer.EAGER}, nil

	case lexer.DEEP, lexer.SHALLOW:
		p.next()
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.SetDeep{S: sp(tok), Deep: tok.Type == lexer.DEEP}, nil

	case lexer.CONTEXT:
		p.next()
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.ShowContext{S: sp(tok)}, nil

	case lexer.HELP:
		p.next()
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.Help{S: sp(tok)}, nil

	case lexer.QUIT:
		p.next()
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.Quit{S: sp(tok)}, nil
	}

	// definition: x := e ;
	if tok.Type == lexer.IDENT && p.peek.Type == lexer.DEFINE {
		p.next() // to ':='
		p.next() // to term
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if err := p.expectSemi(); err != nil {
			return nil, err
		}
		return &ast.Define{S: sp(tok), Name: tok.Lexeme, Term: term}, nil
	}

	// expression: e ;
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if err := p.expectSemi(); err != nil {
		return nil, err
	}
	return &ast.Expr{S: sp(tok), Term: term}, nil
}

func (p *Parser) expectSemi() error {
	if p.cur.Type != lexer.SEMI {
		return p.errAt(p.cur, fmt.Sprintf("expected ';' to end the directive, got %s", p.cur))
	}
	p.next()
	return nil
}

// term = LAMBDA IDENT+ DOT term | app
func (p *Parser) parseTerm() (ast.Term, error) {
	if p.cur.Type == lexer.LAMBDA {
		lamTok := p.cur
		p.next()
		params := []string{}
		for p.cur.Type == lexer.IDENT {
			params = append(params, p.cur.Lexeme)
			p.next()
		}
		if len(params) == 0 {
			return nil, p.errAt(p.cur, "expected a binder name after ^")
		}
		if p.cur.Type != lexer.DOT {
			return nil, p.errAt(p.cur, "expected '.' after binder")
		}
		p.next()
		body, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		// ^x y . e abbreviates ^x . ^y . e
		for i := len(params) - 1; i >= 0; i-- {
			body = &ast.Lambda{S: sp(lamTok), Param: params[i], Body: body}
		}
		return body, nil
	}
	return p.parseApp()
}

// app = atom atom* (left associative)
func (p *Parser) parseApp() (ast.Term, error) {
	fn, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.IDENT || p.cur.Type == lexer.LPAREN {
		argTok := p.cur
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		fn = &ast.App{S: sp(argTok), Fn: fn, Arg: arg}
	}
	return fn, nil
}

// atom = IDENT | ( term )
func (p *Parser) parseAtom() (ast.Term, error) {
	switch p.cur.Type {
	case lexer.IDENT:
		tok := p.cur
		p.next()
		return &ast.Ident{S: sp(tok), Name: tok.Lexeme}, nil
	case lexer.LPAREN:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, p.errAt(p.cur, "expected ')'")
		}
		p.next()
		return term, nil
	default:
		return nil, p.errAt(p.cur, fmt.Sprintf("expected a term, got %s", p.cur))
	}
}
