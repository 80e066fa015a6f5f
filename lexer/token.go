package lexer

import "fmt"

type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	IDENT TokenType = "IDENT"

	LAMBDA TokenType = "LAMBDA" // ^ λ \
	DOT    TokenType = "DOT"
	LPAREN TokenType = "LPAREN"
	RPAREN TokenType = "RPAREN"
	SEMI   TokenType = "SEMI"
	DEFINE TokenType = "DEFINE" // :=

	// toplevel #-commands
	CONSTANT TokenType = "CONSTANT"
	EAGER    TokenType = "EAGER"
	LAZY     TokenType = "LAZY"
	DEEP     TokenType = "DEEP"
	SHALLOW  TokenType = "SHALLOW"
	CONTEXT  TokenType = "CONTEXT"
	HELP     TokenType = "HELP"
	QUIT     TokenType = "QUIT"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	if t.Lexeme == "" {
		return string(t.Type)
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Lexeme)
}

var directives = map[string]TokenType{
	"constant": CONSTANT,
	"eager":    EAGER,
	"lazy":     LAZY,
	"deep":     DEEP,
	"shallow":  SHALLOW,
	"context":  CONTEXT,
	"help":     HELP,
	"quit":     QUIT,
}

// LookupDirective maps the word after '#' to its token type.
func LookupDirective(word string) (TokenType, bool) {
	tt, ok := directives[word]
	return tt, ok
}
