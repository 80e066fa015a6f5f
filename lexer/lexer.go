package lexer

type Lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		line:  1,
		col:   1,
	}
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() rune {
	ch := l.peek()
	if ch == 0 {
		return 0
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) NextToken() Token {
	// skip whitespace; newlines carry no meaning, ';' terminates directives
	for {
		ch := l.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			l.advance()
			continue
		}
		// comment: -- to end of line
		if ch == '-' && l.pos+1 < len(l.input) && l.input[l.pos+1] == '-' {
			for ch != 0 && ch != '\n' {
				ch = l.advance()
			}
			continue
		}
		break
	}

	startLine := l.line
	startCol := l.col
	ch := l.peek()

	if ch == 0 {
		return Token{Type: EOF, Line: startLine, Col: startCol}
	}

	// identifiers
	if isAlpha(ch) || ch == '_' {
		lex := ""
		for isAlphaNum(l.peek()) || l.peek() == '_' || l.peek() == '\'' {
			lex += string(l.advance())
		}
		return Token{Type: IDENT, Lexeme: lex, Line: startLine, Col: startCol}
	}

	// #-directives
	if ch == '#' {
		l.advance()
		word := ""
		for isAlpha(l.peek()) {
			word += string(l.advance())
		}
		if tt, ok := LookupDirective(word); ok {
			return Token{Type: tt, Lexeme: "#" + word, Line: startLine, Col: startCol}
		}
		return Token{Type: ILLEGAL, Lexeme: "unknown directive #" + word, Line: startLine, Col: startCol}
	}

	switch ch {
	case '^', '\\', 'λ':
		l.advance()
		return Token{Type: LAMBDA, Lexeme: string(ch), Line: startLine, Col: startCol}
	case '.':
		l.advance()
		return Token{Type: DOT, Lexeme: ".", Line: startLine, Col: startCol}
	case '(':
		l.advance()
		return Token{Type: LPAREN, Lexeme: "(", Line: startLine, Col: startCol}
	case ')':
		l.advance()
		return Token{Type: RPAREN, Lexeme: ")", Line: startLine, Col: startCol}
	case ';':
		l.advance()
		return Token{Type: SEMI, Lexeme: ";", Line: startLine, Col: startCol}
	case ':':
		l.advance()
		if l.peek() == '=' {
			l.advance()
			return Token{Type: DEFINE, Lexeme: ":=", Line: startLine, Col: startCol}
		}
		return Token{Type: ILLEGAL, Lexeme: "expected '=' after ':'", Line: startLine, Col: startCol}
	}

	l.advance()
	return Token{Type: ILLEGAL, Lexeme: "unexpected character " + string(ch), Line: startLine, Col: startCol}
}

func isAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isAlphaNum(ch rune) bool {
	return isAlpha(ch) || (ch >= '0' && ch <= '9')
}
