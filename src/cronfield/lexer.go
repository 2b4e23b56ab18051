package cronfield

import (
	"strconv"
	"unicode"
)

// Lexer splits field text into tokens with a single token of lookahead.
// Whitespace is tokenized internally but never returned.
type Lexer struct {
	src *Cursor

	l1    Token // buffered lookahead, valid when hasL1
	hasL1 bool
}

// NewLexer creates a lexer over text.
func NewLexer(text string) *Lexer {
	return &Lexer{src: NewCursor(text)}
}

// Offset returns the offset of the last character consumed from the text.
func (l *Lexer) Offset() int {
	return l.src.Offset()
}

// Next consumes and returns the next non-whitespace token. Once the text is
// exhausted every call returns a TokenEOF token.
func (l *Lexer) Next() (Token, error) {
	if l.hasL1 {
		l.hasL1 = false
		return l.l1, nil
	}
	for {
		tok, err := l.nextToken()
		if err != nil {
			return Token{}, err
		}
		if tok.Type != TokenWhite {
			return tok, nil
		}
	}
}

// LookAhead returns the next token without consuming it. Calling it again
// before Next returns the same token.
func (l *Lexer) LookAhead() (Token, error) {
	tok, err := l.Next()
	if err != nil {
		return Token{}, err
	}
	l.l1, l.hasL1 = tok, true
	return tok, nil
}

func (l *Lexer) nextToken() (Token, error) {
	r, err := l.src.Read()
	if err != nil {
		return Token{Type: TokenEOF}, nil
	}
	start := l.src.Offset()
	switch typ := typeFor(r); typ {
	case TokenWhite:
		return l.run(typ, start, unicode.IsSpace), nil
	case TokenInteger:
		return l.run(typ, start, isDigit), nil
	case TokenWildcard, TokenComma, TokenRange, TokenSlash:
		return Token{Type: typ, Text: string(r)}, nil
	case TokenSymbol:
		return l.symbol(r, start)
	default:
		return Token{}, &LexicalError{Offset: start, Char: r}
	}
}

// run consumes a maximal run of characters accepted by valid. A run cut
// short by the end of the text is still a complete token.
func (l *Lexer) run(typ TokenType, start int, valid func(rune) bool) Token {
	for {
		r, err := l.src.Read()
		if err != nil {
			break
		}
		if !valid(r) {
			l.src.Back(1)
			break
		}
	}
	return Token{Type: typ, Text: l.src.Text(start, l.src.Offset()+1)}
}

// symbol reads a three letter name starting with first. On failure the
// cursor is left just past first so lexing can resume.
func (l *Lexer) symbol(first rune, start int) (Token, error) {
	for i := 0; i < 2; i++ {
		if _, err := l.src.Read(); err != nil {
			break
		}
	}
	text := l.src.Text(start, l.src.Offset()+1)
	if n, ok := LookupSymbol(text); ok {
		return Token{Type: TokenInteger, Text: strconv.Itoa(n)}, nil
	}
	l.src.Back(len([]rune(text)) - 1)
	return Token{}, &LexicalError{Offset: l.src.Offset(), Char: first, Type: TokenSymbol}
}
