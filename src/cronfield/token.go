package cronfield

import (
	"strconv"
	"unicode"
)

// TokenType is the lexical category of a token.
type TokenType int

const (
	TokenUnknown TokenType = iota
	TokenWhite
	TokenInteger
	TokenWildcard // '*'
	TokenComma
	TokenRange // '-'
	TokenSlash // '/'
	TokenSymbol
	TokenEOF
)

var tokenTypeNames = [...]string{
	TokenUnknown:  "unknown",
	TokenWhite:    "whitespace",
	TokenInteger:  "integer",
	TokenWildcard: "wildcard",
	TokenComma:    "comma",
	TokenRange:    "range",
	TokenSlash:    "slash",
	TokenSymbol:   "symbol",
	TokenEOF:      "end of input",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenTypeNames[t]
}

// Token is a lexical category plus the text it matched. Symbols are resolved
// by the lexer, so a weekday or month name arrives as a TokenInteger whose
// text is the decimal value of the name.
type Token struct {
	Type TokenType
	Text string
}

// String describes the token for error messages.
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "end of input"
	}
	return "'" + t.Text + "'"
}

var symbols = map[string]int{
	"SUN": 0, "MON": 1, "TUE": 2, "WED": 3, "THU": 4, "FRI": 5, "SAT": 6,
	"JAN": 1, "FEB": 2, "MAR": 3,
	"APR": 4, "MAY": 5, "JUN": 6,
	"JUL": 7, "AUG": 8, "SEP": 9,
	"OCT": 10, "NOV": 11, "DEC": 12,
}

// LookupSymbol resolves a three letter weekday or month name to its
// canonical number. Weekdays map SUN..SAT to 0..6, months JAN..DEC to 1..12.
func LookupSymbol(name string) (int, bool) {
	n, ok := symbols[name]
	return n, ok
}

func typeFor(r rune) TokenType {
	switch {
	case unicode.IsSpace(r):
		return TokenWhite
	case isDigit(r):
		return TokenInteger
	case r == '*':
		return TokenWildcard
	case r == ',':
		return TokenComma
	case r == '-':
		return TokenRange
	case r == '/':
		return TokenSlash
	case unicode.IsLetter(r):
		return TokenSymbol
	default:
		return TokenUnknown
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
