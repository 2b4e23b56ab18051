package cronfield

import "fmt"

// LexicalError reports a character that cannot start a token, or a three
// letter symbol that is not a known weekday or month name.
type LexicalError struct {
	Offset int
	Char   rune
	// Type is the category being lexed when the error occurred, or
	// TokenUnknown when the character could not be classified at all.
	Type TokenType
}

func (e *LexicalError) Error() string {
	if e.Type == TokenUnknown {
		return fmt.Sprintf("unexpected char '%c' at offset %d", e.Char, e.Offset)
	}
	return fmt.Sprintf("unexpected char '%c' at offset %d while parsing %s", e.Char, e.Offset, e.Type)
}

// SyntaxError reports a token sequence that does not match the field grammar.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}
