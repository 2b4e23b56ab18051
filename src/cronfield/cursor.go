package cronfield

import "errors"

// ErrEndOfInput is returned by Cursor.Read once the buffer is exhausted.
// It marks the natural end of the text and is handled by the lexer; it never
// reaches callers of Parser.ParseField.
var ErrEndOfInput = errors.New("end of input")

// Cursor is a backtrackable reader over an immutable rune buffer.
type Cursor struct {
	buffer []rune
	pos    int
}

// NewCursor creates a cursor positioned before the first rune of text.
func NewCursor(text string) *Cursor {
	return &Cursor{buffer: []rune(text)}
}

// Len returns the number of runes in the buffer.
func (c *Cursor) Len() int {
	return len(c.buffer)
}

// Read returns the next rune and advances the cursor.
func (c *Cursor) Read() (rune, error) {
	if c.pos >= len(c.buffer) {
		return 0, ErrEndOfInput
	}
	r := c.buffer[c.pos]
	c.pos++
	return r, nil
}

// Offset returns the index of the last rune returned by Read, or -1 if
// nothing has been read.
func (c *Cursor) Offset() int {
	return c.pos - 1
}

// Back rewinds the cursor by n runes, never past the start of the buffer.
func (c *Cursor) Back(n int) {
	if c.pos-n >= 0 {
		c.pos -= n
	} else {
		c.pos = 0
	}
}

// Text returns the runes in [start, end) as a string, or "" when the bounds
// do not describe a non-empty slice of the buffer.
func (c *Cursor) Text(start, end int) string {
	if start < 0 || start >= len(c.buffer) || end <= start || end > len(c.buffer) {
		return ""
	}
	return string(c.buffer[start:end])
}
