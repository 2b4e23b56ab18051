package cronfield

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Parser parses field text into value sets. The zero value parses day of
// week in the 0-6 convention.
type Parser struct {
	shiftedDaysOfWeek bool
}

// NewParser creates a parser. With shiftedDaysOfWeek set, day of week is
// bounded by 1-7 instead of 0-6. Weekday names keep their canonical 0-6
// values in both modes, so SUN is out of range when shifted.
func NewParser(shiftedDaysOfWeek bool) *Parser {
	return &Parser{shiftedDaysOfWeek: shiftedDaysOfWeek}
}

// ShiftedDaysOfWeek reports the day of week convention of the parser.
func (p *Parser) ShiftedDaysOfWeek() bool {
	return p.shiftedDaysOfWeek
}

// Bounds returns the inclusive range accepted for field by this parser.
func (p *Parser) Bounds(field Field) (lower, upper int) {
	lower, upper = field.Bounds()
	if field == DayOfWeek && p.shiftedDaysOfWeek {
		return lower + 1, upper + 1
	}
	return lower, upper
}

// ParseField returns the ascending, duplicate free values denoted by text
// for field. The error is a *SyntaxError or a *LexicalError.
func (p *Parser) ParseField(field Field, text string) ([]int, error) {
	if !field.valid() {
		return nil, fmt.Errorf("unknown field %v", field)
	}
	lower, upper := p.Bounds(field)
	fp := &fieldParser{
		lex:    NewLexer(text),
		lower:  lower,
		upper:  upper,
		values: make(map[int]struct{}),
	}
	if err := fp.parse(); err != nil {
		return nil, err
	}
	return slices.Sorted(maps.Keys(fp.values)), nil
}

// fieldParser holds the state of a single ParseField call.
type fieldParser struct {
	lex          *Lexer
	lower, upper int
	values       map[int]struct{}
}

func (p *fieldParser) parse() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	switch tok.Type {
	case TokenWildcard:
		return p.wildcard()
	case TokenInteger:
		return p.list(tok)
	case TokenEOF:
		return p.errorf("unexpected end of input")
	default:
		return p.errorf("unexpected token %s, expected '*' or a number", tok)
	}
}

// wildcard parses what follows a leading '*'.
func (p *fieldParser) wildcard() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	switch tok.Type {
	case TokenEOF:
		p.stride(p.lower, p.upper, 1)
		return nil
	case TokenSlash:
		step, err := p.step()
		if err != nil {
			return err
		}
		if tok, err = p.lex.Next(); err != nil {
			return err
		}
		if tok.Type != TokenEOF {
			return p.errorf("unexpected token %s, a wildcard step must be followed by end of input", tok)
		}
		p.stride(p.lower, p.upper, step)
		return nil
	default:
		return p.errorf("unexpected token %s, wildcard must be followed by end of input or a '/' and a step", tok)
	}
}

// list parses comma separated items starting with the integer tok.
func (p *fieldParser) list(tok Token) error {
	for {
		terminated, err := p.item(tok)
		if err != nil {
			return err
		}
		next, err := p.lex.Next()
		if err != nil {
			return err
		}
		switch next.Type {
		case TokenEOF:
			return nil
		case TokenComma:
		default:
			if terminated {
				return p.errorf("unexpected token %s, expected ',' or end of input", next)
			}
			return p.errorf("unexpected token %s, a number must be followed by '/' and a step, "+
				"'-' and an upper bound, ',' and more numbers, or end of input", next)
		}
		if tok, err = p.lex.Next(); err != nil {
			return err
		}
		if tok.Type != TokenInteger {
			return p.errorf("unexpected token %s, only numbers can follow a ','", tok)
		}
	}
}

// item parses a single list element starting with the integer tok. It
// reports whether the element had a range or step part.
func (p *fieldParser) item(tok Token) (bool, error) {
	start, err := p.integer(tok)
	if err != nil {
		return false, err
	}
	next, err := p.lex.LookAhead()
	if err != nil {
		return false, err
	}
	switch next.Type {
	case TokenRange:
		p.consume()
		return true, p.rangeItem(start)
	case TokenSlash:
		p.consume()
		step, err := p.step()
		if err != nil {
			return true, err
		}
		if err := p.checkBounds("start value", start); err != nil {
			return true, err
		}
		p.stride(start, p.upper, step)
		return true, nil
	default:
		if err := p.checkBounds("value", start); err != nil {
			return false, err
		}
		p.values[start] = struct{}{}
		return false, nil
	}
}

// rangeItem parses the remainder of start '-' end ('/' step)?.
func (p *fieldParser) rangeItem(start int) error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	if tok.Type != TokenInteger {
		return p.errorf("unexpected token %s, missing upper bound in range", tok)
	}
	end, err := p.integer(tok)
	if err != nil {
		return err
	}
	step := 1
	next, err := p.lex.LookAhead()
	if err != nil {
		return err
	}
	if next.Type == TokenSlash {
		p.consume()
		if step, err = p.step(); err != nil {
			return err
		}
	}
	if err := p.checkBounds("start value", start); err != nil {
		return err
	}
	if err := p.checkBounds("end value", end); err != nil {
		return err
	}
	if start > end {
		return p.errorf("range start %d is greater than range end %d", start, end)
	}
	p.stride(start, end, step)
	return nil
}

// step parses the integer following a '/'.
func (p *fieldParser) step() (int, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return 0, err
	}
	if tok.Type != TokenInteger {
		return 0, p.errorf("unexpected token %s, missing step after '/'", tok)
	}
	step, err := p.integer(tok)
	if err != nil {
		return 0, err
	}
	if step <= 0 {
		return 0, p.errorf("step must be > 0")
	}
	return step, nil
}

// consume drops the token already buffered by LookAhead, which cannot fail.
func (p *fieldParser) consume() {
	_, _ = p.lex.Next()
}

func (p *fieldParser) integer(tok Token) (int, error) {
	n, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, p.errorf("value out of range: %s", tok.Text)
	}
	return n, nil
}

func (p *fieldParser) checkBounds(what string, v int) error {
	if v < p.lower || v > p.upper {
		return p.errorf("%s out of range: %d not in [%d..%d]", what, v, p.lower, p.upper)
	}
	return nil
}

// stride adds from, from+step, ... up to and including to.
func (p *fieldParser) stride(from, to, step int) {
	for v := from; v <= to; v += step {
		p.values[v] = struct{}{}
		if to-v < step {
			break
		}
	}
}

func (p *fieldParser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.lex.Offset(), Msg: fmt.Sprintf(format, args...)}
}
