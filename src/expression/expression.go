package expression

import (
	"strconv"
	"strings"

	"github.com/yashkumarverma/minicron/src/cronfield"
)

// FieldValues is the parsed form of one field.
type FieldValues struct {
	Text   string
	Values []int
}

// Wildcard reports whether the field was written as '*' or '*/1', the
// forms robfig/cron marks with its star bit.
func (f FieldValues) Wildcard() bool {
	text := strings.TrimSpace(f.Text)
	if text == "*" {
		return true
	}
	step, ok := strings.CutPrefix(text, "*/")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(step))
	return err == nil && n == 1
}

// Expression holds the value sets of every field of a parsed expression.
// A five field expression has an implicit '*' year.
type Expression struct {
	Text              string
	ShiftedDaysOfWeek bool

	fields [6]FieldValues
}

// Field returns the parsed values of field.
func (e *Expression) Field(field cronfield.Field) FieldValues {
	return e.fields[field]
}

func (e *Expression) Minutes() []int     { return e.fields[cronfield.Minutes].Values }
func (e *Expression) Hours() []int       { return e.fields[cronfield.Hours].Values }
func (e *Expression) DaysOfMonth() []int { return e.fields[cronfield.DayOfMonth].Values }
func (e *Expression) Months() []int      { return e.fields[cronfield.Month].Values }
func (e *Expression) DaysOfWeek() []int  { return e.fields[cronfield.DayOfWeek].Values }
func (e *Expression) Years() []int       { return e.fields[cronfield.Year].Values }
