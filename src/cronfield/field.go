package cronfield

import (
	"fmt"
	"strings"
)

// Field identifies a column of a cron expression.
type Field int

const (
	Minutes Field = iota
	Hours
	DayOfMonth
	Month
	DayOfWeek
	Year
)

type fieldSpec struct {
	name         string
	lower, upper int
}

var fieldSpecs = [...]fieldSpec{
	Minutes:    {"minutes", 0, 59},
	Hours:      {"hours", 0, 23},
	DayOfMonth: {"day-of-month", 1, 31},
	Month:      {"month", 1, 12},
	DayOfWeek:  {"day-of-week", 0, 6},
	Year:       {"year", 1970, 2099},
}

var fieldAliases = map[string]Field{
	"minute":       Minutes,
	"minutes":      Minutes,
	"min":          Minutes,
	"hour":         Hours,
	"hours":        Hours,
	"day-of-month": DayOfMonth,
	"dayofmonth":   DayOfMonth,
	"dom":          DayOfMonth,
	"month":        Month,
	"months":       Month,
	"day-of-week":  DayOfWeek,
	"dayofweek":    DayOfWeek,
	"dow":          DayOfWeek,
	"year":         Year,
	"years":        Year,
}

// Fields returns every field in the order it appears in an expression.
func Fields() []Field {
	return []Field{Minutes, Hours, DayOfMonth, Month, DayOfWeek, Year}
}

// ParseFieldName resolves a field by name, e.g. "hours", "dom" or "dow".
func ParseFieldName(name string) (Field, error) {
	f, ok := fieldAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown field %q", name)
	}
	return f, nil
}

// Bounds returns the inclusive canonical range of the field. Day of week
// is reported in its default 0-6 convention, see Parser.Bounds.
func (f Field) Bounds() (lower, upper int) {
	s := f.spec()
	return s.lower, s.upper
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldSpecs) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldSpecs[f].name
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < len(fieldSpecs)
}

func (f Field) spec() fieldSpec {
	if !f.valid() {
		return fieldSpec{}
	}
	return fieldSpecs[f]
}
