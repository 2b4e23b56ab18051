package expression

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/yashkumarverma/minicron/src/cronfield"
)

// starBit is robfig/cron's marker for a field written as '*'. When either
// day field carries it, day of month and day of week are ANDed instead of
// ORed.
const starBit = 1 << 63

// Schedule converts the expression into a robfig/cron schedule firing at
// second zero. Shifted weekdays 1-7 map to 0-6 (1 is Sunday). The year
// field has no SpecSchedule equivalent, so only a full year range converts.
func (e *Expression) Schedule(loc *time.Location) (*cron.SpecSchedule, error) {
	years := e.fields[cronfield.Year]
	lower, upper := cronfield.Year.Bounds()
	if len(years.Values) != upper-lower+1 {
		return nil, fmt.Errorf("year field %q cannot be represented by a cron schedule", years.Text)
	}
	if loc == nil {
		loc = time.Local
	}

	dowOffset := 0
	if e.ShiftedDaysOfWeek {
		dowOffset = -1
	}
	return &cron.SpecSchedule{
		Second:   1 << 0,
		Minute:   bits(e.fields[cronfield.Minutes], 0),
		Hour:     bits(e.fields[cronfield.Hours], 0),
		Dom:      bits(e.fields[cronfield.DayOfMonth], 0),
		Month:    bits(e.fields[cronfield.Month], 0),
		Dow:      bits(e.fields[cronfield.DayOfWeek], dowOffset),
		Location: loc,
	}, nil
}

// Next returns the next n activation times after from, stopping early when
// the schedule has no further activation.
func (e *Expression) Next(from time.Time, n int) ([]time.Time, error) {
	schedule, err := e.Schedule(from.Location())
	if err != nil {
		return nil, err
	}
	var times []time.Time
	for i := 0; i < n; i++ {
		from = schedule.Next(from)
		if from.IsZero() {
			break
		}
		times = append(times, from)
	}
	return times, nil
}

func bits(f FieldValues, offset int) uint64 {
	var b uint64
	for _, v := range f.Values {
		b |= 1 << uint(v+offset)
	}
	if f.Wildcard() {
		b |= starBit
	}
	return b
}
