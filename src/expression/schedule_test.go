package expression

import (
	"context"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashkumarverma/minicron/src/cronfield"
)

func TestExpression_ScheduleMatchesRobfig(t *testing.T) {
	specs := []string{
		"* * * * *",
		"*/15 0-4,8 * JAN-MAR MON-FRI",
		"0 9-17 * * 1-5",
		"0 0 1 */3 *",
		"0 8,12,18 * * *",
		"30 2 15 6 *",
		"5-50/5 * 1-10 * SUN",
		"0 0 */1 * MON",
		"0 0 * * */1",
		"*/1 */2 * * *",
	}
	p := NewParser(testConfig(), nil, nil)
	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			expr, err := p.Parse(context.Background(), spec)
			require.NoError(t, err)
			got, err := expr.Schedule(time.Local)
			require.NoError(t, err)

			parsed, err := cron.ParseStandard(spec)
			require.NoError(t, err)
			want, ok := parsed.(*cron.SpecSchedule)
			require.True(t, ok)

			assert.Equal(t, want.Second, got.Second, "second")
			assert.Equal(t, want.Minute, got.Minute, "minute")
			assert.Equal(t, want.Hour, got.Hour, "hour")
			assert.Equal(t, want.Dom, got.Dom, "dom")
			assert.Equal(t, want.Month, got.Month, "month")
			assert.Equal(t, want.Dow, got.Dow, "dow")
		})
	}
}

func TestExpression_ScheduleShiftedDaysOfWeek(t *testing.T) {
	cfg := testConfig()
	cfg.ShiftedDaysOfWeek = true
	p := NewParser(cfg, nil, nil)

	expr, err := p.Parse(context.Background(), "0 0 * * 1,7")
	require.NoError(t, err)
	got, err := expr.Schedule(time.UTC)
	require.NoError(t, err)
	// 1 is Sunday and 7 is Saturday.
	assert.Equal(t, uint64(1<<0|1<<6), got.Dow)
}

func TestExpression_ScheduleRestrictedYear(t *testing.T) {
	p := NewParser(testConfig(), nil, nil)

	expr, err := p.Parse(context.Background(), "0 0 1 1 * 2030")
	require.NoError(t, err)
	_, err = expr.Schedule(time.UTC)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year field")

	expr, err = p.Parse(context.Background(), "0 0 1 1 * 1970-2099")
	require.NoError(t, err)
	_, err = expr.Schedule(time.UTC)
	assert.NoError(t, err)
}

func TestExpression_Next(t *testing.T) {
	p := NewParser(testConfig(), nil, nil)
	expr, err := p.Parse(context.Background(), "0 9 * * MON")
	require.NoError(t, err)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // Monday
	times, err := expr.Next(from, 3)
	require.NoError(t, err)
	var got []string
	for _, ts := range times {
		got = append(got, ts.UTC().Format(time.RFC3339))
	}
	assert.Equal(t, []string{
		"2024-01-01T09:00:00Z",
		"2024-01-08T09:00:00Z",
		"2024-01-15T09:00:00Z",
	}, got)
}

func TestExpression_NextImpossibleDate(t *testing.T) {
	p := NewParser(testConfig(), nil, nil)
	expr, err := p.Parse(context.Background(), "0 0 30 FEB *")
	require.NoError(t, err)

	times, err := expr.Next(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestExpression_StarStepOneKeepsAndSemantics(t *testing.T) {
	p := NewParser(testConfig(), nil, nil)
	expr, err := p.Parse(context.Background(), "0 0 */1 * MON")
	require.NoError(t, err)
	assert.True(t, expr.Field(cronfield.DayOfMonth).Wildcard())

	// 2024-01-02 is a Tuesday; the next Monday is the 8th.
	times, err := expr.Next(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	require.Len(t, times, 1)
	assert.Equal(t, "2024-01-08T00:00:00Z", times[0].UTC().Format(time.RFC3339))
}

func TestFieldValues_Wildcard(t *testing.T) {
	tests := map[string]bool{
		"*":    true,
		"*/1":  true,
		"*/01": true,
		"*/2":  false,
		"1-31": false,
		"1/1":  false,
		"":     false,
	}
	for text, want := range tests {
		assert.Equal(t, want, FieldValues{Text: text}.Wildcard(), text)
	}
}
