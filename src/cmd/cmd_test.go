package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yashkumarverma/minicron/src/utils"
	"github.com/yashkumarverma/minicron/src/utils/cache"
)

func run(t *testing.T, config *utils.Config, args ...string) (string, error) {
	t.Helper()
	if config == nil {
		config = &utils.Config{Timezone: "UTC", CacheTTL: time.Hour, CacheKeyPrefix: "test"}
	}
	root := NewRootCmd(config)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFieldCmd(t *testing.T) {
	out, err := run(t, nil, "field", "minutes", "17, 19/3, 1")
	require.NoError(t, err)
	assert.Equal(t, "1 17 19 22 25 28 31 34 37 40 43 46 49 52 55 58\n", out)
}

func TestFieldCmd_JoinsArguments(t *testing.T) {
	out, err := run(t, nil, "field", "dow", "SUN,", "MON,", "TUE-THU/1,", "THU-SAT")
	require.NoError(t, err)
	assert.Equal(t, "0 1 2 3 4 5 6\n", out)
}

func TestFieldCmd_ShiftedFlag(t *testing.T) {
	out, err := run(t, nil, "--shifted-dow", "field", "dow", "*")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4 5 6 7\n", out)

	_, err = run(t, nil, "field", "dow", "7")
	assert.Error(t, err)
}

func TestFieldCmd_Errors(t *testing.T) {
	_, err := run(t, nil, "field", "seconds", "*")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")

	_, err = run(t, nil, "field", "month", "100-200/2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start value out of range")
}

func TestExprCmd(t *testing.T) {
	out, err := run(t, nil, "expr", "*/15 9-17 * * MON-FRI")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "minutes       0 15 30 45", lines[0])
	assert.Equal(t, "hours         9 10 11 12 13 14 15 16 17", lines[1])
	assert.Equal(t, "day-of-week   1 2 3 4 5", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "year          1970 1971"))
}

func TestExprCmd_Next(t *testing.T) {
	out, err := run(t, nil, "expr", "--next", "2", "0 0 * * *")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "next "))
	assert.Contains(t, out, "T00:00:00Z")
}

func TestExprCmd_Invalid(t *testing.T) {
	_, err := run(t, nil, "expr", "* * *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 or 6 fields")
}

func TestCatalogCmd(t *testing.T) {
	out, err := run(t, nil, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "business_hours")
	assert.NotContains(t, out, "invalid")

	out, err = run(t, nil, "catalog", "quarterly")
	require.NoError(t, err)
	assert.Contains(t, out, "month         1 4 7 10\n")

	_, err = run(t, nil, "catalog", "missing")
	assert.Error(t, err)
}

func TestCatalogCmd_ShiftedReportsInvalid(t *testing.T) {
	out, err := run(t, nil, "--shifted-dow", "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid")
}

func TestRootCmd_CacheUnavailableFallsBack(t *testing.T) {
	config := &utils.Config{
		Timezone:       "UTC",
		CacheEnabled:   true,
		CacheURLScheme: "memcached",
	}
	out, err := run(t, config, "field", "hours", "*/12")
	require.NoError(t, err)
	assert.Equal(t, "0 12\n", out)
}

// closeCounter is a cache.Store that never holds anything and counts Close calls.
type closeCounter struct {
	closed int
}

func (s *closeCounter) GetJSON(context.Context, string, any) (bool, error) { return false, nil }

func (s *closeCounter) SetJSONWithExpiry(context.Context, string, any, time.Duration) error {
	return nil
}

func (s *closeCounter) Close() error {
	s.closed++
	return nil
}

func runWithStore(t *testing.T, store cache.Store, args ...string) error {
	t.Helper()
	a := newApp()
	a.newStore = func(context.Context, *utils.Config) (cache.Store, error) { return store, nil }
	root := newRootCmd(&utils.Config{Timezone: "UTC"}, a)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestRootCmd_ClosesStore(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"field ok", []string{"field", "hours", "*/12"}, false},
		{"field error", []string{"field", "month", "13"}, true},
		{"expr error", []string{"expr", "* * *"}, true},
		{"catalog error", []string{"catalog", "missing"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &closeCounter{}
			err := runWithStore(t, store, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, store.closed)
		})
	}
}
