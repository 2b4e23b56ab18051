package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerFromCtx_Attached(t *testing.T) {
	t.Setenv("DGN", "local")
	logger := NewLogger()
	ctx := LoggerWithCtx(context.Background(), logger)

	assert.Same(t, logger, LoggerFromCtx(ctx))
	// Attaching the same logger again keeps the context.
	assert.Equal(t, ctx, LoggerWithCtx(ctx, logger))
}

func TestLoggerFromCtx_Fallback(t *testing.T) {
	l := LoggerFromCtx(context.Background())
	require.NotNil(t, l)
	l.Infow("no logger attached")
}

func TestGetChildLogger(t *testing.T) {
	t.Setenv("DGN", "local")
	parent := NewLogger()
	child := GetChildLogger(parent, map[string]string{"run_id": "abc"})
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestNewLoggerWithLevel(t *testing.T) {
	l := NewLoggerWithLevel(zapcore.WarnLevel, false)
	require.NotNil(t, l)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
}
