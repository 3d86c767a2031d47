package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/recipe-ai/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the default logger after a test calls Setup
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"chatty", slog.LevelInfo, true},
	}

	for _, tc := range tests {
		level, err := logger.ParseLevel(tc.input)
		assert.Equal(t, tc.expected, level, "level for %q", tc.input)
		assert.Equal(t, tc.wantErr, err != nil, "error for %q", tc.input)
	}
}

func TestSetup_JSONAtLevel(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hidden")
	l.Warn("shown", "component", "test")
	slog.Error("via default")

	entries := buf.Entries(t)
	require.Len(t, entries, 2)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.Equal(t, "via default", entries[1]["msg"], "Setup should install the default logger")
}

func TestSetup_InvalidLevel(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.Setup(logger.LoggerConfig{Level: "loud", Output: buf})
	require.NoError(t, err)

	l.Debug("hidden")
	entries := buf.Entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, "loud", entries[0]["configured_level"])
}

func TestSetup_TextFormat(t *testing.T) {
	restoreDefault(t)
	buf := &logger.TestLogBuffer{}

	l, err := logger.Setup(logger.LoggerConfig{Level: "info", Format: "text", Output: buf})
	require.NoError(t, err)

	l.Info("plain", "key", "value")
	assert.Contains(t, buf.String(), "msg=plain")
	assert.Contains(t, buf.String(), "key=value")
}

func TestSetup_UnknownFormat(t *testing.T) {
	_, err := logger.Setup(logger.LoggerConfig{Format: "xml"})
	assert.Error(t, err)
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()

	ctxLogger, _ := logger.NewTestLogger(t)
	fallback, _ := logger.NewTestLogger(t)

	ctx := logger.WithLogger(context.Background(), ctxLogger)
	assert.Same(t, ctxLogger, logger.FromContext(ctx))
	assert.Same(t, ctxLogger, logger.FromContextOrDefault(ctx, fallback))

	empty := context.Background()
	assert.Nil(t, logger.FromContext(empty))
	assert.Same(t, fallback, logger.FromContextOrDefault(empty, fallback))
	assert.NotNil(t, logger.FromContextOrDefault(empty, nil))
}
