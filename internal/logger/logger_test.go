package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-service", entry[AttrKeyService])
	assert.Equal(t, "1.0.0", entry[AttrKeyVersion])
	assert.Equal(t, EnvironmentTest, entry[AttrKeyEnvironment])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: LogLevelWarn, Format: LogFormatText}, &buf)

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown warn")
	assert.Contains(t, out, "shown error")
}

func TestRequestIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("with id")
	assert.True(t, strings.Contains(buf.String(), `"request_id":"test-req-123"`))

	assert.Empty(t, GetRequestID(context.Background()))
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGenerateRequestID_Unique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, LogFormatText, cfg.Format)
	assert.Equal(t, LogLevelInfo, cfg.Level)
	assert.False(t, cfg.AddSource)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
}

func TestSessionIDContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)

	ctx := WithSessionID(WithRequestID(context.Background(), "req-1"), "sess-9")
	id, ok := SessionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "sess-9", id)

	FromContext(ctx).Info("acting")
	out := buf.String()
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"session_id":"sess-9"`)

	_, ok = SessionIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{Level: "DEBUG"}.LogLevel())
	assert.Equal(t, slog.LevelWarn, Config{Level: "warning"}.LogLevel())
	assert.Equal(t, slog.LevelError, Config{Level: "error"}.LogLevel())
	assert.Equal(t, slog.LevelInfo, Config{Level: "bogus"}.LogLevel())
}
