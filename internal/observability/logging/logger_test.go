package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"pressroom/internal/handler/http/requestid"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: slog.LevelInfo, Format: FormatJSON, Writer: &buf})

	logger.Debug("hidden")
	logger.Info("article created", slog.Int64("article_id", 1))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "article created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 1, entry["article_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: slog.LevelDebug, Format: "TEXT", Writer: &buf})

	logger.Debug("visible")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewLogger_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "text")

	logger := NewLogger()
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Writer: &buf})

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	ctx := requestid.WithRequestID(context.Background(), "req-1")
	ctx = trace.ContextWithSpanContext(ctx, sc)

	WithRequestID(ctx, base).Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
}

func TestWithRequestID_NothingInContext(t *testing.T) {
	base := slog.Default()
	assert.Same(t, base, WithRequestID(context.Background(), base))
}

func TestFromContext(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	logger := New(Options{Writer: &bytes.Buffer{}})
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}
