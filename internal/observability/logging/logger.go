package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"pressroom/internal/handler/http/requestid"
	"pressroom/pkg/config"
)

// Output formats accepted by LOG_FORMAT.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Options configures New.
type Options struct {
	Level  slog.Level
	Format string
	Writer io.Writer
}

// NewLogger creates a logger on stdout configured by LOG_LEVEL
// (debug, info, warn, error; default info) and LOG_FORMAT (json, text).
func NewLogger() *slog.Logger {
	return New(Options{
		Level:  ParseLevel(config.GetEnvString("LOG_LEVEL", "info")),
		Format: config.GetEnvString("LOG_FORMAT", FormatJSON),
		Writer: os.Stdout,
	})
}

// New creates a logger from explicit options.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	handlerOpts := &slog.HandlerOptions{
		Level:     opts.Level,
		AddSource: opts.Level <= slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, FormatText) {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level. Unknown names give info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns logger enriched with the request ID and the trace ID
// found in ctx. Missing values are left out.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if reqID := requestid.FromContext(ctx); reqID != "" {
		logger = logger.With(slog.String("request_id", reqID))
	}
	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		logger = logger.With(slog.String("trace_id", sc.TraceID().String()))
	}
	return logger
}

type contextKey string

const loggerContextKey contextKey = "logger"

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}
