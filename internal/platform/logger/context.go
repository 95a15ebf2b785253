package logger

import (
	"context"
	"log/slog"
)

// loggerKey is the context key type for the request-scoped logger.
type loggerKey struct{}

// WithLogger returns a new context carrying the given logger.
// Handlers and middleware use this to propagate a logger enriched with
// request-scoped attributes (trace id, user id) down the call chain.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// FromContext returns the logger stored in the context, or the default
// logger if the context carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return slog.Default()
}

// FromContextOrDefault returns the logger stored in the context, or the
// provided fallback if the context carries none.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
