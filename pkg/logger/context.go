package logger

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var loggerKey ctxKey

// With returns a context carrying the ambient logger extended with fields,
// so per-request attributes like the trace id follow the request down.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, loggerKey, From(ctx).With(fields...))
}

// From returns the logger carried by ctx, falling back to the process logger.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return L()
}
