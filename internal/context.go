package internal

import (
	"context"
	"time"
)

type ctxKey string

// ContextAdminKey carries the authenticated admin through request contexts.
const ContextAdminKey ctxKey = "admin"

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
