package storage

import (
	"context"
	"time"
)

// withCallTimeout bounds a single storage round-trip. A zero duration
// leaves the caller's context untouched.
func withCallTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
