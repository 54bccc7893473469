package http

import (
	"context"
	"log/slog"
	"time"
)

// StartWriteLimiterCleanup periodically forgets clients that have been idle
// for longer than idle. It blocks until ctx is cancelled.
func StartWriteLimiterCleanup(ctx context.Context, limiter *WriteLimiter, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	slog.Info("write limiter cleanup started",
		slog.Duration("interval", interval),
		slog.Duration("idle", idle))

	for {
		select {
		case <-ctx.Done():
			slog.Info("write limiter cleanup stopped")
			return
		case <-ticker.C:
			removed := limiter.Cleanup(idle)
			slog.Debug("write limiter cleanup completed",
				slog.Int("removed", removed),
				slog.Int("remaining", limiter.Len()))
		}
	}
}
