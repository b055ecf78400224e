package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultReapInterval = time.Minute

// SessionReaper releases the per-session state of expired sessions.
type SessionReaper interface {
	ReapExpired(ctx context.Context) (int, error)
}

// StartSessionReaper runs reaper every interval until ctx is cancelled.
// The returned channel is closed once the loop has stopped.
func StartSessionReaper(ctx context.Context, reaper SessionReaper, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if reaper == nil {
		close(done)
		return done
	}
	if interval <= 0 {
		interval = defaultReapInterval
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := reaper.ReapExpired(ctx); err != nil {
					logger.Warn("reap expired sessions", zap.Error(err))
				}
			}
		}
	}()
	return done
}
