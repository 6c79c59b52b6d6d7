package lazyval

import (
	"context"
	"log/slog"
	"time"
)

// Purge drops the current value if it is stale and disposes it, releasing
// its resources without waiting for the next Get. It never computes.
func (v *Value[T]) Purge() bool {
	startTime := now()
	defer v.mtr.ObserveRequest(MethodPurge, startTime)

	superseded := v.release(true)
	if superseded == nil {
		return false
	}

	v.logger.Debug("stale value purged")
	v.disposeValue(MethodPurge, superseded.val)
	return true
}

// SchedulePurge runs Purge every interval until ctx is done.
// The returned channel is closed when the purge loop exits.
func (v *Value[T]) SchedulePurge(ctx context.Context, interval time.Duration) chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				v.logger.Debug("purge loop stopped", slog.Any("reason", ctx.Err()))
				return
			case <-ticker.C:
				v.Purge()
			}
		}
	}()
	return done
}
