package feed

import (
	"context"
	"time"
)

// throttle paces successive fetches so two polls never run closer together
// than the configured gap. It is owned by a single poller goroutine.
type throttle struct {
	gap  time.Duration
	last time.Time
}

func newThrottle(gap time.Duration) *throttle {
	return &throttle{gap: gap}
}

// wait sleeps until the gap since the previous fetch has elapsed, returning
// early when ctx is cancelled. It reports whether the caller may proceed.
func (t *throttle) wait(ctx context.Context) bool {
	if t.gap <= 0 {
		return ctx.Err() == nil
	}
	remaining := t.gap - time.Since(t.last)
	if remaining > 0 {
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
	}
	t.last = time.Now()
	return ctx.Err() == nil
}
