package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/focushub/internal/clock"
	"github.com/five82/focushub/internal/resource"
)

// Refresher is a store that can be asked to re-fetch.
type Refresher interface {
	Refresh(ctx context.Context) *resource.Request
}

// StartPoller refreshes every target at a fixed cadence until ctx is done or
// the returned stop is called. A non-positive interval disables polling.
// A refresh that lands while a fetch is in flight joins that fetch.
func StartPoller(ctx context.Context, sched clock.Scheduler, interval time.Duration, logger *slog.Logger, targets ...Refresher) (stop func()) {
	if interval <= 0 || len(targets) == 0 {
		return func() {}
	}
	if logger == nil {
		logger = slog.Default()
	}

	cancel := sched.Every(interval, func() {
		if ctx.Err() != nil {
			return
		}
		logger.Debug("periodic refresh", "targets", len(targets))
		for _, t := range targets {
			t.Refresh(ctx)
		}
	})
	release := context.AfterFunc(ctx, cancel)
	return func() {
		release()
		cancel()
	}
}
