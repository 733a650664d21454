package jobs

import (
	"context"
	"log/slog"
	"time"
)

type SessionSweeper interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type SweepConfig struct {
	Interval time.Duration
	Timeout  time.Duration
	Now      func() time.Time
	// OnSwept is called with the number of rows removed on every tick that
	// succeeded.
	OnSwept func(int64)
}

// StartSessionSweepJob periodically deletes expired session rows until ctx is
// cancelled. Expired sessions are already rejected at lookup, so the job only
// reclaims storage. A non-positive interval disables it.
func StartSessionSweepJob(ctx context.Context, cfg SweepConfig, store SessionSweeper, logger *slog.Logger) bool {
	if cfg.Interval <= 0 {
		return false
	}
	if store == nil {
		logger.Warn("session sweep job disabled: store not configured")
		return false
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(cfg.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				SweepOnce(ctx, store, now().UTC(), timeout, cfg.OnSwept, logger)
			}
		}
	}()
	logger.Info("session sweep job started", "interval", cfg.Interval)
	return true
}

func SweepOnce(ctx context.Context, store SessionSweeper, now time.Time, timeout time.Duration, onSwept func(int64), logger *slog.Logger) {
	tickCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	removed, err := store.DeleteExpiredSessions(tickCtx, now)
	if err != nil {
		logger.Error("session sweep job error", "error", err)
		return
	}
	if onSwept != nil {
		onSwept(removed)
	}
	if removed > 0 {
		logger.Info("session sweep job removed expired sessions", "count", removed)
	}
}
