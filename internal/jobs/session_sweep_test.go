package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository/memstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSweepOnceRemovesOnlyExpired(t *testing.T) {
	store := memstore.New()
	ctx := context.Background()
	now := time.Date(2026, 1, 25, 9, 0, 0, 0, time.UTC)

	for token, expiry := range map[string]time.Time{
		"expired":  now.Add(-time.Minute),
		"boundary": now,
		"valid":    now.Add(time.Hour),
	} {
		if err := store.CreateSession(ctx, model.Session{Token: token, UserID: 1, ExpiresAt: expiry}); err != nil {
			t.Fatalf("create session: %v", err)
		}
	}

	var swept int64
	SweepOnce(ctx, store, now, time.Second, func(n int64) { swept = n }, discardLogger())
	if swept != 2 {
		t.Fatalf("expected 2 swept sessions, got %d", swept)
	}
	if store.SessionCount() != 1 {
		t.Fatalf("expected only the valid session to remain, got %d", store.SessionCount())
	}
}

type failingSweeper struct{}

func (failingSweeper) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, errors.New("db down")
}

func TestSweepOnceSurvivesErrors(t *testing.T) {
	called := false
	SweepOnce(context.Background(), failingSweeper{}, time.Now(), time.Second, func(int64) { called = true }, discardLogger())
	if called {
		t.Fatalf("expected callback to be skipped on error")
	}
}

func TestStartSessionSweepJobDisabled(t *testing.T) {
	if StartSessionSweepJob(context.Background(), SweepConfig{}, memstore.New(), discardLogger()) {
		t.Fatalf("expected zero interval to disable the job")
	}
	if StartSessionSweepJob(context.Background(), SweepConfig{Interval: time.Minute}, nil, discardLogger()) {
		t.Fatalf("expected nil store to disable the job")
	}
}

type countingSweeper struct {
	calls atomic.Int64
}

func (c *countingSweeper) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestStartSessionSweepJobTicksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sweeper := &countingSweeper{}
	if !StartSessionSweepJob(ctx, SweepConfig{Interval: 5 * time.Millisecond}, sweeper, discardLogger()) {
		t.Fatalf("expected job to start")
	}

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least two sweeps, got %d", sweeper.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
}
