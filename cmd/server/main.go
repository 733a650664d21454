package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/auth"
	"github.com/MayankSaini-Byte/Study-Edge/internal/config"
	"github.com/MayankSaini-Byte/Study-Edge/internal/db"
	internalhttp "github.com/MayankSaini-Byte/Study-Edge/internal/http"
	"github.com/MayankSaini-Byte/Study-Edge/internal/jobs"
	"github.com/MayankSaini-Byte/Study-Edge/internal/metrics"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
	"github.com/MayankSaini-Byte/Study-Edge/internal/service"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		slog.Error("env file load failed", "error", err)
		os.Exit(1)
	}
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid mess timezone", "timezone", cfg.MessTimezone, "error", err)
		os.Exit(1)
	}

	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg.DatabaseURL, logger); err != nil {
			logger.Error("db migration failed", "error", err)
			os.Exit(1)
		}
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	store := repository.NewStore(db.NewStore(pool))
	authority := auth.NewAuthority(store, auth.WithTTL(cfg.SessionTTL))
	menu := service.NewMessMenu(store, loc, nil)

	seeded, err := menu.Seed(ctx)
	if err != nil {
		logger.Error("mess menu seed failed", "error", err)
		os.Exit(1)
	}
	if seeded > 0 {
		logger.Info("mess menu seeded", "days", seeded)
	}

	m := metrics.New()
	jobs.StartSessionSweepJob(ctx, jobs.SweepConfig{
		Interval: cfg.SessionSweepInterval,
		Timeout:  cfg.SessionSweepTimeout,
		OnSwept:  m.SessionsSwept,
	}, store, logger)

	server := internalhttp.NewServer(cfg, logger, m, authority, service.NewAssignments(store), service.NewTodos(store), menu)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("studyedge listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
