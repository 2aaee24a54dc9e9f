package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"insight-mailer/internal/bootstrap"
	"insight-mailer/internal/config"
	"insight-mailer/internal/observability"
	"insight-mailer/internal/scheduler"
)

func main() {
	logger := observability.NewLogger()
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load configuration", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}
	defer deps.Cleanup()

	loc, err := cfg.Schedule.Location()
	if err != nil {
		logger.Fatal(ctx, "invalid schedule timezone", err)
	}

	// Provider changes made through the admin server invalidate our cache
	go func() {
		if err := deps.Registry.Listen(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "provider change listener stopped with error", err)
		}
	}()

	s := scheduler.New(logger)
	s.Register(deps.DispatchJob, scheduler.Window{Hours: cfg.Schedule.CheckHours, Location: loc})
	if cfg.Generation.Interval() > 0 {
		s.Register(deps.GenerationJob, scheduler.HoursOrAlways(cfg.Generation.CheckHours, loc))
	} else {
		logger.Info(ctx, "insight generation is not scheduled, GENERATION_INTERVAL_HOURS is 0")
	}

	logger.Info(ctx, "Starting scheduler process...")
	if err := s.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "scheduler stopped with error", err)
	}
	logger.Info(ctx, "Scheduler process stopped")
}
