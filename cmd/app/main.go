// @title Foundry90 API
// @version 1.0
// @description Day advancement, streak and token ledger service for the 90-day program.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
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

	"github.com/osse101/foundry90/internal/achievement"
	"github.com/osse101/foundry90/internal/bootstrap"
	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/ledger"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/progress"
	"github.com/osse101/foundry90/internal/scheduler"
	"github.com/osse101/foundry90/internal/server"
	"github.com/osse101/foundry90/internal/unlock"
	"github.com/osse101/foundry90/internal/worker"
)

const (
	shutdownTimeout     = 30 * time.Second
	jobWorkers          = 2
	jobQueueSize        = 16
	eventCleanupPeriod  = 24 * time.Hour
	exitCodeStartupFail = 1
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(exitCodeStartupFail)
	}

	logCloser, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(exitCodeStartupFail)
	}
	defer func() { _ = logCloser.Close() }()

	if err := run(cfg); err != nil {
		logger.Error("Startup failed", "error", err)
		_ = logCloser.Close()
		os.Exit(exitCodeStartupFail)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()
	clk := clock.New()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg, clk)
	if err != nil {
		return err
	}

	catalog, err := achievement.Load(cfg.AchievementsConfigPath)
	if err != nil {
		repos.Pool.Close()
		return err
	}
	logger.Info("Achievement catalog loaded", "path", cfg.AchievementsConfigPath, "count", catalog.Len())

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		repos.Pool.Close()
		return err
	}

	progressService := progress.NewService(repos.Progress, catalog, publisher, clk, progress.Config{
		Policy: unlock.Policy{
			DefaultDelay: cfg.UnlockDefaultDelay,
			MinimumRest:  cfg.UnlockMinimumRest,
		},
		ProgramLength:     cfg.ProgramLengthDays,
		XPPerCompletedDay: cfg.XPPerCompletedDay,
		CacheSize:         cfg.ProgressCacheSize,
		CacheTTL:          cfg.ProgressCacheTTL,
	})
	ledgerService := ledger.NewService(repos.Ledger, publisher, clk)
	eventLogService := eventlog.NewService(repos.EventLog)

	reminders, err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		AdvanceChecker:  progressService,
		EventLogService: eventLogService,
		Config:          cfg,
		Clock:           clk,
	})
	if err != nil {
		repos.Pool.Close()
		return err
	}

	pool := worker.NewPool(jobWorkers, jobQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(eventCleanupPeriod, eventlog.NewCleanupJob(eventLogService, cfg.EventRetentionDays))

	srv := server.NewServer(server.Config{
		Port:               cfg.Port,
		APIKey:             cfg.APIKey,
		TrustedProxies:     cfg.TrustedProxies,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Version:            cfg.Version,
	}, repos.Pool, server.Services{
		Progress: progressService,
		Ledger:   ledgerService,
		EventLog: eventLogService,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		UnlockReminders:    reminders,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: publisher,
		Pool:               repos.Pool,
	})
	return runErr
}
