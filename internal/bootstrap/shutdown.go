package bootstrap

import (
	"context"

	"github.com/osse101/foundry90/internal/database"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/scheduler"
	"github.com/osse101/foundry90/internal/server"
	"github.com/osse101/foundry90/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	UnlockReminders    *worker.UnlockReminderWorker
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Pool               database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Reminder timers, scheduler and job pool
// 3. Event publisher (flush pending events)
// 4. Store pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.UnlockReminders != nil {
		if err := components.UnlockReminders.Shutdown(ctx); err != nil {
			logger.Error(LogMsgReminderShutdownFailed, "error", err)
		}
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Pool != nil {
		components.Pool.Close()
	}

	logger.Info(LogMsgServerStopped)
}
