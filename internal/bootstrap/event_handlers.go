package bootstrap

import (
	"fmt"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/metrics"
	"github.com/osse101/foundry90/internal/notify"
	"github.com/osse101/foundry90/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	AdvanceChecker  worker.AdvanceChecker
	EventLogService eventlog.Service
	Config          *config.Config
	Clock           clock.Clock
}

// RegisterEventHandlers sets up all event subscribers:
// metrics collector, audit event log, Discord notifier and the unlock
// reminder worker. The returned worker must be shut down on exit.
func RegisterEventHandlers(deps EventHandlerDependencies) (*worker.UnlockReminderWorker, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	logger.Info(LogMsgEventLoggerInitialized)

	var unlockNotifier worker.UnlockNotifier = notify.LogNotifier{}
	if deps.Config.DiscordEnabled() {
		discord, err := notify.NewDiscord(deps.Config.DiscordWebhookID, deps.Config.DiscordWebhookToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
		}
		discord.Subscribe(deps.EventBus)
		unlockNotifier = discord
		logger.Info(LogMsgDiscordNotifierEnabled, "webhook_id", deps.Config.DiscordWebhookID)
	} else {
		logger.Info(LogMsgDiscordNotifierDisabled)
	}

	reminders := worker.NewUnlockReminderWorker(deps.AdvanceChecker, unlockNotifier, deps.Clock)
	reminders.Subscribe(deps.EventBus)
	logger.Info(LogMsgUnlockReminderRegistered)

	return reminders, nil
}
