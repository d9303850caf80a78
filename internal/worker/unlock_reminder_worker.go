package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
)

// AdvanceChecker answers whether a user may start their next day
type AdvanceChecker interface {
	CanAdvance(ctx context.Context, userID string) (*domain.AdvanceStatus, error)
}

// UnlockNotifier delivers the "your next day is open" reminder
type UnlockNotifier interface {
	NotifyDayUnlocked(ctx context.Context, userID string, day int) error
}

// UnlockReminderWorker arms one timer per user at their next unlock time and
// notifies them when it fires. A later completion or end-day replaces the timer.
type UnlockReminderWorker struct {
	BaseWorker
	checker  AdvanceChecker
	notifier UnlockNotifier
	clock    clock.Clock
}

// NewUnlockReminderWorker creates the worker. A nil clock uses wall time.
func NewUnlockReminderWorker(checker AdvanceChecker, notifier UnlockNotifier, clk clock.Clock) *UnlockReminderWorker {
	if clk == nil {
		clk = clock.New()
	}
	w := &UnlockReminderWorker{checker: checker, notifier: notifier, clock: clk}
	w.init()
	return w
}

// Subscribe subscribes the worker to the events that move an unlock time
func (w *UnlockReminderWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.DayCompleted, w.handleDayCompleted)
	bus.Subscribe(event.DayEnded, w.handleDayEnded)
}

func (w *UnlockReminderWorker) handleDayCompleted(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.DayCompletedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgReminderPayloadInvalid, "type", e.Type, "error", err)
		return nil
	}
	w.Schedule(ctx, p.UserID, p.CurrentDay, p.NextDayUnlocksAt)
	return nil
}

func (w *UnlockReminderWorker) handleDayEnded(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.DayEndedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgReminderPayloadInvalid, "type", e.Type, "error", err)
		return nil
	}
	w.Schedule(ctx, p.UserID, p.CurrentDay, p.NextDayUnlocksAt)
	return nil
}

// Schedule arms the reminder for userID. Unlock times already in the past
// fire immediately.
func (w *UnlockReminderWorker) Schedule(ctx context.Context, userID string, day int, unlockAt time.Time) {
	id, err := uuid.Parse(userID)
	if err != nil || unlockAt.IsZero() {
		return
	}
	delay := unlockAt.Sub(w.clock.Now())
	if delay < 0 {
		delay = 0
	}
	if w.schedule(id, delay, func() { w.remind(userID, day) }) {
		logger.FromContext(ctx).Debug(LogMsgReminderScheduled,
			LogFieldUserID, userID, LogFieldDay, day, LogFieldUnlockAt, unlockAt)
	}
}

// Cancel drops a pending reminder
func (w *UnlockReminderWorker) Cancel(userID string) {
	if id, err := uuid.Parse(userID); err == nil {
		w.stopTimer(id)
	}
}

// Pending returns the number of armed reminders
func (w *UnlockReminderWorker) Pending() int {
	return w.pending()
}

// remind re-checks the lock before notifying, since an admin reset or a
// re-scheduled unlock may have changed it after the timer was armed
func (w *UnlockReminderWorker) remind(userID string, day int) {
	ctx := context.Background()
	log := logger.FromContext(ctx).With(LogFieldUserID, userID, LogFieldDay, day)

	status, err := w.checker.CanAdvance(ctx, userID)
	if err != nil {
		log.Error(LogMsgReminderCheckFailed, "error", err)
		return
	}
	if !status.CanAdvance {
		log.Debug(LogMsgReminderStillLocked, LogFieldUnlockAt, status.NextUnlockTime)
		return
	}
	if err := w.notifier.NotifyDayUnlocked(ctx, userID, status.CurrentDay); err != nil {
		log.Error(LogMsgReminderNotifyFailed, "error", err)
		return
	}
	log.Info(LogMsgReminderSent)
}

// Shutdown cancels pending reminders and waits for in-flight notifications
func (w *UnlockReminderWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, UnlockReminderWorkerName)
}
