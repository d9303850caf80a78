package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
)

type MockAdvanceChecker struct {
	mock.Mock
}

func (m *MockAdvanceChecker) CanAdvance(ctx context.Context, userID string) (*domain.AdvanceStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvanceStatus), args.Error(1)
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []int
}

func (n *recordingNotifier) NotifyDayUnlocked(_ context.Context, _ string, day int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, day)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

var reminderStart = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestUnlockReminder_FiresWhenUnlocked(t *testing.T) {
	userID := uuid.NewString()
	checker := &MockAdvanceChecker{}
	checker.On("CanAdvance", mock.Anything, userID).
		Return(&domain.AdvanceStatus{CanAdvance: true, CurrentDay: 2}, nil).Once()
	notifier := &recordingNotifier{}
	clk := clock.NewFake(reminderStart)

	w := NewUnlockReminderWorker(checker, notifier, clk)
	bus := event.NewMemoryBus()
	w.Subscribe(bus)

	p := domain.NewProgress(userID, reminderStart)
	p.CurrentDay = 2
	unlock := reminderStart.Add(20 * time.Millisecond)
	p.NextDayUnlocksAt = &unlock
	require.NoError(t, bus.Publish(context.Background(), event.NewDayCompletedEvent(p, 1, 100, reminderStart)))

	assert.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{2}, notifier.calls)
	assert.Zero(t, w.Pending())
	checker.AssertExpectations(t)
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestUnlockReminder_SkipsWhenStillLocked(t *testing.T) {
	userID := uuid.NewString()
	checked := make(chan struct{})
	checker := &MockAdvanceChecker{}
	checker.On("CanAdvance", mock.Anything, userID).
		Return(&domain.AdvanceStatus{CanAdvance: false, CurrentDay: 2}, nil).
		Run(func(mock.Arguments) { close(checked) }).Once()
	notifier := &recordingNotifier{}

	w := NewUnlockReminderWorker(checker, notifier, clock.NewFake(reminderStart))
	w.Schedule(context.Background(), userID, 2, reminderStart.Add(-time.Hour))

	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("reminder never checked the lock")
	}
	require.NoError(t, w.Shutdown(context.Background()))
	assert.Zero(t, notifier.count())
}

func TestUnlockReminder_RescheduleReplacesTimer(t *testing.T) {
	userID := uuid.NewString()
	checker := &MockAdvanceChecker{}
	notifier := &recordingNotifier{}
	w := NewUnlockReminderWorker(checker, notifier, clock.NewFake(reminderStart))

	w.Schedule(context.Background(), userID, 2, reminderStart.Add(time.Hour))
	w.Schedule(context.Background(), userID, 2, reminderStart.Add(2*time.Hour))
	assert.Equal(t, 1, w.Pending())

	w.Cancel(userID)
	assert.Zero(t, w.Pending())

	w.Schedule(context.Background(), "not-a-uuid", 2, reminderStart.Add(time.Hour))
	assert.Zero(t, w.Pending())
	require.NoError(t, w.Shutdown(context.Background()))
}

func TestUnlockReminder_ShutdownCancelsPending(t *testing.T) {
	checker := &MockAdvanceChecker{}
	notifier := &recordingNotifier{}
	w := NewUnlockReminderWorker(checker, notifier, clock.NewFake(reminderStart))

	for i := 0; i < 3; i++ {
		w.Schedule(context.Background(), uuid.NewString(), 2, reminderStart.Add(time.Hour))
	}
	assert.Equal(t, 3, w.Pending())

	require.NoError(t, w.Shutdown(context.Background()))
	assert.Zero(t, w.Pending())
	require.NoError(t, w.Shutdown(context.Background()))

	w.Schedule(context.Background(), uuid.NewString(), 2, reminderStart)
	assert.Zero(t, w.Pending())
	checker.AssertNotCalled(t, "CanAdvance", mock.Anything, mock.Anything)
}
