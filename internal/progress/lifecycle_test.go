package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
)

func TestEndDay_ClampsToMinimumRest(t *testing.T) {
	f := started(t)
	now := f.clock.Now()

	res, err := f.svc.EndDay(context.Background(), testUser, &now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(8*time.Hour), res.NextUnlockTime)
	assert.Equal(t, now.Add(8*time.Hour), *f.progress(t).NextDayUnlocksAt)

	payload, ok := f.publisher.events[0].Payload.(domain.DayEndedPayload)
	require.True(t, ok)
	assert.True(t, payload.Clamped)
}

func TestEndDay_HonorsLaterOverride(t *testing.T) {
	f := started(t)
	custom := f.clock.Now().Add(30 * time.Hour)

	res, err := f.svc.EndDay(context.Background(), testUser, &custom)
	require.NoError(t, err)
	assert.Equal(t, custom, res.NextUnlockTime)
}

func TestEndDay_DefaultDelayWithoutOverride(t *testing.T) {
	f := started(t)

	res, err := f.svc.EndDay(context.Background(), testUser, nil)
	require.NoError(t, err)
	assert.Equal(t, testStart.Add(18*time.Hour), res.NextUnlockTime)
}

func TestEndDay_LeavesDayAndStreakAlone(t *testing.T) {
	f := started(t)
	f.completeAndUnlock(t, 1)
	before := f.progress(t)

	res, err := f.svc.EndDay(context.Background(), testUser, nil)
	require.NoError(t, err)
	assert.Equal(t, before.CurrentDay, res.Progress.CurrentDay)
	assert.Equal(t, before.Streak, res.Progress.Streak)
	assert.Equal(t, before.TotalCompletedDays, res.Progress.TotalCompletedDays)
	assert.Equal(t, f.clock.Now(), *res.Progress.LastDayCompletedAt)
	assert.Contains(t, f.publisher.Types(), event.DayEnded)
}

func TestSaveDraft_AllowedWhileLocked(t *testing.T) {
	f := started(t)
	ctx := context.Background()

	_, err := f.svc.CompleteDay(ctx, testUser, 1, domain.DraftInput{})
	require.NoError(t, err)
	before := f.progress(t)
	require.True(t, before.IsLocked(f.clock.Now()))

	c, err := f.svc.SaveDraft(ctx, testUser, before.CurrentDay, domain.DraftInput{Notes: strPtr("x")})
	require.NoError(t, err)
	assert.False(t, c.Completed)
	assert.Equal(t, "x", *c.Notes)

	after := f.progress(t)
	assert.Equal(t, before.Streak, after.Streak)
	assert.Equal(t, before.TotalCompletedDays, after.TotalCompletedDays)
	assert.Equal(t, before.CurrentDay, after.CurrentDay)
}

func TestSaveDraft_KeepsCompletedFlag(t *testing.T) {
	f := started(t)
	ctx := context.Background()

	res, err := f.svc.CompleteDay(ctx, testUser, 1, domain.DraftInput{Notes: strPtr("first")})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)
	c, err := f.svc.SaveDraft(ctx, testUser, 1, domain.DraftInput{Notes: strPtr("edited")})
	require.NoError(t, err)
	assert.True(t, c.Completed)
	assert.Equal(t, *res.Completion.CompletedAt, *c.CompletedAt)
	assert.Equal(t, "edited", *c.Notes)
}

func TestGetDay(t *testing.T) {
	f := started(t)
	ctx := context.Background()

	_, err := f.svc.GetDay(ctx, testUser, 1)
	assert.ErrorIs(t, err, domain.ErrCompletionNotFound)

	f.completeAndUnlock(t, 1)
	c, err := f.svc.GetDay(ctx, testUser, 1)
	require.NoError(t, err)
	assert.True(t, c.Completed)

	_, err = f.svc.GetDay(ctx, testUser, 0)
	assert.ErrorIs(t, err, domain.ErrDayOutOfRange)
}

func TestClearLock(t *testing.T) {
	f := started(t)
	ctx := context.Background()
	_, err := f.svc.CompleteDay(ctx, testUser, 1, domain.DraftInput{})
	require.NoError(t, err)

	status, err := f.svc.CanAdvance(ctx, testUser)
	require.NoError(t, err)
	require.False(t, status.CanAdvance)

	p, err := f.svc.ClearLock(ctx, testUser)
	require.NoError(t, err)
	assert.Nil(t, p.NextDayUnlocksAt)

	status, err = f.svc.CanAdvance(ctx, testUser)
	require.NoError(t, err)
	assert.True(t, status.CanAdvance, "cached state is invalidated by the mutation")
}

func TestCanAdvance_CachedStateFollowsClock(t *testing.T) {
	f := started(t)
	ctx := context.Background()
	_, err := f.svc.CompleteDay(ctx, testUser, 1, domain.DraftInput{})
	require.NoError(t, err)

	first, err := f.svc.CanAdvance(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 18, first.HoursLeft)
	assert.Equal(t, int64(18*3600), first.TimeLeftSeconds)

	f.clock.Advance(10*time.Hour + 30*time.Minute)
	second, err := f.svc.CanAdvance(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 8, second.HoursLeft)
	assert.Equal(t, first.NextUnlockTime, second.NextUnlockTime)
}

func TestConcurrentCompletions_SerializedPerUser(t *testing.T) {
	f := started(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CompleteDay(ctx, testUser, 1, domain.DraftInput{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	p := f.progress(t)
	assert.Equal(t, 1, p.TotalCompletedDays)
	assert.Equal(t, 1, p.Streak)
	assert.Equal(t, domain.DefaultXPPerCompletedDay, p.ExperiencePoints)
	assert.Equal(t, 1, countType(f.publisher.Types(), event.DayCompleted))
}

func countType(types []event.Type, want event.Type) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}
