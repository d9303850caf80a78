package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/achievement"
	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/database/memory"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
)

const testUser = "5b2c9a7e-8f41-4c1d-9d0e-2f6a3b7c8d90"

var testStart = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// recordingPublisher captures published events
type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recordingPublisher) PublishWithRetry(_ context.Context, evt event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *recordingPublisher) Types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Type, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store     *memory.Store
	clock     *clock.Fake
	publisher *recordingPublisher
	svc       Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithConfig(t, DefaultConfig())
}

func newFixtureWithConfig(t *testing.T, cfg Config) *fixture {
	t.Helper()
	catalog, err := achievement.NewCatalog([]domain.Achievement{
		{Key: "first_brick", Name: "First Brick", Metric: domain.MetricTotalCompletedDays, Threshold: 1},
		{Key: "foundation_poured", Name: "Foundation Poured", Metric: domain.MetricStreak, Threshold: 3},
	})
	require.NoError(t, err)

	f := &fixture{
		store:     memory.New(),
		clock:     clock.NewFake(testStart),
		publisher: &recordingPublisher{},
	}
	f.svc = NewService(f.store, catalog, f.publisher, f.clock, cfg)
	return f
}

// started returns a fixture whose test user has begun the journey
func started(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	_, created, err := f.svc.StartJourney(context.Background(), testUser)
	require.NoError(t, err)
	require.True(t, created)
	return f
}

func (f *fixture) progress(t *testing.T) *domain.Progress {
	t.Helper()
	p, err := f.store.GetProgress(context.Background(), testUser)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

// completeAndUnlock completes day and moves the clock past the unlock time
func (f *fixture) completeAndUnlock(t *testing.T, day int) *domain.CompleteDayResult {
	t.Helper()
	res, err := f.svc.CompleteDay(context.Background(), testUser, day, domain.DraftInput{})
	require.NoError(t, err)
	f.clock.Advance(domain.DefaultUnlockDelay)
	return res
}

func strPtr(s string) *string { return &s }
