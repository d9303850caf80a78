package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/eventlog"
)

// EventLog keeps the audit log in process for the memory store driver
type EventLog struct {
	mu     sync.RWMutex
	clock  clock.Clock
	events []eventlog.Event
	nextID int64
}

// NewEventLog creates an empty event log. A nil clock uses wall time.
func NewEventLog(clk clock.Clock) *EventLog {
	if clk == nil {
		clk = clock.New()
	}
	return &EventLog{clock: clk}
}

var _ eventlog.Repository = (*EventLog)(nil)

func (l *EventLog) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	e := eventlog.Event{
		ID:        l.nextID,
		EventType: eventType,
		Payload:   payload,
		Metadata:  metadata,
		CreatedAt: l.clock.Now(),
	}
	if userID != nil {
		uid := *userID
		e.UserID = &uid
	}
	l.events = append(l.events, e)
	return nil
}

func (l *EventLog) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]eventlog.Event, 0)
	for _, e := range l.events {
		if matches(e, filter) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (l *EventLog) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cutoff := l.clock.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.events[:0]
	var deleted int64
	for _, e := range l.events {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	l.events = kept
	return deleted, nil
}

func matches(e eventlog.Event, f eventlog.EventFilter) bool {
	if f.UserID != nil && (e.UserID == nil || *e.UserID != *f.UserID) {
		return false
	}
	if f.EventType != nil && e.EventType != *f.EventType {
		return false
	}
	if f.Since != nil && e.CreatedAt.Before(*f.Since) {
		return false
	}
	if f.Until != nil && e.CreatedAt.After(*f.Until) {
		return false
	}
	return true
}
