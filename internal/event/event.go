package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/foundry90/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Domain event types
const (
	DayCompleted        Type = domain.EventTypeDayCompleted
	DayEnded            Type = domain.EventTypeDayEnded
	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
	TokensEarned        Type = domain.EventTypeTokensEarned
	TokensSpent         Type = domain.EventTypeTokensSpent
)

// AllTypes lists every domain event type, in publish order of a typical day
func AllTypes() []Type {
	return []Type{DayCompleted, DayEnded, AchievementUnlocked, TokensEarned, TokensSpent}
}

// NewDayCompletedEvent creates a progress.day_completed event
func NewDayCompletedEvent(p *domain.Progress, day, xpAwarded int, at time.Time) Event {
	payload := domain.DayCompletedPayload{
		UserID:             p.UserID,
		Day:                day,
		Streak:             p.Streak,
		BestStreak:         p.BestStreak,
		TotalCompletedDays: p.TotalCompletedDays,
		CurrentDay:         p.CurrentDay,
		XPAwarded:          xpAwarded,
		Timestamp:          at.Unix(),
	}
	if p.NextDayUnlocksAt != nil {
		payload.NextDayUnlocksAt = *p.NextDayUnlocksAt
	}
	return Event{Version: EventSchemaVersion, Type: DayCompleted, Payload: payload}
}

// NewDayEndedEvent creates a progress.day_ended event
func NewDayEndedEvent(p *domain.Progress, unlocksAt time.Time, clamped bool, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DayEnded,
		Payload: domain.DayEndedPayload{
			UserID:           p.UserID,
			CurrentDay:       p.CurrentDay,
			NextDayUnlocksAt: unlocksAt,
			Clamped:          clamped,
			Timestamp:        at.Unix(),
		},
	}
}

// NewAchievementUnlockedEvent creates a progress.achievement_unlocked event
func NewAchievementUnlockedEvent(userID string, a domain.Achievement, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			UserID:         userID,
			AchievementKey: a.Key,
			Name:           a.Name,
			Timestamp:      at.Unix(),
		},
	}
}

// NewTokensEvent creates a tokens.earned or tokens.spent event from a ledger entry
func NewTokensEvent(txn domain.TokenTransaction, newBalance int) Event {
	t := TokensEarned
	if txn.Type == domain.TransactionSpent {
		t = TokensSpent
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: domain.TokensPayload{
			UserID:     txn.UserID,
			TokenType:  txn.TokenType,
			Amount:     txn.Amount,
			Reason:     txn.Reason,
			NewBalance: newBalance,
			Timestamp:  txn.CreatedAt.Unix(),
		},
		Metadata: txn.Metadata,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher is the narrow interface services depend on
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
