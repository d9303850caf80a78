// Package eventlog records domain events for auditing and support queries.
package eventlog

import (
	"context"
	"fmt"

	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger for every domain event type
	Subscribe(bus event.Bus) error

	// GetEvents queries the log, clamping the limit
	GetEvents(ctx context.Context, filter EventFilter) ([]Event, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload to JSON fields and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgEventPayloadNotDecodable, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var userID *string
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		userID = &uid
	}

	metadata, _ := evt.Metadata.(map[string]interface{})

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return fmt.Errorf("failed to log %s event: %w", evt.Type, err)
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

func (s *service) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}

	events, err := s.repo.GetEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	if events == nil {
		events = []Event{}
	}
	return events, nil
}

func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
