package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.DayCompleted:
		var p domain.DayCompletedPayload
		if p, err = event.DecodePayload[domain.DayCompletedPayload](evt.Payload); err == nil {
			DaysCompleted.Inc()
			StreakOnCompletion.Observe(float64(p.Streak))
		}

	case event.DayEnded:
		var p domain.DayEndedPayload
		if p, err = event.DecodePayload[domain.DayEndedPayload](evt.Payload); err == nil {
			DaysEnded.WithLabelValues(strconv.FormatBool(p.Clamped)).Inc()
		}

	case event.AchievementUnlocked:
		var p domain.AchievementUnlockedPayload
		if p, err = event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload); err == nil {
			AchievementsUnlocked.WithLabelValues(p.AchievementKey).Inc()
		}

	case event.TokensEarned, event.TokensSpent:
		var p domain.TokensPayload
		if p, err = event.DecodePayload[domain.TokensPayload](evt.Payload); err == nil {
			counter := TokensEarned
			if evt.Type == event.TokensSpent {
				counter = TokensSpent
			}
			counter.WithLabelValues(string(p.TokenType)).Add(float64(p.Amount))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadNotDecodable, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordCompletionRejected counts a completion refused by the day policy
func RecordCompletionRejected(reason string) {
	CompletionRejected.WithLabelValues(reason).Inc()
}
