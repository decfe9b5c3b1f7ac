package metrics

import (
	"context"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		event.AchievementUnlocked,
		event.DailyQuestCompleted,
		event.DailySetGenerated,
		event.DailySetRerolled,
		event.QuestsDeleted,
		event.StatsUpdated,
		event.SessionsPurged,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.AchievementUnlocked:
		var p event.AchievementUnlockedPayloadV1
		if p, err = event.DecodePayload[event.AchievementUnlockedPayloadV1](evt.Payload); err == nil {
			AchievementsUnlocked.WithLabelValues(string(p.AchievementType)).Inc()
		}

	case event.DailyQuestCompleted:
		var p event.DailyQuestCompletedPayloadV1
		if p, err = event.DecodePayload[event.DailyQuestCompletedPayloadV1](evt.Payload); err == nil {
			if p.Completed {
				QuestsCompleted.Inc()
			} else {
				QuestsUncompleted.Inc()
			}
		}

	case event.DailySetGenerated:
		DailySetsGenerated.Inc()

	case event.DailySetRerolled:
		DailySetsRerolled.Inc()

	case event.QuestsDeleted:
		var p event.QuestsDeletedPayloadV1
		if p, err = event.DecodePayload[event.QuestsDeletedPayloadV1](evt.Payload); err == nil {
			QuestsDeleted.Add(float64(p.Count))
		}

	case event.StatsUpdated:
		var p event.StatsUpdatedPayloadV1
		if p, err = event.DecodePayload[event.StatsUpdatedPayloadV1](evt.Payload); err == nil {
			CurrentStreak.Observe(float64(p.Stats.CurrentStreak))
		}

	case event.SessionsPurged:
		var p event.SessionsPurgedPayloadV1
		if p, err = event.DecodePayload[event.SessionsPurgedPayloadV1](evt.Payload); err == nil {
			SessionsPurged.Add(float64(p.Count))
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
