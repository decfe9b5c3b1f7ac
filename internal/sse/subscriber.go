package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// StreamedEventTypes are the bus events forwarded to clients
var StreamedEventTypes = []event.Type{
	event.AchievementUnlocked,
	event.DailyQuestCompleted,
	event.DailySetGenerated,
	event.DailySetRerolled,
	event.StatsUpdated,
}

// Subscriber bridges the internal event bus to a Dispatcher
type Subscriber struct {
	out Dispatcher
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber. out is the local hub, or a relay
// when several instances share clients.
func NewSubscriber(out Dispatcher, bus event.Bus) *Subscriber {
	return &Subscriber{
		out: out,
		bus: bus,
	}
}

// Subscribe registers handlers for all streamed event types
func (s *Subscriber) Subscribe() {
	names := make([]string, 0, len(StreamedEventTypes))
	for _, t := range StreamedEventTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	slog.Info(LogMsgSubscriberReady, "types", names)
}

// forward drops broadcast events; only user-scoped events reach the stream
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	userID := evt.UserID()
	if userID == "" {
		return nil
	}

	out := NewEvent(userID, string(evt.Type), evt.Payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "user_id", userID)
	return s.out.Dispatch(ctx, out)
}
