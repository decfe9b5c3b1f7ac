package bootstrap

import (
	"log/slog"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/metrics"
	"github.com/osse101/SideQuest_Go/internal/sse"
	"github.com/osse101/SideQuest_Go/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	StatsService stats.Service
	// Realtime receives user-scoped events for the SSE stream; nil disables it.
	Realtime sse.Dispatcher
}

// RegisterEventHandlers sets up all event subscribers:
// stats recomputation after deletes and rerolls, event metrics and the SSE bridge.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	slog.Info(LogMsgStatsHandlerRegistered)

	metrics.NewEventMetricsCollector().Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Realtime != nil {
		sse.NewSubscriber(deps.Realtime, deps.EventBus).Subscribe()
	}
}
