package stats

import (
	"context"
	"fmt"

	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// EventHandler keeps snapshots fresh when history changes outside a completion toggle
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.QuestsDeleted, h.HandleQuestsDeleted)
	bus.Subscribe(event.DailySetRerolled, h.HandleQuestsDeleted)
}

// HandleQuestsDeleted recomputes stats after assignments were removed
func (h *EventHandler) HandleQuestsDeleted(ctx context.Context, evt event.Event) error {
	userID := evt.UserID()
	if userID == "" {
		return fmt.Errorf("%s event without user id", evt.Type)
	}

	if _, err := h.service.Recompute(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgRecomputeAfterDelete, "error", err, "user_id", userID)
		return err
	}
	return nil
}
