package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SideQuest_Go/internal/auth"
)

// Handler streams the caller's events
// @Summary Event stream
// @Description Server-Sent Events for the authenticated user (achievement.unlocked, daily.completed, stats.updated, ...)
// @Tags events
// @Produce text/event-stream
// @Param types query string false "Comma-separated event types"
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/events [get]
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())
		if userID == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		var eventTypes []string
		if filterParam := r.URL.Query().Get("types"); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		client := hub.Register(userID, eventTypes)
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "user_id", userID, "filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "user_id", userID)
		}()

		connected := NewEvent(userID, EventTypeConnected, map[string]interface{}{
			"clientId": client.ID,
			"filters":  eventTypes,
		})
		connected.ID = client.ID
		if msg, err := FormatSSEMessage(connected); err == nil {
			if _, err := w.Write(msg); err != nil {
				return
			}
			flusher.Flush()
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub shutting down
					return
				}
				msg, err := FormatSSEMessage(evt)
				if err != nil {
					slog.Error(LogMsgWriteError, "error", err)
					continue
				}
				if _, err := w.Write(msg); err != nil {
					slog.Warn(LogMsgWriteError, "error", err)
					return
				}
				flusher.Flush()

			case <-ticker.C:
				msg, _ := FormatSSEMessage(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
				if _, err := w.Write(msg); err != nil {
					return
				}
				flusher.Flush()
			}
		}
	}
}
