package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// CountResponse reports how many rows a bulk operation touched
type CountResponse struct {
	Count int64 `json:"count"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the user-facing status and message for it.
// Client errors are logged at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Warn(action+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages that are safe to show. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, ErrMsgEmailTakenError
	case errors.Is(err, domain.ErrTagExhausted):
		return http.StatusConflict, ErrMsgTagExhaustedError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrSessionExpired):
		return http.StatusUnauthorized, ErrMsgSessionExpiredError
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundError
	case errors.Is(err, domain.ErrDailyQuestNotFound):
		return http.StatusNotFound, ErrMsgDailyQuestNotFoundError
	case errors.Is(err, domain.ErrDailySetStarted):
		return http.StatusConflict, ErrMsgDailySetStartedError
	case errors.Is(err, domain.ErrEmptyQuestPool):
		return http.StatusConflict, ErrMsgEmptyQuestPoolError
	case errors.Is(err, domain.ErrInvalidRefreshTime):
		return http.StatusBadRequest, ErrMsgInvalidTimeError
	case errors.Is(err, domain.ErrInvalidTimezone):
		return http.StatusBadRequest, ErrMsgInvalidTimezoneError
	case errors.Is(err, domain.ErrInvalidTheme):
		return http.StatusBadRequest, ErrMsgInvalidThemeError
	case errors.Is(err, domain.ErrUnknownDefaultQuest):
		return http.StatusBadRequest, ErrMsgUnknownDefaultQuestError
	case errors.Is(err, domain.ErrInvalidRecordDate):
		// Stored history is corrupt; not the caller's fault
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
