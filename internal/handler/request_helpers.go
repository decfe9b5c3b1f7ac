package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SideQuest_Go/internal/auth"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler
// should return.
//
// Example usage:
//
//	var req CreateQuestRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf(LogMsgDecodeFailed, actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf(LogMsgDecoded, actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam retrieves an optional query parameter, or defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetBoolQueryParam parses an optional boolean query parameter. On a malformed
// value it writes a 400 and returns ok=false.
func GetBoolQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue bool) (value bool, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return false, false
	}
	return v, true
}

// GetIDParam parses a positive int64 route parameter. On failure it writes a
// 400 and returns ok=false.
func GetIDParam(r *http.Request, w http.ResponseWriter, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
		return 0, false
	}
	return id, true
}

// RequireUserID returns the authenticated caller. It writes a 401 when the
// auth middleware did not run.
func RequireUserID(r *http.Request, w http.ResponseWriter) (string, bool) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		logger.FromContext(r.Context()).Error(LogMsgMissingUser, "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthorizedError)
		return "", false
	}
	return userID, true
}
