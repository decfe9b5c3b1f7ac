package handler

import (
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/daily"
)

// SetCompletionRequest is the body of POST /api/daily/{id}/complete
type SetCompletionRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// DailyHandler serves today's quest set
type DailyHandler struct {
	service daily.Service
}

// NewDailyHandler creates a daily quest handler
func NewDailyHandler(service daily.Service) *DailyHandler {
	return &DailyHandler{service: service}
}

// HandleGetToday returns today's set, generating it on first access
// @Summary Today's quests
// @Tags daily
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DailyQuest
// @Router /api/daily [get]
func (h *DailyHandler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	quests, err := h.service.GetToday(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get daily quests", err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}

// HandleSetCompletion marks an assignment done or not done
// @Summary Toggle completion
// @Tags daily
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Daily quest id"
// @Param request body SetCompletionRequest true "Completion flag"
// @Success 200 {object} daily.CompletionResult
// @Failure 404 {object} ErrorResponse
// @Router /api/daily/{id}/complete [post]
func (h *DailyHandler) HandleSetCompletion(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	id, ok := GetIDParam(r, w, "id")
	if !ok {
		return
	}
	var req SetCompletionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set completion"); err != nil {
		return
	}

	res, err := h.service.SetCompletion(r.Context(), userID, id, *req.Completed)
	if err != nil {
		respondServiceError(w, r, "Set completion", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleReroll draws a fresh set for today
// @Summary Reroll today's quests
// @Tags daily
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.DailyQuest
// @Failure 409 {object} ErrorResponse
// @Router /api/daily/reroll [post]
func (h *DailyHandler) HandleReroll(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	quests, err := h.service.Reroll(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Reroll", err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}
