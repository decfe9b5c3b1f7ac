package handler

import (
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/settings"
)

// UpdateSettingsRequest is the body of PATCH /api/settings. Omitted fields are
// left unchanged.
type UpdateSettingsRequest struct {
	RefreshTime          *string   `json:"refreshTime" validate:"omitempty,clock"`
	Timezone             *string   `json:"timezone" validate:"omitempty,timezone"`
	NotificationEnabled  *bool     `json:"notificationEnabled"`
	NotificationTime     *string   `json:"notificationTime" validate:"omitempty,clock"`
	NotificationText     *string   `json:"notificationText" validate:"omitempty,max=200"`
	Theme                *string   `json:"theme" validate:"omitempty,theme"`
	EnabledDefaultQuests *[]string `json:"enabledDefaultQuests" validate:"omitempty,dive,defaultquest"`
}

// CompleteOnboardingRequest is the body of POST /api/settings/complete-onboarding
type CompleteOnboardingRequest struct {
	EnabledDefaultQuests []string `json:"enabledDefaultQuests" validate:"max=28,dive,defaultquest"`
}

// SettingsHandler serves per-user preferences
type SettingsHandler struct {
	service settings.Service
}

// NewSettingsHandler creates a settings handler
func NewSettingsHandler(service settings.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// HandleGet returns the caller's settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserSettings
// @Router /api/settings [get]
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	st, err := h.service.Get(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get settings", err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// HandleUpdate applies a partial settings update
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/settings [patch]
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req UpdateSettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}

	st, err := h.service.Update(r.Context(), userID, domain.SettingsPatch(req))
	if err != nil {
		respondServiceError(w, r, "Update settings", err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// HandleCompleteOnboarding finishes onboarding and seeds the chosen default quests
// @Summary Complete onboarding
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CompleteOnboardingRequest true "Chosen default quests"
// @Success 200 {object} domain.UserSettings
// @Router /api/settings/complete-onboarding [post]
func (h *SettingsHandler) HandleCompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}
	var req CompleteOnboardingRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete onboarding"); err != nil {
		return
	}

	st, err := h.service.CompleteOnboarding(r.Context(), userID, req.EnabledDefaultQuests)
	if err != nil {
		respondServiceError(w, r, "Complete onboarding", err)
		return
	}
	respondJSON(w, http.StatusOK, st)
}
