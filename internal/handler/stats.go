package handler

import (
	"net/http"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/stats"
)

// AchievementsResponse lists what the caller unlocked alongside the full catalog
type AchievementsResponse struct {
	Unlocked []domain.AchievementStatus `json:"unlocked"`
	Catalog  []domain.AchievementStatus `json:"catalog"`
}

// StatsHandler serves streak stats and achievements
type StatsHandler struct {
	service stats.Service
}

// NewStatsHandler creates a stats handler
func NewStatsHandler(service stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// HandleGetStats recomputes and returns the caller's stats with recent history
// @Summary Stats overview
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.StatsOverview
// @Router /api/stats [get]
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	overview, err := h.service.GetOverview(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get stats", err)
		return
	}
	respondJSON(w, http.StatusOK, overview)
}

// HandleGetAchievements returns the achievement catalog with unlock state
// @Summary Achievements
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AchievementsResponse
// @Router /api/achievements [get]
func (h *StatsHandler) HandleGetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(r, w)
	if !ok {
		return
	}

	catalog, err := h.service.GetAchievements(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get achievements", err)
		return
	}

	unlocked := make([]domain.AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		if a.Unlocked {
			unlocked = append(unlocked, a)
		}
	}
	respondJSON(w, http.StatusOK, AchievementsResponse{Unlocked: unlocked, Catalog: catalog})
}
