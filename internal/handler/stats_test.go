package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

func TestStatsHandler_HandleGetStats(t *testing.T) {
	last := "2026-10-17"
	svc := &MockStatsService{}
	svc.On("GetOverview", mock.Anything, testUserID).Return(&domain.StatsOverview{
		Stats: domain.UserStatsSnapshot{CurrentStreak: 4, LongestStreak: 9, LastActiveDate: &last},
		History: []domain.DayHistory{
			{Date: "2026-10-17", Completed: 3, Total: 3, Quests: []domain.DailyQuest{}},
		},
		Achievements: []domain.Achievement{},
	}, nil)
	h := NewStatsHandler(svc)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/stats", nil), testUserID)
	w := httptest.NewRecorder()
	h.HandleGetStats(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.StatsOverview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 4, got.Stats.CurrentStreak)
	assert.Equal(t, "2026-10-17", *got.Stats.LastActiveDate)
	assert.Len(t, got.History, 1)
}

func TestStatsHandler_InternalErrorsAreHidden(t *testing.T) {
	svc := &MockStatsService{}
	svc.On("GetOverview", mock.Anything, testUserID).Return(nil, errors.New("pq: relation user_stats does not exist"))
	h := NewStatsHandler(svc)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/stats", nil), testUserID)
	w := httptest.NewRecorder()
	h.HandleGetStats(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
}

func TestStatsHandler_HandleGetAchievements(t *testing.T) {
	at := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	catalog := []domain.AchievementStatus{
		{AchievementDefinition: domain.AchievementDefinition{Type: domain.AchievementFirstQuest}, Unlocked: true, UnlockedAt: &at},
		{AchievementDefinition: domain.AchievementDefinition{Type: domain.AchievementStreak7}},
	}
	svc := &MockStatsService{}
	svc.On("GetAchievements", mock.Anything, testUserID).Return(catalog, nil)
	h := NewStatsHandler(svc)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/achievements", nil), testUserID)
	w := httptest.NewRecorder()
	h.HandleGetAchievements(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got AchievementsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Catalog, 2)
	require.Len(t, got.Unlocked, 1)
	assert.Equal(t, domain.AchievementFirstQuest, got.Unlocked[0].Type)
}

func TestHandleExport(t *testing.T) {
	t.Run("attachment", func(t *testing.T) {
		svc := &MockExportService{}
		svc.On("Build", mock.Anything, testUserID).Return(&domain.ExportBundle{
			User:   domain.User{ID: testUserID, Username: "ada"},
			Quests: []domain.Quest{{ID: 1, Content: "Walk", Archived: true}},
		}, "sidequest-export-2026-10-18.json", nil)

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/export", nil), testUserID)
		w := httptest.NewRecorder()
		HandleExport(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="sidequest-export-2026-10-18.json"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), `"archived":true`)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := &MockExportService{}
		svc.On("Build", mock.Anything, testUserID).Return(nil, "", domain.ErrUserNotFound)

		req := withUser(httptest.NewRequest(http.MethodGet, "/api/export", nil), testUserID)
		w := httptest.NewRecorder()
		HandleExport(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Header().Get("Content-Disposition"))
	})
}
