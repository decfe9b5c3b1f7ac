package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

func TestSettingsHandler_HandleGet(t *testing.T) {
	svc := &MockSettingsService{}
	defaults := domain.DefaultSettings(testUserID)
	svc.On("Get", mock.Anything, testUserID).Return(&defaults, nil)
	h := NewSettingsHandler(svc)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/settings", nil), testUserID)
	w := httptest.NewRecorder()
	h.HandleGet(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"refreshTime":"04:00"`)
}

func TestSettingsHandler_HandleUpdate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockSettingsService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "partial patch passes only given fields",
			body: `{"theme":"dark","refreshTime":"05:30"}`,
			setupMock: func(m *MockSettingsService) {
				m.On("Update", mock.Anything, testUserID, mock.MatchedBy(func(p domain.SettingsPatch) bool {
					return p.Theme != nil && *p.Theme == "dark" &&
						p.RefreshTime != nil && *p.RefreshTime == "05:30" &&
						p.Timezone == nil && p.NotificationEnabled == nil
				})).Return(&domain.UserSettings{UserID: testUserID, Theme: "dark", RefreshTime: "05:30"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"theme":"dark"`,
		},
		{
			name:       "bad clock",
			body:       `{"refreshTime":"25:00"}`,
			setupMock:  func(m *MockSettingsService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"refreshTime"`,
		},
		{
			name:       "bad theme",
			body:       `{"theme":"neon"}`,
			setupMock:  func(m *MockSettingsService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"theme"`,
		},
		{
			name:       "bad timezone",
			body:       `{"timezone":"Mars/Olympus"}`,
			setupMock:  func(m *MockSettingsService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"timezone"`,
		},
		{
			name: "service rejection maps to 400",
			body: `{"timezone":"Europe/Berlin"}`,
			setupMock: func(m *MockSettingsService) {
				m.On("Update", mock.Anything, testUserID, mock.Anything).Return(nil, domain.ErrInvalidTimezone)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrMsgInvalidTimezoneError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSettingsService{}
			tt.setupMock(svc)
			h := NewSettingsHandler(svc)

			req := withUser(httptest.NewRequest(http.MethodPatch, "/api/settings", strings.NewReader(tt.body)), testUserID)
			w := httptest.NewRecorder()
			h.HandleUpdate(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestSettingsHandler_HandleCompleteOnboarding(t *testing.T) {
	t.Run("seeds chosen quests", func(t *testing.T) {
		svc := &MockSettingsService{}
		svc.On("CompleteOnboarding", mock.Anything, testUserID, []string{"dq_1", "dq_3"}).
			Return(&domain.UserSettings{UserID: testUserID, OnboardingCompleted: true}, nil)
		h := NewSettingsHandler(svc)

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/settings/complete-onboarding",
			strings.NewReader(`{"enabledDefaultQuests":["dq_1","dq_3"]}`)), testUserID)
		w := httptest.NewRecorder()
		h.HandleCompleteOnboarding(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"onboardingCompleted":true`)
		svc.AssertExpectations(t)
	})

	t.Run("unknown default quest", func(t *testing.T) {
		svc := &MockSettingsService{}
		h := NewSettingsHandler(svc)

		req := withUser(httptest.NewRequest(http.MethodPost, "/api/settings/complete-onboarding",
			strings.NewReader(`{"enabledDefaultQuests":["nope"]}`)), testUserID)
		w := httptest.NewRecorder()
		h.HandleCompleteOnboarding(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "CompleteOnboarding", mock.Anything, mock.Anything, mock.Anything)
	})
}
