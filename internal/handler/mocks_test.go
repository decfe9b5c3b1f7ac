package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SideQuest_Go/internal/auth"
	"github.com/osse101/SideQuest_Go/internal/daily"
	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/settings"
	"github.com/osse101/SideQuest_Go/internal/stats"
	"github.com/osse101/SideQuest_Go/internal/streak"
)

const testUserID = "3f1c2d9e-7a51-4c0b-9a5e-2c8d1e6f4b7a"

// withUser attaches an authenticated principal as the auth middleware would
func withUser(r *http.Request, userID string) *http.Request {
	ctx := auth.WithPrincipal(r.Context(), auth.Principal{UserID: userID, SessionID: "session-1"})
	return r.WithContext(ctx)
}

// withURLParam sets a chi route parameter on the request
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MockAuthService is a mock of auth.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, in auth.SignupInput) (*auth.Result, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Result), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.Result, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Result), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*auth.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Principal), args.Error(1)
}

func (m *MockAuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockQuestService is a mock of quest.Service
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) List(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) Create(ctx context.Context, userID, content string) (*domain.Quest, error) {
	args := m.Called(ctx, userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) CreateBulk(ctx context.Context, userID string, contents []string) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) Update(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error) {
	args := m.Called(ctx, userID, questID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) Delete(ctx context.Context, userID string, questID int64) error {
	return m.Called(ctx, userID, questID).Error(0)
}

func (m *MockQuestService) DeleteBulk(ctx context.Context, userID string, questIDs []int64) (int64, error) {
	args := m.Called(ctx, userID, questIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestService) SetArchived(ctx context.Context, userID string, questID int64, archived bool) error {
	return m.Called(ctx, userID, questID, archived).Error(0)
}

func (m *MockQuestService) ArchiveBulk(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error) {
	args := m.Called(ctx, userID, questIDs, archived)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestService) Defaults() []domain.DefaultQuest {
	return m.Called().Get(0).([]domain.DefaultQuest)
}

// MockDailyService is a mock of daily.Service
type MockDailyService struct {
	mock.Mock
}

func (m *MockDailyService) GetToday(ctx context.Context, userID string) ([]domain.DailyQuest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyQuest), args.Error(1)
}

func (m *MockDailyService) SetCompletion(ctx context.Context, userID string, id int64, completed bool) (*daily.CompletionResult, error) {
	args := m.Called(ctx, userID, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*daily.CompletionResult), args.Error(1)
}

func (m *MockDailyService) Reroll(ctx context.Context, userID string) ([]domain.DailyQuest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyQuest), args.Error(1)
}

// MockStatsService is a mock of stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Recompute(ctx context.Context, userID string) (*stats.RecomputeResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.RecomputeResult), args.Error(1)
}

func (m *MockStatsService) CheckAchievements(ctx context.Context, userID string, res streak.Result) ([]domain.Achievement, error) {
	args := m.Called(ctx, userID, res)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockStatsService) GetOverview(ctx context.Context, userID string) (*domain.StatsOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsOverview), args.Error(1)
}

func (m *MockStatsService) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AchievementStatus), args.Error(1)
}

func (m *MockStatsService) GetHistory(ctx context.Context, userID, from, to string) ([]domain.DayHistory, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DayHistory), args.Error(1)
}

// MockSettingsService is a mock of settings.Service
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsService) CompleteOnboarding(ctx context.Context, userID string, enabled []string) (*domain.UserSettings, error) {
	args := m.Called(ctx, userID, enabled)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockSettingsService) Today(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) CacheStats() settings.CacheStats {
	return m.Called().Get(0).(settings.CacheStats)
}

// MockExportService is a mock of export.Service
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Build(ctx context.Context, userID string) (*domain.ExportBundle, string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.ExportBundle), args.String(1), args.Error(2)
}
