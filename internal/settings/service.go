package settings

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/osse101/SideQuest_Go/internal/calendar"
	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// Service manages user preferences and the per-user day boundary
type Service interface {
	// Get returns stored settings, or the defaults when the user has none.
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error)
	// CompleteOnboarding records the chosen default quests and adds them to the pool.
	CompleteOnboarding(ctx context.Context, userID string, enabled []string) (*domain.UserSettings, error)
	// Today returns the user's current quest date as YYYY-MM-DD.
	Today(ctx context.Context, userID string) (string, error)
	CacheStats() CacheStats
}

type service struct {
	repo  Repository
	cache *settingsCache
	now   func() time.Time
}

// NewService creates a new settings service
func NewService(repo Repository, cacheConfig CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newSettingsCache(cacheConfig),
		now:   time.Now,
	}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	if userID == "" {
		return nil, fmt.Errorf(ErrMsgUserIDRequired, domain.ErrInvalidInput)
	}
	if cached, ok := s.cache.Get(userID); ok {
		return &cached, nil
	}

	stored, err := s.repo.GetSettings(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf(ErrMsgGetSettingsFailed, err)
		}
		logger.FromContext(ctx).Debug(LogMsgSettingsDefaulted)
		defaults := domain.DefaultSettings(userID)
		stored = &defaults
	}

	s.cache.Set(*stored)
	return stored, nil
}

func (s *service) Update(ctx context.Context, userID string, patch domain.SettingsPatch) (*domain.UserSettings, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := patch.Apply(*current)
	if err := Validate(next); err != nil {
		return nil, err
	}
	next.UserID = userID

	saved, err := s.repo.UpsertSettings(ctx, next)
	s.cache.Invalidate(userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSaveSettingsFailed, err)
	}
	s.cache.Set(*saved)

	logger.FromContext(ctx).Info(LogMsgSettingsUpdated,
		"refresh_time", saved.RefreshTime,
		"timezone", saved.Timezone,
		"theme", saved.Theme)
	return saved, nil
}

func (s *service) CompleteOnboarding(ctx context.Context, userID string, enabled []string) (*domain.UserSettings, error) {
	if userID == "" {
		return nil, fmt.Errorf(ErrMsgUserIDRequired, domain.ErrInvalidInput)
	}

	ids, contents, err := resolveDefaultQuests(enabled)
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.CompleteOnboarding(ctx, userID, ids, contents)
	s.cache.Invalidate(userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOnboardingFailed, err)
	}
	s.cache.Set(*saved)

	logger.FromContext(ctx).Info(LogMsgOnboardingCompleted, "default_quests", len(ids))
	return saved, nil
}

func (s *service) Today(ctx context.Context, userID string) (string, error) {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	date, err := calendar.GameDateFor(s.now(), *settings)
	if err != nil {
		return "", fmt.Errorf(ErrMsgResolveGameDate, err)
	}
	return date, nil
}

func (s *service) CacheStats() CacheStats {
	return s.cache.GetStats()
}

// Validate checks every field that has a constrained format.
func Validate(st domain.UserSettings) error {
	if _, err := calendar.ParseClock(st.RefreshTime); err != nil {
		return err
	}
	if _, err := calendar.ParseClock(st.NotificationTime); err != nil {
		return err
	}
	if _, err := calendar.LoadLocation(st.Timezone); err != nil {
		return err
	}
	switch st.Theme {
	case domain.ThemeLight, domain.ThemeDark, domain.ThemeSystem:
	default:
		return domain.ErrInvalidTheme
	}
	if utf8.RuneCountInString(st.NotificationText) > MaxNotificationTextLength {
		return fmt.Errorf(ErrMsgNotificationTextLen, domain.ErrInvalidInput, MaxNotificationTextLength)
	}
	_, _, err := resolveDefaultQuests(st.EnabledDefaultQuests)
	return err
}

// resolveDefaultQuests dedupes ids preserving order and looks up their text.
func resolveDefaultQuests(ids []string) ([]string, []string, error) {
	seen := make(map[string]bool, len(ids))
	outIDs := make([]string, 0, len(ids))
	contents := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		dq, ok := domain.LookupDefaultQuest(id)
		if !ok {
			return nil, nil, fmt.Errorf(ErrMsgUnknownDefaultQuest, domain.ErrUnknownDefaultQuest, id)
		}
		seen[id] = true
		outIDs = append(outIDs, id)
		contents = append(contents, dq.Content)
	}
	return outIDs, contents, nil
}
