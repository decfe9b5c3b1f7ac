package export

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/logger"
	"github.com/osse101/SideQuest_Go/internal/stats"
	"github.com/osse101/SideQuest_Go/internal/validation"
)

// Users loads account data
type Users interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// Quests lists the quest pool
type Quests interface {
	List(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error)
}

// Settings loads preferences and the user's quest date
type Settings interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	Today(ctx context.Context, userID string) (string, error)
}

// Service builds full data exports
type Service interface {
	// Build returns the bundle and the attachment filename.
	Build(ctx context.Context, userID string) (*domain.ExportBundle, string, error)
}

type service struct {
	users    Users
	stats    stats.Service
	quests   Quests
	settings Settings
	schema   validation.SchemaValidator
	now      func() time.Time
}

// NewService creates a new export service
func NewService(users Users, statsSvc stats.Service, quests Quests, settings Settings) Service {
	return &service{
		users:    users,
		stats:    statsSvc,
		quests:   quests,
		settings: settings,
		schema:   validation.NewSchemaValidator(),
		now:      time.Now,
	}
}

func (s *service) Build(ctx context.Context, userID string) (*domain.ExportBundle, string, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	today, err := s.settings.Today(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgResolveDateFailed, err)
	}

	overview, err := s.stats.GetOverview(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgGetStatsFailed, err)
	}

	quests, err := s.quests.List(ctx, userID, true)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgGetQuestsFailed, err)
	}

	history, err := s.stats.GetHistory(ctx, userID, HistoryStart, today)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgGetHistoryFailed, err)
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf(ErrMsgGetSettingsFailed, err)
	}

	bundle := &domain.ExportBundle{
		ExportDate:   s.now().UTC(),
		User:         *user,
		Stats:        overview.Stats,
		Quests:       nonNilQuests(quests),
		History:      nonNilHistory(history),
		Achievements: nonNilAchievements(overview.Achievements),
		Settings:     *settings,
	}

	if err := s.schema.Validate(validation.SchemaExportBundle, bundle); err != nil {
		return nil, "", fmt.Errorf(ErrMsgBundleInvalid, err)
	}

	logger.FromContext(ctx).Info(LogMsgExportBuilt,
		"user_id", userID,
		"quests", len(bundle.Quests),
		"days", len(bundle.History))

	return bundle, fmt.Sprintf(FilenameFormat, today), nil
}

func nonNilQuests(q []domain.Quest) []domain.Quest {
	if q == nil {
		return []domain.Quest{}
	}
	return q
}

func nonNilHistory(h []domain.DayHistory) []domain.DayHistory {
	if h == nil {
		return []domain.DayHistory{}
	}
	return h
}

func nonNilAchievements(a []domain.Achievement) []domain.Achievement {
	if a == nil {
		return []domain.Achievement{}
	}
	return a
}
