package repository

import (
	"context"
	"time"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// Stats defines the interface for stats persistence
type Stats interface {
	// FetchHistory returns every daily quest record of the user, unordered.
	FetchHistory(ctx context.Context, userID string) ([]domain.DailyQuestRecord, error)
	// GetHistory returns assignments with quest text for dates in [from, to].
	GetHistory(ctx context.Context, userID, from, to string) ([]domain.DailyQuest, error)
	GetStats(ctx context.Context, userID string) (*domain.StoredStats, error)
	// SaveStats overwrites the stored snapshot; concurrent writers are last-writer-wins.
	SaveStats(ctx context.Context, userID string, stats domain.UserStatsSnapshot) error
	// InsertAchievementIfAbsent reports whether a new row was created.
	InsertAchievementIfAbsent(ctx context.Context, userID string, kind domain.AchievementType, unlockedAt time.Time) (bool, error)
	ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error)
}

// Settings defines persistence for user preferences
type Settings interface {
	GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpsertSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error)
	// CompleteOnboarding marks onboarding done, records the chosen defaults and adds
	// their contents to the quest pool in one transaction.
	CompleteOnboarding(ctx context.Context, userID string, enabled []string, contents []string) (*domain.UserSettings, error)
}
