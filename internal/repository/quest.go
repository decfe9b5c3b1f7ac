package repository

import (
	"context"
	"time"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// Quest defines persistence for the quest pool. Every method is scoped to userID;
// ids belonging to other users behave as if they did not exist.
type Quest interface {
	ListQuests(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error)
	GetQuest(ctx context.Context, userID string, questID int64) (*domain.Quest, error)
	CreateQuests(ctx context.Context, userID string, contents []string) ([]domain.Quest, error)
	UpdateQuestContent(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error)
	SetQuestsArchived(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error)
	DeleteQuests(ctx context.Context, userID string, questIDs []int64) (int64, error)
}

// DailyQuest defines persistence for daily assignments
type DailyQuest interface {
	ListDailyQuests(ctx context.Context, userID, date string) ([]domain.DailyQuest, error)
	// CreateDailyQuests inserts the assignments unless the date already has a set,
	// and returns the date's set. Concurrent callers converge on one set.
	CreateDailyQuests(ctx context.Context, userID, date string, questIDs []int64) ([]domain.DailyQuest, error)
	SetDailyQuestCompleted(ctx context.Context, userID string, dailyQuestID int64, completed bool, at time.Time) (*domain.DailyQuest, error)
	// RerollDailyQuests replaces the date's set with questIDs, failing with
	// domain.ErrDailySetStarted once any assignment is completed.
	RerollDailyQuests(ctx context.Context, userID, date string, questIDs []int64) ([]domain.DailyQuest, error)
}
