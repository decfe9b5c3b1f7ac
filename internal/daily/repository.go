package daily

import (
	"context"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/repository"
	"github.com/osse101/SideQuest_Go/internal/stats"
)

// Repository is a local interface for daily assignment persistence
type Repository interface {
	repository.DailyQuest
	ListQuests(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error)
}

// StatsRecomputer refreshes a user's snapshot after history changes
type StatsRecomputer interface {
	Recompute(ctx context.Context, userID string) (*stats.RecomputeResult, error)
}
