package stats

import (
	"context"

	"github.com/osse101/SideQuest_Go/internal/repository"
)

// Repository is a local interface for stats repository operations.
// It embeds repository.Stats to enable mock generation in this package.
type Repository interface {
	repository.Stats
}

// DateResolver yields a user's current quest date, adjusted for their day boundary.
type DateResolver interface {
	Today(ctx context.Context, userID string) (string, error)
}
