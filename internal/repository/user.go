package repository

import (
	"context"
	"time"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// User defines persistence for accounts
type User interface {
	// CreateUser inserts the user together with its default settings and an empty
	// stats row. It returns domain.ErrEmailTaken or domain.ErrTagTaken on conflicts.
	CreateUser(ctx context.Context, user *domain.User, settings domain.UserSettings) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Session defines persistence for login sessions
type Session interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
