package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// UserRepository stores accounts and login sessions
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, email, password_hash, username, tag, email_verified, created_at, updated_at`

// CreateUser inserts the account with its settings and an empty stats row
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User, settings domain.UserSettings) error {
	userUUID, err := parseUserUUID(user.ID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, `
		INSERT INTO users (user_id, email, password_hash, username, tag, email_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		userUUID, user.Email, user.PasswordHash, user.Username, user.Tag, user.EmailVerified,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		switch uniqueViolation(err) {
		case "":
			return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
		case ConstraintUsersUsernameTag:
			return domain.ErrTagTaken
		default:
			return domain.ErrEmailTaken
		}
	}

	settings.UserID = user.ID
	if _, err := upsertSettings(ctx, tx, settings); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1)`, userUUID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRow, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetUserByID returns domain.ErrUserNotFound for unknown ids
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, userUUID)
	return scanUser(row)
}

// GetUserByEmail expects an already normalized address
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func scanUser(row interface{ Scan(dest ...any) error }) (*domain.User, error) {
	var (
		u  domain.User
		id uuid.UUID
	)
	err := row.Scan(&id, &u.Email, &u.PasswordHash, &u.Username, &u.Tag, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToGetUser, domain.ErrUserNotFound)
	}
	u.ID = id.String()
	return &u, nil
}

// CreateSession stores a new login session
func (r *UserRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	sessionUUID, err := uuid.Parse(session.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid session id", domain.ErrInvalidInput)
	}
	userUUID, err := parseUserUUID(session.UserID)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO sessions (session_id, user_id, expires_at)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		sessionUUID, userUUID, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateSess, err)
	}
	return nil
}

// GetSession returns domain.ErrNotFound for unknown or malformed ids
func (r *UserRepository) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	sessionUUID, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var (
		s        domain.Session
		sid, uid uuid.UUID
	)
	err = r.db.QueryRow(ctx, `
		SELECT session_id, user_id, expires_at, created_at
		FROM sessions WHERE session_id = $1`, sessionUUID,
	).Scan(&sid, &uid, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToGetSession, domain.ErrNotFound)
	}
	s.ID = sid.String()
	s.UserID = uid.String()
	return &s, nil
}

// DeleteSession returns domain.ErrNotFound when no session was removed
func (r *UserRepository) DeleteSession(ctx context.Context, sessionID string) error {
	sessionUUID, err := uuid.Parse(sessionID)
	if err != nil {
		return domain.ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1`, sessionUUID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSess, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteExpiredSessions removes sessions that lapsed at or before now
func (r *UserRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToPurgeSession, err)
	}
	return tag.RowsAffected(), nil
}
