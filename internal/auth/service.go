package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// SignupInput carries the fields of a new account
type SignupInput struct {
	Email    string
	Password string
	Username string
}

// Result is returned by signup and login
type Result struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Service handles accounts and sessions
type Service interface {
	Signup(ctx context.Context, in SignupInput) (*Result, error)
	Login(ctx context.Context, email, password string) (*Result, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a token to its live session.
	Authenticate(ctx context.Context, token string) (*Principal, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	// PurgeExpiredSessions deletes every lapsed session and returns the count.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// Options tune the auth service
type Options struct {
	SessionTTL time.Duration
	BcryptCost int
}

type service struct {
	repo   Repository
	tokens *TokenManager
	opts   Options
	now    func() time.Time
	newTag func() string
}

// NewService creates a new auth service
func NewService(repo Repository, tokens *TokenManager, opts Options) Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	return &service{
		repo:   repo,
		tokens: tokens,
		opts:   opts,
		now:    time.Now,
		newTag: randomTag,
	}
}

func randomTag() string {
	return fmt.Sprintf("%0*d", TagDigits, rand.IntN(10000))
}

func (s *service) Signup(ctx context.Context, in SignupInput) (*Result, error) {
	log := logger.FromContext(ctx)

	email := NormalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password, s.opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHashFailed, err)
	}

	now := s.now().UTC()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Username:     username,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created := false
	for attempt := 0; attempt < MaxTagAttempts; attempt++ {
		user.Tag = s.newTag()
		err = s.repo.CreateUser(ctx, user, domain.DefaultSettings(user.ID))
		if err == nil {
			created = true
			break
		}
		if !errors.Is(err, domain.ErrTagTaken) {
			if errors.Is(err, domain.ErrEmailTaken) {
				return nil, domain.ErrEmailTaken
			}
			return nil, fmt.Errorf(ErrMsgCreateUserFailed, err)
		}
		log.Debug(LogMsgTagCollision, "username", username, "attempt", attempt+1)
	}
	if !created {
		return nil, domain.ErrTagExhausted
	}

	log.Info(LogMsgUserSignedUp, "user_id", user.ID, "display_name", user.DisplayName())
	return s.startSession(ctx, user)
}

func (s *service) Login(ctx context.Context, email, password string) (*Result, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			burnComparison(password)
			log.Info(LogMsgLoginFailed, "reason", "unknown_email")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf(ErrMsgLookupUserFailed, err)
	}

	if !CheckPassword(user.PasswordHash, password) {
		log.Info(LogMsgLoginFailed, "reason", "bad_password", "user_id", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	log.Info(LogMsgUserLoggedIn, "user_id", user.ID)
	return s.startSession(ctx, user)
}

func (s *service) startSession(ctx context.Context, user *domain.User) (*Result, error) {
	now := s.now().UTC()
	session := domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.opts.SessionTTL),
	}
	if err := s.repo.CreateSession(ctx, &session); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSession, err)
	}

	token, err := s.tokens.Issue(session)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Token: token, ExpiresAt: session.ExpiresAt}, nil
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	if err := s.repo.DeleteSession(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf(ErrMsgDeleteSession, err)
	}
	logger.FromContext(ctx).Info(LogMsgUserLoggedOut)
	return nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetSession(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf(ErrMsgLookupSession, err)
	}
	if session.Expired(s.now()) {
		logger.FromContext(ctx).Debug(LogMsgSessionRejected, "reason", "expired")
		return nil, domain.ErrSessionExpired
	}
	if session.UserID != claims.Subject {
		return nil, fmt.Errorf(ErrMsgTokenSubject, domain.ErrInvalidToken)
	}

	return &Principal{UserID: session.UserID, SessionID: session.ID}, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf(ErrMsgLookupUserFailed, err)
	}
	return user, nil
}

func (s *service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPurgeSessions, err)
	}
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgSessionsPurged, "count", n)
	}
	return n, nil
}
