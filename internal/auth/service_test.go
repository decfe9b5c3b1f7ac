package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *domain.User, settings domain.UserSettings) error {
	return m.Called(ctx, user, settings).Error(0)
}

func (m *MockRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *MockRepository) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

func (m *MockRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockRepository) *service {
	tokens := NewTokenManager(testSecret)
	tokens.now = func() time.Time { return fixedNow }
	svc := NewService(repo, tokens, Options{BcryptCost: 4}).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSignup(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateUser", mock.Anything, mock.AnythingOfType("*domain.User"), mock.AnythingOfType("domain.UserSettings")).Return(nil)
	repo.On("CreateSession", mock.Anything, mock.AnythingOfType("*domain.Session")).Return(nil)
	svc := newTestService(repo)
	svc.newTag = func() string { return "0042" }

	res, err := svc.Signup(context.Background(), SignupInput{Email: " Hero@Example.com", Password: "supersecret", Username: "hero"})
	require.NoError(t, err)

	assert.Equal(t, "hero@example.com", res.User.Email)
	assert.Equal(t, "hero#0042", res.User.DisplayName())
	assert.NotEqual(t, "supersecret", res.User.PasswordHash)
	assert.True(t, CheckPassword(res.User.PasswordHash, "supersecret"))
	assert.Equal(t, fixedNow.Add(DefaultSessionTTL), res.ExpiresAt)

	created := repo.Calls[0].Arguments.Get(2).(domain.UserSettings)
	assert.Equal(t, domain.DefaultSettings(res.User.ID), created)

	session := repo.Calls[1].Arguments.Get(1).(*domain.Session)
	claims, err := svc.tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, claims.ID)
	assert.Equal(t, res.User.ID, claims.Subject)
}

func TestSignup_TagRetry(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrTagTaken).Twice()
	repo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("CreateSession", mock.Anything, mock.Anything).Return(nil)
	svc := newTestService(repo)

	tags := []string{"0001", "0002", "0003"}
	svc.newTag = func() string {
		tag := tags[0]
		tags = tags[1:]
		return tag
	}

	res, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.io", Password: "password1", Username: "hero"})
	require.NoError(t, err)
	assert.Equal(t, "0003", res.User.Tag)
	repo.AssertNumberOfCalls(t, "CreateUser", 3)
}

func TestSignup_TagExhausted(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrTagTaken)
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@b.io", Password: "password1", Username: "hero"})
	assert.ErrorIs(t, err, domain.ErrTagExhausted)
	repo.AssertNumberOfCalls(t, "CreateUser", MaxTagAttempts)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      SignupInput
		repoErr error
		wantErr error
	}{
		{"bad email", SignupInput{Email: "nope", Password: "password1", Username: "hero"}, nil, domain.ErrInvalidInput},
		{"short password", SignupInput{Email: "a@b.io", Password: "short", Username: "hero"}, nil, domain.ErrInvalidInput},
		{"bad username", SignupInput{Email: "a@b.io", Password: "password1", Username: "h!"}, nil, domain.ErrInvalidInput},
		{"email taken", SignupInput{Email: "a@b.io", Password: "password1", Username: "hero"}, domain.ErrEmailTaken, domain.ErrEmailTaken},
		{"db down", SignupInput{Email: "a@b.io", Password: "password1", Username: "hero"}, errors.New("conn refused"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			if tt.repoErr != nil {
				repo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(tt.repoErr)
			}
			_, err := newTestService(repo).Signup(context.Background(), tt.in)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.ErrorIs(t, err, tt.repoErr)
			}
		})
	}
}

func storedUser(t *testing.T, password string) *domain.User {
	hash, err := HashPassword(password, 4)
	require.NoError(t, err)
	return &domain.User{ID: "user-1", Email: "hero@example.com", PasswordHash: hash, Username: "hero", Tag: "0042"}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		user     *domain.User
		lookup   error
		wantErr  error
	}{
		{"success folds email", "HERO@example.com", "password1", storedUser(t, "password1"), nil, nil},
		{"wrong password", "hero@example.com", "password2", storedUser(t, "password1"), nil, domain.ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", "password1", nil, domain.ErrUserNotFound, domain.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetUserByEmail", mock.Anything, NormalizeEmail(tt.email)).Return(tt.user, tt.lookup)
			repo.On("CreateSession", mock.Anything, mock.Anything).Return(nil)

			res, err := newTestService(repo).Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, "user-1", res.User.ID)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	live := &domain.Session{ID: "sess-1", UserID: "user-1", ExpiresAt: fixedNow.Add(time.Hour)}
	tokens := NewTokenManager(testSecret)
	tokens.now = func() time.Time { return fixedNow }
	token, err := tokens.Issue(*live)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		session *domain.Session
		lookup  error
		wantErr error
	}{
		{"valid", token, live, nil, nil},
		{"empty token", "", nil, nil, domain.ErrUnauthorized},
		{"logged out", token, nil, domain.ErrNotFound, domain.ErrUnauthorized},
		{"expired session", token, &domain.Session{ID: "sess-1", UserID: "user-1", ExpiresAt: fixedNow}, nil, domain.ErrSessionExpired},
		{"session owned by someone else", token, &domain.Session{ID: "sess-1", UserID: "user-2", ExpiresAt: fixedNow.Add(time.Hour)}, nil, domain.ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetSession", mock.Anything, "sess-1").Return(tt.session, tt.lookup)
			svc := newTestService(repo)

			p, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Principal{UserID: "user-1", SessionID: "sess-1"}, *p)
		})
	}
}

func TestLogout(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteSession", mock.Anything, "sess-1").Return(nil)
	repo.On("DeleteSession", mock.Anything, "gone").Return(domain.ErrNotFound)
	repo.On("DeleteSession", mock.Anything, "boom").Return(errors.New("db down"))
	svc := newTestService(repo)

	assert.NoError(t, svc.Logout(context.Background(), "sess-1"))
	assert.NoError(t, svc.Logout(context.Background(), "gone"))
	assert.Error(t, svc.Logout(context.Background(), "boom"))
}

func TestGetUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)
	repo.On("GetUserByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
	svc := newTestService(repo)

	u, err := svc.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	_, err = svc.GetUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPurgeExpiredSessions(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteExpiredSessions", mock.Anything, fixedNow).Return(int64(3), nil).Once()
	repo.On("DeleteExpiredSessions", mock.Anything, fixedNow).Return(int64(0), errors.New("db down")).Once()
	svc := newTestService(repo)

	n, err := svc.PurgeExpiredSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.PurgeExpiredSessions(context.Background())
	assert.Error(t, err)
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	_, ok := PrincipalFromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, UserIDFromContext(ctx))

	ctx = WithPrincipal(ctx, Principal{UserID: "user-1", SessionID: "sess-1"})
	p, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "sess-1", p.SessionID)
	assert.Equal(t, "user-1", UserIDFromContext(ctx))
}
