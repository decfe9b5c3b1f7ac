package quest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/event"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListQuests(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockRepository) GetQuest(ctx context.Context, userID string, questID int64) (*domain.Quest, error) {
	args := m.Called(ctx, userID, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockRepository) CreateQuests(ctx context.Context, userID string, contents []string) ([]domain.Quest, error) {
	args := m.Called(ctx, userID, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockRepository) UpdateQuestContent(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error) {
	args := m.Called(ctx, userID, questID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockRepository) SetQuestsArchived(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error) {
	args := m.Called(ctx, userID, questIDs, archived)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) DeleteQuests(ctx context.Context, userID string, questIDs []int64) (int64, error) {
	args := m.Called(ctx, userID, questIDs)
	return args.Get(0).(int64), args.Error(1)
}

const owner = "user-1"

func TestCreateBulk(t *testing.T) {
	tests := []struct {
		name     string
		contents []string
		wantErr  bool
		stored   []string
	}{
		{"trims content", []string{"  Drink water  ", "Stretch"}, false, []string{"Drink water", "Stretch"}},
		{"max length accepted", []string{strings.Repeat("é", MaxContentLength)}, false, []string{strings.Repeat("é", MaxContentLength)}},
		{"empty list", nil, true, nil},
		{"blank content", []string{"ok", "   "}, true, nil},
		{"too long", []string{strings.Repeat("a", MaxContentLength+1)}, true, nil},
		{"too many", make([]string, MaxBulkSize+1), true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			if !tt.wantErr {
				var out []domain.Quest
				for i, c := range tt.stored {
					out = append(out, domain.Quest{ID: int64(i + 1), UserID: owner, Content: c})
				}
				repo.On("CreateQuests", mock.Anything, owner, tt.stored).Return(out, nil)
			}
			svc := NewService(repo, nil)

			got, err := svc.CreateBulk(context.Background(), owner, tt.contents)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				repo.AssertNotCalled(t, "CreateQuests", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, len(tt.stored))
			repo.AssertExpectations(t)
		})
	}
}

func TestCreate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateQuests", mock.Anything, owner, []string{"Read"}).Return([]domain.Quest{{ID: 7, UserID: owner, Content: "Read"}}, nil)

	q, err := NewService(repo, nil).Create(context.Background(), owner, "Read")
	require.NoError(t, err)
	assert.Equal(t, int64(7), q.ID)
}

func TestUpdate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("UpdateQuestContent", mock.Anything, owner, int64(1), "Walk").Return(&domain.Quest{ID: 1, Content: "Walk"}, nil)
	repo.On("UpdateQuestContent", mock.Anything, owner, int64(2), "Walk").Return(nil, domain.ErrNotFound)
	repo.On("UpdateQuestContent", mock.Anything, owner, int64(3), "Walk").Return(nil, errors.New("db down"))
	svc := NewService(repo, nil)

	q, err := svc.Update(context.Background(), owner, 1, " Walk ")
	require.NoError(t, err)
	assert.Equal(t, "Walk", q.Content)

	_, err = svc.Update(context.Background(), owner, 2, "Walk")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = svc.Update(context.Background(), owner, 3, "Walk")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrQuestNotFound)

	_, err = svc.Update(context.Background(), owner, 1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_PublishesEvent(t *testing.T) {
	repo := new(MockRepository)
	repo.On("DeleteQuests", mock.Anything, owner, []int64{4, 5}).Return(int64(2), nil)
	repo.On("DeleteQuests", mock.Anything, owner, []int64{9}).Return(int64(0), nil)

	bus := event.NewMemoryBus()
	var got []event.Event
	bus.Subscribe(event.QuestsDeleted, func(ctx context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})
	svc := NewService(repo, bus)

	n, err := svc.DeleteBulk(context.Background(), owner, []int64{4, 5, 4})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.Len(t, got, 1)
	assert.Equal(t, owner, got[0].UserID())

	err = svc.Delete(context.Background(), owner, 9)
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	assert.Len(t, got, 1, "nothing deleted, nothing published")

	_, err = svc.DeleteBulk(context.Background(), owner, []int64{0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArchive(t *testing.T) {
	repo := new(MockRepository)
	repo.On("SetQuestsArchived", mock.Anything, owner, []int64{1}, true).Return(int64(1), nil)
	repo.On("SetQuestsArchived", mock.Anything, owner, []int64{2}, false).Return(int64(0), nil)
	repo.On("SetQuestsArchived", mock.Anything, owner, []int64{1, 3}, true).Return(int64(2), nil)
	svc := NewService(repo, nil)

	assert.NoError(t, svc.SetArchived(context.Background(), owner, 1, true))
	assert.ErrorIs(t, svc.SetArchived(context.Background(), owner, 2, false), domain.ErrQuestNotFound)

	n, err := svc.ArchiveBulk(context.Background(), owner, []int64{1, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestListAndDefaults(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListQuests", mock.Anything, owner, false).Return(nil, nil)
	svc := NewService(repo, nil)

	quests, err := svc.List(context.Background(), owner, false)
	require.NoError(t, err)
	assert.NotNil(t, quests)
	assert.Empty(t, quests)

	defaults := svc.Defaults()
	assert.Len(t, defaults, len(domain.DefaultQuests))
	defaults[0].Content = "changed"
	assert.NotEqual(t, "changed", domain.DefaultQuests[0].Content)
}
