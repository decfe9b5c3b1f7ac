package quest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
)

// Service manages a user's quest pool
type Service interface {
	List(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error)
	Create(ctx context.Context, userID, content string) (*domain.Quest, error)
	CreateBulk(ctx context.Context, userID string, contents []string) ([]domain.Quest, error)
	Update(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error)
	Delete(ctx context.Context, userID string, questID int64) error
	// DeleteBulk removes the caller's quests among ids and returns how many were removed.
	DeleteBulk(ctx context.Context, userID string, questIDs []int64) (int64, error)
	SetArchived(ctx context.Context, userID string, questID int64, archived bool) error
	ArchiveBulk(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error)
	// Defaults returns the built-in quest catalog.
	Defaults() []domain.DefaultQuest
}

type service struct {
	repo Repository
	bus  event.Bus
}

// NewService creates a new quest service
func NewService(repo Repository, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// NormalizeContent trims content and checks its length.
func NormalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	n := utf8.RuneCountInString(content)
	if n == 0 || n > MaxContentLength {
		return "", fmt.Errorf(ErrMsgContentLength, domain.ErrInvalidInput, MaxContentLength)
	}
	return content, nil
}

func (s *service) List(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error) {
	quests, err := s.repo.ListQuests(ctx, userID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	return quests, nil
}

func (s *service) Create(ctx context.Context, userID, content string) (*domain.Quest, error) {
	created, err := s.CreateBulk(ctx, userID, []string{content})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

func (s *service) CreateBulk(ctx context.Context, userID string, contents []string) ([]domain.Quest, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf(ErrMsgBulkEmpty, domain.ErrInvalidInput)
	}
	if len(contents) > MaxBulkSize {
		return nil, fmt.Errorf(ErrMsgBulkTooLarge, domain.ErrInvalidInput, MaxBulkSize)
	}

	cleaned := make([]string, 0, len(contents))
	for _, c := range contents {
		content, err := NormalizeContent(c)
		if err != nil {
			return nil, err
		}
		cleaned = append(cleaned, content)
	}

	created, err := s.repo.CreateQuests(ctx, userID, cleaned)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgQuestsCreated, "count", len(created))
	return created, nil
}

func (s *service) Update(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error) {
	if questID <= 0 {
		return nil, domain.ErrQuestNotFound
	}
	content, err := NormalizeContent(content)
	if err != nil {
		return nil, err
	}

	q, err := s.repo.UpdateQuestContent(ctx, userID, questID, content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrQuestNotFound) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf(ErrMsgUpdateFailed, questID, err)
	}

	logger.FromContext(ctx).Info(LogMsgQuestUpdated, "quest_id", questID)
	return q, nil
}

func (s *service) Delete(ctx context.Context, userID string, questID int64) error {
	n, err := s.DeleteBulk(ctx, userID, []int64{questID})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (s *service) DeleteBulk(ctx context.Context, userID string, questIDs []int64) (int64, error) {
	ids, err := cleanIDs(questIDs)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.DeleteQuests(ctx, userID, ids)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgDeleteFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgQuestsDeleted, "requested", len(ids), "deleted", n)
	if n > 0 {
		// assignments cascade with the quest, so history changed
		s.publish(ctx, event.NewQuestsDeletedEvent(userID, ids, n))
	}
	return n, nil
}

func (s *service) SetArchived(ctx context.Context, userID string, questID int64, archived bool) error {
	n, err := s.ArchiveBulk(ctx, userID, []int64{questID}, archived)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrQuestNotFound
	}
	return nil
}

func (s *service) ArchiveBulk(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error) {
	ids, err := cleanIDs(questIDs)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.SetQuestsArchived(ctx, userID, ids, archived)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgArchiveFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgQuestsArchived, "archived", archived, "count", n)
	return n, nil
}

func (s *service) Defaults() []domain.DefaultQuest {
	return append([]domain.DefaultQuest(nil), domain.DefaultQuests...)
}

// cleanIDs rejects non-positive ids and drops duplicates.
func cleanIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf(ErrMsgBulkEmpty, domain.ErrInvalidInput)
	}
	if len(ids) > MaxBulkSize {
		return nil, fmt.Errorf(ErrMsgBulkTooLarge, domain.ErrInvalidInput, MaxBulkSize)
	}
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf(ErrMsgInvalidQuestID, domain.ErrInvalidInput)
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
