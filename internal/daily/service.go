package daily

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/osse101/SideQuest_Go/internal/concurrency"
	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
	"github.com/osse101/SideQuest_Go/internal/stats"
)

// Service manages the daily quest set
type Service interface {
	// GetToday returns today's set, generating it on first access.
	GetToday(ctx context.Context, userID string) ([]domain.DailyQuest, error)
	// SetCompletion toggles an assignment and refreshes stats and achievements.
	SetCompletion(ctx context.Context, userID string, dailyQuestID int64, completed bool) (*CompletionResult, error)
	// Reroll replaces today's set while nothing in it is completed.
	Reroll(ctx context.Context, userID string) ([]domain.DailyQuest, error)
}

// CompletionResult is returned after toggling an assignment
type CompletionResult struct {
	DailyQuest      *domain.DailyQuest       `json:"dailyQuest"`
	Stats           domain.UserStatsSnapshot `json:"stats"`
	NewAchievements []domain.Achievement     `json:"newAchievements"`
}

type service struct {
	repo  Repository
	dates stats.DateResolver
	stats StatsRecomputer
	bus   event.Bus
	count int
	locks *concurrency.LockManager

	now     func() time.Time
	shuffle func(n int, swap func(i, j int))
}

// NewService creates a new daily quest service. count is the size of a generated set.
func NewService(repo Repository, dates stats.DateResolver, statsSvc StatsRecomputer, bus event.Bus, count int) Service {
	if count <= 0 {
		count = DefaultQuestCount
	}
	return &service{
		repo:    repo,
		dates:   dates,
		stats:   statsSvc,
		bus:     bus,
		count:   count,
		locks:   concurrency.NewLockManager(),
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
}

func (s *service) GetToday(ctx context.Context, userID string) ([]domain.DailyQuest, error) {
	// Concurrent first reads must not each insert their own random set.
	defer s.locks.Lock(userID)()

	today, err := s.dates.Today(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveDate, err)
	}

	set, err := s.repo.ListDailyQuests(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListDaily, err)
	}
	if len(set) > 0 {
		return set, nil
	}

	ids, err := s.draw(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.DailyQuest{}, nil
	}
	set, err = s.repo.CreateDailyQuests(ctx, userID, today, ids)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateDaily, err)
	}
	if len(set) > 0 {
		logger.FromContext(ctx).Info(LogMsgDailySetGenerated, "date", today, "count", len(set))
		s.publish(ctx, event.NewDailySetGeneratedEvent(userID, today, len(set)))
	}
	return set, nil
}

// draw picks up to count random active quest ids, preferring ones not in avoid.
func (s *service) draw(ctx context.Context, userID string, avoid map[int64]bool) ([]int64, error) {
	pool, err := s.repo.ListQuests(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPool, err)
	}
	if len(pool) == 0 {
		return nil, nil
	}
	return s.pick(pool, avoid), nil
}

func (s *service) pick(pool []domain.Quest, avoid map[int64]bool) []int64 {
	fresh := make([]int64, 0, len(pool))
	stale := make([]int64, 0, len(pool))
	for _, q := range pool {
		if avoid[q.ID] {
			stale = append(stale, q.ID)
		} else {
			fresh = append(fresh, q.ID)
		}
	}
	s.shuffle(len(fresh), func(i, j int) { fresh[i], fresh[j] = fresh[j], fresh[i] })
	s.shuffle(len(stale), func(i, j int) { stale[i], stale[j] = stale[j], stale[i] })

	ids := append(fresh, stale...)
	if len(ids) > s.count {
		ids = ids[:s.count]
	}
	return ids
}

func (s *service) SetCompletion(ctx context.Context, userID string, dailyQuestID int64, completed bool) (*CompletionResult, error) {
	if dailyQuestID <= 0 {
		return nil, domain.ErrDailyQuestNotFound
	}

	dq, err := s.repo.SetDailyQuestCompleted(ctx, userID, dailyQuestID, completed, s.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDailyQuestNotFound) {
			return nil, domain.ErrDailyQuestNotFound
		}
		return nil, fmt.Errorf(ErrMsgToggleFailed, dailyQuestID, err)
	}

	logger.FromContext(ctx).Info(LogMsgDailyToggled, "daily_quest_id", dailyQuestID, "completed", completed)
	s.publish(ctx, event.NewDailyQuestCompletedEvent(*dq))

	res, err := s.stats.Recompute(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecomputeFailed, err)
	}

	return &CompletionResult{
		DailyQuest:      dq,
		Stats:           res.Stats,
		NewAchievements: res.NewAchievements,
	}, nil
}

func (s *service) Reroll(ctx context.Context, userID string) ([]domain.DailyQuest, error) {
	defer s.locks.Lock(userID)()

	today, err := s.dates.Today(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveDate, err)
	}

	current, err := s.repo.ListDailyQuests(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListDaily, err)
	}
	avoid := make(map[int64]bool, len(current))
	for _, dq := range current {
		if dq.Completed {
			return nil, domain.ErrDailySetStarted
		}
		avoid[dq.QuestID] = true
	}

	ids, err := s.draw(ctx, userID, avoid)
	if err != nil {
		return nil, err
	}
	// The repository re-checks under its row locks; a completion may have landed since the list.
	set, err := s.repo.RerollDailyQuests(ctx, userID, today, ids)
	if err != nil {
		if errors.Is(err, domain.ErrDailySetStarted) {
			return nil, domain.ErrDailySetStarted
		}
		return nil, fmt.Errorf(ErrMsgRerollFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgDailySetRerolled, "date", today, "count", len(set))
	s.publish(ctx, event.NewDailySetRerolledEvent(userID, today, len(set)))
	return set, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
