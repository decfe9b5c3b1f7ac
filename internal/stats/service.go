package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/osse101/SideQuest_Go/internal/calendar"
	"github.com/osse101/SideQuest_Go/internal/domain"
	"github.com/osse101/SideQuest_Go/internal/event"
	"github.com/osse101/SideQuest_Go/internal/logger"
	"github.com/osse101/SideQuest_Go/internal/streak"
)

// Service defines the interface for stats operations
type Service interface {
	// Recompute rebuilds the user's snapshot from full history, stores it and unlocks
	// any newly earned achievements.
	Recompute(ctx context.Context, userID string) (*RecomputeResult, error)
	// CheckAchievements inserts every earned-but-missing achievement and returns the new ones.
	CheckAchievements(ctx context.Context, userID string, res streak.Result) ([]domain.Achievement, error)
	GetOverview(ctx context.Context, userID string) (*domain.StatsOverview, error)
	GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error)
	// GetHistory returns per-day history for [from, to], most recent first.
	GetHistory(ctx context.Context, userID, from, to string) ([]domain.DayHistory, error)
}

// RecomputeResult is the outcome of a recomputation
type RecomputeResult struct {
	Stats           domain.UserStatsSnapshot `json:"stats"`
	NewAchievements []domain.Achievement     `json:"newAchievements"`
}

type service struct {
	repo   Repository
	dates  DateResolver
	engine *streak.Engine
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a new stats service
func NewService(repo Repository, dates DateResolver, engine *streak.Engine, bus event.Bus) Service {
	return &service{
		repo:   repo,
		dates:  dates,
		engine: engine,
		bus:    bus,
		now:    time.Now,
	}
}

func (s *service) Recompute(ctx context.Context, userID string) (*RecomputeResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	log := logger.FromContext(ctx)

	today, err := s.dates.Today(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveTodayFailed, err)
	}

	records, err := s.repo.FetchHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchHistoryFailed, err)
	}

	res, err := s.engine.Recompute(records, today)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRecomputeFailed, err)
	}

	if err := s.repo.SaveStats(ctx, userID, res.Snapshot); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveStatsFailed, err)
	}

	unlocked, err := s.CheckAchievements(ctx, userID, res)
	if err != nil {
		return nil, err
	}

	log.Debug(LogMsgStatsRecomputed,
		"today", today,
		"records", len(records),
		"current_streak", res.Snapshot.CurrentStreak,
		"longest_streak", res.Snapshot.LongestStreak,
		"new_achievements", len(unlocked))

	s.publish(ctx, event.NewStatsUpdatedEvent(userID, res.Snapshot))

	return &RecomputeResult{Stats: res.Snapshot, NewAchievements: unlocked}, nil
}

func (s *service) CheckAchievements(ctx context.Context, userID string, res streak.Result) ([]domain.Achievement, error) {
	unlocked := []domain.Achievement{}
	for _, kind := range streak.Eligible(res) {
		at := s.now().UTC()
		created, err := s.repo.InsertAchievementIfAbsent(ctx, userID, kind, at)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgInsertAchievement, kind, err)
		}
		if !created {
			continue
		}

		a := domain.Achievement{UserID: userID, Type: kind, UnlockedAt: at}
		unlocked = append(unlocked, a)
		logger.FromContext(ctx).Info(LogMsgAchievementUnlocked, "achievement", kind)
		s.publish(ctx, event.NewAchievementUnlockedEvent(userID, a))
	}
	return unlocked, nil
}

func (s *service) GetOverview(ctx context.Context, userID string) (*domain.StatsOverview, error) {
	result, err := s.Recompute(ctx, userID)
	if err != nil {
		return nil, err
	}

	today, err := s.dates.Today(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgResolveTodayFailed, err)
	}
	from, err := calendar.AddDays(today, -(HistoryDays - 1))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHistoryRangeFailed, err)
	}

	history, err := s.GetHistory(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	achievements, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAchievements, err)
	}

	return &domain.StatsOverview{
		Stats:        result.Stats,
		History:      history,
		Achievements: achievements,
	}, nil
}

func (s *service) GetHistory(ctx context.Context, userID, from, to string) ([]domain.DayHistory, error) {
	rows, err := s.repo.GetHistory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetHistoryFailed, err)
	}
	return GroupHistory(rows), nil
}

func (s *service) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error) {
	unlocked, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAchievements, err)
	}

	byType := make(map[domain.AchievementType]time.Time, len(unlocked))
	for _, a := range unlocked {
		byType[a.Type] = a.UnlockedAt
	}

	out := make([]domain.AchievementStatus, 0, len(domain.AchievementCatalog))
	for _, def := range domain.AchievementCatalog {
		status := domain.AchievementStatus{AchievementDefinition: def}
		if at, ok := byType[def.Type]; ok {
			at := at
			status.Unlocked = true
			status.UnlockedAt = &at
		}
		out = append(out, status)
	}
	return out, nil
}

// GroupHistory buckets assignments by date, most recent date first.
func GroupHistory(rows []domain.DailyQuest) []domain.DayHistory {
	byDate := make(map[string]*domain.DayHistory)
	for _, dq := range rows {
		day, ok := byDate[dq.Date]
		if !ok {
			day = &domain.DayHistory{Date: dq.Date, Quests: []domain.DailyQuest{}}
			byDate[dq.Date] = day
		}
		day.Total++
		if dq.Completed {
			day.Completed++
		}
		day.Quests = append(day.Quests, dq)
	}

	out := make([]domain.DayHistory, 0, len(byDate))
	for _, day := range byDate {
		out = append(out, *day)
	}
	// YYYY-MM-DD sorts lexically
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
