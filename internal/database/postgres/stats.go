package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// FetchHistory returns every assignment of the user as a completion record
func (r *StatsRepository) FetchHistory(ctx context.Context, userID string) ([]domain.DailyQuestRecord, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT quest_id, to_char(quest_date, '`+dateFormat+`'), completed, completed_at
		FROM daily_quests
		WHERE user_id = $1`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchHistory, err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyQuestRecord, error) {
		var (
			rec domain.DailyQuestRecord
			at  pgtype.Timestamptz
		)
		if err := row.Scan(&rec.QuestID, &rec.Date, &rec.Completed, &at); err != nil {
			return domain.DailyQuestRecord{}, err
		}
		rec.UserID = userID
		rec.CompletedAt = ptrTime(at)
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchHistory, err)
	}
	return records, nil
}

// GetHistory returns assignments between from and to inclusive, ordered by date
func (r *StatsRepository) GetHistory(ctx context.Context, userID, from, to string) ([]domain.DailyQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	start, err := toDate(from)
	if err != nil {
		return nil, err
	}
	end, err := toDate(to)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, dailyQuestSelect+`
		WHERE dq.user_id = $1 AND dq.quest_date BETWEEN $2 AND $3
		ORDER BY dq.quest_date, dq.daily_quest_id`, userUUID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchHistory, err)
	}
	history, err := pgx.CollectRows(rows, scanDailyQuest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFetchHistory, err)
	}
	return history, nil
}

// GetStats returns the stored snapshot or domain.ErrNotFound
func (r *StatsRepository) GetStats(ctx context.Context, userID string) (*domain.StoredStats, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		st   domain.StoredStats
		id   uuid.UUID
		last pgtype.Text
	)
	err = r.db.QueryRow(ctx, `
		SELECT user_id, current_streak, longest_streak, total_quests_completed, total_days_active,
			to_char(last_active_date, '`+dateFormat+`'), updated_at
		FROM user_stats
		WHERE user_id = $1`, userUUID).Scan(
		&id, &st.CurrentStreak, &st.LongestStreak, &st.TotalQuestsCompleted, &st.TotalDaysActive,
		&last, &st.UpdatedAt)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToGetStats, domain.ErrNotFound)
	}
	st.UserID = id.String()
	st.LastActiveDate = textToPtr(last)
	return &st, nil
}

// SaveStats upserts the snapshot
func (r *StatsRepository) SaveStats(ctx context.Context, userID string, stats domain.UserStatsSnapshot) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	var last pgtype.Date
	if stats.LastActiveDate != nil {
		if last, err = toDate(*stats.LastActiveDate); err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_stats (user_id, current_streak, longest_streak, total_quests_completed,
			total_days_active, last_active_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			total_quests_completed = EXCLUDED.total_quests_completed,
			total_days_active = EXCLUDED.total_days_active,
			last_active_date = EXCLUDED.last_active_date,
			updated_at = EXCLUDED.updated_at`,
		userUUID, stats.CurrentStreak, stats.LongestStreak, stats.TotalQuestsCompleted,
		stats.TotalDaysActive, last)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveStats, err)
	}
	return nil
}

// InsertAchievementIfAbsent reports whether a new unlock row was written
func (r *StatsRepository) InsertAchievementIfAbsent(ctx context.Context, userID string, kind domain.AchievementType, unlockedAt time.Time) (bool, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}
	tag, err := r.db.Exec(ctx, `
		INSERT INTO achievements (user_id, achievement_type, unlocked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, achievement_type) DO NOTHING`, userUUID, string(kind), unlockedAt)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToInsertAchievement, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListAchievements returns unlocks oldest first
func (r *StatsRepository) ListAchievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT achievement_id, achievement_type, unlocked_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at, achievement_id`, userUUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}
	achievements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Achievement, error) {
		var (
			a    domain.Achievement
			kind string
		)
		if err := row.Scan(&a.ID, &kind, &a.UnlockedAt); err != nil {
			return domain.Achievement{}, err
		}
		a.UserID = userID
		a.Type = domain.AchievementType(kind)
		a.UnlockedAt = a.UnlockedAt.UTC()
		return a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}
	return achievements, nil
}
