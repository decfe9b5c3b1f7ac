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

// QuestRepository stores the quest pool and daily assignments
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

const questColumns = `quest_id, user_id, content, archived, created_at`

// ListQuests returns the pool in creation order
func (r *QuestRepository) ListQuests(ctx context.Context, userID string, includeArchived bool) ([]domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+questColumns+`
		FROM quests
		WHERE user_id = $1 AND ($2 OR NOT archived)
		ORDER BY quest_id`, userUUID, includeArchived)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListQuests, err)
	}
	quests, err := pgx.CollectRows(rows, scanQuest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListQuests, err)
	}
	return quests, nil
}

// GetQuest returns domain.ErrQuestNotFound for ids the user does not own
func (r *QuestRepository) GetQuest(ctx context.Context, userID string, questID int64) (*domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT `+questColumns+` FROM quests WHERE user_id = $1 AND quest_id = $2`, userUUID, questID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetQuest, err)
	}
	q, err := pgx.CollectExactlyOneRow(rows, scanQuest)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToGetQuest, domain.ErrQuestNotFound)
	}
	return &q, nil
}

// CreateQuests inserts contents in order within one transaction
func (r *QuestRepository) CreateQuests(ctx context.Context, userID string, contents []string) ([]domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	created, err := insertQuests(ctx, tx, userUUID, contents)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return created, nil
}

func insertQuests(ctx context.Context, q querier, userUUID uuid.UUID, contents []string) ([]domain.Quest, error) {
	created := make([]domain.Quest, 0, len(contents))
	for _, content := range contents {
		rows, err := q.Query(ctx, `
			INSERT INTO quests (user_id, content) VALUES ($1, $2)
			RETURNING `+questColumns, userUUID, content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertQuest, err)
		}
		quest, err := pgx.CollectExactlyOneRow(rows, scanQuest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertQuest, err)
		}
		created = append(created, quest)
	}
	return created, nil
}

// UpdateQuestContent returns domain.ErrQuestNotFound for ids the user does not own
func (r *QuestRepository) UpdateQuestContent(ctx context.Context, userID string, questID int64, content string) (*domain.Quest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `
		UPDATE quests SET content = $3
		WHERE user_id = $1 AND quest_id = $2
		RETURNING `+questColumns, userUUID, questID, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateQuest, err)
	}
	q, err := pgx.CollectExactlyOneRow(rows, scanQuest)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToUpdateQuest, domain.ErrQuestNotFound)
	}
	return &q, nil
}

// SetQuestsArchived returns the number of the user's quests updated
func (r *QuestRepository) SetQuestsArchived(ctx context.Context, userID string, questIDs []int64, archived bool) (int64, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE quests SET archived = $3
		WHERE user_id = $1 AND quest_id = ANY($2)`, userUUID, questIDs, archived)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToArchiveQuests, err)
	}
	return tag.RowsAffected(), nil
}

// DeleteQuests removes quests and, by cascade, their daily assignments
func (r *QuestRepository) DeleteQuests(ctx context.Context, userID string, questIDs []int64) (int64, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM quests WHERE user_id = $1 AND quest_id = ANY($2)`, userUUID, questIDs)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDeleteQuests, err)
	}
	return tag.RowsAffected(), nil
}

func scanQuest(row pgx.CollectableRow) (domain.Quest, error) {
	var (
		q  domain.Quest
		id uuid.UUID
	)
	if err := row.Scan(&q.ID, &id, &q.Content, &q.Archived, &q.CreatedAt); err != nil {
		return domain.Quest{}, err
	}
	q.UserID = id.String()
	return q, nil
}

const dailyQuestSelect = `
	SELECT dq.daily_quest_id, dq.user_id, dq.quest_id, to_char(dq.quest_date, '` + dateFormat + `'),
		dq.completed, dq.completed_at, q.content
	FROM daily_quests dq
	JOIN quests q ON q.quest_id = dq.quest_id`

// ListDailyQuests returns the set for date in assignment order
func (r *QuestRepository) ListDailyQuests(ctx context.Context, userID, date string) ([]domain.DailyQuest, error) {
	return listDailyQuests(ctx, r.db, userID, date)
}

func listDailyQuests(ctx context.Context, q querier, userID, date string) ([]domain.DailyQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	day, err := toDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, dailyQuestSelect+`
		WHERE dq.user_id = $1 AND dq.quest_date = $2
		ORDER BY dq.daily_quest_id`, userUUID, day)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDaily, err)
	}
	set, err := pgx.CollectRows(rows, scanDailyQuest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListDaily, err)
	}
	if set == nil {
		set = []domain.DailyQuest{}
	}
	return set, nil
}

// CreateDailyQuests serialises generators for (user, date) with an advisory lock
// so concurrent first requests converge on one set. Quest ids the user does not
// own are ignored.
func (r *QuestRepository) CreateDailyQuests(ctx context.Context, userID, date string, questIDs []int64) ([]domain.DailyQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	day, err := toDate(date)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := lockDailySet(ctx, tx, userUUID, date); err != nil {
		return nil, err
	}

	existing, err := listDailyQuests(ctx, tx, userID, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, tx.Commit(ctx)
	}

	if err := insertDailyQuests(ctx, tx, userUUID, day, questIDs); err != nil {
		return nil, err
	}

	set, err := listDailyQuests(ctx, tx, userID, date)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return set, nil
}

// SetDailyQuestCompleted toggles completion. Re-completing keeps the first timestamp.
func (r *QuestRepository) SetDailyQuestCompleted(ctx context.Context, userID string, dailyQuestID int64, completed bool, at time.Time) (*domain.DailyQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		WITH updated AS (
			UPDATE daily_quests
			SET completed = $3::boolean,
				completed_at = CASE WHEN $3::boolean THEN COALESCE(completed_at, $4::timestamptz) ELSE NULL END
			WHERE user_id = $1 AND daily_quest_id = $2
			RETURNING *
		)
		SELECT dq.daily_quest_id, dq.user_id, dq.quest_id, to_char(dq.quest_date, '`+dateFormat+`'),
			dq.completed, dq.completed_at, q.content
		FROM updated dq
		JOIN quests q ON q.quest_id = dq.quest_id`, userUUID, dailyQuestID, completed, at)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToToggleDaily, err)
	}
	dq, err := pgx.CollectExactlyOneRow(rows, scanDailyQuest)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToToggleDaily, domain.ErrDailyQuestNotFound)
	}
	return &dq, nil
}

// RerollDailyQuests replaces the set of date with questIDs. The current rows are
// locked first, so a completion either lands before the check and fails the
// reroll with ErrDailySetStarted, or waits and then finds its row gone.
func (r *QuestRepository) RerollDailyQuests(ctx context.Context, userID, date string, questIDs []int64) ([]domain.DailyQuest, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	day, err := toDate(date)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if err := lockDailySet(ctx, tx, userUUID, date); err != nil {
		return nil, err
	}

	var started bool
	if err := tx.QueryRow(ctx, `
		SELECT COALESCE(bool_or(completed), false)
		FROM (
			SELECT completed FROM daily_quests
			WHERE user_id = $1 AND quest_date = $2
			FOR UPDATE
		) current_set`, userUUID, day).Scan(&started); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClearDaily, err)
	}
	if started {
		return nil, domain.ErrDailySetStarted
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM daily_quests
		WHERE user_id = $1 AND quest_date = $2 AND NOT completed`, userUUID, day); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToClearDaily, err)
	}

	if err := insertDailyQuests(ctx, tx, userUUID, day, questIDs); err != nil {
		return nil, err
	}

	set, err := listDailyQuests(ctx, tx, userID, date)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return set, nil
}

// lockDailySet serialises writers of one (user, date) set for the transaction
func lockDailySet(ctx context.Context, tx pgx.Tx, userUUID uuid.UUID, date string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0))`,
		userUUID.String(), date); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockDaily, err)
	}
	return nil
}

// insertDailyQuests keeps the order of questIDs and skips ids the user does not own
func insertDailyQuests(ctx context.Context, tx pgx.Tx, userUUID uuid.UUID, day pgtype.Date, questIDs []int64) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO daily_quests (user_id, quest_id, quest_date)
		SELECT $1, q.quest_id, $3
		FROM unnest($2::bigint[]) WITH ORDINALITY AS pick(quest_id, ord)
		JOIN quests q ON q.quest_id = pick.quest_id AND q.user_id = $1
		ORDER BY pick.ord
		ON CONFLICT (user_id, quest_id, quest_date) DO NOTHING`, userUUID, questIDs, day); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDaily, err)
	}
	return nil
}

func scanDailyQuest(row pgx.CollectableRow) (domain.DailyQuest, error) {
	var (
		dq          domain.DailyQuest
		id          uuid.UUID
		completedAt pgtype.Timestamptz
	)
	if err := row.Scan(&dq.ID, &id, &dq.QuestID, &dq.Date, &dq.Completed, &completedAt, &dq.Content); err != nil {
		return domain.DailyQuest{}, err
	}
	dq.UserID = id.String()
	dq.CompletedAt = ptrTime(completedAt)
	return dq, nil
}
