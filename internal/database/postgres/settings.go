package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// SettingsRepository stores user preferences
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const settingsColumns = `user_id, refresh_time, timezone, notification_enabled, notification_time,
	notification_text, theme, onboarding_completed, enabled_default_quests, updated_at`

// GetSettings returns domain.ErrNotFound when the user has no settings row
func (r *SettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.UserSettings, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row := r.db.QueryRow(ctx, `SELECT `+settingsColumns+` FROM user_settings WHERE user_id = $1`, userUUID)
	return scanSettings(row)
}

// UpsertSettings writes every field of s
func (r *SettingsRepository) UpsertSettings(ctx context.Context, s domain.UserSettings) (*domain.UserSettings, error) {
	return upsertSettings(ctx, r.db, s)
}

// CompleteOnboarding marks onboarding done and seeds the quest pool in one transaction
func (r *SettingsRepository) CompleteOnboarding(ctx context.Context, userID string, enabled []string, contents []string) (*domain.UserSettings, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	enabledJSON, err := json.Marshal(nonNil(enabled))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeDefaults, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	row := tx.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, onboarding_completed, enabled_default_quests)
		VALUES ($1, TRUE, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			onboarding_completed = TRUE,
			enabled_default_quests = EXCLUDED.enabled_default_quests,
			updated_at = NOW()
		RETURNING `+settingsColumns, userUUID, enabledJSON)
	saved, err := scanSettings(row)
	if err != nil {
		return nil, err
	}

	if len(contents) > 0 {
		if _, err := insertQuests(ctx, tx, userUUID, contents); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return saved, nil
}

func upsertSettings(ctx context.Context, q querier, s domain.UserSettings) (*domain.UserSettings, error) {
	userUUID, err := parseUserUUID(s.UserID)
	if err != nil {
		return nil, err
	}
	enabledJSON, err := json.Marshal(nonNil(s.EnabledDefaultQuests))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodeDefaults, err)
	}

	row := q.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, refresh_time, timezone, notification_enabled, notification_time,
			notification_text, theme, onboarding_completed, enabled_default_quests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			refresh_time = EXCLUDED.refresh_time,
			timezone = EXCLUDED.timezone,
			notification_enabled = EXCLUDED.notification_enabled,
			notification_time = EXCLUDED.notification_time,
			notification_text = EXCLUDED.notification_text,
			theme = EXCLUDED.theme,
			onboarding_completed = EXCLUDED.onboarding_completed,
			enabled_default_quests = EXCLUDED.enabled_default_quests,
			updated_at = NOW()
		RETURNING `+settingsColumns,
		userUUID, s.RefreshTime, s.Timezone, s.NotificationEnabled, s.NotificationTime,
		s.NotificationText, s.Theme, s.OnboardingCompleted, enabledJSON)
	saved, err := scanSettings(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}
	return saved, nil
}

func scanSettings(row interface{ Scan(dest ...any) error }) (*domain.UserSettings, error) {
	var (
		s           domain.UserSettings
		id          uuid.UUID
		enabledJSON []byte
	)
	err := row.Scan(&id, &s.RefreshTime, &s.Timezone, &s.NotificationEnabled, &s.NotificationTime,
		&s.NotificationText, &s.Theme, &s.OnboardingCompleted, &enabledJSON, &s.UpdatedAt)
	if err != nil {
		return nil, wrap(err, ErrMsgFailedToGetSettings, domain.ErrNotFound)
	}
	if err := json.Unmarshal(enabledJSON, &s.EnabledDefaultQuests); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeDefaults, err)
	}
	s.UserID = id.String()
	s.EnabledDefaultQuests = nonNil(s.EnabledDefaultQuests)
	return &s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
