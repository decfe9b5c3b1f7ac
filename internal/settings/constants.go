package settings

import "time"

// Cache defaults
const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 5 * time.Minute

	// CacheSchemaVersion invalidates cached entries written by an older build.
	CacheSchemaVersion = "1.0"
)

// Error message formats
const (
	ErrMsgGetSettingsFailed   = "failed to load settings: %w"
	ErrMsgSaveSettingsFailed  = "failed to save settings: %w"
	ErrMsgOnboardingFailed    = "failed to complete onboarding: %w"
	ErrMsgUnknownDefaultQuest = "%w: %s"
	ErrMsgNotificationTextLen = "%w: notification text must be at most %d characters"
	ErrMsgUserIDRequired      = "%w: user id is required"
	ErrMsgResolveGameDate     = "failed to resolve quest date: %w"
)

// MaxNotificationTextLength bounds the reminder text
const MaxNotificationTextLength = 200

// Log messages
const (
	LogMsgSettingsDefaulted   = "No stored settings, using defaults"
	LogMsgSettingsUpdated     = "Settings updated"
	LogMsgOnboardingCompleted = "Onboarding completed"
)
