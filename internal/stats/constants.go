package stats

// HistoryDays is the window of per-day history returned with the stats overview
const HistoryDays = 90

// Error message formats
const (
	ErrMsgUserIDRequired     = "user id is required"
	ErrMsgResolveTodayFailed = "failed to resolve current quest date: %w"
	ErrMsgFetchHistoryFailed = "failed to fetch quest history: %w"
	ErrMsgRecomputeFailed    = "failed to recompute stats: %w"
	ErrMsgSaveStatsFailed    = "failed to save stats: %w"
	ErrMsgInsertAchievement  = "failed to unlock achievement %s: %w"
	ErrMsgListAchievements   = "failed to list achievements: %w"
	ErrMsgGetHistoryFailed   = "failed to load history: %w"
	ErrMsgHistoryRangeFailed = "failed to compute history range: %w"
)

// Log messages
const (
	LogMsgStatsRecomputed      = "Stats recomputed"
	LogMsgAchievementUnlocked  = "Achievement unlocked"
	LogMsgPublishFailed        = "Failed to publish stats event"
	LogMsgRecomputeAfterDelete = "Failed to recompute stats after quest deletion"
)
