package daily

// DefaultQuestCount is the size of a generated daily set
const DefaultQuestCount = 3

// Error message formats
const (
	ErrMsgResolveDate     = "failed to resolve quest date: %w"
	ErrMsgListDaily       = "failed to list daily quests: %w"
	ErrMsgListPool        = "failed to load quest pool: %w"
	ErrMsgCreateDaily     = "failed to create daily quests: %w"
	ErrMsgToggleFailed    = "failed to update daily quest %d: %w"
	ErrMsgRerollFailed    = "failed to reroll daily quests: %w"
	ErrMsgRecomputeFailed = "failed to refresh stats: %w"
)

// Log messages
const (
	LogMsgDailySetGenerated = "Daily set generated"
	LogMsgDailySetRerolled  = "Daily set rerolled"
	LogMsgDailyToggled      = "Daily quest toggled"
	LogMsgPublishFailed     = "Failed to publish daily event"
)
