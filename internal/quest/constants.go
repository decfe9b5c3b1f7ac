package quest

// Content limits
const (
	MaxContentLength = 200
	MaxBulkSize      = 100
)

// Error message formats
const (
	ErrMsgContentLength  = "%w: quest content must be 1-%d characters"
	ErrMsgBulkEmpty      = "%w: at least one quest is required"
	ErrMsgBulkTooLarge   = "%w: at most %d quests per request"
	ErrMsgInvalidQuestID = "%w: quest ids must be positive"
	ErrMsgListFailed     = "failed to list quests: %w"
	ErrMsgCreateFailed   = "failed to create quests: %w"
	ErrMsgUpdateFailed   = "failed to update quest %d: %w"
	ErrMsgDeleteFailed   = "failed to delete quests: %w"
	ErrMsgArchiveFailed  = "failed to archive quests: %w"
)

// Log messages
const (
	LogMsgQuestsCreated  = "Quests created"
	LogMsgQuestUpdated   = "Quest updated"
	LogMsgQuestsDeleted  = "Quests deleted"
	LogMsgQuestsArchived = "Quests archive state changed"
	LogMsgPublishFailed  = "Failed to publish quest event"
)
