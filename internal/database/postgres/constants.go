package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
)

// Constraint names from the migrations
const (
	ConstraintUsersEmail       = "users_email_key"
	ConstraintUsersUsernameTag = "users_username_tag_key"
)

// dateFormat renders DATE columns as YYYY-MM-DD regardless of DateStyle
const dateFormat = "YYYY-MM-DD"

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID        = "invalid user id"
	ErrMsgFailedToInsertUser   = "failed to insert user"
	ErrMsgFailedToGetUser      = "failed to get user"
	ErrMsgFailedToInsertRow    = "failed to insert initial rows"
	ErrMsgFailedToCreateSess   = "failed to create session"
	ErrMsgFailedToGetSession   = "failed to get session"
	ErrMsgFailedToDeleteSess   = "failed to delete session"
	ErrMsgFailedToPurgeSession = "failed to purge expired sessions"
)

// Error Messages - Quest Operations
const (
	ErrMsgFailedToListQuests    = "failed to list quests"
	ErrMsgFailedToGetQuest      = "failed to get quest"
	ErrMsgFailedToInsertQuest   = "failed to insert quest"
	ErrMsgFailedToUpdateQuest   = "failed to update quest"
	ErrMsgFailedToArchiveQuests = "failed to archive quests"
	ErrMsgFailedToDeleteQuests  = "failed to delete quests"
)

// Error Messages - Daily Quest Operations
const (
	ErrMsgFailedToListDaily   = "failed to list daily quests"
	ErrMsgFailedToLockDaily   = "failed to lock daily set"
	ErrMsgFailedToInsertDaily = "failed to insert daily quest"
	ErrMsgFailedToToggleDaily = "failed to update daily quest"
	ErrMsgFailedToClearDaily  = "failed to replace daily quests"
)

// Error Messages - Stats Operations
const (
	ErrMsgFailedToFetchHistory      = "failed to fetch history"
	ErrMsgFailedToGetStats          = "failed to get stats"
	ErrMsgFailedToSaveStats         = "failed to save stats"
	ErrMsgFailedToInsertAchievement = "failed to insert achievement"
	ErrMsgFailedToListAchievements  = "failed to list achievements"
)

// Error Messages - Settings Operations
const (
	ErrMsgFailedToGetSettings    = "failed to get settings"
	ErrMsgFailedToSaveSettings   = "failed to save settings"
	ErrMsgFailedToEncodeDefaults = "failed to encode enabled default quests"
	ErrMsgFailedToDecodeDefaults = "failed to decode enabled default quests"
)
