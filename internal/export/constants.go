package export

// HistoryStart is the lower bound of the exported history window; no quest
// date predates it.
const HistoryStart = "1970-01-01"

// FilenameFormat names the attachment; the argument is the export's quest date
const FilenameFormat = "sidequest-export-%s.json"

// Error messages
const (
	ErrMsgGetUserFailed     = "failed to load user for export: %w"
	ErrMsgGetStatsFailed    = "failed to load stats for export: %w"
	ErrMsgGetQuestsFailed   = "failed to load quests for export: %w"
	ErrMsgGetHistoryFailed  = "failed to load history for export: %w"
	ErrMsgGetSettingsFailed = "failed to load settings for export: %w"
	ErrMsgResolveDateFailed = "failed to resolve export date: %w"
	ErrMsgBundleInvalid     = "export bundle does not match schema: %w"
)

// Log messages
const (
	LogMsgExportBuilt = "Data export built"
)
