package handler

// Generic HTTP error messages for client responses. They never expose internal
// error details. Handlers and tests both reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// Auth
	ErrMsgEmailTakenError         = "An account with that email already exists"
	ErrMsgTagExhaustedError       = "That username is too popular. Please pick another."
	ErrMsgInvalidCredentialsError = "Invalid email or password"
	ErrMsgSessionExpiredError     = "Session expired. Please log in again."
	ErrMsgUnauthorizedError       = "Not authenticated"
	ErrMsgUserNotFoundError       = "User not found"

	// Quests
	ErrMsgQuestNotFoundError      = "Quest not found"
	ErrMsgDailyQuestNotFoundError = "Daily quest not found"
	ErrMsgDailySetStartedError    = "Today's quests can't be rerolled after completing one"
	ErrMsgEmptyQuestPoolError     = "Add some quests first"

	// Settings
	ErrMsgInvalidTimeError         = "Times must use the HH:MM format"
	ErrMsgInvalidTimezoneError     = "Unknown timezone"
	ErrMsgInvalidThemeError        = "Theme must be light, dark or system"
	ErrMsgUnknownDefaultQuestError = "Unknown default quest"
)

// Success messages returned in JSON responses
const (
	MsgLoggedOut = "Logged out"
	MsgDeleted   = "Deleted"
	MsgUpdated   = "Updated"
)

// Log messages
const (
	LogMsgDecodeFailed   = "Failed to decode %s request"
	LogMsgDecoded        = "%s request decoded"
	LogMsgMissingUser    = "Authenticated route reached without a user"
	LogMsgReadinessFail  = "Readiness check failed"
	LogMsgSignup         = "User signed up"
	LogMsgLogin          = "User logged in"
	LogMsgLogout         = "User logged out"
	LogMsgExportStreamed = "Export sent"
)
