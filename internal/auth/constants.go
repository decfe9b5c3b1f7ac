package auth

import "time"

// Account constraints
const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes
	MaxPasswordBytes  = 72
	MinUsernameLength = 3
	MaxUsernameLength = 20
	TagDigits         = 4
	MaxTagAttempts    = 10
)

// Token defaults
const (
	DefaultSessionTTL = 30 * 24 * time.Hour
	TokenIssuer       = "sidequest"
	SessionCookieName = "sessionId"
)

// Error message formats
const (
	ErrMsgInvalidEmail      = "%w: invalid email address"
	ErrMsgPasswordLength    = "%w: password must be between %d and %d bytes"
	ErrMsgInvalidUsername   = "%w: username must be %d-%d letters, digits or underscores"
	ErrMsgHashFailed        = "failed to hash password: %w"
	ErrMsgCreateUserFailed  = "failed to create user: %w"
	ErrMsgCreateSession     = "failed to create session: %w"
	ErrMsgSignToken         = "failed to sign token: %w"
	ErrMsgLookupUserFailed  = "failed to look up user: %w"
	ErrMsgLookupSession     = "failed to look up session: %w"
	ErrMsgDeleteSession     = "failed to delete session: %w"
	ErrMsgPurgeSessions     = "failed to purge expired sessions: %w"
	ErrMsgTokenParse        = "%w: %v"
	ErrMsgTokenSubject      = "%w: token does not match session"
	ErrMsgUnexpectedSigning = "unexpected signing method %v"
)

// Log messages
const (
	LogMsgUserSignedUp    = "User signed up"
	LogMsgTagCollision    = "Username tag collision, retrying"
	LogMsgUserLoggedIn    = "User logged in"
	LogMsgLoginFailed     = "Login failed"
	LogMsgUserLoggedOut   = "User logged out"
	LogMsgSessionsPurged  = "Expired sessions purged"
	LogMsgSessionRejected = "Session rejected"
)
