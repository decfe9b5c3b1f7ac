package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Generic errors
	ErrMsgNotFound     = "not found"
	ErrMsgInvalidInput = "invalid input"

	// User and auth errors
	ErrMsgUserNotFound       = "user not found"
	ErrMsgEmailTaken         = "email already registered"
	ErrMsgInvalidCredentials = "invalid email or password"
	ErrMsgUnauthorized       = "not authenticated"
	ErrMsgSessionExpired     = "session expired"
	ErrMsgTagExhausted       = "no free tag available for username"
	ErrMsgTagTaken           = "username tag already in use"
	ErrMsgInvalidToken       = "invalid token"

	// Quest errors
	ErrMsgQuestNotFound       = "quest not found"
	ErrMsgDailyQuestNotFound  = "daily quest not found"
	ErrMsgEmptyQuestPool      = "quest pool is empty"
	ErrMsgDailySetStarted     = "daily set already has completed quests"
	ErrMsgUnknownDefaultQuest = "unknown default quest"

	// Stats errors
	ErrMsgInvalidRecordDate = "invalid daily quest record date"

	// Settings errors
	ErrMsgInvalidRefreshTime = "invalid time of day, expected HH:MM"
	ErrMsgInvalidTimezone    = "invalid timezone"
	ErrMsgInvalidTheme       = "invalid theme"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound     = errors.New(ErrMsgNotFound)
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// User and auth errors
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrEmailTaken         = errors.New(ErrMsgEmailTaken)
	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrUnauthorized       = errors.New(ErrMsgUnauthorized)
	ErrSessionExpired     = errors.New(ErrMsgSessionExpired)
	ErrTagExhausted       = errors.New(ErrMsgTagExhausted)
	ErrTagTaken           = errors.New(ErrMsgTagTaken)
	ErrInvalidToken       = errors.New(ErrMsgInvalidToken)

	// Quest errors
	ErrQuestNotFound       = errors.New(ErrMsgQuestNotFound)
	ErrDailyQuestNotFound  = errors.New(ErrMsgDailyQuestNotFound)
	ErrEmptyQuestPool      = errors.New(ErrMsgEmptyQuestPool)
	ErrDailySetStarted     = errors.New(ErrMsgDailySetStarted)
	ErrUnknownDefaultQuest = &validationError{msg: ErrMsgUnknownDefaultQuest}

	// ErrInvalidRecordDate is returned by the streak engine for a record whose date
	// cannot be parsed. It matches ErrInvalidInput under errors.Is.
	ErrInvalidRecordDate = &validationError{msg: ErrMsgInvalidRecordDate}

	// Settings errors
	ErrInvalidRefreshTime = &validationError{msg: ErrMsgInvalidRefreshTime}
	ErrInvalidTimezone    = &validationError{msg: ErrMsgInvalidTimezone}
	ErrInvalidTheme       = &validationError{msg: ErrMsgInvalidTheme}

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// validationError is a sentinel that also reports itself as ErrInvalidInput.
type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrInvalidInput }
