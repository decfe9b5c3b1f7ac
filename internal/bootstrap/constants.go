package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// MaxLogFiles is the number of log files kept, including the new one
	MaxLogFiles = 10

	// ServiceName tags every log line
	ServiceName = "sidequest"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSideQuest   = "Starting SideQuest"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgFailedOpenLogFile   = "failed to open log file: %w"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDeadLetterFile is written inside the log directory
	EventDeadLetterFile = "event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory: %w"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher: %w"
)

// =============================================================================
// Services and Event Handlers
// =============================================================================

const (
	LogMsgServicesInitialized        = "Services initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Stats event handler registered"
	LogMsgRealtimeLocal              = "Realtime events delivered in-process"
	LogMsgRealtimeRedis              = "Realtime events relayed through Redis"
	LogMsgRedisRelayStopped          = "Redis relay stopped"
	ErrMsgInvalidStreakPolicy        = "invalid streak policy: %w"
	ErrMsgRedisRelay                 = "failed to start redis relay: %w"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgRedisRelayShutdownFailed   = "Redis relay shutdown failed"
)
