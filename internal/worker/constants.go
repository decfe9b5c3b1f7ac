package worker

import "time"

// Pool defaults
const (
	DefaultWorkerCount = 2
	DefaultQueueSize   = 16
	// DefaultJobTimeout bounds a single job run
	DefaultJobTimeout = 30 * time.Second
)

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobDone      = "Worker job finished"
	LogMsgWorkerQueueFull    = "Worker queue full, dropping job"
	LogMsgWorkerPoolStopping = "Worker pool stopping"
)

// Log messages - session cleanup
const (
	LogMsgSessionCleanupStarting = "Session cleanup starting"
	LogMsgSessionCleanupFailed   = "Session cleanup failed"
)

// Error message formats
const (
	ErrMsgPurgeFailed = "failed to purge expired sessions: %w"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
