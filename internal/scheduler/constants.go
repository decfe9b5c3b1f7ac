package scheduler

// Log messages
const (
	LogMsgJobScheduled     = "Job scheduled"
	LogMsgScheduleDisabled = "Job interval is not positive, not scheduling"
	LogMsgTickSkipped      = "Job not enqueued, skipping tick"
)
