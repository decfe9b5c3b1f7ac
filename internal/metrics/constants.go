package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameQuestsCompleted      = "daily_quests_completed_total"
	MetricNameQuestsUncompleted    = "daily_quests_uncompleted_total"
	MetricNameDailySetsGenerated   = "daily_sets_generated_total"
	MetricNameDailySetsRerolled    = "daily_sets_rerolled_total"
	MetricNameQuestsDeleted        = "quests_deleted_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameCurrentStreak        = "current_streak_days"
	MetricNameSessionsPurged       = "sessions_purged_total"
	MetricNameSSESubscribers       = "sse_subscribers"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextQuestsCompleted      = "Total number of daily quests marked complete"
	HelpTextQuestsUncompleted    = "Total number of daily quests marked incomplete again"
	HelpTextDailySetsGenerated   = "Total number of daily quest sets generated"
	HelpTextDailySetsRerolled    = "Total number of daily quest sets rerolled"
	HelpTextQuestsDeleted        = "Total number of quests removed from pools"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextCurrentStreak        = "Distribution of current streak lengths after each stats update"
	HelpTextSessionsPurged       = "Total number of expired sessions purged"
	HelpTextSSESubscribers       = "Current number of connected event stream clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelAchievement = "achievement"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StreakBuckets are streak lengths in days, aligned with the streak badges.
var StreakBuckets = []float64{0, 1, 3, 7, 14, 30, 100, 200, 365}

// unmatchedRoute labels requests that did not match a chi route
const unmatchedRoute = "unmatched"

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
