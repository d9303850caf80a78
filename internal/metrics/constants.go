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
	MetricNameDaysCompleted        = "days_completed_total"
	MetricNameDaysEnded            = "days_ended_total"
	MetricNameCompletionRejected   = "day_completion_rejected_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameTokensEarned         = "tokens_earned_total"
	MetricNameTokensSpent          = "tokens_spent_total"
	MetricNameStreakOnCompletion   = "streak_on_completion_days"
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
	HelpTextDaysCompleted        = "Total number of days completed for the first time"
	HelpTextDaysEnded            = "Total number of end-day requests"
	HelpTextCompletionRejected   = "Total number of rejected day completions"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextTokensEarned         = "Total tokens awarded"
	HelpTextTokensSpent          = "Total tokens spent"
	HelpTextStreakOnCompletion   = "Streak length after each first-time completion"
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
	LabelTokenType   = "token_type"
	LabelAchievement = "achievement"
	LabelClamped     = "clamped"
	LabelReason      = "reason"
)

// Rejection reasons
const (
	ReasonFutureDay = "future_day"
	ReasonLocked    = "locked"
)

// UnmatchedRoute labels requests chi could not route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// StreakBuckets covers a 90 day journey
var StreakBuckets = []float64{1, 3, 7, 14, 30, 45, 60, 75, 90}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadNotDecodable = "Event payload not decodable"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
