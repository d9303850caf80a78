package eventlog

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Query limits
const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)

// Log messages - service events
const (
	LogMsgEventPayloadNotDecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent         = "Failed to log event"
	LogMsgEventLogged              = "Event logged"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldUserID        = "user_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deleted_count"
)
