package worker

import "time"

// DefaultJobTimeout bounds a single job run in the pool
const DefaultJobTimeout = 5 * time.Minute

// Log fields
const (
	LogFieldWorker   = "worker"
	LogFieldJob      = "job"
	LogFieldDuration = "duration"
	LogFieldTimerID  = "timer_id"
	LogFieldUserID   = "user_id"
	LogFieldDay      = "day"
	LogFieldUnlockAt = "unlock_at"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job completed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Unlock Reminder Worker
// ============================================================================

const (
	LogMsgReminderScheduled      = "Unlock reminder scheduled"
	LogMsgReminderPayloadInvalid = "Unlock reminder skipped, payload not decodable"
	LogMsgReminderStillLocked    = "Unlock reminder skipped, day still locked"
	LogMsgReminderCheckFailed    = "Unlock reminder failed to check advance state"
	LogMsgReminderNotifyFailed   = "Unlock reminder notification failed"
	LogMsgReminderSent           = "Unlock reminder sent"
)

// UnlockReminderWorkerName is used in shutdown logs
const UnlockReminderWorkerName = "unlock reminder worker"
