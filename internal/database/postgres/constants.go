package postgres

// Advisory lock hashing
const (
	// UserLockNamespace prefixes the user id before hashing so progress and
	// ledger transactions share one advisory lock per user
	UserLockNamespace = "user_progress:"

	// HashMaskPositiveInt64 masks the MSB so lock keys stay positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL - locking; every other progress and ledger query is generated by sqlc
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToAcquireUserLock   = "failed to acquire user lock"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgInvalidUserID             = "invalid user id"
)

// Error Messages - Progress Operations
const (
	ErrMsgFailedToGetProgress       = "failed to get progress"
	ErrMsgFailedToInsertProgress    = "failed to insert progress"
	ErrMsgFailedToUpdateProgress    = "failed to update progress"
	ErrMsgFailedToUpdateBalances    = "failed to update balances"
	ErrMsgFailedToGetCompletion     = "failed to get completion"
	ErrMsgFailedToListCompletions   = "failed to list completions"
	ErrMsgFailedToUpsertCompletion  = "failed to upsert completion"
	ErrMsgFailedToListAchievements  = "failed to list achievements"
	ErrMsgFailedToInsertAchievement = "failed to insert achievement"
	ErrMsgFailedToUnmarshalSteps    = "failed to unmarshal step responses"
)

// Error Messages - Ledger Operations
const (
	ErrMsgFailedToListTransactions  = "failed to list transactions"
	ErrMsgFailedToInsertTransaction = "failed to insert transaction"
	ErrMsgFailedToMarshalMetadata   = "failed to marshal metadata"
	ErrMsgFailedToUnmarshalMetadata = "failed to unmarshal metadata"
)

// SQL - event log
const (
	eventColumns = `id, event_type, user_id::text, payload, metadata, created_at`

	SQLInsertEvent = `
		INSERT INTO events (event_type, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4)`
	SQLSelectEventsBase = `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	SQLDeleteOldEvents  = `DELETE FROM events WHERE created_at < NOW() - INTERVAL '1 day' * $1`
)

// Error messages - event log
const (
	ErrMsgFailedToLogEvent     = "failed to log event"
	ErrMsgFailedToQueryEvents  = "failed to query events"
	ErrMsgFailedToDeleteEvents = "failed to delete old events"
)
