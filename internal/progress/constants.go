package progress

// Log messages
const (
	LogMsgJourneyStarted       = "Journey started"
	LogMsgDayCompleted         = "Day completed"
	LogMsgDayRecompleted       = "Day re-completed"
	LogMsgDayEnded             = "Day ended"
	LogMsgDraftSaved           = "Draft saved"
	LogMsgLockCleared          = "Unlock time cleared"
	LogMsgAchievementUnlocked  = "Achievement unlocked"
	LogMsgCompletionRejected   = "Completion rejected"
	LogMsgUnlockOverrideClamps = "Requested unlock time clamped to minimum rest"
	LogMsgCacheFillSkipped     = "Unlock cache fill skipped, state changed during read"
)

// Error messages
const (
	ErrMsgBeginTx          = "failed to begin transaction: %w"
	ErrMsgCommitTx         = "failed to commit transaction: %w"
	ErrMsgGetProgress      = "failed to get progress: %w"
	ErrMsgCreateProgress   = "failed to create progress: %w"
	ErrMsgUpdateProgress   = "failed to update progress: %w"
	ErrMsgGetCompletion    = "failed to get completion: %w"
	ErrMsgSaveCompletion   = "failed to save completion: %w"
	ErrMsgListCompletions  = "failed to list completions: %w"
	ErrMsgListAchievements = "failed to list achievements: %w"
	ErrMsgSaveAchievement  = "failed to record achievement: %w"
)

// CacheSchemaVersion is bumped whenever the cached unlock state changes shape
const CacheSchemaVersion = "1.0"
