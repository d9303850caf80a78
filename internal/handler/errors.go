package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgValidationSummary   = "Invalid request"
	ErrMsgMissingQueryParam   = "Missing %s query parameter"
	ErrMsgInvalidLimit        = "Invalid limit parameter"
	ErrMsgInvalidDayParam     = "Invalid day parameter"
	ErrMsgInvalidSince        = "since must be an RFC3339 timestamp"
	ErrMsgEventLogDisabled    = "Event log is not enabled"

	// Identity
	ErrMsgMissingUserID      = "Missing X-User-ID header"
	ErrMsgInvalidUserIDError = "User id must be a UUID"

	// Progress
	ErrMsgProgressNotFoundError   = "Journey not started"
	ErrMsgCompletionNotFoundError = "No record for that day"
	ErrMsgFutureDayError          = "That day is not available yet"
	ErrMsgDayLockedError          = "Your next day is still locked"
	ErrMsgDayOutOfRangeError      = "Day is outside the program"

	// Tokens
	ErrMsgInsufficientFundsError = "Not enough tokens"
	ErrMsgInvalidTokenTypeError  = "Unknown token type"
	ErrMsgInvalidAmountError     = "Amount must be between 1 and 2147483647"
	ErrMsgBalanceLimitError      = "Balance limit reached"
)

// Success messages for API responses
const (
	MsgLockCleared = "Unlock time cleared"
)

// Log messages
const (
	LogMsgEncodeResponseFailed = "Failed to encode JSON response"
	LogMsgWriteResponseFailed  = "Failed to write response buffer"
	LogMsgDecodeRequestFailed  = "Failed to decode request"
	LogMsgRequestDecoded       = "Request decoded"
	LogMsgReadinessFailed      = "Readiness check failed"
	LogMsgFailedSuffix         = " failed"
	LogMsgRejectedSuffix       = " rejected"
)

// Headers and content types
const (
	HeaderUserID      = "X-User-ID"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Query parameters
const (
	QueryParamUserID    = "user_id"
	QueryParamLimit     = "limit"
	QueryParamEventType = "type"
	QueryParamSince     = "since"
	URLParamDay         = "day"
)
