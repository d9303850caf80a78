package ledger

// Transaction history limits
const (
	DefaultTransactionLimit = 50
	MaxTransactionLimit     = 500
)

// MaxReasonLength bounds the free-text reason stored with each entry
const MaxReasonLength = 255

// Log messages
const (
	LogMsgTokensAwarded     = "Tokens awarded"
	LogMsgTokensSpent       = "Tokens spent"
	LogMsgSpendRejected     = "Spend rejected"
	LogMsgAwardRejected     = "Award rejected, balance limit reached"
	LogMsgBalanceDrift      = "Stored balances differ from ledger"
	LogMsgBalancesConfirmed = "Stored balances match ledger"
)

// Error messages
const (
	ErrMsgBeginTx          = "failed to begin transaction: %w"
	ErrMsgCommitTx         = "failed to commit transaction: %w"
	ErrMsgGetProgress      = "failed to get progress: %w"
	ErrMsgAppendTx         = "failed to append ledger entry: %w"
	ErrMsgUpdateBalances   = "failed to update balances: %w"
	ErrMsgListTransactions = "failed to list transactions: %w"
	ErrMsgReasonRequired   = "reason is required"
	ErrMsgReasonTooLong    = "reason exceeds 255 characters"
)
