package domain

import "time"

// TokenType names one of the virtual currencies
type TokenType string

const (
	TokenFounderCoins TokenType = "founder_coins"
	TokenVisionGems   TokenType = "vision_gems"
)

// Valid reports whether t is a known currency
func (t TokenType) Valid() bool {
	return t == TokenFounderCoins || t == TokenVisionGems
}

// TransactionType is the direction of a ledger entry
type TransactionType string

const (
	TransactionEarned TransactionType = "earned"
	TransactionSpent  TransactionType = "spent"
)

// TokenTransaction is an immutable ledger entry
type TokenTransaction struct {
	ID        int64                  `json:"id"`
	UserID    string                 `json:"user_id"`
	Type      TransactionType        `json:"type"`
	TokenType TokenType              `json:"token_type"`
	Amount    int                    `json:"amount"`
	Reason    string                 `json:"reason"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Signed returns the amount with the sign of its direction
func (t TokenTransaction) Signed() int {
	if t.Type == TransactionSpent {
		return -t.Amount
	}
	return t.Amount
}

// Balances holds one value per currency
type Balances struct {
	FounderCoins int `json:"founder_coins"`
	VisionGems   int `json:"vision_gems"`
}

// Get returns the balance for a token type
func (b Balances) Get(t TokenType) int {
	switch t {
	case TokenFounderCoins:
		return b.FounderCoins
	case TokenVisionGems:
		return b.VisionGems
	default:
		return 0
	}
}

// Add returns a copy of b with delta applied to the given token type
func (b Balances) Add(t TokenType, delta int) Balances {
	switch t {
	case TokenFounderCoins:
		b.FounderCoins += delta
	case TokenVisionGems:
		b.VisionGems += delta
	}
	return b
}

// SumTransactions folds ledger entries into balances
func SumTransactions(txs []TokenTransaction) Balances {
	var b Balances
	for _, tx := range txs {
		b = b.Add(tx.TokenType, tx.Signed())
	}
	return b
}

// BalanceReport compares denormalized balances with the ledger
type BalanceReport struct {
	UserID  string   `json:"user_id"`
	Stored  Balances `json:"stored"`
	Ledger  Balances `json:"ledger"`
	InSync  bool     `json:"in_sync"`
	Entries int      `json:"entries"`
}
