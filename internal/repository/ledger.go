package repository

import (
	"context"
	"time"

	"github.com/osse101/foundry90/internal/domain"
)

// Ledger defines the interface for token ledger persistence
type Ledger interface {
	GetProgress(ctx context.Context, userID string) (*domain.Progress, error)
	// ListTransactions returns the newest entries first. A non-positive
	// limit returns the whole ledger.
	ListTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error)
	BeginLedgerTx(ctx context.Context, userID string) (LedgerTx, error)
}

// LedgerTx defines the interface for ledger transactions
type LedgerTx interface {
	Tx
	GetProgressForUpdate(ctx context.Context, userID string) (*domain.Progress, error)
	UpdateBalances(ctx context.Context, userID string, balances domain.Balances, updatedAt time.Time) error
	// AppendTransaction writes an immutable ledger entry and sets its ID
	AppendTransaction(ctx context.Context, txn *domain.TokenTransaction) error
}
