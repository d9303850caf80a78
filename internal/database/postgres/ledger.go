package postgres

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/foundry90/internal/database/generated"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/repository"
)

type ledgerRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewLedgerRepository creates a PostgreSQL token ledger repository
func NewLedgerRepository(db *pgxpool.Pool) repository.Ledger {
	return &ledgerRepository{db: db, q: generated.New(db)}
}

func (r *ledgerRepository) GetProgress(ctx context.Context, userID string) (*domain.Progress, error) {
	return getProgress(ctx, r.q, userID, false)
}

// ListTransactions returns the user's ledger newest first; limit <= 0 means all
func (r *ledgerRepository) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var rows []generated.TokenTransaction
	if limit > 0 {
		rows, err = r.q.ListRecentTransactions(ctx, generated.ListRecentTransactionsParams{
			UserID: uid,
			Limit:  int32(min(limit, math.MaxInt32)),
		})
	} else {
		rows, err = r.q.ListTransactions(ctx, uid)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}

	txns := make([]domain.TokenTransaction, 0, len(rows))
	for _, row := range rows {
		t, err := mapTransaction(row)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

// BeginLedgerTx opens a transaction holding the user's advisory lock
func (r *ledgerRepository) BeginLedgerTx(ctx context.Context, userID string) (repository.LedgerTx, error) {
	tx, err := beginUserTx(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	return &ledgerTx{pgTx: newPgTx(tx, r.q)}, nil
}

type ledgerTx struct {
	pgTx
}

func (t *ledgerTx) GetProgressForUpdate(ctx context.Context, userID string) (*domain.Progress, error) {
	return getProgress(ctx, t.q, userID, true)
}

func (t *ledgerTx) UpdateBalances(ctx context.Context, userID string, b domain.Balances, updatedAt time.Time) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	affected, err := t.q.UpdateBalances(ctx, generated.UpdateBalancesParams{
		UserID:       uid,
		FounderCoins: int32(b.FounderCoins),
		VisionGems:   int32(b.VisionGems),
		UpdatedAt:    timestamptz(updatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateBalances, err)
	}
	if affected == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}

func (t *ledgerTx) AppendTransaction(ctx context.Context, txn *domain.TokenTransaction) error {
	uid, err := parseUserUUID(txn.UserID)
	if err != nil {
		return err
	}
	metadataJSON, err := marshalJSONB(txn.Metadata)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalMetadata, err)
	}

	id, err := t.q.InsertTransaction(ctx, generated.InsertTransactionParams{
		UserID:    uid,
		Type:      string(txn.Type),
		TokenType: string(txn.TokenType),
		Amount:    int32(txn.Amount),
		Reason:    txn.Reason,
		Metadata:  metadataJSON,
		CreatedAt: timestamptz(txn.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertTransaction, err)
	}
	txn.ID = id
	return nil
}
