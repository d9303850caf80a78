package postgres

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/ledger"
)

func TestLedgerRepository_AppendAndList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(testPool)
	userID := newUserID()
	createProgress(t, NewProgressRepository(testPool), userID)

	tx, err := repo.BeginLedgerTx(ctx, userID)
	require.NoError(t, err)
	for i, amount := range []int{5, 7, 9} {
		txn := &domain.TokenTransaction{
			UserID:    userID,
			Type:      domain.TransactionEarned,
			TokenType: domain.TokenFounderCoins,
			Amount:    amount,
			Reason:    "challenge",
			CreatedAt: integrationStart,
		}
		if i == 0 {
			txn.Metadata = map[string]interface{}{"challenge_id": "c-1"}
		}
		require.NoError(t, tx.AppendTransaction(ctx, txn))
		assert.NotZero(t, txn.ID)
	}
	require.NoError(t, tx.Commit(ctx))

	all, err := repo.ListTransactions(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 9, all[0].Amount, "newest first")
	assert.Equal(t, "c-1", all[2].Metadata["challenge_id"])

	limited, err := repo.ListTransactions(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestLedgerRepository_NegativeBalanceRejectedByConstraint(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(testPool)
	userID := newUserID()
	createProgress(t, NewProgressRepository(testPool), userID)

	tx, err := repo.BeginLedgerTx(ctx, userID)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.UpdateBalances(ctx, userID, domain.Balances{FounderCoins: -1}, integrationStart)
	assert.Error(t, err)
}

func TestLedgerService_Postgres_Conservation(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	svc := ledger.NewService(NewLedgerRepository(testPool), nil, clock.NewFake(integrationStart))
	userID := newUserID()
	createProgress(t, NewProgressRepository(testPool), userID)

	_, err := svc.Award(ctx, userID, ledger.Request{TokenType: domain.TokenVisionGems, Amount: 100, Reason: "seed"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	spent := 0
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.Award(ctx, userID, ledger.Request{TokenType: domain.TokenVisionGems, Amount: 2, Reason: "challenge"})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.Spend(ctx, userID, ledger.Request{TokenType: domain.TokenVisionGems, Amount: 9, Reason: "store"}); err == nil {
				mu.Lock()
				spent += 9
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			}
		}()
	}
	wg.Wait()

	b, err := svc.GetBalances(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 100+40-spent, b.VisionGems)

	report, err := svc.VerifyBalances(ctx, userID)
	require.NoError(t, err)
	assert.True(t, report.InSync)
}
