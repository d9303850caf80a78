// Package ledger moves Founder Coins and Vision Gems. Every balance change is
// an append-only ledger entry written in the same transaction as the
// denormalized balance on the progress record.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/repository"
)

// Request describes one award or spend
type Request struct {
	TokenType domain.TokenType
	Amount    int
	Reason    string
	Metadata  map[string]interface{}
}

// Service defines the token ledger
type Service interface {
	Award(ctx context.Context, userID string, req Request) (domain.Balances, error)
	// Spend rejects with InsufficientFundsError instead of clamping
	Spend(ctx context.Context, userID string, req Request) (domain.Balances, error)
	GetBalances(ctx context.Context, userID string) (domain.Balances, error)
	GetTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error)
	// VerifyBalances recomputes balances from the ledger and compares them
	// with the stored ones
	VerifyBalances(ctx context.Context, userID string) (*domain.BalanceReport, error)
}

type service struct {
	repo      repository.Ledger
	publisher event.Publisher
	clock     clock.Clock
}

// NewService creates a ledger service. A nil publisher disables events.
func NewService(repo repository.Ledger, publisher event.Publisher, clk clock.Clock) Service {
	if clk == nil {
		clk = clock.New()
	}
	return &service{repo: repo, publisher: publisher, clock: clk}
}

func (s *service) Award(ctx context.Context, userID string, req Request) (domain.Balances, error) {
	return s.apply(ctx, userID, domain.TransactionEarned, req)
}

func (s *service) Spend(ctx context.Context, userID string, req Request) (domain.Balances, error) {
	return s.apply(ctx, userID, domain.TransactionSpent, req)
}

func (s *service) apply(ctx context.Context, userID string, direction domain.TransactionType, req Request) (domain.Balances, error) {
	log := logger.FromContext(ctx)

	req, err := validateRequest(req)
	if err != nil {
		return domain.Balances{}, err
	}

	tx, err := s.repo.BeginLedgerTx(ctx, userID)
	if err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetProgressForUpdate(ctx, userID)
	if err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return domain.Balances{}, domain.ErrProgressNotFound
	}

	balances := p.Balances()
	current := balances.Get(req.TokenType)
	if direction == domain.TransactionSpent && current < req.Amount {
		log.Info(LogMsgSpendRejected, "user_id", userID, "token_type", req.TokenType, "balance", current, "requested", req.Amount)
		return domain.Balances{}, domain.InsufficientFundsError{
			TokenType: req.TokenType,
			Balance:   current,
			Requested: req.Amount,
		}
	}

	if direction == domain.TransactionEarned && current > domain.MaxTokenBalance-req.Amount {
		log.Info(LogMsgAwardRejected, "user_id", userID, "token_type", req.TokenType, "balance", current, "requested", req.Amount)
		return domain.Balances{}, fmt.Errorf("%w: %s balance %d plus %d exceeds %d",
			domain.ErrBalanceLimit, req.TokenType, current, req.Amount, domain.MaxTokenBalance)
	}

	now := s.clock.Now()
	txn := &domain.TokenTransaction{
		UserID:    userID,
		Type:      direction,
		TokenType: req.TokenType,
		Amount:    req.Amount,
		Reason:    req.Reason,
		Metadata:  req.Metadata,
		CreatedAt: now,
	}
	if err := tx.AppendTransaction(ctx, txn); err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgAppendTx, err)
	}

	balances = balances.Add(req.TokenType, txn.Signed())
	if err := tx.UpdateBalances(ctx, userID, balances, now); err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgUpdateBalances, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgCommitTx, err)
	}

	msg := LogMsgTokensAwarded
	if direction == domain.TransactionSpent {
		msg = LogMsgTokensSpent
	}
	log.Info(msg, "user_id", userID, "token_type", req.TokenType, "amount", req.Amount, "reason", req.Reason, "new_balance", balances.Get(req.TokenType))

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewTokensEvent(*txn, balances.Get(req.TokenType)))
	}
	return balances, nil
}

func (s *service) GetBalances(ctx context.Context, userID string) (domain.Balances, error) {
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return domain.Balances{}, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return domain.Balances{}, domain.ErrProgressNotFound
	}
	return p.Balances(), nil
}

func (s *service) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	if limit > MaxTransactionLimit {
		limit = MaxTransactionLimit
	}

	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return nil, domain.ErrProgressNotFound
	}

	txs, err := s.repo.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTransactions, err)
	}
	if txs == nil {
		txs = []domain.TokenTransaction{}
	}
	return txs, nil
}

func (s *service) VerifyBalances(ctx context.Context, userID string) (*domain.BalanceReport, error) {
	log := logger.FromContext(ctx)

	// the ledger lock keeps a concurrent award from landing between the two reads
	tx, err := s.repo.BeginLedgerTx(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	p, err := tx.GetProgressForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return nil, domain.ErrProgressNotFound
	}

	txs, err := s.repo.ListTransactions(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListTransactions, err)
	}

	report := &domain.BalanceReport{
		UserID:  userID,
		Stored:  p.Balances(),
		Ledger:  domain.SumTransactions(txs),
		Entries: len(txs),
	}
	report.InSync = report.Stored == report.Ledger

	if report.InSync {
		log.Debug(LogMsgBalancesConfirmed, "user_id", userID, "entries", report.Entries)
	} else {
		log.Warn(LogMsgBalanceDrift, "user_id", userID, "stored", report.Stored, "ledger", report.Ledger)
	}
	return report, nil
}

func validateRequest(req Request) (Request, error) {
	if !req.TokenType.Valid() {
		return req, fmt.Errorf("%w: %q", domain.ErrInvalidTokenType, req.TokenType)
	}
	if req.Amount <= 0 || req.Amount > domain.MaxTokenAmount {
		return req, fmt.Errorf("%w: got %d, allowed 1..%d", domain.ErrInvalidAmount, req.Amount, domain.MaxTokenAmount)
	}
	req.Reason = strings.TrimSpace(req.Reason)
	if req.Reason == "" {
		return req, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgReasonRequired)
	}
	if len(req.Reason) > MaxReasonLength {
		return req, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgReasonTooLong)
	}
	return req, nil
}
