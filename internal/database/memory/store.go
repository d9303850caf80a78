// Package memory provides an in-process implementation of the progress and
// ledger repositories. It backs the memory store driver and the service tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/foundry90/internal/concurrency"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/repository"
)

// Store keeps every record in maps guarded by a RWMutex. Writers additionally
// hold a per-user lock for the lifetime of their transaction, and staged
// changes become visible only on Commit.
type Store struct {
	mu           sync.RWMutex
	locks        *concurrency.LockManager
	progress     map[string]*domain.Progress
	completions  map[string]map[int]*domain.Completion
	achievements map[string]map[string]domain.UserAchievement
	transactions map[string][]domain.TokenTransaction
	nextTxnID    atomic.Int64

	failMu     sync.Mutex
	failCommit error
}

// New creates an empty store
func New() *Store {
	return &Store{
		locks:        concurrency.NewLockManager(),
		progress:     make(map[string]*domain.Progress),
		completions:  make(map[string]map[int]*domain.Completion),
		achievements: make(map[string]map[string]domain.UserAchievement),
		transactions: make(map[string][]domain.TokenTransaction),
	}
}

var (
	_ repository.Progress = (*Store)(nil)
	_ repository.Ledger   = (*Store)(nil)
)

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *Store) Close() {}

// FailNextCommit makes the next Commit return err without applying anything.
// Used to exercise rollback paths.
func (s *Store) FailNextCommit(err error) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	s.failCommit = err
}

func (s *Store) takeCommitFailure() error {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	err := s.failCommit
	s.failCommit = nil
	return err
}

// GetProgress returns a copy of the user's progress record
func (s *Store) GetProgress(ctx context.Context, userID string) (*domain.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.progress[userID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// GetCompletion returns a copy of one completion record
func (s *Store) GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.completions[userID][day]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// ListCompletions returns the user's completion records ordered by day
func (s *Store) ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listCompletionsLocked(userID, nil), nil
}

// ListAchievements returns the user's unlocked achievements ordered by unlock time
func (s *Store) ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listAchievementsLocked(userID, nil), nil
}

// ListTransactions returns the user's ledger, newest first
func (s *Store) ListTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := s.transactions[userID]
	out := make([]domain.TokenTransaction, 0, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		out = append(out, cloneTransaction(txns[i]))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// BeginTx opens a progress transaction holding the user's lock
func (s *Store) BeginTx(ctx context.Context, userID string) (repository.ProgressTx, error) {
	return s.begin(ctx, userID)
}

// BeginLedgerTx opens a ledger transaction holding the user's lock
func (s *Store) BeginLedgerTx(ctx context.Context, userID string) (repository.LedgerTx, error) {
	return s.begin(ctx, userID)
}

func (s *Store) begin(ctx context.Context, userID string) (*memTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	release := s.locks.Acquire(userID)
	return &memTx{
		store:       s,
		userID:      userID,
		release:     release,
		completions: make(map[int]*domain.Completion),
	}, nil
}

func (s *Store) listCompletionsLocked(userID string, staged map[int]*domain.Completion) []domain.Completion {
	merged := make(map[int]*domain.Completion, len(s.completions[userID])+len(staged))
	for day, c := range s.completions[userID] {
		merged[day] = c
	}
	for day, c := range staged {
		merged[day] = c
	}

	out := make([]domain.Completion, 0, len(merged))
	for _, c := range merged {
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func (s *Store) listAchievementsLocked(userID string, staged []domain.UserAchievement) []domain.UserAchievement {
	out := make([]domain.UserAchievement, 0, len(s.achievements[userID])+len(staged))
	for _, a := range s.achievements[userID] {
		out = append(out, a)
	}
	out = append(out, staged...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].AchievementKey < out[j].AchievementKey
		}
		return out[i].UnlockedAt.Before(out[j].UnlockedAt)
	})
	return out
}

func cloneTransaction(t domain.TokenTransaction) domain.TokenTransaction {
	if t.Metadata != nil {
		md := make(map[string]interface{}, len(t.Metadata))
		for k, v := range t.Metadata {
			md[k] = v
		}
		t.Metadata = md
	}
	return t
}

// memTx stages writes until Commit
type memTx struct {
	store   *Store
	userID  string
	release func()
	done    bool

	progress        *domain.Progress
	progressCreated bool
	completions     map[int]*domain.Completion
	achievements    []domain.UserAchievement
	balances        *domain.Balances
	balancesAt      time.Time
	transactions    []domain.TokenTransaction
}

var (
	_ repository.ProgressTx = (*memTx)(nil)
	_ repository.LedgerTx   = (*memTx)(nil)
)

func (tx *memTx) check(userID string) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	if userID != tx.userID {
		return fmt.Errorf("transaction is scoped to user %s, got %s", tx.userID, userID)
	}
	return nil
}

func (tx *memTx) GetProgressForUpdate(ctx context.Context, userID string) (*domain.Progress, error) {
	if err := tx.check(userID); err != nil {
		return nil, err
	}
	if tx.progress != nil {
		p := tx.progress.Clone()
		if tx.balances != nil {
			p.FounderCoins = tx.balances.FounderCoins
			p.VisionGems = tx.balances.VisionGems
		}
		return p, nil
	}

	p, err := tx.store.GetProgress(ctx, userID)
	if err != nil || p == nil {
		return p, err
	}
	if tx.balances != nil {
		p.FounderCoins = tx.balances.FounderCoins
		p.VisionGems = tx.balances.VisionGems
	}
	return p, nil
}

func (tx *memTx) CreateProgress(ctx context.Context, progress *domain.Progress) error {
	if err := tx.check(progress.UserID); err != nil {
		return err
	}
	existing, err := tx.store.GetProgress(ctx, progress.UserID)
	if err != nil {
		return err
	}
	if existing != nil || tx.progressCreated {
		return fmt.Errorf("progress for user %s already exists", progress.UserID)
	}
	tx.progress = progress.Clone()
	tx.progressCreated = true
	return nil
}

func (tx *memTx) UpdateProgress(ctx context.Context, progress *domain.Progress) error {
	if err := tx.check(progress.UserID); err != nil {
		return err
	}
	if tx.progress == nil {
		existing, err := tx.store.GetProgress(ctx, progress.UserID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrProgressNotFound
		}
	}
	tx.progress = progress.Clone()
	return nil
}

func (tx *memTx) GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	if err := tx.check(userID); err != nil {
		return nil, err
	}
	if c, ok := tx.completions[day]; ok {
		return c.Clone(), nil
	}
	return tx.store.GetCompletion(ctx, userID, day)
}

func (tx *memTx) UpsertCompletion(ctx context.Context, completion *domain.Completion) error {
	if err := tx.check(completion.UserID); err != nil {
		return err
	}
	tx.completions[completion.Day] = completion.Clone()
	return nil
}

func (tx *memTx) ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error) {
	if err := tx.check(userID); err != nil {
		return nil, err
	}
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return tx.store.listCompletionsLocked(userID, tx.completions), nil
}

func (tx *memTx) ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	if err := tx.check(userID); err != nil {
		return nil, err
	}
	tx.store.mu.RLock()
	defer tx.store.mu.RUnlock()
	return tx.store.listAchievementsLocked(userID, tx.achievements), nil
}

func (tx *memTx) InsertAchievement(ctx context.Context, achievement domain.UserAchievement) error {
	if err := tx.check(achievement.UserID); err != nil {
		return err
	}
	tx.store.mu.RLock()
	_, exists := tx.store.achievements[achievement.UserID][achievement.AchievementKey]
	tx.store.mu.RUnlock()
	if exists {
		return nil
	}
	for _, a := range tx.achievements {
		if a.AchievementKey == achievement.AchievementKey {
			return nil
		}
	}
	tx.achievements = append(tx.achievements, achievement)
	return nil
}

func (tx *memTx) UpdateBalances(ctx context.Context, userID string, balances domain.Balances, updatedAt time.Time) error {
	if err := tx.check(userID); err != nil {
		return err
	}
	if balances.FounderCoins < 0 || balances.VisionGems < 0 {
		return fmt.Errorf("balances must not be negative: %+v", balances)
	}
	b := balances
	tx.balances = &b
	tx.balancesAt = updatedAt
	return nil
}

func (tx *memTx) AppendTransaction(ctx context.Context, txn *domain.TokenTransaction) error {
	if err := tx.check(txn.UserID); err != nil {
		return err
	}
	if txn.Amount <= 0 {
		return fmt.Errorf("transaction amount must be positive: %d", txn.Amount)
	}
	txn.ID = tx.store.nextTxnID.Add(1)
	tx.transactions = append(tx.transactions, cloneTransaction(*txn))
	return nil
}

func (tx *memTx) Commit(ctx context.Context) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	tx.done = true
	defer tx.release()

	if err := tx.store.takeCommitFailure(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	s := tx.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if tx.progress != nil {
		if existing, ok := s.progress[tx.userID]; ok && !tx.progressCreated {
			next := tx.progress.Clone()
			next.FounderCoins = existing.FounderCoins
			next.VisionGems = existing.VisionGems
			next.CreatedAt = existing.CreatedAt
			s.progress[tx.userID] = next
		} else {
			s.progress[tx.userID] = tx.progress.Clone()
		}
	}

	if tx.balances != nil {
		if p, ok := s.progress[tx.userID]; ok {
			p.FounderCoins = tx.balances.FounderCoins
			p.VisionGems = tx.balances.VisionGems
			p.UpdatedAt = tx.balancesAt
		}
	}

	if len(tx.completions) > 0 {
		if s.completions[tx.userID] == nil {
			s.completions[tx.userID] = make(map[int]*domain.Completion)
		}
		for day, c := range tx.completions {
			s.completions[tx.userID][day] = c
		}
	}

	if len(tx.achievements) > 0 {
		if s.achievements[tx.userID] == nil {
			s.achievements[tx.userID] = make(map[string]domain.UserAchievement)
		}
		for _, a := range tx.achievements {
			s.achievements[tx.userID][a.AchievementKey] = a
		}
	}

	s.transactions[tx.userID] = append(s.transactions[tx.userID], tx.transactions...)
	return nil
}

func (tx *memTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	tx.done = true
	tx.release()
	return nil
}
