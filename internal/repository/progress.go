package repository

import (
	"context"

	"github.com/osse101/foundry90/internal/domain"
)

// Progress defines the interface for progress and completion persistence.
// Lookups return (nil, nil) when the record does not exist.
type Progress interface {
	GetProgress(ctx context.Context, userID string) (*domain.Progress, error)
	GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error)
	ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error)
	ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error)

	// BeginTx opens a transaction serialized against every other
	// transaction for the same user
	BeginTx(ctx context.Context, userID string) (ProgressTx, error)
}

// ProgressTx defines the interface for progress transactions
type ProgressTx interface {
	Tx
	GetProgressForUpdate(ctx context.Context, userID string) (*domain.Progress, error)
	CreateProgress(ctx context.Context, progress *domain.Progress) error
	// UpdateProgress persists day, streak, unlock and XP fields. Token
	// balances are owned by the ledger and are left untouched.
	UpdateProgress(ctx context.Context, progress *domain.Progress) error
	GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error)
	UpsertCompletion(ctx context.Context, completion *domain.Completion) error
	ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error)
	ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error)
	InsertAchievement(ctx context.Context, achievement domain.UserAchievement) error
}
