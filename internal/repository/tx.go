package repository

import (
	"context"
)

// Tx defines the interface for transactional operations.
// Transactions are opened per user and hold that user's write lock until
// Commit or Rollback.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
