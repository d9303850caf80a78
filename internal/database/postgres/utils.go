package postgres

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/foundry90/internal/database/generated"
	"github.com/osse101/foundry90/internal/domain"
)

// parseUserUUID parses a user ID string with a consistent error
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", ErrMsgInvalidUserID, domain.ErrInvalidUserID)
	}
	return u, nil
}

// hashUserID creates a consistent positive int64 advisory lock key for a user
func hashUserID(userID string) int64 {
	h := sha256.Sum256([]byte(UserLockNamespace + userID))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

// beginUserTx opens a transaction and takes the user's advisory lock.
// The lock is released automatically on commit or rollback.
func beginUserTx(ctx context.Context, db *pgxpool.Pool, userID string) (pgx.Tx, error) {
	if _, err := parseUserUUID(userID); err != nil {
		return nil, err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}

	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashUserID(userID)); err != nil {
		_ = tx.Rollback(ctx)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAcquireUserLock, err)
	}
	return tx, nil
}

// pgTx adapts pgx.Tx to repository.Tx, reporting a closed tx with the shared message
type pgTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func newPgTx(tx pgx.Tx, q *generated.Queries) pgTx {
	return pgTx{tx: tx, q: q.WithTx(tx)}
}

func (t *pgTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

// ---- Column conversions ----

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func ptrToTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return timestamptz(*t)
}

// ptrTime converts a pgtype.Timestamptz to a UTC *time.Time, nil when NULL
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

func textToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// marshalJSONB returns nil for an empty value so the column stays NULL
func marshalJSONB[T any](v map[string]T) ([]byte, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return json.Marshal(v)
}

// ---- Row mapping ----

func mapProgress(row generated.UserProgress) *domain.Progress {
	return &domain.Progress{
		UserID:             row.UserID.String(),
		CurrentDay:         int(row.CurrentDay),
		Streak:             int(row.Streak),
		BestStreak:         int(row.BestStreak),
		TotalCompletedDays: int(row.TotalCompletedDays),
		BuildingLevel:      int(row.BuildingLevel),
		LastDayCompletedAt: ptrTime(row.LastDayCompletedAt),
		NextDayUnlocksAt:   ptrTime(row.NextDayUnlocksAt),
		FounderCoins:       int(row.FounderCoins),
		VisionGems:         int(row.VisionGems),
		ExperiencePoints:   int(row.ExperiencePoints),
		CreatedAt:          row.CreatedAt.Time.UTC(),
		UpdatedAt:          row.UpdatedAt.Time.UTC(),
	}
}

func mapCompletion(row generated.DayCompletion) (*domain.Completion, error) {
	c := &domain.Completion{
		UserID:      row.UserID.String(),
		Day:         int(row.Day),
		Completed:   row.Completed,
		CompletedAt: ptrTime(row.CompletedAt),
		Notes:       textToPtr(row.Notes),
		Reflections: textToPtr(row.Reflections),
		CreatedAt:   row.CreatedAt.Time.UTC(),
		UpdatedAt:   row.UpdatedAt.Time.UTC(),
	}
	if len(row.StepResponses) > 0 {
		if err := json.Unmarshal(row.StepResponses, &c.StepResponses); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalSteps, err)
		}
	}
	return c, nil
}

func mapTransaction(row generated.TokenTransaction) (domain.TokenTransaction, error) {
	t := domain.TokenTransaction{
		ID:        row.ID,
		UserID:    row.UserID.String(),
		Type:      domain.TransactionType(row.Type),
		TokenType: domain.TokenType(row.TokenType),
		Amount:    int(row.Amount),
		Reason:    row.Reason,
		CreatedAt: row.CreatedAt.Time.UTC(),
	}
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &t.Metadata); err != nil {
			return t, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalMetadata, err)
		}
	}
	return t, nil
}

// ---- Progress helpers shared by the progress and ledger repositories ----

func getProgress(ctx context.Context, q *generated.Queries, userID string, forUpdate bool) (*domain.Progress, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var row generated.UserProgress
	if forUpdate {
		row, err = q.GetProgressForUpdate(ctx, uid)
	} else {
		row, err = q.GetProgress(ctx, uid)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProgress, err)
	}
	return mapProgress(row), nil
}

func getCompletion(ctx context.Context, q *generated.Queries, userID string, day int) (*domain.Completion, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row, err := q.GetCompletion(ctx, generated.GetCompletionParams{UserID: uid, Day: int32(day)})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetCompletion, err)
	}
	return mapCompletion(row)
}

func listCompletions(ctx context.Context, q *generated.Queries, userID string) ([]domain.Completion, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := q.ListCompletions(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCompletions, err)
	}

	completions := make([]domain.Completion, 0, len(rows))
	for _, row := range rows {
		c, err := mapCompletion(row)
		if err != nil {
			return nil, err
		}
		completions = append(completions, *c)
	}
	return completions, nil
}

func listAchievements(ctx context.Context, q *generated.Queries, userID string) ([]domain.UserAchievement, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := q.ListAchievements(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListAchievements, err)
	}

	achievements := make([]domain.UserAchievement, 0, len(rows))
	for _, row := range rows {
		achievements = append(achievements, domain.UserAchievement{
			UserID:         row.UserID.String(),
			AchievementKey: row.AchievementKey,
			UnlockedAt:     row.UnlockedAt.Time.UTC(),
		})
	}
	return achievements, nil
}
