package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/foundry90/internal/database/generated"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/repository"
)

type progressRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewProgressRepository creates a PostgreSQL progress repository
func NewProgressRepository(db *pgxpool.Pool) repository.Progress {
	return &progressRepository{db: db, q: generated.New(db)}
}

func (r *progressRepository) GetProgress(ctx context.Context, userID string) (*domain.Progress, error) {
	return getProgress(ctx, r.q, userID, false)
}

func (r *progressRepository) GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	return getCompletion(ctx, r.q, userID, day)
}

func (r *progressRepository) ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error) {
	return listCompletions(ctx, r.q, userID)
}

func (r *progressRepository) ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	return listAchievements(ctx, r.q, userID)
}

// BeginTx opens a transaction holding the user's advisory lock
func (r *progressRepository) BeginTx(ctx context.Context, userID string) (repository.ProgressTx, error) {
	tx, err := beginUserTx(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	return &progressTx{pgTx: newPgTx(tx, r.q)}, nil
}

type progressTx struct {
	pgTx
}

func (t *progressTx) GetProgressForUpdate(ctx context.Context, userID string) (*domain.Progress, error) {
	return getProgress(ctx, t.q, userID, true)
}

func (t *progressTx) CreateProgress(ctx context.Context, p *domain.Progress) error {
	uid, err := parseUserUUID(p.UserID)
	if err != nil {
		return err
	}

	err = t.q.CreateProgress(ctx, generated.CreateProgressParams{
		UserID:             uid,
		CurrentDay:         int32(p.CurrentDay),
		Streak:             int32(p.Streak),
		BestStreak:         int32(p.BestStreak),
		TotalCompletedDays: int32(p.TotalCompletedDays),
		BuildingLevel:      int32(p.BuildingLevel),
		LastDayCompletedAt: ptrToTimestamptz(p.LastDayCompletedAt),
		NextDayUnlocksAt:   ptrToTimestamptz(p.NextDayUnlocksAt),
		FounderCoins:       int32(p.FounderCoins),
		VisionGems:         int32(p.VisionGems),
		ExperiencePoints:   int32(p.ExperiencePoints),
		CreatedAt:          timestamptz(p.CreatedAt),
		UpdatedAt:          timestamptz(p.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertProgress, err)
	}
	return nil
}

func (t *progressTx) UpdateProgress(ctx context.Context, p *domain.Progress) error {
	uid, err := parseUserUUID(p.UserID)
	if err != nil {
		return err
	}

	affected, err := t.q.UpdateProgress(ctx, generated.UpdateProgressParams{
		UserID:             uid,
		CurrentDay:         int32(p.CurrentDay),
		Streak:             int32(p.Streak),
		BestStreak:         int32(p.BestStreak),
		TotalCompletedDays: int32(p.TotalCompletedDays),
		BuildingLevel:      int32(p.BuildingLevel),
		LastDayCompletedAt: ptrToTimestamptz(p.LastDayCompletedAt),
		NextDayUnlocksAt:   ptrToTimestamptz(p.NextDayUnlocksAt),
		ExperiencePoints:   int32(p.ExperiencePoints),
		UpdatedAt:          timestamptz(p.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateProgress, err)
	}
	if affected == 0 {
		return domain.ErrProgressNotFound
	}
	return nil
}

func (t *progressTx) GetCompletion(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	return getCompletion(ctx, t.q, userID, day)
}

func (t *progressTx) UpsertCompletion(ctx context.Context, c *domain.Completion) error {
	uid, err := parseUserUUID(c.UserID)
	if err != nil {
		return err
	}
	stepJSON, err := marshalJSONB(c.StepResponses)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCompletion, err)
	}

	err = t.q.UpsertCompletion(ctx, generated.UpsertCompletionParams{
		UserID:        uid,
		Day:           int32(c.Day),
		Completed:     c.Completed,
		CompletedAt:   ptrToTimestamptz(c.CompletedAt),
		Notes:         ptrToText(c.Notes),
		Reflections:   ptrToText(c.Reflections),
		StepResponses: stepJSON,
		CreatedAt:     timestamptz(c.CreatedAt),
		UpdatedAt:     timestamptz(c.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCompletion, err)
	}
	return nil
}

func (t *progressTx) ListCompletions(ctx context.Context, userID string) ([]domain.Completion, error) {
	return listCompletions(ctx, t.q, userID)
}

func (t *progressTx) ListAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	return listAchievements(ctx, t.q, userID)
}

func (t *progressTx) InsertAchievement(ctx context.Context, a domain.UserAchievement) error {
	uid, err := parseUserUUID(a.UserID)
	if err != nil {
		return err
	}
	err = t.q.InsertAchievement(ctx, generated.InsertAchievementParams{
		UserID:         uid,
		AchievementKey: a.AchievementKey,
		UnlockedAt:     timestamptz(a.UnlockedAt),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAchievement, err)
	}
	return nil
}
