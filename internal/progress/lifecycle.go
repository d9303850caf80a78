package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/repository"
)

// EndDay locks new-day completion until the requested time, never sooner
// than the minimum rest period. A nil time applies the default delay.
func (s *service) EndDay(ctx context.Context, userID string, customUnlockTime *time.Time) (*domain.EndDayResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx, userID)
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

	now := s.clock.Now()
	unlocksAt, clamped := s.cfg.Policy.Next(now, customUnlockTime)
	endedAt := now
	p.NextDayUnlocksAt = &unlocksAt
	p.LastDayCompletedAt = &endedAt
	p.UpdatedAt = now

	if err := tx.UpdateProgress(ctx, p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgress, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}
	s.cache.Invalidate(userID)

	if clamped {
		log.Debug(LogMsgUnlockOverrideClamps, "user_id", userID, "requested", customUnlockTime, "applied", unlocksAt)
	}
	log.Info(LogMsgDayEnded, "user_id", userID, "next_unlock_time", unlocksAt)
	s.publish(ctx, event.NewDayEndedEvent(p, unlocksAt, clamped, now))

	return &domain.EndDayResult{NextUnlockTime: unlocksAt, Progress: p}, nil
}

// SaveDraft stores notes and step responses for a day without completing it.
// It is allowed in any lock state and leaves the completed flag as it was.
func (s *service) SaveDraft(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.Completion, error) {
	if err := s.validateDay(day); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx, userID)
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

	now := s.clock.Now()
	c, err := tx.GetCompletion(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCompletion, err)
	}
	if c == nil {
		c = &domain.Completion{UserID: userID, Day: day, CreatedAt: now}
	}
	applyContent(c, content)
	c.UpdatedAt = now

	if err := tx.UpsertCompletion(ctx, c); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveCompletion, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}

	logger.FromContext(ctx).Debug(LogMsgDraftSaved, "user_id", userID, "day", day, "completed", c.Completed)
	return c, nil
}

func (s *service) ClearLock(ctx context.Context, userID string) (*domain.Progress, error) {
	tx, err := s.repo.BeginTx(ctx, userID)
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

	p.NextDayUnlocksAt = nil
	p.UpdatedAt = s.clock.Now()
	if err := tx.UpdateProgress(ctx, p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgress, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}
	s.cache.Invalidate(userID)

	logger.FromContext(ctx).Info(LogMsgLockCleared, "user_id", userID)
	return p, nil
}
