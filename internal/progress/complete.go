package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/repository"
	"github.com/osse101/foundry90/internal/streak"
	"github.com/osse101/foundry90/internal/unlock"
)

// CompleteDay marks a day completed and advances the user past it.
//
// Completing a day beyond currentDay fails with FutureDayError. Completing
// currentDay or later while the unlock time is pending fails with
// LockedError. Earlier days may always be re-completed; only the first
// completion stamps completedAt, grants XP and schedules the next unlock.
func (s *service) CompleteDay(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.CompleteDayResult, error) {
	log := logger.FromContext(ctx)

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
	if err := s.checkAdvance(p, day, now); err != nil {
		log.Info(LogMsgCompletionRejected, "user_id", userID, "day", day, "current_day", p.CurrentDay, "reason", err.Error())
		return nil, err
	}

	c, err := tx.GetCompletion(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCompletion, err)
	}
	if c == nil {
		c = &domain.Completion{UserID: userID, Day: day, CreatedAt: now}
	}
	first := !c.Completed

	c.Completed = true
	if c.CompletedAt == nil {
		stamped := now
		c.CompletedAt = &stamped
	}
	applyContent(c, content)
	c.UpdatedAt = now
	if err := tx.UpsertCompletion(ctx, c); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveCompletion, err)
	}

	completions, err := tx.ListCompletions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletions, err)
	}
	xp := s.advance(p, completions, day, first, now)

	unlocked, err := tx.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAchievements, err)
	}
	fresh := s.catalog.Evaluate(p, unlocked, now)
	for _, ua := range fresh {
		if err := tx.InsertAchievement(ctx, ua); err != nil {
			return nil, fmt.Errorf(ErrMsgSaveAchievement, err)
		}
	}

	if err := tx.UpdateProgress(ctx, p); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateProgress, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTx, err)
	}
	s.cache.Invalidate(userID)

	if first {
		log.Info(LogMsgDayCompleted, "user_id", userID, "day", day, "streak", p.Streak, "current_day", p.CurrentDay)
		s.publish(ctx, event.NewDayCompletedEvent(p, day, xp, now))
	} else {
		log.Debug(LogMsgDayRecompleted, "user_id", userID, "day", day)
	}
	for _, ua := range fresh {
		a, _ := s.catalog.Get(ua.AchievementKey)
		log.Info(LogMsgAchievementUnlocked, "user_id", userID, "achievement", ua.AchievementKey)
		s.publish(ctx, event.NewAchievementUnlockedEvent(userID, a, now))
	}

	return &domain.CompleteDayResult{
		Completion:      c,
		Progress:        p,
		FirstCompletion: first,
		NewAchievements: fresh,
	}, nil
}

// checkAdvance rejects skipping ahead and advancing while locked
func (s *service) checkAdvance(p *domain.Progress, day int, now time.Time) error {
	if day > p.CurrentDay {
		return domain.FutureDayError{RequestedDay: day, CurrentDay: p.CurrentDay}
	}
	if day < p.CurrentDay {
		return nil
	}

	st := unlock.Check(now, p.NextDayUnlocksAt)
	if st.CanAdvance {
		return nil
	}
	return domain.LockedError{
		HoursLeft:      st.HoursLeft,
		Remaining:      st.Remaining,
		NextUnlockTime: *p.NextDayUnlocksAt,
	}
}

// advance recomputes the derived counters on p from the user's completions
// and returns the XP granted.
func (s *service) advance(p *domain.Progress, completions []domain.Completion, day int, first bool, now time.Time) int {
	asOf := day
	if latest := streak.LatestCompletedDay(completions); latest > asOf {
		asOf = latest
	}

	p.TotalCompletedDays = streak.CountCompleted(completions)
	p.Streak = streak.Compute(completions, asOf)
	if p.Streak > p.BestStreak {
		p.BestStreak = p.Streak
	}
	if day+1 > p.CurrentDay {
		p.CurrentDay = day + 1
	}
	p.BuildingLevel = domain.BuildingLevelFor(p.TotalCompletedDays)
	p.UpdatedAt = now

	// Re-saving an earlier day's notes must not re-lock the user
	if !first {
		return 0
	}

	unlocksAt, _ := s.cfg.Policy.Next(now, nil)
	completedAt := now
	p.NextDayUnlocksAt = &unlocksAt
	p.LastDayCompletedAt = &completedAt
	p.ExperiencePoints += s.cfg.XPPerCompletedDay
	return s.cfg.XPPerCompletedDay
}
