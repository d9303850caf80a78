// Package progress implements day advancement: completing days, ending days,
// drafts, and the lock that spaces new days apart.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/foundry90/internal/achievement"
	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/repository"
	"github.com/osse101/foundry90/internal/unlock"
)

// Service defines the day advancement engine
type Service interface {
	// StartJourney creates a user's progress record on day one. It returns
	// the existing record unchanged when the journey already started.
	StartJourney(ctx context.Context, userID string) (*domain.Progress, bool, error)

	CompleteDay(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.CompleteDayResult, error)
	EndDay(ctx context.Context, userID string, customUnlockTime *time.Time) (*domain.EndDayResult, error)
	CanAdvance(ctx context.Context, userID string) (*domain.AdvanceStatus, error)
	SaveDraft(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.Completion, error)

	GetProgress(ctx context.Context, userID string) (*domain.ProgressView, error)
	GetDay(ctx context.Context, userID string, day int) (*domain.Completion, error)
	GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error)

	// ClearLock removes a pending unlock time (support tooling)
	ClearLock(ctx context.Context, userID string) (*domain.Progress, error)
}

// Config tunes the engine
type Config struct {
	Policy            unlock.Policy
	ProgramLength     int
	XPPerCompletedDay int
	CacheSize         int
	CacheTTL          time.Duration
}

// DefaultConfig returns the standard 90-day program settings
func DefaultConfig() Config {
	return Config{
		Policy:            unlock.DefaultPolicy(),
		ProgramLength:     domain.DefaultProgramLength,
		XPPerCompletedDay: domain.DefaultXPPerCompletedDay,
		CacheSize:         1000,
		CacheTTL:          5 * time.Minute,
	}
}

type service struct {
	repo      repository.Progress
	catalog   *achievement.Catalog
	publisher event.Publisher
	clock     clock.Clock
	cfg       Config
	cache     *unlockCache
}

// NewService creates the engine. A nil catalog disables achievements and a
// nil publisher disables events.
func NewService(repo repository.Progress, catalog *achievement.Catalog, publisher event.Publisher, clk clock.Clock, cfg Config) Service {
	def := DefaultConfig()
	cfg.Policy = cfg.Policy.Normalize()
	if cfg.ProgramLength <= 0 {
		cfg.ProgramLength = def.ProgramLength
	}
	if cfg.XPPerCompletedDay < 0 {
		cfg.XPPerCompletedDay = 0
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = def.CacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = def.CacheTTL
	}
	if catalog == nil {
		catalog = achievement.Empty()
	}
	if clk == nil {
		clk = clock.New()
	}

	return &service{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		cache:     newUnlockCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

func (s *service) StartJourney(ctx context.Context, userID string) (*domain.Progress, bool, error) {
	tx, err := s.repo.BeginTx(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	existing, err := tx.GetProgressForUpdate(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	p := domain.NewProgress(userID, s.clock.Now())
	if err := tx.CreateProgress(ctx, p); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCreateProgress, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCommitTx, err)
	}

	s.cache.Invalidate(userID)
	logger.FromContext(ctx).Info(LogMsgJourneyStarted, "user_id", userID)
	return p, true, nil
}

func (s *service) CanAdvance(ctx context.Context, userID string) (*domain.AdvanceStatus, error) {
	state, err := s.unlockState(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	st := unlock.Check(now, state.NextDayUnlocksAt)
	return &domain.AdvanceStatus{
		CanAdvance:      st.CanAdvance,
		HoursLeft:       st.HoursLeft,
		TimeLeftSeconds: int64(st.Remaining.Round(time.Second) / time.Second),
		NextUnlockTime:  state.NextDayUnlocksAt,
		CurrentDay:      state.CurrentDay,
	}, nil
}

func (s *service) unlockState(ctx context.Context, userID string) (domain.UnlockState, error) {
	if state, ok := s.cache.Get(userID); ok {
		return state, nil
	}

	snapshot := s.cache.Snapshot()
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return domain.UnlockState{}, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return domain.UnlockState{}, domain.ErrProgressNotFound
	}
	if !s.cache.Set(p, snapshot) {
		logger.FromContext(ctx).Debug(LogMsgCacheFillSkipped, "user_id", userID)
	}
	return copyState(domain.UnlockState{CurrentDay: p.CurrentDay, NextDayUnlocksAt: p.NextDayUnlocksAt}), nil
}

func (s *service) GetProgress(ctx context.Context, userID string) (*domain.ProgressView, error) {
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return nil, domain.ErrProgressNotFound
	}

	completions, err := s.repo.ListCompletions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCompletions, err)
	}
	achievements, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAchievements, err)
	}
	if completions == nil {
		completions = []domain.Completion{}
	}
	if achievements == nil {
		achievements = []domain.UserAchievement{}
	}

	return &domain.ProgressView{
		Progress:        p,
		Completions:     completions,
		Achievements:    achievements,
		ProgramComplete: p.CurrentDay > s.cfg.ProgramLength,
	}, nil
}

func (s *service) GetDay(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	if err := s.validateDay(day); err != nil {
		return nil, err
	}

	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return nil, domain.ErrProgressNotFound
	}

	c, err := s.repo.GetCompletion(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetCompletion, err)
	}
	if c == nil {
		return nil, domain.ErrCompletionNotFound
	}
	return c, nil
}

func (s *service) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error) {
	p, err := s.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetProgress, err)
	}
	if p == nil {
		return nil, domain.ErrProgressNotFound
	}

	unlocked, err := s.repo.ListAchievements(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListAchievements, err)
	}
	return s.catalog.Statuses(unlocked), nil
}

func (s *service) validateDay(day int) error {
	if day < domain.FirstDay || day > s.cfg.ProgramLength {
		return fmt.Errorf("%w: day %d not in [%d, %d]", domain.ErrDayOutOfRange, day, domain.FirstDay, s.cfg.ProgramLength)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishWithRetry(ctx, evt)
}

// applyContent overwrites only the fields the caller supplied
func applyContent(c *domain.Completion, content domain.DraftInput) {
	if content.Notes != nil {
		notes := *content.Notes
		c.Notes = &notes
	}
	if content.Reflections != nil {
		reflections := *content.Reflections
		c.Reflections = &reflections
	}
	if content.StepResponses != nil {
		c.StepResponses = make(map[string]string, len(content.StepResponses))
		for k, v := range content.StepResponses {
			c.StepResponses[k] = v
		}
	}
}
