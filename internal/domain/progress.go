package domain

import "time"

// Progress is the per-user journey record. It is owned by the storage layer and only
// mutated through the progress engine and the token ledger.
type Progress struct {
	UserID             string     `json:"user_id"`
	CurrentDay         int        `json:"current_day"`
	Streak             int        `json:"streak"`
	BestStreak         int        `json:"best_streak"`
	TotalCompletedDays int        `json:"total_completed_days"`
	BuildingLevel      int        `json:"building_level"`
	LastDayCompletedAt *time.Time `json:"last_day_completed_at"`
	NextDayUnlocksAt   *time.Time `json:"next_day_unlocks_at"`
	FounderCoins       int        `json:"founder_coins"`
	VisionGems         int        `json:"vision_gems"`
	ExperiencePoints   int        `json:"experience_points"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NewProgress returns the record for a user starting day one
func NewProgress(userID string, now time.Time) *Progress {
	return &Progress{
		UserID:        userID,
		CurrentDay:    FirstDay,
		BuildingLevel: BuildingLevelFor(0),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a deep copy so callers can stage changes without aliasing timestamps
func (p *Progress) Clone() *Progress {
	if p == nil {
		return nil
	}
	c := *p
	c.LastDayCompletedAt = cloneTime(p.LastDayCompletedAt)
	c.NextDayUnlocksAt = cloneTime(p.NextDayUnlocksAt)
	return &c
}

// Balances returns the denormalized token balances
func (p *Progress) Balances() Balances {
	return Balances{FounderCoins: p.FounderCoins, VisionGems: p.VisionGems}
}

// IsLocked reports whether new-day completion is blocked at now
func (p *Progress) IsLocked(now time.Time) bool {
	return p.NextDayUnlocksAt != nil && now.Before(*p.NextDayUnlocksAt)
}

// Completion is one user's record for one day. Day is the natural key.
type Completion struct {
	UserID        string            `json:"user_id"`
	Day           int               `json:"day"`
	Completed     bool              `json:"completed"`
	CompletedAt   *time.Time        `json:"completed_at"`
	Notes         *string           `json:"notes"`
	Reflections   *string           `json:"reflections"`
	StepResponses map[string]string `json:"step_responses"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// IsDraft reports whether content was saved without completing the day
func (c *Completion) IsDraft() bool {
	return !c.Completed
}

// Clone returns a deep copy of the completion
func (c *Completion) Clone() *Completion {
	if c == nil {
		return nil
	}
	cp := *c
	cp.CompletedAt = cloneTime(c.CompletedAt)
	cp.Notes = cloneString(c.Notes)
	cp.Reflections = cloneString(c.Reflections)
	if c.StepResponses != nil {
		cp.StepResponses = make(map[string]string, len(c.StepResponses))
		for k, v := range c.StepResponses {
			cp.StepResponses[k] = v
		}
	}
	return &cp
}

// UnlockState is the slice of Progress needed to answer "can the user advance?"
type UnlockState struct {
	CurrentDay       int        `json:"current_day"`
	NextDayUnlocksAt *time.Time `json:"next_day_unlocks_at"`
}

// AdvanceStatus answers the canAdvance query
type AdvanceStatus struct {
	CanAdvance      bool       `json:"can_advance"`
	HoursLeft       int        `json:"hours_left"`
	TimeLeftSeconds int64      `json:"time_left_seconds"`
	NextUnlockTime  *time.Time `json:"next_unlock_time"`
	CurrentDay      int        `json:"current_day"`
}

// ProgressView is the getProgress payload
type ProgressView struct {
	Progress        *Progress         `json:"progress"`
	Completions     []Completion      `json:"completions"`
	Achievements    []UserAchievement `json:"achievements"`
	ProgramComplete bool              `json:"program_complete"`
}

// CompleteDayResult is returned from a successful completion
type CompleteDayResult struct {
	Completion      *Completion       `json:"completion"`
	Progress        *Progress         `json:"progress"`
	FirstCompletion bool              `json:"first_completion"`
	NewAchievements []UserAchievement `json:"new_achievements,omitempty"`
}

// EndDayResult is returned from an end-day request
type EndDayResult struct {
	NextUnlockTime time.Time `json:"next_unlock_time"`
	Progress       *Progress `json:"progress"`
}

// DraftInput carries optional draft fields; nil means "leave unchanged"
type DraftInput struct {
	Notes         *string
	Reflections   *string
	StepResponses map[string]string
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
