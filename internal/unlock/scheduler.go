// Package unlock schedules when a user may advance to the next program day.
package unlock

import (
	"math"
	"time"

	"github.com/osse101/foundry90/internal/domain"
)

// Policy holds the delays applied when scheduling the next unlock
type Policy struct {
	// DefaultDelay is applied after a day is completed
	DefaultDelay time.Duration
	// MinimumRest is the floor applied to a user-chosen unlock time
	MinimumRest time.Duration
}

// DefaultPolicy returns the standard 18h / 8h policy
func DefaultPolicy() Policy {
	return Policy{
		DefaultDelay: domain.DefaultUnlockDelay,
		MinimumRest:  domain.MinimumRestPeriod,
	}
}

// Normalize replaces non-positive durations with the defaults
func (p Policy) Normalize() Policy {
	if p.DefaultDelay <= 0 {
		p.DefaultDelay = domain.DefaultUnlockDelay
	}
	if p.MinimumRest <= 0 {
		p.MinimumRest = domain.MinimumRestPeriod
	}
	return p
}

// Next computes the next unlock time. Without an override it returns
// now + DefaultDelay. With an override it returns max(custom, now + MinimumRest)
// and reports whether the override was clamped. The result is never before now.
func (p Policy) Next(now time.Time, custom *time.Time) (time.Time, bool) {
	now = now.UTC()
	if custom == nil {
		return now.Add(p.DefaultDelay), false
	}

	floor := now.Add(p.MinimumRest)
	if custom.Before(floor) {
		return floor, true
	}
	return custom.UTC(), false
}

// Status describes the lock state at a point in time
type Status struct {
	CanAdvance bool
	Remaining  time.Duration
	HoursLeft  int
}

// Check reports whether now is at or past the unlock time. A nil unlock time
// never blocks. HoursLeft is the remaining time rounded up to whole hours.
func Check(now time.Time, unlocksAt *time.Time) Status {
	if unlocksAt == nil || !now.Before(*unlocksAt) {
		return Status{CanAdvance: true}
	}

	remaining := unlocksAt.Sub(now)
	return Status{
		CanAdvance: false,
		Remaining:  remaining,
		HoursLeft:  HoursLeft(remaining),
	}
}

// HoursLeft rounds a remaining duration up to whole hours, clamped at zero
func HoursLeft(remaining time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours()))
}
