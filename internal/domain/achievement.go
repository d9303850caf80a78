package domain

import "time"

// AchievementMetric is the progress value an achievement rule watches
type AchievementMetric string

const (
	MetricStreak             AchievementMetric = "streak"
	MetricBestStreak         AchievementMetric = "best_streak"
	MetricTotalCompletedDays AchievementMetric = "total_completed_days"
	MetricCurrentDay         AchievementMetric = "current_day"
)

// Achievement is a catalog entry
type Achievement struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Metric      AchievementMetric `json:"metric"`
	Threshold   int               `json:"threshold"`
}

// MetricValue reads the metric an achievement watches from a progress record
func (a Achievement) MetricValue(p *Progress) int {
	switch a.Metric {
	case MetricStreak:
		return p.Streak
	case MetricBestStreak:
		return p.BestStreak
	case MetricTotalCompletedDays:
		return p.TotalCompletedDays
	case MetricCurrentDay:
		return p.CurrentDay
	default:
		return 0
	}
}

// SatisfiedBy reports whether the progress record meets the threshold
func (a Achievement) SatisfiedBy(p *Progress) bool {
	return a.MetricValue(p) >= a.Threshold
}

// UserAchievement records when a user unlocked an achievement
type UserAchievement struct {
	UserID         string    `json:"user_id"`
	AchievementKey string    `json:"achievement_key"`
	UnlockedAt     time.Time `json:"unlocked_at"`
}

// AchievementStatus is a catalog entry annotated with one user's unlock state
type AchievementStatus struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
