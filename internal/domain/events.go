package domain

import "time"

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "tokens.earned")
const (
	// EventTypeDayCompleted is published after a day transitions to completed
	EventTypeDayCompleted = "progress.day_completed"

	// EventTypeDayEnded is published when a user ends their day early
	EventTypeDayEnded = "progress.day_ended"

	// EventTypeAchievementUnlocked is published once per newly unlocked achievement
	EventTypeAchievementUnlocked = "progress.achievement_unlocked"

	// EventTypeTokensEarned is published after a successful award
	EventTypeTokensEarned = "tokens.earned"

	// EventTypeTokensSpent is published after a successful spend
	EventTypeTokensSpent = "tokens.spent"
)

// DayCompletedPayload is the payload for progress.day_completed
type DayCompletedPayload struct {
	UserID             string    `json:"user_id"`
	Day                int       `json:"day"`
	Streak             int       `json:"streak"`
	BestStreak         int       `json:"best_streak"`
	TotalCompletedDays int       `json:"total_completed_days"`
	CurrentDay         int       `json:"current_day"`
	NextDayUnlocksAt   time.Time `json:"next_day_unlocks_at"`
	XPAwarded          int       `json:"xp_awarded"`
	Timestamp          int64     `json:"timestamp"`
}

// DayEndedPayload is the payload for progress.day_ended
type DayEndedPayload struct {
	UserID           string    `json:"user_id"`
	CurrentDay       int       `json:"current_day"`
	NextDayUnlocksAt time.Time `json:"next_day_unlocks_at"`
	Clamped          bool      `json:"clamped"`
	Timestamp        int64     `json:"timestamp"`
}

// AchievementUnlockedPayload is the payload for progress.achievement_unlocked
type AchievementUnlockedPayload struct {
	UserID         string `json:"user_id"`
	AchievementKey string `json:"achievement_key"`
	Name           string `json:"name"`
	Timestamp      int64  `json:"timestamp"`
}

// TokensPayload is the payload for tokens.earned and tokens.spent
type TokensPayload struct {
	UserID     string    `json:"user_id"`
	TokenType  TokenType `json:"token_type"`
	Amount     int       `json:"amount"`
	Reason     string    `json:"reason"`
	NewBalance int       `json:"new_balance"`
	Timestamp  int64     `json:"timestamp"`
}
