package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingLevelFor(t *testing.T) {
	tests := []struct {
		total int
		want  int
	}{
		{0, 1},
		{1, 2},
		{88, 89},
		{89, 90},
		{90, 90},
		{120, 90},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("total_%d", tt.total), func(t *testing.T) {
			assert.Equal(t, tt.want, BuildingLevelFor(tt.total))
		})
	}
}

func TestNewProgress(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProgress("u1", now)

	assert.Equal(t, 1, p.CurrentDay)
	assert.Equal(t, 1, p.BuildingLevel)
	assert.Zero(t, p.Streak)
	assert.Nil(t, p.NextDayUnlocksAt)
	assert.Equal(t, now, p.CreatedAt)
}

func TestProgress_CloneDoesNotAlias(t *testing.T) {
	unlock := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	p := &Progress{UserID: "u1", NextDayUnlocksAt: &unlock}

	c := p.Clone()
	*c.NextDayUnlocksAt = unlock.Add(time.Hour)
	c.Streak = 5

	assert.Equal(t, unlock, *p.NextDayUnlocksAt)
	assert.Zero(t, p.Streak)
}

func TestProgress_IsLocked(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	assert.False(t, (&Progress{}).IsLocked(now))
	assert.True(t, (&Progress{NextDayUnlocksAt: &future}).IsLocked(now))
	assert.False(t, (&Progress{NextDayUnlocksAt: &past}).IsLocked(now))
	assert.False(t, (&Progress{NextDayUnlocksAt: &now}).IsLocked(now), "exact unlock instant is unlocked")
}

func TestCompletion_CloneCopiesMaps(t *testing.T) {
	notes := "n"
	c := &Completion{Day: 1, Notes: &notes, StepResponses: map[string]string{"a": "1"}}
	cp := c.Clone()
	cp.StepResponses["a"] = "2"
	*cp.Notes = "changed"

	assert.Equal(t, "1", c.StepResponses["a"])
	assert.Equal(t, "n", *c.Notes)
}

func TestSumTransactions(t *testing.T) {
	txs := []TokenTransaction{
		{Type: TransactionEarned, TokenType: TokenFounderCoins, Amount: 100},
		{Type: TransactionSpent, TokenType: TokenFounderCoins, Amount: 30},
		{Type: TransactionEarned, TokenType: TokenVisionGems, Amount: 5},
	}
	b := SumTransactions(txs)
	assert.Equal(t, Balances{FounderCoins: 70, VisionGems: 5}, b)
	assert.Equal(t, 70, b.Get(TokenFounderCoins))
	assert.Equal(t, 0, b.Get(TokenType("bogus")))
}

func TestTokenType_Valid(t *testing.T) {
	assert.True(t, TokenFounderCoins.Valid())
	assert.True(t, TokenVisionGems.Valid())
	assert.False(t, TokenType("gold").Valid())
}

func TestPolicyErrors_Is(t *testing.T) {
	future := FutureDayError{RequestedDay: 5, CurrentDay: 3}
	locked := LockedError{HoursLeft: 18, Remaining: 18 * time.Hour, NextUnlockTime: time.Now()}
	funds := InsufficientFundsError{TokenType: TokenVisionGems, Balance: 1, Requested: 2}

	wrapped := fmt.Errorf("complete day: %w", locked)

	assert.True(t, errors.Is(future, ErrFutureDay))
	assert.True(t, errors.Is(wrapped, ErrDayLocked))
	assert.True(t, errors.Is(funds, ErrInsufficientFunds))
	assert.False(t, errors.Is(future, ErrDayLocked))

	var le LockedError
	require.True(t, errors.As(wrapped, &le))
	assert.Equal(t, 18, le.HoursLeft)

	assert.Contains(t, future.Error(), ErrMsgFutureDay)
	assert.Contains(t, funds.Error(), ErrMsgInsufficientFunds)
}

func TestAchievement_SatisfiedBy(t *testing.T) {
	p := &Progress{Streak: 7, BestStreak: 10, TotalCompletedDays: 12, CurrentDay: 13}
	tests := []struct {
		metric    AchievementMetric
		threshold int
		want      bool
	}{
		{MetricStreak, 7, true},
		{MetricStreak, 8, false},
		{MetricBestStreak, 10, true},
		{MetricTotalCompletedDays, 30, false},
		{MetricCurrentDay, 13, true},
		{AchievementMetric("unknown"), 1, false},
	}
	for _, tt := range tests {
		a := Achievement{Metric: tt.metric, Threshold: tt.threshold}
		assert.Equal(t, tt.want, a.SatisfiedBy(p), "%s >= %d", tt.metric, tt.threshold)
	}
}
