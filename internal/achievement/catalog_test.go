package achievement

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/config"
	"github.com/osse101/foundry90/internal/domain"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]domain.Achievement{
		{Key: "first", Name: "First", Metric: domain.MetricTotalCompletedDays, Threshold: 1},
		{Key: "three", Name: "Three", Metric: domain.MetricStreak, Threshold: 3},
		{Key: "day_ten", Name: "Day Ten", Metric: domain.MetricCurrentDay, Threshold: 10},
	})
	require.NoError(t, err)
	return c
}

func TestLoad_ShippedCatalog(t *testing.T) {
	c, err := Load(config.ConfigPathAchievements)
	require.NoError(t, err)
	assert.Positive(t, c.Len())

	a, ok := c.Get("first_brick")
	require.True(t, ok)
	assert.Equal(t, domain.MetricTotalCompletedDays, a.Metric)
}

func TestLoad_RejectsSchemaViolations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "achievements.json")
	bad := `{"version": "1.0", "achievements": [{"key": "x", "name": "X", "metric": "coins", "threshold": 1}]}`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.Achievement
	}{
		{"empty key", []domain.Achievement{{Metric: domain.MetricStreak, Threshold: 1}}},
		{"duplicate", []domain.Achievement{
			{Key: "a", Metric: domain.MetricStreak, Threshold: 1},
			{Key: "a", Metric: domain.MetricStreak, Threshold: 2},
		}},
		{"unknown metric", []domain.Achievement{{Key: "a", Metric: "coins", Threshold: 1}}},
		{"zero threshold", []domain.Achievement{{Key: "a", Metric: domain.MetricStreak}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.entries)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestEvaluate(t *testing.T) {
	c := testCatalog(t)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	p := &domain.Progress{UserID: "u1", TotalCompletedDays: 3, Streak: 3, CurrentDay: 4}

	fresh := c.Evaluate(p, nil, now)
	require.Len(t, fresh, 2)
	assert.Equal(t, "first", fresh[0].AchievementKey)
	assert.Equal(t, "three", fresh[1].AchievementKey)
	assert.Equal(t, now, fresh[0].UnlockedAt)
	assert.Equal(t, "u1", fresh[0].UserID)

	again := c.Evaluate(p, fresh, now.Add(time.Hour))
	assert.Empty(t, again, "already unlocked achievements are not re-awarded")
}

func TestStatuses(t *testing.T) {
	c := testCatalog(t)
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	statuses := c.Statuses([]domain.UserAchievement{{UserID: "u1", AchievementKey: "three", UnlockedAt: at}})
	require.Len(t, statuses, 3)
	assert.False(t, statuses[0].Unlocked)
	assert.Nil(t, statuses[0].UnlockedAt)
	assert.True(t, statuses[1].Unlocked)
	require.NotNil(t, statuses[1].UnlockedAt)
	assert.Equal(t, at, *statuses[1].UnlockedAt)
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := testCatalog(t)
	all := c.All()
	all[0].Key = "mutated"

	_, ok := c.Get("first")
	assert.True(t, ok)
	assert.Equal(t, "first", c.All()[0].Key)
}
