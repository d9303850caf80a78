package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/eventlog"
)

func TestEventLogRepository_LogQueryCleanup(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewEventLogRepository(testPool)
	userID := newUserID()
	other := newUserID()

	require.NoError(t, repo.LogEvent(ctx, "progress.day_completed", &userID,
		map[string]interface{}{"user_id": userID, "day": 1}, nil))
	require.NoError(t, repo.LogEvent(ctx, "tokens.earned", &userID,
		map[string]interface{}{"user_id": userID, "amount": 5}, map[string]interface{}{"challenge_id": "c-1"}))
	require.NoError(t, repo.LogEvent(ctx, "tokens.earned", &other,
		map[string]interface{}{"user_id": other, "amount": 1}, nil))

	notUUID := "legacy-user"
	require.NoError(t, repo.LogEvent(ctx, "tokens.earned", &notUUID, map[string]interface{}{}, nil))

	events, err := repo.GetEvents(ctx, eventlog.EventFilter{UserID: &userID})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "tokens.earned", events[0].EventType)
	assert.Equal(t, "c-1", events[0].Metadata["challenge_id"])
	require.NotNil(t, events[0].UserID)
	assert.Equal(t, userID, *events[0].UserID)

	eventType := "progress.day_completed"
	events, err = repo.GetEvents(ctx, eventlog.EventFilter{UserID: &userID, EventType: &eventType, Limit: 10})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, float64(1), events[0].Payload["day"])

	// nothing is older than a day yet
	deleted, err := repo.CleanupOldEvents(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = testPool.Exec(ctx, `UPDATE events SET created_at = NOW() - INTERVAL '40 days' WHERE user_id = $1`, other)
	require.NoError(t, err)
	deleted, err = repo.CleanupOldEvents(ctx, 30)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))

	events, err = repo.GetEvents(ctx, eventlog.EventFilter{UserID: &other})
	require.NoError(t, err)
	assert.Empty(t, events)
}
