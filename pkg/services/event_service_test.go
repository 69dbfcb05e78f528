package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/maestro-ai/maestro/test/database"
)

func TestEventService_RecordAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()
	sessionID := uuid.New().String()

	first, err := svc.RecordEvent(ctx, sessionID, "plan.created", map[string]any{"plan_id": "p1"})
	require.NoError(t, err)
	_, err = svc.RecordEvent(ctx, sessionID, "plan.status", map[string]any{"status": "approved"})
	require.NoError(t, err)
	_, err = svc.RecordEvent(ctx, uuid.New().String(), "plan.created", nil)
	require.NoError(t, err)

	t.Run("full session history in order", func(t *testing.T) {
		events, err := svc.ListBySession(ctx, sessionID, 0, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "plan.created", events[0].EventType)
		assert.Equal(t, "p1", events[0].Payload["plan_id"])
		assert.Equal(t, "plan.status", events[1].EventType)
	})

	t.Run("catchup after an id", func(t *testing.T) {
		events, err := svc.ListBySession(ctx, sessionID, first.ID, 0)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "plan.status", events[0].EventType)
	})
}

func TestEventService_Stats(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()
	sessionA := uuid.New().String()
	sessionB := uuid.New().String()

	for i := 0; i < 3; i++ {
		_, err := svc.RecordEvent(ctx, sessionA, "session.message_processed", nil)
		require.NoError(t, err)
	}
	_, err := svc.RecordEvent(ctx, sessionA, "plan.created", nil)
	require.NoError(t, err)
	_, err = svc.RecordEvent(ctx, sessionB, "plan.created", nil)
	require.NoError(t, err)

	t.Run("global stats", func(t *testing.T) {
		stats, err := svc.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, stats["session.message_processed"])
		assert.Equal(t, 2, stats["plan.created"])
	})

	t.Run("per-session stats", func(t *testing.T) {
		stats, err := svc.StatsForSession(ctx, sessionA)
		require.NoError(t, err)
		assert.Equal(t, 3, stats["session.message_processed"])
		assert.Equal(t, 1, stats["plan.created"])
	})

	t.Run("activity by session", func(t *testing.T) {
		activity, err := svc.SessionActivity(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, activity[sessionA])
		assert.Equal(t, 1, activity[sessionB])
	})
}
