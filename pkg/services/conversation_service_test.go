package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
	testdb "github.com/maestro-ai/maestro/test/database"
)

func TestConversationService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	conv, created, err := svc.GetOrCreate(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, sessionID, conv.SessionID)

	again, created, err := svc.GetOrCreate(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv.ID, again.ID)

	_, _, err = svc.GetOrCreate(ctx, "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestConversationService_AppendAndHistory(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	t.Run("assigns sequence numbers in order", func(t *testing.T) {
		for _, content := range []string{"first", "second", "third"} {
			_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
				SessionID: sessionID,
				Role:      models.RoleUser,
				Content:   content,
			})
			require.NoError(t, err)
		}

		history, err := svc.GetHistory(ctx, sessionID, 0)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, 0, history[0].SequenceNumber)
		assert.Equal(t, "first", history[0].Content)
		assert.Equal(t, 2, history[2].SequenceNumber)
		assert.Equal(t, "third", history[2].Content)
	})

	t.Run("respects history limit", func(t *testing.T) {
		history, err := svc.GetHistory(ctx, sessionID, 2)
		require.NoError(t, err)
		assert.Len(t, history, 2)
	})

	t.Run("empty history for unknown session", func(t *testing.T) {
		history, err := svc.GetHistory(ctx, uuid.New().String(), 0)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID: sessionID,
			Role:      "narrator",
			Content:   "meanwhile",
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestConversationService_ToolCallBinding(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	t.Run("rejects tool message with nothing to bind to", func(t *testing.T) {
		_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  sessionID,
			Role:       models.RoleTool,
			Content:    "result",
			ToolCallID: "call-1",
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   "",
		ToolCalls: []models.ToolCallRecord{
			{ID: "call-1", Name: "read_file", Arguments: `{"path":"x"}`},
		},
	})
	require.NoError(t, err)

	t.Run("accepts tool message bound to declared call", func(t *testing.T) {
		msg, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  sessionID,
			Role:       models.RoleTool,
			Content:    "file contents",
			ToolCallID: "call-1",
			ToolName:   "read_file",
		})
		require.NoError(t, err)
		assert.Equal(t, "call-1", msg.ToolCallID)
	})

	t.Run("rejects tool message with unknown call id", func(t *testing.T) {
		_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  sessionID,
			Role:       models.RoleTool,
			Content:    "result",
			ToolCallID: "call-99",
		})
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("tool calls survive the round trip", func(t *testing.T) {
		history, err := svc.GetHistory(ctx, sessionID, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		require.Len(t, history[0].ToolCalls, 1)
		assert.Equal(t, "read_file", history[0].ToolCalls[0].Name)
		assert.Equal(t, `{"path":"x"}`, history[0].ToolCalls[0].Arguments)
	})
}

func TestConversationService_SnapshotRestore(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	_, err := svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID, Role: models.RoleUser, Content: "the goal",
	})
	require.NoError(t, err)

	conv, _, err := svc.GetOrCreate(ctx, sessionID)
	require.NoError(t, err)

	snap, err := svc.CreateSubtaskSnapshot(ctx, conv.ID, "sub-1")
	require.NoError(t, err)
	assert.Len(t, snap.Messages, 1)

	// Subtask chatter after the snapshot.
	_, err = svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID, Role: models.RoleUser, Content: "subtask prompt",
	})
	require.NoError(t, err)
	_, err = svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID, Role: models.RoleAssistant, Content: "subtask result",
	})
	require.NoError(t, err)

	t.Run("lookup by subtask", func(t *testing.T) {
		found, err := svc.GetSnapshotForSubtask(ctx, "sub-1")
		require.NoError(t, err)
		assert.Equal(t, snap.ID, found.ID)

		_, err = svc.GetSnapshotForSubtask(ctx, "sub-none")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("restore preserving the last result", func(t *testing.T) {
		require.NoError(t, svc.RestoreFromSnapshot(ctx, snap.ID, RestoreOptions{PreserveLastResult: true}))

		history, err := svc.GetHistory(ctx, sessionID, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "the goal", history[0].Content)
		assert.Equal(t, models.RoleAssistant, history[1].Role)
		assert.Equal(t, "subtask result", history[1].Content)
	})

	t.Run("plain restore drops everything after the snapshot", func(t *testing.T) {
		require.NoError(t, svc.RestoreFromSnapshot(ctx, snap.ID, RestoreOptions{}))

		history, err := svc.GetHistory(ctx, sessionID, 0)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "the goal", history[0].Content)
	})

	t.Run("unknown snapshot", func(t *testing.T) {
		err := svc.RestoreFromSnapshot(ctx, uuid.New().String(), RestoreOptions{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()

	older := uuid.New().String()
	newer := uuid.New().String()
	_, _, err := svc.GetOrCreate(ctx, older)
	require.NoError(t, err)
	_, _, err = svc.GetOrCreate(ctx, newer)
	require.NoError(t, err)

	// Touch the older session so it becomes the most recent.
	time.Sleep(10 * time.Millisecond)
	_, err = svc.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: older, Role: models.RoleUser, Content: "back again",
	})
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, older, sessions[0].SessionID)
	assert.Equal(t, newer, sessions[1].SessionID)

	limited, err := svc.ListSessions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestConversationService_DeleteExpired(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewConversationService(client.Client, nil)
	ctx := context.Background()

	stale := uuid.New().String()
	fresh := uuid.New().String()
	_, _, err := svc.GetOrCreate(ctx, stale)
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	cutoff := time.Now()
	_, _, err = svc.GetOrCreate(ctx, fresh)
	require.NoError(t, err)

	deleted, err := svc.DeleteExpired(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []string{stale}, deleted)

	// The fresh session survives; the stale one is gone.
	_, created, err := svc.GetOrCreate(ctx, fresh)
	require.NoError(t, err)
	assert.False(t, created)
	_, created, err = svc.GetOrCreate(ctx, stale)
	require.NoError(t, err)
	assert.True(t, created)

	none, err := svc.DeleteExpired(ctx, cutoff)
	require.NoError(t, err)
	assert.Empty(t, none)
}
