package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
	testdb "github.com/maestro-ai/maestro/test/database"
)

func TestApprovalService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()
	sessionID := uuid.New().String()

	pa, err := svc.AddPending(ctx, AddPendingRequest{
		RequestID: "call-1",
		Kind:      models.ApprovalKindTool,
		Subject:   "delete_file",
		SessionID: sessionID,
		Details:   map[string]any{"path": "/tmp/x"},
		Reason:    "destructive tool",
	})
	require.NoError(t, err)
	assert.Equal(t, "call-1", pa.RequestID)
	assert.Equal(t, models.ApprovalStatusPending, pa.Status)

	t.Run("duplicate request id", func(t *testing.T) {
		_, err := svc.AddPending(ctx, AddPendingRequest{
			RequestID: "call-1",
			Kind:      models.ApprovalKindTool,
			Subject:   "delete_file",
			SessionID: sessionID,
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("approve with feedback", func(t *testing.T) {
		resolved, err := svc.Approve(ctx, "call-1", "looks fine")
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalStatusApproved, resolved.Status)
		assert.Equal(t, "looks fine", resolved.ResolutionFeedback)
		assert.NotNil(t, resolved.ResolvedAt)
	})

	t.Run("resolution never moves backwards", func(t *testing.T) {
		_, err := svc.Reject(ctx, "call-1", "changed my mind")
		assert.ErrorIs(t, err, ErrAlreadyResolved)
		_, err = svc.Approve(ctx, "call-1", "")
		assert.ErrorIs(t, err, ErrAlreadyResolved)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := svc.GetPending(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestApprovalService_ListPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewApprovalService(client.Client)
	ctx := context.Background()
	sessionID := uuid.New().String()

	_, err := svc.AddPending(ctx, AddPendingRequest{
		Kind: models.ApprovalKindTool, Subject: "write_file", SessionID: sessionID,
	})
	require.NoError(t, err)
	planReq, err := svc.AddPending(ctx, AddPendingRequest{
		Kind: models.ApprovalKindPlan, Subject: "plan-1", SessionID: sessionID,
	})
	require.NoError(t, err)
	resolved, err := svc.AddPending(ctx, AddPendingRequest{
		Kind: models.ApprovalKindTool, Subject: "read_file", SessionID: sessionID,
	})
	require.NoError(t, err)
	_, err = svc.Reject(ctx, resolved.RequestID, "")
	require.NoError(t, err)

	t.Run("all kinds, unresolved only", func(t *testing.T) {
		pending, err := svc.ListPending(ctx, sessionID, nil)
		require.NoError(t, err)
		assert.Len(t, pending, 2)
	})

	t.Run("filtered by kind", func(t *testing.T) {
		kind := models.ApprovalKindPlan
		pending, err := svc.ListPending(ctx, sessionID, &kind)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, planReq.RequestID, pending[0].RequestID)
	})

	t.Run("other sessions invisible", func(t *testing.T) {
		pending, err := svc.ListPending(ctx, uuid.New().String(), nil)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})
}

func TestAgentContextService(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentContextService(client.Client)
	ctx := context.Background()
	sessionID := uuid.New().String()

	t.Run("get before create", func(t *testing.T) {
		_, err := svc.Get(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("defaults on first use", func(t *testing.T) {
		record, err := svc.GetOrCreate(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "orchestrator", record.ActiveAgent)
		assert.Equal(t, "IDLE", record.FSMState)
	})

	t.Run("partial updates", func(t *testing.T) {
		record, err := svc.Update(ctx, sessionID, "coder", "")
		require.NoError(t, err)
		assert.Equal(t, "coder", record.ActiveAgent)
		assert.Equal(t, "IDLE", record.FSMState)

		record, err = svc.Update(ctx, sessionID, "", "EXECUTION")
		require.NoError(t, err)
		assert.Equal(t, "coder", record.ActiveAgent)
		assert.Equal(t, "EXECUTION", record.FSMState)
	})

	t.Run("state survives reload", func(t *testing.T) {
		record, err := svc.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, "coder", record.ActiveAgent)
		assert.Equal(t, "EXECUTION", record.FSMState)
	})
}
