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

func twoSubtaskDraft() models.PlanDraft {
	return models.PlanDraft{
		Goal: "build and verify",
		Subtasks: []models.SubtaskDraft{
			{ID: "t1", Description: "build it", Agent: "coder"},
			{ID: "t2", Description: "verify it", Agent: "debug", Dependencies: []string{"t1"}},
		},
	}
}

func createTestPlan(t *testing.T, svc *PlanService, convSvc *ConversationService, sessionID string) *models.Plan {
	t.Helper()
	conv, _, err := convSvc.GetOrCreate(context.Background(), sessionID)
	require.NoError(t, err)
	plan, err := svc.CreatePlan(context.Background(), sessionID, conv.ID, twoSubtaskDraft())
	require.NoError(t, err)
	return plan
}

func TestPlanService_CreatePlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	sessionID := uuid.New().String()

	plan := createTestPlan(t, svc, convSvc, sessionID)

	assert.Equal(t, models.PlanStatusDraft, plan.Status)
	assert.Equal(t, "build and verify", plan.Goal)
	require.Len(t, plan.Subtasks, 2)
	for _, st := range plan.Subtasks {
		assert.Equal(t, models.SubtaskStatusPending, st.Status)
		// Draft-local ids are remapped to globally unique ones.
		assert.NotContains(t, []string{"t1", "t2"}, st.ID)
	}

	var build, verify *models.Subtask
	for _, st := range plan.Subtasks {
		switch st.Description {
		case "build it":
			build = st
		case "verify it":
			verify = st
		}
	}
	require.NotNil(t, build)
	require.NotNil(t, verify)
	assert.Equal(t, []string{build.ID}, verify.Dependencies)
}

func TestPlanService_CreatePlanValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()
	conv, _, err := convSvc.GetOrCreate(ctx, sessionID)
	require.NoError(t, err)

	tests := []struct {
		name  string
		draft models.PlanDraft
	}{
		{"empty goal", models.PlanDraft{Subtasks: []models.SubtaskDraft{{ID: "a", Description: "d", Agent: "coder"}}}},
		{"no subtasks", models.PlanDraft{Goal: "g"}},
		{"duplicate ids", models.PlanDraft{Goal: "g", Subtasks: []models.SubtaskDraft{
			{ID: "a", Description: "d", Agent: "coder"},
			{ID: "a", Description: "d2", Agent: "coder"},
		}}},
		{"self dependency", models.PlanDraft{Goal: "g", Subtasks: []models.SubtaskDraft{
			{ID: "a", Description: "d", Agent: "coder", Dependencies: []string{"a"}},
		}}},
		{"unknown dependency", models.PlanDraft{Goal: "g", Subtasks: []models.SubtaskDraft{
			{ID: "a", Description: "d", Agent: "coder", Dependencies: []string{"zzz"}},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreatePlan(ctx, sessionID, conv.ID, tt.draft)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestPlanService_StatusLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	plan := createTestPlan(t, svc, convSvc, sessionID)

	t.Run("draft cannot start directly", func(t *testing.T) {
		_, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusInProgress, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("approval and start stamp timestamps", func(t *testing.T) {
		approved, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusApproved, "")
		require.NoError(t, err)
		assert.NotNil(t, approved.ApprovedAt)

		started, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusInProgress, "")
		require.NoError(t, err)
		assert.NotNil(t, started.StartedAt)
	})

	t.Run("repeating the current status is a no-op", func(t *testing.T) {
		_, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusInProgress, "")
		require.NoError(t, err)
	})

	t.Run("reason lands in metadata", func(t *testing.T) {
		cancelled, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCancelled, "user gave up")
		require.NoError(t, err)
		assert.NotNil(t, cancelled.CompletedAt)
		assert.Equal(t, "user gave up", cancelled.Metadata["status_reason"])
	})

	t.Run("terminal plans are frozen", func(t *testing.T) {
		_, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusInProgress, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestPlanService_SubtaskLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	plan := createTestPlan(t, svc, convSvc, sessionID)
	subtaskID := plan.Subtasks[0].ID

	t.Run("pending cannot complete directly", func(t *testing.T) {
		_, err := svc.UpdateSubtaskStatus(ctx, subtaskID, models.SubtaskStatusDone, "result", "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("running then done records result", func(t *testing.T) {
		running, err := svc.UpdateSubtaskStatus(ctx, subtaskID, models.SubtaskStatusRunning, "", "")
		require.NoError(t, err)
		assert.NotNil(t, running.StartedAt)

		done, err := svc.UpdateSubtaskStatus(ctx, subtaskID, models.SubtaskStatusDone, "it worked", "")
		require.NoError(t, err)
		assert.Equal(t, "it worked", done.Result)
		assert.NotNil(t, done.CompletedAt)
	})

	t.Run("failure and retry clear the previous attempt", func(t *testing.T) {
		otherID := plan.Subtasks[1].ID
		_, err := svc.UpdateSubtaskStatus(ctx, otherID, models.SubtaskStatusRunning, "", "")
		require.NoError(t, err)
		failed, err := svc.UpdateSubtaskStatus(ctx, otherID, models.SubtaskStatusFailed, "", "it broke")
		require.NoError(t, err)
		assert.Equal(t, "it broke", failed.Error)

		retried, err := svc.UpdateSubtaskStatus(ctx, otherID, models.SubtaskStatusPending, "", "")
		require.NoError(t, err)
		assert.Empty(t, retried.Error)
		assert.Nil(t, retried.StartedAt)
		assert.Nil(t, retried.CompletedAt)
	})

	t.Run("subtasks of terminal plans are frozen", func(t *testing.T) {
		otherID := plan.Subtasks[1].ID
		_, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCancelled, "test")
		require.NoError(t, err)

		_, err = svc.UpdateSubtaskStatus(ctx, otherID, models.SubtaskStatusRunning, "", "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestPlanService_ActiveAndLatestPlan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	t.Run("no plans", func(t *testing.T) {
		_, err := svc.GetActivePlan(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetLatestPlan(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	plan := createTestPlan(t, svc, convSvc, sessionID)

	t.Run("draft plan is active", func(t *testing.T) {
		active, err := svc.GetActivePlan(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, active.ID)
	})

	t.Run("terminal plan stays latest but not active", func(t *testing.T) {
		_, err := svc.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCancelled, "")
		require.NoError(t, err)

		_, err = svc.GetActivePlan(ctx, sessionID)
		assert.ErrorIs(t, err, ErrNotFound)

		latest, err := svc.GetLatestPlan(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, plan.ID, latest.ID)
		assert.Equal(t, models.PlanStatusCancelled, latest.Status)
	})
}

func TestPlanService_CurrentSubtaskMarker(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPlanService(client.Client, nil)
	convSvc := NewConversationService(client.Client, nil)
	ctx := context.Background()
	sessionID := uuid.New().String()

	plan := createTestPlan(t, svc, convSvc, sessionID)
	subtaskID := plan.Subtasks[0].ID

	require.NoError(t, svc.SetCurrentSubtask(ctx, plan.ID, subtaskID))
	loaded, err := svc.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, subtaskID, loaded.CurrentSubtaskID)

	require.NoError(t, svc.SetCurrentSubtask(ctx, plan.ID, ""))
	loaded, err = svc.GetPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, loaded.CurrentSubtaskID)
}
