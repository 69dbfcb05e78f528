package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-ai/maestro/pkg/models"
)

func buildPlan(subtasks ...*models.Subtask) *models.Plan {
	return &models.Plan{
		ID:       "plan-1",
		Goal:     "test goal",
		Status:   models.PlanStatusInProgress,
		Subtasks: subtasks,
	}
}

func st(id string, status models.SubtaskStatus, deps ...string) *models.Subtask {
	return &models.Subtask{
		ID:           id,
		Status:       status,
		Dependencies: deps,
	}
}

func TestReadySet(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusDone),
		st("b", models.SubtaskStatusPending, "a"),
		st("c", models.SubtaskStatusPending, "b"),
		st("d", models.SubtaskStatusPending),
	)

	ready := ReadySet(plan)
	require.Len(t, ready, 2)
	assert.Equal(t, "b", ready[0].ID)
	assert.Equal(t, "d", ready[1].ID)
}

func TestReadySetExcludesFailedDependencyChain(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusFailed),
		st("b", models.SubtaskStatusPending, "a"),
	)
	assert.Empty(t, ReadySet(plan))
}

func TestNextSubtaskPlanOrder(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusPending),
		st("b", models.SubtaskStatusPending),
	)
	next := NextSubtask(plan)
	require.NotNil(t, next)
	assert.Equal(t, "a", next.ID)
}

func TestNextSubtaskNilWhenNothingReady(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusRunning),
		st("b", models.SubtaskStatusPending, "a"),
	)
	assert.Nil(t, NextSubtask(plan))
}

func TestValidateSelfLoop(t *testing.T) {
	plan := buildPlan(st("a", models.SubtaskStatusPending, "a"))
	errs := Validate(plan)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "depends on itself")
}

func TestValidateUnknownReference(t *testing.T) {
	plan := buildPlan(st("a", models.SubtaskStatusPending, "ghost"))
	errs := Validate(plan)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "unknown subtask")
}

func TestValidateCycle(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusPending, "c"),
		st("b", models.SubtaskStatusPending, "a"),
		st("c", models.SubtaskStatusPending, "b"),
	)
	errs := Validate(plan)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "circular dependencies")
}

func TestValidateAcceptsDiamond(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusPending),
		st("b", models.SubtaskStatusPending, "a"),
		st("c", models.SubtaskStatusPending, "a"),
		st("d", models.SubtaskStatusPending, "b", "c"),
	)
	assert.Empty(t, Validate(plan))
}

func TestExecutionLevels(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusPending),
		st("b", models.SubtaskStatusPending, "a"),
		st("c", models.SubtaskStatusPending, "a"),
		st("d", models.SubtaskStatusPending, "b", "c"),
	)

	levels, err := ExecutionLevels(plan)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, "a", levels[0][0].ID)
	assert.Len(t, levels[1], 2)
	assert.Equal(t, "d", levels[2][0].ID)
}

func TestExecutionLevelsRejectsCycle(t *testing.T) {
	plan := buildPlan(
		st("a", models.SubtaskStatusPending, "b"),
		st("b", models.SubtaskStatusPending, "a"),
	)
	_, err := ExecutionLevels(plan)
	require.Error(t, err)
}
