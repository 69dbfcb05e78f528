package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanStatusTransitions(t *testing.T) {
	assert.True(t, PlanStatusDraft.CanTransitionTo(PlanStatusApproved))
	assert.True(t, PlanStatusDraft.CanTransitionTo(PlanStatusCancelled))
	assert.True(t, PlanStatusApproved.CanTransitionTo(PlanStatusInProgress))
	assert.True(t, PlanStatusInProgress.CanTransitionTo(PlanStatusCompleted))
	assert.True(t, PlanStatusInProgress.CanTransitionTo(PlanStatusFailed))

	assert.False(t, PlanStatusDraft.CanTransitionTo(PlanStatusInProgress))
	assert.False(t, PlanStatusCompleted.CanTransitionTo(PlanStatusCancelled))
	assert.False(t, PlanStatusFailed.CanTransitionTo(PlanStatusInProgress))
	assert.False(t, PlanStatusCancelled.CanTransitionTo(PlanStatusApproved))
}

func TestPlanStatusTerminal(t *testing.T) {
	assert.True(t, PlanStatusCompleted.IsTerminal())
	assert.True(t, PlanStatusFailed.IsTerminal())
	assert.True(t, PlanStatusCancelled.IsTerminal())
	assert.False(t, PlanStatusDraft.IsTerminal())
	assert.False(t, PlanStatusInProgress.IsTerminal())
}

func TestSubtaskStatusTransitions(t *testing.T) {
	assert.True(t, SubtaskStatusPending.CanTransitionTo(SubtaskStatusRunning))
	assert.True(t, SubtaskStatusRunning.CanTransitionTo(SubtaskStatusDone))
	assert.True(t, SubtaskStatusRunning.CanTransitionTo(SubtaskStatusFailed))

	// The retry edge.
	assert.True(t, SubtaskStatusFailed.CanTransitionTo(SubtaskStatusPending))

	assert.False(t, SubtaskStatusPending.CanTransitionTo(SubtaskStatusDone))
	assert.False(t, SubtaskStatusDone.CanTransitionTo(SubtaskStatusPending))
	assert.False(t, SubtaskStatusDone.CanTransitionTo(SubtaskStatusRunning))
}

func TestSubtaskBlockedIsTransient(t *testing.T) {
	assert.True(t, SubtaskStatusPending.CanTransitionTo(SubtaskStatusBlocked))
	assert.True(t, SubtaskStatusBlocked.CanTransitionTo(SubtaskStatusPending))
	assert.False(t, SubtaskStatusBlocked.CanTransitionTo(SubtaskStatusRunning))
}

func TestPlanProgress(t *testing.T) {
	plan := &Plan{Subtasks: []*Subtask{
		{ID: "a", Status: SubtaskStatusDone},
		{ID: "b", Status: SubtaskStatusDone},
		{ID: "c", Status: SubtaskStatusRunning},
		{ID: "d", Status: SubtaskStatusFailed},
		{ID: "e", Status: SubtaskStatusPending},
	}}

	done, failed, running, total := plan.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, running)
	assert.Equal(t, 5, total)
}

func TestSubtaskByID(t *testing.T) {
	plan := &Plan{Subtasks: []*Subtask{{ID: "a"}, {ID: "b"}}}
	assert.NotNil(t, plan.SubtaskByID("b"))
	assert.Nil(t, plan.SubtaskByID("z"))
}
