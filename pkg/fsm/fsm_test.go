package fsm

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		event EventType
		want  State
		ok    bool
	}{
		{"message starts classification", StateIdle, EventReceiveMessage, StateClassify, true},
		{"atomic goes to execution", StateClassify, EventIsAtomicTrue, StateExecution, true},
		{"compound requires plan", StateClassify, EventIsAtomicFalse, StatePlanRequired, true},
		{"classifier failure", StateClassify, EventClassifyError, StateErrorHandling, true},
		{"route to architect", StatePlanRequired, EventRouteToArchitect, StateArchitectPlanning, true},
		{"plan created", StateArchitectPlanning, EventPlanCreated, StatePlanReview, true},
		{"planning failure", StateArchitectPlanning, EventPlanningError, StateErrorHandling, true},
		{"plan approved", StatePlanReview, EventPlanApproved, StatePlanExecution, true},
		{"plan rejected closes episode", StatePlanReview, EventPlanRejected, StateIdle, true},
		{"plan modification replans", StatePlanReview, EventPlanModification, StateArchitectPlanning, true},
		{"plan execution completes", StatePlanExecution, EventPlanExecCompleted, StateCompleted, true},
		{"plan execution fails", StatePlanExecution, EventPlanExecFailed, StateErrorHandling, true},
		{"atomic completion", StateExecution, EventAllSubtasksDone, StateCompleted, true},
		{"atomic failure", StateExecution, EventSubtaskFailed, StateErrorHandling, true},
		{"error retry", StateErrorHandling, EventRetrySubtask, StateExecution, true},
		{"error replanning", StateErrorHandling, EventRequiresReplanning, StateArchitectPlanning, true},
		{"error episode closed", StateErrorHandling, EventPlanCancelled, StateCompleted, true},
		{"completed resets", StateCompleted, EventReset, StateIdle, true},

		{"no planning from idle", StateIdle, EventPlanCreated, "", false},
		{"no approval outside review", StateExecution, EventPlanApproved, "", false},
		{"completed accepts only reset", StateCompleted, EventReceiveMessage, "", false},
		{"no reset mid-execution", StatePlanExecution, EventReset, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidateTransition(tt.from, tt.event)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOrchestratorTransition(t *testing.T) {
	o := NewOrchestrator(nil, slog.Default())

	assert.Equal(t, StateIdle, o.CurrentState("s1"))

	state, err := o.Transition(context.Background(), "s1", EventReceiveMessage, nil)
	require.NoError(t, err)
	assert.Equal(t, StateClassify, state)
	assert.Equal(t, StateClassify, o.CurrentState("s1"))

	// Other sessions are unaffected.
	assert.Equal(t, StateIdle, o.CurrentState("s2"))
}

func TestOrchestratorInvalidTransition(t *testing.T) {
	o := NewOrchestrator(nil, slog.Default())

	_, err := o.Transition(context.Background(), "s1", EventPlanApproved, nil)
	require.Error(t, err)

	var ite *InvalidTransitionError
	require.True(t, errors.As(err, &ite))
	assert.Equal(t, "s1", ite.SessionID)
	assert.Equal(t, StateIdle, ite.From)
	assert.Equal(t, EventPlanApproved, ite.Event)

	// State unchanged after a rejected event.
	assert.Equal(t, StateIdle, o.CurrentState("s1"))
}

type recordingPersister struct {
	saved []State
	err   error
}

func (p *recordingPersister) SaveState(_ context.Context, _ string, state State) error {
	p.saved = append(p.saved, state)
	return p.err
}

func TestOrchestratorPersistsTransitions(t *testing.T) {
	p := &recordingPersister{}
	o := NewOrchestrator(p, slog.Default())

	_, err := o.Transition(context.Background(), "s1", EventReceiveMessage, nil)
	require.NoError(t, err)
	_, err = o.Transition(context.Background(), "s1", EventIsAtomicTrue, nil)
	require.NoError(t, err)

	assert.Equal(t, []State{StateClassify, StateExecution}, p.saved)
}

func TestOrchestratorPersistFailureDoesNotBlock(t *testing.T) {
	p := &recordingPersister{err: errors.New("db down")}
	o := NewOrchestrator(p, slog.Default())

	state, err := o.Transition(context.Background(), "s1", EventReceiveMessage, nil)
	require.NoError(t, err)
	assert.Equal(t, StateClassify, state)
}

func TestOrchestratorRestoreAndForget(t *testing.T) {
	o := NewOrchestrator(nil, slog.Default())

	o.Restore("s1", StatePlanReview)
	assert.Equal(t, StatePlanReview, o.CurrentState("s1"))

	o.Forget("s1")
	assert.Equal(t, StateIdle, o.CurrentState("s1"))
}
