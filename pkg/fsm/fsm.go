// Package fsm implements the per-session conversation state machine. Every
// session owns one state machine context; the transition table is the single
// source of truth for which processing steps may follow which.
package fsm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// State is a conversation processing state.
type State string

// Conversation states.
const (
	StateIdle              State = "IDLE"
	StateClassify          State = "CLASSIFY"
	StateExecution         State = "EXECUTION"
	StatePlanRequired      State = "PLAN_REQUIRED"
	StateArchitectPlanning State = "ARCHITECT_PLANNING"
	StatePlanReview        State = "PLAN_REVIEW"
	StatePlanExecution     State = "PLAN_EXECUTION"
	StateErrorHandling     State = "ERROR_HANDLING"
	StateCompleted         State = "COMPLETED"
)

// EventType triggers a state transition.
type EventType string

// Transition events.
const (
	EventReceiveMessage     EventType = "RECEIVE_MESSAGE"
	EventIsAtomicTrue       EventType = "IS_ATOMIC_TRUE"
	EventIsAtomicFalse      EventType = "IS_ATOMIC_FALSE"
	EventClassifyError      EventType = "CLASSIFY_ERROR"
	EventRouteToArchitect   EventType = "ROUTE_TO_ARCHITECT"
	EventPlanCreated        EventType = "PLAN_CREATED"
	EventPlanningError      EventType = "PLANNING_ERROR"
	EventPlanApproved       EventType = "PLAN_APPROVED"
	EventPlanRejected       EventType = "PLAN_REJECTED"
	EventPlanModification   EventType = "PLAN_MODIFICATION_REQUESTED"
	EventPlanExecCompleted  EventType = "PLAN_EXECUTION_COMPLETED"
	EventPlanExecFailed     EventType = "PLAN_EXECUTION_FAILED"
	EventAllSubtasksDone    EventType = "ALL_SUBTASKS_DONE"
	EventSubtaskFailed      EventType = "SUBTASK_FAILED"
	EventRetrySubtask       EventType = "RETRY_SUBTASK"
	EventRequiresReplanning EventType = "REQUIRES_REPLANNING"
	EventPlanCancelled      EventType = "PLAN_CANCELLED"
	EventReset              EventType = "RESET"
)

// transitions is the canonical table. Any (state, event) pair not listed
// here is invalid.
var transitions = map[State]map[EventType]State{
	StateIdle: {
		EventReceiveMessage: StateClassify,
	},
	StateClassify: {
		EventIsAtomicTrue:  StateExecution,
		EventIsAtomicFalse: StatePlanRequired,
		EventClassifyError: StateErrorHandling,
	},
	StatePlanRequired: {
		EventRouteToArchitect: StateArchitectPlanning,
	},
	StateArchitectPlanning: {
		EventPlanCreated:   StatePlanReview,
		EventPlanningError: StateErrorHandling,
	},
	StatePlanReview: {
		EventPlanApproved:     StatePlanExecution,
		EventPlanRejected:     StateIdle,
		EventPlanModification: StateArchitectPlanning,
	},
	StatePlanExecution: {
		EventPlanExecCompleted: StateCompleted,
		EventPlanExecFailed:    StateErrorHandling,
	},
	StateExecution: {
		EventAllSubtasksDone: StateCompleted,
		EventSubtaskFailed:   StateErrorHandling,
	},
	StateErrorHandling: {
		EventRetrySubtask:       StateExecution,
		EventRequiresReplanning: StateArchitectPlanning,
		EventPlanCancelled:      StateCompleted,
	},
	StateCompleted: {
		EventReset: StateIdle,
	},
}

// InvalidTransitionError reports a (state, event) pair outside the table.
type InvalidTransitionError struct {
	SessionID string
	From      State
	Event     EventType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition for session %s: state %s does not accept event %s",
		e.SessionID, e.From, e.Event)
}

// ValidateTransition reports whether the event is accepted in the given
// state. Pure; no context is touched.
func ValidateTransition(from State, event EventType) (State, bool) {
	to, ok := transitions[from][event]
	return to, ok
}

// StatePersister saves a session's state after each transition so contexts
// survive restarts. Implementations must tolerate being called often.
type StatePersister interface {
	SaveState(ctx context.Context, sessionID string, state State) error
}

// SessionContext is the per-session machine state.
type SessionContext struct {
	SessionID string
	State     State
	UpdatedAt time.Time
	Metadata  map[string]any
}

// Orchestrator owns the per-session state machine contexts. Contexts are
// created on demand in IDLE.
type Orchestrator struct {
	mu        sync.RWMutex
	contexts  map[string]*SessionContext
	persister StatePersister
	logger    *slog.Logger
}

// NewOrchestrator creates a new Orchestrator. The persister may be nil.
func NewOrchestrator(persister StatePersister, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		contexts:  make(map[string]*SessionContext),
		persister: persister,
		logger:    logger,
	}
}

// CurrentState returns the session's state, creating the context in IDLE
// if it does not exist yet.
func (o *Orchestrator) CurrentState(sessionID string) State {
	return o.getOrCreate(sessionID).State
}

// Transition applies the event to the session's state machine. Returns the
// new state, or an InvalidTransitionError without changing state.
func (o *Orchestrator) Transition(ctx context.Context, sessionID string, event EventType, metadata map[string]any) (State, error) {
	o.mu.Lock()
	sc, exists := o.contexts[sessionID]
	if !exists {
		sc = &SessionContext{SessionID: sessionID, State: StateIdle, UpdatedAt: time.Now()}
		o.contexts[sessionID] = sc
	}

	to, ok := transitions[sc.State][event]
	if !ok {
		from := sc.State
		o.mu.Unlock()
		return from, &InvalidTransitionError{SessionID: sessionID, From: from, Event: event}
	}

	from := sc.State
	sc.State = to
	sc.UpdatedAt = time.Now()
	for k, v := range metadata {
		if sc.Metadata == nil {
			sc.Metadata = make(map[string]any)
		}
		sc.Metadata[k] = v
	}
	o.mu.Unlock()

	o.logger.Debug("state transition",
		"session_id", sessionID, "from", from, "event", event, "to", to)

	if o.persister != nil {
		if err := o.persister.SaveState(ctx, sessionID, to); err != nil {
			o.logger.Warn("failed to persist session state",
				"session_id", sessionID, "state", to, "error", err)
		}
	}
	return to, nil
}

// Restore seeds a session context with a previously persisted state,
// overwriting any in-memory state.
func (o *Orchestrator) Restore(sessionID string, state State) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.contexts[sessionID] = &SessionContext{
		SessionID: sessionID,
		State:     state,
		UpdatedAt: time.Now(),
	}
}

// Forget drops the session's context. Used by TTL cleanup.
func (o *Orchestrator) Forget(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.contexts, sessionID)
}

func (o *Orchestrator) getOrCreate(sessionID string) *SessionContext {
	o.mu.RLock()
	sc, exists := o.contexts[sessionID]
	o.mu.RUnlock()
	if exists {
		return sc
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if sc, exists = o.contexts[sessionID]; exists {
		return sc
	}
	sc = &SessionContext{SessionID: sessionID, State: StateIdle, UpdatedAt: time.Now()}
	o.contexts[sessionID] = sc
	return sc
}
