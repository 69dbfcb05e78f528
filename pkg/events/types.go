// Package events provides the in-process domain event bus, runtime metrics
// collection, and the audit log. Domain events fan out to in-memory
// subscribers for observability; audited event types are also persisted so
// they survive restarts.
package events

import "time"

// Domain event types.
const (
	// Approval lifecycle
	EventTypeApprovalRequested = "approval.requested"
	EventTypeApprovalResolved  = "approval.resolved"

	// Plan lifecycle
	EventTypePlanCreated   = "plan.created"
	EventTypePlanStatus    = "plan.status"
	EventTypeSubtaskStatus = "subtask.status"

	// Session activity
	EventTypeMessageProcessed = "session.message_processed"
	EventTypeAgentSwitched    = "session.agent_switched"
	EventTypeStateTransition  = "session.state_transition"

	// Execution outcomes
	EventTypeExecutionCompleted = "execution.completed"
	EventTypeExecutionCancelled = "execution.cancelled"
)

// Event is a domain event published on the bus.
type Event struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Payload   map[string]any `json:"payload,omitempty"`
	At        time.Time      `json:"at"`
}

// SessionChannel returns the bus channel for a session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// AllChannel receives every published event, regardless of session.
const AllChannel = "all"
