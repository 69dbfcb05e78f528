// Package models contains domain enums and data transfer types shared
// across the runtime: plan/subtask state, conversation messages, stream
// event payloads, and the client message envelope.
package models

import "time"

// PlanStatus represents the lifecycle state of an execution plan.
type PlanStatus string

// Plan status values.
const (
	PlanStatusDraft      PlanStatus = "draft"
	PlanStatusApproved   PlanStatus = "approved"
	PlanStatusInProgress PlanStatus = "in_progress"
	PlanStatusCompleted  PlanStatus = "completed"
	PlanStatusFailed     PlanStatus = "failed"
	PlanStatusCancelled  PlanStatus = "cancelled"
)

// IsTerminal reports whether the status is final. Terminal plans are
// frozen: no further status or subtask mutation is allowed.
func (s PlanStatus) IsTerminal() bool {
	switch s {
	case PlanStatusCompleted, PlanStatusFailed, PlanStatusCancelled:
		return true
	}
	return false
}

// planTransitions is the canonical set of allowed plan status transitions.
var planTransitions = map[PlanStatus][]PlanStatus{
	PlanStatusDraft:      {PlanStatusApproved, PlanStatusCancelled},
	PlanStatusApproved:   {PlanStatusInProgress, PlanStatusCancelled},
	PlanStatusInProgress: {PlanStatusCompleted, PlanStatusFailed, PlanStatusCancelled},
}

// CanTransitionTo reports whether a transition from s to target is allowed.
func (s PlanStatus) CanTransitionTo(target PlanStatus) bool {
	for _, t := range planTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// SubtaskStatus represents the lifecycle state of a subtask.
type SubtaskStatus string

// Subtask status values.
const (
	SubtaskStatusPending SubtaskStatus = "pending"
	SubtaskStatusBlocked SubtaskStatus = "blocked"
	SubtaskStatusRunning SubtaskStatus = "running"
	SubtaskStatusDone    SubtaskStatus = "done"
	SubtaskStatusFailed  SubtaskStatus = "failed"
)

// IsTerminal reports whether the subtask reached a final state.
// FAILED is terminal for the current attempt; a retry resets it to PENDING.
func (s SubtaskStatus) IsTerminal() bool {
	return s == SubtaskStatusDone || s == SubtaskStatusFailed
}

// CanTransitionTo enforces PENDING→RUNNING→{DONE,FAILED} with the single
// retry edge FAILED→PENDING. BLOCKED is a transient annotation and may
// flip to/from PENDING freely.
func (s SubtaskStatus) CanTransitionTo(target SubtaskStatus) bool {
	switch s {
	case SubtaskStatusPending:
		return target == SubtaskStatusRunning || target == SubtaskStatusBlocked
	case SubtaskStatusBlocked:
		return target == SubtaskStatusPending
	case SubtaskStatusRunning:
		return target == SubtaskStatusDone || target == SubtaskStatusFailed
	case SubtaskStatusFailed:
		return target == SubtaskStatusPending
	}
	return false
}

// Subtask is the domain view of a plan subtask.
type Subtask struct {
	ID              string        `json:"id"`
	PlanID          string        `json:"plan_id"`
	Description     string        `json:"description"`
	AssignedAgentID string        `json:"assigned_agent_id"`
	Dependencies    []string      `json:"dependencies,omitempty"`
	Status          SubtaskStatus `json:"status"`
	Result          string        `json:"result,omitempty"`
	Error           string        `json:"error,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	StartedAt       *time.Time    `json:"started_at,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
}

// Plan is the domain view of an execution plan with its subtasks.
type Plan struct {
	ID               string         `json:"id"`
	SessionID        string         `json:"session_id"`
	ConversationID   string         `json:"conversation_id"`
	Goal             string         `json:"goal"`
	Status           PlanStatus     `json:"status"`
	Subtasks         []*Subtask     `json:"subtasks"`
	CurrentSubtaskID string         `json:"current_subtask_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	ApprovedAt       *time.Time     `json:"approved_at,omitempty"`
	StartedAt        *time.Time     `json:"started_at,omitempty"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
}

// SubtaskByID returns the subtask with the given ID, or nil.
func (p *Plan) SubtaskByID(id string) *Subtask {
	for _, st := range p.Subtasks {
		if st.ID == id {
			return st
		}
	}
	return nil
}

// Progress reports (done, failed, running, total) subtask counts.
func (p *Plan) Progress() (done, failed, running, total int) {
	total = len(p.Subtasks)
	for _, st := range p.Subtasks {
		switch st.Status {
		case SubtaskStatusDone:
			done++
		case SubtaskStatusFailed:
			failed++
		case SubtaskStatusRunning:
			running++
		}
	}
	return done, failed, running, total
}

// PlanDraft is a proposed plan from the architect, before persistence.
type PlanDraft struct {
	Goal     string         `json:"goal"`
	Subtasks []SubtaskDraft `json:"subtasks"`
}

// SubtaskDraft is a proposed subtask inside a PlanDraft.
type SubtaskDraft struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	Agent        string   `json:"agent"`
	Dependencies []string `json:"dependencies,omitempty"`
}
