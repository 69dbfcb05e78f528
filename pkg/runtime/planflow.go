package runtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/pkg/engine"
	"github.com/maestro-ai/maestro/pkg/events"
	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
)

// runPlanning asks the architect for a plan, persists it, and either
// requests human approval or starts executing right away when the policy
// waives the review.
func (c *Coordinator) runPlanning(ctx context.Context, sessionID, goal, feedback string, out chan<- models.StreamEvent) {
	c.emit(ctx, out, models.NewStatus("Creating execution plan...", nil))

	conv, _, err := c.conversations.GetOrCreate(ctx, sessionID)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, fmt.Sprintf("failed to load conversation: %v", err), out)
		return
	}
	history, err := c.conversations.GetHistory(ctx, sessionID, 0)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, fmt.Sprintf("failed to load history: %v", err), out)
		return
	}

	draft, err := c.architect.Propose(ctx, sessionID, goal, derefMessages(history), feedback)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, err.Error(), out)
		return
	}

	plan, err := c.plans.CreatePlan(ctx, sessionID, conv.ID, *draft)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, fmt.Sprintf("failed to persist plan: %v", err), out)
		return
	}

	// The architect can produce dependency references the draft validation
	// does not catch until the plan is assembled.
	if errs := engine.Validate(plan); len(errs) > 0 {
		if cancelErr := c.engine.CancelExecution(ctx, plan.ID, "invalid plan"); cancelErr != nil {
			c.logger.Warn("failed to cancel invalid plan",
				"plan_id", plan.ID, "error", cancelErr)
		}
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, fmt.Sprintf("architect produced an invalid plan: %v", errs[0]), out)
		return
	}

	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanCreated, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	c.audit.Record(ctx, sessionID, events.EventTypePlanCreated, map[string]any{
		"plan_id":  plan.ID,
		"goal":     plan.Goal,
		"subtasks": len(plan.Subtasks),
	})

	required, reason := c.approvals.PlanApprovalRequired(plan.Goal, map[string]any{
		"subtasks_count": len(plan.Subtasks),
	})
	if !required {
		c.startApprovedPlan(ctx, sessionID, plan, out)
		return
	}

	pa, err := c.approvals.AddPending(ctx, services.AddPendingRequest{
		RequestID: uuid.New().String(),
		Kind:      models.ApprovalKindPlan,
		Subject:   plan.ID,
		SessionID: sessionID,
		Details:   planDetails(plan),
		Reason:    reason,
	})
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventPlanningError, fmt.Sprintf("failed to record plan approval: %v", err), out)
		return
	}
	c.emit(ctx, out, models.NewPlanApprovalRequired(pa.RequestID, plan.ID, planSummary(plan)))
}

// handlePlanDecision resolves a pending plan approval: approve starts
// execution, reject cancels, modify sends the goal back to the architect
// with the user's feedback.
func (c *Coordinator) handlePlanDecision(ctx context.Context, sessionID string, ac *services.AgentContextRecord, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	pa, err := c.approvals.GetPending(ctx, msg.ApprovalRequestID)
	if err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("approval request %s not found", msg.ApprovalRequestID), true))
		return
	}
	if pa.Kind != models.ApprovalKindPlan {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("approval request %s is not a plan approval", msg.ApprovalRequestID), true))
		return
	}

	plan, err := c.plans.GetPlan(ctx, pa.Subject)
	if err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("plan %s not found", pa.Subject), true))
		return
	}

	switch msg.Decision {
	case models.DecisionApprove:
		if _, err := c.approvals.Approve(ctx, pa.RequestID, msg.Feedback); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		c.startApprovedPlan(ctx, sessionID, plan, out)

	case models.DecisionReject:
		if _, err := c.approvals.Reject(ctx, pa.RequestID, msg.Feedback); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		if _, err := c.plans.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCancelled, "rejected by user"); err != nil {
			c.logger.Warn("failed to cancel rejected plan",
				"plan_id", plan.ID, "error", err)
		}
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanRejected, nil); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		c.emit(ctx, out, models.NewPlanExecutionRejected(plan.ID))

	case models.DecisionModify:
		if _, err := c.approvals.Reject(ctx, pa.RequestID, msg.Feedback); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		if _, err := c.plans.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCancelled, "superseded by revised plan"); err != nil {
			c.logger.Warn("failed to cancel superseded plan",
				"plan_id", plan.ID, "error", err)
		}
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanModification, nil); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		c.runPlanning(ctx, sessionID, plan.Goal, msg.Feedback, out)
	}
}

// startApprovedPlan moves the plan to approved, starts the engine, and
// settles the state machine from wherever execution left off.
func (c *Coordinator) startApprovedPlan(ctx context.Context, sessionID string, plan *models.Plan, out chan<- models.StreamEvent) {
	if plan.Status == models.PlanStatusDraft {
		if _, err := c.plans.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusApproved, ""); err != nil {
			c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to approve plan: %v", err), true))
			return
		}
	}
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanApproved, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	c.emit(ctx, out, models.NewPlanExecutionStarted(plan.ID))

	if err := c.engine.ExecutePlan(ctx, plan.ID, sessionID, out); err != nil {
		c.logger.Error("plan execution failed",
			"session_id", sessionID, "plan_id", plan.ID, "error", err)
	}
	c.settlePlanOutcome(ctx, sessionID, out)
}

// continueActivePlan advances the session's plan when a client message
// arrives mid-execution. A subtask that completes without suspending on a
// tool call ends its stream; the client's next request is the signal to run
// the next subtask. Returns false when the session is not executing a plan,
// so the caller routes the message normally.
func (c *Coordinator) continueActivePlan(ctx context.Context, sessionID string, out chan<- models.StreamEvent) bool {
	if c.machine.CurrentState(sessionID) != fsm.StatePlanExecution {
		return false
	}
	plan, err := c.plans.GetActivePlan(ctx, sessionID)
	if err != nil {
		return false
	}
	if plan.Status != models.PlanStatusInProgress && plan.Status != models.PlanStatusApproved {
		return false
	}

	if err := c.engine.ExecutePlan(ctx, plan.ID, sessionID, out); err != nil {
		c.logger.Error("plan continuation failed",
			"session_id", sessionID, "plan_id", plan.ID, "error", err)
	}
	c.settlePlanOutcome(ctx, sessionID, out)
	return true
}

// settlePlanOutcome aligns the state machine with the plan's status after
// an engine call returns. A still in-progress plan means the stream is
// suspended on a tool call and the session stays in PLAN_EXECUTION.
func (c *Coordinator) settlePlanOutcome(ctx context.Context, sessionID string, out chan<- models.StreamEvent) {
	if c.machine.CurrentState(sessionID) != fsm.StatePlanExecution {
		return
	}

	plan, err := c.plans.GetLatestPlan(ctx, sessionID)
	if err != nil {
		c.logger.Warn("failed to load plan while settling state",
			"session_id", sessionID, "error", err)
		return
	}

	switch plan.Status {
	case models.PlanStatusCompleted:
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanExecCompleted, nil); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
		}
	case models.PlanStatusFailed, models.PlanStatusCancelled:
		// The engine already streamed the terminal error; close the episode
		// so the next message starts clean.
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanExecFailed, nil); err != nil {
			c.logger.Warn("failed to enter error handling",
				"session_id", sessionID, "error", err)
			return
		}
		if _, err := c.machine.Transition(ctx, sessionID, fsm.EventPlanCancelled, nil); err != nil {
			c.logger.Warn("failed to close error episode",
				"session_id", sessionID, "error", err)
		}
	}
}

func planSummary(plan *models.Plan) models.PlanSummary {
	descriptions := make([]string, 0, len(plan.Subtasks))
	for _, st := range plan.Subtasks {
		descriptions = append(descriptions, st.Description)
	}
	return models.PlanSummary{
		Goal:          plan.Goal,
		SubtasksCount: len(plan.Subtasks),
		Subtasks:      descriptions,
	}
}

func planDetails(plan *models.Plan) map[string]any {
	subtasks := make([]map[string]any, 0, len(plan.Subtasks))
	for _, st := range plan.Subtasks {
		subtasks = append(subtasks, map[string]any{
			"id":          st.ID,
			"description": st.Description,
			"agent":       st.AssignedAgentID,
		})
	}
	return map[string]any{
		"goal":     plan.Goal,
		"subtasks": subtasks,
	}
}
