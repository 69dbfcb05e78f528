package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/maestro-ai/maestro/pkg/models"
)

// approvalPollInterval is how often the approval waiter re-checks pending
// approvals.
const approvalPollInterval = 500 * time.Millisecond

// ActivePlanStore extends PlanStore with session-scoped lookup.
// Implemented by services.PlanService.
type ActivePlanStore interface {
	PlanStore
	GetActivePlan(ctx context.Context, sessionID string) (*models.Plan, error)
}

// Engine executes approved plans one subtask per call. The streaming
// contract forces this shape: a tool call suspends the stream, the HTTP
// response completes, and the client's tool-result request re-enters the
// engine.
type Engine struct {
	plans     ActivePlanStore
	executor  *SubtaskExecutor
	approvals ApprovalGate
	dedup     *Deduplicator
	logger    *slog.Logger

	mu     sync.Mutex
	active map[string]struct{}

	// maxParallelTasks is reserved for a future parallel mode. Execution
	// is sequential while tool calls suspend the stream.
	maxParallelTasks int
}

// NewEngine creates a new Engine
func NewEngine(plans ActivePlanStore, executor *SubtaskExecutor, approvals ApprovalGate, dedup *Deduplicator, maxParallelTasks int, logger *slog.Logger) *Engine {
	if maxParallelTasks <= 0 {
		maxParallelTasks = 1
	}
	return &Engine{
		plans:            plans,
		executor:         executor,
		approvals:        approvals,
		dedup:            dedup,
		logger:           logger,
		active:           make(map[string]struct{}),
		maxParallelTasks: maxParallelTasks,
	}
}

// ExecutePlan advances the plan by at most one subtask, streaming events to
// out. It returns once the subtask reaches an outcome or the plan needs no
// further work this call.
func (e *Engine) ExecutePlan(ctx context.Context, planID, sessionID string, out chan<- models.StreamEvent) error {
	plan, err := e.plans.GetPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to load plan %s: %w", planID, err)
	}
	if plan.Status != models.PlanStatusApproved && plan.Status != models.PlanStatusInProgress {
		return fmt.Errorf("plan %s is %s, not executable", planID, plan.Status)
	}

	e.track(planID)

	if plan.Status == models.PlanStatusApproved {
		if plan, err = e.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusInProgress, ""); err != nil {
			return fmt.Errorf("failed to start plan %s: %w", planID, err)
		}
	}

	next := NextSubtask(plan)
	if next == nil {
		return e.finishIfComplete(ctx, plan, out)
	}

	done, _, _, total := plan.Progress()
	emit(ctx, out, models.NewStatus(
		fmt.Sprintf("Executing subtask: %s", next.Description),
		map[string]any{
			"subtask_id": next.ID,
			"progress":   fmt.Sprintf("%d/%d", done+1, total),
		}))

	outcome, err := e.executor.Execute(ctx, planID, next.ID, sessionID, out)
	return e.afterOutcome(ctx, planID, sessionID, outcome, err, out)
}

// HandleToolResult feeds a client tool result back into the engine.
// Returns false when no plan execution is waiting on it, so the caller can
// route it to the atomic path instead. Duplicate submissions within the
// dedup TTL are dropped silently.
func (e *Engine) HandleToolResult(ctx context.Context, sessionID, callID, result, errText string, out chan<- models.StreamEvent) (bool, error) {
	if e.dedup.Seen(sessionID, callID) {
		e.logger.Debug("dropping duplicate tool result",
			"session_id", sessionID, "call_id", callID)
		return true, nil
	}

	plan, err := e.plans.GetActivePlan(ctx, sessionID)
	if err != nil {
		return false, nil
	}
	if plan.CurrentSubtaskID == "" || plan.Status != models.PlanStatusInProgress {
		return false, nil
	}
	subtaskID := plan.CurrentSubtaskID

	content := result
	if errText != "" {
		content = "[Error] " + errText
	}
	if _, err := e.executor.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:  sessionID,
		Role:       models.RoleTool,
		Content:    content,
		ToolCallID: callID,
	}); err != nil {
		return true, fmt.Errorf("failed to append tool result: %w", err)
	}
	emit(ctx, out, models.NewToolResult(callID, result, errText))

	outcome, err := e.executor.Continue(ctx, plan.ID, subtaskID, sessionID, out)
	if err == nil && outcome == OutcomeDone {
		// The tool-result request advances to the next subtask, or
		// completes the plan if this was the last one.
		return true, e.ExecutePlan(ctx, plan.ID, sessionID, out)
	}
	return true, e.afterOutcome(ctx, plan.ID, sessionID, outcome, err, out)
}

// CancelExecution cancels a plan with a reason. COMPLETED plans cannot be
// cancelled.
func (e *Engine) CancelExecution(ctx context.Context, planID, reason string) error {
	plan, err := e.plans.GetPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to load plan %s: %w", planID, err)
	}
	if plan.Status == models.PlanStatusCompleted {
		return fmt.Errorf("plan %s is completed and cannot be cancelled", planID)
	}
	if _, err := e.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusCancelled, reason); err != nil {
		return err
	}
	e.release(planID)
	return nil
}

// WaitForApprovalResolution polls until every listed approval leaves
// pending, or the timeout expires. On timeout the plan is cancelled with
// the unresolved ids recorded.
func (e *Engine) WaitForApprovalResolution(ctx context.Context, planID, sessionID string, pendingIDs []string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(approvalPollInterval)
	defer ticker.Stop()

	for {
		unresolved := e.unresolvedApprovals(ctx, pendingIDs)
		if len(unresolved) == 0 {
			return nil
		}
		if time.Now().After(deadline) {
			reason := "approval timeout: unresolved " + strings.Join(unresolved, ", ")
			if err := e.CancelExecution(ctx, planID, reason); err != nil {
				e.logger.Warn("failed to cancel plan after approval timeout",
					"plan_id", planID, "error", err)
			}
			return fmt.Errorf("approval resolution timed out for plan %s: %s", planID, reason)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (e *Engine) unresolvedApprovals(ctx context.Context, pendingIDs []string) []string {
	var unresolved []string
	for _, id := range pendingIDs {
		pa, err := e.approvals.GetPending(ctx, id)
		if err != nil || pa.Status == models.ApprovalStatusPending {
			unresolved = append(unresolved, id)
		}
	}
	return unresolved
}

// afterOutcome applies plan-level consequences of a subtask outcome.
func (e *Engine) afterOutcome(ctx context.Context, planID, sessionID string, outcome Outcome, err error, out chan<- models.StreamEvent) error {
	if err != nil {
		// Executor-level exception: fail the plan and end the stream with
		// a terminal error.
		if _, failErr := e.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusFailed, err.Error()); failErr != nil {
			e.logger.Error("failed to mark plan failed", "plan_id", planID, "error", failErr)
		}
		e.release(planID)
		emit(ctx, out, models.NewError(err.Error(), true))
		return err
	}

	switch outcome {
	case OutcomeSuspended:
		// Stream ends here; the client's tool result re-enters the engine.
		return nil
	case OutcomeFailed:
		plan, loadErr := e.plans.GetPlan(ctx, planID)
		reason := "subtask failed"
		if loadErr == nil {
			for _, st := range plan.Subtasks {
				if st.Status == models.SubtaskStatusFailed && st.Error != "" {
					reason = st.Error
				}
			}
		}
		if _, failErr := e.plans.UpdatePlanStatus(ctx, planID, models.PlanStatusFailed, reason); failErr != nil {
			e.logger.Error("failed to mark plan failed", "plan_id", planID, "error", failErr)
		}
		e.release(planID)
		return nil
	case OutcomeDone:
		plan, loadErr := e.plans.GetPlan(ctx, planID)
		if loadErr != nil {
			return loadErr
		}
		return e.finishIfComplete(ctx, plan, out)
	}
	return nil
}

// finishIfComplete completes the plan when every subtask is DONE. With
// RUNNING or FAILED subtasks outstanding, the call returns without a
// transition; the client advances them via tool results or replanning.
func (e *Engine) finishIfComplete(ctx context.Context, plan *models.Plan, out chan<- models.StreamEvent) error {
	done, failed, _, total := plan.Progress()
	if done != total || failed != 0 {
		return nil
	}

	if _, err := e.plans.UpdatePlanStatus(ctx, plan.ID, models.PlanStatusCompleted, ""); err != nil {
		return fmt.Errorf("failed to complete plan %s: %w", plan.ID, err)
	}
	e.release(plan.ID)

	emit(ctx, out, models.NewExecutionCompleted(
		plan.ID,
		string(models.PlanStatusCompleted),
		fmt.Sprintf("%d/%d", done, total),
		sinceSeconds(plan.StartedAt)))
	return nil
}

func (e *Engine) track(planID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active[planID] = struct{}{}
}

func (e *Engine) release(planID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, planID)
}

// IsExecuting reports whether the engine holds state for the plan.
func (e *Engine) IsExecuting(planID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, exists := e.active[planID]
	return exists
}
