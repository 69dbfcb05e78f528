package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
)

// PlanStore persists plans and subtasks. Implemented by services.PlanService.
type PlanStore interface {
	GetPlan(ctx context.Context, planID string) (*models.Plan, error)
	UpdatePlanStatus(ctx context.Context, planID string, target models.PlanStatus, reason string) (*models.Plan, error)
	SetCurrentSubtask(ctx context.Context, planID, subtaskID string) error
	UpdateSubtaskStatus(ctx context.Context, subtaskID string, target models.SubtaskStatus, result, errText string) (*models.Subtask, error)
}

// ConversationStore persists conversation state. Implemented by
// services.ConversationService.
type ConversationStore interface {
	AppendMessage(ctx context.Context, req models.AppendMessageRequest) (*models.Message, error)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]*models.Message, error)
	CreateSubtaskSnapshot(ctx context.Context, conversationID, subtaskID string) (*models.Snapshot, error)
	GetSnapshotForSubtask(ctx context.Context, subtaskID string) (*models.Snapshot, error)
	RestoreFromSnapshot(ctx context.Context, snapshotID string, opts services.RestoreOptions) error
}

// AgentRegistry resolves agent types. Implemented by agent.Registry.
type AgentRegistry interface {
	Get(agentType string) (agent.Agent, error)
}

// ApprovalGate evaluates and records tool approvals. Implemented by
// approval.Manager.
type ApprovalGate interface {
	ShouldRequireApproval(kind models.ApprovalKind, subject string, arguments map[string]any) (bool, string)
	AddPending(ctx context.Context, req services.AddPendingRequest) (*models.PendingApproval, error)
	GetPending(ctx context.Context, requestID string) (*models.PendingApproval, error)
}

// SubtaskExecutionError reports an infrastructure failure around subtask
// execution: missing plan or subtask, wrong initial status, or an unknown
// agent. Agent-level failures inside the stream are not execution errors;
// they fail the subtask instead.
type SubtaskExecutionError struct {
	SubtaskID string
	Reason    string
}

func (e *SubtaskExecutionError) Error() string {
	return fmt.Sprintf("subtask %s: %s", e.SubtaskID, e.Reason)
}

// Outcome is the result of one executor call.
type Outcome int

const (
	// OutcomeDone: the subtask completed and was marked DONE.
	OutcomeDone Outcome = iota
	// OutcomeFailed: the subtask failed and was marked FAILED.
	OutcomeFailed
	// OutcomeSuspended: the agent requested a tool call; the subtask stays
	// RUNNING and the client must send a tool result to continue.
	OutcomeSuspended
)

// SubtaskExecutor runs a single subtask as a streaming producer, forwarding
// agent events downstream and handling the snapshot lifecycle.
type SubtaskExecutor struct {
	plans         PlanStore
	conversations ConversationStore
	agents        AgentRegistry
	approvals     ApprovalGate
	tools         []agent.ToolDefinition
	logger        *slog.Logger
}

// NewSubtaskExecutor creates a new SubtaskExecutor. tools is the static
// set of client-executed tools advertised to agents; it may be empty.
func NewSubtaskExecutor(plans PlanStore, conversations ConversationStore, agents AgentRegistry, approvals ApprovalGate, tools []agent.ToolDefinition, logger *slog.Logger) *SubtaskExecutor {
	return &SubtaskExecutor{
		plans:         plans,
		conversations: conversations,
		agents:        agents,
		approvals:     approvals,
		tools:         tools,
		logger:        logger,
	}
}

// Execute starts a PENDING subtask: snapshots the conversation, injects
// dependency results, runs the assigned agent and forwards its events.
func (e *SubtaskExecutor) Execute(ctx context.Context, planID, subtaskID, sessionID string, out chan<- models.StreamEvent) (Outcome, error) {
	plan, st, err := e.loadSubtask(ctx, planID, subtaskID)
	if err != nil {
		return OutcomeFailed, err
	}
	if st.Status != models.SubtaskStatusPending {
		return OutcomeFailed, &SubtaskExecutionError{
			SubtaskID: subtaskID,
			Reason:    fmt.Sprintf("expected status pending, got %s", st.Status),
		}
	}

	ag, err := e.agents.Get(st.AssignedAgentID)
	if err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}

	if _, err := e.conversations.CreateSubtaskSnapshot(ctx, plan.ConversationID, subtaskID); err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}

	// Dependency results become part of the conversation, not transient
	// context, so a tool-result continuation sees them too.
	if depContext := dependencyContext(plan, st); depContext != "" {
		if _, err := e.conversations.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID: sessionID,
			Role:      models.RoleSystem,
			Content:   depContext,
		}); err != nil {
			return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
		}
	}
	if _, err := e.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   st.Description,
	}); err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}

	if _, err := e.plans.UpdateSubtaskStatus(ctx, subtaskID, models.SubtaskStatusRunning, "", ""); err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}
	if err := e.plans.SetCurrentSubtask(ctx, planID, subtaskID); err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}

	return e.runAgent(ctx, ag, plan, st, sessionID, out)
}

// Continue resumes a RUNNING subtask after the client delivered a tool
// result. The tool message must already be appended to the conversation.
func (e *SubtaskExecutor) Continue(ctx context.Context, planID, subtaskID, sessionID string, out chan<- models.StreamEvent) (Outcome, error) {
	plan, st, err := e.loadSubtask(ctx, planID, subtaskID)
	if err != nil {
		return OutcomeFailed, err
	}
	if st.Status != models.SubtaskStatusRunning {
		return OutcomeFailed, &SubtaskExecutionError{
			SubtaskID: subtaskID,
			Reason:    fmt.Sprintf("expected status running, got %s", st.Status),
		}
	}

	ag, err := e.agents.Get(st.AssignedAgentID)
	if err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: err.Error()}
	}

	return e.runAgent(ctx, ag, plan, st, sessionID, out)
}

func (e *SubtaskExecutor) loadSubtask(ctx context.Context, planID, subtaskID string) (*models.Plan, *models.Subtask, error) {
	plan, err := e.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, nil, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: fmt.Sprintf("plan %s: %v", planID, err)}
	}
	st := plan.SubtaskByID(subtaskID)
	if st == nil {
		return nil, nil, &SubtaskExecutionError{SubtaskID: subtaskID, Reason: "subtask not found in plan"}
	}
	return plan, st, nil
}

// runAgent drives the agent stream to an outcome: completion, failure, or
// suspension on a tool call.
func (e *SubtaskExecutor) runAgent(ctx context.Context, ag agent.Agent, plan *models.Plan, st *models.Subtask, sessionID string, out chan<- models.StreamEvent) (Outcome, error) {
	history, err := e.conversations.GetHistory(ctx, sessionID, 0)
	if err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: st.ID, Reason: err.Error()}
	}

	agentEvents, err := ag.Process(ctx, &agent.ProcessInput{
		SessionID: sessionID,
		SubtaskID: st.ID,
		History:   derefMessages(history),
		Tools:     e.tools,
	})
	if err != nil {
		return e.failSubtask(ctx, plan, st, sessionID, truncateText(err.Error()), out)
	}

	var text strings.Builder
	for ev := range agentEvents {
		switch event := ev.(type) {
		case *agent.TokenEvent:
			text.WriteString(event.Content)
			if !emit(ctx, out, models.NewAssistantToken(event.Content, event.IsFinal, ag.Type())) {
				return OutcomeFailed, ctx.Err()
			}
			if event.IsFinal {
				return e.completeSubtask(ctx, plan, st, sessionID, text.String(), ag.Type(), out)
			}
		case *agent.ToolCallEvent:
			return e.suspendOnToolCall(ctx, st, sessionID, text.String(), event, out)
		case *agent.ErrorEvent:
			return e.failSubtask(ctx, plan, st, sessionID, truncateText(event.Message), out)
		case *agent.UsageEvent:
			// Token accounting is not surfaced on the stream.
		}
	}

	// Stream ended without a final marker; treat collected text as result.
	return e.completeSubtask(ctx, plan, st, sessionID, text.String(), ag.Type(), out)
}

// suspendOnToolCall persists the assistant's tool request, runs the
// approval policy, emits the matching stream event and leaves the subtask
// RUNNING.
func (e *SubtaskExecutor) suspendOnToolCall(ctx context.Context, st *models.Subtask, sessionID, collected string, call *agent.ToolCallEvent, out chan<- models.StreamEvent) (Outcome, error) {
	if _, err := e.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   collected,
		ToolCalls: []models.ToolCallRecord{{ID: call.CallID, Name: call.Name, Arguments: call.Arguments}},
	}); err != nil {
		return OutcomeFailed, &SubtaskExecutionError{SubtaskID: st.ID, Reason: err.Error()}
	}

	args := parseArguments(call.Arguments)
	requires, reason := e.approvals.ShouldRequireApproval(models.ApprovalKindTool, call.Name, args)
	if requires {
		if _, err := e.approvals.AddPending(ctx, services.AddPendingRequest{
			RequestID: call.CallID,
			Kind:      models.ApprovalKindTool,
			Subject:   call.Name,
			SessionID: sessionID,
			Details:   args,
			Reason:    reason,
		}); err != nil {
			return OutcomeFailed, &SubtaskExecutionError{SubtaskID: st.ID, Reason: err.Error()}
		}
		emit(ctx, out, models.NewToolApprovalRequired(call.CallID, call.Name, args, reason))
		return OutcomeSuspended, nil
	}

	emit(ctx, out, models.NewToolCall(call.CallID, call.Name, args, false))
	return OutcomeSuspended, nil
}

func (e *SubtaskExecutor) completeSubtask(ctx context.Context, plan *models.Plan, st *models.Subtask, sessionID, result, agentType string, out chan<- models.StreamEvent) (Outcome, error) {
	if _, err := e.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   result,
	}); err != nil {
		e.logger.Warn("failed to persist subtask result message",
			"subtask_id", st.ID, "error", err)
	}

	if err := e.markTerminal(ctx, st, models.SubtaskStatusDone, result, ""); err != nil {
		return OutcomeFailed, err
	}
	e.restoreSnapshot(ctx, st.ID)
	e.clearCurrent(ctx, plan.ID)

	emit(ctx, out, models.NewSubtaskCompleted(st.ID, result, agentType, sinceSeconds(st.StartedAt)))
	return OutcomeDone, nil
}

func (e *SubtaskExecutor) failSubtask(ctx context.Context, plan *models.Plan, st *models.Subtask, sessionID, errText string, out chan<- models.StreamEvent) (Outcome, error) {
	if err := e.markTerminal(ctx, st, models.SubtaskStatusFailed, "", errText); err != nil {
		return OutcomeFailed, err
	}
	e.restoreSnapshot(ctx, st.ID)
	e.clearCurrent(ctx, plan.ID)

	emit(ctx, out, models.NewError(errText, false))
	return OutcomeFailed, nil
}

// markTerminal writes the terminal status, skipping the write when the
// subtask already reached it (a reloaded error path may have raced us).
func (e *SubtaskExecutor) markTerminal(ctx context.Context, st *models.Subtask, target models.SubtaskStatus, result, errText string) error {
	_, err := e.plans.UpdateSubtaskStatus(ctx, st.ID, target, result, errText)
	if err != nil {
		return &SubtaskExecutionError{SubtaskID: st.ID, Reason: err.Error()}
	}
	return nil
}

// restoreSnapshot rewinds the conversation to the pre-subtask state,
// keeping the subtask's final result message. Failures are logged and
// swallowed; the result is already persisted on the subtask.
func (e *SubtaskExecutor) restoreSnapshot(ctx context.Context, subtaskID string) {
	snap, err := e.conversations.GetSnapshotForSubtask(ctx, subtaskID)
	if err != nil {
		e.logger.Warn("no snapshot to restore for subtask",
			"subtask_id", subtaskID, "error", err)
		return
	}
	if err := e.conversations.RestoreFromSnapshot(ctx, snap.ID, services.RestoreOptions{PreserveLastResult: true}); err != nil {
		e.logger.Warn("failed to restore conversation snapshot",
			"subtask_id", subtaskID, "snapshot_id", snap.ID, "error", err)
	}
}

func (e *SubtaskExecutor) clearCurrent(ctx context.Context, planID string) {
	if err := e.plans.SetCurrentSubtask(ctx, planID, ""); err != nil {
		e.logger.Warn("failed to clear current subtask", "plan_id", planID, "error", err)
	}
}

// dependencyContext renders completed dependency results under a
// deterministic header ordering (by dependency id).
func dependencyContext(plan *models.Plan, st *models.Subtask) string {
	if len(st.Dependencies) == 0 {
		return ""
	}
	deps := append([]string(nil), st.Dependencies...)
	sort.Strings(deps)

	var b strings.Builder
	b.WriteString("Results from completed dependencies:\n")
	for _, depID := range deps {
		dep := plan.SubtaskByID(depID)
		if dep == nil {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n%s\n", depID, dep.Result)
	}
	return b.String()
}

func parseArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return map[string]any{"_raw": raw}
	}
	return args
}

func derefMessages(msgs []*models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, *m)
	}
	return out
}

func emit(ctx context.Context, out chan<- models.StreamEvent, event models.StreamEvent) bool {
	select {
	case out <- event:
		return true
	case <-ctx.Done():
		return false
	}
}

func sinceSeconds(t *time.Time) float64 {
	if t == nil {
		return 0
	}
	return time.Since(*t).Seconds()
}

// truncateText caps error text at 500 bytes without splitting a rune.
func truncateText(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
