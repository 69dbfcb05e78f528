package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maestro-ai/maestro/pkg/agent"
	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/models"
	"github.com/maestro-ai/maestro/pkg/services"
)

// runAtomicAgent streams a specialist's response to the conversation as it
// stands. The user message must already be appended. A tool call suspends
// the stream; completion closes the episode.
func (c *Coordinator) runAtomicAgent(ctx context.Context, sessionID, agentType string, out chan<- models.StreamEvent) {
	ag, err := c.registry.Get(agentType)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventSubtaskFailed, err.Error(), out)
		return
	}

	history, err := c.conversations.GetHistory(ctx, sessionID, 0)
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventSubtaskFailed, err.Error(), out)
		return
	}

	agentEvents, err := ag.Process(ctx, &agent.ProcessInput{
		SessionID: sessionID,
		History:   derefMessages(history),
		Tools:     c.tools,
	})
	if err != nil {
		c.failTerminal(ctx, sessionID, fsm.EventSubtaskFailed, err.Error(), out)
		return
	}

	var text strings.Builder
	for ev := range agentEvents {
		switch event := ev.(type) {
		case *agent.TokenEvent:
			text.WriteString(event.Content)
			c.emit(ctx, out, models.NewAssistantToken(event.Content, event.IsFinal, agentType))
			if event.IsFinal {
				c.completeAtomic(ctx, sessionID, text.String(), out)
				return
			}
		case *agent.ToolCallEvent:
			c.suspendAtomicToolCall(ctx, sessionID, text.String(), event, out)
			return
		case *agent.ErrorEvent:
			c.failTerminal(ctx, sessionID, fsm.EventSubtaskFailed, event.Message, out)
			return
		}
	}

	c.completeAtomic(ctx, sessionID, text.String(), out)
}

func (c *Coordinator) completeAtomic(ctx context.Context, sessionID, result string, out chan<- models.StreamEvent) {
	if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   result,
	}); err != nil {
		c.logger.Warn("failed to persist assistant message",
			"session_id", sessionID, "error", err)
	}
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventAllSubtasksDone, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
	}
}

// suspendAtomicToolCall persists the tool request, runs the approval
// policy, and ends the stream. The state machine stays in EXECUTION until
// the tool result arrives.
func (c *Coordinator) suspendAtomicToolCall(ctx context.Context, sessionID, collected string, call *agent.ToolCallEvent, out chan<- models.StreamEvent) {
	if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleAssistant,
		Content:   collected,
		ToolCalls: []models.ToolCallRecord{{ID: call.CallID, Name: call.Name, Arguments: call.Arguments}},
	}); err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record tool call: %v", err), true))
		return
	}

	args := parseArguments(call.Arguments)
	requires, reason := c.approvals.ShouldRequireApproval(models.ApprovalKindTool, call.Name, args)
	if requires {
		if _, err := c.approvals.AddPending(ctx, services.AddPendingRequest{
			RequestID: call.CallID,
			Kind:      models.ApprovalKindTool,
			Subject:   call.Name,
			SessionID: sessionID,
			Details:   args,
			Reason:    reason,
		}); err != nil {
			c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record approval request: %v", err), true))
			return
		}
		c.emit(ctx, out, models.NewToolApprovalRequired(call.CallID, call.Name, args, reason))
		return
	}
	c.emit(ctx, out, models.NewToolCall(call.CallID, call.Name, args, false))
}

// handleToolResult resumes whichever execution is waiting on the call: a
// plan subtask via the engine, or the atomic path.
func (c *Coordinator) handleToolResult(ctx context.Context, sessionID string, ac *services.AgentContextRecord, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	handled, err := c.engine.HandleToolResult(ctx, sessionID, msg.CallID, msg.Result, msg.Error, out)
	if err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	if handled {
		c.settlePlanOutcome(ctx, sessionID, out)
		return
	}

	// No subtask was waiting on the call. If a plan is still running, the
	// result is a stray continue signal; advance the plan instead.
	if c.continueActivePlan(ctx, sessionID, out) {
		return
	}

	if c.machine.CurrentState(sessionID) != fsm.StateExecution {
		c.emit(ctx, out, models.NewError("no pending tool call for this session", true))
		return
	}

	content := msg.Result
	if msg.Error != "" {
		content = "[Error] " + msg.Error
	}
	if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID:  sessionID,
		Role:       models.RoleTool,
		Content:    content,
		ToolCallID: msg.CallID,
	}); err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record tool result: %v", err), true))
		return
	}
	c.emit(ctx, out, models.NewToolResult(msg.CallID, msg.Result, msg.Error))

	c.runAtomicAgent(ctx, sessionID, ac.ActiveAgent, out)
}

// handleSwitchAgent changes the active agent, optionally processing a
// message with it in the same stream.
func (c *Coordinator) handleSwitchAgent(ctx context.Context, sessionID string, ac *services.AgentContextRecord, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	if _, err := c.registry.Get(msg.AgentType); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	if msg.AgentType == agent.TypeArchitect || msg.AgentType == agent.TypeOrchestrator {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("cannot switch to %s", msg.AgentType), true))
		return
	}

	c.switchActiveAgent(ctx, sessionID, ac, msg.AgentType, "requested by user", out)

	if msg.Content == "" {
		return
	}
	if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
		SessionID: sessionID,
		Role:      models.RoleUser,
		Content:   msg.Content,
	}); err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record message: %v", err), true))
		return
	}
	// The user picked the agent; classification is skipped.
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventReceiveMessage, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	if _, err := c.machine.Transition(ctx, sessionID, fsm.EventIsAtomicTrue, nil); err != nil {
		c.emit(ctx, out, models.NewError(err.Error(), true))
		return
	}
	c.runAtomicAgent(ctx, sessionID, msg.AgentType, out)
}

// handleHITLDecision resolves a tool approval. Approve (or edit) re-emits
// the tool call for the client to execute; reject feeds a rejection result
// back to the agent so it can continue without the tool.
func (c *Coordinator) handleHITLDecision(ctx context.Context, sessionID string, ac *services.AgentContextRecord, msg *models.ClientMessage, out chan<- models.StreamEvent) {
	pa, err := c.approvals.GetPending(ctx, msg.CallID)
	if err != nil {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("approval request %s not found", msg.CallID), true))
		return
	}
	if pa.Kind != models.ApprovalKindTool {
		c.emit(ctx, out, models.NewError(fmt.Sprintf("approval request %s is not a tool approval", msg.CallID), true))
		return
	}

	switch msg.Decision {
	case models.DecisionApprove, models.DecisionEdit:
		if _, err := c.approvals.Approve(ctx, msg.CallID, msg.Feedback); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		args := pa.Details
		if msg.Decision == models.DecisionEdit && msg.ModifiedArguments != nil {
			args = msg.ModifiedArguments
		}
		c.emit(ctx, out, models.NewToolCall(pa.RequestID, pa.Subject, args, false))

	case models.DecisionReject:
		if _, err := c.approvals.Reject(ctx, msg.CallID, msg.Feedback); err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		rejection := "Tool call rejected by user"
		if msg.Feedback != "" {
			rejection += ": " + msg.Feedback
		}

		// Feed the rejection back as the tool outcome so the agent can
		// proceed without the tool.
		handled, err := c.engine.HandleToolResult(ctx, sessionID, msg.CallID, "", rejection, out)
		if err != nil {
			c.emit(ctx, out, models.NewError(err.Error(), true))
			return
		}
		if handled {
			c.settlePlanOutcome(ctx, sessionID, out)
			return
		}
		if _, err := c.conversations.AppendMessage(ctx, models.AppendMessageRequest{
			SessionID:  sessionID,
			Role:       models.RoleTool,
			Content:    "[Error] " + rejection,
			ToolCallID: msg.CallID,
		}); err != nil {
			c.emit(ctx, out, models.NewError(fmt.Sprintf("failed to record rejection: %v", err), true))
			return
		}
		c.runAtomicAgent(ctx, sessionID, ac.ActiveAgent, out)
	}
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
