package models

// Stream event type names. These are the "type" discriminators carried in
// every SSE data record and forwarded verbatim over the gateway WebSocket.
const (
	EventTypeSessionInfo           = "session_info"
	EventTypeAssistantMessage      = "assistant_message"
	EventTypeToolCall              = "tool_call"
	EventTypeToolResult            = "tool_result"
	EventTypeAgentSwitched         = "agent_switched"
	EventTypePlanApprovalRequired  = "plan_approval_required"
	EventTypeToolApprovalRequired  = "tool_approval_required"
	EventTypePlanExecutionStarted  = "plan_execution_started"
	EventTypePlanExecutionRejected = "plan_execution_rejected"
	EventTypeSubtaskCompleted      = "subtask_completed"
	EventTypeExecutionCompleted    = "execution_completed"
	EventTypeError                 = "error"
	EventTypeStatus                = "status"
)

// StreamEvent is implemented by every outbound stream payload.
// Payloads are marshaled as-is into SSE data records.
type StreamEvent interface {
	EventType() string
}

// SessionInfoEvent announces the server-assigned session ID. For a fresh
// session it is the first event on the stream.
type SessionInfoEvent struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// AssistantMessageEvent carries one streamed assistant token.
type AssistantMessageEvent struct {
	Type     string         `json:"type"`
	Token    string         `json:"token"`
	IsFinal  bool           `json:"is_final"`
	Agent    string         `json:"agent,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ToolCallEvent asks the client to execute a tool.
type ToolCallEvent struct {
	Type             string         `json:"type"`
	CallID           string         `json:"call_id"`
	ToolName         string         `json:"tool_name"`
	Arguments        map[string]any `json:"arguments"`
	RequiresApproval bool           `json:"requires_approval,omitempty"`
}

// ToolResultEvent echoes a processed tool result back to the stream.
type ToolResultEvent struct {
	Type   string `json:"type"`
	CallID string `json:"call_id"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// AgentSwitchedEvent reports a change of the session's active agent.
type AgentSwitchedEvent struct {
	Type      string `json:"type"`
	FromAgent string `json:"from_agent"`
	ToAgent   string `json:"to_agent"`
	Reason    string `json:"reason,omitempty"`
}

// PlanSummary is the condensed plan view sent with approval requests.
type PlanSummary struct {
	Goal          string   `json:"goal"`
	SubtasksCount int      `json:"subtasks_count"`
	Subtasks      []string `json:"subtasks,omitempty"`
}

// PlanApprovalRequiredEvent asks the user to approve a whole plan.
type PlanApprovalRequiredEvent struct {
	Type              string      `json:"type"`
	ApprovalRequestID string      `json:"approval_request_id"`
	PlanID            string      `json:"plan_id"`
	PlanSummary       PlanSummary `json:"plan_summary"`
}

// ToolApprovalRequiredEvent asks the user to approve a single tool call.
type ToolApprovalRequiredEvent struct {
	Type      string         `json:"type"`
	CallID    string         `json:"call_id"`
	ToolName  string         `json:"tool_name"`
	Arguments map[string]any `json:"arguments"`
	Reason    string         `json:"reason,omitempty"`
}

// PlanExecutionStartedEvent reports that an approved plan began executing.
type PlanExecutionStartedEvent struct {
	Type   string `json:"type"`
	PlanID string `json:"plan_id"`
}

// PlanExecutionRejectedEvent reports a user-rejected plan.
type PlanExecutionRejectedEvent struct {
	Type   string `json:"type"`
	PlanID string `json:"plan_id"`
}

// SubtaskCompletedEvent reports a finished subtask.
type SubtaskCompletedEvent struct {
	Type            string  `json:"type"`
	SubtaskID       string  `json:"subtask_id"`
	Result          string  `json:"result,omitempty"`
	Agent           string  `json:"agent"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// ExecutionCompletedEvent reports a finished plan.
type ExecutionCompletedEvent struct {
	Type            string  `json:"type"`
	PlanID          string  `json:"plan_id"`
	Status          string  `json:"status"`
	Progress        string  `json:"progress"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// ErrorEvent reports an error to the client. IsFinal marks the terminal
// event of a stream.
type ErrorEvent struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	IsFinal bool   `json:"is_final,omitempty"`
}

// StatusEvent carries human-readable progress updates.
type StatusEvent struct {
	Type     string         `json:"type"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// EventType implementations.
func (e SessionInfoEvent) EventType() string           { return e.Type }
func (e AssistantMessageEvent) EventType() string      { return e.Type }
func (e ToolCallEvent) EventType() string              { return e.Type }
func (e ToolResultEvent) EventType() string            { return e.Type }
func (e AgentSwitchedEvent) EventType() string         { return e.Type }
func (e PlanApprovalRequiredEvent) EventType() string  { return e.Type }
func (e ToolApprovalRequiredEvent) EventType() string  { return e.Type }
func (e PlanExecutionStartedEvent) EventType() string  { return e.Type }
func (e PlanExecutionRejectedEvent) EventType() string { return e.Type }
func (e SubtaskCompletedEvent) EventType() string      { return e.Type }
func (e ExecutionCompletedEvent) EventType() string    { return e.Type }
func (e ErrorEvent) EventType() string                 { return e.Type }
func (e StatusEvent) EventType() string                { return e.Type }

// Constructors set the type discriminator so callers can't forget it.

// NewSessionInfo builds a session_info event.
func NewSessionInfo(sessionID string) SessionInfoEvent {
	return SessionInfoEvent{Type: EventTypeSessionInfo, SessionID: sessionID}
}

// NewAssistantToken builds an assistant_message token event.
func NewAssistantToken(token string, isFinal bool, agent string) AssistantMessageEvent {
	return AssistantMessageEvent{Type: EventTypeAssistantMessage, Token: token, IsFinal: isFinal, Agent: agent}
}

// NewToolCall builds a tool_call event.
func NewToolCall(callID, toolName string, args map[string]any, requiresApproval bool) ToolCallEvent {
	return ToolCallEvent{Type: EventTypeToolCall, CallID: callID, ToolName: toolName, Arguments: args, RequiresApproval: requiresApproval}
}

// NewToolResult builds a tool_result event.
func NewToolResult(callID, result, errText string) ToolResultEvent {
	return ToolResultEvent{Type: EventTypeToolResult, CallID: callID, Result: result, Error: errText}
}

// NewAgentSwitched builds an agent_switched event.
func NewAgentSwitched(from, to, reason string) AgentSwitchedEvent {
	return AgentSwitchedEvent{Type: EventTypeAgentSwitched, FromAgent: from, ToAgent: to, Reason: reason}
}

// NewPlanApprovalRequired builds a plan_approval_required event.
func NewPlanApprovalRequired(requestID, planID string, summary PlanSummary) PlanApprovalRequiredEvent {
	return PlanApprovalRequiredEvent{Type: EventTypePlanApprovalRequired, ApprovalRequestID: requestID, PlanID: planID, PlanSummary: summary}
}

// NewToolApprovalRequired builds a tool_approval_required event.
func NewToolApprovalRequired(callID, toolName string, args map[string]any, reason string) ToolApprovalRequiredEvent {
	return ToolApprovalRequiredEvent{Type: EventTypeToolApprovalRequired, CallID: callID, ToolName: toolName, Arguments: args, Reason: reason}
}

// NewPlanExecutionStarted builds a plan_execution_started event.
func NewPlanExecutionStarted(planID string) PlanExecutionStartedEvent {
	return PlanExecutionStartedEvent{Type: EventTypePlanExecutionStarted, PlanID: planID}
}

// NewPlanExecutionRejected builds a plan_execution_rejected event.
func NewPlanExecutionRejected(planID string) PlanExecutionRejectedEvent {
	return PlanExecutionRejectedEvent{Type: EventTypePlanExecutionRejected, PlanID: planID}
}

// NewSubtaskCompleted builds a subtask_completed event.
func NewSubtaskCompleted(subtaskID, result, agent string, duration float64) SubtaskCompletedEvent {
	return SubtaskCompletedEvent{Type: EventTypeSubtaskCompleted, SubtaskID: subtaskID, Result: result, Agent: agent, DurationSeconds: duration}
}

// NewExecutionCompleted builds an execution_completed event.
func NewExecutionCompleted(planID, status, progress string, duration float64) ExecutionCompletedEvent {
	return ExecutionCompletedEvent{Type: EventTypeExecutionCompleted, PlanID: planID, Status: status, Progress: progress, DurationSeconds: duration}
}

// NewError builds an error event.
func NewError(content string, isFinal bool) ErrorEvent {
	return ErrorEvent{Type: EventTypeError, Content: content, IsFinal: isFinal}
}

// NewStatus builds a status event.
func NewStatus(content string, metadata map[string]any) StatusEvent {
	return StatusEvent{Type: EventTypeStatus, Content: content, Metadata: metadata}
}
