package models

import "time"

// MessageRole identifies the author of a conversation message.
type MessageRole string

// Message roles.
const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// ToolCallRecord is a tool call declared by an assistant message.
type ToolCallRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Message is the domain view of a conversation message.
type Message struct {
	ID             string           `json:"id"`
	ConversationID string           `json:"conversation_id"`
	SequenceNumber int              `json:"sequence_number"`
	Role           MessageRole      `json:"role"`
	Content        string           `json:"content"`
	ToolCalls      []ToolCallRecord `json:"tool_calls,omitempty"`
	ToolCallID     string           `json:"tool_call_id,omitempty"`
	ToolName       string           `json:"tool_name,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Conversation is the domain view of a session's conversation.
type Conversation struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	CreatedAt         time.Time `json:"created_at"`
	LastInteractionAt time.Time `json:"last_interaction_at"`
}

// Snapshot is an immutable copy of a conversation's message list,
// taken before a subtask runs so the conversation can be restored after.
type Snapshot struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SubtaskID      string    `json:"subtask_id,omitempty"`
	Messages       []Message `json:"messages"`
	CreatedAt      time.Time `json:"created_at"`
}

// AppendMessageRequest is the input for ConversationService.AppendMessage.
type AppendMessageRequest struct {
	SessionID  string
	Role       MessageRole
	Content    string
	ToolCalls  []ToolCallRecord
	ToolCallID string
	ToolName   string
}

// ApprovalKind distinguishes per-tool HITL approvals from whole-plan approvals.
type ApprovalKind string

// Approval kinds.
const (
	ApprovalKindTool ApprovalKind = "tool"
	ApprovalKindPlan ApprovalKind = "plan"
)

// ApprovalStatus is the monotonic state of a pending approval.
type ApprovalStatus string

// Approval status values.
const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// PendingApproval is the domain view of an approval request.
type PendingApproval struct {
	RequestID          string         `json:"request_id"`
	Kind               ApprovalKind   `json:"kind"`
	Subject            string         `json:"subject"`
	SessionID          string         `json:"session_id"`
	Details            map[string]any `json:"details,omitempty"`
	Reason             string         `json:"reason,omitempty"`
	Status             ApprovalStatus `json:"status"`
	ResolutionFeedback string         `json:"resolution_feedback,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	ResolvedAt         *time.Time     `json:"resolved_at,omitempty"`
}
