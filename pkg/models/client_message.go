package models

import (
	"encoding/json"
	"fmt"
)

// Client message kinds accepted over the gateway WebSocket and the
// runtime streaming endpoint. Unknown kinds are rejected at decode time.
const (
	MessageKindUserMessage  = "user_message"
	MessageKindToolResult   = "tool_result"
	MessageKindSwitchAgent  = "switch_agent"
	MessageKindHITLDecision = "hitl_decision"
	MessageKindPlanDecision = "plan_decision"
)

// HITL decision values.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
	DecisionEdit    = "edit"
	DecisionModify  = "modify"
)

// ClientMessage is the decoded inbound message. One struct covers all
// kinds; Validate enforces the per-kind required fields.
type ClientMessage struct {
	Kind string `json:"type"`

	// user_message
	Content string `json:"content,omitempty"`
	Role    string `json:"role,omitempty"`

	// tool_result and hitl_decision
	CallID string `json:"call_id,omitempty"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`

	// switch_agent
	AgentType string `json:"agent_type,omitempty"`

	// hitl_decision and plan_decision
	Decision          string         `json:"decision,omitempty"`
	ModifiedArguments map[string]any `json:"modified_arguments,omitempty"`
	Feedback          string         `json:"feedback,omitempty"`

	// plan_decision
	ApprovalRequestID string `json:"approval_request_id,omitempty"`
}

// DecodeClientMessage parses and validates a raw inbound frame.
func DecodeClientMessage(raw []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Validate checks the per-kind required fields.
func (m *ClientMessage) Validate() error {
	switch m.Kind {
	case MessageKindUserMessage:
		if m.Content == "" {
			return fmt.Errorf("user_message: content is required")
		}
	case MessageKindToolResult:
		if m.CallID == "" {
			return fmt.Errorf("tool_result: call_id is required")
		}
		if m.Result == "" && m.Error == "" {
			return fmt.Errorf("tool_result: result or error is required")
		}
	case MessageKindSwitchAgent:
		if m.AgentType == "" {
			return fmt.Errorf("switch_agent: agent_type is required")
		}
	case MessageKindHITLDecision:
		if m.CallID == "" {
			return fmt.Errorf("hitl_decision: call_id is required")
		}
		switch m.Decision {
		case DecisionApprove, DecisionReject, DecisionEdit:
		default:
			return fmt.Errorf("hitl_decision: decision must be approve, reject, or edit")
		}
	case MessageKindPlanDecision:
		if m.ApprovalRequestID == "" {
			return fmt.Errorf("plan_decision: approval_request_id is required")
		}
		switch m.Decision {
		case DecisionApprove, DecisionReject, DecisionModify:
		default:
			return fmt.Errorf("plan_decision: decision must be approve, reject, or modify")
		}
	case "":
		return fmt.Errorf("message type is required")
	default:
		return fmt.Errorf("unknown message type: %s", m.Kind)
	}
	return nil
}

// AgentMessageRequest is the body of POST /agent/message/stream.
// SessionID is empty for a fresh session; the runtime assigns one and
// announces it via a session_info event.
type AgentMessageRequest struct {
	SessionID string        `json:"session_id,omitempty"`
	Message   ClientMessage `json:"message"`
}
