package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClientMessage(t *testing.T) {
	msg, err := DecodeClientMessage([]byte(`{"type":"user_message","content":"hello"}`))
	require.NoError(t, err)
	assert.Equal(t, MessageKindUserMessage, msg.Kind)
	assert.Equal(t, "hello", msg.Content)
}

func TestDecodeClientMessageMalformed(t *testing.T) {
	_, err := DecodeClientMessage([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestClientMessageValidation(t *testing.T) {
	tests := []struct {
		name    string
		msg     ClientMessage
		wantErr string
	}{
		{"missing type", ClientMessage{}, "message type is required"},
		{"unknown type", ClientMessage{Kind: "telepathy"}, "unknown message type"},
		{"user message without content", ClientMessage{Kind: MessageKindUserMessage}, "content is required"},
		{"tool result without call id", ClientMessage{Kind: MessageKindToolResult, Result: "ok"}, "call_id is required"},
		{"tool result without payload", ClientMessage{Kind: MessageKindToolResult, CallID: "c1"}, "result or error is required"},
		{"switch without agent", ClientMessage{Kind: MessageKindSwitchAgent}, "agent_type is required"},
		{"hitl without call id", ClientMessage{Kind: MessageKindHITLDecision, Decision: DecisionApprove}, "call_id is required"},
		{"hitl with modify", ClientMessage{Kind: MessageKindHITLDecision, CallID: "c1", Decision: DecisionModify}, "approve, reject, or edit"},
		{"plan decision without request id", ClientMessage{Kind: MessageKindPlanDecision, Decision: DecisionApprove}, "approval_request_id is required"},
		{"plan decision with edit", ClientMessage{Kind: MessageKindPlanDecision, ApprovalRequestID: "r1", Decision: DecisionEdit}, "approve, reject, or modify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClientMessageValidationAccepts(t *testing.T) {
	valid := []ClientMessage{
		{Kind: MessageKindUserMessage, Content: "hi"},
		{Kind: MessageKindToolResult, CallID: "c1", Result: "ok"},
		{Kind: MessageKindToolResult, CallID: "c1", Error: "boom"},
		{Kind: MessageKindSwitchAgent, AgentType: "coder"},
		{Kind: MessageKindHITLDecision, CallID: "c1", Decision: DecisionEdit},
		{Kind: MessageKindPlanDecision, ApprovalRequestID: "r1", Decision: DecisionModify},
	}
	for _, msg := range valid {
		assert.NoError(t, msg.Validate(), "kind %s", msg.Kind)
	}
}
