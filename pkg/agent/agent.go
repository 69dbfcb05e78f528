// Package agent provides the agent framework: specialist LLM-backed agents,
// the classifier, the architect planner, and the LLM client they share.
package agent

import (
	"context"

	"github.com/maestro-ai/maestro/pkg/models"
)

// Agent type identifiers. The orchestrator routes; it never executes
// subtasks itself. The architect plans; subtasks are never assigned to it.
const (
	TypeOrchestrator = "orchestrator"
	TypeCoder        = "coder"
	TypeArchitect    = "architect"
	TypeDebug        = "debug"
	TypeExplain      = "explain"
)

// Agent is a streaming producer of processing events. Agents are stateless;
// all per-call state arrives in the ProcessInput.
type Agent interface {
	// Type returns the agent's identifier.
	Type() string

	// Process handles one task and returns a stream of events. The channel
	// is closed when processing completes. Errors during the stream are
	// delivered as ErrorEvent values; a non-nil error return means the
	// stream could not be started at all.
	Process(ctx context.Context, input *ProcessInput) (<-chan Event, error)
}

// ProcessInput carries everything an agent needs for one call.
type ProcessInput struct {
	SessionID string

	// Task is the user message or subtask description to work on.
	Task string

	// SubtaskID is set when the call executes a plan subtask.
	SubtaskID string

	// History is the conversation so far, oldest first.
	History []models.Message

	// Context is extra synthesized context, e.g. dependency results.
	Context string

	// Tools the agent may call. nil means no tool use.
	Tools []ToolDefinition
}

// EventKind identifies the kind of agent event.
type EventKind string

const (
	EventKindToken    EventKind = "token"
	EventKindToolCall EventKind = "tool_call"
	EventKindUsage    EventKind = "usage"
	EventKindError    EventKind = "error"
)

// Event is the interface for all agent stream events.
type Event interface {
	eventKind() EventKind
}

// TokenEvent is a chunk of the agent's text response. IsFinal marks the
// last chunk of the response.
type TokenEvent struct {
	Content string
	IsFinal bool
}

// ToolCallEvent signals that the agent wants a tool executed. The runtime
// suspends the stream and waits for the client's tool result.
type ToolCallEvent struct {
	CallID    string
	Name      string
	Arguments string // JSON
}

// UsageEvent reports token consumption for the underlying LLM call.
type UsageEvent struct {
	InputTokens  int32
	OutputTokens int32
	TotalTokens  int32
}

// ErrorEvent signals an agent-level failure. The stream ends after it.
type ErrorEvent struct {
	Message string
}

func (e *TokenEvent) eventKind() EventKind    { return EventKindToken }
func (e *ToolCallEvent) eventKind() EventKind { return EventKindToolCall }
func (e *UsageEvent) eventKind() EventKind    { return EventKindUsage }
func (e *ErrorEvent) eventKind() EventKind    { return EventKindError }
