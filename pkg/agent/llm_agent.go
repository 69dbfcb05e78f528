package agent

import (
	"context"
	"strings"

	"github.com/maestro-ai/maestro/pkg/models"
)

// LLMAgent is the shared implementation behind the specialist agents
// (coder, debug, explain). Specialists differ only in system prompt; the
// streaming machinery is identical.
type LLMAgent struct {
	agentType string
	llm       LLMClient
	model     string
}

// NewLLMAgent creates a specialist agent of the given type.
func NewLLMAgent(agentType string, llm LLMClient, model string) *LLMAgent {
	return &LLMAgent{
		agentType: agentType,
		llm:       llm,
		model:     model,
	}
}

// Type returns the agent's identifier.
func (a *LLMAgent) Type() string {
	return a.agentType
}

// Process streams the agent's response to the task. Task, when non-empty,
// is appended as the final user message after the history.
func (a *LLMAgent) Process(ctx context.Context, input *ProcessInput) (<-chan Event, error) {
	chunks, err := a.llm.ChatCompletion(ctx, &CompletionInput{
		SessionID: input.SessionID,
		Model:     a.model,
		Messages:  BuildMessages(SystemPrompt(a.agentType), input),
		Tools:     input.Tools,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan Event, 32)
	go func() {
		defer close(out)
		forwardChunks(ctx, chunks, out)
	}()
	return out, nil
}

// BuildMessages assembles the LLM conversation: system prompt, synthesized
// context, persisted history, then the task.
func BuildMessages(systemPrompt string, input *ProcessInput) []ChatMessage {
	messages := make([]ChatMessage, 0, len(input.History)+3)
	messages = append(messages, ChatMessage{Role: string(models.RoleSystem), Content: systemPrompt})
	if input.Context != "" {
		messages = append(messages, ChatMessage{Role: string(models.RoleSystem), Content: input.Context})
	}
	for _, m := range input.History {
		cm := ChatMessage{
			Role:       string(m.Role),
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			cm.ToolCalls = append(cm.ToolCalls, ToolCall{
				ID:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		messages = append(messages, cm)
	}
	if input.Task != "" {
		messages = append(messages, ChatMessage{Role: string(models.RoleUser), Content: input.Task})
	}
	return messages
}

// forwardChunks converts LLM chunks into agent events. Provider errors
// embedded in response text are detected when the stream ends and reported
// as an ErrorEvent.
func forwardChunks(ctx context.Context, chunks <-chan Chunk, out chan<- Event) {
	var text strings.Builder
	sawFinal := false
	suspended := false

	emit := func(e Event) bool {
		select {
		case out <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for chunk := range chunks {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
			if c.IsFinal {
				sawFinal = true
			}
			if errText, found := SniffLLMError(text.String()); found {
				emit(&ErrorEvent{Message: errText})
				return
			}
			if !emit(&TokenEvent{Content: c.Content, IsFinal: c.IsFinal}) {
				return
			}
		case *ToolCallChunk:
			suspended = true
			if !emit(&ToolCallEvent{CallID: c.CallID, Name: c.Name, Arguments: c.Arguments}) {
				return
			}
		case *UsageChunk:
			if !emit(&UsageEvent{
				InputTokens:  c.InputTokens,
				OutputTokens: c.OutputTokens,
				TotalTokens:  c.TotalTokens,
			}) {
				return
			}
		case *ErrorChunk:
			emit(&ErrorEvent{Message: truncateError(c.Message)})
			return
		}
	}

	// A stream that ends without a final marker still needs a defined end,
	// unless a tool call suspended it.
	if !sawFinal && !suspended {
		emit(&TokenEvent{IsFinal: true})
	}
}
