package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Classification is the classifier's verdict on a user message.
type Classification struct {
	IsAtomic    bool   `json:"is_atomic"`
	TargetAgent string `json:"target_agent"`
}

// Classifier decides whether a user message is an atomic task for one
// specialist or a compound goal that needs planning.
type Classifier struct {
	llm   LLMClient
	model string
}

// NewClassifier creates a new Classifier
func NewClassifier(llm LLMClient, model string) *Classifier {
	return &Classifier{llm: llm, model: model}
}

// Classify returns the routing decision for a user message. Non-atomic
// requests must route to the architect; anything else is a contract
// violation from the model and is returned as an error.
func (c *Classifier) Classify(ctx context.Context, sessionID, content string) (*Classification, error) {
	text, err := collectCompletion(ctx, c.llm, &CompletionInput{
		SessionID: sessionID,
		Model:     c.model,
		Messages: []ChatMessage{
			{Role: "system", Content: classifierPrompt},
			{Role: "user", Content: content},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	var result Classification
	if err := json.Unmarshal([]byte(extractJSON(text)), &result); err != nil {
		return nil, fmt.Errorf("classification returned invalid JSON: %w", err)
	}

	if result.IsAtomic {
		switch result.TargetAgent {
		case TypeCoder, TypeDebug, TypeExplain:
		default:
			return nil, fmt.Errorf("classification routed atomic task to invalid agent %q", result.TargetAgent)
		}
	} else if result.TargetAgent != TypeArchitect {
		return nil, fmt.Errorf("classification routed non-atomic task to %q instead of architect", result.TargetAgent)
	}
	return &result, nil
}

// collectCompletion runs a completion to the end and returns the full text.
// Stream errors and provider errors embedded in the text become errors.
func collectCompletion(ctx context.Context, llm LLMClient, input *CompletionInput) (string, error) {
	chunks, err := llm.ChatCompletion(ctx, input)
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *TextChunk:
			text.WriteString(c.Content)
		case *ErrorChunk:
			return "", fmt.Errorf("llm error: %s", truncateError(c.Message))
		}
	}

	full := text.String()
	if errText, found := SniffLLMError(full); found {
		return "", fmt.Errorf("llm error: %s", errText)
	}
	return full, nil
}

// extractJSON strips code fences and surrounding prose, keeping the
// outermost JSON object.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
