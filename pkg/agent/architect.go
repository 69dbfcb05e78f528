package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/maestro-ai/maestro/pkg/models"
)

// Architect decomposes non-atomic goals into subtask DAG drafts. It never
// executes subtasks itself.
type Architect struct {
	llm   LLMClient
	model string
}

// NewArchitect creates a new Architect
func NewArchitect(llm LLMClient, model string) *Architect {
	return &Architect{llm: llm, model: model}
}

// Type returns the agent's identifier.
func (a *Architect) Type() string {
	return TypeArchitect
}

// Propose drafts a plan for the goal. Feedback, when non-empty, carries
// the user's modification request for a previously rejected draft.
func (a *Architect) Propose(ctx context.Context, sessionID, goal string, history []models.Message, feedback string) (*models.PlanDraft, error) {
	messages := BuildMessages(architectPrompt, &ProcessInput{
		SessionID: sessionID,
		History:   history,
	})
	messages = append(messages, ChatMessage{Role: "user", Content: goal})
	if feedback != "" {
		messages = append(messages, ChatMessage{
			Role:    "user",
			Content: "Revise the plan with this feedback: " + feedback,
		})
	}

	text, err := collectCompletion(ctx, a.llm, &CompletionInput{
		SessionID: sessionID,
		Model:     a.model,
		Messages:  messages,
	})
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	var draft models.PlanDraft
	if err := json.Unmarshal([]byte(extractJSON(text)), &draft); err != nil {
		return nil, fmt.Errorf("architect returned invalid JSON: %w", err)
	}
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Process satisfies the Agent interface for registry completeness. The
// architect is invoked through Propose; direct processing is not supported.
func (a *Architect) Process(ctx context.Context, input *ProcessInput) (<-chan Event, error) {
	return nil, fmt.Errorf("architect does not process tasks directly; use Propose")
}

func validateDraft(draft *models.PlanDraft) error {
	if draft.Goal == "" {
		return fmt.Errorf("architect draft has no goal")
	}
	if len(draft.Subtasks) == 0 {
		return fmt.Errorf("architect draft has no subtasks")
	}
	for _, st := range draft.Subtasks {
		switch st.Agent {
		case TypeCoder, TypeDebug, TypeExplain:
		case TypeArchitect, TypeOrchestrator:
			return fmt.Errorf("subtask %q assigned to non-executing agent %q", st.ID, st.Agent)
		default:
			return fmt.Errorf("subtask %q assigned to unknown agent %q", st.ID, st.Agent)
		}
	}
	return nil
}
