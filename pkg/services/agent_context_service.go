package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-ai/maestro/ent"
	"github.com/maestro-ai/maestro/ent/agentcontext"
)

// AgentContextRecord is the persisted per-session agent state: which agent
// is active and where the conversation state machine stands. It lets the
// runtime rebuild its in-memory session contexts after a restart.
type AgentContextRecord struct {
	SessionID   string         `json:"session_id"`
	ActiveAgent string         `json:"active_agent"`
	FSMState    string         `json:"fsm_state"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AgentContextService persists per-session agent routing and FSM state.
type AgentContextService struct {
	client *ent.Client
}

// NewAgentContextService creates a new AgentContextService
func NewAgentContextService(client *ent.Client) *AgentContextService {
	return &AgentContextService{client: client}
}

// GetOrCreate returns the session's agent context, creating the default
// (orchestrator, IDLE) record on first use.
func (s *AgentContextService) GetOrCreate(httpCtx context.Context, sessionID string) (*AgentContextRecord, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.AgentContext.Query().
		Where(agentcontext.SessionIDEQ(sessionID)).
		Only(ctx)
	if err == nil {
		return agentContextToRecord(existing), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent context: %w", err)
	}

	ac, err := s.client.AgentContext.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, queryErr := s.client.AgentContext.Query().
				Where(agentcontext.SessionIDEQ(sessionID)).
				Only(ctx)
			if queryErr != nil {
				return nil, fmt.Errorf("failed to query agent context after constraint error: %w", queryErr)
			}
			return agentContextToRecord(existing), nil
		}
		return nil, fmt.Errorf("failed to create agent context: %w", err)
	}
	return agentContextToRecord(ac), nil
}

// Get returns the session's agent context, or ErrNotFound.
func (s *AgentContextService) Get(httpCtx context.Context, sessionID string) (*AgentContextRecord, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	ac, err := s.client.AgentContext.Query().
		Where(agentcontext.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query agent context: %w", err)
	}
	return agentContextToRecord(ac), nil
}

// Update persists the session's active agent and FSM state. Empty fields
// are left unchanged.
func (s *AgentContextService) Update(httpCtx context.Context, sessionID, activeAgent, fsmState string) (*AgentContextRecord, error) {
	current, err := s.GetOrCreate(httpCtx, sessionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.AgentContext.Update().
		Where(agentcontext.SessionIDEQ(sessionID))
	if activeAgent != "" {
		update.SetActiveAgent(activeAgent)
	}
	if fsmState != "" {
		update.SetFsmState(fsmState)
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update agent context: %w", err)
	}

	if activeAgent != "" {
		current.ActiveAgent = activeAgent
	}
	if fsmState != "" {
		current.FSMState = fsmState
	}
	current.UpdatedAt = time.Now()
	return current, nil
}

func agentContextToRecord(ac *ent.AgentContext) *AgentContextRecord {
	return &AgentContextRecord{
		SessionID:   ac.SessionID,
		ActiveAgent: ac.ActiveAgent,
		FSMState:    ac.FsmState,
		Metadata:    ac.Metadata,
		UpdatedAt:   ac.UpdatedAt,
	}
}
