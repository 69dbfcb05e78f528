package runtime

import (
	"context"

	"github.com/maestro-ai/maestro/pkg/fsm"
	"github.com/maestro-ai/maestro/pkg/services"
)

// ContextPersister saves state machine transitions into the agent context
// record so sessions survive a restart.
type ContextPersister struct {
	contexts *services.AgentContextService
}

// NewContextPersister creates a new ContextPersister
func NewContextPersister(contexts *services.AgentContextService) *ContextPersister {
	return &ContextPersister{contexts: contexts}
}

// SaveState persists the session's state. The active agent is left as-is.
func (p *ContextPersister) SaveState(ctx context.Context, sessionID string, state fsm.State) error {
	_, err := p.contexts.Update(ctx, sessionID, "", string(state))
	return err
}
