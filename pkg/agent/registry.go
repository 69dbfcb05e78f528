package agent

import (
	"fmt"
	"sync"
)

// Registry maps agent type identifiers to agent instances. Agents are
// stateless, so instances are shared across sessions.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates a new Registry
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]Agent),
	}
}

// Register adds an agent. Registering the same type twice replaces the
// earlier instance.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.Type()] = a
}

// Get returns the agent for the type, or an error for unknown types.
func (r *Registry) Get(agentType string) (Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, exists := r.agents[agentType]
	if !exists {
		return nil, fmt.Errorf("unknown agent type %q", agentType)
	}
	return a, nil
}

// Types returns the registered agent type identifiers.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.agents))
	for t := range r.agents {
		types = append(types, t)
	}
	return types
}
