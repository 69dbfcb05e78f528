package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentContext holds the schema definition for the AgentContext entity.
// Per-session active agent and FSM state snapshot, so the in-memory FSM
// context can be rebuilt after a restart.
type AgentContext struct {
	ent.Schema
}

// Fields of the AgentContext.
func (AgentContext) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("context_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique().
			Immutable(),
		field.String("active_agent").
			Default("orchestrator"),
		field.String("fsm_state").
			Default("IDLE"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AgentContext.
func (AgentContext) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
	}
}
