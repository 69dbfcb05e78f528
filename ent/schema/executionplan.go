package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionPlan holds the schema definition for the ExecutionPlan entity.
// A plan decomposes a non-atomic goal into a DAG of subtasks.
type ExecutionPlan struct {
	ent.Schema
}

// Fields of the ExecutionPlan.
func (ExecutionPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("plan_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("goal").
			MaxLen(5000),
		field.Enum("status").
			Values("draft", "approved", "in_progress", "completed", "failed", "cancelled").
			Default("draft"),
		field.String("current_subtask_id").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionPlan.
func (ExecutionPlan) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subtasks", Subtask.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionPlan.
func (ExecutionPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("status"),
		index.Fields("session_id", "status"),
	}
}
