package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtask holds the schema definition for the Subtask entity.
// A unit of work within an execution plan, assigned to exactly one agent.
type Subtask struct {
	ent.Schema
}

// Fields of the Subtask.
func (Subtask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subtask_id").
			Unique().
			Immutable(),
		field.String("plan_id").
			Immutable(),
		field.Text("description"),
		field.String("assigned_agent_id").
			Comment("Never the planner agent"),
		field.JSON("dependencies", []string{}).
			Optional().
			Comment("Subtask IDs within the same plan"),
		field.Enum("status").
			Values("pending", "blocked", "running", "done", "failed").
			Default("pending"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Subtask.
func (Subtask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("plan", ExecutionPlan.Type).
			Ref("subtasks").
			Field("plan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Subtask.
func (Subtask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id"),
		index.Fields("plan_id", "status"),
	}
}
