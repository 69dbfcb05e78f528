package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PendingApproval holds the schema definition for the PendingApproval
// entity. Unified store for per-tool HITL approvals and whole-plan
// approvals. Status transitions are monotonic (pending → approved|rejected).
type PendingApproval struct {
	ent.Schema
}

// Fields of the PendingApproval.
func (PendingApproval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("request_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("tool", "plan"),
		field.String("subject").
			Comment("Tool name or plan goal"),
		field.String("session_id").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Tool arguments or plan summary"),
		field.String("reason").
			Optional(),
		field.Enum("status").
			Values("pending", "approved", "rejected").
			Default("pending"),
		field.String("resolution_feedback").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the PendingApproval.
func (PendingApproval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "status"),
		index.Fields("session_id", "kind", "status"),
	}
}
