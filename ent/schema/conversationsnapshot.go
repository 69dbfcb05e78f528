package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationSnapshot holds the schema definition for the
// ConversationSnapshot entity. An immutable copy of a conversation's
// message list, used to isolate subtask execution.
type ConversationSnapshot struct {
	ent.Schema
}

// Fields of the ConversationSnapshot.
func (ConversationSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("snapshot_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.String("subtask_id").
			Optional().
			Immutable().
			Comment("Subtask the snapshot was taken for"),
		field.JSON("messages", []map[string]interface{}{}).
			Immutable().
			Comment("Serialized message list at snapshot time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationSnapshot.
func (ConversationSnapshot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("snapshots").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ConversationSnapshot.
func (ConversationSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
	}
}
