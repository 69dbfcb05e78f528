// Code generated by ent, DO NOT EDIT.

package conversationsnapshot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldConversationID, v))
}

// SubtaskID applies equality check predicate on the "subtask_id" field. It's identical to SubtaskIDEQ.
func SubtaskID(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldSubtaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldContainsFold(FieldConversationID, v))
}

// SubtaskIDEQ applies the EQ predicate on the "subtask_id" field.
func SubtaskIDEQ(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldSubtaskID, v))
}

// SubtaskIDNEQ applies the NEQ predicate on the "subtask_id" field.
func SubtaskIDNEQ(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNEQ(FieldSubtaskID, v))
}

// SubtaskIDIn applies the In predicate on the "subtask_id" field.
func SubtaskIDIn(vs ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldIn(FieldSubtaskID, vs...))
}

// SubtaskIDNotIn applies the NotIn predicate on the "subtask_id" field.
func SubtaskIDNotIn(vs ...string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNotIn(FieldSubtaskID, vs...))
}

// SubtaskIDGT applies the GT predicate on the "subtask_id" field.
func SubtaskIDGT(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGT(FieldSubtaskID, v))
}

// SubtaskIDGTE applies the GTE predicate on the "subtask_id" field.
func SubtaskIDGTE(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGTE(FieldSubtaskID, v))
}

// SubtaskIDLT applies the LT predicate on the "subtask_id" field.
func SubtaskIDLT(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLT(FieldSubtaskID, v))
}

// SubtaskIDLTE applies the LTE predicate on the "subtask_id" field.
func SubtaskIDLTE(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLTE(FieldSubtaskID, v))
}

// SubtaskIDContains applies the Contains predicate on the "subtask_id" field.
func SubtaskIDContains(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldContains(FieldSubtaskID, v))
}

// SubtaskIDHasPrefix applies the HasPrefix predicate on the "subtask_id" field.
func SubtaskIDHasPrefix(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldHasPrefix(FieldSubtaskID, v))
}

// SubtaskIDHasSuffix applies the HasSuffix predicate on the "subtask_id" field.
func SubtaskIDHasSuffix(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldHasSuffix(FieldSubtaskID, v))
}

// SubtaskIDIsNil applies the IsNil predicate on the "subtask_id" field.
func SubtaskIDIsNil() predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldIsNull(FieldSubtaskID))
}

// SubtaskIDNotNil applies the NotNil predicate on the "subtask_id" field.
func SubtaskIDNotNil() predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNotNull(FieldSubtaskID))
}

// SubtaskIDEqualFold applies the EqualFold predicate on the "subtask_id" field.
func SubtaskIDEqualFold(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEqualFold(FieldSubtaskID, v))
}

// SubtaskIDContainsFold applies the ContainsFold predicate on the "subtask_id" field.
func SubtaskIDContainsFold(v string) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldContainsFold(FieldSubtaskID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationSnapshot) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationSnapshot) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationSnapshot) predicate.ConversationSnapshot {
	return predicate.ConversationSnapshot(sql.NotPredicates(p))
}
