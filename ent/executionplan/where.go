// Code generated by ent, DO NOT EDIT.

package executionplan

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldSessionID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldConversationID, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldGoal, v))
}

// CurrentSubtaskID applies equality check predicate on the "current_subtask_id" field. It's identical to CurrentSubtaskIDEQ.
func CurrentSubtaskID(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCurrentSubtaskID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldApprovedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldSessionID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldConversationID, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldGoal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentSubtaskIDEQ applies the EQ predicate on the "current_subtask_id" field.
func CurrentSubtaskIDEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDNEQ applies the NEQ predicate on the "current_subtask_id" field.
func CurrentSubtaskIDNEQ(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDIn applies the In predicate on the "current_subtask_id" field.
func CurrentSubtaskIDIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldCurrentSubtaskID, vs...))
}

// CurrentSubtaskIDNotIn applies the NotIn predicate on the "current_subtask_id" field.
func CurrentSubtaskIDNotIn(vs ...string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldCurrentSubtaskID, vs...))
}

// CurrentSubtaskIDGT applies the GT predicate on the "current_subtask_id" field.
func CurrentSubtaskIDGT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDGTE applies the GTE predicate on the "current_subtask_id" field.
func CurrentSubtaskIDGTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDLT applies the LT predicate on the "current_subtask_id" field.
func CurrentSubtaskIDLT(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDLTE applies the LTE predicate on the "current_subtask_id" field.
func CurrentSubtaskIDLTE(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDContains applies the Contains predicate on the "current_subtask_id" field.
func CurrentSubtaskIDContains(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContains(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDHasPrefix applies the HasPrefix predicate on the "current_subtask_id" field.
func CurrentSubtaskIDHasPrefix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasPrefix(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDHasSuffix applies the HasSuffix predicate on the "current_subtask_id" field.
func CurrentSubtaskIDHasSuffix(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldHasSuffix(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDIsNil applies the IsNil predicate on the "current_subtask_id" field.
func CurrentSubtaskIDIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldCurrentSubtaskID))
}

// CurrentSubtaskIDNotNil applies the NotNil predicate on the "current_subtask_id" field.
func CurrentSubtaskIDNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldCurrentSubtaskID))
}

// CurrentSubtaskIDEqualFold applies the EqualFold predicate on the "current_subtask_id" field.
func CurrentSubtaskIDEqualFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEqualFold(FieldCurrentSubtaskID, v))
}

// CurrentSubtaskIDContainsFold applies the ContainsFold predicate on the "current_subtask_id" field.
func CurrentSubtaskIDContainsFold(v string) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldContainsFold(FieldCurrentSubtaskID, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldApprovedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.FieldNotNull(FieldCompletedAt))
}

// HasSubtasks applies the HasEdge predicate on the "subtasks" edge.
func HasSubtasks() predicate.ExecutionPlan {
	return predicate.ExecutionPlan(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubtasksTable, SubtasksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubtasksWith applies the HasEdge predicate on the "subtasks" edge with a given conditions (other predicates).
func HasSubtasksWith(preds ...predicate.Subtask) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(func(s *sql.Selector) {
		step := newSubtasksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionPlan) predicate.ExecutionPlan {
	return predicate.ExecutionPlan(sql.NotPredicates(p))
}
