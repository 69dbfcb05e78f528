// Code generated by ent, DO NOT EDIT.

package pendingapproval

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldID, id))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSubject, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldReason, v))
}

// ResolutionFeedback applies equality check predicate on the "resolution_feedback" field. It's identical to ResolutionFeedbackEQ.
func ResolutionFeedback(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldResolutionFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldResolvedAt, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldKind, vs...))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSubject, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldSessionID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldDetails))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldReason, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldStatus, vs...))
}

// ResolutionFeedbackEQ applies the EQ predicate on the "resolution_feedback" field.
func ResolutionFeedbackEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldResolutionFeedback, v))
}

// ResolutionFeedbackNEQ applies the NEQ predicate on the "resolution_feedback" field.
func ResolutionFeedbackNEQ(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldResolutionFeedback, v))
}

// ResolutionFeedbackIn applies the In predicate on the "resolution_feedback" field.
func ResolutionFeedbackIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldResolutionFeedback, vs...))
}

// ResolutionFeedbackNotIn applies the NotIn predicate on the "resolution_feedback" field.
func ResolutionFeedbackNotIn(vs ...string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldResolutionFeedback, vs...))
}

// ResolutionFeedbackGT applies the GT predicate on the "resolution_feedback" field.
func ResolutionFeedbackGT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldResolutionFeedback, v))
}

// ResolutionFeedbackGTE applies the GTE predicate on the "resolution_feedback" field.
func ResolutionFeedbackGTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldResolutionFeedback, v))
}

// ResolutionFeedbackLT applies the LT predicate on the "resolution_feedback" field.
func ResolutionFeedbackLT(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldResolutionFeedback, v))
}

// ResolutionFeedbackLTE applies the LTE predicate on the "resolution_feedback" field.
func ResolutionFeedbackLTE(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldResolutionFeedback, v))
}

// ResolutionFeedbackContains applies the Contains predicate on the "resolution_feedback" field.
func ResolutionFeedbackContains(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContains(FieldResolutionFeedback, v))
}

// ResolutionFeedbackHasPrefix applies the HasPrefix predicate on the "resolution_feedback" field.
func ResolutionFeedbackHasPrefix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasPrefix(FieldResolutionFeedback, v))
}

// ResolutionFeedbackHasSuffix applies the HasSuffix predicate on the "resolution_feedback" field.
func ResolutionFeedbackHasSuffix(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldHasSuffix(FieldResolutionFeedback, v))
}

// ResolutionFeedbackIsNil applies the IsNil predicate on the "resolution_feedback" field.
func ResolutionFeedbackIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldResolutionFeedback))
}

// ResolutionFeedbackNotNil applies the NotNil predicate on the "resolution_feedback" field.
func ResolutionFeedbackNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldResolutionFeedback))
}

// ResolutionFeedbackEqualFold applies the EqualFold predicate on the "resolution_feedback" field.
func ResolutionFeedbackEqualFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEqualFold(FieldResolutionFeedback, v))
}

// ResolutionFeedbackContainsFold applies the ContainsFold predicate on the "resolution_feedback" field.
func ResolutionFeedbackContainsFold(v string) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldContainsFold(FieldResolutionFeedback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldCreatedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.PendingApproval {
	return predicate.PendingApproval(sql.FieldNotNull(FieldResolvedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PendingApproval) predicate.PendingApproval {
	return predicate.PendingApproval(sql.NotPredicates(p))
}
