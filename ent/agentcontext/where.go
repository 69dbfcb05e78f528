// Code generated by ent, DO NOT EDIT.

package agentcontext

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSessionID, v))
}

// ActiveAgent applies equality check predicate on the "active_agent" field. It's identical to ActiveAgentEQ.
func ActiveAgent(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldActiveAgent, v))
}

// FsmState applies equality check predicate on the "fsm_state" field. It's identical to FsmStateEQ.
func FsmState(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldFsmState, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldSessionID, v))
}

// ActiveAgentEQ applies the EQ predicate on the "active_agent" field.
func ActiveAgentEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldActiveAgent, v))
}

// ActiveAgentNEQ applies the NEQ predicate on the "active_agent" field.
func ActiveAgentNEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldActiveAgent, v))
}

// ActiveAgentIn applies the In predicate on the "active_agent" field.
func ActiveAgentIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldActiveAgent, vs...))
}

// ActiveAgentNotIn applies the NotIn predicate on the "active_agent" field.
func ActiveAgentNotIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldActiveAgent, vs...))
}

// ActiveAgentGT applies the GT predicate on the "active_agent" field.
func ActiveAgentGT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldActiveAgent, v))
}

// ActiveAgentGTE applies the GTE predicate on the "active_agent" field.
func ActiveAgentGTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldActiveAgent, v))
}

// ActiveAgentLT applies the LT predicate on the "active_agent" field.
func ActiveAgentLT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldActiveAgent, v))
}

// ActiveAgentLTE applies the LTE predicate on the "active_agent" field.
func ActiveAgentLTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldActiveAgent, v))
}

// ActiveAgentContains applies the Contains predicate on the "active_agent" field.
func ActiveAgentContains(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContains(FieldActiveAgent, v))
}

// ActiveAgentHasPrefix applies the HasPrefix predicate on the "active_agent" field.
func ActiveAgentHasPrefix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasPrefix(FieldActiveAgent, v))
}

// ActiveAgentHasSuffix applies the HasSuffix predicate on the "active_agent" field.
func ActiveAgentHasSuffix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasSuffix(FieldActiveAgent, v))
}

// ActiveAgentEqualFold applies the EqualFold predicate on the "active_agent" field.
func ActiveAgentEqualFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldActiveAgent, v))
}

// ActiveAgentContainsFold applies the ContainsFold predicate on the "active_agent" field.
func ActiveAgentContainsFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldActiveAgent, v))
}

// FsmStateEQ applies the EQ predicate on the "fsm_state" field.
func FsmStateEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldFsmState, v))
}

// FsmStateNEQ applies the NEQ predicate on the "fsm_state" field.
func FsmStateNEQ(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldFsmState, v))
}

// FsmStateIn applies the In predicate on the "fsm_state" field.
func FsmStateIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldFsmState, vs...))
}

// FsmStateNotIn applies the NotIn predicate on the "fsm_state" field.
func FsmStateNotIn(vs ...string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldFsmState, vs...))
}

// FsmStateGT applies the GT predicate on the "fsm_state" field.
func FsmStateGT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldFsmState, v))
}

// FsmStateGTE applies the GTE predicate on the "fsm_state" field.
func FsmStateGTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldFsmState, v))
}

// FsmStateLT applies the LT predicate on the "fsm_state" field.
func FsmStateLT(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldFsmState, v))
}

// FsmStateLTE applies the LTE predicate on the "fsm_state" field.
func FsmStateLTE(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldFsmState, v))
}

// FsmStateContains applies the Contains predicate on the "fsm_state" field.
func FsmStateContains(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContains(FieldFsmState, v))
}

// FsmStateHasPrefix applies the HasPrefix predicate on the "fsm_state" field.
func FsmStateHasPrefix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasPrefix(FieldFsmState, v))
}

// FsmStateHasSuffix applies the HasSuffix predicate on the "fsm_state" field.
func FsmStateHasSuffix(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldHasSuffix(FieldFsmState, v))
}

// FsmStateEqualFold applies the EqualFold predicate on the "fsm_state" field.
func FsmStateEqualFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEqualFold(FieldFsmState, v))
}

// FsmStateContainsFold applies the ContainsFold predicate on the "fsm_state" field.
func FsmStateContainsFold(v string) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldContainsFold(FieldFsmState, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotNull(FieldMetadata))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentContext {
	return predicate.AgentContext(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentContext) predicate.AgentContext {
	return predicate.AgentContext(sql.NotPredicates(p))
}
