// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-ai/maestro/ent/agentcontext"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// AgentContextUpdate is the builder for updating AgentContext entities.
type AgentContextUpdate struct {
	config
	hooks    []Hook
	mutation *AgentContextMutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdate) Where(ps ...predicate.AgentContext) *AgentContextUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActiveAgent sets the "active_agent" field.
func (_u *AgentContextUpdate) SetActiveAgent(v string) *AgentContextUpdate {
	_u.mutation.SetActiveAgent(v)
	return _u
}

// SetNillableActiveAgent sets the "active_agent" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableActiveAgent(v *string) *AgentContextUpdate {
	if v != nil {
		_u.SetActiveAgent(*v)
	}
	return _u
}

// SetFsmState sets the "fsm_state" field.
func (_u *AgentContextUpdate) SetFsmState(v string) *AgentContextUpdate {
	_u.mutation.SetFsmState(v)
	return _u
}

// SetNillableFsmState sets the "fsm_state" field if the given value is not nil.
func (_u *AgentContextUpdate) SetNillableFsmState(v *string) *AgentContextUpdate {
	if v != nil {
		_u.SetFsmState(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentContextUpdate) SetMetadata(v map[string]interface{}) *AgentContextUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentContextUpdate) ClearMetadata() *AgentContextUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdate) SetUpdatedAt(v time.Time) *AgentContextUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdate) Mutation() *AgentContextMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentContextUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentContextUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentContextUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActiveAgent(); ok {
		_spec.SetField(agentcontext.FieldActiveAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FsmState(); ok {
		_spec.SetField(agentcontext.FieldFsmState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentcontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentcontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentContextUpdateOne is the builder for updating a single AgentContext entity.
type AgentContextUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentContextMutation
}

// SetActiveAgent sets the "active_agent" field.
func (_u *AgentContextUpdateOne) SetActiveAgent(v string) *AgentContextUpdateOne {
	_u.mutation.SetActiveAgent(v)
	return _u
}

// SetNillableActiveAgent sets the "active_agent" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableActiveAgent(v *string) *AgentContextUpdateOne {
	if v != nil {
		_u.SetActiveAgent(*v)
	}
	return _u
}

// SetFsmState sets the "fsm_state" field.
func (_u *AgentContextUpdateOne) SetFsmState(v string) *AgentContextUpdateOne {
	_u.mutation.SetFsmState(v)
	return _u
}

// SetNillableFsmState sets the "fsm_state" field if the given value is not nil.
func (_u *AgentContextUpdateOne) SetNillableFsmState(v *string) *AgentContextUpdateOne {
	if v != nil {
		_u.SetFsmState(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AgentContextUpdateOne) SetMetadata(v map[string]interface{}) *AgentContextUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AgentContextUpdateOne) ClearMetadata() *AgentContextUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentContextUpdateOne) SetUpdatedAt(v time.Time) *AgentContextUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentContextMutation object of the builder.
func (_u *AgentContextUpdateOne) Mutation() *AgentContextMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentContextUpdate builder.
func (_u *AgentContextUpdateOne) Where(ps ...predicate.AgentContext) *AgentContextUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentContextUpdateOne) Select(field string, fields ...string) *AgentContextUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentContext entity.
func (_u *AgentContextUpdateOne) Save(ctx context.Context) (*AgentContext, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentContextUpdateOne) SaveX(ctx context.Context) *AgentContext {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentContextUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentContextUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentContextUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentcontext.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *AgentContextUpdateOne) sqlSave(ctx context.Context) (_node *AgentContext, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentcontext.Table, agentcontext.Columns, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentContext.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentcontext.FieldID)
		for _, f := range fields {
			if !agentcontext.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActiveAgent(); ok {
		_spec.SetField(agentcontext.FieldActiveAgent, field.TypeString, value)
	}
	if value, ok := _u.mutation.FsmState(); ok {
		_spec.SetField(agentcontext.FieldFsmState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(agentcontext.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(agentcontext.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentContext{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentcontext.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
