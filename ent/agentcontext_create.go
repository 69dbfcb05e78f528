// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-ai/maestro/ent/agentcontext"
)

// AgentContextCreate is the builder for creating a AgentContext entity.
type AgentContextCreate struct {
	config
	mutation *AgentContextMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AgentContextCreate) SetSessionID(v string) *AgentContextCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActiveAgent sets the "active_agent" field.
func (_c *AgentContextCreate) SetActiveAgent(v string) *AgentContextCreate {
	_c.mutation.SetActiveAgent(v)
	return _c
}

// SetNillableActiveAgent sets the "active_agent" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableActiveAgent(v *string) *AgentContextCreate {
	if v != nil {
		_c.SetActiveAgent(*v)
	}
	return _c
}

// SetFsmState sets the "fsm_state" field.
func (_c *AgentContextCreate) SetFsmState(v string) *AgentContextCreate {
	_c.mutation.SetFsmState(v)
	return _c
}

// SetNillableFsmState sets the "fsm_state" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableFsmState(v *string) *AgentContextCreate {
	if v != nil {
		_c.SetFsmState(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AgentContextCreate) SetMetadata(v map[string]interface{}) *AgentContextCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentContextCreate) SetUpdatedAt(v time.Time) *AgentContextCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentContextCreate) SetNillableUpdatedAt(v *time.Time) *AgentContextCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentContextCreate) SetID(v string) *AgentContextCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentContextMutation object of the builder.
func (_c *AgentContextCreate) Mutation() *AgentContextMutation {
	return _c.mutation
}

// Save creates the AgentContext in the database.
func (_c *AgentContextCreate) Save(ctx context.Context) (*AgentContext, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentContextCreate) SaveX(ctx context.Context) *AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentContextCreate) defaults() {
	if _, ok := _c.mutation.ActiveAgent(); !ok {
		v := agentcontext.DefaultActiveAgent
		_c.mutation.SetActiveAgent(v)
	}
	if _, ok := _c.mutation.FsmState(); !ok {
		v := agentcontext.DefaultFsmState
		_c.mutation.SetFsmState(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentcontext.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentContextCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AgentContext.session_id"`)}
	}
	if _, ok := _c.mutation.ActiveAgent(); !ok {
		return &ValidationError{Name: "active_agent", err: errors.New(`ent: missing required field "AgentContext.active_agent"`)}
	}
	if _, ok := _c.mutation.FsmState(); !ok {
		return &ValidationError{Name: "fsm_state", err: errors.New(`ent: missing required field "AgentContext.fsm_state"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentContext.updated_at"`)}
	}
	return nil
}

func (_c *AgentContextCreate) sqlSave(ctx context.Context) (*AgentContext, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AgentContext.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentContextCreate) createSpec() (*AgentContext, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentContext{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentcontext.Table, sqlgraph.NewFieldSpec(agentcontext.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(agentcontext.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ActiveAgent(); ok {
		_spec.SetField(agentcontext.FieldActiveAgent, field.TypeString, value)
		_node.ActiveAgent = value
	}
	if value, ok := _c.mutation.FsmState(); ok {
		_spec.SetField(agentcontext.FieldFsmState, field.TypeString, value)
		_node.FsmState = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(agentcontext.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentcontext.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// AgentContextCreateBulk is the builder for creating many AgentContext entities in bulk.
type AgentContextCreateBulk struct {
	config
	err      error
	builders []*AgentContextCreate
}

// Save creates the AgentContext entities in the database.
func (_c *AgentContextCreateBulk) Save(ctx context.Context) ([]*AgentContext, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentContext, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentContextMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentContextCreateBulk) SaveX(ctx context.Context) []*AgentContext {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentContextCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentContextCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
