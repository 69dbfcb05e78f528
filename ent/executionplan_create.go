// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-ai/maestro/ent/executionplan"
	"github.com/maestro-ai/maestro/ent/subtask"
)

// ExecutionPlanCreate is the builder for creating a ExecutionPlan entity.
type ExecutionPlanCreate struct {
	config
	mutation *ExecutionPlanMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ExecutionPlanCreate) SetSessionID(v string) *ExecutionPlanCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *ExecutionPlanCreate) SetConversationID(v string) *ExecutionPlanCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *ExecutionPlanCreate) SetGoal(v string) *ExecutionPlanCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionPlanCreate) SetStatus(v executionplan.Status) *ExecutionPlanCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableStatus(v *executionplan.Status) *ExecutionPlanCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentSubtaskID sets the "current_subtask_id" field.
func (_c *ExecutionPlanCreate) SetCurrentSubtaskID(v string) *ExecutionPlanCreate {
	_c.mutation.SetCurrentSubtaskID(v)
	return _c
}

// SetNillableCurrentSubtaskID sets the "current_subtask_id" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableCurrentSubtaskID(v *string) *ExecutionPlanCreate {
	if v != nil {
		_c.SetCurrentSubtaskID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExecutionPlanCreate) SetMetadata(v map[string]interface{}) *ExecutionPlanCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionPlanCreate) SetCreatedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableCreatedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *ExecutionPlanCreate) SetApprovedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableApprovedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionPlanCreate) SetStartedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableStartedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionPlanCreate) SetCompletedAt(v time.Time) *ExecutionPlanCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExecutionPlanCreate) SetNillableCompletedAt(v *time.Time) *ExecutionPlanCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionPlanCreate) SetID(v string) *ExecutionPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_c *ExecutionPlanCreate) AddSubtaskIDs(ids ...string) *ExecutionPlanCreate {
	_c.mutation.AddSubtaskIDs(ids...)
	return _c
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_c *ExecutionPlanCreate) AddSubtasks(v ...*Subtask) *ExecutionPlanCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubtaskIDs(ids...)
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_c *ExecutionPlanCreate) Mutation() *ExecutionPlanMutation {
	return _c.mutation
}

// Save creates the ExecutionPlan in the database.
func (_c *ExecutionPlanCreate) Save(ctx context.Context) (*ExecutionPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionPlanCreate) SaveX(ctx context.Context) *ExecutionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionPlanCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionplan.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionPlanCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExecutionPlan.session_id"`)}
	}
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ExecutionPlan.conversation_id"`)}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "ExecutionPlan.goal"`)}
	}
	if v, ok := _c.mutation.Goal(); ok {
		if err := executionplan.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.goal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionPlan.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionPlan.created_at"`)}
	}
	return nil
}

func (_c *ExecutionPlanCreate) sqlSave(ctx context.Context) (*ExecutionPlan, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionPlan.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionPlanCreate) createSpec() (*ExecutionPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionplan.Table, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(executionplan.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(executionplan.FieldConversationID, field.TypeString, value)
		_node.ConversationID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(executionplan.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentSubtaskID(); ok {
		_spec.SetField(executionplan.FieldCurrentSubtaskID, field.TypeString, value)
		_node.CurrentSubtaskID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(executionplan.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(executionplan.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionplan.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SubtasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionplan.SubtasksTable,
			Columns: []string{executionplan.SubtasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionPlanCreateBulk is the builder for creating many ExecutionPlan entities in bulk.
type ExecutionPlanCreateBulk struct {
	config
	err      error
	builders []*ExecutionPlanCreate
}

// Save creates the ExecutionPlan entities in the database.
func (_c *ExecutionPlanCreateBulk) Save(ctx context.Context) ([]*ExecutionPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionPlanMutation)
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
func (_c *ExecutionPlanCreateBulk) SaveX(ctx context.Context) []*ExecutionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
