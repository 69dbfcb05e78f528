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

// SubtaskCreate is the builder for creating a Subtask entity.
type SubtaskCreate struct {
	config
	mutation *SubtaskMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *SubtaskCreate) SetPlanID(v string) *SubtaskCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *SubtaskCreate) SetDescription(v string) *SubtaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *SubtaskCreate) SetAssignedAgentID(v string) *SubtaskCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *SubtaskCreate) SetDependencies(v []string) *SubtaskCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubtaskCreate) SetStatus(v subtask.Status) *SubtaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableStatus(v *subtask.Status) *SubtaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *SubtaskCreate) SetResult(v string) *SubtaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableResult(v *string) *SubtaskCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *SubtaskCreate) SetError(v string) *SubtaskCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableError(v *string) *SubtaskCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubtaskCreate) SetCreatedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableCreatedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SubtaskCreate) SetStartedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableStartedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SubtaskCreate) SetCompletedAt(v time.Time) *SubtaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SubtaskCreate) SetNillableCompletedAt(v *time.Time) *SubtaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubtaskCreate) SetID(v string) *SubtaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPlan sets the "plan" edge to the ExecutionPlan entity.
func (_c *SubtaskCreate) SetPlan(v *ExecutionPlan) *SubtaskCreate {
	return _c.SetPlanID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_c *SubtaskCreate) Mutation() *SubtaskMutation {
	return _c.mutation
}

// Save creates the Subtask in the database.
func (_c *SubtaskCreate) Save(ctx context.Context) (*Subtask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtaskCreate) SaveX(ctx context.Context) *Subtask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubtaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := subtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := subtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtaskCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "Subtask.plan_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Subtask.description"`)}
	}
	if _, ok := _c.mutation.AssignedAgentID(); !ok {
		return &ValidationError{Name: "assigned_agent_id", err: errors.New(`ent: missing required field "Subtask.assigned_agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Subtask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subtask.created_at"`)}
	}
	if len(_c.mutation.PlanIDs()) == 0 {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required edge "Subtask.plan"`)}
	}
	return nil
}

func (_c *SubtaskCreate) sqlSave(ctx context.Context) (*Subtask, error) {
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
			return nil, fmt.Errorf("unexpected Subtask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubtaskCreate) createSpec() (*Subtask, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtask.Table, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(subtask.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(subtask.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(subtask.FieldResult, field.TypeString, value)
		_node.Result = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(subtask.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(subtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(subtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(subtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PlanIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.PlanTable,
			Columns: []string{subtask.PlanColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PlanID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubtaskCreateBulk is the builder for creating many Subtask entities in bulk.
type SubtaskCreateBulk struct {
	config
	err      error
	builders []*SubtaskCreate
}

// Save creates the Subtask entities in the database.
func (_c *SubtaskCreateBulk) Save(ctx context.Context) ([]*Subtask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subtask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtaskMutation)
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
func (_c *SubtaskCreateBulk) SaveX(ctx context.Context) []*Subtask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
