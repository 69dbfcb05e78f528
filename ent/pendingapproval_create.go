// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-ai/maestro/ent/pendingapproval"
)

// PendingApprovalCreate is the builder for creating a PendingApproval entity.
type PendingApprovalCreate struct {
	config
	mutation *PendingApprovalMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *PendingApprovalCreate) SetKind(v pendingapproval.Kind) *PendingApprovalCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PendingApprovalCreate) SetSubject(v string) *PendingApprovalCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PendingApprovalCreate) SetSessionID(v string) *PendingApprovalCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDetails sets the "details" field.
func (_c *PendingApprovalCreate) SetDetails(v map[string]interface{}) *PendingApprovalCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *PendingApprovalCreate) SetReason(v string) *PendingApprovalCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableReason(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PendingApprovalCreate) SetStatus(v pendingapproval.Status) *PendingApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetResolutionFeedback sets the "resolution_feedback" field.
func (_c *PendingApprovalCreate) SetResolutionFeedback(v string) *PendingApprovalCreate {
	_c.mutation.SetResolutionFeedback(v)
	return _c
}

// SetNillableResolutionFeedback sets the "resolution_feedback" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableResolutionFeedback(v *string) *PendingApprovalCreate {
	if v != nil {
		_c.SetResolutionFeedback(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PendingApprovalCreate) SetCreatedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableCreatedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *PendingApprovalCreate) SetResolvedAt(v time.Time) *PendingApprovalCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *PendingApprovalCreate) SetNillableResolvedAt(v *time.Time) *PendingApprovalCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PendingApprovalCreate) SetID(v string) *PendingApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_c *PendingApprovalCreate) Mutation() *PendingApprovalMutation {
	return _c.mutation
}

// Save creates the PendingApproval in the database.
func (_c *PendingApprovalCreate) Save(ctx context.Context) (*PendingApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PendingApprovalCreate) SaveX(ctx context.Context) *PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PendingApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pendingapproval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pendingapproval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PendingApprovalCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PendingApproval.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := pendingapproval.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PendingApproval.subject"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PendingApproval.session_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PendingApproval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PendingApproval.created_at"`)}
	}
	return nil
}

func (_c *PendingApprovalCreate) sqlSave(ctx context.Context) (*PendingApproval, error) {
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
			return nil, fmt.Errorf("unexpected PendingApproval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PendingApprovalCreate) createSpec() (*PendingApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &PendingApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pendingapproval.Table, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(pendingapproval.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(pendingapproval.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pendingapproval.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(pendingapproval.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(pendingapproval.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResolutionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldResolutionFeedback, field.TypeString, value)
		_node.ResolutionFeedback = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pendingapproval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingapproval.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	return _node, _spec
}

// PendingApprovalCreateBulk is the builder for creating many PendingApproval entities in bulk.
type PendingApprovalCreateBulk struct {
	config
	err      error
	builders []*PendingApprovalCreate
}

// Save creates the PendingApproval entities in the database.
func (_c *PendingApprovalCreateBulk) Save(ctx context.Context) ([]*PendingApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PendingApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PendingApprovalMutation)
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
func (_c *PendingApprovalCreateBulk) SaveX(ctx context.Context) []*PendingApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PendingApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PendingApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
