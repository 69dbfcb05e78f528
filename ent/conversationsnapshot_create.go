// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestro-ai/maestro/ent/conversation"
	"github.com/maestro-ai/maestro/ent/conversationsnapshot"
)

// ConversationSnapshotCreate is the builder for creating a ConversationSnapshot entity.
type ConversationSnapshotCreate struct {
	config
	mutation *ConversationSnapshotMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ConversationSnapshotCreate) SetConversationID(v string) *ConversationSnapshotCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetSubtaskID sets the "subtask_id" field.
func (_c *ConversationSnapshotCreate) SetSubtaskID(v string) *ConversationSnapshotCreate {
	_c.mutation.SetSubtaskID(v)
	return _c
}

// SetNillableSubtaskID sets the "subtask_id" field if the given value is not nil.
func (_c *ConversationSnapshotCreate) SetNillableSubtaskID(v *string) *ConversationSnapshotCreate {
	if v != nil {
		_c.SetSubtaskID(*v)
	}
	return _c
}

// SetMessages sets the "messages" field.
func (_c *ConversationSnapshotCreate) SetMessages(v []map[string]interface{}) *ConversationSnapshotCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationSnapshotCreate) SetCreatedAt(v time.Time) *ConversationSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ConversationSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationSnapshotCreate) SetID(v string) *ConversationSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ConversationSnapshotCreate) SetConversation(v *Conversation) *ConversationSnapshotCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ConversationSnapshotMutation object of the builder.
func (_c *ConversationSnapshotCreate) Mutation() *ConversationSnapshotMutation {
	return _c.mutation
}

// Save creates the ConversationSnapshot in the database.
func (_c *ConversationSnapshotCreate) Save(ctx context.Context) (*ConversationSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationSnapshotCreate) SaveX(ctx context.Context) *ConversationSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationSnapshotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversationsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationSnapshotCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ConversationSnapshot.conversation_id"`)}
	}
	if _, ok := _c.mutation.Messages(); !ok {
		return &ValidationError{Name: "messages", err: errors.New(`ent: missing required field "ConversationSnapshot.messages"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConversationSnapshot.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ConversationSnapshot.conversation"`)}
	}
	return nil
}

func (_c *ConversationSnapshotCreate) sqlSave(ctx context.Context) (*ConversationSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected ConversationSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationSnapshotCreate) createSpec() (*ConversationSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ConversationSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversationsnapshot.Table, sqlgraph.NewFieldSpec(conversationsnapshot.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SubtaskID(); ok {
		_spec.SetField(conversationsnapshot.FieldSubtaskID, field.TypeString, value)
		_node.SubtaskID = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(conversationsnapshot.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversationsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversationsnapshot.ConversationTable,
			Columns: []string{conversationsnapshot.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationSnapshotCreateBulk is the builder for creating many ConversationSnapshot entities in bulk.
type ConversationSnapshotCreateBulk struct {
	config
	err      error
	builders []*ConversationSnapshotCreate
}

// Save creates the ConversationSnapshot entities in the database.
func (_c *ConversationSnapshotCreateBulk) Save(ctx context.Context) ([]*ConversationSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConversationSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationSnapshotMutation)
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
func (_c *ConversationSnapshotCreateBulk) SaveX(ctx context.Context) []*ConversationSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
