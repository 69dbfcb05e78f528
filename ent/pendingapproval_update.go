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
	"github.com/maestro-ai/maestro/ent/pendingapproval"
	"github.com/maestro-ai/maestro/ent/predicate"
)

// PendingApprovalUpdate is the builder for updating PendingApproval entities.
type PendingApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdate) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *PendingApprovalUpdate) SetKind(v pendingapproval.Kind) *PendingApprovalUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableKind(v *pendingapproval.Kind) *PendingApprovalUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PendingApprovalUpdate) SetSubject(v string) *PendingApprovalUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableSubject(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *PendingApprovalUpdate) SetDetails(v map[string]interface{}) *PendingApprovalUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PendingApprovalUpdate) ClearDetails() *PendingApprovalUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetReason sets the "reason" field.
func (_u *PendingApprovalUpdate) SetReason(v string) *PendingApprovalUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableReason(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PendingApprovalUpdate) ClearReason() *PendingApprovalUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdate) SetStatus(v pendingapproval.Status) *PendingApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolutionFeedback sets the "resolution_feedback" field.
func (_u *PendingApprovalUpdate) SetResolutionFeedback(v string) *PendingApprovalUpdate {
	_u.mutation.SetResolutionFeedback(v)
	return _u
}

// SetNillableResolutionFeedback sets the "resolution_feedback" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableResolutionFeedback(v *string) *PendingApprovalUpdate {
	if v != nil {
		_u.SetResolutionFeedback(*v)
	}
	return _u
}

// ClearResolutionFeedback clears the value of the "resolution_feedback" field.
func (_u *PendingApprovalUpdate) ClearResolutionFeedback() *PendingApprovalUpdate {
	_u.mutation.ClearResolutionFeedback()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingApprovalUpdate) SetResolvedAt(v time.Time) *PendingApprovalUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingApprovalUpdate) SetNillableResolvedAt(v *time.Time) *PendingApprovalUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingApprovalUpdate) ClearResolvedAt() *PendingApprovalUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdate) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PendingApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PendingApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pendingapproval.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pendingapproval.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pendingapproval.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(pendingapproval.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(pendingapproval.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pendingapproval.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(pendingapproval.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolutionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldResolutionFeedback, field.TypeString, value)
	}
	if _u.mutation.ResolutionFeedbackCleared() {
		_spec.ClearField(pendingapproval.FieldResolutionFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingapproval.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendingapproval.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PendingApprovalUpdateOne is the builder for updating a single PendingApproval entity.
type PendingApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PendingApprovalMutation
}

// SetKind sets the "kind" field.
func (_u *PendingApprovalUpdateOne) SetKind(v pendingapproval.Kind) *PendingApprovalUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableKind(v *pendingapproval.Kind) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PendingApprovalUpdateOne) SetSubject(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableSubject(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetDetails sets the "details" field.
func (_u *PendingApprovalUpdateOne) SetDetails(v map[string]interface{}) *PendingApprovalUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *PendingApprovalUpdateOne) ClearDetails() *PendingApprovalUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetReason sets the "reason" field.
func (_u *PendingApprovalUpdateOne) SetReason(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableReason(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *PendingApprovalUpdateOne) ClearReason() *PendingApprovalUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PendingApprovalUpdateOne) SetStatus(v pendingapproval.Status) *PendingApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableStatus(v *pendingapproval.Status) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetResolutionFeedback sets the "resolution_feedback" field.
func (_u *PendingApprovalUpdateOne) SetResolutionFeedback(v string) *PendingApprovalUpdateOne {
	_u.mutation.SetResolutionFeedback(v)
	return _u
}

// SetNillableResolutionFeedback sets the "resolution_feedback" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableResolutionFeedback(v *string) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetResolutionFeedback(*v)
	}
	return _u
}

// ClearResolutionFeedback clears the value of the "resolution_feedback" field.
func (_u *PendingApprovalUpdateOne) ClearResolutionFeedback() *PendingApprovalUpdateOne {
	_u.mutation.ClearResolutionFeedback()
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *PendingApprovalUpdateOne) SetResolvedAt(v time.Time) *PendingApprovalUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *PendingApprovalUpdateOne) SetNillableResolvedAt(v *time.Time) *PendingApprovalUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *PendingApprovalUpdateOne) ClearResolvedAt() *PendingApprovalUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the PendingApprovalMutation object of the builder.
func (_u *PendingApprovalUpdateOne) Mutation() *PendingApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the PendingApprovalUpdate builder.
func (_u *PendingApprovalUpdateOne) Where(ps ...predicate.PendingApproval) *PendingApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PendingApprovalUpdateOne) Select(field string, fields ...string) *PendingApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PendingApproval entity.
func (_u *PendingApprovalUpdateOne) Save(ctx context.Context) (*PendingApproval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) SaveX(ctx context.Context) *PendingApproval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PendingApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PendingApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PendingApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := pendingapproval.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pendingapproval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PendingApproval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PendingApprovalUpdateOne) sqlSave(ctx context.Context) (_node *PendingApproval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pendingapproval.Table, pendingapproval.Columns, sqlgraph.NewFieldSpec(pendingapproval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PendingApproval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pendingapproval.FieldID)
		for _, f := range fields {
			if !pendingapproval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pendingapproval.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(pendingapproval.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(pendingapproval.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(pendingapproval.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(pendingapproval.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(pendingapproval.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(pendingapproval.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pendingapproval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolutionFeedback(); ok {
		_spec.SetField(pendingapproval.FieldResolutionFeedback, field.TypeString, value)
	}
	if _u.mutation.ResolutionFeedbackCleared() {
		_spec.ClearField(pendingapproval.FieldResolutionFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(pendingapproval.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(pendingapproval.FieldResolvedAt, field.TypeTime)
	}
	_node = &PendingApproval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pendingapproval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
