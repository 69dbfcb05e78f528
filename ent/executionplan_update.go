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
	"github.com/maestro-ai/maestro/ent/executionplan"
	"github.com/maestro-ai/maestro/ent/predicate"
	"github.com/maestro-ai/maestro/ent/subtask"
)

// ExecutionPlanUpdate is the builder for updating ExecutionPlan entities.
type ExecutionPlanUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionPlanMutation
}

// Where appends a list predicates to the ExecutionPlanUpdate builder.
func (_u *ExecutionPlanUpdate) Where(ps ...predicate.ExecutionPlan) *ExecutionPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoal sets the "goal" field.
func (_u *ExecutionPlanUpdate) SetGoal(v string) *ExecutionPlanUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableGoal(v *string) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionPlanUpdate) SetStatus(v executionplan.Status) *ExecutionPlanUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableStatus(v *executionplan.Status) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentSubtaskID sets the "current_subtask_id" field.
func (_u *ExecutionPlanUpdate) SetCurrentSubtaskID(v string) *ExecutionPlanUpdate {
	_u.mutation.SetCurrentSubtaskID(v)
	return _u
}

// SetNillableCurrentSubtaskID sets the "current_subtask_id" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableCurrentSubtaskID(v *string) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetCurrentSubtaskID(*v)
	}
	return _u
}

// ClearCurrentSubtaskID clears the value of the "current_subtask_id" field.
func (_u *ExecutionPlanUpdate) ClearCurrentSubtaskID() *ExecutionPlanUpdate {
	_u.mutation.ClearCurrentSubtaskID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionPlanUpdate) SetMetadata(v map[string]interface{}) *ExecutionPlanUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionPlanUpdate) ClearMetadata() *ExecutionPlanUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ExecutionPlanUpdate) SetApprovedAt(v time.Time) *ExecutionPlanUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableApprovedAt(v *time.Time) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ExecutionPlanUpdate) ClearApprovedAt() *ExecutionPlanUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionPlanUpdate) SetStartedAt(v time.Time) *ExecutionPlanUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableStartedAt(v *time.Time) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionPlanUpdate) ClearStartedAt() *ExecutionPlanUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionPlanUpdate) SetCompletedAt(v time.Time) *ExecutionPlanUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionPlanUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionPlanUpdate) ClearCompletedAt() *ExecutionPlanUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_u *ExecutionPlanUpdate) AddSubtaskIDs(ids ...string) *ExecutionPlanUpdate {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_u *ExecutionPlanUpdate) AddSubtasks(v ...*Subtask) *ExecutionPlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_u *ExecutionPlanUpdate) Mutation() *ExecutionPlanMutation {
	return _u.mutation
}

// ClearSubtasks clears all "subtasks" edges to the Subtask entity.
func (_u *ExecutionPlanUpdate) ClearSubtasks() *ExecutionPlanUpdate {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to Subtask entities by IDs.
func (_u *ExecutionPlanUpdate) RemoveSubtaskIDs(ids ...string) *ExecutionPlanUpdate {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to Subtask entities.
func (_u *ExecutionPlanUpdate) RemoveSubtasks(v ...*Subtask) *ExecutionPlanUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionPlanUpdate) check() error {
	if v, ok := _u.mutation.Goal(); ok {
		if err := executionplan.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionplan.Table, executionplan.Columns, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(executionplan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentSubtaskID(); ok {
		_spec.SetField(executionplan.FieldCurrentSubtaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentSubtaskIDCleared() {
		_spec.ClearField(executionplan.FieldCurrentSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executionplan.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executionplan.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(executionplan.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(executionplan.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionplan.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionplan.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionplan.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubtasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionPlanUpdateOne is the builder for updating a single ExecutionPlan entity.
type ExecutionPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionPlanMutation
}

// SetGoal sets the "goal" field.
func (_u *ExecutionPlanUpdateOne) SetGoal(v string) *ExecutionPlanUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableGoal(v *string) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionPlanUpdateOne) SetStatus(v executionplan.Status) *ExecutionPlanUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableStatus(v *executionplan.Status) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentSubtaskID sets the "current_subtask_id" field.
func (_u *ExecutionPlanUpdateOne) SetCurrentSubtaskID(v string) *ExecutionPlanUpdateOne {
	_u.mutation.SetCurrentSubtaskID(v)
	return _u
}

// SetNillableCurrentSubtaskID sets the "current_subtask_id" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableCurrentSubtaskID(v *string) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetCurrentSubtaskID(*v)
	}
	return _u
}

// ClearCurrentSubtaskID clears the value of the "current_subtask_id" field.
func (_u *ExecutionPlanUpdateOne) ClearCurrentSubtaskID() *ExecutionPlanUpdateOne {
	_u.mutation.ClearCurrentSubtaskID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExecutionPlanUpdateOne) SetMetadata(v map[string]interface{}) *ExecutionPlanUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExecutionPlanUpdateOne) ClearMetadata() *ExecutionPlanUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *ExecutionPlanUpdateOne) SetApprovedAt(v time.Time) *ExecutionPlanUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableApprovedAt(v *time.Time) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *ExecutionPlanUpdateOne) ClearApprovedAt() *ExecutionPlanUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionPlanUpdateOne) SetStartedAt(v time.Time) *ExecutionPlanUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ExecutionPlanUpdateOne) ClearStartedAt() *ExecutionPlanUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionPlanUpdateOne) SetCompletedAt(v time.Time) *ExecutionPlanUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionPlanUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionPlanUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExecutionPlanUpdateOne) ClearCompletedAt() *ExecutionPlanUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddSubtaskIDs adds the "subtasks" edge to the Subtask entity by IDs.
func (_u *ExecutionPlanUpdateOne) AddSubtaskIDs(ids ...string) *ExecutionPlanUpdateOne {
	_u.mutation.AddSubtaskIDs(ids...)
	return _u
}

// AddSubtasks adds the "subtasks" edges to the Subtask entity.
func (_u *ExecutionPlanUpdateOne) AddSubtasks(v ...*Subtask) *ExecutionPlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubtaskIDs(ids...)
}

// Mutation returns the ExecutionPlanMutation object of the builder.
func (_u *ExecutionPlanUpdateOne) Mutation() *ExecutionPlanMutation {
	return _u.mutation
}

// ClearSubtasks clears all "subtasks" edges to the Subtask entity.
func (_u *ExecutionPlanUpdateOne) ClearSubtasks() *ExecutionPlanUpdateOne {
	_u.mutation.ClearSubtasks()
	return _u
}

// RemoveSubtaskIDs removes the "subtasks" edge to Subtask entities by IDs.
func (_u *ExecutionPlanUpdateOne) RemoveSubtaskIDs(ids ...string) *ExecutionPlanUpdateOne {
	_u.mutation.RemoveSubtaskIDs(ids...)
	return _u
}

// RemoveSubtasks removes "subtasks" edges to Subtask entities.
func (_u *ExecutionPlanUpdateOne) RemoveSubtasks(v ...*Subtask) *ExecutionPlanUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubtaskIDs(ids...)
}

// Where appends a list predicates to the ExecutionPlanUpdate builder.
func (_u *ExecutionPlanUpdateOne) Where(ps ...predicate.ExecutionPlan) *ExecutionPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionPlanUpdateOne) Select(field string, fields ...string) *ExecutionPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionPlan entity.
func (_u *ExecutionPlanUpdateOne) Save(ctx context.Context) (*ExecutionPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionPlanUpdateOne) SaveX(ctx context.Context) *ExecutionPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Goal(); ok {
		if err := executionplan.GoalValidator(v); err != nil {
			return &ValidationError{Name: "goal", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.goal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := executionplan.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionPlan.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionPlanUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionplan.Table, executionplan.Columns, sqlgraph.NewFieldSpec(executionplan.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionplan.FieldID)
		for _, f := range fields {
			if !executionplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionplan.FieldID {
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
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(executionplan.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionplan.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentSubtaskID(); ok {
		_spec.SetField(executionplan.FieldCurrentSubtaskID, field.TypeString, value)
	}
	if _u.mutation.CurrentSubtaskIDCleared() {
		_spec.ClearField(executionplan.FieldCurrentSubtaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(executionplan.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(executionplan.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(executionplan.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(executionplan.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionplan.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(executionplan.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionplan.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(executionplan.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.SubtasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubtasksIDs(); len(nodes) > 0 && !_u.mutation.SubtasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubtasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
