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
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// OperationUpdate is the builder for updating Operation entities.
type OperationUpdate struct {
	config
	hooks    []Hook
	mutation *OperationMutation
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdate) Where(ps ...predicate.Operation) *OperationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *OperationUpdate) SetParentID(v string) *OperationUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableParentID(v *string) *OperationUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *OperationUpdate) ClearParentID() *OperationUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetOperationType sets the "operation_type" field.
func (_u *OperationUpdate) SetOperationType(v string) *OperationUpdate {
	_u.mutation.SetOperationType(v)
	return _u
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableOperationType(v *string) *OperationUpdate {
	if v != nil {
		_u.SetOperationType(*v)
	}
	return _u
}

// SetQueueName sets the "queue_name" field.
func (_u *OperationUpdate) SetQueueName(v string) *OperationUpdate {
	_u.mutation.SetQueueName(v)
	return _u
}

// SetNillableQueueName sets the "queue_name" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableQueueName(v *string) *OperationUpdate {
	if v != nil {
		_u.SetQueueName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationUpdate) SetStatus(v operation.Status) *OperationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableStatus(v *operation.Status) *OperationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *OperationUpdate) SetAgentType(v string) *OperationUpdate {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableAgentType(v *string) *OperationUpdate {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// ClearAgentType clears the value of the "agent_type" field.
func (_u *OperationUpdate) ClearAgentType() *OperationUpdate {
	_u.mutation.ClearAgentType()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *OperationUpdate) SetPriority(v int) *OperationUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *OperationUpdate) SetNillablePriority(v *int) *OperationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *OperationUpdate) AddPriority(v int) *OperationUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OperationUpdate) SetStartedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableStartedAt(v *time.Time) *OperationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OperationUpdate) ClearStartedAt() *OperationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OperationUpdate) SetCompletedAt(v time.Time) *OperationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableCompletedAt(v *time.Time) *OperationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OperationUpdate) ClearCompletedAt() *OperationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OperationUpdate) SetDurationMs(v int64) *OperationUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableDurationMs(v *int64) *OperationUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OperationUpdate) AddDurationMs(v int64) *OperationUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *OperationUpdate) ClearDurationMs() *OperationUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *OperationUpdate) SetInputData(v map[string]interface{}) *OperationUpdate {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *OperationUpdate) ClearInputData() *OperationUpdate {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutputData sets the "output_data" field.
func (_u *OperationUpdate) SetOutputData(v map[string]interface{}) *OperationUpdate {
	_u.mutation.SetOutputData(v)
	return _u
}

// ClearOutputData clears the value of the "output_data" field.
func (_u *OperationUpdate) ClearOutputData() *OperationUpdate {
	_u.mutation.ClearOutputData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OperationUpdate) SetErrorMessage(v string) *OperationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableErrorMessage(v *string) *OperationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OperationUpdate) ClearErrorMessage() *OperationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *OperationUpdate) SetRetryCount(v int) *OperationUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableRetryCount(v *int) *OperationUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *OperationUpdate) AddRetryCount(v int) *OperationUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *OperationUpdate) SetWorkerID(v string) *OperationUpdate {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *OperationUpdate) SetNillableWorkerID(v *string) *OperationUpdate {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *OperationUpdate) ClearWorkerID() *OperationUpdate {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OperationUpdate) SetMeta(v map[string]interface{}) *OperationUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OperationUpdate) ClearMeta() *OperationUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *OperationUpdate) AddEvidenceIDs(ids ...string) *OperationUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *OperationUpdate) AddEvidence(v ...*Evidence) *OperationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdate) Mutation() *OperationMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *OperationUpdate) ClearEvidence() *OperationUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *OperationUpdate) RemoveEvidenceIDs(ids ...string) *OperationUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *OperationUpdate) RemoveEvidence(v ...*Evidence) *OperationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdate) check() error {
	if v, ok := _u.mutation.OperationType(); ok {
		if err := operation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Operation.operation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueueName(); ok {
		if err := operation.QueueNameValidator(v); err != nil {
			return &ValidationError{Name: "queue_name", err: fmt.Errorf(`ent: validator failed for field "Operation.queue_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Operation.task"`)
	}
	return nil
}

func (_u *OperationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(operation.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(operation.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.OperationType(); ok {
		_spec.SetField(operation.FieldOperationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueueName(); ok {
		_spec.SetField(operation.FieldQueueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(operation.FieldAgentType, field.TypeString, value)
	}
	if _u.mutation.AgentTypeCleared() {
		_spec.ClearField(operation.FieldAgentType, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(operation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(operation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(operation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(operation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(operation.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(operation.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(operation.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(operation.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(operation.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputData(); ok {
		_spec.SetField(operation.FieldOutputData, field.TypeJSON, value)
	}
	if _u.mutation.OutputDataCleared() {
		_spec.ClearField(operation.FieldOutputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(operation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(operation.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(operation.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(operation.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(operation.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationUpdateOne is the builder for updating a single Operation entity.
type OperationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationMutation
}

// SetParentID sets the "parent_id" field.
func (_u *OperationUpdateOne) SetParentID(v string) *OperationUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableParentID(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *OperationUpdateOne) ClearParentID() *OperationUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetOperationType sets the "operation_type" field.
func (_u *OperationUpdateOne) SetOperationType(v string) *OperationUpdateOne {
	_u.mutation.SetOperationType(v)
	return _u
}

// SetNillableOperationType sets the "operation_type" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableOperationType(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetOperationType(*v)
	}
	return _u
}

// SetQueueName sets the "queue_name" field.
func (_u *OperationUpdateOne) SetQueueName(v string) *OperationUpdateOne {
	_u.mutation.SetQueueName(v)
	return _u
}

// SetNillableQueueName sets the "queue_name" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableQueueName(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetQueueName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OperationUpdateOne) SetStatus(v operation.Status) *OperationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableStatus(v *operation.Status) *OperationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAgentType sets the "agent_type" field.
func (_u *OperationUpdateOne) SetAgentType(v string) *OperationUpdateOne {
	_u.mutation.SetAgentType(v)
	return _u
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableAgentType(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetAgentType(*v)
	}
	return _u
}

// ClearAgentType clears the value of the "agent_type" field.
func (_u *OperationUpdateOne) ClearAgentType() *OperationUpdateOne {
	_u.mutation.ClearAgentType()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *OperationUpdateOne) SetPriority(v int) *OperationUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillablePriority(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *OperationUpdateOne) AddPriority(v int) *OperationUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OperationUpdateOne) SetStartedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableStartedAt(v *time.Time) *OperationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OperationUpdateOne) ClearStartedAt() *OperationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *OperationUpdateOne) SetCompletedAt(v time.Time) *OperationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableCompletedAt(v *time.Time) *OperationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *OperationUpdateOne) ClearCompletedAt() *OperationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *OperationUpdateOne) SetDurationMs(v int64) *OperationUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableDurationMs(v *int64) *OperationUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *OperationUpdateOne) AddDurationMs(v int64) *OperationUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *OperationUpdateOne) ClearDurationMs() *OperationUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputData sets the "input_data" field.
func (_u *OperationUpdateOne) SetInputData(v map[string]interface{}) *OperationUpdateOne {
	_u.mutation.SetInputData(v)
	return _u
}

// ClearInputData clears the value of the "input_data" field.
func (_u *OperationUpdateOne) ClearInputData() *OperationUpdateOne {
	_u.mutation.ClearInputData()
	return _u
}

// SetOutputData sets the "output_data" field.
func (_u *OperationUpdateOne) SetOutputData(v map[string]interface{}) *OperationUpdateOne {
	_u.mutation.SetOutputData(v)
	return _u
}

// ClearOutputData clears the value of the "output_data" field.
func (_u *OperationUpdateOne) ClearOutputData() *OperationUpdateOne {
	_u.mutation.ClearOutputData()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OperationUpdateOne) SetErrorMessage(v string) *OperationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableErrorMessage(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OperationUpdateOne) ClearErrorMessage() *OperationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *OperationUpdateOne) SetRetryCount(v int) *OperationUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableRetryCount(v *int) *OperationUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *OperationUpdateOne) AddRetryCount(v int) *OperationUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetWorkerID sets the "worker_id" field.
func (_u *OperationUpdateOne) SetWorkerID(v string) *OperationUpdateOne {
	_u.mutation.SetWorkerID(v)
	return _u
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_u *OperationUpdateOne) SetNillableWorkerID(v *string) *OperationUpdateOne {
	if v != nil {
		_u.SetWorkerID(*v)
	}
	return _u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (_u *OperationUpdateOne) ClearWorkerID() *OperationUpdateOne {
	_u.mutation.ClearWorkerID()
	return _u
}

// SetMeta sets the "meta" field.
func (_u *OperationUpdateOne) SetMeta(v map[string]interface{}) *OperationUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *OperationUpdateOne) ClearMeta() *OperationUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *OperationUpdateOne) AddEvidenceIDs(ids ...string) *OperationUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *OperationUpdateOne) AddEvidence(v ...*Evidence) *OperationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// Mutation returns the OperationMutation object of the builder.
func (_u *OperationUpdateOne) Mutation() *OperationMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *OperationUpdateOne) ClearEvidence() *OperationUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *OperationUpdateOne) RemoveEvidenceIDs(ids ...string) *OperationUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *OperationUpdateOne) RemoveEvidence(v ...*Evidence) *OperationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// Where appends a list predicates to the OperationUpdate builder.
func (_u *OperationUpdateOne) Where(ps ...predicate.Operation) *OperationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationUpdateOne) Select(field string, fields ...string) *OperationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Operation entity.
func (_u *OperationUpdateOne) Save(ctx context.Context) (*Operation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationUpdateOne) SaveX(ctx context.Context) *Operation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationUpdateOne) check() error {
	if v, ok := _u.mutation.OperationType(); ok {
		if err := operation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Operation.operation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueueName(); ok {
		if err := operation.QueueNameValidator(v); err != nil {
			return &ValidationError{Name: "queue_name", err: fmt.Errorf(`ent: validator failed for field "Operation.queue_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Operation.task"`)
	}
	return nil
}

func (_u *OperationUpdateOne) sqlSave(ctx context.Context) (_node *Operation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operation.Table, operation.Columns, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Operation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operation.FieldID)
		for _, f := range fields {
			if !operation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operation.FieldID {
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
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(operation.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(operation.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.OperationType(); ok {
		_spec.SetField(operation.FieldOperationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueueName(); ok {
		_spec.SetField(operation.FieldQueueName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentType(); ok {
		_spec.SetField(operation.FieldAgentType, field.TypeString, value)
	}
	if _u.mutation.AgentTypeCleared() {
		_spec.ClearField(operation.FieldAgentType, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(operation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(operation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(operation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(operation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(operation.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(operation.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(operation.FieldDurationMs, field.TypeInt64)
	}
	if value, ok := _u.mutation.InputData(); ok {
		_spec.SetField(operation.FieldInputData, field.TypeJSON, value)
	}
	if _u.mutation.InputDataCleared() {
		_spec.ClearField(operation.FieldInputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputData(); ok {
		_spec.SetField(operation.FieldOutputData, field.TypeJSON, value)
	}
	if _u.mutation.OutputDataCleared() {
		_spec.ClearField(operation.FieldOutputData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(operation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(operation.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkerID(); ok {
		_spec.SetField(operation.FieldWorkerID, field.TypeString, value)
	}
	if _u.mutation.WorkerIDCleared() {
		_spec.ClearField(operation.FieldWorkerID, field.TypeString)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(operation.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(operation.FieldMeta, field.TypeJSON)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   operation.EvidenceTable,
			Columns: []string{operation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Operation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
