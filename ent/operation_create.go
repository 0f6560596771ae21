// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// OperationCreate is the builder for creating a Operation entity.
type OperationCreate struct {
	config
	mutation *OperationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *OperationCreate) SetTaskID(v string) *OperationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *OperationCreate) SetParentID(v string) *OperationCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *OperationCreate) SetNillableParentID(v *string) *OperationCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetOperationType sets the "operation_type" field.
func (_c *OperationCreate) SetOperationType(v string) *OperationCreate {
	_c.mutation.SetOperationType(v)
	return _c
}

// SetQueueName sets the "queue_name" field.
func (_c *OperationCreate) SetQueueName(v string) *OperationCreate {
	_c.mutation.SetQueueName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OperationCreate) SetStatus(v operation.Status) *OperationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OperationCreate) SetNillableStatus(v *operation.Status) *OperationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAgentType sets the "agent_type" field.
func (_c *OperationCreate) SetAgentType(v string) *OperationCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetNillableAgentType sets the "agent_type" field if the given value is not nil.
func (_c *OperationCreate) SetNillableAgentType(v *string) *OperationCreate {
	if v != nil {
		_c.SetAgentType(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *OperationCreate) SetPriority(v int) *OperationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *OperationCreate) SetNillablePriority(v *int) *OperationCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *OperationCreate) SetStartedAt(v time.Time) *OperationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableStartedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *OperationCreate) SetCompletedAt(v time.Time) *OperationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCompletedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *OperationCreate) SetDurationMs(v int64) *OperationCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *OperationCreate) SetNillableDurationMs(v *int64) *OperationCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetInputData sets the "input_data" field.
func (_c *OperationCreate) SetInputData(v map[string]interface{}) *OperationCreate {
	_c.mutation.SetInputData(v)
	return _c
}

// SetOutputData sets the "output_data" field.
func (_c *OperationCreate) SetOutputData(v map[string]interface{}) *OperationCreate {
	_c.mutation.SetOutputData(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OperationCreate) SetErrorMessage(v string) *OperationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OperationCreate) SetNillableErrorMessage(v *string) *OperationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *OperationCreate) SetRetryCount(v int) *OperationCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *OperationCreate) SetNillableRetryCount(v *int) *OperationCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetWorkerID sets the "worker_id" field.
func (_c *OperationCreate) SetWorkerID(v string) *OperationCreate {
	_c.mutation.SetWorkerID(v)
	return _c
}

// SetNillableWorkerID sets the "worker_id" field if the given value is not nil.
func (_c *OperationCreate) SetNillableWorkerID(v *string) *OperationCreate {
	if v != nil {
		_c.SetWorkerID(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *OperationCreate) SetMeta(v map[string]interface{}) *OperationCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OperationCreate) SetCreatedAt(v time.Time) *OperationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OperationCreate) SetNillableCreatedAt(v *time.Time) *OperationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OperationCreate) SetID(v string) *OperationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the ResearchTask entity.
func (_c *OperationCreate) SetTask(v *ResearchTask) *OperationCreate {
	return _c.SetTaskID(v.ID)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *OperationCreate) AddEvidenceIDs(ids ...string) *OperationCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *OperationCreate) AddEvidence(v ...*Evidence) *OperationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// Mutation returns the OperationMutation object of the builder.
func (_c *OperationCreate) Mutation() *OperationMutation {
	return _c.mutation
}

// Save creates the Operation in the database.
func (_c *OperationCreate) Save(ctx context.Context) (*Operation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationCreate) SaveX(ctx context.Context) *Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := operation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := operation.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := operation.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := operation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Operation.task_id"`)}
	}
	if _, ok := _c.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "Operation.operation_type"`)}
	}
	if v, ok := _c.mutation.OperationType(); ok {
		if err := operation.OperationTypeValidator(v); err != nil {
			return &ValidationError{Name: "operation_type", err: fmt.Errorf(`ent: validator failed for field "Operation.operation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueueName(); !ok {
		return &ValidationError{Name: "queue_name", err: errors.New(`ent: missing required field "Operation.queue_name"`)}
	}
	if v, ok := _c.mutation.QueueName(); ok {
		if err := operation.QueueNameValidator(v); err != nil {
			return &ValidationError{Name: "queue_name", err: fmt.Errorf(`ent: validator failed for field "Operation.queue_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Operation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := operation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Operation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Operation.priority"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Operation.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Operation.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Operation.task"`)}
	}
	return nil
}

func (_c *OperationCreate) sqlSave(ctx context.Context) (*Operation, error) {
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
			return nil, fmt.Errorf("unexpected Operation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OperationCreate) createSpec() (*Operation, *sqlgraph.CreateSpec) {
	var (
		_node = &Operation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operation.Table, sqlgraph.NewFieldSpec(operation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(operation.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.OperationType(); ok {
		_spec.SetField(operation.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := _c.mutation.QueueName(); ok {
		_spec.SetField(operation.FieldQueueName, field.TypeString, value)
		_node.QueueName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(operation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(operation.FieldAgentType, field.TypeString, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(operation.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(operation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(operation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(operation.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.InputData(); ok {
		_spec.SetField(operation.FieldInputData, field.TypeJSON, value)
		_node.InputData = value
	}
	if value, ok := _c.mutation.OutputData(); ok {
		_spec.SetField(operation.FieldOutputData, field.TypeJSON, value)
		_node.OutputData = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(operation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(operation.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.WorkerID(); ok {
		_spec.SetField(operation.FieldWorkerID, field.TypeString, value)
		_node.WorkerID = &value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(operation.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(operation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   operation.TaskTable,
			Columns: []string{operation.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Operation.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OperationUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *OperationCreate) OnConflict(opts ...sql.ConflictOption) *OperationUpsertOne {
	_c.conflict = opts
	return &OperationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Operation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OperationCreate) OnConflictColumns(columns ...string) *OperationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OperationUpsertOne{
		create: _c,
	}
}

type (
	// OperationUpsertOne is the builder for "upsert"-ing
	//  one Operation node.
	OperationUpsertOne struct {
		create *OperationCreate
	}

	// OperationUpsert is the "OnConflict" setter.
	OperationUpsert struct {
		*sql.UpdateSet
	}
)

// SetParentID sets the "parent_id" field.
func (u *OperationUpsert) SetParentID(v string) *OperationUpsert {
	u.Set(operation.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *OperationUpsert) UpdateParentID() *OperationUpsert {
	u.SetExcluded(operation.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *OperationUpsert) ClearParentID() *OperationUpsert {
	u.SetNull(operation.FieldParentID)
	return u
}

// SetOperationType sets the "operation_type" field.
func (u *OperationUpsert) SetOperationType(v string) *OperationUpsert {
	u.Set(operation.FieldOperationType, v)
	return u
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *OperationUpsert) UpdateOperationType() *OperationUpsert {
	u.SetExcluded(operation.FieldOperationType)
	return u
}

// SetQueueName sets the "queue_name" field.
func (u *OperationUpsert) SetQueueName(v string) *OperationUpsert {
	u.Set(operation.FieldQueueName, v)
	return u
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *OperationUpsert) UpdateQueueName() *OperationUpsert {
	u.SetExcluded(operation.FieldQueueName)
	return u
}

// SetStatus sets the "status" field.
func (u *OperationUpsert) SetStatus(v operation.Status) *OperationUpsert {
	u.Set(operation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationUpsert) UpdateStatus() *OperationUpsert {
	u.SetExcluded(operation.FieldStatus)
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *OperationUpsert) SetAgentType(v string) *OperationUpsert {
	u.Set(operation.FieldAgentType, v)
	return u
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *OperationUpsert) UpdateAgentType() *OperationUpsert {
	u.SetExcluded(operation.FieldAgentType)
	return u
}

// ClearAgentType clears the value of the "agent_type" field.
func (u *OperationUpsert) ClearAgentType() *OperationUpsert {
	u.SetNull(operation.FieldAgentType)
	return u
}

// SetPriority sets the "priority" field.
func (u *OperationUpsert) SetPriority(v int) *OperationUpsert {
	u.Set(operation.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *OperationUpsert) UpdatePriority() *OperationUpsert {
	u.SetExcluded(operation.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *OperationUpsert) AddPriority(v int) *OperationUpsert {
	u.Add(operation.FieldPriority, v)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *OperationUpsert) SetStartedAt(v time.Time) *OperationUpsert {
	u.Set(operation.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OperationUpsert) UpdateStartedAt() *OperationUpsert {
	u.SetExcluded(operation.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OperationUpsert) ClearStartedAt() *OperationUpsert {
	u.SetNull(operation.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *OperationUpsert) SetCompletedAt(v time.Time) *OperationUpsert {
	u.Set(operation.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OperationUpsert) UpdateCompletedAt() *OperationUpsert {
	u.SetExcluded(operation.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OperationUpsert) ClearCompletedAt() *OperationUpsert {
	u.SetNull(operation.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *OperationUpsert) SetDurationMs(v int64) *OperationUpsert {
	u.Set(operation.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *OperationUpsert) UpdateDurationMs() *OperationUpsert {
	u.SetExcluded(operation.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *OperationUpsert) AddDurationMs(v int64) *OperationUpsert {
	u.Add(operation.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *OperationUpsert) ClearDurationMs() *OperationUpsert {
	u.SetNull(operation.FieldDurationMs)
	return u
}

// SetInputData sets the "input_data" field.
func (u *OperationUpsert) SetInputData(v map[string]interface{}) *OperationUpsert {
	u.Set(operation.FieldInputData, v)
	return u
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *OperationUpsert) UpdateInputData() *OperationUpsert {
	u.SetExcluded(operation.FieldInputData)
	return u
}

// ClearInputData clears the value of the "input_data" field.
func (u *OperationUpsert) ClearInputData() *OperationUpsert {
	u.SetNull(operation.FieldInputData)
	return u
}

// SetOutputData sets the "output_data" field.
func (u *OperationUpsert) SetOutputData(v map[string]interface{}) *OperationUpsert {
	u.Set(operation.FieldOutputData, v)
	return u
}

// UpdateOutputData sets the "output_data" field to the value that was provided on create.
func (u *OperationUpsert) UpdateOutputData() *OperationUpsert {
	u.SetExcluded(operation.FieldOutputData)
	return u
}

// ClearOutputData clears the value of the "output_data" field.
func (u *OperationUpsert) ClearOutputData() *OperationUpsert {
	u.SetNull(operation.FieldOutputData)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *OperationUpsert) SetErrorMessage(v string) *OperationUpsert {
	u.Set(operation.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OperationUpsert) UpdateErrorMessage() *OperationUpsert {
	u.SetExcluded(operation.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OperationUpsert) ClearErrorMessage() *OperationUpsert {
	u.SetNull(operation.FieldErrorMessage)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *OperationUpsert) SetRetryCount(v int) *OperationUpsert {
	u.Set(operation.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OperationUpsert) UpdateRetryCount() *OperationUpsert {
	u.SetExcluded(operation.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OperationUpsert) AddRetryCount(v int) *OperationUpsert {
	u.Add(operation.FieldRetryCount, v)
	return u
}

// SetWorkerID sets the "worker_id" field.
func (u *OperationUpsert) SetWorkerID(v string) *OperationUpsert {
	u.Set(operation.FieldWorkerID, v)
	return u
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *OperationUpsert) UpdateWorkerID() *OperationUpsert {
	u.SetExcluded(operation.FieldWorkerID)
	return u
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *OperationUpsert) ClearWorkerID() *OperationUpsert {
	u.SetNull(operation.FieldWorkerID)
	return u
}

// SetMeta sets the "meta" field.
func (u *OperationUpsert) SetMeta(v map[string]interface{}) *OperationUpsert {
	u.Set(operation.FieldMeta, v)
	return u
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OperationUpsert) UpdateMeta() *OperationUpsert {
	u.SetExcluded(operation.FieldMeta)
	return u
}

// ClearMeta clears the value of the "meta" field.
func (u *OperationUpsert) ClearMeta() *OperationUpsert {
	u.SetNull(operation.FieldMeta)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Operation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(operation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OperationUpsertOne) UpdateNewValues() *OperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(operation.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(operation.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(operation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Operation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OperationUpsertOne) Ignore() *OperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OperationUpsertOne) DoNothing() *OperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OperationCreate.OnConflict
// documentation for more info.
func (u *OperationUpsertOne) Update(set func(*OperationUpsert)) *OperationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentID sets the "parent_id" field.
func (u *OperationUpsertOne) SetParentID(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateParentID() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *OperationUpsertOne) ClearParentID() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearParentID()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *OperationUpsertOne) SetOperationType(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateOperationType() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateOperationType()
	})
}

// SetQueueName sets the "queue_name" field.
func (u *OperationUpsertOne) SetQueueName(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetQueueName(v)
	})
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateQueueName() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateQueueName()
	})
}

// SetStatus sets the "status" field.
func (u *OperationUpsertOne) SetStatus(v operation.Status) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateStatus() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentType sets the "agent_type" field.
func (u *OperationUpsertOne) SetAgentType(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateAgentType() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateAgentType()
	})
}

// ClearAgentType clears the value of the "agent_type" field.
func (u *OperationUpsertOne) ClearAgentType() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearAgentType()
	})
}

// SetPriority sets the "priority" field.
func (u *OperationUpsertOne) SetPriority(v int) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *OperationUpsertOne) AddPriority(v int) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdatePriority() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdatePriority()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *OperationUpsertOne) SetStartedAt(v time.Time) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateStartedAt() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OperationUpsertOne) ClearStartedAt() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OperationUpsertOne) SetCompletedAt(v time.Time) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateCompletedAt() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OperationUpsertOne) ClearCompletedAt() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *OperationUpsertOne) SetDurationMs(v int64) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *OperationUpsertOne) AddDurationMs(v int64) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateDurationMs() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *OperationUpsertOne) ClearDurationMs() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearDurationMs()
	})
}

// SetInputData sets the "input_data" field.
func (u *OperationUpsertOne) SetInputData(v map[string]interface{}) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetInputData(v)
	})
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateInputData() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateInputData()
	})
}

// ClearInputData clears the value of the "input_data" field.
func (u *OperationUpsertOne) ClearInputData() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearInputData()
	})
}

// SetOutputData sets the "output_data" field.
func (u *OperationUpsertOne) SetOutputData(v map[string]interface{}) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetOutputData(v)
	})
}

// UpdateOutputData sets the "output_data" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateOutputData() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateOutputData()
	})
}

// ClearOutputData clears the value of the "output_data" field.
func (u *OperationUpsertOne) ClearOutputData() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearOutputData()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OperationUpsertOne) SetErrorMessage(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateErrorMessage() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OperationUpsertOne) ClearErrorMessage() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *OperationUpsertOne) SetRetryCount(v int) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OperationUpsertOne) AddRetryCount(v int) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateRetryCount() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateRetryCount()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *OperationUpsertOne) SetWorkerID(v string) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateWorkerID() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *OperationUpsertOne) ClearWorkerID() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearWorkerID()
	})
}

// SetMeta sets the "meta" field.
func (u *OperationUpsertOne) SetMeta(v map[string]interface{}) *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OperationUpsertOne) UpdateMeta() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *OperationUpsertOne) ClearMeta() *OperationUpsertOne {
	return u.Update(func(s *OperationUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *OperationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OperationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OperationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OperationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OperationUpsertOne.ID is not supported by MySQL driver. Use OperationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OperationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OperationCreateBulk is the builder for creating many Operation entities in bulk.
type OperationCreateBulk struct {
	config
	err      error
	builders []*OperationCreate
	conflict []sql.ConflictOption
}

// Save creates the Operation entities in the database.
func (_c *OperationCreateBulk) Save(ctx context.Context) ([]*Operation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Operation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *OperationCreateBulk) SaveX(ctx context.Context) []*Operation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Operation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OperationUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *OperationCreateBulk) OnConflict(opts ...sql.ConflictOption) *OperationUpsertBulk {
	_c.conflict = opts
	return &OperationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Operation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OperationCreateBulk) OnConflictColumns(columns ...string) *OperationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OperationUpsertBulk{
		create: _c,
	}
}

// OperationUpsertBulk is the builder for "upsert"-ing
// a bulk of Operation nodes.
type OperationUpsertBulk struct {
	create *OperationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Operation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(operation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OperationUpsertBulk) UpdateNewValues() *OperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(operation.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(operation.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(operation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Operation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OperationUpsertBulk) Ignore() *OperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OperationUpsertBulk) DoNothing() *OperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OperationCreateBulk.OnConflict
// documentation for more info.
func (u *OperationUpsertBulk) Update(set func(*OperationUpsert)) *OperationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OperationUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentID sets the "parent_id" field.
func (u *OperationUpsertBulk) SetParentID(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateParentID() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *OperationUpsertBulk) ClearParentID() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearParentID()
	})
}

// SetOperationType sets the "operation_type" field.
func (u *OperationUpsertBulk) SetOperationType(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetOperationType(v)
	})
}

// UpdateOperationType sets the "operation_type" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateOperationType() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateOperationType()
	})
}

// SetQueueName sets the "queue_name" field.
func (u *OperationUpsertBulk) SetQueueName(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetQueueName(v)
	})
}

// UpdateQueueName sets the "queue_name" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateQueueName() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateQueueName()
	})
}

// SetStatus sets the "status" field.
func (u *OperationUpsertBulk) SetStatus(v operation.Status) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateStatus() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateStatus()
	})
}

// SetAgentType sets the "agent_type" field.
func (u *OperationUpsertBulk) SetAgentType(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateAgentType() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateAgentType()
	})
}

// ClearAgentType clears the value of the "agent_type" field.
func (u *OperationUpsertBulk) ClearAgentType() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearAgentType()
	})
}

// SetPriority sets the "priority" field.
func (u *OperationUpsertBulk) SetPriority(v int) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *OperationUpsertBulk) AddPriority(v int) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdatePriority() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdatePriority()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *OperationUpsertBulk) SetStartedAt(v time.Time) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateStartedAt() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OperationUpsertBulk) ClearStartedAt() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *OperationUpsertBulk) SetCompletedAt(v time.Time) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateCompletedAt() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *OperationUpsertBulk) ClearCompletedAt() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *OperationUpsertBulk) SetDurationMs(v int64) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *OperationUpsertBulk) AddDurationMs(v int64) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateDurationMs() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *OperationUpsertBulk) ClearDurationMs() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearDurationMs()
	})
}

// SetInputData sets the "input_data" field.
func (u *OperationUpsertBulk) SetInputData(v map[string]interface{}) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetInputData(v)
	})
}

// UpdateInputData sets the "input_data" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateInputData() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateInputData()
	})
}

// ClearInputData clears the value of the "input_data" field.
func (u *OperationUpsertBulk) ClearInputData() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearInputData()
	})
}

// SetOutputData sets the "output_data" field.
func (u *OperationUpsertBulk) SetOutputData(v map[string]interface{}) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetOutputData(v)
	})
}

// UpdateOutputData sets the "output_data" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateOutputData() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateOutputData()
	})
}

// ClearOutputData clears the value of the "output_data" field.
func (u *OperationUpsertBulk) ClearOutputData() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearOutputData()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OperationUpsertBulk) SetErrorMessage(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateErrorMessage() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *OperationUpsertBulk) ClearErrorMessage() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *OperationUpsertBulk) SetRetryCount(v int) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *OperationUpsertBulk) AddRetryCount(v int) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateRetryCount() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateRetryCount()
	})
}

// SetWorkerID sets the "worker_id" field.
func (u *OperationUpsertBulk) SetWorkerID(v string) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetWorkerID(v)
	})
}

// UpdateWorkerID sets the "worker_id" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateWorkerID() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateWorkerID()
	})
}

// ClearWorkerID clears the value of the "worker_id" field.
func (u *OperationUpsertBulk) ClearWorkerID() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearWorkerID()
	})
}

// SetMeta sets the "meta" field.
func (u *OperationUpsertBulk) SetMeta(v map[string]interface{}) *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *OperationUpsertBulk) UpdateMeta() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *OperationUpsertBulk) ClearMeta() *OperationUpsertBulk {
	return u.Update(func(s *OperationUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *OperationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OperationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OperationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OperationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
