// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// SpikyPOVUpdate is the builder for updating SpikyPOV entities.
type SpikyPOVUpdate struct {
	config
	hooks    []Hook
	mutation *SpikyPOVMutation
}

// Where appends a list predicates to the SpikyPOVUpdate builder.
func (_u *SpikyPOVUpdate) Where(ps ...predicate.SpikyPOV) *SpikyPOVUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SpikyPOVUpdate) SetKind(v spikypov.Kind) *SpikyPOVUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SpikyPOVUpdate) SetNillableKind(v *spikypov.Kind) *SpikyPOVUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *SpikyPOVUpdate) SetStatement(v string) *SpikyPOVUpdate {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *SpikyPOVUpdate) SetNillableStatement(v *string) *SpikyPOVUpdate {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *SpikyPOVUpdate) SetReasoning(v string) *SpikyPOVUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *SpikyPOVUpdate) SetNillableReasoning(v *string) *SpikyPOVUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetInsightIds sets the "insight_ids" field.
func (_u *SpikyPOVUpdate) SetInsightIds(v []string) *SpikyPOVUpdate {
	_u.mutation.SetInsightIds(v)
	return _u
}

// AppendInsightIds appends value to the "insight_ids" field.
func (_u *SpikyPOVUpdate) AppendInsightIds(v []string) *SpikyPOVUpdate {
	_u.mutation.AppendInsightIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *SpikyPOVUpdate) SetPosition(v int) *SpikyPOVUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SpikyPOVUpdate) SetNillablePosition(v *int) *SpikyPOVUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SpikyPOVUpdate) AddPosition(v int) *SpikyPOVUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the SpikyPOVMutation object of the builder.
func (_u *SpikyPOVUpdate) Mutation() *SpikyPOVMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SpikyPOVUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpikyPOVUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SpikyPOVUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpikyPOVUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpikyPOVUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := spikypov.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statement(); ok {
		if err := spikypov.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reasoning(); ok {
		if err := spikypov.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.reasoning": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpikyPOV.task"`)
	}
	return nil
}

func (_u *SpikyPOVUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spikypov.Table, spikypov.Columns, sqlgraph.NewFieldSpec(spikypov.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(spikypov.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(spikypov.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(spikypov.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightIds(); ok {
		_spec.SetField(spikypov.FieldInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, spikypov.FieldInsightIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(spikypov.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(spikypov.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spikypov.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SpikyPOVUpdateOne is the builder for updating a single SpikyPOV entity.
type SpikyPOVUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SpikyPOVMutation
}

// SetKind sets the "kind" field.
func (_u *SpikyPOVUpdateOne) SetKind(v spikypov.Kind) *SpikyPOVUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SpikyPOVUpdateOne) SetNillableKind(v *spikypov.Kind) *SpikyPOVUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatement sets the "statement" field.
func (_u *SpikyPOVUpdateOne) SetStatement(v string) *SpikyPOVUpdateOne {
	_u.mutation.SetStatement(v)
	return _u
}

// SetNillableStatement sets the "statement" field if the given value is not nil.
func (_u *SpikyPOVUpdateOne) SetNillableStatement(v *string) *SpikyPOVUpdateOne {
	if v != nil {
		_u.SetStatement(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *SpikyPOVUpdateOne) SetReasoning(v string) *SpikyPOVUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *SpikyPOVUpdateOne) SetNillableReasoning(v *string) *SpikyPOVUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetInsightIds sets the "insight_ids" field.
func (_u *SpikyPOVUpdateOne) SetInsightIds(v []string) *SpikyPOVUpdateOne {
	_u.mutation.SetInsightIds(v)
	return _u
}

// AppendInsightIds appends value to the "insight_ids" field.
func (_u *SpikyPOVUpdateOne) AppendInsightIds(v []string) *SpikyPOVUpdateOne {
	_u.mutation.AppendInsightIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *SpikyPOVUpdateOne) SetPosition(v int) *SpikyPOVUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *SpikyPOVUpdateOne) SetNillablePosition(v *int) *SpikyPOVUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *SpikyPOVUpdateOne) AddPosition(v int) *SpikyPOVUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the SpikyPOVMutation object of the builder.
func (_u *SpikyPOVUpdateOne) Mutation() *SpikyPOVMutation {
	return _u.mutation
}

// Where appends a list predicates to the SpikyPOVUpdate builder.
func (_u *SpikyPOVUpdateOne) Where(ps ...predicate.SpikyPOV) *SpikyPOVUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SpikyPOVUpdateOne) Select(field string, fields ...string) *SpikyPOVUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SpikyPOV entity.
func (_u *SpikyPOVUpdateOne) Save(ctx context.Context) (*SpikyPOV, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SpikyPOVUpdateOne) SaveX(ctx context.Context) *SpikyPOV {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SpikyPOVUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SpikyPOVUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SpikyPOVUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := spikypov.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Statement(); ok {
		if err := spikypov.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.statement": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reasoning(); ok {
		if err := spikypov.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.reasoning": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SpikyPOV.task"`)
	}
	return nil
}

func (_u *SpikyPOVUpdateOne) sqlSave(ctx context.Context) (_node *SpikyPOV, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(spikypov.Table, spikypov.Columns, sqlgraph.NewFieldSpec(spikypov.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SpikyPOV.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, spikypov.FieldID)
		for _, f := range fields {
			if !spikypov.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != spikypov.FieldID {
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
		_spec.SetField(spikypov.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Statement(); ok {
		_spec.SetField(spikypov.FieldStatement, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(spikypov.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightIds(); ok {
		_spec.SetField(spikypov.FieldInsightIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInsightIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, spikypov.FieldInsightIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(spikypov.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(spikypov.FieldPosition, field.TypeInt, value)
	}
	_node = &SpikyPOV{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{spikypov.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
