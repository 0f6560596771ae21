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
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
)

// SourceSummaryUpdate is the builder for updating SourceSummary entities.
type SourceSummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SourceSummaryMutation
}

// Where appends a list predicates to the SourceSummaryUpdate builder.
func (_u *SourceSummaryUpdate) Where(ps ...predicate.SourceSummary) *SourceSummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *SourceSummaryUpdate) SetSubtopic(v string) *SourceSummaryUpdate {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *SourceSummaryUpdate) SetNillableSubtopic(v *string) *SourceSummaryUpdate {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *SourceSummaryUpdate) ClearSubtopic() *SourceSummaryUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceSummaryUpdate) SetSummary(v string) *SourceSummaryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceSummaryUpdate) SetNillableSummary(v *string) *SourceSummaryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDok1Facts sets the "dok1_facts" field.
func (_u *SourceSummaryUpdate) SetDok1Facts(v []string) *SourceSummaryUpdate {
	_u.mutation.SetDok1Facts(v)
	return _u
}

// AppendDok1Facts appends value to the "dok1_facts" field.
func (_u *SourceSummaryUpdate) AppendDok1Facts(v []string) *SourceSummaryUpdate {
	_u.mutation.AppendDok1Facts(v)
	return _u
}

// SetDokLevel sets the "dok_level" field.
func (_u *SourceSummaryUpdate) SetDokLevel(v int) *SourceSummaryUpdate {
	_u.mutation.ResetDokLevel()
	_u.mutation.SetDokLevel(v)
	return _u
}

// SetNillableDokLevel sets the "dok_level" field if the given value is not nil.
func (_u *SourceSummaryUpdate) SetNillableDokLevel(v *int) *SourceSummaryUpdate {
	if v != nil {
		_u.SetDokLevel(*v)
	}
	return _u
}

// AddDokLevel adds value to the "dok_level" field.
func (_u *SourceSummaryUpdate) AddDokLevel(v int) *SourceSummaryUpdate {
	_u.mutation.AddDokLevel(v)
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *SourceSummaryUpdate) SetSupersededBy(v string) *SourceSummaryUpdate {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *SourceSummaryUpdate) SetNillableSupersededBy(v *string) *SourceSummaryUpdate {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *SourceSummaryUpdate) ClearSupersededBy() *SourceSummaryUpdate {
	_u.mutation.ClearSupersededBy()
	return _u
}

// Mutation returns the SourceSummaryMutation object of the builder.
func (_u *SourceSummaryUpdate) Mutation() *SourceSummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceSummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceSummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSummaryUpdate) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := sourcesummary.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "SourceSummary.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DokLevel(); ok {
		if err := sourcesummary.DokLevelValidator(v); err != nil {
			return &ValidationError{Name: "dok_level", err: fmt.Errorf(`ent: validator failed for field "SourceSummary.dok_level": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSummary.task"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSummary.source"`)
	}
	return nil
}

func (_u *SourceSummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesummary.Table, sourcesummary.Columns, sqlgraph.NewFieldSpec(sourcesummary.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(sourcesummary.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(sourcesummary.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sourcesummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dok1Facts(); ok {
		_spec.SetField(sourcesummary.FieldDok1Facts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDok1Facts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sourcesummary.FieldDok1Facts, value)
		})
	}
	if value, ok := _u.mutation.DokLevel(); ok {
		_spec.SetField(sourcesummary.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDokLevel(); ok {
		_spec.AddField(sourcesummary.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(sourcesummary.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(sourcesummary.FieldSupersededBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceSummaryUpdateOne is the builder for updating a single SourceSummary entity.
type SourceSummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceSummaryMutation
}

// SetSubtopic sets the "subtopic" field.
func (_u *SourceSummaryUpdateOne) SetSubtopic(v string) *SourceSummaryUpdateOne {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *SourceSummaryUpdateOne) SetNillableSubtopic(v *string) *SourceSummaryUpdateOne {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *SourceSummaryUpdateOne) ClearSubtopic() *SourceSummaryUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceSummaryUpdateOne) SetSummary(v string) *SourceSummaryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceSummaryUpdateOne) SetNillableSummary(v *string) *SourceSummaryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDok1Facts sets the "dok1_facts" field.
func (_u *SourceSummaryUpdateOne) SetDok1Facts(v []string) *SourceSummaryUpdateOne {
	_u.mutation.SetDok1Facts(v)
	return _u
}

// AppendDok1Facts appends value to the "dok1_facts" field.
func (_u *SourceSummaryUpdateOne) AppendDok1Facts(v []string) *SourceSummaryUpdateOne {
	_u.mutation.AppendDok1Facts(v)
	return _u
}

// SetDokLevel sets the "dok_level" field.
func (_u *SourceSummaryUpdateOne) SetDokLevel(v int) *SourceSummaryUpdateOne {
	_u.mutation.ResetDokLevel()
	_u.mutation.SetDokLevel(v)
	return _u
}

// SetNillableDokLevel sets the "dok_level" field if the given value is not nil.
func (_u *SourceSummaryUpdateOne) SetNillableDokLevel(v *int) *SourceSummaryUpdateOne {
	if v != nil {
		_u.SetDokLevel(*v)
	}
	return _u
}

// AddDokLevel adds value to the "dok_level" field.
func (_u *SourceSummaryUpdateOne) AddDokLevel(v int) *SourceSummaryUpdateOne {
	_u.mutation.AddDokLevel(v)
	return _u
}

// SetSupersededBy sets the "superseded_by" field.
func (_u *SourceSummaryUpdateOne) SetSupersededBy(v string) *SourceSummaryUpdateOne {
	_u.mutation.SetSupersededBy(v)
	return _u
}

// SetNillableSupersededBy sets the "superseded_by" field if the given value is not nil.
func (_u *SourceSummaryUpdateOne) SetNillableSupersededBy(v *string) *SourceSummaryUpdateOne {
	if v != nil {
		_u.SetSupersededBy(*v)
	}
	return _u
}

// ClearSupersededBy clears the value of the "superseded_by" field.
func (_u *SourceSummaryUpdateOne) ClearSupersededBy() *SourceSummaryUpdateOne {
	_u.mutation.ClearSupersededBy()
	return _u
}

// Mutation returns the SourceSummaryMutation object of the builder.
func (_u *SourceSummaryUpdateOne) Mutation() *SourceSummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceSummaryUpdate builder.
func (_u *SourceSummaryUpdateOne) Where(ps ...predicate.SourceSummary) *SourceSummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceSummaryUpdateOne) Select(field string, fields ...string) *SourceSummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceSummary entity.
func (_u *SourceSummaryUpdateOne) Save(ctx context.Context) (*SourceSummary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceSummaryUpdateOne) SaveX(ctx context.Context) *SourceSummary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceSummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceSummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceSummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Summary(); ok {
		if err := sourcesummary.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "SourceSummary.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DokLevel(); ok {
		if err := sourcesummary.DokLevelValidator(v); err != nil {
			return &ValidationError{Name: "dok_level", err: fmt.Errorf(`ent: validator failed for field "SourceSummary.dok_level": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSummary.task"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SourceSummary.source"`)
	}
	return nil
}

func (_u *SourceSummaryUpdateOne) sqlSave(ctx context.Context) (_node *SourceSummary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourcesummary.Table, sourcesummary.Columns, sqlgraph.NewFieldSpec(sourcesummary.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceSummary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcesummary.FieldID)
		for _, f := range fields {
			if !sourcesummary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcesummary.FieldID {
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
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(sourcesummary.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(sourcesummary.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sourcesummary.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dok1Facts(); ok {
		_spec.SetField(sourcesummary.FieldDok1Facts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDok1Facts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sourcesummary.FieldDok1Facts, value)
		})
	}
	if value, ok := _u.mutation.DokLevel(); ok {
		_spec.SetField(sourcesummary.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDokLevel(); ok {
		_spec.AddField(sourcesummary.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SupersededBy(); ok {
		_spec.SetField(sourcesummary.FieldSupersededBy, field.TypeString, value)
	}
	if _u.mutation.SupersededByCleared() {
		_spec.ClearField(sourcesummary.FieldSupersededBy, field.TypeString)
	}
	_node = &SourceSummary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcesummary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
