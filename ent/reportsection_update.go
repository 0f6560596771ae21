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
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
)

// ReportSectionUpdate is the builder for updating ReportSection entities.
type ReportSectionUpdate struct {
	config
	hooks    []Hook
	mutation *ReportSectionMutation
}

// Where appends a list predicates to the ReportSectionUpdate builder.
func (_u *ReportSectionUpdate) Where(ps ...predicate.ReportSection) *ReportSectionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSection sets the "section" field.
func (_u *ReportSectionUpdate) SetSection(v reportsection.Section) *ReportSectionUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableSection(v *reportsection.Section) *ReportSectionUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportSectionUpdate) SetContent(v string) *ReportSectionUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillableContent(v *string) *ReportSectionUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceIds sets the "source_ids" field.
func (_u *ReportSectionUpdate) SetSourceIds(v []string) *ReportSectionUpdate {
	_u.mutation.SetSourceIds(v)
	return _u
}

// AppendSourceIds appends value to the "source_ids" field.
func (_u *ReportSectionUpdate) AppendSourceIds(v []string) *ReportSectionUpdate {
	_u.mutation.AppendSourceIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ReportSectionUpdate) SetPosition(v int) *ReportSectionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ReportSectionUpdate) SetNillablePosition(v *int) *ReportSectionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ReportSectionUpdate) AddPosition(v int) *ReportSectionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_u *ReportSectionUpdate) Mutation() *ReportSectionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReportSectionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportSectionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReportSectionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportSectionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportSectionUpdate) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := reportsection.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportSection.section": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportSection.task"`)
	}
	return nil
}

func (_u *ReportSectionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportsection.Table, reportsection.Columns, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(reportsection.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceIds(); ok {
		_spec.SetField(reportsection.FieldSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldSourceIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(reportsection.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(reportsection.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReportSectionUpdateOne is the builder for updating a single ReportSection entity.
type ReportSectionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReportSectionMutation
}

// SetSection sets the "section" field.
func (_u *ReportSectionUpdateOne) SetSection(v reportsection.Section) *ReportSectionUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableSection(v *reportsection.Section) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ReportSectionUpdateOne) SetContent(v string) *ReportSectionUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillableContent(v *string) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSourceIds sets the "source_ids" field.
func (_u *ReportSectionUpdateOne) SetSourceIds(v []string) *ReportSectionUpdateOne {
	_u.mutation.SetSourceIds(v)
	return _u
}

// AppendSourceIds appends value to the "source_ids" field.
func (_u *ReportSectionUpdateOne) AppendSourceIds(v []string) *ReportSectionUpdateOne {
	_u.mutation.AppendSourceIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *ReportSectionUpdateOne) SetPosition(v int) *ReportSectionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ReportSectionUpdateOne) SetNillablePosition(v *int) *ReportSectionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ReportSectionUpdateOne) AddPosition(v int) *ReportSectionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_u *ReportSectionUpdateOne) Mutation() *ReportSectionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReportSectionUpdate builder.
func (_u *ReportSectionUpdateOne) Where(ps ...predicate.ReportSection) *ReportSectionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReportSectionUpdateOne) Select(field string, fields ...string) *ReportSectionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReportSection entity.
func (_u *ReportSectionUpdateOne) Save(ctx context.Context) (*ReportSection, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReportSectionUpdateOne) SaveX(ctx context.Context) *ReportSection {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReportSectionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReportSectionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReportSectionUpdateOne) check() error {
	if v, ok := _u.mutation.Section(); ok {
		if err := reportsection.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportSection.section": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReportSection.task"`)
	}
	return nil
}

func (_u *ReportSectionUpdateOne) sqlSave(ctx context.Context) (_node *ReportSection, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reportsection.Table, reportsection.Columns, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReportSection.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reportsection.FieldID)
		for _, f := range fields {
			if !reportsection.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reportsection.FieldID {
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
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(reportsection.FieldSection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceIds(); ok {
		_spec.SetField(reportsection.FieldSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, reportsection.FieldSourceIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(reportsection.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(reportsection.FieldPosition, field.TypeInt, value)
	}
	_node = &ReportSection{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reportsection.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
