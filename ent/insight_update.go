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
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *InsightUpdate) SetCategory(v string) *InsightUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableCategory(v *string) *InsightUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetInsightText sets the "insight_text" field.
func (_u *InsightUpdate) SetInsightText(v string) *InsightUpdate {
	_u.mutation.SetInsightText(v)
	return _u
}

// SetNillableInsightText sets the "insight_text" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableInsightText(v *string) *InsightUpdate {
	if v != nil {
		_u.SetInsightText(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InsightUpdate) SetConfidenceScore(v float64) *InsightUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableConfidenceScore(v *float64) *InsightUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InsightUpdate) AddConfidenceScore(v float64) *InsightUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSourceIds sets the "source_ids" field.
func (_u *InsightUpdate) SetSourceIds(v []string) *InsightUpdate {
	_u.mutation.SetSourceIds(v)
	return _u
}

// AppendSourceIds appends value to the "source_ids" field.
func (_u *InsightUpdate) AppendSourceIds(v []string) *InsightUpdate {
	_u.mutation.AppendSourceIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *InsightUpdate) SetPosition(v int) *InsightUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InsightUpdate) SetNillablePosition(v *int) *InsightUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InsightUpdate) AddPosition(v int) *InsightUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsightText(); ok {
		if err := insight.InsightTextValidator(v); err != nil {
			return &ValidationError{Name: "insight_text", err: fmt.Errorf(`ent: validator failed for field "Insight.insight_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := insight.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.task"`)
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightText(); ok {
		_spec.SetField(insight.FieldInsightText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(insight.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(insight.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceIds(); ok {
		_spec.SetField(insight.FieldSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldSourceIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(insight.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(insight.FieldPosition, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetCategory sets the "category" field.
func (_u *InsightUpdateOne) SetCategory(v string) *InsightUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableCategory(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetInsightText sets the "insight_text" field.
func (_u *InsightUpdateOne) SetInsightText(v string) *InsightUpdateOne {
	_u.mutation.SetInsightText(v)
	return _u
}

// SetNillableInsightText sets the "insight_text" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableInsightText(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetInsightText(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *InsightUpdateOne) SetConfidenceScore(v float64) *InsightUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableConfidenceScore(v *float64) *InsightUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *InsightUpdateOne) AddConfidenceScore(v float64) *InsightUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSourceIds sets the "source_ids" field.
func (_u *InsightUpdateOne) SetSourceIds(v []string) *InsightUpdateOne {
	_u.mutation.SetSourceIds(v)
	return _u
}

// AppendSourceIds appends value to the "source_ids" field.
func (_u *InsightUpdateOne) AppendSourceIds(v []string) *InsightUpdateOne {
	_u.mutation.AppendSourceIds(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *InsightUpdateOne) SetPosition(v int) *InsightUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillablePosition(v *int) *InsightUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *InsightUpdateOne) AddPosition(v int) *InsightUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InsightText(); ok {
		if err := insight.InsightTextValidator(v); err != nil {
			return &ValidationError{Name: "insight_text", err: fmt.Errorf(`ent: validator failed for field "Insight.insight_text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := insight.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence_score": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.task"`)
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.InsightText(); ok {
		_spec.SetField(insight.FieldInsightText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(insight.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(insight.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceIds(); ok {
		_spec.SetField(insight.FieldSourceIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldSourceIds, value)
		})
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(insight.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(insight.FieldPosition, field.TypeInt, value)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
