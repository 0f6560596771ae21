// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// KnowledgeNodeSourceUpdate is the builder for updating KnowledgeNodeSource entities.
type KnowledgeNodeSourceUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeNodeSourceMutation
}

// Where appends a list predicates to the KnowledgeNodeSourceUpdate builder.
func (_u *KnowledgeNodeSourceUpdate) Where(ps ...predicate.KnowledgeNodeSource) *KnowledgeNodeSourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *KnowledgeNodeSourceUpdate) SetRelevanceScore(v float64) *KnowledgeNodeSourceUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *KnowledgeNodeSourceUpdate) SetNillableRelevanceScore(v *float64) *KnowledgeNodeSourceUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *KnowledgeNodeSourceUpdate) AddRelevanceScore(v float64) *KnowledgeNodeSourceUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// Mutation returns the KnowledgeNodeSourceMutation object of the builder.
func (_u *KnowledgeNodeSourceUpdate) Mutation() *KnowledgeNodeSourceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeNodeSourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeSourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeNodeSourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeSourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeSourceUpdate) check() error {
	if v, ok := _u.mutation.RelevanceScore(); ok {
		if err := knowledgenodesource.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNodeSource.relevance_score": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNodeSource.node"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNodeSource.source"`)
	}
	return nil
}

func (_u *KnowledgeNodeSourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenodesource.Table, knowledgenodesource.Columns, sqlgraph.NewFieldSpec(knowledgenodesource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(knowledgenodesource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(knowledgenodesource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenodesource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeNodeSourceUpdateOne is the builder for updating a single KnowledgeNodeSource entity.
type KnowledgeNodeSourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeNodeSourceMutation
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *KnowledgeNodeSourceUpdateOne) SetRelevanceScore(v float64) *KnowledgeNodeSourceUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *KnowledgeNodeSourceUpdateOne) SetNillableRelevanceScore(v *float64) *KnowledgeNodeSourceUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *KnowledgeNodeSourceUpdateOne) AddRelevanceScore(v float64) *KnowledgeNodeSourceUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// Mutation returns the KnowledgeNodeSourceMutation object of the builder.
func (_u *KnowledgeNodeSourceUpdateOne) Mutation() *KnowledgeNodeSourceMutation {
	return _u.mutation
}

// Where appends a list predicates to the KnowledgeNodeSourceUpdate builder.
func (_u *KnowledgeNodeSourceUpdateOne) Where(ps ...predicate.KnowledgeNodeSource) *KnowledgeNodeSourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeNodeSourceUpdateOne) Select(field string, fields ...string) *KnowledgeNodeSourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeNodeSource entity.
func (_u *KnowledgeNodeSourceUpdateOne) Save(ctx context.Context) (*KnowledgeNodeSource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeSourceUpdateOne) SaveX(ctx context.Context) *KnowledgeNodeSource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeNodeSourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeSourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeSourceUpdateOne) check() error {
	if v, ok := _u.mutation.RelevanceScore(); ok {
		if err := knowledgenodesource.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNodeSource.relevance_score": %w`, err)}
		}
	}
	if _u.mutation.NodeCleared() && len(_u.mutation.NodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNodeSource.node"`)
	}
	if _u.mutation.SourceCleared() && len(_u.mutation.SourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNodeSource.source"`)
	}
	return nil
}

func (_u *KnowledgeNodeSourceUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeNodeSource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenodesource.Table, knowledgenodesource.Columns, sqlgraph.NewFieldSpec(knowledgenodesource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeNodeSource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgenodesource.FieldID)
		for _, f := range fields {
			if !knowledgenodesource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgenodesource.FieldID {
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
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(knowledgenodesource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(knowledgenodesource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	_node = &KnowledgeNodeSource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenodesource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
