// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// KnowledgeNodeSourceDelete is the builder for deleting a KnowledgeNodeSource entity.
type KnowledgeNodeSourceDelete struct {
	config
	hooks    []Hook
	mutation *KnowledgeNodeSourceMutation
}

// Where appends a list predicates to the KnowledgeNodeSourceDelete builder.
func (_d *KnowledgeNodeSourceDelete) Where(ps ...predicate.KnowledgeNodeSource) *KnowledgeNodeSourceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *KnowledgeNodeSourceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeNodeSourceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *KnowledgeNodeSourceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(knowledgenodesource.Table, sqlgraph.NewFieldSpec(knowledgenodesource.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// KnowledgeNodeSourceDeleteOne is the builder for deleting a single KnowledgeNodeSource entity.
type KnowledgeNodeSourceDeleteOne struct {
	_d *KnowledgeNodeSourceDelete
}

// Where appends a list predicates to the KnowledgeNodeSourceDelete builder.
func (_d *KnowledgeNodeSourceDeleteOne) Where(ps ...predicate.KnowledgeNodeSource) *KnowledgeNodeSourceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *KnowledgeNodeSourceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{knowledgenodesource.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *KnowledgeNodeSourceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
