// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// AggregatedEntityDelete is the builder for deleting a AggregatedEntity entity.
type AggregatedEntityDelete struct {
	config
	hooks    []Hook
	mutation *AggregatedEntityMutation
}

// Where appends a list predicates to the AggregatedEntityDelete builder.
func (_d *AggregatedEntityDelete) Where(ps ...predicate.AggregatedEntity) *AggregatedEntityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AggregatedEntityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AggregatedEntityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AggregatedEntityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(aggregatedentity.Table, sqlgraph.NewFieldSpec(aggregatedentity.FieldID, field.TypeString))
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

// AggregatedEntityDeleteOne is the builder for deleting a single AggregatedEntity entity.
type AggregatedEntityDeleteOne struct {
	_d *AggregatedEntityDelete
}

// Where appends a list predicates to the AggregatedEntityDelete builder.
func (_d *AggregatedEntityDeleteOne) Where(ps ...predicate.AggregatedEntity) *AggregatedEntityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AggregatedEntityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{aggregatedentity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AggregatedEntityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
