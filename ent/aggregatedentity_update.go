// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// AggregatedEntityUpdate is the builder for updating AggregatedEntity entities.
type AggregatedEntityUpdate struct {
	config
	hooks    []Hook
	mutation *AggregatedEntityMutation
}

// Where appends a list predicates to the AggregatedEntityUpdate builder.
func (_u *AggregatedEntityUpdate) Where(ps ...predicate.AggregatedEntity) *AggregatedEntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *AggregatedEntityUpdate) SetEntityType(v string) *AggregatedEntityUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *AggregatedEntityUpdate) SetNillableEntityType(v *string) *AggregatedEntityUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AggregatedEntityUpdate) SetName(v string) *AggregatedEntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AggregatedEntityUpdate) SetNillableName(v *string) *AggregatedEntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *AggregatedEntityUpdate) SetNormalizedName(v string) *AggregatedEntityUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *AggregatedEntityUpdate) SetNillableNormalizedName(v *string) *AggregatedEntityUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (_u *AggregatedEntityUpdate) SetUniqueIdentifier(v string) *AggregatedEntityUpdate {
	_u.mutation.SetUniqueIdentifier(v)
	return _u
}

// SetNillableUniqueIdentifier sets the "unique_identifier" field if the given value is not nil.
func (_u *AggregatedEntityUpdate) SetNillableUniqueIdentifier(v *string) *AggregatedEntityUpdate {
	if v != nil {
		_u.SetUniqueIdentifier(*v)
	}
	return _u
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (_u *AggregatedEntityUpdate) ClearUniqueIdentifier() *AggregatedEntityUpdate {
	_u.mutation.ClearUniqueIdentifier()
	return _u
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (_u *AggregatedEntityUpdate) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityUpdate {
	_u.mutation.SetConsolidatedAttributes(v)
	return _u
}

// SetDataLineage sets the "data_lineage" field.
func (_u *AggregatedEntityUpdate) SetDataLineage(v map[string]interface{}) *AggregatedEntityUpdate {
	_u.mutation.SetDataLineage(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *AggregatedEntityUpdate) SetConfidenceScore(v float64) *AggregatedEntityUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *AggregatedEntityUpdate) SetNillableConfidenceScore(v *float64) *AggregatedEntityUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *AggregatedEntityUpdate) AddConfidenceScore(v float64) *AggregatedEntityUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSourceTasks sets the "source_tasks" field.
func (_u *AggregatedEntityUpdate) SetSourceTasks(v []string) *AggregatedEntityUpdate {
	_u.mutation.SetSourceTasks(v)
	return _u
}

// AppendSourceTasks appends value to the "source_tasks" field.
func (_u *AggregatedEntityUpdate) AppendSourceTasks(v []string) *AggregatedEntityUpdate {
	_u.mutation.AppendSourceTasks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AggregatedEntityUpdate) SetUpdatedAt(v time.Time) *AggregatedEntityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AggregatedEntityMutation object of the builder.
func (_u *AggregatedEntityUpdate) Mutation() *AggregatedEntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AggregatedEntityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AggregatedEntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AggregatedEntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AggregatedEntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AggregatedEntityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := aggregatedentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AggregatedEntityUpdate) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := aggregatedentity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := aggregatedentity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := aggregatedentity.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := aggregatedentity.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AggregatedEntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aggregatedentity.Table, aggregatedentity.Columns, sqlgraph.NewFieldSpec(aggregatedentity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(aggregatedentity.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(aggregatedentity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(aggregatedentity.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueIdentifier(); ok {
		_spec.SetField(aggregatedentity.FieldUniqueIdentifier, field.TypeString, value)
	}
	if _u.mutation.UniqueIdentifierCleared() {
		_spec.ClearField(aggregatedentity.FieldUniqueIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ConsolidatedAttributes(); ok {
		_spec.SetField(aggregatedentity.FieldConsolidatedAttributes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DataLineage(); ok {
		_spec.SetField(aggregatedentity.FieldDataLineage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(aggregatedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(aggregatedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTasks(); ok {
		_spec.SetField(aggregatedentity.FieldSourceTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aggregatedentity.FieldSourceTasks, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aggregatedentity.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aggregatedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AggregatedEntityUpdateOne is the builder for updating a single AggregatedEntity entity.
type AggregatedEntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AggregatedEntityMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *AggregatedEntityUpdateOne) SetEntityType(v string) *AggregatedEntityUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *AggregatedEntityUpdateOne) SetNillableEntityType(v *string) *AggregatedEntityUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *AggregatedEntityUpdateOne) SetName(v string) *AggregatedEntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AggregatedEntityUpdateOne) SetNillableName(v *string) *AggregatedEntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *AggregatedEntityUpdateOne) SetNormalizedName(v string) *AggregatedEntityUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *AggregatedEntityUpdateOne) SetNillableNormalizedName(v *string) *AggregatedEntityUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (_u *AggregatedEntityUpdateOne) SetUniqueIdentifier(v string) *AggregatedEntityUpdateOne {
	_u.mutation.SetUniqueIdentifier(v)
	return _u
}

// SetNillableUniqueIdentifier sets the "unique_identifier" field if the given value is not nil.
func (_u *AggregatedEntityUpdateOne) SetNillableUniqueIdentifier(v *string) *AggregatedEntityUpdateOne {
	if v != nil {
		_u.SetUniqueIdentifier(*v)
	}
	return _u
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (_u *AggregatedEntityUpdateOne) ClearUniqueIdentifier() *AggregatedEntityUpdateOne {
	_u.mutation.ClearUniqueIdentifier()
	return _u
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (_u *AggregatedEntityUpdateOne) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityUpdateOne {
	_u.mutation.SetConsolidatedAttributes(v)
	return _u
}

// SetDataLineage sets the "data_lineage" field.
func (_u *AggregatedEntityUpdateOne) SetDataLineage(v map[string]interface{}) *AggregatedEntityUpdateOne {
	_u.mutation.SetDataLineage(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *AggregatedEntityUpdateOne) SetConfidenceScore(v float64) *AggregatedEntityUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *AggregatedEntityUpdateOne) SetNillableConfidenceScore(v *float64) *AggregatedEntityUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *AggregatedEntityUpdateOne) AddConfidenceScore(v float64) *AggregatedEntityUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetSourceTasks sets the "source_tasks" field.
func (_u *AggregatedEntityUpdateOne) SetSourceTasks(v []string) *AggregatedEntityUpdateOne {
	_u.mutation.SetSourceTasks(v)
	return _u
}

// AppendSourceTasks appends value to the "source_tasks" field.
func (_u *AggregatedEntityUpdateOne) AppendSourceTasks(v []string) *AggregatedEntityUpdateOne {
	_u.mutation.AppendSourceTasks(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AggregatedEntityUpdateOne) SetUpdatedAt(v time.Time) *AggregatedEntityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AggregatedEntityMutation object of the builder.
func (_u *AggregatedEntityUpdateOne) Mutation() *AggregatedEntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the AggregatedEntityUpdate builder.
func (_u *AggregatedEntityUpdateOne) Where(ps ...predicate.AggregatedEntity) *AggregatedEntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AggregatedEntityUpdateOne) Select(field string, fields ...string) *AggregatedEntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AggregatedEntity entity.
func (_u *AggregatedEntityUpdateOne) Save(ctx context.Context) (*AggregatedEntity, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AggregatedEntityUpdateOne) SaveX(ctx context.Context) *AggregatedEntity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AggregatedEntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AggregatedEntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AggregatedEntityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := aggregatedentity.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AggregatedEntityUpdateOne) check() error {
	if v, ok := _u.mutation.EntityType(); ok {
		if err := aggregatedentity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.entity_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := aggregatedentity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := aggregatedentity.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := aggregatedentity.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.confidence_score": %w`, err)}
		}
	}
	return nil
}

func (_u *AggregatedEntityUpdateOne) sqlSave(ctx context.Context) (_node *AggregatedEntity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(aggregatedentity.Table, aggregatedentity.Columns, sqlgraph.NewFieldSpec(aggregatedentity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AggregatedEntity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, aggregatedentity.FieldID)
		for _, f := range fields {
			if !aggregatedentity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != aggregatedentity.FieldID {
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
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(aggregatedentity.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(aggregatedentity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(aggregatedentity.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.UniqueIdentifier(); ok {
		_spec.SetField(aggregatedentity.FieldUniqueIdentifier, field.TypeString, value)
	}
	if _u.mutation.UniqueIdentifierCleared() {
		_spec.ClearField(aggregatedentity.FieldUniqueIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ConsolidatedAttributes(); ok {
		_spec.SetField(aggregatedentity.FieldConsolidatedAttributes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DataLineage(); ok {
		_spec.SetField(aggregatedentity.FieldDataLineage, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(aggregatedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(aggregatedentity.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SourceTasks(); ok {
		_spec.SetField(aggregatedentity.FieldSourceTasks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, aggregatedentity.FieldSourceTasks, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(aggregatedentity.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AggregatedEntity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{aggregatedentity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
