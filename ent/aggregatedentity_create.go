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
	"github.com/trilogy-group/nexus-agents/ent/aggregatedentity"
)

// AggregatedEntityCreate is the builder for creating a AggregatedEntity entity.
type AggregatedEntityCreate struct {
	config
	mutation *AggregatedEntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScopeID sets the "scope_id" field.
func (_c *AggregatedEntityCreate) SetScopeID(v string) *AggregatedEntityCreate {
	_c.mutation.SetScopeID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *AggregatedEntityCreate) SetEntityType(v string) *AggregatedEntityCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AggregatedEntityCreate) SetName(v string) *AggregatedEntityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *AggregatedEntityCreate) SetNormalizedName(v string) *AggregatedEntityCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (_c *AggregatedEntityCreate) SetUniqueIdentifier(v string) *AggregatedEntityCreate {
	_c.mutation.SetUniqueIdentifier(v)
	return _c
}

// SetNillableUniqueIdentifier sets the "unique_identifier" field if the given value is not nil.
func (_c *AggregatedEntityCreate) SetNillableUniqueIdentifier(v *string) *AggregatedEntityCreate {
	if v != nil {
		_c.SetUniqueIdentifier(*v)
	}
	return _c
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (_c *AggregatedEntityCreate) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityCreate {
	_c.mutation.SetConsolidatedAttributes(v)
	return _c
}

// SetDataLineage sets the "data_lineage" field.
func (_c *AggregatedEntityCreate) SetDataLineage(v map[string]interface{}) *AggregatedEntityCreate {
	_c.mutation.SetDataLineage(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *AggregatedEntityCreate) SetConfidenceScore(v float64) *AggregatedEntityCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetSourceTasks sets the "source_tasks" field.
func (_c *AggregatedEntityCreate) SetSourceTasks(v []string) *AggregatedEntityCreate {
	_c.mutation.SetSourceTasks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AggregatedEntityCreate) SetCreatedAt(v time.Time) *AggregatedEntityCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AggregatedEntityCreate) SetNillableCreatedAt(v *time.Time) *AggregatedEntityCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AggregatedEntityCreate) SetUpdatedAt(v time.Time) *AggregatedEntityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AggregatedEntityCreate) SetNillableUpdatedAt(v *time.Time) *AggregatedEntityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AggregatedEntityCreate) SetID(v string) *AggregatedEntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AggregatedEntityMutation object of the builder.
func (_c *AggregatedEntityCreate) Mutation() *AggregatedEntityMutation {
	return _c.mutation
}

// Save creates the AggregatedEntity in the database.
func (_c *AggregatedEntityCreate) Save(ctx context.Context) (*AggregatedEntity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AggregatedEntityCreate) SaveX(ctx context.Context) *AggregatedEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AggregatedEntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AggregatedEntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AggregatedEntityCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := aggregatedentity.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := aggregatedentity.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AggregatedEntityCreate) check() error {
	if _, ok := _c.mutation.ScopeID(); !ok {
		return &ValidationError{Name: "scope_id", err: errors.New(`ent: missing required field "AggregatedEntity.scope_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "AggregatedEntity.entity_type"`)}
	}
	if v, ok := _c.mutation.EntityType(); ok {
		if err := aggregatedentity.EntityTypeValidator(v); err != nil {
			return &ValidationError{Name: "entity_type", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.entity_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "AggregatedEntity.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := aggregatedentity.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "AggregatedEntity.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := aggregatedentity.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConsolidatedAttributes(); !ok {
		return &ValidationError{Name: "consolidated_attributes", err: errors.New(`ent: missing required field "AggregatedEntity.consolidated_attributes"`)}
	}
	if _, ok := _c.mutation.DataLineage(); !ok {
		return &ValidationError{Name: "data_lineage", err: errors.New(`ent: missing required field "AggregatedEntity.data_lineage"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "AggregatedEntity.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := aggregatedentity.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "AggregatedEntity.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceTasks(); !ok {
		return &ValidationError{Name: "source_tasks", err: errors.New(`ent: missing required field "AggregatedEntity.source_tasks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AggregatedEntity.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AggregatedEntity.updated_at"`)}
	}
	return nil
}

func (_c *AggregatedEntityCreate) sqlSave(ctx context.Context) (*AggregatedEntity, error) {
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
			return nil, fmt.Errorf("unexpected AggregatedEntity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AggregatedEntityCreate) createSpec() (*AggregatedEntity, *sqlgraph.CreateSpec) {
	var (
		_node = &AggregatedEntity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(aggregatedentity.Table, sqlgraph.NewFieldSpec(aggregatedentity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ScopeID(); ok {
		_spec.SetField(aggregatedentity.FieldScopeID, field.TypeString, value)
		_node.ScopeID = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(aggregatedentity.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(aggregatedentity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(aggregatedentity.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.UniqueIdentifier(); ok {
		_spec.SetField(aggregatedentity.FieldUniqueIdentifier, field.TypeString, value)
		_node.UniqueIdentifier = value
	}
	if value, ok := _c.mutation.ConsolidatedAttributes(); ok {
		_spec.SetField(aggregatedentity.FieldConsolidatedAttributes, field.TypeJSON, value)
		_node.ConsolidatedAttributes = value
	}
	if value, ok := _c.mutation.DataLineage(); ok {
		_spec.SetField(aggregatedentity.FieldDataLineage, field.TypeJSON, value)
		_node.DataLineage = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(aggregatedentity.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.SourceTasks(); ok {
		_spec.SetField(aggregatedentity.FieldSourceTasks, field.TypeJSON, value)
		_node.SourceTasks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(aggregatedentity.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(aggregatedentity.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AggregatedEntity.Create().
//		SetScopeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AggregatedEntityUpsert) {
//			SetScopeID(v+v).
//		}).
//		Exec(ctx)
func (_c *AggregatedEntityCreate) OnConflict(opts ...sql.ConflictOption) *AggregatedEntityUpsertOne {
	_c.conflict = opts
	return &AggregatedEntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AggregatedEntityCreate) OnConflictColumns(columns ...string) *AggregatedEntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AggregatedEntityUpsertOne{
		create: _c,
	}
}

type (
	// AggregatedEntityUpsertOne is the builder for "upsert"-ing
	//  one AggregatedEntity node.
	AggregatedEntityUpsertOne struct {
		create *AggregatedEntityCreate
	}

	// AggregatedEntityUpsert is the "OnConflict" setter.
	AggregatedEntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityType sets the "entity_type" field.
func (u *AggregatedEntityUpsert) SetEntityType(v string) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateEntityType() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldEntityType)
	return u
}

// SetName sets the "name" field.
func (u *AggregatedEntityUpsert) SetName(v string) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateName() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldName)
	return u
}

// SetNormalizedName sets the "normalized_name" field.
func (u *AggregatedEntityUpsert) SetNormalizedName(v string) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldNormalizedName, v)
	return u
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateNormalizedName() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldNormalizedName)
	return u
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (u *AggregatedEntityUpsert) SetUniqueIdentifier(v string) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldUniqueIdentifier, v)
	return u
}

// UpdateUniqueIdentifier sets the "unique_identifier" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateUniqueIdentifier() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldUniqueIdentifier)
	return u
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (u *AggregatedEntityUpsert) ClearUniqueIdentifier() *AggregatedEntityUpsert {
	u.SetNull(aggregatedentity.FieldUniqueIdentifier)
	return u
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (u *AggregatedEntityUpsert) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldConsolidatedAttributes, v)
	return u
}

// UpdateConsolidatedAttributes sets the "consolidated_attributes" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateConsolidatedAttributes() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldConsolidatedAttributes)
	return u
}

// SetDataLineage sets the "data_lineage" field.
func (u *AggregatedEntityUpsert) SetDataLineage(v map[string]interface{}) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldDataLineage, v)
	return u
}

// UpdateDataLineage sets the "data_lineage" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateDataLineage() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldDataLineage)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *AggregatedEntityUpsert) SetConfidenceScore(v float64) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateConfidenceScore() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *AggregatedEntityUpsert) AddConfidenceScore(v float64) *AggregatedEntityUpsert {
	u.Add(aggregatedentity.FieldConfidenceScore, v)
	return u
}

// SetSourceTasks sets the "source_tasks" field.
func (u *AggregatedEntityUpsert) SetSourceTasks(v []string) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldSourceTasks, v)
	return u
}

// UpdateSourceTasks sets the "source_tasks" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateSourceTasks() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldSourceTasks)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AggregatedEntityUpsert) SetUpdatedAt(v time.Time) *AggregatedEntityUpsert {
	u.Set(aggregatedentity.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AggregatedEntityUpsert) UpdateUpdatedAt() *AggregatedEntityUpsert {
	u.SetExcluded(aggregatedentity.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(aggregatedentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AggregatedEntityUpsertOne) UpdateNewValues() *AggregatedEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(aggregatedentity.FieldID)
		}
		if _, exists := u.create.mutation.ScopeID(); exists {
			s.SetIgnore(aggregatedentity.FieldScopeID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(aggregatedentity.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AggregatedEntityUpsertOne) Ignore() *AggregatedEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AggregatedEntityUpsertOne) DoNothing() *AggregatedEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AggregatedEntityCreate.OnConflict
// documentation for more info.
func (u *AggregatedEntityUpsertOne) Update(set func(*AggregatedEntityUpsert)) *AggregatedEntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AggregatedEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *AggregatedEntityUpsertOne) SetEntityType(v string) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateEntityType() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateEntityType()
	})
}

// SetName sets the "name" field.
func (u *AggregatedEntityUpsertOne) SetName(v string) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateName() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *AggregatedEntityUpsertOne) SetNormalizedName(v string) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateNormalizedName() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (u *AggregatedEntityUpsertOne) SetUniqueIdentifier(v string) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetUniqueIdentifier(v)
	})
}

// UpdateUniqueIdentifier sets the "unique_identifier" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateUniqueIdentifier() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateUniqueIdentifier()
	})
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (u *AggregatedEntityUpsertOne) ClearUniqueIdentifier() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.ClearUniqueIdentifier()
	})
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (u *AggregatedEntityUpsertOne) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetConsolidatedAttributes(v)
	})
}

// UpdateConsolidatedAttributes sets the "consolidated_attributes" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateConsolidatedAttributes() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateConsolidatedAttributes()
	})
}

// SetDataLineage sets the "data_lineage" field.
func (u *AggregatedEntityUpsertOne) SetDataLineage(v map[string]interface{}) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetDataLineage(v)
	})
}

// UpdateDataLineage sets the "data_lineage" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateDataLineage() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateDataLineage()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *AggregatedEntityUpsertOne) SetConfidenceScore(v float64) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *AggregatedEntityUpsertOne) AddConfidenceScore(v float64) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateConfidenceScore() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetSourceTasks sets the "source_tasks" field.
func (u *AggregatedEntityUpsertOne) SetSourceTasks(v []string) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetSourceTasks(v)
	})
}

// UpdateSourceTasks sets the "source_tasks" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateSourceTasks() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateSourceTasks()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AggregatedEntityUpsertOne) SetUpdatedAt(v time.Time) *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AggregatedEntityUpsertOne) UpdateUpdatedAt() *AggregatedEntityUpsertOne {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AggregatedEntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AggregatedEntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AggregatedEntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AggregatedEntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AggregatedEntityUpsertOne.ID is not supported by MySQL driver. Use AggregatedEntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AggregatedEntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AggregatedEntityCreateBulk is the builder for creating many AggregatedEntity entities in bulk.
type AggregatedEntityCreateBulk struct {
	config
	err      error
	builders []*AggregatedEntityCreate
	conflict []sql.ConflictOption
}

// Save creates the AggregatedEntity entities in the database.
func (_c *AggregatedEntityCreateBulk) Save(ctx context.Context) ([]*AggregatedEntity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AggregatedEntity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AggregatedEntityMutation)
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
func (_c *AggregatedEntityCreateBulk) SaveX(ctx context.Context) []*AggregatedEntity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AggregatedEntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AggregatedEntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AggregatedEntity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AggregatedEntityUpsert) {
//			SetScopeID(v+v).
//		}).
//		Exec(ctx)
func (_c *AggregatedEntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *AggregatedEntityUpsertBulk {
	_c.conflict = opts
	return &AggregatedEntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AggregatedEntityCreateBulk) OnConflictColumns(columns ...string) *AggregatedEntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AggregatedEntityUpsertBulk{
		create: _c,
	}
}

// AggregatedEntityUpsertBulk is the builder for "upsert"-ing
// a bulk of AggregatedEntity nodes.
type AggregatedEntityUpsertBulk struct {
	create *AggregatedEntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(aggregatedentity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AggregatedEntityUpsertBulk) UpdateNewValues() *AggregatedEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(aggregatedentity.FieldID)
			}
			if _, exists := b.mutation.ScopeID(); exists {
				s.SetIgnore(aggregatedentity.FieldScopeID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(aggregatedentity.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AggregatedEntity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AggregatedEntityUpsertBulk) Ignore() *AggregatedEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AggregatedEntityUpsertBulk) DoNothing() *AggregatedEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AggregatedEntityCreateBulk.OnConflict
// documentation for more info.
func (u *AggregatedEntityUpsertBulk) Update(set func(*AggregatedEntityUpsert)) *AggregatedEntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AggregatedEntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *AggregatedEntityUpsertBulk) SetEntityType(v string) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateEntityType() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateEntityType()
	})
}

// SetName sets the "name" field.
func (u *AggregatedEntityUpsertBulk) SetName(v string) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateName() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *AggregatedEntityUpsertBulk) SetNormalizedName(v string) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateNormalizedName() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetUniqueIdentifier sets the "unique_identifier" field.
func (u *AggregatedEntityUpsertBulk) SetUniqueIdentifier(v string) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetUniqueIdentifier(v)
	})
}

// UpdateUniqueIdentifier sets the "unique_identifier" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateUniqueIdentifier() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateUniqueIdentifier()
	})
}

// ClearUniqueIdentifier clears the value of the "unique_identifier" field.
func (u *AggregatedEntityUpsertBulk) ClearUniqueIdentifier() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.ClearUniqueIdentifier()
	})
}

// SetConsolidatedAttributes sets the "consolidated_attributes" field.
func (u *AggregatedEntityUpsertBulk) SetConsolidatedAttributes(v map[string]interface{}) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetConsolidatedAttributes(v)
	})
}

// UpdateConsolidatedAttributes sets the "consolidated_attributes" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateConsolidatedAttributes() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateConsolidatedAttributes()
	})
}

// SetDataLineage sets the "data_lineage" field.
func (u *AggregatedEntityUpsertBulk) SetDataLineage(v map[string]interface{}) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetDataLineage(v)
	})
}

// UpdateDataLineage sets the "data_lineage" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateDataLineage() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateDataLineage()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *AggregatedEntityUpsertBulk) SetConfidenceScore(v float64) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *AggregatedEntityUpsertBulk) AddConfidenceScore(v float64) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateConfidenceScore() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetSourceTasks sets the "source_tasks" field.
func (u *AggregatedEntityUpsertBulk) SetSourceTasks(v []string) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetSourceTasks(v)
	})
}

// UpdateSourceTasks sets the "source_tasks" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateSourceTasks() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateSourceTasks()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AggregatedEntityUpsertBulk) SetUpdatedAt(v time.Time) *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AggregatedEntityUpsertBulk) UpdateUpdatedAt() *AggregatedEntityUpsertBulk {
	return u.Update(func(s *AggregatedEntityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AggregatedEntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AggregatedEntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AggregatedEntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AggregatedEntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
