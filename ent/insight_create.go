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
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *InsightCreate) SetTaskID(v string) *InsightCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InsightCreate) SetCategory(v string) *InsightCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetInsightText sets the "insight_text" field.
func (_c *InsightCreate) SetInsightText(v string) *InsightCreate {
	_c.mutation.SetInsightText(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *InsightCreate) SetConfidenceScore(v float64) *InsightCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetSourceIds sets the "source_ids" field.
func (_c *InsightCreate) SetSourceIds(v []string) *InsightCreate {
	_c.mutation.SetSourceIds(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *InsightCreate) SetPosition(v int) *InsightCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *InsightCreate) SetNillablePosition(v *int) *InsightCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the ResearchTask entity.
func (_c *InsightCreate) SetTask(v *ResearchTask) *InsightCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := insight.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Insight.task_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Insight.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := insight.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Insight.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InsightText(); !ok {
		return &ValidationError{Name: "insight_text", err: errors.New(`ent: missing required field "Insight.insight_text"`)}
	}
	if v, ok := _c.mutation.InsightText(); ok {
		if err := insight.InsightTextValidator(v); err != nil {
			return &ValidationError{Name: "insight_text", err: fmt.Errorf(`ent: validator failed for field "Insight.insight_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Insight.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := insight.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Insight.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceIds(); !ok {
		return &ValidationError{Name: "source_ids", err: errors.New(`ent: missing required field "Insight.source_ids"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Insight.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Insight.task"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(insight.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.InsightText(); ok {
		_spec.SetField(insight.FieldInsightText, field.TypeString, value)
		_node.InsightText = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(insight.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.SourceIds(); ok {
		_spec.SetField(insight.FieldSourceIds, field.TypeJSON, value)
		_node.SourceIds = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(insight.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.TaskTable,
			Columns: []string{insight.TaskColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreate) OnConflict(opts ...sql.ConflictOption) *InsightUpsertOne {
	_c.conflict = opts
	return &InsightUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreate) OnConflictColumns(columns ...string) *InsightUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertOne{
		create: _c,
	}
}

type (
	// InsightUpsertOne is the builder for "upsert"-ing
	//  one Insight node.
	InsightUpsertOne struct {
		create *InsightCreate
	}

	// InsightUpsert is the "OnConflict" setter.
	InsightUpsert struct {
		*sql.UpdateSet
	}
)

// SetCategory sets the "category" field.
func (u *InsightUpsert) SetCategory(v string) *InsightUpsert {
	u.Set(insight.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsert) UpdateCategory() *InsightUpsert {
	u.SetExcluded(insight.FieldCategory)
	return u
}

// SetInsightText sets the "insight_text" field.
func (u *InsightUpsert) SetInsightText(v string) *InsightUpsert {
	u.Set(insight.FieldInsightText, v)
	return u
}

// UpdateInsightText sets the "insight_text" field to the value that was provided on create.
func (u *InsightUpsert) UpdateInsightText() *InsightUpsert {
	u.SetExcluded(insight.FieldInsightText)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *InsightUpsert) SetConfidenceScore(v float64) *InsightUpsert {
	u.Set(insight.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *InsightUpsert) UpdateConfidenceScore() *InsightUpsert {
	u.SetExcluded(insight.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *InsightUpsert) AddConfidenceScore(v float64) *InsightUpsert {
	u.Add(insight.FieldConfidenceScore, v)
	return u
}

// SetSourceIds sets the "source_ids" field.
func (u *InsightUpsert) SetSourceIds(v []string) *InsightUpsert {
	u.Set(insight.FieldSourceIds, v)
	return u
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *InsightUpsert) UpdateSourceIds() *InsightUpsert {
	u.SetExcluded(insight.FieldSourceIds)
	return u
}

// SetPosition sets the "position" field.
func (u *InsightUpsert) SetPosition(v int) *InsightUpsert {
	u.Set(insight.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InsightUpsert) UpdatePosition() *InsightUpsert {
	u.SetExcluded(insight.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *InsightUpsert) AddPosition(v int) *InsightUpsert {
	u.Add(insight.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertOne) UpdateNewValues() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insight.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(insight.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(insight.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsightUpsertOne) Ignore() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertOne) DoNothing() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreate.OnConflict
// documentation for more info.
func (u *InsightUpsertOne) Update(set func(*InsightUpsert)) *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *InsightUpsertOne) SetCategory(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateCategory() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateCategory()
	})
}

// SetInsightText sets the "insight_text" field.
func (u *InsightUpsertOne) SetInsightText(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetInsightText(v)
	})
}

// UpdateInsightText sets the "insight_text" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateInsightText() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateInsightText()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *InsightUpsertOne) SetConfidenceScore(v float64) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *InsightUpsertOne) AddConfidenceScore(v float64) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateConfidenceScore() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetSourceIds sets the "source_ids" field.
func (u *InsightUpsertOne) SetSourceIds(v []string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetSourceIds(v)
	})
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateSourceIds() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSourceIds()
	})
}

// SetPosition sets the "position" field.
func (u *InsightUpsertOne) SetPosition(v int) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *InsightUpsertOne) AddPosition(v int) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdatePosition() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *InsightUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsightUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsightUpsertOne.ID is not supported by MySQL driver. Use InsightUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsightUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
	conflict []sql.ConflictOption
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsightUpsertBulk {
	_c.conflict = opts
	return &InsightUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflictColumns(columns ...string) *InsightUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertBulk{
		create: _c,
	}
}

// InsightUpsertBulk is the builder for "upsert"-ing
// a bulk of Insight nodes.
type InsightUpsertBulk struct {
	create *InsightCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertBulk) UpdateNewValues() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insight.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(insight.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(insight.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsightUpsertBulk) Ignore() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertBulk) DoNothing() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreateBulk.OnConflict
// documentation for more info.
func (u *InsightUpsertBulk) Update(set func(*InsightUpsert)) *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetCategory sets the "category" field.
func (u *InsightUpsertBulk) SetCategory(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateCategory() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateCategory()
	})
}

// SetInsightText sets the "insight_text" field.
func (u *InsightUpsertBulk) SetInsightText(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetInsightText(v)
	})
}

// UpdateInsightText sets the "insight_text" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateInsightText() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateInsightText()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *InsightUpsertBulk) SetConfidenceScore(v float64) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *InsightUpsertBulk) AddConfidenceScore(v float64) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateConfidenceScore() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetSourceIds sets the "source_ids" field.
func (u *InsightUpsertBulk) SetSourceIds(v []string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetSourceIds(v)
	})
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateSourceIds() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSourceIds()
	})
}

// SetPosition sets the "position" field.
func (u *InsightUpsertBulk) SetPosition(v int) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *InsightUpsertBulk) AddPosition(v int) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdatePosition() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *InsightUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsightCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
