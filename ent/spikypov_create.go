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
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// SpikyPOVCreate is the builder for creating a SpikyPOV entity.
type SpikyPOVCreate struct {
	config
	mutation *SpikyPOVMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *SpikyPOVCreate) SetTaskID(v string) *SpikyPOVCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *SpikyPOVCreate) SetKind(v spikypov.Kind) *SpikyPOVCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStatement sets the "statement" field.
func (_c *SpikyPOVCreate) SetStatement(v string) *SpikyPOVCreate {
	_c.mutation.SetStatement(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *SpikyPOVCreate) SetReasoning(v string) *SpikyPOVCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetInsightIds sets the "insight_ids" field.
func (_c *SpikyPOVCreate) SetInsightIds(v []string) *SpikyPOVCreate {
	_c.mutation.SetInsightIds(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *SpikyPOVCreate) SetPosition(v int) *SpikyPOVCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *SpikyPOVCreate) SetNillablePosition(v *int) *SpikyPOVCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SpikyPOVCreate) SetCreatedAt(v time.Time) *SpikyPOVCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SpikyPOVCreate) SetNillableCreatedAt(v *time.Time) *SpikyPOVCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SpikyPOVCreate) SetID(v string) *SpikyPOVCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the ResearchTask entity.
func (_c *SpikyPOVCreate) SetTask(v *ResearchTask) *SpikyPOVCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the SpikyPOVMutation object of the builder.
func (_c *SpikyPOVCreate) Mutation() *SpikyPOVMutation {
	return _c.mutation
}

// Save creates the SpikyPOV in the database.
func (_c *SpikyPOVCreate) Save(ctx context.Context) (*SpikyPOV, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SpikyPOVCreate) SaveX(ctx context.Context) *SpikyPOV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpikyPOVCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpikyPOVCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SpikyPOVCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := spikypov.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := spikypov.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SpikyPOVCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "SpikyPOV.task_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "SpikyPOV.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := spikypov.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Statement(); !ok {
		return &ValidationError{Name: "statement", err: errors.New(`ent: missing required field "SpikyPOV.statement"`)}
	}
	if v, ok := _c.mutation.Statement(); ok {
		if err := spikypov.StatementValidator(v); err != nil {
			return &ValidationError{Name: "statement", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.statement": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "SpikyPOV.reasoning"`)}
	}
	if v, ok := _c.mutation.Reasoning(); ok {
		if err := spikypov.ReasoningValidator(v); err != nil {
			return &ValidationError{Name: "reasoning", err: fmt.Errorf(`ent: validator failed for field "SpikyPOV.reasoning": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InsightIds(); !ok {
		return &ValidationError{Name: "insight_ids", err: errors.New(`ent: missing required field "SpikyPOV.insight_ids"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "SpikyPOV.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SpikyPOV.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "SpikyPOV.task"`)}
	}
	return nil
}

func (_c *SpikyPOVCreate) sqlSave(ctx context.Context) (*SpikyPOV, error) {
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
			return nil, fmt.Errorf("unexpected SpikyPOV.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SpikyPOVCreate) createSpec() (*SpikyPOV, *sqlgraph.CreateSpec) {
	var (
		_node = &SpikyPOV{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(spikypov.Table, sqlgraph.NewFieldSpec(spikypov.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(spikypov.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Statement(); ok {
		_spec.SetField(spikypov.FieldStatement, field.TypeString, value)
		_node.Statement = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(spikypov.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.InsightIds(); ok {
		_spec.SetField(spikypov.FieldInsightIds, field.TypeJSON, value)
		_node.InsightIds = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(spikypov.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(spikypov.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   spikypov.TaskTable,
			Columns: []string{spikypov.TaskColumn},
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
//	client.SpikyPOV.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpikyPOVUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SpikyPOVCreate) OnConflict(opts ...sql.ConflictOption) *SpikyPOVUpsertOne {
	_c.conflict = opts
	return &SpikyPOVUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpikyPOVCreate) OnConflictColumns(columns ...string) *SpikyPOVUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpikyPOVUpsertOne{
		create: _c,
	}
}

type (
	// SpikyPOVUpsertOne is the builder for "upsert"-ing
	//  one SpikyPOV node.
	SpikyPOVUpsertOne struct {
		create *SpikyPOVCreate
	}

	// SpikyPOVUpsert is the "OnConflict" setter.
	SpikyPOVUpsert struct {
		*sql.UpdateSet
	}
)

// SetKind sets the "kind" field.
func (u *SpikyPOVUpsert) SetKind(v spikypov.Kind) *SpikyPOVUpsert {
	u.Set(spikypov.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SpikyPOVUpsert) UpdateKind() *SpikyPOVUpsert {
	u.SetExcluded(spikypov.FieldKind)
	return u
}

// SetStatement sets the "statement" field.
func (u *SpikyPOVUpsert) SetStatement(v string) *SpikyPOVUpsert {
	u.Set(spikypov.FieldStatement, v)
	return u
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *SpikyPOVUpsert) UpdateStatement() *SpikyPOVUpsert {
	u.SetExcluded(spikypov.FieldStatement)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *SpikyPOVUpsert) SetReasoning(v string) *SpikyPOVUpsert {
	u.Set(spikypov.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *SpikyPOVUpsert) UpdateReasoning() *SpikyPOVUpsert {
	u.SetExcluded(spikypov.FieldReasoning)
	return u
}

// SetInsightIds sets the "insight_ids" field.
func (u *SpikyPOVUpsert) SetInsightIds(v []string) *SpikyPOVUpsert {
	u.Set(spikypov.FieldInsightIds, v)
	return u
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *SpikyPOVUpsert) UpdateInsightIds() *SpikyPOVUpsert {
	u.SetExcluded(spikypov.FieldInsightIds)
	return u
}

// SetPosition sets the "position" field.
func (u *SpikyPOVUpsert) SetPosition(v int) *SpikyPOVUpsert {
	u.Set(spikypov.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SpikyPOVUpsert) UpdatePosition() *SpikyPOVUpsert {
	u.SetExcluded(spikypov.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *SpikyPOVUpsert) AddPosition(v int) *SpikyPOVUpsert {
	u.Add(spikypov.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(spikypov.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpikyPOVUpsertOne) UpdateNewValues() *SpikyPOVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(spikypov.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(spikypov.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(spikypov.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SpikyPOVUpsertOne) Ignore() *SpikyPOVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpikyPOVUpsertOne) DoNothing() *SpikyPOVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpikyPOVCreate.OnConflict
// documentation for more info.
func (u *SpikyPOVUpsertOne) Update(set func(*SpikyPOVUpsert)) *SpikyPOVUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpikyPOVUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *SpikyPOVUpsertOne) SetKind(v spikypov.Kind) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SpikyPOVUpsertOne) UpdateKind() *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateKind()
	})
}

// SetStatement sets the "statement" field.
func (u *SpikyPOVUpsertOne) SetStatement(v string) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *SpikyPOVUpsertOne) UpdateStatement() *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateStatement()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *SpikyPOVUpsertOne) SetReasoning(v string) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *SpikyPOVUpsertOne) UpdateReasoning() *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateReasoning()
	})
}

// SetInsightIds sets the "insight_ids" field.
func (u *SpikyPOVUpsertOne) SetInsightIds(v []string) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetInsightIds(v)
	})
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *SpikyPOVUpsertOne) UpdateInsightIds() *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateInsightIds()
	})
}

// SetPosition sets the "position" field.
func (u *SpikyPOVUpsertOne) SetPosition(v int) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *SpikyPOVUpsertOne) AddPosition(v int) *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SpikyPOVUpsertOne) UpdatePosition() *SpikyPOVUpsertOne {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *SpikyPOVUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpikyPOVCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpikyPOVUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SpikyPOVUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SpikyPOVUpsertOne.ID is not supported by MySQL driver. Use SpikyPOVUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SpikyPOVUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SpikyPOVCreateBulk is the builder for creating many SpikyPOV entities in bulk.
type SpikyPOVCreateBulk struct {
	config
	err      error
	builders []*SpikyPOVCreate
	conflict []sql.ConflictOption
}

// Save creates the SpikyPOV entities in the database.
func (_c *SpikyPOVCreateBulk) Save(ctx context.Context) ([]*SpikyPOV, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SpikyPOV, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SpikyPOVMutation)
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
func (_c *SpikyPOVCreateBulk) SaveX(ctx context.Context) []*SpikyPOV {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SpikyPOVCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SpikyPOVCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SpikyPOV.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SpikyPOVUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *SpikyPOVCreateBulk) OnConflict(opts ...sql.ConflictOption) *SpikyPOVUpsertBulk {
	_c.conflict = opts
	return &SpikyPOVUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SpikyPOVCreateBulk) OnConflictColumns(columns ...string) *SpikyPOVUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SpikyPOVUpsertBulk{
		create: _c,
	}
}

// SpikyPOVUpsertBulk is the builder for "upsert"-ing
// a bulk of SpikyPOV nodes.
type SpikyPOVUpsertBulk struct {
	create *SpikyPOVCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(spikypov.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SpikyPOVUpsertBulk) UpdateNewValues() *SpikyPOVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(spikypov.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(spikypov.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(spikypov.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SpikyPOV.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SpikyPOVUpsertBulk) Ignore() *SpikyPOVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SpikyPOVUpsertBulk) DoNothing() *SpikyPOVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SpikyPOVCreateBulk.OnConflict
// documentation for more info.
func (u *SpikyPOVUpsertBulk) Update(set func(*SpikyPOVUpsert)) *SpikyPOVUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SpikyPOVUpsert{UpdateSet: update})
	}))
	return u
}

// SetKind sets the "kind" field.
func (u *SpikyPOVUpsertBulk) SetKind(v spikypov.Kind) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *SpikyPOVUpsertBulk) UpdateKind() *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateKind()
	})
}

// SetStatement sets the "statement" field.
func (u *SpikyPOVUpsertBulk) SetStatement(v string) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetStatement(v)
	})
}

// UpdateStatement sets the "statement" field to the value that was provided on create.
func (u *SpikyPOVUpsertBulk) UpdateStatement() *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateStatement()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *SpikyPOVUpsertBulk) SetReasoning(v string) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *SpikyPOVUpsertBulk) UpdateReasoning() *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateReasoning()
	})
}

// SetInsightIds sets the "insight_ids" field.
func (u *SpikyPOVUpsertBulk) SetInsightIds(v []string) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetInsightIds(v)
	})
}

// UpdateInsightIds sets the "insight_ids" field to the value that was provided on create.
func (u *SpikyPOVUpsertBulk) UpdateInsightIds() *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdateInsightIds()
	})
}

// SetPosition sets the "position" field.
func (u *SpikyPOVUpsertBulk) SetPosition(v int) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *SpikyPOVUpsertBulk) AddPosition(v int) *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *SpikyPOVUpsertBulk) UpdatePosition() *SpikyPOVUpsertBulk {
	return u.Update(func(s *SpikyPOVUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *SpikyPOVUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SpikyPOVCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SpikyPOVCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SpikyPOVUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
