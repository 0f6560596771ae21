// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/source"
)

// KnowledgeNodeSourceCreate is the builder for creating a KnowledgeNodeSource entity.
type KnowledgeNodeSourceCreate struct {
	config
	mutation *KnowledgeNodeSourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNodeID sets the "node_id" field.
func (_c *KnowledgeNodeSourceCreate) SetNodeID(v string) *KnowledgeNodeSourceCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *KnowledgeNodeSourceCreate) SetSourceID(v string) *KnowledgeNodeSourceCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *KnowledgeNodeSourceCreate) SetRelevanceScore(v float64) *KnowledgeNodeSourceCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *KnowledgeNodeSourceCreate) SetNillableRelevanceScore(v *float64) *KnowledgeNodeSourceCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeNodeSourceCreate) SetID(v string) *KnowledgeNodeSourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNode sets the "node" edge to the KnowledgeNode entity.
func (_c *KnowledgeNodeSourceCreate) SetNode(v *KnowledgeNode) *KnowledgeNodeSourceCreate {
	return _c.SetNodeID(v.ID)
}

// SetSource sets the "source" edge to the Source entity.
func (_c *KnowledgeNodeSourceCreate) SetSource(v *Source) *KnowledgeNodeSourceCreate {
	return _c.SetSourceID(v.ID)
}

// Mutation returns the KnowledgeNodeSourceMutation object of the builder.
func (_c *KnowledgeNodeSourceCreate) Mutation() *KnowledgeNodeSourceMutation {
	return _c.mutation
}

// Save creates the KnowledgeNodeSource in the database.
func (_c *KnowledgeNodeSourceCreate) Save(ctx context.Context) (*KnowledgeNodeSource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeNodeSourceCreate) SaveX(ctx context.Context) *KnowledgeNodeSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeSourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeSourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeNodeSourceCreate) defaults() {
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		v := knowledgenodesource.DefaultRelevanceScore
		_c.mutation.SetRelevanceScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeNodeSourceCreate) check() error {
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "KnowledgeNodeSource.node_id"`)}
	}
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "KnowledgeNodeSource.source_id"`)}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "KnowledgeNodeSource.relevance_score"`)}
	}
	if v, ok := _c.mutation.RelevanceScore(); ok {
		if err := knowledgenodesource.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNodeSource.relevance_score": %w`, err)}
		}
	}
	if len(_c.mutation.NodeIDs()) == 0 {
		return &ValidationError{Name: "node", err: errors.New(`ent: missing required edge "KnowledgeNodeSource.node"`)}
	}
	if len(_c.mutation.SourceIDs()) == 0 {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required edge "KnowledgeNodeSource.source"`)}
	}
	return nil
}

func (_c *KnowledgeNodeSourceCreate) sqlSave(ctx context.Context) (*KnowledgeNodeSource, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeNodeSource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeNodeSourceCreate) createSpec() (*KnowledgeNodeSource, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeNodeSource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgenodesource.Table, sqlgraph.NewFieldSpec(knowledgenodesource.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(knowledgenodesource.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if nodes := _c.mutation.NodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgenodesource.NodeTable,
			Columns: []string{knowledgenodesource.NodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.NodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgenodesource.SourceTable,
			Columns: []string{knowledgenodesource.SourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KnowledgeNodeSource.Create().
//		SetNodeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnowledgeNodeSourceUpsert) {
//			SetNodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *KnowledgeNodeSourceCreate) OnConflict(opts ...sql.ConflictOption) *KnowledgeNodeSourceUpsertOne {
	_c.conflict = opts
	return &KnowledgeNodeSourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnowledgeNodeSourceCreate) OnConflictColumns(columns ...string) *KnowledgeNodeSourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnowledgeNodeSourceUpsertOne{
		create: _c,
	}
}

type (
	// KnowledgeNodeSourceUpsertOne is the builder for "upsert"-ing
	//  one KnowledgeNodeSource node.
	KnowledgeNodeSourceUpsertOne struct {
		create *KnowledgeNodeSourceCreate
	}

	// KnowledgeNodeSourceUpsert is the "OnConflict" setter.
	KnowledgeNodeSourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetRelevanceScore sets the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsert) SetRelevanceScore(v float64) *KnowledgeNodeSourceUpsert {
	u.Set(knowledgenodesource.FieldRelevanceScore, v)
	return u
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *KnowledgeNodeSourceUpsert) UpdateRelevanceScore() *KnowledgeNodeSourceUpsert {
	u.SetExcluded(knowledgenodesource.FieldRelevanceScore)
	return u
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsert) AddRelevanceScore(v float64) *KnowledgeNodeSourceUpsert {
	u.Add(knowledgenodesource.FieldRelevanceScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knowledgenodesource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnowledgeNodeSourceUpsertOne) UpdateNewValues() *KnowledgeNodeSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(knowledgenodesource.FieldID)
		}
		if _, exists := u.create.mutation.NodeID(); exists {
			s.SetIgnore(knowledgenodesource.FieldNodeID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(knowledgenodesource.FieldSourceID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KnowledgeNodeSourceUpsertOne) Ignore() *KnowledgeNodeSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnowledgeNodeSourceUpsertOne) DoNothing() *KnowledgeNodeSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnowledgeNodeSourceCreate.OnConflict
// documentation for more info.
func (u *KnowledgeNodeSourceUpsertOne) Update(set func(*KnowledgeNodeSourceUpsert)) *KnowledgeNodeSourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnowledgeNodeSourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsertOne) SetRelevanceScore(v float64) *KnowledgeNodeSourceUpsertOne {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsertOne) AddRelevanceScore(v float64) *KnowledgeNodeSourceUpsertOne {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *KnowledgeNodeSourceUpsertOne) UpdateRelevanceScore() *KnowledgeNodeSourceUpsertOne {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.UpdateRelevanceScore()
	})
}

// Exec executes the query.
func (u *KnowledgeNodeSourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KnowledgeNodeSourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnowledgeNodeSourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KnowledgeNodeSourceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: KnowledgeNodeSourceUpsertOne.ID is not supported by MySQL driver. Use KnowledgeNodeSourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KnowledgeNodeSourceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KnowledgeNodeSourceCreateBulk is the builder for creating many KnowledgeNodeSource entities in bulk.
type KnowledgeNodeSourceCreateBulk struct {
	config
	err      error
	builders []*KnowledgeNodeSourceCreate
	conflict []sql.ConflictOption
}

// Save creates the KnowledgeNodeSource entities in the database.
func (_c *KnowledgeNodeSourceCreateBulk) Save(ctx context.Context) ([]*KnowledgeNodeSource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeNodeSource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeNodeSourceMutation)
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
func (_c *KnowledgeNodeSourceCreateBulk) SaveX(ctx context.Context) []*KnowledgeNodeSource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeSourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeSourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KnowledgeNodeSource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnowledgeNodeSourceUpsert) {
//			SetNodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *KnowledgeNodeSourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *KnowledgeNodeSourceUpsertBulk {
	_c.conflict = opts
	return &KnowledgeNodeSourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnowledgeNodeSourceCreateBulk) OnConflictColumns(columns ...string) *KnowledgeNodeSourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnowledgeNodeSourceUpsertBulk{
		create: _c,
	}
}

// KnowledgeNodeSourceUpsertBulk is the builder for "upsert"-ing
// a bulk of KnowledgeNodeSource nodes.
type KnowledgeNodeSourceUpsertBulk struct {
	create *KnowledgeNodeSourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knowledgenodesource.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnowledgeNodeSourceUpsertBulk) UpdateNewValues() *KnowledgeNodeSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(knowledgenodesource.FieldID)
			}
			if _, exists := b.mutation.NodeID(); exists {
				s.SetIgnore(knowledgenodesource.FieldNodeID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(knowledgenodesource.FieldSourceID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnowledgeNodeSource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KnowledgeNodeSourceUpsertBulk) Ignore() *KnowledgeNodeSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnowledgeNodeSourceUpsertBulk) DoNothing() *KnowledgeNodeSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnowledgeNodeSourceCreateBulk.OnConflict
// documentation for more info.
func (u *KnowledgeNodeSourceUpsertBulk) Update(set func(*KnowledgeNodeSourceUpsert)) *KnowledgeNodeSourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnowledgeNodeSourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetRelevanceScore sets the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsertBulk) SetRelevanceScore(v float64) *KnowledgeNodeSourceUpsertBulk {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.SetRelevanceScore(v)
	})
}

// AddRelevanceScore adds v to the "relevance_score" field.
func (u *KnowledgeNodeSourceUpsertBulk) AddRelevanceScore(v float64) *KnowledgeNodeSourceUpsertBulk {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.AddRelevanceScore(v)
	})
}

// UpdateRelevanceScore sets the "relevance_score" field to the value that was provided on create.
func (u *KnowledgeNodeSourceUpsertBulk) UpdateRelevanceScore() *KnowledgeNodeSourceUpsertBulk {
	return u.Update(func(s *KnowledgeNodeSourceUpsert) {
		s.UpdateRelevanceScore()
	})
}

// Exec executes the query.
func (u *KnowledgeNodeSourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the KnowledgeNodeSourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KnowledgeNodeSourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnowledgeNodeSourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
