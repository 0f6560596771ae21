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
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
)

// SourceCreate is the builder for creating a Source entity.
type SourceCreate struct {
	config
	mutation *SourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetURL sets the "url" field.
func (_c *SourceCreate) SetURL(v string) *SourceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SourceCreate) SetTitle(v string) *SourceCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *SourceCreate) SetNillableTitle(v *string) *SourceCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *SourceCreate) SetDescription(v string) *SourceCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *SourceCreate) SetNillableDescription(v *string) *SourceCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *SourceCreate) SetProvider(v string) *SourceCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceCreate) SetContentHash(v string) *SourceCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetReliabilityScore sets the "reliability_score" field.
func (_c *SourceCreate) SetReliabilityScore(v float64) *SourceCreate {
	_c.mutation.SetReliabilityScore(v)
	return _c
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_c *SourceCreate) SetNillableReliabilityScore(v *float64) *SourceCreate {
	if v != nil {
		_c.SetReliabilityScore(*v)
	}
	return _c
}

// SetObservationCount sets the "observation_count" field.
func (_c *SourceCreate) SetObservationCount(v int) *SourceCreate {
	_c.mutation.SetObservationCount(v)
	return _c
}

// SetNillableObservationCount sets the "observation_count" field if the given value is not nil.
func (_c *SourceCreate) SetNillableObservationCount(v *int) *SourceCreate {
	if v != nil {
		_c.SetObservationCount(*v)
	}
	return _c
}

// SetAccessedAt sets the "accessed_at" field.
func (_c *SourceCreate) SetAccessedAt(v time.Time) *SourceCreate {
	_c.mutation.SetAccessedAt(v)
	return _c
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableAccessedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetAccessedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceCreate) SetCreatedAt(v time.Time) *SourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceCreate) SetNillableCreatedAt(v *time.Time) *SourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCreate) SetID(v string) *SourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSummaryIDs adds the "summaries" edge to the SourceSummary entity by IDs.
func (_c *SourceCreate) AddSummaryIDs(ids ...string) *SourceCreate {
	_c.mutation.AddSummaryIDs(ids...)
	return _c
}

// AddSummaries adds the "summaries" edges to the SourceSummary entity.
func (_c *SourceCreate) AddSummaries(v ...*SourceSummary) *SourceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummaryIDs(ids...)
}

// AddNodeLinkIDs adds the "node_links" edge to the KnowledgeNodeSource entity by IDs.
func (_c *SourceCreate) AddNodeLinkIDs(ids ...string) *SourceCreate {
	_c.mutation.AddNodeLinkIDs(ids...)
	return _c
}

// AddNodeLinks adds the "node_links" edges to the KnowledgeNodeSource entity.
func (_c *SourceCreate) AddNodeLinks(v ...*KnowledgeNodeSource) *SourceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeLinkIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_c *SourceCreate) Mutation() *SourceMutation {
	return _c.mutation
}

// Save creates the Source in the database.
func (_c *SourceCreate) Save(ctx context.Context) (*Source, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCreate) SaveX(ctx context.Context) *Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCreate) defaults() {
	if _, ok := _c.mutation.ReliabilityScore(); !ok {
		v := source.DefaultReliabilityScore
		_c.mutation.SetReliabilityScore(v)
	}
	if _, ok := _c.mutation.ObservationCount(); !ok {
		v := source.DefaultObservationCount
		_c.mutation.SetObservationCount(v)
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		v := source.DefaultAccessedAt()
		_c.mutation.SetAccessedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := source.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Source.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := source.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Source.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Source.provider"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Source.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := source.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Source.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReliabilityScore(); !ok {
		return &ValidationError{Name: "reliability_score", err: errors.New(`ent: missing required field "Source.reliability_score"`)}
	}
	if _, ok := _c.mutation.ObservationCount(); !ok {
		return &ValidationError{Name: "observation_count", err: errors.New(`ent: missing required field "Source.observation_count"`)}
	}
	if _, ok := _c.mutation.AccessedAt(); !ok {
		return &ValidationError{Name: "accessed_at", err: errors.New(`ent: missing required field "Source.accessed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Source.created_at"`)}
	}
	return nil
}

func (_c *SourceCreate) sqlSave(ctx context.Context) (*Source, error) {
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
			return nil, fmt.Errorf("unexpected Source.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceCreate) createSpec() (*Source, *sqlgraph.CreateSpec) {
	var (
		_node = &Source{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(source.Table, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(source.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(source.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(source.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.ReliabilityScore(); ok {
		_spec.SetField(source.FieldReliabilityScore, field.TypeFloat64, value)
		_node.ReliabilityScore = value
	}
	if value, ok := _c.mutation.ObservationCount(); ok {
		_spec.SetField(source.FieldObservationCount, field.TypeInt, value)
		_node.ObservationCount = value
	}
	if value, ok := _c.mutation.AccessedAt(); ok {
		_spec.SetField(source.FieldAccessedAt, field.TypeTime, value)
		_node.AccessedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(source.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.SummariesTable,
			Columns: []string{source.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourcesummary.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NodeLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   source.NodeLinksTable,
			Columns: []string{source.NodeLinksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgenodesource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.Create().
//		SetURL(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreate) OnConflict(opts ...sql.ConflictOption) *SourceUpsertOne {
	_c.conflict = opts
	return &SourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreate) OnConflictColumns(columns ...string) *SourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertOne{
		create: _c,
	}
}

type (
	// SourceUpsertOne is the builder for "upsert"-ing
	//  one Source node.
	SourceUpsertOne struct {
		create *SourceCreate
	}

	// SourceUpsert is the "OnConflict" setter.
	SourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetURL sets the "url" field.
func (u *SourceUpsert) SetURL(v string) *SourceUpsert {
	u.Set(source.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsert) UpdateURL() *SourceUpsert {
	u.SetExcluded(source.FieldURL)
	return u
}

// SetTitle sets the "title" field.
func (u *SourceUpsert) SetTitle(v string) *SourceUpsert {
	u.Set(source.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsert) UpdateTitle() *SourceUpsert {
	u.SetExcluded(source.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *SourceUpsert) ClearTitle() *SourceUpsert {
	u.SetNull(source.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *SourceUpsert) SetDescription(v string) *SourceUpsert {
	u.Set(source.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SourceUpsert) UpdateDescription() *SourceUpsert {
	u.SetExcluded(source.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *SourceUpsert) ClearDescription() *SourceUpsert {
	u.SetNull(source.FieldDescription)
	return u
}

// SetProvider sets the "provider" field.
func (u *SourceUpsert) SetProvider(v string) *SourceUpsert {
	u.Set(source.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *SourceUpsert) UpdateProvider() *SourceUpsert {
	u.SetExcluded(source.FieldProvider)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *SourceUpsert) SetContentHash(v string) *SourceUpsert {
	u.Set(source.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceUpsert) UpdateContentHash() *SourceUpsert {
	u.SetExcluded(source.FieldContentHash)
	return u
}

// SetReliabilityScore sets the "reliability_score" field.
func (u *SourceUpsert) SetReliabilityScore(v float64) *SourceUpsert {
	u.Set(source.FieldReliabilityScore, v)
	return u
}

// UpdateReliabilityScore sets the "reliability_score" field to the value that was provided on create.
func (u *SourceUpsert) UpdateReliabilityScore() *SourceUpsert {
	u.SetExcluded(source.FieldReliabilityScore)
	return u
}

// AddReliabilityScore adds v to the "reliability_score" field.
func (u *SourceUpsert) AddReliabilityScore(v float64) *SourceUpsert {
	u.Add(source.FieldReliabilityScore, v)
	return u
}

// SetObservationCount sets the "observation_count" field.
func (u *SourceUpsert) SetObservationCount(v int) *SourceUpsert {
	u.Set(source.FieldObservationCount, v)
	return u
}

// UpdateObservationCount sets the "observation_count" field to the value that was provided on create.
func (u *SourceUpsert) UpdateObservationCount() *SourceUpsert {
	u.SetExcluded(source.FieldObservationCount)
	return u
}

// AddObservationCount adds v to the "observation_count" field.
func (u *SourceUpsert) AddObservationCount(v int) *SourceUpsert {
	u.Add(source.FieldObservationCount, v)
	return u
}

// SetAccessedAt sets the "accessed_at" field.
func (u *SourceUpsert) SetAccessedAt(v time.Time) *SourceUpsert {
	u.Set(source.FieldAccessedAt, v)
	return u
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *SourceUpsert) UpdateAccessedAt() *SourceUpsert {
	u.SetExcluded(source.FieldAccessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertOne) UpdateNewValues() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(source.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(source.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceUpsertOne) Ignore() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertOne) DoNothing() *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreate.OnConflict
// documentation for more info.
func (u *SourceUpsertOne) Update(set func(*SourceUpsert)) *SourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *SourceUpsertOne) SetURL(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateURL() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateURL()
	})
}

// SetTitle sets the "title" field.
func (u *SourceUpsertOne) SetTitle(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateTitle() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *SourceUpsertOne) ClearTitle() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SourceUpsertOne) SetDescription(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateDescription() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *SourceUpsertOne) ClearDescription() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.ClearDescription()
	})
}

// SetProvider sets the "provider" field.
func (u *SourceUpsertOne) SetProvider(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateProvider() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateProvider()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SourceUpsertOne) SetContentHash(v string) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateContentHash() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateContentHash()
	})
}

// SetReliabilityScore sets the "reliability_score" field.
func (u *SourceUpsertOne) SetReliabilityScore(v float64) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetReliabilityScore(v)
	})
}

// AddReliabilityScore adds v to the "reliability_score" field.
func (u *SourceUpsertOne) AddReliabilityScore(v float64) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.AddReliabilityScore(v)
	})
}

// UpdateReliabilityScore sets the "reliability_score" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateReliabilityScore() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateReliabilityScore()
	})
}

// SetObservationCount sets the "observation_count" field.
func (u *SourceUpsertOne) SetObservationCount(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetObservationCount(v)
	})
}

// AddObservationCount adds v to the "observation_count" field.
func (u *SourceUpsertOne) AddObservationCount(v int) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.AddObservationCount(v)
	})
}

// UpdateObservationCount sets the "observation_count" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateObservationCount() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateObservationCount()
	})
}

// SetAccessedAt sets the "accessed_at" field.
func (u *SourceUpsertOne) SetAccessedAt(v time.Time) *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.SetAccessedAt(v)
	})
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *SourceUpsertOne) UpdateAccessedAt() *SourceUpsertOne {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAccessedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceUpsertOne.ID is not supported by MySQL driver. Use SourceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceCreateBulk is the builder for creating many Source entities in bulk.
type SourceCreateBulk struct {
	config
	err      error
	builders []*SourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Source entities in the database.
func (_c *SourceCreateBulk) Save(ctx context.Context) ([]*Source, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Source, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceMutation)
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
func (_c *SourceCreateBulk) SaveX(ctx context.Context) []*Source {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Source.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceUpsertBulk {
	_c.conflict = opts
	return &SourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCreateBulk) OnConflictColumns(columns ...string) *SourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceUpsertBulk{
		create: _c,
	}
}

// SourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Source nodes.
type SourceUpsertBulk struct {
	create *SourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(source.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceUpsertBulk) UpdateNewValues() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(source.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(source.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Source.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceUpsertBulk) Ignore() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceUpsertBulk) DoNothing() *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCreateBulk.OnConflict
// documentation for more info.
func (u *SourceUpsertBulk) Update(set func(*SourceUpsert)) *SourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *SourceUpsertBulk) SetURL(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateURL() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateURL()
	})
}

// SetTitle sets the "title" field.
func (u *SourceUpsertBulk) SetTitle(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateTitle() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *SourceUpsertBulk) ClearTitle() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *SourceUpsertBulk) SetDescription(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateDescription() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *SourceUpsertBulk) ClearDescription() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.ClearDescription()
	})
}

// SetProvider sets the "provider" field.
func (u *SourceUpsertBulk) SetProvider(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateProvider() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateProvider()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *SourceUpsertBulk) SetContentHash(v string) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateContentHash() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateContentHash()
	})
}

// SetReliabilityScore sets the "reliability_score" field.
func (u *SourceUpsertBulk) SetReliabilityScore(v float64) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetReliabilityScore(v)
	})
}

// AddReliabilityScore adds v to the "reliability_score" field.
func (u *SourceUpsertBulk) AddReliabilityScore(v float64) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.AddReliabilityScore(v)
	})
}

// UpdateReliabilityScore sets the "reliability_score" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateReliabilityScore() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateReliabilityScore()
	})
}

// SetObservationCount sets the "observation_count" field.
func (u *SourceUpsertBulk) SetObservationCount(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetObservationCount(v)
	})
}

// AddObservationCount adds v to the "observation_count" field.
func (u *SourceUpsertBulk) AddObservationCount(v int) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.AddObservationCount(v)
	})
}

// UpdateObservationCount sets the "observation_count" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateObservationCount() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateObservationCount()
	})
}

// SetAccessedAt sets the "accessed_at" field.
func (u *SourceUpsertBulk) SetAccessedAt(v time.Time) *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.SetAccessedAt(v)
	})
}

// UpdateAccessedAt sets the "accessed_at" field to the value that was provided on create.
func (u *SourceUpsertBulk) UpdateAccessedAt() *SourceUpsertBulk {
	return u.Update(func(s *SourceUpsert) {
		s.UpdateAccessedAt()
	})
}

// Exec executes the query.
func (u *SourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
