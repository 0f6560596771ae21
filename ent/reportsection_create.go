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
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// ReportSectionCreate is the builder for creating a ReportSection entity.
type ReportSectionCreate struct {
	config
	mutation *ReportSectionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ReportSectionCreate) SetTaskID(v string) *ReportSectionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetSection sets the "section" field.
func (_c *ReportSectionCreate) SetSection(v reportsection.Section) *ReportSectionCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ReportSectionCreate) SetContent(v string) *ReportSectionCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSourceIds sets the "source_ids" field.
func (_c *ReportSectionCreate) SetSourceIds(v []string) *ReportSectionCreate {
	_c.mutation.SetSourceIds(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ReportSectionCreate) SetPosition(v int) *ReportSectionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *ReportSectionCreate) SetNillablePosition(v *int) *ReportSectionCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReportSectionCreate) SetID(v string) *ReportSectionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the ResearchTask entity.
func (_c *ReportSectionCreate) SetTask(v *ResearchTask) *ReportSectionCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ReportSectionMutation object of the builder.
func (_c *ReportSectionCreate) Mutation() *ReportSectionMutation {
	return _c.mutation
}

// Save creates the ReportSection in the database.
func (_c *ReportSectionCreate) Save(ctx context.Context) (*ReportSection, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReportSectionCreate) SaveX(ctx context.Context) *ReportSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportSectionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportSectionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReportSectionCreate) defaults() {
	if _, ok := _c.mutation.Position(); !ok {
		v := reportsection.DefaultPosition
		_c.mutation.SetPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReportSectionCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ReportSection.task_id"`)}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "ReportSection.section"`)}
	}
	if v, ok := _c.mutation.Section(); ok {
		if err := reportsection.SectionValidator(v); err != nil {
			return &ValidationError{Name: "section", err: fmt.Errorf(`ent: validator failed for field "ReportSection.section": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ReportSection.content"`)}
	}
	if _, ok := _c.mutation.SourceIds(); !ok {
		return &ValidationError{Name: "source_ids", err: errors.New(`ent: missing required field "ReportSection.source_ids"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ReportSection.position"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ReportSection.task"`)}
	}
	return nil
}

func (_c *ReportSectionCreate) sqlSave(ctx context.Context) (*ReportSection, error) {
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
			return nil, fmt.Errorf("unexpected ReportSection.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReportSectionCreate) createSpec() (*ReportSection, *sqlgraph.CreateSpec) {
	var (
		_node = &ReportSection{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reportsection.Table, sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(reportsection.FieldSection, field.TypeEnum, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(reportsection.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SourceIds(); ok {
		_spec.SetField(reportsection.FieldSourceIds, field.TypeJSON, value)
		_node.SourceIds = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(reportsection.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   reportsection.TaskTable,
			Columns: []string{reportsection.TaskColumn},
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
//	client.ReportSection.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportSectionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportSectionCreate) OnConflict(opts ...sql.ConflictOption) *ReportSectionUpsertOne {
	_c.conflict = opts
	return &ReportSectionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportSectionCreate) OnConflictColumns(columns ...string) *ReportSectionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportSectionUpsertOne{
		create: _c,
	}
}

type (
	// ReportSectionUpsertOne is the builder for "upsert"-ing
	//  one ReportSection node.
	ReportSectionUpsertOne struct {
		create *ReportSectionCreate
	}

	// ReportSectionUpsert is the "OnConflict" setter.
	ReportSectionUpsert struct {
		*sql.UpdateSet
	}
)

// SetSection sets the "section" field.
func (u *ReportSectionUpsert) SetSection(v reportsection.Section) *ReportSectionUpsert {
	u.Set(reportsection.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateSection() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldSection)
	return u
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsert) SetContent(v string) *ReportSectionUpsert {
	u.Set(reportsection.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateContent() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldContent)
	return u
}

// SetSourceIds sets the "source_ids" field.
func (u *ReportSectionUpsert) SetSourceIds(v []string) *ReportSectionUpsert {
	u.Set(reportsection.FieldSourceIds, v)
	return u
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdateSourceIds() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldSourceIds)
	return u
}

// SetPosition sets the "position" field.
func (u *ReportSectionUpsert) SetPosition(v int) *ReportSectionUpsert {
	u.Set(reportsection.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ReportSectionUpsert) UpdatePosition() *ReportSectionUpsert {
	u.SetExcluded(reportsection.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *ReportSectionUpsert) AddPosition(v int) *ReportSectionUpsert {
	u.Add(reportsection.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportSectionUpsertOne) UpdateNewValues() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(reportsection.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(reportsection.FieldTaskID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReportSectionUpsertOne) Ignore() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportSectionUpsertOne) DoNothing() *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportSectionCreate.OnConflict
// documentation for more info.
func (u *ReportSectionUpsertOne) Update(set func(*ReportSectionUpsert)) *ReportSectionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSection sets the "section" field.
func (u *ReportSectionUpsertOne) SetSection(v reportsection.Section) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateSection() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateSection()
	})
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsertOne) SetContent(v string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateContent() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateContent()
	})
}

// SetSourceIds sets the "source_ids" field.
func (u *ReportSectionUpsertOne) SetSourceIds(v []string) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetSourceIds(v)
	})
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdateSourceIds() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateSourceIds()
	})
}

// SetPosition sets the "position" field.
func (u *ReportSectionUpsertOne) SetPosition(v int) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ReportSectionUpsertOne) AddPosition(v int) *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ReportSectionUpsertOne) UpdatePosition() *ReportSectionUpsertOne {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *ReportSectionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportSectionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportSectionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReportSectionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReportSectionUpsertOne.ID is not supported by MySQL driver. Use ReportSectionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReportSectionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReportSectionCreateBulk is the builder for creating many ReportSection entities in bulk.
type ReportSectionCreateBulk struct {
	config
	err      error
	builders []*ReportSectionCreate
	conflict []sql.ConflictOption
}

// Save creates the ReportSection entities in the database.
func (_c *ReportSectionCreateBulk) Save(ctx context.Context) ([]*ReportSection, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReportSection, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReportSectionMutation)
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
func (_c *ReportSectionCreateBulk) SaveX(ctx context.Context) []*ReportSection {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReportSectionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReportSectionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReportSection.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReportSectionUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReportSectionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReportSectionUpsertBulk {
	_c.conflict = opts
	return &ReportSectionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReportSectionCreateBulk) OnConflictColumns(columns ...string) *ReportSectionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReportSectionUpsertBulk{
		create: _c,
	}
}

// ReportSectionUpsertBulk is the builder for "upsert"-ing
// a bulk of ReportSection nodes.
type ReportSectionUpsertBulk struct {
	create *ReportSectionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(reportsection.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReportSectionUpsertBulk) UpdateNewValues() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(reportsection.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(reportsection.FieldTaskID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReportSection.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReportSectionUpsertBulk) Ignore() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReportSectionUpsertBulk) DoNothing() *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReportSectionCreateBulk.OnConflict
// documentation for more info.
func (u *ReportSectionUpsertBulk) Update(set func(*ReportSectionUpsert)) *ReportSectionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReportSectionUpsert{UpdateSet: update})
	}))
	return u
}

// SetSection sets the "section" field.
func (u *ReportSectionUpsertBulk) SetSection(v reportsection.Section) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateSection() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateSection()
	})
}

// SetContent sets the "content" field.
func (u *ReportSectionUpsertBulk) SetContent(v string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateContent() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateContent()
	})
}

// SetSourceIds sets the "source_ids" field.
func (u *ReportSectionUpsertBulk) SetSourceIds(v []string) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetSourceIds(v)
	})
}

// UpdateSourceIds sets the "source_ids" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdateSourceIds() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdateSourceIds()
	})
}

// SetPosition sets the "position" field.
func (u *ReportSectionUpsertBulk) SetPosition(v int) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ReportSectionUpsertBulk) AddPosition(v int) *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ReportSectionUpsertBulk) UpdatePosition() *ReportSectionUpsertBulk {
	return u.Update(func(s *ReportSectionUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *ReportSectionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReportSectionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReportSectionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReportSectionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
