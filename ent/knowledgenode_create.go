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
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// KnowledgeNodeCreate is the builder for creating a KnowledgeNode entity.
type KnowledgeNodeCreate struct {
	config
	mutation *KnowledgeNodeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *KnowledgeNodeCreate) SetTaskID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *KnowledgeNodeCreate) SetParentID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableParentID(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *KnowledgeNodeCreate) SetCategory(v string) *KnowledgeNodeCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSubcategory sets the "subcategory" field.
func (_c *KnowledgeNodeCreate) SetSubcategory(v string) *KnowledgeNodeCreate {
	_c.mutation.SetSubcategory(v)
	return _c
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableSubcategory(v *string) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetSubcategory(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *KnowledgeNodeCreate) SetSummary(v string) *KnowledgeNodeCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetDokLevel sets the "dok_level" field.
func (_c *KnowledgeNodeCreate) SetDokLevel(v int) *KnowledgeNodeCreate {
	_c.mutation.SetDokLevel(v)
	return _c
}

// SetNillableDokLevel sets the "dok_level" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableDokLevel(v *int) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetDokLevel(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *KnowledgeNodeCreate) SetPosition(v int) *KnowledgeNodeCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillablePosition(v *int) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KnowledgeNodeCreate) SetCreatedAt(v time.Time) *KnowledgeNodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KnowledgeNodeCreate) SetNillableCreatedAt(v *time.Time) *KnowledgeNodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KnowledgeNodeCreate) SetID(v string) *KnowledgeNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the ResearchTask entity.
func (_c *KnowledgeNodeCreate) SetTask(v *ResearchTask) *KnowledgeNodeCreate {
	return _c.SetTaskID(v.ID)
}

// AddSourceLinkIDs adds the "source_links" edge to the KnowledgeNodeSource entity by IDs.
func (_c *KnowledgeNodeCreate) AddSourceLinkIDs(ids ...string) *KnowledgeNodeCreate {
	_c.mutation.AddSourceLinkIDs(ids...)
	return _c
}

// AddSourceLinks adds the "source_links" edges to the KnowledgeNodeSource entity.
func (_c *KnowledgeNodeCreate) AddSourceLinks(v ...*KnowledgeNodeSource) *KnowledgeNodeCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceLinkIDs(ids...)
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_c *KnowledgeNodeCreate) Mutation() *KnowledgeNodeMutation {
	return _c.mutation
}

// Save creates the KnowledgeNode in the database.
func (_c *KnowledgeNodeCreate) Save(ctx context.Context) (*KnowledgeNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KnowledgeNodeCreate) SaveX(ctx context.Context) *KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KnowledgeNodeCreate) defaults() {
	if _, ok := _c.mutation.DokLevel(); !ok {
		v := knowledgenode.DefaultDokLevel
		_c.mutation.SetDokLevel(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := knowledgenode.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := knowledgenode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KnowledgeNodeCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "KnowledgeNode.task_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "KnowledgeNode.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := knowledgenode.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "KnowledgeNode.summary"`)}
	}
	if v, ok := _c.mutation.Summary(); ok {
		if err := knowledgenode.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.summary": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DokLevel(); !ok {
		return &ValidationError{Name: "dok_level", err: errors.New(`ent: missing required field "KnowledgeNode.dok_level"`)}
	}
	if v, ok := _c.mutation.DokLevel(); ok {
		if err := knowledgenode.DokLevelValidator(v); err != nil {
			return &ValidationError{Name: "dok_level", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.dok_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "KnowledgeNode.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KnowledgeNode.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "KnowledgeNode.task"`)}
	}
	return nil
}

func (_c *KnowledgeNodeCreate) sqlSave(ctx context.Context) (*KnowledgeNode, error) {
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
			return nil, fmt.Errorf("unexpected KnowledgeNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KnowledgeNodeCreate) createSpec() (*KnowledgeNode, *sqlgraph.CreateSpec) {
	var (
		_node = &KnowledgeNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(knowledgenode.Table, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(knowledgenode.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(knowledgenode.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Subcategory(); ok {
		_spec.SetField(knowledgenode.FieldSubcategory, field.TypeString, value)
		_node.Subcategory = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.DokLevel(); ok {
		_spec.SetField(knowledgenode.FieldDokLevel, field.TypeInt, value)
		_node.DokLevel = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(knowledgenode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   knowledgenode.TaskTable,
			Columns: []string{knowledgenode.TaskColumn},
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
	if nodes := _c.mutation.SourceLinksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   knowledgenode.SourceLinksTable,
			Columns: []string{knowledgenode.SourceLinksColumn},
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
//	client.KnowledgeNode.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnowledgeNodeUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *KnowledgeNodeCreate) OnConflict(opts ...sql.ConflictOption) *KnowledgeNodeUpsertOne {
	_c.conflict = opts
	return &KnowledgeNodeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnowledgeNodeCreate) OnConflictColumns(columns ...string) *KnowledgeNodeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnowledgeNodeUpsertOne{
		create: _c,
	}
}

type (
	// KnowledgeNodeUpsertOne is the builder for "upsert"-ing
	//  one KnowledgeNode node.
	KnowledgeNodeUpsertOne struct {
		create *KnowledgeNodeCreate
	}

	// KnowledgeNodeUpsert is the "OnConflict" setter.
	KnowledgeNodeUpsert struct {
		*sql.UpdateSet
	}
)

// SetParentID sets the "parent_id" field.
func (u *KnowledgeNodeUpsert) SetParentID(v string) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdateParentID() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *KnowledgeNodeUpsert) ClearParentID() *KnowledgeNodeUpsert {
	u.SetNull(knowledgenode.FieldParentID)
	return u
}

// SetCategory sets the "category" field.
func (u *KnowledgeNodeUpsert) SetCategory(v string) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdateCategory() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldCategory)
	return u
}

// SetSubcategory sets the "subcategory" field.
func (u *KnowledgeNodeUpsert) SetSubcategory(v string) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldSubcategory, v)
	return u
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdateSubcategory() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldSubcategory)
	return u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *KnowledgeNodeUpsert) ClearSubcategory() *KnowledgeNodeUpsert {
	u.SetNull(knowledgenode.FieldSubcategory)
	return u
}

// SetSummary sets the "summary" field.
func (u *KnowledgeNodeUpsert) SetSummary(v string) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdateSummary() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldSummary)
	return u
}

// SetDokLevel sets the "dok_level" field.
func (u *KnowledgeNodeUpsert) SetDokLevel(v int) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldDokLevel, v)
	return u
}

// UpdateDokLevel sets the "dok_level" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdateDokLevel() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldDokLevel)
	return u
}

// AddDokLevel adds v to the "dok_level" field.
func (u *KnowledgeNodeUpsert) AddDokLevel(v int) *KnowledgeNodeUpsert {
	u.Add(knowledgenode.FieldDokLevel, v)
	return u
}

// SetPosition sets the "position" field.
func (u *KnowledgeNodeUpsert) SetPosition(v int) *KnowledgeNodeUpsert {
	u.Set(knowledgenode.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *KnowledgeNodeUpsert) UpdatePosition() *KnowledgeNodeUpsert {
	u.SetExcluded(knowledgenode.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *KnowledgeNodeUpsert) AddPosition(v int) *KnowledgeNodeUpsert {
	u.Add(knowledgenode.FieldPosition, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knowledgenode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnowledgeNodeUpsertOne) UpdateNewValues() *KnowledgeNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(knowledgenode.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(knowledgenode.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(knowledgenode.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *KnowledgeNodeUpsertOne) Ignore() *KnowledgeNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnowledgeNodeUpsertOne) DoNothing() *KnowledgeNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnowledgeNodeCreate.OnConflict
// documentation for more info.
func (u *KnowledgeNodeUpsertOne) Update(set func(*KnowledgeNodeUpsert)) *KnowledgeNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnowledgeNodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentID sets the "parent_id" field.
func (u *KnowledgeNodeUpsertOne) SetParentID(v string) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdateParentID() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *KnowledgeNodeUpsertOne) ClearParentID() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.ClearParentID()
	})
}

// SetCategory sets the "category" field.
func (u *KnowledgeNodeUpsertOne) SetCategory(v string) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdateCategory() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *KnowledgeNodeUpsertOne) SetSubcategory(v string) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdateSubcategory() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *KnowledgeNodeUpsertOne) ClearSubcategory() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.ClearSubcategory()
	})
}

// SetSummary sets the "summary" field.
func (u *KnowledgeNodeUpsertOne) SetSummary(v string) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdateSummary() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateSummary()
	})
}

// SetDokLevel sets the "dok_level" field.
func (u *KnowledgeNodeUpsertOne) SetDokLevel(v int) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetDokLevel(v)
	})
}

// AddDokLevel adds v to the "dok_level" field.
func (u *KnowledgeNodeUpsertOne) AddDokLevel(v int) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.AddDokLevel(v)
	})
}

// UpdateDokLevel sets the "dok_level" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdateDokLevel() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateDokLevel()
	})
}

// SetPosition sets the "position" field.
func (u *KnowledgeNodeUpsertOne) SetPosition(v int) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *KnowledgeNodeUpsertOne) AddPosition(v int) *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertOne) UpdatePosition() *KnowledgeNodeUpsertOne {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *KnowledgeNodeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KnowledgeNodeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnowledgeNodeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *KnowledgeNodeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: KnowledgeNodeUpsertOne.ID is not supported by MySQL driver. Use KnowledgeNodeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *KnowledgeNodeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// KnowledgeNodeCreateBulk is the builder for creating many KnowledgeNode entities in bulk.
type KnowledgeNodeCreateBulk struct {
	config
	err      error
	builders []*KnowledgeNodeCreate
	conflict []sql.ConflictOption
}

// Save creates the KnowledgeNode entities in the database.
func (_c *KnowledgeNodeCreateBulk) Save(ctx context.Context) ([]*KnowledgeNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KnowledgeNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KnowledgeNodeMutation)
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
func (_c *KnowledgeNodeCreateBulk) SaveX(ctx context.Context) []*KnowledgeNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KnowledgeNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KnowledgeNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.KnowledgeNode.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.KnowledgeNodeUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *KnowledgeNodeCreateBulk) OnConflict(opts ...sql.ConflictOption) *KnowledgeNodeUpsertBulk {
	_c.conflict = opts
	return &KnowledgeNodeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *KnowledgeNodeCreateBulk) OnConflictColumns(columns ...string) *KnowledgeNodeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &KnowledgeNodeUpsertBulk{
		create: _c,
	}
}

// KnowledgeNodeUpsertBulk is the builder for "upsert"-ing
// a bulk of KnowledgeNode nodes.
type KnowledgeNodeUpsertBulk struct {
	create *KnowledgeNodeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(knowledgenode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *KnowledgeNodeUpsertBulk) UpdateNewValues() *KnowledgeNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(knowledgenode.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(knowledgenode.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(knowledgenode.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.KnowledgeNode.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *KnowledgeNodeUpsertBulk) Ignore() *KnowledgeNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *KnowledgeNodeUpsertBulk) DoNothing() *KnowledgeNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the KnowledgeNodeCreateBulk.OnConflict
// documentation for more info.
func (u *KnowledgeNodeUpsertBulk) Update(set func(*KnowledgeNodeUpsert)) *KnowledgeNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&KnowledgeNodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetParentID sets the "parent_id" field.
func (u *KnowledgeNodeUpsertBulk) SetParentID(v string) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdateParentID() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *KnowledgeNodeUpsertBulk) ClearParentID() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.ClearParentID()
	})
}

// SetCategory sets the "category" field.
func (u *KnowledgeNodeUpsertBulk) SetCategory(v string) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdateCategory() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateCategory()
	})
}

// SetSubcategory sets the "subcategory" field.
func (u *KnowledgeNodeUpsertBulk) SetSubcategory(v string) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetSubcategory(v)
	})
}

// UpdateSubcategory sets the "subcategory" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdateSubcategory() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateSubcategory()
	})
}

// ClearSubcategory clears the value of the "subcategory" field.
func (u *KnowledgeNodeUpsertBulk) ClearSubcategory() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.ClearSubcategory()
	})
}

// SetSummary sets the "summary" field.
func (u *KnowledgeNodeUpsertBulk) SetSummary(v string) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdateSummary() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateSummary()
	})
}

// SetDokLevel sets the "dok_level" field.
func (u *KnowledgeNodeUpsertBulk) SetDokLevel(v int) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetDokLevel(v)
	})
}

// AddDokLevel adds v to the "dok_level" field.
func (u *KnowledgeNodeUpsertBulk) AddDokLevel(v int) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.AddDokLevel(v)
	})
}

// UpdateDokLevel sets the "dok_level" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdateDokLevel() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdateDokLevel()
	})
}

// SetPosition sets the "position" field.
func (u *KnowledgeNodeUpsertBulk) SetPosition(v int) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *KnowledgeNodeUpsertBulk) AddPosition(v int) *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *KnowledgeNodeUpsertBulk) UpdatePosition() *KnowledgeNodeUpsertBulk {
	return u.Update(func(s *KnowledgeNodeUpsert) {
		s.UpdatePosition()
	})
}

// Exec executes the query.
func (u *KnowledgeNodeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the KnowledgeNodeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for KnowledgeNodeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *KnowledgeNodeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
