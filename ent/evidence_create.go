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
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/operation"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOperationID sets the "operation_id" field.
func (_c *EvidenceCreate) SetOperationID(v string) *EvidenceCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *EvidenceCreate) SetTaskID(v string) *EvidenceCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetEvidenceType sets the "evidence_type" field.
func (_c *EvidenceCreate) SetEvidenceType(v string) *EvidenceCreate {
	_c.mutation.SetEvidenceType(v)
	return _c
}

// SetEvidenceData sets the "evidence_data" field.
func (_c *EvidenceCreate) SetEvidenceData(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetEvidenceData(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *EvidenceCreate) SetSourceURL(v string) *EvidenceCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableSourceURL(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EvidenceCreate) SetProvider(v string) *EvidenceCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableProvider(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *EvidenceCreate) SetSizeBytes(v int) *EvidenceCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOperation sets the "operation" edge to the Operation entity.
func (_c *EvidenceCreate) SetOperation(v *Operation) *EvidenceCreate {
	return _c.SetOperationID(v.ID)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "Evidence.operation_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Evidence.task_id"`)}
	}
	if _, ok := _c.mutation.EvidenceType(); !ok {
		return &ValidationError{Name: "evidence_type", err: errors.New(`ent: missing required field "Evidence.evidence_type"`)}
	}
	if v, ok := _c.mutation.EvidenceType(); ok {
		if err := evidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvidenceData(); !ok {
		return &ValidationError{Name: "evidence_data", err: errors.New(`ent: missing required field "Evidence.evidence_data"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Evidence.size_bytes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	if len(_c.mutation.OperationIDs()) == 0 {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required edge "Evidence.operation"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(evidence.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
		_node.EvidenceType = value
	}
	if value, ok := _c.mutation.EvidenceData(); ok {
		_spec.SetField(evidence.FieldEvidenceData, field.TypeJSON, value)
		_node.EvidenceData = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(evidence.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(evidence.FieldProvider, field.TypeString, value)
		_node.Provider = &value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(evidence.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OperationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.OperationTable,
			Columns: []string{evidence.OperationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(operation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OperationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.Create().
//		SetOperationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetOperationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertOne {
	_c.conflict = opts
	return &EvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflictColumns(columns ...string) *EvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceUpsertOne is the builder for "upsert"-ing
	//  one Evidence node.
	EvidenceUpsertOne struct {
		create *EvidenceCreate
	}

	// EvidenceUpsert is the "OnConflict" setter.
	EvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsert) SetEvidenceType(v string) *EvidenceUpsert {
	u.Set(evidence.FieldEvidenceType, v)
	return u
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateEvidenceType() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldEvidenceType)
	return u
}

// SetEvidenceData sets the "evidence_data" field.
func (u *EvidenceUpsert) SetEvidenceData(v map[string]interface{}) *EvidenceUpsert {
	u.Set(evidence.FieldEvidenceData, v)
	return u
}

// UpdateEvidenceData sets the "evidence_data" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateEvidenceData() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldEvidenceData)
	return u
}

// SetSourceURL sets the "source_url" field.
func (u *EvidenceUpsert) SetSourceURL(v string) *EvidenceUpsert {
	u.Set(evidence.FieldSourceURL, v)
	return u
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateSourceURL() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldSourceURL)
	return u
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *EvidenceUpsert) ClearSourceURL() *EvidenceUpsert {
	u.SetNull(evidence.FieldSourceURL)
	return u
}

// SetProvider sets the "provider" field.
func (u *EvidenceUpsert) SetProvider(v string) *EvidenceUpsert {
	u.Set(evidence.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateProvider() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldProvider)
	return u
}

// ClearProvider clears the value of the "provider" field.
func (u *EvidenceUpsert) ClearProvider() *EvidenceUpsert {
	u.SetNull(evidence.FieldProvider)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *EvidenceUpsert) SetSizeBytes(v int) *EvidenceUpsert {
	u.Set(evidence.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsert) UpdateSizeBytes() *EvidenceUpsert {
	u.SetExcluded(evidence.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *EvidenceUpsert) AddSizeBytes(v int) *EvidenceUpsert {
	u.Add(evidence.FieldSizeBytes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertOne) UpdateNewValues() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidence.FieldID)
		}
		if _, exists := u.create.mutation.OperationID(); exists {
			s.SetIgnore(evidence.FieldOperationID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(evidence.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evidence.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceUpsertOne) Ignore() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertOne) DoNothing() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreate.OnConflict
// documentation for more info.
func (u *EvidenceUpsertOne) Update(set func(*EvidenceUpsert)) *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsertOne) SetEvidenceType(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceType(v)
	})
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateEvidenceType() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceType()
	})
}

// SetEvidenceData sets the "evidence_data" field.
func (u *EvidenceUpsertOne) SetEvidenceData(v map[string]interface{}) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceData(v)
	})
}

// UpdateEvidenceData sets the "evidence_data" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateEvidenceData() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceData()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *EvidenceUpsertOne) SetSourceURL(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateSourceURL() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSourceURL()
	})
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *EvidenceUpsertOne) ClearSourceURL() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearSourceURL()
	})
}

// SetProvider sets the "provider" field.
func (u *EvidenceUpsertOne) SetProvider(v string) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateProvider() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *EvidenceUpsertOne) ClearProvider() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearProvider()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *EvidenceUpsertOne) SetSizeBytes(v int) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *EvidenceUpsertOne) AddSizeBytes(v int) *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsertOne) UpdateSizeBytes() *EvidenceUpsertOne {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceUpsertOne.ID is not supported by MySQL driver. Use EvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetOperationID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertBulk {
	_c.conflict = opts
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflictColumns(columns ...string) *EvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// EvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Evidence nodes.
type EvidenceUpsertBulk struct {
	create *EvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) UpdateNewValues() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidence.FieldID)
			}
			if _, exists := b.mutation.OperationID(); exists {
				s.SetIgnore(evidence.FieldOperationID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(evidence.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evidence.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) Ignore() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertBulk) DoNothing() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceUpsertBulk) Update(set func(*EvidenceUpsert)) *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetEvidenceType sets the "evidence_type" field.
func (u *EvidenceUpsertBulk) SetEvidenceType(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceType(v)
	})
}

// UpdateEvidenceType sets the "evidence_type" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateEvidenceType() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceType()
	})
}

// SetEvidenceData sets the "evidence_data" field.
func (u *EvidenceUpsertBulk) SetEvidenceData(v map[string]interface{}) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetEvidenceData(v)
	})
}

// UpdateEvidenceData sets the "evidence_data" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateEvidenceData() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateEvidenceData()
	})
}

// SetSourceURL sets the "source_url" field.
func (u *EvidenceUpsertBulk) SetSourceURL(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSourceURL(v)
	})
}

// UpdateSourceURL sets the "source_url" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateSourceURL() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSourceURL()
	})
}

// ClearSourceURL clears the value of the "source_url" field.
func (u *EvidenceUpsertBulk) ClearSourceURL() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearSourceURL()
	})
}

// SetProvider sets the "provider" field.
func (u *EvidenceUpsertBulk) SetProvider(v string) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateProvider() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *EvidenceUpsertBulk) ClearProvider() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.ClearProvider()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *EvidenceUpsertBulk) SetSizeBytes(v int) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *EvidenceUpsertBulk) AddSizeBytes(v int) *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *EvidenceUpsertBulk) UpdateSizeBytes() *EvidenceUpsertBulk {
	return u.Update(func(s *EvidenceUpsert) {
		s.UpdateSizeBytes()
	})
}

// Exec executes the query.
func (u *EvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
