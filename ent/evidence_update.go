// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/evidence"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *EvidenceUpdate) SetEvidenceType(v string) *EvidenceUpdate {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableEvidenceType(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetEvidenceData sets the "evidence_data" field.
func (_u *EvidenceUpdate) SetEvidenceData(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetEvidenceData(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *EvidenceUpdate) SetSourceURL(v string) *EvidenceUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableSourceURL(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *EvidenceUpdate) ClearSourceURL() *EvidenceUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EvidenceUpdate) SetProvider(v string) *EvidenceUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableProvider(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *EvidenceUpdate) ClearProvider() *EvidenceUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *EvidenceUpdate) SetSizeBytes(v int) *EvidenceUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableSizeBytes(v *int) *EvidenceUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *EvidenceUpdate) AddSizeBytes(v int) *EvidenceUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdate) check() error {
	if v, ok := _u.mutation.EvidenceType(); ok {
		if err := evidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type": %w`, err)}
		}
	}
	if _u.mutation.OperationCleared() && len(_u.mutation.OperationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.operation"`)
	}
	return nil
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceData(); ok {
		_spec.SetField(evidence.FieldEvidenceData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(evidence.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(evidence.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(evidence.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(evidence.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(evidence.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(evidence.FieldSizeBytes, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetEvidenceType sets the "evidence_type" field.
func (_u *EvidenceUpdateOne) SetEvidenceType(v string) *EvidenceUpdateOne {
	_u.mutation.SetEvidenceType(v)
	return _u
}

// SetNillableEvidenceType sets the "evidence_type" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableEvidenceType(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetEvidenceType(*v)
	}
	return _u
}

// SetEvidenceData sets the "evidence_data" field.
func (_u *EvidenceUpdateOne) SetEvidenceData(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetEvidenceData(v)
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *EvidenceUpdateOne) SetSourceURL(v string) *EvidenceUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableSourceURL(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *EvidenceUpdateOne) ClearSourceURL() *EvidenceUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EvidenceUpdateOne) SetProvider(v string) *EvidenceUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableProvider(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *EvidenceUpdateOne) ClearProvider() *EvidenceUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *EvidenceUpdateOne) SetSizeBytes(v int) *EvidenceUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableSizeBytes(v *int) *EvidenceUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *EvidenceUpdateOne) AddSizeBytes(v int) *EvidenceUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.EvidenceType(); ok {
		if err := evidence.EvidenceTypeValidator(v); err != nil {
			return &ValidationError{Name: "evidence_type", err: fmt.Errorf(`ent: validator failed for field "Evidence.evidence_type": %w`, err)}
		}
	}
	if _u.mutation.OperationCleared() && len(_u.mutation.OperationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.operation"`)
	}
	return nil
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
	if value, ok := _u.mutation.EvidenceType(); ok {
		_spec.SetField(evidence.FieldEvidenceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceData(); ok {
		_spec.SetField(evidence.FieldEvidenceData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(evidence.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(evidence.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(evidence.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(evidence.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(evidence.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(evidence.FieldSizeBytes, field.TypeInt, value)
	}
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
