// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
)

// KnowledgeNodeUpdate is the builder for updating KnowledgeNode entities.
type KnowledgeNodeUpdate struct {
	config
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdate) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *KnowledgeNodeUpdate) SetParentID(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableParentID(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *KnowledgeNodeUpdate) ClearParentID() *KnowledgeNodeUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeNodeUpdate) SetCategory(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableCategory(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *KnowledgeNodeUpdate) SetSubcategory(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableSubcategory(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *KnowledgeNodeUpdate) ClearSubcategory() *KnowledgeNodeUpdate {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeNodeUpdate) SetSummary(v string) *KnowledgeNodeUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableSummary(v *string) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDokLevel sets the "dok_level" field.
func (_u *KnowledgeNodeUpdate) SetDokLevel(v int) *KnowledgeNodeUpdate {
	_u.mutation.ResetDokLevel()
	_u.mutation.SetDokLevel(v)
	return _u
}

// SetNillableDokLevel sets the "dok_level" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillableDokLevel(v *int) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetDokLevel(*v)
	}
	return _u
}

// AddDokLevel adds value to the "dok_level" field.
func (_u *KnowledgeNodeUpdate) AddDokLevel(v int) *KnowledgeNodeUpdate {
	_u.mutation.AddDokLevel(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *KnowledgeNodeUpdate) SetPosition(v int) *KnowledgeNodeUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KnowledgeNodeUpdate) SetNillablePosition(v *int) *KnowledgeNodeUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KnowledgeNodeUpdate) AddPosition(v int) *KnowledgeNodeUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// AddSourceLinkIDs adds the "source_links" edge to the KnowledgeNodeSource entity by IDs.
func (_u *KnowledgeNodeUpdate) AddSourceLinkIDs(ids ...string) *KnowledgeNodeUpdate {
	_u.mutation.AddSourceLinkIDs(ids...)
	return _u
}

// AddSourceLinks adds the "source_links" edges to the KnowledgeNodeSource entity.
func (_u *KnowledgeNodeUpdate) AddSourceLinks(v ...*KnowledgeNodeSource) *KnowledgeNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceLinkIDs(ids...)
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdate) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// ClearSourceLinks clears all "source_links" edges to the KnowledgeNodeSource entity.
func (_u *KnowledgeNodeUpdate) ClearSourceLinks() *KnowledgeNodeUpdate {
	_u.mutation.ClearSourceLinks()
	return _u
}

// RemoveSourceLinkIDs removes the "source_links" edge to KnowledgeNodeSource entities by IDs.
func (_u *KnowledgeNodeUpdate) RemoveSourceLinkIDs(ids ...string) *KnowledgeNodeUpdate {
	_u.mutation.RemoveSourceLinkIDs(ids...)
	return _u
}

// RemoveSourceLinks removes "source_links" edges to KnowledgeNodeSource entities.
func (_u *KnowledgeNodeUpdate) RemoveSourceLinks(v ...*KnowledgeNodeSource) *KnowledgeNodeUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KnowledgeNodeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KnowledgeNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := knowledgenode.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := knowledgenode.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DokLevel(); ok {
		if err := knowledgenode.DokLevelValidator(v); err != nil {
			return &ValidationError{Name: "dok_level", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.dok_level": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNode.task"`)
	}
	return nil
}

func (_u *KnowledgeNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(knowledgenode.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(knowledgenode.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgenode.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(knowledgenode.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(knowledgenode.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DokLevel(); ok {
		_spec.SetField(knowledgenode.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDokLevel(); ok {
		_spec.AddField(knowledgenode.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.SourceLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceLinksIDs(); len(nodes) > 0 && !_u.mutation.SourceLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KnowledgeNodeUpdateOne is the builder for updating a single KnowledgeNode entity.
type KnowledgeNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KnowledgeNodeMutation
}

// SetParentID sets the "parent_id" field.
func (_u *KnowledgeNodeUpdateOne) SetParentID(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableParentID(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *KnowledgeNodeUpdateOne) ClearParentID() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetCategory sets the "category" field.
func (_u *KnowledgeNodeUpdateOne) SetCategory(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableCategory(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSubcategory sets the "subcategory" field.
func (_u *KnowledgeNodeUpdateOne) SetSubcategory(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetSubcategory(v)
	return _u
}

// SetNillableSubcategory sets the "subcategory" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableSubcategory(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetSubcategory(*v)
	}
	return _u
}

// ClearSubcategory clears the value of the "subcategory" field.
func (_u *KnowledgeNodeUpdateOne) ClearSubcategory() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearSubcategory()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *KnowledgeNodeUpdateOne) SetSummary(v string) *KnowledgeNodeUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableSummary(v *string) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetDokLevel sets the "dok_level" field.
func (_u *KnowledgeNodeUpdateOne) SetDokLevel(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetDokLevel()
	_u.mutation.SetDokLevel(v)
	return _u
}

// SetNillableDokLevel sets the "dok_level" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillableDokLevel(v *int) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetDokLevel(*v)
	}
	return _u
}

// AddDokLevel adds value to the "dok_level" field.
func (_u *KnowledgeNodeUpdateOne) AddDokLevel(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.AddDokLevel(v)
	return _u
}

// SetPosition sets the "position" field.
func (_u *KnowledgeNodeUpdateOne) SetPosition(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *KnowledgeNodeUpdateOne) SetNillablePosition(v *int) *KnowledgeNodeUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *KnowledgeNodeUpdateOne) AddPosition(v int) *KnowledgeNodeUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// AddSourceLinkIDs adds the "source_links" edge to the KnowledgeNodeSource entity by IDs.
func (_u *KnowledgeNodeUpdateOne) AddSourceLinkIDs(ids ...string) *KnowledgeNodeUpdateOne {
	_u.mutation.AddSourceLinkIDs(ids...)
	return _u
}

// AddSourceLinks adds the "source_links" edges to the KnowledgeNodeSource entity.
func (_u *KnowledgeNodeUpdateOne) AddSourceLinks(v ...*KnowledgeNodeSource) *KnowledgeNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceLinkIDs(ids...)
}

// Mutation returns the KnowledgeNodeMutation object of the builder.
func (_u *KnowledgeNodeUpdateOne) Mutation() *KnowledgeNodeMutation {
	return _u.mutation
}

// ClearSourceLinks clears all "source_links" edges to the KnowledgeNodeSource entity.
func (_u *KnowledgeNodeUpdateOne) ClearSourceLinks() *KnowledgeNodeUpdateOne {
	_u.mutation.ClearSourceLinks()
	return _u
}

// RemoveSourceLinkIDs removes the "source_links" edge to KnowledgeNodeSource entities by IDs.
func (_u *KnowledgeNodeUpdateOne) RemoveSourceLinkIDs(ids ...string) *KnowledgeNodeUpdateOne {
	_u.mutation.RemoveSourceLinkIDs(ids...)
	return _u
}

// RemoveSourceLinks removes "source_links" edges to KnowledgeNodeSource entities.
func (_u *KnowledgeNodeUpdateOne) RemoveSourceLinks(v ...*KnowledgeNodeSource) *KnowledgeNodeUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceLinkIDs(ids...)
}

// Where appends a list predicates to the KnowledgeNodeUpdate builder.
func (_u *KnowledgeNodeUpdateOne) Where(ps ...predicate.KnowledgeNode) *KnowledgeNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KnowledgeNodeUpdateOne) Select(field string, fields ...string) *KnowledgeNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KnowledgeNode entity.
func (_u *KnowledgeNodeUpdateOne) Save(ctx context.Context) (*KnowledgeNode, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) SaveX(ctx context.Context) *KnowledgeNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KnowledgeNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KnowledgeNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KnowledgeNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := knowledgenode.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Summary(); ok {
		if err := knowledgenode.SummaryValidator(v); err != nil {
			return &ValidationError{Name: "summary", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.summary": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DokLevel(); ok {
		if err := knowledgenode.DokLevelValidator(v); err != nil {
			return &ValidationError{Name: "dok_level", err: fmt.Errorf(`ent: validator failed for field "KnowledgeNode.dok_level": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KnowledgeNode.task"`)
	}
	return nil
}

func (_u *KnowledgeNodeUpdateOne) sqlSave(ctx context.Context) (_node *KnowledgeNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(knowledgenode.Table, knowledgenode.Columns, sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KnowledgeNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, knowledgenode.FieldID)
		for _, f := range fields {
			if !knowledgenode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != knowledgenode.FieldID {
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
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(knowledgenode.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(knowledgenode.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(knowledgenode.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subcategory(); ok {
		_spec.SetField(knowledgenode.FieldSubcategory, field.TypeString, value)
	}
	if _u.mutation.SubcategoryCleared() {
		_spec.ClearField(knowledgenode.FieldSubcategory, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(knowledgenode.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.DokLevel(); ok {
		_spec.SetField(knowledgenode.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDokLevel(); ok {
		_spec.AddField(knowledgenode.FieldDokLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(knowledgenode.FieldPosition, field.TypeInt, value)
	}
	if _u.mutation.SourceLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceLinksIDs(); len(nodes) > 0 && !_u.mutation.SourceLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &KnowledgeNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{knowledgenode.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
