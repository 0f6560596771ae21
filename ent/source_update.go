// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenodesource"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
	"github.com/trilogy-group/nexus-agents/ent/source"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
)

// SourceUpdate is the builder for updating Source entities.
type SourceUpdate struct {
	config
	hooks    []Hook
	mutation *SourceMutation
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdate) Where(ps ...predicate.Source) *SourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceUpdate) SetURL(v string) *SourceUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableURL(v *string) *SourceUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdate) SetTitle(v string) *SourceUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableTitle(v *string) *SourceUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SourceUpdate) ClearTitle() *SourceUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SourceUpdate) SetDescription(v string) *SourceUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableDescription(v *string) *SourceUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SourceUpdate) ClearDescription() *SourceUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SourceUpdate) SetProvider(v string) *SourceUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableProvider(v *string) *SourceUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceUpdate) SetContentHash(v string) *SourceUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableContentHash(v *string) *SourceUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetReliabilityScore sets the "reliability_score" field.
func (_u *SourceUpdate) SetReliabilityScore(v float64) *SourceUpdate {
	_u.mutation.ResetReliabilityScore()
	_u.mutation.SetReliabilityScore(v)
	return _u
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableReliabilityScore(v *float64) *SourceUpdate {
	if v != nil {
		_u.SetReliabilityScore(*v)
	}
	return _u
}

// AddReliabilityScore adds value to the "reliability_score" field.
func (_u *SourceUpdate) AddReliabilityScore(v float64) *SourceUpdate {
	_u.mutation.AddReliabilityScore(v)
	return _u
}

// SetObservationCount sets the "observation_count" field.
func (_u *SourceUpdate) SetObservationCount(v int) *SourceUpdate {
	_u.mutation.ResetObservationCount()
	_u.mutation.SetObservationCount(v)
	return _u
}

// SetNillableObservationCount sets the "observation_count" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableObservationCount(v *int) *SourceUpdate {
	if v != nil {
		_u.SetObservationCount(*v)
	}
	return _u
}

// AddObservationCount adds value to the "observation_count" field.
func (_u *SourceUpdate) AddObservationCount(v int) *SourceUpdate {
	_u.mutation.AddObservationCount(v)
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *SourceUpdate) SetAccessedAt(v time.Time) *SourceUpdate {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *SourceUpdate) SetNillableAccessedAt(v *time.Time) *SourceUpdate {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// AddSummaryIDs adds the "summaries" edge to the SourceSummary entity by IDs.
func (_u *SourceUpdate) AddSummaryIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the SourceSummary entity.
func (_u *SourceUpdate) AddSummaries(v ...*SourceSummary) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddNodeLinkIDs adds the "node_links" edge to the KnowledgeNodeSource entity by IDs.
func (_u *SourceUpdate) AddNodeLinkIDs(ids ...string) *SourceUpdate {
	_u.mutation.AddNodeLinkIDs(ids...)
	return _u
}

// AddNodeLinks adds the "node_links" edges to the KnowledgeNodeSource entity.
func (_u *SourceUpdate) AddNodeLinks(v ...*KnowledgeNodeSource) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeLinkIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdate) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSummaries clears all "summaries" edges to the SourceSummary entity.
func (_u *SourceUpdate) ClearSummaries() *SourceUpdate {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to SourceSummary entities by IDs.
func (_u *SourceUpdate) RemoveSummaryIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to SourceSummary entities.
func (_u *SourceUpdate) RemoveSummaries(v ...*SourceSummary) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearNodeLinks clears all "node_links" edges to the KnowledgeNodeSource entity.
func (_u *SourceUpdate) ClearNodeLinks() *SourceUpdate {
	_u.mutation.ClearNodeLinks()
	return _u
}

// RemoveNodeLinkIDs removes the "node_links" edge to KnowledgeNodeSource entities by IDs.
func (_u *SourceUpdate) RemoveNodeLinkIDs(ids ...string) *SourceUpdate {
	_u.mutation.RemoveNodeLinkIDs(ids...)
	return _u
}

// RemoveNodeLinks removes "node_links" edges to KnowledgeNodeSource entities.
func (_u *SourceUpdate) RemoveNodeLinks(v ...*KnowledgeNodeSource) *SourceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeLinkIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := source.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Source.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := source.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Source.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(source.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(source.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(source.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(source.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(source.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReliabilityScore(); ok {
		_spec.SetField(source.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReliabilityScore(); ok {
		_spec.AddField(source.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ObservationCount(); ok {
		_spec.SetField(source.FieldObservationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservationCount(); ok {
		_spec.AddField(source.FieldObservationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(source.FieldAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.SummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NodeLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeLinksIDs(); len(nodes) > 0 && !_u.mutation.NodeLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceUpdateOne is the builder for updating a single Source entity.
type SourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceMutation
}

// SetURL sets the "url" field.
func (_u *SourceUpdateOne) SetURL(v string) *SourceUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableURL(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceUpdateOne) SetTitle(v string) *SourceUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableTitle(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SourceUpdateOne) ClearTitle() *SourceUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *SourceUpdateOne) SetDescription(v string) *SourceUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableDescription(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SourceUpdateOne) ClearDescription() *SourceUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SourceUpdateOne) SetProvider(v string) *SourceUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableProvider(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceUpdateOne) SetContentHash(v string) *SourceUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableContentHash(v *string) *SourceUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetReliabilityScore sets the "reliability_score" field.
func (_u *SourceUpdateOne) SetReliabilityScore(v float64) *SourceUpdateOne {
	_u.mutation.ResetReliabilityScore()
	_u.mutation.SetReliabilityScore(v)
	return _u
}

// SetNillableReliabilityScore sets the "reliability_score" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableReliabilityScore(v *float64) *SourceUpdateOne {
	if v != nil {
		_u.SetReliabilityScore(*v)
	}
	return _u
}

// AddReliabilityScore adds value to the "reliability_score" field.
func (_u *SourceUpdateOne) AddReliabilityScore(v float64) *SourceUpdateOne {
	_u.mutation.AddReliabilityScore(v)
	return _u
}

// SetObservationCount sets the "observation_count" field.
func (_u *SourceUpdateOne) SetObservationCount(v int) *SourceUpdateOne {
	_u.mutation.ResetObservationCount()
	_u.mutation.SetObservationCount(v)
	return _u
}

// SetNillableObservationCount sets the "observation_count" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableObservationCount(v *int) *SourceUpdateOne {
	if v != nil {
		_u.SetObservationCount(*v)
	}
	return _u
}

// AddObservationCount adds value to the "observation_count" field.
func (_u *SourceUpdateOne) AddObservationCount(v int) *SourceUpdateOne {
	_u.mutation.AddObservationCount(v)
	return _u
}

// SetAccessedAt sets the "accessed_at" field.
func (_u *SourceUpdateOne) SetAccessedAt(v time.Time) *SourceUpdateOne {
	_u.mutation.SetAccessedAt(v)
	return _u
}

// SetNillableAccessedAt sets the "accessed_at" field if the given value is not nil.
func (_u *SourceUpdateOne) SetNillableAccessedAt(v *time.Time) *SourceUpdateOne {
	if v != nil {
		_u.SetAccessedAt(*v)
	}
	return _u
}

// AddSummaryIDs adds the "summaries" edge to the SourceSummary entity by IDs.
func (_u *SourceUpdateOne) AddSummaryIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the SourceSummary entity.
func (_u *SourceUpdateOne) AddSummaries(v ...*SourceSummary) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// AddNodeLinkIDs adds the "node_links" edge to the KnowledgeNodeSource entity by IDs.
func (_u *SourceUpdateOne) AddNodeLinkIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.AddNodeLinkIDs(ids...)
	return _u
}

// AddNodeLinks adds the "node_links" edges to the KnowledgeNodeSource entity.
func (_u *SourceUpdateOne) AddNodeLinks(v ...*KnowledgeNodeSource) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeLinkIDs(ids...)
}

// Mutation returns the SourceMutation object of the builder.
func (_u *SourceUpdateOne) Mutation() *SourceMutation {
	return _u.mutation
}

// ClearSummaries clears all "summaries" edges to the SourceSummary entity.
func (_u *SourceUpdateOne) ClearSummaries() *SourceUpdateOne {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to SourceSummary entities by IDs.
func (_u *SourceUpdateOne) RemoveSummaryIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to SourceSummary entities.
func (_u *SourceUpdateOne) RemoveSummaries(v ...*SourceSummary) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// ClearNodeLinks clears all "node_links" edges to the KnowledgeNodeSource entity.
func (_u *SourceUpdateOne) ClearNodeLinks() *SourceUpdateOne {
	_u.mutation.ClearNodeLinks()
	return _u
}

// RemoveNodeLinkIDs removes the "node_links" edge to KnowledgeNodeSource entities by IDs.
func (_u *SourceUpdateOne) RemoveNodeLinkIDs(ids ...string) *SourceUpdateOne {
	_u.mutation.RemoveNodeLinkIDs(ids...)
	return _u
}

// RemoveNodeLinks removes "node_links" edges to KnowledgeNodeSource entities.
func (_u *SourceUpdateOne) RemoveNodeLinks(v ...*KnowledgeNodeSource) *SourceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeLinkIDs(ids...)
}

// Where appends a list predicates to the SourceUpdate builder.
func (_u *SourceUpdateOne) Where(ps ...predicate.Source) *SourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceUpdateOne) Select(field string, fields ...string) *SourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Source entity.
func (_u *SourceUpdateOne) Save(ctx context.Context) (*Source, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceUpdateOne) SaveX(ctx context.Context) *Source {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := source.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "Source.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := source.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Source.content_hash": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceUpdateOne) sqlSave(ctx context.Context) (_node *Source, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(source.Table, source.Columns, sqlgraph.NewFieldSpec(source.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Source.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, source.FieldID)
		for _, f := range fields {
			if !source.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != source.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(source.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(source.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(source.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(source.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(source.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(source.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(source.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReliabilityScore(); ok {
		_spec.SetField(source.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedReliabilityScore(); ok {
		_spec.AddField(source.FieldReliabilityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ObservationCount(); ok {
		_spec.SetField(source.FieldObservationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObservationCount(); ok {
		_spec.AddField(source.FieldObservationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccessedAt(); ok {
		_spec.SetField(source.FieldAccessedAt, field.TypeTime, value)
	}
	if _u.mutation.SummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NodeLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodeLinksIDs(); len(nodes) > 0 && !_u.mutation.NodeLinksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodeLinksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Source{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{source.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
