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
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// ResearchTaskCreate is the builder for creating a ResearchTask entity.
type ResearchTaskCreate struct {
	config
	mutation *ResearchTaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ResearchTaskCreate) SetTitle(v string) *ResearchTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetResearchQuery sets the "research_query" field.
func (_c *ResearchTaskCreate) SetResearchQuery(v string) *ResearchTaskCreate {
	_c.mutation.SetResearchQuery(v)
	return _c
}

// SetResearchType sets the "research_type" field.
func (_c *ResearchTaskCreate) SetResearchType(v researchtask.ResearchType) *ResearchTaskCreate {
	_c.mutation.SetResearchType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ResearchTaskCreate) SetStatus(v researchtask.Status) *ResearchTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableStatus(v *researchtask.Status) *ResearchTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProjectID sets the "project_id" field.
func (_c *ResearchTaskCreate) SetProjectID(v string) *ResearchTaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableProjectID(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetProjectID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ResearchTaskCreate) SetUserID(v string) *ResearchTaskCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableUserID(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAggregationConfig sets the "aggregation_config" field.
func (_c *ResearchTaskCreate) SetAggregationConfig(v map[string]interface{}) *ResearchTaskCreate {
	_c.mutation.SetAggregationConfig(v)
	return _c
}

// SetReportMarkdown sets the "report_markdown" field.
func (_c *ResearchTaskCreate) SetReportMarkdown(v string) *ResearchTaskCreate {
	_c.mutation.SetReportMarkdown(v)
	return _c
}

// SetNillableReportMarkdown sets the "report_markdown" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableReportMarkdown(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetReportMarkdown(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ResearchTaskCreate) SetErrorMessage(v string) *ResearchTaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableErrorMessage(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ResearchTaskCreate) SetErrorKind(v string) *ResearchTaskCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableErrorKind(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResearchTaskCreate) SetCreatedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableCreatedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ResearchTaskCreate) SetStartedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableStartedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ResearchTaskCreate) SetCompletedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableCompletedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *ResearchTaskCreate) SetPodID(v string) *ResearchTaskCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillablePodID(v *string) *ResearchTaskCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *ResearchTaskCreate) SetLastHeartbeatAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableLastHeartbeatAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ResearchTaskCreate) SetDeletedAt(v time.Time) *ResearchTaskCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ResearchTaskCreate) SetNillableDeletedAt(v *time.Time) *ResearchTaskCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResearchTaskCreate) SetID(v string) *ResearchTaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *ResearchTaskCreate) SetProject(v *Project) *ResearchTaskCreate {
	return _c.SetProjectID(v.ID)
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_c *ResearchTaskCreate) AddOperationIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddOperationIDs(ids...)
	return _c
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_c *ResearchTaskCreate) AddOperations(v ...*Operation) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOperationIDs(ids...)
}

// AddSourceSummaryIDs adds the "source_summaries" edge to the SourceSummary entity by IDs.
func (_c *ResearchTaskCreate) AddSourceSummaryIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddSourceSummaryIDs(ids...)
	return _c
}

// AddSourceSummaries adds the "source_summaries" edges to the SourceSummary entity.
func (_c *ResearchTaskCreate) AddSourceSummaries(v ...*SourceSummary) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceSummaryIDs(ids...)
}

// AddKnowledgeNodeIDs adds the "knowledge_nodes" edge to the KnowledgeNode entity by IDs.
func (_c *ResearchTaskCreate) AddKnowledgeNodeIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddKnowledgeNodeIDs(ids...)
	return _c
}

// AddKnowledgeNodes adds the "knowledge_nodes" edges to the KnowledgeNode entity.
func (_c *ResearchTaskCreate) AddKnowledgeNodes(v ...*KnowledgeNode) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddKnowledgeNodeIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_c *ResearchTaskCreate) AddInsightIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddInsightIDs(ids...)
	return _c
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_c *ResearchTaskCreate) AddInsights(v ...*Insight) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInsightIDs(ids...)
}

// AddSpikyPovIDs adds the "spiky_povs" edge to the SpikyPOV entity by IDs.
func (_c *ResearchTaskCreate) AddSpikyPovIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddSpikyPovIDs(ids...)
	return _c
}

// AddSpikyPovs adds the "spiky_povs" edges to the SpikyPOV entity.
func (_c *ResearchTaskCreate) AddSpikyPovs(v ...*SpikyPOV) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpikyPovIDs(ids...)
}

// AddReportSectionIDs adds the "report_sections" edge to the ReportSection entity by IDs.
func (_c *ResearchTaskCreate) AddReportSectionIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddReportSectionIDs(ids...)
	return _c
}

// AddReportSections adds the "report_sections" edges to the ReportSection entity.
func (_c *ResearchTaskCreate) AddReportSections(v ...*ReportSection) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportSectionIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *ResearchTaskCreate) AddArtifactIDs(ids ...string) *ResearchTaskCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *ResearchTaskCreate) AddArtifacts(v ...*Artifact) *ResearchTaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_c *ResearchTaskCreate) AddEventIDs(ids ...int) *ResearchTaskCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the Event entity.
func (_c *ResearchTaskCreate) AddEvents(v ...*Event) *ResearchTaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_c *ResearchTaskCreate) Mutation() *ResearchTaskMutation {
	return _c.mutation
}

// Save creates the ResearchTask in the database.
func (_c *ResearchTaskCreate) Save(ctx context.Context) (*ResearchTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResearchTaskCreate) SaveX(ctx context.Context) *ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResearchTaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := researchtask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := researchtask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResearchTaskCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ResearchTask.title"`)}
	}
	if _, ok := _c.mutation.ResearchQuery(); !ok {
		return &ValidationError{Name: "research_query", err: errors.New(`ent: missing required field "ResearchTask.research_query"`)}
	}
	if v, ok := _c.mutation.ResearchQuery(); ok {
		if err := researchtask.ResearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "research_query", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_query": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResearchType(); !ok {
		return &ValidationError{Name: "research_type", err: errors.New(`ent: missing required field "ResearchTask.research_type"`)}
	}
	if v, ok := _c.mutation.ResearchType(); ok {
		if err := researchtask.ResearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "research_type", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ResearchTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResearchTask.created_at"`)}
	}
	return nil
}

func (_c *ResearchTaskCreate) sqlSave(ctx context.Context) (*ResearchTask, error) {
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
			return nil, fmt.Errorf("unexpected ResearchTask.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResearchTaskCreate) createSpec() (*ResearchTask, *sqlgraph.CreateSpec) {
	var (
		_node = &ResearchTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(researchtask.Table, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(researchtask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.ResearchQuery(); ok {
		_spec.SetField(researchtask.FieldResearchQuery, field.TypeString, value)
		_node.ResearchQuery = value
	}
	if value, ok := _c.mutation.ResearchType(); ok {
		_spec.SetField(researchtask.FieldResearchType, field.TypeEnum, value)
		_node.ResearchType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(researchtask.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.AggregationConfig(); ok {
		_spec.SetField(researchtask.FieldAggregationConfig, field.TypeJSON, value)
		_node.AggregationConfig = value
	}
	if value, ok := _c.mutation.ReportMarkdown(); ok {
		_spec.SetField(researchtask.FieldReportMarkdown, field.TypeString, value)
		_node.ReportMarkdown = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(researchtask.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(researchtask.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(researchtask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(researchtask.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchtask.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(researchtask.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   researchtask.ProjectTable,
			Columns: []string{researchtask.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OperationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.OperationsTable,
			Columns: []string{researchtask.OperationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(operation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourceSummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.SourceSummariesTable,
			Columns: []string{researchtask.SourceSummariesColumn},
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
	if nodes := _c.mutation.KnowledgeNodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.KnowledgeNodesTable,
			Columns: []string{researchtask.KnowledgeNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(knowledgenode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.InsightsTable,
			Columns: []string{researchtask.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpikyPovsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.SpikyPovsTable,
			Columns: []string{researchtask.SpikyPovsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(spikypov.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportSectionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.ReportSectionsTable,
			Columns: []string{researchtask.ReportSectionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(reportsection.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.ArtifactsTable,
			Columns: []string{researchtask.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   researchtask.EventsTable,
			Columns: []string{researchtask.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt),
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
//	client.ResearchTask.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchTaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchTaskCreate) OnConflict(opts ...sql.ConflictOption) *ResearchTaskUpsertOne {
	_c.conflict = opts
	return &ResearchTaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchTaskCreate) OnConflictColumns(columns ...string) *ResearchTaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchTaskUpsertOne{
		create: _c,
	}
}

type (
	// ResearchTaskUpsertOne is the builder for "upsert"-ing
	//  one ResearchTask node.
	ResearchTaskUpsertOne struct {
		create *ResearchTaskCreate
	}

	// ResearchTaskUpsert is the "OnConflict" setter.
	ResearchTaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ResearchTaskUpsert) SetTitle(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateTitle() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldTitle)
	return u
}

// SetResearchQuery sets the "research_query" field.
func (u *ResearchTaskUpsert) SetResearchQuery(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldResearchQuery, v)
	return u
}

// UpdateResearchQuery sets the "research_query" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateResearchQuery() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldResearchQuery)
	return u
}

// SetResearchType sets the "research_type" field.
func (u *ResearchTaskUpsert) SetResearchType(v researchtask.ResearchType) *ResearchTaskUpsert {
	u.Set(researchtask.FieldResearchType, v)
	return u
}

// UpdateResearchType sets the "research_type" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateResearchType() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldResearchType)
	return u
}

// SetStatus sets the "status" field.
func (u *ResearchTaskUpsert) SetStatus(v researchtask.Status) *ResearchTaskUpsert {
	u.Set(researchtask.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateStatus() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldStatus)
	return u
}

// SetProjectID sets the "project_id" field.
func (u *ResearchTaskUpsert) SetProjectID(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldProjectID, v)
	return u
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateProjectID() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldProjectID)
	return u
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ResearchTaskUpsert) ClearProjectID() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldProjectID)
	return u
}

// SetUserID sets the "user_id" field.
func (u *ResearchTaskUpsert) SetUserID(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateUserID() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *ResearchTaskUpsert) ClearUserID() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldUserID)
	return u
}

// SetAggregationConfig sets the "aggregation_config" field.
func (u *ResearchTaskUpsert) SetAggregationConfig(v map[string]interface{}) *ResearchTaskUpsert {
	u.Set(researchtask.FieldAggregationConfig, v)
	return u
}

// UpdateAggregationConfig sets the "aggregation_config" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateAggregationConfig() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldAggregationConfig)
	return u
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (u *ResearchTaskUpsert) ClearAggregationConfig() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldAggregationConfig)
	return u
}

// SetReportMarkdown sets the "report_markdown" field.
func (u *ResearchTaskUpsert) SetReportMarkdown(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldReportMarkdown, v)
	return u
}

// UpdateReportMarkdown sets the "report_markdown" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateReportMarkdown() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldReportMarkdown)
	return u
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (u *ResearchTaskUpsert) ClearReportMarkdown() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldReportMarkdown)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchTaskUpsert) SetErrorMessage(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateErrorMessage() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchTaskUpsert) ClearErrorMessage() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldErrorMessage)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchTaskUpsert) SetErrorKind(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateErrorKind() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchTaskUpsert) ClearErrorKind() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldErrorKind)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchTaskUpsert) SetStartedAt(v time.Time) *ResearchTaskUpsert {
	u.Set(researchtask.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateStartedAt() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchTaskUpsert) ClearStartedAt() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchTaskUpsert) SetCompletedAt(v time.Time) *ResearchTaskUpsert {
	u.Set(researchtask.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateCompletedAt() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchTaskUpsert) ClearCompletedAt() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldCompletedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *ResearchTaskUpsert) SetPodID(v string) *ResearchTaskUpsert {
	u.Set(researchtask.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdatePodID() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ResearchTaskUpsert) ClearPodID() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldPodID)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchTaskUpsert) SetLastHeartbeatAt(v time.Time) *ResearchTaskUpsert {
	u.Set(researchtask.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateLastHeartbeatAt() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchTaskUpsert) ClearLastHeartbeatAt() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldLastHeartbeatAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResearchTaskUpsert) SetDeletedAt(v time.Time) *ResearchTaskUpsert {
	u.Set(researchtask.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResearchTaskUpsert) UpdateDeletedAt() *ResearchTaskUpsert {
	u.SetExcluded(researchtask.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResearchTaskUpsert) ClearDeletedAt() *ResearchTaskUpsert {
	u.SetNull(researchtask.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchTaskUpsertOne) UpdateNewValues() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(researchtask.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(researchtask.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResearchTaskUpsertOne) Ignore() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchTaskUpsertOne) DoNothing() *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchTaskCreate.OnConflict
// documentation for more info.
func (u *ResearchTaskUpsertOne) Update(set func(*ResearchTaskUpsert)) *ResearchTaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ResearchTaskUpsertOne) SetTitle(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateTitle() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetResearchQuery sets the "research_query" field.
func (u *ResearchTaskUpsertOne) SetResearchQuery(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchQuery(v)
	})
}

// UpdateResearchQuery sets the "research_query" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateResearchQuery() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchQuery()
	})
}

// SetResearchType sets the "research_type" field.
func (u *ResearchTaskUpsertOne) SetResearchType(v researchtask.ResearchType) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchType(v)
	})
}

// UpdateResearchType sets the "research_type" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateResearchType() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchType()
	})
}

// SetStatus sets the "status" field.
func (u *ResearchTaskUpsertOne) SetStatus(v researchtask.Status) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateStatus() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ResearchTaskUpsertOne) SetProjectID(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateProjectID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ResearchTaskUpsertOne) ClearProjectID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearProjectID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ResearchTaskUpsertOne) SetUserID(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateUserID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ResearchTaskUpsertOne) ClearUserID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearUserID()
	})
}

// SetAggregationConfig sets the "aggregation_config" field.
func (u *ResearchTaskUpsertOne) SetAggregationConfig(v map[string]interface{}) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetAggregationConfig(v)
	})
}

// UpdateAggregationConfig sets the "aggregation_config" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateAggregationConfig() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateAggregationConfig()
	})
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (u *ResearchTaskUpsertOne) ClearAggregationConfig() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearAggregationConfig()
	})
}

// SetReportMarkdown sets the "report_markdown" field.
func (u *ResearchTaskUpsertOne) SetReportMarkdown(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetReportMarkdown(v)
	})
}

// UpdateReportMarkdown sets the "report_markdown" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateReportMarkdown() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateReportMarkdown()
	})
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (u *ResearchTaskUpsertOne) ClearReportMarkdown() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearReportMarkdown()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchTaskUpsertOne) SetErrorMessage(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateErrorMessage() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchTaskUpsertOne) ClearErrorMessage() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchTaskUpsertOne) SetErrorKind(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateErrorKind() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchTaskUpsertOne) ClearErrorKind() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearErrorKind()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchTaskUpsertOne) SetStartedAt(v time.Time) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateStartedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchTaskUpsertOne) ClearStartedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchTaskUpsertOne) SetCompletedAt(v time.Time) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateCompletedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchTaskUpsertOne) ClearCompletedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ResearchTaskUpsertOne) SetPodID(v string) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdatePodID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ResearchTaskUpsertOne) ClearPodID() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchTaskUpsertOne) SetLastHeartbeatAt(v time.Time) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateLastHeartbeatAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchTaskUpsertOne) ClearLastHeartbeatAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResearchTaskUpsertOne) SetDeletedAt(v time.Time) *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertOne) UpdateDeletedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResearchTaskUpsertOne) ClearDeletedAt() *ResearchTaskUpsertOne {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ResearchTaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchTaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchTaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResearchTaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ResearchTaskUpsertOne.ID is not supported by MySQL driver. Use ResearchTaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResearchTaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResearchTaskCreateBulk is the builder for creating many ResearchTask entities in bulk.
type ResearchTaskCreateBulk struct {
	config
	err      error
	builders []*ResearchTaskCreate
	conflict []sql.ConflictOption
}

// Save creates the ResearchTask entities in the database.
func (_c *ResearchTaskCreateBulk) Save(ctx context.Context) ([]*ResearchTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResearchTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResearchTaskMutation)
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
func (_c *ResearchTaskCreateBulk) SaveX(ctx context.Context) []*ResearchTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResearchTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResearchTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ResearchTask.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResearchTaskUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ResearchTaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResearchTaskUpsertBulk {
	_c.conflict = opts
	return &ResearchTaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResearchTaskCreateBulk) OnConflictColumns(columns ...string) *ResearchTaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResearchTaskUpsertBulk{
		create: _c,
	}
}

// ResearchTaskUpsertBulk is the builder for "upsert"-ing
// a bulk of ResearchTask nodes.
type ResearchTaskUpsertBulk struct {
	create *ResearchTaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(researchtask.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ResearchTaskUpsertBulk) UpdateNewValues() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(researchtask.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(researchtask.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ResearchTask.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResearchTaskUpsertBulk) Ignore() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResearchTaskUpsertBulk) DoNothing() *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResearchTaskCreateBulk.OnConflict
// documentation for more info.
func (u *ResearchTaskUpsertBulk) Update(set func(*ResearchTaskUpsert)) *ResearchTaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResearchTaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ResearchTaskUpsertBulk) SetTitle(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateTitle() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateTitle()
	})
}

// SetResearchQuery sets the "research_query" field.
func (u *ResearchTaskUpsertBulk) SetResearchQuery(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchQuery(v)
	})
}

// UpdateResearchQuery sets the "research_query" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateResearchQuery() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchQuery()
	})
}

// SetResearchType sets the "research_type" field.
func (u *ResearchTaskUpsertBulk) SetResearchType(v researchtask.ResearchType) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetResearchType(v)
	})
}

// UpdateResearchType sets the "research_type" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateResearchType() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateResearchType()
	})
}

// SetStatus sets the "status" field.
func (u *ResearchTaskUpsertBulk) SetStatus(v researchtask.Status) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateStatus() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateStatus()
	})
}

// SetProjectID sets the "project_id" field.
func (u *ResearchTaskUpsertBulk) SetProjectID(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetProjectID(v)
	})
}

// UpdateProjectID sets the "project_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateProjectID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateProjectID()
	})
}

// ClearProjectID clears the value of the "project_id" field.
func (u *ResearchTaskUpsertBulk) ClearProjectID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearProjectID()
	})
}

// SetUserID sets the "user_id" field.
func (u *ResearchTaskUpsertBulk) SetUserID(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateUserID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *ResearchTaskUpsertBulk) ClearUserID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearUserID()
	})
}

// SetAggregationConfig sets the "aggregation_config" field.
func (u *ResearchTaskUpsertBulk) SetAggregationConfig(v map[string]interface{}) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetAggregationConfig(v)
	})
}

// UpdateAggregationConfig sets the "aggregation_config" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateAggregationConfig() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateAggregationConfig()
	})
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (u *ResearchTaskUpsertBulk) ClearAggregationConfig() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearAggregationConfig()
	})
}

// SetReportMarkdown sets the "report_markdown" field.
func (u *ResearchTaskUpsertBulk) SetReportMarkdown(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetReportMarkdown(v)
	})
}

// UpdateReportMarkdown sets the "report_markdown" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateReportMarkdown() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateReportMarkdown()
	})
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (u *ResearchTaskUpsertBulk) ClearReportMarkdown() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearReportMarkdown()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ResearchTaskUpsertBulk) SetErrorMessage(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateErrorMessage() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ResearchTaskUpsertBulk) ClearErrorMessage() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ResearchTaskUpsertBulk) SetErrorKind(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateErrorKind() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ResearchTaskUpsertBulk) ClearErrorKind() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearErrorKind()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *ResearchTaskUpsertBulk) SetStartedAt(v time.Time) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateStartedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *ResearchTaskUpsertBulk) ClearStartedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *ResearchTaskUpsertBulk) SetCompletedAt(v time.Time) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateCompletedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *ResearchTaskUpsertBulk) ClearCompletedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *ResearchTaskUpsertBulk) SetPodID(v string) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdatePodID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *ResearchTaskUpsertBulk) ClearPodID() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearPodID()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *ResearchTaskUpsertBulk) SetLastHeartbeatAt(v time.Time) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateLastHeartbeatAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *ResearchTaskUpsertBulk) ClearLastHeartbeatAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ResearchTaskUpsertBulk) SetDeletedAt(v time.Time) *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ResearchTaskUpsertBulk) UpdateDeletedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ResearchTaskUpsertBulk) ClearDeletedAt() *ResearchTaskUpsertBulk {
	return u.Update(func(s *ResearchTaskUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ResearchTaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResearchTaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResearchTaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResearchTaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
