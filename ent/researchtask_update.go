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
	"github.com/trilogy-group/nexus-agents/ent/artifact"
	"github.com/trilogy-group/nexus-agents/ent/event"
	"github.com/trilogy-group/nexus-agents/ent/insight"
	"github.com/trilogy-group/nexus-agents/ent/knowledgenode"
	"github.com/trilogy-group/nexus-agents/ent/operation"
	"github.com/trilogy-group/nexus-agents/ent/predicate"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/reportsection"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
	"github.com/trilogy-group/nexus-agents/ent/sourcesummary"
	"github.com/trilogy-group/nexus-agents/ent/spikypov"
)

// ResearchTaskUpdate is the builder for updating ResearchTask entities.
type ResearchTaskUpdate struct {
	config
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdate) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ResearchTaskUpdate) SetTitle(v string) *ResearchTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableTitle(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetResearchQuery sets the "research_query" field.
func (_u *ResearchTaskUpdate) SetResearchQuery(v string) *ResearchTaskUpdate {
	_u.mutation.SetResearchQuery(v)
	return _u
}

// SetNillableResearchQuery sets the "research_query" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableResearchQuery(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetResearchQuery(*v)
	}
	return _u
}

// SetResearchType sets the "research_type" field.
func (_u *ResearchTaskUpdate) SetResearchType(v researchtask.ResearchType) *ResearchTaskUpdate {
	_u.mutation.SetResearchType(v)
	return _u
}

// SetNillableResearchType sets the "research_type" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableResearchType(v *researchtask.ResearchType) *ResearchTaskUpdate {
	if v != nil {
		_u.SetResearchType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchTaskUpdate) SetStatus(v researchtask.Status) *ResearchTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableStatus(v *researchtask.Status) *ResearchTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ResearchTaskUpdate) SetProjectID(v string) *ResearchTaskUpdate {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableProjectID(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ResearchTaskUpdate) ClearProjectID() *ResearchTaskUpdate {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResearchTaskUpdate) SetUserID(v string) *ResearchTaskUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableUserID(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ResearchTaskUpdate) ClearUserID() *ResearchTaskUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetAggregationConfig sets the "aggregation_config" field.
func (_u *ResearchTaskUpdate) SetAggregationConfig(v map[string]interface{}) *ResearchTaskUpdate {
	_u.mutation.SetAggregationConfig(v)
	return _u
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (_u *ResearchTaskUpdate) ClearAggregationConfig() *ResearchTaskUpdate {
	_u.mutation.ClearAggregationConfig()
	return _u
}

// SetReportMarkdown sets the "report_markdown" field.
func (_u *ResearchTaskUpdate) SetReportMarkdown(v string) *ResearchTaskUpdate {
	_u.mutation.SetReportMarkdown(v)
	return _u
}

// SetNillableReportMarkdown sets the "report_markdown" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableReportMarkdown(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetReportMarkdown(*v)
	}
	return _u
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (_u *ResearchTaskUpdate) ClearReportMarkdown() *ResearchTaskUpdate {
	_u.mutation.ClearReportMarkdown()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchTaskUpdate) SetErrorMessage(v string) *ResearchTaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableErrorMessage(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchTaskUpdate) ClearErrorMessage() *ResearchTaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ResearchTaskUpdate) SetErrorKind(v string) *ResearchTaskUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableErrorKind(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ResearchTaskUpdate) ClearErrorKind() *ResearchTaskUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchTaskUpdate) SetStartedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableStartedAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchTaskUpdate) ClearStartedAt() *ResearchTaskUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchTaskUpdate) SetCompletedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableCompletedAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchTaskUpdate) ClearCompletedAt() *ResearchTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchTaskUpdate) SetPodID(v string) *ResearchTaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillablePodID(v *string) *ResearchTaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchTaskUpdate) ClearPodID() *ResearchTaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ResearchTaskUpdate) SetLastHeartbeatAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ResearchTaskUpdate) ClearLastHeartbeatAt() *ResearchTaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResearchTaskUpdate) SetDeletedAt(v time.Time) *ResearchTaskUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResearchTaskUpdate) SetNillableDeletedAt(v *time.Time) *ResearchTaskUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResearchTaskUpdate) ClearDeletedAt() *ResearchTaskUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ResearchTaskUpdate) SetProject(v *Project) *ResearchTaskUpdate {
	return _u.SetProjectID(v.ID)
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_u *ResearchTaskUpdate) AddOperationIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_u *ResearchTaskUpdate) AddOperations(v ...*Operation) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// AddSourceSummaryIDs adds the "source_summaries" edge to the SourceSummary entity by IDs.
func (_u *ResearchTaskUpdate) AddSourceSummaryIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddSourceSummaryIDs(ids...)
	return _u
}

// AddSourceSummaries adds the "source_summaries" edges to the SourceSummary entity.
func (_u *ResearchTaskUpdate) AddSourceSummaries(v ...*SourceSummary) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceSummaryIDs(ids...)
}

// AddKnowledgeNodeIDs adds the "knowledge_nodes" edge to the KnowledgeNode entity by IDs.
func (_u *ResearchTaskUpdate) AddKnowledgeNodeIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddKnowledgeNodeIDs(ids...)
	return _u
}

// AddKnowledgeNodes adds the "knowledge_nodes" edges to the KnowledgeNode entity.
func (_u *ResearchTaskUpdate) AddKnowledgeNodes(v ...*KnowledgeNode) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeNodeIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *ResearchTaskUpdate) AddInsightIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *ResearchTaskUpdate) AddInsights(v ...*Insight) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddSpikyPovIDs adds the "spiky_povs" edge to the SpikyPOV entity by IDs.
func (_u *ResearchTaskUpdate) AddSpikyPovIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddSpikyPovIDs(ids...)
	return _u
}

// AddSpikyPovs adds the "spiky_povs" edges to the SpikyPOV entity.
func (_u *ResearchTaskUpdate) AddSpikyPovs(v ...*SpikyPOV) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpikyPovIDs(ids...)
}

// AddReportSectionIDs adds the "report_sections" edge to the ReportSection entity by IDs.
func (_u *ResearchTaskUpdate) AddReportSectionIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddReportSectionIDs(ids...)
	return _u
}

// AddReportSections adds the "report_sections" edges to the ReportSection entity.
func (_u *ResearchTaskUpdate) AddReportSections(v ...*ReportSection) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportSectionIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *ResearchTaskUpdate) AddArtifactIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *ResearchTaskUpdate) AddArtifacts(v ...*Artifact) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ResearchTaskUpdate) AddEventIDs(ids ...int) *ResearchTaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ResearchTaskUpdate) AddEvents(v ...*Event) *ResearchTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdate) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ResearchTaskUpdate) ClearProject() *ResearchTaskUpdate {
	_u.mutation.ClearProject()
	return _u
}

// ClearOperations clears all "operations" edges to the Operation entity.
func (_u *ResearchTaskUpdate) ClearOperations() *ResearchTaskUpdate {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to Operation entities by IDs.
func (_u *ResearchTaskUpdate) RemoveOperationIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to Operation entities.
func (_u *ResearchTaskUpdate) RemoveOperations(v ...*Operation) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// ClearSourceSummaries clears all "source_summaries" edges to the SourceSummary entity.
func (_u *ResearchTaskUpdate) ClearSourceSummaries() *ResearchTaskUpdate {
	_u.mutation.ClearSourceSummaries()
	return _u
}

// RemoveSourceSummaryIDs removes the "source_summaries" edge to SourceSummary entities by IDs.
func (_u *ResearchTaskUpdate) RemoveSourceSummaryIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveSourceSummaryIDs(ids...)
	return _u
}

// RemoveSourceSummaries removes "source_summaries" edges to SourceSummary entities.
func (_u *ResearchTaskUpdate) RemoveSourceSummaries(v ...*SourceSummary) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceSummaryIDs(ids...)
}

// ClearKnowledgeNodes clears all "knowledge_nodes" edges to the KnowledgeNode entity.
func (_u *ResearchTaskUpdate) ClearKnowledgeNodes() *ResearchTaskUpdate {
	_u.mutation.ClearKnowledgeNodes()
	return _u
}

// RemoveKnowledgeNodeIDs removes the "knowledge_nodes" edge to KnowledgeNode entities by IDs.
func (_u *ResearchTaskUpdate) RemoveKnowledgeNodeIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveKnowledgeNodeIDs(ids...)
	return _u
}

// RemoveKnowledgeNodes removes "knowledge_nodes" edges to KnowledgeNode entities.
func (_u *ResearchTaskUpdate) RemoveKnowledgeNodes(v ...*KnowledgeNode) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeNodeIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *ResearchTaskUpdate) ClearInsights() *ResearchTaskUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *ResearchTaskUpdate) RemoveInsightIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *ResearchTaskUpdate) RemoveInsights(v ...*Insight) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearSpikyPovs clears all "spiky_povs" edges to the SpikyPOV entity.
func (_u *ResearchTaskUpdate) ClearSpikyPovs() *ResearchTaskUpdate {
	_u.mutation.ClearSpikyPovs()
	return _u
}

// RemoveSpikyPovIDs removes the "spiky_povs" edge to SpikyPOV entities by IDs.
func (_u *ResearchTaskUpdate) RemoveSpikyPovIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveSpikyPovIDs(ids...)
	return _u
}

// RemoveSpikyPovs removes "spiky_povs" edges to SpikyPOV entities.
func (_u *ResearchTaskUpdate) RemoveSpikyPovs(v ...*SpikyPOV) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpikyPovIDs(ids...)
}

// ClearReportSections clears all "report_sections" edges to the ReportSection entity.
func (_u *ResearchTaskUpdate) ClearReportSections() *ResearchTaskUpdate {
	_u.mutation.ClearReportSections()
	return _u
}

// RemoveReportSectionIDs removes the "report_sections" edge to ReportSection entities by IDs.
func (_u *ResearchTaskUpdate) RemoveReportSectionIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveReportSectionIDs(ids...)
	return _u
}

// RemoveReportSections removes "report_sections" edges to ReportSection entities.
func (_u *ResearchTaskUpdate) RemoveReportSections(v ...*ReportSection) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportSectionIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *ResearchTaskUpdate) ClearArtifacts() *ResearchTaskUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *ResearchTaskUpdate) RemoveArtifactIDs(ids ...string) *ResearchTaskUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *ResearchTaskUpdate) RemoveArtifacts(v ...*Artifact) *ResearchTaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ResearchTaskUpdate) ClearEvents() *ResearchTaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ResearchTaskUpdate) RemoveEventIDs(ids ...int) *ResearchTaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ResearchTaskUpdate) RemoveEvents(v ...*Event) *ResearchTaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResearchTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResearchTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdate) check() error {
	if v, ok := _u.mutation.ResearchQuery(); ok {
		if err := researchtask.ResearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "research_query", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResearchType(); ok {
		if err := researchtask.ResearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "research_type", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchQuery(); ok {
		_spec.SetField(researchtask.FieldResearchQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchType(); ok {
		_spec.SetField(researchtask.FieldResearchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(researchtask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(researchtask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AggregationConfig(); ok {
		_spec.SetField(researchtask.FieldAggregationConfig, field.TypeJSON, value)
	}
	if _u.mutation.AggregationConfigCleared() {
		_spec.ClearField(researchtask.FieldAggregationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReportMarkdown(); ok {
		_spec.SetField(researchtask.FieldReportMarkdown, field.TypeString, value)
	}
	if _u.mutation.ReportMarkdownCleared() {
		_spec.ClearField(researchtask.FieldReportMarkdown, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(researchtask.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(researchtask.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchtask.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(researchtask.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(researchtask.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(researchtask.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceSummariesIDs(); len(nodes) > 0 && !_u.mutation.SourceSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeNodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeNodesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeNodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeNodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpikyPovsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpikyPovsIDs(); len(nodes) > 0 && !_u.mutation.SpikyPovsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpikyPovsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportSectionsIDs(); len(nodes) > 0 && !_u.mutation.ReportSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportSectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResearchTaskUpdateOne is the builder for updating a single ResearchTask entity.
type ResearchTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResearchTaskMutation
}

// SetTitle sets the "title" field.
func (_u *ResearchTaskUpdateOne) SetTitle(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableTitle(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetResearchQuery sets the "research_query" field.
func (_u *ResearchTaskUpdateOne) SetResearchQuery(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetResearchQuery(v)
	return _u
}

// SetNillableResearchQuery sets the "research_query" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableResearchQuery(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetResearchQuery(*v)
	}
	return _u
}

// SetResearchType sets the "research_type" field.
func (_u *ResearchTaskUpdateOne) SetResearchType(v researchtask.ResearchType) *ResearchTaskUpdateOne {
	_u.mutation.SetResearchType(v)
	return _u
}

// SetNillableResearchType sets the "research_type" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableResearchType(v *researchtask.ResearchType) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetResearchType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ResearchTaskUpdateOne) SetStatus(v researchtask.Status) *ResearchTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableStatus(v *researchtask.Status) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProjectID sets the "project_id" field.
func (_u *ResearchTaskUpdateOne) SetProjectID(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetProjectID(v)
	return _u
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableProjectID(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetProjectID(*v)
	}
	return _u
}

// ClearProjectID clears the value of the "project_id" field.
func (_u *ResearchTaskUpdateOne) ClearProjectID() *ResearchTaskUpdateOne {
	_u.mutation.ClearProjectID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ResearchTaskUpdateOne) SetUserID(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableUserID(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ResearchTaskUpdateOne) ClearUserID() *ResearchTaskUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetAggregationConfig sets the "aggregation_config" field.
func (_u *ResearchTaskUpdateOne) SetAggregationConfig(v map[string]interface{}) *ResearchTaskUpdateOne {
	_u.mutation.SetAggregationConfig(v)
	return _u
}

// ClearAggregationConfig clears the value of the "aggregation_config" field.
func (_u *ResearchTaskUpdateOne) ClearAggregationConfig() *ResearchTaskUpdateOne {
	_u.mutation.ClearAggregationConfig()
	return _u
}

// SetReportMarkdown sets the "report_markdown" field.
func (_u *ResearchTaskUpdateOne) SetReportMarkdown(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetReportMarkdown(v)
	return _u
}

// SetNillableReportMarkdown sets the "report_markdown" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableReportMarkdown(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetReportMarkdown(*v)
	}
	return _u
}

// ClearReportMarkdown clears the value of the "report_markdown" field.
func (_u *ResearchTaskUpdateOne) ClearReportMarkdown() *ResearchTaskUpdateOne {
	_u.mutation.ClearReportMarkdown()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ResearchTaskUpdateOne) SetErrorMessage(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableErrorMessage(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ResearchTaskUpdateOne) ClearErrorMessage() *ResearchTaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ResearchTaskUpdateOne) SetErrorKind(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableErrorKind(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ResearchTaskUpdateOne) ClearErrorKind() *ResearchTaskUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ResearchTaskUpdateOne) SetStartedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableStartedAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ResearchTaskUpdateOne) ClearStartedAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ResearchTaskUpdateOne) SetCompletedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ResearchTaskUpdateOne) ClearCompletedAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *ResearchTaskUpdateOne) SetPodID(v string) *ResearchTaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillablePodID(v *string) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *ResearchTaskUpdateOne) ClearPodID() *ResearchTaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *ResearchTaskUpdateOne) SetLastHeartbeatAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *ResearchTaskUpdateOne) ClearLastHeartbeatAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ResearchTaskUpdateOne) SetDeletedAt(v time.Time) *ResearchTaskUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ResearchTaskUpdateOne) SetNillableDeletedAt(v *time.Time) *ResearchTaskUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ResearchTaskUpdateOne) ClearDeletedAt() *ResearchTaskUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetProject sets the "project" edge to the Project entity.
func (_u *ResearchTaskUpdateOne) SetProject(v *Project) *ResearchTaskUpdateOne {
	return _u.SetProjectID(v.ID)
}

// AddOperationIDs adds the "operations" edge to the Operation entity by IDs.
func (_u *ResearchTaskUpdateOne) AddOperationIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddOperationIDs(ids...)
	return _u
}

// AddOperations adds the "operations" edges to the Operation entity.
func (_u *ResearchTaskUpdateOne) AddOperations(v ...*Operation) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOperationIDs(ids...)
}

// AddSourceSummaryIDs adds the "source_summaries" edge to the SourceSummary entity by IDs.
func (_u *ResearchTaskUpdateOne) AddSourceSummaryIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddSourceSummaryIDs(ids...)
	return _u
}

// AddSourceSummaries adds the "source_summaries" edges to the SourceSummary entity.
func (_u *ResearchTaskUpdateOne) AddSourceSummaries(v ...*SourceSummary) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceSummaryIDs(ids...)
}

// AddKnowledgeNodeIDs adds the "knowledge_nodes" edge to the KnowledgeNode entity by IDs.
func (_u *ResearchTaskUpdateOne) AddKnowledgeNodeIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddKnowledgeNodeIDs(ids...)
	return _u
}

// AddKnowledgeNodes adds the "knowledge_nodes" edges to the KnowledgeNode entity.
func (_u *ResearchTaskUpdateOne) AddKnowledgeNodes(v ...*KnowledgeNode) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKnowledgeNodeIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *ResearchTaskUpdateOne) AddInsightIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *ResearchTaskUpdateOne) AddInsights(v ...*Insight) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddSpikyPovIDs adds the "spiky_povs" edge to the SpikyPOV entity by IDs.
func (_u *ResearchTaskUpdateOne) AddSpikyPovIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddSpikyPovIDs(ids...)
	return _u
}

// AddSpikyPovs adds the "spiky_povs" edges to the SpikyPOV entity.
func (_u *ResearchTaskUpdateOne) AddSpikyPovs(v ...*SpikyPOV) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpikyPovIDs(ids...)
}

// AddReportSectionIDs adds the "report_sections" edge to the ReportSection entity by IDs.
func (_u *ResearchTaskUpdateOne) AddReportSectionIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddReportSectionIDs(ids...)
	return _u
}

// AddReportSections adds the "report_sections" edges to the ReportSection entity.
func (_u *ResearchTaskUpdateOne) AddReportSections(v ...*ReportSection) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportSectionIDs(ids...)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *ResearchTaskUpdateOne) AddArtifactIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *ResearchTaskUpdateOne) AddArtifacts(v ...*Artifact) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *ResearchTaskUpdateOne) AddEventIDs(ids ...int) *ResearchTaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *ResearchTaskUpdateOne) AddEvents(v ...*Event) *ResearchTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the ResearchTaskMutation object of the builder.
func (_u *ResearchTaskUpdateOne) Mutation() *ResearchTaskMutation {
	return _u.mutation
}

// ClearProject clears the "project" edge to the Project entity.
func (_u *ResearchTaskUpdateOne) ClearProject() *ResearchTaskUpdateOne {
	_u.mutation.ClearProject()
	return _u
}

// ClearOperations clears all "operations" edges to the Operation entity.
func (_u *ResearchTaskUpdateOne) ClearOperations() *ResearchTaskUpdateOne {
	_u.mutation.ClearOperations()
	return _u
}

// RemoveOperationIDs removes the "operations" edge to Operation entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveOperationIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveOperationIDs(ids...)
	return _u
}

// RemoveOperations removes "operations" edges to Operation entities.
func (_u *ResearchTaskUpdateOne) RemoveOperations(v ...*Operation) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOperationIDs(ids...)
}

// ClearSourceSummaries clears all "source_summaries" edges to the SourceSummary entity.
func (_u *ResearchTaskUpdateOne) ClearSourceSummaries() *ResearchTaskUpdateOne {
	_u.mutation.ClearSourceSummaries()
	return _u
}

// RemoveSourceSummaryIDs removes the "source_summaries" edge to SourceSummary entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveSourceSummaryIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveSourceSummaryIDs(ids...)
	return _u
}

// RemoveSourceSummaries removes "source_summaries" edges to SourceSummary entities.
func (_u *ResearchTaskUpdateOne) RemoveSourceSummaries(v ...*SourceSummary) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceSummaryIDs(ids...)
}

// ClearKnowledgeNodes clears all "knowledge_nodes" edges to the KnowledgeNode entity.
func (_u *ResearchTaskUpdateOne) ClearKnowledgeNodes() *ResearchTaskUpdateOne {
	_u.mutation.ClearKnowledgeNodes()
	return _u
}

// RemoveKnowledgeNodeIDs removes the "knowledge_nodes" edge to KnowledgeNode entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveKnowledgeNodeIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveKnowledgeNodeIDs(ids...)
	return _u
}

// RemoveKnowledgeNodes removes "knowledge_nodes" edges to KnowledgeNode entities.
func (_u *ResearchTaskUpdateOne) RemoveKnowledgeNodes(v ...*KnowledgeNode) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKnowledgeNodeIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *ResearchTaskUpdateOne) ClearInsights() *ResearchTaskUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveInsightIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *ResearchTaskUpdateOne) RemoveInsights(v ...*Insight) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearSpikyPovs clears all "spiky_povs" edges to the SpikyPOV entity.
func (_u *ResearchTaskUpdateOne) ClearSpikyPovs() *ResearchTaskUpdateOne {
	_u.mutation.ClearSpikyPovs()
	return _u
}

// RemoveSpikyPovIDs removes the "spiky_povs" edge to SpikyPOV entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveSpikyPovIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveSpikyPovIDs(ids...)
	return _u
}

// RemoveSpikyPovs removes "spiky_povs" edges to SpikyPOV entities.
func (_u *ResearchTaskUpdateOne) RemoveSpikyPovs(v ...*SpikyPOV) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpikyPovIDs(ids...)
}

// ClearReportSections clears all "report_sections" edges to the ReportSection entity.
func (_u *ResearchTaskUpdateOne) ClearReportSections() *ResearchTaskUpdateOne {
	_u.mutation.ClearReportSections()
	return _u
}

// RemoveReportSectionIDs removes the "report_sections" edge to ReportSection entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveReportSectionIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveReportSectionIDs(ids...)
	return _u
}

// RemoveReportSections removes "report_sections" edges to ReportSection entities.
func (_u *ResearchTaskUpdateOne) RemoveReportSections(v ...*ReportSection) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportSectionIDs(ids...)
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *ResearchTaskUpdateOne) ClearArtifacts() *ResearchTaskUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveArtifactIDs(ids ...string) *ResearchTaskUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *ResearchTaskUpdateOne) RemoveArtifacts(v ...*Artifact) *ResearchTaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *ResearchTaskUpdateOne) ClearEvents() *ResearchTaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *ResearchTaskUpdateOne) RemoveEventIDs(ids ...int) *ResearchTaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *ResearchTaskUpdateOne) RemoveEvents(v ...*Event) *ResearchTaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the ResearchTaskUpdate builder.
func (_u *ResearchTaskUpdateOne) Where(ps ...predicate.ResearchTask) *ResearchTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResearchTaskUpdateOne) Select(field string, fields ...string) *ResearchTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResearchTask entity.
func (_u *ResearchTaskUpdateOne) Save(ctx context.Context) (*ResearchTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) SaveX(ctx context.Context) *ResearchTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResearchTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResearchTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResearchTaskUpdateOne) check() error {
	if v, ok := _u.mutation.ResearchQuery(); ok {
		if err := researchtask.ResearchQueryValidator(v); err != nil {
			return &ValidationError{Name: "research_query", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_query": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResearchType(); ok {
		if err := researchtask.ResearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "research_type", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.research_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := researchtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ResearchTask.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ResearchTaskUpdateOne) sqlSave(ctx context.Context) (_node *ResearchTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(researchtask.Table, researchtask.Columns, sqlgraph.NewFieldSpec(researchtask.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResearchTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, researchtask.FieldID)
		for _, f := range fields {
			if !researchtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != researchtask.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(researchtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchQuery(); ok {
		_spec.SetField(researchtask.FieldResearchQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResearchType(); ok {
		_spec.SetField(researchtask.FieldResearchType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(researchtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(researchtask.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(researchtask.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AggregationConfig(); ok {
		_spec.SetField(researchtask.FieldAggregationConfig, field.TypeJSON, value)
	}
	if _u.mutation.AggregationConfigCleared() {
		_spec.ClearField(researchtask.FieldAggregationConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ReportMarkdown(); ok {
		_spec.SetField(researchtask.FieldReportMarkdown, field.TypeString, value)
	}
	if _u.mutation.ReportMarkdownCleared() {
		_spec.ClearField(researchtask.FieldReportMarkdown, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(researchtask.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(researchtask.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(researchtask.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(researchtask.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(researchtask.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(researchtask.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(researchtask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(researchtask.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(researchtask.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(researchtask.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(researchtask.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(researchtask.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(researchtask.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(researchtask.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOperationsIDs(); len(nodes) > 0 && !_u.mutation.OperationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OperationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourceSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourceSummariesIDs(); len(nodes) > 0 && !_u.mutation.SourceSummariesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourceSummariesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.KnowledgeNodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKnowledgeNodesIDs(); len(nodes) > 0 && !_u.mutation.KnowledgeNodesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KnowledgeNodesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpikyPovsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpikyPovsIDs(); len(nodes) > 0 && !_u.mutation.SpikyPovsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpikyPovsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportSectionsIDs(); len(nodes) > 0 && !_u.mutation.ReportSectionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportSectionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ResearchTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{researchtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
