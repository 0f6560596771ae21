// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trilogy-group/nexus-agents/ent/project"
	"github.com/trilogy-group/nexus-agents/ent/researchtask"
)

// ResearchTask is the model entity for the ResearchTask schema.
type ResearchTask struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Original natural-language request (full-text searchable)
	ResearchQuery string `json:"research_query,omitempty"`
	// ResearchType holds the value of the "research_type" field.
	ResearchType researchtask.ResearchType `json:"research_type,omitempty"`
	// Status holds the value of the "status" field.
	Status researchtask.Status `json:"status,omitempty"`
	// Optional grouping for cross-task consolidation
	ProjectID *string `json:"project_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// Present iff research_type=data_aggregation
	AggregationConfig map[string]interface{} `json:"aggregation_config,omitempty"`
	// Final analytical report (full-text searchable)
	ReportMarkdown *string `json:"report_markdown,omitempty"`
	// First fatal error when status=failed
	ErrorMessage *string `json:"error_message,omitempty"`
	// Error taxonomy kind for monitoring consumers
	ErrorKind *string `json:"error_kind,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResearchTaskQuery when eager-loading is set.
	Edges        ResearchTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResearchTaskEdges holds the relations/edges for other nodes in the graph.
type ResearchTaskEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Operations holds the value of the operations edge.
	Operations []*Operation `json:"operations,omitempty"`
	// SourceSummaries holds the value of the source_summaries edge.
	SourceSummaries []*SourceSummary `json:"source_summaries,omitempty"`
	// KnowledgeNodes holds the value of the knowledge_nodes edge.
	KnowledgeNodes []*KnowledgeNode `json:"knowledge_nodes,omitempty"`
	// Insights holds the value of the insights edge.
	Insights []*Insight `json:"insights,omitempty"`
	// SpikyPovs holds the value of the spiky_povs edge.
	SpikyPovs []*SpikyPOV `json:"spiky_povs,omitempty"`
	// ReportSections holds the value of the report_sections edge.
	ReportSections []*ReportSection `json:"report_sections,omitempty"`
	// Artifacts holds the value of the artifacts edge.
	Artifacts []*Artifact `json:"artifacts,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [9]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResearchTaskEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// OperationsOrErr returns the Operations value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) OperationsOrErr() ([]*Operation, error) {
	if e.loadedTypes[1] {
		return e.Operations, nil
	}
	return nil, &NotLoadedError{edge: "operations"}
}

// SourceSummariesOrErr returns the SourceSummaries value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) SourceSummariesOrErr() ([]*SourceSummary, error) {
	if e.loadedTypes[2] {
		return e.SourceSummaries, nil
	}
	return nil, &NotLoadedError{edge: "source_summaries"}
}

// KnowledgeNodesOrErr returns the KnowledgeNodes value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) KnowledgeNodesOrErr() ([]*KnowledgeNode, error) {
	if e.loadedTypes[3] {
		return e.KnowledgeNodes, nil
	}
	return nil, &NotLoadedError{edge: "knowledge_nodes"}
}

// InsightsOrErr returns the Insights value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) InsightsOrErr() ([]*Insight, error) {
	if e.loadedTypes[4] {
		return e.Insights, nil
	}
	return nil, &NotLoadedError{edge: "insights"}
}

// SpikyPovsOrErr returns the SpikyPovs value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) SpikyPovsOrErr() ([]*SpikyPOV, error) {
	if e.loadedTypes[5] {
		return e.SpikyPovs, nil
	}
	return nil, &NotLoadedError{edge: "spiky_povs"}
}

// ReportSectionsOrErr returns the ReportSections value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) ReportSectionsOrErr() ([]*ReportSection, error) {
	if e.loadedTypes[6] {
		return e.ReportSections, nil
	}
	return nil, &NotLoadedError{edge: "report_sections"}
}

// ArtifactsOrErr returns the Artifacts value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) ArtifactsOrErr() ([]*Artifact, error) {
	if e.loadedTypes[7] {
		return e.Artifacts, nil
	}
	return nil, &NotLoadedError{edge: "artifacts"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e ResearchTaskEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[8] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResearchTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldAggregationConfig:
			values[i] = new([]byte)
		case researchtask.FieldID, researchtask.FieldTitle, researchtask.FieldResearchQuery, researchtask.FieldResearchType, researchtask.FieldStatus, researchtask.FieldProjectID, researchtask.FieldUserID, researchtask.FieldReportMarkdown, researchtask.FieldErrorMessage, researchtask.FieldErrorKind, researchtask.FieldPodID:
			values[i] = new(sql.NullString)
		case researchtask.FieldCreatedAt, researchtask.FieldStartedAt, researchtask.FieldCompletedAt, researchtask.FieldLastHeartbeatAt, researchtask.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResearchTask fields.
func (_m *ResearchTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case researchtask.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case researchtask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case researchtask.FieldResearchQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_query", values[i])
			} else if value.Valid {
				_m.ResearchQuery = value.String
			}
		case researchtask.FieldResearchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field research_type", values[i])
			} else if value.Valid {
				_m.ResearchType = researchtask.ResearchType(value.String)
			}
		case researchtask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = researchtask.Status(value.String)
			}
		case researchtask.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case researchtask.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case researchtask.FieldAggregationConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field aggregation_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AggregationConfig); err != nil {
					return fmt.Errorf("unmarshal field aggregation_config: %w", err)
				}
			}
		case researchtask.FieldReportMarkdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_markdown", values[i])
			} else if value.Valid {
				_m.ReportMarkdown = new(string)
				*_m.ReportMarkdown = value.String
			}
		case researchtask.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case researchtask.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case researchtask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case researchtask.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case researchtask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case researchtask.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case researchtask.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case researchtask.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResearchTask.
// This includes values selected through modifiers, order, etc.
func (_m *ResearchTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryProject() *ProjectQuery {
	return NewResearchTaskClient(_m.config).QueryProject(_m)
}

// QueryOperations queries the "operations" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryOperations() *OperationQuery {
	return NewResearchTaskClient(_m.config).QueryOperations(_m)
}

// QuerySourceSummaries queries the "source_summaries" edge of the ResearchTask entity.
func (_m *ResearchTask) QuerySourceSummaries() *SourceSummaryQuery {
	return NewResearchTaskClient(_m.config).QuerySourceSummaries(_m)
}

// QueryKnowledgeNodes queries the "knowledge_nodes" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryKnowledgeNodes() *KnowledgeNodeQuery {
	return NewResearchTaskClient(_m.config).QueryKnowledgeNodes(_m)
}

// QueryInsights queries the "insights" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryInsights() *InsightQuery {
	return NewResearchTaskClient(_m.config).QueryInsights(_m)
}

// QuerySpikyPovs queries the "spiky_povs" edge of the ResearchTask entity.
func (_m *ResearchTask) QuerySpikyPovs() *SpikyPOVQuery {
	return NewResearchTaskClient(_m.config).QuerySpikyPovs(_m)
}

// QueryReportSections queries the "report_sections" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryReportSections() *ReportSectionQuery {
	return NewResearchTaskClient(_m.config).QueryReportSections(_m)
}

// QueryArtifacts queries the "artifacts" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryArtifacts() *ArtifactQuery {
	return NewResearchTaskClient(_m.config).QueryArtifacts(_m)
}

// QueryEvents queries the "events" edge of the ResearchTask entity.
func (_m *ResearchTask) QueryEvents() *EventQuery {
	return NewResearchTaskClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this ResearchTask.
// Note that you need to call ResearchTask.Unwrap() before calling this method if this ResearchTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResearchTask) Update() *ResearchTaskUpdateOne {
	return NewResearchTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResearchTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResearchTask) Unwrap() *ResearchTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResearchTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResearchTask) String() string {
	var builder strings.Builder
	builder.WriteString("ResearchTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("research_query=")
	builder.WriteString(_m.ResearchQuery)
	builder.WriteString(", ")
	builder.WriteString("research_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResearchType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("aggregation_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.AggregationConfig))
	builder.WriteString(", ")
	if v := _m.ReportMarkdown; v != nil {
		builder.WriteString("report_markdown=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ResearchTasks is a parsable slice of ResearchTask.
type ResearchTasks []*ResearchTask
