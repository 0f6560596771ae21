// Code generated by ent, DO NOT EDIT.

package researchtask

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the researchtask type in the database.
	Label = "research_task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldResearchQuery holds the string denoting the research_query field in the database.
	FieldResearchQuery = "research_query"
	// FieldResearchType holds the string denoting the research_type field in the database.
	FieldResearchType = "research_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAggregationConfig holds the string denoting the aggregation_config field in the database.
	FieldAggregationConfig = "aggregation_config"
	// FieldReportMarkdown holds the string denoting the report_markdown field in the database.
	FieldReportMarkdown = "report_markdown"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeOperations holds the string denoting the operations edge name in mutations.
	EdgeOperations = "operations"
	// EdgeSourceSummaries holds the string denoting the source_summaries edge name in mutations.
	EdgeSourceSummaries = "source_summaries"
	// EdgeKnowledgeNodes holds the string denoting the knowledge_nodes edge name in mutations.
	EdgeKnowledgeNodes = "knowledge_nodes"
	// EdgeInsights holds the string denoting the insights edge name in mutations.
	EdgeInsights = "insights"
	// EdgeSpikyPovs holds the string denoting the spiky_povs edge name in mutations.
	EdgeSpikyPovs = "spiky_povs"
	// EdgeReportSections holds the string denoting the report_sections edge name in mutations.
	EdgeReportSections = "report_sections"
	// EdgeArtifacts holds the string denoting the artifacts edge name in mutations.
	EdgeArtifacts = "artifacts"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// OperationFieldID holds the string denoting the ID field of the Operation.
	OperationFieldID = "operation_id"
	// SourceSummaryFieldID holds the string denoting the ID field of the SourceSummary.
	SourceSummaryFieldID = "summary_id"
	// KnowledgeNodeFieldID holds the string denoting the ID field of the KnowledgeNode.
	KnowledgeNodeFieldID = "node_id"
	// InsightFieldID holds the string denoting the ID field of the Insight.
	InsightFieldID = "insight_id"
	// SpikyPOVFieldID holds the string denoting the ID field of the SpikyPOV.
	SpikyPOVFieldID = "pov_id"
	// ReportSectionFieldID holds the string denoting the ID field of the ReportSection.
	ReportSectionFieldID = "section_id"
	// ArtifactFieldID holds the string denoting the ID field of the Artifact.
	ArtifactFieldID = "artifact_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the researchtask in the database.
	Table = "research_tasks"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "research_tasks"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// OperationsTable is the table that holds the operations relation/edge.
	OperationsTable = "operations"
	// OperationsInverseTable is the table name for the Operation entity.
	// It exists in this package in order to avoid circular dependency with the "operation" package.
	OperationsInverseTable = "operations"
	// OperationsColumn is the table column denoting the operations relation/edge.
	OperationsColumn = "task_id"
	// SourceSummariesTable is the table that holds the source_summaries relation/edge.
	SourceSummariesTable = "source_summaries"
	// SourceSummariesInverseTable is the table name for the SourceSummary entity.
	// It exists in this package in order to avoid circular dependency with the "sourcesummary" package.
	SourceSummariesInverseTable = "source_summaries"
	// SourceSummariesColumn is the table column denoting the source_summaries relation/edge.
	SourceSummariesColumn = "task_id"
	// KnowledgeNodesTable is the table that holds the knowledge_nodes relation/edge.
	KnowledgeNodesTable = "knowledge_nodes"
	// KnowledgeNodesInverseTable is the table name for the KnowledgeNode entity.
	// It exists in this package in order to avoid circular dependency with the "knowledgenode" package.
	KnowledgeNodesInverseTable = "knowledge_nodes"
	// KnowledgeNodesColumn is the table column denoting the knowledge_nodes relation/edge.
	KnowledgeNodesColumn = "task_id"
	// InsightsTable is the table that holds the insights relation/edge.
	InsightsTable = "insights"
	// InsightsInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightsInverseTable = "insights"
	// InsightsColumn is the table column denoting the insights relation/edge.
	InsightsColumn = "task_id"
	// SpikyPovsTable is the table that holds the spiky_povs relation/edge.
	SpikyPovsTable = "spiky_po_vs"
	// SpikyPovsInverseTable is the table name for the SpikyPOV entity.
	// It exists in this package in order to avoid circular dependency with the "spikypov" package.
	SpikyPovsInverseTable = "spiky_po_vs"
	// SpikyPovsColumn is the table column denoting the spiky_povs relation/edge.
	SpikyPovsColumn = "task_id"
	// ReportSectionsTable is the table that holds the report_sections relation/edge.
	ReportSectionsTable = "report_sections"
	// ReportSectionsInverseTable is the table name for the ReportSection entity.
	// It exists in this package in order to avoid circular dependency with the "reportsection" package.
	ReportSectionsInverseTable = "report_sections"
	// ReportSectionsColumn is the table column denoting the report_sections relation/edge.
	ReportSectionsColumn = "task_id"
	// ArtifactsTable is the table that holds the artifacts relation/edge.
	ArtifactsTable = "artifacts"
	// ArtifactsInverseTable is the table name for the Artifact entity.
	// It exists in this package in order to avoid circular dependency with the "artifact" package.
	ArtifactsInverseTable = "artifacts"
	// ArtifactsColumn is the table column denoting the artifacts relation/edge.
	ArtifactsColumn = "task_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "task_id"
)

// Columns holds all SQL columns for researchtask fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldResearchQuery,
	FieldResearchType,
	FieldStatus,
	FieldProjectID,
	FieldUserID,
	FieldAggregationConfig,
	FieldReportMarkdown,
	FieldErrorMessage,
	FieldErrorKind,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ResearchQueryValidator is a validator for the "research_query" field. It is called by the builders before save.
	ResearchQueryValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ResearchType defines the type for the "research_type" enum field.
type ResearchType string

// ResearchType values.
const (
	ResearchTypeAnalyticalReport ResearchType = "analytical_report"
	ResearchTypeDataAggregation  ResearchType = "data_aggregation"
)

func (rt ResearchType) String() string {
	return string(rt)
}

// ResearchTypeValidator is a validator for the "research_type" field enum values. It is called by the builders before save.
func ResearchTypeValidator(rt ResearchType) error {
	switch rt {
	case ResearchTypeAnalyticalReport, ResearchTypeDataAggregation:
		return nil
	default:
		return fmt.Errorf("researchtask: invalid enum value for research_type field: %q", rt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending            Status = "pending"
	StatusRunning            Status = "running"
	StatusPlanning           Status = "planning"
	StatusSearching          Status = "searching"
	StatusSummarizing        Status = "summarizing"
	StatusBuildingKnowledge  Status = "building_knowledge"
	StatusGeneratingInsights Status = "generating_insights"
	StatusAnalyzingPovs      Status = "analyzing_povs"
	StatusSynthesizing       Status = "synthesizing"
	StatusCompleted          Status = "completed"
	StatusFailed             Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusPlanning, StatusSearching, StatusSummarizing, StatusBuildingKnowledge, StatusGeneratingInsights, StatusAnalyzingPovs, StatusSynthesizing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("researchtask: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ResearchTask queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByResearchQuery orders the results by the research_query field.
func ByResearchQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchQuery, opts...).ToFunc()
}

// ByResearchType orders the results by the research_type field.
func ByResearchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResearchType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByReportMarkdown orders the results by the report_markdown field.
func ByReportMarkdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportMarkdown, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByOperationsCount orders the results by operations count.
func ByOperationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOperationsStep(), opts...)
	}
}

// ByOperations orders the results by operations terms.
func ByOperations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOperationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySourceSummariesCount orders the results by source_summaries count.
func BySourceSummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSourceSummariesStep(), opts...)
	}
}

// BySourceSummaries orders the results by source_summaries terms.
func BySourceSummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByKnowledgeNodesCount orders the results by knowledge_nodes count.
func ByKnowledgeNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKnowledgeNodesStep(), opts...)
	}
}

// ByKnowledgeNodes orders the results by knowledge_nodes terms.
func ByKnowledgeNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKnowledgeNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInsightsCount orders the results by insights count.
func ByInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInsightsStep(), opts...)
	}
}

// ByInsights orders the results by insights terms.
func ByInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySpikyPovsCount orders the results by spiky_povs count.
func BySpikyPovsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpikyPovsStep(), opts...)
	}
}

// BySpikyPovs orders the results by spiky_povs terms.
func BySpikyPovs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpikyPovsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByReportSectionsCount orders the results by report_sections count.
func ByReportSectionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newReportSectionsStep(), opts...)
	}
}

// ByReportSections orders the results by report_sections terms.
func ByReportSections(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReportSectionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByArtifactsCount orders the results by artifacts count.
func ByArtifactsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArtifactsStep(), opts...)
	}
}

// ByArtifacts orders the results by artifacts terms.
func ByArtifacts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArtifactsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newOperationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OperationsInverseTable, OperationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OperationsTable, OperationsColumn),
	)
}
func newSourceSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceSummariesInverseTable, SourceSummaryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SourceSummariesTable, SourceSummariesColumn),
	)
}
func newKnowledgeNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KnowledgeNodesInverseTable, KnowledgeNodeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KnowledgeNodesTable, KnowledgeNodesColumn),
	)
}
func newInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightsInverseTable, InsightFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
	)
}
func newSpikyPovsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpikyPovsInverseTable, SpikyPOVFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpikyPovsTable, SpikyPovsColumn),
	)
}
func newReportSectionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReportSectionsInverseTable, ReportSectionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ReportSectionsTable, ReportSectionsColumn),
	)
}
func newArtifactsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArtifactsInverseTable, ArtifactFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArtifactsTable, ArtifactsColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
