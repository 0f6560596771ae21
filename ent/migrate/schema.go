// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AggregatedEntitiesColumns holds the columns for the "aggregated_entities" table.
	AggregatedEntitiesColumns = []*schema.Column{
		{Name: "entity_id", Type: field.TypeString, Unique: true},
		{Name: "scope_id", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString},
		{Name: "unique_identifier", Type: field.TypeString, Nullable: true},
		{Name: "consolidated_attributes", Type: field.TypeJSON},
		{Name: "data_lineage", Type: field.TypeJSON},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "source_tasks", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// AggregatedEntitiesTable holds the schema information for the "aggregated_entities" table.
	AggregatedEntitiesTable = &schema.Table{
		Name:       "aggregated_entities",
		Columns:    AggregatedEntitiesColumns,
		PrimaryKey: []*schema.Column{AggregatedEntitiesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "aggregatedentity_scope_id_entity_type",
				Unique:  false,
				Columns: []*schema.Column{AggregatedEntitiesColumns[1], AggregatedEntitiesColumns[2]},
			},
			{
				Name:    "aggregatedentity_scope_id_entity_type_normalized_name",
				Unique:  false,
				Columns: []*schema.Column{AggregatedEntitiesColumns[1], AggregatedEntitiesColumns[2], AggregatedEntitiesColumns[4]},
			},
		},
	}
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "path", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "checksum", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_research_tasks_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[7]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_task_id_kind",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[7], ArtifactsColumns[1]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_research_tasks_events",
				Columns:    []*schema.Column{EventsColumns[5]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[4]},
			},
			{
				Name:    "event_task_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[5]},
			},
		},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "task_id", Type: field.TypeString},
		{Name: "evidence_type", Type: field.TypeString},
		{Name: "evidence_data", Type: field.TypeJSON},
		{Name: "source_url", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "operation_id", Type: field.TypeString},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidences_operations_evidence",
				Columns:    []*schema.Column{EvidencesColumns[8]},
				RefColumns: []*schema.Column{OperationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_operation_id",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[8]},
			},
			{
				Name:    "evidence_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[7]},
			},
		},
	}
	// InsightsColumns holds the columns for the "insights" table.
	InsightsColumns = []*schema.Column{
		{Name: "insight_id", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "insight_text", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence_score", Type: field.TypeFloat64},
		{Name: "source_ids", Type: field.TypeJSON},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// InsightsTable holds the schema information for the "insights" table.
	InsightsTable = &schema.Table{
		Name:       "insights",
		Columns:    InsightsColumns,
		PrimaryKey: []*schema.Column{InsightsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "insights_research_tasks_insights",
				Columns:    []*schema.Column{InsightsColumns[7]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "insight_task_id_position",
				Unique:  false,
				Columns: []*schema.Column{InsightsColumns[7], InsightsColumns[5]},
			},
		},
	}
	// KnowledgeNodesColumns holds the columns for the "knowledge_nodes" table.
	KnowledgeNodesColumns = []*schema.Column{
		{Name: "node_id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString},
		{Name: "subcategory", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "dok_level", Type: field.TypeInt, Default: 2},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// KnowledgeNodesTable holds the schema information for the "knowledge_nodes" table.
	KnowledgeNodesTable = &schema.Table{
		Name:       "knowledge_nodes",
		Columns:    KnowledgeNodesColumns,
		PrimaryKey: []*schema.Column{KnowledgeNodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_nodes_research_tasks_knowledge_nodes",
				Columns:    []*schema.Column{KnowledgeNodesColumns[8]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgenode_task_id_position",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeNodesColumns[8], KnowledgeNodesColumns[6]},
			},
			{
				Name:    "knowledgenode_parent_id",
				Unique:  false,
				Columns: []*schema.Column{KnowledgeNodesColumns[1]},
			},
		},
	}
	// KnowledgeNodeSourcesColumns holds the columns for the "knowledge_node_sources" table.
	KnowledgeNodeSourcesColumns = []*schema.Column{
		{Name: "link_id", Type: field.TypeString, Unique: true},
		{Name: "relevance_score", Type: field.TypeFloat64, Default: 1},
		{Name: "node_id", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
	}
	// KnowledgeNodeSourcesTable holds the schema information for the "knowledge_node_sources" table.
	KnowledgeNodeSourcesTable = &schema.Table{
		Name:       "knowledge_node_sources",
		Columns:    KnowledgeNodeSourcesColumns,
		PrimaryKey: []*schema.Column{KnowledgeNodeSourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "knowledge_node_sources_knowledge_nodes_source_links",
				Columns:    []*schema.Column{KnowledgeNodeSourcesColumns[2]},
				RefColumns: []*schema.Column{KnowledgeNodesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "knowledge_node_sources_sources_node_links",
				Columns:    []*schema.Column{KnowledgeNodeSourcesColumns[3]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knowledgenodesource_node_id_source_id",
				Unique:  true,
				Columns: []*schema.Column{KnowledgeNodeSourcesColumns[2], KnowledgeNodeSourcesColumns[3]},
			},
		},
	}
	// OperationsColumns holds the columns for the "operations" table.
	OperationsColumns = []*schema.Column{
		{Name: "operation_id", Type: field.TypeString, Unique: true},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "operation_type", Type: field.TypeString},
		{Name: "queue_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "waiting_deps", "dispatched", "in_flight", "retrying", "completed", "failed", "cancelled"}, Default: "queued"},
		{Name: "agent_type", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "input_data", Type: field.TypeJSON, Nullable: true},
		{Name: "output_data", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "worker_id", Type: field.TypeString, Nullable: true},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// OperationsTable holds the schema information for the "operations" table.
	OperationsTable = &schema.Table{
		Name:       "operations",
		Columns:    OperationsColumns,
		PrimaryKey: []*schema.Column{OperationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "operations_research_tasks_operations",
				Columns:    []*schema.Column{OperationsColumns[17]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "operation_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OperationsColumns[17], OperationsColumns[16]},
			},
			{
				Name:    "operation_task_id_status",
				Unique:  false,
				Columns: []*schema.Column{OperationsColumns[17], OperationsColumns[4]},
			},
			{
				Name:    "operation_operation_type",
				Unique:  false,
				Columns: []*schema.Column{OperationsColumns[2]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ReportSectionsColumns holds the columns for the "report_sections" table.
	ReportSectionsColumns = []*schema.Column{
		{Name: "section_id", Type: field.TypeString, Unique: true},
		{Name: "section", Type: field.TypeEnum, Enums: []string{"key_findings", "evidence_analysis", "causal_relationships", "alternative_interpretations"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "source_ids", Type: field.TypeJSON},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "task_id", Type: field.TypeString},
	}
	// ReportSectionsTable holds the schema information for the "report_sections" table.
	ReportSectionsTable = &schema.Table{
		Name:       "report_sections",
		Columns:    ReportSectionsColumns,
		PrimaryKey: []*schema.Column{ReportSectionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "report_sections_research_tasks_report_sections",
				Columns:    []*schema.Column{ReportSectionsColumns[5]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reportsection_task_id_position",
				Unique:  false,
				Columns: []*schema.Column{ReportSectionsColumns[5], ReportSectionsColumns[4]},
			},
		},
	}
	// ResearchTasksColumns holds the columns for the "research_tasks" table.
	ResearchTasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "research_query", Type: field.TypeString, Size: 2147483647},
		{Name: "research_type", Type: field.TypeEnum, Enums: []string{"analytical_report", "data_aggregation"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "planning", "searching", "summarizing", "building_knowledge", "generating_insights", "analyzing_povs", "synthesizing", "completed", "failed"}, Default: "pending"},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "aggregation_config", Type: field.TypeJSON, Nullable: true},
		{Name: "report_markdown", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString, Nullable: true},
	}
	// ResearchTasksTable holds the schema information for the "research_tasks" table.
	ResearchTasksTable = &schema.Table{
		Name:       "research_tasks",
		Columns:    ResearchTasksColumns,
		PrimaryKey: []*schema.Column{ResearchTasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "research_tasks_projects_tasks",
				Columns:    []*schema.Column{ResearchTasksColumns[16]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "researchtask_status",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[4]},
			},
			{
				Name:    "researchtask_research_type",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[3]},
			},
			{
				Name:    "researchtask_project_id",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[16]},
			},
			{
				Name:    "researchtask_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[4], ResearchTasksColumns[10]},
			},
			{
				Name:    "researchtask_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[4], ResearchTasksColumns[14]},
			},
			{
				Name:    "researchtask_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{ResearchTasksColumns[15]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "provider", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "reliability_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "observation_count", Type: field.TypeInt, Default: 1},
		{Name: "accessed_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "source_url_content_hash",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[1], SourcesColumns[5]},
			},
			{
				Name:    "source_provider",
				Unique:  false,
				Columns: []*schema.Column{SourcesColumns[4]},
			},
		},
	}
	// SourceSummariesColumns holds the columns for the "source_summaries" table.
	SourceSummariesColumns = []*schema.Column{
		{Name: "summary_id", Type: field.TypeString, Unique: true},
		{Name: "subtopic", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "dok1_facts", Type: field.TypeJSON},
		{Name: "dok_level", Type: field.TypeInt, Default: 1},
		{Name: "superseded_by", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
		{Name: "source_id", Type: field.TypeString},
	}
	// SourceSummariesTable holds the schema information for the "source_summaries" table.
	SourceSummariesTable = &schema.Table{
		Name:       "source_summaries",
		Columns:    SourceSummariesColumns,
		PrimaryKey: []*schema.Column{SourceSummariesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_summaries_research_tasks_source_summaries",
				Columns:    []*schema.Column{SourceSummariesColumns[7]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "source_summaries_sources_summaries",
				Columns:    []*schema.Column{SourceSummariesColumns[8]},
				RefColumns: []*schema.Column{SourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourcesummary_task_id_source_id_subtopic",
				Unique:  true,
				Columns: []*schema.Column{SourceSummariesColumns[7], SourceSummariesColumns[8], SourceSummariesColumns[1]},
			},
			{
				Name:    "sourcesummary_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SourceSummariesColumns[7], SourceSummariesColumns[6]},
			},
		},
	}
	// SpikyPoVsColumns holds the columns for the "spiky_po_vs" table.
	SpikyPoVsColumns = []*schema.Column{
		{Name: "pov_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"truth", "myth"}},
		{Name: "statement", Type: field.TypeString, Size: 2147483647},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "insight_ids", Type: field.TypeJSON},
		{Name: "position", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// SpikyPoVsTable holds the schema information for the "spiky_po_vs" table.
	SpikyPoVsTable = &schema.Table{
		Name:       "spiky_po_vs",
		Columns:    SpikyPoVsColumns,
		PrimaryKey: []*schema.Column{SpikyPoVsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spiky_po_vs_research_tasks_spiky_povs",
				Columns:    []*schema.Column{SpikyPoVsColumns[7]},
				RefColumns: []*schema.Column{ResearchTasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "spikypov_task_id_kind_position",
				Unique:  false,
				Columns: []*schema.Column{SpikyPoVsColumns[7], SpikyPoVsColumns[1], SpikyPoVsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AggregatedEntitiesTable,
		ArtifactsTable,
		EventsTable,
		EvidencesTable,
		InsightsTable,
		KnowledgeNodesTable,
		KnowledgeNodeSourcesTable,
		OperationsTable,
		ProjectsTable,
		ReportSectionsTable,
		ResearchTasksTable,
		SourcesTable,
		SourceSummariesTable,
		SpikyPoVsTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	EventsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	EvidencesTable.ForeignKeys[0].RefTable = OperationsTable
	InsightsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	KnowledgeNodesTable.ForeignKeys[0].RefTable = ResearchTasksTable
	KnowledgeNodeSourcesTable.ForeignKeys[0].RefTable = KnowledgeNodesTable
	KnowledgeNodeSourcesTable.ForeignKeys[1].RefTable = SourcesTable
	OperationsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	ReportSectionsTable.ForeignKeys[0].RefTable = ResearchTasksTable
	ResearchTasksTable.ForeignKeys[0].RefTable = ProjectsTable
	SourceSummariesTable.ForeignKeys[0].RefTable = ResearchTasksTable
	SourceSummariesTable.ForeignKeys[1].RefTable = SourcesTable
	SpikyPoVsTable.ForeignKeys[0].RefTable = ResearchTasksTable
}
