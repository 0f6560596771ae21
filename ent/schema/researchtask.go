package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResearchTask holds the schema definition for the ResearchTask entity.
// One row per research request; owns all derived artifacts via cascading edges.
type ResearchTask struct {
	ent.Schema
}

// Fields of the ResearchTask.
func (ResearchTask) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("research_query").
			NotEmpty().
			Comment("Original natural-language request (full-text searchable)"),
		field.Enum("research_type").
			Values("analytical_report", "data_aggregation"),
		field.Enum("status").
			Values("pending", "running", "planning", "searching", "summarizing",
				"building_knowledge", "generating_insights", "analyzing_povs",
				"synthesizing", "completed", "failed").
			Default("pending"),
		field.String("project_id").
			Optional().
			Nillable().
			Comment("Optional grouping for cross-task consolidation"),
		field.String("user_id").
			Optional().
			Nillable(),
		field.JSON("aggregation_config", map[string]interface{}{}).
			Optional().
			Comment("Present iff research_type=data_aggregation"),
		field.Text("report_markdown").
			Optional().
			Nillable().
			Comment("Final analytical report (full-text searchable)"),
		field.String("error_message").
			Optional().
			Nillable().
			Comment("First fatal error when status=failed"),
		field.String("error_kind").
			Optional().
			Nillable().
			Comment("Error taxonomy kind for monitoring consumers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the ResearchTask.
func (ResearchTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique(),
		edge.To("operations", Operation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("source_summaries", SourceSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("knowledge_nodes", KnowledgeNode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("insights", Insight.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("spiky_povs", SpikyPOV.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("report_sections", ReportSection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ResearchTask.
func (ResearchTask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("research_type"),
		index.Fields("project_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}

// Annotations for PostgreSQL-specific features.
// GIN indexes for full-text search are created via migration hooks
// in pkg/database/migrations.go
func (ResearchTask) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
