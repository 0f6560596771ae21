package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportSection maps a section of the synthesized Markdown report to the
// sources it cites.
type ReportSection struct {
	ent.Schema
}

// Fields of the ReportSection.
func (ReportSection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("section_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("section").
			Values("key_findings", "evidence_analysis", "causal_relationships",
				"alternative_interpretations"),
		field.Text("content"),
		field.JSON("source_ids", []string{}),
		field.Int("position").
			Default(0),
	}
}

// Edges of the ReportSection.
func (ReportSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("report_sections").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ReportSection.
func (ReportSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "position"),
	}
}
