package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceSummary holds the schema definition for the SourceSummary entity.
// Per-(source, task) distilled facts — DOK level 1/2. Created once, never
// mutated; a newer summary supersedes via superseded_by.
type SourceSummary struct {
	ent.Schema
}

// Fields of the SourceSummary.
func (SourceSummary) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("summary_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.String("subtopic").
			Optional().
			Comment("Subtopic the summarization op was scoped to"),
		field.Text("summary").
			NotEmpty(),
		field.JSON("dok1_facts", []string{}).
			Comment("Atomic source-grounded assertions"),
		field.Int("dok_level").
			Default(1).
			Min(1).
			Max(2),
		field.String("superseded_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceSummary.
func (SourceSummary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("source_summaries").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.From("source", Source.Type).
			Ref("summaries").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SourceSummary.
func (SourceSummary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "source_id", "subtopic").
			Unique(),
		index.Fields("task_id", "created_at"),
	}
}
