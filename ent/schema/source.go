package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity.
// Deduplicated external reference, content-addressed by (url, content_hash).
// Shared across tasks — NOT cascade-deleted with a task.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("source_id").
			Unique().
			Immutable(),
		field.String("url").
			NotEmpty(),
		field.String("title").
			Optional(),
		field.Text("description").
			Optional(),
		field.String("provider").
			Comment("Search provider that first surfaced this source"),
		field.String("content_hash").
			NotEmpty(),
		field.Float("reliability_score").
			Default(0.5).
			Comment("Monotone under repeated observations, clamped to [0,1]"),
		field.Int("observation_count").
			Default(1).
			Comment("Times the source was re-observed; drives reliability aggregation"),
		field.Time("accessed_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("summaries", SourceSummary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("node_links", KnowledgeNodeSource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("url", "content_hash").
			Unique(),
		index.Fields("provider"),
	}
}
