package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity (DOK-3).
// Cross-links to supporting sources are stable ids, never in-memory pointers.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("category").
			NotEmpty(),
		field.Text("insight_text").
			NotEmpty(),
		field.Float("confidence_score").
			Min(0).
			Max(1),
		field.JSON("source_ids", []string{}).
			Comment("Supporting sources; at least one required"),
		field.Int("position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("insights").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "position"),
	}
}
