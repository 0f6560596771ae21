package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpikyPOV holds the schema definition for the SpikyPOV entity (DOK-4).
// A contrarian claim classified as supported (truth) or debunked (myth).
type SpikyPOV struct {
	ent.Schema
}

// Fields of the SpikyPOV.
func (SpikyPOV) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pov_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("kind").
			Values("truth", "myth"),
		field.Text("statement").
			NotEmpty(),
		field.Text("reasoning").
			NotEmpty(),
		field.JSON("insight_ids", []string{}).
			Comment("Supporting insights; at least one required"),
		field.Int("position").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SpikyPOV.
func (SpikyPOV) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("spiky_povs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SpikyPOV.
func (SpikyPOV) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "kind", "position"),
	}
}
