package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity.
// Raw artifacts captured during an operation: search result pages, LLM response
// snippets, fetched document pointers. Stored verbatim, never mutated.
type Evidence struct {
	ent.Schema
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("operation_id").
			Immutable(),
		field.String("task_id").
			Immutable().
			Comment("Denormalized for task-scoped queries"),
		field.String("evidence_type").
			NotEmpty(),
		field.JSON("evidence_data", map[string]interface{}{}).
			Comment("Bounded JSON payload (size enforced by the ledger)"),
		field.String("source_url").
			Optional().
			Nillable(),
		field.String("provider").
			Optional().
			Nillable(),
		field.Int("size_bytes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("operation", Operation.Type).
			Ref("evidence").
			Field("operation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation_id"),
		index.Fields("task_id", "created_at"),
	}
}
