package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Operation holds the schema definition for the Operation entity.
// One row per scheduled sub-unit of work; the ledger records its full lifecycle.
type Operation struct {
	ent.Schema
}

// Fields of the Operation.
func (Operation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("operation_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable().
			Comment("Parent operation for fan-out hierarchies"),
		field.String("operation_type").
			NotEmpty().
			Comment("e.g. topic_decomposition, mcp_search, summarize_source"),
		field.String("queue_name").
			NotEmpty().
			Comment("Coordinator queue the op was submitted to"),
		field.Enum("status").
			Values("queued", "waiting_deps", "dispatched", "in_flight",
				"retrying", "completed", "failed", "cancelled").
			Default("queued"),
		field.String("agent_type").
			Optional(),
		field.Int("priority").
			Default(0),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable().
			Comment("completed_at − started_at when terminal"),
		field.JSON("input_data", map[string]interface{}{}).
			Optional(),
		field.JSON("output_data", map[string]interface{}{}).
			Optional().
			Comment("Populated iff status=completed"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.String("worker_id").
			Optional().
			Nillable(),
		field.JSON("meta", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Operation.
func (Operation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("operations").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("evidence", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Operation.
func (Operation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("task_id", "status"),
		index.Fields("operation_type"),
	}
}
