package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AggregatedEntity holds the schema definition for the AggregatedEntity entity.
// Consolidated output of data-aggregation tasks. Scope is the project when the
// task belongs to one, else the task itself; uniqueness of unique_identifier
// within (scope, entity_type) is enforced by the entity service upsert.
type AggregatedEntity struct {
	ent.Schema
}

// Fields of the AggregatedEntity.
func (AggregatedEntity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entity_id").
			Unique().
			Immutable(),
		field.String("scope_id").
			Immutable().
			Comment("project_id when project-scoped, else task_id"),
		field.String("entity_type").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("normalized_name").
			NotEmpty().
			Comment("lowercase, whitespace-collapsed, punctuation-stripped"),
		field.String("unique_identifier").
			Optional().
			Comment("Domain key, e.g. NCES id; empty when unknown"),
		field.JSON("consolidated_attributes", map[string]interface{}{}),
		field.JSON("data_lineage", map[string]interface{}{}).
			Comment("Per-attribute source history plus aggregate block"),
		field.Float("confidence_score").
			Min(0).
			Max(1),
		field.JSON("source_tasks", []string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the AggregatedEntity.
// Identifier uniqueness within (scope, entity_type) is a PARTIAL unique index
// (rows without a domain key must not collide on the empty string), which Ent
// cannot express — see database.CreatePartialUniqueIndexes.
func (AggregatedEntity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope_id", "entity_type"),
		index.Fields("scope_id", "entity_type", "normalized_name"),
	}
}
