package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeNode holds the schema definition for the KnowledgeNode entity.
// Forest of DOK-1/2 categories; parent links stay within the same task and
// the graph is acyclic (enforced by the DOK service on insert).
type KnowledgeNode struct {
	ent.Schema
}

// Fields of the KnowledgeNode.
func (KnowledgeNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("node_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("parent_id").
			Optional().
			Nillable(),
		field.String("category").
			NotEmpty(),
		field.String("subcategory").
			Optional(),
		field.Text("summary").
			NotEmpty(),
		field.Int("dok_level").
			Default(2).
			Min(1).
			Max(2),
		field.Int("position").
			Default(0).
			Comment("Insertion order within the task's forest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the KnowledgeNode.
func (KnowledgeNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("knowledge_nodes").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("source_links", KnowledgeNodeSource.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the KnowledgeNode.
func (KnowledgeNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "position"),
		index.Fields("parent_id"),
	}
}
