package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KnowledgeNodeSource links a knowledge-tree leaf to a supporting source
// with a relevance score. Explicit join entity so the link carries data.
type KnowledgeNodeSource struct {
	ent.Schema
}

// Fields of the KnowledgeNodeSource.
func (KnowledgeNodeSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("link_id").
			Unique().
			Immutable(),
		field.String("node_id").
			Immutable(),
		field.String("source_id").
			Immutable(),
		field.Float("relevance_score").
			Default(1.0).
			Min(0).
			Max(1),
	}
}

// Edges of the KnowledgeNodeSource.
func (KnowledgeNodeSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("node", KnowledgeNode.Type).
			Ref("source_links").
			Field("node_id").
			Unique().
			Required().
			Immutable(),
		edge.From("source", Source.Type).
			Ref("node_links").
			Field("source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the KnowledgeNodeSource.
func (KnowledgeNodeSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("node_id", "source_id").
			Unique(),
	}
}
