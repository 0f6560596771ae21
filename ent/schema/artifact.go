package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Pointer to a binary artifact in the object store, laid out as
// storage/{task_id}/{artifact_uuid}.{ext}.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("artifact_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("kind").
			NotEmpty().
			Comment("csv, xlsx, report_md"),
		field.String("path").
			NotEmpty(),
		field.String("content_type"),
		field.String("checksum").
			Comment("SHA-256 of the stored bytes"),
		field.Int64("size_bytes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", ResearchTask.Type).
			Ref("artifacts").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "kind"),
	}
}
