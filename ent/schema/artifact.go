package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// An immutable byproduct of a run. Content is stored post-redaction
// and capped at 256 KiB.
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
		field.String("run_id").
			Immutable(),
		field.Enum("artifact_type").
			Values("stdout", "stderr", "report_json", "coverage_json", "result_json"),
		field.Bytes("content").
			Comment("UTF-8, redacted, <= 256 KiB"),
		field.String("sha256").
			Comment("SHA-256 of post-redaction content"),
		field.Int("size_bytes"),
		field.Bool("truncated").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Artifact.
func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("artifacts").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "artifact_type"),
	}
}
