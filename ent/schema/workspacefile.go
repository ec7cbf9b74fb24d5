package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkspaceFile holds the schema definition for the WorkspaceFile entity.
// (workspace_id, path) is unique. Locks are advisory and expire after
// 30 minutes of inactivity; expiry is evaluated on every proposal.
type WorkspaceFile struct {
	ent.Schema
}

// Fields of the WorkspaceFile.
func (WorkspaceFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("path").
			MaxLen(512).
			Comment("Validated relative path: no traversal, no absolute prefix"),
		field.Text("content").
			Default(""),
		field.String("sha256").
			Comment("Hex SHA-256 of content"),
		field.Int("size_bytes").
			Default(0),
		field.String("mime_type").
			Default("text/plain"),
		field.Bool("is_directory").
			Default(false),
		field.String("locked_by").
			Optional().
			Nillable(),
		field.Time("locked_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WorkspaceFile.
func (WorkspaceFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("files").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkspaceFile.
func (WorkspaceFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workspace_id", "path").
			Unique(),
		index.Fields("tenant_id"),
	}
}
