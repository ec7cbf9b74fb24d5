package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Changeset holds the schema definition for the Changeset entity.
// A reviewed bundle of file modifications:
//
//	draft → pending_review → approved → applied
//	              │              └─revoke─→ draft
//	              ├─reject─→ rejected
//	              └─revert─→ draft
//
// applied and rejected are terminal.
type Changeset struct {
	ent.Schema
}

// Fields of the Changeset.
func (Changeset) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("changeset_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("title"),
		field.Text("rationale").
			Optional(),
		field.Enum("status").
			Values("draft", "pending_review", "approved", "applied", "rejected").
			Default("draft"),
		field.String("proposed_by"),
		field.String("reviewed_by").
			Optional().
			Nillable(),
		field.String("applied_by").
			Optional().
			Nillable(),
		field.Time("submitted_at").
			Optional().
			Nillable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.Time("applied_at").
			Optional().
			Nillable(),
		field.String("rejection_reason").
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

// Edges of the Changeset.
func (Changeset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("changesets").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.To("patches", Patch.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Changeset.
func (Changeset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status"),
		index.Fields("workspace_id", "status"),
	}
}
