package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Patch holds the schema definition for the Patch entity.
// One file-level operation inside a changeset. Modify patches carry a
// unified diff or full new_content; create patches carry content only;
// delete patches carry neither.
type Patch struct {
	ent.Schema
}

// Fields of the Patch.
func (Patch) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("patch_id").
			Unique().
			Immutable(),
		field.String("changeset_id").
			Immutable(),
		field.Enum("operation").
			Values("create", "modify", "delete"),
		field.String("file_path").
			MaxLen(512),
		field.String("baseline_sha256").
			Default("").
			Comment("SHA-256 of pre-change content; empty for create"),
		field.Text("unified_diff").
			Optional(),
		field.Text("new_content").
			Optional().
			Nillable(),
		field.Int("apply_order").
			Default(0),
	}
}

// Edges of the Patch.
func (Patch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("changeset", Changeset.Type).
			Ref("patches").
			Field("changeset_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Patch.
func (Patch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("changeset_id", "apply_order").
			Unique(),
	}
}
