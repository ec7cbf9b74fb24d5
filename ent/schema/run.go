package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Run holds the schema definition for the Run entity.
// An execution record of an allowlisted command against a workspace
// snapshot. Immutable once terminal (passed, failed, error).
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("workspace_id").
			Immutable(),
		field.String("changeset_id").
			Optional().
			Nillable().
			Comment("Overlay changeset; must be approved at materialization time"),
		field.Enum("run_type").
			Values("sdf_validate", "jest_unit_test", "suiteql_assertions", "deploy_sandbox"),
		field.Enum("status").
			Values("queued", "running", "passed", "failed", "error").
			Default("queued"),
		field.Int("exit_code").
			Optional().
			Nillable(),
		field.String("error_category").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("materialized_file_count").
			Optional().
			Nillable(),
		field.String("correlation_id"),
		field.String("triggered_by"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("workspace", Workspace.Type).
			Ref("runs").
			Field("workspace_id").
			Unique().
			Required().
			Immutable(),
		edge.To("artifacts", Artifact.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "run_type", "status"),
		index.Fields("changeset_id"),
		index.Fields("correlation_id"),
	}
}
