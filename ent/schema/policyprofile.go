package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PolicyProfile holds the schema definition for the PolicyProfile entity.
// Per-tenant declarative rules gating tool calls and redacting outputs.
// At most one active per tenant (enforced by PolicyService). Locked
// profiles reject mutations until unlocked by an administrative action.
type PolicyProfile struct {
	ent.Schema
}

// Fields of the PolicyProfile.
func (PolicyProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("policy_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.Bool("read_only_mode").
			Default(false),
		field.Int("max_rows_per_query").
			Default(1000),
		field.Bool("require_row_limit").
			Default(false),
		field.JSON("blocked_fields", []string{}).
			Optional(),
		field.JSON("allowed_record_types", []string{}).
			Optional().
			Comment(`["*"] means all record types`),
		field.JSON("tool_allowlist", []string{}).
			Optional().
			Comment("nil/empty means all tools allowed"),
		field.Bool("active").
			Default(true),
		field.Bool("locked").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PolicyProfile.
func (PolicyProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("policy_profiles").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PolicyProfile.
func (PolicyProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "active"),
	}
}
