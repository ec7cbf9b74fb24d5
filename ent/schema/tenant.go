package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Tenant holds the schema definition for the Tenant entity.
// The isolation unit: every other entity carries a tenant_id.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Display name of the NetSuite account owner"),
		field.Enum("status").
			Values("active", "suspended").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("workspaces", Workspace.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("policy_profiles", PolicyProfile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("entity_mappings", EntityMapping.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
