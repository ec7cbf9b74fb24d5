package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntityMapping holds the schema definition for the EntityMapping entity.
// Links a natural-language name ("Sales Channel") to a stable NetSuite
// script ID (custbody_channel). Upserted from discovered metadata.
type EntityMapping struct {
	ent.Schema
}

// Fields of the EntityMapping.
func (EntityMapping) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("mapping_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("entity_type").
			Comment("e.g. custom_field, saved_search, record_type"),
		field.String("script_id"),
		field.String("natural_name"),
		field.Text("description").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EntityMapping.
func (EntityMapping) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("entity_mappings").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EntityMapping.
func (EntityMapping) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "entity_type", "script_id").
			Unique(),
		index.Fields("tenant_id", "natural_name"),
	}
}
