package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEvent holds the schema definition for the AuditEvent entity.
// Append-only: never updated or deleted. Sensitive payload keys are
// scrubbed before persistence.
type AuditEvent struct {
	ent.Schema
}

// Fields of the AuditEvent.
func (AuditEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("actor_id").
			Immutable(),
		field.String("category").
			Immutable().
			Comment("e.g. tool, changeset, run, deploy"),
		field.String("action").
			Immutable().
			Comment("e.g. tool.requested, tool.executed, deploy.gate_override"),
		field.String("resource_type").
			Optional().
			Immutable(),
		field.String("resource_id").
			Optional().
			Immutable(),
		field.String("correlation_id").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Enum("status").
			Values("success", "denied", "error", "pending").
			Immutable(),
		field.String("error_message").
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEvent.
func (AuditEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("correlation_id", "created_at"),
		index.Fields("tenant_id", "action"),
	}
}
