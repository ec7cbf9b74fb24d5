// Code generated by ent, DO NOT EDIT.

package entitymapping

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldTenantID, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldEntityType, v))
}

// ScriptID applies equality check predicate on the "script_id" field. It's identical to ScriptIDEQ.
func ScriptID(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldScriptID, v))
}

// NaturalName applies equality check predicate on the "natural_name" field. It's identical to NaturalNameEQ.
func NaturalName(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldNaturalName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldDescription, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldTenantID, v))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldEntityType, v))
}

// ScriptIDEQ applies the EQ predicate on the "script_id" field.
func ScriptIDEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldScriptID, v))
}

// ScriptIDNEQ applies the NEQ predicate on the "script_id" field.
func ScriptIDNEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldScriptID, v))
}

// ScriptIDIn applies the In predicate on the "script_id" field.
func ScriptIDIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldScriptID, vs...))
}

// ScriptIDNotIn applies the NotIn predicate on the "script_id" field.
func ScriptIDNotIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldScriptID, vs...))
}

// ScriptIDGT applies the GT predicate on the "script_id" field.
func ScriptIDGT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldScriptID, v))
}

// ScriptIDGTE applies the GTE predicate on the "script_id" field.
func ScriptIDGTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldScriptID, v))
}

// ScriptIDLT applies the LT predicate on the "script_id" field.
func ScriptIDLT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldScriptID, v))
}

// ScriptIDLTE applies the LTE predicate on the "script_id" field.
func ScriptIDLTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldScriptID, v))
}

// ScriptIDContains applies the Contains predicate on the "script_id" field.
func ScriptIDContains(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContains(FieldScriptID, v))
}

// ScriptIDHasPrefix applies the HasPrefix predicate on the "script_id" field.
func ScriptIDHasPrefix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasPrefix(FieldScriptID, v))
}

// ScriptIDHasSuffix applies the HasSuffix predicate on the "script_id" field.
func ScriptIDHasSuffix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasSuffix(FieldScriptID, v))
}

// ScriptIDEqualFold applies the EqualFold predicate on the "script_id" field.
func ScriptIDEqualFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldScriptID, v))
}

// ScriptIDContainsFold applies the ContainsFold predicate on the "script_id" field.
func ScriptIDContainsFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldScriptID, v))
}

// NaturalNameEQ applies the EQ predicate on the "natural_name" field.
func NaturalNameEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldNaturalName, v))
}

// NaturalNameNEQ applies the NEQ predicate on the "natural_name" field.
func NaturalNameNEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldNaturalName, v))
}

// NaturalNameIn applies the In predicate on the "natural_name" field.
func NaturalNameIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldNaturalName, vs...))
}

// NaturalNameNotIn applies the NotIn predicate on the "natural_name" field.
func NaturalNameNotIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldNaturalName, vs...))
}

// NaturalNameGT applies the GT predicate on the "natural_name" field.
func NaturalNameGT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldNaturalName, v))
}

// NaturalNameGTE applies the GTE predicate on the "natural_name" field.
func NaturalNameGTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldNaturalName, v))
}

// NaturalNameLT applies the LT predicate on the "natural_name" field.
func NaturalNameLT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldNaturalName, v))
}

// NaturalNameLTE applies the LTE predicate on the "natural_name" field.
func NaturalNameLTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldNaturalName, v))
}

// NaturalNameContains applies the Contains predicate on the "natural_name" field.
func NaturalNameContains(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContains(FieldNaturalName, v))
}

// NaturalNameHasPrefix applies the HasPrefix predicate on the "natural_name" field.
func NaturalNameHasPrefix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasPrefix(FieldNaturalName, v))
}

// NaturalNameHasSuffix applies the HasSuffix predicate on the "natural_name" field.
func NaturalNameHasSuffix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasSuffix(FieldNaturalName, v))
}

// NaturalNameEqualFold applies the EqualFold predicate on the "natural_name" field.
func NaturalNameEqualFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldNaturalName, v))
}

// NaturalNameContainsFold applies the ContainsFold predicate on the "natural_name" field.
func NaturalNameContainsFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldNaturalName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldContainsFold(FieldDescription, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EntityMapping {
	return predicate.EntityMapping(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.EntityMapping {
	return predicate.EntityMapping(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.EntityMapping {
	return predicate.EntityMapping(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntityMapping) predicate.EntityMapping {
	return predicate.EntityMapping(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntityMapping) predicate.EntityMapping {
	return predicate.EntityMapping(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntityMapping) predicate.EntityMapping {
	return predicate.EntityMapping(sql.NotPredicates(p))
}
