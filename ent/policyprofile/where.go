// Code generated by ent, DO NOT EDIT.

package policyprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldName, v))
}

// ReadOnlyMode applies equality check predicate on the "read_only_mode" field. It's identical to ReadOnlyModeEQ.
func ReadOnlyMode(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldReadOnlyMode, v))
}

// MaxRowsPerQuery applies equality check predicate on the "max_rows_per_query" field. It's identical to MaxRowsPerQueryEQ.
func MaxRowsPerQuery(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldMaxRowsPerQuery, v))
}

// RequireRowLimit applies equality check predicate on the "require_row_limit" field. It's identical to RequireRowLimitEQ.
func RequireRowLimit(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldRequireRowLimit, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldActive, v))
}

// Locked applies equality check predicate on the "locked" field. It's identical to LockedEQ.
func Locked(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldLocked, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldContainsFold(FieldName, v))
}

// ReadOnlyModeEQ applies the EQ predicate on the "read_only_mode" field.
func ReadOnlyModeEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldReadOnlyMode, v))
}

// ReadOnlyModeNEQ applies the NEQ predicate on the "read_only_mode" field.
func ReadOnlyModeNEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldReadOnlyMode, v))
}

// MaxRowsPerQueryEQ applies the EQ predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryEQ(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldMaxRowsPerQuery, v))
}

// MaxRowsPerQueryNEQ applies the NEQ predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryNEQ(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldMaxRowsPerQuery, v))
}

// MaxRowsPerQueryIn applies the In predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryIn(vs ...int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldMaxRowsPerQuery, vs...))
}

// MaxRowsPerQueryNotIn applies the NotIn predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryNotIn(vs ...int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldMaxRowsPerQuery, vs...))
}

// MaxRowsPerQueryGT applies the GT predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryGT(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldMaxRowsPerQuery, v))
}

// MaxRowsPerQueryGTE applies the GTE predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryGTE(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldMaxRowsPerQuery, v))
}

// MaxRowsPerQueryLT applies the LT predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryLT(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldMaxRowsPerQuery, v))
}

// MaxRowsPerQueryLTE applies the LTE predicate on the "max_rows_per_query" field.
func MaxRowsPerQueryLTE(v int) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldMaxRowsPerQuery, v))
}

// RequireRowLimitEQ applies the EQ predicate on the "require_row_limit" field.
func RequireRowLimitEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldRequireRowLimit, v))
}

// RequireRowLimitNEQ applies the NEQ predicate on the "require_row_limit" field.
func RequireRowLimitNEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldRequireRowLimit, v))
}

// BlockedFieldsIsNil applies the IsNil predicate on the "blocked_fields" field.
func BlockedFieldsIsNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIsNull(FieldBlockedFields))
}

// BlockedFieldsNotNil applies the NotNil predicate on the "blocked_fields" field.
func BlockedFieldsNotNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotNull(FieldBlockedFields))
}

// AllowedRecordTypesIsNil applies the IsNil predicate on the "allowed_record_types" field.
func AllowedRecordTypesIsNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIsNull(FieldAllowedRecordTypes))
}

// AllowedRecordTypesNotNil applies the NotNil predicate on the "allowed_record_types" field.
func AllowedRecordTypesNotNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotNull(FieldAllowedRecordTypes))
}

// ToolAllowlistIsNil applies the IsNil predicate on the "tool_allowlist" field.
func ToolAllowlistIsNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIsNull(FieldToolAllowlist))
}

// ToolAllowlistNotNil applies the NotNil predicate on the "tool_allowlist" field.
func ToolAllowlistNotNil() predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotNull(FieldToolAllowlist))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldActive, v))
}

// LockedEQ applies the EQ predicate on the "locked" field.
func LockedEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldLocked, v))
}

// LockedNEQ applies the NEQ predicate on the "locked" field.
func LockedNEQ(v bool) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldLocked, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.PolicyProfile {
	return predicate.PolicyProfile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.PolicyProfile {
	return predicate.PolicyProfile(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PolicyProfile) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PolicyProfile) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PolicyProfile) predicate.PolicyProfile {
	return predicate.PolicyProfile(sql.NotPredicates(p))
}
