// Code generated by ent, DO NOT EDIT.

package policyprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the policyprofile type in the database.
	Label = "policy_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "policy_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldReadOnlyMode holds the string denoting the read_only_mode field in the database.
	FieldReadOnlyMode = "read_only_mode"
	// FieldMaxRowsPerQuery holds the string denoting the max_rows_per_query field in the database.
	FieldMaxRowsPerQuery = "max_rows_per_query"
	// FieldRequireRowLimit holds the string denoting the require_row_limit field in the database.
	FieldRequireRowLimit = "require_row_limit"
	// FieldBlockedFields holds the string denoting the blocked_fields field in the database.
	FieldBlockedFields = "blocked_fields"
	// FieldAllowedRecordTypes holds the string denoting the allowed_record_types field in the database.
	FieldAllowedRecordTypes = "allowed_record_types"
	// FieldToolAllowlist holds the string denoting the tool_allowlist field in the database.
	FieldToolAllowlist = "tool_allowlist"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldLocked holds the string denoting the locked field in the database.
	FieldLocked = "locked"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// Table holds the table name of the policyprofile in the database.
	Table = "policy_profiles"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "policy_profiles"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for policyprofile fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldName,
	FieldReadOnlyMode,
	FieldMaxRowsPerQuery,
	FieldRequireRowLimit,
	FieldBlockedFields,
	FieldAllowedRecordTypes,
	FieldToolAllowlist,
	FieldActive,
	FieldLocked,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultReadOnlyMode holds the default value on creation for the "read_only_mode" field.
	DefaultReadOnlyMode bool
	// DefaultMaxRowsPerQuery holds the default value on creation for the "max_rows_per_query" field.
	DefaultMaxRowsPerQuery int
	// DefaultRequireRowLimit holds the default value on creation for the "require_row_limit" field.
	DefaultRequireRowLimit bool
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultLocked holds the default value on creation for the "locked" field.
	DefaultLocked bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PolicyProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByReadOnlyMode orders the results by the read_only_mode field.
func ByReadOnlyMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadOnlyMode, opts...).ToFunc()
}

// ByMaxRowsPerQuery orders the results by the max_rows_per_query field.
func ByMaxRowsPerQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRowsPerQuery, opts...).ToFunc()
}

// ByRequireRowLimit orders the results by the require_row_limit field.
func ByRequireRowLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireRowLimit, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByLocked orders the results by the locked field.
func ByLocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocked, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
