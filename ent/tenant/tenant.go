// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeWorkspaces holds the string denoting the workspaces edge name in mutations.
	EdgeWorkspaces = "workspaces"
	// EdgePolicyProfiles holds the string denoting the policy_profiles edge name in mutations.
	EdgePolicyProfiles = "policy_profiles"
	// EdgeEntityMappings holds the string denoting the entity_mappings edge name in mutations.
	EdgeEntityMappings = "entity_mappings"
	// WorkspaceFieldID holds the string denoting the ID field of the Workspace.
	WorkspaceFieldID = "workspace_id"
	// PolicyProfileFieldID holds the string denoting the ID field of the PolicyProfile.
	PolicyProfileFieldID = "policy_id"
	// EntityMappingFieldID holds the string denoting the ID field of the EntityMapping.
	EntityMappingFieldID = "mapping_id"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// WorkspacesTable is the table that holds the workspaces relation/edge.
	WorkspacesTable = "workspaces"
	// WorkspacesInverseTable is the table name for the Workspace entity.
	// It exists in this package in order to avoid circular dependency with the "workspace" package.
	WorkspacesInverseTable = "workspaces"
	// WorkspacesColumn is the table column denoting the workspaces relation/edge.
	WorkspacesColumn = "tenant_id"
	// PolicyProfilesTable is the table that holds the policy_profiles relation/edge.
	PolicyProfilesTable = "policy_profiles"
	// PolicyProfilesInverseTable is the table name for the PolicyProfile entity.
	// It exists in this package in order to avoid circular dependency with the "policyprofile" package.
	PolicyProfilesInverseTable = "policy_profiles"
	// PolicyProfilesColumn is the table column denoting the policy_profiles relation/edge.
	PolicyProfilesColumn = "tenant_id"
	// EntityMappingsTable is the table that holds the entity_mappings relation/edge.
	EntityMappingsTable = "entity_mappings"
	// EntityMappingsInverseTable is the table name for the EntityMapping entity.
	// It exists in this package in order to avoid circular dependency with the "entitymapping" package.
	EntityMappingsInverseTable = "entity_mappings"
	// EntityMappingsColumn is the table column denoting the entity_mappings relation/edge.
	EntityMappingsColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldStatus,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusSuspended:
		return nil
	default:
		return fmt.Errorf("tenant: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByWorkspacesCount orders the results by workspaces count.
func ByWorkspacesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkspacesStep(), opts...)
	}
}

// ByWorkspaces orders the results by workspaces terms.
func ByWorkspaces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkspacesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPolicyProfilesCount orders the results by policy_profiles count.
func ByPolicyProfilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPolicyProfilesStep(), opts...)
	}
}

// ByPolicyProfiles orders the results by policy_profiles terms.
func ByPolicyProfiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPolicyProfilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEntityMappingsCount orders the results by entity_mappings count.
func ByEntityMappingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntityMappingsStep(), opts...)
	}
}

// ByEntityMappings orders the results by entity_mappings terms.
func ByEntityMappings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntityMappingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newWorkspacesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkspacesInverseTable, WorkspaceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkspacesTable, WorkspacesColumn),
	)
}
func newPolicyProfilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PolicyProfilesInverseTable, PolicyProfileFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PolicyProfilesTable, PolicyProfilesColumn),
	)
}
func newEntityMappingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntityMappingsInverseTable, EntityMappingFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntityMappingsTable, EntityMappingsColumn),
	)
}
