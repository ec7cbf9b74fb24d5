// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// Changeset is the predicate function for changeset builders.
type Changeset func(*sql.Selector)

// EntityMapping is the predicate function for entitymapping builders.
type EntityMapping func(*sql.Selector)

// Patch is the predicate function for patch builders.
type Patch func(*sql.Selector)

// PolicyProfile is the predicate function for policyprofile builders.
type PolicyProfile func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// Workspace is the predicate function for workspace builders.
type Workspace func(*sql.Selector)

// WorkspaceFile is the predicate function for workspacefile builders.
type WorkspaceFile func(*sql.Selector)
