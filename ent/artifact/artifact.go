// Code generated by ent, DO NOT EDIT.

package artifact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the artifact type in the database.
	Label = "artifact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "artifact_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldArtifactType holds the string denoting the artifact_type field in the database.
	FieldArtifactType = "artifact_type"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldSha256 holds the string denoting the sha256 field in the database.
	FieldSha256 = "sha256"
	// FieldSizeBytes holds the string denoting the size_bytes field in the database.
	FieldSizeBytes = "size_bytes"
	// FieldTruncated holds the string denoting the truncated field in the database.
	FieldTruncated = "truncated"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeRun holds the string denoting the run edge name in mutations.
	EdgeRun = "run"
	// RunFieldID holds the string denoting the ID field of the Run.
	RunFieldID = "run_id"
	// Table holds the table name of the artifact in the database.
	Table = "artifacts"
	// RunTable is the table that holds the run relation/edge.
	RunTable = "artifacts"
	// RunInverseTable is the table name for the Run entity.
	// It exists in this package in order to avoid circular dependency with the "run" package.
	RunInverseTable = "runs"
	// RunColumn is the table column denoting the run relation/edge.
	RunColumn = "run_id"
)

// Columns holds all SQL columns for artifact fields.
var Columns = []string{
	FieldID,
	FieldRunID,
	FieldArtifactType,
	FieldContent,
	FieldSha256,
	FieldSizeBytes,
	FieldTruncated,
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
	// DefaultTruncated holds the default value on creation for the "truncated" field.
	DefaultTruncated bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ArtifactType defines the type for the "artifact_type" enum field.
type ArtifactType string

// ArtifactType values.
const (
	ArtifactTypeStdout       ArtifactType = "stdout"
	ArtifactTypeStderr       ArtifactType = "stderr"
	ArtifactTypeReportJSON   ArtifactType = "report_json"
	ArtifactTypeCoverageJSON ArtifactType = "coverage_json"
	ArtifactTypeResultJSON   ArtifactType = "result_json"
)

func (at ArtifactType) String() string {
	return string(at)
}

// ArtifactTypeValidator is a validator for the "artifact_type" field enum values. It is called by the builders before save.
func ArtifactTypeValidator(at ArtifactType) error {
	switch at {
	case ArtifactTypeStdout, ArtifactTypeStderr, ArtifactTypeReportJSON, ArtifactTypeCoverageJSON, ArtifactTypeResultJSON:
		return nil
	default:
		return fmt.Errorf("artifact: invalid enum value for artifact_type field: %q", at)
	}
}

// OrderOption defines the ordering options for the Artifact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByArtifactType orders the results by the artifact_type field.
func ByArtifactType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtifactType, opts...).ToFunc()
}

// BySha256 orders the results by the sha256 field.
func BySha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSha256, opts...).ToFunc()
}

// BySizeBytes orders the results by the size_bytes field.
func BySizeBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSizeBytes, opts...).ToFunc()
}

// ByTruncated orders the results by the truncated field.
func ByTruncated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruncated, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByRunField orders the results by run field.
func ByRunField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunStep(), sql.OrderByField(field, opts...))
	}
}
func newRunStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunInverseTable, RunFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RunTable, RunColumn),
	)
}
