// Code generated by ent, DO NOT EDIT.

package patch

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the patch type in the database.
	Label = "patch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "patch_id"
	// FieldChangesetID holds the string denoting the changeset_id field in the database.
	FieldChangesetID = "changeset_id"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldFilePath holds the string denoting the file_path field in the database.
	FieldFilePath = "file_path"
	// FieldBaselineSha256 holds the string denoting the baseline_sha256 field in the database.
	FieldBaselineSha256 = "baseline_sha256"
	// FieldUnifiedDiff holds the string denoting the unified_diff field in the database.
	FieldUnifiedDiff = "unified_diff"
	// FieldNewContent holds the string denoting the new_content field in the database.
	FieldNewContent = "new_content"
	// FieldApplyOrder holds the string denoting the apply_order field in the database.
	FieldApplyOrder = "apply_order"
	// EdgeChangeset holds the string denoting the changeset edge name in mutations.
	EdgeChangeset = "changeset"
	// ChangesetFieldID holds the string denoting the ID field of the Changeset.
	ChangesetFieldID = "changeset_id"
	// Table holds the table name of the patch in the database.
	Table = "patches"
	// ChangesetTable is the table that holds the changeset relation/edge.
	ChangesetTable = "patches"
	// ChangesetInverseTable is the table name for the Changeset entity.
	// It exists in this package in order to avoid circular dependency with the "changeset" package.
	ChangesetInverseTable = "changesets"
	// ChangesetColumn is the table column denoting the changeset relation/edge.
	ChangesetColumn = "changeset_id"
)

// Columns holds all SQL columns for patch fields.
var Columns = []string{
	FieldID,
	FieldChangesetID,
	FieldOperation,
	FieldFilePath,
	FieldBaselineSha256,
	FieldUnifiedDiff,
	FieldNewContent,
	FieldApplyOrder,
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
	// FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	FilePathValidator func(string) error
	// DefaultBaselineSha256 holds the default value on creation for the "baseline_sha256" field.
	DefaultBaselineSha256 string
	// DefaultApplyOrder holds the default value on creation for the "apply_order" field.
	DefaultApplyOrder int
)

// Operation defines the type for the "operation" enum field.
type Operation string

// Operation values.
const (
	OperationCreate Operation = "create"
	OperationModify Operation = "modify"
	OperationDelete Operation = "delete"
)

func (o Operation) String() string {
	return string(o)
}

// OperationValidator is a validator for the "operation" field enum values. It is called by the builders before save.
func OperationValidator(o Operation) error {
	switch o {
	case OperationCreate, OperationModify, OperationDelete:
		return nil
	default:
		return fmt.Errorf("patch: invalid enum value for operation field: %q", o)
	}
}

// OrderOption defines the ordering options for the Patch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChangesetID orders the results by the changeset_id field.
func ByChangesetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChangesetID, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByFilePath orders the results by the file_path field.
func ByFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilePath, opts...).ToFunc()
}

// ByBaselineSha256 orders the results by the baseline_sha256 field.
func ByBaselineSha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineSha256, opts...).ToFunc()
}

// ByUnifiedDiff orders the results by the unified_diff field.
func ByUnifiedDiff(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnifiedDiff, opts...).ToFunc()
}

// ByNewContent orders the results by the new_content field.
func ByNewContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewContent, opts...).ToFunc()
}

// ByApplyOrder orders the results by the apply_order field.
func ByApplyOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplyOrder, opts...).ToFunc()
}

// ByChangesetField orders the results by changeset field.
func ByChangesetField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChangesetStep(), sql.OrderByField(field, opts...))
	}
}
func newChangesetStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChangesetInverseTable, ChangesetFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChangesetTable, ChangesetColumn),
	)
}
