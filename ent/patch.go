// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
)

// Patch is the model entity for the Patch schema.
type Patch struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChangesetID holds the value of the "changeset_id" field.
	ChangesetID string `json:"changeset_id,omitempty"`
	// Operation holds the value of the "operation" field.
	Operation patch.Operation `json:"operation,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// SHA-256 of pre-change content; empty for create
	BaselineSha256 string `json:"baseline_sha256,omitempty"`
	// UnifiedDiff holds the value of the "unified_diff" field.
	UnifiedDiff string `json:"unified_diff,omitempty"`
	// NewContent holds the value of the "new_content" field.
	NewContent *string `json:"new_content,omitempty"`
	// ApplyOrder holds the value of the "apply_order" field.
	ApplyOrder int `json:"apply_order,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatchQuery when eager-loading is set.
	Edges        PatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatchEdges holds the relations/edges for other nodes in the graph.
type PatchEdges struct {
	// Changeset holds the value of the changeset edge.
	Changeset *Changeset `json:"changeset,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChangesetOrErr returns the Changeset value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatchEdges) ChangesetOrErr() (*Changeset, error) {
	if e.Changeset != nil {
		return e.Changeset, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: changeset.Label}
	}
	return nil, &NotLoadedError{edge: "changeset"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patch.FieldApplyOrder:
			values[i] = new(sql.NullInt64)
		case patch.FieldID, patch.FieldChangesetID, patch.FieldOperation, patch.FieldFilePath, patch.FieldBaselineSha256, patch.FieldUnifiedDiff, patch.FieldNewContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patch fields.
func (_m *Patch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patch.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case patch.FieldChangesetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field changeset_id", values[i])
			} else if value.Valid {
				_m.ChangesetID = value.String
			}
		case patch.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = patch.Operation(value.String)
			}
		case patch.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case patch.FieldBaselineSha256:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_sha256", values[i])
			} else if value.Valid {
				_m.BaselineSha256 = value.String
			}
		case patch.FieldUnifiedDiff:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unified_diff", values[i])
			} else if value.Valid {
				_m.UnifiedDiff = value.String
			}
		case patch.FieldNewContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_content", values[i])
			} else if value.Valid {
				_m.NewContent = new(string)
				*_m.NewContent = value.String
			}
		case patch.FieldApplyOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field apply_order", values[i])
			} else if value.Valid {
				_m.ApplyOrder = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patch.
// This includes values selected through modifiers, order, etc.
func (_m *Patch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChangeset queries the "changeset" edge of the Patch entity.
func (_m *Patch) QueryChangeset() *ChangesetQuery {
	return NewPatchClient(_m.config).QueryChangeset(_m)
}

// Update returns a builder for updating this Patch.
// Note that you need to call Patch.Unwrap() before calling this method if this Patch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patch) Update() *PatchUpdateOne {
	return NewPatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patch) Unwrap() *Patch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Patch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patch) String() string {
	var builder strings.Builder
	builder.WriteString("Patch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("changeset_id=")
	builder.WriteString(_m.ChangesetID)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Operation))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("baseline_sha256=")
	builder.WriteString(_m.BaselineSha256)
	builder.WriteString(", ")
	builder.WriteString("unified_diff=")
	builder.WriteString(_m.UnifiedDiff)
	builder.WriteString(", ")
	if v := _m.NewContent; v != nil {
		builder.WriteString("new_content=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("apply_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ApplyOrder))
	builder.WriteByte(')')
	return builder.String()
}

// Patches is a parsable slice of Patch.
type Patches []*Patch
