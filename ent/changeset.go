// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/workspace"
)

// Changeset is the model entity for the Changeset schema.
type Changeset struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// WorkspaceID holds the value of the "workspace_id" field.
	WorkspaceID string `json:"workspace_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// Status holds the value of the "status" field.
	Status changeset.Status `json:"status,omitempty"`
	// ProposedBy holds the value of the "proposed_by" field.
	ProposedBy string `json:"proposed_by,omitempty"`
	// ReviewedBy holds the value of the "reviewed_by" field.
	ReviewedBy *string `json:"reviewed_by,omitempty"`
	// AppliedBy holds the value of the "applied_by" field.
	AppliedBy *string `json:"applied_by,omitempty"`
	// SubmittedAt holds the value of the "submitted_at" field.
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	// ReviewedAt holds the value of the "reviewed_at" field.
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	// RejectionReason holds the value of the "rejection_reason" field.
	RejectionReason *string `json:"rejection_reason,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChangesetQuery when eager-loading is set.
	Edges        ChangesetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChangesetEdges holds the relations/edges for other nodes in the graph.
type ChangesetEdges struct {
	// Workspace holds the value of the workspace edge.
	Workspace *Workspace `json:"workspace,omitempty"`
	// Patches holds the value of the patches edge.
	Patches []*Patch `json:"patches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// WorkspaceOrErr returns the Workspace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChangesetEdges) WorkspaceOrErr() (*Workspace, error) {
	if e.Workspace != nil {
		return e.Workspace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workspace.Label}
	}
	return nil, &NotLoadedError{edge: "workspace"}
}

// PatchesOrErr returns the Patches value or an error if the edge
// was not loaded in eager-loading.
func (e ChangesetEdges) PatchesOrErr() ([]*Patch, error) {
	if e.loadedTypes[1] {
		return e.Patches, nil
	}
	return nil, &NotLoadedError{edge: "patches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Changeset) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case changeset.FieldID, changeset.FieldTenantID, changeset.FieldWorkspaceID, changeset.FieldTitle, changeset.FieldRationale, changeset.FieldStatus, changeset.FieldProposedBy, changeset.FieldReviewedBy, changeset.FieldAppliedBy, changeset.FieldRejectionReason:
			values[i] = new(sql.NullString)
		case changeset.FieldSubmittedAt, changeset.FieldReviewedAt, changeset.FieldAppliedAt, changeset.FieldCreatedAt, changeset.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Changeset fields.
func (_m *Changeset) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case changeset.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case changeset.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case changeset.FieldWorkspaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workspace_id", values[i])
			} else if value.Valid {
				_m.WorkspaceID = value.String
			}
		case changeset.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case changeset.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case changeset.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = changeset.Status(value.String)
			}
		case changeset.FieldProposedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_by", values[i])
			} else if value.Valid {
				_m.ProposedBy = value.String
			}
		case changeset.FieldReviewedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_by", values[i])
			} else if value.Valid {
				_m.ReviewedBy = new(string)
				*_m.ReviewedBy = value.String
			}
		case changeset.FieldAppliedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field applied_by", values[i])
			} else if value.Valid {
				_m.AppliedBy = new(string)
				*_m.AppliedBy = value.String
			}
		case changeset.FieldSubmittedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_at", values[i])
			} else if value.Valid {
				_m.SubmittedAt = new(time.Time)
				*_m.SubmittedAt = value.Time
			}
		case changeset.FieldReviewedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reviewed_at", values[i])
			} else if value.Valid {
				_m.ReviewedAt = new(time.Time)
				*_m.ReviewedAt = value.Time
			}
		case changeset.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				_m.AppliedAt = new(time.Time)
				*_m.AppliedAt = value.Time
			}
		case changeset.FieldRejectionReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rejection_reason", values[i])
			} else if value.Valid {
				_m.RejectionReason = new(string)
				*_m.RejectionReason = value.String
			}
		case changeset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case changeset.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Changeset.
// This includes values selected through modifiers, order, etc.
func (_m *Changeset) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWorkspace queries the "workspace" edge of the Changeset entity.
func (_m *Changeset) QueryWorkspace() *WorkspaceQuery {
	return NewChangesetClient(_m.config).QueryWorkspace(_m)
}

// QueryPatches queries the "patches" edge of the Changeset entity.
func (_m *Changeset) QueryPatches() *PatchQuery {
	return NewChangesetClient(_m.config).QueryPatches(_m)
}

// Update returns a builder for updating this Changeset.
// Note that you need to call Changeset.Unwrap() before calling this method if this Changeset
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Changeset) Update() *ChangesetUpdateOne {
	return NewChangesetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Changeset entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Changeset) Unwrap() *Changeset {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Changeset is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Changeset) String() string {
	var builder strings.Builder
	builder.WriteString("Changeset(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("workspace_id=")
	builder.WriteString(_m.WorkspaceID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("proposed_by=")
	builder.WriteString(_m.ProposedBy)
	builder.WriteString(", ")
	if v := _m.ReviewedBy; v != nil {
		builder.WriteString("reviewed_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AppliedBy; v != nil {
		builder.WriteString("applied_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmittedAt; v != nil {
		builder.WriteString("submitted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ReviewedAt; v != nil {
		builder.WriteString("reviewed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.AppliedAt; v != nil {
		builder.WriteString("applied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RejectionReason; v != nil {
		builder.WriteString("rejection_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Changesets is a parsable slice of Changeset.
type Changesets []*Changeset
