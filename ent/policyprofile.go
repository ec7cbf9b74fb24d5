// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/ent/tenant"
)

// PolicyProfile is the model entity for the PolicyProfile schema.
type PolicyProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// ReadOnlyMode holds the value of the "read_only_mode" field.
	ReadOnlyMode bool `json:"read_only_mode,omitempty"`
	// MaxRowsPerQuery holds the value of the "max_rows_per_query" field.
	MaxRowsPerQuery int `json:"max_rows_per_query,omitempty"`
	// RequireRowLimit holds the value of the "require_row_limit" field.
	RequireRowLimit bool `json:"require_row_limit,omitempty"`
	// BlockedFields holds the value of the "blocked_fields" field.
	BlockedFields []string `json:"blocked_fields,omitempty"`
	// ["*"] means all record types
	AllowedRecordTypes []string `json:"allowed_record_types,omitempty"`
	// nil/empty means all tools allowed
	ToolAllowlist []string `json:"tool_allowlist,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Locked holds the value of the "locked" field.
	Locked bool `json:"locked,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PolicyProfileQuery when eager-loading is set.
	Edges        PolicyProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PolicyProfileEdges holds the relations/edges for other nodes in the graph.
type PolicyProfileEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PolicyProfileEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PolicyProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case policyprofile.FieldBlockedFields, policyprofile.FieldAllowedRecordTypes, policyprofile.FieldToolAllowlist:
			values[i] = new([]byte)
		case policyprofile.FieldReadOnlyMode, policyprofile.FieldRequireRowLimit, policyprofile.FieldActive, policyprofile.FieldLocked:
			values[i] = new(sql.NullBool)
		case policyprofile.FieldMaxRowsPerQuery:
			values[i] = new(sql.NullInt64)
		case policyprofile.FieldID, policyprofile.FieldTenantID, policyprofile.FieldName:
			values[i] = new(sql.NullString)
		case policyprofile.FieldCreatedAt, policyprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PolicyProfile fields.
func (_m *PolicyProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case policyprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case policyprofile.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case policyprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case policyprofile.FieldReadOnlyMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field read_only_mode", values[i])
			} else if value.Valid {
				_m.ReadOnlyMode = value.Bool
			}
		case policyprofile.FieldMaxRowsPerQuery:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_rows_per_query", values[i])
			} else if value.Valid {
				_m.MaxRowsPerQuery = int(value.Int64)
			}
		case policyprofile.FieldRequireRowLimit:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_row_limit", values[i])
			} else if value.Valid {
				_m.RequireRowLimit = value.Bool
			}
		case policyprofile.FieldBlockedFields:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocked_fields", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlockedFields); err != nil {
					return fmt.Errorf("unmarshal field blocked_fields: %w", err)
				}
			}
		case policyprofile.FieldAllowedRecordTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allowed_record_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AllowedRecordTypes); err != nil {
					return fmt.Errorf("unmarshal field allowed_record_types: %w", err)
				}
			}
		case policyprofile.FieldToolAllowlist:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_allowlist", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolAllowlist); err != nil {
					return fmt.Errorf("unmarshal field tool_allowlist: %w", err)
				}
			}
		case policyprofile.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case policyprofile.FieldLocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field locked", values[i])
			} else if value.Valid {
				_m.Locked = value.Bool
			}
		case policyprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case policyprofile.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PolicyProfile.
// This includes values selected through modifiers, order, etc.
func (_m *PolicyProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the PolicyProfile entity.
func (_m *PolicyProfile) QueryTenant() *TenantQuery {
	return NewPolicyProfileClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this PolicyProfile.
// Note that you need to call PolicyProfile.Unwrap() before calling this method if this PolicyProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PolicyProfile) Update() *PolicyProfileUpdateOne {
	return NewPolicyProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PolicyProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PolicyProfile) Unwrap() *PolicyProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PolicyProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PolicyProfile) String() string {
	var builder strings.Builder
	builder.WriteString("PolicyProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("read_only_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReadOnlyMode))
	builder.WriteString(", ")
	builder.WriteString("max_rows_per_query=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRowsPerQuery))
	builder.WriteString(", ")
	builder.WriteString("require_row_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireRowLimit))
	builder.WriteString(", ")
	builder.WriteString("blocked_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockedFields))
	builder.WriteString(", ")
	builder.WriteString("allowed_record_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.AllowedRecordTypes))
	builder.WriteString(", ")
	builder.WriteString("tool_allowlist=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolAllowlist))
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("locked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Locked))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PolicyProfiles is a parsable slice of PolicyProfile.
type PolicyProfiles []*PolicyProfile
