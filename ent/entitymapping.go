// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/ent/tenant"
)

// EntityMapping is the model entity for the EntityMapping schema.
type EntityMapping struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// e.g. custom_field, saved_search, record_type
	EntityType string `json:"entity_type,omitempty"`
	// ScriptID holds the value of the "script_id" field.
	ScriptID string `json:"script_id,omitempty"`
	// NaturalName holds the value of the "natural_name" field.
	NaturalName string `json:"natural_name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EntityMappingQuery when eager-loading is set.
	Edges        EntityMappingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EntityMappingEdges holds the relations/edges for other nodes in the graph.
type EntityMappingEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EntityMappingEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntityMapping) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitymapping.FieldID, entitymapping.FieldTenantID, entitymapping.FieldEntityType, entitymapping.FieldScriptID, entitymapping.FieldNaturalName, entitymapping.FieldDescription:
			values[i] = new(sql.NullString)
		case entitymapping.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntityMapping fields.
func (_m *EntityMapping) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitymapping.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitymapping.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case entitymapping.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case entitymapping.FieldScriptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_id", values[i])
			} else if value.Valid {
				_m.ScriptID = value.String
			}
		case entitymapping.FieldNaturalName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field natural_name", values[i])
			} else if value.Valid {
				_m.NaturalName = value.String
			}
		case entitymapping.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case entitymapping.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EntityMapping.
// This includes values selected through modifiers, order, etc.
func (_m *EntityMapping) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the EntityMapping entity.
func (_m *EntityMapping) QueryTenant() *TenantQuery {
	return NewEntityMappingClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this EntityMapping.
// Note that you need to call EntityMapping.Unwrap() before calling this method if this EntityMapping
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntityMapping) Update() *EntityMappingUpdateOne {
	return NewEntityMappingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntityMapping entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntityMapping) Unwrap() *EntityMapping {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntityMapping is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntityMapping) String() string {
	var builder strings.Builder
	builder.WriteString("EntityMapping(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("script_id=")
	builder.WriteString(_m.ScriptID)
	builder.WriteString(", ")
	builder.WriteString("natural_name=")
	builder.WriteString(_m.NaturalName)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntityMappings is a parsable slice of EntityMapping.
type EntityMappings []*EntityMapping
