// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// EntityMappingUpdate is the builder for updating EntityMapping entities.
type EntityMappingUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMappingMutation
}

// Where appends a list predicates to the EntityMappingUpdate builder.
func (_u *EntityMappingUpdate) Where(ps ...predicate.EntityMapping) *EntityMappingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityMappingUpdate) SetEntityType(v string) *EntityMappingUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityMappingUpdate) SetNillableEntityType(v *string) *EntityMappingUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *EntityMappingUpdate) SetScriptID(v string) *EntityMappingUpdate {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *EntityMappingUpdate) SetNillableScriptID(v *string) *EntityMappingUpdate {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// SetNaturalName sets the "natural_name" field.
func (_u *EntityMappingUpdate) SetNaturalName(v string) *EntityMappingUpdate {
	_u.mutation.SetNaturalName(v)
	return _u
}

// SetNillableNaturalName sets the "natural_name" field if the given value is not nil.
func (_u *EntityMappingUpdate) SetNillableNaturalName(v *string) *EntityMappingUpdate {
	if v != nil {
		_u.SetNaturalName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityMappingUpdate) SetDescription(v string) *EntityMappingUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityMappingUpdate) SetNillableDescription(v *string) *EntityMappingUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityMappingUpdate) ClearDescription() *EntityMappingUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityMappingUpdate) SetUpdatedAt(v time.Time) *EntityMappingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntityMappingMutation object of the builder.
func (_u *EntityMappingUpdate) Mutation() *EntityMappingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityMappingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMappingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityMappingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMappingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityMappingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entitymapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMappingUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMapping.tenant"`)
	}
	return nil
}

func (_u *EntityMappingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymapping.Table, entitymapping.Columns, sqlgraph.NewFieldSpec(entitymapping.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitymapping.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(entitymapping.FieldScriptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NaturalName(); ok {
		_spec.SetField(entitymapping.FieldNaturalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entitymapping.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entitymapping.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entitymapping.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityMappingUpdateOne is the builder for updating a single EntityMapping entity.
type EntityMappingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMappingMutation
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityMappingUpdateOne) SetEntityType(v string) *EntityMappingUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityMappingUpdateOne) SetNillableEntityType(v *string) *EntityMappingUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// SetScriptID sets the "script_id" field.
func (_u *EntityMappingUpdateOne) SetScriptID(v string) *EntityMappingUpdateOne {
	_u.mutation.SetScriptID(v)
	return _u
}

// SetNillableScriptID sets the "script_id" field if the given value is not nil.
func (_u *EntityMappingUpdateOne) SetNillableScriptID(v *string) *EntityMappingUpdateOne {
	if v != nil {
		_u.SetScriptID(*v)
	}
	return _u
}

// SetNaturalName sets the "natural_name" field.
func (_u *EntityMappingUpdateOne) SetNaturalName(v string) *EntityMappingUpdateOne {
	_u.mutation.SetNaturalName(v)
	return _u
}

// SetNillableNaturalName sets the "natural_name" field if the given value is not nil.
func (_u *EntityMappingUpdateOne) SetNillableNaturalName(v *string) *EntityMappingUpdateOne {
	if v != nil {
		_u.SetNaturalName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityMappingUpdateOne) SetDescription(v string) *EntityMappingUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityMappingUpdateOne) SetNillableDescription(v *string) *EntityMappingUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityMappingUpdateOne) ClearDescription() *EntityMappingUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EntityMappingUpdateOne) SetUpdatedAt(v time.Time) *EntityMappingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EntityMappingMutation object of the builder.
func (_u *EntityMappingUpdateOne) Mutation() *EntityMappingMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityMappingUpdate builder.
func (_u *EntityMappingUpdateOne) Where(ps ...predicate.EntityMapping) *EntityMappingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityMappingUpdateOne) Select(field string, fields ...string) *EntityMappingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntityMapping entity.
func (_u *EntityMappingUpdateOne) Save(ctx context.Context) (*EntityMapping, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityMappingUpdateOne) SaveX(ctx context.Context) *EntityMapping {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityMappingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityMappingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EntityMappingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := entitymapping.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntityMappingUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntityMapping.tenant"`)
	}
	return nil
}

func (_u *EntityMappingUpdateOne) sqlSave(ctx context.Context) (_node *EntityMapping, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitymapping.Table, entitymapping.Columns, sqlgraph.NewFieldSpec(entitymapping.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntityMapping.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitymapping.FieldID)
		for _, f := range fields {
			if !entitymapping.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitymapping.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entitymapping.FieldEntityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptID(); ok {
		_spec.SetField(entitymapping.FieldScriptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NaturalName(); ok {
		_spec.SetField(entitymapping.FieldNaturalName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entitymapping.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entitymapping.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(entitymapping.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EntityMapping{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitymapping.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
