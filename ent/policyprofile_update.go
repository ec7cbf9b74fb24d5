// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// PolicyProfileUpdate is the builder for updating PolicyProfile entities.
type PolicyProfileUpdate struct {
	config
	hooks    []Hook
	mutation *PolicyProfileMutation
}

// Where appends a list predicates to the PolicyProfileUpdate builder.
func (_u *PolicyProfileUpdate) Where(ps ...predicate.PolicyProfile) *PolicyProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PolicyProfileUpdate) SetName(v string) *PolicyProfileUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableName(v *string) *PolicyProfileUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (_u *PolicyProfileUpdate) SetReadOnlyMode(v bool) *PolicyProfileUpdate {
	_u.mutation.SetReadOnlyMode(v)
	return _u
}

// SetNillableReadOnlyMode sets the "read_only_mode" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableReadOnlyMode(v *bool) *PolicyProfileUpdate {
	if v != nil {
		_u.SetReadOnlyMode(*v)
	}
	return _u
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (_u *PolicyProfileUpdate) SetMaxRowsPerQuery(v int) *PolicyProfileUpdate {
	_u.mutation.ResetMaxRowsPerQuery()
	_u.mutation.SetMaxRowsPerQuery(v)
	return _u
}

// SetNillableMaxRowsPerQuery sets the "max_rows_per_query" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableMaxRowsPerQuery(v *int) *PolicyProfileUpdate {
	if v != nil {
		_u.SetMaxRowsPerQuery(*v)
	}
	return _u
}

// AddMaxRowsPerQuery adds value to the "max_rows_per_query" field.
func (_u *PolicyProfileUpdate) AddMaxRowsPerQuery(v int) *PolicyProfileUpdate {
	_u.mutation.AddMaxRowsPerQuery(v)
	return _u
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (_u *PolicyProfileUpdate) SetRequireRowLimit(v bool) *PolicyProfileUpdate {
	_u.mutation.SetRequireRowLimit(v)
	return _u
}

// SetNillableRequireRowLimit sets the "require_row_limit" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableRequireRowLimit(v *bool) *PolicyProfileUpdate {
	if v != nil {
		_u.SetRequireRowLimit(*v)
	}
	return _u
}

// SetBlockedFields sets the "blocked_fields" field.
func (_u *PolicyProfileUpdate) SetBlockedFields(v []string) *PolicyProfileUpdate {
	_u.mutation.SetBlockedFields(v)
	return _u
}

// AppendBlockedFields appends value to the "blocked_fields" field.
func (_u *PolicyProfileUpdate) AppendBlockedFields(v []string) *PolicyProfileUpdate {
	_u.mutation.AppendBlockedFields(v)
	return _u
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (_u *PolicyProfileUpdate) ClearBlockedFields() *PolicyProfileUpdate {
	_u.mutation.ClearBlockedFields()
	return _u
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (_u *PolicyProfileUpdate) SetAllowedRecordTypes(v []string) *PolicyProfileUpdate {
	_u.mutation.SetAllowedRecordTypes(v)
	return _u
}

// AppendAllowedRecordTypes appends value to the "allowed_record_types" field.
func (_u *PolicyProfileUpdate) AppendAllowedRecordTypes(v []string) *PolicyProfileUpdate {
	_u.mutation.AppendAllowedRecordTypes(v)
	return _u
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (_u *PolicyProfileUpdate) ClearAllowedRecordTypes() *PolicyProfileUpdate {
	_u.mutation.ClearAllowedRecordTypes()
	return _u
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (_u *PolicyProfileUpdate) SetToolAllowlist(v []string) *PolicyProfileUpdate {
	_u.mutation.SetToolAllowlist(v)
	return _u
}

// AppendToolAllowlist appends value to the "tool_allowlist" field.
func (_u *PolicyProfileUpdate) AppendToolAllowlist(v []string) *PolicyProfileUpdate {
	_u.mutation.AppendToolAllowlist(v)
	return _u
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (_u *PolicyProfileUpdate) ClearToolAllowlist() *PolicyProfileUpdate {
	_u.mutation.ClearToolAllowlist()
	return _u
}

// SetActive sets the "active" field.
func (_u *PolicyProfileUpdate) SetActive(v bool) *PolicyProfileUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableActive(v *bool) *PolicyProfileUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLocked sets the "locked" field.
func (_u *PolicyProfileUpdate) SetLocked(v bool) *PolicyProfileUpdate {
	_u.mutation.SetLocked(v)
	return _u
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_u *PolicyProfileUpdate) SetNillableLocked(v *bool) *PolicyProfileUpdate {
	if v != nil {
		_u.SetLocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyProfileUpdate) SetUpdatedAt(v time.Time) *PolicyProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PolicyProfileMutation object of the builder.
func (_u *PolicyProfileUpdate) Mutation() *PolicyProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolicyProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolicyProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyProfileUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyProfile.tenant"`)
	}
	return nil
}

func (_u *PolicyProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyprofile.Table, policyprofile.Columns, sqlgraph.NewFieldSpec(policyprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(policyprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadOnlyMode(); ok {
		_spec.SetField(policyprofile.FieldReadOnlyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRowsPerQuery(); ok {
		_spec.SetField(policyprofile.FieldMaxRowsPerQuery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRowsPerQuery(); ok {
		_spec.AddField(policyprofile.FieldMaxRowsPerQuery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireRowLimit(); ok {
		_spec.SetField(policyprofile.FieldRequireRowLimit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BlockedFields(); ok {
		_spec.SetField(policyprofile.FieldBlockedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldBlockedFields, value)
		})
	}
	if _u.mutation.BlockedFieldsCleared() {
		_spec.ClearField(policyprofile.FieldBlockedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedRecordTypes(); ok {
		_spec.SetField(policyprofile.FieldAllowedRecordTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedRecordTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldAllowedRecordTypes, value)
		})
	}
	if _u.mutation.AllowedRecordTypesCleared() {
		_spec.ClearField(policyprofile.FieldAllowedRecordTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolAllowlist(); ok {
		_spec.SetField(policyprofile.FieldToolAllowlist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolAllowlist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldToolAllowlist, value)
		})
	}
	if _u.mutation.ToolAllowlistCleared() {
		_spec.ClearField(policyprofile.FieldToolAllowlist, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(policyprofile.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Locked(); ok {
		_spec.SetField(policyprofile.FieldLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolicyProfileUpdateOne is the builder for updating a single PolicyProfile entity.
type PolicyProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolicyProfileMutation
}

// SetName sets the "name" field.
func (_u *PolicyProfileUpdateOne) SetName(v string) *PolicyProfileUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableName(v *string) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (_u *PolicyProfileUpdateOne) SetReadOnlyMode(v bool) *PolicyProfileUpdateOne {
	_u.mutation.SetReadOnlyMode(v)
	return _u
}

// SetNillableReadOnlyMode sets the "read_only_mode" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableReadOnlyMode(v *bool) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetReadOnlyMode(*v)
	}
	return _u
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (_u *PolicyProfileUpdateOne) SetMaxRowsPerQuery(v int) *PolicyProfileUpdateOne {
	_u.mutation.ResetMaxRowsPerQuery()
	_u.mutation.SetMaxRowsPerQuery(v)
	return _u
}

// SetNillableMaxRowsPerQuery sets the "max_rows_per_query" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableMaxRowsPerQuery(v *int) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetMaxRowsPerQuery(*v)
	}
	return _u
}

// AddMaxRowsPerQuery adds value to the "max_rows_per_query" field.
func (_u *PolicyProfileUpdateOne) AddMaxRowsPerQuery(v int) *PolicyProfileUpdateOne {
	_u.mutation.AddMaxRowsPerQuery(v)
	return _u
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (_u *PolicyProfileUpdateOne) SetRequireRowLimit(v bool) *PolicyProfileUpdateOne {
	_u.mutation.SetRequireRowLimit(v)
	return _u
}

// SetNillableRequireRowLimit sets the "require_row_limit" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableRequireRowLimit(v *bool) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetRequireRowLimit(*v)
	}
	return _u
}

// SetBlockedFields sets the "blocked_fields" field.
func (_u *PolicyProfileUpdateOne) SetBlockedFields(v []string) *PolicyProfileUpdateOne {
	_u.mutation.SetBlockedFields(v)
	return _u
}

// AppendBlockedFields appends value to the "blocked_fields" field.
func (_u *PolicyProfileUpdateOne) AppendBlockedFields(v []string) *PolicyProfileUpdateOne {
	_u.mutation.AppendBlockedFields(v)
	return _u
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (_u *PolicyProfileUpdateOne) ClearBlockedFields() *PolicyProfileUpdateOne {
	_u.mutation.ClearBlockedFields()
	return _u
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (_u *PolicyProfileUpdateOne) SetAllowedRecordTypes(v []string) *PolicyProfileUpdateOne {
	_u.mutation.SetAllowedRecordTypes(v)
	return _u
}

// AppendAllowedRecordTypes appends value to the "allowed_record_types" field.
func (_u *PolicyProfileUpdateOne) AppendAllowedRecordTypes(v []string) *PolicyProfileUpdateOne {
	_u.mutation.AppendAllowedRecordTypes(v)
	return _u
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (_u *PolicyProfileUpdateOne) ClearAllowedRecordTypes() *PolicyProfileUpdateOne {
	_u.mutation.ClearAllowedRecordTypes()
	return _u
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (_u *PolicyProfileUpdateOne) SetToolAllowlist(v []string) *PolicyProfileUpdateOne {
	_u.mutation.SetToolAllowlist(v)
	return _u
}

// AppendToolAllowlist appends value to the "tool_allowlist" field.
func (_u *PolicyProfileUpdateOne) AppendToolAllowlist(v []string) *PolicyProfileUpdateOne {
	_u.mutation.AppendToolAllowlist(v)
	return _u
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (_u *PolicyProfileUpdateOne) ClearToolAllowlist() *PolicyProfileUpdateOne {
	_u.mutation.ClearToolAllowlist()
	return _u
}

// SetActive sets the "active" field.
func (_u *PolicyProfileUpdateOne) SetActive(v bool) *PolicyProfileUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableActive(v *bool) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetLocked sets the "locked" field.
func (_u *PolicyProfileUpdateOne) SetLocked(v bool) *PolicyProfileUpdateOne {
	_u.mutation.SetLocked(v)
	return _u
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_u *PolicyProfileUpdateOne) SetNillableLocked(v *bool) *PolicyProfileUpdateOne {
	if v != nil {
		_u.SetLocked(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PolicyProfileUpdateOne) SetUpdatedAt(v time.Time) *PolicyProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PolicyProfileMutation object of the builder.
func (_u *PolicyProfileUpdateOne) Mutation() *PolicyProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolicyProfileUpdate builder.
func (_u *PolicyProfileUpdateOne) Where(ps ...predicate.PolicyProfile) *PolicyProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolicyProfileUpdateOne) Select(field string, fields ...string) *PolicyProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolicyProfile entity.
func (_u *PolicyProfileUpdateOne) Save(ctx context.Context) (*PolicyProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolicyProfileUpdateOne) SaveX(ctx context.Context) *PolicyProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolicyProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolicyProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PolicyProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := policyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolicyProfileUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolicyProfile.tenant"`)
	}
	return nil
}

func (_u *PolicyProfileUpdateOne) sqlSave(ctx context.Context) (_node *PolicyProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(policyprofile.Table, policyprofile.Columns, sqlgraph.NewFieldSpec(policyprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolicyProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, policyprofile.FieldID)
		for _, f := range fields {
			if !policyprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != policyprofile.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(policyprofile.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReadOnlyMode(); ok {
		_spec.SetField(policyprofile.FieldReadOnlyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MaxRowsPerQuery(); ok {
		_spec.SetField(policyprofile.FieldMaxRowsPerQuery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRowsPerQuery(); ok {
		_spec.AddField(policyprofile.FieldMaxRowsPerQuery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireRowLimit(); ok {
		_spec.SetField(policyprofile.FieldRequireRowLimit, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BlockedFields(); ok {
		_spec.SetField(policyprofile.FieldBlockedFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlockedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldBlockedFields, value)
		})
	}
	if _u.mutation.BlockedFieldsCleared() {
		_spec.ClearField(policyprofile.FieldBlockedFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.AllowedRecordTypes(); ok {
		_spec.SetField(policyprofile.FieldAllowedRecordTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedRecordTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldAllowedRecordTypes, value)
		})
	}
	if _u.mutation.AllowedRecordTypesCleared() {
		_spec.ClearField(policyprofile.FieldAllowedRecordTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolAllowlist(); ok {
		_spec.SetField(policyprofile.FieldToolAllowlist, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolAllowlist(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, policyprofile.FieldToolAllowlist, value)
		})
	}
	if _u.mutation.ToolAllowlistCleared() {
		_spec.ClearField(policyprofile.FieldToolAllowlist, field.TypeJSON)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(policyprofile.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Locked(); ok {
		_spec.SetField(policyprofile.FieldLocked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(policyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PolicyProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{policyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
