// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/suiteops/suitepilot/ent/policyprofile"
	"github.com/suiteops/suitepilot/ent/tenant"
)

// PolicyProfileCreate is the builder for creating a PolicyProfile entity.
type PolicyProfileCreate struct {
	config
	mutation *PolicyProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *PolicyProfileCreate) SetTenantID(v string) *PolicyProfileCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PolicyProfileCreate) SetName(v string) *PolicyProfileCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (_c *PolicyProfileCreate) SetReadOnlyMode(v bool) *PolicyProfileCreate {
	_c.mutation.SetReadOnlyMode(v)
	return _c
}

// SetNillableReadOnlyMode sets the "read_only_mode" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableReadOnlyMode(v *bool) *PolicyProfileCreate {
	if v != nil {
		_c.SetReadOnlyMode(*v)
	}
	return _c
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (_c *PolicyProfileCreate) SetMaxRowsPerQuery(v int) *PolicyProfileCreate {
	_c.mutation.SetMaxRowsPerQuery(v)
	return _c
}

// SetNillableMaxRowsPerQuery sets the "max_rows_per_query" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableMaxRowsPerQuery(v *int) *PolicyProfileCreate {
	if v != nil {
		_c.SetMaxRowsPerQuery(*v)
	}
	return _c
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (_c *PolicyProfileCreate) SetRequireRowLimit(v bool) *PolicyProfileCreate {
	_c.mutation.SetRequireRowLimit(v)
	return _c
}

// SetNillableRequireRowLimit sets the "require_row_limit" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableRequireRowLimit(v *bool) *PolicyProfileCreate {
	if v != nil {
		_c.SetRequireRowLimit(*v)
	}
	return _c
}

// SetBlockedFields sets the "blocked_fields" field.
func (_c *PolicyProfileCreate) SetBlockedFields(v []string) *PolicyProfileCreate {
	_c.mutation.SetBlockedFields(v)
	return _c
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (_c *PolicyProfileCreate) SetAllowedRecordTypes(v []string) *PolicyProfileCreate {
	_c.mutation.SetAllowedRecordTypes(v)
	return _c
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (_c *PolicyProfileCreate) SetToolAllowlist(v []string) *PolicyProfileCreate {
	_c.mutation.SetToolAllowlist(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *PolicyProfileCreate) SetActive(v bool) *PolicyProfileCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableActive(v *bool) *PolicyProfileCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetLocked sets the "locked" field.
func (_c *PolicyProfileCreate) SetLocked(v bool) *PolicyProfileCreate {
	_c.mutation.SetLocked(v)
	return _c
}

// SetNillableLocked sets the "locked" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableLocked(v *bool) *PolicyProfileCreate {
	if v != nil {
		_c.SetLocked(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolicyProfileCreate) SetCreatedAt(v time.Time) *PolicyProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableCreatedAt(v *time.Time) *PolicyProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PolicyProfileCreate) SetUpdatedAt(v time.Time) *PolicyProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PolicyProfileCreate) SetNillableUpdatedAt(v *time.Time) *PolicyProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolicyProfileCreate) SetID(v string) *PolicyProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *PolicyProfileCreate) SetTenant(v *Tenant) *PolicyProfileCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the PolicyProfileMutation object of the builder.
func (_c *PolicyProfileCreate) Mutation() *PolicyProfileMutation {
	return _c.mutation
}

// Save creates the PolicyProfile in the database.
func (_c *PolicyProfileCreate) Save(ctx context.Context) (*PolicyProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolicyProfileCreate) SaveX(ctx context.Context) *PolicyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolicyProfileCreate) defaults() {
	if _, ok := _c.mutation.ReadOnlyMode(); !ok {
		v := policyprofile.DefaultReadOnlyMode
		_c.mutation.SetReadOnlyMode(v)
	}
	if _, ok := _c.mutation.MaxRowsPerQuery(); !ok {
		v := policyprofile.DefaultMaxRowsPerQuery
		_c.mutation.SetMaxRowsPerQuery(v)
	}
	if _, ok := _c.mutation.RequireRowLimit(); !ok {
		v := policyprofile.DefaultRequireRowLimit
		_c.mutation.SetRequireRowLimit(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := policyprofile.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Locked(); !ok {
		v := policyprofile.DefaultLocked
		_c.mutation.SetLocked(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := policyprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := policyprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolicyProfileCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PolicyProfile.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PolicyProfile.name"`)}
	}
	if _, ok := _c.mutation.ReadOnlyMode(); !ok {
		return &ValidationError{Name: "read_only_mode", err: errors.New(`ent: missing required field "PolicyProfile.read_only_mode"`)}
	}
	if _, ok := _c.mutation.MaxRowsPerQuery(); !ok {
		return &ValidationError{Name: "max_rows_per_query", err: errors.New(`ent: missing required field "PolicyProfile.max_rows_per_query"`)}
	}
	if _, ok := _c.mutation.RequireRowLimit(); !ok {
		return &ValidationError{Name: "require_row_limit", err: errors.New(`ent: missing required field "PolicyProfile.require_row_limit"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "PolicyProfile.active"`)}
	}
	if _, ok := _c.mutation.Locked(); !ok {
		return &ValidationError{Name: "locked", err: errors.New(`ent: missing required field "PolicyProfile.locked"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolicyProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PolicyProfile.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "PolicyProfile.tenant"`)}
	}
	return nil
}

func (_c *PolicyProfileCreate) sqlSave(ctx context.Context) (*PolicyProfile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PolicyProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolicyProfileCreate) createSpec() (*PolicyProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &PolicyProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(policyprofile.Table, sqlgraph.NewFieldSpec(policyprofile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(policyprofile.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ReadOnlyMode(); ok {
		_spec.SetField(policyprofile.FieldReadOnlyMode, field.TypeBool, value)
		_node.ReadOnlyMode = value
	}
	if value, ok := _c.mutation.MaxRowsPerQuery(); ok {
		_spec.SetField(policyprofile.FieldMaxRowsPerQuery, field.TypeInt, value)
		_node.MaxRowsPerQuery = value
	}
	if value, ok := _c.mutation.RequireRowLimit(); ok {
		_spec.SetField(policyprofile.FieldRequireRowLimit, field.TypeBool, value)
		_node.RequireRowLimit = value
	}
	if value, ok := _c.mutation.BlockedFields(); ok {
		_spec.SetField(policyprofile.FieldBlockedFields, field.TypeJSON, value)
		_node.BlockedFields = value
	}
	if value, ok := _c.mutation.AllowedRecordTypes(); ok {
		_spec.SetField(policyprofile.FieldAllowedRecordTypes, field.TypeJSON, value)
		_node.AllowedRecordTypes = value
	}
	if value, ok := _c.mutation.ToolAllowlist(); ok {
		_spec.SetField(policyprofile.FieldToolAllowlist, field.TypeJSON, value)
		_node.ToolAllowlist = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(policyprofile.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Locked(); ok {
		_spec.SetField(policyprofile.FieldLocked, field.TypeBool, value)
		_node.Locked = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(policyprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(policyprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   policyprofile.TenantTable,
			Columns: []string{policyprofile.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PolicyProfile.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PolicyProfileUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PolicyProfileCreate) OnConflict(opts ...sql.ConflictOption) *PolicyProfileUpsertOne {
	_c.conflict = opts
	return &PolicyProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PolicyProfileCreate) OnConflictColumns(columns ...string) *PolicyProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PolicyProfileUpsertOne{
		create: _c,
	}
}

type (
	// PolicyProfileUpsertOne is the builder for "upsert"-ing
	//  one PolicyProfile node.
	PolicyProfileUpsertOne struct {
		create *PolicyProfileCreate
	}

	// PolicyProfileUpsert is the "OnConflict" setter.
	PolicyProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *PolicyProfileUpsert) SetName(v string) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateName() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldName)
	return u
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (u *PolicyProfileUpsert) SetReadOnlyMode(v bool) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldReadOnlyMode, v)
	return u
}

// UpdateReadOnlyMode sets the "read_only_mode" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateReadOnlyMode() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldReadOnlyMode)
	return u
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (u *PolicyProfileUpsert) SetMaxRowsPerQuery(v int) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldMaxRowsPerQuery, v)
	return u
}

// UpdateMaxRowsPerQuery sets the "max_rows_per_query" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateMaxRowsPerQuery() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldMaxRowsPerQuery)
	return u
}

// AddMaxRowsPerQuery adds v to the "max_rows_per_query" field.
func (u *PolicyProfileUpsert) AddMaxRowsPerQuery(v int) *PolicyProfileUpsert {
	u.Add(policyprofile.FieldMaxRowsPerQuery, v)
	return u
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (u *PolicyProfileUpsert) SetRequireRowLimit(v bool) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldRequireRowLimit, v)
	return u
}

// UpdateRequireRowLimit sets the "require_row_limit" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateRequireRowLimit() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldRequireRowLimit)
	return u
}

// SetBlockedFields sets the "blocked_fields" field.
func (u *PolicyProfileUpsert) SetBlockedFields(v []string) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldBlockedFields, v)
	return u
}

// UpdateBlockedFields sets the "blocked_fields" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateBlockedFields() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldBlockedFields)
	return u
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (u *PolicyProfileUpsert) ClearBlockedFields() *PolicyProfileUpsert {
	u.SetNull(policyprofile.FieldBlockedFields)
	return u
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (u *PolicyProfileUpsert) SetAllowedRecordTypes(v []string) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldAllowedRecordTypes, v)
	return u
}

// UpdateAllowedRecordTypes sets the "allowed_record_types" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateAllowedRecordTypes() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldAllowedRecordTypes)
	return u
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (u *PolicyProfileUpsert) ClearAllowedRecordTypes() *PolicyProfileUpsert {
	u.SetNull(policyprofile.FieldAllowedRecordTypes)
	return u
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (u *PolicyProfileUpsert) SetToolAllowlist(v []string) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldToolAllowlist, v)
	return u
}

// UpdateToolAllowlist sets the "tool_allowlist" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateToolAllowlist() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldToolAllowlist)
	return u
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (u *PolicyProfileUpsert) ClearToolAllowlist() *PolicyProfileUpsert {
	u.SetNull(policyprofile.FieldToolAllowlist)
	return u
}

// SetActive sets the "active" field.
func (u *PolicyProfileUpsert) SetActive(v bool) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldActive, v)
	return u
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateActive() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldActive)
	return u
}

// SetLocked sets the "locked" field.
func (u *PolicyProfileUpsert) SetLocked(v bool) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldLocked, v)
	return u
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateLocked() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldLocked)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyProfileUpsert) SetUpdatedAt(v time.Time) *PolicyProfileUpsert {
	u.Set(policyprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyProfileUpsert) UpdateUpdatedAt() *PolicyProfileUpsert {
	u.SetExcluded(policyprofile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(policyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PolicyProfileUpsertOne) UpdateNewValues() *PolicyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(policyprofile.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(policyprofile.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(policyprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PolicyProfileUpsertOne) Ignore() *PolicyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PolicyProfileUpsertOne) DoNothing() *PolicyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PolicyProfileCreate.OnConflict
// documentation for more info.
func (u *PolicyProfileUpsertOne) Update(set func(*PolicyProfileUpsert)) *PolicyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PolicyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PolicyProfileUpsertOne) SetName(v string) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateName() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateName()
	})
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (u *PolicyProfileUpsertOne) SetReadOnlyMode(v bool) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetReadOnlyMode(v)
	})
}

// UpdateReadOnlyMode sets the "read_only_mode" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateReadOnlyMode() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateReadOnlyMode()
	})
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (u *PolicyProfileUpsertOne) SetMaxRowsPerQuery(v int) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetMaxRowsPerQuery(v)
	})
}

// AddMaxRowsPerQuery adds v to the "max_rows_per_query" field.
func (u *PolicyProfileUpsertOne) AddMaxRowsPerQuery(v int) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.AddMaxRowsPerQuery(v)
	})
}

// UpdateMaxRowsPerQuery sets the "max_rows_per_query" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateMaxRowsPerQuery() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateMaxRowsPerQuery()
	})
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (u *PolicyProfileUpsertOne) SetRequireRowLimit(v bool) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetRequireRowLimit(v)
	})
}

// UpdateRequireRowLimit sets the "require_row_limit" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateRequireRowLimit() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateRequireRowLimit()
	})
}

// SetBlockedFields sets the "blocked_fields" field.
func (u *PolicyProfileUpsertOne) SetBlockedFields(v []string) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetBlockedFields(v)
	})
}

// UpdateBlockedFields sets the "blocked_fields" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateBlockedFields() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateBlockedFields()
	})
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (u *PolicyProfileUpsertOne) ClearBlockedFields() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearBlockedFields()
	})
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (u *PolicyProfileUpsertOne) SetAllowedRecordTypes(v []string) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetAllowedRecordTypes(v)
	})
}

// UpdateAllowedRecordTypes sets the "allowed_record_types" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateAllowedRecordTypes() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateAllowedRecordTypes()
	})
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (u *PolicyProfileUpsertOne) ClearAllowedRecordTypes() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearAllowedRecordTypes()
	})
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (u *PolicyProfileUpsertOne) SetToolAllowlist(v []string) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetToolAllowlist(v)
	})
}

// UpdateToolAllowlist sets the "tool_allowlist" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateToolAllowlist() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateToolAllowlist()
	})
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (u *PolicyProfileUpsertOne) ClearToolAllowlist() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearToolAllowlist()
	})
}

// SetActive sets the "active" field.
func (u *PolicyProfileUpsertOne) SetActive(v bool) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateActive() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateActive()
	})
}

// SetLocked sets the "locked" field.
func (u *PolicyProfileUpsertOne) SetLocked(v bool) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetLocked(v)
	})
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateLocked() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateLocked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyProfileUpsertOne) SetUpdatedAt(v time.Time) *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyProfileUpsertOne) UpdateUpdatedAt() *PolicyProfileUpsertOne {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PolicyProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PolicyProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PolicyProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PolicyProfileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PolicyProfileUpsertOne.ID is not supported by MySQL driver. Use PolicyProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PolicyProfileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PolicyProfileCreateBulk is the builder for creating many PolicyProfile entities in bulk.
type PolicyProfileCreateBulk struct {
	config
	err      error
	builders []*PolicyProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the PolicyProfile entities in the database.
func (_c *PolicyProfileCreateBulk) Save(ctx context.Context) ([]*PolicyProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolicyProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolicyProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PolicyProfileCreateBulk) SaveX(ctx context.Context) []*PolicyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolicyProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolicyProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PolicyProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PolicyProfileUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *PolicyProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *PolicyProfileUpsertBulk {
	_c.conflict = opts
	return &PolicyProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PolicyProfileCreateBulk) OnConflictColumns(columns ...string) *PolicyProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PolicyProfileUpsertBulk{
		create: _c,
	}
}

// PolicyProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of PolicyProfile nodes.
type PolicyProfileUpsertBulk struct {
	create *PolicyProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(policyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PolicyProfileUpsertBulk) UpdateNewValues() *PolicyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(policyprofile.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(policyprofile.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(policyprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PolicyProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PolicyProfileUpsertBulk) Ignore() *PolicyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PolicyProfileUpsertBulk) DoNothing() *PolicyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PolicyProfileCreateBulk.OnConflict
// documentation for more info.
func (u *PolicyProfileUpsertBulk) Update(set func(*PolicyProfileUpsert)) *PolicyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PolicyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *PolicyProfileUpsertBulk) SetName(v string) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateName() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateName()
	})
}

// SetReadOnlyMode sets the "read_only_mode" field.
func (u *PolicyProfileUpsertBulk) SetReadOnlyMode(v bool) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetReadOnlyMode(v)
	})
}

// UpdateReadOnlyMode sets the "read_only_mode" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateReadOnlyMode() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateReadOnlyMode()
	})
}

// SetMaxRowsPerQuery sets the "max_rows_per_query" field.
func (u *PolicyProfileUpsertBulk) SetMaxRowsPerQuery(v int) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetMaxRowsPerQuery(v)
	})
}

// AddMaxRowsPerQuery adds v to the "max_rows_per_query" field.
func (u *PolicyProfileUpsertBulk) AddMaxRowsPerQuery(v int) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.AddMaxRowsPerQuery(v)
	})
}

// UpdateMaxRowsPerQuery sets the "max_rows_per_query" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateMaxRowsPerQuery() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateMaxRowsPerQuery()
	})
}

// SetRequireRowLimit sets the "require_row_limit" field.
func (u *PolicyProfileUpsertBulk) SetRequireRowLimit(v bool) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetRequireRowLimit(v)
	})
}

// UpdateRequireRowLimit sets the "require_row_limit" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateRequireRowLimit() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateRequireRowLimit()
	})
}

// SetBlockedFields sets the "blocked_fields" field.
func (u *PolicyProfileUpsertBulk) SetBlockedFields(v []string) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetBlockedFields(v)
	})
}

// UpdateBlockedFields sets the "blocked_fields" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateBlockedFields() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateBlockedFields()
	})
}

// ClearBlockedFields clears the value of the "blocked_fields" field.
func (u *PolicyProfileUpsertBulk) ClearBlockedFields() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearBlockedFields()
	})
}

// SetAllowedRecordTypes sets the "allowed_record_types" field.
func (u *PolicyProfileUpsertBulk) SetAllowedRecordTypes(v []string) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetAllowedRecordTypes(v)
	})
}

// UpdateAllowedRecordTypes sets the "allowed_record_types" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateAllowedRecordTypes() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateAllowedRecordTypes()
	})
}

// ClearAllowedRecordTypes clears the value of the "allowed_record_types" field.
func (u *PolicyProfileUpsertBulk) ClearAllowedRecordTypes() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearAllowedRecordTypes()
	})
}

// SetToolAllowlist sets the "tool_allowlist" field.
func (u *PolicyProfileUpsertBulk) SetToolAllowlist(v []string) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetToolAllowlist(v)
	})
}

// UpdateToolAllowlist sets the "tool_allowlist" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateToolAllowlist() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateToolAllowlist()
	})
}

// ClearToolAllowlist clears the value of the "tool_allowlist" field.
func (u *PolicyProfileUpsertBulk) ClearToolAllowlist() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.ClearToolAllowlist()
	})
}

// SetActive sets the "active" field.
func (u *PolicyProfileUpsertBulk) SetActive(v bool) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetActive(v)
	})
}

// UpdateActive sets the "active" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateActive() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateActive()
	})
}

// SetLocked sets the "locked" field.
func (u *PolicyProfileUpsertBulk) SetLocked(v bool) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetLocked(v)
	})
}

// UpdateLocked sets the "locked" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateLocked() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateLocked()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PolicyProfileUpsertBulk) SetUpdatedAt(v time.Time) *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PolicyProfileUpsertBulk) UpdateUpdatedAt() *PolicyProfileUpsertBulk {
	return u.Update(func(s *PolicyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PolicyProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PolicyProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PolicyProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PolicyProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
