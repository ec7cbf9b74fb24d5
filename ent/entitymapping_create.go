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
	"github.com/suiteops/suitepilot/ent/entitymapping"
	"github.com/suiteops/suitepilot/ent/tenant"
)

// EntityMappingCreate is the builder for creating a EntityMapping entity.
type EntityMappingCreate struct {
	config
	mutation *EntityMappingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *EntityMappingCreate) SetTenantID(v string) *EntityMappingCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityMappingCreate) SetEntityType(v string) *EntityMappingCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetScriptID sets the "script_id" field.
func (_c *EntityMappingCreate) SetScriptID(v string) *EntityMappingCreate {
	_c.mutation.SetScriptID(v)
	return _c
}

// SetNaturalName sets the "natural_name" field.
func (_c *EntityMappingCreate) SetNaturalName(v string) *EntityMappingCreate {
	_c.mutation.SetNaturalName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *EntityMappingCreate) SetDescription(v string) *EntityMappingCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EntityMappingCreate) SetNillableDescription(v *string) *EntityMappingCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EntityMappingCreate) SetUpdatedAt(v time.Time) *EntityMappingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EntityMappingCreate) SetNillableUpdatedAt(v *time.Time) *EntityMappingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntityMappingCreate) SetID(v string) *EntityMappingCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *EntityMappingCreate) SetTenant(v *Tenant) *EntityMappingCreate {
	return _c.SetTenantID(v.ID)
}

// Mutation returns the EntityMappingMutation object of the builder.
func (_c *EntityMappingCreate) Mutation() *EntityMappingMutation {
	return _c.mutation
}

// Save creates the EntityMapping in the database.
func (_c *EntityMappingCreate) Save(ctx context.Context) (*EntityMapping, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityMappingCreate) SaveX(ctx context.Context) *EntityMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMappingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMappingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityMappingCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := entitymapping.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityMappingCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EntityMapping.tenant_id"`)}
	}
	if _, ok := _c.mutation.EntityType(); !ok {
		return &ValidationError{Name: "entity_type", err: errors.New(`ent: missing required field "EntityMapping.entity_type"`)}
	}
	if _, ok := _c.mutation.ScriptID(); !ok {
		return &ValidationError{Name: "script_id", err: errors.New(`ent: missing required field "EntityMapping.script_id"`)}
	}
	if _, ok := _c.mutation.NaturalName(); !ok {
		return &ValidationError{Name: "natural_name", err: errors.New(`ent: missing required field "EntityMapping.natural_name"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EntityMapping.updated_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "EntityMapping.tenant"`)}
	}
	return nil
}

func (_c *EntityMappingCreate) sqlSave(ctx context.Context) (*EntityMapping, error) {
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
			return nil, fmt.Errorf("unexpected EntityMapping.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityMappingCreate) createSpec() (*EntityMapping, *sqlgraph.CreateSpec) {
	var (
		_node = &EntityMapping{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitymapping.Table, sqlgraph.NewFieldSpec(entitymapping.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entitymapping.FieldEntityType, field.TypeString, value)
		_node.EntityType = value
	}
	if value, ok := _c.mutation.ScriptID(); ok {
		_spec.SetField(entitymapping.FieldScriptID, field.TypeString, value)
		_node.ScriptID = value
	}
	if value, ok := _c.mutation.NaturalName(); ok {
		_spec.SetField(entitymapping.FieldNaturalName, field.TypeString, value)
		_node.NaturalName = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(entitymapping.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(entitymapping.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitymapping.TenantTable,
			Columns: []string{entitymapping.TenantColumn},
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
//	client.EntityMapping.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMappingUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMappingCreate) OnConflict(opts ...sql.ConflictOption) *EntityMappingUpsertOne {
	_c.conflict = opts
	return &EntityMappingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMappingCreate) OnConflictColumns(columns ...string) *EntityMappingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMappingUpsertOne{
		create: _c,
	}
}

type (
	// EntityMappingUpsertOne is the builder for "upsert"-ing
	//  one EntityMapping node.
	EntityMappingUpsertOne struct {
		create *EntityMappingCreate
	}

	// EntityMappingUpsert is the "OnConflict" setter.
	EntityMappingUpsert struct {
		*sql.UpdateSet
	}
)

// SetEntityType sets the "entity_type" field.
func (u *EntityMappingUpsert) SetEntityType(v string) *EntityMappingUpsert {
	u.Set(entitymapping.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityMappingUpsert) UpdateEntityType() *EntityMappingUpsert {
	u.SetExcluded(entitymapping.FieldEntityType)
	return u
}

// SetScriptID sets the "script_id" field.
func (u *EntityMappingUpsert) SetScriptID(v string) *EntityMappingUpsert {
	u.Set(entitymapping.FieldScriptID, v)
	return u
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *EntityMappingUpsert) UpdateScriptID() *EntityMappingUpsert {
	u.SetExcluded(entitymapping.FieldScriptID)
	return u
}

// SetNaturalName sets the "natural_name" field.
func (u *EntityMappingUpsert) SetNaturalName(v string) *EntityMappingUpsert {
	u.Set(entitymapping.FieldNaturalName, v)
	return u
}

// UpdateNaturalName sets the "natural_name" field to the value that was provided on create.
func (u *EntityMappingUpsert) UpdateNaturalName() *EntityMappingUpsert {
	u.SetExcluded(entitymapping.FieldNaturalName)
	return u
}

// SetDescription sets the "description" field.
func (u *EntityMappingUpsert) SetDescription(v string) *EntityMappingUpsert {
	u.Set(entitymapping.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityMappingUpsert) UpdateDescription() *EntityMappingUpsert {
	u.SetExcluded(entitymapping.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EntityMappingUpsert) ClearDescription() *EntityMappingUpsert {
	u.SetNull(entitymapping.FieldDescription)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityMappingUpsert) SetUpdatedAt(v time.Time) *EntityMappingUpsert {
	u.Set(entitymapping.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityMappingUpsert) UpdateUpdatedAt() *EntityMappingUpsert {
	u.SetExcluded(entitymapping.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitymapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityMappingUpsertOne) UpdateNewValues() *EntityMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entitymapping.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(entitymapping.FieldTenantID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityMappingUpsertOne) Ignore() *EntityMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMappingUpsertOne) DoNothing() *EntityMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMappingCreate.OnConflict
// documentation for more info.
func (u *EntityMappingUpsertOne) Update(set func(*EntityMappingUpsert)) *EntityMappingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *EntityMappingUpsertOne) SetEntityType(v string) *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityMappingUpsertOne) UpdateEntityType() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateEntityType()
	})
}

// SetScriptID sets the "script_id" field.
func (u *EntityMappingUpsertOne) SetScriptID(v string) *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetScriptID(v)
	})
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *EntityMappingUpsertOne) UpdateScriptID() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateScriptID()
	})
}

// SetNaturalName sets the "natural_name" field.
func (u *EntityMappingUpsertOne) SetNaturalName(v string) *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetNaturalName(v)
	})
}

// UpdateNaturalName sets the "natural_name" field to the value that was provided on create.
func (u *EntityMappingUpsertOne) UpdateNaturalName() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateNaturalName()
	})
}

// SetDescription sets the "description" field.
func (u *EntityMappingUpsertOne) SetDescription(v string) *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityMappingUpsertOne) UpdateDescription() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityMappingUpsertOne) ClearDescription() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.ClearDescription()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityMappingUpsertOne) SetUpdatedAt(v time.Time) *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityMappingUpsertOne) UpdateUpdatedAt() *EntityMappingUpsertOne {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EntityMappingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMappingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMappingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityMappingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityMappingUpsertOne.ID is not supported by MySQL driver. Use EntityMappingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityMappingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityMappingCreateBulk is the builder for creating many EntityMapping entities in bulk.
type EntityMappingCreateBulk struct {
	config
	err      error
	builders []*EntityMappingCreate
	conflict []sql.ConflictOption
}

// Save creates the EntityMapping entities in the database.
func (_c *EntityMappingCreateBulk) Save(ctx context.Context) ([]*EntityMapping, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntityMapping, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMappingMutation)
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
func (_c *EntityMappingCreateBulk) SaveX(ctx context.Context) []*EntityMapping {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityMappingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityMappingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EntityMapping.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityMappingUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityMappingCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityMappingUpsertBulk {
	_c.conflict = opts
	return &EntityMappingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityMappingCreateBulk) OnConflictColumns(columns ...string) *EntityMappingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityMappingUpsertBulk{
		create: _c,
	}
}

// EntityMappingUpsertBulk is the builder for "upsert"-ing
// a bulk of EntityMapping nodes.
type EntityMappingUpsertBulk struct {
	create *EntityMappingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entitymapping.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityMappingUpsertBulk) UpdateNewValues() *EntityMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entitymapping.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(entitymapping.FieldTenantID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EntityMapping.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityMappingUpsertBulk) Ignore() *EntityMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityMappingUpsertBulk) DoNothing() *EntityMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityMappingCreateBulk.OnConflict
// documentation for more info.
func (u *EntityMappingUpsertBulk) Update(set func(*EntityMappingUpsert)) *EntityMappingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityMappingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *EntityMappingUpsertBulk) SetEntityType(v string) *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityMappingUpsertBulk) UpdateEntityType() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateEntityType()
	})
}

// SetScriptID sets the "script_id" field.
func (u *EntityMappingUpsertBulk) SetScriptID(v string) *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetScriptID(v)
	})
}

// UpdateScriptID sets the "script_id" field to the value that was provided on create.
func (u *EntityMappingUpsertBulk) UpdateScriptID() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateScriptID()
	})
}

// SetNaturalName sets the "natural_name" field.
func (u *EntityMappingUpsertBulk) SetNaturalName(v string) *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetNaturalName(v)
	})
}

// UpdateNaturalName sets the "natural_name" field to the value that was provided on create.
func (u *EntityMappingUpsertBulk) UpdateNaturalName() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateNaturalName()
	})
}

// SetDescription sets the "description" field.
func (u *EntityMappingUpsertBulk) SetDescription(v string) *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityMappingUpsertBulk) UpdateDescription() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityMappingUpsertBulk) ClearDescription() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.ClearDescription()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EntityMappingUpsertBulk) SetUpdatedAt(v time.Time) *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EntityMappingUpsertBulk) UpdateUpdatedAt() *EntityMappingUpsertBulk {
	return u.Update(func(s *EntityMappingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *EntityMappingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityMappingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityMappingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityMappingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
