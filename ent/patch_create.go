// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
)

// PatchCreate is the builder for creating a Patch entity.
type PatchCreate struct {
	config
	mutation *PatchMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChangesetID sets the "changeset_id" field.
func (_c *PatchCreate) SetChangesetID(v string) *PatchCreate {
	_c.mutation.SetChangesetID(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *PatchCreate) SetOperation(v patch.Operation) *PatchCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *PatchCreate) SetFilePath(v string) *PatchCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (_c *PatchCreate) SetBaselineSha256(v string) *PatchCreate {
	_c.mutation.SetBaselineSha256(v)
	return _c
}

// SetNillableBaselineSha256 sets the "baseline_sha256" field if the given value is not nil.
func (_c *PatchCreate) SetNillableBaselineSha256(v *string) *PatchCreate {
	if v != nil {
		_c.SetBaselineSha256(*v)
	}
	return _c
}

// SetUnifiedDiff sets the "unified_diff" field.
func (_c *PatchCreate) SetUnifiedDiff(v string) *PatchCreate {
	_c.mutation.SetUnifiedDiff(v)
	return _c
}

// SetNillableUnifiedDiff sets the "unified_diff" field if the given value is not nil.
func (_c *PatchCreate) SetNillableUnifiedDiff(v *string) *PatchCreate {
	if v != nil {
		_c.SetUnifiedDiff(*v)
	}
	return _c
}

// SetNewContent sets the "new_content" field.
func (_c *PatchCreate) SetNewContent(v string) *PatchCreate {
	_c.mutation.SetNewContent(v)
	return _c
}

// SetNillableNewContent sets the "new_content" field if the given value is not nil.
func (_c *PatchCreate) SetNillableNewContent(v *string) *PatchCreate {
	if v != nil {
		_c.SetNewContent(*v)
	}
	return _c
}

// SetApplyOrder sets the "apply_order" field.
func (_c *PatchCreate) SetApplyOrder(v int) *PatchCreate {
	_c.mutation.SetApplyOrder(v)
	return _c
}

// SetNillableApplyOrder sets the "apply_order" field if the given value is not nil.
func (_c *PatchCreate) SetNillableApplyOrder(v *int) *PatchCreate {
	if v != nil {
		_c.SetApplyOrder(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatchCreate) SetID(v string) *PatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChangeset sets the "changeset" edge to the Changeset entity.
func (_c *PatchCreate) SetChangeset(v *Changeset) *PatchCreate {
	return _c.SetChangesetID(v.ID)
}

// Mutation returns the PatchMutation object of the builder.
func (_c *PatchCreate) Mutation() *PatchMutation {
	return _c.mutation
}

// Save creates the Patch in the database.
func (_c *PatchCreate) Save(ctx context.Context) (*Patch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatchCreate) SaveX(ctx context.Context) *Patch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatchCreate) defaults() {
	if _, ok := _c.mutation.BaselineSha256(); !ok {
		v := patch.DefaultBaselineSha256
		_c.mutation.SetBaselineSha256(v)
	}
	if _, ok := _c.mutation.ApplyOrder(); !ok {
		v := patch.DefaultApplyOrder
		_c.mutation.SetApplyOrder(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatchCreate) check() error {
	if _, ok := _c.mutation.ChangesetID(); !ok {
		return &ValidationError{Name: "changeset_id", err: errors.New(`ent: missing required field "Patch.changeset_id"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "Patch.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := patch.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Patch.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "Patch.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := patch.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Patch.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaselineSha256(); !ok {
		return &ValidationError{Name: "baseline_sha256", err: errors.New(`ent: missing required field "Patch.baseline_sha256"`)}
	}
	if _, ok := _c.mutation.ApplyOrder(); !ok {
		return &ValidationError{Name: "apply_order", err: errors.New(`ent: missing required field "Patch.apply_order"`)}
	}
	if len(_c.mutation.ChangesetIDs()) == 0 {
		return &ValidationError{Name: "changeset", err: errors.New(`ent: missing required edge "Patch.changeset"`)}
	}
	return nil
}

func (_c *PatchCreate) sqlSave(ctx context.Context) (*Patch, error) {
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
			return nil, fmt.Errorf("unexpected Patch.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatchCreate) createSpec() (*Patch, *sqlgraph.CreateSpec) {
	var (
		_node = &Patch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patch.Table, sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(patch.FieldOperation, field.TypeEnum, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(patch.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.BaselineSha256(); ok {
		_spec.SetField(patch.FieldBaselineSha256, field.TypeString, value)
		_node.BaselineSha256 = value
	}
	if value, ok := _c.mutation.UnifiedDiff(); ok {
		_spec.SetField(patch.FieldUnifiedDiff, field.TypeString, value)
		_node.UnifiedDiff = value
	}
	if value, ok := _c.mutation.NewContent(); ok {
		_spec.SetField(patch.FieldNewContent, field.TypeString, value)
		_node.NewContent = &value
	}
	if value, ok := _c.mutation.ApplyOrder(); ok {
		_spec.SetField(patch.FieldApplyOrder, field.TypeInt, value)
		_node.ApplyOrder = value
	}
	if nodes := _c.mutation.ChangesetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patch.ChangesetTable,
			Columns: []string{patch.ChangesetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(changeset.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChangesetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patch.Create().
//		SetChangesetID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatchUpsert) {
//			SetChangesetID(v+v).
//		}).
//		Exec(ctx)
func (_c *PatchCreate) OnConflict(opts ...sql.ConflictOption) *PatchUpsertOne {
	_c.conflict = opts
	return &PatchUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatchCreate) OnConflictColumns(columns ...string) *PatchUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatchUpsertOne{
		create: _c,
	}
}

type (
	// PatchUpsertOne is the builder for "upsert"-ing
	//  one Patch node.
	PatchUpsertOne struct {
		create *PatchCreate
	}

	// PatchUpsert is the "OnConflict" setter.
	PatchUpsert struct {
		*sql.UpdateSet
	}
)

// SetOperation sets the "operation" field.
func (u *PatchUpsert) SetOperation(v patch.Operation) *PatchUpsert {
	u.Set(patch.FieldOperation, v)
	return u
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *PatchUpsert) UpdateOperation() *PatchUpsert {
	u.SetExcluded(patch.FieldOperation)
	return u
}

// SetFilePath sets the "file_path" field.
func (u *PatchUpsert) SetFilePath(v string) *PatchUpsert {
	u.Set(patch.FieldFilePath, v)
	return u
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *PatchUpsert) UpdateFilePath() *PatchUpsert {
	u.SetExcluded(patch.FieldFilePath)
	return u
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (u *PatchUpsert) SetBaselineSha256(v string) *PatchUpsert {
	u.Set(patch.FieldBaselineSha256, v)
	return u
}

// UpdateBaselineSha256 sets the "baseline_sha256" field to the value that was provided on create.
func (u *PatchUpsert) UpdateBaselineSha256() *PatchUpsert {
	u.SetExcluded(patch.FieldBaselineSha256)
	return u
}

// SetUnifiedDiff sets the "unified_diff" field.
func (u *PatchUpsert) SetUnifiedDiff(v string) *PatchUpsert {
	u.Set(patch.FieldUnifiedDiff, v)
	return u
}

// UpdateUnifiedDiff sets the "unified_diff" field to the value that was provided on create.
func (u *PatchUpsert) UpdateUnifiedDiff() *PatchUpsert {
	u.SetExcluded(patch.FieldUnifiedDiff)
	return u
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (u *PatchUpsert) ClearUnifiedDiff() *PatchUpsert {
	u.SetNull(patch.FieldUnifiedDiff)
	return u
}

// SetNewContent sets the "new_content" field.
func (u *PatchUpsert) SetNewContent(v string) *PatchUpsert {
	u.Set(patch.FieldNewContent, v)
	return u
}

// UpdateNewContent sets the "new_content" field to the value that was provided on create.
func (u *PatchUpsert) UpdateNewContent() *PatchUpsert {
	u.SetExcluded(patch.FieldNewContent)
	return u
}

// ClearNewContent clears the value of the "new_content" field.
func (u *PatchUpsert) ClearNewContent() *PatchUpsert {
	u.SetNull(patch.FieldNewContent)
	return u
}

// SetApplyOrder sets the "apply_order" field.
func (u *PatchUpsert) SetApplyOrder(v int) *PatchUpsert {
	u.Set(patch.FieldApplyOrder, v)
	return u
}

// UpdateApplyOrder sets the "apply_order" field to the value that was provided on create.
func (u *PatchUpsert) UpdateApplyOrder() *PatchUpsert {
	u.SetExcluded(patch.FieldApplyOrder)
	return u
}

// AddApplyOrder adds v to the "apply_order" field.
func (u *PatchUpsert) AddApplyOrder(v int) *PatchUpsert {
	u.Add(patch.FieldApplyOrder, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatchUpsertOne) UpdateNewValues() *PatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patch.FieldID)
		}
		if _, exists := u.create.mutation.ChangesetID(); exists {
			s.SetIgnore(patch.FieldChangesetID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patch.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatchUpsertOne) Ignore() *PatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatchUpsertOne) DoNothing() *PatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatchCreate.OnConflict
// documentation for more info.
func (u *PatchUpsertOne) Update(set func(*PatchUpsert)) *PatchUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *PatchUpsertOne) SetOperation(v patch.Operation) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateOperation() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateOperation()
	})
}

// SetFilePath sets the "file_path" field.
func (u *PatchUpsertOne) SetFilePath(v string) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateFilePath() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateFilePath()
	})
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (u *PatchUpsertOne) SetBaselineSha256(v string) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetBaselineSha256(v)
	})
}

// UpdateBaselineSha256 sets the "baseline_sha256" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateBaselineSha256() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateBaselineSha256()
	})
}

// SetUnifiedDiff sets the "unified_diff" field.
func (u *PatchUpsertOne) SetUnifiedDiff(v string) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetUnifiedDiff(v)
	})
}

// UpdateUnifiedDiff sets the "unified_diff" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateUnifiedDiff() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateUnifiedDiff()
	})
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (u *PatchUpsertOne) ClearUnifiedDiff() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.ClearUnifiedDiff()
	})
}

// SetNewContent sets the "new_content" field.
func (u *PatchUpsertOne) SetNewContent(v string) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetNewContent(v)
	})
}

// UpdateNewContent sets the "new_content" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateNewContent() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateNewContent()
	})
}

// ClearNewContent clears the value of the "new_content" field.
func (u *PatchUpsertOne) ClearNewContent() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.ClearNewContent()
	})
}

// SetApplyOrder sets the "apply_order" field.
func (u *PatchUpsertOne) SetApplyOrder(v int) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.SetApplyOrder(v)
	})
}

// AddApplyOrder adds v to the "apply_order" field.
func (u *PatchUpsertOne) AddApplyOrder(v int) *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.AddApplyOrder(v)
	})
}

// UpdateApplyOrder sets the "apply_order" field to the value that was provided on create.
func (u *PatchUpsertOne) UpdateApplyOrder() *PatchUpsertOne {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateApplyOrder()
	})
}

// Exec executes the query.
func (u *PatchUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatchCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatchUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatchUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PatchUpsertOne.ID is not supported by MySQL driver. Use PatchUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatchUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatchCreateBulk is the builder for creating many Patch entities in bulk.
type PatchCreateBulk struct {
	config
	err      error
	builders []*PatchCreate
	conflict []sql.ConflictOption
}

// Save creates the Patch entities in the database.
func (_c *PatchCreateBulk) Save(ctx context.Context) ([]*Patch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatchMutation)
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
func (_c *PatchCreateBulk) SaveX(ctx context.Context) []*Patch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patch.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatchUpsert) {
//			SetChangesetID(v+v).
//		}).
//		Exec(ctx)
func (_c *PatchCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatchUpsertBulk {
	_c.conflict = opts
	return &PatchUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patch.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatchCreateBulk) OnConflictColumns(columns ...string) *PatchUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatchUpsertBulk{
		create: _c,
	}
}

// PatchUpsertBulk is the builder for "upsert"-ing
// a bulk of Patch nodes.
type PatchUpsertBulk struct {
	create *PatchCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patch.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patch.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatchUpsertBulk) UpdateNewValues() *PatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patch.FieldID)
			}
			if _, exists := b.mutation.ChangesetID(); exists {
				s.SetIgnore(patch.FieldChangesetID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patch.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatchUpsertBulk) Ignore() *PatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatchUpsertBulk) DoNothing() *PatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatchCreateBulk.OnConflict
// documentation for more info.
func (u *PatchUpsertBulk) Update(set func(*PatchUpsert)) *PatchUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatchUpsert{UpdateSet: update})
	}))
	return u
}

// SetOperation sets the "operation" field.
func (u *PatchUpsertBulk) SetOperation(v patch.Operation) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetOperation(v)
	})
}

// UpdateOperation sets the "operation" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateOperation() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateOperation()
	})
}

// SetFilePath sets the "file_path" field.
func (u *PatchUpsertBulk) SetFilePath(v string) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetFilePath(v)
	})
}

// UpdateFilePath sets the "file_path" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateFilePath() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateFilePath()
	})
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (u *PatchUpsertBulk) SetBaselineSha256(v string) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetBaselineSha256(v)
	})
}

// UpdateBaselineSha256 sets the "baseline_sha256" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateBaselineSha256() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateBaselineSha256()
	})
}

// SetUnifiedDiff sets the "unified_diff" field.
func (u *PatchUpsertBulk) SetUnifiedDiff(v string) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetUnifiedDiff(v)
	})
}

// UpdateUnifiedDiff sets the "unified_diff" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateUnifiedDiff() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateUnifiedDiff()
	})
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (u *PatchUpsertBulk) ClearUnifiedDiff() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.ClearUnifiedDiff()
	})
}

// SetNewContent sets the "new_content" field.
func (u *PatchUpsertBulk) SetNewContent(v string) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetNewContent(v)
	})
}

// UpdateNewContent sets the "new_content" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateNewContent() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateNewContent()
	})
}

// ClearNewContent clears the value of the "new_content" field.
func (u *PatchUpsertBulk) ClearNewContent() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.ClearNewContent()
	})
}

// SetApplyOrder sets the "apply_order" field.
func (u *PatchUpsertBulk) SetApplyOrder(v int) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.SetApplyOrder(v)
	})
}

// AddApplyOrder adds v to the "apply_order" field.
func (u *PatchUpsertBulk) AddApplyOrder(v int) *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.AddApplyOrder(v)
	})
}

// UpdateApplyOrder sets the "apply_order" field to the value that was provided on create.
func (u *PatchUpsertBulk) UpdateApplyOrder() *PatchUpsertBulk {
	return u.Update(func(s *PatchUpsert) {
		s.UpdateApplyOrder()
	})
}

// Exec executes the query.
func (u *PatchUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PatchCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PatchCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatchUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
