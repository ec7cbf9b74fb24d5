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
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/run"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRunID sets the "run_id" field.
func (_c *ArtifactCreate) SetRunID(v string) *ArtifactCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetArtifactType sets the "artifact_type" field.
func (_c *ArtifactCreate) SetArtifactType(v artifact.ArtifactType) *ArtifactCreate {
	_c.mutation.SetArtifactType(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ArtifactCreate) SetContent(v []byte) *ArtifactCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSha256 sets the "sha256" field.
func (_c *ArtifactCreate) SetSha256(v string) *ArtifactCreate {
	_c.mutation.SetSha256(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *ArtifactCreate) SetSizeBytes(v int) *ArtifactCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *ArtifactCreate) SetTruncated(v bool) *ArtifactCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableTruncated(v *bool) *ArtifactCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArtifactCreate) SetID(v string) *ArtifactCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRun sets the "run" edge to the Run entity.
func (_c *ArtifactCreate) SetRun(v *Run) *ArtifactCreate {
	return _c.SetRunID(v.ID)
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.Truncated(); !ok {
		v := artifact.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "Artifact.run_id"`)}
	}
	if _, ok := _c.mutation.ArtifactType(); !ok {
		return &ValidationError{Name: "artifact_type", err: errors.New(`ent: missing required field "Artifact.artifact_type"`)}
	}
	if v, ok := _c.mutation.ArtifactType(); ok {
		if err := artifact.ArtifactTypeValidator(v); err != nil {
			return &ValidationError{Name: "artifact_type", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Artifact.content"`)}
	}
	if _, ok := _c.mutation.Sha256(); !ok {
		return &ValidationError{Name: "sha256", err: errors.New(`ent: missing required field "Artifact.sha256"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Artifact.size_bytes"`)}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "Artifact.truncated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if len(_c.mutation.RunIDs()) == 0 {
		return &ValidationError{Name: "run", err: errors.New(`ent: missing required edge "Artifact.run"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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
			return nil, fmt.Errorf("unexpected Artifact.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ArtifactType(); ok {
		_spec.SetField(artifact.FieldArtifactType, field.TypeEnum, value)
		_node.ArtifactType = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(artifact.FieldContent, field.TypeBytes, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sha256(); ok {
		_spec.SetField(artifact.FieldSha256, field.TypeString, value)
		_node.Sha256 = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(artifact.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(artifact.FieldTruncated, field.TypeBool, value)
		_node.Truncated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RunIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   artifact.RunTable,
			Columns: []string{artifact.RunColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.Create().
//		SetRunID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertOne {
	_c.conflict = opts
	return &ArtifactUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreate) OnConflictColumns(columns ...string) *ArtifactUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertOne{
		create: _c,
	}
}

type (
	// ArtifactUpsertOne is the builder for "upsert"-ing
	//  one Artifact node.
	ArtifactUpsertOne struct {
		create *ArtifactCreate
	}

	// ArtifactUpsert is the "OnConflict" setter.
	ArtifactUpsert struct {
		*sql.UpdateSet
	}
)

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsert) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsert {
	u.Set(artifact.FieldArtifactType, v)
	return u
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateArtifactType() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldArtifactType)
	return u
}

// SetContent sets the "content" field.
func (u *ArtifactUpsert) SetContent(v []byte) *ArtifactUpsert {
	u.Set(artifact.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateContent() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldContent)
	return u
}

// SetSha256 sets the "sha256" field.
func (u *ArtifactUpsert) SetSha256(v string) *ArtifactUpsert {
	u.Set(artifact.FieldSha256, v)
	return u
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSha256() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSha256)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsert) SetSizeBytes(v int) *ArtifactUpsert {
	u.Set(artifact.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateSizeBytes() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsert) AddSizeBytes(v int) *ArtifactUpsert {
	u.Add(artifact.FieldSizeBytes, v)
	return u
}

// SetTruncated sets the "truncated" field.
func (u *ArtifactUpsert) SetTruncated(v bool) *ArtifactUpsert {
	u.Set(artifact.FieldTruncated, v)
	return u
}

// UpdateTruncated sets the "truncated" field to the value that was provided on create.
func (u *ArtifactUpsert) UpdateTruncated() *ArtifactUpsert {
	u.SetExcluded(artifact.FieldTruncated)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertOne) UpdateNewValues() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(artifact.FieldID)
		}
		if _, exists := u.create.mutation.RunID(); exists {
			s.SetIgnore(artifact.FieldRunID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(artifact.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ArtifactUpsertOne) Ignore() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertOne) DoNothing() *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreate.OnConflict
// documentation for more info.
func (u *ArtifactUpsertOne) Update(set func(*ArtifactUpsert)) *ArtifactUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertOne) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateArtifactType() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetContent sets the "content" field.
func (u *ArtifactUpsertOne) SetContent(v []byte) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateContent() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *ArtifactUpsertOne) SetSha256(v string) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSha256() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSha256()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsertOne) SetSizeBytes(v int) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsertOne) AddSizeBytes(v int) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateSizeBytes() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetTruncated sets the "truncated" field.
func (u *ArtifactUpsertOne) SetTruncated(v bool) *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTruncated(v)
	})
}

// UpdateTruncated sets the "truncated" field to the value that was provided on create.
func (u *ArtifactUpsertOne) UpdateTruncated() *ArtifactUpsertOne {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTruncated()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ArtifactUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ArtifactUpsertOne.ID is not supported by MySQL driver. Use ArtifactUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ArtifactUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
	conflict []sql.ConflictOption
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Artifact.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ArtifactUpsert) {
//			SetRunID(v+v).
//		}).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflict(opts ...sql.ConflictOption) *ArtifactUpsertBulk {
	_c.conflict = opts
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ArtifactCreateBulk) OnConflictColumns(columns ...string) *ArtifactUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ArtifactUpsertBulk{
		create: _c,
	}
}

// ArtifactUpsertBulk is the builder for "upsert"-ing
// a bulk of Artifact nodes.
type ArtifactUpsertBulk struct {
	create *ArtifactCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(artifact.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) UpdateNewValues() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(artifact.FieldID)
			}
			if _, exists := b.mutation.RunID(); exists {
				s.SetIgnore(artifact.FieldRunID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(artifact.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Artifact.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ArtifactUpsertBulk) Ignore() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ArtifactUpsertBulk) DoNothing() *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ArtifactCreateBulk.OnConflict
// documentation for more info.
func (u *ArtifactUpsertBulk) Update(set func(*ArtifactUpsert)) *ArtifactUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ArtifactUpsert{UpdateSet: update})
	}))
	return u
}

// SetArtifactType sets the "artifact_type" field.
func (u *ArtifactUpsertBulk) SetArtifactType(v artifact.ArtifactType) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetArtifactType(v)
	})
}

// UpdateArtifactType sets the "artifact_type" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateArtifactType() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateArtifactType()
	})
}

// SetContent sets the "content" field.
func (u *ArtifactUpsertBulk) SetContent(v []byte) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateContent() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *ArtifactUpsertBulk) SetSha256(v string) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSha256() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSha256()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *ArtifactUpsertBulk) SetSizeBytes(v int) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *ArtifactUpsertBulk) AddSizeBytes(v int) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateSizeBytes() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetTruncated sets the "truncated" field.
func (u *ArtifactUpsertBulk) SetTruncated(v bool) *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.SetTruncated(v)
	})
}

// UpdateTruncated sets the "truncated" field to the value that was provided on create.
func (u *ArtifactUpsertBulk) UpdateTruncated() *ArtifactUpsertBulk {
	return u.Update(func(s *ArtifactUpsert) {
		s.UpdateTruncated()
	})
}

// Exec executes the query.
func (u *ArtifactUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ArtifactCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ArtifactCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ArtifactUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
