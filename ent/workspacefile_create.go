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
	"github.com/suiteops/suitepilot/ent/workspace"
	"github.com/suiteops/suitepilot/ent/workspacefile"
)

// WorkspaceFileCreate is the builder for creating a WorkspaceFile entity.
type WorkspaceFileCreate struct {
	config
	mutation *WorkspaceFileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *WorkspaceFileCreate) SetWorkspaceID(v string) *WorkspaceFileCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *WorkspaceFileCreate) SetTenantID(v string) *WorkspaceFileCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *WorkspaceFileCreate) SetPath(v string) *WorkspaceFileCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *WorkspaceFileCreate) SetContent(v string) *WorkspaceFileCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableContent(v *string) *WorkspaceFileCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetSha256 sets the "sha256" field.
func (_c *WorkspaceFileCreate) SetSha256(v string) *WorkspaceFileCreate {
	_c.mutation.SetSha256(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *WorkspaceFileCreate) SetSizeBytes(v int) *WorkspaceFileCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableSizeBytes(v *int) *WorkspaceFileCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *WorkspaceFileCreate) SetMimeType(v string) *WorkspaceFileCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableMimeType(v *string) *WorkspaceFileCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetIsDirectory sets the "is_directory" field.
func (_c *WorkspaceFileCreate) SetIsDirectory(v bool) *WorkspaceFileCreate {
	_c.mutation.SetIsDirectory(v)
	return _c
}

// SetNillableIsDirectory sets the "is_directory" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableIsDirectory(v *bool) *WorkspaceFileCreate {
	if v != nil {
		_c.SetIsDirectory(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *WorkspaceFileCreate) SetLockedBy(v string) *WorkspaceFileCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableLockedBy(v *string) *WorkspaceFileCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *WorkspaceFileCreate) SetLockedAt(v time.Time) *WorkspaceFileCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableLockedAt(v *time.Time) *WorkspaceFileCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkspaceFileCreate) SetCreatedAt(v time.Time) *WorkspaceFileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableCreatedAt(v *time.Time) *WorkspaceFileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkspaceFileCreate) SetUpdatedAt(v time.Time) *WorkspaceFileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkspaceFileCreate) SetNillableUpdatedAt(v *time.Time) *WorkspaceFileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkspaceFileCreate) SetID(v string) *WorkspaceFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *WorkspaceFileCreate) SetWorkspace(v *Workspace) *WorkspaceFileCreate {
	return _c.SetWorkspaceID(v.ID)
}

// Mutation returns the WorkspaceFileMutation object of the builder.
func (_c *WorkspaceFileCreate) Mutation() *WorkspaceFileMutation {
	return _c.mutation
}

// Save creates the WorkspaceFile in the database.
func (_c *WorkspaceFileCreate) Save(ctx context.Context) (*WorkspaceFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkspaceFileCreate) SaveX(ctx context.Context) *WorkspaceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkspaceFileCreate) defaults() {
	if _, ok := _c.mutation.Content(); !ok {
		v := workspacefile.DefaultContent
		_c.mutation.SetContent(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := workspacefile.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		v := workspacefile.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.IsDirectory(); !ok {
		v := workspacefile.DefaultIsDirectory
		_c.mutation.SetIsDirectory(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workspacefile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workspacefile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkspaceFileCreate) check() error {
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "WorkspaceFile.workspace_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "WorkspaceFile.tenant_id"`)}
	}
	if _, ok := _c.mutation.Path(); !ok {
		return &ValidationError{Name: "path", err: errors.New(`ent: missing required field "WorkspaceFile.path"`)}
	}
	if v, ok := _c.mutation.Path(); ok {
		if err := workspacefile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "WorkspaceFile.path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "WorkspaceFile.content"`)}
	}
	if _, ok := _c.mutation.Sha256(); !ok {
		return &ValidationError{Name: "sha256", err: errors.New(`ent: missing required field "WorkspaceFile.sha256"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "WorkspaceFile.size_bytes"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "WorkspaceFile.mime_type"`)}
	}
	if _, ok := _c.mutation.IsDirectory(); !ok {
		return &ValidationError{Name: "is_directory", err: errors.New(`ent: missing required field "WorkspaceFile.is_directory"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkspaceFile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkspaceFile.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "WorkspaceFile.workspace"`)}
	}
	return nil
}

func (_c *WorkspaceFileCreate) sqlSave(ctx context.Context) (*WorkspaceFile, error) {
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
			return nil, fmt.Errorf("unexpected WorkspaceFile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkspaceFileCreate) createSpec() (*WorkspaceFile, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkspaceFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workspacefile.Table, sqlgraph.NewFieldSpec(workspacefile.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(workspacefile.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(workspacefile.FieldPath, field.TypeString, value)
		_node.Path = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(workspacefile.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sha256(); ok {
		_spec.SetField(workspacefile.FieldSha256, field.TypeString, value)
		_node.Sha256 = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(workspacefile.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(workspacefile.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.IsDirectory(); ok {
		_spec.SetField(workspacefile.FieldIsDirectory, field.TypeBool, value)
		_node.IsDirectory = value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(workspacefile.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(workspacefile.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workspacefile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workspacefile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workspacefile.WorkspaceTable,
			Columns: []string{workspacefile.WorkspaceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workspace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkspaceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkspaceFile.Create().
//		SetWorkspaceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceFileUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceFileCreate) OnConflict(opts ...sql.ConflictOption) *WorkspaceFileUpsertOne {
	_c.conflict = opts
	return &WorkspaceFileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceFileCreate) OnConflictColumns(columns ...string) *WorkspaceFileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceFileUpsertOne{
		create: _c,
	}
}

type (
	// WorkspaceFileUpsertOne is the builder for "upsert"-ing
	//  one WorkspaceFile node.
	WorkspaceFileUpsertOne struct {
		create *WorkspaceFileCreate
	}

	// WorkspaceFileUpsert is the "OnConflict" setter.
	WorkspaceFileUpsert struct {
		*sql.UpdateSet
	}
)

// SetPath sets the "path" field.
func (u *WorkspaceFileUpsert) SetPath(v string) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldPath, v)
	return u
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdatePath() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldPath)
	return u
}

// SetContent sets the "content" field.
func (u *WorkspaceFileUpsert) SetContent(v string) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateContent() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldContent)
	return u
}

// SetSha256 sets the "sha256" field.
func (u *WorkspaceFileUpsert) SetSha256(v string) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldSha256, v)
	return u
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateSha256() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldSha256)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *WorkspaceFileUpsert) SetSizeBytes(v int) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateSizeBytes() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *WorkspaceFileUpsert) AddSizeBytes(v int) *WorkspaceFileUpsert {
	u.Add(workspacefile.FieldSizeBytes, v)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *WorkspaceFileUpsert) SetMimeType(v string) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateMimeType() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldMimeType)
	return u
}

// SetIsDirectory sets the "is_directory" field.
func (u *WorkspaceFileUpsert) SetIsDirectory(v bool) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldIsDirectory, v)
	return u
}

// UpdateIsDirectory sets the "is_directory" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateIsDirectory() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldIsDirectory)
	return u
}

// SetLockedBy sets the "locked_by" field.
func (u *WorkspaceFileUpsert) SetLockedBy(v string) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldLockedBy, v)
	return u
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateLockedBy() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldLockedBy)
	return u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *WorkspaceFileUpsert) ClearLockedBy() *WorkspaceFileUpsert {
	u.SetNull(workspacefile.FieldLockedBy)
	return u
}

// SetLockedAt sets the "locked_at" field.
func (u *WorkspaceFileUpsert) SetLockedAt(v time.Time) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldLockedAt, v)
	return u
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateLockedAt() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldLockedAt)
	return u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *WorkspaceFileUpsert) ClearLockedAt() *WorkspaceFileUpsert {
	u.SetNull(workspacefile.FieldLockedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceFileUpsert) SetUpdatedAt(v time.Time) *WorkspaceFileUpsert {
	u.Set(workspacefile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsert) UpdateUpdatedAt() *WorkspaceFileUpsert {
	u.SetExcluded(workspacefile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workspacefile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkspaceFileUpsertOne) UpdateNewValues() *WorkspaceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workspacefile.FieldID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(workspacefile.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(workspacefile.FieldTenantID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workspacefile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkspaceFileUpsertOne) Ignore() *WorkspaceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceFileUpsertOne) DoNothing() *WorkspaceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceFileCreate.OnConflict
// documentation for more info.
func (u *WorkspaceFileUpsertOne) Update(set func(*WorkspaceFileUpsert)) *WorkspaceFileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetPath sets the "path" field.
func (u *WorkspaceFileUpsertOne) SetPath(v string) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdatePath() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdatePath()
	})
}

// SetContent sets the "content" field.
func (u *WorkspaceFileUpsertOne) SetContent(v string) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateContent() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *WorkspaceFileUpsertOne) SetSha256(v string) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateSha256() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateSha256()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *WorkspaceFileUpsertOne) SetSizeBytes(v int) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *WorkspaceFileUpsertOne) AddSizeBytes(v int) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateSizeBytes() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *WorkspaceFileUpsertOne) SetMimeType(v string) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateMimeType() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateMimeType()
	})
}

// SetIsDirectory sets the "is_directory" field.
func (u *WorkspaceFileUpsertOne) SetIsDirectory(v bool) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetIsDirectory(v)
	})
}

// UpdateIsDirectory sets the "is_directory" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateIsDirectory() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateIsDirectory()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *WorkspaceFileUpsertOne) SetLockedBy(v string) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateLockedBy() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *WorkspaceFileUpsertOne) ClearLockedBy() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *WorkspaceFileUpsertOne) SetLockedAt(v time.Time) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateLockedAt() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *WorkspaceFileUpsertOne) ClearLockedAt() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.ClearLockedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceFileUpsertOne) SetUpdatedAt(v time.Time) *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsertOne) UpdateUpdatedAt() *WorkspaceFileUpsertOne {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceFileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceFileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceFileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkspaceFileUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkspaceFileUpsertOne.ID is not supported by MySQL driver. Use WorkspaceFileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkspaceFileUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkspaceFileCreateBulk is the builder for creating many WorkspaceFile entities in bulk.
type WorkspaceFileCreateBulk struct {
	config
	err      error
	builders []*WorkspaceFileCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkspaceFile entities in the database.
func (_c *WorkspaceFileCreateBulk) Save(ctx context.Context) ([]*WorkspaceFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkspaceFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkspaceFileMutation)
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
func (_c *WorkspaceFileCreateBulk) SaveX(ctx context.Context) []*WorkspaceFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkspaceFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkspaceFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkspaceFile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkspaceFileUpsert) {
//			SetWorkspaceID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkspaceFileCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkspaceFileUpsertBulk {
	_c.conflict = opts
	return &WorkspaceFileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkspaceFileCreateBulk) OnConflictColumns(columns ...string) *WorkspaceFileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkspaceFileUpsertBulk{
		create: _c,
	}
}

// WorkspaceFileUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkspaceFile nodes.
type WorkspaceFileUpsertBulk struct {
	create *WorkspaceFileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workspacefile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkspaceFileUpsertBulk) UpdateNewValues() *WorkspaceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workspacefile.FieldID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(workspacefile.FieldWorkspaceID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(workspacefile.FieldTenantID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workspacefile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkspaceFile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkspaceFileUpsertBulk) Ignore() *WorkspaceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkspaceFileUpsertBulk) DoNothing() *WorkspaceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkspaceFileCreateBulk.OnConflict
// documentation for more info.
func (u *WorkspaceFileUpsertBulk) Update(set func(*WorkspaceFileUpsert)) *WorkspaceFileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkspaceFileUpsert{UpdateSet: update})
	}))
	return u
}

// SetPath sets the "path" field.
func (u *WorkspaceFileUpsertBulk) SetPath(v string) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetPath(v)
	})
}

// UpdatePath sets the "path" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdatePath() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdatePath()
	})
}

// SetContent sets the "content" field.
func (u *WorkspaceFileUpsertBulk) SetContent(v string) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateContent() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateContent()
	})
}

// SetSha256 sets the "sha256" field.
func (u *WorkspaceFileUpsertBulk) SetSha256(v string) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetSha256(v)
	})
}

// UpdateSha256 sets the "sha256" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateSha256() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateSha256()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *WorkspaceFileUpsertBulk) SetSizeBytes(v int) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *WorkspaceFileUpsertBulk) AddSizeBytes(v int) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateSizeBytes() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *WorkspaceFileUpsertBulk) SetMimeType(v string) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateMimeType() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateMimeType()
	})
}

// SetIsDirectory sets the "is_directory" field.
func (u *WorkspaceFileUpsertBulk) SetIsDirectory(v bool) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetIsDirectory(v)
	})
}

// UpdateIsDirectory sets the "is_directory" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateIsDirectory() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateIsDirectory()
	})
}

// SetLockedBy sets the "locked_by" field.
func (u *WorkspaceFileUpsertBulk) SetLockedBy(v string) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetLockedBy(v)
	})
}

// UpdateLockedBy sets the "locked_by" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateLockedBy() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateLockedBy()
	})
}

// ClearLockedBy clears the value of the "locked_by" field.
func (u *WorkspaceFileUpsertBulk) ClearLockedBy() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.ClearLockedBy()
	})
}

// SetLockedAt sets the "locked_at" field.
func (u *WorkspaceFileUpsertBulk) SetLockedAt(v time.Time) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetLockedAt(v)
	})
}

// UpdateLockedAt sets the "locked_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateLockedAt() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateLockedAt()
	})
}

// ClearLockedAt clears the value of the "locked_at" field.
func (u *WorkspaceFileUpsertBulk) ClearLockedAt() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.ClearLockedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *WorkspaceFileUpsertBulk) SetUpdatedAt(v time.Time) *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *WorkspaceFileUpsertBulk) UpdateUpdatedAt() *WorkspaceFileUpsertBulk {
	return u.Update(func(s *WorkspaceFileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *WorkspaceFileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkspaceFileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkspaceFileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkspaceFileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
