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
	"github.com/suiteops/suitepilot/ent/predicate"
	"github.com/suiteops/suitepilot/ent/workspacefile"
)

// WorkspaceFileUpdate is the builder for updating WorkspaceFile entities.
type WorkspaceFileUpdate struct {
	config
	hooks    []Hook
	mutation *WorkspaceFileMutation
}

// Where appends a list predicates to the WorkspaceFileUpdate builder.
func (_u *WorkspaceFileUpdate) Where(ps ...predicate.WorkspaceFile) *WorkspaceFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPath sets the "path" field.
func (_u *WorkspaceFileUpdate) SetPath(v string) *WorkspaceFileUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillablePath(v *string) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkspaceFileUpdate) SetContent(v string) *WorkspaceFileUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableContent(v *string) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSha256 sets the "sha256" field.
func (_u *WorkspaceFileUpdate) SetSha256(v string) *WorkspaceFileUpdate {
	_u.mutation.SetSha256(v)
	return _u
}

// SetNillableSha256 sets the "sha256" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableSha256(v *string) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetSha256(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *WorkspaceFileUpdate) SetSizeBytes(v int) *WorkspaceFileUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableSizeBytes(v *int) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *WorkspaceFileUpdate) AddSizeBytes(v int) *WorkspaceFileUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *WorkspaceFileUpdate) SetMimeType(v string) *WorkspaceFileUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableMimeType(v *string) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetIsDirectory sets the "is_directory" field.
func (_u *WorkspaceFileUpdate) SetIsDirectory(v bool) *WorkspaceFileUpdate {
	_u.mutation.SetIsDirectory(v)
	return _u
}

// SetNillableIsDirectory sets the "is_directory" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableIsDirectory(v *bool) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetIsDirectory(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *WorkspaceFileUpdate) SetLockedBy(v string) *WorkspaceFileUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableLockedBy(v *string) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *WorkspaceFileUpdate) ClearLockedBy() *WorkspaceFileUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *WorkspaceFileUpdate) SetLockedAt(v time.Time) *WorkspaceFileUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *WorkspaceFileUpdate) SetNillableLockedAt(v *time.Time) *WorkspaceFileUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *WorkspaceFileUpdate) ClearLockedAt() *WorkspaceFileUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceFileUpdate) SetUpdatedAt(v time.Time) *WorkspaceFileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceFileMutation object of the builder.
func (_u *WorkspaceFileUpdate) Mutation() *WorkspaceFileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkspaceFileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkspaceFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceFileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspacefile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceFileUpdate) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := workspacefile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "WorkspaceFile.path": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkspaceFile.workspace"`)
	}
	return nil
}

func (_u *WorkspaceFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspacefile.Table, workspacefile.Columns, sqlgraph.NewFieldSpec(workspacefile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(workspacefile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(workspacefile.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sha256(); ok {
		_spec.SetField(workspacefile.FieldSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(workspacefile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(workspacefile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(workspacefile.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDirectory(); ok {
		_spec.SetField(workspacefile.FieldIsDirectory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(workspacefile.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(workspacefile.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(workspacefile.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(workspacefile.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspacefile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspacefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkspaceFileUpdateOne is the builder for updating a single WorkspaceFile entity.
type WorkspaceFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkspaceFileMutation
}

// SetPath sets the "path" field.
func (_u *WorkspaceFileUpdateOne) SetPath(v string) *WorkspaceFileUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillablePath(v *string) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *WorkspaceFileUpdateOne) SetContent(v string) *WorkspaceFileUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableContent(v *string) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSha256 sets the "sha256" field.
func (_u *WorkspaceFileUpdateOne) SetSha256(v string) *WorkspaceFileUpdateOne {
	_u.mutation.SetSha256(v)
	return _u
}

// SetNillableSha256 sets the "sha256" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableSha256(v *string) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetSha256(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *WorkspaceFileUpdateOne) SetSizeBytes(v int) *WorkspaceFileUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableSizeBytes(v *int) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *WorkspaceFileUpdateOne) AddSizeBytes(v int) *WorkspaceFileUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *WorkspaceFileUpdateOne) SetMimeType(v string) *WorkspaceFileUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableMimeType(v *string) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetIsDirectory sets the "is_directory" field.
func (_u *WorkspaceFileUpdateOne) SetIsDirectory(v bool) *WorkspaceFileUpdateOne {
	_u.mutation.SetIsDirectory(v)
	return _u
}

// SetNillableIsDirectory sets the "is_directory" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableIsDirectory(v *bool) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetIsDirectory(*v)
	}
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *WorkspaceFileUpdateOne) SetLockedBy(v string) *WorkspaceFileUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableLockedBy(v *string) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *WorkspaceFileUpdateOne) ClearLockedBy() *WorkspaceFileUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *WorkspaceFileUpdateOne) SetLockedAt(v time.Time) *WorkspaceFileUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *WorkspaceFileUpdateOne) SetNillableLockedAt(v *time.Time) *WorkspaceFileUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *WorkspaceFileUpdateOne) ClearLockedAt() *WorkspaceFileUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkspaceFileUpdateOne) SetUpdatedAt(v time.Time) *WorkspaceFileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkspaceFileMutation object of the builder.
func (_u *WorkspaceFileUpdateOne) Mutation() *WorkspaceFileMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkspaceFileUpdate builder.
func (_u *WorkspaceFileUpdateOne) Where(ps ...predicate.WorkspaceFile) *WorkspaceFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkspaceFileUpdateOne) Select(field string, fields ...string) *WorkspaceFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkspaceFile entity.
func (_u *WorkspaceFileUpdateOne) Save(ctx context.Context) (*WorkspaceFile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkspaceFileUpdateOne) SaveX(ctx context.Context) *WorkspaceFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkspaceFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkspaceFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkspaceFileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workspacefile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkspaceFileUpdateOne) check() error {
	if v, ok := _u.mutation.Path(); ok {
		if err := workspacefile.PathValidator(v); err != nil {
			return &ValidationError{Name: "path", err: fmt.Errorf(`ent: validator failed for field "WorkspaceFile.path": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkspaceFile.workspace"`)
	}
	return nil
}

func (_u *WorkspaceFileUpdateOne) sqlSave(ctx context.Context) (_node *WorkspaceFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workspacefile.Table, workspacefile.Columns, sqlgraph.NewFieldSpec(workspacefile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkspaceFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workspacefile.FieldID)
		for _, f := range fields {
			if !workspacefile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workspacefile.FieldID {
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
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(workspacefile.FieldPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(workspacefile.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sha256(); ok {
		_spec.SetField(workspacefile.FieldSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(workspacefile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(workspacefile.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(workspacefile.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDirectory(); ok {
		_spec.SetField(workspacefile.FieldIsDirectory, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(workspacefile.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(workspacefile.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(workspacefile.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(workspacefile.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workspacefile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkspaceFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workspacefile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
