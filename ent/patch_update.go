// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// PatchUpdate is the builder for updating Patch entities.
type PatchUpdate struct {
	config
	hooks    []Hook
	mutation *PatchMutation
}

// Where appends a list predicates to the PatchUpdate builder.
func (_u *PatchUpdate) Where(ps ...predicate.Patch) *PatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperation sets the "operation" field.
func (_u *PatchUpdate) SetOperation(v patch.Operation) *PatchUpdate {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableOperation(v *patch.Operation) *PatchUpdate {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *PatchUpdate) SetFilePath(v string) *PatchUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableFilePath(v *string) *PatchUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (_u *PatchUpdate) SetBaselineSha256(v string) *PatchUpdate {
	_u.mutation.SetBaselineSha256(v)
	return _u
}

// SetNillableBaselineSha256 sets the "baseline_sha256" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableBaselineSha256(v *string) *PatchUpdate {
	if v != nil {
		_u.SetBaselineSha256(*v)
	}
	return _u
}

// SetUnifiedDiff sets the "unified_diff" field.
func (_u *PatchUpdate) SetUnifiedDiff(v string) *PatchUpdate {
	_u.mutation.SetUnifiedDiff(v)
	return _u
}

// SetNillableUnifiedDiff sets the "unified_diff" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableUnifiedDiff(v *string) *PatchUpdate {
	if v != nil {
		_u.SetUnifiedDiff(*v)
	}
	return _u
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (_u *PatchUpdate) ClearUnifiedDiff() *PatchUpdate {
	_u.mutation.ClearUnifiedDiff()
	return _u
}

// SetNewContent sets the "new_content" field.
func (_u *PatchUpdate) SetNewContent(v string) *PatchUpdate {
	_u.mutation.SetNewContent(v)
	return _u
}

// SetNillableNewContent sets the "new_content" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableNewContent(v *string) *PatchUpdate {
	if v != nil {
		_u.SetNewContent(*v)
	}
	return _u
}

// ClearNewContent clears the value of the "new_content" field.
func (_u *PatchUpdate) ClearNewContent() *PatchUpdate {
	_u.mutation.ClearNewContent()
	return _u
}

// SetApplyOrder sets the "apply_order" field.
func (_u *PatchUpdate) SetApplyOrder(v int) *PatchUpdate {
	_u.mutation.ResetApplyOrder()
	_u.mutation.SetApplyOrder(v)
	return _u
}

// SetNillableApplyOrder sets the "apply_order" field if the given value is not nil.
func (_u *PatchUpdate) SetNillableApplyOrder(v *int) *PatchUpdate {
	if v != nil {
		_u.SetApplyOrder(*v)
	}
	return _u
}

// AddApplyOrder adds value to the "apply_order" field.
func (_u *PatchUpdate) AddApplyOrder(v int) *PatchUpdate {
	_u.mutation.AddApplyOrder(v)
	return _u
}

// Mutation returns the PatchMutation object of the builder.
func (_u *PatchUpdate) Mutation() *PatchMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatchUpdate) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := patch.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Patch.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := patch.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Patch.file_path": %w`, err)}
		}
	}
	if _u.mutation.ChangesetCleared() && len(_u.mutation.ChangesetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Patch.changeset"`)
	}
	return nil
}

func (_u *PatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patch.Table, patch.Columns, sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(patch.FieldOperation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(patch.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineSha256(); ok {
		_spec.SetField(patch.FieldBaselineSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnifiedDiff(); ok {
		_spec.SetField(patch.FieldUnifiedDiff, field.TypeString, value)
	}
	if _u.mutation.UnifiedDiffCleared() {
		_spec.ClearField(patch.FieldUnifiedDiff, field.TypeString)
	}
	if value, ok := _u.mutation.NewContent(); ok {
		_spec.SetField(patch.FieldNewContent, field.TypeString, value)
	}
	if _u.mutation.NewContentCleared() {
		_spec.ClearField(patch.FieldNewContent, field.TypeString)
	}
	if value, ok := _u.mutation.ApplyOrder(); ok {
		_spec.SetField(patch.FieldApplyOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApplyOrder(); ok {
		_spec.AddField(patch.FieldApplyOrder, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatchUpdateOne is the builder for updating a single Patch entity.
type PatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatchMutation
}

// SetOperation sets the "operation" field.
func (_u *PatchUpdateOne) SetOperation(v patch.Operation) *PatchUpdateOne {
	_u.mutation.SetOperation(v)
	return _u
}

// SetNillableOperation sets the "operation" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableOperation(v *patch.Operation) *PatchUpdateOne {
	if v != nil {
		_u.SetOperation(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *PatchUpdateOne) SetFilePath(v string) *PatchUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableFilePath(v *string) *PatchUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetBaselineSha256 sets the "baseline_sha256" field.
func (_u *PatchUpdateOne) SetBaselineSha256(v string) *PatchUpdateOne {
	_u.mutation.SetBaselineSha256(v)
	return _u
}

// SetNillableBaselineSha256 sets the "baseline_sha256" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableBaselineSha256(v *string) *PatchUpdateOne {
	if v != nil {
		_u.SetBaselineSha256(*v)
	}
	return _u
}

// SetUnifiedDiff sets the "unified_diff" field.
func (_u *PatchUpdateOne) SetUnifiedDiff(v string) *PatchUpdateOne {
	_u.mutation.SetUnifiedDiff(v)
	return _u
}

// SetNillableUnifiedDiff sets the "unified_diff" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableUnifiedDiff(v *string) *PatchUpdateOne {
	if v != nil {
		_u.SetUnifiedDiff(*v)
	}
	return _u
}

// ClearUnifiedDiff clears the value of the "unified_diff" field.
func (_u *PatchUpdateOne) ClearUnifiedDiff() *PatchUpdateOne {
	_u.mutation.ClearUnifiedDiff()
	return _u
}

// SetNewContent sets the "new_content" field.
func (_u *PatchUpdateOne) SetNewContent(v string) *PatchUpdateOne {
	_u.mutation.SetNewContent(v)
	return _u
}

// SetNillableNewContent sets the "new_content" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableNewContent(v *string) *PatchUpdateOne {
	if v != nil {
		_u.SetNewContent(*v)
	}
	return _u
}

// ClearNewContent clears the value of the "new_content" field.
func (_u *PatchUpdateOne) ClearNewContent() *PatchUpdateOne {
	_u.mutation.ClearNewContent()
	return _u
}

// SetApplyOrder sets the "apply_order" field.
func (_u *PatchUpdateOne) SetApplyOrder(v int) *PatchUpdateOne {
	_u.mutation.ResetApplyOrder()
	_u.mutation.SetApplyOrder(v)
	return _u
}

// SetNillableApplyOrder sets the "apply_order" field if the given value is not nil.
func (_u *PatchUpdateOne) SetNillableApplyOrder(v *int) *PatchUpdateOne {
	if v != nil {
		_u.SetApplyOrder(*v)
	}
	return _u
}

// AddApplyOrder adds value to the "apply_order" field.
func (_u *PatchUpdateOne) AddApplyOrder(v int) *PatchUpdateOne {
	_u.mutation.AddApplyOrder(v)
	return _u
}

// Mutation returns the PatchMutation object of the builder.
func (_u *PatchUpdateOne) Mutation() *PatchMutation {
	return _u.mutation
}

// Where appends a list predicates to the PatchUpdate builder.
func (_u *PatchUpdateOne) Where(ps ...predicate.Patch) *PatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatchUpdateOne) Select(field string, fields ...string) *PatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patch entity.
func (_u *PatchUpdateOne) Save(ctx context.Context) (*Patch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatchUpdateOne) SaveX(ctx context.Context) *Patch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatchUpdateOne) check() error {
	if v, ok := _u.mutation.Operation(); ok {
		if err := patch.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "Patch.operation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := patch.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "Patch.file_path": %w`, err)}
		}
	}
	if _u.mutation.ChangesetCleared() && len(_u.mutation.ChangesetIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Patch.changeset"`)
	}
	return nil
}

func (_u *PatchUpdateOne) sqlSave(ctx context.Context) (_node *Patch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patch.Table, patch.Columns, sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Patch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patch.FieldID)
		for _, f := range fields {
			if !patch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != patch.FieldID {
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
	if value, ok := _u.mutation.Operation(); ok {
		_spec.SetField(patch.FieldOperation, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(patch.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaselineSha256(); ok {
		_spec.SetField(patch.FieldBaselineSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnifiedDiff(); ok {
		_spec.SetField(patch.FieldUnifiedDiff, field.TypeString, value)
	}
	if _u.mutation.UnifiedDiffCleared() {
		_spec.ClearField(patch.FieldUnifiedDiff, field.TypeString)
	}
	if value, ok := _u.mutation.NewContent(); ok {
		_spec.SetField(patch.FieldNewContent, field.TypeString, value)
	}
	if _u.mutation.NewContentCleared() {
		_spec.ClearField(patch.FieldNewContent, field.TypeString)
	}
	if value, ok := _u.mutation.ApplyOrder(); ok {
		_spec.SetField(patch.FieldApplyOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedApplyOrder(); ok {
		_spec.AddField(patch.FieldApplyOrder, field.TypeInt, value)
	}
	_node = &Patch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
