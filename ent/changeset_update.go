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
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/predicate"
)

// ChangesetUpdate is the builder for updating Changeset entities.
type ChangesetUpdate struct {
	config
	hooks    []Hook
	mutation *ChangesetMutation
}

// Where appends a list predicates to the ChangesetUpdate builder.
func (_u *ChangesetUpdate) Where(ps ...predicate.Changeset) *ChangesetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChangesetUpdate) SetTitle(v string) *ChangesetUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableTitle(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ChangesetUpdate) SetRationale(v string) *ChangesetUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableRationale(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ChangesetUpdate) ClearRationale() *ChangesetUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChangesetUpdate) SetStatus(v changeset.Status) *ChangesetUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableStatus(v *changeset.Status) *ChangesetUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposedBy sets the "proposed_by" field.
func (_u *ChangesetUpdate) SetProposedBy(v string) *ChangesetUpdate {
	_u.mutation.SetProposedBy(v)
	return _u
}

// SetNillableProposedBy sets the "proposed_by" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableProposedBy(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetProposedBy(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ChangesetUpdate) SetReviewedBy(v string) *ChangesetUpdate {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableReviewedBy(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ChangesetUpdate) ClearReviewedBy() *ChangesetUpdate {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetAppliedBy sets the "applied_by" field.
func (_u *ChangesetUpdate) SetAppliedBy(v string) *ChangesetUpdate {
	_u.mutation.SetAppliedBy(v)
	return _u
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableAppliedBy(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetAppliedBy(*v)
	}
	return _u
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (_u *ChangesetUpdate) ClearAppliedBy() *ChangesetUpdate {
	_u.mutation.ClearAppliedBy()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ChangesetUpdate) SetSubmittedAt(v time.Time) *ChangesetUpdate {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableSubmittedAt(v *time.Time) *ChangesetUpdate {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ChangesetUpdate) ClearSubmittedAt() *ChangesetUpdate {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ChangesetUpdate) SetReviewedAt(v time.Time) *ChangesetUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableReviewedAt(v *time.Time) *ChangesetUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ChangesetUpdate) ClearReviewedAt() *ChangesetUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *ChangesetUpdate) SetAppliedAt(v time.Time) *ChangesetUpdate {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableAppliedAt(v *time.Time) *ChangesetUpdate {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *ChangesetUpdate) ClearAppliedAt() *ChangesetUpdate {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ChangesetUpdate) SetRejectionReason(v string) *ChangesetUpdate {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ChangesetUpdate) SetNillableRejectionReason(v *string) *ChangesetUpdate {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ChangesetUpdate) ClearRejectionReason() *ChangesetUpdate {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChangesetUpdate) SetUpdatedAt(v time.Time) *ChangesetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_u *ChangesetUpdate) AddPatchIDs(ids ...string) *ChangesetUpdate {
	_u.mutation.AddPatchIDs(ids...)
	return _u
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_u *ChangesetUpdate) AddPatches(v ...*Patch) *ChangesetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatchIDs(ids...)
}

// Mutation returns the ChangesetMutation object of the builder.
func (_u *ChangesetUpdate) Mutation() *ChangesetMutation {
	return _u.mutation
}

// ClearPatches clears all "patches" edges to the Patch entity.
func (_u *ChangesetUpdate) ClearPatches() *ChangesetUpdate {
	_u.mutation.ClearPatches()
	return _u
}

// RemovePatchIDs removes the "patches" edge to Patch entities by IDs.
func (_u *ChangesetUpdate) RemovePatchIDs(ids ...string) *ChangesetUpdate {
	_u.mutation.RemovePatchIDs(ids...)
	return _u
}

// RemovePatches removes "patches" edges to Patch entities.
func (_u *ChangesetUpdate) RemovePatches(v ...*Patch) *ChangesetUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChangesetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangesetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChangesetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangesetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChangesetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := changeset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangesetUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := changeset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Changeset.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Changeset.workspace"`)
	}
	return nil
}

func (_u *ChangesetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changeset.Table, changeset.Columns, sqlgraph.NewFieldSpec(changeset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(changeset.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(changeset.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(changeset.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(changeset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProposedBy(); ok {
		_spec.SetField(changeset.FieldProposedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(changeset.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(changeset.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedBy(); ok {
		_spec.SetField(changeset.FieldAppliedBy, field.TypeString, value)
	}
	if _u.mutation.AppliedByCleared() {
		_spec.ClearField(changeset.FieldAppliedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(changeset.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(changeset.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(changeset.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(changeset.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(changeset.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(changeset.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(changeset.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(changeset.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(changeset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatchesIDs(); len(nodes) > 0 && !_u.mutation.PatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changeset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChangesetUpdateOne is the builder for updating a single Changeset entity.
type ChangesetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChangesetMutation
}

// SetTitle sets the "title" field.
func (_u *ChangesetUpdateOne) SetTitle(v string) *ChangesetUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableTitle(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *ChangesetUpdateOne) SetRationale(v string) *ChangesetUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableRationale(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *ChangesetUpdateOne) ClearRationale() *ChangesetUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChangesetUpdateOne) SetStatus(v changeset.Status) *ChangesetUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableStatus(v *changeset.Status) *ChangesetUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetProposedBy sets the "proposed_by" field.
func (_u *ChangesetUpdateOne) SetProposedBy(v string) *ChangesetUpdateOne {
	_u.mutation.SetProposedBy(v)
	return _u
}

// SetNillableProposedBy sets the "proposed_by" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableProposedBy(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetProposedBy(*v)
	}
	return _u
}

// SetReviewedBy sets the "reviewed_by" field.
func (_u *ChangesetUpdateOne) SetReviewedBy(v string) *ChangesetUpdateOne {
	_u.mutation.SetReviewedBy(v)
	return _u
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableReviewedBy(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetReviewedBy(*v)
	}
	return _u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (_u *ChangesetUpdateOne) ClearReviewedBy() *ChangesetUpdateOne {
	_u.mutation.ClearReviewedBy()
	return _u
}

// SetAppliedBy sets the "applied_by" field.
func (_u *ChangesetUpdateOne) SetAppliedBy(v string) *ChangesetUpdateOne {
	_u.mutation.SetAppliedBy(v)
	return _u
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableAppliedBy(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetAppliedBy(*v)
	}
	return _u
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (_u *ChangesetUpdateOne) ClearAppliedBy() *ChangesetUpdateOne {
	_u.mutation.ClearAppliedBy()
	return _u
}

// SetSubmittedAt sets the "submitted_at" field.
func (_u *ChangesetUpdateOne) SetSubmittedAt(v time.Time) *ChangesetUpdateOne {
	_u.mutation.SetSubmittedAt(v)
	return _u
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableSubmittedAt(v *time.Time) *ChangesetUpdateOne {
	if v != nil {
		_u.SetSubmittedAt(*v)
	}
	return _u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (_u *ChangesetUpdateOne) ClearSubmittedAt() *ChangesetUpdateOne {
	_u.mutation.ClearSubmittedAt()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *ChangesetUpdateOne) SetReviewedAt(v time.Time) *ChangesetUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableReviewedAt(v *time.Time) *ChangesetUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *ChangesetUpdateOne) ClearReviewedAt() *ChangesetUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// SetAppliedAt sets the "applied_at" field.
func (_u *ChangesetUpdateOne) SetAppliedAt(v time.Time) *ChangesetUpdateOne {
	_u.mutation.SetAppliedAt(v)
	return _u
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableAppliedAt(v *time.Time) *ChangesetUpdateOne {
	if v != nil {
		_u.SetAppliedAt(*v)
	}
	return _u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (_u *ChangesetUpdateOne) ClearAppliedAt() *ChangesetUpdateOne {
	_u.mutation.ClearAppliedAt()
	return _u
}

// SetRejectionReason sets the "rejection_reason" field.
func (_u *ChangesetUpdateOne) SetRejectionReason(v string) *ChangesetUpdateOne {
	_u.mutation.SetRejectionReason(v)
	return _u
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_u *ChangesetUpdateOne) SetNillableRejectionReason(v *string) *ChangesetUpdateOne {
	if v != nil {
		_u.SetRejectionReason(*v)
	}
	return _u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (_u *ChangesetUpdateOne) ClearRejectionReason() *ChangesetUpdateOne {
	_u.mutation.ClearRejectionReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChangesetUpdateOne) SetUpdatedAt(v time.Time) *ChangesetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_u *ChangesetUpdateOne) AddPatchIDs(ids ...string) *ChangesetUpdateOne {
	_u.mutation.AddPatchIDs(ids...)
	return _u
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_u *ChangesetUpdateOne) AddPatches(v ...*Patch) *ChangesetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPatchIDs(ids...)
}

// Mutation returns the ChangesetMutation object of the builder.
func (_u *ChangesetUpdateOne) Mutation() *ChangesetMutation {
	return _u.mutation
}

// ClearPatches clears all "patches" edges to the Patch entity.
func (_u *ChangesetUpdateOne) ClearPatches() *ChangesetUpdateOne {
	_u.mutation.ClearPatches()
	return _u
}

// RemovePatchIDs removes the "patches" edge to Patch entities by IDs.
func (_u *ChangesetUpdateOne) RemovePatchIDs(ids ...string) *ChangesetUpdateOne {
	_u.mutation.RemovePatchIDs(ids...)
	return _u
}

// RemovePatches removes "patches" edges to Patch entities.
func (_u *ChangesetUpdateOne) RemovePatches(v ...*Patch) *ChangesetUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePatchIDs(ids...)
}

// Where appends a list predicates to the ChangesetUpdate builder.
func (_u *ChangesetUpdateOne) Where(ps ...predicate.Changeset) *ChangesetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChangesetUpdateOne) Select(field string, fields ...string) *ChangesetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Changeset entity.
func (_u *ChangesetUpdateOne) Save(ctx context.Context) (*Changeset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChangesetUpdateOne) SaveX(ctx context.Context) *Changeset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChangesetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChangesetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChangesetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := changeset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChangesetUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := changeset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Changeset.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Changeset.workspace"`)
	}
	return nil
}

func (_u *ChangesetUpdateOne) sqlSave(ctx context.Context) (_node *Changeset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(changeset.Table, changeset.Columns, sqlgraph.NewFieldSpec(changeset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Changeset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, changeset.FieldID)
		for _, f := range fields {
			if !changeset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != changeset.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(changeset.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(changeset.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(changeset.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(changeset.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ProposedBy(); ok {
		_spec.SetField(changeset.FieldProposedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewedBy(); ok {
		_spec.SetField(changeset.FieldReviewedBy, field.TypeString, value)
	}
	if _u.mutation.ReviewedByCleared() {
		_spec.ClearField(changeset.FieldReviewedBy, field.TypeString)
	}
	if value, ok := _u.mutation.AppliedBy(); ok {
		_spec.SetField(changeset.FieldAppliedBy, field.TypeString, value)
	}
	if _u.mutation.AppliedByCleared() {
		_spec.ClearField(changeset.FieldAppliedBy, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedAt(); ok {
		_spec.SetField(changeset.FieldSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmittedAtCleared() {
		_spec.ClearField(changeset.FieldSubmittedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(changeset.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(changeset.FieldReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AppliedAt(); ok {
		_spec.SetField(changeset.FieldAppliedAt, field.TypeTime, value)
	}
	if _u.mutation.AppliedAtCleared() {
		_spec.ClearField(changeset.FieldAppliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RejectionReason(); ok {
		_spec.SetField(changeset.FieldRejectionReason, field.TypeString, value)
	}
	if _u.mutation.RejectionReasonCleared() {
		_spec.ClearField(changeset.FieldRejectionReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(changeset.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPatchesIDs(); len(nodes) > 0 && !_u.mutation.PatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   changeset.PatchesTable,
			Columns: []string{changeset.PatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patch.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Changeset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{changeset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
