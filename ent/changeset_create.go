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
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/workspace"
)

// ChangesetCreate is the builder for creating a Changeset entity.
type ChangesetCreate struct {
	config
	mutation *ChangesetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *ChangesetCreate) SetTenantID(v string) *ChangesetCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *ChangesetCreate) SetWorkspaceID(v string) *ChangesetCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ChangesetCreate) SetTitle(v string) *ChangesetCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *ChangesetCreate) SetRationale(v string) *ChangesetCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableRationale(v *string) *ChangesetCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChangesetCreate) SetStatus(v changeset.Status) *ChangesetCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableStatus(v *changeset.Status) *ChangesetCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetProposedBy sets the "proposed_by" field.
func (_c *ChangesetCreate) SetProposedBy(v string) *ChangesetCreate {
	_c.mutation.SetProposedBy(v)
	return _c
}

// SetReviewedBy sets the "reviewed_by" field.
func (_c *ChangesetCreate) SetReviewedBy(v string) *ChangesetCreate {
	_c.mutation.SetReviewedBy(v)
	return _c
}

// SetNillableReviewedBy sets the "reviewed_by" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableReviewedBy(v *string) *ChangesetCreate {
	if v != nil {
		_c.SetReviewedBy(*v)
	}
	return _c
}

// SetAppliedBy sets the "applied_by" field.
func (_c *ChangesetCreate) SetAppliedBy(v string) *ChangesetCreate {
	_c.mutation.SetAppliedBy(v)
	return _c
}

// SetNillableAppliedBy sets the "applied_by" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableAppliedBy(v *string) *ChangesetCreate {
	if v != nil {
		_c.SetAppliedBy(*v)
	}
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ChangesetCreate) SetSubmittedAt(v time.Time) *ChangesetCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableSubmittedAt(v *time.Time) *ChangesetCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *ChangesetCreate) SetReviewedAt(v time.Time) *ChangesetCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableReviewedAt(v *time.Time) *ChangesetCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetAppliedAt sets the "applied_at" field.
func (_c *ChangesetCreate) SetAppliedAt(v time.Time) *ChangesetCreate {
	_c.mutation.SetAppliedAt(v)
	return _c
}

// SetNillableAppliedAt sets the "applied_at" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableAppliedAt(v *time.Time) *ChangesetCreate {
	if v != nil {
		_c.SetAppliedAt(*v)
	}
	return _c
}

// SetRejectionReason sets the "rejection_reason" field.
func (_c *ChangesetCreate) SetRejectionReason(v string) *ChangesetCreate {
	_c.mutation.SetRejectionReason(v)
	return _c
}

// SetNillableRejectionReason sets the "rejection_reason" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableRejectionReason(v *string) *ChangesetCreate {
	if v != nil {
		_c.SetRejectionReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChangesetCreate) SetCreatedAt(v time.Time) *ChangesetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableCreatedAt(v *time.Time) *ChangesetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChangesetCreate) SetUpdatedAt(v time.Time) *ChangesetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChangesetCreate) SetNillableUpdatedAt(v *time.Time) *ChangesetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChangesetCreate) SetID(v string) *ChangesetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *ChangesetCreate) SetWorkspace(v *Workspace) *ChangesetCreate {
	return _c.SetWorkspaceID(v.ID)
}

// AddPatchIDs adds the "patches" edge to the Patch entity by IDs.
func (_c *ChangesetCreate) AddPatchIDs(ids ...string) *ChangesetCreate {
	_c.mutation.AddPatchIDs(ids...)
	return _c
}

// AddPatches adds the "patches" edges to the Patch entity.
func (_c *ChangesetCreate) AddPatches(v ...*Patch) *ChangesetCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPatchIDs(ids...)
}

// Mutation returns the ChangesetMutation object of the builder.
func (_c *ChangesetCreate) Mutation() *ChangesetMutation {
	return _c.mutation
}

// Save creates the Changeset in the database.
func (_c *ChangesetCreate) Save(ctx context.Context) (*Changeset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChangesetCreate) SaveX(ctx context.Context) *Changeset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangesetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangesetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChangesetCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := changeset.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := changeset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := changeset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChangesetCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Changeset.tenant_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Changeset.workspace_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Changeset.title"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Changeset.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := changeset.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Changeset.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProposedBy(); !ok {
		return &ValidationError{Name: "proposed_by", err: errors.New(`ent: missing required field "Changeset.proposed_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Changeset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Changeset.updated_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "Changeset.workspace"`)}
	}
	return nil
}

func (_c *ChangesetCreate) sqlSave(ctx context.Context) (*Changeset, error) {
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
			return nil, fmt.Errorf("unexpected Changeset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChangesetCreate) createSpec() (*Changeset, *sqlgraph.CreateSpec) {
	var (
		_node = &Changeset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(changeset.Table, sqlgraph.NewFieldSpec(changeset.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(changeset.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(changeset.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(changeset.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(changeset.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ProposedBy(); ok {
		_spec.SetField(changeset.FieldProposedBy, field.TypeString, value)
		_node.ProposedBy = value
	}
	if value, ok := _c.mutation.ReviewedBy(); ok {
		_spec.SetField(changeset.FieldReviewedBy, field.TypeString, value)
		_node.ReviewedBy = &value
	}
	if value, ok := _c.mutation.AppliedBy(); ok {
		_spec.SetField(changeset.FieldAppliedBy, field.TypeString, value)
		_node.AppliedBy = &value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(changeset.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(changeset.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.AppliedAt(); ok {
		_spec.SetField(changeset.FieldAppliedAt, field.TypeTime, value)
		_node.AppliedAt = &value
	}
	if value, ok := _c.mutation.RejectionReason(); ok {
		_spec.SetField(changeset.FieldRejectionReason, field.TypeString, value)
		_node.RejectionReason = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(changeset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(changeset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   changeset.WorkspaceTable,
			Columns: []string{changeset.WorkspaceColumn},
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
	if nodes := _c.mutation.PatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Changeset.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChangesetUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChangesetCreate) OnConflict(opts ...sql.ConflictOption) *ChangesetUpsertOne {
	_c.conflict = opts
	return &ChangesetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Changeset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChangesetCreate) OnConflictColumns(columns ...string) *ChangesetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChangesetUpsertOne{
		create: _c,
	}
}

type (
	// ChangesetUpsertOne is the builder for "upsert"-ing
	//  one Changeset node.
	ChangesetUpsertOne struct {
		create *ChangesetCreate
	}

	// ChangesetUpsert is the "OnConflict" setter.
	ChangesetUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ChangesetUpsert) SetTitle(v string) *ChangesetUpsert {
	u.Set(changeset.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateTitle() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldTitle)
	return u
}

// SetRationale sets the "rationale" field.
func (u *ChangesetUpsert) SetRationale(v string) *ChangesetUpsert {
	u.Set(changeset.FieldRationale, v)
	return u
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateRationale() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldRationale)
	return u
}

// ClearRationale clears the value of the "rationale" field.
func (u *ChangesetUpsert) ClearRationale() *ChangesetUpsert {
	u.SetNull(changeset.FieldRationale)
	return u
}

// SetStatus sets the "status" field.
func (u *ChangesetUpsert) SetStatus(v changeset.Status) *ChangesetUpsert {
	u.Set(changeset.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateStatus() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldStatus)
	return u
}

// SetProposedBy sets the "proposed_by" field.
func (u *ChangesetUpsert) SetProposedBy(v string) *ChangesetUpsert {
	u.Set(changeset.FieldProposedBy, v)
	return u
}

// UpdateProposedBy sets the "proposed_by" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateProposedBy() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldProposedBy)
	return u
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ChangesetUpsert) SetReviewedBy(v string) *ChangesetUpsert {
	u.Set(changeset.FieldReviewedBy, v)
	return u
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateReviewedBy() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldReviewedBy)
	return u
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ChangesetUpsert) ClearReviewedBy() *ChangesetUpsert {
	u.SetNull(changeset.FieldReviewedBy)
	return u
}

// SetAppliedBy sets the "applied_by" field.
func (u *ChangesetUpsert) SetAppliedBy(v string) *ChangesetUpsert {
	u.Set(changeset.FieldAppliedBy, v)
	return u
}

// UpdateAppliedBy sets the "applied_by" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateAppliedBy() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldAppliedBy)
	return u
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (u *ChangesetUpsert) ClearAppliedBy() *ChangesetUpsert {
	u.SetNull(changeset.FieldAppliedBy)
	return u
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ChangesetUpsert) SetSubmittedAt(v time.Time) *ChangesetUpsert {
	u.Set(changeset.FieldSubmittedAt, v)
	return u
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateSubmittedAt() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldSubmittedAt)
	return u
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ChangesetUpsert) ClearSubmittedAt() *ChangesetUpsert {
	u.SetNull(changeset.FieldSubmittedAt)
	return u
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ChangesetUpsert) SetReviewedAt(v time.Time) *ChangesetUpsert {
	u.Set(changeset.FieldReviewedAt, v)
	return u
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateReviewedAt() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldReviewedAt)
	return u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ChangesetUpsert) ClearReviewedAt() *ChangesetUpsert {
	u.SetNull(changeset.FieldReviewedAt)
	return u
}

// SetAppliedAt sets the "applied_at" field.
func (u *ChangesetUpsert) SetAppliedAt(v time.Time) *ChangesetUpsert {
	u.Set(changeset.FieldAppliedAt, v)
	return u
}

// UpdateAppliedAt sets the "applied_at" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateAppliedAt() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldAppliedAt)
	return u
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (u *ChangesetUpsert) ClearAppliedAt() *ChangesetUpsert {
	u.SetNull(changeset.FieldAppliedAt)
	return u
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ChangesetUpsert) SetRejectionReason(v string) *ChangesetUpsert {
	u.Set(changeset.FieldRejectionReason, v)
	return u
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateRejectionReason() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldRejectionReason)
	return u
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ChangesetUpsert) ClearRejectionReason() *ChangesetUpsert {
	u.SetNull(changeset.FieldRejectionReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChangesetUpsert) SetUpdatedAt(v time.Time) *ChangesetUpsert {
	u.Set(changeset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChangesetUpsert) UpdateUpdatedAt() *ChangesetUpsert {
	u.SetExcluded(changeset.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Changeset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(changeset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChangesetUpsertOne) UpdateNewValues() *ChangesetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(changeset.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(changeset.FieldTenantID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(changeset.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(changeset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Changeset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChangesetUpsertOne) Ignore() *ChangesetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChangesetUpsertOne) DoNothing() *ChangesetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChangesetCreate.OnConflict
// documentation for more info.
func (u *ChangesetUpsertOne) Update(set func(*ChangesetUpsert)) *ChangesetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChangesetUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ChangesetUpsertOne) SetTitle(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateTitle() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateTitle()
	})
}

// SetRationale sets the "rationale" field.
func (u *ChangesetUpsertOne) SetRationale(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateRationale() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *ChangesetUpsertOne) ClearRationale() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearRationale()
	})
}

// SetStatus sets the "status" field.
func (u *ChangesetUpsertOne) SetStatus(v changeset.Status) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateStatus() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateStatus()
	})
}

// SetProposedBy sets the "proposed_by" field.
func (u *ChangesetUpsertOne) SetProposedBy(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetProposedBy(v)
	})
}

// UpdateProposedBy sets the "proposed_by" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateProposedBy() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateProposedBy()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ChangesetUpsertOne) SetReviewedBy(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateReviewedBy() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ChangesetUpsertOne) ClearReviewedBy() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearReviewedBy()
	})
}

// SetAppliedBy sets the "applied_by" field.
func (u *ChangesetUpsertOne) SetAppliedBy(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetAppliedBy(v)
	})
}

// UpdateAppliedBy sets the "applied_by" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateAppliedBy() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateAppliedBy()
	})
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (u *ChangesetUpsertOne) ClearAppliedBy() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearAppliedBy()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ChangesetUpsertOne) SetSubmittedAt(v time.Time) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateSubmittedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ChangesetUpsertOne) ClearSubmittedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ChangesetUpsertOne) SetReviewedAt(v time.Time) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateReviewedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ChangesetUpsertOne) ClearReviewedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearReviewedAt()
	})
}

// SetAppliedAt sets the "applied_at" field.
func (u *ChangesetUpsertOne) SetAppliedAt(v time.Time) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetAppliedAt(v)
	})
}

// UpdateAppliedAt sets the "applied_at" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateAppliedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateAppliedAt()
	})
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (u *ChangesetUpsertOne) ClearAppliedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearAppliedAt()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ChangesetUpsertOne) SetRejectionReason(v string) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateRejectionReason() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ChangesetUpsertOne) ClearRejectionReason() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearRejectionReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChangesetUpsertOne) SetUpdatedAt(v time.Time) *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChangesetUpsertOne) UpdateUpdatedAt() *ChangesetUpsertOne {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChangesetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChangesetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChangesetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChangesetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChangesetUpsertOne.ID is not supported by MySQL driver. Use ChangesetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChangesetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChangesetCreateBulk is the builder for creating many Changeset entities in bulk.
type ChangesetCreateBulk struct {
	config
	err      error
	builders []*ChangesetCreate
	conflict []sql.ConflictOption
}

// Save creates the Changeset entities in the database.
func (_c *ChangesetCreateBulk) Save(ctx context.Context) ([]*Changeset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Changeset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChangesetMutation)
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
func (_c *ChangesetCreateBulk) SaveX(ctx context.Context) []*Changeset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChangesetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChangesetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Changeset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChangesetUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChangesetCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChangesetUpsertBulk {
	_c.conflict = opts
	return &ChangesetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Changeset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChangesetCreateBulk) OnConflictColumns(columns ...string) *ChangesetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChangesetUpsertBulk{
		create: _c,
	}
}

// ChangesetUpsertBulk is the builder for "upsert"-ing
// a bulk of Changeset nodes.
type ChangesetUpsertBulk struct {
	create *ChangesetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Changeset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(changeset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChangesetUpsertBulk) UpdateNewValues() *ChangesetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(changeset.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(changeset.FieldTenantID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(changeset.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(changeset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Changeset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChangesetUpsertBulk) Ignore() *ChangesetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChangesetUpsertBulk) DoNothing() *ChangesetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChangesetCreateBulk.OnConflict
// documentation for more info.
func (u *ChangesetUpsertBulk) Update(set func(*ChangesetUpsert)) *ChangesetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChangesetUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ChangesetUpsertBulk) SetTitle(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateTitle() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateTitle()
	})
}

// SetRationale sets the "rationale" field.
func (u *ChangesetUpsertBulk) SetRationale(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetRationale(v)
	})
}

// UpdateRationale sets the "rationale" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateRationale() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateRationale()
	})
}

// ClearRationale clears the value of the "rationale" field.
func (u *ChangesetUpsertBulk) ClearRationale() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearRationale()
	})
}

// SetStatus sets the "status" field.
func (u *ChangesetUpsertBulk) SetStatus(v changeset.Status) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateStatus() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateStatus()
	})
}

// SetProposedBy sets the "proposed_by" field.
func (u *ChangesetUpsertBulk) SetProposedBy(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetProposedBy(v)
	})
}

// UpdateProposedBy sets the "proposed_by" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateProposedBy() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateProposedBy()
	})
}

// SetReviewedBy sets the "reviewed_by" field.
func (u *ChangesetUpsertBulk) SetReviewedBy(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetReviewedBy(v)
	})
}

// UpdateReviewedBy sets the "reviewed_by" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateReviewedBy() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateReviewedBy()
	})
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (u *ChangesetUpsertBulk) ClearReviewedBy() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearReviewedBy()
	})
}

// SetAppliedBy sets the "applied_by" field.
func (u *ChangesetUpsertBulk) SetAppliedBy(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetAppliedBy(v)
	})
}

// UpdateAppliedBy sets the "applied_by" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateAppliedBy() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateAppliedBy()
	})
}

// ClearAppliedBy clears the value of the "applied_by" field.
func (u *ChangesetUpsertBulk) ClearAppliedBy() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearAppliedBy()
	})
}

// SetSubmittedAt sets the "submitted_at" field.
func (u *ChangesetUpsertBulk) SetSubmittedAt(v time.Time) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetSubmittedAt(v)
	})
}

// UpdateSubmittedAt sets the "submitted_at" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateSubmittedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateSubmittedAt()
	})
}

// ClearSubmittedAt clears the value of the "submitted_at" field.
func (u *ChangesetUpsertBulk) ClearSubmittedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearSubmittedAt()
	})
}

// SetReviewedAt sets the "reviewed_at" field.
func (u *ChangesetUpsertBulk) SetReviewedAt(v time.Time) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetReviewedAt(v)
	})
}

// UpdateReviewedAt sets the "reviewed_at" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateReviewedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateReviewedAt()
	})
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (u *ChangesetUpsertBulk) ClearReviewedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearReviewedAt()
	})
}

// SetAppliedAt sets the "applied_at" field.
func (u *ChangesetUpsertBulk) SetAppliedAt(v time.Time) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetAppliedAt(v)
	})
}

// UpdateAppliedAt sets the "applied_at" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateAppliedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateAppliedAt()
	})
}

// ClearAppliedAt clears the value of the "applied_at" field.
func (u *ChangesetUpsertBulk) ClearAppliedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearAppliedAt()
	})
}

// SetRejectionReason sets the "rejection_reason" field.
func (u *ChangesetUpsertBulk) SetRejectionReason(v string) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetRejectionReason(v)
	})
}

// UpdateRejectionReason sets the "rejection_reason" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateRejectionReason() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateRejectionReason()
	})
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (u *ChangesetUpsertBulk) ClearRejectionReason() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.ClearRejectionReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChangesetUpsertBulk) SetUpdatedAt(v time.Time) *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChangesetUpsertBulk) UpdateUpdatedAt() *ChangesetUpsertBulk {
	return u.Update(func(s *ChangesetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChangesetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChangesetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChangesetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChangesetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
