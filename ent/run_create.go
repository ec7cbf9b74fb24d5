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
	"github.com/suiteops/suitepilot/ent/workspace"
)

// RunCreate is the builder for creating a Run entity.
type RunCreate struct {
	config
	mutation *RunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTenantID sets the "tenant_id" field.
func (_c *RunCreate) SetTenantID(v string) *RunCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetWorkspaceID sets the "workspace_id" field.
func (_c *RunCreate) SetWorkspaceID(v string) *RunCreate {
	_c.mutation.SetWorkspaceID(v)
	return _c
}

// SetChangesetID sets the "changeset_id" field.
func (_c *RunCreate) SetChangesetID(v string) *RunCreate {
	_c.mutation.SetChangesetID(v)
	return _c
}

// SetNillableChangesetID sets the "changeset_id" field if the given value is not nil.
func (_c *RunCreate) SetNillableChangesetID(v *string) *RunCreate {
	if v != nil {
		_c.SetChangesetID(*v)
	}
	return _c
}

// SetRunType sets the "run_type" field.
func (_c *RunCreate) SetRunType(v run.RunType) *RunCreate {
	_c.mutation.SetRunType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RunCreate) SetStatus(v run.Status) *RunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RunCreate) SetNillableStatus(v *run.Status) *RunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *RunCreate) SetExitCode(v int) *RunCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *RunCreate) SetNillableExitCode(v *int) *RunCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetErrorCategory sets the "error_category" field.
func (_c *RunCreate) SetErrorCategory(v string) *RunCreate {
	_c.mutation.SetErrorCategory(v)
	return _c
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorCategory(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorCategory(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *RunCreate) SetErrorMessage(v string) *RunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *RunCreate) SetNillableErrorMessage(v *string) *RunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (_c *RunCreate) SetMaterializedFileCount(v int) *RunCreate {
	_c.mutation.SetMaterializedFileCount(v)
	return _c
}

// SetNillableMaterializedFileCount sets the "materialized_file_count" field if the given value is not nil.
func (_c *RunCreate) SetNillableMaterializedFileCount(v *int) *RunCreate {
	if v != nil {
		_c.SetMaterializedFileCount(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *RunCreate) SetCorrelationID(v string) *RunCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetTriggeredBy sets the "triggered_by" field.
func (_c *RunCreate) SetTriggeredBy(v string) *RunCreate {
	_c.mutation.SetTriggeredBy(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RunCreate) SetCreatedAt(v time.Time) *RunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCreatedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *RunCreate) SetStartedAt(v time.Time) *RunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableStartedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *RunCreate) SetCompletedAt(v time.Time) *RunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *RunCreate) SetNillableCompletedAt(v *time.Time) *RunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *RunCreate) SetDurationMs(v int) *RunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *RunCreate) SetNillableDurationMs(v *int) *RunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RunCreate) SetID(v string) *RunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetWorkspace sets the "workspace" edge to the Workspace entity.
func (_c *RunCreate) SetWorkspace(v *Workspace) *RunCreate {
	return _c.SetWorkspaceID(v.ID)
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_c *RunCreate) AddArtifactIDs(ids ...string) *RunCreate {
	_c.mutation.AddArtifactIDs(ids...)
	return _c
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_c *RunCreate) AddArtifacts(v ...*Artifact) *RunCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_c *RunCreate) Mutation() *RunMutation {
	return _c.mutation
}

// Save creates the Run in the database.
func (_c *RunCreate) Save(ctx context.Context) (*Run, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RunCreate) SaveX(ctx context.Context) *Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := run.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := run.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RunCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Run.tenant_id"`)}
	}
	if _, ok := _c.mutation.WorkspaceID(); !ok {
		return &ValidationError{Name: "workspace_id", err: errors.New(`ent: missing required field "Run.workspace_id"`)}
	}
	if _, ok := _c.mutation.RunType(); !ok {
		return &ValidationError{Name: "run_type", err: errors.New(`ent: missing required field "Run.run_type"`)}
	}
	if v, ok := _c.mutation.RunType(); ok {
		if err := run.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "Run.run_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Run.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Run.correlation_id"`)}
	}
	if _, ok := _c.mutation.TriggeredBy(); !ok {
		return &ValidationError{Name: "triggered_by", err: errors.New(`ent: missing required field "Run.triggered_by"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Run.created_at"`)}
	}
	if len(_c.mutation.WorkspaceIDs()) == 0 {
		return &ValidationError{Name: "workspace", err: errors.New(`ent: missing required edge "Run.workspace"`)}
	}
	return nil
}

func (_c *RunCreate) sqlSave(ctx context.Context) (*Run, error) {
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
			return nil, fmt.Errorf("unexpected Run.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RunCreate) createSpec() (*Run, *sqlgraph.CreateSpec) {
	var (
		_node = &Run{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(run.Table, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(run.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ChangesetID(); ok {
		_spec.SetField(run.FieldChangesetID, field.TypeString, value)
		_node.ChangesetID = &value
	}
	if value, ok := _c.mutation.RunType(); ok {
		_spec.SetField(run.FieldRunType, field.TypeEnum, value)
		_node.RunType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(run.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.ErrorCategory(); ok {
		_spec.SetField(run.FieldErrorCategory, field.TypeString, value)
		_node.ErrorCategory = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.MaterializedFileCount(); ok {
		_spec.SetField(run.FieldMaterializedFileCount, field.TypeInt, value)
		_node.MaterializedFileCount = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.TriggeredBy(); ok {
		_spec.SetField(run.FieldTriggeredBy, field.TypeString, value)
		_node.TriggeredBy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(run.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.WorkspaceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   run.WorkspaceTable,
			Columns: []string{run.WorkspaceColumn},
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
	if nodes := _c.mutation.ArtifactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   run.ArtifactsTable,
			Columns: []string{run.ArtifactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeString),
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
//	client.Run.Create().
//		SetTenantID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreate) OnConflict(opts ...sql.ConflictOption) *RunUpsertOne {
	_c.conflict = opts
	return &RunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreate) OnConflictColumns(columns ...string) *RunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertOne{
		create: _c,
	}
}

type (
	// RunUpsertOne is the builder for "upsert"-ing
	//  one Run node.
	RunUpsertOne struct {
		create *RunCreate
	}

	// RunUpsert is the "OnConflict" setter.
	RunUpsert struct {
		*sql.UpdateSet
	}
)

// SetChangesetID sets the "changeset_id" field.
func (u *RunUpsert) SetChangesetID(v string) *RunUpsert {
	u.Set(run.FieldChangesetID, v)
	return u
}

// UpdateChangesetID sets the "changeset_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateChangesetID() *RunUpsert {
	u.SetExcluded(run.FieldChangesetID)
	return u
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (u *RunUpsert) ClearChangesetID() *RunUpsert {
	u.SetNull(run.FieldChangesetID)
	return u
}

// SetRunType sets the "run_type" field.
func (u *RunUpsert) SetRunType(v run.RunType) *RunUpsert {
	u.Set(run.FieldRunType, v)
	return u
}

// UpdateRunType sets the "run_type" field to the value that was provided on create.
func (u *RunUpsert) UpdateRunType() *RunUpsert {
	u.SetExcluded(run.FieldRunType)
	return u
}

// SetStatus sets the "status" field.
func (u *RunUpsert) SetStatus(v run.Status) *RunUpsert {
	u.Set(run.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsert) UpdateStatus() *RunUpsert {
	u.SetExcluded(run.FieldStatus)
	return u
}

// SetExitCode sets the "exit_code" field.
func (u *RunUpsert) SetExitCode(v int) *RunUpsert {
	u.Set(run.FieldExitCode, v)
	return u
}

// UpdateExitCode sets the "exit_code" field to the value that was provided on create.
func (u *RunUpsert) UpdateExitCode() *RunUpsert {
	u.SetExcluded(run.FieldExitCode)
	return u
}

// AddExitCode adds v to the "exit_code" field.
func (u *RunUpsert) AddExitCode(v int) *RunUpsert {
	u.Add(run.FieldExitCode, v)
	return u
}

// ClearExitCode clears the value of the "exit_code" field.
func (u *RunUpsert) ClearExitCode() *RunUpsert {
	u.SetNull(run.FieldExitCode)
	return u
}

// SetErrorCategory sets the "error_category" field.
func (u *RunUpsert) SetErrorCategory(v string) *RunUpsert {
	u.Set(run.FieldErrorCategory, v)
	return u
}

// UpdateErrorCategory sets the "error_category" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorCategory() *RunUpsert {
	u.SetExcluded(run.FieldErrorCategory)
	return u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (u *RunUpsert) ClearErrorCategory() *RunUpsert {
	u.SetNull(run.FieldErrorCategory)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsert) SetErrorMessage(v string) *RunUpsert {
	u.Set(run.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsert) UpdateErrorMessage() *RunUpsert {
	u.SetExcluded(run.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsert) ClearErrorMessage() *RunUpsert {
	u.SetNull(run.FieldErrorMessage)
	return u
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (u *RunUpsert) SetMaterializedFileCount(v int) *RunUpsert {
	u.Set(run.FieldMaterializedFileCount, v)
	return u
}

// UpdateMaterializedFileCount sets the "materialized_file_count" field to the value that was provided on create.
func (u *RunUpsert) UpdateMaterializedFileCount() *RunUpsert {
	u.SetExcluded(run.FieldMaterializedFileCount)
	return u
}

// AddMaterializedFileCount adds v to the "materialized_file_count" field.
func (u *RunUpsert) AddMaterializedFileCount(v int) *RunUpsert {
	u.Add(run.FieldMaterializedFileCount, v)
	return u
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (u *RunUpsert) ClearMaterializedFileCount() *RunUpsert {
	u.SetNull(run.FieldMaterializedFileCount)
	return u
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsert) SetCorrelationID(v string) *RunUpsert {
	u.Set(run.FieldCorrelationID, v)
	return u
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsert) UpdateCorrelationID() *RunUpsert {
	u.SetExcluded(run.FieldCorrelationID)
	return u
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *RunUpsert) SetTriggeredBy(v string) *RunUpsert {
	u.Set(run.FieldTriggeredBy, v)
	return u
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *RunUpsert) UpdateTriggeredBy() *RunUpsert {
	u.SetExcluded(run.FieldTriggeredBy)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsert) SetStartedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateStartedAt() *RunUpsert {
	u.SetExcluded(run.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsert) ClearStartedAt() *RunUpsert {
	u.SetNull(run.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsert) SetCompletedAt(v time.Time) *RunUpsert {
	u.Set(run.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsert) UpdateCompletedAt() *RunUpsert {
	u.SetExcluded(run.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsert) ClearCompletedAt() *RunUpsert {
	u.SetNull(run.FieldCompletedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunUpsert) SetDurationMs(v int) *RunUpsert {
	u.Set(run.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunUpsert) UpdateDurationMs() *RunUpsert {
	u.SetExcluded(run.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunUpsert) AddDurationMs(v int) *RunUpsert {
	u.Add(run.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *RunUpsert) ClearDurationMs() *RunUpsert {
	u.SetNull(run.FieldDurationMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertOne) UpdateNewValues() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(run.FieldID)
		}
		if _, exists := u.create.mutation.TenantID(); exists {
			s.SetIgnore(run.FieldTenantID)
		}
		if _, exists := u.create.mutation.WorkspaceID(); exists {
			s.SetIgnore(run.FieldWorkspaceID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(run.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RunUpsertOne) Ignore() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertOne) DoNothing() *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreate.OnConflict
// documentation for more info.
func (u *RunUpsertOne) Update(set func(*RunUpsert)) *RunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetChangesetID sets the "changeset_id" field.
func (u *RunUpsertOne) SetChangesetID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetChangesetID(v)
	})
}

// UpdateChangesetID sets the "changeset_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateChangesetID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateChangesetID()
	})
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (u *RunUpsertOne) ClearChangesetID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearChangesetID()
	})
}

// SetRunType sets the "run_type" field.
func (u *RunUpsertOne) SetRunType(v run.RunType) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetRunType(v)
	})
}

// UpdateRunType sets the "run_type" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateRunType() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRunType()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertOne) SetStatus(v run.Status) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStatus() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetExitCode sets the "exit_code" field.
func (u *RunUpsertOne) SetExitCode(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetExitCode(v)
	})
}

// AddExitCode adds v to the "exit_code" field.
func (u *RunUpsertOne) AddExitCode(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddExitCode(v)
	})
}

// UpdateExitCode sets the "exit_code" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateExitCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateExitCode()
	})
}

// ClearExitCode clears the value of the "exit_code" field.
func (u *RunUpsertOne) ClearExitCode() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearExitCode()
	})
}

// SetErrorCategory sets the "error_category" field.
func (u *RunUpsertOne) SetErrorCategory(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCategory(v)
	})
}

// UpdateErrorCategory sets the "error_category" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorCategory() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCategory()
	})
}

// ClearErrorCategory clears the value of the "error_category" field.
func (u *RunUpsertOne) ClearErrorCategory() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCategory()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsertOne) SetErrorMessage(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateErrorMessage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsertOne) ClearErrorMessage() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (u *RunUpsertOne) SetMaterializedFileCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetMaterializedFileCount(v)
	})
}

// AddMaterializedFileCount adds v to the "materialized_file_count" field.
func (u *RunUpsertOne) AddMaterializedFileCount(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddMaterializedFileCount(v)
	})
}

// UpdateMaterializedFileCount sets the "materialized_file_count" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateMaterializedFileCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMaterializedFileCount()
	})
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (u *RunUpsertOne) ClearMaterializedFileCount() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearMaterializedFileCount()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertOne) SetCorrelationID(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCorrelationID() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *RunUpsertOne) SetTriggeredBy(v string) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateTriggeredBy() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertOne) SetStartedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertOne) ClearStartedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertOne) SetCompletedAt(v time.Time) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertOne) ClearCompletedAt() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunUpsertOne) SetDurationMs(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunUpsertOne) AddDurationMs(v int) *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunUpsertOne) UpdateDurationMs() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *RunUpsertOne) ClearDurationMs() *RunUpsertOne {
	return u.Update(func(s *RunUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *RunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RunUpsertOne.ID is not supported by MySQL driver. Use RunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RunCreateBulk is the builder for creating many Run entities in bulk.
type RunCreateBulk struct {
	config
	err      error
	builders []*RunCreate
	conflict []sql.ConflictOption
}

// Save creates the Run entities in the database.
func (_c *RunCreateBulk) Save(ctx context.Context) ([]*Run, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Run, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RunMutation)
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
func (_c *RunCreateBulk) SaveX(ctx context.Context) []*Run {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Run.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RunUpsert) {
//			SetTenantID(v+v).
//		}).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflict(opts ...sql.ConflictOption) *RunUpsertBulk {
	_c.conflict = opts
	return &RunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RunCreateBulk) OnConflictColumns(columns ...string) *RunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RunUpsertBulk{
		create: _c,
	}
}

// RunUpsertBulk is the builder for "upsert"-ing
// a bulk of Run nodes.
type RunUpsertBulk struct {
	create *RunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(run.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RunUpsertBulk) UpdateNewValues() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(run.FieldID)
			}
			if _, exists := b.mutation.TenantID(); exists {
				s.SetIgnore(run.FieldTenantID)
			}
			if _, exists := b.mutation.WorkspaceID(); exists {
				s.SetIgnore(run.FieldWorkspaceID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(run.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Run.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RunUpsertBulk) Ignore() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RunUpsertBulk) DoNothing() *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RunCreateBulk.OnConflict
// documentation for more info.
func (u *RunUpsertBulk) Update(set func(*RunUpsert)) *RunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RunUpsert{UpdateSet: update})
	}))
	return u
}

// SetChangesetID sets the "changeset_id" field.
func (u *RunUpsertBulk) SetChangesetID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetChangesetID(v)
	})
}

// UpdateChangesetID sets the "changeset_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateChangesetID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateChangesetID()
	})
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (u *RunUpsertBulk) ClearChangesetID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearChangesetID()
	})
}

// SetRunType sets the "run_type" field.
func (u *RunUpsertBulk) SetRunType(v run.RunType) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetRunType(v)
	})
}

// UpdateRunType sets the "run_type" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateRunType() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateRunType()
	})
}

// SetStatus sets the "status" field.
func (u *RunUpsertBulk) SetStatus(v run.Status) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStatus() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStatus()
	})
}

// SetExitCode sets the "exit_code" field.
func (u *RunUpsertBulk) SetExitCode(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetExitCode(v)
	})
}

// AddExitCode adds v to the "exit_code" field.
func (u *RunUpsertBulk) AddExitCode(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddExitCode(v)
	})
}

// UpdateExitCode sets the "exit_code" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateExitCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateExitCode()
	})
}

// ClearExitCode clears the value of the "exit_code" field.
func (u *RunUpsertBulk) ClearExitCode() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearExitCode()
	})
}

// SetErrorCategory sets the "error_category" field.
func (u *RunUpsertBulk) SetErrorCategory(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorCategory(v)
	})
}

// UpdateErrorCategory sets the "error_category" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorCategory() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorCategory()
	})
}

// ClearErrorCategory clears the value of the "error_category" field.
func (u *RunUpsertBulk) ClearErrorCategory() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorCategory()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *RunUpsertBulk) SetErrorMessage(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateErrorMessage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *RunUpsertBulk) ClearErrorMessage() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearErrorMessage()
	})
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (u *RunUpsertBulk) SetMaterializedFileCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetMaterializedFileCount(v)
	})
}

// AddMaterializedFileCount adds v to the "materialized_file_count" field.
func (u *RunUpsertBulk) AddMaterializedFileCount(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddMaterializedFileCount(v)
	})
}

// UpdateMaterializedFileCount sets the "materialized_file_count" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateMaterializedFileCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateMaterializedFileCount()
	})
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (u *RunUpsertBulk) ClearMaterializedFileCount() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearMaterializedFileCount()
	})
}

// SetCorrelationID sets the "correlation_id" field.
func (u *RunUpsertBulk) SetCorrelationID(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCorrelationID(v)
	})
}

// UpdateCorrelationID sets the "correlation_id" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCorrelationID() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCorrelationID()
	})
}

// SetTriggeredBy sets the "triggered_by" field.
func (u *RunUpsertBulk) SetTriggeredBy(v string) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetTriggeredBy(v)
	})
}

// UpdateTriggeredBy sets the "triggered_by" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateTriggeredBy() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateTriggeredBy()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *RunUpsertBulk) SetStartedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *RunUpsertBulk) ClearStartedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *RunUpsertBulk) SetCompletedAt(v time.Time) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *RunUpsertBulk) ClearCompletedAt() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *RunUpsertBulk) SetDurationMs(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *RunUpsertBulk) AddDurationMs(v int) *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *RunUpsertBulk) UpdateDurationMs() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *RunUpsertBulk) ClearDurationMs() *RunUpsertBulk {
	return u.Update(func(s *RunUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *RunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
