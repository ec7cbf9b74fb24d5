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
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/predicate"
	"github.com/suiteops/suitepilot/ent/run"
)

// RunUpdate is the builder for updating Run entities.
type RunUpdate struct {
	config
	hooks    []Hook
	mutation *RunMutation
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdate) Where(ps ...predicate.Run) *RunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChangesetID sets the "changeset_id" field.
func (_u *RunUpdate) SetChangesetID(v string) *RunUpdate {
	_u.mutation.SetChangesetID(v)
	return _u
}

// SetNillableChangesetID sets the "changeset_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableChangesetID(v *string) *RunUpdate {
	if v != nil {
		_u.SetChangesetID(*v)
	}
	return _u
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (_u *RunUpdate) ClearChangesetID() *RunUpdate {
	_u.mutation.ClearChangesetID()
	return _u
}

// SetRunType sets the "run_type" field.
func (_u *RunUpdate) SetRunType(v run.RunType) *RunUpdate {
	_u.mutation.SetRunType(v)
	return _u
}

// SetNillableRunType sets the "run_type" field if the given value is not nil.
func (_u *RunUpdate) SetNillableRunType(v *run.RunType) *RunUpdate {
	if v != nil {
		_u.SetRunType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdate) SetStatus(v run.Status) *RunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStatus(v *run.Status) *RunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *RunUpdate) SetExitCode(v int) *RunUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *RunUpdate) SetNillableExitCode(v *int) *RunUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *RunUpdate) AddExitCode(v int) *RunUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *RunUpdate) ClearExitCode() *RunUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *RunUpdate) SetErrorCategory(v string) *RunUpdate {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorCategory(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *RunUpdate) ClearErrorCategory() *RunUpdate {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdate) SetErrorMessage(v string) *RunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdate) SetNillableErrorMessage(v *string) *RunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdate) ClearErrorMessage() *RunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (_u *RunUpdate) SetMaterializedFileCount(v int) *RunUpdate {
	_u.mutation.ResetMaterializedFileCount()
	_u.mutation.SetMaterializedFileCount(v)
	return _u
}

// SetNillableMaterializedFileCount sets the "materialized_file_count" field if the given value is not nil.
func (_u *RunUpdate) SetNillableMaterializedFileCount(v *int) *RunUpdate {
	if v != nil {
		_u.SetMaterializedFileCount(*v)
	}
	return _u
}

// AddMaterializedFileCount adds value to the "materialized_file_count" field.
func (_u *RunUpdate) AddMaterializedFileCount(v int) *RunUpdate {
	_u.mutation.AddMaterializedFileCount(v)
	return _u
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (_u *RunUpdate) ClearMaterializedFileCount() *RunUpdate {
	_u.mutation.ClearMaterializedFileCount()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *RunUpdate) SetCorrelationID(v string) *RunUpdate {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCorrelationID(v *string) *RunUpdate {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *RunUpdate) SetTriggeredBy(v string) *RunUpdate {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *RunUpdate) SetNillableTriggeredBy(v *string) *RunUpdate {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdate) SetStartedAt(v time.Time) *RunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableStartedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdate) ClearStartedAt() *RunUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdate) SetCompletedAt(v time.Time) *RunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdate) SetNillableCompletedAt(v *time.Time) *RunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdate) ClearCompletedAt() *RunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdate) SetDurationMs(v int) *RunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdate) SetNillableDurationMs(v *int) *RunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdate) AddDurationMs(v int) *RunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdate) ClearDurationMs() *RunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdate) AddArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) AddArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdate) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdate) ClearArtifacts() *RunUpdate {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdate) RemoveArtifactIDs(ids ...string) *RunUpdate {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdate) RemoveArtifacts(v ...*Artifact) *RunUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdate) check() error {
	if v, ok := _u.mutation.RunType(); ok {
		if err := run.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "Run.run_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.workspace"`)
	}
	return nil
}

func (_u *RunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChangesetID(); ok {
		_spec.SetField(run.FieldChangesetID, field.TypeString, value)
	}
	if _u.mutation.ChangesetIDCleared() {
		_spec.ClearField(run.FieldChangesetID, field.TypeString)
	}
	if value, ok := _u.mutation.RunType(); ok {
		_spec.SetField(run.FieldRunType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(run.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(run.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(run.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(run.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(run.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MaterializedFileCount(); ok {
		_spec.SetField(run.FieldMaterializedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaterializedFileCount(); ok {
		_spec.AddField(run.FieldMaterializedFileCount, field.TypeInt, value)
	}
	if _u.mutation.MaterializedFileCountCleared() {
		_spec.ClearField(run.FieldMaterializedFileCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(run.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunUpdateOne is the builder for updating a single Run entity.
type RunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunMutation
}

// SetChangesetID sets the "changeset_id" field.
func (_u *RunUpdateOne) SetChangesetID(v string) *RunUpdateOne {
	_u.mutation.SetChangesetID(v)
	return _u
}

// SetNillableChangesetID sets the "changeset_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableChangesetID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetChangesetID(*v)
	}
	return _u
}

// ClearChangesetID clears the value of the "changeset_id" field.
func (_u *RunUpdateOne) ClearChangesetID() *RunUpdateOne {
	_u.mutation.ClearChangesetID()
	return _u
}

// SetRunType sets the "run_type" field.
func (_u *RunUpdateOne) SetRunType(v run.RunType) *RunUpdateOne {
	_u.mutation.SetRunType(v)
	return _u
}

// SetNillableRunType sets the "run_type" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableRunType(v *run.RunType) *RunUpdateOne {
	if v != nil {
		_u.SetRunType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunUpdateOne) SetStatus(v run.Status) *RunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStatus(v *run.Status) *RunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *RunUpdateOne) SetExitCode(v int) *RunUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableExitCode(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *RunUpdateOne) AddExitCode(v int) *RunUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *RunUpdateOne) ClearExitCode() *RunUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *RunUpdateOne) SetErrorCategory(v string) *RunUpdateOne {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorCategory(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *RunUpdateOne) ClearErrorCategory() *RunUpdateOne {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *RunUpdateOne) SetErrorMessage(v string) *RunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableErrorMessage(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *RunUpdateOne) ClearErrorMessage() *RunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetMaterializedFileCount sets the "materialized_file_count" field.
func (_u *RunUpdateOne) SetMaterializedFileCount(v int) *RunUpdateOne {
	_u.mutation.ResetMaterializedFileCount()
	_u.mutation.SetMaterializedFileCount(v)
	return _u
}

// SetNillableMaterializedFileCount sets the "materialized_file_count" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableMaterializedFileCount(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetMaterializedFileCount(*v)
	}
	return _u
}

// AddMaterializedFileCount adds value to the "materialized_file_count" field.
func (_u *RunUpdateOne) AddMaterializedFileCount(v int) *RunUpdateOne {
	_u.mutation.AddMaterializedFileCount(v)
	return _u
}

// ClearMaterializedFileCount clears the value of the "materialized_file_count" field.
func (_u *RunUpdateOne) ClearMaterializedFileCount() *RunUpdateOne {
	_u.mutation.ClearMaterializedFileCount()
	return _u
}

// SetCorrelationID sets the "correlation_id" field.
func (_u *RunUpdateOne) SetCorrelationID(v string) *RunUpdateOne {
	_u.mutation.SetCorrelationID(v)
	return _u
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCorrelationID(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetCorrelationID(*v)
	}
	return _u
}

// SetTriggeredBy sets the "triggered_by" field.
func (_u *RunUpdateOne) SetTriggeredBy(v string) *RunUpdateOne {
	_u.mutation.SetTriggeredBy(v)
	return _u
}

// SetNillableTriggeredBy sets the "triggered_by" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableTriggeredBy(v *string) *RunUpdateOne {
	if v != nil {
		_u.SetTriggeredBy(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *RunUpdateOne) SetStartedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableStartedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *RunUpdateOne) ClearStartedAt() *RunUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *RunUpdateOne) SetCompletedAt(v time.Time) *RunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableCompletedAt(v *time.Time) *RunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *RunUpdateOne) ClearCompletedAt() *RunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *RunUpdateOne) SetDurationMs(v int) *RunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *RunUpdateOne) SetNillableDurationMs(v *int) *RunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *RunUpdateOne) AddDurationMs(v int) *RunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *RunUpdateOne) ClearDurationMs() *RunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddArtifactIDs adds the "artifacts" edge to the Artifact entity by IDs.
func (_u *RunUpdateOne) AddArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.AddArtifactIDs(ids...)
	return _u
}

// AddArtifacts adds the "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) AddArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArtifactIDs(ids...)
}

// Mutation returns the RunMutation object of the builder.
func (_u *RunUpdateOne) Mutation() *RunMutation {
	return _u.mutation
}

// ClearArtifacts clears all "artifacts" edges to the Artifact entity.
func (_u *RunUpdateOne) ClearArtifacts() *RunUpdateOne {
	_u.mutation.ClearArtifacts()
	return _u
}

// RemoveArtifactIDs removes the "artifacts" edge to Artifact entities by IDs.
func (_u *RunUpdateOne) RemoveArtifactIDs(ids ...string) *RunUpdateOne {
	_u.mutation.RemoveArtifactIDs(ids...)
	return _u
}

// RemoveArtifacts removes "artifacts" edges to Artifact entities.
func (_u *RunUpdateOne) RemoveArtifacts(v ...*Artifact) *RunUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArtifactIDs(ids...)
}

// Where appends a list predicates to the RunUpdate builder.
func (_u *RunUpdateOne) Where(ps ...predicate.Run) *RunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunUpdateOne) Select(field string, fields ...string) *RunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Run entity.
func (_u *RunUpdateOne) Save(ctx context.Context) (*Run, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunUpdateOne) SaveX(ctx context.Context) *Run {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunUpdateOne) check() error {
	if v, ok := _u.mutation.RunType(); ok {
		if err := run.RunTypeValidator(v); err != nil {
			return &ValidationError{Name: "run_type", err: fmt.Errorf(`ent: validator failed for field "Run.run_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := run.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Run.status": %w`, err)}
		}
	}
	if _u.mutation.WorkspaceCleared() && len(_u.mutation.WorkspaceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Run.workspace"`)
	}
	return nil
}

func (_u *RunUpdateOne) sqlSave(ctx context.Context) (_node *Run, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Run.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for _, f := range fields {
			if !run.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != run.FieldID {
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
	if value, ok := _u.mutation.ChangesetID(); ok {
		_spec.SetField(run.FieldChangesetID, field.TypeString, value)
	}
	if _u.mutation.ChangesetIDCleared() {
		_spec.ClearField(run.FieldChangesetID, field.TypeString)
	}
	if value, ok := _u.mutation.RunType(); ok {
		_spec.SetField(run.FieldRunType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(run.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(run.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(run.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(run.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(run.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(run.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(run.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(run.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.MaterializedFileCount(); ok {
		_spec.SetField(run.FieldMaterializedFileCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaterializedFileCount(); ok {
		_spec.AddField(run.FieldMaterializedFileCount, field.TypeInt, value)
	}
	if _u.mutation.MaterializedFileCountCleared() {
		_spec.ClearField(run.FieldMaterializedFileCount, field.TypeInt)
	}
	if value, ok := _u.mutation.CorrelationID(); ok {
		_spec.SetField(run.FieldCorrelationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TriggeredBy(); ok {
		_spec.SetField(run.FieldTriggeredBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(run.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(run.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(run.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(run.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(run.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(run.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(run.FieldDurationMs, field.TypeInt)
	}
	if _u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArtifactsIDs(); len(nodes) > 0 && !_u.mutation.ArtifactsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArtifactsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Run{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{run.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
