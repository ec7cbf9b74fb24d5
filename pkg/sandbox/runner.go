// Package sandbox executes allowlisted commands against a materialized
// snapshot of a workspace, with an optional approved-changeset overlay.
// Subprocesses see a scratch directory and a minimal environment, never
// the database or host secrets.
package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/governance"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/redact"
	"github.com/suiteops/suitepilot/pkg/services"
)

// Error categories recorded on failed runs.
const (
	categoryTimeout     = "TIMEOUT"
	categoryMaterialize = "MATERIALIZATION"
	categorySpawn       = "SPAWN"
)

// Runner owns the run lifecycle: record, materialize, execute, persist
// artifacts. It implements the launcher contract the tool catalog expects.
type Runner struct {
	client  *ent.Client
	runs    *services.RunService
	audit   *services.AuditService
	metrics *governance.Metrics
	proc    Subprocess
	logger  *slog.Logger
}

// NewRunner creates a runner. proc may be nil, selecting the os/exec
// implementation.
func NewRunner(client *ent.Client, runs *services.RunService, audit *services.AuditService, metrics *governance.Metrics, proc Subprocess) *Runner {
	if proc == nil {
		proc = NewSubprocess()
	}
	return &Runner{
		client:  client,
		runs:    runs,
		audit:   audit,
		metrics: metrics,
		proc:    proc,
		logger:  slog.Default(),
	}
}

// RunValidate executes project validation for the workspace snapshot.
func (r *Runner) RunValidate(ctx context.Context, identity models.Identity, workspaceID, changesetID string) (map[string]any, error) {
	return r.Execute(ctx, identity, workspaceID, changesetID, run.RunTypeSdfValidate)
}

// RunUnitTests executes the unit-test suite for the workspace snapshot.
func (r *Runner) RunUnitTests(ctx context.Context, identity models.Identity, workspaceID, changesetID string) (map[string]any, error) {
	return r.Execute(ctx, identity, workspaceID, changesetID, run.RunTypeJestUnitTest)
}

// RunDeploy deploys an approved changeset to the sandbox account. The
// workspace is resolved from the changeset.
func (r *Runner) RunDeploy(ctx context.Context, identity models.Identity, changesetID string) (map[string]any, error) {
	cs, err := r.client.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load changeset: %w", err)
	}
	return r.Execute(ctx, identity, cs.WorkspaceID, changesetID, run.RunTypeDeploySandbox)
}

// Execute runs one allowlisted command to a terminal run state and returns
// the outcome summary. The command allowlist is checked before any I/O.
func (r *Runner) Execute(ctx context.Context, identity models.Identity, workspaceID, changesetID string, runType run.RunType) (map[string]any, error) {
	cmd, err := CommandFor(runType)
	if err != nil {
		return nil, err
	}

	rec, err := r.runs.Create(ctx, identity, services.CreateRunRequest{
		WorkspaceID: workspaceID,
		ChangesetID: changesetID,
		RunType:     runType,
	})
	if err != nil {
		return nil, err
	}
	if _, err := r.runs.MarkRunning(ctx, identity, rec.ID); err != nil {
		return nil, err
	}
	r.appendAudit(ctx, identity, services.AuditEntry{
		Category:     "run",
		Action:       "run_started",
		ResourceType: "run",
		ResourceID:   rec.ID,
		Status:       auditevent.StatusSuccess,
		Payload:      map[string]any{"run_type": string(runType), "changeset_id": changesetID},
	})

	files, err := r.materialize(ctx, identity.TenantID, workspaceID, changesetID)
	if err != nil {
		return r.fail(ctx, identity, rec.ID, runType, categoryMaterialize, err)
	}
	fileCount := len(files)

	scratch, err := writeScratch(files)
	if err != nil {
		return r.fail(ctx, identity, rec.ID, runType, categoryMaterialize, err)
	}
	// The scratch directory never outlives the run, whatever the outcome.
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			r.logger.Warn("scratch cleanup failed", "run_id", rec.ID, "error", rmErr)
		}
	}()

	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + scratch,
		"TMPDIR=" + scratch,
	}
	exitCode, stdout, stderr, runErr := r.proc.Run(ctx, cmd.Argv, scratch, env, cmd.Timeout)

	if errors.Is(runErr, ErrTimedOut) {
		r.storeArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeStderr,
			[]byte(fmt.Sprintf("%s timed out after %s", cmd.Argv[0], cmd.Timeout)))
		return r.finish(ctx, identity, rec.ID, runType, services.RunOutcome{
			Status:                run.StatusError,
			ErrorCategory:         categoryTimeout,
			ErrorMessage:          fmt.Sprintf("command exceeded %s", cmd.Timeout),
			MaterializedFileCount: &fileCount,
		})
	}
	if runErr != nil {
		return r.fail(ctx, identity, rec.ID, runType, categorySpawn, runErr)
	}

	r.storeArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeStdout, stdout)
	r.storeArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeStderr, stderr)
	if runType == run.RunTypeJestUnitTest {
		r.storeTestReports(ctx, identity, rec.ID, stdout, scratch)
	}

	status := run.StatusPassed
	if exitCode != 0 {
		status = run.StatusFailed
	}
	return r.finish(ctx, identity, rec.ID, runType, services.RunOutcome{
		Status:                status,
		ExitCode:              &exitCode,
		MaterializedFileCount: &fileCount,
	})
}

// fail completes a run as error without an exit code.
func (r *Runner) fail(ctx context.Context, identity models.Identity, runID string, runType run.RunType, category string, cause error) (map[string]any, error) {
	r.logger.Error("run failed before completion",
		"run_id", runID, "category", category, "error", cause)
	return r.finish(ctx, identity, runID, runType, services.RunOutcome{
		Status:        run.StatusError,
		ErrorCategory: category,
		ErrorMessage:  cause.Error(),
	})
}

// finish completes the run, stores the result_json artifact, bumps the
// outcome metric, and returns the summary payload.
func (r *Runner) finish(ctx context.Context, identity models.Identity, runID string, runType run.RunType, outcome services.RunOutcome) (map[string]any, error) {
	updated, err := r.runs.Complete(ctx, identity, runID, outcome)
	if err != nil {
		return nil, err
	}

	result := map[string]any{
		"run_id":   runID,
		"run_type": string(runType),
		"status":   string(outcome.Status),
	}
	if outcome.ExitCode != nil {
		result["exit_code"] = *outcome.ExitCode
	}
	if updated.DurationMs != nil {
		result["duration_ms"] = *updated.DurationMs
	}
	if outcome.MaterializedFileCount != nil {
		result["materialized_file_count"] = *outcome.MaterializedFileCount
	}
	if outcome.ErrorCategory != "" {
		result["error_category"] = outcome.ErrorCategory
	}
	if outcome.ErrorMessage != "" {
		result["error_message"] = outcome.ErrorMessage
	}

	if data, err := json.Marshal(result); err == nil {
		r.storeArtifact(ctx, identity, runID, artifact.ArtifactTypeResultJSON, data)
	}
	if r.metrics != nil {
		r.metrics.RunOutcomes.WithLabelValues(string(runType), string(outcome.Status)).Inc()
	}
	return result, nil
}

// storeTestReports parses the runner's JSON stdout as report_json and, if
// present, stores the coverage summary verbatim as coverage_json.
func (r *Runner) storeTestReports(ctx context.Context, identity models.Identity, runID string, stdout []byte, scratch string) {
	var parsed any
	if err := json.Unmarshal(stdout, &parsed); err == nil {
		// A top-level array is wrapped so the artifact is always an object.
		if _, isList := parsed.([]any); isList {
			parsed = map[string]any{"result": parsed}
		}
		if data, err := json.Marshal(parsed); err == nil {
			r.storeArtifact(ctx, identity, runID, artifact.ArtifactTypeReportJSON, data)
		}
	}

	coveragePath := filepath.Join(scratch, "coverage", "coverage-summary.json")
	if data, err := os.ReadFile(coveragePath); err == nil {
		r.storeArtifact(ctx, identity, runID, artifact.ArtifactTypeCoverageJSON, data)
	}
}

// storeArtifact redacts and persists one artifact. Failures are logged,
// never fatal to the run.
func (r *Runner) storeArtifact(ctx context.Context, identity models.Identity, runID string, artifactType artifact.ArtifactType, content []byte) {
	if _, err := r.runs.AddArtifact(ctx, identity, runID, artifactType, redact.Stream(content)); err != nil {
		r.logger.Error("artifact store failed",
			"run_id", runID, "artifact_type", artifactType, "error", err)
	}
}

func (r *Runner) appendAudit(ctx context.Context, identity models.Identity, entry services.AuditEntry) {
	if _, err := r.audit.Append(ctx, identity, entry); err != nil {
		r.logger.Error("audit append failed", "action", entry.Action, "error", err)
	}
}
