package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/redact"
)

// RunService manages run lifecycle and artifact persistence. A run is
// immutable once it reaches a terminal state; artifacts are append-only.
type RunService struct {
	client *ent.Client
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client) *RunService {
	return &RunService{client: client}
}

// CreateRunRequest describes a new run in state queued.
type CreateRunRequest struct {
	WorkspaceID string
	ChangesetID string // optional overlay
	RunType     run.RunType
}

// Create records a queued run.
func (s *RunService) Create(ctx context.Context, identity models.Identity, req CreateRunRequest) (*ent.Run, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if req.WorkspaceID == "" {
		return nil, NewValidationError("workspace_id", "required")
	}

	builder := s.client.Run.Create().
		SetID(uuid.New().String()).
		SetTenantID(identity.TenantID).
		SetWorkspaceID(req.WorkspaceID).
		SetRunType(req.RunType).
		SetStatus(run.StatusQueued).
		SetCorrelationID(identity.CorrelationID).
		SetTriggeredBy(identity.ActorID)
	if req.ChangesetID != "" {
		builder.SetChangesetID(req.ChangesetID)
	}

	r, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return r, nil
}

// MarkRunning transitions queued → running and stamps started_at.
func (s *RunService) MarkRunning(ctx context.Context, identity models.Identity, runID string) (*ent.Run, error) {
	r, err := s.Get(ctx, identity, runID)
	if err != nil {
		return nil, err
	}
	if r.Status != run.StatusQueued {
		return nil, fmt.Errorf("%w: run is %s", ErrRunTerminal, r.Status)
	}
	updated, err := r.Update().
		SetStatus(run.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark run running: %w", err)
	}
	return updated, nil
}

// RunOutcome carries the terminal fields of a run.
type RunOutcome struct {
	Status                run.Status // passed, failed, or error
	ExitCode              *int
	ErrorCategory         string
	ErrorMessage          string
	MaterializedFileCount *int
}

// Complete transitions running → terminal. Terminal runs reject further
// mutation.
func (s *RunService) Complete(ctx context.Context, identity models.Identity, runID string, outcome RunOutcome) (*ent.Run, error) {
	r, err := s.Get(ctx, identity, runID)
	if err != nil {
		return nil, err
	}
	if r.Status != run.StatusRunning {
		return nil, fmt.Errorf("%w: run is %s", ErrRunTerminal, r.Status)
	}
	switch outcome.Status {
	case run.StatusPassed, run.StatusFailed, run.StatusError:
	default:
		return nil, NewValidationError("status", "must be terminal")
	}

	now := time.Now()
	builder := r.Update().
		SetStatus(outcome.Status).
		SetCompletedAt(now)
	if r.StartedAt != nil {
		builder.SetDurationMs(int(now.Sub(*r.StartedAt).Milliseconds()))
	}
	if outcome.ExitCode != nil {
		builder.SetExitCode(*outcome.ExitCode)
	}
	if outcome.ErrorCategory != "" {
		builder.SetErrorCategory(outcome.ErrorCategory)
	}
	if outcome.ErrorMessage != "" {
		builder.SetErrorMessage(outcome.ErrorMessage)
	}
	if outcome.MaterializedFileCount != nil {
		builder.SetMaterializedFileCount(*outcome.MaterializedFileCount)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete run: %w", err)
	}
	return updated, nil
}

// AddArtifact stores an immutable artifact for a run. Content must
// already be redacted; it is capped here as a final guard.
func (s *RunService) AddArtifact(ctx context.Context, identity models.Identity, runID string, artifactType artifact.ArtifactType, content []byte) (*ent.Artifact, error) {
	if _, err := s.Get(ctx, identity, runID); err != nil {
		return nil, err
	}

	capped, truncated := redact.Cap(content)
	a, err := s.client.Artifact.Create().
		SetID(uuid.New().String()).
		SetRunID(runID).
		SetArtifactType(artifactType).
		SetContent(capped).
		SetSha256(ContentSHA256(string(capped))).
		SetSizeBytes(len(capped)).
		SetTruncated(truncated).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store artifact: %w", err)
	}
	return a, nil
}

// Get loads a run within the tenant scope.
func (s *RunService) Get(ctx context.Context, identity models.Identity, runID string) (*ent.Run, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	r, err := s.client.Run.Query().
		Where(
			run.IDEQ(runID),
			run.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	return r, nil
}

// ListArtifacts returns a run's artifacts in creation order.
func (s *RunService) ListArtifacts(ctx context.Context, identity models.Identity, runID string) ([]*ent.Artifact, error) {
	if _, err := s.Get(ctx, identity, runID); err != nil {
		return nil, err
	}
	return s.client.Artifact.Query().
		Where(artifact.RunIDEQ(runID)).
		Order(ent.Asc(artifact.FieldCreatedAt)).
		All(ctx)
}

// HasPassedRun reports whether a run of the given type exists for the
// changeset in state passed. Used by the deploy gate.
func (s *RunService) HasPassedRun(ctx context.Context, identity models.Identity, changesetID string, runType run.RunType) (bool, error) {
	if err := identity.Validate(); err != nil {
		return false, err
	}
	return s.client.Run.Query().
		Where(
			run.TenantIDEQ(identity.TenantID),
			run.ChangesetIDEQ(changesetID),
			run.RunTypeEQ(runType),
			run.StatusEQ(run.StatusPassed),
		).
		Exist(ctx)
}

// ListByChangeset returns runs recorded against a changeset, newest first.
func (s *RunService) ListByChangeset(ctx context.Context, identity models.Identity, changesetID string) ([]*ent.Run, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	return s.client.Run.Query().
		Where(
			run.TenantIDEQ(identity.TenantID),
			run.ChangesetIDEQ(changesetID),
		).
		Order(ent.Desc(run.FieldCreatedAt)).
		All(ctx)
}
