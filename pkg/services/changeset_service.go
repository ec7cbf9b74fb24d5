package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/workspacefile"
	"github.com/suiteops/suitepilot/pkg/diff"
	"github.com/suiteops/suitepilot/pkg/models"
)

// FileLockTTL is how long an advisory file lock is honored without
// activity. Expiry is evaluated lazily on every proposal.
const FileLockTTL = 30 * time.Minute

// ChangesetService drives the changeset state machine:
//
//	draft → pending_review → approved → applied
//
// with reject/revert/revoke/discard side transitions. applied and
// rejected are terminal. Apply is all-or-nothing under row-level locks.
type ChangesetService struct {
	client *ent.Client
}

// NewChangesetService creates a new ChangesetService.
func NewChangesetService(client *ent.Client) *ChangesetService {
	return &ChangesetService{client: client}
}

// TransitionAction names a state-machine edge.
type TransitionAction string

const (
	ActionSubmit  TransitionAction = "submit"
	ActionApprove TransitionAction = "approve"
	ActionReject  TransitionAction = "reject"
	ActionRevert  TransitionAction = "revert"
	ActionRevoke  TransitionAction = "revoke"
	ActionDiscard TransitionAction = "discard"
)

// transitions is the fixed state-machine table. Apply is not listed: it
// is a separate operation with its own locking discipline.
var transitions = map[changeset.Status]map[TransitionAction]changeset.Status{
	changeset.StatusDraft: {
		ActionSubmit:  changeset.StatusPendingReview,
		ActionDiscard: changeset.StatusRejected,
	},
	changeset.StatusPendingReview: {
		ActionApprove: changeset.StatusApproved,
		ActionReject:  changeset.StatusRejected,
		ActionRevert:  changeset.StatusDraft,
	},
	changeset.StatusApproved: {
		ActionRevoke: changeset.StatusDraft,
	},
}

// ProposePatchRequest describes a single-file proposal.
type ProposePatchRequest struct {
	WorkspaceID string
	FilePath    string
	UnifiedDiff string
	NewContent  *string
	Title       string
	Rationale   string

	// ChangesetID appends the patch to an existing draft changeset
	// instead of creating a new one.
	ChangesetID string
}

// ProposePatch validates the path, acquires the file lock, infers the
// operation (create when the file does not exist, modify otherwise), and
// materializes a draft changeset with one patch entry.
func (s *ChangesetService) ProposePatch(ctx context.Context, identity models.Identity, req ProposePatchRequest) (*ent.Changeset, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateFilePath(req.FilePath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if req.UnifiedDiff == "" && req.NewContent == nil {
		return nil, NewValidationError("unified_diff", "a diff or new content is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	file, err := tx.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(req.WorkspaceID),
			workspacefile.TenantIDEQ(identity.TenantID),
			workspacefile.PathEQ(req.FilePath),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query file: %w", err)
	}

	operation := patch.OperationCreate
	baseline := ""
	if file != nil {
		operation = patch.OperationModify
		baseline = file.Sha256
		if err := s.checkAndAcquireLock(ctx, file, identity.ActorID); err != nil {
			return nil, err
		}
	}

	// A create proposal must be expressible without an existing baseline:
	// either full content, or a diff that parses and applies to empty.
	if req.UnifiedDiff != "" {
		parsed, perr := diff.Parse(req.UnifiedDiff)
		if perr != nil {
			if operation == patch.OperationCreate {
				return nil, fmt.Errorf("%w: %s", ErrInvalidInput, perr)
			}
			// Modify proposals may still carry full content instead.
			if req.NewContent == nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidInput, perr)
			}
		} else if operation == patch.OperationCreate && req.NewContent == nil {
			if _, aerr := diff.Apply("", parsed); aerr != nil {
				return nil, fmt.Errorf("%w: create diff does not apply to empty file: %s", ErrInvalidInput, aerr)
			}
		}
	}

	cs, err := s.resolveDraft(ctx, tx, identity, req)
	if err != nil {
		return nil, err
	}

	nextOrder, err := tx.Patch.Query().
		Where(patch.ChangesetIDEQ(cs.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count patches: %w", err)
	}

	patchBuilder := tx.Patch.Create().
		SetID(uuid.New().String()).
		SetChangesetID(cs.ID).
		SetOperation(operation).
		SetFilePath(req.FilePath).
		SetBaselineSha256(baseline).
		SetApplyOrder(nextOrder)
	if req.UnifiedDiff != "" {
		patchBuilder.SetUnifiedDiff(req.UnifiedDiff)
	}
	if req.NewContent != nil {
		patchBuilder.SetNewContent(*req.NewContent)
	}
	if _, err := patchBuilder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create patch: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit proposal: %w", err)
	}
	return s.Get(ctx, identity, cs.ID)
}

// checkAndAcquireLock enforces the advisory lock: held by another user
// and unexpired fails with ErrFileLocked; otherwise the lock transfers
// to the proposer with a fresh timestamp.
func (s *ChangesetService) checkAndAcquireLock(ctx context.Context, file *ent.WorkspaceFile, actorID string) error {
	if file.LockedBy != nil && *file.LockedBy != actorID &&
		file.LockedAt != nil && time.Since(*file.LockedAt) < FileLockTTL {
		return fmt.Errorf("%w: %s holds the lock on %s", ErrFileLocked, *file.LockedBy, file.Path)
	}
	_, err := file.Update().
		SetLockedBy(actorID).
		SetLockedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire file lock: %w", err)
	}
	return nil
}

func (s *ChangesetService) resolveDraft(ctx context.Context, tx *ent.Tx, identity models.Identity, req ProposePatchRequest) (*ent.Changeset, error) {
	if req.ChangesetID != "" {
		cs, err := tx.Changeset.Query().
			Where(
				changeset.IDEQ(req.ChangesetID),
				changeset.TenantIDEQ(identity.TenantID),
			).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load changeset: %w", err)
		}
		if cs.Status != changeset.StatusDraft {
			return nil, fmt.Errorf("%w: can only add patches to a draft changeset", ErrInvalidTransition)
		}
		return cs, nil
	}

	title := req.Title
	if title == "" {
		title = "Change to " + req.FilePath
	}
	builder := tx.Changeset.Create().
		SetID(uuid.New().String()).
		SetTenantID(identity.TenantID).
		SetWorkspaceID(req.WorkspaceID).
		SetTitle(title).
		SetStatus(changeset.StatusDraft).
		SetProposedBy(identity.ActorID)
	if req.Rationale != "" {
		builder.SetRationale(req.Rationale)
	}
	cs, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create changeset: %w", err)
	}
	return cs, nil
}

// Transition moves a changeset along the state machine. Transitions that
// land in rejected release every file lock held for the changeset's
// patches.
func (s *ChangesetService) Transition(ctx context.Context, identity models.Identity, changesetID string, action TransitionAction, reason string) (*ent.Changeset, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cs, err := tx.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load changeset: %w", err)
	}

	next, ok := transitions[cs.Status][action]
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, cs.Status)
	}

	now := time.Now()
	builder := cs.Update().SetStatus(next)
	switch action {
	case ActionSubmit:
		builder.SetSubmittedAt(now)
	case ActionApprove:
		builder.SetReviewedBy(identity.ActorID).SetReviewedAt(now)
	case ActionReject, ActionDiscard:
		builder.SetReviewedBy(identity.ActorID).SetReviewedAt(now)
		if reason != "" {
			builder.SetRejectionReason(reason)
		}
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to transition changeset: %w", err)
	}

	if next == changeset.StatusRejected {
		if err := s.releaseLocks(ctx, tx, updated); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}
	return updated, nil
}

// Apply applies an approved changeset's patches in apply_order under
// row-level locks. Any baseline mismatch or non-applying hunk rolls the
// whole operation back; on success the state becomes applied and the
// changeset is immutable.
func (s *ChangesetService) Apply(ctx context.Context, identity models.Identity, changesetID string) (*ent.Changeset, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	cs, err := tx.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		ForUpdate(sql.WithLockAction(sql.NoWait)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock changeset: %w", err)
	}
	if cs.Status != changeset.StatusApproved {
		return nil, fmt.Errorf("%w: apply from %s", ErrInvalidTransition, cs.Status)
	}

	patches, err := tx.Patch.Query().
		Where(patch.ChangesetIDEQ(cs.ID)).
		Order(ent.Asc(patch.FieldApplyOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load patches: %w", err)
	}

	for _, p := range patches {
		if err := s.applyPatch(ctx, tx, identity, cs, p); err != nil {
			return nil, err
		}
	}

	if err := s.releaseLocks(ctx, tx, cs); err != nil {
		return nil, err
	}

	now := time.Now()
	updated, err := cs.Update().
		SetStatus(changeset.StatusApplied).
		SetAppliedBy(identity.ActorID).
		SetAppliedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark changeset applied: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit apply: %w", err)
	}
	return updated, nil
}

func (s *ChangesetService) applyPatch(ctx context.Context, tx *ent.Tx, identity models.Identity, cs *ent.Changeset, p *ent.Patch) error {
	switch p.Operation {
	case patch.OperationCreate:
		content, err := patchCreateContent(p)
		if err != nil {
			return err
		}
		_, err = tx.WorkspaceFile.Create().
			SetID(uuid.New().String()).
			SetWorkspaceID(cs.WorkspaceID).
			SetTenantID(identity.TenantID).
			SetPath(p.FilePath).
			SetContent(content).
			SetSha256(ContentSHA256(content)).
			SetSizeBytes(len(content)).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return fmt.Errorf("%w: file %s already exists", ErrConflict, p.FilePath)
			}
			return fmt.Errorf("failed to create file %s: %w", p.FilePath, err)
		}
		return nil

	case patch.OperationDelete:
		file, err := s.lockFile(ctx, tx, identity, cs.WorkspaceID, p.FilePath)
		if err != nil {
			return err
		}
		if err := tx.WorkspaceFile.DeleteOne(file).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete file %s: %w", p.FilePath, err)
		}
		return nil

	case patch.OperationModify:
		file, err := s.lockFile(ctx, tx, identity, cs.WorkspaceID, p.FilePath)
		if err != nil {
			return err
		}
		if file.Sha256 != p.BaselineSha256 {
			return fmt.Errorf("%w: %s", ErrConflict, p.FilePath)
		}
		content, err := patchModifyContent(file.Content, p)
		if err != nil {
			return err
		}
		if _, err := file.Update().
			SetContent(content).
			SetSha256(ContentSHA256(content)).
			SetSizeBytes(len(content)).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to update file %s: %w", p.FilePath, err)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown patch operation %q", ErrInvalidInput, p.Operation)
	}
}

func (s *ChangesetService) lockFile(ctx context.Context, tx *ent.Tx, identity models.Identity, workspaceID, path string) (*ent.WorkspaceFile, error) {
	file, err := tx.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(workspaceID),
			workspacefile.TenantIDEQ(identity.TenantID),
			workspacefile.PathEQ(path),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: file %s no longer exists", ErrConflict, path)
		}
		return nil, fmt.Errorf("failed to lock file %s: %w", path, err)
	}
	return file, nil
}

// releaseLocks clears the advisory lock on every file touched by the
// changeset's patches, when held.
func (s *ChangesetService) releaseLocks(ctx context.Context, tx *ent.Tx, cs *ent.Changeset) error {
	patches, err := tx.Patch.Query().
		Where(patch.ChangesetIDEQ(cs.ID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load patches for lock release: %w", err)
	}
	for _, p := range patches {
		_, err := tx.WorkspaceFile.Update().
			Where(
				workspacefile.WorkspaceIDEQ(cs.WorkspaceID),
				workspacefile.PathEQ(p.FilePath),
			).
			ClearLockedBy().
			ClearLockedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to release lock on %s: %w", p.FilePath, err)
		}
	}
	return nil
}

// patchCreateContent resolves the content for a create patch: full
// content wins, otherwise the diff is applied to the empty file.
func patchCreateContent(p *ent.Patch) (string, error) {
	if p.NewContent != nil {
		return *p.NewContent, nil
	}
	if p.UnifiedDiff == "" {
		return "", fmt.Errorf("%w: create patch %s carries no content", ErrInvalidInput, p.FilePath)
	}
	parsed, err := diff.Parse(p.UnifiedDiff)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	content, err := diff.Apply("", parsed)
	if err != nil {
		return "", fmt.Errorf("patch for %s: %w", p.FilePath, err)
	}
	return content, nil
}

// patchModifyContent applies the unified diff when one is stored; a hunk
// that does not apply fails the whole changeset apply. Patches without a
// diff fall back to full content.
func patchModifyContent(current string, p *ent.Patch) (string, error) {
	if p.UnifiedDiff != "" {
		parsed, err := diff.Parse(p.UnifiedDiff)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}
		content, err := diff.Apply(current, parsed)
		if err != nil {
			return "", fmt.Errorf("patch for %s: %w", p.FilePath, err)
		}
		return content, nil
	}
	if p.NewContent == nil {
		return "", fmt.Errorf("%w: modify patch %s carries neither diff nor content", ErrInvalidInput, p.FilePath)
	}
	return *p.NewContent, nil
}

// Get loads a changeset with its patches, tenant-scoped.
func (s *ChangesetService) Get(ctx context.Context, identity models.Identity, changesetID string) (*ent.Changeset, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	cs, err := s.client.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		WithPatches(func(q *ent.PatchQuery) {
			q.Order(ent.Asc(patch.FieldApplyOrder))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load changeset: %w", err)
	}
	return cs, nil
}

// ListByWorkspace returns changesets for a workspace, newest first.
func (s *ChangesetService) ListByWorkspace(ctx context.Context, identity models.Identity, workspaceID string, limit int) ([]*ent.Changeset, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.client.Changeset.Query().
		Where(
			changeset.WorkspaceIDEQ(workspaceID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		Order(ent.Desc(changeset.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}
