package sandbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/changeset"
	entpatch "github.com/suiteops/suitepilot/ent/patch"
	"github.com/suiteops/suitepilot/ent/workspacefile"
	"github.com/suiteops/suitepilot/pkg/diff"
	"github.com/suiteops/suitepilot/pkg/services"
)

// ErrPathEscape reports a materialized path resolving outside the scratch
// root. Stored paths are validated on write, so hitting this means either
// corruption or a bug; either way nothing is written.
var ErrPathEscape = errors.New("materialized path escapes scratch root")

// virtualFile is one file of the materialized workspace snapshot.
type virtualFile struct {
	Path    string
	Content string
}

// materialize loads the workspace's files and, when a changeset is given,
// overlays its patches in apply order. The changeset must be approved;
// modify patches verify the baseline hash before applying.
func (r *Runner) materialize(ctx context.Context, tenantID, workspaceID, changesetID string) ([]virtualFile, error) {
	files, err := r.client.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(workspaceID),
			workspacefile.TenantIDEQ(tenantID),
			workspacefile.IsDirectory(false),
		).
		Order(ent.Asc(workspacefile.FieldPath)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace files: %w", err)
	}

	snapshot := make(map[string]string, len(files))
	for _, f := range files {
		snapshot[f.Path] = f.Content
	}

	if changesetID != "" {
		if err := r.overlay(ctx, tenantID, changesetID, snapshot); err != nil {
			return nil, err
		}
	}

	out := make([]virtualFile, 0, len(snapshot))
	for path, content := range snapshot {
		out = append(out, virtualFile{Path: path, Content: content})
	}
	return out, nil
}

func (r *Runner) overlay(ctx context.Context, tenantID, changesetID string, snapshot map[string]string) error {
	cs, err := r.client.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to load changeset: %w", err)
	}
	if cs.Status != changeset.StatusApproved {
		return fmt.Errorf("%w: changeset is %s, must be approved", services.ErrInvalidTransition, cs.Status)
	}

	patches, err := r.client.Patch.Query().
		Where(entpatch.ChangesetIDEQ(changesetID)).
		Order(ent.Asc(entpatch.FieldApplyOrder)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load patches: %w", err)
	}

	for _, p := range patches {
		switch p.Operation {
		case entpatch.OperationCreate:
			if p.NewContent == nil {
				return fmt.Errorf("create patch %s for %s has no content", p.ID, p.FilePath)
			}
			snapshot[p.FilePath] = *p.NewContent
		case entpatch.OperationDelete:
			delete(snapshot, p.FilePath)
		case entpatch.OperationModify:
			current, ok := snapshot[p.FilePath]
			if !ok {
				return fmt.Errorf("%w: file %s missing for modify", services.ErrConflict, p.FilePath)
			}
			if services.ContentSHA256(current) != p.BaselineSha256 {
				return fmt.Errorf("%w: baseline mismatch for %s", services.ErrConflict, p.FilePath)
			}
			next, err := applyPatchContent(current, p)
			if err != nil {
				return err
			}
			snapshot[p.FilePath] = next
		}
	}
	return nil
}

func applyPatchContent(current string, p *ent.Patch) (string, error) {
	if p.UnifiedDiff != "" {
		parsed, err := diff.Parse(p.UnifiedDiff)
		if err == nil {
			return diff.Apply(current, parsed)
		}
	}
	if p.NewContent != nil {
		return *p.NewContent, nil
	}
	return "", fmt.Errorf("patch %s for %s has no applicable content", p.ID, p.FilePath)
}

// writeScratch writes the snapshot under a fresh scratch directory. Every
// target path is resolved and checked to stay under the root before any
// byte is written.
func writeScratch(files []virtualFile) (string, error) {
	root, err := os.MkdirTemp("", "suitepilot-run-")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	resolvedRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		resolvedRoot = root
	}

	for _, f := range files {
		target := filepath.Join(resolvedRoot, filepath.FromSlash(f.Path))
		cleaned := filepath.Clean(target)
		if !strings.HasPrefix(cleaned, resolvedRoot+string(filepath.Separator)) {
			_ = os.RemoveAll(root)
			return "", fmt.Errorf("%w: %s", ErrPathEscape, f.Path)
		}
		if err := os.MkdirAll(filepath.Dir(cleaned), 0o755); err != nil {
			_ = os.RemoveAll(root)
			return "", fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(cleaned, []byte(f.Content), 0o644); err != nil {
			_ = os.RemoveAll(root)
			return "", fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return root, nil
}
