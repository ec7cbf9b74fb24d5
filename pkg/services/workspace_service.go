package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/workspace"
	"github.com/suiteops/suitepilot/ent/workspacefile"
	"github.com/suiteops/suitepilot/pkg/models"
)

// WorkspaceService manages workspaces and their files. All reads and
// writes are scoped by the identity's tenant.
type WorkspaceService struct {
	client *ent.Client
}

// NewWorkspaceService creates a new WorkspaceService.
func NewWorkspaceService(client *ent.Client) *WorkspaceService {
	return &WorkspaceService{client: client}
}

// ContentSHA256 returns the hex SHA-256 of file content. The same digest
// is used for file rows, patch baselines, and artifact integrity.
func ContentSHA256(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// CreateWorkspace creates an empty workspace for the tenant.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, identity models.Identity, name string) (*ent.Workspace, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	ws, err := s.client.Workspace.Create().
		SetID(uuid.New().String()).
		SetTenantID(identity.TenantID).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return ws, nil
}

// GetWorkspace loads a workspace within the tenant scope.
func (s *WorkspaceService) GetWorkspace(ctx context.Context, identity models.Identity, workspaceID string) (*ent.Workspace, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	ws, err := s.client.Workspace.Query().
		Where(
			workspace.IDEQ(workspaceID),
			workspace.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	return ws, nil
}

// MostRecentWorkspaceID returns the tenant's most recently updated
// workspace. Used by the agent loop to repair tool calls that arrive
// without a usable workspace_id.
func (s *WorkspaceService) MostRecentWorkspaceID(ctx context.Context, identity models.Identity) (string, error) {
	if err := identity.Validate(); err != nil {
		return "", err
	}
	ws, err := s.client.Workspace.Query().
		Where(workspace.TenantIDEQ(identity.TenantID)).
		Order(ent.Desc(workspace.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to query workspaces: %w", err)
	}
	return ws.ID, nil
}

// ListFiles lists files under an optional directory prefix. Directories
// themselves are included; recursive=false limits to direct children.
func (s *WorkspaceService) ListFiles(ctx context.Context, identity models.Identity, workspaceID, directory string, recursive bool, limit int) ([]*ent.WorkspaceFile, error) {
	if _, err := s.GetWorkspace(ctx, identity, workspaceID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 1000 {
		limit = 200
	}

	q := s.client.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(workspaceID),
			workspacefile.TenantIDEQ(identity.TenantID),
		)
	prefix := strings.TrimSuffix(directory, "/")
	if prefix != "" {
		q = q.Where(workspacefile.PathHasPrefix(prefix + "/"))
	}

	files, err := q.Order(ent.Asc(workspacefile.FieldPath)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	if recursive {
		return files, nil
	}

	// Non-recursive: keep only direct children of the directory.
	depth := 0
	if prefix != "" {
		depth = strings.Count(prefix, "/") + 1
	}
	direct := files[:0]
	for _, f := range files {
		if strings.Count(f.Path, "/") == depth {
			direct = append(direct, f)
		}
	}
	return direct, nil
}

// GetFile loads one file by path.
func (s *WorkspaceService) GetFile(ctx context.Context, identity models.Identity, workspaceID, path string) (*ent.WorkspaceFile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	f, err := s.client.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(workspaceID),
			workspacefile.TenantIDEQ(identity.TenantID),
			workspacefile.PathEQ(path),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return f, nil
}

// GetFileByID loads one file by its ID.
func (s *WorkspaceService) GetFileByID(ctx context.Context, identity models.Identity, fileID string) (*ent.WorkspaceFile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	f, err := s.client.WorkspaceFile.Query().
		Where(
			workspacefile.IDEQ(fileID),
			workspacefile.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return f, nil
}

// UpsertFile creates or replaces file content at a validated path,
// refreshing hash and size. Used by workspace import and changeset apply.
func (s *WorkspaceService) UpsertFile(ctx context.Context, identity models.Identity, workspaceID, path, content, mimeType string) (*ent.WorkspaceFile, error) {
	if err := identity.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidateFilePath(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if mimeType == "" {
		mimeType = "text/plain"
	}

	existing, err := s.GetFile(ctx, identity, workspaceID, path)
	switch {
	case err == nil:
		updated, err := existing.Update().
			SetContent(content).
			SetSha256(ContentSHA256(content)).
			SetSizeBytes(len(content)).
			SetMimeType(mimeType).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update file: %w", err)
		}
		return updated, nil
	case errors.Is(err, ErrNotFound):
		created, err := s.client.WorkspaceFile.Create().
			SetID(uuid.New().String()).
			SetWorkspaceID(workspaceID).
			SetTenantID(identity.TenantID).
			SetPath(path).
			SetContent(content).
			SetSha256(ContentSHA256(content)).
			SetSizeBytes(len(content)).
			SetMimeType(mimeType).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create file: %w", err)
		}
		return created, nil
	default:
		return nil, err
	}
}

// DeleteFile removes one file by path.
func (s *WorkspaceService) DeleteFile(ctx context.Context, identity models.Identity, workspaceID, path string) error {
	f, err := s.GetFile(ctx, identity, workspaceID, path)
	if err != nil {
		return err
	}
	if err := s.client.WorkspaceFile.DeleteOne(f).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SearchFiles matches by path substring or content substring, capped.
func (s *WorkspaceService) SearchFiles(ctx context.Context, identity models.Identity, workspaceID, query, searchType string, limit int) ([]*ent.WorkspaceFile, error) {
	if _, err := s.GetWorkspace(ctx, identity, workspaceID); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := s.client.WorkspaceFile.Query().
		Where(
			workspacefile.WorkspaceIDEQ(workspaceID),
			workspacefile.TenantIDEQ(identity.TenantID),
			workspacefile.IsDirectory(false),
		)
	switch searchType {
	case "path":
		q = q.Where(workspacefile.PathContainsFold(query))
	case "", "content":
		q = q.Where(workspacefile.ContentContainsFold(query))
	default:
		return nil, NewValidationError("search_type", "must be 'path' or 'content'")
	}

	files, err := q.Order(ent.Asc(workspacefile.FieldPath)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search files: %w", err)
	}
	return files, nil
}
