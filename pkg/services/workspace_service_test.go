package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspace_UpsertFile(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	created, err := svc.UpsertFile(ctx, identity, wsID, "src/hook.js", "v1", "")
	require.NoError(t, err)
	assert.Equal(t, ContentSHA256("v1"), created.Sha256)
	assert.Equal(t, len("v1"), created.SizeBytes)
	assert.Equal(t, "text/plain", created.MimeType)

	// A second upsert replaces content in place.
	updated, err := svc.UpsertFile(ctx, identity, wsID, "src/hook.js", "v2", "application/javascript")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, ContentSHA256("v2"), updated.Sha256)

	_, err = svc.UpsertFile(ctx, identity, wsID, "../outside.js", "x", "")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestWorkspace_ListFiles(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	for _, path := range []string{
		"src/a.js",
		"src/b.js",
		"src/lib/util.js",
		"test/a_test.js",
	} {
		_, err := svc.UpsertFile(ctx, identity, wsID, path, "// "+path, "")
		require.NoError(t, err)
	}

	all, err := svc.ListFiles(ctx, identity, wsID, "", true, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	underSrc, err := svc.ListFiles(ctx, identity, wsID, "src", true, 0)
	require.NoError(t, err)
	require.Len(t, underSrc, 3)
	assert.Equal(t, "src/a.js", underSrc[0].Path)

	direct, err := svc.ListFiles(ctx, identity, wsID, "src", false, 0)
	require.NoError(t, err)
	require.Len(t, direct, 2)
	for _, f := range direct {
		assert.NotContains(t, f.Path, "lib/")
	}
}

func TestWorkspace_SearchFiles(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	_, err := svc.UpsertFile(ctx, identity, wsID, "src/invoice_hook.js", "function beforeSubmit() { /* Invoice totals */ }", "")
	require.NoError(t, err)
	_, err = svc.UpsertFile(ctx, identity, wsID, "src/payout.js", "function summarize() {}", "")
	require.NoError(t, err)

	byContent, err := svc.SearchFiles(ctx, identity, wsID, "invoice", "content", 0)
	require.NoError(t, err)
	require.Len(t, byContent, 1)
	assert.Equal(t, "src/invoice_hook.js", byContent[0].Path)

	byPath, err := svc.SearchFiles(ctx, identity, wsID, "PAYOUT", "path", 0)
	require.NoError(t, err)
	require.Len(t, byPath, 1)
	assert.Equal(t, "src/payout.js", byPath[0].Path)

	_, err = svc.SearchFiles(ctx, identity, wsID, "", "content", 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.SearchFiles(ctx, identity, wsID, "x", "regex", 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestWorkspace_MostRecentWorkspaceID(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	_, err := svc.MostRecentWorkspaceID(ctx, identity)
	require.ErrorIs(t, err, ErrNotFound)

	first, err := svc.CreateWorkspace(ctx, identity, "first")
	require.NoError(t, err)
	second, err := svc.CreateWorkspace(ctx, identity, "second")
	require.NoError(t, err)

	// Touching the older workspace makes it the most recent again.
	_, err = first.Update().SetName("first-renamed").Save(ctx)
	require.NoError(t, err)

	id, err := svc.MostRecentWorkspaceID(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, first.ID, id)
	_ = second
}

func TestWorkspace_TenantIsolation(t *testing.T) {
	client := setupClient(t)
	svc := NewWorkspaceService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")
	wsID := seedWorkspace(t, client, "tenant-a")

	_, err := svc.GetWorkspace(ctx, newIdentity("tenant-b", "user-9"), wsID)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpsertFile(ctx, newIdentity("tenant-a", "user-1"), wsID, "src/a.js", "x", "")
	require.NoError(t, err)
	_, err = svc.GetFile(ctx, newIdentity("tenant-b", "user-9"), wsID, "src/a.js")
	require.ErrorIs(t, err, ErrNotFound)
}
