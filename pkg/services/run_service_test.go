package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/redact"
)

func TestRun_Lifecycle(t *testing.T) {
	client := setupClient(t)
	svc := NewRunService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	rec, err := svc.Create(ctx, identity, CreateRunRequest{
		WorkspaceID: wsID,
		RunType:     run.RunTypeSdfValidate,
	})
	require.NoError(t, err)
	assert.Equal(t, run.StatusQueued, rec.Status)
	assert.Equal(t, identity.CorrelationID, rec.CorrelationID)
	assert.Equal(t, "user-1", rec.TriggeredBy)

	running, err := svc.MarkRunning(ctx, identity, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, run.StatusRunning, running.Status)
	assert.NotNil(t, running.StartedAt)

	// Running runs cannot be re-marked.
	_, err = svc.MarkRunning(ctx, identity, rec.ID)
	require.ErrorIs(t, err, ErrRunTerminal)

	exitCode := 0
	fileCount := 3
	done, err := svc.Complete(ctx, identity, rec.ID, RunOutcome{
		Status:                run.StatusPassed,
		ExitCode:              &exitCode,
		MaterializedFileCount: &fileCount,
	})
	require.NoError(t, err)
	assert.Equal(t, run.StatusPassed, done.Status)
	require.NotNil(t, done.DurationMs)
	assert.GreaterOrEqual(t, *done.DurationMs, 0)
	require.NotNil(t, done.MaterializedFileCount)
	assert.Equal(t, 3, *done.MaterializedFileCount)

	// Terminal runs are immutable.
	_, err = svc.Complete(ctx, identity, rec.ID, RunOutcome{Status: run.StatusFailed})
	require.ErrorIs(t, err, ErrRunTerminal)
}

func TestRun_CompleteRejectsNonTerminalStatus(t *testing.T) {
	client := setupClient(t)
	svc := NewRunService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	rec, err := svc.Create(ctx, identity, CreateRunRequest{WorkspaceID: wsID, RunType: run.RunTypeJestUnitTest})
	require.NoError(t, err)
	_, err = svc.MarkRunning(ctx, identity, rec.ID)
	require.NoError(t, err)

	_, err = svc.Complete(ctx, identity, rec.ID, RunOutcome{Status: run.StatusQueued})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAddArtifact_CapsOversizedContent(t *testing.T) {
	client := setupClient(t)
	svc := NewRunService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	rec, err := svc.Create(ctx, identity, CreateRunRequest{WorkspaceID: wsID, RunType: run.RunTypeSdfValidate})
	require.NoError(t, err)

	small, err := svc.AddArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeStdout, []byte("all good"))
	require.NoError(t, err)
	assert.False(t, small.Truncated)
	assert.Equal(t, len("all good"), small.SizeBytes)
	assert.Equal(t, ContentSHA256("all good"), small.Sha256)

	huge := bytes.Repeat([]byte("x"), redact.MaxArtifactBytes+1000)
	big, err := svc.AddArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeStderr, huge)
	require.NoError(t, err)
	assert.True(t, big.Truncated)
	assert.Equal(t, redact.MaxArtifactBytes+len(redact.TruncationMarker), big.SizeBytes)
	assert.True(t, bytes.HasSuffix(big.Content, []byte(redact.TruncationMarker)))

	arts, err := svc.ListArtifacts(ctx, identity, rec.ID)
	require.NoError(t, err)
	assert.Len(t, arts, 2)
}

func TestHasPassedRun(t *testing.T) {
	client := setupClient(t)
	svc := NewRunService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	csSvc := NewChangesetService(client)
	cs, err := csSvc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/a.js",
		NewContent:  strptr("x"),
	})
	require.NoError(t, err)

	passed, err := svc.HasPassedRun(ctx, identity, cs.ID, run.RunTypeSdfValidate)
	require.NoError(t, err)
	assert.False(t, passed)

	// A failed run of the right type does not count.
	rec, err := svc.Create(ctx, identity, CreateRunRequest{WorkspaceID: wsID, ChangesetID: cs.ID, RunType: run.RunTypeSdfValidate})
	require.NoError(t, err)
	_, err = svc.MarkRunning(ctx, identity, rec.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, identity, rec.ID, RunOutcome{Status: run.StatusFailed})
	require.NoError(t, err)

	passed, err = svc.HasPassedRun(ctx, identity, cs.ID, run.RunTypeSdfValidate)
	require.NoError(t, err)
	assert.False(t, passed)

	rec2, err := svc.Create(ctx, identity, CreateRunRequest{WorkspaceID: wsID, ChangesetID: cs.ID, RunType: run.RunTypeSdfValidate})
	require.NoError(t, err)
	_, err = svc.MarkRunning(ctx, identity, rec2.ID)
	require.NoError(t, err)
	_, err = svc.Complete(ctx, identity, rec2.ID, RunOutcome{Status: run.StatusPassed})
	require.NoError(t, err)

	passed, err = svc.HasPassedRun(ctx, identity, cs.ID, run.RunTypeSdfValidate)
	require.NoError(t, err)
	assert.True(t, passed)

	// Passing one type says nothing about the others.
	passed, err = svc.HasPassedRun(ctx, identity, cs.ID, run.RunTypeJestUnitTest)
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestRun_TenantIsolation(t *testing.T) {
	client := setupClient(t)
	svc := NewRunService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")
	wsID := seedWorkspace(t, client, "tenant-a")

	rec, err := svc.Create(ctx, newIdentity("tenant-a", "user-1"), CreateRunRequest{
		WorkspaceID: wsID,
		RunType:     run.RunTypeSdfValidate,
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, newIdentity("tenant-b", "user-9"), rec.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.AddArtifact(ctx, newIdentity("tenant-b", "user-9"), rec.ID, artifact.ArtifactTypeStdout, []byte("x"))
	require.ErrorIs(t, err, ErrNotFound)
}
