package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/patch"
)

func TestProposePatch_CreateAndAppend(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/new_hook.js",
		NewContent:  strptr("define([], function() {});"),
		Title:       "Add invoice hook",
	})
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusDraft, cs.Status)
	assert.Equal(t, "Add invoice hook", cs.Title)
	require.Len(t, cs.Edges.Patches, 1)
	assert.Equal(t, patch.OperationCreate, cs.Edges.Patches[0].Operation)
	assert.Empty(t, cs.Edges.Patches[0].BaselineSha256)
	assert.Equal(t, 0, cs.Edges.Patches[0].ApplyOrder)

	// Appending to the same draft assigns the next apply_order.
	cs2, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/second.js",
		NewContent:  strptr("// second"),
		ChangesetID: cs.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, cs.ID, cs2.ID)
	require.Len(t, cs2.Edges.Patches, 2)
	assert.Equal(t, 1, cs2.Edges.Patches[1].ApplyOrder)
}

func TestProposePatch_ModifyRecordsBaselineAndLock(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	file := seedFile(t, client, "tenant-a", wsID, "src/hook.js", "v1")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2"),
	})
	require.NoError(t, err)
	require.Len(t, cs.Edges.Patches, 1)
	assert.Equal(t, patch.OperationModify, cs.Edges.Patches[0].Operation)
	assert.Equal(t, ContentSHA256("v1"), cs.Edges.Patches[0].BaselineSha256)

	locked := client.WorkspaceFile.GetX(ctx, file.ID)
	require.NotNil(t, locked.LockedBy)
	assert.Equal(t, "user-1", *locked.LockedBy)
}

func TestProposePatch_FileLockContention(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	file := seedFile(t, client, "tenant-a", wsID, "src/hook.js", "v1")

	_, err := svc.ProposePatch(ctx, newIdentity("tenant-a", "user-1"), ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2"),
	})
	require.NoError(t, err)

	// A second proposer hits the live lock.
	_, err = svc.ProposePatch(ctx, newIdentity("tenant-a", "user-2"), ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v3"),
	})
	require.ErrorIs(t, err, ErrFileLocked)

	// The holder may keep proposing against their own lock.
	_, err = svc.ProposePatch(ctx, newIdentity("tenant-a", "user-1"), ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2b"),
	})
	require.NoError(t, err)

	// An expired lock transfers to the new proposer.
	_, err = client.WorkspaceFile.UpdateOneID(file.ID).
		SetLockedAt(time.Now().Add(-FileLockTTL - time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.ProposePatch(ctx, newIdentity("tenant-a", "user-2"), ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v3"),
	})
	require.NoError(t, err)

	current := client.WorkspaceFile.GetX(ctx, file.ID)
	require.NotNil(t, current.LockedBy)
	assert.Equal(t, "user-2", *current.LockedBy)
}

func TestProposePatch_RejectsBadInput(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	_, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "../escape.js",
		NewContent:  strptr("x"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/a.js",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	// A create proposal with an unparseable diff and no content fails.
	_, err = svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/a.js",
		UnifiedDiff: "this is not a diff",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransition_StateMachine(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	propose := func() *ent.Changeset {
		cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
			WorkspaceID: wsID,
			FilePath:    "src/new.js",
			NewContent:  strptr("x"),
		})
		require.NoError(t, err)
		return cs
	}

	// draft → pending_review → approved
	cs := propose()
	cs2, err := svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusPendingReview, cs2.Status)
	assert.NotNil(t, cs2.SubmittedAt)

	reviewer := newIdentity("tenant-a", "reviewer-1")
	cs3, err := svc.Transition(ctx, reviewer, cs.ID, ActionApprove, "")
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusApproved, cs3.Status)
	require.NotNil(t, cs3.ReviewedBy)
	assert.Equal(t, "reviewer-1", *cs3.ReviewedBy)

	// approved → draft via revoke
	cs4, err := svc.Transition(ctx, identity, cs.ID, ActionRevoke, "")
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusDraft, cs4.Status)

	// Invalid edges fail without changing state.
	_, err = svc.Transition(ctx, identity, cs.ID, ActionApprove, "")
	require.ErrorIs(t, err, ErrInvalidTransition)
	current, err := svc.Get(ctx, identity, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusDraft, current.Status)

	// pending_review → draft via revert
	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	cs5, err := svc.Transition(ctx, identity, cs.ID, ActionRevert, "")
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusDraft, cs5.Status)

	// Rejection is terminal and records the reason.
	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	cs6, err := svc.Transition(ctx, reviewer, cs.ID, ActionReject, "needs a test")
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusRejected, cs6.Status)
	require.NotNil(t, cs6.RejectionReason)
	assert.Equal(t, "needs a test", *cs6.RejectionReason)
	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransition_RejectReleasesFileLocks(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	file := seedFile(t, client, "tenant-a", wsID, "src/hook.js", "v1")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2"),
	})
	require.NoError(t, err)

	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, identity, cs.ID, ActionReject, "not now")
	require.NoError(t, err)

	unlocked := client.WorkspaceFile.GetX(ctx, file.ID)
	assert.Nil(t, unlocked.LockedBy)
	assert.Nil(t, unlocked.LockedAt)
}

func TestApply_HappyPath(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	file := seedFile(t, client, "tenant-a", wsID, "src/hook.js", "v1")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2"),
	})
	require.NoError(t, err)
	// A create patch in the same changeset applies after the modify.
	_, err = svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/created.js",
		NewContent:  strptr("// fresh"),
		ChangesetID: cs.ID,
	})
	require.NoError(t, err)

	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, identity, cs.ID, ActionApprove, "")
	require.NoError(t, err)

	applied, err := svc.Apply(ctx, identity, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusApplied, applied.Status)
	assert.NotNil(t, applied.AppliedAt)

	updated := client.WorkspaceFile.GetX(ctx, file.ID)
	assert.Equal(t, "v2", updated.Content)
	assert.Equal(t, ContentSHA256("v2"), updated.Sha256)
	assert.Nil(t, updated.LockedBy, "apply releases the advisory lock")

	ws := NewWorkspaceService(client)
	created, err := ws.GetFile(ctx, identity, wsID, "src/created.js")
	require.NoError(t, err)
	assert.Equal(t, "// fresh", created.Content)

	// Applied changesets are immutable.
	_, err = svc.Apply(ctx, identity, cs.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApply_BaselineMismatchRollsBack(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")
	file := seedFile(t, client, "tenant-a", wsID, "src/hook.js", "v1")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  strptr("v2"),
	})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, identity, cs.ID, ActionSubmit, "")
	require.NoError(t, err)
	_, err = svc.Transition(ctx, identity, cs.ID, ActionApprove, "")
	require.NoError(t, err)

	// Someone edits the file out-of-band after approval.
	_, err = client.WorkspaceFile.UpdateOneID(file.ID).
		SetContent("tampered").
		SetSha256(ContentSHA256("tampered")).
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.Apply(ctx, identity, cs.ID)
	require.ErrorIs(t, err, ErrConflict)

	// Nothing moved: file keeps the out-of-band content, changeset stays
	// approved and can be revoked for a fresh proposal.
	unchanged := client.WorkspaceFile.GetX(ctx, file.ID)
	assert.Equal(t, "tampered", unchanged.Content)
	current, err := svc.Get(ctx, identity, cs.ID)
	require.NoError(t, err)
	assert.Equal(t, changeset.StatusApproved, current.Status)
}

func TestApply_RequiresApproval(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")
	wsID := seedWorkspace(t, client, "tenant-a")

	cs, err := svc.ProposePatch(ctx, identity, ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/new.js",
		NewContent:  strptr("x"),
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, identity, cs.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestChangeset_TenantIsolation(t *testing.T) {
	client := setupClient(t)
	svc := NewChangesetService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")
	wsID := seedWorkspace(t, client, "tenant-a")

	cs, err := svc.ProposePatch(ctx, newIdentity("tenant-a", "user-1"), ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/new.js",
		NewContent:  strptr("x"),
	})
	require.NoError(t, err)

	_, err = svc.Get(ctx, newIdentity("tenant-b", "user-9"), cs.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Transition(ctx, newIdentity("tenant-b", "user-9"), cs.ID, ActionSubmit, "")
	require.ErrorIs(t, err, ErrNotFound)
}
