package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolptr(b bool) *bool { return &b }
func intptr(i int) *int    { return &i }

func TestPolicy_SingleActiveProfile(t *testing.T) {
	client := setupClient(t)
	svc := NewPolicyService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	_, err := svc.GetActive(ctx, identity)
	require.ErrorIs(t, err, ErrNotFound)

	first, err := svc.Create(ctx, identity, "strict", true, PolicyUpdate{
		ReadOnlyMode:  boolptr(true),
		BlockedFields: []string{"salary"},
	})
	require.NoError(t, err)
	assert.True(t, first.Active)
	assert.True(t, first.ReadOnlyMode)

	// Activating a second profile deactivates the first in one transaction.
	second, err := svc.Create(ctx, identity, "relaxed", true, PolicyUpdate{
		MaxRowsPerQuery: intptr(500),
	})
	require.NoError(t, err)

	active, err := svc.GetActive(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	all, err := svc.List(ctx, identity)
	require.NoError(t, err)
	require.Len(t, all, 2)
	activeCount := 0
	for _, p := range all {
		if p.Active {
			activeCount++
		}
	}
	assert.Equal(t, 1, activeCount)
}

func TestPolicy_LockedProfileRejectsMutation(t *testing.T) {
	client := setupClient(t)
	svc := NewPolicyService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	profile, err := svc.Create(ctx, identity, "onboarded", true, PolicyUpdate{})
	require.NoError(t, err)

	// Locking itself needs no special privilege.
	_, err = svc.SetLocked(ctx, identity, profile.ID, true)
	require.NoError(t, err)

	_, err = svc.Update(ctx, identity, profile.ID, PolicyUpdate{ReadOnlyMode: boolptr(true)})
	require.ErrorIs(t, err, ErrPolicyLocked)

	admin := newIdentity("tenant-a", "admin-1")
	admin.Admin = true
	updated, err := svc.Update(ctx, admin, profile.ID, PolicyUpdate{ReadOnlyMode: boolptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.ReadOnlyMode)
}

func TestPolicy_UnlockRequiresAdmin(t *testing.T) {
	client := setupClient(t)
	svc := NewPolicyService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	profile, err := svc.Create(ctx, identity, "onboarded", true, PolicyUpdate{})
	require.NoError(t, err)
	_, err = svc.SetLocked(ctx, identity, profile.ID, true)
	require.NoError(t, err)

	_, err = svc.SetLocked(ctx, identity, profile.ID, false)
	require.ErrorIs(t, err, ErrNotPermitted)

	admin := newIdentity("tenant-a", "admin-1")
	admin.Admin = true
	unlocked, err := svc.SetLocked(ctx, admin, profile.ID, false)
	require.NoError(t, err)
	assert.False(t, unlocked.Locked)
}

func TestPolicy_TenantIsolation(t *testing.T) {
	client := setupClient(t)
	svc := NewPolicyService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")

	profile, err := svc.Create(ctx, newIdentity("tenant-a", "user-1"), "strict", true, PolicyUpdate{})
	require.NoError(t, err)

	_, err = svc.Update(ctx, newIdentity("tenant-b", "user-9"), profile.ID, PolicyUpdate{ReadOnlyMode: boolptr(true)})
	require.ErrorIs(t, err, ErrNotFound)

	// tenant-b activating its own profile leaves tenant-a's active.
	_, err = svc.Create(ctx, newIdentity("tenant-b", "user-9"), "other", true, PolicyUpdate{})
	require.NoError(t, err)
	active, err := svc.GetActive(ctx, newIdentity("tenant-a", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, profile.ID, active.ID)
}
