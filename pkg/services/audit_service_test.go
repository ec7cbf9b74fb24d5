package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/pkg/redact"
)

func TestAudit_AppendScrubsPayload(t *testing.T) {
	client := setupClient(t)
	svc := NewAuditService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	ev, err := svc.Append(ctx, identity, AuditEntry{
		Category:     "tool",
		Action:       "tool.executed",
		ResourceType: "tool",
		ResourceID:   "netsuite.suiteql",
		Status:       auditevent.StatusSuccess,
		Payload: map[string]any{
			"query":    "SELECT 1",
			"password": "hunter2",
			"nested":   map[string]any{"api_key": "sk-123", "rows": 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", ev.Payload["query"])
	assert.Equal(t, redact.Placeholder, ev.Payload["password"])
	nested := ev.Payload["nested"].(map[string]any)
	assert.Equal(t, redact.Placeholder, nested["api_key"])
	assert.Equal(t, identity.CorrelationID, ev.CorrelationID)
}

func TestAudit_AppendTruncatesErrorMessage(t *testing.T) {
	client := setupClient(t)
	svc := NewAuditService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	ev, err := svc.Append(ctx, identity, AuditEntry{
		Category:     "tool",
		Action:       "tool.failed",
		Status:       auditevent.StatusError,
		ErrorMessage: strings.Repeat("e", 5000),
	})
	require.NoError(t, err)
	assert.Len(t, ev.ErrorMessage, maxErrorLen)
}

func TestAudit_AppendValidatesInput(t *testing.T) {
	client := setupClient(t)
	svc := NewAuditService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")

	_, err := svc.Append(ctx, newIdentity("tenant-a", "user-1"), AuditEntry{Category: "tool"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Append(ctx, newIdentity("tenant-a", "user-1"), AuditEntry{Action: "tool.executed"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = svc.Append(ctx, newIdentity("", "user-1"), AuditEntry{Category: "tool", Action: "tool.executed"})
	require.Error(t, err)
}

func TestAudit_ListByCorrelationKeepsAppendOrder(t *testing.T) {
	client := setupClient(t)
	svc := NewAuditService(client)
	ctx := context.Background()
	identity := newIdentity("tenant-a", "user-1")
	seedTenant(t, client, "tenant-a")

	for _, action := range []string{"tool.requested", "tool.executed", "run_started"} {
		_, err := svc.Append(ctx, identity, AuditEntry{
			Category: "tool",
			Action:   action,
			Status:   auditevent.StatusSuccess,
		})
		require.NoError(t, err)
	}
	// An unrelated interaction does not appear.
	_, err := svc.Append(ctx, newIdentity("tenant-a", "user-2"), AuditEntry{
		Category: "tool",
		Action:   "tool.requested",
		Status:   auditevent.StatusPending,
	})
	require.NoError(t, err)

	events, err := svc.ListByCorrelation(ctx, identity, identity.CorrelationID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "tool.requested", events[0].Action)
	assert.Equal(t, "tool.executed", events[1].Action)
	assert.Equal(t, "run_started", events[2].Action)
}

func TestAudit_CrossTenantListingRequiresAdmin(t *testing.T) {
	client := setupClient(t)
	svc := NewAuditService(client)
	ctx := context.Background()
	seedTenant(t, client, "tenant-a")
	seedTenant(t, client, "tenant-b")

	for _, tenant := range []string{"tenant-a", "tenant-b"} {
		_, err := svc.Append(ctx, newIdentity(tenant, "user-1"), AuditEntry{
			Category: "policy",
			Action:   "policy.updated",
			Status:   auditevent.StatusSuccess,
		})
		require.NoError(t, err)
	}

	since := time.Now().Add(-time.Hour)

	_, err := svc.ListAllTenants(ctx, newIdentity("tenant-a", "user-1"), since, 10)
	require.ErrorIs(t, err, ErrNotPermitted)

	admin := newIdentity("tenant-a", "admin-1")
	admin.Admin = true
	events, err := svc.ListAllTenants(ctx, admin, since, 10)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// Per-tenant listing only sees its own rows.
	own, err := svc.ListByTenant(ctx, newIdentity("tenant-b", "user-1"), since, 10)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "tenant-b", own[0].TenantID)
}
