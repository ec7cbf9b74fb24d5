package netsuite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/models"
)

func TestScheduler_CreateListRun(t *testing.T) {
	s := NewMemoryScheduler()
	ctx := context.Background()
	identity := reconIdentity()

	created, err := s.CreateSchedule(ctx, identity, "nightly recon", "reconciliation", "0 2 * * *", nil)
	require.NoError(t, err)
	scheduleID := created["schedule_id"].(string)

	_, err = s.CreateSchedule(ctx, identity, "aging report", "report", "0 6 * * 1", map[string]any{"report_type": "invoice_aging"})
	require.NoError(t, err)

	listed, err := s.ListSchedules(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, 2, listed["count"])
	entries := listed["schedules"].([]map[string]any)
	assert.Equal(t, "aging report", entries[0]["name"], "sorted by name")
	assert.NotContains(t, entries[0], "last_run_at")

	out, err := s.RunSchedule(ctx, identity, scheduleID)
	require.NoError(t, err)
	assert.Equal(t, "triggered", out["status"])

	listed, err = s.ListSchedules(ctx, identity)
	require.NoError(t, err)
	entries = listed["schedules"].([]map[string]any)
	assert.Contains(t, entries[1], "last_run_at", "nightly recon now carries a run timestamp")
}

func TestScheduler_RequiresAllFields(t *testing.T) {
	s := NewMemoryScheduler()

	_, err := s.CreateSchedule(context.Background(), reconIdentity(), "nightly recon", "reconciliation", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestScheduler_TenantIsolation(t *testing.T) {
	s := NewMemoryScheduler()
	ctx := context.Background()

	created, err := s.CreateSchedule(ctx, reconIdentity(), "nightly recon", "reconciliation", "0 2 * * *", nil)
	require.NoError(t, err)
	scheduleID := created["schedule_id"].(string)

	other := models.Identity{TenantID: "tenant-b", ActorID: "user-9", CorrelationID: "corr-9"}
	listed, err := s.ListSchedules(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 0, listed["count"])

	// A foreign schedule ID is indistinguishable from a missing one.
	_, err = s.RunSchedule(ctx, other, scheduleID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schedule")
}
