package governance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/redact"
	"github.com/suiteops/suitepilot/pkg/services"
	"github.com/suiteops/suitepilot/pkg/tools"
	testutil "github.com/suiteops/suitepilot/test/util"
)

func setupGovernor(t *testing.T, clock *fakeClock) (*Governor, *services.AuditService) {
	t.Helper()
	client, _ := testutil.SetupTestDatabase(t)
	_, err := client.Tenant.Create().SetID("tenant-a").SetName("tenant-a").Save(context.Background())
	require.NoError(t, err)

	audit := services.NewAuditService(client)
	limiter := NewRateLimiter(clock.Now)
	metrics := NewMetrics(prometheus.NewRegistry())
	return NewGovernor(limiter, audit, metrics), audit
}

func govIdentity() models.Identity {
	return models.Identity{
		TenantID:      "tenant-a",
		ActorID:       "user-1",
		CorrelationID: uuid.New().String(),
	}
}

func actionsFor(t *testing.T, audit *services.AuditService, identity models.Identity) []string {
	t.Helper()
	events, err := audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	actions := make([]string, 0, len(events))
	for _, ev := range events {
		actions = append(actions, ev.Action)
	}
	return actions
}

func TestGovernor_SuccessAuditTrail(t *testing.T) {
	gov, audit := setupGovernor(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})
	identity := govIdentity()

	desc := &tools.Descriptor{
		Name:   "netsuite.suiteql",
		Params: []string{"query", "limit"},
		Handler: func(_ context.Context, _ models.Identity, params map[string]any) (map[string]any, error) {
			return map[string]any{"rows": []any{}, "row_count": 0}, nil
		},
	}

	out := gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
	assert.NotContains(t, out, "error")

	assert.Equal(t, []string{"tool.requested", "tool.executed"}, actionsFor(t, audit, identity))

	events, err := audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	assert.Equal(t, auditevent.StatusPending, events[0].Status)
	assert.Equal(t, "SELECT 1", events[0].Payload["query"])
	assert.Equal(t, auditevent.StatusSuccess, events[1].Status)
	assert.ElementsMatch(t, []any{"row_count", "rows"}, events[1].Payload["result_keys"])
}

func TestGovernor_RateLimitDenied(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	gov, audit := setupGovernor(t, clock)
	identity := govIdentity()

	calls := 0
	desc := &tools.Descriptor{
		Name:          "netsuite.suiteql",
		Params:        []string{"query"},
		RatePerMinute: 2,
		Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
			calls++
			return map[string]any{"ok": true}, nil
		},
	}

	for i := 0; i < 2; i++ {
		out := gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
		assert.NotContains(t, out, "error")
	}
	out := gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
	assert.Equal(t, "Rate limit exceeded", out["error"])
	assert.Equal(t, 2, calls, "denied call never reaches the handler")

	// The denial audits without a tool.requested entry.
	actions := actionsFor(t, audit, identity)
	assert.Equal(t, []string{
		"tool.requested", "tool.executed",
		"tool.requested", "tool.executed",
		"tool.rate_limited",
	}, actions)

	// Past the window the tool is available again.
	clock.Advance(61 * time.Second)
	out = gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
	assert.NotContains(t, out, "error")
}

func TestGovernor_ParamAllowlistAndLimitCap(t *testing.T) {
	gov, audit := setupGovernor(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})
	identity := govIdentity()

	var got map[string]any
	desc := &tools.Descriptor{
		Name:         "netsuite.suiteql",
		Params:       []string{"query", "limit"},
		DefaultLimit: 100,
		MaxLimit:     1000,
		Handler: func(_ context.Context, _ models.Identity, params map[string]any) (map[string]any, error) {
			got = params
			return map[string]any{"ok": true}, nil
		},
	}

	gov.Execute(context.Background(), identity, desc, map[string]any{
		"query":     "SELECT 1",
		"sneaky":    "drop table",
		"workspace": "w-1",
	})
	assert.NotContains(t, got, "sneaky")
	assert.NotContains(t, got, "workspace")
	assert.Equal(t, 100, got["limit"], "default limit injected")

	// Models send JSON numbers; the cap applies after coercion.
	gov.Execute(context.Background(), identity, desc, map[string]any{
		"query": "SELECT 1",
		"limit": float64(50000),
	})
	assert.Equal(t, 1000, got["limit"])

	// The requested audit payload records the validated params only.
	events, err := audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	first := events[0]
	assert.Equal(t, "tool.requested", first.Action)
	assert.NotContains(t, first.Payload, "sneaky")
}

func TestGovernor_HandlerErrorAuditsFailed(t *testing.T) {
	gov, audit := setupGovernor(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})
	identity := govIdentity()

	desc := &tools.Descriptor{
		Name:   "workspace.read_file",
		Params: []string{"path"},
		Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
			return nil, errors.New("file not found: src/a.js")
		},
	}

	out := gov.Execute(context.Background(), identity, desc, map[string]any{"path": "src/a.js"})
	assert.Equal(t, "file not found: src/a.js", out["error"])

	assert.Equal(t, []string{"tool.requested", "tool.failed"}, actionsFor(t, audit, identity))
	events, err := audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	assert.Equal(t, auditevent.StatusError, events[1].Status)
	assert.Equal(t, "file not found: src/a.js", events[1].ErrorMessage)
}

func TestGovernor_PanicBecomesError(t *testing.T) {
	gov, audit := setupGovernor(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})
	identity := govIdentity()

	desc := &tools.Descriptor{
		Name:   "netsuite.suiteql",
		Params: []string{"query"},
		Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
			panic("index out of range")
		},
	}

	out := gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
	require.Contains(t, out, "error")
	assert.Contains(t, out["error"].(string), "panicked")
	assert.Equal(t, []string{"tool.requested", "tool.failed"}, actionsFor(t, audit, identity))
}

func TestGovernor_RedactsSensitiveResultKeys(t *testing.T) {
	gov, _ := setupGovernor(t, &fakeClock{now: time.Unix(1_700_000_000, 0)})
	identity := govIdentity()

	desc := &tools.Descriptor{
		Name:   "netsuite.suiteql",
		Params: []string{"query"},
		Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
			return map[string]any{
				"rows":  []any{map[string]any{"id": "1", "token": "tok-secret"}},
				"count": 1,
			}, nil
		},
	}

	out := gov.Execute(context.Background(), identity, desc, map[string]any{"query": "SELECT 1"})
	rows := out["rows"].([]any)
	row := rows[0].(map[string]any)
	assert.Equal(t, redact.Placeholder, row["token"])
	assert.Equal(t, "1", row["id"])
}
