package assertions

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
	testutil "github.com/suiteops/suitepilot/test/util"
)

// fakeQueries answers each query from a scripted map.
type fakeQueries struct {
	results map[string]map[string]any
	errs    map[string]error
	limits  []int
}

func (f *fakeQueries) ExecuteSuiteQL(_ context.Context, _ models.Identity, query string, limit int) (map[string]any, error) {
	f.limits = append(f.limits, limit)
	if err, ok := f.errs[query]; ok {
		return nil, err
	}
	if result, ok := f.results[query]; ok {
		return result, nil
	}
	return map[string]any{"rows": []any{}, "row_count": 0}, nil
}

type assertionFixture struct {
	client   *ent.Client
	runs     *services.RunService
	audit    *services.AuditService
	policies *services.PolicyService
	wsID     string
	csID     string
}

func setupAssertionFixture(t *testing.T) *assertionFixture {
	t.Helper()
	client, _ := testutil.SetupTestDatabase(t)
	ctx := context.Background()

	_, err := client.Tenant.Create().SetID("tenant-a").SetName("tenant-a").Save(ctx)
	require.NoError(t, err)
	wsID := uuid.New().String()
	_, err = client.Workspace.Create().SetID(wsID).SetTenantID("tenant-a").SetName("sdf-project").Save(ctx)
	require.NoError(t, err)

	content := "// hook"
	cs, err := services.NewChangesetService(client).ProposePatch(ctx, assertIdentity(), services.ProposePatchRequest{
		WorkspaceID: wsID,
		FilePath:    "src/hook.js",
		NewContent:  &content,
	})
	require.NoError(t, err)

	return &assertionFixture{
		client:   client,
		runs:     services.NewRunService(client),
		audit:    services.NewAuditService(client),
		policies: services.NewPolicyService(client),
		wsID:     wsID,
		csID:     cs.ID,
	}
}

func assertIdentity() models.Identity {
	return models.Identity{TenantID: "tenant-a", ActorID: "user-1", CorrelationID: uuid.New().String()}
}

func (fx *assertionFixture) executor(queries QueryRunner) *Executor {
	return NewExecutor(fx.client, fx.runs, fx.audit, fx.policies, queries)
}

func TestExecutor_BatchPasses(t *testing.T) {
	queries := &fakeQueries{results: map[string]map[string]any{
		"SELECT COUNT(*) FROM transaction":  {"row_count": 2},
		"SELECT SUM(amount) FROM transaction": {"rows": []any{[]any{150.0}}},
	}}
	fx := setupAssertionFixture(t)
	identity := assertIdentity()

	report, err := fx.executor(queries).RunAssertionBatch(context.Background(), identity, fx.csID, []any{
		rawAssertion("orders exist", "SELECT COUNT(*) FROM transaction", map[string]any{
			"type": "row_count", "operator": "eq", "value": 2,
		}),
		rawAssertion("total above floor", "SELECT SUM(amount) FROM transaction", map[string]any{
			"type": "scalar", "operator": "gte", "value": 100,
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "passed", report["overall_status"])
	summary := report["summary"].(map[string]any)
	assert.Equal(t, 2, summary["total"])
	assert.Equal(t, 2, summary["passed"])
	assert.Equal(t, 0, summary["failed"])

	// Every query runs under the hard row cap.
	assert.Equal(t, []int{RowCap, RowCap}, queries.limits)

	rec, err := fx.runs.Get(context.Background(), identity, report["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, run.RunTypeSuiteqlAssertions, rec.RunType)
	assert.Equal(t, run.StatusPassed, rec.Status)

	arts, err := fx.runs.ListArtifacts(context.Background(), identity, rec.ID)
	require.NoError(t, err)
	require.Len(t, arts, 1)
	assert.Equal(t, artifact.ArtifactTypeReportJSON, arts[0].ArtifactType)
	assert.Contains(t, string(arts[0].Content), `"overall_status":"passed"`)

	events, err := fx.audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, ev := range events {
		assert.Equal(t, "assertion.result", ev.Action)
		assert.Equal(t, auditevent.StatusSuccess, ev.Status)
		assert.Equal(t, fx.csID, ev.ResourceID)
	}
}

func TestExecutor_FailureAndErrorMarkRunFailed(t *testing.T) {
	queries := &fakeQueries{
		results: map[string]map[string]any{
			"SELECT COUNT(*) FROM transaction": {"row_count": 2},
		},
		errs: map[string]error{
			"SELECT SUM(amount) FROM transaction": errors.New("SuiteQL syntax error"),
		},
	}
	fx := setupAssertionFixture(t)
	identity := assertIdentity()

	report, err := fx.executor(queries).RunAssertionBatch(context.Background(), identity, fx.csID, []any{
		rawAssertion("count mismatch", "SELECT COUNT(*) FROM transaction", map[string]any{
			"type": "row_count", "operator": "eq", "value": 5,
		}),
		rawAssertion("query blows up", "SELECT SUM(amount) FROM transaction", map[string]any{
			"type": "scalar", "operator": "gte", "value": 100,
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "failed", report["overall_status"])
	summary := report["summary"].(map[string]any)
	assert.Equal(t, 1, summary["failed"])
	assert.Equal(t, 1, summary["errors"])

	results := report["assertions"].([]AssertionResult)
	require.Len(t, results, 2)
	assert.Equal(t, "failed", results[0].Status)
	assert.Equal(t, "expected eq 5, observed 2", results[0].Message)
	assert.Equal(t, "error", results[1].Status)
	assert.Equal(t, "SuiteQL syntax error", results[1].Message)

	rec, err := fx.runs.Get(context.Background(), identity, report["run_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, run.StatusFailed, rec.Status)

	// Non-passing assertions audit as errors.
	events, err := fx.audit.ListByCorrelation(context.Background(), identity, identity.CorrelationID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, auditevent.StatusError, events[0].Status)
	assert.Equal(t, auditevent.StatusError, events[1].Status)
}

func TestExecutor_InvalidBatchRecordsNoRun(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()

	_, err := fx.executor(&fakeQueries{}).RunAssertionBatch(context.Background(), identity, fx.csID, []any{
		rawAssertion("dml", "DELETE FROM transaction", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword DELETE is not allowed")

	runs, err := fx.runs.ListByChangeset(context.Background(), identity, fx.csID)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestExecutor_UnknownChangeset(t *testing.T) {
	fx := setupAssertionFixture(t)

	_, err := fx.executor(&fakeQueries{}).RunAssertionBatch(context.Background(), assertIdentity(), uuid.New().String(), []any{
		rawAssertion("a", "SELECT 1", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		}),
	})
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestExecutor_ActivePolicyRestrictsTables(t *testing.T) {
	fx := setupAssertionFixture(t)
	identity := assertIdentity()

	_, err := fx.policies.Create(context.Background(), identity, "strict", true, services.PolicyUpdate{
		AllowedRecordTypes: []string{"transaction"},
	})
	require.NoError(t, err)

	_, err = fx.executor(&fakeQueries{}).RunAssertionBatch(context.Background(), identity, fx.csID, []any{
		rawAssertion("off-limits", "SELECT id FROM employee", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		}),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table employee is not in the allowlist")
}
