package netsuite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/models"
)

// fakeRunner answers queries by substring match against scripted results.
type fakeRunner struct {
	results map[string]map[string]any
	err     error
}

func (f *fakeRunner) ExecuteSuiteQL(_ context.Context, _ models.Identity, query string, _ int) (map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	for needle, result := range f.results {
		if strings.Contains(query, needle) {
			return result, nil
		}
	}
	return map[string]any{"rows": []any{}, "row_count": 0}, nil
}

func reconIdentity() models.Identity {
	return models.Identity{TenantID: "tenant-a", ActorID: "user-1", CorrelationID: "corr-1"}
}

func TestRecon_ClassifiesPayouts(t *testing.T) {
	runner := &fakeRunner{results: map[string]map[string]any{
		"CustDep": {"rows": []any{
			[]any{"PAY-1", 100.0},
			[]any{"PAY-2", 250.0},
			[]any{"PAY-3", 80.0},
		}},
		"Journal": {"rows": []any{
			[]any{"PAY-1", 100.0},
			[]any{"PAY-2", 200.0},
		}},
	}}

	report, err := NewRecon(runner).RunReconciliation(context.Background(), reconIdentity(), "2026-08-01", "2026-08-31", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report["matched"])
	assert.Equal(t, 1, report["mismatched"])
	assert.Equal(t, 1, report["unmatched"])

	issues := report["issues"].([]map[string]any)
	require.Len(t, issues, 2)
	byID := map[string]string{}
	for _, issue := range issues {
		byID[issue["payout_id"].(string)] = issue["issue"].(string)
	}
	assert.Equal(t, "total mismatch", byID["PAY-2"])
	assert.Equal(t, "no ledger entry", byID["PAY-3"])
}

func TestRecon_NarrowsToRequestedPayouts(t *testing.T) {
	runner := &fakeRunner{results: map[string]map[string]any{
		"CustDep": {"rows": []any{
			[]any{"PAY-1", 100.0},
			[]any{"PAY-2", 250.0},
		}},
		"Journal": {"rows": []any{
			[]any{"PAY-1", 100.0},
		}},
	}}

	report, err := NewRecon(runner).RunReconciliation(context.Background(), reconIdentity(), "2026-08-01", "2026-08-31", []string{"PAY-2"})
	require.NoError(t, err)

	assert.Equal(t, 0, report["matched"])
	assert.Equal(t, 1, report["unmatched"])
}

func TestRecon_PropagatesQueryFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("account unreachable")}

	_, err := NewRecon(runner).RunReconciliation(context.Background(), reconIdentity(), "2026-08-01", "2026-08-31", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payout query failed")
}

func TestRecon_SkipsMalformedRows(t *testing.T) {
	runner := &fakeRunner{results: map[string]map[string]any{
		"CustDep": {"rows": []any{
			[]any{"PAY-1", 100.0},
			[]any{"PAY-2"},          // missing total
			[]any{"PAY-3", "n/a"},   // non-numeric total
			"not even a row",
		}},
		"Journal": {"rows": []any{
			[]any{"PAY-1", 100.0},
		}},
	}}

	report, err := NewRecon(runner).RunReconciliation(context.Background(), reconIdentity(), "2026-08-01", "2026-08-31", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, report["matched"])
	assert.Equal(t, 0, report["unmatched"])
}
