package netsuite

import (
	"context"
	"fmt"

	"github.com/suiteops/suitepilot/pkg/models"
)

// queryRunner is the read capability recon and reports build on. Both the
// REST client and the stub satisfy it.
type queryRunner interface {
	ExecuteSuiteQL(ctx context.Context, identity models.Identity, query string, limit int) (map[string]any, error)
}

// Recon matches payout records against their ledger entries over a date
// range and reports mismatches.
type Recon struct {
	queries queryRunner
}

// NewRecon creates a reconciliation runner over a query capability.
func NewRecon(queries queryRunner) *Recon {
	return &Recon{queries: queries}
}

const reconRowCap = 1000

// RunReconciliation compares payout totals to matched ledger totals keyed
// by payout reference. An optional payout ID list narrows the run.
func (r *Recon) RunReconciliation(ctx context.Context, identity models.Identity, dateFrom, dateTo string, payoutIDs []string) (map[string]any, error) {
	payouts, err := r.fetchTotals(ctx, identity, fmt.Sprintf(
		"SELECT tranid, foreigntotal FROM transaction WHERE type = 'CustDep' AND trandate BETWEEN TO_DATE('%s', 'YYYY-MM-DD') AND TO_DATE('%s', 'YYYY-MM-DD') AND ROWNUM <= %d",
		dateFrom, dateTo, reconRowCap))
	if err != nil {
		return nil, fmt.Errorf("payout query failed: %w", err)
	}
	ledger, err := r.fetchTotals(ctx, identity, fmt.Sprintf(
		"SELECT tranid, foreigntotal FROM transaction WHERE type = 'Journal' AND trandate BETWEEN TO_DATE('%s', 'YYYY-MM-DD') AND TO_DATE('%s', 'YYYY-MM-DD') AND ROWNUM <= %d",
		dateFrom, dateTo, reconRowCap))
	if err != nil {
		return nil, fmt.Errorf("ledger query failed: %w", err)
	}

	include := func(id string) bool { return true }
	if len(payoutIDs) > 0 {
		wanted := make(map[string]bool, len(payoutIDs))
		for _, id := range payoutIDs {
			wanted[id] = true
		}
		include = func(id string) bool { return wanted[id] }
	}

	matched, mismatched, unmatched := 0, 0, 0
	var issues []map[string]any
	for id, payoutTotal := range payouts {
		if !include(id) {
			continue
		}
		ledgerTotal, ok := ledger[id]
		switch {
		case !ok:
			unmatched++
			issues = append(issues, map[string]any{"payout_id": id, "issue": "no ledger entry", "payout_total": payoutTotal})
		case payoutTotal != ledgerTotal:
			mismatched++
			issues = append(issues, map[string]any{
				"payout_id":    id,
				"issue":        "total mismatch",
				"payout_total": payoutTotal,
				"ledger_total": ledgerTotal,
			})
		default:
			matched++
		}
	}

	return map[string]any{
		"date_from":  dateFrom,
		"date_to":    dateTo,
		"matched":    matched,
		"mismatched": mismatched,
		"unmatched":  unmatched,
		"issues":     issues,
	}, nil
}

// fetchTotals runs a two-column (id, total) query into a map.
func (r *Recon) fetchTotals(ctx context.Context, identity models.Identity, query string) (map[string]float64, error) {
	result, err := r.queries.ExecuteSuiteQL(ctx, identity, query, reconRowCap)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64)
	rows, _ := result["rows"].([]any)
	for _, raw := range rows {
		row, ok := raw.([]any)
		if !ok || len(row) < 2 {
			continue
		}
		id := fmt.Sprintf("%v", row[0])
		total, ok := toNumber(row[1])
		if !ok {
			continue
		}
		totals[id] = total
	}
	return totals, nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
