package netsuite

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/suiteops/suitepilot/pkg/models"
)

// StubExecutor serves deterministic sample data for demos and tests. It
// honors row limits and recognizes a handful of query shapes; everything
// else returns an empty result set.
type StubExecutor struct{}

// NewStubExecutor creates the stub.
func NewStubExecutor() *StubExecutor {
	return &StubExecutor{}
}

var countPattern = regexp.MustCompile(`(?i)\bCOUNT\s*\(`)

// sampleTables is the fixed dataset. Row values are stable across calls so
// re-running a query yields an identical result.
var sampleTables = map[string]struct {
	columns []string
	rows    [][]any
}{
	"transaction": {
		columns: []string{"id", "tranid", "type", "trandate", "foreigntotal"},
		rows: [][]any{
			{101, "SO-1001", "SalesOrd", "2026-08-20", 1250.00},
			{102, "SO-1002", "SalesOrd", "2026-08-21", 340.50},
			{103, "INV-2001", "CustInvc", "2026-08-21", 980.00},
			{104, "SO-1003", "SalesOrd", "2026-08-22", 75.25},
			{105, "INV-2002", "CustInvc", "2026-08-23", 1600.00},
		},
	},
	"customer": {
		columns: []string{"id", "entityid", "companyname", "balance"},
		rows: [][]any{
			{201, "CUST-1", "Northwind Traders", 4200.00},
			{202, "CUST-2", "Contoso Ltd", 0.00},
			{203, "CUST-3", "Fabrikam Inc", 1150.75},
		},
	},
	"item": {
		columns: []string{"id", "itemid", "displayname", "baseprice"},
		rows: [][]any{
			{301, "WIDGET-A", "Widget, size A", 19.99},
			{302, "WIDGET-B", "Widget, size B", 29.99},
		},
	},
}

// ExecuteSuiteQL returns canned rows for the referenced table, or a count
// row for aggregate queries.
func (s *StubExecutor) ExecuteSuiteQL(_ context.Context, _ models.Identity, query string, limit int) (map[string]any, error) {
	if limit <= 0 {
		limit = 100
	}

	table := referencedTable(query)
	data, ok := sampleTables[table]
	if !ok {
		return map[string]any{"columns": []string{}, "rows": []any{}, "row_count": 0}, nil
	}

	if countPattern.MatchString(query) {
		return map[string]any{
			"columns":   []string{"cnt"},
			"rows":      []any{[]any{len(data.rows)}},
			"row_count": 1,
		}, nil
	}

	rows := make([]any, 0, len(data.rows))
	for i, row := range data.rows {
		if i >= limit {
			break
		}
		rows = append(rows, append([]any(nil), row...))
	}
	return map[string]any{
		"columns":   append([]string(nil), data.columns...),
		"rows":      rows,
		"row_count": len(rows),
	}, nil
}

// CheckConnectivity always reports the stub as connected.
func (s *StubExecutor) CheckConnectivity(context.Context, models.Identity) (map[string]any, error) {
	return map[string]any{"status": "connected", "mode": "stub"}, nil
}

// SampleTable returns the first rows of a known table.
func (s *StubExecutor) SampleTable(ctx context.Context, identity models.Identity, tableName string, limit int) (map[string]any, error) {
	if limit <= 0 || limit > 10 {
		limit = 5
	}
	if _, ok := sampleTables[strings.ToLower(tableName)]; !ok {
		return nil, fmt.Errorf("unknown table %q", tableName)
	}
	return s.ExecuteSuiteQL(ctx, identity, fmt.Sprintf("SELECT * FROM %s", tableName), limit)
}

var fromPattern = regexp.MustCompile(`(?i)\bFROM\s+([A-Za-z_][A-Za-z0-9_]*)`)

func referencedTable(query string) string {
	m := fromPattern.FindStringSubmatch(query)
	if len(m) < 2 {
		return ""
	}
	return strings.ToLower(m[1])
}
