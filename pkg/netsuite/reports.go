package netsuite

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/suiteops/suitepilot/pkg/models"
)

// reportQueries maps report types to their backing queries. Filters are
// applied client-side over the result, never spliced into the SQL.
var reportQueries = map[string]string{
	"open_sales_orders": "SELECT tranid, trandate, foreigntotal FROM transaction WHERE type = 'SalesOrd' AND status = 'Open' AND ROWNUM <= 1000",
	"customer_balances": "SELECT entityid, companyname, balance FROM customer WHERE ROWNUM <= 1000",
	"invoice_aging":     "SELECT tranid, trandate, foreigntotal FROM transaction WHERE type = 'CustInvc' AND ROWNUM <= 1000",
}

// Exporter renders standard reports as JSON or CSV.
type Exporter struct {
	queries queryRunner
}

// NewExporter creates a report exporter over a query capability.
func NewExporter(queries queryRunner) *Exporter {
	return &Exporter{queries: queries}
}

// Export runs the named report and renders it in the requested format.
// Unknown formats default to json.
func (e *Exporter) Export(ctx context.Context, identity models.Identity, reportType, format string, filters map[string]any) (map[string]any, error) {
	query, ok := reportQueries[reportType]
	if !ok {
		return nil, fmt.Errorf("unknown report type %q", reportType)
	}

	result, err := e.queries.ExecuteSuiteQL(ctx, identity, query, 1000)
	if err != nil {
		return nil, fmt.Errorf("report query failed: %w", err)
	}
	result = applyFilters(result, filters)

	if format == "csv" {
		rendered, err := renderCSV(result)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"report_type": reportType,
			"format":      "csv",
			"content":     rendered,
			"row_count":   result["row_count"],
		}, nil
	}

	return map[string]any{
		"report_type": reportType,
		"format":      "json",
		"columns":     result["columns"],
		"rows":        result["rows"],
		"row_count":   result["row_count"],
	}, nil
}

// applyFilters keeps rows whose filtered column equals the filter value.
func applyFilters(result map[string]any, filters map[string]any) map[string]any {
	if len(filters) == 0 {
		return result
	}
	columns, _ := result["columns"].([]string)
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[col] = i
	}

	rows, _ := result["rows"].([]any)
	kept := make([]any, 0, len(rows))
	for _, raw := range rows {
		row, ok := raw.([]any)
		if !ok {
			continue
		}
		match := true
		for col, want := range filters {
			i, ok := index[col]
			if !ok || i >= len(row) || fmt.Sprintf("%v", row[i]) != fmt.Sprintf("%v", want) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, row)
		}
	}
	return map[string]any{
		"columns":   columns,
		"rows":      kept,
		"row_count": len(kept),
	}
}

func renderCSV(result map[string]any) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	columns, _ := result["columns"].([]string)
	if err := w.Write(columns); err != nil {
		return "", err
	}
	rows, _ := result["rows"].([]any)
	for _, raw := range rows {
		row, ok := raw.([]any)
		if !ok {
			continue
		}
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = fmt.Sprintf("%v", cell)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	return buf.String(), w.Error()
}
