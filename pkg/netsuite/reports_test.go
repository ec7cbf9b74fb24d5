package netsuite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesOrderRunner() *fakeRunner {
	return &fakeRunner{results: map[string]map[string]any{
		"SalesOrd": {
			"columns": []string{"tranid", "trandate", "foreigntotal"},
			"rows": []any{
				[]any{"SO-1001", "2026-08-20", 1250.00},
				[]any{"SO-1002", "2026-08-21", 340.50},
				[]any{"SO-1003", "2026-08-21", 75.25},
			},
			"row_count": 3,
		},
	}}
}

func TestExporter_JSONWithFilter(t *testing.T) {
	exporter := NewExporter(salesOrderRunner())

	out, err := exporter.Export(context.Background(), reconIdentity(), "open_sales_orders", "json",
		map[string]any{"trandate": "2026-08-21"})
	require.NoError(t, err)

	assert.Equal(t, "json", out["format"])
	assert.Equal(t, 2, out["row_count"])
	rows := out["rows"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "SO-1002", rows[0].([]any)[0])
}

func TestExporter_CSVCarriesHeader(t *testing.T) {
	exporter := NewExporter(salesOrderRunner())

	out, err := exporter.Export(context.Background(), reconIdentity(), "open_sales_orders", "csv", nil)
	require.NoError(t, err)

	assert.Equal(t, "csv", out["format"])
	content := out["content"].(string)
	assert.Contains(t, content, "tranid,trandate,foreigntotal\n")
	assert.Contains(t, content, "SO-1001,2026-08-20,1250\n")
}

func TestExporter_UnknownReportType(t *testing.T) {
	exporter := NewExporter(salesOrderRunner())

	_, err := exporter.Export(context.Background(), reconIdentity(), "profit_forecast", "json", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown report type "profit_forecast"`)
}

func TestExporter_FilterOnUnknownColumnDropsAllRows(t *testing.T) {
	exporter := NewExporter(salesOrderRunner())

	out, err := exporter.Export(context.Background(), reconIdentity(), "open_sales_orders", "json",
		map[string]any{"no_such_column": "x"})
	require.NoError(t, err)
	assert.Equal(t, 0, out["row_count"])
}
