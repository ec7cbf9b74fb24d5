package assertions

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawAssertion(name, query string, expected map[string]any) map[string]any {
	return map[string]any{"name": name, "query": query, "expected": expected}
}

func TestParseBatch_DecodesValidBatch(t *testing.T) {
	raw := []any{
		rawAssertion("open orders exist", "SELECT COUNT(*) FROM transaction", map[string]any{
			"type": "row_count", "operator": "gte", "value": 1,
		}),
		rawAssertion("rebate total in range", "SELECT SUM(amount) FROM transaction", map[string]any{
			"type": "scalar", "operator": "between", "value": 100, "value2": 500,
		}),
		rawAssertion("no orphan lines", "SELECT id FROM transactionline WHERE transaction IS NULL", map[string]any{
			"type": "no_rows",
		}),
	}

	batch, err := ParseBatch(raw, nil)
	require.NoError(t, err)
	require.Len(t, batch, 3)
	assert.Equal(t, "open orders exist", batch[0].Name)
	assert.Equal(t, ExpectRowCount, batch[0].Expected.Type)
	assert.Equal(t, "between", batch[1].Expected.Operator)
	assert.Equal(t, float64(500), batch[1].Expected.Value2)
	assert.Equal(t, ExpectNoRows, batch[2].Expected.Type)
}

func TestParseBatch_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name     string
		raw      []any
		fragment string
	}{
		{
			name:     "empty batch",
			raw:      nil,
			fragment: "batch is empty",
		},
		{
			name: "missing name",
			raw: []any{rawAssertion("", "SELECT 1", map[string]any{
				"type": "row_count", "operator": "eq", "value": 1,
			})},
			fragment: "name",
		},
		{
			name: "missing query",
			raw: []any{rawAssertion("a", "   ", map[string]any{
				"type": "row_count", "operator": "eq", "value": 1,
			})},
			fragment: "query",
		},
		{
			name: "unknown expectation type",
			raw: []any{rawAssertion("a", "SELECT 1", map[string]any{
				"type": "column_count", "operator": "eq", "value": 1,
			})},
			fragment: "must be row_count, scalar, or no_rows",
		},
		{
			name: "unknown operator",
			raw: []any{rawAssertion("a", "SELECT 1", map[string]any{
				"type": "scalar", "operator": "approx", "value": 1,
			})},
			fragment: "unknown operator",
		},
		{
			name: "between without upper bound",
			raw: []any{rawAssertion("a", "SELECT 1", map[string]any{
				"type": "scalar", "operator": "between", "value": 1,
			})},
			fragment: "required for between",
		},
		{
			name: "dml statement",
			raw: []any{rawAssertion("a", "UPDATE transaction SET amount = 0", map[string]any{
				"type": "row_count", "operator": "eq", "value": 1,
			})},
			fragment: "keyword UPDATE is not allowed",
		},
		{
			name: "dml smuggled after select",
			raw: []any{rawAssertion("a", "SELECT 1; DELETE FROM transaction", map[string]any{
				"type": "row_count", "operator": "eq", "value": 1,
			})},
			fragment: "keyword DELETE is not allowed",
		},
		{
			name: "non-select statement",
			raw: []any{rawAssertion("a", "EXPLAIN SELECT 1", map[string]any{
				"type": "row_count", "operator": "eq", "value": 1,
			})},
			fragment: "only SELECT statements are allowed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(tt.raw, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.fragment)
		})
	}
}

func TestParseBatch_NamesOffendingEntry(t *testing.T) {
	raw := []any{
		rawAssertion("fine", "SELECT 1", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		}),
		rawAssertion("broken", "DROP TABLE transaction", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		}),
	}
	_, err := ParseBatch(raw, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `assertion 2 ("broken")`)
}

func TestParseBatch_CapsBatchSize(t *testing.T) {
	raw := make([]any, MaxBatchSize+1)
	for i := range raw {
		raw[i] = rawAssertion(fmt.Sprintf("a%d", i), "SELECT 1", map[string]any{
			"type": "row_count", "operator": "eq", "value": 1,
		})
	}
	_, err := ParseBatch(raw, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("batch exceeds %d entries", MaxBatchSize))
}

func TestParseBatch_TableAllowlist(t *testing.T) {
	allowed := []string{"Transaction", "customer"}
	expected := map[string]any{"type": "row_count", "operator": "eq", "value": 1}

	// Case-insensitive matching across FROM and JOIN.
	_, err := ParseBatch([]any{rawAssertion("ok",
		"SELECT t.id FROM transaction t JOIN Customer c ON c.id = t.entity", expected)}, allowed)
	require.NoError(t, err)

	_, err = ParseBatch([]any{rawAssertion("bad",
		"SELECT id FROM employee", expected)}, allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table employee is not in the allowlist")

	// An empty allowlist places no restriction.
	_, err = ParseBatch([]any{rawAssertion("ok",
		"SELECT id FROM employee", expected)}, nil)
	require.NoError(t, err)
}

func TestObserve(t *testing.T) {
	t.Run("row count from payload", func(t *testing.T) {
		v, err := observe(ExpectRowCount, map[string]any{"row_count": 7})
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})
	t.Run("row count falls back to rows length", func(t *testing.T) {
		v, err := observe(ExpectNoRows, map[string]any{"rows": []any{[]any{"a"}, []any{"b"}}})
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	})
	t.Run("row count missing", func(t *testing.T) {
		_, err := observe(ExpectRowCount, map[string]any{"status": "ok"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no row count")
	})
	t.Run("scalar takes first cell of first row", func(t *testing.T) {
		v, err := observe(ExpectScalar, map[string]any{"rows": []any{[]any{42.5, "ignored"}}})
		require.NoError(t, err)
		assert.Equal(t, 42.5, v)
	})
	t.Run("scalar with no rows", func(t *testing.T) {
		_, err := observe(ExpectScalar, map[string]any{"rows": []any{}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no rows")
	})
	t.Run("scalar with empty row", func(t *testing.T) {
		_, err := observe(ExpectScalar, map[string]any{"rows": []any{[]any{}}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no columns")
	})
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		expected Expected
		observed any
		want     bool
	}{
		{"no_rows zero", Expected{Type: ExpectNoRows}, 0, true},
		{"no_rows nonzero", Expected{Type: ExpectNoRows}, 3, false},
		{"eq numeric across types", Expected{Type: ExpectScalar, Operator: "eq", Value: float64(5)}, 5, true},
		{"eq strings", Expected{Type: ExpectScalar, Operator: "eq", Value: "open"}, "open", true},
		{"ne", Expected{Type: ExpectScalar, Operator: "ne", Value: "open"}, "closed", true},
		{"gt", Expected{Type: ExpectRowCount, Operator: "gt", Value: float64(10)}, 11, true},
		{"gt boundary", Expected{Type: ExpectRowCount, Operator: "gt", Value: float64(10)}, 10, false},
		{"gte boundary", Expected{Type: ExpectRowCount, Operator: "gte", Value: float64(10)}, 10, true},
		{"lt", Expected{Type: ExpectRowCount, Operator: "lt", Value: float64(10)}, 9, true},
		{"lte boundary", Expected{Type: ExpectRowCount, Operator: "lte", Value: float64(10)}, 10, true},
		{"between inclusive", Expected{Type: ExpectScalar, Operator: "between", Value: float64(100), Value2: float64(500)}, 500, true},
		{"between below", Expected{Type: ExpectScalar, Operator: "between", Value: float64(100), Value2: float64(500)}, 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compare(tt.expected, tt.observed)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("non-numeric observed for ordered operator", func(t *testing.T) {
		_, err := compare(Expected{Type: ExpectScalar, Operator: "gt", Value: float64(1)}, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not numeric")
	})
}

func TestToFloat(t *testing.T) {
	v, err := toFloat(json.Number("12.5"))
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = toFloat("3")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	v, err = toFloat(int64(9))
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = toFloat(map[string]any{})
	require.Error(t, err)
}
