package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_NilSnapshotAllowsEverything(t *testing.T) {
	d := Evaluate(nil, "workspace.apply_patch", map[string]any{"query": "SELECT salary FROM employee"})
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestEvaluate_ToolAllowlist(t *testing.T) {
	s := &Snapshot{ToolAllowlist: []string{"netsuite.suiteql", "rag.search"}}

	assert.True(t, Evaluate(s, "netsuite.suiteql", nil).Allowed)

	d := Evaluate(s, "workspace.propose_patch", nil)
	require.False(t, d.Allowed)
	assert.Equal(t, "Tool 'workspace.propose_patch' not allowed by policy", d.Reason)
}

func TestEvaluate_EmptyAllowlistAllowsAll(t *testing.T) {
	s := &Snapshot{}
	assert.True(t, Evaluate(s, "workspace.propose_patch", nil).Allowed)
}

func TestEvaluate_ReadOnlyModeBlocksMutatingTools(t *testing.T) {
	s := &Snapshot{ReadOnlyMode: true}

	tests := []struct {
		tool    string
		allowed bool
	}{
		{"workspace.propose_patch", false},
		{"workspace.apply_patch", false},
		{"workspace.deploy_sandbox", false},
		{"schedule.create", false},
		{"schedule.run", false},
		{"netsuite.suiteql", true},
		{"workspace.read_file", true},
	}
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			d := Evaluate(s, tt.tool, nil)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, "Tool '"+tt.tool+"' not allowed in read-only mode", d.Reason)
			}
		})
	}
}

func TestEvaluate_BlockedFieldInQuery(t *testing.T) {
	s := &Snapshot{BlockedFields: []string{"salary", "ssn"}}

	d := Evaluate(s, "netsuite.suiteql", map[string]any{
		"query": "SELECT id, SALARY FROM employee FETCH FIRST 10 ROWS ONLY",
	})
	require.False(t, d.Allowed)
	assert.Equal(t, "Policy blocked: field 'salary' is restricted", d.Reason)

	// Match is case-insensitive substring over the whole query text.
	d = Evaluate(s, "netsuite.suiteql", map[string]any{
		"query": "SELECT id FROM employee WHERE Ssn IS NOT NULL",
	})
	assert.False(t, d.Allowed)

	d = Evaluate(s, "netsuite.suiteql", map[string]any{
		"query": "SELECT id, email FROM employee",
	})
	assert.True(t, d.Allowed)
}

func TestEvaluate_RequireRowLimit(t *testing.T) {
	s := &Snapshot{RequireRowLimit: true}

	denied := Evaluate(s, "netsuite.suiteql", map[string]any{
		"query": "SELECT id FROM transaction",
	})
	require.False(t, denied.Allowed)
	assert.Equal(t, "Policy requires row limit", denied.Reason)

	// Keywords count as whole words only: a column or literal merely
	// containing one does not satisfy the requirement.
	for _, q := range []string{
		"SELECT stops FROM route",
		"SELECT unlimited_plan FROM subscription",
		"SELECT grownumber FROM metrics",
	} {
		assert.False(t, Evaluate(s, "netsuite.suiteql", map[string]any{"query": q}).Allowed, q)
	}

	for _, q := range []string{
		"SELECT id FROM transaction WHERE ROWNUM <= 10",
		"SELECT id FROM transaction FETCH FIRST 10 ROWS ONLY",
		"SELECT id FROM transaction LIMIT 10",
		"SELECT TOP 10 id FROM transaction",
		"select id from transaction fetch first 5 rows only",
	} {
		assert.True(t, Evaluate(s, "netsuite.suiteql", map[string]any{"query": q}).Allowed, q)
	}

	// Tools without a query parameter are unaffected.
	assert.True(t, Evaluate(s, "workspace.read_file", map[string]any{"path": "src/a.js"}).Allowed)
}

func TestRedactOutput_StripsBlockedKeysRecursively(t *testing.T) {
	s := &Snapshot{BlockedFields: []string{"salary"}}

	result := map[string]any{
		"rows": []any{
			map[string]any{"id": "1", "salary": 90000, "name": "A"},
			map[string]any{"id": "2", "Salary": 80000},
		},
		"summary": map[string]any{"total_salary": 170000, "count": 2},
	}
	out := RedactOutput(s, result)

	rows := out["rows"].([]any)
	first := rows[0].(map[string]any)
	assert.NotContains(t, first, "salary")
	assert.Equal(t, "A", first["name"])
	second := rows[1].(map[string]any)
	assert.NotContains(t, second, "Salary", "key match is case-insensitive")

	// Only exact key matches are stripped; "total_salary" is a different key.
	summary := out["summary"].(map[string]any)
	assert.Equal(t, 170000, summary["total_salary"])
	assert.Equal(t, 2, summary["count"])
}

func TestRedactOutput_PassThrough(t *testing.T) {
	result := map[string]any{"rows": []any{}}

	out := RedactOutput(nil, result)
	assert.Equal(t, result, out)

	out = RedactOutput(&Snapshot{}, result)
	assert.Equal(t, result, out)

	assert.Nil(t, RedactOutput(&Snapshot{BlockedFields: []string{"x"}}, nil))
}

func TestFromProfile_Nil(t *testing.T) {
	assert.Nil(t, FromProfile(nil))
}
