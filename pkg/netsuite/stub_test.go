package netsuite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubExecutor_ServesKnownTables(t *testing.T) {
	stub := NewStubExecutor()

	out, err := stub.ExecuteSuiteQL(context.Background(), reconIdentity(), "SELECT * FROM customer", 100)
	require.NoError(t, err)
	assert.Equal(t, 3, out["row_count"])
	assert.Equal(t, []string{"id", "entityid", "companyname", "balance"}, out["columns"])

	// Results are stable across calls.
	again, err := stub.ExecuteSuiteQL(context.Background(), reconIdentity(), "SELECT * FROM customer", 100)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestStubExecutor_HonorsRowLimit(t *testing.T) {
	stub := NewStubExecutor()

	out, err := stub.ExecuteSuiteQL(context.Background(), reconIdentity(), "SELECT * FROM transaction", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, out["row_count"])
	assert.Len(t, out["rows"], 2)
}

func TestStubExecutor_AggregatesReturnCountRow(t *testing.T) {
	stub := NewStubExecutor()

	out, err := stub.ExecuteSuiteQL(context.Background(), reconIdentity(), "SELECT COUNT(*) FROM transaction", 100)
	require.NoError(t, err)
	assert.Equal(t, 1, out["row_count"])
	rows := out["rows"].([]any)
	assert.Equal(t, 5, rows[0].([]any)[0])
}

func TestStubExecutor_UnknownTableIsEmpty(t *testing.T) {
	stub := NewStubExecutor()

	out, err := stub.ExecuteSuiteQL(context.Background(), reconIdentity(), "SELECT * FROM employee", 100)
	require.NoError(t, err)
	assert.Equal(t, 0, out["row_count"])
}

func TestStubExecutor_SampleTable(t *testing.T) {
	stub := NewStubExecutor()

	out, err := stub.SampleTable(context.Background(), reconIdentity(), "Item", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, out["row_count"])

	_, err = stub.SampleTable(context.Background(), reconIdentity(), "employee", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown table "employee"`)
}

func TestStubExecutor_Connectivity(t *testing.T) {
	out, err := NewStubExecutor().CheckConnectivity(context.Background(), reconIdentity())
	require.NoError(t, err)
	assert.Equal(t, "connected", out["status"])
}
