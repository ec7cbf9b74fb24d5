package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "netsuite_suiteql", Sanitize("netsuite.suiteql"))
	assert.Equal(t, "workspace_propose_patch", Sanitize("workspace.propose_patch"))
	assert.Equal(t, "health", Sanitize("health"))
}

func TestExternalName_RoundTrip(t *testing.T) {
	name, err := ExternalName("conn-1", "search.docs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "ext__"))
	assert.LessOrEqual(t, len(name), MaxSanitizedNameLen)

	connectorID, toolName, ok := ParseExternalName(name)
	require.True(t, ok)
	assert.Equal(t, "conn-1", connectorID)
	assert.Equal(t, "search_docs", toolName)
}

func TestExternalName_TruncatesToCap(t *testing.T) {
	name, err := ExternalName("c1", strings.Repeat("averylongtoolname", 10))
	require.NoError(t, err)
	assert.Len(t, name, MaxSanitizedNameLen)

	connectorID, _, ok := ParseExternalName(name)
	require.True(t, ok)
	assert.Equal(t, "c1", connectorID)
}

func TestExternalName_RejectsOversizedConnectorID(t *testing.T) {
	// Hex-encoding doubles the ID length; 30 bytes leaves no room for a tool.
	_, err := ExternalName(strings.Repeat("x", 30), "tool")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no room for a tool name")
}

func TestParseExternalName_RejectsMalformed(t *testing.T) {
	tests := []string{
		"netsuite_suiteql",       // local name
		"ext__",                  // no connector segment
		"ext____tool",            // empty connector segment
		"ext__zz__tool",          // invalid hex
		"ext__636f6e6e2d31tool",  // missing separator
	}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, ok := ParseExternalName(name)
			assert.False(t, ok)
		})
	}
}

func TestRegistry_RejectsSanitizedCollision(t *testing.T) {
	_, err := NewRegistry([]*Descriptor{
		{Name: "workspace.read_file"},
		{Name: "workspace_read.file"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collides")
}

func TestRegistry_RejectsOversizedName(t *testing.T) {
	_, err := NewRegistry([]*Descriptor{{Name: strings.Repeat("a", 65)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestRegistry_LookupBothNames(t *testing.T) {
	reg, err := NewRegistry([]*Descriptor{
		{Name: "netsuite.suiteql"},
		{Name: "rag.search"},
	})
	require.NoError(t, err)

	d, ok := reg.LookupSanitized("netsuite_suiteql")
	require.True(t, ok)
	assert.Equal(t, "netsuite.suiteql", d.Name)

	d, ok = reg.Lookup("rag.search")
	require.True(t, ok)
	assert.Equal(t, "rag.search", d.Name)

	_, ok = reg.LookupSanitized("netsuite.suiteql")
	assert.False(t, ok, "canonical names are not advertised")

	assert.Equal(t, []string{"netsuite.suiteql", "rag.search"}, reg.Names())
}

func TestRegistry_DefinitionsSubset(t *testing.T) {
	reg, err := NewRegistry([]*Descriptor{
		{Name: "netsuite.suiteql"},
		{Name: "rag.search"},
		{Name: "workspace.read_file"},
	})
	require.NoError(t, err)

	defs := reg.Definitions([]string{"rag.search", "no.such_tool"})
	require.Len(t, defs, 1, "unknown names are skipped")
	assert.Equal(t, "rag_search", defs[0].Name)

	all := reg.Definitions(reg.Names())
	assert.Len(t, all, 3)
	for _, def := range all {
		assert.NotContains(t, def.Name, ".")
		assert.Equal(t, "object", def.InputSchema["type"])
	}

	assert.Empty(t, reg.Definitions(nil), "no configured subset advertises nothing")
}
