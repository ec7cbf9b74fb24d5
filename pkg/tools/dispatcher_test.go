package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/models"
)

// passthroughGovernor records the call and runs the handler directly,
// standing in for the governance engine.
type passthroughGovernor struct {
	lastDesc   *Descriptor
	lastParams map[string]any
}

func (g *passthroughGovernor) Execute(ctx context.Context, identity models.Identity, desc *Descriptor, params map[string]any) map[string]any {
	g.lastDesc = desc
	g.lastParams = params
	out, err := desc.Handler(ctx, identity, params)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}

func testIdentity() models.Identity {
	return models.Identity{TenantID: "tenant-a", ActorID: "user-1", CorrelationID: "corr-1"}
}

func TestDispatcher_RoutesSanitizedNameToGovernor(t *testing.T) {
	reg, err := NewRegistry([]*Descriptor{{
		Name:   "netsuite.suiteql",
		Params: []string{"query", "limit"},
		Handler: func(_ context.Context, _ models.Identity, params map[string]any) (map[string]any, error) {
			return map[string]any{"rows": []any{}, "echo": params["query"]}, nil
		},
	}})
	require.NoError(t, err)

	gov := &passthroughGovernor{}
	d := NewDispatcher(reg, gov, NewRemoteClient(nil, "test", "0.0.0"))

	out := d.Execute(context.Background(), testIdentity(), "netsuite_suiteql", map[string]any{"query": "SELECT 1"})

	require.NotNil(t, gov.lastDesc)
	assert.Equal(t, "netsuite.suiteql", gov.lastDesc.Name)
	assert.Equal(t, "SELECT 1", out["echo"])
	assert.NotContains(t, out, "error")
}

func TestDispatcher_UnknownToolPayload(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	d := NewDispatcher(reg, &passthroughGovernor{}, NewRemoteClient(nil, "test", "0.0.0"))

	out := d.Execute(context.Background(), testIdentity(), "made_up_tool", nil)
	assert.Equal(t, "Tool 'made_up_tool' is not allowed in chat.", out["error"])
}

func TestDispatcher_UnknownConnectorPayload(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	d := NewDispatcher(reg, &passthroughGovernor{}, NewRemoteClient(nil, "test", "0.0.0"))

	name, err := ExternalName("ghost", "tool")
	require.NoError(t, err)
	out := d.Execute(context.Background(), testIdentity(), name, nil)
	assert.Equal(t, "Unknown connector 'ghost'.", out["error"])
}

func TestDispatcher_DisabledConnectorPayload(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)
	remotes := NewRemoteClient([]*ConnectorConfig{
		{ID: "docs", Name: "Docs", Enabled: false},
	}, "test", "0.0.0")
	d := NewDispatcher(reg, &passthroughGovernor{}, remotes)

	name, err := ExternalName("docs", "search")
	require.NoError(t, err)
	out := d.Execute(context.Background(), testIdentity(), name, nil)
	assert.Equal(t, "Connector 'Docs' is disabled.", out["error"])
}

func TestDispatcher_HandlerErrorBecomesPayload(t *testing.T) {
	reg, err := NewRegistry([]*Descriptor{{
		Name: "workspace.read_file",
		Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
			return nil, assert.AnError
		},
	}})
	require.NoError(t, err)
	d := NewDispatcher(reg, &passthroughGovernor{}, NewRemoteClient(nil, "test", "0.0.0"))

	out := d.Execute(context.Background(), testIdentity(), "workspace_read_file", nil)
	assert.Contains(t, out, "error")
}
