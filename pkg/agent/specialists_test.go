package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/tools"
)

func TestBuiltinConfigs_AdvertisedToolSets(t *testing.T) {
	reg, err := tools.NewRegistry((&tools.Catalog{}).Descriptors())
	require.NoError(t, err)

	// The documentation and analysis specialists carry no local tools: the
	// first works through external search connectors, the second only from
	// data already in its context.
	expected := map[string][]string{
		AgentSuiteQL: {
			"netsuite_suiteql",
			"netsuite_suiteql_stub",
			"netsuite_connectivity",
			"data_sample_table_read",
		},
		AgentRAG: {},
		AgentWorkspaceDev: {
			"workspace_list_files",
			"workspace_read_file",
			"workspace_search",
			"workspace_propose_patch",
			"workspace_apply_patch",
			"workspace_run_validate",
			"workspace_run_unit_tests",
			"workspace_run_suiteql_assertions",
			"workspace_deploy_sandbox",
		},
		AgentAnalysis: {},
	}

	configs := BuiltinConfigs()
	require.Len(t, configs, len(expected))
	for _, cfg := range configs {
		defs := reg.Definitions(cfg.Tools)
		names := make([]string, 0, len(defs))
		for _, d := range defs {
			names = append(names, d.Name)
		}
		assert.ElementsMatch(t, expected[cfg.Name], names, cfg.Name)
	}
}

func TestBuiltinConfigs_RAGUsesConnectorsOnly(t *testing.T) {
	for _, cfg := range BuiltinConfigs() {
		if cfg.Name != AgentRAG {
			continue
		}
		assert.Empty(t, cfg.Tools)
		assert.ElementsMatch(t, []string{"kb", "websearch"}, cfg.Connectors)
		return
	}
	t.Fatal("rag specialist missing from builtin set")
}
