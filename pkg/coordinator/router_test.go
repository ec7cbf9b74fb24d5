package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/agent"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		message string
		want    Intent
	}{
		// workspace_dev takes precedence over documentation phrasing
		{"write a user event script that validates invoice totals", IntentWorkspaceDev},
		{"fix the rounding bug in the payout module", IntentWorkspaceDev},
		{"propose a patch for the commission script", IntentWorkspaceDev},
		{"deploy the project to the sandbox", IntentWorkspaceDev},

		// analysis beats data_query when both could match
		{"compare revenue this quarter versus last quarter", IntentAnalysis},
		{"analyze the trend in open sales orders", IntentAnalysis},
		{"what is the average invoice amount by month", IntentAnalysis},
		{"top 10 customers by revenue", IntentAnalysis},

		{"how many open sales orders do we have?", IntentDataQuery},
		{"list unpaid invoices for Acme", IntentDataQuery},
		{"show me vendor payments from July", IntentDataQuery},

		// bare record references go straight to data query
		{"#12345", IntentDataQuery},
		{"12345", IntentDataQuery},
		{"  #987  ", IntentDataQuery},

		{"how do I set up a saved search?", IntentDocumentation},
		{"what does the accounting period lock do?", IntentDocumentation},
		{"explain landed cost allocation", IntentDocumentation},

		{"banana", IntentAmbiguous},
		{"", IntentAmbiguous},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestRoutes_AnalysisRunsSuiteQLFirst(t *testing.T) {
	route, ok := routes[IntentAnalysis]
	require.True(t, ok)
	require.Equal(t, []string{agent.AgentSuiteQL, agent.AgentAnalysis}, route.Agents)
	assert.False(t, route.Parallel, "analysis depends on the query result")
}

func TestPlanFromRoute(t *testing.T) {
	plan := planFromRoute(routes[IntentAnalysis], "compare revenue by quarter")
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, agent.AgentSuiteQL, plan.Steps[0].Agent)
	assert.Equal(t, "compare revenue by quarter", plan.Steps[0].Task)
	assert.Equal(t, agent.AgentAnalysis, plan.Steps[1].Agent)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"steps":[]}`, `{"steps":[]}`},
		{"fenced", "```json\n{\"steps\":[]}\n```", `{"steps":[]}`},
		{"prose around", `Here is the plan: {"steps":[]} Done.`, `{"steps":[]}`},
		{"no json", "no plan here", "no plan here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
