package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/policy"
	"github.com/suiteops/suitepilot/pkg/tools"
)

// scriptedAdapter replays canned responses (or errors) in order.
type scriptedAdapter struct {
	steps []func(llm.Request) (*llm.Response, error)
	calls []llm.Request
}

func (a *scriptedAdapter) CreateMessage(_ context.Context, req llm.Request) (*llm.Response, error) {
	a.calls = append(a.calls, req)
	i := len(a.calls) - 1
	if i >= len(a.steps) {
		return &llm.Response{TextBlocks: []string{"unexpected extra call"}}, nil
	}
	return a.steps[i](req)
}

func (a *scriptedAdapter) StreamMessage(_ context.Context, _ llm.Request) (<-chan llm.StreamEvent, error) {
	panic("not used by the loop")
}

func text(s string) func(llm.Request) (*llm.Response, error) {
	return func(llm.Request) (*llm.Response, error) {
		return &llm.Response{TextBlocks: []string{s}, Usage: llm.TokenUsage{InputTokens: 10, OutputTokens: 5}}, nil
	}
}

func toolUse(id, name string, input map[string]any) func(llm.Request) (*llm.Response, error) {
	return func(llm.Request) (*llm.Response, error) {
		return &llm.Response{
			ToolUseBlocks: []llm.ToolUseBlock{{ID: id, Name: name, Input: input}},
			Usage:         llm.TokenUsage{InputTokens: 10, OutputTokens: 5},
		}, nil
	}
}

func fail(err error) func(llm.Request) (*llm.Response, error) {
	return func(llm.Request) (*llm.Response, error) { return nil, err }
}

// echoGovernor runs handlers directly, standing in for governance.
type echoGovernor struct{}

func (echoGovernor) Execute(ctx context.Context, identity models.Identity, desc *tools.Descriptor, params map[string]any) map[string]any {
	out, err := desc.Handler(ctx, identity, params)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}

func newTestSpecialist(t *testing.T, adapter llm.Adapter, maxSteps int) *Specialist {
	t.Helper()
	registry, err := tools.NewRegistry([]*tools.Descriptor{
		{
			Name:   "netsuite.suiteql",
			Params: []string{"query", "limit"},
			Handler: func(_ context.Context, _ models.Identity, params map[string]any) (map[string]any, error) {
				return map[string]any{"rows": []any{}, "row_count": 0}, nil
			},
		},
		{
			Name:   "workspace.propose_patch",
			Params: []string{"changeset_id", "path", "diff"},
			Handler: func(_ context.Context, _ models.Identity, _ map[string]any) (map[string]any, error) {
				return map[string]any{"patch_id": "p-1"}, nil
			},
		},
	})
	require.NoError(t, err)

	dispatcher := tools.NewDispatcher(registry, echoGovernor{}, tools.NewRemoteClient(nil, "test", "0.0.0"))
	return New(Config{
		Name:         "suiteql",
		SystemPrompt: "You answer questions with SuiteQL.",
		Tools:        []string{"netsuite.suiteql", "workspace.propose_patch"},
		MaxSteps:     maxSteps,
	}, Deps{
		Client:     &llm.Client{Adapter: adapter, DefaultModel: "default", MaxTokens: 1024},
		Registry:   registry,
		Dispatcher: dispatcher,
	})
}

func TestRun_ToolLoopCompletes(t *testing.T) {
	adapter := &scriptedAdapter{steps: []func(llm.Request) (*llm.Response, error){
		toolUse("tu-1", "netsuite_suiteql", map[string]any{"query": "SELECT COUNT(*) FROM transaction FETCH FIRST 1 ROWS ONLY"}),
		text("There are no matching transactions."),
	}}
	spec := newTestSpecialist(t, adapter, 6)

	var observed []models.ToolCallRecord
	result := spec.Run(context.Background(), models.Identity{TenantID: "t1", ActorID: "u1"}, Input{
		Task:     "how many transactions?",
		Observer: func(r models.ToolCallRecord) { observed = append(observed, r) },
	})

	require.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "There are no matching transactions.", result.Text)
	require.Len(t, result.CallLog, 1)
	assert.Equal(t, "netsuite_suiteql", result.CallLog[0].Tool)
	assert.Equal(t, "success", result.CallLog[0].Outcome)
	assert.Equal(t, "0 rows", result.CallLog[0].Summary)
	assert.Len(t, observed, 1)
	assert.Equal(t, llm.TokenUsage{InputTokens: 20, OutputTokens: 10}, result.Usage)

	// The tool result went back to the model on the second call.
	require.Len(t, adapter.calls, 2)
	second := adapter.calls[1]
	require.Len(t, second.Messages, 3)
	require.Len(t, second.Messages[2].ToolResults, 1)
	assert.Equal(t, "tu-1", second.Messages[2].ToolResults[0].ToolUseID)
	assert.False(t, second.Messages[2].ToolResults[0].IsError)
}

func TestRun_PolicyDenialFlowsBackAsError(t *testing.T) {
	adapter := &scriptedAdapter{steps: []func(llm.Request) (*llm.Response, error){
		toolUse("tu-1", "workspace_propose_patch", map[string]any{"path": "src/a.js"}),
		text("I cannot modify files under the current policy."),
	}}
	spec := newTestSpecialist(t, adapter, 6)

	result := spec.Run(context.Background(), models.Identity{TenantID: "t1"}, Input{
		Task:   "patch the script",
		Policy: &policy.Snapshot{ReadOnlyMode: true},
	})

	require.Equal(t, StatusCompleted, result.Status)
	require.Len(t, result.CallLog, 1)
	assert.Equal(t, "denied", result.CallLog[0].Outcome)
	assert.Equal(t, "Tool 'workspace.propose_patch' not allowed in read-only mode", result.CallLog[0].Summary)

	second := adapter.calls[1]
	require.Len(t, second.Messages[2].ToolResults, 1)
	assert.True(t, second.Messages[2].ToolResults[0].IsError)
	assert.Contains(t, second.Messages[2].ToolResults[0].Content, "read-only mode")
}

func TestRun_MaxStepsForcesConclusion(t *testing.T) {
	adapter := &scriptedAdapter{steps: []func(llm.Request) (*llm.Response, error){
		toolUse("tu-1", "netsuite_suiteql", map[string]any{"query": "SELECT 1"}),
		toolUse("tu-2", "netsuite_suiteql", map[string]any{"query": "SELECT 2"}),
		text("Best answer from two queries."),
	}}
	spec := newTestSpecialist(t, adapter, 2)

	result := spec.Run(context.Background(), models.Identity{TenantID: "t1"}, Input{Task: "dig deep"})

	require.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "Best answer from two queries.", result.Text)
	assert.Len(t, result.CallLog, 2)

	// The concluding call carries the nudge and advertises no tools.
	require.Len(t, adapter.calls, 3)
	final := adapter.calls[2]
	assert.Empty(t, final.Tools)
	last := final.Messages[len(final.Messages)-1]
	assert.Contains(t, last.Text, "You have used all available tool calls.")
}

func TestRun_RetriesTransientProviderErrorOnce(t *testing.T) {
	adapter := &scriptedAdapter{steps: []func(llm.Request) (*llm.Response, error){
		fail(llm.ErrProviderRateLimited),
		text("Recovered answer."),
	}}
	spec := newTestSpecialist(t, adapter, 6)

	result := spec.Run(context.Background(), models.Identity{TenantID: "t1"}, Input{Task: "hello"})

	require.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, "Recovered answer.", result.Text)
	assert.Len(t, adapter.calls, 2)
}

func TestRun_NonTransientErrorFailsRun(t *testing.T) {
	adapter := &scriptedAdapter{steps: []func(llm.Request) (*llm.Response, error){
		fail(llm.ErrProviderAuth),
	}}
	spec := newTestSpecialist(t, adapter, 6)

	result := spec.Run(context.Background(), models.Identity{TenantID: "t1"}, Input{Task: "hello"})

	assert.Equal(t, StatusFailed, result.Status)
	assert.Contains(t, result.ErrorMessage, "authentication")
	assert.Len(t, adapter.calls, 1, "auth errors are not retried")
}

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"success", map[string]any{"rows": []any{}}, "success"},
		{"rate limited", map[string]any{"error": "Rate limit exceeded"}, "denied"},
		{"policy", map[string]any{"error": "Policy requires row limit"}, "denied"},
		{"unknown tool", map[string]any{"error": "Tool 'x' is not allowed in chat."}, "denied"},
		{"handler error", map[string]any{"error": "connection refused"}, "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outcomeOf(tt.payload))
		})
	}
}
