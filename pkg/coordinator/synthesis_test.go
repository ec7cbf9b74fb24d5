package coordinator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
)

// scriptedAdapter returns canned responses in order and streams a fixed
// text for StreamMessage.
type scriptedAdapter struct {
	responses []*llm.Response
	errs      []error
	calls     int
	streamed  string
	requests  []llm.Request
}

func (a *scriptedAdapter) CreateMessage(_ context.Context, req llm.Request) (*llm.Response, error) {
	a.requests = append(a.requests, req)
	i := a.calls
	a.calls++
	if i < len(a.errs) && a.errs[i] != nil {
		return nil, a.errs[i]
	}
	if i < len(a.responses) {
		return a.responses[i], nil
	}
	return &llm.Response{TextBlocks: []string{"done"}}, nil
}

func (a *scriptedAdapter) StreamMessage(_ context.Context, req llm.Request) (<-chan llm.StreamEvent, error) {
	a.requests = append(a.requests, req)
	ch := make(chan llm.StreamEvent, 4)
	resp := &llm.Response{TextBlocks: []string{a.streamed}}
	for _, chunk := range splitChunks(a.streamed) {
		ch <- llm.StreamEvent{Type: llm.StreamEventText, Text: chunk}
	}
	ch <- llm.StreamEvent{Type: llm.StreamEventResponse, Response: resp}
	close(ch)
	return ch, nil
}

func splitChunks(s string) []string {
	if s == "" {
		return nil
	}
	mid := len(s) / 2
	return []string{s[:mid], s[mid:]}
}

func TestSanitizeSummary(t *testing.T) {
	in := "The total is 42.\n```sql\nSELECT COUNT(*) FROM transaction\n```\n<thinking>should I mention the query?</thinking>\nAll open orders counted."
	out := sanitizeSummary(in)
	assert.NotContains(t, out, "SELECT")
	assert.NotContains(t, out, "thinking")
	assert.Contains(t, out, "The total is 42.")
	assert.Contains(t, out, "All open orders counted.")
}

func TestSanitizeSummary_BoundsLength(t *testing.T) {
	out := sanitizeSummary(strings.Repeat("x", 5000))
	assert.Len(t, out, maxSummaryLen+3)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestApologyFor(t *testing.T) {
	msg := "what about the thing"
	out := apologyFor([]models.AgentOutcome{
		{Agent: "suiteql", Failed: true, ErrorMsg: "boom"},
	}, msg)
	assert.Contains(t, out, "I wasn't able to find an answer")
	assert.Contains(t, out, "The suiteql specialist ran into a problem.")
	assert.Contains(t, out, clarifyingQuestions[len(msg)%len(clarifyingQuestions)])
}

func TestFallbackAnswer_SkipsFailures(t *testing.T) {
	out := fallbackAnswer([]models.AgentOutcome{
		{Agent: "suiteql", Answer: "Total: 42"},
		{Agent: "analysis", Failed: true, ErrorMsg: "boom"},
		{Agent: "rag", Answer: "See the docs."},
	})
	assert.Equal(t, "Total: 42\n\nSee the docs.", out)
}

func TestPlanWithModel_ValidPlan(t *testing.T) {
	adapter := &scriptedAdapter{responses: []*llm.Response{
		{TextBlocks: []string{"```json\n{\"reasoning\":\"two phases\",\"steps\":[{\"agent\":\"suiteql\",\"task\":\"pull revenue\"},{\"agent\":\"analysis\",\"task\":\"compare quarters\"}],\"parallel\":false}\n```"}},
	}}
	client := &llm.Client{Adapter: adapter, CheapModel: "cheap"}
	known := map[string]bool{agent.AgentSuiteQL: true, agent.AgentAnalysis: true}

	plan := planWithModel(context.Background(), client, known, "compare revenue")
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, agent.AgentSuiteQL, plan.Steps[0].Agent)
	assert.Equal(t, "compare quarters", plan.Steps[1].Task)
}

func TestPlanWithModel_FallsBackOnGarbage(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "I think we should query NetSuite"},
		{"unknown agent", `{"steps":[{"agent":"oracle","task":"divine it"}]}`},
		{"empty task", `{"steps":[{"agent":"suiteql","task":"  "}]}`},
		{"no steps", `{"steps":[]}`},
	}
	known := map[string]bool{agent.AgentSuiteQL: true}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &scriptedAdapter{responses: []*llm.Response{{TextBlocks: []string{tt.text}}}}
			client := &llm.Client{Adapter: adapter, CheapModel: "cheap"}

			plan := planWithModel(context.Background(), client, known, "the question")
			require.Len(t, plan.Steps, 1)
			assert.Equal(t, agent.AgentSuiteQL, plan.Steps[0].Agent)
			assert.Equal(t, "the question", plan.Steps[0].Task)
		})
	}
}

func TestPlanWithModel_TruncatesToMaxSteps(t *testing.T) {
	adapter := &scriptedAdapter{responses: []*llm.Response{{TextBlocks: []string{
		`{"steps":[{"agent":"suiteql","task":"a"},{"agent":"suiteql","task":"b"},{"agent":"suiteql","task":"c"},{"agent":"suiteql","task":"d"},{"agent":"suiteql","task":"e"}]}`,
	}}}}
	client := &llm.Client{Adapter: adapter, CheapModel: "cheap"}

	plan := planWithModel(context.Background(), client, map[string]bool{agent.AgentSuiteQL: true}, "q")
	assert.Len(t, plan.Steps, maxPlanSteps)
}
