package coordinator

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/llm"
)

// Intent is the coarse classification of a user message.
type Intent string

const (
	IntentDocumentation Intent = "documentation"
	IntentDataQuery     Intent = "data_query"
	IntentWorkspaceDev  Intent = "workspace_dev"
	IntentAnalysis      Intent = "analysis"
	IntentAmbiguous     Intent = "ambiguous"
)

// RouteConfig is the dispatch shape for one intent.
type RouteConfig struct {
	Agents   []string
	Parallel bool
}

// routes maps each resolved intent to its agent sequence. The analysis
// route runs suiteql first so the analysis specialist has data to work on.
var routes = map[Intent]RouteConfig{
	IntentDocumentation: {Agents: []string{agent.AgentRAG}},
	IntentDataQuery:     {Agents: []string{agent.AgentSuiteQL}},
	IntentWorkspaceDev:  {Agents: []string{agent.AgentWorkspaceDev}},
	IntentAnalysis:      {Agents: []string{agent.AgentSuiteQL, agent.AgentAnalysis}},
}

type intentPattern struct {
	intent Intent
	re     *regexp.Regexp
}

// intentPatterns is ordered. Workspace-development phrases come first so
// "write a script" never lands on documentation; analysis phrases come
// before data-query phrases.
var intentPatterns = []intentPattern{
	{IntentWorkspaceDev, regexp.MustCompile(`(?i)\b(write|create|build|modify|edit|update|fix|refactor|rename|delete|patch|deploy|validate|test)\b.{0,60}\b(script|suitelet|restlet|user ?event|map[ /]?reduce|scheduled script|client script|file|module|function|code|workspace|project|deployment)\b`)},
	{IntentWorkspaceDev, regexp.MustCompile(`(?i)\b(propose|apply)\b.{0,30}\b(patch|change|diff)\b`)},
	{IntentAnalysis, regexp.MustCompile(`(?i)\b(analy[sz]e|analysis|trend|trending|compare|comparison|versus|vs\.?|average|mean|median|aggregate|break ?down|variance|growth|month over month|quarter over quarter|year over year|top \d+)\b`)},
	{IntentDataQuery, regexp.MustCompile(`(?i)\b(how many|how much|count|total|sum of|list|show|find|lookup|look up|query|select)\b`)},
	{IntentDataQuery, regexp.MustCompile(`(?i)\b(sales order|purchase order|invoice|transaction|customer|vendor|employee|item|payment|credit memo|journal)s?\b`)},
	{IntentDocumentation, regexp.MustCompile(`(?i)\b(how do i|how to|what is|what does|explain|documentation|docs|guide|reference|help with|difference between)\b`)},
}

// recordRefPattern matches a bare record reference like "#12345".
var recordRefPattern = regexp.MustCompile(`^#?\d+$`)

// Classify resolves the intent of a message from the ordered pattern list.
// A bare numeric record reference short-circuits to data query. Returns
// IntentAmbiguous when nothing matches.
func Classify(message string) Intent {
	trimmed := strings.TrimSpace(message)
	if recordRefPattern.MatchString(trimmed) {
		return IntentDataQuery
	}
	for _, p := range intentPatterns {
		if p.re.MatchString(trimmed) {
			return p.intent
		}
	}
	return IntentAmbiguous
}

// Plan is the dispatch plan for one turn, either derived from a routed
// intent or emitted by the planner model.
type Plan struct {
	Reasoning string     `json:"reasoning"`
	Steps     []PlanStep `json:"steps"`
	Parallel  bool       `json:"parallel"`
}

// PlanStep dispatches one agent with one task.
type PlanStep struct {
	Agent string `json:"agent"`
	Task  string `json:"task"`
}

const maxPlanSteps = 4

const plannerPrompt = `You route user requests to specialist agents. The agents are:
- suiteql: answers questions by querying NetSuite data
- rag: answers questions from documentation and web search
- workspace_dev: reads and modifies SuiteCloud project files
- analysis: aggregates and compares data gathered by other agents

Respond with JSON only, no prose:
{"reasoning": "...", "steps": [{"agent": "...", "task": "..."}], "parallel": false}

Use at most 4 steps. Put analysis after the agent that gathers its data.`

// planFromRoute expands a fixed route into a plan over the user's message.
func planFromRoute(route RouteConfig, message string) Plan {
	plan := Plan{Parallel: route.Parallel}
	for _, name := range route.Agents {
		plan.Steps = append(plan.Steps, PlanStep{Agent: name, Task: message})
	}
	return plan
}

// planWithModel asks the cheap model for a plan when no pattern matched.
// Any failure, malformed JSON, unknown agent name, or empty plan coerces to
// a single data-query step.
func planWithModel(ctx context.Context, client *llm.Client, known map[string]bool, message string) Plan {
	fallback := Plan{Steps: []PlanStep{{Agent: agent.AgentSuiteQL, Task: message}}}

	resp, err := client.Adapter.CreateMessage(ctx, llm.Request{
		Model:     client.CheapModel,
		MaxTokens: 512,
		System:    plannerPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Text: message}},
	})
	if err != nil {
		slog.Warn("planner call failed", "error", err)
		return fallback
	}

	var plan Plan
	if err := json.Unmarshal([]byte(extractJSON(resp.Text())), &plan); err != nil {
		slog.Warn("planner emitted unparseable plan", "error", err)
		return fallback
	}
	if len(plan.Steps) == 0 {
		return fallback
	}
	if len(plan.Steps) > maxPlanSteps {
		plan.Steps = plan.Steps[:maxPlanSteps]
	}
	for _, step := range plan.Steps {
		if !known[step.Agent] || strings.TrimSpace(step.Task) == "" {
			slog.Warn("planner emitted invalid step", "agent", step.Agent)
			return fallback
		}
	}
	return plan
}

// extractJSON strips a markdown code fence or surrounding prose from a
// model response, returning the outermost JSON object.
func extractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}
