// Package coordinator turns one user message into a streamed assistant
// answer: classify intent, dispatch specialist agents, synthesize their
// findings. It owns the turn-level streaming contract and the cross-agent
// token budget.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/policy"
	"github.com/suiteops/suitepilot/pkg/resolver"
	"github.com/suiteops/suitepilot/pkg/services"
)

// DefaultTokenBudget bounds output tokens across all agent calls in one
// turn. Synthesis is not counted against it.
const DefaultTokenBudget = 8192

// Coordinator dispatches specialists and streams the synthesized answer.
type Coordinator struct {
	client   *llm.Client
	agents   map[string]*agent.Specialist
	policies *services.PolicyService
	resolver *resolver.Resolver
	budget   int
	logger   *slog.Logger
}

// New creates a coordinator over the given specialists. A tokenBudget of
// zero selects the default.
func New(client *llm.Client, specialists []*agent.Specialist, policies *services.PolicyService, res *resolver.Resolver, tokenBudget int) *Coordinator {
	agents := make(map[string]*agent.Specialist, len(specialists))
	for _, s := range specialists {
		agents[s.Name()] = s
	}
	if tokenBudget <= 0 {
		tokenBudget = DefaultTokenBudget
	}
	return &Coordinator{
		client:   client,
		agents:   agents,
		policies: policies,
		resolver: res,
		budget:   tokenBudget,
		logger:   slog.Default(),
	}
}

// Process handles one user message. The returned channel yields tool_status
// events while agents run, text chunks during synthesis, then exactly one
// terminal message event, and is then closed. Cancelling ctx drops the
// stream promptly.
func (c *Coordinator) Process(ctx context.Context, identity models.Identity, message string) <-chan Event {
	events := make(chan Event, 16)
	go func() {
		defer close(events)
		c.run(ctx, identity, message, events)
	}()
	return events
}

func (c *Coordinator) run(ctx context.Context, identity models.Identity, message string, events chan<- Event) {
	emit := func(e Event) bool {
		select {
		case events <- e:
			return true
		case <-ctx.Done():
			return false
		}
	}

	snapshot := c.activePolicy(ctx, identity)

	intent := Classify(message)
	var plan Plan
	if route, ok := routes[intent]; ok {
		plan = planFromRoute(route, message)
	} else {
		plan = planWithModel(ctx, c.client, c.knownAgents(), message)
	}
	c.logger.Info("turn planned",
		"tenant", identity.TenantID,
		"correlation", identity.CorrelationID,
		"intent", intent,
		"steps", len(plan.Steps),
		"parallel", plan.Parallel)

	outcomes := c.dispatch(ctx, identity, snapshot, plan, emit)
	outcomes = c.repairOnce(ctx, identity, snapshot, outcomes, emit)

	var callLog []models.ToolCallRecord
	for _, o := range outcomes {
		callLog = append(callLog, o.Calls...)
	}

	content := c.synthesize(ctx, message, outcomes, emit)
	emit(Event{Type: EventMessage, Content: content, CallLog: callLog})
}

// activePolicy loads the tenant's active policy profile. Absence of a
// profile means no restrictions.
func (c *Coordinator) activePolicy(ctx context.Context, identity models.Identity) *policy.Snapshot {
	profile, err := c.policies.GetActive(ctx, identity)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			c.logger.Warn("policy lookup failed", "tenant", identity.TenantID, "error", err)
		}
		return nil
	}
	return policy.FromProfile(profile)
}

func (c *Coordinator) knownAgents() map[string]bool {
	known := make(map[string]bool, len(c.agents))
	for name := range c.agents {
		known[name] = true
	}
	return known
}

// dispatch runs the plan's steps, sequentially by default or fanned out
// when the plan is parallel. Sequential steps feed prior answers to later
// ones and stop when the token budget is exhausted; parallel siblings
// share the budget check only at start.
func (c *Coordinator) dispatch(ctx context.Context, identity models.Identity, snapshot *policy.Snapshot, plan Plan, emit func(Event) bool) []models.AgentOutcome {
	if plan.Parallel && len(plan.Steps) > 1 {
		return c.dispatchParallel(ctx, identity, snapshot, plan.Steps, emit)
	}

	var outcomes []models.AgentOutcome
	var priorAnswers []string
	used := 0
	for _, step := range plan.Steps {
		if used >= c.budget {
			c.logger.Warn("token budget exhausted, skipping step",
				"agent", step.Agent, "used", used, "budget", c.budget)
			emit(Event{Type: EventToolStatus, Agent: step.Agent, Status: "skipped", Summary: "token budget exhausted"})
			continue
		}
		extra := ""
		if len(priorAnswers) > 0 {
			extra = "Findings from earlier specialists:\n\n" + strings.Join(priorAnswers, "\n\n")
		}
		outcome, outputTokens := c.runStep(ctx, identity, snapshot, step, extra, emit)
		used += outputTokens
		outcomes = append(outcomes, outcome)
		if !outcome.Failed && outcome.Answer != "" {
			priorAnswers = append(priorAnswers, fmt.Sprintf("[%s]\n%s", step.Agent, outcome.Answer))
		}
	}
	return outcomes
}

func (c *Coordinator) dispatchParallel(ctx context.Context, identity models.Identity, snapshot *policy.Snapshot, steps []PlanStep, emit func(Event) bool) []models.AgentOutcome {
	outcomes := make([]models.AgentOutcome, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	for i, step := range steps {
		g.Go(func() error {
			// Sibling failures land in their outcome, never in the group.
			outcomes[i], _ = c.runStep(gctx, identity, snapshot, step, "", emit)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// runStep executes one plan step and returns its outcome plus the output
// tokens it consumed.
func (c *Coordinator) runStep(ctx context.Context, identity models.Identity, snapshot *policy.Snapshot, step PlanStep, extraContext string, emit func(Event) bool) (models.AgentOutcome, int) {
	outcome := models.AgentOutcome{Agent: step.Agent, Task: step.Task}

	spec, ok := c.agents[step.Agent]
	if !ok {
		outcome.Failed = true
		outcome.ErrorMsg = fmt.Sprintf("unknown agent %q", step.Agent)
		return outcome, 0
	}

	emit(Event{Type: EventToolStatus, Agent: step.Agent, Status: "running"})

	parts := []string{}
	if step.Agent == agent.AgentSuiteQL && c.resolver != nil {
		if vernacular := c.resolver.Vernacular(ctx, identity, step.Task); vernacular != "" {
			parts = append(parts, "Tenant vernacular (phrase to script ID):\n"+vernacular)
		}
	}
	if extraContext != "" {
		parts = append(parts, extraContext)
	}

	result := spec.Run(ctx, identity, agent.Input{
		Task:    step.Task,
		Context: strings.Join(parts, "\n\n"),
		Policy:  snapshot,
		Observer: func(record models.ToolCallRecord) {
			emit(Event{
				Type:    EventToolStatus,
				Agent:   record.Agent,
				Tool:    record.Tool,
				Status:  record.Outcome,
				Summary: record.Summary,
			})
		},
	})

	outcome.Calls = result.CallLog
	if result.Status == agent.StatusCompleted {
		outcome.Answer = result.Text
		emit(Event{Type: EventToolStatus, Agent: step.Agent, Status: "completed"})
	} else {
		outcome.Failed = true
		outcome.ErrorMsg = result.ErrorMessage
		emit(Event{Type: EventToolStatus, Agent: step.Agent, Status: "failed", Summary: result.ErrorMessage})
	}
	return outcome, result.Usage.OutputTokens
}

// repairOnce retries a failed data-query step at most once per turn: a rag
// lookup for the field and table names involved, then the original task
// again with the lookup in context.
func (c *Coordinator) repairOnce(ctx context.Context, identity models.Identity, snapshot *policy.Snapshot, outcomes []models.AgentOutcome, emit func(Event) bool) []models.AgentOutcome {
	for i, o := range outcomes {
		if !o.Failed || o.Agent != agent.AgentSuiteQL {
			continue
		}
		if _, ok := c.agents[agent.AgentRAG]; !ok {
			break
		}
		c.logger.Info("inserting repair steps for failed data query",
			"correlation", identity.CorrelationID)

		lookup, _ := c.runStep(ctx, identity, snapshot, PlanStep{
			Agent: agent.AgentRAG,
			Task:  "Find the correct NetSuite table and field names needed for: " + o.Task,
		}, "", emit)
		outcomes = append(outcomes, lookup)
		if lookup.Failed || lookup.Answer == "" {
			break
		}

		retry, _ := c.runStep(ctx, identity, snapshot, PlanStep{
			Agent: agent.AgentSuiteQL,
			Task:  o.Task,
		}, "Reference for table and field names:\n\n"+lookup.Answer, emit)
		outcomes[i] = retry
		break
	}
	return outcomes
}
