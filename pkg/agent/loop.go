package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/policy"
)

// Run executes the tool-calling loop for one task. LLM failures that are
// transient (rate limit, unavailable) are retried once; anything else
// fails the run. Tool failures never fail the run, they flow back to the
// model as error payloads.
func (s *Specialist) Run(ctx context.Context, identity models.Identity, input Input) *Result {
	result := &Result{AgentName: s.cfg.Name, Status: StatusFailed}

	model := s.deps.Client.DefaultModel
	if s.cfg.UseCheapModel {
		model = s.deps.Client.CheapModel
	}
	system := s.cfg.SystemPrompt
	if input.Context != "" {
		system += "\n\n" + input.Context
	}
	toolDefs := s.deps.Registry.Definitions(s.cfg.Tools)
	if len(s.cfg.Connectors) > 0 {
		toolDefs = append(toolDefs, s.deps.Dispatcher.ExternalDefinitions(ctx, s.cfg.Connectors)...)
	}

	messages := []llm.Message{{Role: llm.RoleUser, Text: input.Task}}

	for step := 1; step <= s.cfg.MaxSteps; step++ {
		resp, err := s.createWithRetry(ctx, llm.Request{
			Model:       model,
			MaxTokens:   s.deps.Client.MaxTokens,
			System:      system,
			Messages:    messages,
			Tools:       toolDefs,
			Temperature: s.deps.Client.Temperature,
		})
		if err != nil {
			result.ErrorMessage = err.Error()
			return result
		}
		result.Usage.Add(resp.Usage)

		if len(resp.ToolUseBlocks) == 0 {
			result.Status = StatusCompleted
			result.Text = resp.Text()
			return result
		}

		messages = append(messages, llm.Message{
			Role:     llm.RoleAssistant,
			Text:     resp.Text(),
			ToolUses: resp.ToolUseBlocks,
		})

		var toolResults []llm.ToolResult
		for _, tu := range resp.ToolUseBlocks {
			record := models.ToolCallRecord{
				Step:   step,
				Agent:  s.cfg.Name,
				Tool:   tu.Name,
				Params: tu.Input,
			}
			start := time.Now()

			payload := s.executeGoverned(ctx, identity, input.Policy, tu)

			record.Duration = time.Since(start)
			record.Summary = summarize(payload)
			record.Outcome = outcomeOf(payload)
			result.CallLog = append(result.CallLog, record)
			if input.Observer != nil {
				input.Observer(record)
			}

			toolResults = append(toolResults, llm.ToolResult{
				ToolUseID: tu.ID,
				Name:      tu.Name,
				Content:   encodePayload(payload),
				IsError:   record.Outcome != "success",
			})
		}
		messages = append(messages, llm.Message{Role: llm.RoleUser, ToolResults: toolResults})
	}

	// Step budget exhausted with the model still calling tools: one final
	// tools-less call to obtain a user-facing answer.
	messages = append(messages, llm.Message{
		Role: llm.RoleUser,
		Text: "You have used all available tool calls. Provide your final answer now using only the information gathered so far.",
	})
	resp, err := s.createWithRetry(ctx, llm.Request{
		Model:       model,
		MaxTokens:   s.deps.Client.MaxTokens,
		System:      system,
		Messages:    messages,
		Temperature: s.deps.Client.Temperature,
	})
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("forced conclusion failed: %s", err)
		return result
	}
	result.Usage.Add(resp.Usage)
	result.Status = StatusCompleted
	result.Text = resp.Text()
	return result
}

// executeGoverned repairs the workspace ID when needed, gates the call on
// policy, dispatches it, and redacts the output per policy.
func (s *Specialist) executeGoverned(ctx context.Context, identity models.Identity, snapshot *policy.Snapshot, tu llm.ToolUseBlock) map[string]any {
	params := tu.Input
	if params == nil {
		params = map[string]any{}
	}

	if desc, ok := s.deps.Registry.LookupSanitized(tu.Name); ok && desc.NeedsWorkspace {
		s.repairWorkspaceID(ctx, identity, params)
	}

	canonical := tu.Name
	if desc, ok := s.deps.Registry.LookupSanitized(tu.Name); ok {
		canonical = desc.Name
	}
	decision := policy.Evaluate(snapshot, canonical, params)
	if !decision.Allowed {
		return map[string]any{"error": decision.Reason}
	}

	result := s.deps.Dispatcher.Execute(ctx, identity, tu.Name, params)
	return policy.RedactOutput(snapshot, result)
}

// repairWorkspaceID injects the tenant's most recent workspace when the
// supplied workspace_id is absent or not a UUID. Models regularly echo
// placeholders here; a silent repair beats a wasted loop step.
func (s *Specialist) repairWorkspaceID(ctx context.Context, identity models.Identity, params map[string]any) {
	supplied, _ := params["workspace_id"].(string)
	if _, err := uuid.Parse(supplied); err == nil {
		return
	}
	id, err := s.deps.Workspaces.MostRecentWorkspaceID(ctx, identity)
	if err != nil {
		slog.Debug("no workspace available for repair", "tenant", identity.TenantID, "error", err)
		return
	}
	params["workspace_id"] = id
}

func (s *Specialist) createWithRetry(ctx context.Context, req llm.Request) (*llm.Response, error) {
	resp, err := s.deps.Client.Adapter.CreateMessage(ctx, req)
	if err == nil {
		return resp, nil
	}
	if !errors.Is(err, llm.ErrProviderRateLimited) && !errors.Is(err, llm.ErrProviderUnavailable) {
		return nil, err
	}
	slog.Warn("transient provider error, retrying once", "agent", s.cfg.Name, "error", err)
	select {
	case <-time.After(2 * time.Second):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return s.deps.Client.Adapter.CreateMessage(ctx, req)
}

func encodePayload(payload map[string]any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

func outcomeOf(payload map[string]any) string {
	if msg, ok := payload["error"].(string); ok {
		if msg == "Rate limit exceeded" ||
			strings.HasPrefix(msg, "Policy ") ||
			strings.HasPrefix(msg, "Tool '") {
			return "denied"
		}
		return "error"
	}
	return "success"
}

// summarize renders a compact description of a tool result for the call
// log, never the full payload.
func summarize(payload map[string]any) string {
	if msg, ok := payload["error"].(string); ok {
		if len(msg) > 120 {
			msg = msg[:120]
		}
		return msg
	}
	if count, ok := payload["row_count"]; ok {
		return fmt.Sprintf("%v rows", count)
	}
	if count, ok := payload["count"]; ok {
		return fmt.Sprintf("%v entries", count)
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	data, _ := json.Marshal(keys)
	return "result keys: " + string(data)
}
