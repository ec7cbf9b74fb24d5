package coordinator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
)

// synthesisPrompt is deliberately lean: persona, constraints, and synthesis
// rules only. Tool inventories and SQL syntax belong on the specialists.
const synthesisPrompt = `You are SuitePilot, an assistant for finance and operations
teams working in NetSuite.

Rules:
- Answer only from the specialist findings provided. Never invent data.
- Never include raw SQL, code blocks, or internal reasoning in the answer.
- Be concise and answer the user's question directly, numbers first.
- When a specialist failed or returned nothing, say so briefly and ask one
  specific clarifying question.`

// clarifyingQuestions is the fixed bank used when a turn produces no
// usable specialist results.
var clarifyingQuestions = []string{
	"Which record type and date range should I look at?",
	"Could you name the specific field or saved search involved?",
	"Which subsidiary or accounting period does this concern?",
	"Do you have the record number or script ID on hand?",
}

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```.*?```")
	thinkingPattern    = regexp.MustCompile(`(?s)<thinking>.*?</thinking>`)
)

const maxSummaryLen = 2000

// synthesize streams the final answer from the agent outcomes, emitting
// text chunks as they arrive, and returns the full content for the
// terminal event. With zero usable outcomes it returns a structured
// apology without calling the model.
func (c *Coordinator) synthesize(ctx context.Context, message string, outcomes []models.AgentOutcome, emit func(Event) bool) string {
	usable := 0
	for _, o := range outcomes {
		if !o.Failed && strings.TrimSpace(o.Answer) != "" {
			usable++
		}
	}
	if usable == 0 {
		apology := apologyFor(outcomes, message)
		emit(Event{Type: EventTextChunk, Text: apology})
		return apology
	}

	var findings strings.Builder
	for _, o := range outcomes {
		if o.Failed {
			fmt.Fprintf(&findings, "Specialist %s failed: %s\n\n", o.Agent, sanitizeSummary(o.ErrorMsg))
			continue
		}
		fmt.Fprintf(&findings, "Specialist %s found:\n%s\n\n", o.Agent, sanitizeSummary(o.Answer))
	}

	stream, err := c.client.Adapter.StreamMessage(ctx, llm.Request{
		Model:       c.client.DefaultModel,
		MaxTokens:   c.client.MaxTokens,
		System:      synthesisPrompt,
		Temperature: c.client.Temperature,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Text: fmt.Sprintf("Question: %s\n\n%s", message, findings.String()),
		}},
	})
	if err != nil {
		c.logger.Warn("synthesis stream failed to start", "error", err)
		return fallbackAnswer(outcomes)
	}

	var content strings.Builder
	for event := range stream {
		switch event.Type {
		case llm.StreamEventText:
			content.WriteString(event.Text)
			if !emit(Event{Type: EventTextChunk, Text: event.Text}) {
				return content.String()
			}
		case llm.StreamEventResponse:
			if event.Err != nil {
				c.logger.Warn("synthesis stream aborted", "error", event.Err)
				if content.Len() == 0 {
					return fallbackAnswer(outcomes)
				}
				return content.String()
			}
			// The accumulated response is authoritative over the chunks.
			if full := event.Response.Text(); full != "" {
				return full
			}
		}
	}
	return content.String()
}

// sanitizeSummary strips fenced code blocks and reasoning markup from an
// agent answer before it reaches the synthesis prompt, and bounds its size.
func sanitizeSummary(text string) string {
	text = fencedBlockPattern.ReplaceAllString(text, "")
	text = thinkingPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)
	if len(text) > maxSummaryLen {
		text = text[:maxSummaryLen] + "..."
	}
	return text
}

// apologyFor builds the zero-results answer: a brief failure mention plus
// one clarifying question from the fixed bank, chosen deterministically.
func apologyFor(outcomes []models.AgentOutcome, message string) string {
	var b strings.Builder
	b.WriteString("I wasn't able to find an answer to that. ")
	for _, o := range outcomes {
		if o.Failed && o.ErrorMsg != "" {
			fmt.Fprintf(&b, "The %s specialist ran into a problem. ", o.Agent)
			break
		}
	}
	b.WriteString(clarifyingQuestions[len(message)%len(clarifyingQuestions)])
	return b.String()
}

// fallbackAnswer concatenates sanitized agent answers when synthesis
// itself is unavailable. Partial results beat no answer.
func fallbackAnswer(outcomes []models.AgentOutcome) string {
	var parts []string
	for _, o := range outcomes {
		if !o.Failed && strings.TrimSpace(o.Answer) != "" {
			parts = append(parts, sanitizeSummary(o.Answer))
		}
	}
	return strings.Join(parts, "\n\n")
}
