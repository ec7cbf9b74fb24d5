// Package resolver maps natural-language entity phrases in a user's task
// to their stable script IDs, producing a compact vernacular block the
// data-query specialist injects into its prompt.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

const (
	// MaxVernacularLen caps the rendered block.
	MaxVernacularLen = 300
	// searchK is how many candidates the index returns per phrase.
	searchK = 3
	// minScore drops matches too weak to be meaningful.
	minScore = 0.25
	// tieBand is the score distance within which the cheap model picks.
	tieBand = 0.08
)

// Resolver is best-effort: every failure path returns the empty string
// and the query proceeds without vernacular.
type Resolver struct {
	mappings *services.MappingService
	client   *llm.Client
	logger   *slog.Logger
}

// New creates a resolver. The LLM client may be nil, in which case ties
// resolve to the top-scored candidate.
func New(mappings *services.MappingService, client *llm.Client) *Resolver {
	return &Resolver{
		mappings: mappings,
		client:   client,
		logger:   slog.Default(),
	}
}

// Vernacular renders labeled mapping bullets for the entity phrases found
// in the task, bounded to MaxVernacularLen characters.
func (r *Resolver) Vernacular(ctx context.Context, identity models.Identity, task string) string {
	rows, err := r.mappings.ListByTenant(ctx, identity)
	if err != nil {
		r.logger.Warn("entity mapping lookup failed", "tenant", identity.TenantID, "error", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			EntityType:  row.EntityType,
			ScriptID:    row.ScriptID,
			NaturalName: row.NaturalName,
			Description: row.Description,
		})
	}
	index := NewIndex(entries)

	var lines []string
	seen := make(map[string]bool)
	for _, phrase := range candidatePhrases(task) {
		matches := index.Search(phrase, searchK)
		if len(matches) == 0 || matches[0].Score < minScore {
			continue
		}
		best := r.pick(ctx, phrase, matches)
		if seen[best.ScriptID] {
			continue
		}
		seen[best.ScriptID] = true
		lines = append(lines, fmt.Sprintf("- %q means %s (%s)", phrase, best.ScriptID, best.EntityType))
	}
	if len(lines) == 0 {
		return ""
	}

	out := strings.Join(lines, "\n")
	if len(out) > MaxVernacularLen {
		out = out[:MaxVernacularLen]
		if idx := strings.LastIndexByte(out, '\n'); idx > 0 {
			out = out[:idx]
		}
	}
	return out
}

// pick selects among matches. When the top two scores sit within the tie
// band, the cheap model chooses; anything going wrong falls back to the
// top candidate.
func (r *Resolver) pick(ctx context.Context, phrase string, matches []Match) Entry {
	if len(matches) < 2 || matches[0].Score-matches[1].Score > tieBand || r.client == nil {
		return matches[0].Entry
	}

	var options strings.Builder
	for i, m := range matches {
		fmt.Fprintf(&options, "%d. %s (%s): %s\n", i+1, m.Entry.NaturalName, m.Entry.ScriptID, m.Entry.Description)
	}
	resp, err := r.client.Adapter.CreateMessage(ctx, llm.Request{
		Model:     r.client.CheapModel,
		MaxTokens: 16,
		System:    "You map business phrases to ERP field identifiers. Answer with the single number of the best option.",
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Text: fmt.Sprintf("Phrase: %q\nOptions:\n%s", phrase, options.String()),
		}},
	})
	if err != nil {
		r.logger.Warn("tie-break selection failed", "phrase", phrase, "error", err)
		return matches[0].Entry
	}
	answer := strings.TrimSpace(resp.Text())
	for i := range matches {
		if strings.HasPrefix(answer, fmt.Sprintf("%d", i+1)) {
			return matches[i].Entry
		}
	}
	return matches[0].Entry
}

// candidatePhrases extracts quoted strings and short capitalized runs
// from the task text.
func candidatePhrases(task string) []string {
	var phrases []string
	seen := make(map[string]bool)
	add := func(p string) {
		p = strings.TrimSpace(p)
		if p != "" && !seen[strings.ToLower(p)] {
			seen[strings.ToLower(p)] = true
			phrases = append(phrases, p)
		}
	}

	// Quoted strings first: the user named the entity explicitly.
	for _, quote := range []byte{'"', '\''} {
		rest := task
		for {
			start := strings.IndexByte(rest, quote)
			if start < 0 {
				break
			}
			end := strings.IndexByte(rest[start+1:], quote)
			if end < 0 {
				break
			}
			add(rest[start+1 : start+1+end])
			rest = rest[start+1+end+1:]
		}
	}

	// Capitalized word runs of up to three words, skipping a leading
	// sentence-start word.
	words := strings.Fields(task)
	for i := 1; i < len(words); i++ {
		if !startsUpper(words[i]) {
			continue
		}
		run := []string{trimPunct(words[i])}
		for j := i + 1; j < len(words) && len(run) < 3 && startsUpper(words[j]); j++ {
			run = append(run, trimPunct(words[j]))
			i = j
		}
		add(strings.Join(run, " "))
	}
	return phrases
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func trimPunct(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return unicode.IsPunct(r) && r != '_'
	})
}
