// Package policy evaluates per-tenant guardrails around tool calls:
// pre-execution gating and post-execution output redaction. Functions are
// pure over an immutable snapshot so a coordinator turn sees one policy.
package policy

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/suiteops/suitepilot/ent"
)

// rowLimitPattern matches the clauses accepted as a row limit: ROWNUM,
// FETCH FIRST, LIMIT, or TOP, as whole words.
var rowLimitPattern = regexp.MustCompile(`(?i)\b(ROWNUM|FETCH\s+FIRST|LIMIT|TOP)\b`)

// mutatingTools are denied outright when the profile is in read-only mode.
var mutatingTools = map[string]bool{
	"workspace.propose_patch":  true,
	"workspace.apply_patch":    true,
	"workspace.deploy_sandbox": true,
	"schedule.create":          true,
	"schedule.run":             true,
}

// Snapshot is an immutable view of the tenant's active policy profile.
// A nil snapshot allows everything and redacts nothing.
type Snapshot struct {
	ReadOnlyMode       bool
	MaxRowsPerQuery    int
	RequireRowLimit    bool
	BlockedFields      []string
	AllowedRecordTypes []string
	ToolAllowlist      []string
}

// FromProfile builds a snapshot from a stored profile.
func FromProfile(p *ent.PolicyProfile) *Snapshot {
	if p == nil {
		return nil
	}
	return &Snapshot{
		ReadOnlyMode:       p.ReadOnlyMode,
		MaxRowsPerQuery:    p.MaxRowsPerQuery,
		RequireRowLimit:    p.RequireRowLimit,
		BlockedFields:      p.BlockedFields,
		AllowedRecordTypes: p.AllowedRecordTypes,
		ToolAllowlist:      p.ToolAllowlist,
	}
}

// Decision is the pre-execution verdict.
type Decision struct {
	Allowed bool
	Reason  string
}

// Evaluate gates one tool call before execution. Rules short-circuit on
// the first failure.
func Evaluate(s *Snapshot, toolName string, params map[string]any) Decision {
	if s == nil {
		return Decision{Allowed: true}
	}

	if len(s.ToolAllowlist) > 0 && !contains(s.ToolAllowlist, toolName) {
		return Decision{Reason: fmt.Sprintf("Tool '%s' not allowed by policy", toolName)}
	}

	if s.ReadOnlyMode && mutatingTools[toolName] {
		return Decision{Reason: fmt.Sprintf("Tool '%s' not allowed in read-only mode", toolName)}
	}

	query, hasQuery := params["query"].(string)
	if hasQuery && query != "" {
		lowered := strings.ToLower(query)
		for _, field := range s.BlockedFields {
			if field != "" && strings.Contains(lowered, strings.ToLower(field)) {
				return Decision{Reason: fmt.Sprintf("Policy blocked: field '%s' is restricted", field)}
			}
		}
		if s.RequireRowLimit && !hasRowLimit(query) {
			return Decision{Reason: "Policy requires row limit"}
		}
	}

	return Decision{Allowed: true}
}

// RedactOutput strips keys matching any blocked field, recursively. Lists
// are filtered element-wise. With no policy the result passes through.
func RedactOutput(s *Snapshot, result map[string]any) map[string]any {
	if s == nil || len(s.BlockedFields) == 0 || result == nil {
		return result
	}
	return redactMap(s.BlockedFields, result)
}

func redactMap(blocked []string, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		if isBlocked(blocked, key) {
			continue
		}
		out[key] = redactValue(blocked, value)
	}
	return out
}

func redactValue(blocked []string, v any) any {
	switch val := v.(type) {
	case map[string]any:
		return redactMap(blocked, val)
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			out = append(out, redactValue(blocked, item))
		}
		return out
	default:
		return v
	}
}

func isBlocked(blocked []string, key string) bool {
	for _, field := range blocked {
		if strings.EqualFold(field, key) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// hasRowLimit reports whether the query carries any accepted row-limit
// clause. Keywords match as whole words only, so a column named STOPS
// does not count as TOP.
func hasRowLimit(query string) bool {
	return rowLimitPattern.MatchString(query)
}
