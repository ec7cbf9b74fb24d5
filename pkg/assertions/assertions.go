// Package assertions validates and executes batches of read-only data
// checks, and evaluates the deploy gate a changeset must clear before a
// sandbox deploy.
package assertions

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/suiteops/suitepilot/pkg/services"
)

const (
	// MaxBatchSize bounds one assertion batch.
	MaxBatchSize = 50
	// RowCap is the hard row limit applied to every assertion query.
	RowCap = 100
)

// Expected result types.
const (
	ExpectRowCount = "row_count"
	ExpectScalar   = "scalar"
	ExpectNoRows   = "no_rows"
)

var validOperators = map[string]bool{
	"eq": true, "ne": true, "gt": true, "gte": true,
	"lt": true, "lte": true, "between": true,
}

// Assertion is one named read-only check with an expected outcome.
type Assertion struct {
	Name     string   `json:"name"`
	Query    string   `json:"query"`
	Expected Expected `json:"expected"`
}

// Expected is the predicate an assertion's observed value must satisfy.
type Expected struct {
	Type     string `json:"type"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
	Value2   any    `json:"value2"`
}

// ddlDmlKeywords are rejected as the leading keyword of any statement.
var ddlDmlKeywords = []string{
	"INSERT", "UPDATE", "DELETE", "DROP", "CREATE", "ALTER",
	"TRUNCATE", "MERGE", "GRANT", "REVOKE",
}

var tableRefPattern = regexp.MustCompile(`(?i)\b(?:FROM|JOIN)\s+([A-Za-z_][A-Za-z0-9_.]*)`)

// ParseBatch decodes and validates a raw assertion batch. The whole batch
// is rejected on the first invalid entry.
func ParseBatch(raw []any, allowedTables []string) ([]Assertion, error) {
	if len(raw) == 0 {
		return nil, services.NewValidationError("assertions", "batch is empty")
	}
	if len(raw) > MaxBatchSize {
		return nil, services.NewValidationError("assertions", fmt.Sprintf("batch exceeds %d entries", MaxBatchSize))
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, services.NewValidationError("assertions", "batch is not valid JSON")
	}
	var batch []Assertion
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, services.NewValidationError("assertions", "batch entries are malformed")
	}

	for i, a := range batch {
		if err := validate(a, allowedTables); err != nil {
			return nil, fmt.Errorf("assertion %d (%q): %w", i+1, a.Name, err)
		}
	}
	return batch, nil
}

func validate(a Assertion, allowedTables []string) error {
	if strings.TrimSpace(a.Name) == "" {
		return services.NewValidationError("name", "required")
	}
	if strings.TrimSpace(a.Query) == "" {
		return services.NewValidationError("query", "required")
	}
	switch a.Expected.Type {
	case ExpectRowCount, ExpectScalar, ExpectNoRows:
	default:
		return services.NewValidationError("expected.type", "must be row_count, scalar, or no_rows")
	}
	if a.Expected.Type != ExpectNoRows {
		if !validOperators[a.Expected.Operator] {
			return services.NewValidationError("expected.operator", "unknown operator")
		}
		if a.Expected.Operator == "between" && a.Expected.Value2 == nil {
			return services.NewValidationError("expected.value2", "required for between")
		}
	}
	if err := checkReadOnly(a.Query); err != nil {
		return err
	}
	return checkTables(a.Query, allowedTables)
}

// checkReadOnly requires every statement in the query to be a SELECT.
// Keywords are checked at statement boundaries, not inside literals.
func checkReadOnly(query string) error {
	for _, stmt := range strings.Split(query, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		first := strings.ToUpper(firstWord(stmt))
		for _, kw := range ddlDmlKeywords {
			if first == kw {
				return services.NewValidationError("query", fmt.Sprintf("keyword %s is not allowed", kw))
			}
		}
		if first != "SELECT" {
			return services.NewValidationError("query", "only SELECT statements are allowed")
		}
	}
	return nil
}

// checkTables requires every referenced table to be in the tenant's
// allowlist. An empty allowlist places no restriction.
func checkTables(query string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	allowedSet := make(map[string]bool, len(allowed))
	for _, t := range allowed {
		allowedSet[strings.ToLower(t)] = true
	}
	for _, m := range tableRefPattern.FindAllStringSubmatch(query, -1) {
		table := strings.ToLower(m[1])
		if !allowedSet[table] {
			return services.NewValidationError("query", fmt.Sprintf("table %s is not in the allowlist", table))
		}
	}
	return nil
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
