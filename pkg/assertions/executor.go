package assertions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/suiteops/suitepilot/ent"
	"github.com/suiteops/suitepilot/ent/artifact"
	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/changeset"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

// queryTimeout caps each individual assertion query.
const queryTimeout = 30 * time.Second

// QueryRunner executes one read-only query. Satisfied by both the real
// account client and the deterministic stub.
type QueryRunner interface {
	ExecuteSuiteQL(ctx context.Context, identity models.Identity, query string, limit int) (map[string]any, error)
}

// Executor runs assertion batches serially against the injected query
// runner, recording a run plus per-assertion audits.
type Executor struct {
	client   *ent.Client
	runs     *services.RunService
	audit    *services.AuditService
	policies *services.PolicyService
	queries  QueryRunner
	logger   *slog.Logger
}

// NewExecutor creates an executor.
func NewExecutor(client *ent.Client, runs *services.RunService, audit *services.AuditService, policies *services.PolicyService, queries QueryRunner) *Executor {
	return &Executor{
		client:   client,
		runs:     runs,
		audit:    audit,
		policies: policies,
		queries:  queries,
		logger:   slog.Default(),
	}
}

// AssertionResult is the outcome of one executed assertion.
type AssertionResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"` // passed | failed | error
	Observed any    `json:"observed,omitempty"`
	Message  string `json:"message,omitempty"`
}

// RunAssertionBatch validates the batch, executes it against the
// changeset's tenant data, and records the outcome as a run with a
// report artifact. The returned map is the report payload.
func (e *Executor) RunAssertionBatch(ctx context.Context, identity models.Identity, changesetID string, raw []any) (map[string]any, error) {
	cs, err := e.client.Changeset.Query().
		Where(
			changeset.IDEQ(changesetID),
			changeset.TenantIDEQ(identity.TenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load changeset: %w", err)
	}

	batch, err := ParseBatch(raw, e.allowedTables(ctx, identity))
	if err != nil {
		return nil, err
	}

	rec, err := e.runs.Create(ctx, identity, services.CreateRunRequest{
		WorkspaceID: cs.WorkspaceID,
		ChangesetID: changesetID,
		RunType:     run.RunTypeSuiteqlAssertions,
	})
	if err != nil {
		return nil, err
	}
	if _, err := e.runs.MarkRunning(ctx, identity, rec.ID); err != nil {
		return nil, err
	}

	results := make([]AssertionResult, 0, len(batch))
	passed, failed, errored := 0, 0, 0
	for _, a := range batch {
		result := e.execute(ctx, identity, a)
		switch result.Status {
		case "passed":
			passed++
		case "failed":
			failed++
		default:
			errored++
		}
		e.auditResult(ctx, identity, changesetID, result)
		results = append(results, result)
	}

	overall := "passed"
	runStatus := run.StatusPassed
	if failed > 0 || errored > 0 {
		overall = "failed"
		runStatus = run.StatusFailed
	}

	report := map[string]any{
		"summary": map[string]any{
			"total":  len(results),
			"passed": passed,
			"failed": failed,
			"errors": errored,
		},
		"overall_status": overall,
		"assertions":     results,
	}

	if data, err := json.Marshal(report); err == nil {
		if _, err := e.runs.AddArtifact(ctx, identity, rec.ID, artifact.ArtifactTypeReportJSON, data); err != nil {
			e.logger.Error("assertion report store failed", "run_id", rec.ID, "error", err)
		}
	}
	if _, err := e.runs.Complete(ctx, identity, rec.ID, services.RunOutcome{Status: runStatus}); err != nil {
		return nil, err
	}

	report["run_id"] = rec.ID
	return report, nil
}

// allowedTables reads the assertion table allowlist from the tenant's
// active policy. No policy means no table restriction.
func (e *Executor) allowedTables(ctx context.Context, identity models.Identity) []string {
	profile, err := e.policies.GetActive(ctx, identity)
	if err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			e.logger.Warn("policy lookup failed for assertions", "tenant", identity.TenantID, "error", err)
		}
		return nil
	}
	return profile.AllowedRecordTypes
}

func (e *Executor) execute(ctx context.Context, identity models.Identity, a Assertion) AssertionResult {
	result := AssertionResult{Name: a.Name}

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	payload, err := e.queries.ExecuteSuiteQL(queryCtx, identity, a.Query, RowCap)
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		return result
	}

	observed, err := observe(a.Expected.Type, payload)
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		return result
	}
	result.Observed = observed

	ok, err := compare(a.Expected, observed)
	if err != nil {
		result.Status = "error"
		result.Message = err.Error()
		return result
	}
	if ok {
		result.Status = "passed"
	} else {
		result.Status = "failed"
		result.Message = fmt.Sprintf("expected %s %v, observed %v", a.Expected.Operator, a.Expected.Value, observed)
	}
	return result
}

// observe extracts the value the expectation compares against.
func observe(expectType string, payload map[string]any) (any, error) {
	switch expectType {
	case ExpectRowCount, ExpectNoRows:
		if count, ok := payload["row_count"]; ok {
			return count, nil
		}
		if rows, ok := payload["rows"].([]any); ok {
			return len(rows), nil
		}
		return nil, errors.New("query result carries no row count")
	case ExpectScalar:
		rows, ok := payload["rows"].([]any)
		if !ok || len(rows) == 0 {
			return nil, errors.New("query returned no rows for scalar expectation")
		}
		first, ok := rows[0].([]any)
		if !ok || len(first) == 0 {
			return nil, errors.New("query returned no columns for scalar expectation")
		}
		return first[0], nil
	default:
		return nil, fmt.Errorf("unknown expectation type %s", expectType)
	}
}

func compare(expected Expected, observed any) (bool, error) {
	if expected.Type == ExpectNoRows {
		n, err := toFloat(observed)
		if err != nil {
			return false, err
		}
		return n == 0, nil
	}

	switch expected.Operator {
	case "eq", "ne":
		equal := valuesEqual(observed, expected.Value)
		if expected.Operator == "eq" {
			return equal, nil
		}
		return !equal, nil
	}

	obs, err := toFloat(observed)
	if err != nil {
		return false, err
	}
	want, err := toFloat(expected.Value)
	if err != nil {
		return false, err
	}
	switch expected.Operator {
	case "gt":
		return obs > want, nil
	case "gte":
		return obs >= want, nil
	case "lt":
		return obs < want, nil
	case "lte":
		return obs <= want, nil
	case "between":
		upper, err := toFloat(expected.Value2)
		if err != nil {
			return false, err
		}
		return obs >= want && obs <= upper, nil
	default:
		return false, fmt.Errorf("unknown operator %s", expected.Operator)
	}
}

func valuesEqual(a, b any) bool {
	af, aErr := toFloat(a)
	bf, bErr := toFloat(b)
	if aErr == nil && bErr == nil {
		return af == bf
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}

func (e *Executor) auditResult(ctx context.Context, identity models.Identity, changesetID string, result AssertionResult) {
	status := auditevent.StatusSuccess
	if result.Status != "passed" {
		status = auditevent.StatusError
	}
	_, err := e.audit.Append(ctx, identity, services.AuditEntry{
		Category:     "assertion",
		Action:       "assertion.result",
		ResourceType: "changeset",
		ResourceID:   changesetID,
		Status:       status,
		Payload: map[string]any{
			"name":    result.Name,
			"status":  result.Status,
			"message": result.Message,
		},
	})
	if err != nil {
		e.logger.Error("assertion audit failed", "assertion", result.Name, "error", err)
	}
}
