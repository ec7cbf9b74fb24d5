package assertions

import (
	"context"
	"log/slog"
	"strings"

	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/ent/run"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/services"
)

// Gate evaluates whether a changeset may be deployed to the sandbox.
// Validation and unit-test prerequisites are never waivable; the
// assertion prerequisite can be overridden with a stated reason.
type Gate struct {
	runs   *services.RunService
	audit  *services.AuditService
	logger *slog.Logger
}

// NewGate creates a deploy gate.
func NewGate(runs *services.RunService, audit *services.AuditService) *Gate {
	return &Gate{runs: runs, audit: audit, logger: slog.Default()}
}

// Evaluate checks the deploy prerequisites for a changeset. The verdict
// map is the tool payload; allowed mirrors its "allowed" field.
func (g *Gate) Evaluate(ctx context.Context, identity models.Identity, changesetID, overrideReason string, requireAssertions bool) (map[string]any, bool, error) {
	override := map[string]any{"applied": false}

	blocked := func(reason string) (map[string]any, bool, error) {
		return map[string]any{
			"allowed":        false,
			"blocked_reason": reason,
			"override":       override,
		}, false, nil
	}

	passed, err := g.runs.HasPassedRun(ctx, identity, changesetID, run.RunTypeSdfValidate)
	if err != nil {
		return nil, false, err
	}
	if !passed {
		return blocked("no passing sdf_validate run for this changeset")
	}

	passed, err = g.runs.HasPassedRun(ctx, identity, changesetID, run.RunTypeJestUnitTest)
	if err != nil {
		return nil, false, err
	}
	if !passed {
		return blocked("no passing jest_unit_test run for this changeset")
	}

	if requireAssertions {
		passed, err = g.runs.HasPassedRun(ctx, identity, changesetID, run.RunTypeSuiteqlAssertions)
		if err != nil {
			return nil, false, err
		}
		if !passed {
			reason := strings.TrimSpace(overrideReason)
			if reason == "" {
				return blocked("no passing suiteql_assertions run for this changeset")
			}
			override["applied"] = true
			override["reason"] = reason
			g.auditOverride(ctx, identity, changesetID, reason)
		}
	}

	return map[string]any{"allowed": true, "override": override}, true, nil
}

func (g *Gate) auditOverride(ctx context.Context, identity models.Identity, changesetID, reason string) {
	_, err := g.audit.Append(ctx, identity, services.AuditEntry{
		Category:     "deploy",
		Action:       "deploy.gate_override",
		ResourceType: "changeset",
		ResourceID:   changesetID,
		Status:       auditevent.StatusSuccess,
		Payload:      map[string]any{"reason": reason},
	})
	if err != nil {
		g.logger.Error("gate override audit failed", "changeset_id", changesetID, "error", err)
	}
}
