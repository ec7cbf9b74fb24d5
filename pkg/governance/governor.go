package governance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/suiteops/suitepilot/ent/auditevent"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/redact"
	"github.com/suiteops/suitepilot/pkg/services"
	"github.com/suiteops/suitepilot/pkg/tools"
)

const auditCategory = "tool"

// Governor wraps every local tool call with rate limiting, parameter
// validation, auditing, and redaction. It implements tools.Governor.
type Governor struct {
	limiter *RateLimiter
	audit   *services.AuditService
	metrics *Metrics
	logger  *slog.Logger
}

var _ tools.Governor = (*Governor)(nil)

// NewGovernor creates a governor.
func NewGovernor(limiter *RateLimiter, audit *services.AuditService, metrics *Metrics) *Governor {
	return &Governor{
		limiter: limiter,
		audit:   audit,
		metrics: metrics,
		logger:  slog.Default(),
	}
}

// Execute governs one tool call. The rate decision precedes parameter
// validation; audits are written in order requested, then exactly one of
// denied, failed, or executed. The result is always a usable payload.
func (g *Governor) Execute(ctx context.Context, identity models.Identity, desc *tools.Descriptor, params map[string]any) map[string]any {
	if !g.limiter.Allow(identity.TenantID, desc.Name, desc.RatePerMinute) {
		g.metrics.RateLimitDenials.WithLabelValues(identity.TenantID, desc.Name).Inc()
		g.metrics.ToolCalls.WithLabelValues(desc.Name, "denied").Inc()
		g.appendAudit(ctx, identity, services.AuditEntry{
			Category:     auditCategory,
			Action:       "tool.rate_limited",
			ResourceType: "tool",
			ResourceID:   desc.Name,
			Status:       auditevent.StatusDenied,
		})
		return map[string]any{"error": "Rate limit exceeded"}
	}

	validated := g.validateParams(desc, params)

	g.appendAudit(ctx, identity, services.AuditEntry{
		Category:     auditCategory,
		Action:       "tool.requested",
		ResourceType: "tool",
		ResourceID:   desc.Name,
		Status:       auditevent.StatusPending,
		Payload:      validated,
	})

	result, err := g.invoke(ctx, identity, desc, validated)
	if err != nil {
		g.metrics.ToolCalls.WithLabelValues(desc.Name, "failed").Inc()
		g.appendAudit(ctx, identity, services.AuditEntry{
			Category:     auditCategory,
			Action:       "tool.failed",
			ResourceType: "tool",
			ResourceID:   desc.Name,
			Status:       auditevent.StatusError,
			ErrorMessage: err.Error(),
		})
		return map[string]any{"error": err.Error()}
	}

	redacted := redact.Map(result)

	g.metrics.ToolCalls.WithLabelValues(desc.Name, "executed").Inc()
	g.appendAudit(ctx, identity, services.AuditEntry{
		Category:     auditCategory,
		Action:       "tool.executed",
		ResourceType: "tool",
		ResourceID:   desc.Name,
		Status:       auditevent.StatusSuccess,
		Payload:      map[string]any{"result_keys": resultKeys(redacted)},
	})
	return redacted
}

// validateParams drops arguments outside the tool's allowlist and applies
// the limit default and cap.
func (g *Governor) validateParams(desc *tools.Descriptor, params map[string]any) map[string]any {
	validated := make(map[string]any, len(params))
	for key, value := range params {
		if desc.AllowsParam(key) {
			validated[key] = value
		}
	}
	if desc.DefaultLimit > 0 && desc.AllowsParam("limit") {
		limit := intValue(validated["limit"])
		if limit <= 0 {
			limit = desc.DefaultLimit
		}
		if desc.MaxLimit > 0 && limit > desc.MaxLimit {
			limit = desc.MaxLimit
		}
		validated["limit"] = limit
	}
	return validated
}

// invoke runs the handler under the descriptor's timeout, converting a
// panic into an error so no tool can unwind the loop.
func (g *Governor) invoke(ctx context.Context, identity models.Identity, desc *tools.Descriptor, params map[string]any) (result map[string]any, err error) {
	if desc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, desc.Timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("tool handler panicked", "tool", desc.Name, "panic", r)
			err = fmt.Errorf("tool %s panicked: %v", desc.Name, r)
		}
	}()
	return desc.Handler(ctx, identity, params)
}

// appendAudit writes one event; failures are logged, never propagated, so
// an audit store hiccup cannot break a tool call mid-flight.
func (g *Governor) appendAudit(ctx context.Context, identity models.Identity, entry services.AuditEntry) {
	if _, err := g.audit.Append(ctx, identity, entry); err != nil {
		g.logger.Error("failed to append audit event",
			"action", entry.Action, "tool", entry.ResourceID, "error", err)
	}
}

func resultKeys(result map[string]any) []string {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
