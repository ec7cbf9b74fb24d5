package governance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the governance and run counters.
type Metrics struct {
	// RateLimitDenials counts denied tool calls by tenant and tool.
	RateLimitDenials *prometheus.CounterVec
	// ToolCalls counts governed tool calls by tool and terminal outcome
	// (executed, failed, denied).
	ToolCalls *prometheus.CounterVec
	// RunOutcomes counts sandbox run terminations by run type and status.
	RunOutcomes *prometheus.CounterVec
}

// NewMetrics registers the counters on the given registerer. A nil
// registerer uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		RateLimitDenials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "suitepilot_tool_rate_limit_denials_total",
			Help: "Tool calls denied by the per-tenant sliding-window rate limiter.",
		}, []string{"tenant", "tool"}),
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "suitepilot_tool_calls_total",
			Help: "Governed tool calls by terminal outcome.",
		}, []string{"tool", "outcome"}),
		RunOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "suitepilot_run_outcomes_total",
			Help: "Sandbox run terminations by run type and status.",
		}, []string{"run_type", "status"}),
	}
}
