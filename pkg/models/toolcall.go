package models

import "time"

// ToolCallRecord is one entry in the per-turn tool-call log. The coordinator
// attaches the full log to the terminal message event.
type ToolCallRecord struct {
	Step     int            `json:"step"`
	Agent    string         `json:"agent"`
	Tool     string         `json:"tool"`
	Params   map[string]any `json:"params,omitempty"`
	Summary  string         `json:"summary,omitempty"`
	Outcome  string         `json:"outcome"` // success | error | denied
	Duration time.Duration  `json:"duration_ms"`
}

// AgentOutcome summarizes one specialist dispatch for synthesis.
type AgentOutcome struct {
	Agent    string
	Task     string
	Answer   string
	Failed   bool
	ErrorMsg string
	Calls    []ToolCallRecord
}
