// Package agent runs specialist tool-calling loops. Each specialist is a
// small state machine over the LLM adapter: call with tools, execute the
// requested calls through policy and governance, feed results back, and
// stop on the first tools-less response.
package agent

import (
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
	"github.com/suiteops/suitepilot/pkg/policy"
	"github.com/suiteops/suitepilot/pkg/services"
	"github.com/suiteops/suitepilot/pkg/tools"
)

// DefaultMaxSteps bounds the loop when configuration does not.
const DefaultMaxSteps = 6

// Config parameterizes one specialist.
type Config struct {
	Name         string   `yaml:"name"`
	SystemPrompt string   `yaml:"system_prompt"`
	Tools        []string `yaml:"tools"`
	// Connectors names external MCP connectors whose tools this agent may
	// call under their namespaced names.
	Connectors    []string `yaml:"connectors"`
	MaxSteps      int      `yaml:"max_steps"`
	UseCheapModel bool     `yaml:"use_cheap_model"`
}

// Deps are the capabilities a specialist acts through. Specialists never
// touch persistent stores directly; everything goes through governed
// tools, with the workspace service used only to repair workspace IDs.
type Deps struct {
	Client     *llm.Client
	Registry   *tools.Registry
	Dispatcher *tools.Dispatcher
	Workspaces *services.WorkspaceService
}

// Specialist is one configured agent.
type Specialist struct {
	cfg  Config
	deps Deps
}

// New creates a specialist from its configuration.
func New(cfg Config, deps Deps) *Specialist {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	return &Specialist{cfg: cfg, deps: deps}
}

// Name returns the agent's configured name.
func (s *Specialist) Name() string {
	return s.cfg.Name
}

// Statuses of a specialist run.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Result is the outcome of one specialist run.
type Result struct {
	AgentName    string
	Status       string
	Text         string
	CallLog      []models.ToolCallRecord
	Usage        llm.TokenUsage
	ErrorMessage string
}

// Input is one dispatched task.
type Input struct {
	Task string
	// Context is extra prompt material (entity vernacular, prior agent
	// output) appended to the system prompt.
	Context string
	// Policy is the active tenant policy snapshot for this turn.
	Policy *policy.Snapshot
	// Observer, when set, receives each tool-call record as it completes.
	Observer func(models.ToolCallRecord)
}
