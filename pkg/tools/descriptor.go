package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
)

// Handler executes one local tool call. Returned errors are converted to
// structured error payloads at the governance boundary; handlers never
// panic on bad input.
type Handler func(ctx context.Context, identity models.Identity, params map[string]any) (map[string]any, error)

// Descriptor is one local tool's catalog entry: its canonical dotted name,
// the governed parameter surface, timing, and rate budget.
type Descriptor struct {
	Name           string
	Description    string
	Params         []string
	InputSchema    map[string]any
	Timeout        time.Duration
	RatePerMinute  int
	DefaultLimit   int // injected when the tool accepts "limit" and none is given
	MaxLimit       int
	NeedsWorkspace bool // workspace_id is repaired by the agent loop when absent
	Handler        Handler
}

// AllowsParam reports whether key is in the tool's parameter allowlist.
func (d *Descriptor) AllowsParam(key string) bool {
	for _, p := range d.Params {
		if p == key {
			return true
		}
	}
	return false
}

// Definition renders the descriptor as a provider-neutral tool definition
// under its sanitized name.
func (d *Descriptor) Definition() llm.ToolDefinition {
	schema := d.InputSchema
	if schema == nil {
		schema = objectSchema(nil, nil)
	}
	return llm.ToolDefinition{
		Name:        Sanitize(d.Name),
		Description: d.Description,
		InputSchema: schema,
	}
}

// objectSchema builds a JSON schema object from property name to schema pairs.
func objectSchema(props map[string]any, required []string) map[string]any {
	if props == nil {
		props = map[string]any{}
	}
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func intProp(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolProp(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func arrayProp(desc string, items map[string]any) map[string]any {
	return map[string]any{"type": "array", "description": desc, "items": items}
}

// Param accessors shared by handlers. Missing or mistyped values fall back
// to zero values; required-ness is enforced per handler.

func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]any, key string) int {
	switch v := params[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func boolParam(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

func requireString(params map[string]any, key string) (string, error) {
	v := stringParam(params, key)
	if v == "" {
		return "", fmt.Errorf("parameter %q is required", key)
	}
	return v, nil
}
