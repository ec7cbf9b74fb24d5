package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/models"
)

// Governor applies rate limiting, parameter validation, auditing, and
// redaction around a local tool call. Implemented by the governance
// engine; the returned map is always a usable tool result.
type Governor interface {
	Execute(ctx context.Context, identity models.Identity, desc *Descriptor, params map[string]any) map[string]any
}

// Dispatcher routes an advertised tool name to a local handler or a remote
// connector. It never returns a Go error: every failure becomes a
// structured error payload so the agent loop continues deterministically.
type Dispatcher struct {
	registry *Registry
	governor Governor
	remotes  *RemoteClient
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(registry *Registry, governor Governor, remotes *RemoteClient) *Dispatcher {
	return &Dispatcher{registry: registry, governor: governor, remotes: remotes}
}

// Execute dispatches one tool call by its sanitized name.
func (d *Dispatcher) Execute(ctx context.Context, identity models.Identity, name string, params map[string]any) map[string]any {
	if connectorID, toolName, ok := ParseExternalName(name); ok {
		return d.executeExternal(ctx, connectorID, toolName, params)
	}

	desc, ok := d.registry.LookupSanitized(name)
	if !ok {
		return map[string]any{"error": fmt.Sprintf("Tool '%s' is not allowed in chat.", name)}
	}
	return d.governor.Execute(ctx, identity, desc, params)
}

// ExternalDefinitions advertises the tools of the named connectors under
// their namespaced external names. Connectors that cannot be reached are
// skipped; advertising is best-effort.
func (d *Dispatcher) ExternalDefinitions(ctx context.Context, connectorIDs []string) []llm.ToolDefinition {
	var defs []llm.ToolDefinition
	for _, id := range connectorIDs {
		cfg, ok := d.remotes.Connector(id)
		if !ok || !cfg.Enabled {
			continue
		}
		remoteTools, err := d.remotes.ListTools(ctx, id)
		if err != nil {
			slog.Warn("connector tool listing failed", "connector", id, "error", err)
			continue
		}
		for _, t := range remoteTools {
			name, err := ExternalName(id, t.Name)
			if err != nil {
				slog.Warn("connector tool name rejected", "connector", id, "tool", t.Name, "error", err)
				continue
			}
			defs = append(defs, llm.ToolDefinition{
				Name:        name,
				Description: t.Description,
				InputSchema: schemaToMap(t.InputSchema),
			})
		}
	}
	return defs
}

// schemaToMap round-trips an MCP JSON schema through encoding/json into the
// neutral map shape the adapters consume.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return map[string]any{"type": "object"}
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil || out == nil {
		return map[string]any{"type": "object"}
	}
	return out
}

func (d *Dispatcher) executeExternal(ctx context.Context, connectorID, toolName string, params map[string]any) map[string]any {
	cfg, ok := d.remotes.Connector(connectorID)
	if !ok {
		return map[string]any{"error": fmt.Sprintf("Unknown connector '%s'.", connectorID)}
	}
	if !cfg.Enabled {
		return map[string]any{"error": fmt.Sprintf("Connector '%s' is disabled.", cfg.Name)}
	}
	content, err := d.remotes.CallTool(ctx, connectorID, toolName, params)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	return map[string]any{"content": content}
}
