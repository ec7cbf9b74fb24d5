// Package tools holds the local tool catalog, the sanitized-name mapping
// the LLM sees, and the dispatcher that routes calls to local handlers or
// remote MCP connectors.
package tools

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MaxSanitizedNameLen is the provider-imposed cap on tool names.
const MaxSanitizedNameLen = 64

const externalPrefix = "ext__"

// Sanitize maps a dotted canonical name to the underscore form advertised
// to the model. The mapping back to canonical names lives in the registry,
// which rejects collisions at registration time.
func Sanitize(canonical string) string {
	return strings.ReplaceAll(canonical, ".", "_")
}

// ExternalName builds the advertised name for a remote connector tool:
// ext__<connector-id-hex>__<sanitized-tool>. The tool segment is truncated
// so the whole name never exceeds MaxSanitizedNameLen bytes. A connector ID
// so long that no tool bytes fit is rejected.
func ExternalName(connectorID, toolName string) (string, error) {
	prefix := externalPrefix + hex.EncodeToString([]byte(connectorID)) + "__"
	budget := MaxSanitizedNameLen - len(prefix)
	if budget < 1 {
		return "", fmt.Errorf("connector ID %q leaves no room for a tool name", connectorID)
	}
	tool := Sanitize(toolName)
	if len(tool) > budget {
		tool = tool[:budget]
	}
	return prefix + tool, nil
}

// ParseExternalName decodes an advertised external name back into its
// connector ID and (possibly truncated) tool name. ok is false for local
// names and for malformed external forms.
func ParseExternalName(name string) (connectorID, toolName string, ok bool) {
	if !strings.HasPrefix(name, externalPrefix) {
		return "", "", false
	}
	rest := name[len(externalPrefix):]
	idx := strings.Index(rest, "__")
	if idx <= 0 {
		return "", "", false
	}
	raw, err := hex.DecodeString(rest[:idx])
	if err != nil {
		return "", "", false
	}
	return string(raw), rest[idx+2:], true
}
