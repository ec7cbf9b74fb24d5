// Package redact scrubs sensitive material from tool results, audit
// payloads, and sandbox artifacts before they are persisted or shown to
// an LLM.
package redact

import (
	"strings"
)

// Placeholder replaces every redacted value.
const Placeholder = "***REDACTED***"

// sensitiveKeys is the set of map keys whose values are always replaced,
// compared case-insensitively at any nesting depth.
var sensitiveKeys = map[string]struct{}{
	"password":    {},
	"secret":      {},
	"token":       {},
	"api_key":     {},
	"credentials": {},
}

// IsSensitiveKey reports whether a map key belongs to the sensitive set.
func IsSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// Value walks an arbitrary decoded-JSON value and replaces the value of
// every sensitive key with the placeholder. Maps are recursed, slices are
// walked element-wise, scalars pass through. The input is not mutated.
// Value is idempotent: Value(Value(x)) == Value(x).
func Value(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if IsSensitiveKey(k) {
				out[k] = Placeholder
				continue
			}
			out[k] = Value(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Value(val)
		}
		return out
	default:
		return v
	}
}

// Map is a convenience wrapper for map-shaped payloads (audit payloads,
// tool parameters). Returns nil for nil input.
func Map(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	return Value(m).(map[string]any)
}
