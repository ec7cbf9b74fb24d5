package redact

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ReplacesSensitiveKeysAtAnyDepth(t *testing.T) {
	in := map[string]any{
		"user": "alice",
		"Password": "hunter2",
		"nested": map[string]any{
			"API_KEY": "sk-123",
			"list": []any{
				map[string]any{"token": "abc", "safe": 1},
			},
		},
	}
	out := Value(in).(map[string]any)

	assert.Equal(t, "alice", out["user"])
	assert.Equal(t, Placeholder, out["Password"])
	nested := out["nested"].(map[string]any)
	assert.Equal(t, Placeholder, nested["API_KEY"])
	item := nested["list"].([]any)[0].(map[string]any)
	assert.Equal(t, Placeholder, item["token"])
	assert.Equal(t, 1, item["safe"])

	// Input is not mutated
	assert.Equal(t, "hunter2", in["Password"])
}

func TestValue_Idempotent(t *testing.T) {
	in := map[string]any{"secret": "s", "data": []any{map[string]any{"credentials": "c"}}}
	once := Value(in)
	twice := Value(once)
	assert.Equal(t, once, twice)
}

func TestMap_Nil(t *testing.T) {
	assert.Nil(t, Map(nil))
}

func TestStream_RedactsCredentialShapes(t *testing.T) {
	in := []byte("Authorization: Bearer eyJhbGciOi.abc\nretrying with api_key=sk-live-42\nplain output line\n")
	out := Stream(in)

	s := string(out)
	assert.NotContains(t, s, "eyJhbGciOi")
	assert.NotContains(t, s, "sk-live-42")
	assert.Contains(t, s, "plain output line")
	assert.Contains(t, s, Placeholder)
}

func TestStream_Idempotent(t *testing.T) {
	in := []byte("token: abc123")
	once := Stream(in)
	twice := Stream(once)
	assert.Equal(t, once, twice)
}

func TestCap_Boundary(t *testing.T) {
	exact := bytes.Repeat([]byte("x"), MaxArtifactBytes)
	out, truncated := Cap(exact)
	assert.False(t, truncated)
	assert.Len(t, out, MaxArtifactBytes)

	over := append(exact, 'y')
	out, truncated = Cap(over)
	require.True(t, truncated)
	assert.True(t, strings.HasSuffix(string(out), TruncationMarker))
	assert.Len(t, out, MaxArtifactBytes+len(TruncationMarker))
}
