package config

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suitepilot.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitialize_MissingFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "llm: [not: valid")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfig(t, `
llm:
  default_model: claude-sonnet-4-5
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, llm.FamilyAnthropic, cfg.LLM.Family)
	assert.Equal(t, "claude-sonnet-4-5", cfg.LLM.DefaultModel)
	assert.Equal(t, ModeStub, cfg.NetSuite.Mode)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Positive(t, cfg.Coordinator.TokenBudget)

	// Built-in specialists are present without any agents section
	names := make(map[string]bool)
	for _, a := range cfg.Agents {
		names[a.Name] = true
	}
	assert.True(t, names[agent.AgentSuiteQL])
	assert.True(t, names[agent.AgentRAG])
	assert.True(t, names[agent.AgentWorkspaceDev])
	assert.True(t, names[agent.AgentAnalysis])
}

func TestInitialize_AgentOverride(t *testing.T) {
	dir := writeConfig(t, `
llm:
  default_model: claude-sonnet-4-5
agents:
  - name: suiteql
    max_steps: 9
coordinator:
  token_budget: 2048
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2048, cfg.Coordinator.TokenBudget)
	for _, a := range cfg.Agents {
		if a.Name == agent.AgentSuiteQL {
			assert.Equal(t, 9, a.MaxSteps)
			assert.NotEmpty(t, a.SystemPrompt, "override keeps the built-in prompt")
			return
		}
	}
	t.Fatal("suiteql agent missing from merged set")
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_SUITEPILOT_MODEL", "gpt-5")
	dir := writeConfig(t, `
llm:
  family: openai
  api_key_env: TEST_SUITEPILOT_KEY
  default_model: "{{.TEST_SUITEPILOT_MODEL}}"
`)
	t.Setenv("TEST_SUITEPILOT_KEY", "sk-test")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "gpt-5", cfg.LLM.DefaultModel)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestInitialize_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "unknown llm family",
			content: `
llm:
  family: cohere
  default_model: command
`,
		},
		{
			name: "connector without url",
			content: `
llm:
  default_model: claude-sonnet-4-5
connectors:
  - id: kb
    enabled: true
    transport:
      type: http
`,
		},
		{
			name: "rest mode without secret key env",
			content: `
llm:
  default_model: claude-sonnet-4-5
netsuite:
  mode: rest
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)
			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)

			var verr *ValidationError
			assert.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
		})
	}
}

func TestInitialize_RESTMode(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	t.Setenv("TEST_SUITEPILOT_SECRET", key)

	blob := base64.StdEncoding.EncodeToString([]byte("opaque"))
	dir := writeConfig(t, `
llm:
  default_model: claude-sonnet-4-5
netsuite:
  mode: rest
  secret_key_env: TEST_SUITEPILOT_SECRET
  credentials:
    tenant-a: `+blob+`
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ModeREST, cfg.NetSuite.Mode)
	decoded, err := cfg.SecretKey()
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestExpandEnv_PreservesLiteralDollar(t *testing.T) {
	t.Setenv("TEST_EXPAND_VAR", "value")
	out := ExpandEnv([]byte(`pattern: "^secret.*$"` + "\nkey: {{.TEST_EXPAND_VAR}}\n"))
	assert.Contains(t, string(out), `^secret.*$`)
	assert.Contains(t, string(out), "key: value")
}

func TestExpandEnv_MissingVariableExpandsEmpty(t *testing.T) {
	out := ExpandEnv([]byte("key: {{.DEFINITELY_NOT_SET_ANYWHERE_12345}}\n"))
	assert.Equal(t, "key: \n", string(out))
}
