// Package config loads and validates the suitepilot.yaml configuration
// file: the LLM provider, specialist agent overrides, external MCP
// connectors, coordinator limits, NetSuite account access, and the HTTP
// server surface.
package config

import (
	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/tools"
)

// NetSuite query modes.
const (
	ModeStub = "stub"
	ModeREST = "rest"
)

// CoordinatorConfig bounds one conversation turn.
type CoordinatorConfig struct {
	TokenBudget int `yaml:"token_budget"`
}

// NetSuiteConfig selects the query backend and carries tenant credentials.
// Credential blobs are AES-256-GCM encrypted with the key named by
// SecretKeyEnv; the stub mode needs neither.
type NetSuiteConfig struct {
	Mode         string            `yaml:"mode"`
	SecretKeyEnv string            `yaml:"secret_key_env"`
	Credentials  map[string]string `yaml:"credentials"`
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Port           string   `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Config is the loaded, validated application configuration. Agents holds
// the merged specialist set (built-in definitions with YAML overrides
// applied).
type Config struct {
	configDir string

	LLM         llm.ProviderConfig
	Agents      []agent.Config
	Connectors  []*tools.ConnectorConfig
	Coordinator CoordinatorConfig
	NetSuite    NetSuiteConfig
	Server      ServerConfig
}

// ConfigDir returns the directory configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Stats summarizes the loaded configuration for startup logging.
type Stats struct {
	Agents     int
	Connectors int
	Tenants    int
}

// Stats returns configuration counts.
func (c *Config) Stats() Stats {
	return Stats{
		Agents:     len(c.Agents),
		Connectors: len(c.Connectors),
		Tenants:    len(c.NetSuite.Credentials),
	}
}
