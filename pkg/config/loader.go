package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/suiteops/suitepilot/pkg/agent"
	"github.com/suiteops/suitepilot/pkg/coordinator"
	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/tools"
)

// suitepilotYAML is the complete suitepilot.yaml file structure.
type suitepilotYAML struct {
	LLM         *llm.ProviderConfig      `yaml:"llm"`
	Agents      []agent.Config           `yaml:"agents"`
	Connectors  []*tools.ConnectorConfig `yaml:"connectors"`
	Coordinator *CoordinatorConfig       `yaml:"coordinator"`
	NetSuite    *NetSuiteConfig          `yaml:"netsuite"`
	Server      *ServerConfig            `yaml:"server"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read suitepilot.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in specialist definitions with YAML overrides
//  5. Apply default values
//  6. Validate all configuration
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"connectors", stats.Connectors,
		"tenants", stats.Tenants)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	raw, err := loadYAML(configDir, "suitepilot.yaml")
	if err != nil {
		return nil, NewLoadError("suitepilot.yaml", err)
	}

	cfg := &Config{
		configDir: configDir,
		Agents:    agent.MergeConfigs(raw.Agents),
	}

	// LLM provider, with defaults merged under the user's values
	llmCfg := defaultLLMConfig()
	if raw.LLM != nil {
		if err := mergo.Merge(&llmCfg, raw.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}
	if llmCfg.APIKeyEnv != "" {
		llmCfg.APIKey = os.Getenv(llmCfg.APIKeyEnv)
	}
	cfg.LLM = llmCfg

	cfg.Connectors = raw.Connectors

	cfg.Coordinator = CoordinatorConfig{TokenBudget: coordinator.DefaultTokenBudget}
	if raw.Coordinator != nil && raw.Coordinator.TokenBudget > 0 {
		cfg.Coordinator.TokenBudget = raw.Coordinator.TokenBudget
	}

	cfg.NetSuite = NetSuiteConfig{Mode: ModeStub}
	if raw.NetSuite != nil {
		if err := mergo.Merge(&cfg.NetSuite, raw.NetSuite, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge netsuite config: %w", err)
		}
	}

	cfg.Server = ServerConfig{Port: "8080"}
	if raw.Server != nil {
		if err := mergo.Merge(&cfg.Server, raw.Server, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge server config: %w", err)
		}
	}

	return cfg, nil
}

func defaultLLMConfig() llm.ProviderConfig {
	return llm.ProviderConfig{
		Family:       llm.FamilyAnthropic,
		APIKeyEnv:    "ANTHROPIC_API_KEY",
		DefaultModel: "claude-sonnet-4-5",
		CheapModel:   "claude-haiku-4-5",
		MaxTokens:    4096,
	}
}

func loadYAML(configDir, filename string) (*suitepilotYAML, error) {
	path := filepath.Join(configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes the original data through on template errors so the
	// YAML parser reports them with a clearer message.
	data = ExpandEnv(data)

	var raw suitepilotYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return &raw, nil
}
