package config

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"github.com/suiteops/suitepilot/pkg/llm"
	"github.com/suiteops/suitepilot/pkg/tools"
)

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	if err := validateLLM(cfg.LLM); err != nil {
		return err
	}
	if err := validateAgents(cfg); err != nil {
		return err
	}
	if err := validateConnectors(cfg.Connectors); err != nil {
		return err
	}
	return validateNetSuite(cfg.NetSuite)
}

func validateLLM(cfg llm.ProviderConfig) error {
	switch cfg.Family {
	case llm.FamilyAnthropic, llm.FamilyOpenAI, llm.FamilyGemini:
	default:
		return NewValidationError("llm", cfg.Family, "family",
			fmt.Errorf("%w: must be one of anthropic, openai, gemini", ErrInvalidValue))
	}
	if cfg.DefaultModel == "" {
		return NewValidationError("llm", cfg.Family, "default_model", ErrMissingRequiredField)
	}
	return nil
}

func validateAgents(cfg *Config) error {
	connectorIDs := make(map[string]bool, len(cfg.Connectors))
	for _, c := range cfg.Connectors {
		connectorIDs[c.ID] = true
	}

	seen := make(map[string]bool, len(cfg.Agents))
	for _, a := range cfg.Agents {
		if a.Name == "" {
			return NewValidationError("agent", a.Name, "name", ErrMissingRequiredField)
		}
		if seen[a.Name] {
			return NewValidationError("agent", a.Name, "",
				fmt.Errorf("%w: duplicate agent name", ErrInvalidValue))
		}
		seen[a.Name] = true
		if a.MaxSteps < 0 {
			return NewValidationError("agent", a.Name, "max_steps",
				fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}
		// Unknown connectors are tolerated: the dispatcher skips
		// unreachable connectors at call time, and the built-in rag agent
		// references connectors a deployment may not configure.
		for _, id := range a.Connectors {
			if !connectorIDs[id] {
				slog.Warn("agent references unconfigured connector", "agent", a.Name, "connector", id)
			}
		}
	}
	return nil
}

func validateConnectors(connectors []*tools.ConnectorConfig) error {
	seen := make(map[string]bool, len(connectors))
	for _, c := range connectors {
		if c.ID == "" {
			return NewValidationError("connector", c.Name, "id", ErrMissingRequiredField)
		}
		if seen[c.ID] {
			return NewValidationError("connector", c.ID, "",
				fmt.Errorf("%w: duplicate connector id", ErrInvalidValue))
		}
		seen[c.ID] = true
		switch c.Transport.Type {
		case tools.TransportStdio:
			if c.Transport.Command == "" {
				return NewValidationError("connector", c.ID, "transport.command", ErrMissingRequiredField)
			}
		case tools.TransportHTTP:
			if c.Transport.URL == "" {
				return NewValidationError("connector", c.ID, "transport.url", ErrMissingRequiredField)
			}
		default:
			return NewValidationError("connector", c.ID, "transport.type",
				fmt.Errorf("%w: must be stdio or http", ErrInvalidValue))
		}
	}
	return nil
}

func validateNetSuite(cfg NetSuiteConfig) error {
	switch cfg.Mode {
	case ModeStub:
		return nil
	case ModeREST:
	default:
		return NewValidationError("netsuite", cfg.Mode, "mode",
			fmt.Errorf("%w: must be stub or rest", ErrInvalidValue))
	}

	if cfg.SecretKeyEnv == "" {
		return NewValidationError("netsuite", cfg.Mode, "secret_key_env", ErrMissingRequiredField)
	}
	key := os.Getenv(cfg.SecretKeyEnv)
	if key == "" {
		return NewValidationError("netsuite", cfg.Mode, "secret_key_env",
			fmt.Errorf("%w: environment variable %s is empty", ErrInvalidValue, cfg.SecretKeyEnv))
	}
	if len(cfg.Credentials) == 0 {
		return NewValidationError("netsuite", cfg.Mode, "credentials", ErrMissingRequiredField)
	}
	for tenant, blob := range cfg.Credentials {
		if _, err := base64.StdEncoding.DecodeString(blob); err != nil {
			return NewValidationError("netsuite", tenant, "credentials",
				fmt.Errorf("%w: blob is not valid base64", ErrInvalidValue))
		}
	}
	return nil
}

// SecretKey decodes the NetSuite credential key from the environment. The
// key is hex or raw base64, 32 bytes after decoding.
func (c *Config) SecretKey() ([]byte, error) {
	raw := os.Getenv(c.NetSuite.SecretKeyEnv)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, c.NetSuite.SecretKeyEnv)
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("secret key in %s is not valid base64: %w", c.NetSuite.SecretKeyEnv, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("secret key in %s must decode to 32 bytes, got %d", c.NetSuite.SecretKeyEnv, len(key))
	}
	return key, nil
}
