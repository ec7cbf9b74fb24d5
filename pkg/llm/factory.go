package llm

import (
	"context"
	"fmt"
)

// Provider families.
const (
	FamilyAnthropic = "anthropic"
	FamilyOpenAI    = "openai"
	FamilyGemini    = "gemini"
)

// ProviderConfig selects and parameterizes one provider family.
type ProviderConfig struct {
	Family       string  `yaml:"family"`
	APIKeyEnv    string  `yaml:"api_key_env"`
	APIKey       string  `yaml:"-"`
	BaseURL      string  `yaml:"base_url"`
	DefaultModel string  `yaml:"default_model"`
	CheapModel   string  `yaml:"cheap_model"`
	MaxTokens    int     `yaml:"max_tokens"`
	Temperature  float64 `yaml:"temperature"`
}

// Client bundles an adapter with its configured model identifiers so
// callers pick between the default and the cheap model without knowing the
// provider family.
type Client struct {
	Adapter      Adapter
	DefaultModel string
	CheapModel   string
	MaxTokens    int
	Temperature  float64
}

// NewClient constructs the adapter for the configured family.
func NewClient(ctx context.Context, cfg ProviderConfig) (*Client, error) {
	if cfg.DefaultModel == "" {
		return nil, fmt.Errorf("%w: default_model is required", ErrProviderInvalidRequest)
	}
	cheap := cfg.CheapModel
	if cheap == "" {
		cheap = cfg.DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	var (
		adapter Adapter
		err     error
	)
	switch cfg.Family {
	case FamilyAnthropic:
		adapter, err = NewAnthropicAdapter(cfg.APIKey, cfg.BaseURL)
	case FamilyOpenAI:
		adapter, err = NewOpenAIAdapter(cfg.APIKey, cfg.BaseURL)
	case FamilyGemini:
		adapter, err = NewGeminiAdapter(ctx, cfg.APIKey)
	default:
		return nil, fmt.Errorf("%w: unknown provider family %q", ErrProviderInvalidRequest, cfg.Family)
	}
	if err != nil {
		return nil, err
	}
	return &Client{
		Adapter:      adapter,
		DefaultModel: cfg.DefaultModel,
		CheapModel:   cheap,
		MaxTokens:    maxTokens,
		Temperature:  cfg.Temperature,
	}, nil
}
