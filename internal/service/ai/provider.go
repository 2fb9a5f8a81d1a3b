package ai

import (
	"context"
	"errors"
	"net/http"
)

// Provider is a chat model used as a translation backend.
type Provider interface {
	Name() string
	// Complete runs one system+user exchange and returns the text reply.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai and anthropic, required for compatible
	Model    string
	// HTTPClient carries the outbound proxy and timeout. Nil uses the SDK default.
	HTTPClient *http.Client
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrInvalidProvider = errors.New("invalid provider")
	ErrMissingAPIKey   = errors.New("API key is required")
	ErrMissingBaseURL  = errors.New("base URL is required for compatible provider")
	ErrMissingModel    = errors.New("model is required")
)

// NewProvider creates a new AI provider based on the config. Providers make
// exactly one attempt per call.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return newOpenAIProvider(cfg), nil
	case ProviderAnthropic:
		return newAnthropicProvider(cfg), nil
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return newCompatibleProvider(cfg), nil
	default:
		return nil, ErrInvalidProvider
	}
}
