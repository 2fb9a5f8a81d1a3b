package translate

import (
	"fmt"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

// Config selects and configures a backend.
type Config struct {
	Backend        string
	GoogleEndpoint string
	// AI configures the chat model for the openai, anthropic and compatible
	// backends. AI.Provider is overwritten with Backend.
	AI ai.Config
}

// New builds the configured Translator.
func New(cfg Config, clients *network.ClientFactory, langs LanguageSet, rateLimiter *ai.RateLimiter) (Translator, error) {
	switch cfg.Backend {
	case "", BackendGoogle:
		return NewGoogleTranslator(clients.Fetcher(), cfg.GoogleEndpoint, langs, rateLimiter), nil
	case BackendOpenAI, BackendAnthropic, BackendCompatible:
		aiCfg := cfg.AI
		aiCfg.Provider = cfg.Backend
		provider, err := ai.NewProvider(aiCfg)
		if err != nil {
			return nil, fmt.Errorf("create %s provider: %w", cfg.Backend, err)
		}
		return NewLLMTranslator(provider, langs, rateLimiter), nil
	default:
		return nil, fmt.Errorf("unknown translation backend %q", cfg.Backend)
	}
}
