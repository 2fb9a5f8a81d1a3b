package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/config"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/repository"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate"
)

// ProviderSettings selects the translation and speech backends and holds
// their credentials.
type ProviderSettings struct {
	Translator  string `json:"translator"`
	Recognizer  string `json:"recognizer"`
	Synthesizer string `json:"synthesizer"`

	OpenAIKey     string `json:"openaiApiKey"`
	OpenAIBaseURL string `json:"openaiBaseUrl"`
	OpenAIModel   string `json:"openaiModel"`

	AnthropicKey   string `json:"anthropicApiKey"`
	AnthropicModel string `json:"anthropicModel"`

	CompatibleKey     string `json:"compatibleApiKey"`
	CompatibleBaseURL string `json:"compatibleBaseUrl"`
	CompatibleModel   string `json:"compatibleModel"`

	DeepgramKey     string `json:"deepgramApiKey"`
	ElevenLabsKey   string `json:"elevenlabsApiKey"`
	ElevenLabsVoice string `json:"elevenlabsVoiceId"`

	ProxyURL  string `json:"proxyUrl"`
	RateLimit int    `json:"rateLimit"`
}

// Setting keys
const (
	keyTranslator        = "provider.translator"
	keyRecognizer        = "provider.recognizer"
	keySynthesizer       = "provider.synthesizer"
	keyOpenAIKey         = "openai.api_key"
	keyOpenAIBaseURL     = "openai.base_url"
	keyOpenAIModel       = "openai.model"
	keyAnthropicKey      = "anthropic.api_key"
	keyAnthropicModel    = "anthropic.model"
	keyCompatibleKey     = "compatible.api_key"
	keyCompatibleBaseURL = "compatible.base_url"
	keyCompatibleModel   = "compatible.model"
	keyDeepgramKey       = "deepgram.api_key"
	keyElevenLabsKey     = "elevenlabs.api_key"
	keyElevenLabsVoice   = "elevenlabs.voice_id"
	keyProxyURL          = "network.proxy_url"
	keyRateLimit         = "network.rate_limit"
)

var (
	translatorBackends  = []string{translate.BackendGoogle, translate.BackendOpenAI, translate.BackendAnthropic, translate.BackendCompatible}
	recognizerBackends  = []string{speech.BackendDeepgram, speech.BackendOpenAI}
	synthesizerBackends = []string{speech.BackendGoogle, speech.BackendOpenAI, speech.BackendElevenLabs}
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service.go -package=mock

// SettingsService provides settings management.
type SettingsService interface {
	// GetProviderSettings returns the provider configuration with masked API keys.
	GetProviderSettings(ctx context.Context) (*ProviderSettings, error)
	// ResolveProviderSettings returns the effective configuration with real keys.
	ResolveProviderSettings(ctx context.Context) (*ProviderSettings, error)
	// SetProviderSettings updates the provider configuration.
	// Empty or masked API keys keep the stored key.
	SetProviderSettings(ctx context.Context, settings *ProviderSettings) error
	// TestTranslator runs a one-word translation with the given configuration.
	TestTranslator(ctx context.Context, settings *ProviderSettings) (string, error)
	// GetProxyURL returns the outbound proxy, if any.
	GetProxyURL(ctx context.Context) string
}

type settingsService struct {
	repo        repository.SettingsRepository
	defaults    config.ProviderDefaults
	rateLimit   int
	rateLimiter *ai.RateLimiter
}

// NewSettingsService creates a new settings service. Values in defaults are
// used until a setting is stored.
func NewSettingsService(repo repository.SettingsRepository, defaults config.ProviderDefaults, rateLimit int, rateLimiter *ai.RateLimiter) SettingsService {
	return &settingsService{repo: repo, defaults: defaults, rateLimit: rateLimit, rateLimiter: rateLimiter}
}

// GetProviderSettings returns the provider configuration with masked API keys.
func (s *settingsService) GetProviderSettings(ctx context.Context) (*ProviderSettings, error) {
	settings, err := s.ResolveProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings.OpenAIKey = maskAPIKey(settings.OpenAIKey)
	settings.AnthropicKey = maskAPIKey(settings.AnthropicKey)
	settings.CompatibleKey = maskAPIKey(settings.CompatibleKey)
	settings.DeepgramKey = maskAPIKey(settings.DeepgramKey)
	settings.ElevenLabsKey = maskAPIKey(settings.ElevenLabsKey)
	return settings, nil
}

// ResolveProviderSettings merges stored settings over the configured defaults.
func (s *settingsService) ResolveProviderSettings(ctx context.Context) (*ProviderSettings, error) {
	d := s.defaults
	settings := &ProviderSettings{
		Translator:      d.Translator,
		Recognizer:      d.Recognizer,
		Synthesizer:     d.Synthesizer,
		OpenAIKey:       d.OpenAIKey,
		OpenAIBaseURL:   d.OpenAIBaseURL,
		OpenAIModel:     d.OpenAIModel,
		AnthropicKey:    d.AnthropicKey,
		AnthropicModel:  d.AnthropicModel,
		DeepgramKey:     d.DeepgramKey,
		ElevenLabsKey:   d.ElevenLabsKey,
		ElevenLabsVoice: d.ElevenLabsVoice,
		RateLimit:       s.rateLimit,
	}

	stored, err := s.repo.GetByPrefix(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	values := make(map[string]string, len(stored))
	for _, st := range stored {
		values[st.Key] = st.Value
	}

	overlay := func(key string, dst *string) {
		if v, ok := values[key]; ok && v != "" {
			*dst = v
		}
	}
	overlay(keyTranslator, &settings.Translator)
	overlay(keyRecognizer, &settings.Recognizer)
	overlay(keySynthesizer, &settings.Synthesizer)
	overlay(keyOpenAIKey, &settings.OpenAIKey)
	overlay(keyOpenAIBaseURL, &settings.OpenAIBaseURL)
	overlay(keyOpenAIModel, &settings.OpenAIModel)
	overlay(keyAnthropicKey, &settings.AnthropicKey)
	overlay(keyAnthropicModel, &settings.AnthropicModel)
	overlay(keyCompatibleKey, &settings.CompatibleKey)
	overlay(keyCompatibleBaseURL, &settings.CompatibleBaseURL)
	overlay(keyCompatibleModel, &settings.CompatibleModel)
	overlay(keyDeepgramKey, &settings.DeepgramKey)
	overlay(keyElevenLabsKey, &settings.ElevenLabsKey)
	overlay(keyElevenLabsVoice, &settings.ElevenLabsVoice)
	// Allow empty string to clear the proxy
	if v, ok := values[keyProxyURL]; ok {
		settings.ProxyURL = v
	}
	if v, ok := values[keyRateLimit]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settings.RateLimit = n
		}
	}
	return settings, nil
}

// SetProviderSettings updates the provider configuration.
func (s *settingsService) SetProviderSettings(ctx context.Context, settings *ProviderSettings) error {
	if err := validateProviders(settings); err != nil {
		return err
	}

	values := map[string]string{
		keyTranslator:        settings.Translator,
		keyRecognizer:        settings.Recognizer,
		keySynthesizer:       settings.Synthesizer,
		keyOpenAIBaseURL:     settings.OpenAIBaseURL,
		keyOpenAIModel:       settings.OpenAIModel,
		keyAnthropicModel:    settings.AnthropicModel,
		keyCompatibleBaseURL: settings.CompatibleBaseURL,
		keyCompatibleModel:   settings.CompatibleModel,
		keyElevenLabsVoice:   settings.ElevenLabsVoice,
		keyProxyURL:          strings.TrimSpace(settings.ProxyURL),
	}
	// Empty or masked keys keep the stored key.
	for key, value := range map[string]string{
		keyOpenAIKey:     settings.OpenAIKey,
		keyAnthropicKey:  settings.AnthropicKey,
		keyCompatibleKey: settings.CompatibleKey,
		keyDeepgramKey:   settings.DeepgramKey,
		keyElevenLabsKey: settings.ElevenLabsKey,
	} {
		if value != "" && !isMaskedKey(value) {
			values[key] = value
		}
	}
	if settings.RateLimit > 0 {
		values[keyRateLimit] = strconv.Itoa(settings.RateLimit)
	}

	if err := s.repo.SetMany(ctx, values); err != nil {
		return fmt.Errorf("save provider settings: %w", err)
	}
	if settings.RateLimit > 0 && s.rateLimiter != nil {
		s.rateLimiter.SetLimit(settings.RateLimit)
	}

	logger.Info("provider settings updated", "module", "service", "action", "update", "resource", "settings", "result", "ok",
		"translator", settings.Translator, "recognizer", settings.Recognizer, "synthesizer", settings.Synthesizer)
	return nil
}

// TestTranslator runs a one-word translation with the given configuration.
func (s *settingsService) TestTranslator(ctx context.Context, settings *ProviderSettings) (string, error) {
	stored, err := s.ResolveProviderSettings(ctx)
	if err != nil {
		return "", err
	}
	candidate := *settings
	// masked keys mean "use the stored key"
	restore := func(dst *string, storedValue string) {
		if *dst == "" || isMaskedKey(*dst) {
			*dst = storedValue
		}
	}
	restore(&candidate.OpenAIKey, stored.OpenAIKey)
	restore(&candidate.AnthropicKey, stored.AnthropicKey)
	restore(&candidate.CompatibleKey, stored.CompatibleKey)

	if candidate.Translator == "" || candidate.Translator == translate.BackendGoogle {
		return "", fmt.Errorf("%w: only LLM translators can be tested", ErrInvalid)
	}
	p, err := ai.NewProvider(candidate.aiConfig())
	if err != nil {
		return "", err
	}
	return p.Complete(ctx, ai.GetTranslatePrompt("English", "Hindi"), ai.WrapInput("Hello"))
}

// GetProxyURL returns the outbound proxy, if any.
func (s *settingsService) GetProxyURL(ctx context.Context) string {
	setting, err := s.repo.Get(ctx, keyProxyURL)
	if err != nil || setting == nil {
		return ""
	}
	return setting.Value
}

func validateProviders(settings *ProviderSettings) error {
	check := func(kind, value string, allowed []string) error {
		if value == "" {
			return nil
		}
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("%w: unknown %s backend %q", ErrInvalid, kind, value)
	}
	if err := check("translation", settings.Translator, translatorBackends); err != nil {
		return err
	}
	if err := check("recognition", settings.Recognizer, recognizerBackends); err != nil {
		return err
	}
	if err := check("synthesis", settings.Synthesizer, synthesizerBackends); err != nil {
		return err
	}
	if settings.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalid)
	}
	return nil
}

// aiConfig builds the chat model config for the selected LLM translator.
func (p *ProviderSettings) aiConfig() ai.Config {
	switch p.Translator {
	case translate.BackendAnthropic:
		return ai.Config{Provider: ai.ProviderAnthropic, APIKey: p.AnthropicKey, Model: p.AnthropicModel}
	case translate.BackendCompatible:
		return ai.Config{Provider: ai.ProviderCompatible, APIKey: p.CompatibleKey, BaseURL: p.CompatibleBaseURL, Model: p.CompatibleModel}
	default:
		return ai.Config{Provider: p.Translator, APIKey: p.OpenAIKey, BaseURL: p.OpenAIBaseURL, Model: p.OpenAIModel}
	}
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	// Find prefix (e.g., "sk-" for OpenAI)
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	prefix := apiKey[:prefixEnd]
	suffix := apiKey[len(apiKey)-3:]
	return prefix + "***" + suffix
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	if len(key) == 0 || len(key) >= 20 {
		return false
	}
	return strings.Contains(key, "***")
}
