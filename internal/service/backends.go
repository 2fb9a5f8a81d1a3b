package service

import (
	"context"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/catalog"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate"
)

//go:generate mockgen -source=backends.go -destination=mock/backends.go -package=mock

// Backends hands out the translation and speech clients for the currently
// configured providers. Settings changes apply to the next call.
type Backends interface {
	Translator(ctx context.Context) (translate.Translator, error)
	Recognizer(ctx context.Context) (speech.Recognizer, error)
	Synthesizer(ctx context.Context) (speech.Synthesizer, error)
}

type settingsBackends struct {
	settings    SettingsService
	clients     *network.ClientFactory
	langs       *catalog.Catalog
	rateLimiter *ai.RateLimiter
}

// NewBackends builds clients from the provider settings on every call.
func NewBackends(settings SettingsService, clients *network.ClientFactory, langs *catalog.Catalog, rateLimiter *ai.RateLimiter) Backends {
	return &settingsBackends{settings: settings, clients: clients, langs: langs, rateLimiter: rateLimiter}
}

func (b *settingsBackends) Translator(ctx context.Context) (translate.Translator, error) {
	p, err := b.settings.ResolveProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	aiCfg := p.aiConfig()
	aiCfg.HTTPClient = b.clients.NewHTTPClient(ctx)
	return translate.New(translate.Config{Backend: p.Translator, AI: aiCfg}, b.clients, b.langs, b.rateLimiter)
}

func (b *settingsBackends) Recognizer(ctx context.Context) (speech.Recognizer, error) {
	p, err := b.settings.ResolveProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	return speech.NewRecognizer(p.speechConfig(), b.clients, b.rateLimiter)
}

func (b *settingsBackends) Synthesizer(ctx context.Context) (speech.Synthesizer, error) {
	p, err := b.settings.ResolveProviderSettings(ctx)
	if err != nil {
		return nil, err
	}
	return speech.NewSynthesizer(p.speechConfig(), b.clients, b.rateLimiter)
}

func (p *ProviderSettings) speechConfig() speech.Config {
	return speech.Config{
		Recognizer:      p.Recognizer,
		Synthesizer:     p.Synthesizer,
		OpenAIKey:       p.OpenAIKey,
		OpenAIBaseURL:   p.OpenAIBaseURL,
		DeepgramKey:     p.DeepgramKey,
		ElevenLabsKey:   p.ElevenLabsKey,
		ElevenLabsVoice: p.ElevenLabsVoice,
	}
}
