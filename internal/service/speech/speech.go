// Package speech converts between spoken audio and text through remote
// recognition and synthesis backends.
package speech

import (
	"context"
	"errors"
	"fmt"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

var (
	// ErrUnrecognized is returned when a clip yields no confident transcript.
	ErrUnrecognized = errors.New("speech not recognized")
	// ErrRecognitionService wraps recognition backend failures.
	ErrRecognitionService = errors.New("recognition service error")
	// ErrSynthesis is returned for unsupported languages and synthesis failures.
	ErrSynthesis = errors.New("synthesis error")
)

// AutoLanguage as a recognition hint lets the backend pick the language.
const AutoLanguage = "auto"

//go:generate mockgen -source=speech.go -destination=mock/speech.go -package=mock

// Recognizer turns a bounded clip into text. languageHint is a language code
// or AutoLanguage.
type Recognizer interface {
	Recognize(ctx context.Context, clip audio.Clip, languageHint string) (string, error)
}

// Synthesizer renders text as mp3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, languageCode string) ([]byte, error)
}

// Backend names
const (
	BackendDeepgram   = "deepgram"
	BackendOpenAI     = "openai"
	BackendGoogle     = "google"
	BackendElevenLabs = "elevenlabs"
)

// Config selects and configures the recognition and synthesis backends.
type Config struct {
	Recognizer  string
	Synthesizer string

	OpenAIKey       string
	OpenAIBaseURL   string
	TranscribeModel string
	SpeechModel     string
	SpeechVoice     string

	DeepgramKey      string
	DeepgramEndpoint string
	DeepgramModel    string

	ElevenLabsKey      string
	ElevenLabsVoice    string
	ElevenLabsModel    string
	ElevenLabsEndpoint string

	GoogleTTSEndpoint string
}

// NewRecognizer builds the configured Recognizer.
func NewRecognizer(cfg Config, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) (Recognizer, error) {
	switch cfg.Recognizer {
	case "", BackendDeepgram:
		if cfg.DeepgramKey == "" {
			return nil, fmt.Errorf("deepgram: %w", ai.ErrMissingAPIKey)
		}
		return NewDeepgramRecognizer(cfg.DeepgramKey, cfg.DeepgramEndpoint, cfg.DeepgramModel, clients, rateLimiter), nil
	case BackendOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: %w", ai.ErrMissingAPIKey)
		}
		return NewOpenAIRecognizer(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.TranscribeModel, clients, rateLimiter), nil
	default:
		return nil, fmt.Errorf("unknown recognition backend %q", cfg.Recognizer)
	}
}

// NewSynthesizer builds the configured Synthesizer.
func NewSynthesizer(cfg Config, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) (Synthesizer, error) {
	switch cfg.Synthesizer {
	case "", BackendGoogle:
		return NewGoogleSynthesizer(clients.Fetcher(), cfg.GoogleTTSEndpoint, rateLimiter), nil
	case BackendOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("openai: %w", ai.ErrMissingAPIKey)
		}
		return NewOpenAISynthesizer(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.SpeechModel, cfg.SpeechVoice, clients, rateLimiter), nil
	case BackendElevenLabs:
		if cfg.ElevenLabsKey == "" {
			return nil, fmt.Errorf("elevenlabs: %w", ai.ErrMissingAPIKey)
		}
		return NewElevenLabsSynthesizer(cfg.ElevenLabsKey, cfg.ElevenLabsVoice, cfg.ElevenLabsModel, cfg.ElevenLabsEndpoint, clients, rateLimiter), nil
	default:
		return nil, fmt.Errorf("unknown synthesis backend %q", cfg.Synthesizer)
	}
}

func wait(ctx context.Context, rateLimiter *ai.RateLimiter, kind error) error {
	if rateLimiter == nil {
		return nil
	}
	if err := rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limit: %v", kind, err)
	}
	return nil
}
