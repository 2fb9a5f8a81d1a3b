package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

const (
	DefaultTranscribeModel = openai.AudioModelWhisper1
	DefaultSpeechModel     = openai.SpeechModelGPT4oMiniTTS
	DefaultSpeechVoice     = "alloy"
)

func newOpenAIClient(ctx context.Context, apiKey, baseURL string, clients *network.ClientFactory) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if clients != nil {
		opts = append(opts, option.WithHTTPClient(clients.NewHTTPClient(ctx)))
	}
	return openai.NewClient(opts...)
}

// OpenAIRecognizer uses the audio transcriptions endpoint.
type OpenAIRecognizer struct {
	apiKey      string
	baseURL     string
	model       string
	clients     *network.ClientFactory
	rateLimiter *ai.RateLimiter
}

func NewOpenAIRecognizer(apiKey, baseURL, model string, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) *OpenAIRecognizer {
	if model == "" {
		model = DefaultTranscribeModel
	}
	return &OpenAIRecognizer{apiKey: apiKey, baseURL: baseURL, model: model, clients: clients, rateLimiter: rateLimiter}
}

func (r *OpenAIRecognizer) Recognize(ctx context.Context, clip audio.Clip, languageHint string) (string, error) {
	if err := wait(ctx, r.rateLimiter, ErrRecognitionService); err != nil {
		return "", err
	}

	name := clip.Filename
	if name == "" {
		name = "speech"
	}
	params := openai.AudioTranscriptionNewParams{
		File:  openai.File(bytes.NewReader(clip.Data), name, clip.ContentType),
		Model: openai.AudioModel(r.model),
	}
	if languageHint != "" && languageHint != AutoLanguage {
		params.Language = openai.String(languageHint)
	}

	client := newOpenAIClient(ctx, r.apiKey, r.baseURL, r.clients)
	res, err := client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		logger.Warn("openai transcription failed", "module", "speech", "action", "recognize", "resource", "openai", "result", "failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrRecognitionService, err)
	}

	text := strings.TrimSpace(res.Text)
	if text == "" {
		return "", ErrUnrecognized
	}
	return text, nil
}

// OpenAISynthesizer uses the audio speech endpoint. The model infers the
// spoken language from the text.
type OpenAISynthesizer struct {
	apiKey      string
	baseURL     string
	model       string
	voice       string
	clients     *network.ClientFactory
	rateLimiter *ai.RateLimiter
}

func NewOpenAISynthesizer(apiKey, baseURL, model, voice string, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) *OpenAISynthesizer {
	if model == "" {
		model = DefaultSpeechModel
	}
	if voice == "" {
		voice = DefaultSpeechVoice
	}
	return &OpenAISynthesizer{apiKey: apiKey, baseURL: baseURL, model: model, voice: voice, clients: clients, rateLimiter: rateLimiter}
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesis)
	}
	if err := wait(ctx, s.rateLimiter, ErrSynthesis); err != nil {
		return nil, err
	}

	client := newOpenAIClient(ctx, s.apiKey, s.baseURL, s.clients)
	resp, err := client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		logger.Warn("openai speech failed", "module", "speech", "action", "synthesize", "resource", "openai", "result", "failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSynthesis, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}
	return data, nil
}
