package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

const (
	DefaultElevenLabsEndpoint = "https://api.elevenlabs.io"
	DefaultElevenLabsModel    = "eleven_multilingual_v2"
)

// ElevenLabsSynthesizer calls the ElevenLabs text-to-speech API.
type ElevenLabsSynthesizer struct {
	apiKey      string
	voiceID     string
	model       string
	endpoint    string
	clients     *network.ClientFactory
	rateLimiter *ai.RateLimiter
}

func NewElevenLabsSynthesizer(apiKey, voiceID, model, endpoint string, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) *ElevenLabsSynthesizer {
	if model == "" {
		model = DefaultElevenLabsModel
	}
	if endpoint == "" {
		endpoint = DefaultElevenLabsEndpoint
	}
	return &ElevenLabsSynthesizer{
		apiKey:      apiKey,
		voiceID:     voiceID,
		model:       model,
		endpoint:    strings.TrimRight(endpoint, "/"),
		clients:     clients,
		rateLimiter: rateLimiter,
	}
}

type elevenLabsRequest struct {
	Text         string `json:"text"`
	ModelID      string `json:"model_id"`
	LanguageCode string `json:"language_code,omitempty"`
}

func (s *ElevenLabsSynthesizer) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesis)
	}
	if s.voiceID == "" {
		return nil, fmt.Errorf("%w: voice id not configured", ErrSynthesis)
	}
	if err := wait(ctx, s.rateLimiter, ErrSynthesis); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(elevenLabsRequest{Text: text, ModelID: s.model, LanguageCode: languageCode})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	endpoint := s.endpoint + "/v1/text-to-speech/" + url.PathEscape(s.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := s.clients.NewHTTPClient(ctx).Do(req)
	if err != nil {
		logger.Warn("elevenlabs request failed", "module", "speech", "action", "synthesize", "resource", "elevenlabs", "result", "failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Warn("elevenlabs http error", "module", "speech", "action", "synthesize", "resource", "elevenlabs", "result", "failed", "status_code", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d: %s", ErrSynthesis, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrSynthesis, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}
	return data, nil
}
