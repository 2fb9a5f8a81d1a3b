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

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

const (
	DefaultDeepgramEndpoint = "https://api.deepgram.com/v1/listen"
	DefaultDeepgramModel    = "nova-2"
)

// DeepgramRecognizer posts clips to the Deepgram pre-recorded API.
type DeepgramRecognizer struct {
	apiKey      string
	endpoint    string
	model       string
	clients     *network.ClientFactory
	rateLimiter *ai.RateLimiter
}

func NewDeepgramRecognizer(apiKey, endpoint, model string, clients *network.ClientFactory, rateLimiter *ai.RateLimiter) *DeepgramRecognizer {
	if endpoint == "" {
		endpoint = DefaultDeepgramEndpoint
	}
	if model == "" {
		model = DefaultDeepgramModel
	}
	return &DeepgramRecognizer{apiKey: apiKey, endpoint: endpoint, model: model, clients: clients, rateLimiter: rateLimiter}
}

type deepgramResponse struct {
	Results struct {
		Channels []struct {
			Alternatives []struct {
				Transcript string  `json:"transcript"`
				Confidence float64 `json:"confidence"`
			} `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}

func (r *DeepgramRecognizer) Recognize(ctx context.Context, clip audio.Clip, languageHint string) (string, error) {
	if err := wait(ctx, r.rateLimiter, ErrRecognitionService); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("model", r.model)
	q.Set("smart_format", "true")
	if languageHint == "" || languageHint == AutoLanguage {
		q.Set("detect_language", "true")
	} else {
		q.Set("language", languageHint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint+"?"+q.Encode(), bytes.NewReader(clip.Data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionService, err)
	}
	req.Header.Set("Authorization", "Token "+r.apiKey)
	req.Header.Set("Content-Type", clip.ContentType)

	resp, err := r.clients.NewHTTPClient(ctx).Do(req)
	if err != nil {
		logger.Warn("deepgram request failed", "module", "speech", "action", "recognize", "resource", "deepgram", "result", "failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrRecognitionService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrRecognitionService, err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.Warn("deepgram http error", "module", "speech", "action", "recognize", "resource", "deepgram", "result", "failed", "status_code", resp.StatusCode)
		return "", fmt.Errorf("%w: status %d: %s", ErrRecognitionService, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed deepgramResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrRecognitionService, err)
	}
	if len(parsed.Results.Channels) == 0 || len(parsed.Results.Channels[0].Alternatives) == 0 {
		return "", ErrUnrecognized
	}

	transcript := strings.TrimSpace(parsed.Results.Channels[0].Alternatives[0].Transcript)
	if transcript == "" {
		return "", ErrUnrecognized
	}
	return transcript, nil
}
