package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

// DefaultGoogleEndpoint is the public web translate endpoint.
const DefaultGoogleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleTranslator calls the Google web translate endpoint.
type GoogleTranslator struct {
	fetcher     network.Fetcher
	endpoint    string
	langs       LanguageSet
	rateLimiter *ai.RateLimiter
}

// NewGoogleTranslator creates a translator. endpoint may be empty.
func NewGoogleTranslator(fetcher network.Fetcher, endpoint string, langs LanguageSet, rateLimiter *ai.RateLimiter) *GoogleTranslator {
	if endpoint == "" {
		endpoint = DefaultGoogleEndpoint
	}
	return &GoogleTranslator{fetcher: fetcher, endpoint: endpoint, langs: langs, rateLimiter: rateLimiter}
}

func (t *GoogleTranslator) Translate(ctx context.Context, text, source, dest string) (string, error) {
	if err := validate(t.langs, source, dest); err != nil {
		return "", err
	}
	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limit: %v", ErrService, err)
		}
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", source)
	q.Set("tl", dest)
	q.Set("dt", "t")
	q.Set("q", text)

	res, err := t.fetcher.Get(ctx, t.endpoint+"?"+q.Encode(), network.BrowserHeaders("application/json,*/*"))
	if err != nil {
		logger.Warn("google translate request failed", "module", "translate", "action", "fetch", "resource", "google", "result", "failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	switch {
	case res.StatusCode == http.StatusBadRequest:
		return "", fmt.Errorf("%w: %s -> %s rejected by service", ErrInvalidLanguage, source, dest)
	case res.StatusCode != http.StatusOK:
		logger.Warn("google translate http error", "module", "translate", "action", "fetch", "resource", "google", "result", "failed", "status_code", res.StatusCode)
		return "", fmt.Errorf("%w: status %d", ErrService, res.StatusCode)
	}

	translated, err := parseGoogleResponse(res.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	return cleanText(translated), nil
}

// parseGoogleResponse concatenates the translated segments of a
// translate_a/single response: [[["seg","orig",...],...],null,"en",...].
func parseGoogleResponse(body []byte) (string, error) {
	var root []json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(root) == 0 {
		return "", fmt.Errorf("empty response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(root[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %w", err)
	}

	var out strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		out.WriteString(part)
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("no translated segments")
	}
	return out.String(), nil
}
