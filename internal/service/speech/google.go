package speech

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

const (
	DefaultGoogleTTSEndpoint = "https://translate.google.com/translate_tts"
	// googleChunkRunes is the longest text translate_tts accepts per request.
	googleChunkRunes = 100
)

// googleVoices lists the catalog languages translate_tts can speak.
var googleVoices = map[string]bool{
	"bn": true, "en": true, "gu": true, "hi": true, "kn": true,
	"ml": true, "mr": true, "pa": true, "ta": true, "te": true,
}

// GoogleSynthesizer reads text aloud with the translate_tts endpoint. Long
// text is split into chunks and the mp3 frames are concatenated.
type GoogleSynthesizer struct {
	fetcher     network.Fetcher
	endpoint    string
	rateLimiter *ai.RateLimiter
}

func NewGoogleSynthesizer(fetcher network.Fetcher, endpoint string, rateLimiter *ai.RateLimiter) *GoogleSynthesizer {
	if endpoint == "" {
		endpoint = DefaultGoogleTTSEndpoint
	}
	return &GoogleSynthesizer{fetcher: fetcher, endpoint: endpoint, rateLimiter: rateLimiter}
}

// Supports reports whether a language code has a voice.
func (s *GoogleSynthesizer) Supports(languageCode string) bool {
	return googleVoices[strings.ToLower(languageCode)]
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	if !s.Supports(languageCode) {
		return nil, fmt.Errorf("%w: language %q not supported", ErrSynthesis, languageCode)
	}
	chunks := splitText(text, googleChunkRunes)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesis)
	}

	var out bytes.Buffer
	for i, chunk := range chunks {
		if err := wait(ctx, s.rateLimiter, ErrSynthesis); err != nil {
			return nil, err
		}

		q := url.Values{}
		q.Set("ie", "UTF-8")
		q.Set("client", "tw-ob")
		q.Set("tl", strings.ToLower(languageCode))
		q.Set("q", chunk)
		q.Set("total", strconv.Itoa(len(chunks)))
		q.Set("idx", strconv.Itoa(i))
		q.Set("textlen", strconv.Itoa(utf8.RuneCountInString(chunk)))

		res, err := s.fetcher.Get(ctx, s.endpoint+"?"+q.Encode(), network.BrowserHeaders("audio/mpeg,*/*"))
		if err != nil {
			logger.Warn("google tts request failed", "module", "speech", "action", "synthesize", "resource", "google", "result", "failed", "error", err)
			return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
		}
		if res.StatusCode != http.StatusOK {
			logger.Warn("google tts http error", "module", "speech", "action", "synthesize", "resource", "google", "result", "failed", "status_code", res.StatusCode, "chunk", i)
			return nil, fmt.Errorf("%w: status %d", ErrSynthesis, res.StatusCode)
		}
		out.Write(res.Body)
	}

	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}
	return out.Bytes(), nil
}

// splitText breaks text into chunks of at most limit runes, preferring
// whitespace boundaries. Words longer than limit are cut.
func splitText(text string, limit int) []string {
	var (
		chunks  []string
		current []rune
	)
	flush := func() {
		if s := strings.TrimSpace(string(current)); s != "" {
			chunks = append(chunks, s)
		}
		current = current[:0]
	}

	for _, word := range strings.FieldsFunc(text, unicode.IsSpace) {
		w := []rune(word)
		for len(w) > limit {
			flush()
			chunks = append(chunks, string(w[:limit]))
			w = w[limit:]
		}
		if len(w) == 0 {
			continue
		}
		extra := len(w)
		if len(current) > 0 {
			extra++
		}
		if len(current)+extra > limit {
			flush()
		}
		if len(current) > 0 {
			current = append(current, ' ')
		}
		current = append(current, w...)
	}
	flush()
	return chunks
}
