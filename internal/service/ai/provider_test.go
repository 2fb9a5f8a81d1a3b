package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, Model: "gpt-4o-mini"})
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "sk-test"})
	require.ErrorIs(t, err, ai.ErrMissingModel)

	_, err = ai.NewProvider(ai.Config{Provider: ai.ProviderCompatible, APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrMissingBaseURL)

	_, err = ai.NewProvider(ai.Config{Provider: "bogus", APIKey: "k", Model: "m"})
	require.ErrorIs(t, err, ai.ErrInvalidProvider)
}

func TestNewProvider_Names(t *testing.T) {
	cases := map[string]ai.Config{
		ai.ProviderOpenAI:     {Provider: ai.ProviderOpenAI, APIKey: "k", Model: "gpt-4o-mini"},
		ai.ProviderAnthropic:  {Provider: ai.ProviderAnthropic, APIKey: "k", Model: "claude-3-5-haiku-latest"},
		ai.ProviderCompatible: {Provider: ai.ProviderCompatible, APIKey: "k", Model: "m", BaseURL: "http://localhost:11434/v1"},
	}
	for name, cfg := range cases {
		p, err := ai.NewProvider(cfg)
		require.NoError(t, err, name)
		require.Equal(t, name, p.Name())
	}
}

func TestRateLimiter_SetLimit(t *testing.T) {
	rl := ai.NewRateLimiter(0)
	require.Equal(t, ai.DefaultRateLimit, rl.GetLimit())

	rl.SetLimit(3)
	require.Equal(t, 3, rl.GetLimit())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, rl.Wait(ctx))
}

func TestOpenAIProvider_CompleteSendsPrompt(t *testing.T) {
	var body struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":0,"model":"gpt-4o-mini",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"नमस्ते"}}]}`))
	}))
	defer srv.Close()

	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderOpenAI, APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1", HTTPClient: srv.Client()})
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "translate", "Hello")
	require.NoError(t, err)
	require.Equal(t, "नमस्ते", out)
	require.Equal(t, "gpt-4o-mini", body.Model)
	require.Len(t, body.Messages, 2)
	require.Equal(t, "system", body.Messages[0].Role)
	require.Equal(t, "Hello", body.Messages[1].Content)
}

func TestProviders_SingleAttemptOnFailure(t *testing.T) {
	for _, name := range []string{ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderCompatible} {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
			}))
			defer srv.Close()

			p, err := ai.NewProvider(ai.Config{Provider: name, APIKey: "k", Model: "m", BaseURL: srv.URL + "/v1", HTTPClient: srv.Client()})
			require.NoError(t, err)

			_, err = p.Complete(context.Background(), "", "Hello")
			require.Error(t, err)
			require.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestAnthropicProvider_CompleteJoinsTextBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/messages"))
		require.Equal(t, "k", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"m1","type":"message","role":"assistant","model":"m",
			"content":[{"type":"text","text":"வணக்கம்"}],"stop_reason":"end_turn",
			"usage":{"input_tokens":3,"output_tokens":2}}`))
	}))
	defer srv.Close()

	p, err := ai.NewProvider(ai.Config{Provider: ai.ProviderAnthropic, APIKey: "k", Model: "m", BaseURL: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)

	out, err := p.Complete(context.Background(), "translate", "Hello")
	require.NoError(t, err)
	require.Equal(t, "வணக்கம்", out)
}

func TestRateLimiter_NilNeverBlocks(t *testing.T) {
	var rl *ai.RateLimiter
	require.NoError(t, rl.Wait(context.Background()))
}
