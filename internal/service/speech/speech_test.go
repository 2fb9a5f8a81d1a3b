package speech_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/network"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
)

func testServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *network.ClientFactory) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, network.NewClientFactoryForTest(srv.Client())
}

var wavClip = audio.Clip{Data: []byte("RIFF....WAVE"), ContentType: audio.ContentTypeWAV, Filename: "clip.wav"}

func TestDeepgram_Transcript(t *testing.T) {
	var gotAuth, gotLang, gotType string
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.URL.Query().Get("language")
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":" Hello there ","confidence":0.97}]}]}}`))
	})

	r := speech.NewDeepgramRecognizer("dg-key", srv.URL, "", f, nil)
	text, err := r.Recognize(context.Background(), wavClip, "en")
	require.NoError(t, err)
	require.Equal(t, "Hello there", text)
	require.Equal(t, "Token dg-key", gotAuth)
	require.Equal(t, "en", gotLang)
	require.Equal(t, audio.ContentTypeWAV, gotType)
}

func TestDeepgram_AutoDetect(t *testing.T) {
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "true", r.URL.Query().Get("detect_language"))
		require.Empty(t, r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(`{"results":{"channels":[{"alternatives":[{"transcript":"नमस्ते"}]}]}}`))
	})

	r := speech.NewDeepgramRecognizer("k", srv.URL, "", f, nil)
	text, err := r.Recognize(context.Background(), wavClip, speech.AutoLanguage)
	require.NoError(t, err)
	require.Equal(t, "नमस्ते", text)
}

func TestDeepgram_Unrecognized(t *testing.T) {
	for _, body := range []string{
		`{"results":{"channels":[{"alternatives":[{"transcript":""}]}]}}`,
		`{"results":{"channels":[]}}`,
	} {
		srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})
		r := speech.NewDeepgramRecognizer("k", srv.URL, "", f, nil)
		_, err := r.Recognize(context.Background(), wavClip, "en")
		require.ErrorIs(t, err, speech.ErrUnrecognized)
	}
}

func TestDeepgram_ServiceError(t *testing.T) {
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	})
	r := speech.NewDeepgramRecognizer("k", srv.URL, "", f, nil)
	_, err := r.Recognize(context.Background(), wavClip, "en")
	require.ErrorIs(t, err, speech.ErrRecognitionService)
	require.NotErrorIs(t, err, speech.ErrUnrecognized)
}

func TestOpenAIRecognizer(t *testing.T) {
	var gotModel, gotLang string
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/audio/transcriptions"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotModel = r.FormValue("model")
		gotLang = r.FormValue("language")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Hello"}`))
	})

	r := speech.NewOpenAIRecognizer("sk-test", srv.URL, "", f, nil)
	text, err := r.Recognize(context.Background(), wavClip, "en")
	require.NoError(t, err)
	require.Equal(t, "Hello", text)
	require.Equal(t, speech.DefaultTranscribeModel, gotModel)
	require.Equal(t, "en", gotLang)
}

func TestOpenAIRecognizer_EmptyText(t *testing.T) {
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"  "}`))
	})
	r := speech.NewOpenAIRecognizer("sk-test", srv.URL, "", f, nil)
	_, err := r.Recognize(context.Background(), wavClip, "")
	require.ErrorIs(t, err, speech.ErrUnrecognized)
}

func TestOpenAISynthesizer(t *testing.T) {
	var got map[string]any
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/audio/speech"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3mp3"))
	})

	s := speech.NewOpenAISynthesizer("sk-test", srv.URL, "", "", f, nil)
	data, err := s.Synthesize(context.Background(), "नमस्ते", "hi")
	require.NoError(t, err)
	require.Equal(t, []byte("ID3mp3"), data)
	require.Equal(t, "नमस्ते", got["input"])
	require.Equal(t, speech.DefaultSpeechVoice, got["voice"])
	require.Equal(t, "mp3", got["response_format"])
}

func TestGoogleSynthesizer_ConcatenatesChunks(t *testing.T) {
	var (
		mu    sync.Mutex
		idx   []string
		langs []string
	)
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		idx = append(idx, r.URL.Query().Get("idx"))
		langs = append(langs, r.URL.Query().Get("tl"))
		mu.Unlock()
		_, _ = w.Write([]byte("[" + r.URL.Query().Get("idx") + "]"))
	})

	s := speech.NewGoogleSynthesizer(f.Fetcher(), srv.URL, ai.NewRateLimiter(100))
	text := strings.Repeat("word ", 50)
	data, err := s.Synthesize(context.Background(), text, "HI")
	require.NoError(t, err)
	require.Equal(t, "[0][1][2]", string(data))
	require.Equal(t, []string{"0", "1", "2"}, idx)
	require.Equal(t, []string{"hi", "hi", "hi"}, langs)
}

func TestGoogleSynthesizer_UnsupportedLanguage(t *testing.T) {
	called := false
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	s := speech.NewGoogleSynthesizer(f.Fetcher(), srv.URL, nil)
	for _, code := range []string{"or", "as", "xx"} {
		require.False(t, s.Supports(code))
		_, err := s.Synthesize(context.Background(), "text", code)
		require.ErrorIs(t, err, speech.ErrSynthesis)
	}
	require.False(t, called)
}

func TestGoogleSynthesizer_ServiceError(t *testing.T) {
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	s := speech.NewGoogleSynthesizer(f.Fetcher(), srv.URL, nil)
	_, err := s.Synthesize(context.Background(), "Hello", "en")
	require.ErrorIs(t, err, speech.ErrSynthesis)
}

func TestElevenLabsSynthesizer(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		got     map[string]string
	)
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte("ID3"))
	})

	s := speech.NewElevenLabsSynthesizer("xi", "voice-1", "", srv.URL, f, nil)
	data, err := s.Synthesize(context.Background(), `He said "hi"`, "en")
	require.NoError(t, err)
	require.Equal(t, []byte("ID3"), data)
	require.Equal(t, "/v1/text-to-speech/voice-1", gotPath)
	require.Equal(t, "xi", gotKey)
	require.Equal(t, `He said "hi"`, got["text"])
	require.Equal(t, speech.DefaultElevenLabsModel, got["model_id"])
}

func TestElevenLabsSynthesizer_Error(t *testing.T) {
	srv, f := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusPaymentRequired)
	})
	s := speech.NewElevenLabsSynthesizer("xi", "voice-1", "", srv.URL, f, nil)
	_, err := s.Synthesize(context.Background(), "Hello", "en")
	require.ErrorIs(t, err, speech.ErrSynthesis)
}

func TestFactories(t *testing.T) {
	f := network.NewClientFactory(nil, 0)

	_, err := speech.NewRecognizer(speech.Config{}, f, nil)
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	r, err := speech.NewRecognizer(speech.Config{Recognizer: speech.BackendOpenAI, OpenAIKey: "k"}, f, nil)
	require.NoError(t, err)
	require.IsType(t, &speech.OpenAIRecognizer{}, r)

	s, err := speech.NewSynthesizer(speech.Config{}, f, nil)
	require.NoError(t, err)
	require.IsType(t, &speech.GoogleSynthesizer{}, s)

	_, err = speech.NewSynthesizer(speech.Config{Synthesizer: speech.BackendElevenLabs}, f, nil)
	require.ErrorIs(t, err, ai.ErrMissingAPIKey)

	_, err = speech.NewSynthesizer(speech.Config{Synthesizer: "espeak"}, f, nil)
	require.Error(t, err)
}
