package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	AppName    = "SpeechToTxt"
	AppVersion = "1.0.0"
)

// Chrome headers for the browser-profile session used against Google web endpoints
// (must match azuretls Chrome profile version)
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"
	ChromeSecChUa   = `"Google Chrome";v="135", "Chromium";v="135", "Not-A.Brand";v="8"`
)

// Defaults
const (
	DefaultListenTimeout  = 5 * time.Second
	DefaultSessionTTL     = 2 * time.Hour
	DefaultHistoryLimit   = 5
	DefaultRateLimit      = 10
	DefaultRequestTimeout = 30 * time.Second
)

type Config struct {
	Addr      string
	DBPath    string
	DataDir   string
	StaticDir string

	LogLevel  string
	LogFormat string

	ListenTimeout  time.Duration
	SessionTTL     time.Duration
	HistoryLimit   int
	RateLimit      int
	RequestTimeout time.Duration
	DetectorSeed   int64
	NodeID         int64

	Providers ProviderDefaults
}

// ProviderDefaults seeds provider settings on first start. Values stored in the
// settings table take precedence once written.
type ProviderDefaults struct {
	Translator  string
	Recognizer  string
	Synthesizer string

	OpenAIKey       string
	OpenAIBaseURL   string
	OpenAIModel     string
	AnthropicKey    string
	AnthropicModel  string
	DeepgramKey     string
	ElevenLabsKey   string
	ElevenLabsVoice string
}

func Load() Config {
	dataDir := envOr("TRANSLATOR_DATA_DIR", "./data")
	path := os.Getenv("TRANSLATOR_DB_PATH")
	if path == "" {
		path = filepath.Join(dataDir, "translator.db")
	}
	staticDir := os.Getenv("TRANSLATOR_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	return Config{
		Addr:      envOr("TRANSLATOR_ADDR", ":8080"),
		DBPath:    filepath.Clean(path),
		DataDir:   filepath.Clean(dataDir),
		StaticDir: filepath.Clean(staticDir),

		LogLevel:  envOr("TRANSLATOR_LOG_LEVEL", "info"),
		LogFormat: envOr("TRANSLATOR_LOG_FORMAT", "text"),

		ListenTimeout:  envDuration("TRANSLATOR_LISTEN_TIMEOUT", DefaultListenTimeout),
		SessionTTL:     envDuration("TRANSLATOR_SESSION_TTL", DefaultSessionTTL),
		HistoryLimit:   envInt("TRANSLATOR_HISTORY_LIMIT", DefaultHistoryLimit),
		RateLimit:      envInt("TRANSLATOR_RATE_LIMIT", DefaultRateLimit),
		RequestTimeout: envDuration("TRANSLATOR_REQUEST_TIMEOUT", DefaultRequestTimeout),
		DetectorSeed:   int64(envInt("TRANSLATOR_DETECTOR_SEED", 0)),
		NodeID:         int64(envInt("TRANSLATOR_NODE_ID", 1)),

		Providers: ProviderDefaults{
			Translator:      envOr("TRANSLATOR_TRANSLATE_PROVIDER", "google"),
			Recognizer:      envOr("TRANSLATOR_RECOGNIZE_PROVIDER", "deepgram"),
			Synthesizer:     envOr("TRANSLATOR_SYNTHESIZE_PROVIDER", "google"),
			OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
			OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
			OpenAIModel:     envOr("OPENAI_MODEL", "gpt-4o-mini"),
			AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
			AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
			DeepgramKey:     os.Getenv("DEEPGRAM_API_KEY"),
			ElevenLabsKey:   os.Getenv("ELEVENLABS_API_KEY"),
			ElevenLabsVoice: envOr("ELEVENLABS_VOICE_ID", "EXAVITQu4vr4xnSDxMaL"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
