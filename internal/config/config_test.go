package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TRANSLATOR_ADDR", "")
	t.Setenv("TRANSLATOR_DATA_DIR", "")
	t.Setenv("TRANSLATOR_DB_PATH", "")
	t.Setenv("TRANSLATOR_LISTEN_TIMEOUT", "")
	t.Setenv("TRANSLATOR_HISTORY_LIMIT", "")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, filepath.Join("data", "translator.db"), cfg.DBPath)
	require.Equal(t, config.DefaultListenTimeout, cfg.ListenTimeout)
	require.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
	require.Equal(t, "google", cfg.Providers.Translator)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TRANSLATOR_ADDR", ":9090")
	t.Setenv("TRANSLATOR_DATA_DIR", "/tmp/tr")
	t.Setenv("TRANSLATOR_DB_PATH", "")
	t.Setenv("TRANSLATOR_LISTEN_TIMEOUT", "8s")
	t.Setenv("TRANSLATOR_HISTORY_LIMIT", "10")
	t.Setenv("TRANSLATOR_TRANSLATE_PROVIDER", "openai")

	cfg := config.Load()
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, filepath.Join("/tmp/tr", "translator.db"), cfg.DBPath)
	require.Equal(t, 8*time.Second, cfg.ListenTimeout)
	require.Equal(t, 10, cfg.HistoryLimit)
	require.Equal(t, "openai", cfg.Providers.Translator)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("TRANSLATOR_LISTEN_TIMEOUT", "soon")
	t.Setenv("TRANSLATOR_HISTORY_LIMIT", "many")

	cfg := config.Load()
	require.Equal(t, config.DefaultListenTimeout, cfg.ListenTimeout)
	require.Equal(t, config.DefaultHistoryLimit, cfg.HistoryLimit)
}
