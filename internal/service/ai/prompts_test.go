package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

func TestGetTranslatePrompt_NamesLanguages(t *testing.T) {
	prompt := ai.GetTranslatePrompt("English", "Hindi")
	require.Contains(t, prompt, "<source_language>English</source_language>")
	require.Contains(t, prompt, "<target_language>Hindi</target_language>")
	require.Contains(t, prompt, "Output ONLY the translated text")
}

func TestGetTranslatePrompt_AutoSource(t *testing.T) {
	prompt := ai.GetTranslatePrompt("", "Tamil")
	require.Contains(t, prompt, "detect automatically")
	require.Contains(t, prompt, "<target_language>Tamil</target_language>")
}

func TestWrapInput(t *testing.T) {
	require.Equal(t, "<input>\nHello\n</input>", ai.WrapInput("Hello"))
}
