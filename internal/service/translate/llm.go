package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/ai"
)

// LLMTranslator translates with a chat model.
type LLMTranslator struct {
	provider    ai.Provider
	langs       LanguageSet
	rateLimiter *ai.RateLimiter
}

// NewLLMTranslator wraps an ai.Provider.
func NewLLMTranslator(provider ai.Provider, langs LanguageSet, rateLimiter *ai.RateLimiter) *LLMTranslator {
	return &LLMTranslator{provider: provider, langs: langs, rateLimiter: rateLimiter}
}

func (t *LLMTranslator) Translate(ctx context.Context, text, source, dest string) (string, error) {
	if err := validate(t.langs, source, dest); err != nil {
		return "", err
	}
	if t.rateLimiter != nil {
		if err := t.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limit: %v", ErrService, err)
		}
	}

	prompt := ai.GetTranslatePrompt(t.languageName(source), t.languageName(dest))
	out, err := t.provider.Complete(ctx, prompt, ai.WrapInput(text))
	if err != nil {
		logger.Warn("llm translate failed", "module", "translate", "action", "fetch", "resource", t.provider.Name(), "result", "failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	out = cleanText(out)
	if out == "" {
		return "", fmt.Errorf("%w: empty completion", ErrService)
	}
	return out, nil
}

func (t *LLMTranslator) languageName(code string) string {
	if code == AutoSource {
		return ""
	}
	if t.langs != nil {
		if name, ok := t.langs.LookupName(code); ok {
			return name
		}
	}
	return strings.ToUpper(code)
}
