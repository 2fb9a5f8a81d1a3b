// Package translate turns text in one language into another through a remote
// translation backend.
package translate

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// AutoSource asks the backend to detect the source language.
const AutoSource = "auto"

var (
	// ErrService wraps network and upstream failures.
	ErrService = errors.New("translation service error")
	// ErrInvalidLanguage is returned when a language code is not recognized.
	ErrInvalidLanguage = errors.New("invalid language")
)

//go:generate mockgen -source=translate.go -destination=mock/translate.go -package=mock

// Translator translates text. source is a language code or AutoSource; dest is
// a language code. A single attempt is made; failures are returned as-is.
type Translator interface {
	Translate(ctx context.Context, text, source, dest string) (string, error)
}

// Backend names
const (
	BackendGoogle     = "google"
	BackendOpenAI     = "openai"
	BackendAnthropic  = "anthropic"
	BackendCompatible = "compatible"
)

// LanguageSet reports which codes a remote service recognizes.
type LanguageSet interface {
	HasCode(code string) bool
	LookupName(code string) (string, bool)
}

func validate(langs LanguageSet, source, dest string) error {
	if langs == nil {
		return nil
	}
	if source != AutoSource && !langs.HasCode(source) {
		return fmt.Errorf("%w: source %q", ErrInvalidLanguage, source)
	}
	if !langs.HasCode(dest) {
		return fmt.Errorf("%w: destination %q", ErrInvalidLanguage, dest)
	}
	return nil
}

var textPolicy = bluemonday.StrictPolicy()

// cleanText strips any markup a backend returned and decodes entities so the
// result is plain text.
func cleanText(s string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
