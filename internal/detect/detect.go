// Package detect guesses the language of free text.
package detect

import (
	"errors"
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
)

var (
	ErrEmptyText    = errors.New("no text to analyze")
	ErrUndetermined = errors.New("language could not be determined")
)

//go:generate mockgen -source=detect.go -destination=mock/detect.go -package=mock

// Detector returns a language code for text. Implementations must be
// deterministic: identical input yields identical output.
type Detector interface {
	Detect(text string) (string, error)
}

// Options configures a LinguaDetector.
type Options struct {
	// Codes restricts detection to these ISO 639-1 codes. Codes lingua does not
	// model are ignored; with fewer than two usable codes all languages are used.
	Codes []string
	// MinimumRelativeDistance rejects guesses that are too close to the runner-up.
	MinimumRelativeDistance float64
	LowAccuracy             bool
	// Seed is recorded for parity with seeded detectors. The n-gram model has no
	// random state, so output does not depend on it.
	Seed int64
}

// LinguaDetector is a Detector backed by lingua's statistical n-gram models.
type LinguaDetector struct {
	detector lingua.LanguageDetector
	seed     int64
}

// NewLinguaDetector builds the detector. Models load lazily on first use.
func NewLinguaDetector(opts Options) *LinguaDetector {
	languages := languagesFor(opts.Codes)

	var builder lingua.LanguageDetectorBuilder
	if len(languages) >= 2 {
		builder = lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	} else {
		builder = lingua.NewLanguageDetectorBuilder().FromAllLanguages()
	}
	if opts.MinimumRelativeDistance > 0 {
		builder = builder.WithMinimumRelativeDistance(opts.MinimumRelativeDistance)
	}
	if opts.LowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}

	logger.Info("language detector ready", "module", "detect", "action", "init", "resource", "detector", "result", "ok", "languages", len(languages), "seed", opts.Seed)
	return &LinguaDetector{detector: builder.Build(), seed: opts.Seed}
}

// Detect returns the lowercase ISO 639-1 code of the most likely language.
func (d *LinguaDetector) Detect(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	language, ok := d.detector.DetectLanguageOf(text)
	if !ok || language == lingua.Unknown {
		return "", ErrUndetermined
	}
	return strings.ToLower(language.IsoCode639_1().String()), nil
}

func languagesFor(codes []string) []lingua.Language {
	if len(codes) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[strings.ToLower(c)] = true
	}
	var out []lingua.Language
	for _, l := range lingua.AllLanguages() {
		if wanted[strings.ToLower(l.IsoCode639_1().String())] {
			out = append(out, l)
		}
	}
	return out
}
