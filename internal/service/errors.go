package service

import (
	"errors"
	"fmt"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/detect"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInvalid  = errors.New("invalid")
)

// Kind classifies a failed action so callers can branch without inspecting
// backend errors.
type Kind int

const (
	KindUnknown Kind = iota
	KindDetection
	KindTranslationService
	KindInvalidLanguage
	KindUnrecognizedSpeech
	KindRecognitionService
	KindSynthesis
	KindEmptyInput
	KindConversation
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrDetection          = errors.New("language detection failed")
	ErrTranslationService = errors.New("translation service error")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrUnrecognizedSpeech = errors.New("speech not recognized")
	ErrRecognitionService = errors.New("recognition service error")
	ErrSynthesis          = errors.New("speech synthesis failed")
	ErrEmptyInput         = errors.New("empty input")
	ErrConversation       = errors.New("conversation state error")
)

var kindSentinels = map[Kind]error{
	KindDetection:          ErrDetection,
	KindTranslationService: ErrTranslationService,
	KindInvalidLanguage:    ErrInvalidLanguage,
	KindUnrecognizedSpeech: ErrUnrecognizedSpeech,
	KindRecognitionService: ErrRecognitionService,
	KindSynthesis:          ErrSynthesis,
	KindEmptyInput:         ErrEmptyInput,
	KindConversation:       ErrConversation,
}

func (k Kind) String() string {
	switch k {
	case KindDetection:
		return "detection"
	case KindTranslationService:
		return "translation_service"
	case KindInvalidLanguage:
		return "invalid_language"
	case KindUnrecognizedSpeech:
		return "unrecognized_speech"
	case KindRecognitionService:
		return "recognition_service"
	case KindSynthesis:
		return "synthesis"
	case KindEmptyInput:
		return "empty_input"
	case KindConversation:
		return "conversation"
	default:
		return "unknown"
	}
}

// Error is the failure of one orchestrator action.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, kindSentinels[e.Kind])
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// classify maps a backend error onto the taxonomy. fallback is used for
// errors no backend sentinel matches.
func classify(op string, err error, fallback Kind) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}

	kind := fallback
	switch {
	case errors.Is(err, detect.ErrEmptyText), errors.Is(err, detect.ErrUndetermined):
		kind = KindDetection
	case errors.Is(err, translate.ErrInvalidLanguage):
		kind = KindInvalidLanguage
	case errors.Is(err, translate.ErrService):
		kind = KindTranslationService
	case errors.Is(err, speech.ErrUnrecognized), errors.Is(err, audio.ErrMalformed):
		kind = KindUnrecognizedSpeech
	case errors.Is(err, speech.ErrRecognitionService), errors.Is(err, audio.ErrDeviceBusy):
		kind = KindRecognitionService
	case errors.Is(err, speech.ErrSynthesis):
		kind = KindSynthesis
	case errors.Is(err, audio.ErrEmptyClip):
		kind = KindEmptyInput
	case errors.Is(err, session.ErrConversationInactive),
		errors.Is(err, session.ErrOutOfTurn),
		errors.Is(err, session.ErrInvalidSpeaker):
		kind = KindConversation
	}
	return newError(kind, op, err)
}
