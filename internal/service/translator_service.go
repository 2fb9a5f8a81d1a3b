package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/catalog"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/detect"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/snowflake"
)

// DefaultHistoryLimit is how many records History returns when no limit is given.
const DefaultHistoryLimit = 5

// Download file names
const (
	textFileName       = "translated_text.txt"
	voiceTextFileName  = "voice_translation.txt"
	audioFileName      = "translation.mp3"
	voiceAudioFileName = "voice_translation.mp3"
)

// TextRequest asks for a text translation. Source and Target accept display
// names or codes; Source may also be "auto" or "Detect".
type TextRequest struct {
	Text   string
	Source string
	Target string
}

// VoiceRequest asks for a one-shot voice translation.
type VoiceRequest struct {
	Audio       io.Reader
	Filename    string
	ContentType string
	Source      string
	Target      string
}

// TurnRequest is one recorded conversation turn.
type TurnRequest struct {
	Speaker     int
	Audio       io.Reader
	Filename    string
	ContentType string
}

// Result is a committed translation with its best-effort audio.
type Result struct {
	Record model.TranslationRecord `json:"record"`
	// DetectedLanguage is set when the source was auto-detected.
	DetectedLanguage string `json:"detectedLanguage,omitempty"`
	Audio            []byte `json:"-"`
	// AudioError reports a synthesis failure; the translation still stands.
	AudioError string `json:"audioError,omitempty"`
	// Truncated is set when the recording ran past the listen limit.
	Truncated bool `json:"truncated,omitempty"`
}

// DetectResult is the outcome of a standalone detection.
type DetectResult struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ConversationState is the view of a session's conversation.
type ConversationState struct {
	Active    bool   `json:"active"`
	Turn      string `json:"turn"`
	Speaker1  string `json:"speaker1,omitempty"`
	Speaker2  string `json:"speaker2,omitempty"`
	Exchanges int    `json:"exchanges"`
}

// TurnResult is a recorded turn plus the conversation state after it.
type TurnResult struct {
	Result
	Conversation ConversationState `json:"conversation"`
}

// Download is a file produced from a history record.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

//go:generate mockgen -source=translator_service.go -destination=mock/translator_service.go -package=mock

// TranslatorService sequences user actions across the detector, translator
// and speech clients for one session at a time.
type TranslatorService interface {
	Languages() []model.LanguageEntry
	Detect(ctx context.Context, text string) (*DetectResult, error)
	TranslateText(ctx context.Context, sess *session.Session, req TextRequest) (*Result, error)
	TranslateVoice(ctx context.Context, sess *session.Session, req VoiceRequest) (*Result, error)
	StartConversation(ctx context.Context, sess *session.Session, speaker1, speaker2 string) (*ConversationState, error)
	RecordTurn(ctx context.Context, sess *session.Session, req TurnRequest) (*TurnResult, error)
	StopConversation(ctx context.Context, sess *session.Session) (*ConversationState, error)
	Conversation(sess *session.Session) *ConversationState
	History(sess *session.Session, limit int) []model.TranslationRecord
	DownloadText(sess *session.Session, id int64) (*Download, error)
	DownloadAudio(ctx context.Context, sess *session.Session, id int64) (*Download, error)
}

type translatorService struct {
	langs        *catalog.Catalog
	detector     detect.Detector
	backends     Backends
	mic          *audio.Microphone
	historyLimit int
	now          func() time.Time
}

// NewTranslatorService creates the orchestrator.
func NewTranslatorService(langs *catalog.Catalog, detector detect.Detector, backends Backends, mic *audio.Microphone, historyLimit int) TranslatorService {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &translatorService{
		langs:        langs,
		detector:     detector,
		backends:     backends,
		mic:          mic,
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

func (s *translatorService) Languages() []model.LanguageEntry {
	return s.langs.Entries()
}

func (s *translatorService) Detect(ctx context.Context, text string) (*DetectResult, error) {
	code, err := s.detector.Detect(text)
	if err != nil {
		return nil, classify("detect", err, KindDetection)
	}
	name, _ := s.langs.LookupName(code)
	return &DetectResult{Code: code, Name: name}, nil
}

// TranslateText runs Idle -> Translating -> Success|Error for typed text.
func (s *translatorService) TranslateText(ctx context.Context, sess *session.Session, req TextRequest) (*Result, error) {
	const op = "translate text"
	sess.Lock()
	defer sess.Unlock()

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, newError(KindEmptyInput, op, errors.New("text is empty"))
	}
	source, target, err := s.resolvePair(req.Source, req.Target)
	if err != nil {
		return nil, newError(KindInvalidLanguage, op, err)
	}

	logStage(sess, op, "translating")
	res, err := s.translate(ctx, sess, op, model.ModeText, "", text, source, target)
	if err != nil {
		logStage(sess, op, "error", "error", err)
		return nil, err
	}
	logStage(sess, op, "success")
	return res, nil
}

// TranslateVoice runs Idle -> Listening -> Recognizing -> Translating.
func (s *translatorService) TranslateVoice(ctx context.Context, sess *session.Session, req VoiceRequest) (*Result, error) {
	const op = "translate voice"
	sess.Lock()
	defer sess.Unlock()

	source, target, err := s.resolvePair(req.Source, req.Target)
	if err != nil {
		return nil, newError(KindInvalidLanguage, op, err)
	}

	res, err := s.voicePipeline(ctx, sess, op, model.ModeVoice, "", req.Audio, req.Filename, req.ContentType, source, target)
	if err != nil {
		logStage(sess, op, "error", "error", err)
		return nil, err
	}
	logStage(sess, op, "success")
	return res, nil
}

func (s *translatorService) StartConversation(ctx context.Context, sess *session.Session, speaker1, speaker2 string) (*ConversationState, error) {
	const op = "start conversation"
	sess.Lock()
	defer sess.Unlock()

	lang1, err := s.resolveTarget(speaker1)
	if err != nil {
		return nil, newError(KindInvalidLanguage, op, fmt.Errorf("speaker 1: %w", err))
	}
	lang2, err := s.resolveTarget(speaker2)
	if err != nil {
		return nil, newError(KindInvalidLanguage, op, fmt.Errorf("speaker 2: %w", err))
	}

	c := sess.UpdateConversation(func(c *session.Conversation) { c.Start(lang1, lang2) })
	logStage(sess, op, c.Turn.String())
	return s.conversationState(c), nil
}

// RecordTurn runs the voice pipeline for the speaker whose turn it is. The
// turn passes to the other speaker only when the translation succeeds.
func (s *translatorService) RecordTurn(ctx context.Context, sess *session.Session, req TurnRequest) (*TurnResult, error) {
	const op = "record turn"
	sess.Lock()
	defer sess.Unlock()

	before := sess.Conversation()
	source, target, err := before.Expect(req.Speaker)
	if err != nil {
		return nil, classify(op, err, KindConversation)
	}

	speaker := fmt.Sprintf("Speaker %d", req.Speaker)
	res, err := s.voicePipeline(ctx, sess, op, model.ModeConversation, speaker, req.Audio, req.Filename, req.ContentType, source, target)
	if err != nil {
		logStage(sess, op, "error", "speaker", req.Speaker, "error", err)
		return nil, err
	}

	after := sess.UpdateConversation(func(c *session.Conversation) {
		if c.Turn == before.Turn {
			c.Advance()
		}
	})
	logStage(sess, op, after.Turn.String(), "speaker", req.Speaker)
	return &TurnResult{Result: *res, Conversation: *s.conversationState(after)}, nil
}

func (s *translatorService) StopConversation(ctx context.Context, sess *session.Session) (*ConversationState, error) {
	sess.Lock()
	defer sess.Unlock()

	c := sess.UpdateConversation(func(c *session.Conversation) { c.Stop() })
	logStage(sess, "stop conversation", c.Turn.String())
	return s.conversationState(c), nil
}

func (s *translatorService) Conversation(sess *session.Session) *ConversationState {
	return s.conversationState(sess.Conversation())
}

// History returns the last limit records in insertion order.
func (s *translatorService) History(sess *session.Session, limit int) []model.TranslationRecord {
	if limit <= 0 {
		limit = s.historyLimit
	}
	return sess.History().Recent(limit)
}

func (s *translatorService) DownloadText(sess *session.Session, id int64) (*Download, error) {
	rec, ok := sess.History().Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	name := textFileName
	if rec.Mode != model.ModeText {
		name = voiceTextFileName
	}
	return &Download{Filename: name, ContentType: "text/plain; charset=utf-8", Data: []byte(rec.TranslatedText)}, nil
}

func (s *translatorService) DownloadAudio(ctx context.Context, sess *session.Session, id int64) (*Download, error) {
	const op = "download audio"
	rec, ok := sess.History().Find(id)
	if !ok {
		return nil, ErrNotFound
	}
	code, ok := s.langs.LookupCode(rec.TargetLanguage)
	if !ok {
		return nil, newError(KindSynthesis, op, fmt.Errorf("no code for %q", rec.TargetLanguage))
	}

	data, err := s.synthesize(ctx, rec.TranslatedText, code)
	if err != nil {
		return nil, classify(op, err, KindSynthesis)
	}
	name := audioFileName
	if rec.Mode != model.ModeText {
		name = voiceAudioFileName
	}
	return &Download{Filename: name, ContentType: "audio/mpeg", Data: data}, nil
}

func (s *translatorService) voicePipeline(ctx context.Context, sess *session.Session, op string, mode model.Mode, speaker string, src io.Reader, filename, contentType, source, target string) (*Result, error) {
	if src == nil {
		return nil, newError(KindEmptyInput, op, audio.ErrEmptyClip)
	}

	logStage(sess, op, "listening")
	clip, err := s.mic.Listen(ctx, src, filename, contentType)
	if err != nil {
		return nil, classify(op, err, KindRecognitionService)
	}
	if clip.IsSilent() {
		return nil, newError(KindUnrecognizedSpeech, op, errors.New("clip is silent"))
	}

	logStage(sess, op, "recognizing")
	recognizer, err := s.backends.Recognizer(ctx)
	if err != nil {
		return nil, newError(KindRecognitionService, op, err)
	}
	hint := source
	if hint == translate.AutoSource {
		hint = speech.AutoLanguage
	}
	text, err := recognizer.Recognize(ctx, clip, hint)
	if err != nil {
		return nil, classify(op, err, KindRecognitionService)
	}
	if strings.TrimSpace(text) == "" {
		return nil, newError(KindUnrecognizedSpeech, op, speech.ErrUnrecognized)
	}

	logStage(sess, op, "translating")
	res, err := s.translate(ctx, sess, op, mode, speaker, text, source, target)
	if err != nil {
		return nil, err
	}
	res.Truncated = clip.Truncated
	return res, nil
}

// translate calls the translator, commits the record and then synthesizes
// audio. Nothing is appended unless translation succeeds.
func (s *translatorService) translate(ctx context.Context, sess *session.Session, op string, mode model.Mode, speaker, text, source, target string) (*Result, error) {
	res := &Result{}
	if source == translate.AutoSource {
		code, err := s.detector.Detect(text)
		if err != nil {
			return nil, classify(op, err, KindDetection)
		}
		if !s.langs.HasCode(code) {
			return nil, newError(KindDetection, op, fmt.Errorf("detected language %q is not supported", code))
		}
		source = code
		res.DetectedLanguage = code
	}

	translator, err := s.backends.Translator(ctx)
	if err != nil {
		return nil, newError(KindTranslationService, op, err)
	}
	translated, err := translator.Translate(ctx, text, source, target)
	if err != nil {
		return nil, classify(op, err, KindTranslationService)
	}
	if strings.TrimSpace(translated) == "" {
		return nil, newError(KindTranslationService, op, errors.New("empty translation"))
	}

	fromName, _ := s.langs.LookupName(source)
	toName, _ := s.langs.LookupName(target)
	res.Record = model.TranslationRecord{
		ID:             snowflake.NextID(),
		Mode:           mode,
		SourceLanguage: fromName,
		TargetLanguage: toName,
		OriginalText:   text,
		TranslatedText: translated,
		Speaker:        speaker,
		CreatedAt:      s.now().UTC(),
	}
	sess.History().Append(res.Record)

	data, err := s.synthesize(ctx, translated, target)
	if err != nil {
		res.AudioError = err.Error()
		logger.Warn("synthesis failed", "module", "service", "action", "synthesize", "resource", "speech", "result", "failed", "session_id", sess.ID, "error", err)
		return res, nil
	}
	res.Audio = data
	return res, nil
}

func (s *translatorService) synthesize(ctx context.Context, text, code string) ([]byte, error) {
	synth, err := s.backends.Synthesizer(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", speech.ErrSynthesis, err)
	}
	return synth.Synthesize(ctx, text, code)
}

// resolveLanguage accepts a display name or a code.
func (s *translatorService) resolveLanguage(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if code, ok := s.langs.LookupCode(value); ok {
		return code, true
	}
	if code := strings.ToLower(value); s.langs.HasCode(code) {
		return code, true
	}
	return "", false
}

func (s *translatorService) resolveSource(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", catalog.Auto, "detect":
		return translate.AutoSource, nil
	}
	code, ok := s.resolveLanguage(value)
	if !ok {
		return "", fmt.Errorf("unknown source language %q", value)
	}
	return code, nil
}

func (s *translatorService) resolveTarget(value string) (string, error) {
	code, ok := s.resolveLanguage(value)
	if !ok {
		return "", fmt.Errorf("unknown target language %q", value)
	}
	return code, nil
}

func (s *translatorService) resolvePair(sourceValue, targetValue string) (string, string, error) {
	source, err := s.resolveSource(sourceValue)
	if err != nil {
		return "", "", err
	}
	target, err := s.resolveTarget(targetValue)
	if err != nil {
		return "", "", err
	}
	return source, target, nil
}

func (s *translatorService) conversationState(c session.Conversation) *ConversationState {
	state := &ConversationState{
		Active:    c.Active(),
		Turn:      c.Turn.String(),
		Exchanges: c.Exchanges,
	}
	state.Speaker1, _ = s.langs.LookupName(c.Language1)
	state.Speaker2, _ = s.langs.LookupName(c.Language2)
	return state
}

func logStage(sess *session.Session, op, stage string, args ...any) {
	attrs := append([]any{"module", "service", "action", op, "resource", "session", "result", stage, "session_id", sess.ID}, args...)
	if stage == "error" {
		logger.Warn("action failed", attrs...)
		return
	}
	logger.Debug("action stage", attrs...)
}
