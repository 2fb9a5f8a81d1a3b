package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/audio"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/catalog"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/detect"
	detectmock "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/detect/mock"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
	servicemock "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/mock"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech"
	speechmock "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/speech/mock"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate"
	translatemock "github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service/translate/mock"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

type fixture struct {
	translator *translatemock.MockTranslator
	recognizer *speechmock.MockRecognizer
	synth      *speechmock.MockSynthesizer
	detector   *detectmock.MockDetector
	mic        *audio.Microphone
	svc        service.TranslatorService
	sess       *session.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		translator: translatemock.NewMockTranslator(ctrl),
		recognizer: speechmock.NewMockRecognizer(ctrl),
		synth:      speechmock.NewMockSynthesizer(ctrl),
		detector:   detectmock.NewMockDetector(ctrl),
		mic:        audio.NewMicrophone(5 * time.Second),
	}
	backends := servicemock.NewMockBackends(ctrl)
	backends.EXPECT().Translator(gomock.Any()).Return(f.translator, nil).AnyTimes()
	backends.EXPECT().Recognizer(gomock.Any()).Return(f.recognizer, nil).AnyTimes()
	backends.EXPECT().Synthesizer(gomock.Any()).Return(f.synth, nil).AnyTimes()

	f.svc = service.NewTranslatorService(catalog.Default(), f.detector, backends, f.mic, 0)
	f.sess = session.NewManager(model.ThemeLight).Create()
	return f
}

// speechWAV is a short audible 16 kHz mono clip.
func speechWAV() []byte {
	format := audio.Format{AudioFormat: 1, Channels: 1, SampleRate: 16000, BitsPerSample: 16}
	pcm := make([]byte, 16000)
	for i := 0; i < len(pcm)/2; i++ {
		s := int16(9000 * math.Sin(float64(i)/6))
		pcm[i*2] = byte(s)
		pcm[i*2+1] = byte(s >> 8)
	}
	return audio.EncodeWAV(pcm, format)
}

func silentWAV() []byte {
	format := audio.Format{AudioFormat: 1, Channels: 1, SampleRate: 16000, BitsPerSample: 16}
	return audio.EncodeWAV(make([]byte, 16000), format)
}

func TestTranslateText_HelloToHindi(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "नमस्ते", "hi").Return([]byte("mp3"), nil)

	res, err := f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Hindi"})
	require.NoError(t, err)
	require.Equal(t, "नमस्ते", res.Record.TranslatedText)
	require.Equal(t, "English", res.Record.SourceLanguage)
	require.Equal(t, "Hindi", res.Record.TargetLanguage)
	require.Equal(t, "Hello", res.Record.OriginalText)
	require.Equal(t, model.ModeText, res.Record.Mode)
	require.NotZero(t, res.Record.ID)
	require.Equal(t, []byte("mp3"), res.Audio)
	require.Empty(t, res.AudioError)

	history := f.svc.History(f.sess, 0)
	require.Len(t, history, 1)
	require.Equal(t, res.Record, history[0])
}

func TestTranslateText_AcceptsCodes(t *testing.T) {
	f := newFixture(t)

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "ta").Return("வணக்கம்", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), "ta").Return([]byte("mp3"), nil)

	res, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "  Hello ", Source: "EN", Target: "ta"})
	require.NoError(t, err)
	require.Equal(t, "Tamil", res.Record.TargetLanguage)
}

func TestTranslateText_ServiceErrorLeavesHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("mp3"), nil)
	_, err := f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Hindi"})
	require.NoError(t, err)
	before := f.sess.History().Len()

	f.translator.EXPECT().Translate(gomock.Any(), "Goodbye", "en", "hi").
		Return("", fmt.Errorf("%w: status 503", translate.ErrService))

	_, err = f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: "Goodbye", Source: "English", Target: "Hindi"})
	require.ErrorIs(t, err, service.ErrTranslationService)
	require.ErrorIs(t, err, translate.ErrService)
	require.Equal(t, service.KindTranslationService, service.KindOf(err))
	require.Equal(t, before, f.sess.History().Len())
}

func TestTranslateText_EmptyInput(t *testing.T) {
	f := newFixture(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: text, Source: "English", Target: "Hindi"})
		require.ErrorIs(t, err, service.ErrEmptyInput)
		require.Equal(t, service.KindEmptyInput, service.KindOf(err))
	}
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateText_InvalidLanguage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Klingon"})
	require.ErrorIs(t, err, service.ErrInvalidLanguage)

	_, err = f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello", Source: "Elvish", Target: "Hindi"})
	require.ErrorIs(t, err, service.ErrInvalidLanguage)
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateText_RemoteInvalidLanguage(t *testing.T) {
	f := newFixture(t)

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "as").
		Return("", fmt.Errorf("%w: rejected", translate.ErrInvalidLanguage))

	_, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Assamese"})
	require.Equal(t, service.KindInvalidLanguage, service.KindOf(err))
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateText_AutoDetect(t *testing.T) {
	f := newFixture(t)

	f.detector.EXPECT().Detect("Hello there").Return("en", nil)
	f.translator.EXPECT().Translate(gomock.Any(), "Hello there", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), "hi").Return([]byte("mp3"), nil)

	res, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello there", Source: "Detect", Target: "Hindi"})
	require.NoError(t, err)
	require.Equal(t, "en", res.DetectedLanguage)
	require.Equal(t, "English", res.Record.SourceLanguage)
}

func TestTranslateText_DetectionFailure(t *testing.T) {
	f := newFixture(t)

	f.detector.EXPECT().Detect("12345").Return("", detect.ErrUndetermined)

	_, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "12345", Source: "auto", Target: "Hindi"})
	require.ErrorIs(t, err, service.ErrDetection)
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateText_SynthesisFailureKeepsText(t *testing.T) {
	f := newFixture(t)

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "or").Return("ନମସ୍କାର", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "ନମସ୍କାର", "or").
		Return(nil, fmt.Errorf("%w: language \"or\" not supported", speech.ErrSynthesis))

	res, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Odia"})
	require.NoError(t, err)
	require.Equal(t, "ନମସ୍କାର", res.Record.TranslatedText)
	require.Nil(t, res.Audio)
	require.Contains(t, res.AudioError, "not supported")
	require.Equal(t, 1, f.sess.History().Len())
}

func TestTranslateVoice_Success(t *testing.T) {
	f := newFixture(t)

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), "en").
		DoAndReturn(func(ctx context.Context, clip audio.Clip, hint string) (string, error) {
			require.Equal(t, audio.ContentTypeWAV, clip.ContentType)
			require.False(t, f.mic.InUse())
			return "Good morning", nil
		})
	f.translator.EXPECT().Translate(gomock.Any(), "Good morning", "en", "bn").Return("সুপ্রভাত", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "সুপ্রভাত", "bn").Return([]byte("mp3"), nil)

	res, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(speechWAV()), Filename: "clip.wav", Source: "English", Target: "Bengali",
	})
	require.NoError(t, err)
	require.Equal(t, model.ModeVoice, res.Record.Mode)
	require.Equal(t, "Good morning", res.Record.OriginalText)
	require.Equal(t, 1, f.sess.History().Len())
	require.False(t, f.mic.InUse())
}

func TestTranslateVoice_Unrecognized(t *testing.T) {
	f := newFixture(t)

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).Return("", speech.ErrUnrecognized)

	_, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(speechWAV()), Source: "English", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrUnrecognizedSpeech)
	require.Zero(t, f.sess.History().Len())
	require.False(t, f.mic.InUse())
}

func TestTranslateVoice_SilentClipSkipsRecognizer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(silentWAV()), Source: "English", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrUnrecognizedSpeech)
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateVoice_EmptyAudio(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(nil), Source: "English", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrEmptyInput)

	_, err = f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{Source: "English", Target: "Hindi"})
	require.ErrorIs(t, err, service.ErrEmptyInput)
	require.False(t, f.mic.InUse())
}

func TestTranslateVoice_RecognitionServiceError(t *testing.T) {
	f := newFixture(t)

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), speech.AutoLanguage).
		Return("", fmt.Errorf("%w: status 500", speech.ErrRecognitionService))

	_, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(speechWAV()), Source: "Detect", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrRecognitionService)
	require.NotErrorIs(t, err, service.ErrUnrecognizedSpeech)
	require.Zero(t, f.sess.History().Len())
}

func TestTranslateVoice_TranslationErrorLeavesHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("mp3"), nil)
	_, err := f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Hindi"})
	require.NoError(t, err)
	before := f.sess.History().Len()

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), "en").Return("Good night", nil)
	f.translator.EXPECT().Translate(gomock.Any(), "Good night", "en", "hi").
		Return("", fmt.Errorf("%w: status 502", translate.ErrService))

	_, err = f.svc.TranslateVoice(ctx, f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(speechWAV()), Source: "English", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrTranslationService)
	require.Equal(t, service.KindTranslationService, service.KindOf(err))
	require.Equal(t, before, f.sess.History().Len())
	require.False(t, f.mic.InUse())
}

func TestTranslateVoice_MalformedHeader(t *testing.T) {
	f := newFixture(t)

	wav := audio.EncodeWAV(make([]byte, 4096), audio.Format{Channels: 1, SampleRate: 3000000000, BitsPerSample: 16})
	_, err := f.svc.TranslateVoice(context.Background(), f.sess, service.VoiceRequest{
		Audio: bytes.NewReader(wav), Source: "English", Target: "Hindi",
	})
	require.ErrorIs(t, err, service.ErrUnrecognizedSpeech)
	require.Zero(t, f.sess.History().Len())
	require.False(t, f.mic.InUse())
}

func TestConversation_Turns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 1, Audio: bytes.NewReader(speechWAV())})
	require.ErrorIs(t, err, service.ErrConversation)

	state, err := f.svc.StartConversation(ctx, f.sess, "English", "Hindi")
	require.NoError(t, err)
	require.True(t, state.Active)
	require.Equal(t, "speaker1", state.Turn)
	require.Equal(t, "English", state.Speaker1)
	require.Equal(t, "Hindi", state.Speaker2)

	_, err = f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 2, Audio: bytes.NewReader(speechWAV())})
	require.ErrorIs(t, err, service.ErrConversation)

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), "en").Return("How are you", nil)
	f.translator.EXPECT().Translate(gomock.Any(), "How are you", "en", "hi").Return("आप कैसे हैं", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "आप कैसे हैं", "hi").Return([]byte("mp3"), nil)

	turn, err := f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 1, Audio: bytes.NewReader(speechWAV())})
	require.NoError(t, err)
	require.Equal(t, "Speaker 1", turn.Record.Speaker)
	require.Equal(t, model.ModeConversation, turn.Record.Mode)
	require.Equal(t, "speaker2", turn.Conversation.Turn)

	// a failed turn keeps the floor with the same speaker
	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), "hi").Return("", speech.ErrUnrecognized)
	_, err = f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 2, Audio: bytes.NewReader(speechWAV())})
	require.ErrorIs(t, err, service.ErrUnrecognizedSpeech)
	require.Equal(t, "speaker2", f.svc.Conversation(f.sess).Turn)

	f.recognizer.EXPECT().Recognize(gomock.Any(), gomock.Any(), "hi").Return("मैं ठीक हूँ", nil)
	f.translator.EXPECT().Translate(gomock.Any(), "मैं ठीक हूँ", "hi", "en").Return("I am fine", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "I am fine", "en").Return([]byte("mp3"), nil)

	turn, err = f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 2, Audio: bytes.NewReader(speechWAV())})
	require.NoError(t, err)
	require.Equal(t, "Hindi", turn.Record.SourceLanguage)
	require.Equal(t, "English", turn.Record.TargetLanguage)
	require.Equal(t, "speaker1", turn.Conversation.Turn)
	require.Equal(t, 2, turn.Conversation.Exchanges)
	require.Equal(t, 2, f.sess.History().Len())

	state, err = f.svc.StopConversation(ctx, f.sess)
	require.NoError(t, err)
	require.False(t, state.Active)

	_, err = f.svc.RecordTurn(ctx, f.sess, service.TurnRequest{Speaker: 1, Audio: bytes.NewReader(speechWAV())})
	require.ErrorIs(t, err, service.ErrConversation)
}

func TestStartConversation_RejectsUnknownLanguage(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.StartConversation(context.Background(), f.sess, "English", "Detect")
	require.ErrorIs(t, err, service.ErrInvalidLanguage)
	require.False(t, f.svc.Conversation(f.sess).Active)
}

func TestHistory_LimitAndOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("mp3"), nil).Times(7)
	for i := 0; i < 7; i++ {
		text := fmt.Sprintf("line %d", i)
		f.translator.EXPECT().Translate(gomock.Any(), text, "en", "hi").Return("पंक्ति "+text, nil)
		_, err := f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: text, Source: "English", Target: "Hindi"})
		require.NoError(t, err)
	}

	recent := f.svc.History(f.sess, 0)
	require.Len(t, recent, service.DefaultHistoryLimit)
	for i, rec := range recent {
		require.Equal(t, fmt.Sprintf("line %d", i+2), rec.OriginalText)
	}
	require.Len(t, f.svc.History(f.sess, 100), 7)
}

func TestDownloads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), "नमस्ते", "hi").Return(nil, errors.New("offline"))
	res, err := f.svc.TranslateText(ctx, f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Hindi"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AudioError)

	text, err := f.svc.DownloadText(f.sess, res.Record.ID)
	require.NoError(t, err)
	require.Equal(t, "translated_text.txt", text.Filename)
	require.Equal(t, []byte("नमस्ते"), text.Data)

	f.synth.EXPECT().Synthesize(gomock.Any(), "नमस्ते", "hi").Return([]byte("mp3"), nil)
	mp3, err := f.svc.DownloadAudio(ctx, f.sess, res.Record.ID)
	require.NoError(t, err)
	require.Equal(t, "translation.mp3", mp3.Filename)
	require.Equal(t, "audio/mpeg", mp3.ContentType)

	f.synth.EXPECT().Synthesize(gomock.Any(), "नमस्ते", "hi").Return(nil, fmt.Errorf("%w: quota", speech.ErrSynthesis))
	_, err = f.svc.DownloadAudio(ctx, f.sess, res.Record.ID)
	require.ErrorIs(t, err, service.ErrSynthesis)

	_, err = f.svc.DownloadText(f.sess, 42)
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = f.svc.DownloadAudio(ctx, f.sess, 42)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestDetect(t *testing.T) {
	f := newFixture(t)

	f.detector.EXPECT().Detect("नमस्ते").Return("hi", nil)
	res, err := f.svc.Detect(context.Background(), "नमस्ते")
	require.NoError(t, err)
	require.Equal(t, &service.DetectResult{Code: "hi", Name: "Hindi"}, res)

	f.detector.EXPECT().Detect("").Return("", detect.ErrEmptyText)
	_, err = f.svc.Detect(context.Background(), "")
	require.ErrorIs(t, err, service.ErrDetection)
}

func TestSessionsAreIsolated(t *testing.T) {
	f := newFixture(t)
	other := session.NewManager("").Create()

	f.translator.EXPECT().Translate(gomock.Any(), "Hello", "en", "hi").Return("नमस्ते", nil)
	f.synth.EXPECT().Synthesize(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("mp3"), nil)
	_, err := f.svc.TranslateText(context.Background(), f.sess, service.TextRequest{Text: "Hello", Source: "English", Target: "Hindi"})
	require.NoError(t, err)

	require.Len(t, f.svc.History(f.sess, 0), 1)
	require.Empty(t, f.svc.History(other, 0))
}
