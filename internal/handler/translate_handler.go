package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type TranslateHandler struct {
	service service.TranslatorService
}

// Request/Response types

type translateTextRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type translationResponse struct {
	Record           model.TranslationRecord `json:"record"`
	DetectedLanguage string                  `json:"detectedLanguage,omitempty"`
	// Audio is base64-encoded MP3.
	Audio      []byte `json:"audio,omitempty" swaggertype:"string" format:"base64"`
	AudioError string `json:"audioError,omitempty"`
	Truncated  bool   `json:"truncated,omitempty"`
}

func NewTranslateHandler(service service.TranslatorService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate/text", h.TranslateText)
	g.POST("/translate/voice", h.TranslateVoice)
}

// TranslateText translates typed text.
// @Summary Translate text
// @Description Translate text into the target language. Source may be a language, "auto" or "Detect".
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateTextRequest true "Text translation request"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/text [post]
func (h *TranslateHandler) TranslateText(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	var req translateTextRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	res, err := h.service.TranslateText(c.Request().Context(), sess, service.TextRequest{
		Text:   req.Text,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, newTranslationResponse(res))
}

// TranslateVoice translates an uploaded recording.
// @Summary Translate voice
// @Description Recognize speech in the uploaded audio and translate it. Recordings longer than the listen limit are truncated.
// @Tags translate
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Recording (WAV, MP3, WebM)"
// @Param source formData string false "Source language or auto"
// @Param target formData string true "Target language"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/voice [post]
func (h *TranslateHandler) TranslateVoice(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	upload, err := openUpload(c, "audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid audio upload"})
	}
	req := service.VoiceRequest{
		Source: c.FormValue("source"),
		Target: c.FormValue("target"),
	}
	if upload != nil {
		defer upload.Close()
		req.Audio, req.Filename, req.ContentType = upload, upload.filename, upload.contentType
	}

	res, err := h.service.TranslateVoice(c.Request().Context(), sess, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, newTranslationResponse(res))
}

func newTranslationResponse(res *service.Result) translationResponse {
	return translationResponse{
		Record:           res.Record,
		DetectedLanguage: res.DetectedLanguage,
		Audio:            res.Audio,
		AudioError:       res.AudioError,
		Truncated:        res.Truncated,
	}
}

type uploadedFile struct {
	multipart.File
	filename    string
	contentType string
}

// openUpload opens the named multipart file. A missing field yields a nil
// file and no error so the service can report empty input.
func openUpload(c echo.Context, field string) (*uploadedFile, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &uploadedFile{File: f, filename: fh.Filename, contentType: fh.Header.Get("Content-Type")}, nil
}
