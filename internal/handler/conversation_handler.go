package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type ConversationHandler struct {
	service service.TranslatorService
}

type startConversationRequest struct {
	Speaker1 string `json:"speaker1"`
	Speaker2 string `json:"speaker2"`
}

type turnResponse struct {
	translationResponse
	Conversation service.ConversationState `json:"conversation"`
}

func NewConversationHandler(service service.TranslatorService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

func (h *ConversationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/conversation", h.Get)
	g.POST("/conversation/start", h.Start)
	g.POST("/conversation/record", h.Record)
	g.POST("/conversation/stop", h.Stop)
}

// Get returns the conversation state.
// @Summary Get conversation
// @Description Get the conversation state of the current session
// @Tags conversation
// @Produce json
// @Success 200 {object} service.ConversationState
// @Router /conversation [get]
func (h *ConversationHandler) Get(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}
	return c.JSON(http.StatusOK, h.service.Conversation(sess))
}

// Start begins a two-speaker conversation. Speaker 1 talks first.
// @Summary Start conversation
// @Description Start a conversation between two languages. Restarting resets the turn to speaker 1.
// @Tags conversation
// @Accept json
// @Produce json
// @Param request body startConversationRequest true "Speaker languages"
// @Success 200 {object} service.ConversationState
// @Failure 400 {object} errorResponse
// @Router /conversation/start [post]
func (h *ConversationHandler) Start(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	state, err := h.service.StartConversation(c.Request().Context(), sess, req.Speaker1, req.Speaker2)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// Record translates one speaker's turn.
// @Summary Record turn
// @Description Recognize and translate the recording of the speaker whose turn it is. The turn only passes on success.
// @Tags conversation
// @Accept multipart/form-data
// @Produce json
// @Param speaker formData int true "Speaker (1 or 2)"
// @Param audio formData file true "Recording"
// @Success 200 {object} turnResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /conversation/record [post]
func (h *ConversationHandler) Record(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	speaker, err := strconv.Atoi(c.FormValue("speaker"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid speaker"})
	}
	upload, err := openUpload(c, "audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid audio upload"})
	}
	req := service.TurnRequest{Speaker: speaker}
	if upload != nil {
		defer upload.Close()
		req.Audio, req.Filename, req.ContentType = upload, upload.filename, upload.contentType
	}

	res, err := h.service.RecordTurn(c.Request().Context(), sess, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, turnResponse{
		translationResponse: newTranslationResponse(&res.Result),
		Conversation:        res.Conversation,
	})
}

// Stop ends the conversation.
// @Summary Stop conversation
// @Tags conversation
// @Produce json
// @Success 200 {object} service.ConversationState
// @Router /conversation/stop [post]
func (h *ConversationHandler) Stop(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	state, err := h.service.StopConversation(c.Request().Context(), sess)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}
