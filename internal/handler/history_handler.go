package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type HistoryHandler struct {
	service service.TranslatorService
}

func NewHistoryHandler(service service.TranslatorService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/history", h.List)
	g.GET("/history/:id/text", h.DownloadText)
	g.GET("/history/:id/audio", h.DownloadAudio)
}

// List returns recent translations.
// @Summary List history
// @Description Get the most recent translations of the session, oldest first
// @Tags history
// @Produce json
// @Param limit query int false "Number of records (default 5)"
// @Success 200 {array} model.TranslationRecord
// @Router /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	records := h.service.History(sess, parseLimitParam(c))
	if records == nil {
		records = []model.TranslationRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// DownloadText returns the translated text of a record as a file.
// @Summary Download translated text
// @Tags history
// @Produce plain
// @Param id path string true "Record ID"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /history/{id}/text [get]
func (h *HistoryHandler) DownloadText(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	dl, err := h.service.DownloadText(sess, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeDownload(c, dl)
}

// DownloadAudio synthesizes the translated text of a record as MP3.
// @Summary Download translation audio
// @Tags history
// @Produce audio/mpeg
// @Param id path string true "Record ID"
// @Success 200 {file} file
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /history/{id}/audio [get]
func (h *HistoryHandler) DownloadAudio(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	dl, err := h.service.DownloadAudio(c.Request().Context(), sess, id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return writeDownload(c, dl)
}

func writeDownload(c echo.Context, dl *service.Download) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", dl.Filename))
	return c.Blob(http.StatusOK, dl.ContentType, dl.Data)
}
