package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type LanguageHandler struct {
	service service.TranslatorService
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func NewLanguageHandler(service service.TranslatorService) *LanguageHandler {
	return &LanguageHandler{service: service}
}

func (h *LanguageHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/languages", h.List)
	g.POST("/detect", h.Detect)
}

// List returns the supported languages.
// @Summary List languages
// @Description Get the supported languages in display order
// @Tags languages
// @Produce json
// @Success 200 {array} model.LanguageEntry
// @Router /languages [get]
func (h *LanguageHandler) List(c echo.Context) error {
	entries := h.service.Languages()
	if entries == nil {
		entries = []model.LanguageEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Detect guesses the language of a text.
// @Summary Detect language
// @Description Detect the language of the given text
// @Tags languages
// @Accept json
// @Produce json
// @Param request body detectRequest true "Detect request"
// @Success 200 {object} detectResponse
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /detect [post]
func (h *LanguageHandler) Detect(c echo.Context) error {
	var req detectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	res, err := h.service.Detect(c.Request().Context(), req.Text)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, detectResponse{Code: res.Code, Name: res.Name})
}
