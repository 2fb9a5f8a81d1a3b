package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type providerTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings/providers", h.GetProviderSettings)
	g.PUT("/settings/providers", h.UpdateProviderSettings)
	g.POST("/settings/providers/test", h.TestProvider)
}

// GetProviderSettings returns the backend configuration.
// @Summary Get provider settings
// @Description Get the translation and speech backend configuration with masked API keys
// @Tags settings
// @Produce json
// @Success 200 {object} service.ProviderSettings
// @Failure 500 {object} errorResponse
// @Router /settings/providers [get]
func (h *SettingsHandler) GetProviderSettings(c echo.Context) error {
	settings, err := h.service.GetProviderSettings(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get settings"})
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateProviderSettings updates the backend configuration.
// @Summary Update provider settings
// @Description Update the backend configuration. Empty or masked API keys keep the stored key.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.ProviderSettings true "Provider settings"
// @Success 200 {object} service.ProviderSettings
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /settings/providers [put]
func (h *SettingsHandler) UpdateProviderSettings(c echo.Context) error {
	var req service.ProviderSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if err := h.service.SetProviderSettings(c.Request().Context(), &req); err != nil {
		if errors.Is(err, service.ErrInvalid) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to save settings"})
	}

	// Return updated settings (with masked keys)
	return h.GetProviderSettings(c)
}

// TestProvider tests the translator configuration.
// @Summary Test translator
// @Description Translate "Hello" to Hindi with the given LLM translator configuration
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.ProviderSettings true "Provider settings to test"
// @Success 200 {object} providerTestResponse
// @Failure 400 {object} errorResponse
// @Router /settings/providers/test [post]
func (h *SettingsHandler) TestProvider(c echo.Context) error {
	var req service.ProviderSettings
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	response, err := h.service.TestTranslator(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(http.StatusOK, providerTestResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, providerTestResponse{
		Success: true,
		Message: response,
	})
}
