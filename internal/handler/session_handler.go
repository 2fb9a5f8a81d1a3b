package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/model"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

// SessionCookieName is the name of the cookie carrying the session ID.
const SessionCookieName = "translator_session"

type SessionHandler struct {
	sessions *session.Manager
}

type themeRequest struct {
	Theme string `json:"theme"`
}

type themeResponse struct {
	Theme model.Theme `json:"theme"`
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

func (h *SessionHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/session/theme", h.GetTheme)
	g.PUT("/session/theme", h.SetTheme)
	g.DELETE("/session", h.End)
}

// GetTheme returns the session's theme.
// @Summary Get theme
// @Tags session
// @Produce json
// @Success 200 {object} themeResponse
// @Router /session/theme [get]
func (h *SessionHandler) GetTheme(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}
	return c.JSON(http.StatusOK, themeResponse{Theme: sess.Theme()})
}

// SetTheme switches between the light and dark theme.
// @Summary Set theme
// @Tags session
// @Accept json
// @Produce json
// @Param request body themeRequest true "Theme (light or dark)"
// @Success 200 {object} themeResponse
// @Failure 400 {object} errorResponse
// @Router /session/theme [put]
func (h *SessionHandler) SetTheme(c echo.Context) error {
	sess, ok := currentSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{Error: "missing session"})
	}

	var req themeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	theme, ok := model.ParseTheme(req.Theme)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "theme must be light or dark"})
	}
	sess.SetTheme(theme)
	return c.JSON(http.StatusOK, themeResponse{Theme: theme})
}

// End discards the session and its history.
// @Summary End session
// @Tags session
// @Success 204
// @Router /session [delete]
func (h *SessionHandler) End(c echo.Context) error {
	if sess, ok := currentSession(c); ok {
		h.sessions.End(sess.ID)
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}
