package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/PIYUSH-JOSHI1/SpeechToTxt/docs"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/handler"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

// Handlers groups the route registrars mounted under /api.
type Handlers struct {
	Language     *handler.LanguageHandler
	Translate    *handler.TranslateHandler
	Conversation *handler.ConversationHandler
	History      *handler.HistoryHandler
	Session      *handler.SessionHandler
	Settings     *handler.SettingsHandler
}

// MaxBodySize bounds request bodies; audio uploads are the largest.
const MaxBodySize = "26M"

func NewRouter(h Handlers, sessions *session.Manager, staticDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.BodyLimit(MaxBodySize), SessionMiddleware(sessions))
	h.Language.RegisterRoutes(api)
	h.Translate.RegisterRoutes(api)
	h.Conversation.RegisterRoutes(api)
	h.History.RegisterRoutes(api)
	h.Session.RegisterRoutes(api)
	h.Settings.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
