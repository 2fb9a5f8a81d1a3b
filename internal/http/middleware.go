package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/handler"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

// RequestLoggerMiddleware logs HTTP requests using logger. Server errors log
// at error level, client errors at warn and the rest at debug.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			attrs := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
				"user_agent", req.UserAgent(),
			}
			if sess, ok := c.Get(handler.SessionContextKey).(*session.Session); ok {
				attrs = append(attrs, "session_id", sess.ID)
			}

			switch {
			case status >= 500:
				logger.Error("http request", attrs...)
			case status >= 400:
				logger.Warn("http request", attrs...)
			default:
				logger.Debug("http request", attrs...)
			}
			return nil
		}
	}
}

// SessionMiddleware binds the caller's session to the request context. A
// missing or expired session cookie starts a fresh session.
func SessionMiddleware(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(handler.SessionCookieName); err == nil {
				id = cookie.Value
			}

			sess, created := sessions.GetOrCreate(id)
			if created {
				c.SetCookie(&http.Cookie{
					Name:     handler.SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(handler.SessionContextKey, sess)
			return next(c)
		}
	}
}
