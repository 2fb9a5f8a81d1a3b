package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/session"
)

// SessionContextKey is the echo context key holding the caller's *session.Session.
const SessionContextKey = "session"

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

func parseLimitParam(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// currentSession returns the session bound by the session middleware.
func currentSession(c echo.Context) (*session.Session, bool) {
	sess, ok := c.Get(SessionContextKey).(*session.Session)
	return sess, ok && sess != nil
}
