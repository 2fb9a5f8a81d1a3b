package http

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/logger"
)

// reservedPrefixes are never answered with the front-end index.
var reservedPrefixes = []string{"/api", "/swagger"}

func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("static index missing", "module", "http", "action", "init", "resource", "static", "result", "failed", "path", indexPath)
		return
	}

	logger.Info("static assets enabled", "module", "http", "action", "init", "resource", "static", "result", "ok", "dir", dir)
	e.GET("/*", staticHandler(dir, indexPath))
}

// staticHandler serves files from dir and falls back to the index so the
// front-end can route client side.
func staticHandler(dir, indexPath string) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReserved(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean("/"+requestPath), "/")
		if cleanPath == "" || cleanPath == "." {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, filepath.FromSlash(cleanPath))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			if strings.HasPrefix(cleanPath, "assets/") {
				c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
			}
			return c.File(candidate)
		}

		logger.Debug("static fallback", "module", "http", "action", "fetch", "resource", "static", "result", "ok", "path", requestPath)
		return c.File(indexPath)
	}
}

func isReserved(p string) bool {
	for _, prefix := range reservedPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}
