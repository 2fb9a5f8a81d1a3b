package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/service"
)

type errorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	// Detail carries the upstream failure for backend service errors.
	Detail string `json:"detail,omitempty"`
}

func writeServiceError(c echo.Context, err error) error {
	kind := service.KindOf(err)
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return kindError(c, http.StatusBadRequest, kind, "please provide some input to translate")
	case errors.Is(err, service.ErrInvalidLanguage):
		return kindError(c, http.StatusBadRequest, kind, "invalid language selection")
	case errors.Is(err, service.ErrUnrecognizedSpeech):
		return kindError(c, http.StatusUnprocessableEntity, kind, "could not understand audio")
	case errors.Is(err, service.ErrDetection):
		return kindError(c, http.StatusUnprocessableEntity, kind, "could not detect the source language")
	case errors.Is(err, service.ErrConversation):
		return kindError(c, http.StatusConflict, kind, "conversation is not expecting this speaker")
	case errors.Is(err, service.ErrTranslationService):
		c.Logger().Error(err)
		return detailError(c, kind, "translation service unavailable", err)
	case errors.Is(err, service.ErrRecognitionService):
		c.Logger().Error(err)
		return detailError(c, kind, "speech recognition service unavailable", err)
	case errors.Is(err, service.ErrSynthesis):
		c.Logger().Error(err)
		return detailError(c, kind, "speech synthesis failed", err)
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func kindError(c echo.Context, status int, kind service.Kind, message string) error {
	return c.JSON(status, errorResponse{Error: message, Kind: kind.String()})
}

func detailError(c echo.Context, kind service.Kind, message string, err error) error {
	return c.JSON(http.StatusBadGateway, errorResponse{Error: message, Kind: kind.String(), Detail: err.Error()})
}
