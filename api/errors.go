package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fintx/domain"
)

// handleError maps the error taxonomy to JSON responses. Every body carries a
// "type" discriminator; nothing internal leaks to the client.
func (h *Handler) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		valErr  *domain.ValidationError
		appErr  *domain.AppError
		echoErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &valErr):
		err = c.JSON(http.StatusBadRequest, map[string]interface{}{
			"type":   "validation_error",
			"issues": valErr.Issues,
		})
	case errors.Is(err, domain.ErrUnauthorized):
		err = c.JSON(http.StatusUnauthorized, map[string]string{
			"type":    "authorization_error",
			"message": "missing or invalid session",
		})
	case errors.As(err, &appErr):
		err = c.JSON(appErr.StatusCode, map[string]string{
			"type":    "application_error",
			"message": appErr.Message,
		})
	case errors.As(err, &echoErr):
		err = c.JSON(echoErr.Code, map[string]interface{}{
			"type":    "application_error",
			"message": echoErr.Message,
		})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		err = c.JSON(http.StatusInternalServerError, map[string]string{
			"type":    "internal_error",
			"message": "Internal server error",
		})
	}
	if err != nil {
		h.log.Error().Err(err).Msg("failed to write error response")
	}
}
