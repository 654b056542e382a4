package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "sessionID"

// requireJSON rejects POST/PUT bodies that are not declared as JSON with 415
// before any parsing happens.
func requireJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		method := c.Request().Method
		if method == http.MethodPost || method == http.MethodPut {
			contentType := c.Request().Header.Get(echo.HeaderContentType)
			if !strings.Contains(contentType, echo.MIMEApplicationJSON) {
				return c.JSON(http.StatusUnsupportedMediaType, map[string]string{
					"type":    "validation_error",
					"message": "Content-Type must be application/json",
				})
			}
		}
		return next(c)
	}
}

// requireSession gates reads: without a usable session cookie the request
// fails with 401 before the repository is touched.
func (h *Handler) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID, err := h.sessions.FromRequest(c)
		if err != nil {
			return err
		}
		c.Set(sessionContextKey, sessionID)
		return next(c)
	}
}

// sessionFrom returns the session id stashed by requireSession.
func sessionFrom(c echo.Context) string {
	sessionID, _ := c.Get(sessionContextKey).(string)
	return sessionID
}
