// Package session implements the cookie-based session identity protocol. A
// session is nothing but an opaque token held by the client: no server-side
// session record exists, the token is purely a grouping key for transaction
// rows and cache keys. The token carries no signature; anyone holding the
// string can present it. That is the accepted trust boundary of a same-origin
// browser cookie.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintx/domain"
)

// CookieName is the name of the session cookie.
const CookieName = "sessionId"

// Manager issues and resolves session tokens.
type Manager struct {
	secure bool
	maxAge time.Duration
}

// NewManager creates a manager. secure marks issued cookies Secure, which
// production deployments must enable.
func NewManager(secure bool, maxAge time.Duration) *Manager {
	return &Manager{secure: secure, maxAge: maxAge}
}

// Issue generates a fresh token and attaches it to the response as a
// persistent cookie. Called only on the first write of an unidentified
// client.
func (m *Manager) Issue(c echo.Context) string {
	token := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return token
}

// FromRequest returns the session token carried by the request, or
// ErrUnauthorized when none is present. Reads must call this before touching
// the repository.
func (m *Manager) FromRequest(c echo.Context) (string, error) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", domain.ErrUnauthorized
	}
	return cookie.Value, nil
}

// Resolve returns the request's token when present, issuing a new one
// otherwise. Used by the write path, where a missing session is the implicit
// session-creation transition rather than an error.
func (m *Manager) Resolve(c echo.Context) string {
	if token, err := m.FromRequest(c); err == nil {
		return token
	}
	return m.Issue(c)
}
