package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fintx/domain"
)

func newContext(t *testing.T, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/transactions", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIssueSetsCookieAttributes(t *testing.T) {
	m := NewManager(false, 7*24*time.Hour)
	c, rec := newContext(t, nil)

	token := m.Issue(c)
	if _, err := uuid.Parse(token); err != nil {
		t.Fatalf("token is not a uuid: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != CookieName || cookie.Value != token {
		t.Fatalf("unexpected cookie: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Error("cookie must be HTTP-only")
	}
	if cookie.Secure {
		t.Error("cookie must not be Secure outside production")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("expected SameSite=Strict, got %v", cookie.SameSite)
	}
	if cookie.Path != "/" {
		t.Errorf("expected path /, got %q", cookie.Path)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("expected one week max-age, got %d", cookie.MaxAge)
	}
}

func TestIssueSecureInProduction(t *testing.T) {
	m := NewManager(true, 7*24*time.Hour)
	c, rec := newContext(t, nil)

	m.Issue(c)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || !cookies[0].Secure {
		t.Fatalf("expected a Secure cookie, got %+v", cookies)
	}
}

func TestFromRequestMissingCookie(t *testing.T) {
	m := NewManager(false, time.Hour)
	c, _ := newContext(t, nil)

	if _, err := m.FromRequest(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestFromRequestEmptyCookie(t *testing.T) {
	m := NewManager(false, time.Hour)
	c, _ := newContext(t, &http.Cookie{Name: CookieName, Value: ""})

	if _, err := m.FromRequest(c); err != domain.ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestResolveReusesExistingToken(t *testing.T) {
	m := NewManager(false, time.Hour)
	c, rec := newContext(t, &http.Cookie{Name: CookieName, Value: "existing-token"})

	if got := m.Resolve(c); got != "existing-token" {
		t.Fatalf("expected existing token, got %q", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("resolving an identified request must not issue a new cookie")
	}
}

func TestResolveIssuesWhenMissing(t *testing.T) {
	m := NewManager(false, time.Hour)
	c, rec := newContext(t, nil)

	token := m.Resolve(c)
	if token == "" {
		t.Fatal("expected a token")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != token {
		t.Fatalf("expected issued cookie to carry the token, got %+v", cookies)
	}
}
