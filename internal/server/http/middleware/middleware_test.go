package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/bikestores/bikestore/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type parserStub struct {
	session *pkgAuth.Session
	err     error
}

func (p parserStub) ParseSession(token string) (*pkgAuth.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

func guardedEngine(parser SessionParser) *gin.Engine {
	engine := gin.New()
	engine.GET("/protected", SessionRequired(parser), func(c *gin.Context) {
		c.String(http.StatusOK, "id=%d email=%s", c.GetInt64(UserIDContextKey), c.GetString(UserEmailContextKey))
	})
	return engine
}

func TestSessionRequiredRedirectsWithoutCookie(t *testing.T) {
	engine := guardedEngine(parserStub{session: &pkgAuth.Session{UserID: 1}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestSessionRequiredRedirectsOnInvalidToken(t *testing.T) {
	engine := guardedEngine(parserStub{err: pkgAuth.ErrInvalidSession})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "bikestore_session", Value: "garbage"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
}

func TestSessionRequiredRedirectsOnParserFailure(t *testing.T) {
	engine := guardedEngine(parserStub{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "bikestore_session", Value: "token"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
}

func TestSessionRequiredPassesIdentity(t *testing.T) {
	engine := guardedEngine(parserStub{session: &pkgAuth.Session{UserID: 42, Email: "admin@bikestores.local"}})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "bikestore_session", Value: "token"})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := w.Body.String(); body != "id=42 email=admin@bikestores.local" {
		t.Errorf("unexpected body %q", body)
	}
}

func TestSessionCookieHelpers(t *testing.T) {
	engine := gin.New()
	engine.GET("/set", func(c *gin.Context) {
		SetSessionCookie(c, "token-value")
		c.Status(http.StatusOK)
	})
	engine.GET("/clear", func(c *gin.Context) {
		ClearSessionCookie(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "bikestore_session" || cookies[0].Value != "token-value" {
		t.Fatalf("unexpected cookies %v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Error("session cookie must be http-only")
	}

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clear", nil))
	cookies = w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expiring cookie, got %v", cookies)
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDContextKey))
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Body.String() == "" {
		t.Fatal("expected generated request id")
	}
	if w.Header().Get("X-Request-Id") != w.Body.String() {
		t.Error("response header should carry the request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "supplied-id")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Body.String() != "supplied-id" {
		t.Errorf("expected supplied id to be reused, got %q", w.Body.String())
	}
}
