package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bikestores/bikestore/internal/config"
	testhelpers "github.com/bikestores/bikestore/internal/test"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{TemplatesGlob: "../../../../web/templates/*.html"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(testhelpers.BikeStoreFacadeStub{}, cfg, logger)
}

func TestLoginPageIsPublic(t *testing.T) {
	engine := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sign in") {
		t.Error("expected login page body")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id response header")
	}
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	engine := newRouter(t)

	paths := []string{
		"/dashboard",
		"/customers",
		"/customers/add",
		"/customers/edit/1",
		"/customers/delete/1",
		"/analytics",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Errorf("%s: expected 302, got %d", path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != "/" {
			t.Errorf("%s: expected redirect to /, got %q", path, loc)
		}
	}
}

func TestLoginThenDashboard(t *testing.T) {
	engine := newRouter(t)

	form := url.Values{"email": {"admin@bikestores.local"}, "password": {"letmein"}}
	loginReq := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	loginReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginW := httptest.NewRecorder()
	engine.ServeHTTP(loginW, loginReq)

	if loginW.Code != http.StatusFound {
		t.Fatalf("expected 302 from login, got %d", loginW.Code)
	}
	cookies := loginW.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie from login")
	}

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from dashboard, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "admin@bikestores.local") {
		t.Error("expected signed-in email in dashboard body")
	}
}

func TestGzipNegotiation(t *testing.T) {
	engine := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if enc := w.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Errorf("expected gzip encoding, got %q", enc)
	}
}
