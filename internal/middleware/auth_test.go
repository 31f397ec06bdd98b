package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"minifeed/internal/service"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeResolver map[string]string

func (f fakeResolver) Resolve(_ context.Context, token string) (string, error) {
	if token == "broken" {
		return "", errors.New("registry down")
	}
	if u, ok := f[token]; ok {
		return u, nil
	}
	return "", service.ErrNoSession
}

func newEngine() *gin.Engine {
	cookie := SessionCookie{Name: "session"}
	r := gin.New()
	r.Use(RequestID(), Identity(fakeResolver{"good": "alice"}, cookie))
	r.GET("/whoami", func(c *gin.Context) {
		u, _ := CurrentUser(c)
		c.String(http.StatusOK, u)
	})
	r.POST("/add", RequireLogin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestIdentity(t *testing.T) {
	r := newEngine()

	tests := []struct {
		name        string
		cookie      string
		wantUser    string
		wantCleared bool
	}{
		{"no cookie", "", "", false},
		{"valid token", "good", "alice", false},
		{"stale token", "stale", "", true},
		{"resolver failure keeps cookie", "broken", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Body.String(); got != tt.wantUser {
				t.Errorf("user = %q, want %q", got, tt.wantUser)
			}
			cleared := strings.Contains(w.Header().Get("Set-Cookie"), "Max-Age=0")
			if cleared != tt.wantCleared {
				t.Errorf("cookie cleared = %v, want %v (Set-Cookie: %q)", cleared, tt.wantCleared, w.Header().Get("Set-Cookie"))
			}
		})
	}
}

func TestRequireLogin(t *testing.T) {
	r := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/add", nil))
	if w.Code != http.StatusFound {
		t.Fatalf("anonymous status = %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login?next=%2Fadd" {
		t.Errorf("Location = %q", loc)
	}

	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "good"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("logged-in status = %d, want 204", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want the caller's", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if len(w.Header().Get(RequestIDHeader)) != 36 {
		t.Errorf("generated request id = %q, want a uuid", w.Header().Get(RequestIDHeader))
	}
}
