package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/studiva/studiva-backend/internal/middleware"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository/memory"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	users := memory.NewUserRepository([]model.User{
		{ID: 1, Name: "Alice", Role: model.RoleUser},
		{ID: 2, Name: "Root", Role: model.RoleAdmin},
	})

	r := gin.New()
	authed := r.Group("", middleware.Identity(users))
	authed.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": middleware.CurrentUser(c).Name})
	})
	authed.GET("/admin", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(r *gin.Engine, path, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	r := newTestRouter()

	if w := doGet(r, "/whoami", "1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for known user, got %d", w.Code)
	}
	if w := doGet(r, "/whoami", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
	if w := doGet(r, "/whoami", "banana"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed id, got %d", w.Code)
	}
	if w := doGet(r, "/whoami", "42"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	r := newTestRouter()

	if w := doGet(r, "/admin", "2"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
	w := doGet(r, "/admin", "1")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "forbidden") {
		t.Fatalf("expected forbidden taxonomy message, got %q", w.Body.String())
	}
}
