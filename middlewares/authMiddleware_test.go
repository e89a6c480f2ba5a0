package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/castellodata/payroll_backend/utils"
	"github.com/gin-gonic/gin"
)

// Mutations write history rows that require a user name, so a Bearer JWT
// must populate UserName in the request context, not just UserId.
func TestAuthMiddlewarePopulatesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	token, err := utils.JwtGenerate(42, "Payroll Sync", "ADMIN")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}

	var gotId int
	var gotName string
	var gotRole string

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		ctx := c.Request.Context()
		gotId, _ = utils.GetUserIdFromContext(ctx)
		gotName, _ = utils.GetUserNameFromContext(ctx)
		gotRole, _ = utils.GetUserRoleFromContext(ctx)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotId != 42 {
		t.Fatalf("user id = %d, want 42", gotId)
	}
	if gotName != "Payroll Sync" {
		t.Fatalf("user name = %q, want %q", gotName, "Payroll Sync")
	}
	if gotRole != "ADMIN" {
		t.Fatalf("user role = %q, want %q", gotRole, "ADMIN")
	}
}

func TestAuthMiddlewareFallsBackToServiceName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Tokens minted before the name claim existed carry no name.
	token, err := utils.JwtGenerate(7, "", "HR")
	if err != nil {
		t.Fatalf("JwtGenerate: %v", err)
	}

	var gotName string

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		gotName, _ = utils.GetUserNameFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if gotName != "service:7" {
		t.Fatalf("user name = %q, want %q", gotName, "service:7")
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(AuthMiddleware())
	r.GET("/whoami", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
