package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gamehub-be/internal/jwt"
)

func newProtectedRouter(jwtService *jwt.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/profile", AuthMiddleware(jwtService), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email})
	})
	return router
}

func getProfile(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", 2*time.Hour)
	router := newProtectedRouter(jwtService)

	if w := getProfile(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: expected 401, got %d", w.Code)
	}
	if w := getProfile(router, "Bearer "); w.Code != http.StatusUnauthorized {
		t.Errorf("empty bearer: expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", 2*time.Hour)
	router := newProtectedRouter(jwtService)

	if w := getProfile(router, "Bearer garbage"); w.Code != http.StatusForbidden {
		t.Errorf("garbage token: expected 403, got %d", w.Code)
	}

	// Correctly signed but expired
	expired := jwt.NewJWTService("test-secret", -1*time.Minute)
	token, err := expired.GenerateToken("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if w := getProfile(router, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("expired token: expected 403, got %d", w.Code)
	}

	// Signed with a different secret
	other := jwt.NewJWTService("other-secret", 2*time.Hour)
	token, err = other.GenerateToken("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if w := getProfile(router, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("wrong secret: expected 403, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", 2*time.Hour)
	router := newProtectedRouter(jwtService)

	token, err := jwtService.GenerateToken("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := getProfile(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"user-123", "a@x.com"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected identity %q in context, body: %s", want, body)
		}
	}
}
