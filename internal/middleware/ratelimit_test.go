package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	api.Use(rl.LimitMiddleware())
	api.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.POST("/support", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doRequest(router *gin.Engine, path, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

// The limit is a per-client budget across all routes: after 100
// requests in the window the 101st is rejected regardless of route.
func TestRateLimiterBlocksRequestOverBudget(t *testing.T) {
	rl := NewRateLimiter(100, 15*time.Minute)
	router := newLimitedRouter(rl)

	for i := 0; i < 100; i++ {
		path := "/api/login"
		if i%2 == 1 {
			path = "/api/support"
		}
		if code := doRequest(router, path, "10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}

	if code := doRequest(router, "/api/login", "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("101st request: expected 429, got %d", code)
	}
	if code := doRequest(router, "/api/support", "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("over-budget request on another route: expected 429, got %d", code)
	}
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(2, 15*time.Minute)
	router := newLimitedRouter(rl)

	doRequest(router, "/api/login", "10.0.0.1:1234")
	doRequest(router, "/api/login", "10.0.0.1:1234")
	if code := doRequest(router, "/api/login", "10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("expected first client to be limited, got %d", code)
	}

	// A different client has its own budget
	if code := doRequest(router, "/api/login", "10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("expected second client to be allowed, got %d", code)
	}
}
