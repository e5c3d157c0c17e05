package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salonq/config"

	"github.com/gin-gonic/gin"
)

func performAs(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddlewareRejectsBursts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orig := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 2
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = orig })

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	for i := 0; i < 2; i++ {
		if w := performAs(r, "198.51.100.7"); w.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
		}
	}

	w := performAs(r, "198.51.100.7")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("burst request: status = %d, want 429", w.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal 429 body: %v", err)
	}
	if body.Message != "Rate limit exceeded" {
		t.Errorf("message = %q, want %q", body.Message, "Rate limit exceeded")
	}

	// Another address gets its own limiter.
	if w := performAs(r, "198.51.100.8"); w.Code != http.StatusOK {
		t.Errorf("other address: status = %d, want 200", w.Code)
	}
}
