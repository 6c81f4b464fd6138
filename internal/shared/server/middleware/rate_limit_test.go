package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRouter(limiter *RateLimiter, rules map[string]RateLimitRule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{Rules: rules, Limiter: limiter}))
	r.GET("/api/v1/review/applications/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.POST("/api/v1/apply/:id", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRateLimitReadsHigherThanWrites(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	r := limitedRouter(limiter, ReadWriteRules(1, 2))

	for i := 0; i < 4; i++ {
		if w := serve(r, http.MethodGet, "/api/v1/review/applications/app-1"); w.Code != http.StatusOK {
			t.Fatalf("read request %d expected 200, got %d", i+1, w.Code)
		}
	}
	for i := 0; i < 2; i++ {
		if w := serve(r, http.MethodPost, "/api/v1/apply/posting-1"); w.Code != http.StatusCreated {
			t.Fatalf("write request %d expected 201, got %d", i+1, w.Code)
		}
	}
	if w := serve(r, http.MethodPost, "/api/v1/apply/posting-1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("write request 3 expected 429, got %d", w.Code)
	}
	if limiter.Len() != 2 {
		t.Fatalf("expected one bucket per group, got %d", limiter.Len())
	}
}

func TestRateLimit429UsesErrorEnvelope(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	r := limitedRouter(limiter, map[string]RateLimitRule{GroupRead: {Rate: 1, Burst: 1}})

	if w := serve(r, http.MethodGet, "/api/v1/review/applications/a"); w.Code != http.StatusOK {
		t.Fatalf("expected first request 200, got %d", w.Code)
	}
	w := serve(r, http.MethodGet, "/api/v1/review/applications/a")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Fatalf("expected Retry-After 1, got %q", w.Header().Get("Retry-After"))
	}

	var payload struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "rate_limited" {
		t.Fatalf("expected code rate_limited, got %q", payload.Error.Code)
	}
	if _, ok := payload.Error.Details["retryAfterMs"]; !ok {
		t.Fatalf("expected retryAfterMs in details")
	}

	if w := serve(r, http.MethodPost, "/api/v1/apply/p"); w.Code != http.StatusCreated {
		t.Fatalf("writes have no rule here, expected 201, got %d", w.Code)
	}
}
