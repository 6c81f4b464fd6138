package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"recruit-backend/internal/services/health"
	"recruit-backend/internal/shared/config"
)

func TestRouterServesHealthAndMetrics(t *testing.T) {
	r := NewRouter(RouterDeps{
		Config: config.Config{RateLimitRPS: 10},
		Health: health.NewService("local", nil),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"mode":"local"`) {
		t.Fatalf("expected mode in health payload, got %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("reference routes are not mounted without handlers, got %d", w.Code)
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9000": ":9000", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
