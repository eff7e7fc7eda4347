package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/config"
)

func TestCORS_Handle(t *testing.T) {
	cors := NewCORS(config.CORSConfig{
		AllowedOrigins: []string{"https://shop.example.com"},
		MaxAge:         300,
	})

	called := false
	handler := cors.Handle(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Sets headers and passes through", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		if !called {
			t.Error("Expected next handler to be called")
		}
		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
			t.Errorf("Allow-Origin = %q", got)
		}
		if got := rr.Header().Get("Access-Control-Max-Age"); got != "300" {
			t.Errorf("Max-Age = %q", got)
		}
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		called = false
		req := httptest.NewRequest(http.MethodOptions, "/webhook", nil)
		rr := httptest.NewRecorder()

		handler(rr, req)

		if called {
			t.Error("Expected preflight to stop before the handler")
		}
		if rr.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", rr.Code)
		}
	})
}

func TestCORS_Defaults(t *testing.T) {
	cors := NewCORS(config.CORSConfig{})

	handler := cors.Handle(func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	handler(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected wildcard origin by default, got %q", got)
	}
}
