package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipes-app-api/core/interfaces"
)

func TestNewAPI_Info(t *testing.T) {
	api, router := NewAPI()

	if api == nil || router == nil {
		t.Fatal("NewAPI returned nil")
	}

	info := api.OpenAPI().Info
	if info.Title != "Recipes API" {
		t.Errorf("API title = %s, want Recipes API", info.Title)
	}
	if info.Version != "1.0.0" {
		t.Errorf("API version = %s, want 1.0.0", info.Version)
	}
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Errorf("OpenAPI endpoint status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.oai.openapi+json" {
		t.Errorf("OpenAPI content-type = %s", ct)
	}
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Docs endpoint status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{RateLimit: 1, RateWindow: time.Minute})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodOptions, "/state", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("preflight %d missing allow-origin header", i)
		}
		if w.Code == http.StatusTooManyRequests {
			t.Fatalf("preflight %d was rate limited", i)
		}
	}
}

func TestAPI_MiddlewareApplied(t *testing.T) {
	_, router := NewAPIWithMiddleware(APIConfig{
		Logger:     interfaces.NopLogger{},
		RateLimit:  1,
		RateWindow: time.Minute,
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header missing")
		}
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 429]", codes)
	}
}
