package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vidfetch/vidfetch/internal/api/handlers"
	"github.com/vidfetch/vidfetch/internal/config"
	"github.com/vidfetch/vidfetch/internal/models"
	"github.com/vidfetch/vidfetch/internal/services/analyzer"
	"github.com/vidfetch/vidfetch/internal/services/extractor"
)

type noopExtractor struct{}

func (noopExtractor) Extract(ctx context.Context, url string) (*extractor.Result, error) {
	return &extractor.Result{}, nil
}

func (noopExtractor) Name() string { return "noop" }

func newTestRouter() *Router {
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		Extractor: config.ExtractorConfig{
			Backend: "auto",
			Timeout: 30 * time.Second,
			Retries: 3,
		},
		CORS: config.CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         3600,
		},
	}

	return NewRouter(cfg,
		handlers.NewInfoHandler(),
		handlers.NewVideoHandler(analyzer.New(noopExtractor{})))
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, expected 404", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success=false")
	}
	if resp.Error.Code != "NOT_FOUND" {
		t.Errorf("Code = %q, expected NOT_FOUND", resp.Error.Code)
	}
	if resp.Error.Timestamp == "" {
		t.Error("Expected a timestamp on the error")
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	r.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, expected 200", w.Code)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q, expected \"healthy\"", resp.Status)
	}
	if resp.Service != "video-downloader-api" {
		t.Errorf("Service = %q, expected \"video-downloader-api\"", resp.Service)
	}
}

func TestHomeDescriptor(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, expected 200", w.Code)
	}

	var resp models.ServiceInfo
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Version == "" || resp.Status == "" {
		t.Error("Expected version and status to be set")
	}
	if _, ok := resp.Endpoints["/api/fetch"]; !ok {
		t.Error("Expected /api/fetch in the endpoint list")
	}
	if len(resp.SupportedPlatforms) == 0 {
		t.Error("Expected a non-empty platform list")
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/fetch", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.Engine().ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Status = %d, expected 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, expected \"*\"", got)
	}
}
