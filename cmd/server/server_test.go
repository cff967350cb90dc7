package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lifelens/analysis-gateway/internal/config"
	"github.com/lifelens/analysis-gateway/internal/models"
	"github.com/lifelens/analysis-gateway/internal/services"
)

type echoModel struct{}

func (echoModel) Generate(_ context.Context, prompt string, _ *models.DecodedImage) (string, error) {
	return "Positive: " + prompt, nil
}

func testConfig(apiKey string, exposeKeyStatus bool) *config.Config {
	cfg := &config.Config{}
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Gemini.APIKey = apiKey
	cfg.Security.AllowedOrigins = []string{"*"}
	cfg.Security.ExposeKeyStatus = exposeKeyStatus
	return cfg
}

func mustNewTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analyzer := services.NewAIAnalyzer(echoModel{}, services.KeywordClassifier{}, logger)
	return newRouter(cfg, analyzer, logger)
}

func Test_Router_Routes(t *testing.T) {
	r := mustNewTestRouter(t, testConfig("AIzaSyExample", true))

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantField  string
		wantValue  any
	}{
		{
			name:       "health",
			method:     http.MethodGet,
			path:       "/test",
			wantStatus: http.StatusOK,
			wantField:  "message",
			wantValue:  "Backend is working!",
		},
		{
			name:       "analyze",
			method:     http.MethodPost,
			path:       "/analyze",
			body:       `{"query": "working remotely"}`,
			wantStatus: http.StatusOK,
			wantField:  "isPositive",
			wantValue:  float64(1),
		},
		{
			name:       "analyze missing query",
			method:     http.MethodPost,
			path:       "/analyze",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "error",
			wantValue:  "Query is required",
		},
		{
			name:       "analyze image missing image",
			method:     http.MethodPost,
			path:       "/analyze-image",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantField:  "error",
			wantValue:  "Image data is required",
		},
		{
			name:       "key status",
			method:     http.MethodGet,
			path:       "/api-key-status",
			wantStatus: http.StatusOK,
			wantField:  "preview",
			wantValue:  "AIzaS...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp[tt.wantField] != tt.wantValue {
				t.Errorf("expected %s=%v, got %v", tt.wantField, tt.wantValue, resp[tt.wantField])
			}
		})
	}
}

func Test_Router_WrongMethod(t *testing.T) {
	r := mustNewTestRouter(t, testConfig("", true))

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func Test_Router_KeyStatus(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		r := mustNewTestRouter(t, testConfig("", true))

		req := httptest.NewRequest(http.MethodGet, "/api-key-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "API key not found") {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not exposed", func(t *testing.T) {
		r := mustNewTestRouter(t, testConfig("AIzaSyExample", false))

		req := httptest.NewRequest(http.MethodGet, "/api-key-status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected status 404, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "AIzaS") {
			t.Error("key preview leaked while endpoint is disabled")
		}
	})
}

func Test_Router_CORS(t *testing.T) {
	r := mustNewTestRouter(t, testConfig("", false))

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected Access-Control-Allow-Origin '*', got '%s'", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
			t.Errorf("expected POST allowed, got '%s'", got)
		}
	})

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", "https://frontend.example.com")
		w := httptest.NewRecorder()

		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected Access-Control-Allow-Origin '*', got '%s'", got)
		}
	})
}

func Test_NewLogger(t *testing.T) {
	tests := []struct {
		env      string
		wantJSON bool
	}{
		{env: "development", wantJSON: false},
		{env: "staging", wantJSON: true},
		{env: "production", wantJSON: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := testConfig("", false)
			cfg.Server.Environment = tt.env
			cfg.LogLevel = "info"

			var buf bytes.Buffer
			newLogger(&buf, cfg).Info("ready")

			var line map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &line) == nil
			if isJSON != tt.wantJSON {
				t.Errorf("expected json=%v, got output %q", tt.wantJSON, buf.String())
			}
		})
	}
}
