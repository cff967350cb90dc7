package controllers

import (
	"log/slog"
	"net/http"

	"github.com/lifelens/analysis-gateway/internal/middleware"
	"github.com/lifelens/analysis-gateway/internal/models"
)

const keyPreviewLen = 5

// StaticController serves the liveness probe and the key status report.
type StaticController struct {
	apiKey string
	logger *slog.Logger
}

// NewStaticController creates a new StaticController.
func NewStaticController(apiKey string, logger *slog.Logger) *StaticController {
	return &StaticController{
		apiKey: apiKey,
		logger: logger,
	}
}

// GetTest always answers 200.
func (c *StaticController) GetTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, middleware.Logger(r, c.logger), http.StatusOK, models.MessageResponse{Message: "Backend is working!"})
}

// GetKeyStatus reports whether a model key is configured, with its first
// characters as a preview. This exposes part of the secret.
func (c *StaticController) GetKeyStatus(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r, c.logger)

	if c.apiKey == "" {
		writeJSON(w, logger, http.StatusNotFound, models.KeyStatusResponse{Status: "API key not found"})
		return
	}

	writeJSON(w, logger, http.StatusOK, models.KeyStatusResponse{
		Status:  "API key found",
		Preview: keyPreview(c.apiKey),
	})
}

// keyPreview counts characters, not bytes, so the preview stays valid UTF-8.
func keyPreview(key string) string {
	if runes := []rune(key); len(runes) > keyPreviewLen {
		key = string(runes[:keyPreviewLen])
	}
	return key + "..."
}
