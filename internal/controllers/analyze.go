package controllers

import (
	"log/slog"
	"net/http"

	"github.com/lifelens/analysis-gateway/internal/middleware"
	"github.com/lifelens/analysis-gateway/internal/models"
	"github.com/lifelens/analysis-gateway/internal/services"
)

// AnalyzeController handles text and image analysis.
type AnalyzeController struct {
	analyzer *services.AIAnalyzer
	logger   *slog.Logger
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(analyzer *services.AIAnalyzer, logger *slog.Logger) *AnalyzeController {
	return &AnalyzeController{
		analyzer: analyzer,
		logger:   logger,
	}
}

// PostAnalyze handles POST /analyze.
//
// Model failures are answered with 200 and the failure text in "analysis".
// Frontends rely on this; new clients should not treat 200 as success
// without checking for the "Error during Gemini API call" prefix.
func (c *AnalyzeController) PostAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r, c.logger)

	var req models.AnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, logger, err)
		return
	}

	out := c.analyzer.AnalyzeText(r.Context(), req.Query)
	writeJSON(w, logger, http.StatusOK, out.Response())
}

// PostAnalyzeImage handles POST /analyze-image. Decode and model failures
// are rendered exactly like PostAnalyze failures.
func (c *AnalyzeController) PostAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.Logger(r, c.logger)

	var req models.ImageAnalysisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, logger, err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, logger, err)
		return
	}

	out := c.analyzer.AnalyzeImage(r.Context(), req.Image, req.PromptHint)
	writeJSON(w, logger, http.StatusOK, out.Response())
}
