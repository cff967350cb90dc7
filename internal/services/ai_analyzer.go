package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	localcontext "github.com/lifelens/analysis-gateway/context"
	"github.com/lifelens/analysis-gateway/internal/models"
)

const defaultImageQuestion = "What does this image show? Provide details about what you see."

// AIAnalyzer builds prompts, calls the model once and interprets the reply.
// Model failures are never returned as errors; they come back as failed Outcomes.
type AIAnalyzer struct {
	model      Model
	classifier SentimentClassifier
	logger     *slog.Logger
}

// NewAIAnalyzer creates an analyzer. A nil classifier disables sentiment tagging.
func NewAIAnalyzer(model Model, classifier SentimentClassifier, logger *slog.Logger) *AIAnalyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIAnalyzer{
		model:      model,
		classifier: classifier,
		logger:     logger,
	}
}

// SentimentEnabled reports whether text outcomes carry an isPositive tag.
func (aa *AIAnalyzer) SentimentEnabled() bool {
	return aa.classifier != nil
}

// AnalyzeText asks the model about a life choice. The query must be validated by the caller.
func (aa *AIAnalyzer) AnalyzeText(ctx context.Context, query string) models.Outcome {
	logger := aa.loggerFrom(ctx)

	started := time.Now()
	text, err := aa.model.Generate(ctx, CreateTextPrompt(query), nil)
	if err != nil {
		logger.Error("text analysis failed", "error", err, "took", time.Since(started))
		return aa.tag(models.Failed(err))
	}
	logger.Info("text analysis completed", "chars", len(text), "took", time.Since(started))

	return aa.tag(models.Ok(text, nil))
}

// AnalyzeImage decodes the payload and asks the model about it in one multimodal call.
// Decode failures are folded into the same failed Outcome as model failures.
func (aa *AIAnalyzer) AnalyzeImage(ctx context.Context, payload, hint string) models.Outcome {
	logger := aa.loggerFrom(ctx)

	img, err := DecodeImage(payload)
	if err != nil {
		logger.Error("image decode failed", "error", err, "payload_len", len(payload))
		return models.Failed(err)
	}
	logger.Debug("image decoded", "format", img.Format, "width", img.Width, "height", img.Height, "bytes", len(img.Data))

	started := time.Now()
	text, err := aa.model.Generate(ctx, CreateImagePrompt(hint), img)
	if err != nil {
		logger.Error("image analysis failed", "error", err, "took", time.Since(started))
		return models.Failed(err)
	}
	logger.Info("image analysis completed", "chars", len(text), "took", time.Since(started))

	return models.Ok(text, nil)
}

// tag attaches sentiment when enabled. Failed outcomes are never positive.
func (aa *AIAnalyzer) tag(out models.Outcome) models.Outcome {
	if aa.classifier == nil {
		return out
	}
	if !out.IsOk() {
		return out.WithSentiment(false)
	}
	return out.WithSentiment(aa.classifier.IsPositive(out.Text))
}

func (aa *AIAnalyzer) loggerFrom(ctx context.Context) *slog.Logger {
	if logger := localcontext.ContextGetLogger(ctx); logger != nil {
		return logger
	}
	return aa.logger
}

// CreateTextPrompt is the fixed life-choice template.
func CreateTextPrompt(query string) string {
	return fmt.Sprintf("Analyze the following life choice: '%s'. Provide a brief qualitative analysis of its financial, health, and environmental impacts.", query)
}

// CreateImagePrompt uses the hint as the question, or a generic one when empty.
func CreateImagePrompt(hint string) string {
	if hint == "" {
		return "Analyze this image. " + defaultImageQuestion
	}
	return "Analyze this image. " + hint
}
