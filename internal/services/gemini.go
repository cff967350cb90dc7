package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/lifelens/analysis-gateway/internal/models"
)

// Model is the generative capability the gateway mediates.
// img is nil for text-only prompts.
type Model interface {
	Generate(ctx context.Context, prompt string, img *models.DecodedImage) (string, error)
}

// GeminiModel calls the Gemini API through the Gen AI SDK.
type GeminiModel struct {
	client *genai.Client
	model  string
}

// GeminiOptions configures NewGeminiModel.
type GeminiOptions struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

// NewGeminiModel creates the Gemini client with the server's API key.
// Without a key no client is built and every Generate call fails.
func NewGeminiModel(ctx context.Context, opts GeminiOptions) (*GeminiModel, error) {
	gm := &GeminiModel{model: opts.Model}
	if opts.APIKey == "" {
		return gm, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPClient: &http.Client{
			Timeout: opts.Timeout,
		},
		HTTPOptions: genai.HTTPOptions{
			BaseURL: opts.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	gm.client = client

	return gm, nil
}

// Generate sends the prompt, and the image when given, as one user turn.
func (gm *GeminiModel) Generate(ctx context.Context, prompt string, img *models.DecodedImage) (string, error) {
	if gm.client == nil {
		return "", models.ErrMissingAPIKey
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if img != nil {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := gm.client.Models.GenerateContent(ctx, gm.model, contents, nil)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", models.ErrNoResponse
	}

	return text, nil
}
