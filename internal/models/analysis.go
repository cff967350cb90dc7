package models

import (
	"errors"
	"fmt"
)

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	Query string `json:"query"`
}

// Validate returns a ValidationError when the query is missing.
func (r AnalysisRequest) Validate() error {
	if r.Query == "" {
		return ValidationError{Message: MsgQueryRequired}
	}
	return nil
}

// ImageAnalysisRequest is the body of POST /analyze-image.
// Image is base64, optionally behind a data-URI header.
type ImageAnalysisRequest struct {
	Image      string `json:"image"`
	PromptHint string `json:"prompt,omitempty"`
}

// Validate returns a ValidationError when the image is missing.
func (r ImageAnalysisRequest) Validate() error {
	if r.Image == "" {
		return ValidationError{Message: MsgImageRequired}
	}
	return nil
}

// DecodedImage is an image payload after base64 and format decoding.
type DecodedImage struct {
	Data     []byte
	Format   string // png, jpeg, gif, webp, bmp, tiff
	MIMEType string
	Width    int
	Height   int
}

// Outcome is the result of one model invocation.
// Exactly one of Text or Err is meaningful: Err == nil means Ok.
type Outcome struct {
	Text      string
	// Sentiment is nil unless tagging ran on a successful text analysis.
	Sentiment *bool
	Err       error
}

// Ok builds a successful outcome.
func Ok(text string, sentiment *bool) Outcome {
	return Outcome{Text: text, Sentiment: sentiment}
}

// Failed builds a failed outcome.
func Failed(err error) Outcome {
	return Outcome{Err: err}
}

// IsOk reports whether the model produced text.
func (o Outcome) IsOk() bool {
	return o.Err == nil
}

// Message is the text placed in the analysis field. Failures are rendered
// as human-readable strings because clients have always read them from there.
func (o Outcome) Message() string {
	if o.Err == nil {
		return o.Text
	}
	if errors.Is(o.Err, ErrNoResponse) {
		return "Gemini returned no response"
	}
	return fmt.Sprintf("Error during Gemini API call: %v", o.Err)
}

// WithSentiment returns a copy of o tagged with the given sentiment.
func (o Outcome) WithSentiment(positive bool) Outcome {
	o.Sentiment = &positive
	return o
}

// Response renders the outcome as the 200 payload. Failed outcomes are
// rendered the same way, with the failure text in Analysis.
func (o Outcome) Response() AnalysisResponse {
	resp := AnalysisResponse{Analysis: o.Message()}
	if o.Sentiment != nil {
		flag := 0
		if *o.Sentiment {
			flag = 1
		}
		resp.IsPositive = &flag
	}
	return resp
}

// AnalysisResponse is the success payload of both analyze endpoints.
type AnalysisResponse struct {
	Analysis   string `json:"analysis"`
	IsPositive *int   `json:"isPositive,omitempty"`
}

// ErrorResponse is the payload of a rejected request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the liveness payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// KeyStatusResponse reports whether a model credential is configured.
type KeyStatusResponse struct {
	Status  string `json:"status"`
	Preview string `json:"preview,omitempty"`
}
