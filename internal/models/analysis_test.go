package models

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func Test_Validate(t *testing.T) {
	if err := (AnalysisRequest{}).Validate(); err == nil || err.Error() != MsgQueryRequired {
		t.Errorf("expected '%s', got %v", MsgQueryRequired, err)
	}
	if err := (AnalysisRequest{Query: "buying an e-bike"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := (ImageAnalysisRequest{PromptHint: "what is this?"}).Validate()
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if ve.Message != MsgImageRequired {
		t.Errorf("expected '%s', got '%s'", MsgImageRequired, ve.Message)
	}
}

func Test_Outcome_Message(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{
			name:    "ok",
			outcome: Ok("Mostly positive.", nil),
			want:    "Mostly positive.",
		},
		{
			name:    "no response",
			outcome: Failed(ErrNoResponse),
			want:    "Gemini returned no response",
		},
		{
			name:    "wrapped no response",
			outcome: Failed(fmt.Errorf("generate: %w", ErrNoResponse)),
			want:    "Gemini returned no response",
		},
		{
			name:    "transport failure",
			outcome: Failed(errors.New("quota exceeded")),
			want:    "Error during Gemini API call: quota exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Message(); got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func Test_Outcome_Response(t *testing.T) {
	resp := Ok("text", nil).Response()
	if resp.IsPositive != nil {
		t.Errorf("expected no isPositive, got %d", *resp.IsPositive)
	}

	resp = Ok("text", nil).WithSentiment(true).Response()
	if resp.IsPositive == nil || *resp.IsPositive != 1 {
		t.Errorf("expected isPositive 1, got %v", resp.IsPositive)
	}

	resp = Failed(ErrMissingAPIKey).WithSentiment(false).Response()
	if resp.IsPositive == nil || *resp.IsPositive != 0 {
		t.Errorf("expected isPositive 0, got %v", resp.IsPositive)
	}
	if !strings.HasPrefix(resp.Analysis, "Error during Gemini API call") {
		t.Errorf("unexpected analysis: %s", resp.Analysis)
	}
}

func Test_DecodeError(t *testing.T) {
	cause := errors.New("illegal base64 data at input byte 4")
	err := fmt.Errorf("decode: %w", &DecodeError{Stage: "base64", Err: cause})

	if !errors.Is(err, ErrDecode) {
		t.Error("expected errors.Is(err, ErrDecode)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is(err, cause)")
	}
	if !strings.Contains(err.Error(), "base64") {
		t.Errorf("expected stage in message, got '%s'", err.Error())
	}
}
