package models

import (
	"errors"
	"fmt"
)

// Validation messages returned verbatim to clients.
const (
	MsgQueryRequired = "Query is required"
	MsgImageRequired = "Image data is required"
)

// Model capability errors
var (
	ErrMissingAPIKey = errors.New("gemini API key not configured")
	ErrNoResponse    = errors.New("gemini returned no response")
)

// ErrDecode marks an image payload that is not valid base64 or not a decodable image.
var ErrDecode = errors.New("invalid image data")

// Request errors
var (
	ErrInvalidBody  = errors.New("invalid request body")
	ErrBodyTooLarge = errors.New("request body too large")
)

// ValidationError is a missing or empty required field. It maps to HTTP 400.
type ValidationError struct {
	Message string
}

func (ve ValidationError) Error() string {
	return ve.Message
}

// DecodeError describes why an image payload could not be turned into an image.
type DecodeError struct {
	Stage string // "base64" or "image"
	Err   error
}

func (de *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrDecode, de.Stage, de.Err)
}

func (de *DecodeError) Unwrap() []error {
	return []error{ErrDecode, de.Err}
}
