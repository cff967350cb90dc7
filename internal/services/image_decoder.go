package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lifelens/analysis-gateway/internal/models"
)

// mimeTypes covers every format registered by the imports above.
var mimeTypes = map[string]string{
	"png":  "image/png",
	"jpeg": "image/jpeg",
	"gif":  "image/gif",
	"webp": "image/webp",
	"bmp":  "image/bmp",
	"tiff": "image/tiff",
}

// StripDataURI drops a "data:<mime>;base64," style header. Everything up to
// and including the first comma is removed; payloads without one are returned as is.
func StripDataURI(payload string) string {
	if idx := strings.IndexByte(payload, ','); idx != -1 {
		return payload[idx+1:]
	}
	return payload
}

// DecodeImage turns a base64 (or data-URI) payload into image bytes and
// checks that the bytes are an image in a format the model accepts.
func DecodeImage(payload string) (*models.DecodedImage, error) {
	data, err := decodeBase64(StripDataURI(payload))
	if err != nil {
		return nil, &models.DecodeError{Stage: "base64", Err: err}
	}

	// Full decode so truncated pixel data is rejected; the model still
	// receives the original bytes
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &models.DecodeError{Stage: "image", Err: err}
	}
	bounds := img.Bounds()

	return &models.DecodedImage{
		Data:     data,
		Format:   format,
		MIMEType: mimeTypes[format],
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// decodeBase64 accepts padded and unpadded standard encoding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty payload")
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	if raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); rawErr == nil {
		return raw, nil
	}
	return nil, err
}
