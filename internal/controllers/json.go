package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lifelens/analysis-gateway/internal/models"
)

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value so that field validation reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit %d bytes", models.ErrBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", models.ErrInvalidBody, err)
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to write response", "error", err)
	}
}

// writeError maps request and validation errors to their status and body.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, logger, http.StatusBadRequest, models.ErrorResponse{Error: ve.Message})
	case errors.Is(err, models.ErrBodyTooLarge):
		writeJSON(w, logger, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "Request body too large"})
	case errors.Is(err, models.ErrInvalidBody):
		writeJSON(w, logger, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	default:
		logger.Error("unexpected request error", "error", err)
		writeJSON(w, logger, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}
}
