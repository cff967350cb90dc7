package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lifelens/analysis-gateway/context"
)

type RequestMiddleware struct {
	logger       *slog.Logger
	maxBodyBytes int64
}

func NewRequestMiddleware(logger *slog.Logger, maxBodyBytes int64) *RequestMiddleware {
	return &RequestMiddleware{
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// SetLogger stores a logger tagged with the request id, method and path in
// the request context, then logs the outcome once the handler returns.
// It must run after chi's RequestID middleware.
func (m *RequestMiddleware) SetLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := m.logger.With(
			"request_id", chimw.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		r = r.WithContext(context.ContextSetLogger(r.Context(), logger))

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r)

		logger.Info("request completed",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"remote", r.RemoteAddr,
			"took", time.Since(started),
		)
	})
}

// LimitBody caps the request body; reads past the limit fail with *http.MaxBytesError.
func (m *RequestMiddleware) LimitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, m.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// Logger returns the request logger, or the fallback outside SetLogger.
func Logger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if logger := context.ContextGetLogger(r.Context()); logger != nil {
		return logger
	}
	return fallback
}
