package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lifelens/analysis-gateway/internal/config"
	"github.com/lifelens/analysis-gateway/internal/logging"
	"github.com/lifelens/analysis-gateway/internal/services"
)

func main() {
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, cfg)
	if err != nil {
		panic(err)
	}
}

// newLogger uses tint for local development and JSON everywhere else.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return logging.New(w, cfg.LogLevel, !cfg.IsDevelopment())
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := newLogger(os.Stdout, cfg)

	if !cfg.HasAPIKey() {
		logger.Warn("GEMINI_API_KEY is not set; analysis requests will return an error message")
	}
	if cfg.Security.ExposeKeyStatus && cfg.IsProduction() {
		logger.Warn("/api-key-status is exposed in production; set EXPOSE_KEY_STATUS=false to hide it")
	}

	// Setup Services ---------------
	model, err := services.NewGeminiModel(ctx, services.GeminiOptions{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
		BaseURL: cfg.Gemini.BaseURL,
	})
	if err != nil {
		return err
	}

	var classifier services.SentimentClassifier
	if cfg.Sentiment.Enabled {
		classifier, err = services.NewSentimentClassifier(cfg.Sentiment.Classifier)
		if err != nil {
			return err
		}
	}
	aiAnalyzer := services.NewAIAnalyzer(model, classifier, logger)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      newRouter(cfg, aiAnalyzer, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start the Server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			"address", cfg.Server.Address,
			"env", cfg.Server.Environment,
			"model", cfg.Gemini.Model,
			"sentiment", aiAnalyzer.SentimentEnabled(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("server stopped")

	return nil
}
