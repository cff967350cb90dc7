package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/lifelens/analysis-gateway/internal/config"
	"github.com/lifelens/analysis-gateway/internal/controllers"
	"github.com/lifelens/analysis-gateway/internal/middleware"
	"github.com/lifelens/analysis-gateway/internal/services"
)

// newRouter wires the middleware stack and the gateway routes.
func newRouter(cfg *config.Config, analyzer *services.AIAnalyzer, logger *slog.Logger) http.Handler {
	analyzeCtrl := controllers.NewAnalyzeController(analyzer, logger)
	staticCtrl := controllers.NewStaticController(cfg.Gemini.APIKey, logger)
	rmw := middleware.NewRequestMiddleware(logger, cfg.Server.MaxBodyBytes)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(rmw.SetLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Security.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/test", staticCtrl.GetTest)
	if cfg.Security.ExposeKeyStatus {
		r.Get("/api-key-status", staticCtrl.GetKeyStatus)
	}

	r.Group(func(r chi.Router) {
		r.Use(rmw.LimitBody)

		r.Post("/analyze", analyzeCtrl.PostAnalyze)
		r.Post("/analyze-image", analyzeCtrl.PostAnalyzeImage)
	})

	return r
}
