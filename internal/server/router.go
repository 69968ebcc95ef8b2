package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/stashbot/internal/config"
	"github.com/sevigo/stashbot/internal/core"
	"github.com/sevigo/stashbot/internal/jenkins"
	"github.com/sevigo/stashbot/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(cfg *config.Config, dispatcher core.JobDispatcher, reporter handler.BuildReporter, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	webhookHandler := handler.NewWebhookHandler(cfg.GitHub.WebhookSecret, dispatcher, logger)
	r.Post("/api/v1/webhook/github", webhookHandler.Handle)

	// Jenkins scripts call back with curl and may use either method.
	reportHandler := handler.NewReportHandler(reporter, logger)
	r.Get(jenkins.ReportPath+"/*", reportHandler.Handle)
	r.Post(jenkins.ReportPath+"/*", reportHandler.Handle)

	return r
}
