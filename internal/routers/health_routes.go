package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/metrics"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(router *chi.Mux, healthHandler *handlers.HealthHandler) {
	router.Get("/healthz", healthHandler.HealthzHandler)
	router.Get("/readyz", healthHandler.ReadyzHandler)
	router.Handle("/metrics", metrics.Handler())
}

func UploadRoutes(router *chi.Mux, resumeHandler *handlers.ResumeHandler) {
	router.Get("/uploads/resumes/{name}", resumeHandler.DownloadResumeHandler)
}
