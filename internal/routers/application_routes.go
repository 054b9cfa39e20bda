package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/middleware"
	"hirehub/internal/models"

	"github.com/go-chi/chi/v5"
)

func ApplicationRoutes(r *chi.Mux, auth *middleware.Authenticator, applicationHandler *handlers.ApplicationHandler) {
	candidate := middleware.RequireRole(models.RoleCandidate)
	employer := middleware.RequireRole(models.RoleEmployer)

	r.Route("/api/applications", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.With(candidate).Get("/my", applicationHandler.MyApplicationsHandler)
		r.With(candidate).Post("/{jobId}", applicationHandler.ApplyHandler) // optional resume upload
		r.With(employer).Get("/job/{jobId}", applicationHandler.JobApplicationsHandler)
		r.With(employer).Put("/{applicationId}/status", applicationHandler.UpdateStatusHandler)
	})
}
