package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/middleware"
	"hirehub/internal/models"

	"github.com/go-chi/chi/v5"
)

func JobRoutes(r *chi.Mux, auth *middleware.Authenticator, jobHandler *handlers.JobHandler) {
	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", jobHandler.ListJobsHandler)
		r.Get("/{id}", jobHandler.GetJobHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth, middleware.RequireRole(models.RoleEmployer))
			r.Post("/", jobHandler.CreateJobHandler)
			r.Get("/employer/mine", jobHandler.MyJobsHandler)
			r.Put("/{id}", jobHandler.UpdateJobHandler)
			r.Delete("/{id}", jobHandler.DeleteJobHandler)
		})
	})
}
