package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/middleware"
	"hirehub/internal/models"

	"github.com/go-chi/chi/v5"
)

func TestRoutes(r *chi.Mux, auth *middleware.Authenticator, testHandler *handlers.TestHandler, resultHandler *handlers.TestResultHandler) {
	employer := middleware.RequireRole(models.RoleEmployer)
	candidate := middleware.RequireRole(models.RoleCandidate)

	r.Route("/api/tests", func(r chi.Router) {
		r.With(auth.OptionalAuth).Get("/job/{jobId}", testHandler.GetTestByJobHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth, employer)
			r.With(middleware.ValidateRequest[*models.CreateTestRequest]()).Post("/", testHandler.CreateTestHandler)
			r.With(middleware.ValidateRequest[*models.UpdateTestRequest]()).Put("/{id}", testHandler.UpdateTestHandler)
			r.Delete("/{id}", testHandler.DeleteTestHandler)
		})
	})

	r.Route("/api/test-results", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.With(candidate, middleware.ValidateRequest[*models.SubmitTestRequest]()).Post("/", resultHandler.SubmitTestHandler)
		r.With(candidate).Get("/my-results", resultHandler.MyResultsHandler)
		r.Get("/application/{applicationId}", resultHandler.ApplicationResultHandler) // owner checked in the service
	})
}
