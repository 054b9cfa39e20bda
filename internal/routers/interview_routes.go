package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/middleware"
	"hirehub/internal/models"

	"github.com/go-chi/chi/v5"
)

func InterviewRoutes(r *chi.Mux, auth *middleware.Authenticator, interviewHandler *handlers.InterviewHandler) {
	employer := middleware.RequireRole(models.RoleEmployer)

	r.Route("/api/interviews", func(r chi.Router) {
		r.Use(auth.RequireAuth)
		r.With(employer, middleware.ValidateRequest[*models.ScheduleInterviewRequest]()).Post("/", interviewHandler.ScheduleInterviewHandler)
		r.With(employer).Put("/{id}", interviewHandler.UpdateInterviewHandler)
		r.With(employer).Delete("/{id}", interviewHandler.CancelInterviewHandler)

		r.Get("/my/interviews", interviewHandler.MyInterviewsHandler) // candidates only, checked in the service
		r.Get("/{id}", interviewHandler.GetInterviewHandler)          // participants only
	})
}
