package routers

import (
	"hirehub/internal/handlers"
	"hirehub/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, auth *middleware.Authenticator, authHandler *handlers.AuthHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler) // JSON or multipart with resume
		r.Post("/login", authHandler.LoginHandler)
		r.With(auth.OptionalAuth).Post("/logout", authHandler.LogoutHandler)

		r.With(auth.RequireAuth).Get("/profile", authHandler.ProfileHandler)
		r.With(auth.RequireAuth).Put("/profile", authHandler.UpdateProfileHandler)
	})
}
