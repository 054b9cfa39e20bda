package routers

import (
	"net/http"
	"time"

	"hirehub/internal/handlers"
	"hirehub/internal/metrics"
	"hirehub/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Handlers groups every handler mounted by New.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Jobs        *handlers.JobHandler
	Application *handlers.ApplicationHandler
	Tests       *handlers.TestHandler
	Results     *handlers.TestResultHandler
	Interviews  *handlers.InterviewHandler
	Resumes     *handlers.ResumeHandler
	Health      *handlers.HealthHandler
}

type Options struct {
	CORSOrigin     string
	RequestTimeout time.Duration
	RequestLogging bool
}

func New(auth *middleware.Authenticator, h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	if opts.CORSOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{opts.CORSOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	if opts.RequestLogging {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chimw.Timeout(opts.RequestTimeout))
	}
	r.Use(metrics.Middleware)

	HealthRoutes(r, h.Health)
	AuthRoutes(r, auth, h.Auth)
	JobRoutes(r, auth, h.Jobs)
	ApplicationRoutes(r, auth, h.Application)
	TestRoutes(r, auth, h.Tests, h.Results)
	InterviewRoutes(r, auth, h.Interviews)
	UploadRoutes(r, h.Resumes)

	return r
}
