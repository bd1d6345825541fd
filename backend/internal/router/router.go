package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/signup/backend/internal/setup"
	mw "github.com/itchan-dev/signup/shared/middleware"
	"github.com/itchan-dev/signup/shared/middleware/metrics"
)

// New creates the API router.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	h := deps.Handler

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware("api"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Backend.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeadersWithCSP(false, mw.APICSP))

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
	})

	return r
}
