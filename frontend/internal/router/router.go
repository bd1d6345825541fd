package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/itchan-dev/signup/frontend/internal/handler"
	fmw "github.com/itchan-dev/signup/frontend/internal/middleware"
	"github.com/itchan-dev/signup/frontend/internal/setup"
	"github.com/itchan-dev/signup/frontend/web"
	mw "github.com/itchan-dev/signup/shared/middleware"
	"github.com/itchan-dev/signup/shared/middleware/metrics"
)

func SetupRouter(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()
	h := deps.Handler
	secure := deps.Config.Frontend.SecureCookies

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware("frontend"))
	r.Use(mw.SecurityHeadersWithCSP(secure, mw.PageCSP))

	r.Get("/health", handler.HealthHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	// Pages
	r.Group(func(r chi.Router) {
		r.Use(fmw.GenerateCSRFToken(fmw.CSRFConfig{SecureCookies: secure}))
		r.Use(fmw.ValidateCSRFToken())

		r.Get("/", h.IndexGetHandler)
		r.Get("/register", h.RegisterGetHandler)
		r.Post("/register", h.RegisterPostHandler)
		r.Get("/oauth/github", h.OAuthGitHubHandler)
	})

	return r
}
