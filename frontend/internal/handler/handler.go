package handler

import (
	"html/template"
	"net/http"

	"github.com/itchan-dev/signup/frontend/internal/flash"
	"github.com/itchan-dev/signup/frontend/internal/oauth"
	"github.com/itchan-dev/signup/frontend/internal/registration"
)

type Handler struct {
	Templates     map[string]*template.Template
	APIClient     registration.Registrar
	GitHub        *oauth.GitHubProvider
	Flash         flash.Flash
	SecureCookies bool
}

func New(templates map[string]*template.Template, apiClient registration.Registrar, github *oauth.GitHubProvider, secureCookies bool) *Handler {
	return &Handler{
		Templates:     templates,
		APIClient:     apiClient,
		GitHub:        github,
		Flash:         flash.Flash{SecureCookies: secureCookies},
		SecureCookies: secureCookies,
	}
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
