package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/itchan-dev/signup/frontend/internal/flash"
	"github.com/itchan-dev/signup/frontend/internal/registration"
	"github.com/itchan-dev/signup/shared/logger"
)

const (
	registerTemplate = "register.html"

	actionSubmit         = "submit"
	actionTogglePassword = "toggle_password"
	actionToggleConfirm  = "toggle_confirm"

	OAuthStateCookie = "oauth_state"
	oauthStateMaxAge = 600
)

var registrationOutcomes = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "signup_registration_outcomes_total",
		Help: "Registration form submissions by outcome",
	},
	[]string{"outcome"},
)

// RegisterPageData is the page model of register.html.
type RegisterPageData struct {
	Form registration.Form
}

// formFromRequest rebuilds the form state posted back by the page.
func formFromRequest(r *http.Request) registration.Form {
	var f registration.Form
	f.SetEmail(r.PostFormValue("email"))
	f.SetPassword(r.PostFormValue("password"))
	f.SetConfirm(r.PostFormValue("confirm_password"))
	f.Primary.Reveal, _ = strconv.ParseBool(r.PostFormValue("show_password"))
	f.Confirm.Reveal, _ = strconv.ParseBool(r.PostFormValue("show_confirm"))
	return f
}

func (h *Handler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, registerTemplate, RegisterPageData{})
}

// RegisterPostHandler applies one form event: a visibility toggle re-renders
// the page with every value kept, anything else is a submission.
func (h *Handler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	form := formFromRequest(r)

	switch action := r.PostFormValue("action"); action {
	case actionTogglePassword:
		form.TogglePassword()
		h.renderTemplate(w, r, registerTemplate, RegisterPageData{Form: form})
		return
	case actionToggleConfirm:
		form.ToggleConfirm()
		h.renderTemplate(w, r, registerTemplate, RegisterPageData{Form: form})
		return
	case actionSubmit, "":
	default:
		logger.Log.Debug("unknown register action, treating as submit", "action", action)
	}

	out := form.Submit(r.Context(), h.APIClient)
	registrationOutcomes.WithLabelValues(out.Kind.String()).Inc()

	switch out.Kind {
	case registration.Registered:
		logger.Log.Info("registration succeeded")
		h.Flash.Set(w, flash.Success, out.Toast)
		http.Redirect(w, r, registration.SuccessURL, out.Status)
		return
	case registration.Rejected:
		logger.Log.Debug("registration rejected locally", "reason", out.Alert)
	case registration.Conflict:
		logger.Log.Info("registration conflict: email already in use")
	case registration.Failed:
		logger.Log.Warn("registration failed", "error", out.Err)
	}

	h.renderTemplateWithAlert(w, r, out.Status, registerTemplate, RegisterPageData{Form: form}, out.Alert)
}

// OAuthGitHubHandler sends the browser to GitHub's authorization screen.
// The state is remembered in a cookie for the callback to compare.
func (h *Handler) OAuthGitHubHandler(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     OAuthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   oauthStateMaxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.GitHub.AuthCodeURL(state), http.StatusFound)
}
