package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/itchan-dev/signup/frontend/internal/flash"
	"github.com/itchan-dev/signup/frontend/internal/middleware"
	"github.com/itchan-dev/signup/shared/logger"
)

// Toast is a transient, non-blocking notification.
type Toast struct {
	Severity string
	Message  string
}

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	// ShowAlert opens the blocking alert dialog. Alert may be empty: an API
	// failure with an empty body still gets a dialog.
	ShowAlert bool
	Alert     string
	Toast     *Toast
	CSRFToken string
}

// TemplateData wraps page-specific data with common template data.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	common := CommonTemplateData{
		CSRFToken: middleware.GetCSRFTokenFromContext(r),
	}
	if msg := h.Flash.Pop(w, r, flash.Success); msg != "" {
		common.Toast = &Toast{Severity: "success", Message: msg}
	}
	return common
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.render(w, r, http.StatusOK, name, data, func(*CommonTemplateData) {})
}

// renderTemplateWithAlert renders the page with the given status and the
// blocking alert open, even when alert is empty.
func (h *Handler) renderTemplateWithAlert(w http.ResponseWriter, r *http.Request, status int, name string, data any, alert string) {
	h.render(w, r, status, name, data, func(c *CommonTemplateData) {
		c.ShowAlert = true
		c.Alert = alert
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any, decorate func(*CommonTemplateData)) {
	tmpl, ok := h.Templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r)
	decorate(&common)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, TemplateData{Data: data, Common: common}); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
