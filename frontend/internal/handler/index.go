package handler

import "net/http"

// IndexGetHandler serves the application root, where a successful
// registration lands and its toast is shown.
func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "index.html", nil)
}
