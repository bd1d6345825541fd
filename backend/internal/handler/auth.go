package handler

import (
	"net/http"

	"github.com/itchan-dev/signup/shared/domain"
	"github.com/itchan-dev/signup/shared/logger"
	"github.com/itchan-dev/signup/shared/utils"
)

const maxBodyBytes = 1 << 20

// Register creates an account from a JSON {email, password} body.
// Errors are written as plain text so clients can show them as-is.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if err := utils.DecodeValidate(http.MaxBytesReader(w, r.Body, maxBodyBytes), &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), creds)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	logger.Log.Info("user registered", "user_id", user.Id)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte("Created"))
}
