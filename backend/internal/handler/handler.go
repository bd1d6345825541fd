package handler

import (
	"github.com/itchan-dev/signup/backend/internal/service"
)

type Handler struct {
	auth service.AuthService
}

func New(auth service.AuthService) *Handler {
	return &Handler{auth: auth}
}
