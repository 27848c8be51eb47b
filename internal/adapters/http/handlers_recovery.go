package http

import (
	"net/http"

	"github.com/lanternworks/auth-service/internal/application"
)

func (h *Handler) forgetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "forget_password", err)
		return
	}

	res, err := h.service.RequestRecovery(r.Context(), req.Email)
	if err != nil {
		writeMappedError(r.Context(), w, "forget_password", err)
		return
	}
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req application.ResetPasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "reset_password", err)
		return
	}

	res, err := h.service.ResetPassword(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "reset_password", err)
		return
	}

	setSessionCookie(w, res.SessionToken, res.ExpiresAt)
	writeSuccess(w, http.StatusCreated, res)
}
