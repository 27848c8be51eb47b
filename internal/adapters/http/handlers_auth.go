package http

import (
	"net/http"

	"github.com/lanternworks/auth-service/internal/application"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}

	setSessionCookie(w, res.SessionToken, res.ExpiresAt)
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), sessionTokenFromRequest(r), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}

	setSessionCookie(w, res.SessionToken, res.ExpiresAt)
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), sessionTokenFromRequest(r)); err != nil {
		writeMappedError(r.Context(), w, "logout", err)
		return
	}

	clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListUsers(r.Context(), sessionTokenFromRequest(r))
	if err != nil {
		writeMappedError(r.Context(), w, "list_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"users": items})
}
