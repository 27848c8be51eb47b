package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers the HTTP routes and middleware stack.
// Centralizing routes here ensures consistent auth and error behavior across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", handler.status)
		r.Get("/users", handler.listUsers)

		r.Route("/user", func(r chi.Router) {
			r.Post("/create", handler.register)
			r.Post("/auth", handler.login)
			r.Delete("/logout", handler.logout)
			r.Post("/forget-password", handler.forgetPassword)
			r.Post("/reset-password", handler.resetPassword)
		})
	})

	return r
}
