package login

import (
	"net/http"

	"shelter-admin/internal/middleware"
	"shelter-admin/internal/platform/view"
	"shelter-admin/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, verifier auth.LoginVerifier, sm *middleware.SessionManager, views *view.Renderer) {
	r.Get("/login", formHandler(views))
	r.Post("/login", submitHandler(verifier, sm, views))
	r.Post("/logout", logoutHandler(sm))
}

type page struct {
	Error string
}

func formHandler(views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, http.StatusOK, "login", page{})
	}
}

func submitHandler(verifier auth.LoginVerifier, sm *middleware.SessionManager, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		if !verifier.Verify(username, password) {
			// Mensaje genérico a propósito. No se detalla qué campo falló.
			views.Render(w, http.StatusUnauthorized, "login", page{Error: "Invalid credentials"})
			return
		}

		if err := sm.SignIn(w, r, username); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}
}

func logoutHandler(sm *middleware.SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = sm.SignOut(w, r)
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
