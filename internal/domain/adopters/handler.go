package adopters

import (
	"errors"
	"net/http"

	"shelter-admin/internal/platform/view"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

func RegisterRoutes(r chi.Router, svc *Service, views *view.Renderer) {
	r.Route("/adopters", func(ar chi.Router) {
		ar.Get("/", listAdoptersHandler(svc, views))
		ar.Get("/new", newAdopterFormHandler(views))
		ar.Post("/new", createAdopterHandler(svc, views))
		ar.Get("/{adopterID}", showAdopterHandler(svc, views))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc))
	})
}

type listPage struct {
	Adopters []Adopter
	Error    string
}

type formPage struct {
	Input CreateInput
	Error string
}

type showPage struct {
	Adopter Adopter
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func listAdoptersHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		views.Render(w, http.StatusOK, "adopters_list", listPage{Adopters: items})
	}
}

func newAdopterFormHandler(views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, http.StatusOK, "adopter_new", formPage{})
	}
}

func createAdopterHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			FirstName:   r.PostFormValue("firstName"),
			LastName:    r.PostFormValue("lastName"),
			Email:       r.PostFormValue("email"),
			Phone:       r.PostFormValue("phone"),
			Address:     r.PostFormValue("address"),
			City:        r.PostFormValue("city"),
			State:       r.PostFormValue("state"),
			Zip:         r.PostFormValue("zip"),
			About:       r.PostFormValue("about"),
			Preferences: r.PostForm["preferences"],
		}

		if _, err := svc.Create(r.Context(), in); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				views.Render(w, http.StatusBadRequest, "adopter_new", formPage{
					Input: in,
					Error: "First name, last name and email are required.",
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/adopters", http.StatusFound)
	}
}

func showAdopterHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				items, lerr := svc.List(r.Context())
				if lerr != nil {
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				views.Render(w, http.StatusNotFound, "adopters_list", listPage{
					Adopters: items,
					Error:    "Adopter not found.",
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		views.Render(w, http.StatusOK, "adopter_show", showPage{Adopter: a})
	}
}

func deleteAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.DeleteByID(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, deleteResponse{Success: false, Message: "internal error"})
			return
		}
		if !removed {
			writeJSON(w, http.StatusNotFound, deleteResponse{Success: false, Message: "adopter not found"})
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "adopter deleted"})
	}
}

// Duplicado a propósito, ver nota en pets/handler.go.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
