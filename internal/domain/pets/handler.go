package pets

import (
	"errors"
	"net/http"

	"shelter-admin/internal/platform/view"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

func RegisterRoutes(r chi.Router, svc *Service, views *view.Renderer) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc, views))
		pr.Get("/new", newPetFormHandler(views))
		pr.Post("/new", createPetHandler(svc, views))
		pr.Get("/{petID}", showPetHandler(svc, views))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// listPage alimenta pets_list; Error se usa para el 404 del show.
type listPage struct {
	Pets  []Pet
	Error string
}

type formPage struct {
	Input CreateInput
	Error string
}

type showPage struct {
	Pet Pet
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func listPetsHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		views.Render(w, http.StatusOK, "pets_list", listPage{Pets: items})
	}
}

func newPetFormHandler(views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, http.StatusOK, "pet_new", formPage{})
	}
}

func createPetHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		in := CreateInput{
			Name:         r.PostFormValue("name"),
			Type:         r.PostFormValue("type"),
			Breed:        r.PostFormValue("breed"),
			Age:          r.PostFormValue("age"),
			Gender:       r.PostFormValue("gender"),
			Weight:       r.PostFormValue("weight"),
			Photo:        r.PostFormValue("photo"),
			About:        r.PostFormValue("about"),
			Health:       r.PostForm["health"],
			SpecialNeeds: r.PostForm["specialNeeds"],
		}

		if _, err := svc.Create(r.Context(), in); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				views.Render(w, http.StatusBadRequest, "pet_new", formPage{
					Input: in,
					Error: "Name and type are required.",
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/pets", http.StatusFound)
	}
}

func showPetHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				// El read path re-renderiza el listado con mensaje, no JSON.
				items, lerr := svc.List(r.Context())
				if lerr != nil {
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				views.Render(w, http.StatusNotFound, "pets_list", listPage{
					Pets:  items,
					Error: "Pet not found.",
				})
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		views.Render(w, http.StatusOK, "pet_show", showPage{Pet: p})
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.DeleteByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, deleteResponse{Success: false, Message: "internal error"})
			return
		}
		if !removed {
			writeJSON(w, http.StatusNotFound, deleteResponse{Success: false, Message: "pet not found"})
			return
		}
		writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: "pet deleted"})
	}
}

// writeJSON está duplicado a propósito en pets y adopters; con dos módulos
// no compensa todavía un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
