package dashboard

import (
	"net/http"

	"shelter-admin/internal/middleware"
	"shelter-admin/internal/platform/view"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, views *view.Renderer) {
	r.Get("/dashboard", dashboardHandler(svc, views))
}

type page struct {
	User  string
	Stats WeeklyStats
}

func dashboardHandler(svc *Service, views *view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, _ := middleware.GetIdentity(r.Context())

		stats, err := svc.Stats(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		views.Render(w, http.StatusOK, "dashboard", page{
			User:  identity.Username,
			Stats: stats,
		})
	}
}
