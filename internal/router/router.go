package router

import (
	"database/sql"
	"net/http"

	"shelter-admin/internal/adapters/auth/static"
	"shelter-admin/internal/adapters/storage/jsonfile"
	pg "shelter-admin/internal/adapters/storage/postgres"
	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/dashboard"
	"shelter-admin/internal/domain/login"
	"shelter-admin/internal/domain/pets"
	"shelter-admin/internal/middleware"
	"shelter-admin/internal/platform/config"
	"shelter-admin/internal/platform/logger"
	"shelter-admin/internal/platform/metrics"
	"shelter-admin/internal/platform/view"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Config *config.Config
	Logger logger.Logger

	// Opcional: repos inyectados (tests). Si vienen nil se resuelven
	// según config: Postgres si hay DSN, archivos JSON si no.
	PetsRepo     pets.Repository
	AdoptersRepo adopters.Repository

	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	conf := opts.Config
	lg := opts.Logger
	if lg == nil {
		lg = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(lg))

	// Registry propio por router: los tests levantan varios servers.
	reg := prometheus.NewRegistry()
	prov := metrics.NewProvider(reg)
	r.Use(prov.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if conf.Metrics.Enabled {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	petsRepo := opts.PetsRepo
	adoptersRepo := opts.AdoptersRepo

	db := opts.DB
	if db == nil && conf.Storage.DSN != "" {
		if opened, err := pg.Open(conf.Storage.DSN); err == nil {
			db = opened
		} else {
			lg.Warn("postgres unavailable, falling back to json files", map[string]any{"error": err.Error()})
		}
	}

	if petsRepo == nil {
		if db != nil {
			petsRepo = pg.NewPetsRepo(db)
		} else {
			petsRepo = jsonfile.NewPetsRepo(conf.Storage.DataDir)
		}
	}
	if adoptersRepo == nil {
		if db != nil {
			adoptersRepo = pg.NewAdoptersRepo(db)
		} else {
			adoptersRepo = jsonfile.NewAdoptersRepo(conf.Storage.DataDir)
		}
	}

	petsSvc := pets.NewService(petsRepo)
	adoptersSvc := adopters.NewService(adoptersRepo)
	dashSvc := dashboard.NewService(petsSvc, adoptersSvc)

	views := view.New()
	sessions := middleware.NewSessionManager(conf.Session.Secret)
	verifier := static.NewVerifier(conf.Admin.Username, conf.Admin.Password)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	login.RegisterRoutes(r, verifier, sessions, views)

	// Todo lo de entidades pasa por el gate de sesión.
	r.Group(func(gr chi.Router) {
		gr.Use(sessions.RequireSession)

		dashboard.RegisterRoutes(gr, dashSvc, views)
		pets.RegisterRoutes(gr, petsSvc, views)
		adopters.RegisterRoutes(gr, adoptersSvc, views)
	})

	return r
}
