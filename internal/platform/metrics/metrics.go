package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Provider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewProvider registra las métricas en el registry recibido. Cada
// router arma el suyo, así los tests pueden levantar varios servers
// sin chocar con el registry global.
func NewProvider(reg prometheus.Registerer) *Provider {
	return &Provider{
		requestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "shelter_admin_requests_total",
			Help: "Requests served, by path and status code.",
		}, []string{"path", "status"}),
		requestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shelter_admin_request_duration_seconds",
			Help:    "Request duration in seconds, by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (p *Provider) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		// El patrón de chi (p.ej. /pets/{petID}) mantiene acotada la
		// cardinalidad de las etiquetas; recién está completo después
		// de despachar el handler.
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		p.requestsTotal.WithLabelValues(path, strconv.Itoa(sw.status)).Inc()
		p.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}
