package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the per-process registry of panel metrics. Created once at
// startup and passed to whoever records into it, never a package-global map.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration      *prometheus.HistogramVec
	RequestsTotal        *prometheus.CounterVec
	SessionStoreFailures prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agripanel_http_request_duration_seconds",
			Help:    "Duration of HTTP requests handled by the admin panel",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "status"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agripanel_http_requests_total",
			Help: "Total HTTP requests handled by the admin panel",
		}, []string{"method", "status"}),
		SessionStoreFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "agripanel_session_store_failures_total",
			Help: "Session store writes/deletes that failed and were swallowed",
		}),
	}
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method string, status int, start time.Time) {
	code := strconv.Itoa(status)
	m.RequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(method, code).Inc()
}

// IncSessionStoreFailure counts one swallowed session-store error.
func (m *Metrics) IncSessionStoreFailure() {
	m.SessionStoreFailures.Inc()
}

// Handler exposes the registry for scraping at /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records duration and count for every request passing through.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.ObserveRequest(r.Method, status, start)
	})
}
