package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gocarne/internal/pkg/logger"
)

// statusRecorder guarda o status escrito pelo handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// HTTPMetrics conta requisições por rota (template do mux), método e status.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registra os coletores no Registerer informado.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(reg)
	return &HTTPMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gocarne",
			Subsystem: "fakeapi",
			Name:      "requests_total",
			Help:      "Requisições atendidas pelo backend de desenvolvimento.",
		}, []string{"route", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gocarne",
			Subsystem: "fakeapi",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições no backend de desenvolvimento.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

// Requests expõe o contador para testes.
func (m *HTTPMetrics) Requests() *prometheus.CounterVec {
	return m.requests
}

// Middleware mede e registra em log cada requisição.
func (m *HTTPMetrics) Middleware(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			elapsed := time.Since(start)
			m.requests.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).Inc()
			m.duration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())

			log.Debug("Requisição atendida.", map[string]interface{}{
				"method":     r.Method,
				"route":      route,
				"status":     rec.status,
				"elapsed_ms": elapsed.Milliseconds(),
				"request_id": r.Header.Get("X-Request-ID"),
			})
		})
	}
}
