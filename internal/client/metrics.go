package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics conta as chamadas feitas à API por grupo, método e status.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registra os coletores no Registerer informado.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gocarne",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Requisições enviadas à API de carnês.",
		}, []string{"group", "method", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gocarne",
			Subsystem: "client",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições à API de carnês.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"group", "method"}),
	}
}

func (m *Metrics) observe(group, method, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(group, method, code).Inc()
	m.duration.WithLabelValues(group, method).Observe(elapsed.Seconds())
}

// Requests expõe o contador (usado em testes e no comando "metrics" da CLI).
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}
