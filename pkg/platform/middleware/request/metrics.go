package request

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the per-route HTTP instruments.
type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
	Requests        *prometheus.CounterVec
}

// NewMetrics registers the HTTP instruments with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EndpointLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agegate_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"endpoint", "method"}),
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "agegate_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"endpoint", "method", "status"}),
	}
}

// Observe records one finished request.
func (m *Metrics) Observe(endpoint, method string, status int, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint, method).Observe(durationSeconds)
	m.Requests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
}
