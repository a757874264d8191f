// Package metrics exposes Prometheus collectors for generateContent calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "gemini"

	OutcomeSuccess         = "success"
	OutcomeAPIError        = "api_error"
	OutcomeTransportError  = "transport_error"
	OutcomeInvalidResponse = "invalid_response"
)

// Collector records request outcomes and latency. A nil *Collector is a no-op.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "generateContent calls by model and outcome.",
		}, []string{"model", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Round trip time of generateContent calls.",
			Buckets:   []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"model"}),
	}
	for _, col := range []prometheus.Collector{c.requests, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one finished call.
func (c *Collector) Observe(model, outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.requests.WithLabelValues(model, outcome).Inc()
	c.duration.WithLabelValues(model).Observe(elapsed.Seconds())
}
