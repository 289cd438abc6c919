package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sccse_chatbot"

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	intents          *prometheus.CounterVec
	upstreamFailures *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	summaries        prometheus.Counter
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "intents_total",
				Help:      "Messages handled, by routed intent",
			},
			[]string{"intent"},
		),
		upstreamFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_failures_total",
				Help:      "Failed calls to the retriever or the answer generator",
			},
			[]string{"dependency"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		summaries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "summaries_created_total",
				Help:      "Conversation summaries generated",
			},
		),
	}
	m.registry.MustRegister(m.intents, m.upstreamFailures, m.httpDuration, m.summaries)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) IncIntent(intent string) {
	if m == nil {
		return
	}
	m.intents.WithLabelValues(intent).Inc()
}

func (m *Metrics) IncUpstreamFailure(dependency string) {
	if m == nil {
		return
	}
	m.upstreamFailures.WithLabelValues(dependency).Inc()
}

func (m *Metrics) IncSummary() {
	if m == nil {
		return
	}
	m.summaries.Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
