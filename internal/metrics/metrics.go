// Package metrics exposes Prometheus collectors for the catalog and the HTTP API.
// Collectors live on a private registry so tests can build as many
// independent instances as they like.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pkordes/whattoeat/internal/domain"
)

const namespace = "whattoeat"

// Metrics holds every collector the application reports.
type Metrics struct {
	registry *prometheus.Registry

	rolls    *prometheus.CounterVec
	dishes   prometheus.Gauge
	history  prometheus.Gauge
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec

	// mu guards lastSeq, the Seq of the event the gauges currently reflect.
	mu      sync.Mutex
	lastSeq uint64
}

// New constructs and registers all collectors, plus the standard Go and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rolls_total",
				Help:      "Rolls performed, by whether a dish matched the filter.",
			},
			[]string{"result"},
		),
		dishes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_dishes",
			Help:      "Dishes currently in the catalog.",
		}),
		history: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_entries",
			Help:      "Entries currently in the roll history.",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests served, by method, route pattern, and status.",
			},
			[]string{"method", "route", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency, by method and route pattern.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.rolls, m.dishes, m.history, m.requests, m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe updates the catalog collectors from one catalog event.
// Subscribe it to the event broker. Events can arrive out of order when
// mutations race; the gauges only move forward in Seq, so a late event
// never overwrites newer sizes. Events with Seq 0 are always applied.
func (m *Metrics) Observe(e domain.Event) {
	switch e.Type {
	case domain.EventRolled:
		m.rolls.WithLabelValues("match").Inc()
	case domain.EventRollMissed:
		m.rolls.WithLabelValues("no_match").Inc()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e.Seq != 0 {
		if e.Seq <= m.lastSeq {
			return
		}
		m.lastSeq = e.Seq
	}
	m.dishes.Set(float64(e.CatalogSize))
	m.history.Set(float64(e.HistorySize))
}

// SetCatalogSize sets the dish gauge directly, e.g. after seeding.
func (m *Metrics) SetCatalogSize(n int) {
	m.dishes.Set(float64(n))
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
