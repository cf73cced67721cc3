// Package metrics holds the Prometheus collectors of the dashboard server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pitwall"

// Metrics groups all collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DatasetRecords      prometheus.Gauge
	DatasetLoads        *prometheus.CounterVec
	ViewerUploads       prometheus.Counter
}

// New registers the collectors on reg. A nil reg gets a fresh registry so
// tests and multiple servers never collide.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		DatasetRecords: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Joined records in the currently loaded F1 dataset.",
		}),
		DatasetLoads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_loads_total",
			Help:      "F1 dataset load attempts by result.",
		}, []string{"result"}),
		ViewerUploads: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "viewer_uploads_total",
			Help:      "Tables uploaded to the generic viewer.",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the exposition format for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveLoad records a dataset load. records is ignored on failure.
func (m *Metrics) ObserveLoad(records int, err error) {
	if err != nil {
		m.DatasetLoads.WithLabelValues("error").Inc()
		return
	}
	m.DatasetLoads.WithLabelValues("ok").Inc()
	m.DatasetRecords.Set(float64(records))
}
