package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/rdmanage/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "rdmanage"

// Metrics owns a private Prometheus registry with HTTP and use-case
// metrics. It also implements service.UseCaseObserver.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
}

var _ service.UseCaseObserver = (*Metrics)(nil)

// NewMetrics registers the rdmanage collectors plus the Go runtime and
// process collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "service",
			Name:      "use_cases_total",
			Help:      "Service use cases by name and outcome.",
		}, []string{"use_case", "success"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "service",
			Name:      "use_case_duration_seconds",
			Help:      "Service use case latency by name.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"use_case"}),
	}
	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.useCases,
		m.useCaseDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveUseCase(_ context.Context, event service.UseCaseEvent) {
	m.useCases.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
	m.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
}

func (m *Metrics) observeRequest(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
