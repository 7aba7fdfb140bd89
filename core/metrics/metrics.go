package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path is where the exposition endpoint is mounted.
const Path = "/metrics"

// Metrics owns a registry and the HTTP collectors fed by its middleware.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a registry with request, Go runtime and process collectors.
func New(cfg Config) *Metrics {
	labels := []string{"method", "path", "status"}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "http_requests_duration_seconds",
			Help:      "HTTP request duration in seconds for all requests",
			Buckets:   prometheus.DefBuckets,
		}, labels),
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records one observation per request once the handler chain returns.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}

		values := []string{c.Method(), path, strconv.Itoa(status)}
		m.requests.WithLabelValues(values...).Inc()
		m.duration.WithLabelValues(values...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler serves the registry in the Prometheus text exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

// Name implements loader.Feature.
func (m *Metrics) Name() string {
	return "metrics"
}

// IsEnabled implements loader.Feature.
func (m *Metrics) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (m *Metrics) Load(router fiber.Router) error {
	router.Get(Path, m.Handler())
	return nil
}
