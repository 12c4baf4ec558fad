package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method", "path"})

	httpResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "HTTP response size in bytes",
		Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
	}, []string{"method", "path"})

	// Route engine metrics
	RoutesPlanned = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "routes",
		Name:      "planned_total",
		Help:      "Total routes planned, by transport mode",
	}, []string{"mode"})

	ProviderAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "provider",
		Name:      "attempts_total",
		Help:      "Total estimation attempts per provider and outcome",
	}, []string{"provider", "outcome"})

	ProviderCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "planner",
		Subsystem: "provider",
		Name:      "call_duration_seconds",
		Help:      "Latency of external provider calls",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8},
	}, []string{"provider"})

	FallbackSegments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "planner",
		Subsystem: "provider",
		Name:      "fallback_segments_total",
		Help:      "Total segments estimated by the geometric fallback",
	})
)

// Middleware records request metrics.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().StatusCode())
		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
		httpResponseSize.WithLabelValues(method, path).Observe(float64(len(c.Response().Body())))

		return err
	}
}

// Handler returns a Fiber handler serving the Prometheus /metrics endpoint.
func Handler() fiber.Handler {
	handler := promhttp.Handler()
	return func(c *fiber.Ctx) error {
		fasthttpadaptor.NewFastHTTPHandler(handler)(c.Context())
		return nil
	}
}
