package observability

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the aggregation layer.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec // labels: route, status
	UpstreamFetches *prometheus.CounterVec // labels: provider, outcome={success,unavailable}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.HTTPRequests, m.UpstreamFetches)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can construct
// fetchers and handlers without colliding on the default registry.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safety_hub",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "status"}),
		UpstreamFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "safety_hub",
			Name:      "upstream_fetches_total",
			Help:      "Upstream GET attempts, by provider and outcome.",
		}, []string{"provider", "outcome"}),
	}
}

// RequestCounter is Gin middleware that counts completed requests.
func RequestCounter(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
