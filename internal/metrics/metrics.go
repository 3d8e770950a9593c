// Package metrics exposes Prometheus metrics for the HTTP API and the
// completion pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "omnibar_http_request_duration_seconds",
			Help: "HTTP request duration by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	completions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "omnibar_completions_total",
			Help: "Completion lookups by result.",
		},
		[]string{"result"},
	)
)

// Completion result labels.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultEmpty = "empty"
)

// ObserveCompletion records the outcome of one completion lookup.
func ObserveCompletion(result string) {
	completions.WithLabelValues(result).Inc()
}

// Middleware returns gin middleware that records request durations.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
