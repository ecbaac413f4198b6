package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cashdine_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cashdine_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"method", "route"})

	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cashdine_transfers_total",
		Help: "Transfer attempts by outcome",
	}, []string{"outcome"})
)

// Metrics creates a Gin middleware recording request counts and latency per
// route template (not raw path, to keep cardinality bounded).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ObserveTransferOutcome counts a transfer attempt by outcome label
// (committed, replayed, insufficient_balance, rejected, error).
func ObserveTransferOutcome(outcome string) {
	transfersTotal.WithLabelValues(outcome).Inc()
}
