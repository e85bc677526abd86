package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rampd",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rampd",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	parseResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rampd",
			Subsystem: "codec",
			Name:      "parse_total",
			Help:      "RAMP parse attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register installs the collectors on the default prometheus registry.
// Idempotent across servers in one process.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, parseResults)
	})
}

func ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, code).Inc()
	httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func CountParse(outcome string) {
	parseResults.WithLabelValues(outcome).Inc()
}
