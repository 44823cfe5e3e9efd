package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crmconsole",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Backend API requests by operation and outcome.",
	}, []string{"op", "code"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crmconsole",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend API request latency by operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

// Collectors returns client metrics to be registered by the application
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{requestsTotal, requestDuration}
}

func outcome(status int, timeout bool) string {
	switch {
	case timeout:
		return "timeout"
	case status == 0:
		return "error"
	default:
		return strconv.Itoa(status)
	}
}
