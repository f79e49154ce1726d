package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// HTTPRequestsTotal counts API requests by route template and status code.
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "report_admin",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of API requests by method, route and status code.",
	}, []string{"method", "route", "code"})

	// HTTPRequestDurationSeconds observes request latency by route template.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "report_admin",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "API request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// StatusTransitionsTotal counts applied report status transitions by target status.
	StatusTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "report_admin",
		Subsystem: "workflow",
		Name:      "status_transitions_total",
		Help:      "Total number of report status transitions applied, by target status.",
	}, []string{"status"})

	// StatusConflictsTotal counts transitions rejected because the report changed concurrently.
	StatusConflictsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "report_admin",
		Subsystem: "workflow",
		Name:      "status_conflicts_total",
		Help:      "Total number of status transitions rejected by the version check.",
	})

	// IncentivePointsAwardedTotal sums incentive points credited to reporting users.
	IncentivePointsAwardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "report_admin",
		Subsystem: "workflow",
		Name:      "incentive_points_awarded_total",
		Help:      "Total incentive points credited to users for resolved reports.",
	})
)

// Register registers the service metrics with the default Prometheus registry.
// Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDurationSeconds,
			StatusTransitionsTotal,
			StatusConflictsTotal,
			IncentivePointsAwardedTotal,
		)
	})
}
