package services

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eslap_request_total",
			Help: "Total API requests",
		},
		[]string{"path"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eslap_request_duration_seconds",
			Help:    "Duration of API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	errorCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eslap_request_errors_total",
			Help: "API requests answered with a status >= 400",
		},
		[]string{"path"},
	)

	admissionOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eslap_admission_operations_total",
			Help: "Operations sent to stamp admission services",
		},
		[]string{"operation", "result"},
	)

	generatorRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eslap_generator_runs_total",
			Help: "Template generator invocations",
		},
		[]string{"kind", "result"},
	)
)

// Prometheus counters cannot be read back cheaply, the health probe uses these.
var (
	totalRequests atomic.Int64
	totalErrors   atomic.Int64
)

func init() {
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDuration)
	prometheus.MustRegister(errorCount)
	prometheus.MustRegister(admissionOperations)
	prometheus.MustRegister(generatorRuns)
}

func IncrementRequestCount(path string) {
	requestCount.WithLabelValues(path).Inc()
	totalRequests.Add(1)
}

func RecordRequestDuration(path string, seconds float64) {
	requestDuration.WithLabelValues(path).Observe(seconds)
}

func IncrementErrorCount(path string) {
	errorCount.WithLabelValues(path).Inc()
	totalErrors.Add(1)
}

func GetTotalRequestCount() int64 {
	return totalRequests.Load()
}

func GetTotalErrorCount() int64 {
	return totalErrors.Load()
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

func observeAdmission(operation string, err error) {
	admissionOperations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func observeGenerator(kind string, err error) {
	generatorRuns.WithLabelValues(kind, resultLabel(err)).Inc()
}
