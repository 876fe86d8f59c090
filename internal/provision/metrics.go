package provision

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Operation results.
const (
	resultCreated = "created"
	resultExists  = "exists"
	resultDeleted = "deleted"
	resultMissing = "missing"
	resultFailed  = "failed"
)

var (
	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fabkube",
			Subsystem: "provisioner",
			Name:      "operations_total",
			Help:      "Total number of provisioning operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fabkube",
			Subsystem: "provisioner",
			Name:      "operation_duration_seconds",
			Help:      "Duration of provisioning operations in seconds, including the existence check",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"operation"},
	)
)

func init() {
	// Register metrics with controller-runtime's registry
	metrics.Registry.MustRegister(
		operationsTotal,
		operationDuration,
	)
}

// recordOperationMetric records the result and duration of an operation.
func recordOperationMetric(op Operation, result string, duration time.Duration) {
	operationsTotal.WithLabelValues(string(op), result).Inc()
	operationDuration.WithLabelValues(string(op)).Observe(duration.Seconds())
}

func (p *Provisioner) record(op Operation, result string, start time.Time) {
	if p.enableMetrics {
		recordOperationMetric(op, result, time.Since(start))
	}
}
