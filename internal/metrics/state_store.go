package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stateStoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "state_store",
		Name:      "operations_total",
		Help:      "Count of state store operations.",
	}, []string{"operation", "status"})
	stateStoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "state_store",
		Name:      "operation_duration_seconds",
		Help:      "Duration of state store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

type StateStore struct{}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (StateStore) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	stateStoreOperationsTotal.WithLabelValues(operation, status).Inc()
	stateStoreOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
