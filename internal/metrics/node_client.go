package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node requests.",
	}, []string{"operation", "network", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for requests to the node.
type NodeClient struct {
	network string
}

func NewNodeClient(network string) *NodeClient {
	if network == "" {
		network = "unknown"
	}
	return &NodeClient{network: network}
}

// Observe records a single node request outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
