// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	consumerNewBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "new_blocks_total",
		Help:      "Count of block batches applied by transfers consumers.",
	}, []string{"network", "status"})

	consumerNewBlocksDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "new_blocks_duration_seconds",
		Help:      "Duration of applying a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	consumerBatchBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "batch_blocks",
		Help:      "Number of blocks per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})

	consumerBatchTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "batch_transactions",
		Help:      "Number of scanned transactions per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"network"})

	consumerPoolUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "pool_updates_total",
		Help:      "Count of pool updates applied by transfers consumers.",
	}, []string{"network", "status"})

	consumerPoolUpdateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "pool_update_duration_seconds",
		Help:      "Duration of applying a pool update.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	consumerPoolTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "pool_transactions_total",
		Help:      "Count of pool transactions added or deleted.",
	}, []string{"network", "change"})

	consumerDuplicateKeysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cryptonote",
		Subsystem: "transfers_consumer",
		Name:      "duplicate_output_keys_total",
		Help:      "Count of owned outputs ignored because their output key was reused.",
	}, []string{"network", "kind"})
)

// TransfersConsumer tracks metrics for transfers consumers of one network.
type TransfersConsumer struct {
	network string
}

func NewTransfersConsumer(network string) *TransfersConsumer {
	if network == "" {
		network = "unknown"
	}
	return &TransfersConsumer{network: network}
}

// ObserveNewBlocks records a block batch outcome, its duration and size.
func (m TransfersConsumer) ObserveNewBlocks(err error, blocks, transactions int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	consumerNewBlocksTotal.WithLabelValues(m.network, status).Inc()
	consumerNewBlocksDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	consumerBatchBlocks.WithLabelValues(m.network).Observe(float64(blocks))
	consumerBatchTransactions.WithLabelValues(m.network).Observe(float64(transactions))
}

// ObservePoolUpdate records a pool update outcome and duration.
func (m TransfersConsumer) ObservePoolUpdate(err error, added, deleted int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	consumerPoolUpdatesTotal.WithLabelValues(m.network, status).Inc()
	consumerPoolUpdateDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	consumerPoolTransactions.WithLabelValues(m.network, "added").Add(float64(added))
	consumerPoolTransactions.WithLabelValues(m.network, "deleted").Add(float64(deleted))
}

func (m TransfersConsumer) ObserveDuplicateKey(kind string) {
	consumerDuplicateKeysTotal.WithLabelValues(m.network, kind).Inc()
}
