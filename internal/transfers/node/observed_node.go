// Package node wraps the node collaborator queried during output scanning.
package node

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const opGetTransactionOutsGlobalIndices = "get_transaction_outs_global_indices"

type Options struct {
	// RPS caps requests per second. Zero disables throttling.
	RPS int
	// Attempts is the number of tries per request; RetryDelay the wait after
	// the first failure, doubled after each further one.
	Attempts   int
	RetryDelay time.Duration
}

// ObservedNode throttles and retries node requests and records their
// outcome. It is safe for concurrent use by scan workers.
type ObservedNode struct {
	node    Node
	opts    Options
	limiter ratelimit.Limiter
	metrics RequestMetrics
	logger  *zap.Logger
}

func NewObservedNode(node Node, opts Options, metrics RequestMetrics, logger *zap.Logger) *ObservedNode {
	limiter := ratelimit.NewUnlimited()
	if opts.RPS > 0 {
		limiter = ratelimit.New(opts.RPS)
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	return &ObservedNode{
		node:    node,
		opts:    opts,
		limiter: limiter,
		metrics: metrics,
		logger:  logger.Named("node"),
	}
}

func (n *ObservedNode) GetTransactionOutsGlobalIndices(ctx context.Context, hash crypto.Hash) (indices []uint32, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	started := time.Now()
	defer func() {
		n.observe(opGetTransactionOutsGlobalIndices, err, started)
	}()

	err = clock.Retry(ctx, n.opts.Attempts, n.opts.RetryDelay, func(attempt int) error {
		n.limiter.Take()
		var reqErr error
		indices, reqErr = n.node.GetTransactionOutsGlobalIndices(ctx, hash)
		if reqErr != nil {
			n.logger.Warn("global indices request failed",
				zap.Stringer("tx", hash), zap.Int("attempt", attempt), zap.Error(reqErr))
		}
		return reqErr
	})
	if err != nil {
		return nil, fmt.Errorf("get global indices of %s: %w", hash, err)
	}
	return indices, nil
}

func (n *ObservedNode) observe(operation string, err error, started time.Time) {
	if n.metrics == nil {
		return
	}
	n.metrics.Observe(operation, err, started)
}
