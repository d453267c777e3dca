// Package chainstate feeds blocks and pool diffs to blockchain consumers and
// keeps, per consumer, the chain it has been fed.
package chainstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-transfers/pkg/safe"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=mocks_test.go -package=chainstate github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/service/syncer BlockchainConsumer

var (
	ErrConsumerExists = errors.New("consumer already registered")
	ErrHeightGap      = errors.New("blocks do not continue the consumer chain")
)

var _ syncer.BlockchainSynchronizer = (*Tracker)(nil)

type entry struct {
	consumer syncer.BlockchainConsumer
	cursor   *Cursor
}

// Tracker is a BlockchainSynchronizer that delivers batches handed to it by
// the caller. Consumers are driven in registration order.
type Tracker struct {
	logger *zap.Logger

	mu      sync.Mutex
	entries []*entry
}

func NewTracker(logger *zap.Logger) *Tracker {
	return &Tracker{logger: logger.Named("chainstate")}
}

func (t *Tracker) AddConsumer(consumer syncer.BlockchainConsumer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.find(consumer) != nil {
		return ErrConsumerExists
	}
	t.entries = append(t.entries, &entry{consumer: consumer, cursor: &Cursor{}})
	return nil
}

func (t *Tracker) RemoveConsumer(consumer syncer.BlockchainConsumer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, e := range t.entries {
		if e.consumer == consumer {
			t.entries = append(t.entries[:i:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ConsumerState returns the cursor of consumer, or nil if it is not registered.
func (t *Tracker) ConsumerState(consumer syncer.BlockchainConsumer) syncer.StreamSerializable {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e := t.find(consumer); e != nil {
		return e.cursor
	}
	return nil
}

func (t *Tracker) ConsumerKnownBlocks(consumer syncer.BlockchainConsumer) []crypto.Hash {
	t.mu.Lock()
	e := t.find(consumer)
	t.mu.Unlock()
	if e == nil {
		return nil
	}
	return e.cursor.KnownBlocks()
}

func (t *Tracker) find(consumer syncer.BlockchainConsumer) *entry {
	for _, e := range t.entries {
		if e.consumer == consumer {
			return e
		}
	}
	return nil
}

func (t *Tracker) snapshot() []*entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*entry(nil), t.entries...)
}

// ApplyBlocks hands the contiguous batch starting at startHeight to every
// consumer. Blocks a consumer already holds are skipped; the first block that
// differs from its chain detaches the consumer at that height first.
func (t *Tracker) ApplyBlocks(ctx context.Context, blocks []model.CompleteBlock, startHeight uint32) error {
	span, err := safe.Uint32(len(blocks))
	if err == nil {
		_, err = safe.Add(startHeight, span)
	}
	if err != nil {
		return fmt.Errorf("batch of %d blocks at %d: %w", len(blocks), startHeight, err)
	}
	for _, e := range t.snapshot() {
		if err := t.apply(ctx, e, blocks, startHeight); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tracker) apply(ctx context.Context, e *entry, blocks []model.CompleteBlock, startHeight uint32) error {
	e.cursor.mu.Lock()
	defer e.cursor.mu.Unlock()

	next := e.cursor.next()
	if len(e.cursor.blocks) > 0 && startHeight > next {
		return fmt.Errorf("blocks from %d, consumer at %d: %w", startHeight, next, ErrHeightGap)
	}

	skip := 0
	for ; skip < len(blocks); skip++ {
		height := startHeight + uint32(skip)
		known, ok := e.cursor.hashAt(height)
		if !ok {
			break
		}
		if known != blocks[skip].BlockHash {
			t.logger.Info("chain switch", zap.Uint32("height", height), zap.Stringer("block", blocks[skip].BlockHash))
			e.consumer.OnBlockchainDetach(height)
			e.cursor.truncate(height)
			break
		}
	}
	if skip == len(blocks) {
		return nil
	}

	from := startHeight + uint32(skip)
	if err := e.consumer.OnNewBlocks(ctx, blocks[skip:], from); err != nil {
		return fmt.Errorf("deliver blocks from %d: %w", from, err)
	}
	hashes := make([]crypto.Hash, 0, len(blocks)-skip)
	for _, b := range blocks[skip:] {
		hashes = append(hashes, b.BlockHash)
	}
	e.cursor.append(from, hashes)
	return nil
}

// Detach rolls every consumer back below height.
func (t *Tracker) Detach(height uint32) {
	for _, e := range t.snapshot() {
		e.cursor.mu.Lock()
		if height < e.cursor.next() {
			e.consumer.OnBlockchainDetach(height)
			e.cursor.truncate(height)
		}
		e.cursor.mu.Unlock()
	}
}

// UpdatePool hands a pool diff to every consumer. Each consumer receives
// only the added transactions it does not know yet.
func (t *Tracker) UpdatePool(ctx context.Context, added []model.TransactionReader, deleted []crypto.Hash) error {
	for _, e := range t.snapshot() {
		known := make(map[crypto.Hash]struct{})
		for _, h := range e.consumer.KnownPoolTxIDs() {
			known[h] = struct{}{}
		}
		fresh := make([]model.TransactionReader, 0, len(added))
		for _, tx := range added {
			if _, ok := known[tx.TransactionHash()]; !ok {
				fresh = append(fresh, tx)
			}
		}
		if err := e.consumer.OnPoolUpdated(ctx, fresh, deleted); err != nil {
			return fmt.Errorf("deliver pool update: %w", err)
		}
	}
	return nil
}
