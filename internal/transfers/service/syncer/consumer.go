package syncer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/observer"
	"go.uber.org/zap"
)

var (
	ErrViewKeyMismatch = errors.New("view secret key does not match consumer")
	ErrGlobalIndices   = errors.New("node returned too few global output indices")
)

var _ BlockchainConsumer = (*Consumer)(nil)

// Consumer scans blocks and pool updates for every subscription sharing one
// view key. Calls from the blockchain synchronizer must not overlap.
type Consumer struct {
	logger      *zap.Logger
	node        Node
	registry    DuplicateRegistry
	metrics     ConsumerMetrics
	currency    container.Currency
	workerCount int
	viewPublic  crypto.PublicKey
	viewSecret  crypto.SecretKey

	mu            sync.Mutex
	subscriptions []*Subscription
	bySpendKey    map[crypto.PublicKey]*Subscription
	syncStart     model.SynchronizationStart
	poolTxs       map[crypto.Hash]struct{}

	observers observer.Manager[ConsumerObserver]
}

func NewConsumer(
	cfg Config,
	viewSecret crypto.SecretKey,
	node Node,
	registry DuplicateRegistry,
	metrics ConsumerMetrics,
	logger *zap.Logger,
) (*Consumer, error) {
	viewPublic, err := crypto.SecretKeyToPublicKey(viewSecret)
	if err != nil {
		return nil, fmt.Errorf("view secret key: %w", err)
	}
	return &Consumer{
		logger:      logger.Named("consumer").With(zap.Stringer("view_key", viewPublic)),
		node:        node,
		registry:    registry,
		metrics:     metrics,
		currency:    cfg.Currency,
		workerCount: cfg.workerCount(),
		viewPublic:  viewPublic,
		viewSecret:  viewSecret,
		bySpendKey:  make(map[crypto.PublicKey]*Subscription),
		poolTxs:     make(map[crypto.Hash]struct{}),
	}, nil
}

func (c *Consumer) ViewPublicKey() crypto.PublicKey {
	return c.viewPublic
}

func (c *Consumer) AddObserver(o ConsumerObserver) bool {
	return c.observers.Add(o)
}

func (c *Consumer) RemoveObserver(o ConsumerObserver) bool {
	return c.observers.Remove(o)
}

// AddSubscription returns the subscription of the account's spend key,
// creating it on first use.
func (c *Consumer) AddSubscription(sub model.AccountSubscription) (*Subscription, error) {
	if sub.Keys.ViewSecretKey != c.viewSecret {
		return nil, fmt.Errorf("add subscription %s: %w", sub.Keys.Address, ErrViewKeyMismatch)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	spendKey := sub.Keys.Address.SpendPublicKey
	if existing, ok := c.bySpendKey[spendKey]; ok {
		return existing, nil
	}

	s := NewSubscription(sub, c.currency, c.logger)
	i := sort.Search(len(c.subscriptions), func(i int) bool {
		k := c.subscriptions[i].Address().SpendPublicKey
		return bytes.Compare(k[:], spendKey[:]) >= 0
	})
	c.subscriptions = append(c.subscriptions, nil)
	copy(c.subscriptions[i+1:], c.subscriptions[i:])
	c.subscriptions[i] = s
	c.bySpendKey[spendKey] = s
	c.updateSyncStart()
	return s, nil
}

// RemoveSubscription reports whether a subscription was removed.
func (c *Consumer) RemoveSubscription(address model.AccountPublicAddress) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.bySpendKey[address.SpendPublicKey]
	if !ok || address.ViewPublicKey != c.viewPublic {
		return false
	}
	delete(c.bySpendKey, address.SpendPublicKey)
	for i, existing := range c.subscriptions {
		if existing == s {
			c.subscriptions = append(c.subscriptions[:i:i], c.subscriptions[i+1:]...)
			break
		}
	}
	c.updateSyncStart()
	return true
}

func (c *Consumer) GetSubscription(address model.AccountPublicAddress) (*Subscription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if address.ViewPublicKey != c.viewPublic {
		return nil, false
	}
	s, ok := c.bySpendKey[address.SpendPublicKey]
	return s, ok
}

// GetSubscriptions lists subscribed addresses ordered by spend key.
func (c *Consumer) GetSubscriptions() []model.AccountPublicAddress {
	subs := c.snapshotSubscriptions()
	addresses := make([]model.AccountPublicAddress, 0, len(subs))
	for _, s := range subs {
		addresses = append(addresses, s.Address())
	}
	return addresses
}

func (c *Consumer) SubscriptionsCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscriptions)
}

func (c *Consumer) snapshotSubscriptions() []*Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Subscription(nil), c.subscriptions...)
}

// updateSyncStart takes the earliest height and timestamp over all subscriptions.
func (c *Consumer) updateSyncStart() {
	if len(c.subscriptions) == 0 {
		c.syncStart = model.SynchronizationStart{}
		return
	}
	start := c.subscriptions[0].SyncStart()
	for _, s := range c.subscriptions[1:] {
		ss := s.SyncStart()
		if ss.Height < start.Height {
			start.Height = ss.Height
		}
		if ss.Timestamp < start.Timestamp {
			start.Timestamp = ss.Timestamp
		}
	}
	c.syncStart = start
}

func (c *Consumer) SyncStart() model.SynchronizationStart {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncStart
}

// InitTransactionPool registers the pool transactions already held by the
// containers, except those in uncommitted, as known to the pool.
func (c *Consumer) InitTransactionPool(uncommitted []crypto.Hash) {
	skip := make(map[crypto.Hash]struct{}, len(uncommitted))
	for _, h := range uncommitted {
		skip[h] = struct{}{}
	}

	subs := c.snapshotSubscriptions()
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range subs {
		for _, h := range s.Container().GetUnconfirmedTransactions() {
			if _, ok := skip[h]; !ok {
				c.poolTxs[h] = struct{}{}
			}
		}
	}
}

func (c *Consumer) KnownPoolTxIDs() []crypto.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]crypto.Hash, 0, len(c.poolTxs))
	for h := range c.poolTxs {
		ids = append(ids, h)
	}
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })
	return ids
}

func (c *Consumer) OnBlockchainDetach(height uint32) {
	c.observers.Notify(func(o ConsumerObserver) { o.OnBlockchainDetach(c, height) })
	for _, s := range c.snapshotSubscriptions() {
		s.OnBlockchainDetach(height)
	}
}

// OnNewBlocks applies a contiguous batch of blocks starting at startHeight.
// On failure every subscription rolls back to startHeight and the caller is
// expected to deliver the batch again.
func (c *Consumer) OnNewBlocks(ctx context.Context, blocks []model.CompleteBlock, startHeight uint32) (err error) {
	started := time.Now()
	var jobs []scanJob
	defer func() {
		c.observeNewBlocks(err, len(blocks), len(jobs), started)
	}()

	if len(blocks) == 0 {
		return nil
	}

	subs := c.snapshotSubscriptions()
	jobs = c.collectJobs(blocks, startHeight)
	results, err := c.scan(ctx, subs, jobs)
	if err != nil {
		return c.fail(subs, startHeight, fmt.Errorf("scan blocks from %d: %w", startHeight, err))
	}

	hashes := make([]crypto.Hash, 0, len(blocks))
	for _, b := range blocks {
		hashes = append(hashes, b.BlockHash)
	}
	c.observers.Notify(func(o ConsumerObserver) { o.OnBlocksAdded(c, hashes) })

	// results follow job order, which is chain order
	for i := range results {
		c.filterDuplicates(subs, &results[i])
		if err := c.processTransaction(subs, results[i]); err != nil {
			return c.fail(subs, startHeight, fmt.Errorf("apply transaction %s: %w", results[i].tx.TransactionHash(), err))
		}
	}

	last := startHeight + uint32(len(blocks)) - 1
	for _, s := range subs {
		s.AdvanceHeight(last)
	}
	return nil
}

// OnPoolUpdated applies a pool diff: added transactions are scanned as
// unconfirmed, deleted ones are dropped from every container. A failed add
// stops the remaining adds and stays unknown so the next diff offers it
// again; deletions are applied regardless.
func (c *Consumer) OnPoolUpdated(ctx context.Context, added []model.TransactionReader, deleted []crypto.Hash) (err error) {
	started := time.Now()
	defer func() {
		c.observePoolUpdate(err, len(added), len(deleted), started)
	}()

	subs := c.snapshotSubscriptions()
	for _, tx := range added {
		if err = c.processUnconfirmed(ctx, subs, tx); err != nil {
			break
		}
		c.mu.Lock()
		c.poolTxs[tx.TransactionHash()] = struct{}{}
		c.mu.Unlock()
	}
	for _, hash := range deleted {
		c.mu.Lock()
		delete(c.poolTxs, hash)
		c.mu.Unlock()

		c.deleteUnconfirmed(subs, hash)
	}
	return err
}

// AddUnconfirmedTransaction tracks a transaction this process created before
// it reaches the pool.
func (c *Consumer) AddUnconfirmedTransaction(ctx context.Context, tx model.TransactionReader) error {
	return c.processUnconfirmed(ctx, c.snapshotSubscriptions(), tx)
}

func (c *Consumer) RemoveUnconfirmedTransaction(hash crypto.Hash) {
	c.deleteUnconfirmed(c.snapshotSubscriptions(), hash)
}

func (c *Consumer) processUnconfirmed(ctx context.Context, subs []*Subscription, tx model.TransactionReader) error {
	res, err := c.preprocess(ctx, spendKeys(subs), scanJob{block: model.UnconfirmedBlockInfo(), tx: tx})
	if err == nil {
		c.filterDuplicates(subs, &res)
		err = c.processTransaction(subs, res)
	}
	if err != nil {
		return c.fail(subs, model.UnconfirmedHeight, fmt.Errorf("process pool transaction %s: %w", tx.TransactionHash(), err))
	}
	return nil
}

func (c *Consumer) deleteUnconfirmed(subs []*Subscription, hash crypto.Hash) {
	c.observers.Notify(func(o ConsumerObserver) { o.OnTransactionDeleteBegin(c, hash) })
	for _, s := range subs {
		s.DeleteUnconfirmedTransaction(hash)
	}
	c.observers.Notify(func(o ConsumerObserver) { o.OnTransactionDeleteEnd(c, hash) })
}

// processTransaction hands one scanned transaction to every subscription. A
// pool transaction already held by a container is confirmed in place.
func (c *Consumer) processTransaction(subs []*Subscription, res scanResult) error {
	hash := res.tx.TransactionHash()
	var (
		containers []*container.Container
		updated    bool
	)
	for _, s := range subs {
		info, _, _, contains := s.Container().GetTransactionInformation(hash)
		if contains {
			if info.BlockHeight == model.UnconfirmedHeight && !res.block.Unconfirmed() {
				if _, err := s.MarkTransactionConfirmed(res.block, hash, res.globalIndices); err != nil {
					return err
				}
				updated = true
			}
		} else {
			added, err := s.AddTransaction(res.block, res.tx, res.outputs[s.Address().SpendPublicKey])
			if err != nil {
				return err
			}
			updated = updated || added
			contains = added
		}
		if contains {
			containers = append(containers, s.Container())
		}
	}
	if updated {
		c.observers.Notify(func(o ConsumerObserver) { o.OnTransactionUpdated(c, hash, containers) })
	}
	return nil
}

// filterDuplicates drops owned outputs whose keys the registry refuses.
func (c *Consumer) filterDuplicates(subs []*Subscription, res *scanResult) {
	if len(res.outputs) == 0 || c.registry == nil {
		return
	}
	type ref struct {
		spendKey crypto.PublicKey
		index    int
	}
	var (
		keys []crypto.PublicKey
		refs []ref
	)
	for _, s := range subs {
		spendKey := s.Address().SpendPublicKey
		for i, t := range res.outputs[spendKey] {
			if t.Type == model.OutputTypeKey {
				keys = append(keys, t.OutputKey)
				refs = append(refs, ref{spendKey: spendKey, index: i})
			}
		}
	}
	if len(keys) == 0 {
		return
	}

	hash := res.tx.TransactionHash()
	verdict := c.registry.Check(hash, keys)
	if verdict.Rejected {
		c.logger.Error("transaction repeats an output key, ignoring its outputs", zap.Stringer("tx", hash))
		c.observeDuplicateKey(duplicateKindSameTransaction)
		res.outputs = nil
		return
	}
	if len(verdict.Duplicates) == 0 {
		return
	}

	drop := make(map[ref]struct{}, len(verdict.Duplicates))
	for _, i := range verdict.Duplicates {
		c.logger.Error("output key already used by another transaction, ignoring output",
			zap.Stringer("tx", hash),
			zap.Stringer("output_key", keys[i]),
		)
		c.observeDuplicateKey(duplicateKindCrossTransaction)
		drop[refs[i]] = struct{}{}
	}
	for spendKey, transfers := range res.outputs {
		kept := make([]model.TransactionOutputInformationIn, 0, len(transfers))
		for i, t := range transfers {
			if _, ok := drop[ref{spendKey: spendKey, index: i}]; !ok {
				kept = append(kept, t)
			}
		}
		res.outputs[spendKey] = kept
	}
}

func (c *Consumer) fail(subs []*Subscription, height uint32, err error) error {
	c.logger.Error("processing failed", zap.Uint32("height", height), zap.Error(err))
	for _, s := range subs {
		s.OnError(err, height)
	}
	return err
}

func (c *Consumer) observeNewBlocks(err error, blocks, transactions int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveNewBlocks(err, blocks, transactions, started)
}

func (c *Consumer) observePoolUpdate(err error, added, deleted int, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObservePoolUpdate(err, added, deleted, started)
}

func (c *Consumer) observeDuplicateKey(kind string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveDuplicateKey(kind)
}
