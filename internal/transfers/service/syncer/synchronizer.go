package syncer

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/observer"
	"go.uber.org/zap"
)

var ErrUnknownViewKey = errors.New("no consumer for view key")

var _ ConsumerObserver = (*Synchronizer)(nil)

// Synchronizer owns one consumer per view key and rebroadcasts consumer
// events to observers registered for that view key.
type Synchronizer struct {
	logger     *zap.Logger
	cfg        Config
	blockchain BlockchainSynchronizer
	node       Node
	registry   DuplicateRegistry
	metrics    ConsumerMetrics

	mu        sync.Mutex
	consumers map[crypto.PublicKey]*Consumer
	observers map[crypto.PublicKey]*observer.Manager[SynchronizerObserver]
}

func NewSynchronizer(
	cfg Config,
	blockchain BlockchainSynchronizer,
	node Node,
	registry DuplicateRegistry,
	metrics ConsumerMetrics,
	logger *zap.Logger,
) *Synchronizer {
	return &Synchronizer{
		logger:     logger.Named("synchronizer"),
		cfg:        cfg,
		blockchain: blockchain,
		node:       node,
		registry:   registry,
		metrics:    metrics,
		consumers:  make(map[crypto.PublicKey]*Consumer),
		observers:  make(map[crypto.PublicKey]*observer.Manager[SynchronizerObserver]),
	}
}

// AddSubscription subscribes an account, creating and registering the
// consumer of its view key if needed.
func (s *Synchronizer) AddSubscription(sub model.AccountSubscription) (*Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	viewKey := sub.Keys.Address.ViewPublicKey
	consumer, ok := s.consumers[viewKey]
	if !ok {
		created, err := NewConsumer(s.cfg, sub.Keys.ViewSecretKey, s.node, s.registry, s.metrics, s.logger)
		if err != nil {
			return nil, err
		}
		if created.ViewPublicKey() != viewKey {
			return nil, fmt.Errorf("add subscription %s: %w", sub.Keys.Address, ErrViewKeyMismatch)
		}
		created.AddObserver(s)
		if err := s.blockchain.AddConsumer(created); err != nil {
			created.RemoveObserver(s)
			return nil, fmt.Errorf("register consumer %s: %w", viewKey, err)
		}
		s.consumers[viewKey] = created
		consumer = created
	}

	subscription, err := consumer.AddSubscription(sub)
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

// RemoveSubscription unsubscribes an account. The last subscription of a view
// key takes its consumer down with it.
func (s *Synchronizer) RemoveSubscription(address model.AccountPublicAddress) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	consumer, ok := s.consumers[address.ViewPublicKey]
	if !ok {
		return false
	}
	removed := consumer.RemoveSubscription(address)
	if consumer.SubscriptionsCount() == 0 {
		s.blockchain.RemoveConsumer(consumer)
		consumer.RemoveObserver(s)
		delete(s.consumers, address.ViewPublicKey)
	}
	return removed
}

// GetSubscriptions lists every subscribed address ordered by view key, then spend key.
func (s *Synchronizer) GetSubscriptions() []model.AccountPublicAddress {
	var addresses []model.AccountPublicAddress
	for _, c := range s.sortedConsumers() {
		addresses = append(addresses, c.GetSubscriptions()...)
	}
	return addresses
}

func (s *Synchronizer) GetSubscription(address model.AccountPublicAddress) (*Subscription, bool) {
	s.mu.Lock()
	consumer, ok := s.consumers[address.ViewPublicKey]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}
	return consumer.GetSubscription(address)
}

func (s *Synchronizer) InitTransactionPool(uncommitted []crypto.Hash) {
	for _, c := range s.sortedConsumers() {
		c.InitTransactionPool(uncommitted)
	}
}

func (s *Synchronizer) SubscribeConsumerNotifications(viewKey crypto.PublicKey, o SynchronizerObserver) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.observers[viewKey]
	if !ok {
		m = &observer.Manager[SynchronizerObserver]{}
		s.observers[viewKey] = m
	}
	return m.Add(o)
}

func (s *Synchronizer) UnsubscribeConsumerNotifications(viewKey crypto.PublicKey, o SynchronizerObserver) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.observers[viewKey]
	if !ok {
		return false
	}
	removed := m.Remove(o)
	if m.Len() == 0 {
		delete(s.observers, viewKey)
	}
	return removed
}

// GetViewKeyKnownBlocks returns the block hashes the blockchain synchronizer
// holds for the consumer of viewKey.
func (s *Synchronizer) GetViewKeyKnownBlocks(viewKey crypto.PublicKey) ([]crypto.Hash, error) {
	s.mu.Lock()
	consumer, ok := s.consumers[viewKey]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("known blocks of %s: %w", viewKey, ErrUnknownViewKey)
	}
	return s.blockchain.ConsumerKnownBlocks(consumer), nil
}

func (s *Synchronizer) OnBlocksAdded(consumer *Consumer, blockHashes []crypto.Hash) {
	s.notify(consumer, func(o SynchronizerObserver, viewKey crypto.PublicKey) {
		o.OnBlocksAdded(viewKey, blockHashes)
	})
}

func (s *Synchronizer) OnBlockchainDetach(consumer *Consumer, height uint32) {
	s.notify(consumer, func(o SynchronizerObserver, viewKey crypto.PublicKey) {
		o.OnBlockchainDetach(viewKey, height)
	})
}

func (s *Synchronizer) OnTransactionDeleteBegin(consumer *Consumer, hash crypto.Hash) {
	s.notify(consumer, func(o SynchronizerObserver, viewKey crypto.PublicKey) {
		o.OnTransactionDeleteBegin(viewKey, hash)
	})
}

func (s *Synchronizer) OnTransactionDeleteEnd(consumer *Consumer, hash crypto.Hash) {
	s.notify(consumer, func(o SynchronizerObserver, viewKey crypto.PublicKey) {
		o.OnTransactionDeleteEnd(viewKey, hash)
	})
}

func (s *Synchronizer) OnTransactionUpdated(consumer *Consumer, hash crypto.Hash, containers []*container.Container) {
	s.notify(consumer, func(o SynchronizerObserver, viewKey crypto.PublicKey) {
		o.OnTransactionUpdated(viewKey, hash, containers)
	})
}

func (s *Synchronizer) notify(consumer *Consumer, fn func(SynchronizerObserver, crypto.PublicKey)) {
	viewKey := consumer.ViewPublicKey()
	s.mu.Lock()
	m, ok := s.observers[viewKey]
	s.mu.Unlock()
	if !ok {
		return
	}
	m.Notify(func(o SynchronizerObserver) { fn(o, viewKey) })
}

func (s *Synchronizer) sortedConsumers() []*Consumer {
	s.mu.Lock()
	defer s.mu.Unlock()

	consumers := make([]*Consumer, 0, len(s.consumers))
	for _, c := range s.consumers {
		consumers = append(consumers, c)
	}
	sort.Slice(consumers, func(i, j int) bool {
		a, b := consumers[i].ViewPublicKey(), consumers[j].ViewPublicKey()
		return bytes.Compare(a[:], b[:]) < 0
	})
	return consumers
}
