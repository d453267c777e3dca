package syncer

import (
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/observer"
	"go.uber.org/zap"
)

// Subscription binds one account to its container and notifies observers
// about every change the container reports.
type Subscription struct {
	logger       *zap.Logger
	subscription model.AccountSubscription
	container    *container.Container
	observers    observer.Manager[TransfersObserver]
}

func NewSubscription(sub model.AccountSubscription, currency container.Currency, logger *zap.Logger) *Subscription {
	return &Subscription{
		logger:       logger.With(zap.Stringer("address", sub.Keys.Address)),
		subscription: sub,
		container:    container.New(currency, sub.TransactionSpendableAge, sub.SafeTransactionSpendableAge),
	}
}

func (s *Subscription) SyncStart() model.SynchronizationStart {
	return s.subscription.SyncStart
}

func (s *Subscription) Address() model.AccountPublicAddress {
	return s.subscription.Keys.Address
}

func (s *Subscription) Keys() model.AccountKeys {
	return s.subscription.Keys
}

func (s *Subscription) Container() *container.Container {
	return s.container
}

func (s *Subscription) AddObserver(o TransfersObserver) bool {
	return s.observers.Add(o)
}

func (s *Subscription) RemoveObserver(o TransfersObserver) bool {
	return s.observers.Remove(o)
}

// OnBlockchainDetach drops everything at or above height and reports each
// removed transaction.
func (s *Subscription) OnBlockchainDetach(height uint32) {
	for _, hash := range s.container.Detach(height) {
		s.observers.Notify(func(o TransfersObserver) { o.OnTransactionDeleted(s, hash) })
	}
}

// OnError rolls back a failed batch starting at height and reports err.
func (s *Subscription) OnError(err error, height uint32) {
	if height != model.UnconfirmedHeight {
		s.logger.Warn("rolling back failed batch", zap.Uint32("height", height), zap.Error(err))
		s.container.Detach(height)
	}
	s.observers.Notify(func(o TransfersObserver) { o.OnError(s, height, err) })
}

func (s *Subscription) AdvanceHeight(height uint32) bool {
	return s.container.AdvanceHeight(height)
}

func (s *Subscription) AddTransaction(block model.TransactionBlockInfo, tx model.TransactionReader, transfers []model.TransactionOutputInformationIn) (bool, error) {
	added, err := s.container.AddTransaction(block, tx, transfers)
	if err != nil {
		return false, err
	}
	if added {
		hash := tx.TransactionHash()
		s.observers.Notify(func(o TransfersObserver) { o.OnTransactionUpdated(s, hash) })
	}
	return added, nil
}

func (s *Subscription) DeleteUnconfirmedTransaction(hash crypto.Hash) {
	if s.container.DeleteUnconfirmedTransaction(hash) {
		s.observers.Notify(func(o TransfersObserver) { o.OnTransactionDeleted(s, hash) })
	}
}

func (s *Subscription) MarkTransactionConfirmed(block model.TransactionBlockInfo, hash crypto.Hash, globalIndices []uint32) (bool, error) {
	confirmed, err := s.container.MarkTransactionConfirmed(block, hash, globalIndices)
	if err != nil {
		return false, err
	}
	if confirmed {
		s.observers.Notify(func(o TransfersObserver) { o.OnTransactionUpdated(s, hash) })
	}
	return confirmed, nil
}
