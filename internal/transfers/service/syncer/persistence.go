package syncer

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/serialization"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"go.uber.org/zap"
)

var ErrVersionMismatch = errors.New("unsupported synchronizer state version")

// Save writes the blockchain cursor of every consumer and the container of
// every subscription.
func (s *Synchronizer) Save(w io.Writer) error {
	consumers := s.sortedConsumers()

	sw := serialization.NewWriter(w)
	sw.Uint32(stateVersion)
	sw.Uint64(uint64(len(consumers)))
	for _, c := range consumers {
		viewKey := c.ViewPublicKey()
		sw.Fixed(viewKey[:])

		var cursor bytes.Buffer
		if err := s.blockchain.ConsumerState(c).Save(&cursor); err != nil {
			return fmt.Errorf("save consumer state %s: %w", viewKey, err)
		}
		sw.Blob(cursor.Bytes())

		subs := c.snapshotSubscriptions()
		sw.Uint64(uint64(len(subs)))
		for _, sub := range subs {
			address := sub.Address()
			sw.Fixed(address.SpendPublicKey[:])
			sw.Fixed(address.ViewPublicKey[:])

			var state bytes.Buffer
			if err := sub.Container().Save(&state); err != nil {
				return fmt.Errorf("save container %s: %w", address, err)
			}
			sw.Blob(state.Bytes())
		}
	}
	if err := sw.Err(); err != nil {
		return fmt.Errorf("save synchronizer: %w", err)
	}
	return nil
}

// snapshot is the pre-load state of one consumer cursor or container.
type snapshot struct {
	target StreamSerializable
	state  []byte
}

// Load restores state written by Save. Consumers and subscriptions that are
// not registered are skipped. If anything fails, every cursor and container
// already loaded is put back as it was and the error is returned.
func (s *Synchronizer) Load(r io.Reader) (err error) {
	var restored []snapshot
	defer func() {
		if err == nil {
			return
		}
		for i := len(restored) - 1; i >= 0; i-- {
			if rbErr := restored[i].target.Load(bytes.NewReader(restored[i].state)); rbErr != nil {
				s.logger.Error("rollback of state failed", zap.Error(rbErr))
			}
		}
	}()

	load := func(target StreamSerializable, blob []byte) error {
		var prev bytes.Buffer
		if err := target.Save(&prev); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		restored = append(restored, snapshot{target: target, state: prev.Bytes()})
		return target.Load(bytes.NewReader(blob))
	}

	sr := serialization.NewReader(r)
	version := sr.Uint32("version")
	if err := sr.Err(); err != nil {
		return fmt.Errorf("load synchronizer: %w", err)
	}
	if version > stateVersion {
		return fmt.Errorf("load synchronizer: version %d: %w", version, ErrVersionMismatch)
	}

	count := sr.Count("consumers", maxStateConsumers)
	for i := 0; i < count; i++ {
		var viewKey crypto.PublicKey
		sr.Fixed("view key", viewKey[:])
		cursor := sr.Blob("consumer state")
		if err := sr.Err(); err != nil {
			return fmt.Errorf("load synchronizer: %w", err)
		}

		s.mu.Lock()
		consumer, ok := s.consumers[viewKey]
		s.mu.Unlock()
		if ok {
			if err := load(s.blockchain.ConsumerState(consumer), cursor); err != nil {
				return fmt.Errorf("load consumer state %s: %w", viewKey, err)
			}
		} else {
			s.logger.Debug("skipping state of unknown consumer", zap.Stringer("view_key", viewKey))
		}

		subs := sr.Count("subscriptions", maxStateSubscriptions)
		for j := 0; j < subs; j++ {
			var address model.AccountPublicAddress
			sr.Fixed("spend public key", address.SpendPublicKey[:])
			sr.Fixed("view public key", address.ViewPublicKey[:])
			state := sr.Blob("container state")
			if err := sr.Err(); err != nil {
				return fmt.Errorf("load synchronizer: %w", err)
			}
			if !ok {
				continue
			}
			sub, found := consumer.GetSubscription(address)
			if !found {
				s.logger.Debug("skipping state of unknown subscription", zap.Stringer("address", address))
				continue
			}
			if err := load(sub.Container(), state); err != nil {
				return fmt.Errorf("load container %s: %w", address, err)
			}
		}
	}
	if err := sr.Err(); err != nil {
		return fmt.Errorf("load synchronizer: %w", err)
	}
	return nil
}
