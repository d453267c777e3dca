package syncer

import (
	"context"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/dedup"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Node resolves global output indices of confirmed transactions. Calls
	// block the scanning worker; timeouts belong to the implementation.
	Node interface {
		GetTransactionOutsGlobalIndices(ctx context.Context, hash crypto.Hash) ([]uint32, error)
	}

	// DuplicateRegistry is the process-wide key reuse detector.
	DuplicateRegistry interface {
		Check(tx crypto.Hash, keys []crypto.PublicKey) dedup.Verdict
	}

	StreamSerializable interface {
		Save(w io.Writer) error
		Load(r io.Reader) error
	}

	// BlockchainConsumer is what the blockchain synchronizer drives.
	BlockchainConsumer interface {
		SyncStart() model.SynchronizationStart
		OnBlockchainDetach(height uint32)
		OnNewBlocks(ctx context.Context, blocks []model.CompleteBlock, startHeight uint32) error
		OnPoolUpdated(ctx context.Context, added []model.TransactionReader, deleted []crypto.Hash) error
		KnownPoolTxIDs() []crypto.Hash
		AddUnconfirmedTransaction(ctx context.Context, tx model.TransactionReader) error
		RemoveUnconfirmedTransaction(hash crypto.Hash)
	}

	// BlockchainSynchronizer feeds blocks and pool diffs to registered consumers
	// and keeps a sync cursor for each of them.
	BlockchainSynchronizer interface {
		AddConsumer(consumer BlockchainConsumer) error
		RemoveConsumer(consumer BlockchainConsumer) bool
		ConsumerState(consumer BlockchainConsumer) StreamSerializable
		ConsumerKnownBlocks(consumer BlockchainConsumer) []crypto.Hash
	}

	TransfersObserver interface {
		OnError(sub *Subscription, height uint32, err error)
		OnTransactionUpdated(sub *Subscription, hash crypto.Hash)
		OnTransactionDeleted(sub *Subscription, hash crypto.Hash)
	}

	ConsumerObserver interface {
		OnBlocksAdded(consumer *Consumer, blockHashes []crypto.Hash)
		OnBlockchainDetach(consumer *Consumer, height uint32)
		OnTransactionDeleteBegin(consumer *Consumer, hash crypto.Hash)
		OnTransactionDeleteEnd(consumer *Consumer, hash crypto.Hash)
		OnTransactionUpdated(consumer *Consumer, hash crypto.Hash, containers []*container.Container)
	}

	// SynchronizerObserver receives consumer events keyed by view public key.
	SynchronizerObserver interface {
		OnBlocksAdded(viewKey crypto.PublicKey, blockHashes []crypto.Hash)
		OnBlockchainDetach(viewKey crypto.PublicKey, height uint32)
		OnTransactionDeleteBegin(viewKey crypto.PublicKey, hash crypto.Hash)
		OnTransactionDeleteEnd(viewKey crypto.PublicKey, hash crypto.Hash)
		OnTransactionUpdated(viewKey crypto.PublicKey, hash crypto.Hash, containers []*container.Container)
	}

	ConsumerMetrics interface {
		ObserveNewBlocks(err error, blocks, transactions int, started time.Time)
		ObservePoolUpdate(err error, added, deleted int, started time.Time)
		ObserveDuplicateKey(kind string)
	}
)
