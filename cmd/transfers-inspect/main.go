// Package main prints the transfers state of one account from a saved
// synchronizer snapshot.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/storage/badger"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/chainstate"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/dedup"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/node"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/service/syncer"
	"github.com/goodnatureofminers/blockinsight7000-transfers/pkg/safe"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

var config struct {
	DBPath           string `long:"db-path" env:"TRANSFERS_DB_PATH" description:"badger data directory" default:"./data"`
	State            string `long:"state" env:"TRANSFERS_STATE" description:"name of the saved synchronizer state" default:"synchronizer"`
	List             bool   `long:"list" description:"list saved states and exit"`
	ViewSecretKey    string `long:"view-secret-key" env:"TRANSFERS_VIEW_SECRET_KEY" description:"hex view secret key"`
	SpendSecretKey   string `long:"spend-secret-key" env:"TRANSFERS_SPEND_SECRET_KEY" description:"hex spend secret key"`
	SpendPublicKey   string `long:"spend-public-key" env:"TRANSFERS_SPEND_PUBLIC_KEY" description:"hex spend public key of a tracking account"`
	Network          string `long:"network" env:"TRANSFERS_NETWORK" description:"network" default:"mainnet"`
	SpendableAge     int    `long:"spendable-age" env:"TRANSFERS_SPENDABLE_AGE" description:"blocks before an output is spendable" default:"10"`
	SafeSpendableAge int    `long:"safe-spendable-age" env:"TRANSFERS_SAFE_SPENDABLE_AGE" description:"blocks before a safe output is spendable" default:"1"`
	Workers          int    `long:"workers" env:"TRANSFERS_WORKERS" description:"scan workers, 0 for one per cpu"`
}

var errOffline = errors.New("node is not available in inspect mode")

// offlineNode refuses every request; inspection never scans new blocks.
type offlineNode struct{}

func (offlineNode) GetTransactionOutsGlobalIndices(context.Context, crypto.Hash) ([]uint32, error) {
	return nil, errOffline
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	store, err := badger.Open(badger.Options{Path: config.DBPath}, metrics.NewStateStore(), logger)
	if err != nil {
		logger.Fatal("Failed to open state store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close state store", zap.Error(err))
		}
	}()

	if config.List {
		names, err := store.Names()
		if err != nil {
			logger.Fatal("Failed to list states", zap.Error(err))
		}
		logger.Info("Saved states", zap.Strings("names", names))
		return
	}

	account, err := subscriptionFromConfig()
	if err != nil {
		logger.Fatal("Invalid account", zap.Error(err))
	}

	tracker := chainstate.NewTracker(logger)
	synchronizer := syncer.NewSynchronizer(
		syncer.Config{WorkerCount: config.Workers, Currency: container.DefaultCurrency()},
		tracker,
		node.NewObservedNode(offlineNode{}, node.Options{}, metrics.NewNodeClient(config.Network), logger),
		dedup.New(),
		metrics.NewTransfersConsumer(config.Network),
		logger,
	)
	sub, err := synchronizer.AddSubscription(account)
	if err != nil {
		logger.Fatal("Failed to subscribe account", zap.Error(err))
	}

	if err := store.Restore(config.State, synchronizer); err != nil {
		logger.Fatal("Failed to restore state", zap.String("state", config.State), zap.Error(err))
	}

	known, err := synchronizer.GetViewKeyKnownBlocks(account.Keys.Address.ViewPublicKey)
	if err != nil {
		logger.Fatal("Failed to read known blocks", zap.Error(err))
	}
	report(logger, sub, len(known))
}

func subscriptionFromConfig() (model.AccountSubscription, error) {
	var account model.AccountSubscription

	viewSecret, err := crypto.ParseSecretKey(config.ViewSecretKey)
	if err != nil {
		return account, err
	}
	viewPublic, err := crypto.SecretKeyToPublicKey(viewSecret)
	if err != nil {
		return account, err
	}
	account.Keys.ViewSecretKey = viewSecret
	account.Keys.Address.ViewPublicKey = viewPublic

	switch {
	case config.SpendSecretKey != "":
		spendSecret, err := crypto.ParseSecretKey(config.SpendSecretKey)
		if err != nil {
			return account, err
		}
		spendPublic, err := crypto.SecretKeyToPublicKey(spendSecret)
		if err != nil {
			return account, err
		}
		account.Keys.SpendSecretKey = spendSecret
		account.Keys.Address.SpendPublicKey = spendPublic
	case config.SpendPublicKey != "":
		spendPublic, err := crypto.ParsePublicKey(config.SpendPublicKey)
		if err != nil {
			return account, err
		}
		account.Keys.Address.SpendPublicKey = spendPublic
	default:
		return account, errors.New("spend secret key or spend public key is required")
	}

	if account.TransactionSpendableAge, err = safe.Uint32(config.SpendableAge); err != nil {
		return account, err
	}
	if account.SafeTransactionSpendableAge, err = safe.Uint32(config.SafeSpendableAge); err != nil {
		return account, err
	}
	return account, nil
}

func report(logger *zap.Logger, sub *syncer.Subscription, knownBlocks int) {
	c := sub.Container()
	logger.Info("Account",
		zap.Stringer("address", sub.Address()),
		zap.Uint32("height", c.CurrentHeight()),
		zap.Int("known_blocks", knownBlocks),
		zap.Int("transactions", c.TransactionsCount()),
		zap.Int("transfers", c.TransfersCount()),
		zap.Uint64("unlocked", c.Balance(model.IncludeAllUnlocked)),
		zap.Uint64("locked", c.Balance(model.IncludeAllLocked)),
	)
	for _, out := range c.GetOutputs(model.IncludeAllLocked | model.IncludeAllUnlocked) {
		logger.Info("Output",
			zap.Stringer("tx", out.TransactionHash),
			zap.Uint32("index", out.OutputInTransaction),
			zap.Uint32("global_index", out.GlobalOutputIndex),
			zap.Uint64("amount", out.Amount),
		)
	}
	for _, spent := range c.GetSpentOutputs() {
		logger.Info("Spent output",
			zap.Stringer("tx", spent.TransactionHash),
			zap.Stringer("spending_tx", spent.SpendingTransactionHash),
			zap.Uint64("amount", spent.Amount),
		)
	}
	for _, hash := range c.GetUnconfirmedTransactions() {
		logger.Info("Unconfirmed transaction", zap.Stringer("tx", hash))
	}
}
