// Package model defines the value types of the transfers core: accounts, blocks,
// transactions, owned-output records and spend descriptors.
package model

import (
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

// AccountPublicAddress is the public half of a wallet address.
type AccountPublicAddress struct {
	SpendPublicKey crypto.PublicKey
	ViewPublicKey  crypto.PublicKey
}

func (a AccountPublicAddress) String() string {
	return a.SpendPublicKey.String() + a.ViewPublicKey.String()
}

// AccountKeys is a full key set. A zero SpendSecretKey makes a tracking
// (view-only) account that cannot compute key images.
type AccountKeys struct {
	Address        AccountPublicAddress
	SpendSecretKey crypto.SecretKey
	ViewSecretKey  crypto.SecretKey
}

// SynchronizationStart is the earliest point of the chain an account needs scanned.
type SynchronizationStart struct {
	Timestamp uint64
	Height    uint32
}

// AccountSubscription describes one account tracked by the transfers core.
type AccountSubscription struct {
	Keys                        AccountKeys
	SyncStart                   SynchronizationStart
	TransactionSpendableAge     uint32
	SafeTransactionSpendableAge uint32
}

// Block carries the header fields the transfers core needs.
type Block struct {
	Hash      crypto.Hash
	Timestamp uint64
}

// CompleteBlock is one entry of a block batch. Block is nil for blocks the
// synchronizer could not deliver; their transactions are ignored.
type CompleteBlock struct {
	BlockHash    crypto.Hash
	Block        *Block
	Transactions []TransactionReader
}
