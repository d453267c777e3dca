package model

import (
	"math"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

const (
	// UnconfirmedHeight is the block height of pool transactions.
	UnconfirmedHeight uint32 = math.MaxUint32
	// UnconfirmedGlobalOutputIndex marks outputs that have no global index yet.
	UnconfirmedGlobalOutputIndex uint32 = math.MaxUint32
)

// TransactionOutputInformation describes one owned output.
type TransactionOutputInformation struct {
	Type                 OutputType
	Amount               uint64
	GlobalOutputIndex    uint32
	OutputInTransaction  uint32
	TransactionHash      crypto.Hash
	TransactionPublicKey crypto.PublicKey

	// OutputKey is set for key outputs, RequiredSignatures for multisignature outputs.
	OutputKey          crypto.PublicKey
	RequiredSignatures uint32
}

// TransactionOutputInformationIn is what the consumer hands to a container for
// a freshly scanned output. KeyImage is only meaningful for key outputs.
type TransactionOutputInformationIn struct {
	TransactionOutputInformation
	KeyImage crypto.KeyImage
}

// TransactionOutputInformationEx is the container's row for an owned output.
type TransactionOutputInformationEx struct {
	TransactionOutputInformationIn
	UnlockTime       uint64
	BlockHeight      uint32
	TransactionIndex uint32
	Visible          bool
}

// Descriptor returns the identity used to join available and spent rows.
func (o TransactionOutputInformationEx) Descriptor() SpentOutputDescriptor {
	return DescriptorOf(o.TransactionOutputInformationIn)
}

// TransactionBlockInfo locates a transaction in the chain.
type TransactionBlockInfo struct {
	Height           uint32
	Timestamp        uint64
	TransactionIndex uint32
}

// Unconfirmed reports whether the info describes a pool transaction.
func (b TransactionBlockInfo) Unconfirmed() bool {
	return b.Height == UnconfirmedHeight
}

// UnconfirmedBlockInfo is the block info used for pool transactions.
func UnconfirmedBlockInfo() TransactionBlockInfo {
	return TransactionBlockInfo{Height: UnconfirmedHeight}
}

// SpentTransactionOutput is an owned output together with the input that spent it.
type SpentTransactionOutput struct {
	TransactionOutputInformationEx
	SpendingBlock           TransactionBlockInfo
	SpendingTransactionHash crypto.Hash
	InputInTransaction      uint32
}

// TransactionInformation is the header row of a transaction touching a subscription.
type TransactionInformation struct {
	TransactionHash  crypto.Hash
	PublicKey        crypto.PublicKey
	BlockHeight      uint32
	Timestamp        uint64
	TransactionIndex uint32
	UnlockTime       uint64
	TotalAmountIn    uint64
	TotalAmountOut   uint64
	Extra            []byte
	PaymentID        crypto.Hash
	HasPaymentID     bool
}
