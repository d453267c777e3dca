package model

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/serialization"
)

// OutputType tags the two kinds of outputs a wallet can own.
type OutputType uint8

const (
	OutputTypeInvalid OutputType = iota
	OutputTypeKey
	OutputTypeMultisignature
)

func (t OutputType) String() string {
	switch t {
	case OutputTypeKey:
		return "key"
	case OutputTypeMultisignature:
		return "multisignature"
	default:
		return "invalid"
	}
}

// Input is one of BaseInput, KeyInput or MultisignatureInput.
type Input interface {
	inputTag() byte
}

// BaseInput is the coinbase input of a miner transaction.
type BaseInput struct {
	BlockIndex uint32
}

// KeyInput spends one key output out of a ring; the key image identifies it.
type KeyInput struct {
	Amount        uint64
	OutputIndexes []uint32
	KeyImage      crypto.KeyImage
}

// MultisignatureInput spends the multisignature output (Amount, OutputIndex).
type MultisignatureInput struct {
	Amount         uint64
	SignatureCount uint8
	OutputIndex    uint32
}

const (
	tagBase           byte = 0xff
	tagKey            byte = 0x02
	tagMultisignature byte = 0x03
)

func (BaseInput) inputTag() byte           { return tagBase }
func (KeyInput) inputTag() byte            { return tagKey }
func (MultisignatureInput) inputTag() byte { return tagMultisignature }

// OutputTarget is one of KeyOutput or MultisignatureOutput.
type OutputTarget interface {
	outputTag() byte
}

type KeyOutput struct {
	Key crypto.PublicKey
}

type MultisignatureOutput struct {
	Keys                   []crypto.PublicKey
	RequiredSignatureCount uint8
}

func (KeyOutput) outputTag() byte            { return tagKey }
func (MultisignatureOutput) outputTag() byte { return tagMultisignature }

// Output is an amount locked to a target.
type Output struct {
	Amount uint64
	Target OutputTarget
}

// Type returns the output kind.
func (o Output) Type() OutputType {
	switch o.Target.(type) {
	case KeyOutput:
		return OutputTypeKey
	case MultisignatureOutput:
		return OutputTypeMultisignature
	default:
		return OutputTypeInvalid
	}
}

// TransactionPrefix is the signed part of a transaction.
type TransactionPrefix struct {
	Version    uint8
	UnlockTime uint64
	Inputs     []Input
	Outputs    []Output
	Extra      []byte
}

// TransactionReader is the read-only view of a transaction consumed by the transfers core.
type TransactionReader interface {
	TransactionHash() crypto.Hash
	TransactionPublicKey() crypto.PublicKey
	UnlockTime() uint64
	Extra() []byte
	PaymentID() (crypto.Hash, bool)
	Inputs() []Input
	Outputs() []Output
	InputTotalAmount() uint64
	OutputTotalAmount() uint64
	Bytes() []byte
}

// ErrMissingTarget is returned for nil inputs or output targets.
var ErrMissingTarget = errors.New("missing input or output target")

// Transaction is an immutable TransactionReader built from a prefix. It is safe
// for concurrent use.
type Transaction struct {
	prefix    TransactionPrefix
	blob      []byte
	hash      crypto.Hash
	extra     ParsedExtra
	amountIn  uint64
	amountOut uint64
}

var _ TransactionReader = (*Transaction)(nil)

// NewTransaction serializes the prefix, hashes it and parses its extra field.
func NewTransaction(prefix TransactionPrefix) (*Transaction, error) {
	for i, in := range prefix.Inputs {
		if in == nil {
			return nil, fmt.Errorf("input %d: %w", i, ErrMissingTarget)
		}
	}
	for i, out := range prefix.Outputs {
		if out.Target == nil {
			return nil, fmt.Errorf("output %d: %w", i, ErrMissingTarget)
		}
	}
	var buf bytes.Buffer
	w := serialization.NewWriter(&buf)
	writePrefix(w, prefix)
	if err := w.Err(); err != nil {
		return nil, err
	}
	return newTransaction(prefix, buf.Bytes()), nil
}

// ParseTransaction decodes a transaction from its binary form.
func ParseTransaction(blob []byte) (*Transaction, error) {
	r := serialization.NewReader(bytes.NewReader(blob))
	prefix := readPrefix(r)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return newTransaction(prefix, append([]byte(nil), blob...)), nil
}

func newTransaction(prefix TransactionPrefix, blob []byte) *Transaction {
	tx := &Transaction{
		prefix: prefix,
		blob:   blob,
		hash:   crypto.FastHash(blob),
		extra:  ParseExtra(prefix.Extra),
	}
	for _, in := range prefix.Inputs {
		switch v := in.(type) {
		case KeyInput:
			tx.amountIn += v.Amount
		case MultisignatureInput:
			tx.amountIn += v.Amount
		}
	}
	for _, out := range prefix.Outputs {
		tx.amountOut += out.Amount
	}
	return tx
}

func (t *Transaction) TransactionHash() crypto.Hash            { return t.hash }
func (t *Transaction) TransactionPublicKey() crypto.PublicKey { return t.extra.PublicKey }
func (t *Transaction) UnlockTime() uint64                     { return t.prefix.UnlockTime }
func (t *Transaction) Extra() []byte                          { return t.prefix.Extra }
func (t *Transaction) Inputs() []Input                        { return t.prefix.Inputs }
func (t *Transaction) Outputs() []Output                      { return t.prefix.Outputs }
func (t *Transaction) InputTotalAmount() uint64               { return t.amountIn }
func (t *Transaction) OutputTotalAmount() uint64              { return t.amountOut }
func (t *Transaction) Bytes() []byte                          { return t.blob }

// PaymentID returns the payment id carried in the extra nonce, if any.
func (t *Transaction) PaymentID() (crypto.Hash, bool) {
	return t.extra.PaymentID, t.extra.HasPaymentID
}
