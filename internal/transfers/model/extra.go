package model

import (
	"encoding/binary"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

const (
	extraTagPadding     byte = 0x00
	extraTagPublicKey   byte = 0x01
	extraTagNonce       byte = 0x02
	extraTagMergeMining byte = 0x03

	extraNoncePaymentID byte = 0x00
)

// ParsedExtra holds the fields recognised in a transaction extra.
type ParsedExtra struct {
	PublicKey    crypto.PublicKey
	PaymentID    crypto.Hash
	HasPaymentID bool
}

// ParseExtra extracts the transaction public key and payment id. Parsing stops
// at the first malformed field; whatever was read before it is kept.
func ParseExtra(extra []byte) ParsedExtra {
	var out ParsedExtra
	seenKey := false
	for pos := 0; pos < len(extra); {
		tag := extra[pos]
		pos++
		switch tag {
		case extraTagPadding:
			return out
		case extraTagPublicKey:
			if pos+crypto.Size > len(extra) {
				return out
			}
			// only the first key counts
			if !seenKey {
				copy(out.PublicKey[:], extra[pos:pos+crypto.Size])
				seenKey = true
			}
			pos += crypto.Size
		case extraTagNonce:
			if pos >= len(extra) {
				return out
			}
			size := int(extra[pos])
			pos++
			if pos+size > len(extra) {
				return out
			}
			nonce := extra[pos : pos+size]
			if size == crypto.Size+1 && nonce[0] == extraNoncePaymentID {
				copy(out.PaymentID[:], nonce[1:])
				out.HasPaymentID = true
			}
			pos += size
		case extraTagMergeMining:
			size, n := binary.Uvarint(extra[pos:])
			if n <= 0 || uint64(len(extra)-pos-n) < size {
				return out
			}
			pos += n + int(size)
		default:
			return out
		}
	}
	return out
}

// AppendExtraPublicKey appends a transaction public key field.
func AppendExtraPublicKey(extra []byte, key crypto.PublicKey) []byte {
	extra = append(extra, extraTagPublicKey)
	return append(extra, key[:]...)
}

// AppendExtraPaymentID appends an extra nonce carrying a payment id.
func AppendExtraPaymentID(extra []byte, id crypto.Hash) []byte {
	extra = append(extra, extraTagNonce, byte(crypto.Size+1), extraNoncePaymentID)
	return append(extra, id[:]...)
}
