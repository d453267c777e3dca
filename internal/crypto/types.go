// Package crypto implements the CryptoNote key primitives consumed by transfers scanning:
// key derivation, one-time output keys and key images over edwards25519.
package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the byte length of every hash, key and key image.
const Size = 32

var (
	// ErrInvalidPoint is returned when bytes do not decode to a curve point.
	ErrInvalidPoint = errors.New("invalid curve point")
	// ErrInvalidScalar is returned when bytes are not a canonical scalar.
	ErrInvalidScalar = errors.New("invalid scalar")
)

type (
	// Hash is a Keccak-256 digest.
	Hash [Size]byte
	// PublicKey is a compressed edwards25519 point.
	PublicKey [Size]byte
	// SecretKey is a canonical scalar modulo the group order.
	SecretKey [Size]byte
	// KeyImage identifies a spent key output without revealing it.
	KeyImage [Size]byte
	// KeyDerivation is the shared secret between a transaction key and a view key.
	KeyDerivation [Size]byte
)

// NullHash and NullPublicKey are the all-zero values.
var (
	NullHash      Hash
	NullPublicKey PublicKey
)

func (h Hash) String() string          { return hex.EncodeToString(h[:]) }
func (k PublicKey) String() string     { return hex.EncodeToString(k[:]) }
func (k KeyImage) String() string      { return hex.EncodeToString(k[:]) }
func (d KeyDerivation) String() string { return hex.EncodeToString(d[:]) }

// ParseHash decodes a hex encoded hash.
func ParseHash(s string) (Hash, error) {
	var h Hash
	err := decodeHex(s, h[:])
	return h, err
}

// ParsePublicKey decodes a hex encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	err := decodeHex(s, k[:])
	return k, err
}

// ParseSecretKey decodes a hex encoded secret key and checks that it is canonical.
func ParseSecretKey(s string) (SecretKey, error) {
	var k SecretKey
	if err := decodeHex(s, k[:]); err != nil {
		return k, err
	}
	if _, err := toScalar(k); err != nil {
		return SecretKey{}, err
	}
	return k, nil
}

func decodeHex(s string, dst []byte) error {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("expected %d bytes, got %d", len(dst), len(raw))
	}
	copy(dst, raw)
	return nil
}
