package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// KeyPair is a secret scalar and its public point.
type KeyPair struct {
	PublicKey PublicKey
	SecretKey SecretKey
}

// GenerateKeys draws a fresh key pair from crypto/rand.
func GenerateKeys() (KeyPair, error) {
	return GenerateKeysFrom(rand.Reader)
}

// GenerateKeysFrom draws a key pair from r. Deterministic readers are useful in tests.
func GenerateKeysFrom(r io.Reader) (KeyPair, error) {
	var seed [64]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return KeyPair{}, fmt.Errorf("read key seed: %w", err)
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(seed[:])
	if err != nil {
		return KeyPair{}, err
	}
	var kp KeyPair
	copy(kp.SecretKey[:], s.Bytes())
	copy(kp.PublicKey[:], edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes())
	return kp, nil
}

// SecretKeyToPublicKey returns sec·G.
func SecretKeyToPublicKey(sec SecretKey) (PublicKey, error) {
	s, err := toScalar(sec)
	if err != nil {
		return PublicKey{}, err
	}
	var pub PublicKey
	copy(pub[:], edwards25519.NewIdentityPoint().ScalarBaseMult(s).Bytes())
	return pub, nil
}

// CheckKey reports whether pub decodes to a curve point.
func CheckKey(pub PublicKey) bool {
	_, err := toPoint(pub)
	return err == nil
}

func toScalar(sec SecretKey) (*edwards25519.Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sec[:])
	if err != nil {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

func toPoint(pub PublicKey) (*edwards25519.Point, error) {
	p, err := edwards25519.NewIdentityPoint().SetBytes(pub[:])
	if err != nil {
		return nil, ErrInvalidPoint
	}
	return p, nil
}
