package crypto

import (
	"encoding/binary"

	"filippo.io/edwards25519"
)

// GenerateKeyDerivation computes 8·sec·pub, the shared secret between a
// transaction public key and a view secret key (or vice versa).
func GenerateKeyDerivation(pub PublicKey, sec SecretKey) (KeyDerivation, error) {
	p, err := toPoint(pub)
	if err != nil {
		return KeyDerivation{}, err
	}
	s, err := toScalar(sec)
	if err != nil {
		return KeyDerivation{}, err
	}
	point := edwards25519.NewIdentityPoint().ScalarMult(s, p)
	point.MultByCofactor(point)

	var d KeyDerivation
	copy(d[:], point.Bytes())
	return d, nil
}

// DerivationToScalar returns Hs(derivation || varint(outputIndex)).
func DerivationToScalar(derivation KeyDerivation, outputIndex uint64) *edwards25519.Scalar {
	var idx [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(idx[:], outputIndex)
	return hashToScalar(derivation[:], idx[:n])
}

// DerivePublicKey returns the one-time output key Hs·G + base.
func DerivePublicKey(derivation KeyDerivation, outputIndex uint64, base PublicKey) (PublicKey, error) {
	b, err := toPoint(base)
	if err != nil {
		return PublicKey{}, err
	}
	hs := DerivationToScalar(derivation, outputIndex)
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(hs)
	p.Add(p, b)

	var out PublicKey
	copy(out[:], p.Bytes())
	return out, nil
}

// UnderivePublicKey inverts DerivePublicKey: given an output key it returns the
// spend public key the output was addressed to, Hs·G subtracted.
func UnderivePublicKey(derivation KeyDerivation, outputIndex uint64, outputKey PublicKey) (PublicKey, error) {
	o, err := toPoint(outputKey)
	if err != nil {
		return PublicKey{}, err
	}
	hs := DerivationToScalar(derivation, outputIndex)
	p := edwards25519.NewIdentityPoint().ScalarBaseMult(hs)
	p.Subtract(o, p)

	var out PublicKey
	copy(out[:], p.Bytes())
	return out, nil
}

// DeriveSecretKey returns the one-time secret Hs + base.
func DeriveSecretKey(derivation KeyDerivation, outputIndex uint64, base SecretKey) (SecretKey, error) {
	b, err := toScalar(base)
	if err != nil {
		return SecretKey{}, err
	}
	s := edwards25519.NewScalar().Add(DerivationToScalar(derivation, outputIndex), b)

	var out SecretKey
	copy(out[:], s.Bytes())
	return out, nil
}

// GenerateKeyImage returns sec·Hp(pub).
func GenerateKeyImage(pub PublicKey, sec SecretKey) (KeyImage, error) {
	s, err := toScalar(sec)
	if err != nil {
		return KeyImage{}, err
	}
	if _, err := toPoint(pub); err != nil {
		return KeyImage{}, err
	}
	p := edwards25519.NewIdentityPoint().ScalarMult(s, hashToPoint(pub[:]))

	var img KeyImage
	copy(img[:], p.Bytes())
	return img, nil
}

// EphemeralKeys derives the one-time key pair of output outputIndex of a
// transaction with public key txPublicKey, together with its key image.
func EphemeralKeys(txPublicKey PublicKey, outputIndex uint64, viewSecret SecretKey, spendPublic PublicKey, spendSecret SecretKey) (KeyPair, KeyImage, error) {
	derivation, err := GenerateKeyDerivation(txPublicKey, viewSecret)
	if err != nil {
		return KeyPair{}, KeyImage{}, err
	}
	pub, err := DerivePublicKey(derivation, outputIndex, spendPublic)
	if err != nil {
		return KeyPair{}, KeyImage{}, err
	}
	sec, err := DeriveSecretKey(derivation, outputIndex, spendSecret)
	if err != nil {
		return KeyPair{}, KeyImage{}, err
	}
	img, err := GenerateKeyImage(pub, sec)
	if err != nil {
		return KeyPair{}, KeyImage{}, err
	}
	return KeyPair{PublicKey: pub, SecretKey: sec}, img, nil
}
