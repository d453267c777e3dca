package crypto

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// FastHash returns the Keccak-256 digest of data.
func FastHash(data ...[]byte) Hash {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// hashToScalar reduces the Keccak digest of data modulo the group order.
func hashToScalar(data ...[]byte) *edwards25519.Scalar {
	digest := FastHash(data...)
	return reduce32(digest[:])
}

// reduce32 interprets 32 little-endian bytes as an integer and reduces it modulo l.
func reduce32(b []byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], b)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		// SetUniformBytes only fails on a wrong input length.
		panic(err)
	}
	return s
}

// hashToPoint maps data to a point in the prime-order subgroup using
// try-and-increment over Keccak digests of data and a little-endian uint32
// counter. It is not the Monero/CryptoNote hash_to_ec map, so key images built
// on it do not match the ones of a CryptoNote daemon.
func hashToPoint(data []byte) *edwards25519.Point {
	buf := make([]byte, len(data)+4)
	copy(buf, data)
	identity := edwards25519.NewIdentityPoint()
	for counter := uint32(0); ; counter++ {
		binary.LittleEndian.PutUint32(buf[len(data):], counter)
		digest := FastHash(buf)
		p, err := edwards25519.NewIdentityPoint().SetBytes(digest[:])
		if err != nil {
			continue
		}
		p.MultByCofactor(p)
		if p.Equal(identity) == 1 {
			continue
		}
		return p
	}
}
