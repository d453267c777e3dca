// Package dedup detects output key reuse across every transaction scanned by
// the process. One Registry is shared by all consumers.
package dedup

import (
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

// Verdict is the outcome of Check for one transaction.
type Verdict struct {
	// Rejected is set when the transaction repeats one of its own output keys.
	// None of its outputs may be tracked.
	Rejected bool
	// Duplicates lists positions in the checked key slice whose key already
	// belongs to another transaction. Those outputs must not be tracked.
	Duplicates []int
}

// Registry remembers which transaction first carried each owned output key.
type Registry struct {
	mu   sync.Mutex
	txs  map[crypto.Hash]struct{}
	keys map[crypto.PublicKey]crypto.Hash
}

func New() *Registry {
	return &Registry{
		txs:  make(map[crypto.Hash]struct{}),
		keys: make(map[crypto.PublicKey]crypto.Hash),
	}
}

// WasSeen reports whether tx was recorded.
func (r *Registry) WasSeen(tx crypto.Hash) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.txs[tx]
	return ok
}

// KeySeen returns the transaction that first carried key.
func (r *Registry) KeySeen(key crypto.PublicKey) (crypto.Hash, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.keys[key]
	return owner, ok
}

// RecordSeen records tx and assigns it every key that has no owner yet.
func (r *Registry) RecordSeen(tx crypto.Hash, keys []crypto.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(tx, keys)
}

func (r *Registry) record(tx crypto.Hash, keys []crypto.PublicKey) {
	r.txs[tx] = struct{}{}
	for _, k := range keys {
		if _, ok := r.keys[k]; !ok {
			r.keys[k] = tx
		}
	}
}

// Check applies the reuse policy to the owned output keys of tx and records
// the keys it accepts. A key repeated inside tx rejects the whole
// transaction; a key owned by another transaction drops only that output.
// Checking the same transaction again yields the same verdict.
func (r *Registry) Check(tx crypto.Hash, keys []crypto.PublicKey) Verdict {
	inTx := make(map[crypto.PublicKey]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := inTx[k]; ok {
			return Verdict{Rejected: true}
		}
		inTx[k] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		verdict  Verdict
		accepted = make([]crypto.PublicKey, 0, len(keys))
	)
	for i, k := range keys {
		if owner, ok := r.keys[k]; ok && owner != tx {
			verdict.Duplicates = append(verdict.Duplicates, i)
			continue
		}
		accepted = append(accepted, k)
	}
	r.record(tx, accepted)
	return verdict
}
