package container

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
)

// idIndex maps a secondary key to row ids in insertion order.
type idIndex[K comparable] map[K][]uint64

func (ix idIndex[K]) add(k K, id uint64) {
	ix[k] = append(ix[k], id)
}

func (ix idIndex[K]) remove(k K, id uint64) {
	ids := ix[k]
	for i, v := range ids {
		if v == id {
			ids = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(ix, k)
		return
	}
	ix[k] = ids
}

// get returns a copy so callers may mutate the table while iterating.
func (ix idIndex[K]) get(k K) []uint64 {
	return append([]uint64(nil), ix[k]...)
}

func sortedIDs[R any](rows map[uint64]*R) []uint64 {
	ids := make([]uint64, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// transferTable holds unconfirmed or available outputs, indexed by spend
// descriptor and by containing transaction.
type transferTable struct {
	rows          map[uint64]*model.TransactionOutputInformationEx
	byDescriptor  idIndex[model.SpentOutputDescriptor]
	byTransaction idIndex[crypto.Hash]
}

func newTransferTable() transferTable {
	return transferTable{
		rows:          make(map[uint64]*model.TransactionOutputInformationEx),
		byDescriptor:  make(idIndex[model.SpentOutputDescriptor]),
		byTransaction: make(idIndex[crypto.Hash]),
	}
}

func (t *transferTable) insert(id uint64, row *model.TransactionOutputInformationEx) {
	t.rows[id] = row
	t.byDescriptor.add(row.Descriptor(), id)
	t.byTransaction.add(row.TransactionHash, id)
}

func (t *transferTable) remove(id uint64) *model.TransactionOutputInformationEx {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	delete(t.rows, id)
	t.byDescriptor.remove(row.Descriptor(), id)
	t.byTransaction.remove(row.TransactionHash, id)
	return row
}

// spentTable additionally indexes rows by spending transaction.
type spentTable struct {
	rows                  map[uint64]*model.SpentTransactionOutput
	byDescriptor          idIndex[model.SpentOutputDescriptor]
	byTransaction         idIndex[crypto.Hash]
	bySpendingTransaction idIndex[crypto.Hash]
}

func newSpentTable() spentTable {
	return spentTable{
		rows:                  make(map[uint64]*model.SpentTransactionOutput),
		byDescriptor:          make(idIndex[model.SpentOutputDescriptor]),
		byTransaction:         make(idIndex[crypto.Hash]),
		bySpendingTransaction: make(idIndex[crypto.Hash]),
	}
}

func (t *spentTable) insert(id uint64, row *model.SpentTransactionOutput) {
	t.rows[id] = row
	t.byDescriptor.add(row.Descriptor(), id)
	t.byTransaction.add(row.TransactionHash, id)
	t.bySpendingTransaction.add(row.SpendingTransactionHash, id)
}

func (t *spentTable) remove(id uint64) *model.SpentTransactionOutput {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	delete(t.rows, id)
	t.byDescriptor.remove(row.Descriptor(), id)
	t.byTransaction.remove(row.TransactionHash, id)
	t.bySpendingTransaction.remove(row.SpendingTransactionHash, id)
	return row
}

// transactionRecord is a header row; seq orders rows with equal block position.
type transactionRecord struct {
	seq  uint64
	info model.TransactionInformation
}
