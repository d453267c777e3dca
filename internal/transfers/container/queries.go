package container

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
)

// CurrentHeight returns the last height passed to AdvanceHeight, lowered by Detach.
func (c *Container) CurrentHeight() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentHeight
}

// TransfersCount counts owned outputs in every state, hidden copies included.
func (c *Container) TransfersCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.unconfirmed.rows) + len(c.available.rows) + len(c.spent.rows)
}

func (c *Container) TransactionsCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.transactions)
}

// Balance sums the visible outputs matching flags. Pool outputs count as locked.
func (c *Container) Balance(flags uint32) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var amount uint64
	for _, row := range c.available.rows {
		if row.Visible && model.Included(row.Type, c.outputState(row, c.currentHeight), flags) {
			amount += row.Amount
		}
	}
	if flags&model.IncludeStateLocked != 0 {
		for _, row := range c.unconfirmed.rows {
			if row.Visible && model.Included(row.Type, model.IncludeStateLocked, flags) {
				amount += row.Amount
			}
		}
	}
	return amount
}

// GetOutputs lists the visible outputs matching flags in discovery order.
func (c *Container) GetOutputs(flags uint32) []model.TransactionOutputInformation {
	c.mu.Lock()
	defer c.mu.Unlock()

	var outs []model.TransactionOutputInformation
	for _, id := range sortedIDs(c.available.rows) {
		row := c.available.rows[id]
		if row.Visible && model.Included(row.Type, c.outputState(row, c.currentHeight), flags) {
			outs = append(outs, row.TransactionOutputInformation)
		}
	}
	if flags&model.IncludeStateLocked != 0 {
		for _, id := range sortedIDs(c.unconfirmed.rows) {
			row := c.unconfirmed.rows[id]
			if row.Visible && model.Included(row.Type, model.IncludeStateLocked, flags) {
				outs = append(outs, row.TransactionOutputInformation)
			}
		}
	}
	if flags&model.IncludeStateSpent != 0 {
		for _, id := range sortedIDs(c.spent.rows) {
			row := c.spent.rows[id]
			if row.Visible && model.Included(row.Type, model.IncludeStateSpent, flags) {
				outs = append(outs, row.TransactionOutputInformation)
			}
		}
	}
	return outs
}

// GetTransactionInformation returns the header of hash together with the sum
// of owned outputs it spends and the sum of owned outputs it creates.
func (c *Container) GetTransactionInformation(hash crypto.Hash) (info model.TransactionInformation, amountIn, amountOut uint64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.transactions[hash]
	if !ok {
		return model.TransactionInformation{}, 0, 0, false
	}
	for _, id := range c.spent.bySpendingTransaction.get(hash) {
		amountIn += c.spent.rows[id].Amount
	}
	for _, id := range c.unconfirmed.byTransaction.get(hash) {
		amountOut += c.unconfirmed.rows[id].Amount
	}
	for _, id := range c.available.byTransaction.get(hash) {
		amountOut += c.available.rows[id].Amount
	}
	for _, id := range c.spent.byTransaction.get(hash) {
		amountOut += c.spent.rows[id].Amount
	}
	info = rec.info
	info.Extra = append([]byte(nil), rec.info.Extra...)
	return info, amountIn, amountOut, true
}

// GetTransactionOutputs lists the outputs hash created, hidden copies included.
func (c *Container) GetTransactionOutputs(hash crypto.Hash, flags uint32) []model.TransactionOutputInformation {
	c.mu.Lock()
	defer c.mu.Unlock()

	var outs []model.TransactionOutputInformation
	if flags&model.IncludeStateLocked != 0 {
		for _, id := range sortedByID(c.unconfirmed.byTransaction.get(hash)) {
			row := c.unconfirmed.rows[id]
			if model.Included(row.Type, model.IncludeStateLocked, flags) {
				outs = append(outs, row.TransactionOutputInformation)
			}
		}
	}
	for _, id := range sortedByID(c.available.byTransaction.get(hash)) {
		row := c.available.rows[id]
		if model.Included(row.Type, c.outputState(row, c.currentHeight), flags) {
			outs = append(outs, row.TransactionOutputInformation)
		}
	}
	if flags&model.IncludeStateSpent != 0 {
		for _, id := range sortedByID(c.spent.byTransaction.get(hash)) {
			row := c.spent.rows[id]
			if model.Included(row.Type, model.IncludeStateSpent, flags) {
				outs = append(outs, row.TransactionOutputInformation)
			}
		}
	}
	return outs
}

// GetTransactionInputs lists the owned outputs spent by hash. Only the type
// bits of flags apply.
func (c *Container) GetTransactionInputs(hash crypto.Hash, flags uint32) []model.TransactionOutputInformation {
	c.mu.Lock()
	defer c.mu.Unlock()

	var outs []model.TransactionOutputInformation
	for _, id := range c.spent.bySpendingTransaction.get(hash) {
		row := c.spent.rows[id]
		if model.Included(row.Type, model.IncludeStateAll, flags|model.IncludeStateAll) {
			outs = append(outs, row.TransactionOutputInformation)
		}
	}
	return outs
}

// GetUnconfirmedTransactions returns pool transactions in the order they were added.
func (c *Container) GetUnconfirmedTransactions() []crypto.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	var records []*transactionRecord
	for _, rec := range c.transactions {
		if rec.info.BlockHeight == model.UnconfirmedHeight {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].seq < records[j].seq })

	hashes := make([]crypto.Hash, 0, len(records))
	for _, rec := range records {
		hashes = append(hashes, rec.info.TransactionHash)
	}
	return hashes
}

// GetSpentOutputs returns every spent row in discovery order.
func (c *Container) GetSpentOutputs() []model.SpentTransactionOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	outs := make([]model.SpentTransactionOutput, 0, len(c.spent.rows))
	for _, id := range sortedIDs(c.spent.rows) {
		outs = append(outs, *c.spent.rows[id])
	}
	return outs
}

func (c *Container) GetSafeTransactions() []crypto.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	hashes := make([]crypto.Hash, 0, len(c.safe))
	for h := range c.safe {
		hashes = append(hashes, h)
	}
	sortHashes(hashes)
	return hashes
}

func sortedByID(ids []uint64) []uint64 {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortHashes(hashes []crypto.Hash) {
	sort.Slice(hashes, func(i, j int) bool {
		return string(hashes[i][:]) < string(hashes[j][:])
	})
}
