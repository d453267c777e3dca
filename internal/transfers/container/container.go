// Package container implements the per-address ledger of owned outputs, their
// spends and the transactions touching them.
package container

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
)

var (
	ErrHeightBelowCurrent  = errors.New("block height is below the current height")
	ErrInvalidTransfer     = errors.New("transfer does not match transaction")
	ErrAlreadySpent        = errors.New("output already spent by a confirmed transaction")
	ErrUnconfirmedBlock    = errors.New("block info is unconfirmed")
	ErrGlobalIndexMissing  = errors.New("global output index missing")
	ErrUnsupportedVersion  = errors.New("unsupported container state version")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Currency holds the chain parameters the container needs to decide spendability.
type Currency struct {
	// MaxBlockHeight splits unlock times into block heights and unix timestamps.
	MaxBlockHeight              uint64
	LockedTxAllowedDeltaBlocks  uint64
	LockedTxAllowedDeltaSeconds uint64
}

// DefaultCurrency returns the parameters of the reference CryptoNote network.
func DefaultCurrency() Currency {
	return Currency{
		MaxBlockHeight:              500000000,
		LockedTxAllowedDeltaBlocks:  1,
		LockedTxAllowedDeltaSeconds: 240,
	}
}

// Container is safe for concurrent use. All mutations and queries take one lock.
type Container struct {
	mu sync.Mutex

	currency         Currency
	spendableAge     uint32
	safeSpendableAge uint32
	now              func() time.Time

	currentHeight uint32
	nextID        uint64
	transactions  map[crypto.Hash]*transactionRecord
	unconfirmed   transferTable
	available     transferTable
	spent         spentTable
	safe          map[crypto.Hash]struct{}
}

// New returns an empty container.
func New(currency Currency, spendableAge, safeSpendableAge uint32) *Container {
	c := &Container{
		currency:         currency,
		spendableAge:     spendableAge,
		safeSpendableAge: safeSpendableAge,
		now:              time.Now,
	}
	c.reset()
	return c
}

func (c *Container) reset() {
	c.currentHeight = 0
	c.nextID = 0
	c.transactions = make(map[crypto.Hash]*transactionRecord)
	c.unconfirmed = newTransferTable()
	c.available = newTransferTable()
	c.spent = newSpentTable()
	c.safe = make(map[crypto.Hash]struct{})
}

func (c *Container) newID() uint64 {
	c.nextID++
	return c.nextID
}

// AddTransaction records the transfers and spends of tx. It returns false
// without changes if the transaction is already known or touches nothing owned.
func (c *Container) AddTransaction(block model.TransactionBlockInfo, tx model.TransactionReader, transfers []model.TransactionOutputInformationIn) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !block.Unconfirmed() && block.Height < c.currentHeight {
		return false, fmt.Errorf("add transaction %s at %d (current %d): %w", tx.TransactionHash(), block.Height, c.currentHeight, ErrHeightBelowCurrent)
	}
	if _, ok := c.transactions[tx.TransactionHash()]; ok {
		return false, nil
	}
	if err := c.validateTransfers(block, tx, transfers); err != nil {
		return false, err
	}
	if err := c.validateInputs(block, tx); err != nil {
		return false, err
	}

	added := c.addOutputs(block, tx, transfers)
	if c.addInputs(block, tx) {
		added = true
	}
	if added {
		c.insertTransaction(block, tx)
	}
	return added, nil
}

func (c *Container) validateTransfers(block model.TransactionBlockInfo, tx model.TransactionReader, transfers []model.TransactionOutputInformationIn) error {
	outputs := tx.Outputs()
	for _, t := range transfers {
		if int(t.OutputInTransaction) >= len(outputs) {
			return fmt.Errorf("output %d of %s: index out of range: %w", t.OutputInTransaction, tx.TransactionHash(), ErrInvalidTransfer)
		}
		out := outputs[t.OutputInTransaction]
		if out.Type() != t.Type || out.Amount != t.Amount {
			return fmt.Errorf("output %d of %s: type or amount mismatch: %w", t.OutputInTransaction, tx.TransactionHash(), ErrInvalidTransfer)
		}
		if t.TransactionHash != tx.TransactionHash() {
			return fmt.Errorf("output %d of %s: foreign transaction hash: %w", t.OutputInTransaction, tx.TransactionHash(), ErrInvalidTransfer)
		}
		if !block.Unconfirmed() && t.GlobalOutputIndex == model.UnconfirmedGlobalOutputIndex {
			return fmt.Errorf("output %d of %s: %w", t.OutputInTransaction, tx.TransactionHash(), ErrGlobalIndexMissing)
		}
	}
	return nil
}

// validateInputs rejects a confirmed spend of an output a confirmed transaction already spent.
func (c *Container) validateInputs(block model.TransactionBlockInfo, tx model.TransactionReader) error {
	if block.Unconfirmed() {
		return nil
	}
	for i, in := range tx.Inputs() {
		desc, amount, ok := model.InputDescriptor(in)
		if !ok {
			continue
		}
		if _, found := c.spendCandidate(desc, amount); found {
			continue
		}
		for _, id := range c.spent.byDescriptor.get(desc) {
			if row := c.spent.rows[id]; !row.SpendingBlock.Unconfirmed() && row.Amount == amount {
				return fmt.Errorf("input %d of %s spends %s: %w", i, tx.TransactionHash(), desc, ErrAlreadySpent)
			}
		}
	}
	return nil
}

func (c *Container) addOutputs(block model.TransactionBlockInfo, tx model.TransactionReader, transfers []model.TransactionOutputInformationIn) bool {
	for _, t := range transfers {
		row := &model.TransactionOutputInformationEx{
			TransactionOutputInformationIn: t,
			UnlockTime:                     tx.UnlockTime(),
			BlockHeight:                    block.Height,
			TransactionIndex:               block.TransactionIndex,
			Visible:                        true,
		}
		if block.Unconfirmed() {
			row.GlobalOutputIndex = model.UnconfirmedGlobalOutputIndex
			c.unconfirmed.insert(c.newID(), row)
		} else {
			c.available.insert(c.newID(), row)
		}
		c.updateVisibility(row.Descriptor())
	}
	return len(transfers) > 0
}

func (c *Container) addInputs(block model.TransactionBlockInfo, tx model.TransactionReader) bool {
	added := false
	for i, in := range tx.Inputs() {
		desc, amount, ok := model.InputDescriptor(in)
		if !ok {
			continue
		}
		if id, found := c.spendCandidate(desc, amount); found {
			row := c.available.remove(id)
			c.spent.insert(id, &model.SpentTransactionOutput{
				TransactionOutputInformationEx: *row,
				SpendingBlock:                  block,
				SpendingTransactionHash:        tx.TransactionHash(),
				InputInTransaction:             uint32(i),
			})
			c.updateVisibility(desc)
			added = true
			continue
		}
		if block.Unconfirmed() {
			continue
		}
		// a confirmed spend replaces a pool spend of the same output
		for _, id := range c.spent.byDescriptor.get(desc) {
			row := c.spent.rows[id]
			if !row.SpendingBlock.Unconfirmed() || row.Amount != amount {
				continue
			}
			c.spent.remove(id)
			row.SpendingBlock = block
			row.SpendingTransactionHash = tx.TransactionHash()
			row.InputInTransaction = uint32(i)
			c.spent.insert(id, row)
			added = true
			break
		}
	}
	return added
}

// spendCandidate picks the available row an input spends: the visible row of
// matching amount, else any row of matching amount.
func (c *Container) spendCandidate(desc model.SpentOutputDescriptor, amount uint64) (uint64, bool) {
	var (
		fallback uint64
		found    bool
	)
	for _, id := range c.available.byDescriptor.get(desc) {
		row := c.available.rows[id]
		if row.Amount != amount {
			continue
		}
		if row.Visible {
			return id, true
		}
		if !found {
			fallback, found = id, true
		}
	}
	return fallback, found
}

func (c *Container) insertTransaction(block model.TransactionBlockInfo, tx model.TransactionReader) {
	paymentID, hasPaymentID := tx.PaymentID()
	c.transactions[tx.TransactionHash()] = &transactionRecord{
		seq: c.newID(),
		info: model.TransactionInformation{
			TransactionHash:  tx.TransactionHash(),
			PublicKey:        tx.TransactionPublicKey(),
			BlockHeight:      block.Height,
			Timestamp:        block.Timestamp,
			TransactionIndex: block.TransactionIndex,
			UnlockTime:       tx.UnlockTime(),
			TotalAmountIn:    tx.InputTotalAmount(),
			TotalAmountOut:   tx.OutputTotalAmount(),
			Extra:            append([]byte(nil), tx.Extra()...),
			PaymentID:        paymentID,
			HasPaymentID:     hasPaymentID,
		},
	}
}

// updateVisibility keeps exactly one copy of a key image visible. A spent copy
// wins, then the first available copy, then the first pool copy.
func (c *Container) updateVisibility(desc model.SpentOutputDescriptor) {
	if desc.Type != model.OutputTypeKey {
		return
	}
	spentIDs := c.spent.byDescriptor.get(desc)
	availableIDs := c.available.byDescriptor.get(desc)
	unconfirmedIDs := c.unconfirmed.byDescriptor.get(desc)

	visibleSet := false
	if len(spentIDs) > 0 {
		for _, id := range spentIDs {
			c.spent.rows[id].Visible = true
		}
		visibleSet = true
	}
	sort.Slice(availableIDs, func(i, j int) bool { return availableIDs[i] < availableIDs[j] })
	for _, id := range availableIDs {
		c.available.rows[id].Visible = !visibleSet
		visibleSet = true
	}
	sort.Slice(unconfirmedIDs, func(i, j int) bool { return unconfirmedIDs[i] < unconfirmedIDs[j] })
	for _, id := range unconfirmedIDs {
		c.unconfirmed.rows[id].Visible = !visibleSet
		visibleSet = true
	}
}

// DeleteUnconfirmedTransaction drops a pool transaction, its outputs and its
// spends. It reports whether anything was deleted.
func (c *Container) DeleteUnconfirmedTransaction(hash crypto.Hash) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.transactions[hash]
	if !ok || rec.info.BlockHeight != model.UnconfirmedHeight {
		return false
	}
	c.deleteTransaction(hash)
	return true
}

func (c *Container) deleteTransaction(hash crypto.Hash) {
	// spends made by the transaction are undone first
	for _, id := range c.spent.bySpendingTransaction.get(hash) {
		row := c.spent.remove(id)
		c.available.insert(id, &row.TransactionOutputInformationEx)
		c.updateVisibility(row.Descriptor())
	}
	for _, id := range c.unconfirmed.byTransaction.get(hash) {
		row := c.unconfirmed.remove(id)
		c.updateVisibility(row.Descriptor())
	}
	for _, id := range c.available.byTransaction.get(hash) {
		row := c.available.remove(id)
		c.updateVisibility(row.Descriptor())
	}
	for _, id := range c.spent.byTransaction.get(hash) {
		row := c.spent.remove(id)
		c.updateVisibility(row.Descriptor())
	}
	delete(c.transactions, hash)
}

// MarkTransactionConfirmed moves a pool transaction into block. globalIndices
// holds the global index of every output of the transaction.
func (c *Container) MarkTransactionConfirmed(block model.TransactionBlockInfo, hash crypto.Hash, globalIndices []uint32) (bool, error) {
	if block.Unconfirmed() {
		return false, fmt.Errorf("confirm %s: %w", hash, ErrUnconfirmedBlock)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.transactions[hash]
	if !ok || rec.info.BlockHeight != model.UnconfirmedHeight {
		return false, nil
	}
	if block.Height < c.currentHeight {
		return false, fmt.Errorf("confirm %s at %d (current %d): %w", hash, block.Height, c.currentHeight, ErrHeightBelowCurrent)
	}
	ids := c.unconfirmed.byTransaction.get(hash)
	for _, id := range ids {
		if idx := c.unconfirmed.rows[id].OutputInTransaction; int(idx) >= len(globalIndices) {
			return false, fmt.Errorf("confirm %s output %d: %w", hash, idx, ErrGlobalIndexMissing)
		}
	}

	rec.info.BlockHeight = block.Height
	rec.info.Timestamp = block.Timestamp
	rec.info.TransactionIndex = block.TransactionIndex

	for _, id := range ids {
		row := c.unconfirmed.remove(id)
		row.GlobalOutputIndex = globalIndices[row.OutputInTransaction]
		row.BlockHeight = block.Height
		row.TransactionIndex = block.TransactionIndex
		c.available.insert(id, row)
		c.updateVisibility(row.Descriptor())
	}
	for _, id := range c.spent.bySpendingTransaction.get(hash) {
		c.spent.rows[id].SpendingBlock = block
	}
	return true, nil
}

// Detach removes every transaction confirmed at or above height, and every pool
// transaction spending an output confirmed at or above height. It returns the
// removed hashes, highest block first.
func (c *Container) Detach(height uint32) []crypto.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]*transactionRecord, 0, len(c.transactions))
	for _, rec := range c.transactions {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i].info, records[j].info
		if a.BlockHeight != b.BlockHeight {
			return a.BlockHeight > b.BlockHeight
		}
		if a.TransactionIndex != b.TransactionIndex {
			return a.TransactionIndex > b.TransactionIndex
		}
		return records[i].seq > records[j].seq
	})

	var deleted []crypto.Hash
	for _, rec := range records {
		hash := rec.info.TransactionHash
		if rec.info.BlockHeight == model.UnconfirmedHeight {
			if !c.spendsFrom(hash, height) {
				continue
			}
		} else if rec.info.BlockHeight < height {
			break
		}
		c.deleteTransaction(hash)
		deleted = append(deleted, hash)
	}

	if height > 0 && c.currentHeight >= height {
		c.currentHeight = height - 1
	}
	return deleted
}

func (c *Container) spendsFrom(hash crypto.Hash, height uint32) bool {
	for _, id := range c.spent.bySpendingTransaction.get(hash) {
		if h := c.spent.rows[id].BlockHeight; h != model.UnconfirmedHeight && h >= height {
			return true
		}
	}
	return false
}

// AdvanceHeight moves the current height forward. It reports whether a
// visible output became spendable.
func (c *Container) AdvanceHeight(height uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if height <= c.currentHeight {
		return false
	}
	unlocked := false
	for _, row := range c.available.rows {
		if !row.Visible {
			continue
		}
		if c.outputState(row, c.currentHeight) != model.IncludeStateUnlocked &&
			c.outputState(row, height) == model.IncludeStateUnlocked {
			unlocked = true
			break
		}
	}
	c.currentHeight = height
	return unlocked
}

// MarkTransactionSafe lets outputs of hash unlock after the safe spendable age.
func (c *Container) MarkTransactionSafe(hash crypto.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.transactions[hash]; !ok {
		return fmt.Errorf("mark safe %s: %w", hash, ErrTransactionNotFound)
	}
	c.safe[hash] = struct{}{}
	return nil
}

// outputState returns the state bit of an available output at height.
func (c *Container) outputState(row *model.TransactionOutputInformationEx, height uint32) uint32 {
	if row.BlockHeight == model.UnconfirmedHeight || !c.spendTimeUnlocked(row.UnlockTime, height) {
		return model.IncludeStateLocked
	}
	age := c.spendableAge
	if _, ok := c.safe[row.TransactionHash]; ok {
		age = c.safeSpendableAge
	}
	if uint64(height)+1 < uint64(row.BlockHeight)+uint64(age) {
		return model.IncludeStateSoftLocked
	}
	return model.IncludeStateUnlocked
}

func (c *Container) spendTimeUnlocked(unlockTime uint64, height uint32) bool {
	if unlockTime < c.currency.MaxBlockHeight {
		return uint64(height)+c.currency.LockedTxAllowedDeltaBlocks >= unlockTime
	}
	return uint64(c.now().Unix())+c.currency.LockedTxAllowedDeltaSeconds >= unlockTime
}
