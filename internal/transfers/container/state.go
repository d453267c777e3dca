package container

import (
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/serialization"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
)

const (
	stateVersion = 1
	maxStateRows = 1 << 28
)

// Save writes the full container state to w.
func (c *Container) Save(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sw := serialization.NewWriter(w)
	sw.Uint32(stateVersion)
	sw.Uint32(c.currentHeight)
	sw.Uint64(c.nextID)

	sw.Uint64(uint64(len(c.transactions)))
	hashes := make([]crypto.Hash, 0, len(c.transactions))
	for h := range c.transactions {
		hashes = append(hashes, h)
	}
	sortHashes(hashes)
	for _, h := range hashes {
		writeTransaction(sw, c.transactions[h])
	}

	for _, t := range []*transferTable{&c.unconfirmed, &c.available} {
		sw.Uint64(uint64(len(t.rows)))
		for _, id := range sortedIDs(t.rows) {
			sw.Uint64(id)
			writeOutput(sw, t.rows[id])
		}
	}

	sw.Uint64(uint64(len(c.spent.rows)))
	for _, id := range sortedIDs(c.spent.rows) {
		row := c.spent.rows[id]
		sw.Uint64(id)
		writeOutput(sw, &row.TransactionOutputInformationEx)
		writeBlockInfo(sw, row.SpendingBlock)
		sw.Fixed(row.SpendingTransactionHash[:])
		sw.Uint32(row.InputInTransaction)
	}

	safe := make([]crypto.Hash, 0, len(c.safe))
	for h := range c.safe {
		safe = append(safe, h)
	}
	sortHashes(safe)
	sw.Uint64(uint64(len(safe)))
	for _, h := range safe {
		sw.Fixed(h[:])
	}

	if err := sw.Err(); err != nil {
		return fmt.Errorf("save container: %w", err)
	}
	return nil
}

// Load replaces the container state with the one read from r. On error the
// container is left unchanged.
func (c *Container) Load(r io.Reader) error {
	sr := serialization.NewReader(r)
	if v := sr.Uint32("version"); sr.Err() == nil && v != stateVersion {
		return fmt.Errorf("load container: version %d: %w", v, ErrUnsupportedVersion)
	}

	fresh := New(c.currency, c.spendableAge, c.safeSpendableAge)
	fresh.currentHeight = sr.Uint32("current height")
	fresh.nextID = sr.Uint64("next id")

	n := sr.Count("transactions", maxStateRows)
	for i := 0; i < n && sr.Err() == nil; i++ {
		rec := readTransaction(sr)
		fresh.transactions[rec.info.TransactionHash] = rec
	}

	for _, t := range []*transferTable{&fresh.unconfirmed, &fresh.available} {
		n = sr.Count("transfers", maxStateRows)
		for i := 0; i < n && sr.Err() == nil; i++ {
			id := sr.Uint64("transfer id")
			t.insert(id, readOutput(sr))
		}
	}

	n = sr.Count("spent transfers", maxStateRows)
	for i := 0; i < n && sr.Err() == nil; i++ {
		id := sr.Uint64("transfer id")
		row := &model.SpentTransactionOutput{TransactionOutputInformationEx: *readOutput(sr)}
		row.SpendingBlock = readBlockInfo(sr)
		sr.Fixed("spending transaction hash", row.SpendingTransactionHash[:])
		row.InputInTransaction = sr.Uint32("input in transaction")
		fresh.spent.insert(id, row)
	}

	n = sr.Count("safe transactions", maxStateRows)
	for i := 0; i < n && sr.Err() == nil; i++ {
		var h crypto.Hash
		sr.Fixed("safe transaction", h[:])
		fresh.safe[h] = struct{}{}
	}

	if err := sr.Err(); err != nil {
		return fmt.Errorf("load container: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHeight = fresh.currentHeight
	c.nextID = fresh.nextID
	c.transactions = fresh.transactions
	c.unconfirmed = fresh.unconfirmed
	c.available = fresh.available
	c.spent = fresh.spent
	c.safe = fresh.safe
	return nil
}

func writeTransaction(w *serialization.Writer, rec *transactionRecord) {
	w.Uint64(rec.seq)
	w.Fixed(rec.info.TransactionHash[:])
	w.Fixed(rec.info.PublicKey[:])
	w.Uint32(rec.info.BlockHeight)
	w.Uint64(rec.info.Timestamp)
	w.Uint32(rec.info.TransactionIndex)
	w.Uint64(rec.info.UnlockTime)
	w.Uint64(rec.info.TotalAmountIn)
	w.Uint64(rec.info.TotalAmountOut)
	w.Blob(rec.info.Extra)
	w.Bool(rec.info.HasPaymentID)
	w.Fixed(rec.info.PaymentID[:])
}

func readTransaction(r *serialization.Reader) *transactionRecord {
	rec := &transactionRecord{seq: r.Uint64("transaction seq")}
	r.Fixed("transaction hash", rec.info.TransactionHash[:])
	r.Fixed("transaction public key", rec.info.PublicKey[:])
	rec.info.BlockHeight = r.Uint32("block height")
	rec.info.Timestamp = r.Uint64("timestamp")
	rec.info.TransactionIndex = r.Uint32("transaction index")
	rec.info.UnlockTime = r.Uint64("unlock time")
	rec.info.TotalAmountIn = r.Uint64("total amount in")
	rec.info.TotalAmountOut = r.Uint64("total amount out")
	rec.info.Extra = r.Blob("extra")
	rec.info.HasPaymentID = r.Bool("has payment id")
	r.Fixed("payment id", rec.info.PaymentID[:])
	return rec
}

func writeOutput(w *serialization.Writer, row *model.TransactionOutputInformationEx) {
	w.Uint8(uint8(row.Type))
	w.Uint64(row.Amount)
	w.Uint32(row.GlobalOutputIndex)
	w.Uint32(row.OutputInTransaction)
	w.Fixed(row.TransactionHash[:])
	w.Fixed(row.TransactionPublicKey[:])
	w.Fixed(row.OutputKey[:])
	w.Uint32(row.RequiredSignatures)
	w.Fixed(row.KeyImage[:])
	w.Uint64(row.UnlockTime)
	w.Uint32(row.BlockHeight)
	w.Uint32(row.TransactionIndex)
	w.Bool(row.Visible)
}

func readOutput(r *serialization.Reader) *model.TransactionOutputInformationEx {
	row := &model.TransactionOutputInformationEx{}
	row.Type = model.OutputType(r.Uint8("output type"))
	if row.Type != model.OutputTypeKey && row.Type != model.OutputTypeMultisignature {
		r.Fail(fmt.Errorf("read output type: invalid type %d", row.Type))
	}
	row.Amount = r.Uint64("amount")
	row.GlobalOutputIndex = r.Uint32("global output index")
	row.OutputInTransaction = r.Uint32("output in transaction")
	r.Fixed("transaction hash", row.TransactionHash[:])
	r.Fixed("transaction public key", row.TransactionPublicKey[:])
	r.Fixed("output key", row.OutputKey[:])
	row.RequiredSignatures = r.Uint32("required signatures")
	r.Fixed("key image", row.KeyImage[:])
	row.UnlockTime = r.Uint64("unlock time")
	row.BlockHeight = r.Uint32("block height")
	row.TransactionIndex = r.Uint32("transaction index")
	row.Visible = r.Bool("visible")
	return row
}

func writeBlockInfo(w *serialization.Writer, b model.TransactionBlockInfo) {
	w.Uint32(b.Height)
	w.Uint64(b.Timestamp)
	w.Uint32(b.TransactionIndex)
}

func readBlockInfo(r *serialization.Reader) model.TransactionBlockInfo {
	return model.TransactionBlockInfo{
		Height:           r.Uint32("spending block height"),
		Timestamp:        r.Uint64("spending block timestamp"),
		TransactionIndex: r.Uint32("spending transaction index"),
	}
}
