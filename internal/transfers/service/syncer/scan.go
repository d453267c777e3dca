package syncer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/model"
	"github.com/goodnatureofminers/blockinsight7000-transfers/pkg/workerpool"
	"go.uber.org/zap"
)

type scanJob struct {
	block model.TransactionBlockInfo
	tx    model.TransactionReader
}

type scanResult struct {
	block         model.TransactionBlockInfo
	tx            model.TransactionReader
	globalIndices []uint32
	// outputs holds owned outputs keyed by subscription spend key.
	outputs map[crypto.PublicKey][]model.TransactionOutputInformationIn
}

func spendKeys(subs []*Subscription) map[crypto.PublicKey]*Subscription {
	keys := make(map[crypto.PublicKey]*Subscription, len(subs))
	for _, s := range subs {
		keys[s.Address().SpendPublicKey] = s
	}
	return keys
}

// collectJobs lists the transactions of a batch in chain order. Missing
// blocks, blocks before the sync start and transactions without a public key
// are skipped.
func (c *Consumer) collectJobs(blocks []model.CompleteBlock, startHeight uint32) []scanJob {
	syncStart := c.SyncStart()
	var jobs []scanJob
	for i, b := range blocks {
		if b.Block == nil {
			continue
		}
		height := startHeight + uint32(i)
		if b.Block.Timestamp < syncStart.Timestamp || height < syncStart.Height {
			continue
		}
		for idx, tx := range b.Transactions {
			if tx.TransactionPublicKey() == crypto.NullPublicKey {
				continue
			}
			jobs = append(jobs, scanJob{
				block: model.TransactionBlockInfo{
					Height:           height,
					Timestamp:        b.Block.Timestamp,
					TransactionIndex: uint32(idx),
				},
				tx: tx,
			})
		}
	}
	return jobs
}

// scan runs preprocess over the bounded worker pool. The first failure stops
// the remaining workers and fails the batch.
func (c *Consumer) scan(ctx context.Context, subs []*Subscription, jobs []scanJob) ([]scanResult, error) {
	keys := spendKeys(subs)
	return workerpool.Map(ctx, c.workerCount, jobs, func(ctx context.Context, job scanJob) (scanResult, error) {
		return c.preprocess(ctx, keys, job)
	}, func() {
		c.logger.Debug("scan aborted", zap.Int("jobs", len(jobs)))
	})
}

// preprocess finds the outputs of one transaction owned by any subscription
// and resolves their global indices for confirmed blocks.
func (c *Consumer) preprocess(ctx context.Context, keys map[crypto.PublicKey]*Subscription, job scanJob) (scanResult, error) {
	res := scanResult{block: job.block, tx: job.tx}
	owned, err := c.findOwnedOutputs(job.tx, keys)
	if err != nil {
		return res, err
	}
	if len(owned) == 0 {
		return res, nil
	}
	res.outputs = owned
	if job.block.Unconfirmed() {
		return res, nil
	}

	hash := job.tx.TransactionHash()
	indices, err := c.node.GetTransactionOutsGlobalIndices(ctx, hash)
	if err != nil {
		return res, fmt.Errorf("get global indices of %s: %w", hash, err)
	}
	for _, transfers := range owned {
		for i := range transfers {
			idx := transfers[i].OutputInTransaction
			if int(idx) >= len(indices) {
				return res, fmt.Errorf("output %d of %s: %w", idx, hash, ErrGlobalIndices)
			}
			transfers[i].GlobalOutputIndex = indices[idx]
		}
	}
	res.globalIndices = indices
	return res, nil
}

func (c *Consumer) findOwnedOutputs(tx model.TransactionReader, keys map[crypto.PublicKey]*Subscription) (map[crypto.PublicKey][]model.TransactionOutputInformationIn, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	hash := tx.TransactionHash()
	txPublicKey := tx.TransactionPublicKey()
	derivation, err := crypto.GenerateKeyDerivation(txPublicKey, c.viewSecret)
	if err != nil {
		c.logger.Debug("transaction public key is not a curve point", zap.Stringer("tx", hash))
		return nil, nil
	}

	owned := make(map[crypto.PublicKey][]model.TransactionOutputInformationIn)
	for i, out := range tx.Outputs() {
		index := uint64(i)
		info := model.TransactionOutputInformationIn{
			TransactionOutputInformation: model.TransactionOutputInformation{
				Type:                 out.Type(),
				Amount:               out.Amount,
				GlobalOutputIndex:    model.UnconfirmedGlobalOutputIndex,
				OutputInTransaction:  uint32(i),
				TransactionHash:      hash,
				TransactionPublicKey: txPublicKey,
			},
		}

		switch target := out.Target.(type) {
		case model.KeyOutput:
			spendKey, err := crypto.UnderivePublicKey(derivation, index, target.Key)
			if err != nil {
				continue
			}
			sub, ok := keys[spendKey]
			if !ok {
				continue
			}
			info.OutputKey = target.Key
			// a tracking account has a zero spend secret; its key images are
			// still distinct per output
			ephemeral, err := crypto.DeriveSecretKey(derivation, index, sub.Keys().SpendSecretKey)
			if err != nil {
				return nil, fmt.Errorf("output %d of %s: derive secret key: %w", i, hash, err)
			}
			if info.KeyImage, err = crypto.GenerateKeyImage(target.Key, ephemeral); err != nil {
				return nil, fmt.Errorf("output %d of %s: key image: %w", i, hash, err)
			}
			owned[spendKey] = append(owned[spendKey], info)

		case model.MultisignatureOutput:
			info.RequiredSignatures = uint32(target.RequiredSignatureCount)
			matched := make(map[crypto.PublicKey]struct{})
			for _, key := range target.Keys {
				spendKey, err := crypto.UnderivePublicKey(derivation, index, key)
				if err != nil {
					continue
				}
				if _, ok := keys[spendKey]; !ok {
					continue
				}
				if _, ok := matched[spendKey]; ok {
					continue
				}
				matched[spendKey] = struct{}{}
				owned[spendKey] = append(owned[spendKey], info)
			}
		}
	}
	return owned, nil
}
