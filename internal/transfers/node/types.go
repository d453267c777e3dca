package node

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Node interface {
		GetTransactionOutsGlobalIndices(ctx context.Context, hash crypto.Hash) ([]uint32, error)
	}

	RequestMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
