package syncer

import (
	"runtime"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/transfers/container"
)

// Config is shared by the synchronizer and every consumer it creates.
type Config struct {
	// WorkerCount bounds the scan pool. Zero means one worker per CPU.
	WorkerCount int
	Currency    container.Currency
}

func (c Config) workerCount() int {
	n := c.WorkerCount
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < minWorkerCount {
		n = minWorkerCount
	}
	return n
}
