package syncer

const (
	minWorkerCount = 2

	duplicateKindCrossTransaction = "cross_transaction"
	duplicateKindSameTransaction  = "same_transaction"

	stateVersion = 1

	maxStateConsumers     = 1 << 16
	maxStateSubscriptions = 1 << 16
)
