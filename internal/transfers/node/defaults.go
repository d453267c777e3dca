package node

import "time"

const defaultRetryDelay = 200 * time.Millisecond
