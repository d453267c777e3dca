package chainstate

const (
	cursorVersion = 1

	maxCursorBlocks = 1 << 26
)
