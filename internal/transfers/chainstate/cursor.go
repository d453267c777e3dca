package chainstate

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/serialization"
)

var ErrCursorVersion = errors.New("unsupported cursor version")

// Cursor is the chain a consumer has been fed: the hashes of consecutive
// blocks starting at height start.
type Cursor struct {
	mu     sync.Mutex
	start  uint32
	blocks []crypto.Hash
}

// KnownBlocks returns the delivered block hashes, lowest height first.
func (c *Cursor) KnownBlocks() []crypto.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]crypto.Hash(nil), c.blocks...)
}

// Next returns the height of the next block the consumer expects.
func (c *Cursor) Next() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next()
}

func (c *Cursor) next() uint32 {
	return c.start + uint32(len(c.blocks))
}

// hashAt returns the hash delivered at height.
func (c *Cursor) hashAt(height uint32) (crypto.Hash, bool) {
	if height < c.start || height >= c.next() {
		return crypto.Hash{}, false
	}
	return c.blocks[height-c.start], true
}

func (c *Cursor) append(start uint32, hashes []crypto.Hash) {
	if len(c.blocks) == 0 {
		c.start = start
	}
	c.blocks = append(c.blocks, hashes...)
}

// truncate forgets every block at or above height.
func (c *Cursor) truncate(height uint32) {
	if height <= c.start {
		c.blocks = c.blocks[:0]
		return
	}
	if height < c.next() {
		c.blocks = c.blocks[:height-c.start]
	}
}

func (c *Cursor) Save(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sw := serialization.NewWriter(w)
	sw.Uint32(cursorVersion)
	sw.Uint32(c.start)
	sw.Uint64(uint64(len(c.blocks)))
	for _, h := range c.blocks {
		sw.Fixed(h[:])
	}
	if err := sw.Err(); err != nil {
		return fmt.Errorf("save cursor: %w", err)
	}
	return nil
}

// Load replaces the cursor with one written by Save. On error the cursor is unchanged.
func (c *Cursor) Load(r io.Reader) error {
	sr := serialization.NewReader(r)
	if v := sr.Uint32("version"); sr.Err() == nil && v != cursorVersion {
		return fmt.Errorf("load cursor: version %d: %w", v, ErrCursorVersion)
	}
	start := sr.Uint32("start height")
	n := sr.Count("blocks", maxCursorBlocks)
	blocks := make([]crypto.Hash, 0, n)
	for i := 0; i < n && sr.Err() == nil; i++ {
		var h crypto.Hash
		sr.Fixed("block hash", h[:])
		blocks = append(blocks, h)
	}
	if err := sr.Err(); err != nil {
		return fmt.Errorf("load cursor: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = start
	c.blocks = blocks
	return nil
}
