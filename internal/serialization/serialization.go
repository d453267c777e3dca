// Package serialization provides the binary value codec shared by the transaction model and
// the persisted transfers state. Integers are CompactSize varints, blobs are length prefixed.
package serialization

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/btcsuite/btcd/wire"
)

// pver is passed to the wire helpers, which ignore it for varints.
const pver = 0

// MaxBlobSize bounds a single length-prefixed value.
const MaxBlobSize = 256 << 20

// ErrTooLarge is returned when a decoded length or value exceeds its bound.
var ErrTooLarge = errors.New("value too large")

// Writer encodes values to an io.Writer. The first error sticks and turns
// subsequent writes into no-ops.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

func (w *Writer) Uint64(v uint64) {
	if w.err != nil {
		return
	}
	w.err = wire.WriteVarInt(w.w, pver, v)
}

func (w *Writer) Uint32(v uint32) { w.Uint64(uint64(v)) }

func (w *Writer) Uint8(v uint8) { w.Fixed([]byte{v}) }

func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
		return
	}
	w.Uint8(0)
}

// Fixed writes b without a length prefix.
func (w *Writer) Fixed(b []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(b)
}

// Blob writes a length-prefixed byte string.
func (w *Writer) Blob(b []byte) {
	if w.err != nil {
		return
	}
	w.err = wire.WriteVarBytes(w.w, pver, b)
}

// Reader decodes values written by Writer. Like Writer, it keeps the first error.
type Reader struct {
	r   io.Reader
	err error
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered.
func (r *Reader) Err() error { return r.err }

// Fail records err unless an earlier error is already recorded.
func (r *Reader) Fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Reader) Uint64(field string) uint64 {
	if r.err != nil {
		return 0
	}
	v, err := wire.ReadVarInt(r.r, pver)
	if err != nil {
		r.err = fmt.Errorf("read %s: %w", field, err)
		return 0
	}
	return v
}

func (r *Reader) Uint32(field string) uint32 {
	v := r.Uint64(field)
	if v > math.MaxUint32 {
		r.Fail(fmt.Errorf("read %s: %d: %w", field, v, ErrTooLarge))
		return 0
	}
	return uint32(v)
}

func (r *Reader) Uint8(field string) uint8 {
	var b [1]byte
	r.Fixed(field, b[:])
	return b[0]
}

func (r *Reader) Bool(field string) bool {
	switch v := r.Uint8(field); v {
	case 0:
		return false
	case 1:
		return true
	default:
		r.Fail(fmt.Errorf("read %s: invalid bool %d", field, v))
		return false
	}
}

// Fixed fills dst completely.
func (r *Reader) Fixed(field string, dst []byte) {
	if r.err != nil {
		return
	}
	if _, err := io.ReadFull(r.r, dst); err != nil {
		r.err = fmt.Errorf("read %s: %w", field, err)
	}
}

// Blob reads a length-prefixed byte string of at most MaxBlobSize bytes.
func (r *Reader) Blob(field string) []byte {
	if r.err != nil {
		return nil
	}
	b, err := wire.ReadVarBytes(r.r, pver, MaxBlobSize, field)
	if err != nil {
		r.err = fmt.Errorf("read %s: %w", field, err)
		return nil
	}
	return b
}

// Count reads a collection length and rejects values above limit.
func (r *Reader) Count(field string, limit uint64) int {
	n := r.Uint64(field)
	if n > limit {
		r.Fail(fmt.Errorf("read %s: count %d: %w", field, n, ErrTooLarge))
		return 0
	}
	return int(n)
}
