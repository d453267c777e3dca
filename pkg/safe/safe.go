// Package safe converts between integer types, refusing values the target
// type cannot hold.
package safe

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("value out of range")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Convert returns v as To. A value that changes sign or does not survive the
// round trip back to From yields ErrOutOfRange.
func Convert[To, From Integer](v From) (To, error) {
	out := To(v)
	if From(out) != v || (v < 0) != (out < 0) {
		return 0, fmt.Errorf("convert %d to %T: %w", v, out, ErrOutOfRange)
	}
	return out, nil
}

func Uint32[T Integer](v T) (uint32, error) {
	return Convert[uint32](v)
}

func Uint64[T Integer](v T) (uint64, error) {
	return Convert[uint64](v)
}

// Add returns a+b, or ErrOutOfRange if the sum wraps.
func Add[T ~uint32 | ~uint64](a, b T) (T, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("add %d and %d: %w", a, b, ErrOutOfRange)
	}
	return sum, nil
}
