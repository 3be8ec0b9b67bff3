package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is the panic value when containers of different
	// bit lengths are combined.
	ErrLengthMismatch = errors.New("bitset: length mismatch")

	// ErrBitRange is the panic value when a bit position is outside the
	// container's bit length.
	ErrBitRange = errors.New("bitset: bit position out of range")

	// ErrUnbounded is the panic value when an operation has no finite
	// representation on a sparse bit set.
	ErrUnbounded = errors.New("bitset: not representable on an unbounded bit set")
)

// checkBit validates a bit position against a bit length.
func checkBit(bit, length int) {
	if bit < 0 || bit >= length {
		panic(fmt.Errorf("%w: bit %d, length %d", ErrBitRange, bit, length))
	}
}

// checkLen validates that two containers hold the same number of elements.
func checkLen(n, m int) {
	if n != m {
		panic(fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, n, m))
	}
}
