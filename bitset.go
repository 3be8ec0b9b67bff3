package bitset

import "math"

// Uint is the constraint for word types backing the fixed-width backends.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Unbounded is the bit length reported by backends whose bit domain is
// conceptually infinite, such as Sparse.
const Unbounded = math.MaxInt

// Bits is the bit set contract. S is the concrete backend type itself, so
// binary operations only ever combine containers of the same shape.
//
// Mutating operations work in place and return the receiver for chaining.
// Binary and ternary operations require operands of equal bit length and
// panic with ErrLengthMismatch otherwise. Bit positions are validated
// against Len and panic with ErrBitRange when out of range.
type Bits[S any] interface {
	// Len returns the total number of addressable bits.
	Len() int

	// Init sets every bit to value.
	Init(value bool) S

	// Test reports whether the given bit is set.
	Test(bit int) bool
	// Set sets the given bit.
	Set(bit int) S
	// Reset clears the given bit.
	Reset(bit int) S
	// Flip inverts the given bit.
	Flip(bit int) S
	// SetTo sets or clears the given bit.
	SetTo(bit int, value bool) S

	// All reports whether every bit is set.
	All() bool
	// Any reports whether at least one bit is set.
	Any() bool
	// None reports whether no bit is set.
	None() bool

	// Eq reports whether both containers hold identical bits.
	Eq(rhs S) bool
	// Disjoint reports whether the containers share no set bits.
	Disjoint(rhs S) bool
	// Subset reports whether every set bit is also set in rhs.
	Subset(rhs S) bool
	// Superset reports whether every set bit of rhs is also set here.
	Superset(rhs S) bool

	// Or unions rhs in (bitwise OR).
	Or(rhs S) S
	// And intersects with rhs (bitwise AND).
	And(rhs S) S
	// AndNot removes the bits of rhs (bitwise AND NOT).
	AndNot(rhs S) S
	// Xor forms the symmetric difference with rhs (bitwise XOR).
	Xor(rhs S) S
	// Not complements every bit.
	Not() S
	// Mask selects bits from rhs where mask is set, keeping the
	// receiver's bits elsewhere.
	Mask(rhs, mask S) S

	// Count returns the number of set bits.
	Count() int
}

// With sets the given positions on set and returns it. Positions may use
// any ordinal-like integer type, letting call sites index bit sets with
// domain enumerations directly.
func With[S Bits[S], I Index](set S, positions ...I) S {
	for _, p := range positions {
		set.Set(int(p))
	}
	return set
}

// Union folds the other containers into set with Or and returns it.
func Union[S Bits[S]](set S, others ...S) S {
	for _, o := range others {
		set.Or(o)
	}
	return set
}

// Compile-time contract checks for every backend.
var (
	_ Bits[*Word[uint8]]         = (*Word[uint8])(nil)
	_ Bits[*Word[uint16]]        = (*Word[uint16])(nil)
	_ Bits[*Word[uint32]]        = (*Word[uint32])(nil)
	_ Bits[*Word[uint64]]        = (*Word[uint64])(nil)
	_ Bits[*Word128]             = (*Word128)(nil)
	_ Bits[Slice[uint8]]         = Slice[uint8](nil)
	_ Bits[Slice[uint64]]        = Slice[uint64](nil)
	_ Bits[Vec128x8]             = Vec128x8(nil)
	_ Bits[Vec128x16]            = Vec128x16(nil)
	_ Bits[Vec128x32]            = Vec128x32(nil)
	_ Bits[Vec128x64]            = Vec128x64(nil)
	_ Bits[Vec256x8]             = Vec256x8(nil)
	_ Bits[Vec256x16]            = Vec256x16(nil)
	_ Bits[Vec256x32]            = Vec256x32(nil)
	_ Bits[Vec256x64]            = Vec256x64(nil)
	_ Bits[Sparse[uint64]]       = Sparse[uint64](nil)
	_ Bits[*Wrap[Slice[uint64]]] = (*Wrap[Slice[uint64]])(nil)
)
