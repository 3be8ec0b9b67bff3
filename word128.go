package bitset

import "math/bits"

// Word128 is a bit set over a 128-bit word, stored as a low/high pair of
// 64-bit halves. Go has no 128-bit integer primitive, so the widest word
// backend is a dedicated type; its semantics match Word exactly and every
// operation is O(1). Bit 0 is the least significant bit of the low half.
type Word128 struct {
	lo, hi uint64
}

// NewWord128 returns a 128-bit word bit set from its high and low halves.
func NewWord128(hi, lo uint64) *Word128 {
	return &Word128{lo: lo, hi: hi}
}

// Uint64s returns the high and low halves of the word.
func (w *Word128) Uint64s() (hi, lo uint64) {
	return w.hi, w.lo
}

// Len returns 128.
func (w *Word128) Len() int {
	return 128
}

// Init sets every bit to value.
func (w *Word128) Init(value bool) *Word128 {
	v := fillValue[uint64](value)
	w.lo, w.hi = v, v
	return w
}

// half returns the addressed 64-bit half and the in-half mask.
func (w *Word128) half(bit int) (*uint64, uint64) {
	checkBit(bit, 128)
	if bit < 64 {
		return &w.lo, 1 << bit
	}
	return &w.hi, 1 << (bit - 64)
}

// Test reports whether the given bit is set.
func (w *Word128) Test(bit int) bool {
	half, mask := w.half(bit)
	return *half&mask != 0
}

// Set sets the given bit.
func (w *Word128) Set(bit int) *Word128 {
	half, mask := w.half(bit)
	*half |= mask
	return w
}

// Reset clears the given bit.
func (w *Word128) Reset(bit int) *Word128 {
	half, mask := w.half(bit)
	*half &^= mask
	return w
}

// Flip inverts the given bit.
func (w *Word128) Flip(bit int) *Word128 {
	half, mask := w.half(bit)
	*half ^= mask
	return w
}

// SetTo sets or clears the given bit.
func (w *Word128) SetTo(bit int, value bool) *Word128 {
	half, mask := w.half(bit)
	*half = *half&^mask | fillValue[uint64](value)&mask
	return w
}

// All reports whether every bit is set.
func (w *Word128) All() bool {
	return w.lo&w.hi == ^uint64(0)
}

// Any reports whether at least one bit is set.
func (w *Word128) Any() bool {
	return w.lo|w.hi != 0
}

// None reports whether no bit is set.
func (w *Word128) None() bool {
	return w.lo|w.hi == 0
}

// Eq reports whether both words hold identical bits.
func (w *Word128) Eq(rhs *Word128) bool {
	return w.lo == rhs.lo && w.hi == rhs.hi
}

// Disjoint reports whether the words share no set bits.
func (w *Word128) Disjoint(rhs *Word128) bool {
	return w.lo&rhs.lo == 0 && w.hi&rhs.hi == 0
}

// Subset reports whether every set bit is also set in rhs.
func (w *Word128) Subset(rhs *Word128) bool {
	return w.lo&^rhs.lo == 0 && w.hi&^rhs.hi == 0
}

// Superset reports whether every set bit of rhs is also set here.
func (w *Word128) Superset(rhs *Word128) bool {
	return rhs.Subset(w)
}

// Or unions rhs in.
func (w *Word128) Or(rhs *Word128) *Word128 {
	w.lo |= rhs.lo
	w.hi |= rhs.hi
	return w
}

// And intersects with rhs.
func (w *Word128) And(rhs *Word128) *Word128 {
	w.lo &= rhs.lo
	w.hi &= rhs.hi
	return w
}

// AndNot removes the bits of rhs.
func (w *Word128) AndNot(rhs *Word128) *Word128 {
	w.lo &^= rhs.lo
	w.hi &^= rhs.hi
	return w
}

// Xor forms the symmetric difference with rhs.
func (w *Word128) Xor(rhs *Word128) *Word128 {
	w.lo ^= rhs.lo
	w.hi ^= rhs.hi
	return w
}

// Not complements every bit.
func (w *Word128) Not() *Word128 {
	w.lo = ^w.lo
	w.hi = ^w.hi
	return w
}

// Mask selects bits from rhs where mask is set, keeping the receiver's
// bits elsewhere.
func (w *Word128) Mask(rhs, mask *Word128) *Word128 {
	w.lo = w.lo&^mask.lo | rhs.lo&mask.lo
	w.hi = w.hi&^mask.hi | rhs.hi&mask.hi
	return w
}

// Count returns the number of set bits.
func (w *Word128) Count() int {
	return bits.OnesCount64(w.lo) + bits.OnesCount64(w.hi)
}
