package bitset

import "math/bits"

// Word is a bit set over a single machine word. Every operation is O(1).
type Word[W Uint] struct {
	bits W
}

// NewWord returns a word bit set holding the given initial bits.
func NewWord[W Uint](bits W) *Word[W] {
	return &Word[W]{bits: bits}
}

// Bits returns the underlying word.
func (w *Word[W]) Bits() W {
	return w.bits
}

// Len returns the word width in bits.
func (w *Word[W]) Len() int {
	return wordBits[W]()
}

// Init sets every bit to value.
func (w *Word[W]) Init(value bool) *Word[W] {
	w.bits = fillValue[W](value)
	return w
}

// Test reports whether the given bit is set.
func (w *Word[W]) Test(bit int) bool {
	checkBit(bit, w.Len())
	return w.bits&(W(1)<<bit) != 0
}

// Set sets the given bit.
func (w *Word[W]) Set(bit int) *Word[W] {
	checkBit(bit, w.Len())
	w.bits |= W(1) << bit
	return w
}

// Reset clears the given bit.
func (w *Word[W]) Reset(bit int) *Word[W] {
	checkBit(bit, w.Len())
	w.bits &^= W(1) << bit
	return w
}

// Flip inverts the given bit.
func (w *Word[W]) Flip(bit int) *Word[W] {
	checkBit(bit, w.Len())
	w.bits ^= W(1) << bit
	return w
}

// SetTo sets or clears the given bit.
func (w *Word[W]) SetTo(bit int, value bool) *Word[W] {
	checkBit(bit, w.Len())
	mask := W(1) << bit
	w.bits = w.bits&^mask | fillValue[W](value)&mask
	return w
}

// All reports whether every bit is set.
func (w *Word[W]) All() bool {
	return w.bits == ^W(0)
}

// Any reports whether at least one bit is set.
func (w *Word[W]) Any() bool {
	return w.bits != 0
}

// None reports whether no bit is set.
func (w *Word[W]) None() bool {
	return w.bits == 0
}

// Eq reports whether both words hold identical bits.
func (w *Word[W]) Eq(rhs *Word[W]) bool {
	return w.bits == rhs.bits
}

// Disjoint reports whether the words share no set bits.
func (w *Word[W]) Disjoint(rhs *Word[W]) bool {
	return w.bits&rhs.bits == 0
}

// Subset reports whether every set bit is also set in rhs.
func (w *Word[W]) Subset(rhs *Word[W]) bool {
	return w.bits|rhs.bits == rhs.bits
}

// Superset reports whether every set bit of rhs is also set here.
func (w *Word[W]) Superset(rhs *Word[W]) bool {
	return w.bits|rhs.bits == w.bits
}

// Or unions rhs in.
func (w *Word[W]) Or(rhs *Word[W]) *Word[W] {
	w.bits |= rhs.bits
	return w
}

// And intersects with rhs.
func (w *Word[W]) And(rhs *Word[W]) *Word[W] {
	w.bits &= rhs.bits
	return w
}

// AndNot removes the bits of rhs.
func (w *Word[W]) AndNot(rhs *Word[W]) *Word[W] {
	w.bits &^= rhs.bits
	return w
}

// Xor forms the symmetric difference with rhs.
func (w *Word[W]) Xor(rhs *Word[W]) *Word[W] {
	w.bits ^= rhs.bits
	return w
}

// Not complements every bit.
func (w *Word[W]) Not() *Word[W] {
	w.bits = ^w.bits
	return w
}

// Mask selects bits from rhs where mask is set, keeping the receiver's
// bits elsewhere.
func (w *Word[W]) Mask(rhs, mask *Word[W]) *Word[W] {
	w.bits = w.bits&^mask.bits | rhs.bits&mask.bits
	return w
}

// Count returns the number of set bits.
func (w *Word[W]) Count() int {
	return bits.OnesCount64(uint64(w.bits))
}
