package bitset

// Slice is a bit set over a flat slice of words, addressed linearly: bit
// i lives in word i/wordBits at in-word position i%wordBits. The slice is
// caller-owned; no operation grows or shrinks it.
type Slice[W Uint] []W

// Len returns the total number of addressable bits.
func (s Slice[W]) Len() int {
	return len(s) * wordBits[W]()
}

// Init sets every bit to value.
func (s Slice[W]) Init(value bool) Slice[W] {
	fillWords(s, value)
	return s
}

// split resolves a bit position into its word index and in-word mask.
func (s Slice[W]) split(bit int) (int, W) {
	checkBit(bit, s.Len())
	wb := wordBits[W]()
	return bit / wb, W(1) << (bit % wb)
}

// Test reports whether the given bit is set.
func (s Slice[W]) Test(bit int) bool {
	word, mask := s.split(bit)
	return s[word]&mask != 0
}

// Set sets the given bit.
func (s Slice[W]) Set(bit int) Slice[W] {
	word, mask := s.split(bit)
	s[word] |= mask
	return s
}

// Reset clears the given bit.
func (s Slice[W]) Reset(bit int) Slice[W] {
	word, mask := s.split(bit)
	s[word] &^= mask
	return s
}

// Flip inverts the given bit.
func (s Slice[W]) Flip(bit int) Slice[W] {
	word, mask := s.split(bit)
	s[word] ^= mask
	return s
}

// SetTo sets or clears the given bit.
func (s Slice[W]) SetTo(bit int, value bool) Slice[W] {
	word, mask := s.split(bit)
	s[word] = s[word]&^mask | fillValue[W](value)&mask
	return s
}

// All reports whether every bit is set. Vacuously true for an empty
// slice.
func (s Slice[W]) All() bool {
	for i := range s {
		if s[i] != ^W(0) {
			return false
		}
	}
	return true
}

// Any reports whether at least one bit is set.
func (s Slice[W]) Any() bool {
	for i := range s {
		if s[i] != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (s Slice[W]) None() bool {
	return !s.Any()
}

// Eq reports whether both slices hold identical bits.
func (s Slice[W]) Eq(rhs Slice[W]) bool {
	checkLen(len(s), len(rhs))
	for i := range s {
		if s[i] != rhs[i] {
			return false
		}
	}
	return true
}

// Disjoint reports whether the slices share no set bits.
func (s Slice[W]) Disjoint(rhs Slice[W]) bool {
	checkLen(len(s), len(rhs))
	for i := range s {
		if s[i]&rhs[i] != 0 {
			return false
		}
	}
	return true
}

// Subset reports whether every set bit is also set in rhs.
func (s Slice[W]) Subset(rhs Slice[W]) bool {
	checkLen(len(s), len(rhs))
	for i := range s {
		if s[i]&^rhs[i] != 0 {
			return false
		}
	}
	return true
}

// Superset reports whether every set bit of rhs is also set here.
func (s Slice[W]) Superset(rhs Slice[W]) bool {
	return rhs.Subset(s)
}

// Or unions rhs in.
func (s Slice[W]) Or(rhs Slice[W]) Slice[W] {
	checkLen(len(s), len(rhs))
	orWords(s, rhs)
	return s
}

// And intersects with rhs.
func (s Slice[W]) And(rhs Slice[W]) Slice[W] {
	checkLen(len(s), len(rhs))
	andWords(s, rhs)
	return s
}

// AndNot removes the bits of rhs.
func (s Slice[W]) AndNot(rhs Slice[W]) Slice[W] {
	checkLen(len(s), len(rhs))
	andNotWords(s, rhs)
	return s
}

// Xor forms the symmetric difference with rhs.
func (s Slice[W]) Xor(rhs Slice[W]) Slice[W] {
	checkLen(len(s), len(rhs))
	xorWords(s, rhs)
	return s
}

// Not complements every bit.
func (s Slice[W]) Not() Slice[W] {
	notWords(s)
	return s
}

// Mask selects bits from rhs where mask is set, keeping the receiver's
// bits elsewhere. All three operands must have equal length.
func (s Slice[W]) Mask(rhs, mask Slice[W]) Slice[W] {
	checkLen(len(s), len(rhs))
	checkLen(len(s), len(mask))
	maskWords(s, rhs, mask)
	return s
}

// Count returns the number of set bits.
func (s Slice[W]) Count() int {
	return popcountWords(s)
}
