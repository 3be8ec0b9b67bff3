package bitset

import (
	"fmt"
	"math/bits"
)

// Sparse is a bit set over a key-to-word map representing a virtually
// unbounded bit domain: bit i lives in the word stored under key
// i/wordBits, and absent keys read as all-zero words. Words are
// allocated lazily on the first set-class access and never released
// (resetting bits leaves their word in place).
//
// Operations without a finite representation — Init(true), Not, and
// formatting — panic with ErrUnbounded.
type Sparse[W Uint] map[int]W

// Len returns Unbounded: any bit position may be addressed.
func (s Sparse[W]) Len() int {
	return Unbounded
}

// Init with value false drops every stored word. Setting a virtually
// infinite domain to all ones is not representable; Init(true) panics
// with ErrUnbounded.
func (s Sparse[W]) Init(value bool) Sparse[W] {
	if value {
		panic(fmt.Errorf("%w: cannot set all bits", ErrUnbounded))
	}
	clear(s)
	return s
}

// split resolves a bit position into its word key and in-word mask.
func (s Sparse[W]) split(bit int) (int, W) {
	checkBit(bit, Unbounded)
	wb := wordBits[W]()
	return bit / wb, W(1) << (bit % wb)
}

// Test reports whether the given bit is set. Absent keys read as zero;
// no word is allocated.
func (s Sparse[W]) Test(bit int) bool {
	key, mask := s.split(bit)
	return s[key]&mask != 0
}

// Set sets the given bit, allocating its word if absent.
func (s Sparse[W]) Set(bit int) Sparse[W] {
	key, mask := s.split(bit)
	s[key] |= mask
	return s
}

// Reset clears the given bit. A no-op without allocation when the word
// is absent.
func (s Sparse[W]) Reset(bit int) Sparse[W] {
	key, mask := s.split(bit)
	if word, ok := s[key]; ok {
		s[key] = word &^ mask
	}
	return s
}

// Flip inverts the given bit, allocating its word if absent.
func (s Sparse[W]) Flip(bit int) Sparse[W] {
	key, mask := s.split(bit)
	s[key] ^= mask
	return s
}

// SetTo sets or clears the given bit.
func (s Sparse[W]) SetTo(bit int, value bool) Sparse[W] {
	if value {
		return s.Set(bit)
	}
	return s.Reset(bit)
}

// All returns false: a finite map can never cover an unbounded domain.
func (s Sparse[W]) All() bool {
	return false
}

// Any reports whether at least one stored word is nonzero.
func (s Sparse[W]) Any() bool {
	for _, word := range s {
		if word != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit is set.
func (s Sparse[W]) None() bool {
	return !s.Any()
}

// Eq reports whether both maps hold identical bits. Keys present in
// either map are compared against the other side's stored or implicit
// zero word.
func (s Sparse[W]) Eq(rhs Sparse[W]) bool {
	for key, word := range s {
		if word != rhs[key] {
			return false
		}
	}
	for key, word := range rhs {
		if word != s[key] {
			return false
		}
	}
	return true
}

// Disjoint reports whether the maps share no set bits.
func (s Sparse[W]) Disjoint(rhs Sparse[W]) bool {
	for key, word := range s {
		if word&rhs[key] != 0 {
			return false
		}
	}
	for key, word := range rhs {
		if word&s[key] != 0 {
			return false
		}
	}
	return true
}

// Subset reports whether every set bit is also set in rhs.
func (s Sparse[W]) Subset(rhs Sparse[W]) bool {
	for key, word := range s {
		if word&^rhs[key] != 0 {
			return false
		}
	}
	return true
}

// Superset reports whether every set bit of rhs is also set here.
func (s Sparse[W]) Superset(rhs Sparse[W]) bool {
	return rhs.Subset(s)
}

// Or unions rhs in, allocating words for keys only present in rhs.
func (s Sparse[W]) Or(rhs Sparse[W]) Sparse[W] {
	for key, word := range rhs {
		s[key] |= word
	}
	return s
}

// And intersects with rhs. Words whose key is absent from rhs are left
// unchanged rather than zeroed.
func (s Sparse[W]) And(rhs Sparse[W]) Sparse[W] {
	for key, word := range s {
		if other, ok := rhs[key]; ok {
			s[key] = word & other
		}
	}
	return s
}

// AndNot removes the bits of rhs. Words whose key is absent from rhs are
// left unchanged.
func (s Sparse[W]) AndNot(rhs Sparse[W]) Sparse[W] {
	for key, word := range s {
		if other, ok := rhs[key]; ok {
			s[key] = word &^ other
		}
	}
	return s
}

// Xor forms the symmetric difference with rhs, allocating words for keys
// only present in rhs.
func (s Sparse[W]) Xor(rhs Sparse[W]) Sparse[W] {
	for key, word := range rhs {
		s[key] ^= word
	}
	return s
}

// Not panics with ErrUnbounded: complementing an unbounded domain is not
// representable.
func (s Sparse[W]) Not() Sparse[W] {
	panic(fmt.Errorf("%w: cannot complement", ErrUnbounded))
}

// Mask selects bits from rhs where mask is set, keeping the receiver's
// bits elsewhere. Only keys present in mask are touched; the rhs side
// reads absent keys as zero.
func (s Sparse[W]) Mask(rhs, mask Sparse[W]) Sparse[W] {
	for key, m := range mask {
		s[key] = s[key]&^m | rhs[key]&m
	}
	return s
}

// Count returns the number of set bits across all stored words.
func (s Sparse[W]) Count() int {
	result := 0
	for _, word := range s {
		result += bits.OnesCount64(uint64(word))
	}
	return result
}
