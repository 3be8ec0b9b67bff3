package bitset

import "math/bits"

// Generic word kernels shared by the flat and vector-shaped backends.
// The binary kernels are unrolled four words at a time; the vector
// backends additionally call them per block on fixed-size lane arrays,
// where the statically known trip count lets the compiler vectorize.

// wordBits returns the width of W in bits.
func wordBits[W Uint]() int {
	return bits.OnesCount64(uint64(^W(0)))
}

// fillValue returns the all-ones or all-zero word.
func fillValue[W Uint](value bool) W {
	if value {
		return ^W(0)
	}
	return 0
}

func fillWords[W Uint](dst []W, value bool) {
	v := fillValue[W](value)
	for i := range dst {
		dst[i] = v
	}
}

func orWords[W Uint](dst, src []W) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func andWords[W Uint](dst, src []W) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWords[W Uint](dst, src []W) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

func xorWords[W Uint](dst, src []W) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

func notWords[W Uint](dst []W) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

func maskWords[W Uint](dst, src, mask []W) {
	for i := range dst {
		dst[i] = dst[i]&^mask[i] | src[i]&mask[i]
	}
}

func popcountWords[W Uint](words []W) int {
	result := 0
	for i := range words {
		result += bits.OnesCount64(uint64(words[i]))
	}
	return result
}

// Branch-free per-block predicates for the vector-shaped backends: each
// accumulates across all lanes and compares once, keeping the per-lane
// access pattern unconditional.

func allLanes[W Uint](lanes []W) bool {
	acc := ^W(0)
	for i := range lanes {
		acc &= lanes[i]
	}
	return acc == ^W(0)
}

func anyLanes[W Uint](lanes []W) bool {
	var acc W
	for i := range lanes {
		acc |= lanes[i]
	}
	return acc != 0
}

func eqLanes[W Uint](a, b []W) bool {
	var acc W
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return acc == 0
}

func disjointLanes[W Uint](a, b []W) bool {
	var acc W
	for i := range a {
		acc |= a[i] & b[i]
	}
	return acc == 0
}

func subsetLanes[W Uint](a, b []W) bool {
	var acc W
	for i := range a {
		acc |= a[i] &^ b[i]
	}
	return acc == 0
}

// countLanes adds each lane's population count into the matching slot of
// the per-lane accumulator.
func countLanes[W Uint](acc []int, lanes []W) {
	for i := range lanes {
		acc[i] += bits.OnesCount64(uint64(lanes[i]))
	}
}

func sumInts(acc []int) int {
	total := 0
	for _, n := range acc {
		total += n
	}
	return total
}
