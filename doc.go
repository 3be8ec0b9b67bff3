// Package bitset provides a uniform bit manipulation contract over
// heterogeneous storage shapes.
//
// The same operation set — test, mutate, boolean reduction, set algebra,
// population count and formatting — applies identically whether the bits
// live in a single machine word, a flat slice of words, a vector-shaped
// slice of fixed-size lane arrays, or a sparse key-to-word map. Bit 0 is
// the least significant bit of word 0 (little-endian bit convention).
//
// # Quick Start
//
//	bits := make(bitset.Slice[uint32], 4)
//	bits.Len() // 4 * 32
//
//	bits.Init(true)   // set all bits
//	bits.All()        // true
//
//	bits.Reset(13)
//	bits.Flip(42).Flip(42) // no change
//	bits.SetTo(1, false)
//
//	bits.Test(42)  // true
//	bits.Test(13)  // false
//	bits.Count()   // 4*32 - 2
//
// The vector-shaped backends present the same contract over blocks sized
// to hardware vector registers, giving the optimizer the opportunity to
// map each block operation onto a single SIMD instruction:
//
//	a := make(bitset.Vec128x32, 16)
//	b := make(bitset.Vec128x32, 16)
//	a.Init(false).Or(b).Xor(b).Not()
//
// The sparse backend represents a virtually unbounded, default-zero bit
// domain:
//
//	s := bitset.Sparse[uint64]{}
//	s.Set(1_000_000)
//	s.Count() // 1
//
// All containers are caller-owned and all operations mutate in place;
// the package performs no synchronization. Contract violations (length
// mismatches, unrepresentable sparse operations, out-of-range positions)
// panic with wrapped sentinel errors, since they signal caller bugs
// rather than runtime conditions.
package bitset
