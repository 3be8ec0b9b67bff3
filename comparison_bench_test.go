package bitset_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	bloomset "github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitset"
)

// Comparative benchmarks: Slice / vector backends vs roaring and
// bits-and-blooms.
// Run with: go test -bench=Comparison -benchmem .

const benchBits = 1 << 16

func denseSlice() bitset.Slice[uint64] {
	s := make(bitset.Slice[uint64], benchBits/64)
	for i := 0; i < benchBits; i += 3 {
		s.Set(i)
	}
	return s
}

func denseVec() bitset.Vec256x64 {
	v := make(bitset.Vec256x64, benchBits/256)
	for i := 0; i < benchBits; i += 3 {
		v.Set(i)
	}
	return v
}

// ==============================================================================
// OR comparison
// ==============================================================================

func BenchmarkComparison_Or_Slice(b *testing.B) {
	x := denseSlice()
	y := denseSlice()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.Or(y)
	}
}

func BenchmarkComparison_Or_Vec256x64(b *testing.B) {
	x := denseVec()
	y := denseVec()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.Or(y)
	}
}

func BenchmarkComparison_Or_Roaring(b *testing.B) {
	x := roaring.New()
	y := roaring.New()
	for i := 0; i < benchBits; i += 3 {
		x.Add(uint32(i))
		y.Add(uint32(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.Or(y)
	}
}

func BenchmarkComparison_Or_BloomSet(b *testing.B) {
	x := bloomset.New(benchBits)
	y := bloomset.New(benchBits)
	for i := 0; i < benchBits; i += 3 {
		x.Set(uint(i))
		y.Set(uint(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		x.InPlaceUnion(y)
	}
}

// ==============================================================================
// Popcount comparison
// ==============================================================================

func BenchmarkComparison_Count_Slice(b *testing.B) {
	s := denseSlice()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Count()
	}
}

func BenchmarkComparison_Count_Vec256x64(b *testing.B) {
	v := denseVec()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = v.Count()
	}
}

func BenchmarkComparison_Count_Roaring(b *testing.B) {
	rb := roaring.New()
	for i := 0; i < benchBits; i += 3 {
		rb.Add(uint32(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = rb.GetCardinality()
	}
}

func BenchmarkComparison_Count_BloomSet(b *testing.B) {
	s := bloomset.New(benchBits)
	for i := 0; i < benchBits; i += 3 {
		s.Set(uint(i))
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Count()
	}
}

// ==============================================================================
// Single-bit access
// ==============================================================================

func BenchmarkComparison_Set_Slice(b *testing.B) {
	s := make(bitset.Slice[uint64], benchBits/64)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Set(i % benchBits)
	}
}

func BenchmarkComparison_Set_Sparse(b *testing.B) {
	s := bitset.Sparse[uint64]{}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Set(i % benchBits)
	}
}

func BenchmarkComparison_Set_Roaring(b *testing.B) {
	rb := roaring.New()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rb.Add(uint32(i % benchBits))
	}
}
