package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSparseScenarioFarBit(t *testing.T) {
	s := Sparse[uint64]{}
	s.Set(1_000_000)

	require.Equal(t, 1, s.Count())
	require.True(t, s.Test(1_000_000))
	require.False(t, s.Test(0))
	require.True(t, s.Any())
	require.False(t, s.All())
	require.Len(t, s, 1)
	require.Equal(t, Unbounded, s.Len())
}

func TestSparseLazyAllocation(t *testing.T) {
	s := Sparse[uint32]{}

	// Read-class access never allocates.
	require.False(t, s.Test(500))
	s.Reset(500)
	require.Empty(t, s)

	// Set-class access allocates exactly the addressed word.
	s.Set(500)
	require.Len(t, s, 1)
	s.Flip(501)
	require.Len(t, s, 1) // same word

	// Words stay allocated after their bits are cleared.
	s.Reset(500).Reset(501)
	require.Len(t, s, 1)
	require.False(t, s.Any())
	require.Equal(t, 0, s.Count())
}

func TestSparseInit(t *testing.T) {
	s := Sparse[uint64]{}
	s.Set(3).Set(100_000)
	require.Len(t, s, 2)

	s.Init(false)
	require.Empty(t, s)
	require.False(t, s.Any())

	requirePanicsErr(t, ErrUnbounded, func() { s.Init(true) })
	requirePanicsErr(t, ErrUnbounded, func() { s.Not() })
}

func TestSparseDefaultZeroComparisons(t *testing.T) {
	a := Sparse[uint64]{}
	b := Sparse[uint64]{}

	// An allocated all-zero word equals an absent word.
	a.Set(70).Reset(70)
	require.True(t, a.Eq(b))
	require.True(t, b.Eq(a))
	require.True(t, a.Disjoint(b))
	require.True(t, a.Subset(b))
	require.True(t, a.Superset(b))

	a.Set(70)
	require.False(t, a.Eq(b))
	require.True(t, b.Subset(a))
	require.False(t, a.Subset(b))
	require.True(t, a.Superset(b))

	b.Set(70).Set(900)
	require.False(t, a.Disjoint(b))
	require.True(t, a.Subset(b))
}

func TestSparseAlgebra(t *testing.T) {
	t.Run("Or", func(t *testing.T) {
		a := With(Sparse[uint64]{}, 1, 65)
		b := With(Sparse[uint64]{}, 2, 129)
		a.Or(b)
		require.Equal(t, 4, a.Count())
		require.True(t, a.Test(1))
		require.True(t, a.Test(2))
		require.True(t, a.Test(65))
		require.True(t, a.Test(129))
		require.Len(t, a, 3)
	})

	t.Run("Xor", func(t *testing.T) {
		a := With(Sparse[uint64]{}, 1, 2, 65)
		b := With(Sparse[uint64]{}, 2, 129)
		a.Xor(b)
		require.True(t, a.Test(1))
		require.False(t, a.Test(2))
		require.True(t, a.Test(65))
		require.True(t, a.Test(129))
		require.Equal(t, 3, a.Count())

		// Xor with itself clears everything but keeps words allocated.
		a.Xor(a)
		require.Equal(t, 0, a.Count())
		require.NotEmpty(t, a)
	})

	t.Run("AndLeavesAbsentKeysUntouched", func(t *testing.T) {
		a := With(Sparse[uint64]{}, 1, 65)
		b := With(Sparse[uint64]{}, 1)
		a.And(b)
		require.True(t, a.Test(1))
		// Word 1 has no counterpart in b and is left as-is.
		require.True(t, a.Test(65))
	})

	t.Run("AndNot", func(t *testing.T) {
		a := With(Sparse[uint64]{}, 1, 2, 65)
		b := With(Sparse[uint64]{}, 1, 130)
		a.AndNot(b)
		require.False(t, a.Test(1))
		require.True(t, a.Test(2))
		require.True(t, a.Test(65)) // word 1 absent in b, untouched
	})

	t.Run("Mask", func(t *testing.T) {
		a := With(Sparse[uint8]{}, 0, 1)
		b := With(Sparse[uint8]{}, 1, 2, 17)
		m := With(Sparse[uint8]{}, 1, 2, 3, 16, 17)

		a.Mask(b, m)

		require.True(t, a.Test(0))  // mask clear, kept
		require.True(t, a.Test(1))  // mask set, from b
		require.True(t, a.Test(2))  // mask set, from b
		require.False(t, a.Test(3)) // mask set, b clear
		require.True(t, a.Test(17)) // lazily allocated word
		require.False(t, a.Test(16))
	})
}

func TestSparseWordAddressing(t *testing.T) {
	s := Sparse[uint8]{}
	s.Set(0).Set(7).Set(8).Set(1_000_003)

	require.Equal(t, uint8(0x81), s[0])
	require.Equal(t, uint8(0x01), s[1])
	require.Equal(t, uint8(1)<<(1_000_003%8), s[1_000_003/8])
}

func TestSparseFormatUnsupported(t *testing.T) {
	s := With(Sparse[uint64]{}, 3)
	requirePanicsErr(t, ErrUnbounded, func() { BinaryString(s) })
	requirePanicsErr(t, ErrUnbounded, func() { HexString(s) })
}

func TestSparseNegativePosition(t *testing.T) {
	s := Sparse[uint64]{}
	requirePanicsErr(t, ErrBitRange, func() { s.Set(-1) })
}
