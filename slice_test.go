package bitset

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

// Bit i must land in the same memory position whether the storage is
// four bytes or one 32-bit word (little-endian bit convention).
func TestSliceWordLayoutParity(t *testing.T) {
	for i := 0; i < 32; i++ {
		bytes := With(make(Slice[uint8], 4), i)
		word := With(NewWord(uint32(0)), i)
		require.Equal(t, word.Bits(), binary.LittleEndian.Uint32(bytes), "bit %d", i)
	}
}

func TestSliceLengths(t *testing.T) {
	require.Equal(t, 0, Slice[uint64](nil).Len())
	require.Equal(t, 24, make(Slice[uint8], 3).Len())
	require.Equal(t, 96, make(Slice[uint16], 6).Len())
	require.Equal(t, 64, make(Slice[uint32], 2).Len())
	require.Equal(t, 256, make(Slice[uint64], 4).Len())
}

func TestSliceEmptyAll(t *testing.T) {
	// Vacuous truth on a zero-length container.
	empty := Slice[uint64]{}
	require.True(t, empty.All())
	require.False(t, empty.Any())
	require.True(t, empty.None())
	require.Equal(t, 0, empty.Count())
}

func TestSliceWordAddressing(t *testing.T) {
	s := make(Slice[uint16], 4)
	s.Set(0).Set(15).Set(16).Set(63)

	require.Equal(t, uint16(1)|uint16(1)<<15, s[0])
	require.Equal(t, uint16(1), s[1])
	require.Equal(t, uint16(0), s[2])
	require.Equal(t, uint16(1)<<15, s[3])
}

func TestSliceLengthMismatch(t *testing.T) {
	a := make(Slice[uint64], 2)
	b := make(Slice[uint64], 3)

	for name, fn := range map[string]func(){
		"Or":       func() { a.Or(b) },
		"And":      func() { a.And(b) },
		"AndNot":   func() { a.AndNot(b) },
		"Xor":      func() { a.Xor(b) },
		"Eq":       func() { a.Eq(b) },
		"Disjoint": func() { a.Disjoint(b) },
		"Subset":   func() { a.Subset(b) },
		"Superset": func() { a.Superset(b) },
		"Mask":     func() { a.Mask(make(Slice[uint64], 2), b) },
	} {
		t.Run(name, func(t *testing.T) {
			requirePanicsErr(t, ErrLengthMismatch, fn)
		})
	}
}

func TestSliceChaining(t *testing.T) {
	s := make(Slice[uint32], 4)
	s.Init(true).Reset(13).Flip(42).Flip(42).SetTo(1, false)

	require.True(t, s.Test(42))
	require.False(t, s.Test(13))
	require.False(t, s.Test(1))
	require.Equal(t, 4*32-2, s.Count())
}

func TestSliceConvenience(t *testing.T) {
	primes := With(make(Slice[uint8], 4), 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31)
	require.Equal(t, 11, primes.Count())

	merged := Union(make(Slice[uint8], 4),
		Slice[uint8]{0x01, 0x01, 0x01, 0x01},
		Slice[uint8]{0x10, 0x10, 0x10, 0x10},
	)
	require.Equal(t, Slice[uint8]{0x11, 0x11, 0x11, 0x11}, merged)
}
