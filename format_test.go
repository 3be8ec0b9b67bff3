package bitset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryString(t *testing.T) {
	w := With(NewWord(uint8(0)), 2, 5)
	require.Equal(t, "00100100", BinaryString(w))

	s := With(make(Slice[uint8], 3), 0, 9)
	require.Equal(t, "10000000_01000000_00000000", BinaryString(s))

	require.Equal(t, "", BinaryString(Slice[uint64]{}))
}

func TestHexString(t *testing.T) {
	// Bit 0 renders as the high bit of the first digit pair.
	w := With(NewWord(uint8(0)), 0)
	require.Equal(t, "80", HexString(w))

	require.Equal(t, "24", HexString(With(NewWord(uint8(0)), 2, 5)))

	s := With(make(Slice[uint16], 1), 2, 5, 11)
	require.Equal(t, "2410", HexString(s))
	require.Equal(t, "2410", HexStringLower(s))

	full := make(Slice[uint8], 2).Init(true)
	require.Equal(t, "FFFF", HexString(full))
	require.Equal(t, "ffff", HexStringLower(full))
}

func TestAppendVariants(t *testing.T) {
	w := With(NewWord(uint16(0)), 2, 5)

	buf := AppendBinary([]byte("bits="), w, '.')
	require.Equal(t, "bits=00100100.00000000", string(buf))

	buf = AppendHex([]byte("0x"), w, false)
	require.Equal(t, "0x2400", string(buf))
}

func TestFormatVerbs(t *testing.T) {
	w := With(NewWord(uint16(0)), 2, 5, 10)

	require.Equal(t, "00100100_00100000", fmt.Sprintf("%s", Format(w)))
	require.Equal(t, "00100100_00100000", fmt.Sprintf("%v", Format(w)))
	require.Equal(t, "2420", fmt.Sprintf("%x", Format(w)))
	require.Equal(t, "2420", fmt.Sprintf("%X", Format(w)))
	require.Equal(t, `"2420"`, fmt.Sprintf("%q", Format(w)))
}

func TestFormatBackendIndependent(t *testing.T) {
	// The renderers consume only Test/Len, so equal bits format equally
	// regardless of backend shape.
	pattern := func(i int) bool { return i%5 == 1 }

	word := fill(NewWord(uint64(0)), pattern)
	slice8 := fill(make(Slice[uint8], 8), pattern)
	vec := fill(make(Vec128x16, 1), func(i int) bool { return i < 64 && pattern(i) })

	require.Equal(t, BinaryString(word), BinaryString(slice8))
	require.Equal(t, HexString(word), HexString(slice8))
	require.Equal(t, BinaryString(word)+"_"+BinaryString(fill(make(Slice[uint8], 8), func(int) bool { return false })), BinaryString(vec))
}
