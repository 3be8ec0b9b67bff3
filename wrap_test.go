package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapForwarding(t *testing.T) {
	w := NewWrap(make(Slice[uint32], 2))

	w.Init(true).Reset(5).Flip(40)
	require.Equal(t, 64, w.Len())
	require.False(t, w.Test(5))
	require.False(t, w.Test(40))
	require.Equal(t, 62, w.Count())

	other := NewWrap(make(Slice[uint32], 2)).Init(false).Set(5)
	w.Or(other)
	require.True(t, w.Test(5))

	require.True(t, w.Superset(other))
	require.False(t, w.Disjoint(other))

	// Mutations are visible through the inner container.
	require.True(t, w.Inner.Test(5))
}

func TestWrapMismatchedInner(t *testing.T) {
	a := NewWrap(make(Slice[uint32], 2))
	b := NewWrap(make(Slice[uint32], 4))
	requirePanicsErr(t, ErrLengthMismatch, func() { a.Xor(b) })
}
