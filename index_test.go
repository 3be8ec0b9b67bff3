package bitset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type capability uint8

const (
	capRead capability = iota
	capWrite
	capAdmin
)

func TestIndexAdaptation(t *testing.T) {
	caps := With(NewWord(uint8(0)), capRead, capAdmin)

	require.True(t, caps.Test(Position(capRead)))
	require.False(t, caps.Test(Position(capWrite)))
	require.True(t, caps.Test(Position(capAdmin)))
	require.Equal(t, 2, caps.Count())
}

func TestIndexKinds(t *testing.T) {
	require.Equal(t, 7, Position(int8(7)))
	require.Equal(t, 7, Position(uint64(7)))
	require.Equal(t, 7, Position(int32(7)))
	require.Equal(t, -1, Position(-1))

	type row int16
	s := With(make(Slice[uint64], 2), row(3), row(64))
	require.True(t, s.Test(3))
	require.True(t, s.Test(64))
}
