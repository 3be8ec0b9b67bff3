package bitset

// Index is the constraint for ordinal-like key types usable as bit
// positions: any signed or unsigned integer kind, including named types
// wrapping one. Negative values are rejected by the position validation
// of the backend they are used against.
//
//	type Capability uint8
//
//	const (
//		CapRead Capability = iota
//		CapWrite
//		CapAdmin
//	)
//
//	caps := bitset.With(bitset.NewWord(uint8(0)), CapRead, CapAdmin)
type Index interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Position converts an ordinal-like key into a plain bit position.
func Position[I Index](i I) int {
	return int(i)
}
