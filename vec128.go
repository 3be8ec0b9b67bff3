package bitset

// 128-bit block backends, one per lane width. Semantics are identical
// to Slice; see vec.go for the block/lane layout.

// Vec128x8 is a bit set over 128-bit blocks of 16 8-bit lanes.
type Vec128x8 [][16]uint8

func (v Vec128x8) Len() int {
	return len(v) * 128
}

func (v Vec128x8) Init(value bool) Vec128x8 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec128x8) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 16)
	return v[block][lane]&mask != 0
}

func (v Vec128x8) Set(bit int) Vec128x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 16)
	v[block][lane] |= mask
	return v
}

func (v Vec128x8) Reset(bit int) Vec128x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 16)
	v[block][lane] &^= mask
	return v
}

func (v Vec128x8) Flip(bit int) Vec128x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 16)
	v[block][lane] ^= mask
	return v
}

func (v Vec128x8) SetTo(bit int, value bool) Vec128x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 16)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint8](value)&mask
	return v
}

func (v Vec128x8) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x8) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec128x8) None() bool {
	return !v.Any()
}

func (v Vec128x8) Eq(rhs Vec128x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x8) Disjoint(rhs Vec128x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x8) Subset(rhs Vec128x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x8) Superset(rhs Vec128x8) bool {
	return rhs.Subset(v)
}

func (v Vec128x8) Or(rhs Vec128x8) Vec128x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x8) And(rhs Vec128x8) Vec128x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x8) AndNot(rhs Vec128x8) Vec128x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x8) Xor(rhs Vec128x8) Vec128x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x8) Not() Vec128x8 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec128x8) Mask(rhs, mask Vec128x8) Vec128x8 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec128x8) Count() int {
	var acc [16]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec128x16 is a bit set over 128-bit blocks of 8 16-bit lanes.
type Vec128x16 [][8]uint16

func (v Vec128x16) Len() int {
	return len(v) * 128
}

func (v Vec128x16) Init(value bool) Vec128x16 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec128x16) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 8)
	return v[block][lane]&mask != 0
}

func (v Vec128x16) Set(bit int) Vec128x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 8)
	v[block][lane] |= mask
	return v
}

func (v Vec128x16) Reset(bit int) Vec128x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 8)
	v[block][lane] &^= mask
	return v
}

func (v Vec128x16) Flip(bit int) Vec128x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 8)
	v[block][lane] ^= mask
	return v
}

func (v Vec128x16) SetTo(bit int, value bool) Vec128x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 8)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint16](value)&mask
	return v
}

func (v Vec128x16) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x16) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec128x16) None() bool {
	return !v.Any()
}

func (v Vec128x16) Eq(rhs Vec128x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x16) Disjoint(rhs Vec128x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x16) Subset(rhs Vec128x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x16) Superset(rhs Vec128x16) bool {
	return rhs.Subset(v)
}

func (v Vec128x16) Or(rhs Vec128x16) Vec128x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x16) And(rhs Vec128x16) Vec128x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x16) AndNot(rhs Vec128x16) Vec128x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x16) Xor(rhs Vec128x16) Vec128x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x16) Not() Vec128x16 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec128x16) Mask(rhs, mask Vec128x16) Vec128x16 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec128x16) Count() int {
	var acc [8]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec128x32 is a bit set over 128-bit blocks of 4 32-bit lanes.
type Vec128x32 [][4]uint32

func (v Vec128x32) Len() int {
	return len(v) * 128
}

func (v Vec128x32) Init(value bool) Vec128x32 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec128x32) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 4)
	return v[block][lane]&mask != 0
}

func (v Vec128x32) Set(bit int) Vec128x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 4)
	v[block][lane] |= mask
	return v
}

func (v Vec128x32) Reset(bit int) Vec128x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 4)
	v[block][lane] &^= mask
	return v
}

func (v Vec128x32) Flip(bit int) Vec128x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 4)
	v[block][lane] ^= mask
	return v
}

func (v Vec128x32) SetTo(bit int, value bool) Vec128x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 4)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint32](value)&mask
	return v
}

func (v Vec128x32) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x32) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec128x32) None() bool {
	return !v.Any()
}

func (v Vec128x32) Eq(rhs Vec128x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x32) Disjoint(rhs Vec128x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x32) Subset(rhs Vec128x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x32) Superset(rhs Vec128x32) bool {
	return rhs.Subset(v)
}

func (v Vec128x32) Or(rhs Vec128x32) Vec128x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x32) And(rhs Vec128x32) Vec128x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x32) AndNot(rhs Vec128x32) Vec128x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x32) Xor(rhs Vec128x32) Vec128x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x32) Not() Vec128x32 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec128x32) Mask(rhs, mask Vec128x32) Vec128x32 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec128x32) Count() int {
	var acc [4]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec128x64 is a bit set over 128-bit blocks of 2 64-bit lanes.
type Vec128x64 [][2]uint64

func (v Vec128x64) Len() int {
	return len(v) * 128
}

func (v Vec128x64) Init(value bool) Vec128x64 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec128x64) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 2)
	return v[block][lane]&mask != 0
}

func (v Vec128x64) Set(bit int) Vec128x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 2)
	v[block][lane] |= mask
	return v
}

func (v Vec128x64) Reset(bit int) Vec128x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 2)
	v[block][lane] &^= mask
	return v
}

func (v Vec128x64) Flip(bit int) Vec128x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 2)
	v[block][lane] ^= mask
	return v
}

func (v Vec128x64) SetTo(bit int, value bool) Vec128x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 2)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint64](value)&mask
	return v
}

func (v Vec128x64) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x64) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec128x64) None() bool {
	return !v.Any()
}

func (v Vec128x64) Eq(rhs Vec128x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x64) Disjoint(rhs Vec128x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x64) Subset(rhs Vec128x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec128x64) Superset(rhs Vec128x64) bool {
	return rhs.Subset(v)
}

func (v Vec128x64) Or(rhs Vec128x64) Vec128x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x64) And(rhs Vec128x64) Vec128x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x64) AndNot(rhs Vec128x64) Vec128x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x64) Xor(rhs Vec128x64) Vec128x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec128x64) Not() Vec128x64 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec128x64) Mask(rhs, mask Vec128x64) Vec128x64 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec128x64) Count() int {
	var acc [2]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}
