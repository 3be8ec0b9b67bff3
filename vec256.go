package bitset

// 256-bit block backends, one per lane width. Semantics are identical
// to Slice; see vec.go for the block/lane layout.

// Vec256x8 is a bit set over 256-bit blocks of 32 8-bit lanes.
type Vec256x8 [][32]uint8

func (v Vec256x8) Len() int {
	return len(v) * 256
}

func (v Vec256x8) Init(value bool) Vec256x8 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec256x8) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 32)
	return v[block][lane]&mask != 0
}

func (v Vec256x8) Set(bit int) Vec256x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 32)
	v[block][lane] |= mask
	return v
}

func (v Vec256x8) Reset(bit int) Vec256x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 32)
	v[block][lane] &^= mask
	return v
}

func (v Vec256x8) Flip(bit int) Vec256x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 32)
	v[block][lane] ^= mask
	return v
}

func (v Vec256x8) SetTo(bit int, value bool) Vec256x8 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint8](bit, 32)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint8](value)&mask
	return v
}

func (v Vec256x8) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x8) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec256x8) None() bool {
	return !v.Any()
}

func (v Vec256x8) Eq(rhs Vec256x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x8) Disjoint(rhs Vec256x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x8) Subset(rhs Vec256x8) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x8) Superset(rhs Vec256x8) bool {
	return rhs.Subset(v)
}

func (v Vec256x8) Or(rhs Vec256x8) Vec256x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x8) And(rhs Vec256x8) Vec256x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x8) AndNot(rhs Vec256x8) Vec256x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x8) Xor(rhs Vec256x8) Vec256x8 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x8) Not() Vec256x8 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec256x8) Mask(rhs, mask Vec256x8) Vec256x8 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec256x8) Count() int {
	var acc [32]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec256x16 is a bit set over 256-bit blocks of 16 16-bit lanes.
type Vec256x16 [][16]uint16

func (v Vec256x16) Len() int {
	return len(v) * 256
}

func (v Vec256x16) Init(value bool) Vec256x16 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec256x16) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 16)
	return v[block][lane]&mask != 0
}

func (v Vec256x16) Set(bit int) Vec256x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 16)
	v[block][lane] |= mask
	return v
}

func (v Vec256x16) Reset(bit int) Vec256x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 16)
	v[block][lane] &^= mask
	return v
}

func (v Vec256x16) Flip(bit int) Vec256x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 16)
	v[block][lane] ^= mask
	return v
}

func (v Vec256x16) SetTo(bit int, value bool) Vec256x16 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint16](bit, 16)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint16](value)&mask
	return v
}

func (v Vec256x16) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x16) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec256x16) None() bool {
	return !v.Any()
}

func (v Vec256x16) Eq(rhs Vec256x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x16) Disjoint(rhs Vec256x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x16) Subset(rhs Vec256x16) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x16) Superset(rhs Vec256x16) bool {
	return rhs.Subset(v)
}

func (v Vec256x16) Or(rhs Vec256x16) Vec256x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x16) And(rhs Vec256x16) Vec256x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x16) AndNot(rhs Vec256x16) Vec256x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x16) Xor(rhs Vec256x16) Vec256x16 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x16) Not() Vec256x16 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec256x16) Mask(rhs, mask Vec256x16) Vec256x16 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec256x16) Count() int {
	var acc [16]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec256x32 is a bit set over 256-bit blocks of 8 32-bit lanes.
type Vec256x32 [][8]uint32

func (v Vec256x32) Len() int {
	return len(v) * 256
}

func (v Vec256x32) Init(value bool) Vec256x32 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec256x32) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 8)
	return v[block][lane]&mask != 0
}

func (v Vec256x32) Set(bit int) Vec256x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 8)
	v[block][lane] |= mask
	return v
}

func (v Vec256x32) Reset(bit int) Vec256x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 8)
	v[block][lane] &^= mask
	return v
}

func (v Vec256x32) Flip(bit int) Vec256x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 8)
	v[block][lane] ^= mask
	return v
}

func (v Vec256x32) SetTo(bit int, value bool) Vec256x32 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint32](bit, 8)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint32](value)&mask
	return v
}

func (v Vec256x32) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x32) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec256x32) None() bool {
	return !v.Any()
}

func (v Vec256x32) Eq(rhs Vec256x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x32) Disjoint(rhs Vec256x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x32) Subset(rhs Vec256x32) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x32) Superset(rhs Vec256x32) bool {
	return rhs.Subset(v)
}

func (v Vec256x32) Or(rhs Vec256x32) Vec256x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x32) And(rhs Vec256x32) Vec256x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x32) AndNot(rhs Vec256x32) Vec256x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x32) Xor(rhs Vec256x32) Vec256x32 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x32) Not() Vec256x32 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec256x32) Mask(rhs, mask Vec256x32) Vec256x32 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec256x32) Count() int {
	var acc [8]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}

// Vec256x64 is a bit set over 256-bit blocks of 4 64-bit lanes.
type Vec256x64 [][4]uint64

func (v Vec256x64) Len() int {
	return len(v) * 256
}

func (v Vec256x64) Init(value bool) Vec256x64 {
	for i := range v {
		fillWords(v[i][:], value)
	}
	return v
}

func (v Vec256x64) Test(bit int) bool {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 4)
	return v[block][lane]&mask != 0
}

func (v Vec256x64) Set(bit int) Vec256x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 4)
	v[block][lane] |= mask
	return v
}

func (v Vec256x64) Reset(bit int) Vec256x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 4)
	v[block][lane] &^= mask
	return v
}

func (v Vec256x64) Flip(bit int) Vec256x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 4)
	v[block][lane] ^= mask
	return v
}

func (v Vec256x64) SetTo(bit int, value bool) Vec256x64 {
	checkBit(bit, v.Len())
	block, lane, mask := vecSplit[uint64](bit, 4)
	v[block][lane] = v[block][lane]&^mask | fillValue[uint64](value)&mask
	return v
}

func (v Vec256x64) All() bool {
	for i := range v {
		if !allLanes(v[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x64) Any() bool {
	for i := range v {
		if anyLanes(v[i][:]) {
			return true
		}
	}
	return false
}

func (v Vec256x64) None() bool {
	return !v.Any()
}

func (v Vec256x64) Eq(rhs Vec256x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !eqLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x64) Disjoint(rhs Vec256x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !disjointLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x64) Subset(rhs Vec256x64) bool {
	checkLen(len(v), len(rhs))
	for i := range v {
		if !subsetLanes(v[i][:], rhs[i][:]) {
			return false
		}
	}
	return true
}

func (v Vec256x64) Superset(rhs Vec256x64) bool {
	return rhs.Subset(v)
}

func (v Vec256x64) Or(rhs Vec256x64) Vec256x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		orWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x64) And(rhs Vec256x64) Vec256x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x64) AndNot(rhs Vec256x64) Vec256x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		andNotWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x64) Xor(rhs Vec256x64) Vec256x64 {
	checkLen(len(v), len(rhs))
	for i := range v {
		xorWords(v[i][:], rhs[i][:])
	}
	return v
}

func (v Vec256x64) Not() Vec256x64 {
	for i := range v {
		notWords(v[i][:])
	}
	return v
}

func (v Vec256x64) Mask(rhs, mask Vec256x64) Vec256x64 {
	checkLen(len(v), len(rhs))
	checkLen(len(v), len(mask))
	for i := range v {
		maskWords(v[i][:], rhs[i][:], mask[i][:])
	}
	return v
}

func (v Vec256x64) Count() int {
	var acc [4]int
	for i := range v {
		countLanes(acc[:], v[i][:])
	}
	return sumInts(acc[:])
}
