package bitset

// Vector-shaped backends: bit sets over slices of fixed-size lane arrays
// whose total width matches a hardware vector register (128 or 256
// bits). The fixed block shape gives the optimizer the opportunity to
// map each per-block kernel call onto a single vector instruction, with
// no platform-specific code. Multi-element operations touch every lane
// of every block unconditionally; only the single-bit operations address
// one lane. Operation semantics are documented on Bits.
//
// Bit resolution is three-level: block = bit / blockBits,
// lane = (bit / laneBits) % lanes, in-lane bit = bit % laneBits.

// vecSplit resolves a bit position into block index, lane index and
// in-lane mask for a backend with the given number of lanes per block.
func vecSplit[W Uint](bit, lanes int) (block, lane int, mask W) {
	laneBits := wordBits[W]()
	block = bit / (laneBits * lanes)
	lane = (bit / laneBits) % lanes
	mask = W(1) << (bit % laneBits)
	return block, lane, mask
}
