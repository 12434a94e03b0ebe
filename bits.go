package wideint

import (
	"math/bits"
)

// limbLeadingZeros counts with the native instruction for the limb's width.
func limbLeadingZeros[L Limb](v L) uint {
	if limbBits[L]() == 32 {
		return uint(bits.LeadingZeros32(uint32(v)))
	}
	return uint(bits.LeadingZeros64(uint64(v)))
}

func limbTrailingZeros[L Limb](v L) uint {
	if limbBits[L]() == 32 {
		return uint(bits.TrailingZeros32(uint32(v)))
	}
	return uint(bits.TrailingZeros64(uint64(v)))
}

// msbLimbs returns the zero-based index of the highest set bit in x. A zero
// value returns 0, the same as a value of 1; callers that care must check
// isZeroLimbs first.
func msbLimbs[L Limb](x []L) uint {
	size := limbBits[L]()
	total := limbsBits(x)

	// Bits contributed by fully-zero limbs above the first nonzero one:
	var skipped uint
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return total - 1 - limbLeadingZeros(x[i]) - skipped
		}
		skipped += size
	}
	return 0
}

func leadingZerosLimbs[L Limb](x []L) uint {
	if isZeroLimbs(x) {
		return limbsBits(x)
	}
	return limbsBits(x) - 1 - msbLimbs(x)
}

func trailingZerosLimbs[L Limb](x []L) uint {
	size := limbBits[L]()
	for i, v := range x {
		if v != 0 {
			return uint(i)*size + limbTrailingZeros(v)
		}
	}
	return limbsBits(x)
}

func onesCountLimbs[L Limb](x []L) int {
	n := 0
	for _, v := range x {
		n += bits.OnesCount64(uint64(v))
	}
	return n
}

// bitAt returns the value of bit i. Bits past the end of x are 0.
func bitAt[L Limb](x []L, i uint) uint {
	size := limbBits[L]()
	idx := i / size
	if idx >= uint(len(x)) {
		return 0
	}
	return uint(x[idx]>>(i%size)) & 1
}

// setBitAt sets bit i of x to b (0 or 1). Bits past the end of x are
// ignored.
func setBitAt[L Limb](x []L, i uint, b uint) {
	size := limbBits[L]()
	idx := i / size
	if idx >= uint(len(x)) {
		return
	}
	mask := L(1) << (i % size)
	if b&1 == 0 {
		x[idx] &^= mask
	} else {
		x[idx] |= mask
	}
}
