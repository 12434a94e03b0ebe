package wideint

// mulLimbs sets dst to the low len(dst) limbs of l * r. dst must not alias l
// or r.
//
// Schoolbook multiplication over half-limbs: every limb of each operand is
// split into a low and a high half so that the product of any two halves fits
// in a single limb. Half-limb k of the result sits at limb k/2, shifted up by
// half a limb when k is odd. Products landing at or beyond len(dst) limbs are
// dropped, which gives wraparound modulo 2^bit_size.
func mulLimbs[L Limb](dst, l, r []L) {
	half := limbBits[L]() / 2
	mask := ^L(0) >> half

	n := len(dst)
	halves := n * 2

	var lh, rh [scratchLimbs * 2]L
	for i := 0; i < n; i++ {
		lh[i*2], lh[i*2+1] = l[i]&mask, l[i]>>half
		rh[i*2], rh[i*2+1] = r[i]&mask, r[i]>>half
	}

	zeroLimbs(dst)

	for i := 0; i < halves; i++ {
		if lh[i] == 0 {
			continue
		}
		for j := 0; i+j < halves; j++ {
			if rh[j] == 0 {
				continue
			}
			p := lh[i] * rh[j]

			k := i + j
			idx := k >> 1
			if k&1 == 0 {
				addLimbAt(dst, idx, p)
			} else {
				// The low half of p lands in the top half of limb idx, the high
				// half spills into the bottom of limb idx+1. Both ripple their
				// own carry.
				addLimbAt(dst, idx, p<<half)
				addLimbAt(dst, idx+1, p>>half)
			}
		}
	}
}

// expLimbs sets dst to x**n by squaring, wrapping modulo 2^bit_size. dst must
// not alias x.
func expLimbs[L Limb](dst, x []L, n uint64) {
	ln := len(dst)

	var base, acc, tmp [maxLimbs]L
	copy(base[:ln], x)
	setUint64(acc[:ln], 1)

	for n > 0 {
		if n&1 == 1 {
			mulLimbs(tmp[:ln], acc[:ln], base[:ln])
			copy(acc[:ln], tmp[:ln])
		}
		n >>= 1
		if n > 0 {
			mulLimbs(tmp[:ln], base[:ln], base[:ln])
			copy(base[:ln], tmp[:ln])
		}
	}
	copy(dst, acc[:ln])
}
