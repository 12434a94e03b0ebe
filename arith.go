package wideint

// addLimbs sets dst to l + r and returns the carry out of the top limb. dst
// may alias either operand.
//
// Each limb can carry for two independent reasons: l[i] + r[i] wrapped, or
// adding the incoming carry to that sum wrapped (only possible when the sum
// is all ones). Both are checked and combined.
func addLimbs[L Limb](dst, l, r []L) (carry L) {
	for i := range dst {
		li := l[i]
		sum := li + r[i]
		c1 := sum < li
		out := sum + carry
		c2 := out < sum
		dst[i] = out
		if c1 || c2 {
			carry = 1
		} else {
			carry = 0
		}
	}
	return carry
}

// subLimbs sets dst to l - r and returns the borrow out of the top limb. dst
// may alias either operand.
func subLimbs[L Limb](dst, l, r []L) (borrow L) {
	for i := range dst {
		li := l[i]
		diff := li - r[i]
		b1 := diff > li
		out := diff - borrow
		b2 := out > diff
		dst[i] = out
		if b1 || b2 {
			borrow = 1
		} else {
			borrow = 0
		}
	}
	return borrow
}

// addLimbAt adds v into x at limb index idx and ripples the carry upwards.
// Anything carried past the top limb is dropped.
func addLimbAt[L Limb](x []L, idx int, v L) {
	for ; idx < len(x) && v != 0; idx++ {
		prev := x[idx]
		x[idx] = prev + v
		if x[idx] >= prev {
			return
		}
		v = 1
	}
}

func incLimbs[L Limb](dst, src []L) {
	copy(dst, src)
	addLimbAt(dst, 0, 1)
}

func decLimbs[L Limb](dst, src []L) {
	copy(dst, src)
	for i := range dst {
		dst[i]--
		if dst[i] != ^L(0) {
			return
		}
	}
}

// negLimbs sets dst to the two's complement of src, ~src + 1.
func negLimbs[L Limb](dst, src []L) {
	notLimbs(dst, src)
	addLimbAt(dst, 0, 1)
}
