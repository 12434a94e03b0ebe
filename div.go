package wideint

// quoRemLimbs sets q and r to the quotient and remainder of u / d using
// restoring binary long division. q and r must not alias u or d, or each
// other.
func quoRemLimbs[L Limb](q, r, u, d []L) error {
	if isZeroLimbs(d) {
		return ErrDivisionByZero
	}

	zeroLimbs(q)
	if cmpLimbs(u, d) < 0 {
		copy(r, u) // it's 100% remainder
		return nil
	}

	dMSB := msbLimbs(d)

	// Power-of-two divisor: a shift and a mask.
	if onesCountLimbs(d) == 1 {
		rshLimbs(q, u, dMSB)
		decLimbs(r, d)
		andLimbs(r, r, u)
		return nil
	}

	n := len(u)
	shift := msbLimbs(u) - dMSB

	// r is the working dividend; whatever is left in it once the probe bit
	// has been shifted out is the remainder.
	copy(r, u)

	var byBuf [maxLimbs]L
	by := byBuf[:n]
	lshLimbs(by, d, shift)

	// The probe bit walks down from the alignment shift to bit 0 in step with
	// the divisor copy.
	probe := int(shift)
	for probe >= 0 {
		if cmpLimbs(r, by) >= 0 {
			setBitAt(q, uint(probe), 1)
			subLimbs(r, r, by)
		}
		rshLimbs(by, by, 1)
		probe--
	}
	return nil
}

// quoRemSignedLimbs performs truncated division (like Go) on two's
// complement values: the quotient rounds toward zero and the remainder takes
// the sign of the dividend.
func quoRemSignedLimbs[L Limb](q, r, u, d []L) error {
	n := len(u)

	var ua, da [maxLimbs]L
	uAbs, dAbs := ua[:n], da[:n]

	uNeg, dNeg := isNegLimbs(u), isNegLimbs(d)
	if uNeg {
		negLimbs(uAbs, u)
	} else {
		copy(uAbs, u)
	}
	if dNeg {
		negLimbs(dAbs, d)
	} else {
		copy(dAbs, d)
	}

	// The minimum value negates to itself; as an unsigned magnitude it is
	// still exactly 2^(bit_size-1), so the unsigned division is correct.
	if err := quoRemLimbs(q, r, uAbs, dAbs); err != nil {
		return err
	}
	if uNeg != dNeg {
		negLimbs(q, q)
	}
	if uNeg {
		negLimbs(r, r)
	}
	return nil
}
