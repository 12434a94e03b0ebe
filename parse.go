package wideint

// literalBase picks the base of a literal from its prefix and digit class and
// applies the per-base length cap for a type of the given bit size:
//
//	0x... / 0X...    hexadecimal, at most bitSize/4 digits
//	0 + only 0-7     octal, at most bitSize/3 digits after the leading 0
//	only 0-9         decimal, at most as many digits as 2^bitSize-1 has
//
// The caps reject most over-wide literals before any arithmetic happens; the
// parser still checks for overflow exactly.
func literalBase(s string, bitSize uint) (base uint64, digits string, err error) {
	ln := len(s)
	if ln == 0 {
		return 0, "", ErrSyntax
	}

	if ln > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits = s[2:]
		for i := 0; i < len(digits); i++ {
			if digitValue(digits[i]) >= 16 {
				return 0, "", ErrSyntax
			}
		}
		if uint(len(digits)) > bitSize/hexDigitBits {
			return 0, "", ErrRange
		}
		return 16, digits, nil
	}

	isOct, isDec := ln > 1 && s[0] == '0', true
	for i := 0; i < ln; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			isOct, isDec = false, false
			break
		}
		if c > '7' {
			isOct = false
		}
	}

	if isOct {
		if uint(ln) > bitSize/octDigitBits+1 {
			return 0, "", ErrRange
		}
		return 8, s[1:], nil

	} else if isDec {
		// floor(bitSize * log10(2)) + 1, without floats:
		maxDigits := bitSize*log2Num/log2Den + 1
		if uint(ln) > maxDigits {
			return 0, "", ErrRange
		}
		return 10, s, nil
	}

	return 0, "", ErrSyntax
}

func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10
	}
	return 255
}

// parseLimbs parses an unsigned literal into dst by Horner's rule,
// value = value*base + digit, using the engine's own multiply and add.
//
// The accumulator carries one limb of headroom; a nonzero headroom limb after
// any step means the literal does not fit.
func parseLimbs[L Limb](dst []L, s string) error {
	base, digits, err := literalBase(s, limbsBits(dst))
	if err != nil {
		return err
	}

	n := len(dst) + 1

	var valBuf, baseBuf, digitBuf, prodBuf [scratchLimbs]L
	val, bs, digit, prod := valBuf[:n], baseBuf[:n], digitBuf[:n], prodBuf[:n]
	setUint64(bs, base)

	for i := 0; i < len(digits); i++ {
		mulLimbs(prod, val, bs)
		setUint64(digit, digitValue(digits[i]))
		addLimbs(val, prod, digit)
		if val[n-1] != 0 {
			return ErrRange
		}
	}

	copy(dst, val[:n-1])
	return nil
}

// parseSignedLimbs accepts an optional leading sign before the literal. A
// negative literal is the two's complement of its magnitude, which may be at
// most 2^(bits-1). Literals without a '-' may use the full bit width, so
// "0xff..." parses as the same bit pattern it would in an unsigned type.
func parseSignedLimbs[L Limb](dst []L, s string) error {
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if err := parseLimbs(dst, s); err != nil {
		return err
	}
	if neg {
		negLimbs(dst, dst)

		// Magnitudes above 2^(bits-1) negate to a positive value:
		if !isNegLimbs(dst) && !isZeroLimbs(dst) {
			return ErrRange
		}
	}
	return nil
}
