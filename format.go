package wideint

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// dumpLimbs renders x as a bracketed, comma-separated list of hex limbs, most
// significant limb first: "[0x0, 0xf]".
func dumpLimbs[L Limb](x []L) string {
	var sb strings.Builder
	sb.Grow(len(x) * (limbBytes[L]()*2 + 4))
	sb.WriteByte('[')
	for i := len(x) - 1; i >= 0; i-- {
		sb.WriteString("0x")
		sb.WriteString(strconv.FormatUint(uint64(x[i]), 16))
		if i > 0 {
			sb.WriteString(", ")
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatWide implements fmt.Formatter for the value types: %v and %s print
// the limb dump, every other verb is handled by big.Int.
func formatWide(s fmt.State, c rune, dump string, asBig func() *big.Int) {
	switch c {
	case 'v', 's':
		_, _ = io.WriteString(s, dump)
	default:
		// FIXME: formatting natively would avoid the big.Int allocation.
		asBig().Format(s, c)
	}
}

// intoBigLimbs copies x into b, interpreting x as two's complement when
// signed is set. x may be up to scratchLimbs long.
func intoBigLimbs[L Limb](b *big.Int, x []L, signed bool) {
	var buf [scratchBytes]byte
	sz := len(x) * limbBytes[L]()

	if signed && isNegLimbs(x) {
		// The minimum value negates to itself, which as an unsigned magnitude is
		// still the right answer.
		var mag [scratchLimbs]L
		negLimbs(mag[:len(x)], x)
		putBytes(buf[:sz], mag[:len(x)])
		b.SetBytes(buf[:sz])
		b.Neg(b)
		return
	}

	putBytes(buf[:sz], x)
	b.SetBytes(buf[:sz])
}

// fromBigLimbs sets dst from a non-negative big.Int. Negative values produce
// zero, values that are too large produce the all-ones maximum; both report
// accurate == false.
func fromBigLimbs[L Limb](dst []L, v *big.Int) (accurate bool) {
	if v.Sign() < 0 {
		zeroLimbs(dst)
		return false
	}
	if uint(v.BitLen()) > limbsBits(dst) {
		for i := range dst {
			dst[i] = ^L(0)
		}
		return false
	}

	var buf [maxBytes]byte
	sz := len(dst) * limbBytes[L]()
	v.FillBytes(buf[:sz])
	setBytes(dst, buf[:sz])
	return true
}

// fromBigSignedLimbs sets dst from a big.Int in two's complement. Values
// outside the signed range clamp to the signed maximum or minimum and report
// accurate == false.
func fromBigSignedLimbs[L Limb](dst []L, v *big.Int) (accurate bool) {
	total := limbsBits(dst)
	top := len(dst) - 1

	if v.Sign() >= 0 {
		if uint(v.BitLen()) > total-1 {
			for i := range dst {
				dst[i] = ^L(0)
			}
			dst[top] &^= signBitOf[L]()
			return false
		}
		return fromBigLimbs(dst, v)
	}

	mag := new(big.Int).Neg(v)
	isMin := uint(mag.BitLen()) == total && mag.TrailingZeroBits() == total-1
	if uint(mag.BitLen()) > total-1 && !isMin {
		zeroLimbs(dst)
		dst[top] = signBitOf[L]()
		return false
	}
	fromBigLimbs(dst, mag)
	negLimbs(dst, dst)
	return true
}
