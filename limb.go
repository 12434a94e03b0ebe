package wideint

import (
	"math/bits"
)

// Limb is the native word a wide integer is built from.
type Limb interface {
	~uint32 | ~uint64
}

// maxLimbs is the limb count of the widest type in the package. Kernels that
// need scratch space size their stack arrays with it.
const maxLimbs = 16

// scratchLimbs leaves room for one limb of headroom above the widest type,
// which the literal parser uses to detect overflow.
const scratchLimbs = maxLimbs + 1

// maxBytes is the byte length of the widest type in the package.
const maxBytes = maxLimbs * 8

// scratchBytes is the byte length of a scratchLimbs buffer of uint64 limbs.
const scratchBytes = scratchLimbs * 8

func limbBits[L Limb]() uint {
	return uint(bits.Len64(uint64(^L(0))))
}

func limbBytes[L Limb]() int {
	return int(limbBits[L]() / 8)
}

func limbsBits[L Limb](x []L) uint {
	return uint(len(x)) * limbBits[L]()
}

func signBitOf[L Limb]() L {
	return L(1) << (limbBits[L]() - 1)
}

func zeroLimbs[L Limb](x []L) {
	for i := range x {
		x[i] = 0
	}
}

func isZeroLimbs[L Limb](x []L) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

func isNegLimbs[L Limb](x []L) bool {
	return x[len(x)-1]&signBitOf[L]() != 0
}

// setUint64 zeroes dst and places v in its low limbs. A 64-bit seed spans two
// 32-bit limbs.
func setUint64[L Limb](dst []L, v uint64) {
	zeroLimbs(dst)
	if limbBits[L]() == 64 {
		dst[0] = L(v)
		return
	}
	dst[0] = L(v)
	if len(dst) > 1 {
		dst[1] = L(v >> 32)
	}
}

// setLimbs copies seed into the low-order limbs of dst and zeroes the rest.
// Seeds beyond len(dst) are ignored.
func setLimbs[L Limb](dst []L, seed []L) {
	zeroLimbs(dst)
	copy(dst, seed)
}

// setInt64 sign-extends v across dst. A negative seed starts from the
// all-ones pattern (-1) and subtracts -(v+1), which cannot overflow an
// int64.
func setInt64[L Limb](dst []L, v int64) {
	if v >= 0 {
		setUint64(dst, uint64(v))
		return
	}
	for i := range dst {
		dst[i] = ^L(0)
	}

	var off [maxLimbs]L
	setUint64(off[:len(dst)], uint64(-(v + 1)))
	subLimbs(dst, dst, off[:len(dst)])
}

func andLimbs[L Limb](dst, l, r []L) {
	for i := range dst {
		dst[i] = l[i] & r[i]
	}
}

func orLimbs[L Limb](dst, l, r []L) {
	for i := range dst {
		dst[i] = l[i] | r[i]
	}
}

func xorLimbs[L Limb](dst, l, r []L) {
	for i := range dst {
		dst[i] = l[i] ^ r[i]
	}
}

func andNotLimbs[L Limb](dst, l, r []L) {
	for i := range dst {
		dst[i] = l[i] &^ r[i]
	}
}

func notLimbs[L Limb](dst, src []L) {
	for i := range dst {
		dst[i] = ^src[i]
	}
}

// cmpLimbs compares l and r as unsigned magnitudes, most significant limb
// first.
func cmpLimbs[L Limb](l, r []L) int {
	for i := len(l) - 1; i >= 0; i-- {
		if l[i] > r[i] {
			return 1
		} else if l[i] < r[i] {
			return -1
		}
	}
	return 0
}

// cmpSignedLimbs compares l and r as two's complement values: the top limb
// is compared as signed, the rest as unsigned magnitude.
func cmpSignedLimbs[L Limb](l, r []L) int {
	ln, rn := isNegLimbs(l), isNegLimbs(r)
	if ln != rn {
		if ln {
			return -1
		}
		return 1
	}
	return cmpLimbs(l, r)
}

// putBytes writes x into out as a big-endian byte string. out must be exactly
// len(x) limbs wide.
func putBytes[L Limb](out []byte, x []L) {
	sz := limbBytes[L]()
	n := len(x)
	for i := 0; i < n; i++ {
		v := uint64(x[i])
		end := len(out) - i*sz
		for b := 1; b <= sz; b++ {
			out[end-b] = byte(v)
			v >>= 8
		}
	}
}

// setBytes reads a big-endian byte string into dst. Input shorter than dst is
// zero-extended; excess high-order bytes are reported as !fits and dropped.
func setBytes[L Limb](dst []L, in []byte) (fits bool) {
	zeroLimbs(dst)
	fits = true
	sz := limbBytes[L]()
	for i := 0; i < len(in); i++ {
		b := in[len(in)-1-i]
		idx := i / sz
		if idx >= len(dst) {
			if b != 0 {
				fits = false
			}
			continue
		}
		dst[idx] |= L(b) << (uint(i%sz) * 8)
	}
	return fits
}

// limbsPer64 is the number of limbs needed to hold 64 bits.
func limbsPer64[L Limb]() int {
	return int(64 / limbBits[L]())
}

// low64Limbs returns the low 64 bits of x.
func low64Limbs[L Limb](x []L) uint64 {
	if limbBits[L]() == 64 {
		return uint64(x[0])
	}
	v := uint64(x[0])
	if len(x) > 1 {
		v |= uint64(x[1]) << 32
	}
	return v
}

func fitsUint64Limbs[L Limb](x []L) bool {
	return isZeroLimbs(x[limbsPer64[L]():])
}

// fitsInt64Limbs reports whether every limb above the low 64 bits is a copy
// of bit 63.
func fitsInt64Limbs[L Limb](x []L) bool {
	var ext L
	if int64(low64Limbs(x)) < 0 {
		ext = ^L(0)
	}
	for _, v := range x[limbsPer64[L]():] {
		if v != ext {
			return false
		}
	}
	return true
}
