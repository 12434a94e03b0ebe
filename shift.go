package wideint

// lshLimbs sets dst to src << n. dst and src may be the same slice. Shifts of
// bit_size or more produce zero.
func lshLimbs[L Limb](dst, src []L, n uint) {
	size := limbBits[L]()
	ln := uint(len(src))
	if n == 0 {
		copy(dst, src)
		return
	} else if n >= ln*size {
		zeroLimbs(dst)
		return
	}

	whole, part := n/size, n%size

	// Walk down from the top so the source limbs we still need are never
	// overwritten when dst aliases src.
	if part == 0 {
		// whole >= 1 here, so the loop stops before i wraps.
		for i := ln - 1; i >= whole; i-- {
			dst[i] = src[i-whole]
		}
	} else {
		carry := size - part
		for i := ln - 1; i > whole; i-- {
			dst[i] = (src[i-whole] << part) | (src[i-whole-1] >> carry)
		}
		dst[whole] = src[0] << part
	}
	for i := uint(0); i < whole; i++ {
		dst[i] = 0
	}
}

// rshLimbs sets dst to src >> n, filling with zeros from the top (a logical
// shift, for signed values too). dst and src may be the same slice.
func rshLimbs[L Limb](dst, src []L, n uint) {
	size := limbBits[L]()
	ln := uint(len(src))
	if n == 0 {
		copy(dst, src)
		return
	} else if n >= ln*size {
		zeroLimbs(dst)
		return
	}

	whole, part := n/size, n%size
	top := ln - whole - 1

	if part == 0 {
		for i := uint(0); i <= top; i++ {
			dst[i] = src[i+whole]
		}
	} else {
		carry := size - part
		for i := uint(0); i < top; i++ {
			dst[i] = (src[i+whole] >> part) | (src[i+whole+1] << carry)
		}
		dst[top] = src[ln-1] >> part
	}
	for i := top + 1; i < ln; i++ {
		dst[i] = 0
	}
}

// sarLimbs is rshLimbs for two's complement values: vacated bits are filled
// with copies of the sign bit.
func sarLimbs[L Limb](dst, src []L, n uint) {
	if !isNegLimbs(src) {
		rshLimbs(dst, src, n)
		return
	}
	total := limbsBits(src)
	if n >= total {
		for i := range dst {
			dst[i] = ^L(0)
		}
		return
	}

	// ^(^x >> n) == x >> n with ones shifted in.
	notLimbs(dst, src)
	rshLimbs(dst, dst, n)
	notLimbs(dst, dst)
}
