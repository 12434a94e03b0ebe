package wideint

// RandSource supplies random words for the Rand* constructors. *math/rand.Rand
// satisfies it.
type RandSource interface {
	Uint64() uint64
}

// randLimbs fills x from source, one 64-bit draw per 64 bits of x.
func randLimbs[L Limb](x []L, source RandSource) {
	if limbBits[L]() == 64 {
		for i := range x {
			x[i] = L(source.Uint64())
		}
		return
	}
	for i := 0; i < len(x); i += 2 {
		v := source.Uint64()
		x[i] = L(v)
		if i+1 < len(x) {
			x[i+1] = L(v >> 32)
		}
	}
}
