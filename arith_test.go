package wideint

import (
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// Zero-extending both operands to twice their width makes the truncating
// multiply return the full product.
func testMulWidening[L Limb](t *testing.T, n int) {
	tt := assert.WrapTB(t)

	l, r, out := make([]L, n*2), make([]L, n*2), make([]L, n*2)
	for i := 0; i < 20000; i++ {
		randLimbs(l[:n], globalRNG)
		randLimbs(r[:n], globalRNG)

		mulLimbs(out, l, r)

		rb := new(big.Int).Mul(limbsBig(l[:n]), limbsBig(r[:n]))
		tt.MustEqual(rb.Text(16), limbsBig(out).Text(16), "failed at index %d", i)
	}
}

func TestMulWidening(t *testing.T) {
	t.Run("128to256/uint64", func(t *testing.T) { testMulWidening[uint64](t, 2) })
	t.Run("128to256/uint32", func(t *testing.T) { testMulWidening[uint32](t, 4) })
	t.Run("512to1024", func(t *testing.T) { testMulWidening[uint64](t, 8) })
}

func TestAddSubInverse(t *testing.T) {
	tt := assert.WrapTB(t)

	l, r, sum, back := make([]uint32, 8), make([]uint32, 8), make([]uint32, 8), make([]uint32, 8)
	for i := 0; i < 5000; i++ {
		randLimbs(l, globalRNG)
		randLimbs(r, globalRNG)

		carry := addLimbs(sum, l, r)
		borrow := subLimbs(back, sum, r)
		tt.MustEqual(l, back, "failed at index %d", i)
		tt.MustEqual(carry, borrow, "carry out of the add must come back as a borrow")
	}
}

var BenchLimbsIn1, BenchLimbsIn2 = []uint64{1234, 5678, 0, 0}, []uint64{9123, 5678, 0, 0}

func BenchmarkMulLimbsWidening(b *testing.B) {
	out := make([]uint64, 4)
	for i := 0; i < b.N; i++ {
		mulLimbs(out, BenchLimbsIn1, BenchLimbsIn2)
	}
	BenchUint64Result = out[0]
}
