package wideint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// wideKind bundles the per-type constructors the generic property checks
// need.
type wideKind[T wideValue[T]] struct {
	name     string
	bits     uint
	signed   bool
	rand     func(RandSource) T
	from64   func(int64) T
	min, max T
}

func (k wideKind[T]) random() T {
	// Shift some values down so that small magnitudes turn up too.
	v := k.rand(globalRNG)
	if globalRNG.Intn(2) == 0 {
		v = v.Rsh(uint(globalRNG.Intn(int(k.bits))))
	}
	return v
}

func u64Kind[T wideValue[T]](f func(uint64) T) func(int64) T {
	return func(v int64) T { return f(uint64(v)) }
}

func runProperties[T wideValue[T]](t *testing.T, k wideKind[T]) {
	zero, one := k.from64(0), k.from64(1)

	t.Run("identities", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < 500; i++ {
			a := k.random()
			tt.MustEqual(a, a.Add(zero), "%s + 0", a)
			tt.MustEqual(a, a.Sub(zero), "%s - 0", a)
			tt.MustEqual(a, a.Mul(one), "%s * 1", a)
			tt.MustEqual(zero, a.Mul(zero), "%s * 0", a)
			tt.MustEqual(a, a.Quo(one), "%s / 1", a)
			tt.MustEqual(a, a.Not().Not(), "~~%s", a)
			tt.MustEqual(zero, a.Add(a.Neg()), "%s + -%s", a, a)
			tt.MustEqual(a, a.Inc().Dec(), "%s++--", a)
		}
	})

	t.Run("division", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < 500; i++ {
			a, b := k.random(), k.random()
			if b.IsZero() {
				continue
			}
			q, r := a.QuoRem(b)
			tt.MustEqual(a, q.Mul(b).Add(r), "(%s / %s) * %[2]s + %[1]s %% %[2]s", a, b)

			if a.GreaterOrEqualTo(zero) && a.LessThan(b) {
				tt.MustEqual(a, r, "%s %% %s", a, b)
			}
		}
	})

	t.Run("minmax", func(t *testing.T) {
		tt := assert.WrapTB(t)
		tt.MustEqual(k.min, k.max.Not())
		tt.MustEqual(k.max, k.min.Not())
		tt.MustEqual(k.min, k.max.Inc())
		tt.MustEqual(bigMax(k.bits, k.signed).String(), k.max.Text(10))
		tt.MustEqual(bigMin(k.bits, k.signed).String(), k.min.Text(10))
	})

	t.Run("shift", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < 50; i++ {
			a := k.random()
			s := uint(globalRNG.Intn(int(k.bits)))
			doubled := a
			for j := uint(0); j < s; j++ {
				doubled = doubled.Add(doubled)
			}
			tt.MustEqual(doubled, a.Lsh(s), "%s << %d", a, s)
		}
		tt.MustEqual(zero, one.Lsh(k.bits))
		tt.MustEqual(zero, k.max.Rsh(k.bits))
	})

	t.Run("divzero", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for _, a := range []T{zero, one, k.max, k.min, k.random()} {
			_, _, err := a.DivMod(zero)
			tt.MustAssert(errors.Is(err, ErrDivisionByZero), "%s / 0", a)

			for _, op := range []func(){
				func() { a.Quo(zero) },
				func() { a.Rem(zero) },
				func() { a.QuoRem(zero) },
			} {
				tt.MustAssert(errors.Is(catchPanic(op), ErrDivisionByZero), "%s / 0", a)
			}
		}
	})

	t.Run("parse", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < 100; i++ {
			a := k.random()
			if a.LessThan(zero) {
				a = a.Neg()
			}
			if a.LessThan(zero) {
				continue // the minimum negates to itself
			}

			hex := k.from64(0)
			tt.MustOK(parseInto(&hex, "0x"+a.Text(16)))
			dec := k.from64(0)
			tt.MustOK(parseInto(&dec, a.Text(10)))
			tt.MustEqual(a, hex)
			tt.MustEqual(a, dec)

			if a.MSB() < k.bits/octDigitBits*octDigitBits {
				oct := k.from64(0)
				tt.MustOK(parseInto(&oct, "0"+a.Text(8)))
				tt.MustEqual(a, oct)
			}
		}
	})
}

// parseInto goes through encoding.TextUnmarshaler so the generic checks can
// reach each type's literal parser.
func parseInto[T any](v *T, s string) error {
	u, ok := any(v).(interface{ UnmarshalText([]byte) error })
	if !ok {
		return fmt.Errorf("%T is not a TextUnmarshaler", v)
	}
	return u.UnmarshalText([]byte(s))
}

func catchPanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func TestProperties(t *testing.T) {
	t.Run("u128", func(t *testing.T) {
		runProperties(t, wideKind[U128]{name: "u128", bits: U128Bits, rand: RandU128, from64: u64Kind(U128From64), min: MinU128, max: MaxU128})
	})
	t.Run("i128", func(t *testing.T) {
		runProperties(t, wideKind[I128]{name: "i128", bits: I128Bits, signed: true, rand: RandI128, from64: I128From64, min: MinI128, max: MaxI128})
	})
	t.Run("u256", func(t *testing.T) {
		runProperties(t, wideKind[U256]{name: "u256", bits: U256Bits, rand: RandU256, from64: u64Kind(U256From64), min: MinU256, max: MaxU256})
	})
	t.Run("i256", func(t *testing.T) {
		runProperties(t, wideKind[I256]{name: "i256", bits: I256Bits, signed: true, rand: RandI256, from64: I256From64, min: MinI256, max: MaxI256})
	})
	t.Run("u512", func(t *testing.T) {
		runProperties(t, wideKind[U512]{name: "u512", bits: U512Bits, rand: RandU512, from64: u64Kind(U512From64), min: MinU512, max: MaxU512})
	})
	t.Run("i512", func(t *testing.T) {
		runProperties(t, wideKind[I512]{name: "i512", bits: I512Bits, signed: true, rand: RandI512, from64: I512From64, min: MinI512, max: MaxI512})
	})
	t.Run("u1024", func(t *testing.T) {
		runProperties(t, wideKind[U1024]{name: "u1024", bits: U1024Bits, rand: RandU1024, from64: u64Kind(U1024From64), min: MinU1024, max: MaxU1024})
	})
	t.Run("i1024", func(t *testing.T) {
		runProperties(t, wideKind[I1024]{name: "i1024", bits: I1024Bits, signed: true, rand: RandI1024, from64: I1024From64, min: MinI1024, max: MaxI1024})
	})
}
