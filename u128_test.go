package wideint

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u64 = U128From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func u128s(s string) U128 {
	b := bigs(s)
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("wideint: inaccurate u128 %s", s))
	}
	return out
}

func TestU128AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U128
		b *big.Int
	}{
		{U128FromLimbs(2, 0), bigU64(2)},
		{U128FromLimbs(0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF), bigs("0xFFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE")},
		{U128FromLimbs(0x0, 0x1), bigs("18446744073709551616")},
		{U128FromLimbs(0xFFFFFFFFFFFFFFFF, 0x1), bigs("36893488147419103231")}, // (1<<65) - 1
		{U128FromLimbs(0x8AC7230489E7FFFF, 0x1), bigs("28446744073709551615")},
		{U128FromLimbs(0xFFFFFFFFFFFFFFFF, 0x7FFFFFFFFFFFFFFF), bigs("170141183460469231731687303715884105727")},
		{U128FromLimbs(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF), bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{U128FromLimbs(0, 0x8000000000000000), bigs("0x 8000000000000000 0000000000000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
		})
	}
}

func TestU128Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{u64(0xf), u64(0), u64(0xf)},
		{u64(0xffffffff), u64(0xffffffff), u64(0x1fffffffe)},
		{MaxU128, u64(1), u64(0)},                               // Overflow wraps
		{u64(maxUint64), u64(1), u128s("18446744073709551616")}, // lo carries to hi
		{u128s("18446744073709551615"), u128s("18446744073709551615"), u128s("36893488147419103230")},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.c.Equal(tc.a.Add(tc.b)))
		})
	}
}

func TestU128Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(3), u64(2), u64(1)},
		{u64(0), u64(1), MaxU128}, // Underflow wraps
		{u128s("18446744073709551616"), u64(1), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Sub(tc.b))
		})
	}
}

func TestU128Dec(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(0)},
		{u64(10), u64(9)},
		{u64(maxUint64), u128s("18446744073709551614")},
		{u64(0), MaxU128},
		{u64(maxUint64).Add(u64(1)), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			dec := tc.a.Dec()
			tt.MustAssert(tc.b.Equal(dec), "%s - 1 != %s, found %s", tc.a, tc.b, dec)
		})
	}
}

func TestU128Inc(t *testing.T) {
	for _, tc := range []struct {
		a, b U128
	}{
		{u64(1), u64(2)},
		{u64(maxUint64), u128s("18446744073709551616")},
		{MaxU128, u64(0)},
	} {
		t.Run(fmt.Sprintf("%s+1=%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.b, tc.a.Inc())
		})
	}
}

func TestU128Mul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U128
	}{
		{u64(1), u64(0), u64(0)},
		{u64(2), u64(3), u64(6)},
		{u64(0xff45d391f11421ae), u64(0xff4b9c63cbd74d45), MustU128("0xfe91f3256b157e40e77a68c04bb069e6")},
		{u64(maxUint64), u64(maxUint64), u128s("340282366920938463426481119284349108225")},
		{MaxU128, MaxU128, u64(1)}, // Overflow wraps
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Mul(tc.b))
		})
	}
}

func TestU128QuoRem(t *testing.T) {
	for _, tc := range []struct {
		u, by, q, r U128
	}{
		{u: u64(1), by: u64(2), q: u64(0), r: u64(1)},
		{u: u64(10), by: u64(3), q: u64(3), r: u64(1)},
		{u: u64(0xff4b9c63cbd74d45), by: u64(0xff45d391f11421ae), q: u64(1), r: u64(0x5c8d1dac32b97)},
		{
			u:  u128s("0x1_0000_0000_0000_0000"),
			by: u64(3),
			q:  u64(0x5555555555555555),
			r:  u64(1),
		},
		{
			u:  MaxU128,
			by: u128s("0x8000000000000000"),
			q:  u128s("0x1ffffffffffffffff"),
			r:  u64(0x7fffffffffffffff),
		},
	} {
		t.Run(fmt.Sprintf("%s÷%s=%s,%s", tc.u, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r := tc.u.QuoRem(tc.by)
			tt.MustEqual(tc.q.String(), q.String())
			tt.MustEqual(tc.r.String(), r.String())

			uBig := tc.u.AsBigInt()
			byBig := tc.by.AsBigInt()

			qBig, rBig := new(big.Int).Set(uBig), new(big.Int).Set(uBig)
			qBig = qBig.Quo(qBig, byBig)
			rBig = rBig.Rem(rBig, byBig)

			tt.MustEqual(tc.q.Text(10), qBig.String())
			tt.MustEqual(tc.r.Text(10), rBig.String())
		})
	}
}

func TestU128MSB(t *testing.T) {
	for _, tc := range []struct {
		a   U128
		msb uint
	}{
		{u64(0), 0},
		{u64(1), 0},
		{u64(0x746789abc34), 42},
		{u64(maxUint64), 63},
		{u128s("0x10000000000000000"), 64},
		{MaxU128, 127},
	} {
		t.Run(fmt.Sprintf("msb(%s)=%d", tc.a, tc.msb), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.msb, tc.a.MSB())
		})
	}
}

func TestU128Format(t *testing.T) {
	for idx, tc := range []struct {
		v   U128
		fmt string
		out string
	}{
		{u64(1), "%d", "1"},
		{u64(1), "%s", "[0x0, 0x1]"},
		{u64(0xf), "%v", "[0x0, 0xf]"},
		{MaxU128, "%v", "[0xffffffffffffffff, 0xffffffffffffffff]"},
		{MaxU128, "%d", "340282366920938463463374607431768211455"},
		{MaxU128, "%#d", "340282366920938463463374607431768211455"},
		{MaxU128, "%o", "3777777777777777777777777777777777777777777"},
		{MaxU128, "%b", strings.Repeat("1", 128)},
		{MaxU128, "%#o", "03777777777777777777777777777777777777777777"},
		{MaxU128, "%#x", "0xffffffffffffffffffffffffffffffff"},
		{MaxU128, "%#X", "0XFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.fmt, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			result := fmt.Sprintf(tc.fmt, tc.v)
			tt.MustEqual(tc.out, result)
		})
	}
}

func TestU128FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U128
		acc bool
	}{
		{bigU64(2), u64(2), true},
		{bigs("18446744073709551616"), U128FromLimbs(0x0, 0x1), true},                // 1 << 64
		{bigs("36893488147419103231"), U128FromLimbs(0xFFFFFFFFFFFFFFFF, 0x1), true}, // (1<<65) - 1
		{bigs("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), MaxU128, true},
		{bigs("0x 1 0000000000000000 0000000000000000"), MaxU128, false}, // 1 << 128, clamped
		{bigs("-1"), u64(0), false},
	} {
		t.Run(fmt.Sprintf("%d/%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U128FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestU128FromString(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		out U128
	}{
		{"0", u64(0)},
		{"00", u64(0)},
		{"0x0", u64(0)},
		{"1", u64(1)},
		{"0x0f", u64(0xf)},
		{"0XF", u64(0xf)},
		{"017", u64(0xf)},
		{"18446744073709551616", u128s("0x10000000000000000")},
		{"340282366920938463463374607431768211455", MaxU128},
		{"0x" + strings.Repeat("f", 32), MaxU128},
		{"0" + strings.Repeat("7", 42), u128s("85070591730234615865843651857942052863")},

		// Digits 8 and 9 after a leading zero make the literal decimal:
		{"09", u64(9)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := U128FromString(tc.in)
			tt.MustOK(err)
			tt.MustEqual(tc.out, v)
		})
	}
}

func TestU128FromStringFails(t *testing.T) {
	for idx, tc := range []struct {
		in  string
		err error
	}{
		{"", ErrSyntax},
		{"0x", ErrSyntax},
		{"-1", ErrSyntax},
		{"+1", ErrSyntax},
		{"12a", ErrSyntax},
		{"0xfg", ErrSyntax},
		{"1_000", ErrSyntax},
		{" 1", ErrSyntax},

		{"340282366920938463463374607431768211456", ErrRange}, // MaxU128 + 1
		{"999999999999999999999999999999999999999", ErrRange},
		{"1000000000000000000000000000000000000000", ErrRange}, // too many digits
		{"0x1" + strings.Repeat("0", 32), ErrRange},
		{"0" + strings.Repeat("7", 43), ErrRange},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := U128FromString(tc.in)
			tt.MustAssert(errors.Is(err, tc.err), "expected %v, found %v", tc.err, err)

			var perr *ParseError
			tt.MustAssert(errors.As(err, &perr))
			tt.MustEqual("u128", perr.Type)
			tt.MustEqual(tc.in, perr.Input)
		})
	}
}

func TestU128ParseRoundTrip(t *testing.T) {
	for idx, tc := range []struct {
		dec, oct, hex string
	}{
		{"0", "00", "0x0"},
		{"15", "017", "0xf"},
		{"18446744073709551616", "02000000000000000000000", "0x10000000000000000"},
		{"85070591730234615865843651857942052863", "0" + strings.Repeat("7", 42), "0x3fffffffffffffffffffffffffffffff"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.dec), func(t *testing.T) {
			tt := assert.WrapTB(t)
			d, o, h := MustU128(tc.dec), MustU128(tc.oct), MustU128(tc.hex)
			tt.MustEqual(d.Limbs(), o.Limbs())
			tt.MustEqual(d.Limbs(), h.Limbs())
		})
	}
}

func TestMustU128Panics(t *testing.T) {
	tt := assert.WrapTB(t)
	defer func() {
		r := recover()
		err, ok := r.(error)
		tt.MustAssert(ok)
		tt.MustAssert(errors.Is(err, ErrSyntax))
	}()
	MustU128("nope")
}

func TestU128Shifts(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u128s("0x10000000000000000"), u64(1).Lsh(64))
	tt.MustEqual(u64(0), u64(1).Lsh(128))
	tt.MustEqual(u64(1), u128s("0x10000000000000000").Rsh(64))
	tt.MustEqual(u64(0), MaxU128.Rsh(128))
	tt.MustEqual(MaxU128, MaxU128.Lsh(0))
}

func TestU128Bits(t *testing.T) {
	tt := assert.WrapTB(t)
	v := u64(0).SetBit(100, 1)
	tt.MustEqual(uint(1), v.Bit(100))
	tt.MustEqual(uint(100), v.TrailingZeros())
	tt.MustEqual(uint(27), v.LeadingZeros())
	tt.MustEqual(u64(0), v.SetBit(100, 0))
	tt.MustEqual(uint(128), u64(0).LeadingZeros())
}

func TestU128Conversions(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u64(maxUint64).IsUint64())
	tt.MustAssert(!u64(maxUint64).Inc().IsUint64())
	tt.MustEqual(uint64(0), u64(maxUint64).Inc().AsUint64())

	tt.MustAssert(u64(1).IsI128())
	tt.MustAssert(!MaxU128.IsI128())
	tt.MustEqual(I128From64(-1), MaxU128.AsI128())
	tt.MustEqual(MaxU128, MaxU128.AsI128().AsU128())
}

func TestU128Exp(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(u64(1), u64(7).Exp(0))
	tt.MustEqual(u128s("0x10000000000000000"), u64(2).Exp(64))
	tt.MustEqual(u64(0), u64(2).Exp(128))
	tt.MustEqual(u64(1024), u64(2).Exp(10))
}

func TestU128JSON(t *testing.T) {
	tt := assert.WrapTB(t)

	type wrapper struct {
		V U128 `json:"v"`
	}

	bts, err := json.Marshal(wrapper{V: MaxU128})
	tt.MustOK(err)
	tt.MustEqual(`{"v":"340282366920938463463374607431768211455"}`, string(bts))

	var out wrapper
	tt.MustOK(json.Unmarshal(bts, &out))
	tt.MustEqual(MaxU128, out.V)

	tt.MustOK(json.Unmarshal([]byte(`{"v":1234}`), &out))
	tt.MustEqual(u64(1234), out.V)

	tt.MustAssert(json.Unmarshal([]byte(`{"v":"-1"}`), &out) != nil)
}
