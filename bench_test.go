package wideint

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchStringResult string
	BenchU128Result   U128
	BenchU256Result   U256
	BenchU1024Result  U1024
	BenchUint64Result uint64

	BenchUint641, BenchUint642 uint64 = 12093749018, 18927348917
)

func BenchmarkUint64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 * BenchUint642
	}
}

func BenchmarkUint64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchUint64Result = BenchUint641 / BenchUint642
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	var max big.Int
	max.SetUint64(maxUint64)

	for i := 0; i < b.N; i++ {
		var dest big.Int
		dest.Mul(&dest, &max)
	}
}

func BenchmarkBigIntDiv(b *testing.B) {
	u := new(big.Int).SetUint64(maxUint64)
	by := new(big.Int).SetUint64(121525124)
	for i := 0; i < b.N; i++ {
		var z big.Int
		z.Div(u, by)
	}
}

func BenchmarkU128Mul(b *testing.B) {
	u1, u2 := MustU128("0xff45d391f11421ae"), MustU128("0xff4b9c63cbd74d45")
	for i := 0; i < b.N; i++ {
		BenchU128Result = u1.Mul(u2)
	}
}

func BenchmarkU128QuoRem(b *testing.B) {
	for _, bc := range []struct {
		name  string
		u, by U128
	}{
		{"pow2", MaxU128, U128From64(1 << 20)},
		{"small", MaxU128, U128From64(121525124)},
		{"wide", MaxU128, MustU128("0xff45d391f11421aeff45d391f11421")},
	} {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU128Result, _ = bc.u.QuoRem(bc.by)
			}
		})
	}
}

func BenchmarkU256Mul(b *testing.B) {
	u1, u2 := MaxU256.Rsh(3), MaxU256.Rsh(7)
	for i := 0; i < b.N; i++ {
		BenchU256Result = u1.Mul(u2)
	}
}

func BenchmarkU1024Mul(b *testing.B) {
	u1, u2 := MaxU1024.Rsh(3), MaxU1024.Rsh(7)
	for i := 0; i < b.N; i++ {
		BenchU1024Result = u1.Mul(u2)
	}
}

func BenchmarkU1024Quo(b *testing.B) {
	u, by := MaxU1024, MaxU1024.Rsh(500)
	for i := 0; i < b.N; i++ {
		BenchU1024Result = u.Quo(by)
	}
}

func BenchmarkU1024FromString(b *testing.B) {
	for _, s := range []string{
		"0xff45d391f11421ae",
		MaxU1024.Text(10),
		"0x" + MaxU1024.Text(16),
	} {
		b.Run(fmt.Sprintf("%d", len(s)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchU1024Result, _ = U1024FromString(s)
			}
		})
	}
}

func BenchmarkU1024Text(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchStringResult = MaxU1024.Text(10)
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	u1, u2 := MaxU256, MaxU256.Dec()
	for i := 0; i < b.N; i++ {
		BenchIntResult = u1.Cmp(u2)
	}
}

func BenchmarkU256AsBigInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = MaxU256.AsBigInt()
	}
}
