package wideint

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/vmihailenco/msgpack/v5"
)

func testMarshalRoundTrip[T wideValue[T]](t *testing.T, size int, vals ...T) {
	for idx, v := range vals {
		t.Run(fmt.Sprintf("%d/%s", idx, v.Text(10)), func(t *testing.T) {
			tt := assert.WrapTB(t)

			bts, err := msgpack.Marshal(v)
			tt.MustOK(err)

			// bin 8: type byte, length byte, fixed-width payload.
			tt.MustEqual(2+size, len(bts))
			tt.MustEqual(byte(0xc4), bts[0])
			tt.MustEqual(byte(size), bts[1])

			var mout T
			tt.MustOK(msgpack.Unmarshal(bts, &mout))
			tt.MustEqual(v, mout)

			js, err := json.Marshal(v)
			tt.MustOK(err)
			var jout T
			tt.MustOK(json.Unmarshal(js, &jout))
			tt.MustEqual(v, jout)

			var tout T
			tt.MustOK(parseInto(&tout, v.Text(10)))
			tt.MustEqual(v, tout)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Run("u128", func(t *testing.T) {
		testMarshalRoundTrip(t, U128Bytes, U128From64(0), MaxU128, RandU128(globalRNG))
	})
	t.Run("i128", func(t *testing.T) {
		testMarshalRoundTrip(t, I128Bytes, I128From64(-1), MinI128, MaxI128, RandI128(globalRNG))
	})
	t.Run("u256", func(t *testing.T) {
		testMarshalRoundTrip(t, U256Bytes, U256From64(0x0123456789abcdef), MaxU256, RandU256(globalRNG))
	})
	t.Run("i256", func(t *testing.T) {
		testMarshalRoundTrip(t, I256Bytes, I256From64(-2), MinI256, RandI256(globalRNG))
	})
	t.Run("u512", func(t *testing.T) {
		testMarshalRoundTrip(t, U512Bytes, MaxU512, RandU512(globalRNG))
	})
	t.Run("i512", func(t *testing.T) {
		testMarshalRoundTrip(t, I512Bytes, MinI512, RandI512(globalRNG))
	})
	t.Run("u1024", func(t *testing.T) {
		testMarshalRoundTrip(t, U1024Bytes, MaxU1024, RandU1024(globalRNG))
	})
	t.Run("i1024", func(t *testing.T) {
		testMarshalRoundTrip(t, I1024Bytes, MinI1024, I1024From64(-12345), RandI1024(globalRNG))
	})
}

func TestMsgpackBigEndian(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := msgpack.Marshal(U128From64(0x0102))
	tt.MustOK(err)
	tt.MustEqual([]byte{0xc4, 16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2}, bts)
}

func TestMsgpackStruct(t *testing.T) {
	tt := assert.WrapTB(t)

	type balance struct {
		Account string `msgpack:"account"`
		Amount  I256   `msgpack:"amount"`
		Limit   U512   `msgpack:"limit"`
	}

	in := balance{Account: "x", Amount: MustI256("-1000000000000000000000000"), Limit: MaxU512}
	bts, err := msgpack.Marshal(&in)
	tt.MustOK(err)

	var out balance
	tt.MustOK(msgpack.Unmarshal(bts, &out))
	tt.MustEqual(in, out)
}

func TestMsgpackWrongSize(t *testing.T) {
	tt := assert.WrapTB(t)
	bts, err := msgpack.Marshal([]byte{1, 2, 3})
	tt.MustOK(err)

	var out U128
	tt.MustAssert(msgpack.Unmarshal(bts, &out) != nil)
}
