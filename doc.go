/*
Package wideint provides fixed-width unsigned and two's complement signed
integers of 128, 256, 512 and 1024 bits (U128, I128, U256, I256, U512, I512,
U1024, I1024), implementing most of the big.Int API without allocating.

All types are value types; all operations return new values. Arithmetic wraps
around at the type's width like Go's native integers do.

Simple example:

	u1 := MustU256("0xffffffffffffffffffffffffffffffff")
	u2 := U256From64(2)
	fmt.Printf("%d\n", u1.Mul(u2))
	// Output: 680564733841876926926749214863536422910

Each type is a fixed array of native machine words ("limbs"), least
significant first. 256-bit types are built from uint32 limbs; the others use
uint64. The arithmetic is written once, over slices of either limb width.

Values can be created from a variety of sources:

	U256From64(v uint64) U256
	U256FromLimbs(limbs ...uint32) U256
	U256FromString(s string) (out U256, err error)
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	MustU256(s string) U256
	RandU256(source RandSource) U256

String literals may be decimal, octal with a leading "0" or hexadecimal with a
leading "0x". Signed types also accept a leading "-".

All types support the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- msgpack.CustomEncoder
	- msgpack.CustomDecoder

String() renders the limbs in hex, most significant first, which is useful
when debugging carries. Use Text(10) or the %d verb for decimal.
*/
package wideint

//go:generate go run ./internal/wideintgen --out .
