package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shabbyrobe/go-wideint"
)

// wide is the method set shared by every value type in the wideint package.
type wide[T any] interface {
	fmt.Stringer
	Text(base int) string
	AsBigInt() *big.Int
	MSB() uint
	IsZero() bool
	Add(n T) T
	Sub(n T) T
	Mul(n T) T
	DivMod(by T) (q, r T, err error)
	And(n T) T
	Or(n T) T
	Xor(n T) T
	AndNot(n T) T
	Lsh(n uint) T
	Rsh(n uint) T
	Cmp(n T) int
	Exp(n uint64) T
}

// value is a wideint value whose width is only known at runtime.
type value interface {
	fmt.Stringer
	Text(base int) string
	AsBigInt() *big.Int
	MSB() uint
	IsZero() bool

	// Unwrap returns the underlying wideint value.
	Unwrap() any

	binary(op string, rhs value) (value, error)
	shift(op string, n uint) (value, error)
	pow(n uint64) value
	cmp(rhs value) int
}

type numType struct {
	Name   string
	Bits   int
	Limbs  int
	Limb   string
	Signed bool

	parse   func(s string) (value, error)
	fromBig func(v *big.Int) (value, bool)
	random  func(src wideint.RandSource) value
}

func (t *numType) String() string { return t.Name }

// wrap reduces v to the value a t would hold after wrapping around.
func (t *numType) wrap(v *big.Int) *big.Int {
	mod := new(big.Int).Lsh(big.NewInt(1), uint(t.Bits))
	out := new(big.Int).Mod(v, mod)
	if t.Signed && out.Bit(t.Bits-1) == 1 {
		out.Sub(out, mod)
	}
	return out
}

func newNumType[T wide[T]](
	name string, bits, limbs int, limb string,
	parse func(s string) (T, error),
	fromBig func(v *big.Int) (T, bool),
	random func(src wideint.RandSource) T,
	sar func(v T, n uint) T,
) *numType {
	box := func(v T) value { return boxed[T]{v: v, sar: sar} }

	return &numType{
		Name:   name,
		Bits:   bits,
		Limbs:  limbs,
		Limb:   limb,
		Signed: sar != nil,

		parse: func(s string) (value, error) {
			v, err := parse(s)
			if err != nil {
				return nil, err
			}
			return box(v), nil
		},
		fromBig: func(b *big.Int) (value, bool) {
			v, accurate := fromBig(b)
			return box(v), accurate
		},
		random: func(src wideint.RandSource) value {
			return box(random(src))
		},
	}
}

var numTypes = []*numType{
	newNumType("u128", wideint.U128Bits, wideint.U128Limbs, "uint64",
		wideint.U128FromString, wideint.U128FromBigInt, wideint.RandU128, nil),
	newNumType("i128", wideint.I128Bits, wideint.I128Limbs, "uint64",
		wideint.I128FromString, wideint.I128FromBigInt, wideint.RandI128, wideint.I128.ArithRsh),
	newNumType("u256", wideint.U256Bits, wideint.U256Limbs, "uint32",
		wideint.U256FromString, wideint.U256FromBigInt, wideint.RandU256, nil),
	newNumType("i256", wideint.I256Bits, wideint.I256Limbs, "uint32",
		wideint.I256FromString, wideint.I256FromBigInt, wideint.RandI256, wideint.I256.ArithRsh),
	newNumType("u512", wideint.U512Bits, wideint.U512Limbs, "uint64",
		wideint.U512FromString, wideint.U512FromBigInt, wideint.RandU512, nil),
	newNumType("i512", wideint.I512Bits, wideint.I512Limbs, "uint64",
		wideint.I512FromString, wideint.I512FromBigInt, wideint.RandI512, wideint.I512.ArithRsh),
	newNumType("u1024", wideint.U1024Bits, wideint.U1024Limbs, "uint64",
		wideint.U1024FromString, wideint.U1024FromBigInt, wideint.RandU1024, nil),
	newNumType("i1024", wideint.I1024Bits, wideint.I1024Limbs, "uint64",
		wideint.I1024FromString, wideint.I1024FromBigInt, wideint.RandI1024, wideint.I1024.ArithRsh),
}

func lookupType(name string) (*numType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range numTypes {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("unknown type %q (want one of %s)", name, typeNames())
}

func typeNames() string {
	names := make([]string, len(numTypes))
	for i, t := range numTypes {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}

type boxed[T wide[T]] struct {
	v   T
	sar func(v T, n uint) T
}

func (b boxed[T]) String() string       { return b.v.String() }
func (b boxed[T]) Text(base int) string { return b.v.Text(base) }
func (b boxed[T]) AsBigInt() *big.Int   { return b.v.AsBigInt() }
func (b boxed[T]) MSB() uint            { return b.v.MSB() }
func (b boxed[T]) IsZero() bool         { return b.v.IsZero() }
func (b boxed[T]) Unwrap() any          { return b.v }
func (b boxed[T]) pow(n uint64) value   { return b.with(b.v.Exp(n)) }
func (b boxed[T]) with(v T) boxed[T]    { return boxed[T]{v: v, sar: b.sar} }
func (b boxed[T]) cmp(rhs value) int    { return b.v.Cmp(rhs.(boxed[T]).v) }

func (b boxed[T]) binary(op string, rhs value) (value, error) {
	r, ok := rhs.(boxed[T])
	if !ok {
		return nil, fmt.Errorf("operand type mismatch: %T %s %T", b.v, op, rhs.Unwrap())
	}

	switch op {
	case "+":
		return b.with(b.v.Add(r.v)), nil
	case "-":
		return b.with(b.v.Sub(r.v)), nil
	case "*":
		return b.with(b.v.Mul(r.v)), nil
	case "/", "%":
		q, m, err := b.v.DivMod(r.v)
		if err != nil {
			return nil, err
		}
		if op == "/" {
			return b.with(q), nil
		}
		return b.with(m), nil
	case "&":
		return b.with(b.v.And(r.v)), nil
	case "|":
		return b.with(b.v.Or(r.v)), nil
	case "^":
		return b.with(b.v.Xor(r.v)), nil
	case "&^":
		return b.with(b.v.AndNot(r.v)), nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

// shift treats ">>" as an arithmetic shift for signed types, like Go's own
// >> operator.
func (b boxed[T]) shift(op string, n uint) (value, error) {
	switch op {
	case "<<":
		return b.with(b.v.Lsh(n)), nil
	case ">>":
		if b.sar != nil {
			return b.with(b.sar(b.v, n)), nil
		}
		return b.with(b.v.Rsh(n)), nil
	}
	return nil, fmt.Errorf("unknown shift operator %q", op)
}
