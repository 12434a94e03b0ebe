package main

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/shabbyrobe/go-wideint"
	"github.com/spf13/cobra"
)

// Division by an invariant divisor as a multiply-high and a shift, in the
// style of libdivide's branchfull unsigned dividers. The magic number for an
// N-bit divisor needs a 2N-bit dividend, which is where the wide types come
// in: uint64 divisors are found with U128, U128 divisors with U256.

// divider64 divides uint64 values by Denom.
type divider64 struct {
	Denom uint64
	Magic uint64
	Shift uint

	// Add marks a 65-bit magic number whose top bit is implied.
	Add bool

	// Pow2 divisors skip the multiply and only shift.
	Pow2 bool
}

func newDivider64(d uint64) (dv divider64, err error) {
	if d == 0 {
		return dv, wideint.ErrDivisionByZero
	}
	floorLog2 := uint(63 - bits.LeadingZeros64(d))
	dv.Denom, dv.Shift = d, floorLog2

	if d&(d-1) == 0 {
		dv.Pow2 = true
		return dv, nil
	}

	// 2^(64+floorLog2) / d always fits in 64 bits as d > 2^floorLog2.
	m, rem, err := wideint.U128From64(1).Lsh(64 + floorLog2).DivMod(wideint.U128From64(d))
	if err != nil {
		return dv, err
	}
	m64, rem64 := m.AsUint64(), rem.AsUint64()

	if e := d - rem64; e >= 1<<floorLog2 {
		m64 += m64
		twiceRem := rem64 + rem64
		if twiceRem >= d || twiceRem < rem64 {
			m64++
		}
		dv.Add = true
	}
	dv.Magic = m64 + 1
	return dv, nil
}

func (dv divider64) Quo(n uint64) uint64 {
	if dv.Pow2 {
		return n >> dv.Shift
	}
	q := wideint.U128From64(n).Mul(wideint.U128From64(dv.Magic)).Rsh(64).AsUint64()
	if dv.Add {
		return ((n-q)>>1 + q) >> dv.Shift
	}
	return q >> dv.Shift
}

// divider128 divides U128 values by Denom.
type divider128 struct {
	Denom wideint.U128
	Magic wideint.U128
	Shift uint
	Add   bool
	Pow2  bool
}

func newDivider128(d wideint.U128) (dv divider128, err error) {
	if d.IsZero() {
		return dv, wideint.ErrDivisionByZero
	}
	floorLog2 := d.MSB()
	dv.Denom, dv.Shift = d, floorLog2

	if d.And(d.Dec()).IsZero() {
		dv.Pow2 = true
		return dv, nil
	}

	m, rem, err := wideint.U256From64(1).Lsh(128 + floorLog2).DivMod(widen128(d))
	if err != nil {
		return dv, err
	}
	m128, rem128 := narrow256(m), narrow256(rem)

	if e := d.Sub(rem128); e.GreaterOrEqualTo(wideint.U128From64(1).Lsh(floorLog2)) {
		m128 = m128.Add(m128)
		twiceRem := rem128.Add(rem128)
		if twiceRem.GreaterOrEqualTo(d) || twiceRem.LessThan(rem128) {
			m128 = m128.Inc()
		}
		dv.Add = true
	}
	dv.Magic = m128.Inc()
	return dv, nil
}

func (dv divider128) Quo(n wideint.U128) wideint.U128 {
	if dv.Pow2 {
		return n.Rsh(dv.Shift)
	}
	q := narrow256(widen128(n).Mul(widen128(dv.Magic)).Rsh(128))
	if dv.Add {
		return n.Sub(q).Rsh(1).Add(q).Rsh(dv.Shift)
	}
	return q.Rsh(dv.Shift)
}

// widen128 zero-extends u into the low half of a U256. U256 is built from
// 32-bit limbs, so each 64-bit limb splits in two.
func widen128(u wideint.U128) wideint.U256 {
	l := u.Limbs()
	return wideint.U256FromLimbs(
		uint32(l[0]), uint32(l[0]>>32),
		uint32(l[1]), uint32(l[1]>>32),
	)
}

// narrow256 truncates w to its low 128 bits.
func narrow256(w wideint.U256) wideint.U128 {
	l := w.Limbs()
	return wideint.U128FromLimbs(
		uint64(l[0])|uint64(l[1])<<32,
		uint64(l[2])|uint64(l[3])<<32,
	)
}

func (a *app) recipCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "recip DENOM [NUMER]",
		Short: "Find the multiply-and-shift reciprocal of an unsigned divisor",
		Long: `recip prints the magic number and shift that replace division by DENOM
with a multiply-high and a shift. If NUMER is given, the division is also
carried out both ways to show the results agree.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			switch width {
			case 64:
				d, err := strconv.ParseUint(args[0], 0, 64)
				if err != nil {
					return err
				}
				dv, err := newDivider64(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %#x %s %d %s %v %s %v\n",
					a.labelColor.Sprint("magic:"), dv.Magic,
					a.labelColor.Sprint("shift:"), dv.Shift,
					a.labelColor.Sprint("65bit:"), dv.Add,
					a.labelColor.Sprint("pow2:"), dv.Pow2)

				if len(args) > 1 {
					n, err := strconv.ParseUint(args[1], 0, 64)
					if err != nil {
						return err
					}
					a.resultColor.Fprintf(w, "%d / %d == %d (native %d)\n", n, d, dv.Quo(n), n/d)
				}

			case 128:
				d, err := wideint.U128FromString(args[0])
				if err != nil {
					return err
				}
				dv, err := newDivider128(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %#x %s %d %s %v %s %v\n",
					a.labelColor.Sprint("magic:"), dv.Magic,
					a.labelColor.Sprint("shift:"), dv.Shift,
					a.labelColor.Sprint("129bit:"), dv.Add,
					a.labelColor.Sprint("pow2:"), dv.Pow2)
				fmt.Fprintf(w, "%s %s\n", a.labelColor.Sprint("limbs:"), dv.Magic)

				if len(args) > 1 {
					n, err := wideint.U128FromString(args[1])
					if err != nil {
						return err
					}
					a.resultColor.Fprintf(w, "%d / %d == %d (QuoRem %d)\n", n, d, dv.Quo(n), n.Quo(d))
				}

			default:
				return fmt.Errorf("width must be 64 or 128, found %d", width)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 128, "divisor width in bits (64 or 128)")
	return cmd
}
