package main

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkOps = []string{"+", "-", "*", "/", "%", "<<", ">>", "cmp", "parse"}

// mismatchError reports a result that disagrees with math/big.
type mismatchError struct {
	Type string
	Op   string
	A, B string
	Want string
	Got  string
}

func (e *mismatchError) Error() string {
	return fmt.Sprintf("%s: %s %s %s: expected %s, found %s", e.Type, e.A, e.Op, e.B, e.Want, e.Got)
}

type checkOpts struct {
	types []string
	seed  int64
}

func (a *app) checkCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Cross-check random arithmetic against math/big",
		Long: `check runs random operands through every operator for each type and
compares the results against math/big. Types are checked concurrently. The
command exits with a non-zero status on the first mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}
			types := numTypes
			if len(opts.types) > 0 {
				types = nil
				for _, name := range opts.types {
					t, err := lookupType(name)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
			}

			log.Infof("Checking %d types, %d iterations each, seed %d.", len(types), a.cfg.Iterations, opts.seed)
			if err := a.check(cmd.Context(), types, opts.seed); err != nil {
				return err
			}
			a.resultColor.Fprintf(cmd.OutOrStdout(), "ok: %d types, %d iterations, seed %d\n",
				len(types), a.cfg.Iterations, opts.seed)
			return nil
		},
	}
	cmd.Flags().Int("iterations", a.cfg.Iterations, "iterations per type and operator")
	cmd.Flags().Int("jobs", a.cfg.Jobs, "types to check in parallel (0 means GOMAXPROCS)")
	cmd.Flags().StringSliceVar(&opts.types, "types", nil, "types to check (default all)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 means the current time)")
	return cmd
}

func (a *app) check(ctx context.Context, types []*numType, seed int64) error {
	if ctx == nil {
		ctx = context.Background()
	}
	jobs := a.cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(types)))

	for i, t := range types {
		t := t
		rng := rand.New(rand.NewSource(seed + int64(i)))
		g.Go(func() error {
			start := time.Now()
			for n := 0; n < a.cfg.Iterations; n++ {
				if n%64 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if err := checkOnce(t, rng); err != nil {
					return err
				}
			}
			log.Infof("Checked %s (%v).", t, time.Since(start))
			return nil
		})
	}
	return g.Wait()
}

// checkOnce runs one random operand pair through every operator.
func checkOnce(t *numType, rng *rand.Rand) error {
	l, r := randOperand(t, rng), randOperand(t, rng)
	lb, rb := l.AsBigInt(), r.AsBigInt()

	for _, op := range checkOps {
		var want, got *big.Int
		rhs := r.Text(10)

		switch op {
		case "+":
			want = new(big.Int).Add(lb, rb)
		case "-":
			want = new(big.Int).Sub(lb, rb)
		case "*":
			want = new(big.Int).Mul(lb, rb)
		case "/", "%":
			if r.IsZero() {
				if _, err := l.binary(op, r); err == nil {
					return &mismatchError{Type: t.Name, Op: op, A: l.Text(10), B: rhs, Want: "error", Got: "nil"}
				}
				continue
			}
			if op == "/" {
				want = new(big.Int).Quo(lb, rb)
			} else {
				want = new(big.Int).Rem(lb, rb)
			}

		case "<<", ">>":
			n := uint(rng.Intn(t.Bits + 8))
			rhs = fmt.Sprint(n)
			v, err := l.shift(op, n)
			if err != nil {
				return err
			}
			got = v.AsBigInt()
			if op == "<<" {
				want = new(big.Int).Lsh(lb, n)
			} else {
				want = new(big.Int).Rsh(lb, n)
			}

		case "cmp":
			if c, wc := l.cmp(r), lb.Cmp(rb); c != wc {
				return &mismatchError{Type: t.Name, Op: op, A: l.Text(10), B: rhs, Want: fmt.Sprint(wc), Got: fmt.Sprint(c)}
			}
			continue

		case "parse":
			for _, s := range []string{lb.Text(10), fmt.Sprintf("%#x", lb)} {
				p, err := t.parse(s)
				if err != nil {
					return &mismatchError{Type: t.Name, Op: op, A: s, Want: lb.Text(10), Got: err.Error()}
				}
				if p.cmp(l) != 0 {
					return &mismatchError{Type: t.Name, Op: op, A: s, Want: lb.Text(10), Got: p.Text(10)}
				}
			}
			continue
		}

		if got == nil {
			v, err := l.binary(op, r)
			if err != nil {
				return err
			}
			got = v.AsBigInt()
		}
		want = t.wrap(want)
		if want.Cmp(got) != 0 {
			return &mismatchError{Type: t.Name, Op: op, A: l.Text(10), B: rhs, Want: want.Text(10), Got: got.Text(10)}
		}
	}
	return nil
}

// randOperand draws a value with a random number of significant bits, so
// small operands turn up as often as full-width ones.
func randOperand(t *numType, rng *rand.Rand) value {
	v := t.random(rng)
	n := uint(rng.Intn(t.Bits))
	if n == 0 {
		return v
	}
	b := new(big.Int).Rsh(v.AsBigInt(), n)
	out, _ := t.fromBig(b)
	return out
}
