package main

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	var opts printOpts

	cmd := &cobra.Command{
		Use:   "eval A OP B",
		Short: "Evaluate a binary expression",
		Long: `Evaluate A OP B in the selected type. OP is one of
  + - * / % & | ^ &^ << >> cmp
Arithmetic wraps around on overflow. For shifts, B is a plain shift count;
>> is arithmetic for signed types.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] == "cmp" {
				c, err := a.compare(args[0], args[2])
				if err != nil {
					return err
				}
				a.resultColor.Fprintln(cmd.OutOrStdout(), c)
				return nil
			}

			v, err := a.eval(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			a.printValue(cmd.OutOrStdout(), v, opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "also print the limb dump")
	cmd.Flags().BoolVar(&opts.spew, "spew", false, "also print a spew dump of the value")
	return cmd
}

func (a *app) eval(lhs, op, rhs string) (value, error) {
	l, err := a.parseArg(lhs)
	if err != nil {
		return nil, err
	}

	switch op {
	case "<<", ">>":
		n, err := parseShiftCount(rhs)
		if err != nil {
			return nil, err
		}
		return l.shift(op, n)
	}

	r, err := a.parseArg(rhs)
	if err != nil {
		return nil, err
	}
	return l.binary(op, r)
}

func (a *app) compare(lhs, rhs string) (int, error) {
	l, err := a.parseArg(lhs)
	if err != nil {
		return 0, err
	}
	r, err := a.parseArg(rhs)
	if err != nil {
		return 0, err
	}
	return l.cmp(r), nil
}

func parseShiftCount(s string) (uint, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid shift count %q: %w", s, err)
	}
	count, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, fmt.Errorf("invalid shift count %q: %w", s, err)
	}
	return count, nil
}
