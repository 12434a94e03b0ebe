package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) msbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "msb X",
		Short: "Print the index of the highest set bit of X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseArg(args[0])
			if err != nil {
				return err
			}
			if v.IsZero() {
				return fmt.Errorf("msb: %s has no set bits", args[0])
			}
			a.resultColor.Fprintln(cmd.OutOrStdout(), v.MSB())
			return nil
		},
	}
}

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse X",
		Short: "Parse a literal and print it in every base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseArg(args[0])
			if err != nil {
				return err
			}

			b := v.AsBigInt()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, row := range []struct{ label, text string }{
				{"dec", b.Text(10)},
				{"hex", fmt.Sprintf("%#x", b)},
				{"oct", fmt.Sprintf("%#o", b)},
				{"limbs", v.String()},
				{"msb", strconv.FormatUint(uint64(v.MSB()), 10)},
			} {
				fmt.Fprintf(w, "%s\t%s\n", a.labelColor.Sprint(row.label), row.text)
			}
			return w.Flush()
		},
	}
}

func (a *app) powCmd() *cobra.Command {
	var opts printOpts

	cmd := &cobra.Command{
		Use:   "pow X N",
		Short: "Raise X to the power N, wrapping on overflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.parseArg(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", args[1], err)
			}
			a.printValue(cmd.OutOrStdout(), v.pow(n), opts)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "also print the limb dump")
	cmd.Flags().BoolVar(&opts.spew, "spew", false, "also print a spew dump of the value")
	return cmd
}

func (a *app) typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported integer types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "type\tbits\tlimbs\tsigned")
			for _, t := range numTypes {
				fmt.Fprintf(w, "%s\t%d\t%d x %s\t%v\n", t.Name, t.Bits, t.Limbs, t.Limb, t.Signed)
			}
			return w.Flush()
		},
	}
}
