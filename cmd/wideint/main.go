// Command wideint is a calculator and self-checker for the fixed-width
// integer types in github.com/shabbyrobe/go-wideint.
//
//	wideint eval 0xffffffffffffffff '*' 0xffffffffffffffff
//	wideint --type i512 pow -- -3 301
//	wideint check --iterations 10000
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type app struct {
	cfg     config
	numType *numType

	configPath string
	verbose    bool

	resultColor *color.Color
	labelColor  *color.Color
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg:         defaultConfig(),
		resultColor: color.New(color.FgGreen, color.Bold),
		labelColor:  color.New(color.FgCyan),
	}

	root := &cobra.Command{
		Use:   "wideint",
		Short: "Fixed-width wide integer calculator",
		Long: `wideint evaluates expressions on 128 to 1024 bit integers using the
same wrapping arithmetic as the go-wideint package, and can cross-check that
arithmetic against math/big.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("type", a.cfg.Type, "integer type ("+typeNames()+")")
	flags.Int("base", a.cfg.Base, "output base (2, 8, 10 or 16)")
	flags.String("color", a.cfg.Color, "colorize output (auto|on|off)")
	flags.StringVar(&a.configPath, "config", "", "TOML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		a.evalCmd(),
		a.msbCmd(),
		a.parseCmd(),
		a.powCmd(),
		a.typesCmd(),
		a.checkCmd(),
		a.recipCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if a.configPath != "" {
		if err := loadConfig(a.configPath, &a.cfg); err != nil {
			return err
		}
		log.Debugf("Loaded config from %q.", a.configPath)
	}
	if err := overrideConfig(cmd.Flags(), &a.cfg); err != nil {
		return err
	}
	if err := a.cfg.validate(); err != nil {
		return err
	}

	var err error
	if a.numType, err = lookupType(a.cfg.Type); err != nil {
		return err
	}

	color.NoColor = !a.cfg.useColor(os.Stdout)
	log.Debugf("Using type %s, base %d, color %q.", a.numType, a.cfg.Base, a.cfg.Color)
	return nil
}

func (a *app) parseArg(s string) (value, error) {
	v, err := a.numType.parse(s)
	if err != nil {
		return nil, err
	}
	log.Debugf("Parsed %q as %s.", s, v)
	return v, nil
}

type printOpts struct {
	dump bool
	spew bool
}

func (a *app) printValue(w io.Writer, v value, opts printOpts) {
	a.resultColor.Fprintln(w, v.Text(a.cfg.Base))
	if opts.dump {
		fmt.Fprintln(w, v.String())
	}
	if opts.spew {
		spew.Fdump(w, v.Unwrap())
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
