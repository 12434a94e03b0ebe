// Command wideintgen renders the fixed-width value types (U128, I128, ...)
// from a single template over the package's generic limb kernels.
//
// It is run by go:generate from the package root:
//
//	go run ./internal/wideintgen --out .
package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
)

//go:embed wide.go.tmpl
var wideTemplate string

// Type describes one generated value type.
type Type struct {
	Name   string // Exported type name, "U128"
	Lower  string // Lower-case name used in error messages, "u128"
	Recv   string // Method receiver name
	Limb   string // Limb type, "uint64" or "uint32"
	Limbs  int
	Bits   int
	Bytes  int
	Signed bool
	Pair   string // The type with the same width and opposite signedness
}

// Types lists every generated type. 256-bit types use 32-bit limbs so that
// both limb widths are exercised by real types.
var Types = buildTypes([]widthSpec{
	{Bits: 128, Limb: "uint64"},
	{Bits: 256, Limb: "uint32"},
	{Bits: 512, Limb: "uint64"},
	{Bits: 1024, Limb: "uint64"},
})

type widthSpec struct {
	Bits int
	Limb string
}

func buildTypes(widths []widthSpec) []Type {
	var out []Type
	for _, w := range widths {
		limbBits := 64
		if w.Limb == "uint32" {
			limbBits = 32
		}
		u := fmt.Sprintf("U%d", w.Bits)
		i := fmt.Sprintf("I%d", w.Bits)
		base := Type{Limb: w.Limb, Limbs: w.Bits / limbBits, Bits: w.Bits, Bytes: w.Bits / 8}

		ut := base
		ut.Name, ut.Lower, ut.Recv, ut.Pair = u, strings.ToLower(u), "u", i
		it := base
		it.Name, it.Lower, it.Recv, it.Pair, it.Signed = i, strings.ToLower(i), "i", u, true

		out = append(out, ut, it)
	}
	return out
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("wideintgen", pflag.ContinueOnError)
	out := fs.StringP("out", "o", ".", "Output directory")
	only := fs.StringSlice("type", nil, "Only render these types (default all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tpl, err := template.New("wide").Parse(wideTemplate)
	if err != nil {
		return err
	}

	want := map[string]bool{}
	for _, n := range *only {
		want[strings.ToUpper(n)] = true
	}

	for _, t := range Types {
		if len(want) > 0 && !want[t.Name] {
			continue
		}
		src, err := render(tpl, t)
		if err != nil {
			return err
		}
		fname := filepath.Join(*out, t.Lower+".go")
		if err := os.WriteFile(fname, src, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func render(tpl *template.Template, t Type) ([]byte, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("wideintgen: %s: %w", t.Name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("wideintgen: %s: %w\n%s", t.Name, err, buf.String())
	}
	return src, nil
}
