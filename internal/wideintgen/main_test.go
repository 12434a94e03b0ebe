package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/shabbyrobe/golib/assert"
)

func TestTypes(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(8, len(Types))

	byName := map[string]Type{}
	for _, ty := range Types {
		byName[ty.Name] = ty
	}
	tt.MustEqual(Type{Name: "U256", Lower: "u256", Recv: "u", Limb: "uint32", Limbs: 8, Bits: 256, Bytes: 32, Pair: "I256"}, byName["U256"])
	tt.MustEqual(Type{Name: "I1024", Lower: "i1024", Recv: "i", Limb: "uint64", Limbs: 16, Bits: 1024, Bytes: 128, Signed: true, Pair: "U1024"}, byName["I1024"])
}

func TestRender(t *testing.T) {
	tt := assert.WrapTB(t)
	tpl, err := template.New("wide").Parse(wideTemplate)
	tt.MustOK(err)

	for _, ty := range Types {
		src, err := render(tpl, ty)
		tt.MustOK(err)

		s := string(src)
		tt.MustAssert(strings.HasPrefix(s, "// Code generated by wideintgen. DO NOT EDIT."))
		tt.MustAssert(strings.Contains(s, "type "+ty.Name+" struct"))
		tt.MustEqual(ty.Signed, strings.Contains(s, ") ArithRsh("), ty.Name)
	}
}

func TestRunWritesSelectedTypes(t *testing.T) {
	tt := assert.WrapTB(t)
	dir := t.TempDir()

	tt.MustOK(run([]string{"--out", dir, "--type", "u128,i512"}))

	entries, err := os.ReadDir(dir)
	tt.MustOK(err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	tt.MustEqual([]string{"i512.go", "u128.go"}, names)

	src, err := os.ReadFile(filepath.Join(dir, "u128.go"))
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(string(src), "func U128From64(v uint64) (out U128)"))
}
