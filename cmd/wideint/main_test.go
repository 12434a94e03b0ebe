package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--color", "off"}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCmd(t, args...)
	if err != nil {
		t.Fatalf("wideint %s: %v", strings.Join(args, " "), err)
	}
	return out
}

func TestEval(t *testing.T) {
	for idx, tc := range []struct {
		typ      string
		a, op, b string
		out      string
	}{
		{"u128", "1", "+", "2", "3"},
		{"u128", "0xffffffffffffffffffffffffffffffff", "+", "1", "0"},
		{"u128", "0", "-", "1", "340282366920938463463374607431768211455"},
		{"u256", "18446744073709551615", "*", "18446744073709551615", "340282366920938463426481119284349108225"},
		{"u256", "100", "/", "7", "14"},
		{"u256", "100", "%", "7", "2"},
		{"i128", "-7", "/", "2", "-3"},
		{"i128", "-7", "%", "2", "-1"},
		{"i128", "-170141183460469231731687303715884105728", "/", "-1", "-170141183460469231731687303715884105728"},
		{"u512", "0xf0", "&", "0x3c", "48"},
		{"u512", "0xf0", "|", "0x0f", "255"},
		{"u512", "0xf0", "^", "0xff", "15"},
		{"u512", "0xff", "&^", "0x0f", "240"},
		{"u128", "1", "<<", "64", "18446744073709551616"},
		{"i256", "-8", ">>", "1", "-4"},
		{"u256", "8", ">>", "3", "1"},
		{"i1024", "-1", "cmp", "1", "-1"},
		{"u1024", "5", "cmp", "5", "0"},
	} {
		t.Run(fmt.Sprintf("%d/%s/%s", idx, tc.typ, tc.op), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out := mustRun(t, "--type", tc.typ, "eval", "--", tc.a, tc.op, tc.b)
			tt.MustEqual(tc.out+"\n", out, "%d: %s %s %s %s", idx, tc.typ, tc.a, tc.op, tc.b)
		})
	}
}

func TestEvalShiftHex(t *testing.T) {
	tt := assert.WrapTB(t)
	out := mustRun(t, "--type", "u1024", "--base", "16", "eval", "1", "<<", "1000")
	tt.MustEqual("1"+strings.Repeat("0", 250)+"\n", out)

	out = mustRun(t, "--type", "u128", "--base", "16", "eval", "1", "<<", "128")
	tt.MustEqual("0\n", out)
}

func TestEvalDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out := mustRun(t, "--type", "u128", "eval", "--dump", "0xffffffffffffffff", "+", "1")
	tt.MustEqual("18446744073709551616\n[0x1, 0x0]\n", out)

	out = mustRun(t, "--type", "u256", "eval", "--spew", "1", "+", "1")
	tt.MustAssert(strings.HasPrefix(out, "2\n(wideint.U256)"), out)
}

func TestEvalErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--type", "u128", "eval", "1", "/", "0"},
		{"--type", "u128", "eval", "1", "%", "0"},
		{"--type", "u128", "eval", "1", "**", "2"},
		{"--type", "u128", "eval", "--", "1", "<<", "-1"},
		{"--type", "u128", "eval", "1", "<<", "x"},
		{"--type", "u128", "eval", "0x1ffffffffffffffffffffffffffffffff", "+", "1"},
		{"--type", "u9", "eval", "1", "+", "1"},
		{"--base", "7", "eval", "1", "+", "1"},
		{"--color", "sometimes", "eval", "1", "+", "1"},
		{"eval", "1", "+"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := runCmd(t, args...)
			tt.MustAssert(err != nil)
		})
	}
}

func TestMSB(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("41\n", mustRun(t, "--type", "u128", "msb", "0x3ffffffffff"))
	tt.MustEqual("255\n", mustRun(t, "--type", "i256", "msb", "--", "-1"))

	_, err := runCmd(t, "msb", "0")
	tt.MustAssert(err != nil)
}

func TestParse(t *testing.T) {
	tt := assert.WrapTB(t)
	out := mustRun(t, "--type", "i128", "parse", "--", "-255")
	tt.MustEqual(""+
		"dec    -255\n"+
		"hex    -0xff\n"+
		"oct    -0377\n"+
		"limbs  [0xffffffffffffffff, 0xffffffffffffff01]\n"+
		"msb    127\n", out)
}

func TestPow(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("1024\n", mustRun(t, "--type", "u256", "pow", "2", "10"))
	tt.MustEqual("0\n", mustRun(t, "--type", "u128", "pow", "2", "128"))
	tt.MustEqual("-27\n", mustRun(t, "--type", "i512", "pow", "--", "-3", "3"))

	_, err := runCmd(t, "pow", "--", "2", "-1")
	tt.MustAssert(err != nil)
}

func TestTypes(t *testing.T) {
	tt := assert.WrapTB(t)
	out := mustRun(t, "types")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	tt.MustEqual(len(numTypes)+1, len(lines))
	tt.MustEqual("u256   256   8 x uint32   false", lines[3])
	tt.MustEqual("i1024  1024  16 x uint64  true", lines[8])
}

func TestConfigFile(t *testing.T) {
	tt := assert.WrapTB(t)
	path := filepath.Join(t.TempDir(), "wideint.toml")
	tt.MustOK(os.WriteFile(path, []byte("type = \"i128\"\nbase = 16\n"), 0o600))

	// The file picks the type and base:
	tt.MustEqual("-ff\n", mustRun(t, "--config", path, "eval", "--", "0", "-", "255"))

	// Flags win over the file:
	tt.MustEqual("-255\n", mustRun(t, "--config", path, "--base", "10", "eval", "--", "0", "-", "255"))
	tt.MustEqual("ffffffffffffffffffffffffffffff01\n",
		mustRun(t, "--config", path, "--type", "u128", "eval", "--", "0", "-", "255"))
}

func TestConfigFileErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	tt.MustOK(os.WriteFile(bad, []byte("type = \n"), 0o600))
	_, err := runCmd(t, "--config", bad, "types")
	tt.MustAssert(err != nil)

	badType := filepath.Join(dir, "type.toml")
	tt.MustOK(os.WriteFile(badType, []byte("type = \"u100\"\n"), 0o600))
	_, err = runCmd(t, "--config", badType, "types")
	tt.MustAssert(err != nil)

	_, err = runCmd(t, "--config", filepath.Join(dir, "missing.toml"), "types")
	tt.MustAssert(err != nil)
}
