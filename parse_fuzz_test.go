package deskcalc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/deskcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2*3")
	f.Add("--1")
	f.Add("1×2")
	f.Add("((2)")
	f.Add("2^3^4")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := deskcalc.Parse(strings.NewReader(s), deskcalc.AllowPower())
		if err != nil {
			return
		}
		// The string form of a parsed expression must itself parse.
		if _, err := deskcalc.ParseString(a.String(), deskcalc.AllowPower()); err != nil {
			t.Errorf("%q formats as %q, which does not parse: %v", s, a.String(), err)
		}
	})
}
