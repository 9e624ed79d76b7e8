//go:build go1.18
// +build go1.18

package equations_test

import (
	"testing"

	"github.com/akeriat/equations"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("x + y * 2")
	f.Add("(a/d)*c")
	f.Add("2^3^2")
	f.Fuzz(func(t *testing.T, s string) {
		root, err := equations.Parse(s)
		if err != nil {
			return
		}
		// The canonical form must re-parse to the same canonical form.
		h := equations.Hash(root)
		again, err := equations.Parse(h)
		if err != nil {
			t.Fatalf("canonical form %q of %q failed to parse: %v", h, s, err)
		}
		if got := equations.Hash(again); got != h {
			t.Errorf("hash not stable: %q then %q", h, got)
		}
	})
}
