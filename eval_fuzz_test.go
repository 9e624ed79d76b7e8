//go:build go1.18
// +build go1.18

package equations_test

import (
	"testing"

	"github.com/akeriat/equations"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("x + y * 2")
	f.Add("(2+3)*4")
	f.Add("1/(x-1)")
	vars := map[string]float64{"x": 1, "y": 2}
	f.Fuzz(func(t *testing.T, s string) {
		root, err := equations.Parse(s)
		if err != nil {
			return
		}
		// Any parseable expression must evaluate or fail without panicking.
		equations.Evaluate(root, vars)
	})
}
