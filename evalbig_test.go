package equations_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/akeriat/equations"
)

func TestEvalBig(t *testing.T) {
	cases := []struct {
		name string
		src  string
		vars map[string]*big.Float
		want float64
	}{
		{"precedence", "2+3*4", map[string]*big.Float{}, 14},
		{"pow-right-assoc", "2^3^2", map[string]*big.Float{}, 512},
		{"variable", "x*2", map[string]*big.Float{"x": big.NewFloat(3.5)}, 7},
		{"decimal", "1.5+1.25", map[string]*big.Float{}, 2.75},
		{"grouped", "(2+3)*4", map[string]*big.Float{}, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := equations.EvalBig(mustParse(t, c.src), c.vars, 64)
			if err != nil {
				t.Fatalf("evaluation error: %v", err)
			}
			if got, _ := r.Float64(); got != c.want {
				t.Errorf("want %g, got %g", c.want, got)
			}
		})
	}
}

func TestEvalBigPrecision(t *testing.T) {
	root := mustParse(t, "1/3")
	lo, err := equations.EvalBig(root, map[string]*big.Float{}, 16)
	if err != nil {
		t.Fatal(err)
	}
	hi, err := equations.EvalBig(root, map[string]*big.Float{}, 200)
	if err != nil {
		t.Fatal(err)
	}
	if lo.Prec() >= hi.Prec() {
		t.Errorf("precisions not distinct: %d and %d", lo.Prec(), hi.Prec())
	}
	if lo.Cmp(hi) == 0 {
		t.Error("1/3 identical at 16 and 200 bits")
	}
}

func TestEvalBigErrors(t *testing.T) {
	var derr *equations.DivisionByZeroError
	if _, err := equations.EvalBig(mustParse(t, "1/(2-2)"), map[string]*big.Float{}, 64); !errors.As(err, &derr) {
		t.Errorf("zero divisor: want DivisionByZeroError, got %v", err)
	}
	var doerr *equations.DomainError
	if _, err := equations.EvalBig(mustParse(t, "(0-2)^0.5"), map[string]*big.Float{}, 64); !errors.As(err, &doerr) {
		t.Errorf("negative base: want DomainError, got %v", err)
	}
	var merr *equations.MissingVariableError
	if _, err := equations.EvalBig(mustParse(t, "q+1"), map[string]*big.Float{}, 64); !errors.As(err, &merr) {
		t.Errorf("missing variable: want MissingVariableError, got %v", err)
	}
	var aerr *equations.ArgumentError
	if _, err := equations.EvalBig(nil, map[string]*big.Float{}, 64); !errors.As(err, &aerr) {
		t.Errorf("nil root: want ArgumentError, got %v", err)
	}
}
