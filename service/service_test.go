package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/akeriat/equations"
	"github.com/akeriat/equations/store"
)

func newTestService() *Service {
	return New(store.NewMemory(), zerolog.Nop())
}

func TestStoreDedups(t *testing.T) {
	s := newTestService()
	id, err := s.Store("a + b")
	if err != nil {
		t.Fatal(err)
	}
	for _, src := range []string{"a+b", "(a+b)", "  a + b  ", "((a)+(b))"} {
		got, err := s.Store(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if got != id {
			t.Errorf("%q: want id %d, got %d", src, id, got)
		}
	}
	if got, err := s.Store("b + a"); err != nil {
		t.Fatal(err)
	} else if got == id {
		t.Error("b + a deduplicated against a + b")
	}
}

func TestStoreRecordsTrimmedInfixAndPostfixTypes(t *testing.T) {
	s := newTestService()
	id, err := s.Store("  x + y * 2  ")
	if err != nil {
		t.Fatal(err)
	}
	all := s.List()
	if len(all) != 1 || all[0].ID != id {
		t.Fatalf("unexpected listing: %+v", all)
	}
	// Only surrounding whitespace is trimmed from the stored text.
	if all[0].Infix != "x + y * 2" {
		t.Errorf("want trimmed infix with internal spaces kept, got %q", all[0].Infix)
	}
	want := []equations.Token{
		equations.TokenVariable,
		equations.TokenVariable,
		equations.TokenNumber,
		equations.TokenOperator,
		equations.TokenOperator,
	}
	if !reflect.DeepEqual(all[0].Postfix, want) {
		t.Errorf("want postfix types %v, got %v", want, all[0].Postfix)
	}
	if all[0].Hash != "(x+(y*2))" {
		t.Errorf("want hash (x+(y*2)), got %q", all[0].Hash)
	}
}

func TestStoreSyntaxError(t *testing.T) {
	s := newTestService()
	var serr equations.SyntaxError
	if _, err := s.Store("3 * @ 2"); !errors.As(err, &serr) {
		t.Errorf("illegal character: want SyntaxError, got %v", err)
	}
	if _, err := s.Store("   "); !errors.As(err, &serr) {
		t.Errorf("blank input: want SyntaxError, got %v", err)
	}
	if _, err := s.Store("(3 + 2"); !errors.As(err, &serr) {
		t.Errorf("unbalanced parens: want SyntaxError, got %v", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("bad expressions were stored: %+v", s.List())
	}
}

func TestEvaluate(t *testing.T) {
	s := newTestService()
	id, err := s.Store("x + y * 2")
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Evaluate(id, map[string]float64{"x": 5, "y": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("want 11, got %g", got)
	}
}

func TestEvaluateNotFound(t *testing.T) {
	s := newTestService()
	_, err := s.Evaluate(42, map[string]float64{})
	var nerr *NotFoundError
	if !errors.As(err, &nerr) {
		t.Fatalf("want NotFoundError, got %v", err)
	}
	if nerr.ID != 42 {
		t.Errorf("want id 42, got %d", nerr.ID)
	}
}

func TestEvaluateErrors(t *testing.T) {
	s := newTestService()
	id, err := s.Store("x / y")
	if err != nil {
		t.Fatal(err)
	}
	var merr *equations.MissingVariableError
	if _, err := s.Evaluate(id, map[string]float64{"x": 10}); !errors.As(err, &merr) {
		t.Errorf("want MissingVariableError, got %v", err)
	} else if merr.Name != "y" {
		t.Errorf("want missing variable y, got %q", merr.Name)
	}
	var derr *equations.DivisionByZeroError
	if _, err := s.Evaluate(id, map[string]float64{"x": 10, "y": 0}); !errors.As(err, &derr) {
		t.Errorf("want DivisionByZeroError, got %v", err)
	}
	var aerr *equations.ArgumentError
	if _, err := s.Evaluate(id, nil); !errors.As(err, &aerr) {
		t.Errorf("nil vars: want ArgumentError, got %v", err)
	}
}
