package sat

import (
	"reflect"
	"testing"
)

func TestNewFormula(t *testing.T) {
	f := NewFormula(3, [][]Literal{
		{Pos(1), Neg(2)},
		{Pos(3)},
	})

	if got, want := f.NumVars(), 3; got != want {
		t.Errorf("NumVars() = %d, want %d", got, want)
	}
	if got, want := f.NumClauses(), 2; got != want {
		t.Errorf("NumClauses() = %d, want %d", got, want)
	}
	if got, want := f.ClauseLiterals(0), []Literal{Pos(1), Neg(2)}; !reflect.DeepEqual(got, want) {
		t.Errorf("ClauseLiterals(0) = %v, want %v", got, want)
	}
}

func TestFormula_String(t *testing.T) {
	f := NewFormula(2, [][]Literal{
		{Pos(1), Neg(2)},
		{Pos(2)},
	})
	want := "Formula[Clause[1 -2] Clause[2]]"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NewFormula(1, nil).String(), "Formula[]"; got != want {
		t.Errorf("String() on empty formula = %q, want %q", got, want)
	}
}

func TestOccurrenceCounts(t *testing.T) {
	f := NewFormula(3, [][]Literal{
		{Pos(1), Neg(2)},
		{Pos(1), Pos(3)},
		{Neg(1)},
	})

	got := occurrenceCounts(f)
	want := []int{0, 3, 1, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("occurrenceCounts() = %v, want %v", got, want)
	}
}
