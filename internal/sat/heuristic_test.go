package sat

import "testing"

func TestHeuristic_PicksHighestOccurrenceFirst(t *testing.T) {
	f := NewFormula(3, [][]Literal{
		{Pos(1), Pos(2)},
		{Pos(2), Pos(3)},
		{Pos(2), Neg(3)},
	})
	h := newHeuristic(f.numVars, occurrenceCounts(f))

	assignments := make([]LBool, f.numVars+1)
	for i := range assignments {
		assignments[i] = Unknown
	}

	v, ok := h.pick(assignments)
	if !ok || v != 2 {
		t.Fatalf("pick() = (%d, %v), want (2, true): variable 2 has the highest occurrence count", v, ok)
	}

	assignments[2] = True
	v, ok = h.pick(assignments)
	if !ok || (v != 1 && v != 3) {
		t.Fatalf("pick() after assigning 2 = (%d, %v), want 1 or 3", v, ok)
	}
}

func TestHeuristic_TieBrokenByAscendingVariableID(t *testing.T) {
	f := NewFormula(2, [][]Literal{
		{Pos(1), Pos(2)},
	})
	h := newHeuristic(f.numVars, occurrenceCounts(f))

	assignments := make([]LBool, f.numVars+1)
	for i := range assignments {
		assignments[i] = Unknown
	}

	v, ok := h.pick(assignments)
	if !ok || v != 1 {
		t.Fatalf("pick() = (%d, %v), want (1, true) on an occurrence-count tie", v, ok)
	}
}

func TestHeuristic_NoneLeft(t *testing.T) {
	f := NewFormula(1, [][]Literal{{Pos(1)}})
	h := newHeuristic(f.numVars, occurrenceCounts(f))

	assignments := []LBool{Unknown, True}
	if _, ok := h.pick(assignments); ok {
		t.Errorf("pick() ok = true, want false: every variable is assigned")
	}
}
