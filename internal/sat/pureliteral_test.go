package sat

import "testing"

func newResetSets(numVars int) (*ResetSet, *ResetSet) {
	pos, neg := &ResetSet{}, &ResetSet{}
	for i := 0; i <= numVars; i++ {
		pos.Expand()
		neg.Expand()
	}
	return pos, neg
}

func TestPureLiteralPass_AssignsPurePositiveVariable(t *testing.T) {
	f := NewFormula(3, [][]Literal{
		{Pos(1), Pos(2)},
		{Pos(1), Pos(3)},
	})
	assignments, trail, watchers := newSearchState(f)
	seenPos, seenNeg := newResetSets(f.numVars)

	pureLiteralPass(f, assignments, trail, watchers, seenPos, seenNeg)

	if assignments[1] != True {
		t.Errorf("assignments[1] = %v, want True", assignments[1])
	}
	if !f.clauses[0].satisfied || !f.clauses[1].satisfied {
		t.Errorf("both clauses should be satisfied by the pure literal")
	}
}

func TestPureLiteralPass_LeavesMixedPolarityUnassigned(t *testing.T) {
	f := NewFormula(2, [][]Literal{
		{Pos(1), Pos(2)},
		{Neg(1), Pos(2)},
	})
	assignments, trail, watchers := newSearchState(f)
	seenPos, seenNeg := newResetSets(f.numVars)

	pureLiteralPass(f, assignments, trail, watchers, seenPos, seenNeg)

	if assignments[1] != Unknown {
		t.Errorf("assignments[1] = %v, want Unknown (variable occurs with both polarities)", assignments[1])
	}
	if assignments[2] != True {
		t.Errorf("assignments[2] = %v, want True (pure positive)", assignments[2])
	}
}

func TestPureLiteralPass_SkipsAlreadySatisfiedClauses(t *testing.T) {
	f := NewFormula(2, [][]Literal{
		{Pos(1), Pos(2)},
	})
	assignments, trail, watchers := newSearchState(f)
	assignValue(2, True, trail, assignments)
	f.clauses[0].satisfied = true
	trail.logClauseSatisfy(0)

	seenPos, seenNeg := newResetSets(f.numVars)
	pureLiteralPass(f, assignments, trail, watchers, seenPos, seenNeg)

	if assignments[1] != Unknown {
		t.Errorf("assignments[1] = %v, want Unknown (its only clause is already satisfied)", assignments[1])
	}
}
