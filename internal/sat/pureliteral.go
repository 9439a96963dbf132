package sat

// pureLiteralPass assigns every variable that, among currently unsatisfied
// clauses, occurs exclusively with one polarity. It never reports a
// conflict (a pure assignment cannot falsify any clause it appears in) but
// is still run between propagation and branching, because it can shrink
// the live clause set and prune the remaining search.
//
// seenPos and seenNeg are reusable ResetSet scratch space owned by the
// solver: each call clears them in O(1) via the timestamp trick (see
// set.go) instead of allocating fresh boolean vectors every DPLL node.
func pureLiteralPass(formula *Formula, assignments []LBool, trail *Trail, watchers *WatcherIndex, seenPos, seenNeg *ResetSet) bool {
	seenPos.Clear()
	seenNeg.Clear()

	for _, c := range formula.clauses {
		if c.satisfied {
			continue
		}
		for _, l := range c.literals {
			if assignments[l.Var] != Unknown {
				continue
			}
			if l.Negated {
				seenNeg.Add(l.Var)
			} else {
				seenPos.Add(l.Var)
			}
		}
	}

	pure := make([]bool, formula.numVars+1)
	anyPure := false
	for v := 1; v <= formula.numVars; v++ {
		if assignments[v] != Unknown {
			continue
		}
		switch {
		case seenPos.Contains(v) && !seenNeg.Contains(v):
			assignValue(v, True, trail, assignments)
			pure[v] = true
			anyPure = true
		case seenNeg.Contains(v) && !seenPos.Contains(v):
			assignValue(v, False, trail, assignments)
			pure[v] = true
			anyPure = true
		}
	}

	if !anyPure {
		return true
	}

	// A clause containing a literal of a variable just marked pure is
	// satisfied regardless of which of the clause's literals that was: the
	// variable's sole live polarity across the formula is, by
	// construction, the polarity it was just assigned.
	for i, c := range formula.clauses {
		if c.satisfied {
			continue
		}
		for _, l := range c.literals {
			if pure[l.Var] {
				c.satisfied = true
				trail.logClauseSatisfy(i)
				break
			}
		}
	}

	return true
}
