package sat

// assignValue records variable v's assignment without touching any clause's
// satisfied flag. Used by the pure-literal pass, which marks satisfied
// clauses with its own full clause scan rather than through the watcher
// lists (see pureliteral.go).
func assignValue(v int, val LBool, trail *Trail, assignments []LBool) {
	assignments[v] = val
	trail.logAssignment(v)
}

// assignAndMark assigns l's variable so that l evaluates true (if not
// already assigned), then marks satisfied every not-yet-satisfied clause
// currently watching l. This is the "force assignment" step shared by the
// propagator (forcing the dequeued literal, and forcing a clause's other
// watcher) and by the DPLL driver's branching step, both of which act on a
// literal directly rather than through a full clause scan.
func assignAndMark(l Literal, trail *Trail, assignments []LBool, formula *Formula, watchers *WatcherIndex) {
	if assignments[l.Var] != Unknown {
		return // already assigned: a no-op, per the propagator's duplicate-enqueue tolerance
	}
	assignValue(l.Var, Lift(!l.Negated), trail, assignments)
	markWatchedSatisfied(l, trail, formula, watchers)
}

// markWatchedSatisfied marks satisfied every not-yet-satisfied clause
// currently watching l.
func markWatchedSatisfied(l Literal, trail *Trail, formula *Formula, watchers *WatcherIndex) {
	key := signedIndex(l, formula.numVars)
	for _, cIx := range watchers.lists[key] {
		c := formula.clauses[cIx]
		if !c.satisfied {
			c.satisfied = true
			trail.logClauseSatisfy(cIx)
		}
	}
}
