package sat

// propagate runs two-watched-literal unit propagation to quiescence. It
// returns false on conflict, in which case the caller is responsible for
// rewinding the trail; on success it returns true with the trail extended
// by every forced assignment.
//
// The work queue is a literal, not a clause: duplicate enqueues are
// tolerated, and a literal whose variable already holds the right value is
// a cheap no-op on the pass that dequeues it.
func propagate(formula *Formula, assignments []LBool, trail *Trail, watchers *WatcherIndex) bool {
	queue := NewQueue[Literal](16)

	if !seedUnitClauses(formula, assignments, queue) {
		return false
	}

	for !queue.IsEmpty() {
		l := queue.Pop()

		// Step 1: force the dequeued literal true if its variable is still
		// unassigned, marking every clause watching it as satisfied.
		assignAndMark(l, trail, assignments, formula, watchers)

		// Step 2: visit every clause watching the negation of l. The
		// watcher list is snapshotted before the loop because a
		// relocation (case e below) removes entries from the live list
		// mid-scan; clauses that are neither relocated nor forced remain
		// registered under notL without us touching the list at all.
		notL := l.Opposite()
		key := signedIndex(notL, formula.numVars)
		snapshot := append([]int(nil), watchers.lists[key]...)

		for _, cIx := range snapshot {
			c := formula.clauses[cIx]
			if c.satisfied {
				continue // (a)
			}

			other, hasOther := otherWatcher(c, cIx, notL, watchers, formula.numVars)
			if !hasOther {
				// (c) C is a unit clause: notL is its only watcher.
				if allFalsified(c, assignments) {
					return false
				}
				queue.Push(notL)
				continue
			}

			if litIsTrue(other, assignments) {
				continue // (d)
			}

			if n, ok := relocationCandidate(c, notL, other, assignments); ok {
				// (e)
				watchers.remove(key, cIx, trail)
				watchers.add(signedIndex(n, formula.numVars), cIx, trail)
				continue
			}

			// (f) no replacement literal: the other watcher must now be
			// forced, or the clause is conflicting.
			if assignments[other.Var] == Unknown {
				assignAndMark(other, trail, assignments, formula, watchers)
				queue.Push(other)
			} else {
				return false
			}
		}
	}

	return true
}

// seedUnitClauses scans every unsatisfied clause once: a clause with
// exactly one unassigned literal and no already-true literal contributes
// that literal to the queue (this covers unit clauses present before
// propagation starts). A clause with zero unassigned literals and no true
// literal is an immediate conflict, which also covers a live clause of
// size 0.
func seedUnitClauses(formula *Formula, assignments []LBool, queue *Queue[Literal]) bool {
	for _, c := range formula.clauses {
		if c.satisfied {
			continue
		}

		unassignedCount := 0
		var unassigned Literal
		satisfied := false

		for _, l := range c.literals {
			v := assignments[l.Var]
			if v == Unknown {
				unassignedCount++
				unassigned = l
				continue
			}
			if litSatisfiedByValue(l, v) {
				satisfied = true
				break
			}
		}

		if satisfied {
			continue
		}
		switch unassignedCount {
		case 0:
			return false
		case 1:
			queue.Push(unassigned)
		}
	}
	return true
}

// otherWatcher identifies the watcher of c other than notL by scanning c's
// literals and probing each candidate's watcher list. It reports ok=false
// when notL is c's only watcher (a unit clause).
func otherWatcher(c *Clause, cIx int, notL Literal, watchers *WatcherIndex, numVars int) (Literal, bool) {
	for _, m := range c.literals {
		if m == notL {
			continue
		}
		if watchers.contains(signedIndex(m, numVars), cIx) {
			return m, true
		}
	}
	return Literal{}, false
}

// relocationCandidate scans c's literals for a literal, other than notL and
// the clause's other watcher, that is either unassigned or already
// satisfies c.
func relocationCandidate(c *Clause, notL, other Literal, assignments []LBool) (Literal, bool) {
	for _, n := range c.literals {
		if n == notL || n == other {
			continue
		}
		if assignments[n.Var] == Unknown || litIsTrue(n, assignments) {
			return n, true
		}
	}
	return Literal{}, false
}
