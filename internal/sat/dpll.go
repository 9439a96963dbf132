package sat

// dpll is the recursive DPLL driver. It is called once by Solve and
// thereafter only by itself, once per branch: the deadline is polled at
// every entry so a long-running search can still unwind to TIMEOUT from
// arbitrary recursion depth, and every mutation it makes (directly or
// through propagate/pureLiteralPass/assignAndMark) is undone via the trail
// before a UNSAT return, leaving the caller's own checkpoint valid.
func (s *Solver) dpll() Verdict {
	if s.deadline.Exceeded() {
		return TIMEOUT
	}

	cp := s.trail.Checkpoint()

	if !propagate(s.formula, s.assignments, s.trail, s.watchers) {
		s.trail.Rewind(cp)
		return UNSAT
	}

	pureLiteralPass(s.formula, s.assignments, s.trail, s.watchers, s.seenPos, s.seenNeg)

	// Mark satisfied any clause that now has a true literal outside of
	// watched-literal/pure-literal bookkeeping: a literal assigned directly
	// by this method's own branching step below can satisfy a clause it
	// isn't watching, and propagation can force a literal true through a
	// clause position that was never one of its two watchers.
	for i, c := range s.formula.clauses {
		if c.satisfied {
			continue
		}
		for _, l := range c.literals {
			if litIsTrue(l, s.assignments) {
				c.satisfied = true
				s.trail.logClauseSatisfy(i)
				break
			}
		}
	}

	allSatisfied := true
	for _, c := range s.formula.clauses {
		if c.satisfied {
			continue
		}
		if allFalsified(c, s.assignments) {
			s.trail.Rewind(cp)
			return UNSAT
		}
		allSatisfied = false
	}
	if allSatisfied {
		return SAT
	}

	v, ok := s.heuristic.pick(s.assignments)
	if !ok {
		// Every clause is accounted for above, so an unassigned variable
		// must remain whenever allSatisfied is false; this is unreachable.
		s.trail.Rewind(cp)
		return UNSAT
	}

	for _, negated := range [2]bool{true, false} {
		branchCp := s.trail.Checkpoint()
		assignAndMark(Literal{Var: v, Negated: negated}, s.trail, s.assignments, s.formula, s.watchers)

		verdict := s.dpll()
		if verdict == SAT || verdict == TIMEOUT {
			return verdict
		}
		s.trail.Rewind(branchCp)
	}

	s.trail.Rewind(cp)
	return UNSAT
}
