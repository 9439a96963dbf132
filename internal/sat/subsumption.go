package sat

// subsume is the subsumption pre-processor: for every ordered pair (i, j)
// with i != j, if clause j's signed-literal set is a subset of clause i's
// and |i| >= |j|, clause i is marked removable. It runs once, before
// watchers are populated and before the branching heuristic is built.
//
// Pairwise subsumption is O(M^2 * L) and dominates on large inputs; this
// is acceptable because M shrinks drastically on real instances, which is
// why it is left as the straightforward pairwise check rather than a
// signature-based filter.
func subsume(f *Formula) {
	n := len(f.clauses)
	if n == 0 {
		return
	}

	sets := make([]map[int]struct{}, n)
	for i, c := range f.clauses {
		s := make(map[int]struct{}, len(c.literals))
		for _, l := range c.literals {
			s[signedKey(l)] = struct{}{}
		}
		sets[i] = s
	}

	removed := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if len(sets[i]) < len(sets[j]) {
				continue
			}
			if len(sets[i]) == len(sets[j]) && i < j {
				// Equal-size clauses subsume each other (e.g. exact
				// duplicates); keep the lower-indexed clause so a pair of
				// duplicates doesn't delete both sides of itself.
				continue
			}
			if isSubset(sets[j], sets[i]) {
				removed[i] = true
				break
			}
		}
	}

	kept := f.clauses[:0]
	for i, c := range f.clauses {
		if !removed[i] {
			kept = append(kept, c)
		}
	}
	f.clauses = kept
}

// signedKey is a literal's identity for subsumption purposes: the variable
// id if positive, its negation if negative.
func signedKey(l Literal) int {
	if l.Negated {
		return -l.Var
	}
	return l.Var
}

func isSubset(small, big map[int]struct{}) bool {
	for k := range small {
		if _, ok := big[k]; !ok {
			return false
		}
	}
	return true
}
