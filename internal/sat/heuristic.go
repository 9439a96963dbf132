package sat

import "github.com/rhartert/yagh"

// Heuristic implements the static, descending occurrence-count branching
// order: computed once, after subsumption, from each variable's literal
// occurrence count, it never changes during search. This is deliberately
// simpler than the dynamic, decaying activity order a CDCL solver would
// use.
type Heuristic struct {
	order []int
}

// newHeuristic builds the static order from per-variable occurrence
// counts (indices 1..numVars; index 0 is unused). It uses a yagh.IntMap as
// a one-shot heap-sort: every variable is pushed with key
// -count*(numVars+1) + v, so the min-heap pops highest-count first and,
// because every key is distinct, breaks ties by ascending variable id
// without relying on the heap's order among equal keys.
func newHeuristic(numVars int, counts []int) *Heuristic {
	h := yagh.New[int](0)
	h.GrowBy(numVars)
	for v := 1; v <= numVars; v++ {
		h.Put(v-1, -counts[v]*(numVars+1)+v)
	}

	order := make([]int, 0, numVars)
	for {
		next, ok := h.Pop()
		if !ok {
			break
		}
		order = append(order, next.Elem+1)
	}

	return &Heuristic{order: order}
}

// pick scans the static order and returns the first variable that is still
// unassigned, or ok=false if none remain.
func (h *Heuristic) pick(assignments []LBool) (v int, ok bool) {
	for _, v := range h.order {
		if assignments[v] == Unknown {
			return v, true
		}
	}
	return 0, false
}
