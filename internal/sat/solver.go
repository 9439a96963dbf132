package sat

import "time"

// Options configures a Solver.
type Options struct {
	// Timeout is the wall-clock budget before the solver gives up and
	// returns TIMEOUT. A value <= 0 selects DefaultOptions.Timeout.
	Timeout time.Duration
}

// DefaultOptions gives the solver a default 3600s search budget.
var DefaultOptions = Options{Timeout: 3600 * time.Second}

// Solver owns a Formula and the mutable search state layered on top of it:
// the assignment vector, the watcher index, and the trail that is the sole
// authority for undoing both. All of it is mutated in place for the
// lifetime of a single Solve call; there is no copy-on-branch.
type Solver struct {
	formula     *Formula
	assignments []LBool
	trail       *Trail
	watchers    *WatcherIndex
	heuristic   *Heuristic
	deadline    *Deadline

	// Reusable scratch space for the pure-literal pass.
	seenPos *ResetSet
	seenNeg *ResetSet
}

// NewSolver runs the subsumption pre-processor over f, builds the watcher
// index and the static branching heuristic from the result, and returns a
// Solver ready to decide f with a single call to Solve.
func NewSolver(f *Formula, opts Options) *Solver {
	subsume(f)

	watchers := newWatcherIndex(f.numVars)
	populateWatchers(f, watchers)

	assignments := make([]LBool, f.numVars+1)
	for i := range assignments {
		assignments[i] = Unknown
	}

	trail := newTrail(assignments, f, watchers)

	counts := occurrenceCounts(f)
	heuristic := newHeuristic(f.numVars, counts)

	seenPos := &ResetSet{}
	seenNeg := &ResetSet{}
	for i := 0; i <= f.numVars; i++ {
		seenPos.Expand()
		seenNeg.Expand()
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultOptions.Timeout
	}

	return &Solver{
		formula:     f,
		assignments: assignments,
		trail:       trail,
		watchers:    watchers,
		heuristic:   heuristic,
		deadline:    NewDeadline(timeout),
		seenPos:     seenPos,
		seenNeg:     seenNeg,
	}
}

// Solve decides f, returning SAT, UNSAT, or TIMEOUT.
func (s *Solver) Solve() Verdict {
	return s.dpll()
}

// Assignment returns the solver's current assignment vector (index 0
// unused). Only meaningful to inspect after Solve returns SAT.
func (s *Solver) Assignment() []LBool {
	return s.assignments
}
