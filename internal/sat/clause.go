package sat

import "strings"

// Clause is an ordered disjunction of literals. Its literal vector is never
// reordered after construction, its size never changes, and satisfied is
// mutated only through the Trail (see trail.go).
type Clause struct {
	literals  []Literal
	size      int
	satisfied bool
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Formula is a flat array of clauses over variables 1..NumVars. It is built
// once by the parser, mutated only via clause-satisfied flags during
// search (and once, structurally, by the subsumption pre-processor before
// search starts), and is never copied at branch points: the solver mutates
// it in place and relies on the Trail to undo.
type Formula struct {
	numVars int
	clauses []*Clause
}

// NewFormula builds a Formula over the given number of variables from a
// list of clauses, each expressed as a literal slice. Clause literal order
// is preserved exactly as given.
func NewFormula(numVars int, clauseLiterals [][]Literal) *Formula {
	clauses := make([]*Clause, len(clauseLiterals))
	for i, lits := range clauseLiterals {
		owned := make([]Literal, len(lits))
		copy(owned, lits)
		clauses[i] = &Clause{literals: owned, size: len(owned)}
	}
	return &Formula{numVars: numVars, clauses: clauses}
}

// NumVars returns the number of variables declared by the formula.
func (f *Formula) NumVars() int { return f.numVars }

func (f *Formula) String() string {
	if len(f.clauses) == 0 {
		return "Formula[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Formula[")
	sb.WriteString(f.clauses[0].String())
	for _, c := range f.clauses[1:] {
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// NumClauses returns the current number of clauses, which may shrink once
// after subsumption but never changes during search.
func (f *Formula) NumClauses() int { return len(f.clauses) }

// ClauseLiterals returns a copy of clause i's literal vector, in its
// original order. Exposed for tests that check parser or pre-processor
// output against an expected formula shape.
func (f *Formula) ClauseLiterals(i int) []Literal {
	owned := make([]Literal, len(f.clauses[i].literals))
	copy(owned, f.clauses[i].literals)
	return owned
}

// occurrenceCounts returns, for each variable 1..NumVars, the number of
// literal occurrences of that variable across all clauses, counting both
// polarities. Used once, after subsumption, to build the static branching
// heuristic (see heuristic.go).
func occurrenceCounts(f *Formula) []int {
	counts := make([]int, f.numVars+1)
	for _, c := range f.clauses {
		for _, l := range c.literals {
			counts[l.Var]++
		}
	}
	return counts
}
