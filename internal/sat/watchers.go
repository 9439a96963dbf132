package sat

// WatcherIndex maintains, for every signed literal, the list of clause
// indices currently watching it. Every unsatisfied clause of size >= 2 is
// registered in exactly two such lists; a unit clause is registered in
// exactly one; a clause of size 0 is registered in none.
type WatcherIndex struct {
	lists [][]int
}

// newWatcherIndex returns an empty WatcherIndex sized for the given number
// of variables (signed indices 1..2*numVars).
func newWatcherIndex(numVars int) *WatcherIndex {
	return &WatcherIndex{lists: make([][]int, 2*numVars+1)}
}

// add appends clauseIx to the watcher list of signedLit and logs the
// matching undo entry so the addition can be reversed on rewind.
func (w *WatcherIndex) add(signedLit, clauseIx int, trail *Trail) {
	w.appendRaw(signedLit, clauseIx)
	trail.logWatchAdd(signedLit, clauseIx)
}

// remove deletes the first occurrence of clauseIx from the watcher list of
// signedLit and logs the matching undo entry.
func (w *WatcherIndex) remove(signedLit, clauseIx int, trail *Trail) {
	w.removeFirstRaw(signedLit, clauseIx)
	trail.logWatchRemove(signedLit, clauseIx)
}

// contains reports whether clauseIx is registered under signedLit. Used by
// the propagator to rediscover a clause's other watched literal by probing
// candidate watcher lists (see propagate.go).
func (w *WatcherIndex) contains(signedLit, clauseIx int) bool {
	for _, c := range w.lists[signedLit] {
		if c == clauseIx {
			return true
		}
	}
	return false
}

// appendRaw and removeFirstRaw mutate a watcher list without touching the
// trail. They back both the logged add/remove above and the Trail's own
// rewind, which must restore state without calling back into add/remove
// (and thus without re-logging).
func (w *WatcherIndex) appendRaw(signedLit, clauseIx int) {
	w.lists[signedLit] = append(w.lists[signedLit], clauseIx)
}

func (w *WatcherIndex) removeFirstRaw(signedLit, clauseIx int) {
	list := w.lists[signedLit]
	for i, c := range list {
		if c == clauseIx {
			w.lists[signedLit] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// populateWatchers performs the initial, unlogged registration: the first
// literal of every non-empty clause, plus its second literal when the
// clause has one. This happens once, before search starts, so it is not
// recorded on the trail.
func populateWatchers(f *Formula, w *WatcherIndex) {
	for i, c := range f.clauses {
		if c.size == 0 {
			continue
		}
		w.appendRaw(signedIndex(c.literals[0], f.numVars), i)
		if c.size >= 2 {
			w.appendRaw(signedIndex(c.literals[1], f.numVars), i)
		}
	}
}
