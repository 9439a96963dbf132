package sat

import "time"

// Deadline is a monotonic cutoff polled once per DPLL recursion entry.
// Propagation and the pure-literal pass are not interruptible mid-call:
// the deadline is only ever checked at dpll's own entry point.
type Deadline struct {
	start  time.Time
	budget time.Duration
}

// NewDeadline returns a Deadline that starts counting from now with the
// given budget.
func NewDeadline(budget time.Duration) *Deadline {
	return &Deadline{start: time.Now(), budget: budget}
}

// Exceeded reports whether the elapsed time since the deadline started
// exceeds its budget.
func (d *Deadline) Exceeded() bool {
	return time.Since(d.start) > d.budget
}
